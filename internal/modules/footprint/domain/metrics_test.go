package domain_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"carbontrack/internal/modules/footprint/domain"
)

func answersScoring(score int) domain.Answers {
	// Build an answer set with the requested score out of 10-point steps.
	answers := domain.Answers{}
	for _, c := range domain.Categories {
		switch {
		case score >= 30:
			answers[c] = domain.SeverityHigh
			score -= 30
		case score >= 20:
			answers[c] = domain.SeverityMedium
			score -= 20
		case score >= 10:
			answers[c] = domain.SeverityLow
			score -= 10
		}
	}
	return answers
}

func TestDerive(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		answers domain.Answers
		target  int
		want    domain.Metrics
	}{
		{
			name:    "score equals target",
			answers: answersScoring(50),
			target:  50,
			want:    domain.Metrics{Score: 50, Target: 50, ProgressPercent: 100, GaugeFraction: 0.5, GoalReached: true},
		},
		{
			name:    "score double target",
			answers: answersScoring(100),
			target:  50,
			want:    domain.Metrics{Score: 100, Target: 50, ProgressPercent: 50, GaugeFraction: 1, GoalReached: false},
		},
		{
			name:    "zero score",
			answers: domain.Answers{},
			target:  50,
			want:    domain.Metrics{Score: 0, Target: 50, ProgressPercent: 100, GaugeFraction: 0, GoalReached: true},
		},
		{
			name:    "all low under default target",
			answers: answersScoring(40),
			target:  0,
			want:    domain.Metrics{Score: 40, Target: 50, ProgressPercent: 100, GaugeFraction: 0.4, GoalReached: true},
		},
		{
			name:    "gauge capped",
			answers: answersScoring(120),
			target:  60,
			want:    domain.Metrics{Score: 120, Target: 60, ProgressPercent: 50, GaugeFraction: 1, GoalReached: false},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := domain.Score(tt.answers); got != tt.want.Score {
				t.Fatalf("fixture scores %d, want %d", got, tt.want.Score)
			}
			if diff := cmp.Diff(tt.want, domain.Derive(tt.answers, tt.target)); diff != "" {
				t.Fatalf("derive mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
