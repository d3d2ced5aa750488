package domain_test

import (
	"errors"
	"testing"

	"carbontrack/internal/modules/footprint/domain"
	apperrors "carbontrack/internal/platform/errors"
)

func TestScoreMatchesWeightedCounts(t *testing.T) {
	t.Parallel()
	// Every assignment of 0..4 categories to the three severities.
	options := append([]domain.Severity{""}, domain.Severities...)
	var walk func(i int, answers domain.Answers)
	walk = func(i int, answers domain.Answers) {
		if i == len(domain.Categories) {
			lows, mediums, highs := 0, 0, 0
			for _, s := range answers {
				switch s {
				case domain.SeverityLow:
					lows++
				case domain.SeverityMedium:
					mediums++
				case domain.SeverityHigh:
					highs++
				}
			}
			want := 10*lows + 20*mediums + 30*highs
			if got := domain.Score(answers); got != want {
				t.Fatalf("score(%v) = %d, want %d", answers, got, want)
			}
			return
		}
		for _, s := range options {
			next := answers.Clone()
			if s != "" {
				next[domain.Categories[i]] = s
			}
			walk(i+1, next)
		}
	}
	walk(0, domain.Answers{})
}

func TestScoreBounds(t *testing.T) {
	t.Parallel()
	if got := domain.Score(domain.Answers{}); got != 0 {
		t.Fatalf("empty answers must score 0, got %d", got)
	}
	all := domain.Answers{
		domain.CategoryTransport:   domain.SeverityHigh,
		domain.CategoryEnergy:      domain.SeverityHigh,
		domain.CategoryDiet:        domain.SeverityHigh,
		domain.CategoryConsumption: domain.SeverityHigh,
	}
	if got := domain.Score(all); got != 120 || got != domain.MaxScore(len(domain.Categories)) {
		t.Fatalf("all high must score 120, got %d", got)
	}
}

func TestParseAnswers(t *testing.T) {
	t.Parallel()
	answers, err := domain.ParseAnswers(map[string]string{"Transport": " HIGH ", "diet": "low"})
	if err != nil {
		t.Fatalf("parse answers: %v", err)
	}
	if answers[domain.CategoryTransport] != domain.SeverityHigh || answers[domain.CategoryDiet] != domain.SeverityLow {
		t.Fatalf("unexpected answers %v", answers)
	}
	if _, err := domain.ParseAnswers(map[string]string{"housing": "low"}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("unknown category should be invalid input, got %v", err)
	}
	if _, err := domain.ParseAnswers(map[string]string{"diet": "extreme"}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("unknown severity should be invalid input, got %v", err)
	}
}
