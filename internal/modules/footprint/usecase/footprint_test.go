package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	footprintout "carbontrack/internal/modules/footprint/adapter/out"
	"carbontrack/internal/modules/footprint/domain"
	"carbontrack/internal/modules/footprint/dto"
	footprintin "carbontrack/internal/modules/footprint/port/in"
	"carbontrack/internal/modules/footprint/service"
	"carbontrack/internal/modules/footprint/usecase"
	"carbontrack/internal/platform/clock"
	apperrors "carbontrack/internal/platform/errors"
)

type failingFixtures struct{}

func (failingFixtures) Tips(context.Context) ([]domain.Tip, error) {
	return nil, errors.New("fixtures offline")
}
func (failingFixtures) Leaderboard(context.Context) ([]domain.RankEntry, error) { return nil, nil }

type upperStyler struct{ width int }

func (u *upperStyler) Style(document string, width int) (string, error) {
	u.width = width
	return strings.ToUpper(document), nil
}

func newInteractor(t *testing.T, target int) (*upperStyler, footprintin.Usecase) {
	t.Helper()
	fixtures, err := footprintout.NewYAMLFixtureSource("")
	if err != nil {
		t.Fatalf("fixtures: %v", err)
	}
	styler := &upperStyler{}
	svc := service.NewFootprintService(
		fixtures,
		footprintout.NewRandomHistorySource(clock.Fixed{At: time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC)}, 7),
		footprintout.NewMarkdownReportRenderer(),
		styler,
		nil,
	)
	return styler, usecase.NewInteractor(svc, target)
}

func TestComputeUsesConfiguredTargetAndRejectsUnknownValues(t *testing.T) {
	t.Parallel()
	_, uc := newInteractor(t, 0)

	out, err := uc.Compute(context.Background(), dto.ComputeInput{Answers: map[string]string{
		"transport": "high", "energy": "high", "diet": "high", "consumption": "high",
	}})
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if out.Score != 120 || out.Target != domain.DefaultTarget || out.GoalReached {
		t.Fatalf("unexpected metrics: %+v", out)
	}

	out, err = uc.Compute(context.Background(), dto.ComputeInput{Answers: map[string]string{"transport": "medium"}, Target: 10})
	if err != nil {
		t.Fatalf("compute with target: %v", err)
	}
	if out.Target != 10 || out.ProgressPercent != 50 {
		t.Fatalf("expected explicit target to apply, got %+v", out)
	}

	if _, err := uc.Compute(context.Background(), dto.ComputeInput{Answers: map[string]string{"transport": "huge"}}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestDashboardCombinesMetricsAndFixtures(t *testing.T) {
	t.Parallel()
	_, uc := newInteractor(t, 50)
	out, err := uc.Dashboard(context.Background(), dto.DashboardInput{Answers: map[string]string{
		"transport": "low", "energy": "low", "diet": "low", "consumption": "low",
	}})
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if out.Metrics.Score != 40 || out.Metrics.ProgressPercent != 100 || !out.Metrics.GoalReached {
		t.Fatalf("unexpected metrics: %+v", out.Metrics)
	}
	if len(out.Tips) != 3 || len(out.Ranking) != 5 || len(out.Week) != 7 {
		t.Fatalf("unexpected fixture sizes: %d tips, %d ranking, %d week", len(out.Tips), len(out.Ranking), len(out.Week))
	}
	if out.Ranking[0].Position != 1 || out.Ranking[4].Position != 5 {
		t.Fatalf("positions must be 1-based: %+v", out.Ranking)
	}
	if !out.Week[0].IsToday {
		t.Fatalf("monday should be flagged as today: %+v", out.Week)
	}
}

func TestDashboardPropagatesFixtureErrors(t *testing.T) {
	t.Parallel()
	svc := service.NewFootprintService(failingFixtures{}, nil, nil, nil, nil)
	uc := usecase.NewInteractor(svc, 50)
	if _, err := uc.Dashboard(context.Background(), dto.DashboardInput{}); err == nil || !strings.Contains(err.Error(), "fixtures offline") {
		t.Fatalf("expected fixture error, got %v", err)
	}
	if _, err := uc.Report(context.Background(), dto.ReportInput{}); err == nil {
		t.Fatalf("report without renderer should fail")
	}
}

func TestReportPlainAndStyled(t *testing.T) {
	t.Parallel()
	styler, uc := newInteractor(t, 50)
	answers := map[string]string{"transport": "high", "energy": "medium", "diet": "medium", "consumption": "medium"}

	plain, err := uc.Report(context.Background(), dto.ReportInput{Answers: answers})
	if err != nil {
		t.Fatalf("plain report: %v", err)
	}
	if plain.Metrics.Score != 90 || !strings.HasPrefix(plain.Content, "---\n") || !strings.Contains(plain.Content, "Em progresso") {
		t.Fatalf("unexpected plain report: %+v", plain)
	}

	styled, err := uc.Report(context.Background(), dto.ReportInput{Answers: answers, Render: true, Width: 72})
	if err != nil {
		t.Fatalf("styled report: %v", err)
	}
	if styled.Content != strings.ToUpper(plain.Content) || styler.width != 72 {
		t.Fatalf("expected styler to receive the plain report at width 72")
	}
}
