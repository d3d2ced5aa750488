package bootstrap_test

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"carbontrack/internal/bootstrap"
	"carbontrack/internal/platform/clock"
	"carbontrack/internal/platform/config"
)

func TestWiredApplicationRunsTheFlow(t *testing.T) {
	t.Parallel()
	cfg := config.Config{TargetFootprint: 50, LogLevel: "info", HistorySeed: 11}
	app, err := bootstrap.NewWithLogger(cfg, clock.Fixed{At: time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)}, zap.NewNop())
	if err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	ctx := context.Background()

	catalog, err := app.SurveyCLI.Catalog(ctx)
	if err != nil || len(catalog.Steps) != 4 {
		t.Fatalf("catalog: %d steps, %v", len(catalog.Steps), err)
	}

	session, err := app.SessionCLI.Start(ctx)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if len(session.SessionID) != 36 {
		t.Fatalf("expected uuid session id, got %q", session.SessionID)
	}
	if _, err := app.SessionCLI.SubmitCredentials(ctx, session.SessionID, "ana@example.com", "pw"); err != nil {
		t.Fatalf("login: %v", err)
	}
	for _, step := range catalog.Steps {
		if _, err := app.SessionCLI.Answer(ctx, session.SessionID, step.Category, "high"); err != nil {
			t.Fatalf("answer %s: %v", step.Category, err)
		}
		if _, err := app.SessionCLI.Advance(ctx, session.SessionID); err != nil {
			t.Fatalf("advance %s: %v", step.Category, err)
		}
	}
	board, err := app.SessionCLI.Dashboard(ctx, session.SessionID)
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if board.Metrics.Score != 120 || board.Metrics.GoalReached {
		t.Fatalf("unexpected metrics: %+v", board.Metrics)
	}

	score, err := app.FootprintCLI.Score(ctx, map[string]string{"diet": "medium"}, 0)
	if err != nil || score.Score != 20 || score.Target != 50 {
		t.Fatalf("score: %+v %v", score, err)
	}
}
