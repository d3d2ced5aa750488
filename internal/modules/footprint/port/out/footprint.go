package out

import (
	"context"

	"carbontrack/internal/modules/footprint/domain"
)

// FixtureSource supplies the decorative dashboard data.
type FixtureSource interface {
	Tips(ctx context.Context) ([]domain.Tip, error)
	Leaderboard(ctx context.Context) ([]domain.RankEntry, error)
}

// HistorySource produces the weekly history bars on every call.
type HistorySource interface {
	WeeklyHistory(ctx context.Context) ([]domain.DayBar, error)
}

type ReportRenderer interface {
	Render(ctx context.Context, report domain.Report) (string, error)
}

// TerminalStyler turns a markdown document into styled terminal output.
type TerminalStyler interface {
	Style(document string, width int) (string, error)
}
