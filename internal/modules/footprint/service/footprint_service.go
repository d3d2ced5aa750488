package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"carbontrack/internal/modules/footprint/domain"
	footprintout "carbontrack/internal/modules/footprint/port/out"
)

type FootprintService struct {
	fixtures footprintout.FixtureSource
	history  footprintout.HistorySource
	renderer footprintout.ReportRenderer
	styler   footprintout.TerminalStyler
	logger   *zap.Logger
}

func NewFootprintService(
	fixtures footprintout.FixtureSource,
	history footprintout.HistorySource,
	renderer footprintout.ReportRenderer,
	styler footprintout.TerminalStyler,
	logger *zap.Logger,
) *FootprintService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FootprintService{
		fixtures: fixtures,
		history:  history,
		renderer: renderer,
		styler:   styler,
		logger:   logger,
	}
}

func (s *FootprintService) Metrics(answers domain.Answers, target int) domain.Metrics {
	m := domain.Derive(answers, target)
	s.logger.Debug("footprint derived",
		zap.Int("answers", len(answers)),
		zap.Int("score", m.Score),
		zap.Int("target", m.Target),
		zap.Float64("progress", m.ProgressPercent))
	return m
}

func (s *FootprintService) Dashboard(ctx context.Context, answers domain.Answers, target int) (domain.Dashboard, error) {
	board := domain.Dashboard{Metrics: s.Metrics(answers, target)}
	if s.fixtures != nil {
		tips, err := s.fixtures.Tips(ctx)
		if err != nil {
			return domain.Dashboard{}, fmt.Errorf("load tips: %w", err)
		}
		ranking, err := s.fixtures.Leaderboard(ctx)
		if err != nil {
			return domain.Dashboard{}, fmt.Errorf("load leaderboard: %w", err)
		}
		board.Tips = tips
		board.Ranking = ranking
	}
	if s.history != nil {
		week, err := s.history.WeeklyHistory(ctx)
		if err != nil {
			return domain.Dashboard{}, fmt.Errorf("load weekly history: %w", err)
		}
		board.Week = week
	}
	return board, nil
}

func (s *FootprintService) Report(ctx context.Context, answers domain.Answers, target int, styled bool, width int) (string, domain.Metrics, error) {
	if s.renderer == nil {
		return "", domain.Metrics{}, fmt.Errorf("report renderer is not configured")
	}
	report := domain.Report{Answers: answers, Metrics: s.Metrics(answers, target)}
	if s.fixtures != nil {
		tips, err := s.fixtures.Tips(ctx)
		if err != nil {
			return "", domain.Metrics{}, fmt.Errorf("load tips: %w", err)
		}
		report.Tips = tips
	}
	content, err := s.renderer.Render(ctx, report)
	if err != nil {
		return "", domain.Metrics{}, err
	}
	if styled {
		if s.styler == nil {
			return "", domain.Metrics{}, fmt.Errorf("terminal styler is not configured")
		}
		content, err = s.styler.Style(content, width)
		if err != nil {
			return "", domain.Metrics{}, err
		}
	}
	return content, report.Metrics, nil
}
