package usecase

import (
	"context"

	"carbontrack/internal/modules/footprint/domain"
	"carbontrack/internal/modules/footprint/dto"
	footprintin "carbontrack/internal/modules/footprint/port/in"
	"carbontrack/internal/modules/footprint/service"
)

type Interactor struct {
	svc    *service.FootprintService
	target int
}

// NewInteractor serves footprint queries; target applies whenever an input
// leaves its own target unset.
func NewInteractor(svc *service.FootprintService, target int) footprintin.Usecase {
	if target <= 0 {
		target = domain.DefaultTarget
	}
	return &Interactor{svc: svc, target: target}
}

func (i *Interactor) Compute(_ context.Context, input dto.ComputeInput) (dto.MetricsOutput, error) {
	answers, err := domain.ParseAnswers(input.Answers)
	if err != nil {
		return dto.MetricsOutput{}, err
	}
	return toMetricsOutput(i.svc.Metrics(answers, i.targetFor(input.Target))), nil
}

func (i *Interactor) Dashboard(ctx context.Context, input dto.DashboardInput) (dto.DashboardOutput, error) {
	answers, err := domain.ParseAnswers(input.Answers)
	if err != nil {
		return dto.DashboardOutput{}, err
	}
	board, err := i.svc.Dashboard(ctx, answers, i.targetFor(input.Target))
	if err != nil {
		return dto.DashboardOutput{}, err
	}

	out := dto.DashboardOutput{
		Metrics: toMetricsOutput(board.Metrics),
		Tips:    make([]dto.TipOutput, 0, len(board.Tips)),
		Ranking: make([]dto.RankOutput, 0, len(board.Ranking)),
		Week:    make([]dto.DayOutput, 0, len(board.Week)),
	}
	for _, tip := range board.Tips {
		out.Tips = append(out.Tips, dto.TipOutput{
			ID:          tip.ID,
			Category:    string(tip.Category),
			Title:       tip.Title,
			Description: tip.Description,
			Impact:      tip.Impact,
		})
	}
	for idx, r := range board.Ranking {
		out.Ranking = append(out.Ranking, dto.RankOutput{
			Position:    idx + 1,
			Name:        r.Name,
			Score:       r.Score,
			Avatar:      r.Avatar,
			Medal:       r.Medal,
			CurrentUser: r.CurrentUser,
		})
	}
	for _, d := range board.Week {
		out.Week = append(out.Week, dto.DayOutput{Label: d.Label, Percent: d.Percent, IsToday: d.IsToday})
	}
	return out, nil
}

func (i *Interactor) Report(ctx context.Context, input dto.ReportInput) (dto.ReportOutput, error) {
	answers, err := domain.ParseAnswers(input.Answers)
	if err != nil {
		return dto.ReportOutput{}, err
	}
	content, metrics, err := i.svc.Report(ctx, answers, i.targetFor(input.Target), input.Render, input.Width)
	if err != nil {
		return dto.ReportOutput{}, err
	}
	return dto.ReportOutput{Content: content, Metrics: toMetricsOutput(metrics)}, nil
}

func (i *Interactor) targetFor(requested int) int {
	if requested > 0 {
		return requested
	}
	return i.target
}

func toMetricsOutput(m domain.Metrics) dto.MetricsOutput {
	return dto.MetricsOutput{
		Score:           m.Score,
		Target:          m.Target,
		ProgressPercent: m.ProgressPercent,
		GaugeFraction:   m.GaugeFraction,
		GoalReached:     m.GoalReached,
	}
}
