package in

import (
	"context"

	"carbontrack/internal/modules/footprint/dto"
	footprintin "carbontrack/internal/modules/footprint/port/in"
)

type CLIHandler struct {
	usecase footprintin.Usecase
}

func NewCLIHandler(usecase footprintin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Score(ctx context.Context, answers map[string]string, target int) (dto.MetricsOutput, error) {
	return h.usecase.Compute(ctx, dto.ComputeInput{Answers: answers, Target: target})
}

func (h CLIHandler) Dashboard(ctx context.Context, answers map[string]string, target int) (dto.DashboardOutput, error) {
	return h.usecase.Dashboard(ctx, dto.DashboardInput{Answers: answers, Target: target})
}

func (h CLIHandler) Report(ctx context.Context, answers map[string]string, target int, render bool, width int) (dto.ReportOutput, error) {
	return h.usecase.Report(ctx, dto.ReportInput{Answers: answers, Target: target, Render: render, Width: width})
}
