package in

import (
	"context"

	"carbontrack/internal/modules/footprint/dto"
)

type Usecase interface {
	Compute(ctx context.Context, input dto.ComputeInput) (dto.MetricsOutput, error)
	Dashboard(ctx context.Context, input dto.DashboardInput) (dto.DashboardOutput, error)
	Report(ctx context.Context, input dto.ReportInput) (dto.ReportOutput, error)
}
