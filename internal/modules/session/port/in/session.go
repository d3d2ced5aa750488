package in

import (
	"context"

	footprintdto "carbontrack/internal/modules/footprint/dto"
	"carbontrack/internal/modules/session/dto"
)

type Usecase interface {
	Start(ctx context.Context) (dto.SessionOutput, error)
	Get(ctx context.Context, sessionID string) (dto.SessionOutput, error)
	SubmitCredentials(ctx context.Context, input dto.CredentialsInput) (dto.TransitionOutput, error)
	ToggleRegistrationMode(ctx context.Context, sessionID string) (dto.TransitionOutput, error)
	Answer(ctx context.Context, input dto.AnswerInput) (dto.TransitionOutput, error)
	Advance(ctx context.Context, sessionID string) (dto.TransitionOutput, error)
	Retreat(ctx context.Context, sessionID string) (dto.TransitionOutput, error)
	Dashboard(ctx context.Context, sessionID string) (footprintdto.DashboardOutput, error)
	End(ctx context.Context, sessionID string) error
}
