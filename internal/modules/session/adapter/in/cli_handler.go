package in

import (
	"context"

	footprintdto "carbontrack/internal/modules/footprint/dto"
	sessiondto "carbontrack/internal/modules/session/dto"
	sessionin "carbontrack/internal/modules/session/port/in"
)

type CLIHandler struct {
	usecase sessionin.Usecase
}

func NewCLIHandler(usecase sessionin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Start(ctx context.Context) (sessiondto.SessionOutput, error) {
	return h.usecase.Start(ctx)
}

func (h CLIHandler) Get(ctx context.Context, sessionID string) (sessiondto.SessionOutput, error) {
	return h.usecase.Get(ctx, sessionID)
}

func (h CLIHandler) SubmitCredentials(ctx context.Context, sessionID, identifier, secret string) (sessiondto.TransitionOutput, error) {
	return h.usecase.SubmitCredentials(ctx, sessiondto.CredentialsInput{SessionID: sessionID, Identifier: identifier, Secret: secret})
}

func (h CLIHandler) ToggleRegistrationMode(ctx context.Context, sessionID string) (sessiondto.TransitionOutput, error) {
	return h.usecase.ToggleRegistrationMode(ctx, sessionID)
}

func (h CLIHandler) Answer(ctx context.Context, sessionID, category, severity string) (sessiondto.TransitionOutput, error) {
	return h.usecase.Answer(ctx, sessiondto.AnswerInput{SessionID: sessionID, Category: category, Severity: severity})
}

func (h CLIHandler) Advance(ctx context.Context, sessionID string) (sessiondto.TransitionOutput, error) {
	return h.usecase.Advance(ctx, sessionID)
}

func (h CLIHandler) Retreat(ctx context.Context, sessionID string) (sessiondto.TransitionOutput, error) {
	return h.usecase.Retreat(ctx, sessionID)
}

func (h CLIHandler) Dashboard(ctx context.Context, sessionID string) (footprintdto.DashboardOutput, error) {
	return h.usecase.Dashboard(ctx, sessionID)
}

func (h CLIHandler) End(ctx context.Context, sessionID string) error {
	return h.usecase.End(ctx, sessionID)
}
