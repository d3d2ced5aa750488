package out

import (
	"context"

	"carbontrack/internal/modules/session/domain"
	survey "carbontrack/internal/modules/survey/domain"
)

// SessionStore keeps live sessions. Update and View run fn while holding the
// session, so fn must not retain the pointer.
type SessionStore interface {
	Create(ctx context.Context, session *domain.AppSession) error
	Update(ctx context.Context, id string, fn func(*domain.AppSession) error) error
	View(ctx context.Context, id string, fn func(*domain.AppSession) error) error
	Delete(ctx context.Context, id string) error
}

// SurveyFactory builds a fresh survey from the current catalog.
type SurveyFactory interface {
	NewSurvey(ctx context.Context) (*survey.Survey, error)
}

type EventSink interface {
	Publish(ctx context.Context, sessionID string, events []domain.Event)
}
