package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"carbontrack/internal/modules/session/domain"
	sessionout "carbontrack/internal/modules/session/port/out"
	"carbontrack/internal/platform/clock"
	"carbontrack/internal/platform/id"
)

type SessionService struct {
	clock   clock.Clock
	idGen   id.Generator
	surveys sessionout.SurveyFactory
	logger  *zap.Logger
}

func NewSessionService(clock clock.Clock, idGen id.Generator, surveys sessionout.SurveyFactory, logger *zap.Logger) *SessionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionService{clock: clock, idGen: idGen, surveys: surveys, logger: logger}
}

func (s *SessionService) New() *domain.AppSession {
	session := domain.NewAppSession(s.idGen.New(), s.clock.Now())
	s.logger.Debug("session created", zap.String("session_id", session.ID))
	return session
}

// Login runs the demo login and hands the session a fresh survey.
func (s *SessionService) Login(ctx context.Context, session *domain.AppSession, identifier, secret string) ([]domain.Event, error) {
	if s.surveys == nil {
		return nil, fmt.Errorf("survey factory is not configured")
	}
	fresh, err := s.surveys.NewSurvey(ctx)
	if err != nil {
		return nil, fmt.Errorf("new survey: %w", err)
	}
	events, err := session.SubmitCredentials(identifier, secret, fresh)
	if err != nil {
		return nil, err
	}
	s.logger.Info("login accepted",
		zap.String("session_id", session.ID),
		zap.Bool("registration", session.RegistrationMode))
	return events, nil
}
