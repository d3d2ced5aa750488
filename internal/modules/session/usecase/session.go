package usecase

import (
	"context"
	"fmt"

	footprint "carbontrack/internal/modules/footprint/domain"
	footprintdto "carbontrack/internal/modules/footprint/dto"
	footprintin "carbontrack/internal/modules/footprint/port/in"
	"carbontrack/internal/modules/session/domain"
	sessiondto "carbontrack/internal/modules/session/dto"
	sessionin "carbontrack/internal/modules/session/port/in"
	sessionout "carbontrack/internal/modules/session/port/out"
	"carbontrack/internal/modules/session/service"
	apperrors "carbontrack/internal/platform/errors"
)

type Interactor struct {
	svc       *service.SessionService
	store     sessionout.SessionStore
	footprint footprintin.Usecase
	events    sessionout.EventSink
}

func NewInteractor(svc *service.SessionService, store sessionout.SessionStore, footprint footprintin.Usecase, events sessionout.EventSink) sessionin.Usecase {
	return &Interactor{svc: svc, store: store, footprint: footprint, events: events}
}

func (i *Interactor) Start(ctx context.Context) (sessiondto.SessionOutput, error) {
	session := i.svc.New()
	if err := i.store.Create(ctx, session); err != nil {
		return sessiondto.SessionOutput{}, err
	}
	return toSessionOutput(session), nil
}

func (i *Interactor) Get(ctx context.Context, sessionID string) (sessiondto.SessionOutput, error) {
	var out sessiondto.SessionOutput
	err := i.store.View(ctx, sessionID, func(s *domain.AppSession) error {
		out = toSessionOutput(s)
		return nil
	})
	return out, err
}

func (i *Interactor) SubmitCredentials(ctx context.Context, input sessiondto.CredentialsInput) (sessiondto.TransitionOutput, error) {
	return i.transition(ctx, input.SessionID, func(s *domain.AppSession) ([]domain.Event, error) {
		return i.svc.Login(ctx, s, input.Identifier, input.Secret)
	})
}

func (i *Interactor) ToggleRegistrationMode(ctx context.Context, sessionID string) (sessiondto.TransitionOutput, error) {
	return i.transition(ctx, sessionID, func(s *domain.AppSession) ([]domain.Event, error) {
		return nil, s.ToggleRegistrationMode()
	})
}

func (i *Interactor) Answer(ctx context.Context, input sessiondto.AnswerInput) (sessiondto.TransitionOutput, error) {
	category, err := footprint.ParseCategory(input.Category)
	if err != nil {
		return sessiondto.TransitionOutput{}, err
	}
	severity, err := footprint.ParseSeverity(input.Severity)
	if err != nil {
		return sessiondto.TransitionOutput{}, err
	}
	return i.transition(ctx, input.SessionID, func(s *domain.AppSession) ([]domain.Event, error) {
		return nil, s.Answer(category, severity)
	})
}

func (i *Interactor) Advance(ctx context.Context, sessionID string) (sessiondto.TransitionOutput, error) {
	return i.transition(ctx, sessionID, func(s *domain.AppSession) ([]domain.Event, error) {
		return s.Advance()
	})
}

func (i *Interactor) Retreat(ctx context.Context, sessionID string) (sessiondto.TransitionOutput, error) {
	return i.transition(ctx, sessionID, func(s *domain.AppSession) ([]domain.Event, error) {
		return nil, s.Retreat()
	})
}

func (i *Interactor) Dashboard(ctx context.Context, sessionID string) (footprintdto.DashboardOutput, error) {
	if i.footprint == nil {
		return footprintdto.DashboardOutput{}, fmt.Errorf("footprint usecase is not configured")
	}
	var answers map[string]string
	err := i.store.View(ctx, sessionID, func(s *domain.AppSession) error {
		if s.Screen != domain.ScreenDashboard {
			return fmt.Errorf("%w: dashboard requested on %s screen", apperrors.ErrInvalidTransition, s.Screen)
		}
		answers = s.Answers.Strings()
		return nil
	})
	if err != nil {
		return footprintdto.DashboardOutput{}, err
	}
	return i.footprint.Dashboard(ctx, footprintdto.DashboardInput{Answers: answers})
}

func (i *Interactor) End(ctx context.Context, sessionID string) error {
	return i.store.Delete(ctx, sessionID)
}

// transition applies fn under the store lock and publishes the resulting
// events once the session is released. A failed fn leaves no events.
func (i *Interactor) transition(ctx context.Context, sessionID string, fn func(*domain.AppSession) ([]domain.Event, error)) (sessiondto.TransitionOutput, error) {
	var (
		events []domain.Event
		out    sessiondto.SessionOutput
	)
	err := i.store.Update(ctx, sessionID, func(s *domain.AppSession) error {
		var err error
		events, err = fn(s)
		if err != nil {
			return err
		}
		out = toSessionOutput(s)
		return nil
	})
	if err != nil {
		return sessiondto.TransitionOutput{}, err
	}
	if i.events != nil && len(events) > 0 {
		i.events.Publish(ctx, sessionID, events)
	}
	return sessiondto.TransitionOutput{Session: out, Events: toEventOutputs(events)}, nil
}

func toSessionOutput(s *domain.AppSession) sessiondto.SessionOutput {
	out := sessiondto.SessionOutput{
		SessionID:        s.ID,
		Screen:           string(s.Screen),
		RegistrationMode: s.RegistrationMode,
		Identifier:       s.Identifier,
		StartedAt:        s.StartedAt,
	}
	if s.Answers != nil {
		out.Answers = s.Answers.Strings()
	}
	if sv := s.Survey(); sv != nil {
		step := sv.Current()
		view := &sessiondto.SurveyOutput{
			Index:           sv.Index(),
			Total:           sv.Len(),
			Category:        string(step.Category),
			Title:           step.Title,
			Subtitle:        step.Subtitle,
			Options:         make([]sessiondto.OptionOutput, 0, len(step.Options)),
			CanAdvance:      sv.CanAdvance(),
			CanRetreat:      sv.CanRetreat(),
			IsLastStep:      sv.IsLastStep(),
			ProgressPercent: sv.ProgressPercent(),
		}
		if sel, ok := sv.Selected(); ok {
			view.Selected = string(sel)
		}
		for _, o := range step.Options {
			view.Options = append(view.Options, sessiondto.OptionOutput{ID: o.ID, Label: o.Label, Severity: string(o.Severity)})
		}
		out.Survey = view
	}
	return out
}

func toEventOutputs(events []domain.Event) []sessiondto.EventOutput {
	out := make([]sessiondto.EventOutput, 0, len(events))
	for _, e := range events {
		out = append(out, sessiondto.EventOutput{
			Kind:         string(e.Kind),
			Screen:       string(e.Screen),
			Title:        e.Title,
			Message:      e.Message,
			Identifier:   e.Identifier,
			Registration: e.Registration,
		})
	}
	return out
}
