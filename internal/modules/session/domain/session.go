package domain

import (
	"fmt"
	"time"

	footprint "carbontrack/internal/modules/footprint/domain"
	survey "carbontrack/internal/modules/survey/domain"
	apperrors "carbontrack/internal/platform/errors"
)

type Screen string

const (
	ScreenLogin     Screen = "login"
	ScreenSurvey    Screen = "survey"
	ScreenDashboard Screen = "dashboard"
)

type EventKind string

const (
	EventScreenChanged     EventKind = "screen_changed"
	EventWelcome           EventKind = "welcome"
	EventProfileConfigured EventKind = "profile_configured"
)

const (
	WelcomeLoginTitle    = "Login realizado!"
	WelcomeRegisterTitle = "Conta criada!"
	WelcomeMessageFormat = "Bem-vindo ao Carbon Tracker, %s"
	ProfileTitle         = "Perfil configurado!"
	ProfileMessage       = "Agora você pode acompanhar sua pegada de carbono"
)

// Event is a notification for the presentation layer. Welcome events also
// carry who logged in and whether it was a registration.
type Event struct {
	Kind         EventKind
	Screen       Screen
	Title        string
	Message      string
	Identifier   string
	Registration bool
}

// AppSession sequences the screens of one user interaction:
// login -> survey -> dashboard. There is no way back from the dashboard.
// Answers are set once, when the survey completes; the live survey exists
// only while the session is on the survey screen.
type AppSession struct {
	ID               string
	Screen           Screen
	RegistrationMode bool
	Identifier       string
	Answers          footprint.Answers
	StartedAt        time.Time

	survey *survey.Survey
}

func NewAppSession(id string, startedAt time.Time) *AppSession {
	return &AppSession{ID: id, Screen: ScreenLogin, StartedAt: startedAt}
}

// Survey returns the live survey, nil outside the survey screen.
func (s *AppSession) Survey() *survey.Survey {
	return s.survey
}

// SubmitCredentials is a demo login: any credentials are accepted. The secret
// is never stored.
func (s *AppSession) SubmitCredentials(identifier, _ string, fresh *survey.Survey) ([]Event, error) {
	if s.Screen != ScreenLogin {
		return nil, fmt.Errorf("%w: credentials submitted on %s screen", apperrors.ErrInvalidTransition, s.Screen)
	}
	if fresh == nil || fresh.Completed() {
		return nil, fmt.Errorf("%w: a fresh survey is required", apperrors.ErrInvalidInput)
	}
	title := WelcomeLoginTitle
	if s.RegistrationMode {
		title = WelcomeRegisterTitle
	}
	s.Identifier = identifier
	s.survey = fresh
	s.Screen = ScreenSurvey
	return []Event{
		{
			Kind:         EventWelcome,
			Screen:       s.Screen,
			Title:        title,
			Message:      fmt.Sprintf(WelcomeMessageFormat, identifier),
			Identifier:   identifier,
			Registration: s.RegistrationMode,
		},
		{Kind: EventScreenChanged, Screen: s.Screen},
	}, nil
}

func (s *AppSession) ToggleRegistrationMode() error {
	if s.Screen != ScreenLogin {
		return fmt.Errorf("%w: registration mode only toggles on login", apperrors.ErrInvalidTransition)
	}
	s.RegistrationMode = !s.RegistrationMode
	return nil
}

// CompleteSurvey stores answers and moves to the dashboard.
func (s *AppSession) CompleteSurvey(answers footprint.Answers) ([]Event, error) {
	if s.Screen != ScreenSurvey {
		return nil, fmt.Errorf("%w: survey completed on %s screen", apperrors.ErrInvalidTransition, s.Screen)
	}
	s.Answers = answers.Clone()
	s.survey = nil
	s.Screen = ScreenDashboard
	return []Event{
		{Kind: EventProfileConfigured, Screen: s.Screen, Title: ProfileTitle, Message: ProfileMessage},
		{Kind: EventScreenChanged, Screen: s.Screen},
	}, nil
}

func (s *AppSession) Answer(category footprint.Category, severity footprint.Severity) error {
	sv, err := s.liveSurvey()
	if err != nil {
		return err
	}
	return sv.Answer(category, severity)
}

// Advance moves the survey forward; advancing past the last step completes
// the survey and the session.
func (s *AppSession) Advance() ([]Event, error) {
	sv, err := s.liveSurvey()
	if err != nil {
		return nil, err
	}
	done, answers, err := sv.Advance()
	if err != nil || !done {
		return nil, err
	}
	return s.CompleteSurvey(answers)
}

func (s *AppSession) Retreat() error {
	sv, err := s.liveSurvey()
	if err != nil {
		return err
	}
	return sv.Retreat()
}

func (s *AppSession) liveSurvey() (*survey.Survey, error) {
	if s.Screen != ScreenSurvey || s.survey == nil {
		return nil, fmt.Errorf("%w: no survey on %s screen", apperrors.ErrInvalidTransition, s.Screen)
	}
	return s.survey, nil
}
