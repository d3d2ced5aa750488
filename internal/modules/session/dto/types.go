package dto

import "time"

type OptionOutput struct {
	ID       string
	Label    string
	Severity string
}

type SurveyOutput struct {
	Index           int
	Total           int
	Category        string
	Title           string
	Subtitle        string
	Options         []OptionOutput
	Selected        string
	CanAdvance      bool
	CanRetreat      bool
	IsLastStep      bool
	ProgressPercent float64
}

type SessionOutput struct {
	SessionID        string
	Screen           string
	RegistrationMode bool
	Identifier       string
	StartedAt        time.Time
	Survey           *SurveyOutput
	Answers          map[string]string
}

type EventOutput struct {
	Kind         string
	Screen       string
	Title        string
	Message      string
	Identifier   string
	Registration bool
}

type TransitionOutput struct {
	Session SessionOutput
	Events  []EventOutput
}

type CredentialsInput struct {
	SessionID  string
	Identifier string
	Secret     string
}

type AnswerInput struct {
	SessionID string
	Category  string
	Severity  string
}
