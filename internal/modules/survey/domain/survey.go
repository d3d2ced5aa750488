package domain

import (
	"fmt"

	footprint "carbontrack/internal/modules/footprint/domain"
	apperrors "carbontrack/internal/platform/errors"
)

// Survey walks a catalog one step at a time. It advances only past answered
// steps and becomes terminal once the last step is advanced; a finished
// survey is discarded rather than reset.
type Survey struct {
	steps     []Step
	current   int
	answers   footprint.Answers
	completed bool
}

func NewSurvey(catalog Catalog) (*Survey, error) {
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	return &Survey{
		steps:   append([]Step(nil), catalog.Steps...),
		answers: footprint.Answers{},
	}, nil
}

func (s *Survey) Len() int        { return len(s.steps) }
func (s *Survey) Index() int      { return s.current }
func (s *Survey) Current() Step   { return s.steps[s.current] }
func (s *Survey) Completed() bool { return s.completed }

func (s *Survey) IsLastStep() bool {
	return s.current == len(s.steps)-1
}

// Selected returns the answer recorded for the current step.
func (s *Survey) Selected() (footprint.Severity, bool) {
	v, ok := s.answers[s.Current().Category]
	return v, ok
}

func (s *Survey) CanAdvance() bool {
	if s.completed {
		return false
	}
	_, ok := s.Selected()
	return ok
}

func (s *Survey) CanRetreat() bool {
	return !s.completed && s.current > 0
}

// ProgressPercent is the share of steps reached, counting the current one.
func (s *Survey) ProgressPercent() float64 {
	return float64(s.current+1) / float64(len(s.steps)) * 100
}

func (s *Survey) Answers() footprint.Answers {
	return s.answers.Clone()
}

// Answer records severity for the current step, replacing any earlier choice.
func (s *Survey) Answer(category footprint.Category, severity footprint.Severity) error {
	if s.completed {
		return fmt.Errorf("%w: survey already completed", apperrors.ErrInvalidTransition)
	}
	step := s.Current()
	if category != step.Category {
		return fmt.Errorf("%w: current step is %q, not %q", apperrors.ErrInvalidTransition, step.Category, category)
	}
	if err := severity.Validate(); err != nil {
		return err
	}
	if _, ok := step.Option(severity); !ok {
		return fmt.Errorf("%w: step %q has no %q option", apperrors.ErrInvalidInput, step.Category, severity)
	}
	s.answers[category] = severity
	return nil
}

// Advance moves to the next step. On the last step it completes the survey
// and returns a copy of the answers.
func (s *Survey) Advance() (bool, footprint.Answers, error) {
	if !s.CanAdvance() {
		if s.completed {
			return false, nil, fmt.Errorf("%w: survey already completed", apperrors.ErrInvalidTransition)
		}
		return false, nil, fmt.Errorf("%w: step %q has no answer", apperrors.ErrInvalidTransition, s.Current().Category)
	}
	if s.IsLastStep() {
		s.completed = true
		return true, s.answers.Clone(), nil
	}
	s.current++
	return false, nil, nil
}

// Retreat moves back one step keeping every answer. It is a no-op on the
// first step.
func (s *Survey) Retreat() error {
	if s.completed {
		return fmt.Errorf("%w: survey already completed", apperrors.ErrInvalidTransition)
	}
	if s.current > 0 {
		s.current--
	}
	return nil
}
