package domain

import (
	"fmt"
	"strings"

	footprint "carbontrack/internal/modules/footprint/domain"
	apperrors "carbontrack/internal/platform/errors"
)

// Option is one selectable answer of a survey step.
type Option struct {
	ID       string             `yaml:"id"`
	Label    string             `yaml:"label"`
	Severity footprint.Severity `yaml:"severity"`
}

// Step asks about a single category.
type Step struct {
	Category footprint.Category `yaml:"category"`
	Title    string             `yaml:"title"`
	Subtitle string             `yaml:"subtitle"`
	Options  []Option           `yaml:"options"`
}

// Option returns the step option carrying severity, if any.
func (s Step) Option(severity footprint.Severity) (Option, bool) {
	for _, o := range s.Options {
		if o.Severity == severity {
			return o, true
		}
	}
	return Option{}, false
}

type Catalog struct {
	Steps []Step `yaml:"steps"`
}

// Validate requires at least one step, one step per category at most, and
// options whose severities are all known.
func (c Catalog) Validate() error {
	if len(c.Steps) == 0 {
		return fmt.Errorf("%w: catalog has no steps", apperrors.ErrInvalidInput)
	}
	seen := make(map[footprint.Category]bool, len(c.Steps))
	for i, step := range c.Steps {
		if err := step.Category.Validate(); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
		if seen[step.Category] {
			return fmt.Errorf("%w: duplicate step for category %q", apperrors.ErrInvalidInput, step.Category)
		}
		seen[step.Category] = true
		if strings.TrimSpace(step.Title) == "" {
			return fmt.Errorf("%w: step %d has no title", apperrors.ErrInvalidInput, i)
		}
		if len(step.Options) == 0 {
			return fmt.Errorf("%w: step %q has no options", apperrors.ErrInvalidInput, step.Category)
		}
		for _, o := range step.Options {
			if err := o.Severity.Validate(); err != nil {
				return fmt.Errorf("step %q option %q: %w", step.Category, o.ID, err)
			}
		}
	}
	return nil
}
