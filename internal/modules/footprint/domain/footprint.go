package domain

import (
	"fmt"
	"strings"

	apperrors "carbontrack/internal/platform/errors"
)

// Severity ranks the impact of a habit. Lower is better.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

var Severities = []Severity{SeverityLow, SeverityMedium, SeverityHigh}

func (s Severity) Validate() error {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh:
		return nil
	default:
		return fmt.Errorf("%w: unsupported severity %q", apperrors.ErrInvalidInput, string(s))
	}
}

// Weight is the footprint contribution of one answer.
func (s Severity) Weight() int {
	switch s {
	case SeverityHigh:
		return 30
	case SeverityMedium:
		return 20
	case SeverityLow:
		return 10
	default:
		return 0
	}
}

func ParseSeverity(raw string) (Severity, error) {
	s := Severity(strings.ToLower(strings.TrimSpace(raw)))
	if err := s.Validate(); err != nil {
		return "", err
	}
	return s, nil
}

type Category string

const (
	CategoryTransport   Category = "transport"
	CategoryEnergy      Category = "energy"
	CategoryDiet        Category = "diet"
	CategoryConsumption Category = "consumption"
)

// Categories lists the fixed survey topics in survey order.
var Categories = []Category{CategoryTransport, CategoryEnergy, CategoryDiet, CategoryConsumption}

func (c Category) Validate() error {
	switch c {
	case CategoryTransport, CategoryEnergy, CategoryDiet, CategoryConsumption:
		return nil
	default:
		return fmt.Errorf("%w: unsupported category %q", apperrors.ErrInvalidInput, string(c))
	}
}

// Label is the display name used by the survey and reports.
func (c Category) Label() string {
	switch c {
	case CategoryTransport:
		return "Transporte"
	case CategoryEnergy:
		return "Energia"
	case CategoryDiet:
		return "Alimentação"
	case CategoryConsumption:
		return "Consumo"
	default:
		return string(c)
	}
}

func ParseCategory(raw string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(raw)))
	if err := c.Validate(); err != nil {
		return "", err
	}
	return c, nil
}

// Answers holds at most one severity per category.
type Answers map[Category]Severity

func (a Answers) Clone() Answers {
	out := make(Answers, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// ParseAnswers converts loosely typed category/severity pairs, rejecting
// unknown keys or values.
func ParseAnswers(raw map[string]string) (Answers, error) {
	out := make(Answers, len(raw))
	for k, v := range raw {
		c, err := ParseCategory(k)
		if err != nil {
			return nil, err
		}
		s, err := ParseSeverity(v)
		if err != nil {
			return nil, err
		}
		out[c] = s
	}
	return out, nil
}

func (a Answers) Strings() map[string]string {
	out := make(map[string]string, len(a))
	for k, v := range a {
		out[string(k)] = string(v)
	}
	return out
}

// Score sums the weights of all answers. An empty set scores zero.
func Score(answers Answers) int {
	total := 0
	for _, s := range answers {
		total += s.Weight()
	}
	return total
}

// MaxScore is the worst possible footprint for n answered categories.
func MaxScore(n int) int {
	return SeverityHigh.Weight() * n
}
