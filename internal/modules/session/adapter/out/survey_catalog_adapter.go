package out

import (
	"context"

	footprint "carbontrack/internal/modules/footprint/domain"
	sessionout "carbontrack/internal/modules/session/port/out"
	survey "carbontrack/internal/modules/survey/domain"
	surveyin "carbontrack/internal/modules/survey/port/in"
)

type SurveyCatalogAdapter struct {
	surveys surveyin.Usecase
}

func NewSurveyCatalogAdapter(surveys surveyin.Usecase) sessionout.SurveyFactory {
	return &SurveyCatalogAdapter{surveys: surveys}
}

func (a *SurveyCatalogAdapter) NewSurvey(ctx context.Context) (*survey.Survey, error) {
	out, err := a.surveys.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	catalog := survey.Catalog{Steps: make([]survey.Step, 0, len(out.Steps))}
	for _, s := range out.Steps {
		step := survey.Step{
			Category: footprint.Category(s.Category),
			Title:    s.Title,
			Subtitle: s.Subtitle,
			Options:  make([]survey.Option, 0, len(s.Options)),
		}
		for _, o := range s.Options {
			step.Options = append(step.Options, survey.Option{ID: o.ID, Label: o.Label, Severity: footprint.Severity(o.Severity)})
		}
		catalog.Steps = append(catalog.Steps, step)
	}
	return survey.NewSurvey(catalog)
}
