package usecase

import (
	"context"

	"carbontrack/internal/modules/survey/dto"
	surveyin "carbontrack/internal/modules/survey/port/in"
	"carbontrack/internal/modules/survey/service"
)

type Interactor struct {
	svc *service.SurveyService
}

func NewInteractor(svc *service.SurveyService) surveyin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Catalog(ctx context.Context) (dto.CatalogOutput, error) {
	catalog, err := i.svc.Catalog(ctx)
	if err != nil {
		return dto.CatalogOutput{}, err
	}
	out := dto.CatalogOutput{Steps: make([]dto.StepOutput, 0, len(catalog.Steps))}
	for _, step := range catalog.Steps {
		s := dto.StepOutput{
			Category: string(step.Category),
			Title:    step.Title,
			Subtitle: step.Subtitle,
			Options:  make([]dto.OptionOutput, 0, len(step.Options)),
		}
		for _, o := range step.Options {
			s.Options = append(s.Options, dto.OptionOutput{ID: o.ID, Label: o.Label, Severity: string(o.Severity)})
		}
		out.Steps = append(out.Steps, s)
	}
	return out, nil
}
