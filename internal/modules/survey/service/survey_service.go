package service

import (
	"context"

	"go.uber.org/zap"

	"carbontrack/internal/modules/survey/domain"
	surveyout "carbontrack/internal/modules/survey/port/out"
)

type SurveyService struct {
	source surveyout.CatalogSource
	logger *zap.Logger
}

func NewSurveyService(source surveyout.CatalogSource, logger *zap.Logger) *SurveyService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SurveyService{source: source, logger: logger}
}

// Catalog loads and validates the question catalog.
func (s *SurveyService) Catalog(ctx context.Context) (domain.Catalog, error) {
	catalog, err := s.source.LoadCatalog(ctx)
	if err != nil {
		return domain.Catalog{}, err
	}
	if err := catalog.Validate(); err != nil {
		s.logger.Warn("catalog rejected", zap.Error(err))
		return domain.Catalog{}, err
	}
	s.logger.Debug("catalog loaded", zap.Int("steps", len(catalog.Steps)))
	return catalog, nil
}
