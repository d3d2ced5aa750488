package in

import (
	"context"

	"carbontrack/internal/modules/survey/dto"
)

type Usecase interface {
	Catalog(ctx context.Context) (dto.CatalogOutput, error)
}
