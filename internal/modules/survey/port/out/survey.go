package out

import (
	"context"

	"carbontrack/internal/modules/survey/domain"
)

type CatalogSource interface {
	LoadCatalog(ctx context.Context) (domain.Catalog, error)
}
