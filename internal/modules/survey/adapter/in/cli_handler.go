package in

import (
	"context"

	"carbontrack/internal/modules/survey/dto"
	surveyin "carbontrack/internal/modules/survey/port/in"
)

type CLIHandler struct {
	usecase surveyin.Usecase
}

func NewCLIHandler(usecase surveyin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Catalog(ctx context.Context) (dto.CatalogOutput, error) {
	return h.usecase.Catalog(ctx)
}
