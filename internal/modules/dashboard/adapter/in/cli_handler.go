package in

import (
	"context"

	dashboarddto "ghostwrite/internal/modules/dashboard/dto"
	dashboardin "ghostwrite/internal/modules/dashboard/port/in"
)

type CLIHandler struct {
	usecase dashboardin.Usecase
}

func NewCLIHandler(usecase dashboardin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Load(ctx context.Context) (dashboarddto.AggregateOutput, error) {
	return h.usecase.Load(ctx)
}
