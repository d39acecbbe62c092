package in

import (
	"context"

	activitydto "ghostwrite/internal/modules/activity/dto"
	activityin "ghostwrite/internal/modules/activity/port/in"
)

type CLIHandler struct {
	usecase activityin.Usecase
}

func NewCLIHandler(usecase activityin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Recent(ctx context.Context, days int) ([]activitydto.DatumOutput, error) {
	return h.usecase.Recent(ctx, days)
}

func (h CLIHandler) Log(ctx context.Context, activityType, description string, count int) error {
	return h.usecase.Log(ctx, activitydto.LogInput{Type: activityType, Description: description, Count: count})
}
