package usecase

import (
	"context"

	"ghostwrite/internal/modules/activity/domain"
	"ghostwrite/internal/modules/activity/dto"
	activityin "ghostwrite/internal/modules/activity/port/in"
	"ghostwrite/internal/modules/activity/service"
)

type Interactor struct {
	svc *service.ActivityService
}

func NewInteractor(svc *service.ActivityService) activityin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Recent(ctx context.Context, days int) ([]dto.DatumOutput, error) {
	data, err := i.svc.Recent(ctx, days)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DatumOutput, 0, len(data))
	for _, d := range data {
		out = append(out, dto.DatumOutput{Date: d.Date, Count: d.Count})
	}
	return out, nil
}

func (i *Interactor) Log(ctx context.Context, input dto.LogInput) error {
	return i.svc.Log(ctx, domain.LogEntry{
		Type:        input.Type,
		Description: input.Description,
		Count:       input.Count,
	})
}
