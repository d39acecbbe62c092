package service

import (
	"context"

	"ghostwrite/internal/modules/activity/domain"
	activityout "ghostwrite/internal/modules/activity/port/out"
)

type ActivityService struct {
	api activityout.ActivityAPI
}

func NewActivityService(api activityout.ActivityAPI) *ActivityService {
	return &ActivityService{api: api}
}

// Recent fetches the recent window and guarantees chronological order
// regardless of what the backend returned.
func (s *ActivityService) Recent(ctx context.Context, days int) ([]domain.Datum, error) {
	if days <= 0 {
		days = domain.DefaultWindowDays
	}
	data, err := s.api.GetActivityData(ctx, days)
	if err != nil {
		return nil, err
	}
	domain.SortAscending(data)
	return domain.Window(data, days), nil
}

func (s *ActivityService) Log(ctx context.Context, entry domain.LogEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}
	return s.api.LogActivity(ctx, entry)
}
