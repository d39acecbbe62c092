package out

import (
	"context"

	"ghostwrite/internal/modules/activity/domain"
)

type ActivityAPI interface {
	GetActivityData(ctx context.Context, days int) ([]domain.Datum, error)
	// LogActivity never falls back to canned data; mutations fail loudly.
	LogActivity(ctx context.Context, entry domain.LogEntry) error
}
