package out

import (
	"context"

	"ghostwrite/internal/modules/dashboard/domain"
)

type DashboardAPI interface {
	GetStats(ctx context.Context) (domain.Stats, error)
	GetInsights(ctx context.Context) ([]domain.Insight, error)
}
