package service

import (
	"context"

	"ghostwrite/internal/modules/dashboard/domain"
	dashboardout "ghostwrite/internal/modules/dashboard/port/out"
	"ghostwrite/internal/platform/clock"
)

type DashboardService struct {
	clk clock.Clock
	api dashboardout.DashboardAPI
}

func NewDashboardService(clk clock.Clock, api dashboardout.DashboardAPI) *DashboardService {
	return &DashboardService{clk: clk, api: api}
}

func (s *DashboardService) Stats(ctx context.Context) (domain.Stats, error) {
	return s.api.GetStats(ctx)
}

func (s *DashboardService) Insights(ctx context.Context) ([]domain.Insight, error) {
	return s.api.GetInsights(ctx)
}

// Achievements evaluates the full catalog against one load's stats.
func (s *DashboardService) Achievements(stats domain.Stats) []domain.AchievementStatus {
	return domain.EvaluateAchievements(stats, s.clk.Now())
}
