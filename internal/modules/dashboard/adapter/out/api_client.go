package out

import (
	"context"
	"log/slog"
	"net/http"

	"ghostwrite/internal/modules/dashboard/domain"
	dashboardout "ghostwrite/internal/modules/dashboard/port/out"
	"ghostwrite/internal/platform/gateway"
)

var offlineStats = domain.Stats{
	TotalActivities: 156,
	CurrentStreak:   12,
	LongestStreak:   34,
	ConsistencyRate: 87,
	SkillsLearned:   8,
}

var offlineInsights = []domain.Insight{
	{
		ID:          "1",
		Title:       "Amazing Streak!",
		Description: "You've maintained a 12-day learning streak. Keep it up!",
		Type:        domain.InsightAchievement,
		Icon:        "🔥",
		Timestamp:   "2024-01-16",
	},
	{
		ID:          "2",
		Title:       "Focus on Weak Areas",
		Description: "Consider spending more time on DevOps concepts this week.",
		Type:        domain.InsightTip,
		Icon:        "💡",
		Timestamp:   "2024-01-16",
	},
	{
		ID:          "3",
		Title:       "Milestone Reached!",
		Description: "You've completed 150+ learning activities. You're on fire! 🚀",
		Type:        domain.InsightMilestone,
		Icon:        "🎯",
		Timestamp:   "2024-01-15",
	},
}

type APIClient struct {
	gw       *gateway.Gateway
	fallback bool
}

func NewAPIClient(gw *gateway.Gateway, fallback bool) *APIClient {
	return &APIClient{gw: gw, fallback: fallback}
}

var _ dashboardout.DashboardAPI = (*APIClient)(nil)

func (c *APIClient) GetStats(ctx context.Context) (domain.Stats, error) {
	var stats domain.Stats
	if err := c.gw.Do(ctx, http.MethodGet, "/dashboard/stats", nil, &stats); err != nil {
		if c.fallback {
			slog.Warn("stats fetch failed, using offline data", "error", err)
			return offlineStats, nil
		}
		return domain.Stats{}, err
	}
	return stats, nil
}

func (c *APIClient) GetInsights(ctx context.Context) ([]domain.Insight, error) {
	var insights []domain.Insight
	if err := c.gw.Do(ctx, http.MethodGet, "/dashboard/insights", nil, &insights); err != nil {
		if c.fallback {
			slog.Warn("insights fetch failed, using offline data", "error", err)
			return append([]domain.Insight(nil), offlineInsights...), nil
		}
		return nil, err
	}
	return insights, nil
}
