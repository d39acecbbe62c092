package out

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"ghostwrite/internal/modules/activity/domain"
	activityout "ghostwrite/internal/modules/activity/port/out"
	"ghostwrite/internal/platform/gateway"
)

var offlineActivity = []domain.Datum{
	{Date: "2024-01-10", Count: 5},
	{Date: "2024-01-11", Count: 8},
	{Date: "2024-01-12", Count: 6},
	{Date: "2024-01-13", Count: 9},
	{Date: "2024-01-14", Count: 7},
	{Date: "2024-01-15", Count: 4},
	{Date: "2024-01-16", Count: 8},
}

type APIClient struct {
	gw       *gateway.Gateway
	fallback bool
}

func NewAPIClient(gw *gateway.Gateway, fallback bool) *APIClient {
	return &APIClient{gw: gw, fallback: fallback}
}

var _ activityout.ActivityAPI = (*APIClient)(nil)

func (c *APIClient) GetActivityData(ctx context.Context, days int) ([]domain.Datum, error) {
	path := "/dashboard/activities"
	if days > 0 {
		path += "?days=" + strconv.Itoa(days)
	}
	var data []domain.Datum
	if err := c.gw.Do(ctx, http.MethodGet, path, nil, &data); err != nil {
		if c.fallback {
			slog.Warn("activity fetch failed, using offline data", "error", err)
			return append([]domain.Datum(nil), domain.Window(offlineActivity, days)...), nil
		}
		return nil, err
	}
	return data, nil
}

func (c *APIClient) LogActivity(ctx context.Context, entry domain.LogEntry) error {
	var resp struct {
		Success bool `json:"success"`
	}
	return c.gw.Do(ctx, http.MethodPost, "/activities/log", entry, &resp)
}
