package out

import (
	"context"
	"log/slog"
	"net/http"

	"ghostwrite/internal/modules/skills/domain"
	skillsout "ghostwrite/internal/modules/skills/port/out"
	"ghostwrite/internal/platform/gateway"
)

var offlineSkills = []domain.Skill{
	{Name: "React", Level: 90, Category: "Frontend"},
	{Name: "TypeScript", Level: 85, Category: "Language"},
	{Name: "Node.js", Level: 80, Category: "Backend"},
	{Name: "CSS", Level: 88, Category: "Frontend"},
	{Name: "Database Design", Level: 75, Category: "Backend"},
	{Name: "DevOps", Level: 70, Category: "Tools"},
}

type APIClient struct {
	gw       *gateway.Gateway
	fallback bool
}

func NewAPIClient(gw *gateway.Gateway, fallback bool) *APIClient {
	return &APIClient{gw: gw, fallback: fallback}
}

var _ skillsout.SkillsAPI = (*APIClient)(nil)

func (c *APIClient) GetSkills(ctx context.Context) ([]domain.Skill, error) {
	var skills []domain.Skill
	if err := c.gw.Do(ctx, http.MethodGet, "/skills", nil, &skills); err != nil {
		if c.fallback {
			slog.Warn("skills fetch failed, using offline data", "error", err)
			return append([]domain.Skill(nil), offlineSkills...), nil
		}
		return nil, err
	}
	return skills, nil
}

func (c *APIClient) UpdateSkillLevel(ctx context.Context, skillID string, level int) error {
	body := map[string]int{"level": level}
	var resp struct {
		Success bool `json:"success"`
	}
	return c.gw.Do(ctx, http.MethodPut, "/skills/"+skillID, body, &resp)
}
