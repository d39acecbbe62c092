package out

import (
	"context"

	"ghostwrite/internal/modules/skills/domain"
)

type SkillsAPI interface {
	GetSkills(ctx context.Context) ([]domain.Skill, error)
	// UpdateSkillLevel never falls back to canned data.
	UpdateSkillLevel(ctx context.Context, skillID string, level int) error
}
