package in

import (
	"context"

	"ghostwrite/internal/modules/skills/dto"
)

type Usecase interface {
	List(ctx context.Context) ([]dto.SkillOutput, error)
	UpdateLevel(ctx context.Context, skillID string, level int) error
}
