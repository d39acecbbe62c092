package service

import (
	"context"
	"fmt"
	"strings"

	"ghostwrite/internal/modules/skills/domain"
	skillsout "ghostwrite/internal/modules/skills/port/out"
	apperrors "ghostwrite/internal/platform/errors"
)

type SkillsService struct {
	api skillsout.SkillsAPI
}

func NewSkillsService(api skillsout.SkillsAPI) *SkillsService {
	return &SkillsService{api: api}
}

func (s *SkillsService) List(ctx context.Context) ([]domain.Skill, error) {
	return s.api.GetSkills(ctx)
}

func (s *SkillsService) UpdateLevel(ctx context.Context, skillID string, level int) error {
	if strings.TrimSpace(skillID) == "" {
		return fmt.Errorf("%w: skill id is required", apperrors.ErrInvalidInput)
	}
	if err := domain.ValidateLevel(level); err != nil {
		return err
	}
	return s.api.UpdateSkillLevel(ctx, skillID, level)
}
