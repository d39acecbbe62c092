package usecase

import (
	"context"

	"ghostwrite/internal/modules/skills/dto"
	skillsin "ghostwrite/internal/modules/skills/port/in"
	"ghostwrite/internal/modules/skills/service"
)

type Interactor struct {
	svc *service.SkillsService
}

func NewInteractor(svc *service.SkillsService) skillsin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) List(ctx context.Context) ([]dto.SkillOutput, error) {
	skills, err := i.svc.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SkillOutput, 0, len(skills))
	for _, skill := range skills {
		out = append(out, dto.SkillOutput{
			ID:       skill.ID,
			Name:     skill.Name,
			Level:    skill.Level,
			Category: skill.Category,
		})
	}
	return out, nil
}

func (i *Interactor) UpdateLevel(ctx context.Context, skillID string, level int) error {
	return i.svc.UpdateLevel(ctx, skillID, level)
}
