package service_test

import (
	"context"
	"errors"
	"testing"

	"ghostwrite/internal/modules/skills/domain"
	"ghostwrite/internal/modules/skills/service"
	apperrors "ghostwrite/internal/platform/errors"
)

type fakeSkillsAPI struct {
	skills  []domain.Skill
	err     error
	updates map[string]int
}

func (f *fakeSkillsAPI) GetSkills(context.Context) ([]domain.Skill, error) {
	return f.skills, f.err
}

func (f *fakeSkillsAPI) UpdateSkillLevel(_ context.Context, skillID string, level int) error {
	if f.updates == nil {
		f.updates = make(map[string]int)
	}
	f.updates[skillID] = level
	return f.err
}

func TestListPassesThrough(t *testing.T) {
	t.Parallel()
	api := &fakeSkillsAPI{skills: []domain.Skill{{ID: "s1", Name: "React", Level: 90, Category: "Frontend"}}}
	svc := service.NewSkillsService(api)
	skills, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(skills) != 1 || skills[0].Name != "React" {
		t.Fatalf("unexpected skills: %v", skills)
	}
}

func TestUpdateLevelValidates(t *testing.T) {
	t.Parallel()
	api := &fakeSkillsAPI{}
	svc := service.NewSkillsService(api)

	if err := svc.UpdateLevel(context.Background(), "", 50); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("blank id should fail, got %v", err)
	}
	if err := svc.UpdateLevel(context.Background(), "s1", 101); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("out-of-range level should fail, got %v", err)
	}
	if len(api.updates) != 0 {
		t.Fatalf("invalid updates must not reach the API")
	}

	if err := svc.UpdateLevel(context.Background(), "s1", 80); err != nil {
		t.Fatalf("update: %v", err)
	}
	if api.updates["s1"] != 80 {
		t.Fatalf("update not forwarded: %v", api.updates)
	}
}
