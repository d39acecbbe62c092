package usecase

import (
	"context"

	"ghostwrite/internal/modules/prefs/domain"
	"ghostwrite/internal/modules/prefs/dto"
	prefsin "ghostwrite/internal/modules/prefs/port/in"
	"ghostwrite/internal/modules/prefs/service"
)

type Interactor struct {
	svc *service.PrefsService
}

func NewInteractor(svc *service.PrefsService) prefsin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) GetTheme(ctx context.Context) (dto.ThemeOutput, error) {
	theme, err := i.svc.Theme(ctx)
	if err != nil {
		return dto.ThemeOutput{}, err
	}
	return dto.ThemeOutput{Name: string(theme)}, nil
}

func (i *Interactor) SetTheme(ctx context.Context, name string) (dto.ThemeOutput, error) {
	theme, err := domain.ParseTheme(name)
	if err != nil {
		return dto.ThemeOutput{}, err
	}
	if err := i.svc.SetTheme(ctx, theme); err != nil {
		return dto.ThemeOutput{}, err
	}
	return dto.ThemeOutput{Name: string(theme)}, nil
}

func (i *Interactor) ToggleTheme(ctx context.Context) (dto.ThemeOutput, error) {
	theme, err := i.svc.Toggle(ctx)
	if err != nil {
		return dto.ThemeOutput{}, err
	}
	return dto.ThemeOutput{Name: string(theme)}, nil
}
