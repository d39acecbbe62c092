package in

import (
	"context"

	"ghostwrite/internal/modules/prefs/dto"
)

type Usecase interface {
	GetTheme(ctx context.Context) (dto.ThemeOutput, error)
	SetTheme(ctx context.Context, name string) (dto.ThemeOutput, error)
	ToggleTheme(ctx context.Context) (dto.ThemeOutput, error)
}
