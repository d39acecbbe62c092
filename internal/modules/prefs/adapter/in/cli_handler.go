package in

import (
	"context"

	prefsdto "ghostwrite/internal/modules/prefs/dto"
	prefsin "ghostwrite/internal/modules/prefs/port/in"
)

type CLIHandler struct {
	usecase prefsin.Usecase
}

func NewCLIHandler(usecase prefsin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Get(ctx context.Context) (prefsdto.ThemeOutput, error) {
	return h.usecase.GetTheme(ctx)
}

func (h CLIHandler) Set(ctx context.Context, name string) (prefsdto.ThemeOutput, error) {
	return h.usecase.SetTheme(ctx, name)
}

func (h CLIHandler) Toggle(ctx context.Context) (prefsdto.ThemeOutput, error) {
	return h.usecase.ToggleTheme(ctx)
}
