package in

import (
	"context"

	skillsdto "ghostwrite/internal/modules/skills/dto"
	skillsin "ghostwrite/internal/modules/skills/port/in"
)

type CLIHandler struct {
	usecase skillsin.Usecase
}

func NewCLIHandler(usecase skillsin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context) ([]skillsdto.SkillOutput, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) UpdateLevel(ctx context.Context, skillID string, level int) error {
	return h.usecase.UpdateLevel(ctx, skillID, level)
}
