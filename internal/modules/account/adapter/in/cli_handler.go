package in

import (
	"context"

	accountdto "ghostwrite/internal/modules/account/dto"
	accountin "ghostwrite/internal/modules/account/port/in"
)

type CLIHandler struct {
	usecase accountin.Usecase
}

func NewCLIHandler(usecase accountin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) SignUp(ctx context.Context, username, email, password, confirm string) (accountdto.SessionOutput, error) {
	return h.usecase.SignUp(ctx, accountdto.SignUpInput{
		Username:        username,
		Email:           email,
		Password:        password,
		ConfirmPassword: confirm,
	})
}

func (h CLIHandler) SignIn(ctx context.Context, email, password string) (accountdto.SessionOutput, error) {
	return h.usecase.SignIn(ctx, accountdto.SignInInput{Email: email, Password: password})
}

func (h CLIHandler) SignOut(ctx context.Context) error {
	return h.usecase.SignOut(ctx)
}

func (h CLIHandler) Current(ctx context.Context) (accountdto.SessionOutput, error) {
	return h.usecase.Current(ctx)
}

func (h CLIHandler) GetUser(ctx context.Context, username string) (accountdto.UserOutput, error) {
	return h.usecase.GetUser(ctx, username)
}

func (h CLIHandler) GetUserByID(ctx context.Context, id string) (accountdto.UserOutput, error) {
	return h.usecase.GetUserByID(ctx, id)
}
