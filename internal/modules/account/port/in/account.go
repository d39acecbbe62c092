package in

import (
	"context"

	"ghostwrite/internal/modules/account/dto"
)

type Usecase interface {
	// Init restores a previously persisted session. It must complete
	// before any surface that depends on auth state renders.
	Init(ctx context.Context) error
	SignUp(ctx context.Context, input dto.SignUpInput) (dto.SessionOutput, error)
	SignIn(ctx context.Context, input dto.SignInInput) (dto.SessionOutput, error)
	// SignOut is idempotent; signing out while anonymous is a no-op.
	SignOut(ctx context.Context) error
	Current(ctx context.Context) (dto.SessionOutput, error)
	GetUser(ctx context.Context, username string) (dto.UserOutput, error)
	GetUserByID(ctx context.Context, id string) (dto.UserOutput, error)
}
