package out

import (
	"context"

	"ghostwrite/internal/modules/account/domain"
)

// SessionStore is the durable session record. Save writes the user
// record and token as one unit; Load reports ErrNoSession for both
// absence and a corrupt record (clearing the latter).
type SessionStore interface {
	Save(ctx context.Context, session domain.Session) error
	Load(ctx context.Context) (domain.Session, error)
	Clear(ctx context.Context) error
}

// AuthAPI is the remote auth surface of the backend.
type AuthAPI interface {
	SignUp(ctx context.Context, email, password, username string) (domain.Session, error)
	SignIn(ctx context.Context, email, password string) (domain.Session, error)
	GetUser(ctx context.Context, username string) (domain.User, error)
	GetUserByID(ctx context.Context, id string) (domain.User, error)
}
