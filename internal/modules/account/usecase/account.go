package usecase

import (
	"context"
	"sync"

	"ghostwrite/internal/modules/account/domain"
	"ghostwrite/internal/modules/account/dto"
	accountin "ghostwrite/internal/modules/account/port/in"
	accountout "ghostwrite/internal/modules/account/port/out"
	"ghostwrite/internal/modules/account/service"
	apperrors "ghostwrite/internal/platform/errors"
)

// Interactor is the session manager: Anonymous until a persisted or
// freshly authenticated session is adopted, Authenticated afterwards.
type Interactor struct {
	svc *service.AccountService
	api accountout.AuthAPI

	mu      sync.Mutex
	current domain.Session
	busy    bool
}

func NewInteractor(svc *service.AccountService, api accountout.AuthAPI) *Interactor {
	return &Interactor{svc: svc, api: api}
}

var _ accountin.Usecase = (*Interactor)(nil)

func (i *Interactor) Init(ctx context.Context) error {
	session, ok, err := i.svc.Restore(ctx)
	if err != nil {
		return err
	}
	i.mu.Lock()
	defer i.mu.Unlock()
	if ok {
		i.current = session
	}
	return nil
}

func (i *Interactor) SignUp(ctx context.Context, input dto.SignUpInput) (dto.SessionOutput, error) {
	if err := domain.ValidateSignUp(input.Username, input.Email, input.Password, input.ConfirmPassword); err != nil {
		return dto.SessionOutput{}, err
	}
	release, err := i.acquire()
	if err != nil {
		return dto.SessionOutput{}, err
	}
	defer release()

	session, err := i.api.SignUp(ctx, input.Email, input.Password, input.Username)
	if err != nil {
		return dto.SessionOutput{}, err
	}
	return i.adopt(ctx, session)
}

func (i *Interactor) SignIn(ctx context.Context, input dto.SignInInput) (dto.SessionOutput, error) {
	if err := domain.ValidateSignIn(input.Email, input.Password); err != nil {
		return dto.SessionOutput{}, err
	}
	release, err := i.acquire()
	if err != nil {
		return dto.SessionOutput{}, err
	}
	defer release()

	session, err := i.api.SignIn(ctx, input.Email, input.Password)
	if err != nil {
		return dto.SessionOutput{}, err
	}
	return i.adopt(ctx, session)
}

func (i *Interactor) SignOut(ctx context.Context) error {
	i.mu.Lock()
	i.current = domain.Session{}
	i.mu.Unlock()
	return i.svc.Forget(ctx)
}

// HandleUnauthorized is wired to the gateway's 401 teardown hook: the
// store has already been cleared, so only the in-memory state needs to
// catch up.
func (i *Interactor) HandleUnauthorized(context.Context) {
	i.mu.Lock()
	i.current = domain.Session{}
	i.mu.Unlock()
}

func (i *Interactor) Current(context.Context) (dto.SessionOutput, error) {
	i.mu.Lock()
	session := i.current
	i.mu.Unlock()
	if !session.Valid() {
		return dto.SessionOutput{}, apperrors.ErrNoSession
	}
	return sessionOutput(session), nil
}

func (i *Interactor) GetUser(ctx context.Context, username string) (dto.UserOutput, error) {
	user, err := i.api.GetUser(ctx, username)
	if err != nil {
		return dto.UserOutput{}, err
	}
	return userOutput(user), nil
}

func (i *Interactor) GetUserByID(ctx context.Context, id string) (dto.UserOutput, error) {
	user, err := i.api.GetUserByID(ctx, id)
	if err != nil {
		return dto.UserOutput{}, err
	}
	return userOutput(user), nil
}

// acquire enforces one in-flight auth operation at a time. Concurrent
// attempts are rejected rather than queued; the UI disables re-submission
// anyway, this guard just keeps a race from picking a winner silently.
func (i *Interactor) acquire() (func(), error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.busy {
		return nil, apperrors.ErrAuthInFlight
	}
	i.busy = true
	return func() {
		i.mu.Lock()
		i.busy = false
		i.mu.Unlock()
	}, nil
}

func (i *Interactor) adopt(ctx context.Context, session domain.Session) (dto.SessionOutput, error) {
	if err := i.svc.Persist(ctx, session); err != nil {
		return dto.SessionOutput{}, err
	}
	i.mu.Lock()
	i.current = session
	i.mu.Unlock()
	return sessionOutput(session), nil
}

func sessionOutput(session domain.Session) dto.SessionOutput {
	return dto.SessionOutput{
		UserID:   session.User.ID,
		Username: session.User.Username,
		Email:    session.User.Email,
		Name:     session.User.Name,
		Avatar:   session.User.Avatar,
		Bio:      session.User.Bio,
		JoinDate: session.User.JoinDate,
		Token:    session.Token,
	}
}

func userOutput(user domain.User) dto.UserOutput {
	return dto.UserOutput{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Name:     user.Name,
		Avatar:   user.Avatar,
		Bio:      user.Bio,
		JoinDate: user.JoinDate,
	}
}
