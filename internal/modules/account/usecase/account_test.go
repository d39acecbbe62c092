package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"ghostwrite/internal/modules/account/domain"
	"ghostwrite/internal/modules/account/dto"
	"ghostwrite/internal/modules/account/service"
	"ghostwrite/internal/modules/account/usecase"
	apperrors "ghostwrite/internal/platform/errors"
)

type fakeStore struct {
	mu      sync.Mutex
	session domain.Session
	has     bool
	clears  int
}

func (f *fakeStore) Save(_ context.Context, session domain.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.session = session
	f.has = true
	return nil
}

func (f *fakeStore) Load(context.Context) (domain.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.has {
		return domain.Session{}, apperrors.ErrNoSession
	}
	return f.session, nil
}

func (f *fakeStore) Clear(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.session = domain.Session{}
	f.has = false
	f.clears++
	return nil
}

type fakeAPI struct {
	mu      sync.Mutex
	session domain.Session
	err     error
	calls   int
	block   chan struct{}
}

func (f *fakeAPI) auth() (domain.Session, error) {
	f.mu.Lock()
	f.calls++
	block := f.block
	f.mu.Unlock()
	if block != nil {
		<-block
	}
	if f.err != nil {
		return domain.Session{}, f.err
	}
	return f.session, nil
}

func (f *fakeAPI) SignUp(context.Context, string, string, string) (domain.Session, error) {
	return f.auth()
}

func (f *fakeAPI) SignIn(context.Context, string, string) (domain.Session, error) {
	return f.auth()
}

func (f *fakeAPI) GetUser(context.Context, string) (domain.User, error) {
	return f.session.User, f.err
}

func (f *fakeAPI) GetUserByID(context.Context, string) (domain.User, error) {
	return f.session.User, f.err
}

func session(id, username, token string) domain.Session {
	return domain.Session{
		User:  domain.User{ID: id, Username: username, Email: username + "@example.com"},
		Token: token,
	}
}

func TestSignInAdoptsAndPersists(t *testing.T) {
	t.Parallel()
	store := &fakeStore{}
	api := &fakeAPI{session: session("u1", "alice", "tok-1")}
	uc := usecase.NewInteractor(service.NewAccountService(store), api)

	out, err := uc.SignIn(context.Background(), dto.SignInInput{Email: "alice@example.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("sign in: %v", err)
	}
	if out.Username != "alice" || out.Token != "tok-1" {
		t.Fatalf("unexpected output: %+v", out)
	}
	if !store.has || store.session.Token != "tok-1" {
		t.Fatalf("session should be persisted before adoption")
	}
	current, err := uc.Current(context.Background())
	if err != nil {
		t.Fatalf("current after sign in: %v", err)
	}
	if current.UserID != "u1" {
		t.Fatalf("expected u1, got %q", current.UserID)
	}
}

func TestSignInValidationSkipsNetwork(t *testing.T) {
	t.Parallel()
	api := &fakeAPI{session: session("u1", "alice", "tok")}
	uc := usecase.NewInteractor(service.NewAccountService(&fakeStore{}), api)

	_, err := uc.SignIn(context.Background(), dto.SignInInput{Email: "bad-email", Password: "secret1"})
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if api.calls != 0 {
		t.Fatalf("validation failure must not reach the API, got %d calls", api.calls)
	}
}

func TestSignUpValidationSkipsNetwork(t *testing.T) {
	t.Parallel()
	api := &fakeAPI{session: session("u1", "alice", "tok")}
	uc := usecase.NewInteractor(service.NewAccountService(&fakeStore{}), api)

	_, err := uc.SignUp(context.Background(), dto.SignUpInput{
		Username:        "alice",
		Email:           "alice@example.com",
		Password:        "secret1",
		ConfirmPassword: "other12",
	})
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if api.calls != 0 {
		t.Fatalf("validation failure must not reach the API, got %d calls", api.calls)
	}
}

func TestFailedSignInLeavesStateUntouched(t *testing.T) {
	t.Parallel()
	store := &fakeStore{}
	api := &fakeAPI{err: apperrors.ErrInvalidCredentials}
	uc := usecase.NewInteractor(service.NewAccountService(store), api)

	_, err := uc.SignIn(context.Background(), dto.SignInInput{Email: "alice@example.com", Password: "wrong1"})
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("expected credentials error, got %v", err)
	}
	if store.has {
		t.Fatalf("failed sign in must not persist anything")
	}
	if _, err := uc.Current(context.Background()); !errors.Is(err, apperrors.ErrNoSession) {
		t.Fatalf("expected no session, got %v", err)
	}
}

func TestSignOutIsIdempotent(t *testing.T) {
	t.Parallel()
	store := &fakeStore{}
	uc := usecase.NewInteractor(service.NewAccountService(store), &fakeAPI{session: session("u1", "alice", "tok")})

	if _, err := uc.SignIn(context.Background(), dto.SignInInput{Email: "alice@example.com", Password: "secret1"}); err != nil {
		t.Fatalf("sign in: %v", err)
	}
	if err := uc.SignOut(context.Background()); err != nil {
		t.Fatalf("first sign out: %v", err)
	}
	if err := uc.SignOut(context.Background()); err != nil {
		t.Fatalf("second sign out should also succeed: %v", err)
	}
	if _, err := uc.Current(context.Background()); !errors.Is(err, apperrors.ErrNoSession) {
		t.Fatalf("expected no session after sign out, got %v", err)
	}
	if store.has {
		t.Fatalf("store should be cleared")
	}
}

func TestInitRestoresPersistedSession(t *testing.T) {
	t.Parallel()
	store := &fakeStore{session: session("u7", "bob", "tok-7"), has: true}
	uc := usecase.NewInteractor(service.NewAccountService(store), &fakeAPI{})

	if err := uc.Init(context.Background()); err != nil {
		t.Fatalf("init: %v", err)
	}
	out, err := uc.Current(context.Background())
	if err != nil {
		t.Fatalf("current after init: %v", err)
	}
	if out.UserID != "u7" || out.Token != "tok-7" {
		t.Fatalf("unexpected restored session: %+v", out)
	}
}

func TestInitWithEmptyStoreStaysAnonymous(t *testing.T) {
	t.Parallel()
	uc := usecase.NewInteractor(service.NewAccountService(&fakeStore{}), &fakeAPI{})
	if err := uc.Init(context.Background()); err != nil {
		t.Fatalf("init on empty store should succeed: %v", err)
	}
	if _, err := uc.Current(context.Background()); !errors.Is(err, apperrors.ErrNoSession) {
		t.Fatalf("expected no session, got %v", err)
	}
}

func TestConcurrentAuthRejected(t *testing.T) {
	t.Parallel()
	block := make(chan struct{})
	api := &fakeAPI{session: session("u1", "alice", "tok"), block: block}
	uc := usecase.NewInteractor(service.NewAccountService(&fakeStore{}), api)

	started := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		close(started)
		_, err := uc.SignIn(context.Background(), dto.SignInInput{Email: "alice@example.com", Password: "secret1"})
		done <- err
	}()
	<-started
	// Wait for the first attempt to reach the blocked API call.
	for {
		api.mu.Lock()
		calls := api.calls
		api.mu.Unlock()
		if calls == 1 {
			break
		}
		time.Sleep(time.Millisecond)
	}

	_, err := uc.SignIn(context.Background(), dto.SignInInput{Email: "alice@example.com", Password: "secret1"})
	if !errors.Is(err, apperrors.ErrAuthInFlight) {
		t.Fatalf("expected in-flight rejection, got %v", err)
	}

	close(block)
	if err := <-done; err != nil {
		t.Fatalf("first attempt should win: %v", err)
	}
	// The guard releases once the first attempt settles.
	if _, err := uc.SignIn(context.Background(), dto.SignInInput{Email: "alice@example.com", Password: "secret1"}); err != nil {
		t.Fatalf("sign in after release: %v", err)
	}
}

func TestHandleUnauthorizedClearsMemory(t *testing.T) {
	t.Parallel()
	store := &fakeStore{}
	uc := usecase.NewInteractor(service.NewAccountService(store), &fakeAPI{session: session("u1", "alice", "tok")})

	if _, err := uc.SignIn(context.Background(), dto.SignInInput{Email: "alice@example.com", Password: "secret1"}); err != nil {
		t.Fatalf("sign in: %v", err)
	}
	uc.HandleUnauthorized(context.Background())
	if _, err := uc.Current(context.Background()); !errors.Is(err, apperrors.ErrNoSession) {
		t.Fatalf("expected no session after teardown, got %v", err)
	}
}
