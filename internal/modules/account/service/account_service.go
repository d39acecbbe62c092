package service

import (
	"context"
	"errors"
	"fmt"

	"ghostwrite/internal/modules/account/domain"
	accountout "ghostwrite/internal/modules/account/port/out"
	apperrors "ghostwrite/internal/platform/errors"
)

// AccountService mediates between the session lifecycle and the durable
// store. Only this module writes session data.
type AccountService struct {
	store accountout.SessionStore
}

func NewAccountService(store accountout.SessionStore) *AccountService {
	return &AccountService{store: store}
}

// Restore loads the persisted session, if any. Absence is not an error.
func (s *AccountService) Restore(ctx context.Context) (domain.Session, bool, error) {
	session, err := s.store.Load(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNoSession) {
			return domain.Session{}, false, nil
		}
		return domain.Session{}, false, err
	}
	return session, true, nil
}

func (s *AccountService) Persist(ctx context.Context, session domain.Session) error {
	if !session.Valid() {
		return fmt.Errorf("%w: session is missing user id or token", apperrors.ErrInvalidInput)
	}
	return s.store.Save(ctx, session)
}

// Forget clears the durable record. Clearing an empty store succeeds.
func (s *AccountService) Forget(ctx context.Context) error {
	return s.store.Clear(ctx)
}
