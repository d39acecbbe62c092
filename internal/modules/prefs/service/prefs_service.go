package service

import (
	"context"
	"errors"

	"ghostwrite/internal/modules/prefs/domain"
	prefsout "ghostwrite/internal/modules/prefs/port/out"
	apperrors "ghostwrite/internal/platform/errors"
)

type PrefsService struct {
	store prefsout.PreferenceStore
}

func NewPrefsService(store prefsout.PreferenceStore) *PrefsService {
	return &PrefsService{store: store}
}

// Theme returns the stored preference, or the default when nothing was
// ever set. An unreadable value also falls back to the default.
func (s *PrefsService) Theme(ctx context.Context) (domain.Theme, error) {
	theme, err := s.store.GetTheme(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.DefaultTheme, nil
		}
		return "", err
	}
	return theme, nil
}

// SetTheme persists before returning, so a crash right after a mutation
// cannot lose the choice.
func (s *PrefsService) SetTheme(ctx context.Context, theme domain.Theme) error {
	return s.store.SetTheme(ctx, theme)
}

func (s *PrefsService) Toggle(ctx context.Context) (domain.Theme, error) {
	current, err := s.Theme(ctx)
	if err != nil {
		return "", err
	}
	next := current.Flip()
	if err := s.store.SetTheme(ctx, next); err != nil {
		return "", err
	}
	return next, nil
}
