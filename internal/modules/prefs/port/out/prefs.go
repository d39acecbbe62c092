package out

import (
	"context"

	"ghostwrite/internal/modules/prefs/domain"
)

// PreferenceStore persists the theme choice. GetTheme reports
// ErrNotFound when nothing was ever stored.
type PreferenceStore interface {
	GetTheme(ctx context.Context) (domain.Theme, error)
	SetTheme(ctx context.Context, theme domain.Theme) error
}
