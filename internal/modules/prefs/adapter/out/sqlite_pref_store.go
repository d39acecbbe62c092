package out

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"ghostwrite/internal/modules/prefs/domain"
	prefsout "ghostwrite/internal/modules/prefs/port/out"
	apperrors "ghostwrite/internal/platform/errors"

	_ "modernc.org/sqlite"
)

const themeKey = "theme"

type SQLitePrefStore struct {
	db *sql.DB
}

func NewSQLitePrefStore(dbPath string) (*SQLitePrefStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	store := &SQLitePrefStore{db: db}
	if err := store.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return store, nil
}

var _ prefsout.PreferenceStore = (*SQLitePrefStore)(nil)

func (s *SQLitePrefStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS preferences (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create preferences table: %w", err)
	}
	return nil
}

func (s *SQLitePrefStore) GetTheme(ctx context.Context) (domain.Theme, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM preferences WHERE key = ?`, themeKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", apperrors.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("load theme: %w", err)
	}
	theme, err := domain.ParseTheme(value)
	if err != nil {
		// A value from a newer or corrupt install reads as unset.
		return "", apperrors.ErrNotFound
	}
	return theme, nil
}

func (s *SQLitePrefStore) SetTheme(ctx context.Context, theme domain.Theme) error {
	const stmt = `
INSERT INTO preferences (key, value) VALUES (?, ?)
ON CONFLICT(key) DO UPDATE SET value=excluded.value;
`
	if _, err := s.db.ExecContext(ctx, stmt, themeKey, string(theme)); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	return nil
}
