package out

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"ghostwrite/internal/modules/account/domain"
	accountout "ghostwrite/internal/modules/account/port/out"
	apperrors "ghostwrite/internal/platform/errors"

	_ "modernc.org/sqlite"
)

// SQLiteSessionStore keeps the single session record in one row, so the
// user record and token are always written and read together.
type SQLiteSessionStore struct {
	db *sql.DB
}

func NewSQLiteSessionStore(dbPath string) (*SQLiteSessionStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	store := &SQLiteSessionStore{db: db}
	if err := store.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return store, nil
}

var _ accountout.SessionStore = (*SQLiteSessionStore)(nil)

func (s *SQLiteSessionStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS session (
  id INTEGER PRIMARY KEY CHECK (id = 1),
  user_json TEXT NOT NULL,
  token TEXT NOT NULL
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create session table: %w", err)
	}
	return nil
}

func (s *SQLiteSessionStore) Save(ctx context.Context, session domain.Session) error {
	payload, err := json.Marshal(session.User)
	if err != nil {
		return fmt.Errorf("encode session user: %w", err)
	}
	const stmt = `
INSERT INTO session (id, user_json, token) VALUES (1, ?, ?)
ON CONFLICT(id) DO UPDATE SET user_json=excluded.user_json, token=excluded.token;
`
	if _, err := s.db.ExecContext(ctx, stmt, string(payload), session.Token); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *SQLiteSessionStore) Load(ctx context.Context) (domain.Session, error) {
	var userJSON, token string
	err := s.db.QueryRowContext(ctx, `SELECT user_json, token FROM session WHERE id = 1`).Scan(&userJSON, &token)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Session{}, apperrors.ErrNoSession
	}
	if err != nil {
		return domain.Session{}, fmt.Errorf("load session: %w", err)
	}

	var user domain.User
	if err := json.Unmarshal([]byte(userJSON), &user); err != nil || token == "" || user.ID == "" {
		// Corrupt or half-usable record: drop it rather than surface a
		// parse error to callers.
		_ = s.Clear(ctx)
		return domain.Session{}, apperrors.ErrNoSession
	}
	return domain.Session{User: user, Token: token}, nil
}

func (s *SQLiteSessionStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM session WHERE id = 1`); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// Token satisfies the gateway's token source without widening the store
// contract: absence of a session simply means no header.
func (s *SQLiteSessionStore) Token(ctx context.Context) (string, bool) {
	session, err := s.Load(ctx)
	if err != nil {
		return "", false
	}
	return session.Token, true
}
