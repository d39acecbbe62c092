package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	apperrors "ghostwrite/internal/platform/errors"
)

const MinPasswordLen = 6

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Name     string `json:"name,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
	Bio      string `json:"bio,omitempty"`
	JoinDate string `json:"joinDate,omitempty"`
}

// Session is the authenticated identity plus bearer token. A session is
// valid iff both the user id and the token are present; anything else
// means logged out.
type Session struct {
	User  User      `json:"user"`
	Token string    `json:"token"`
	Since time.Time `json:"since"`
}

func (s Session) Valid() bool {
	return s.User.ID != "" && s.Token != ""
}

// ValidateSignUp runs the client-side checks that must pass before any
// network call is made. Each failure carries its own message so the UI
// can tell the user what to fix.
func ValidateSignUp(username, email, password, confirm string) error {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(email) == "" || password == "" {
		return fmt.Errorf("%w: username, email, and password are required", apperrors.ErrInvalidInput)
	}
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("%w: email address is malformed", apperrors.ErrInvalidInput)
	}
	if len(password) < MinPasswordLen {
		return fmt.Errorf("%w: password must be at least %d characters", apperrors.ErrInvalidInput, MinPasswordLen)
	}
	if password != confirm {
		return fmt.Errorf("%w: passwords do not match", apperrors.ErrInvalidInput)
	}
	return nil
}

func ValidateSignIn(email, password string) error {
	if strings.TrimSpace(email) == "" || password == "" {
		return fmt.Errorf("%w: email and password are required", apperrors.ErrInvalidInput)
	}
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("%w: email address is malformed", apperrors.ErrInvalidInput)
	}
	return nil
}

// LocalPart derives the default username for fabricated offline sessions.
func LocalPart(email string) string {
	if at := strings.IndexByte(email, '@'); at > 0 {
		return email[:at]
	}
	return email
}
