package domain

import (
	"fmt"

	apperrors "ghostwrite/internal/platform/errors"
)

// Theme is the color scheme preference. Exactly two variants exist.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// DefaultTheme applies when nothing was ever persisted.
const DefaultTheme = ThemeDark

func ParseTheme(name string) (Theme, error) {
	switch Theme(name) {
	case ThemeDark:
		return ThemeDark, nil
	case ThemeLight:
		return ThemeLight, nil
	default:
		return "", fmt.Errorf("%w: unknown theme %q", apperrors.ErrInvalidInput, name)
	}
}

func (t Theme) Flip() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}
