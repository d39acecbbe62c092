package theme

import "github.com/charmbracelet/lipgloss"

// Palette is the named color tokens one theme exposes to presentation.
type Palette struct {
	BgPrimary     lipgloss.Color
	BgSecondary   lipgloss.Color
	BgTertiary    lipgloss.Color
	TextPrimary   lipgloss.Color
	TextSecondary lipgloss.Color
	BorderSubtle  lipgloss.Color

	AccentPrimary   lipgloss.Color
	AccentSecondary lipgloss.Color
	AccentSuccess   lipgloss.Color
	AccentDanger    lipgloss.Color
}

var Dark = Palette{
	BgPrimary:     lipgloss.Color("#0d1117"),
	BgSecondary:   lipgloss.Color("#161b22"),
	BgTertiary:    lipgloss.Color("#21262d"),
	TextPrimary:   lipgloss.Color("#e6edf3"),
	TextSecondary: lipgloss.Color("#8b949e"),
	BorderSubtle:  lipgloss.Color("#30363d"),

	AccentPrimary:   lipgloss.Color("#58a6ff"),
	AccentSecondary: lipgloss.Color("#f78166"),
	AccentSuccess:   lipgloss.Color("#3fb950"),
	AccentDanger:    lipgloss.Color("#f85149"),
}

var Light = Palette{
	BgPrimary:     lipgloss.Color("#ffffff"),
	BgSecondary:   lipgloss.Color("#f6f8fa"),
	BgTertiary:    lipgloss.Color("#eaeef2"),
	TextPrimary:   lipgloss.Color("#24292f"),
	TextSecondary: lipgloss.Color("#57606a"),
	BorderSubtle:  lipgloss.Color("#d0d7de"),

	AccentPrimary:   lipgloss.Color("#0969da"),
	AccentSecondary: lipgloss.Color("#bc4c00"),
	AccentSuccess:   lipgloss.Color("#1a7f37"),
	AccentDanger:    lipgloss.Color("#cf222e"),
}

// For maps a theme name to its palette. The mapping is total: anything
// that is not "light" renders dark.
func For(name string) Palette {
	if name == "light" {
		return Light
	}
	return Dark
}

// Styles are the shared lipgloss styles derived from one palette.
type Styles struct {
	Palette Palette

	App        lipgloss.Style
	Pane       lipgloss.Style
	PaneActive lipgloss.Style
	Title      lipgloss.Style
	Muted      lipgloss.Style
	Value      lipgloss.Style
	Hot        lipgloss.Style
	Good       lipgloss.Style
	Err        lipgloss.Style
}

func NewStyles(p Palette) Styles {
	pane := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.BorderSubtle).
		Background(p.BgSecondary).
		Foreground(p.TextPrimary).
		Padding(1)

	return Styles{
		Palette:    p,
		App:        lipgloss.NewStyle().Background(p.BgPrimary).Foreground(p.TextPrimary).Padding(1, 2),
		Pane:       pane,
		PaneActive: pane.BorderForeground(p.AccentPrimary),
		Title:      lipgloss.NewStyle().Foreground(p.AccentPrimary).Bold(true),
		Muted:      lipgloss.NewStyle().Foreground(p.TextSecondary),
		Value:      lipgloss.NewStyle().Foreground(p.TextPrimary).Bold(true),
		Hot:        lipgloss.NewStyle().Foreground(p.AccentSecondary).Bold(true),
		Good:       lipgloss.NewStyle().Foreground(p.AccentSuccess),
		Err:        lipgloss.NewStyle().Foreground(p.AccentDanger).Bold(true),
	}
}
