package app

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	accountdto "ghostwrite/internal/modules/account/dto"
	prefsdto "ghostwrite/internal/modules/prefs/dto"
	apperrors "ghostwrite/internal/platform/errors"
	"ghostwrite/internal/ui/theme"
	dashboardview "ghostwrite/internal/ui/views/dashboard"
	signinview "ghostwrite/internal/ui/views/signin"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface this orchestration layer requires.

type AccountPort interface {
	SignIn(ctx context.Context, email, password string) (accountdto.SessionOutput, error)
	SignOut(ctx context.Context) error
	Current(ctx context.Context) (accountdto.SessionOutput, error)
}

type PrefsPort interface {
	GetTheme(ctx context.Context) (prefsdto.ThemeOutput, error)
	ToggleTheme(ctx context.Context) (prefsdto.ThemeOutput, error)
}

// ─── screens ─────────────────────────────────────────────────────────────────

type screenID int

const (
	screenSignIn screenID = iota
	screenDashboard
)

// ─── messages ────────────────────────────────────────────────────────────────

type themeToggledMsg struct {
	name string
	err  error
}

type signedOutMsg struct{ err error }

// ─── key bindings ────────────────────────────────────────────────────────────

type keyMap struct {
	Reload  key.Binding
	Theme   key.Binding
	SignOut key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Reload, k.Theme, k.SignOut, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Reload, k.Theme}, {k.SignOut, k.Quit}}
}

var keys = keyMap{
	Reload:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
	Theme:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
	SignOut: key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "sign out")),
	Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	account AccountPort
	prefs   PrefsPort

	screen    screenID
	styles    theme.Styles
	themeName string
	username  string

	signin    signinview.Model
	dashboard dashboardview.Model
	help      help.Model
	width     int
}

// New assumes the session manager was initialized before the TUI starts,
// so Current reflects any persisted session without a flash of the
// sign-in screen.
func New(account AccountPort, dash dashboardview.DashboardPort, prefs PrefsPort) Model {
	themeName := "dark"
	if out, err := prefs.GetTheme(context.Background()); err == nil {
		themeName = out.Name
	}
	st := theme.NewStyles(theme.For(themeName))

	m := Model{
		account:   account,
		prefs:     prefs,
		styles:    st,
		themeName: themeName,
		signin:    signinview.New(account, st),
		dashboard: dashboardview.New(dash, st),
		help:      help.New(),
	}
	if session, err := account.Current(context.Background()); err == nil {
		m.screen = screenDashboard
		m.username = session.Username
	} else {
		m.screen = screenSignIn
	}
	return m
}

func (m Model) Init() tea.Cmd {
	if m.screen == screenDashboard {
		return m.dashboard.Reload()
	}
	return m.signin.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.dashboard.SetWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		if m.screen == screenSignIn {
			// The form owns most keys; only quit is global there.
			if key.Matches(msg, keys.Quit) && msg.String() == "ctrl+c" {
				return m, tea.Quit
			}
			break
		}
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Reload):
			return m, m.dashboard.Reload()
		case key.Matches(msg, keys.Theme):
			return m, m.toggleTheme()
		case key.Matches(msg, keys.SignOut):
			return m, m.signOut()
		case key.Matches(msg, keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}

	case signinview.SignedInMsg:
		if msg.Err == nil {
			m.screen = screenDashboard
			m.username = msg.Session.Username
			var cmd tea.Cmd
			m.signin, cmd = m.signin.Update(msg)
			return m, tea.Batch(cmd, m.dashboard.Reload())
		}

	case dashboardview.LoadedMsg:
		if msg.Err != nil && errors.Is(msg.Err, apperrors.ErrUnauthorized) {
			// Gateway already tore the session down; land on sign-in.
			m.screen = screenSignIn
			m.signin.SetError("session expired, please sign in again")
			return m, m.signin.Init()
		}

	case themeToggledMsg:
		if msg.err == nil {
			m.themeName = msg.name
			m.restyle()
		}
		return m, nil

	case signedOutMsg:
		m.screen = screenSignIn
		m.username = ""
		return m, m.signin.Init()
	}

	var cmd tea.Cmd
	switch m.screen {
	case screenSignIn:
		m.signin, cmd = m.signin.Update(msg)
	case screenDashboard:
		m.dashboard, cmd = m.dashboard.Update(msg)
	}
	return m, cmd
}

func (m *Model) restyle() {
	m.styles = theme.NewStyles(theme.For(m.themeName))
	m.signin.SetStyles(m.styles)
	m.dashboard.SetStyles(m.styles)
}

func (m Model) toggleTheme() tea.Cmd {
	prefs := m.prefs
	return func() tea.Msg {
		out, err := prefs.ToggleTheme(context.Background())
		return themeToggledMsg{name: out.Name, err: err}
	}
}

func (m Model) signOut() tea.Cmd {
	account := m.account
	return func() tea.Msg {
		return signedOutMsg{err: account.SignOut(context.Background())}
	}
}

func (m Model) View() string {
	st := m.styles
	var body string
	switch m.screen {
	case screenSignIn:
		body = m.signin.View()
	case screenDashboard:
		header := st.Title.Render("GhostWrite") + st.Muted.Render("  ·  "+m.username+"  ·  theme: "+m.themeName)
		body = lipgloss.JoinVertical(lipgloss.Left, header, "", m.dashboard.View(), "", m.help.View(keys))
	}
	return st.App.Render(body)
}
