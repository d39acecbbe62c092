package signin

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	accountdto "ghostwrite/internal/modules/account/dto"
	"ghostwrite/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type AccountPort interface {
	SignIn(ctx context.Context, email, password string) (accountdto.SessionOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

// SignedInMsg is emitted when a submission settles.
type SignedInMsg struct {
	Session accountdto.SessionOutput
	Err     error
}

const (
	fieldEmail = iota
	fieldPassword
	fieldCount
)

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port    AccountPort
	styles  theme.Styles
	inputs  [fieldCount]textinput.Model
	focus   int
	pending bool
	errMsg  string
}

func New(port AccountPort, st theme.Styles) Model {
	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 128

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 128
	password.EchoMode = textinput.EchoPassword

	m := Model{port: port, styles: st}
	m.inputs[fieldEmail] = email
	m.inputs[fieldPassword] = password
	return m
}

func (m Model) Init() tea.Cmd {
	return m.inputs[fieldEmail].Focus()
}

func (m *Model) SetStyles(st theme.Styles) { m.styles = st }

// SetError surfaces a failure from outside the form, e.g. a forced
// sign-out after a 401.
func (m *Model) SetError(msg string) { m.errMsg = msg }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.pending {
			return m, nil
		}
		switch msg.String() {
		case "tab", "shift+tab", "up", "down":
			return m.cycleFocus(msg.String() == "tab" || msg.String() == "down"), nil
		case "enter":
			return m.submit()
		}
	case SignedInMsg:
		m.pending = false
		if msg.Err != nil {
			// Stay on the form, keep entered fields, show the error.
			m.errMsg = msg.Err.Error()
			return m, nil
		}
		m.errMsg = ""
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) cycleFocus(forward bool) Model {
	m.inputs[m.focus].Blur()
	if forward {
		m.focus = (m.focus + 1) % fieldCount
	} else {
		m.focus = (m.focus + fieldCount - 1) % fieldCount
	}
	m.inputs[m.focus].Focus()
	return m
}

func (m Model) submit() (Model, tea.Cmd) {
	email := m.inputs[fieldEmail].Value()
	password := m.inputs[fieldPassword].Value()
	m.pending = true
	m.errMsg = ""
	port := m.port
	return m, func() tea.Msg {
		out, err := port.SignIn(context.Background(), email, password)
		return SignedInMsg{Session: out, Err: err}
	}
}

func (m Model) View() string {
	st := m.styles
	lines := []string{
		st.Title.Render("Sign in to GhostWrite"),
		"",
		m.inputs[fieldEmail].View(),
		m.inputs[fieldPassword].View(),
		"",
	}
	if m.pending {
		lines = append(lines, st.Muted.Render("signing in…"))
	} else if m.errMsg != "" {
		lines = append(lines, st.Err.Render(m.errMsg))
	} else {
		lines = append(lines, st.Muted.Render("enter to submit · tab to switch fields"))
	}
	return st.PaneActive.Width(48).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
