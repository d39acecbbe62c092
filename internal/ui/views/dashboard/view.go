package dashboard

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	dashboarddto "ghostwrite/internal/modules/dashboard/dto"
	"ghostwrite/internal/ui/components"
	"ghostwrite/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type DashboardPort interface {
	Load(ctx context.Context) (dashboarddto.AggregateOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type LoadedMsg struct {
	Data dashboarddto.AggregateOutput
	Err  error
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port    DashboardPort
	styles  theme.Styles
	spinner spinner.Model
	loading bool
	loaded  bool
	data    dashboarddto.AggregateOutput
	errMsg  string
	width   int
}

func New(port DashboardPort, st theme.Styles) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = st.Title
	return Model{port: port, styles: st, spinner: sp}
}

func (m *Model) SetStyles(st theme.Styles) {
	m.styles = st
	m.spinner.Style = st.Title
}

func (m *Model) SetWidth(w int) { m.width = w }

// Reload kicks off a fresh aggregation; the spinner runs until the
// fan-in settles.
func (m *Model) Reload() tea.Cmd {
	m.loading = true
	m.errMsg = ""
	port := m.port
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		data, err := port.Load(context.Background())
		return LoadedMsg{Data: data, Err: err}
	})
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LoadedMsg:
		m.loading = false
		if msg.Err != nil {
			// No partial rendering: keep whatever full snapshot we had.
			m.errMsg = msg.Err.Error()
			return m, nil
		}
		m.loaded = true
		m.data = msg.Data
		return m, nil
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) View() string {
	st := m.styles
	if m.loading && !m.loaded {
		return st.Pane.Render(m.spinner.View() + " loading dashboard…")
	}
	if m.errMsg != "" && !m.loaded {
		return st.Pane.Render(st.Err.Render("dashboard load failed: "+m.errMsg) + "\n" + st.Muted.Render("press r to retry"))
	}

	var sections []string
	if m.errMsg != "" {
		sections = append(sections, st.Err.Render("refresh failed: "+m.errMsg))
	}
	sections = append(sections,
		m.statsRow(),
		m.activityPane(),
		lipgloss.JoinHorizontal(lipgloss.Top, m.skillsPane(), m.insightsPane()),
		m.achievementsPane(),
	)
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) statsRow() string {
	st := m.styles
	s := m.data.Stats
	return lipgloss.JoinHorizontal(lipgloss.Top,
		components.StatCard(st, "Total Activities", fmt.Sprintf("%d", s.TotalActivities), st.Title),
		components.StatCard(st, "Current Streak", fmt.Sprintf("%d 🔥", s.CurrentStreak), st.Hot),
		components.StatCard(st, "Skills Learned", fmt.Sprintf("%d", s.SkillsLearned), st.Good),
		components.StatCard(st, "Consistency", fmt.Sprintf("%d%%", s.ConsistencyRate), st.Title),
	)
}

func (m Model) activityPane() string {
	st := m.styles
	labels := make([]string, 0, len(m.data.Activities))
	counts := make([]int, 0, len(m.data.Activities))
	for _, a := range m.data.Activities {
		labels = append(labels, a.Date)
		counts = append(counts, a.Count)
	}
	chart := components.BarChart(st, labels, counts, 5)
	return st.Pane.Render(st.Title.Render("Activity (7 days)") + "\n\n" + chart)
}

func (m Model) skillsPane() string {
	st := m.styles
	var sb strings.Builder
	sb.WriteString(st.Title.Render("Skills"))
	sb.WriteString("\n")

	// Bucket by category, first-seen order; same-category rows stay
	// adjacent regardless of backend ordering.
	var order []string
	groups := make(map[string][]dashboarddto.SkillOutput)
	for _, skill := range m.data.Skills {
		if _, seen := groups[skill.Category]; !seen {
			order = append(order, skill.Category)
		}
		groups[skill.Category] = append(groups[skill.Category], skill)
	}
	for _, category := range order {
		sb.WriteString("\n" + st.Muted.Render(category) + "\n")
		for _, skill := range groups[category] {
			sb.WriteString(fmt.Sprintf("%-16s %s\n", skill.Name, components.ProgressBar(st, skill.Level, 10)))
		}
	}
	return st.Pane.Render(strings.TrimRight(sb.String(), "\n"))
}

func (m Model) insightsPane() string {
	st := m.styles
	var sb strings.Builder
	sb.WriteString(st.Title.Render("Insights"))
	sb.WriteString("\n")
	for _, ins := range m.data.Insights {
		sb.WriteString("\n" + ins.Icon + " " + st.Value.Render(ins.Title) + "\n")
		sb.WriteString(st.Muted.Render(ins.Description) + "\n")
	}
	return st.Pane.Render(strings.TrimRight(sb.String(), "\n"))
}

func (m Model) achievementsPane() string {
	st := m.styles
	var cells []string
	for _, a := range m.data.Achievements {
		name := st.Muted.Render(a.Name)
		icon := "🔒"
		if a.Unlocked {
			name = st.Value.Render(a.Name)
			icon = a.Icon
		}
		cells = append(cells, fmt.Sprintf("%s %s", icon, name))
	}
	var rows []string
	for start := 0; start < len(cells); start += 4 {
		end := start + 4
		if end > len(cells) {
			end = len(cells)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, pad(cells[start:end])...))
	}
	grid := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return st.Pane.Render(st.Title.Render("Achievements") + "\n\n" + grid)
}

func pad(cells []string) []string {
	out := make([]string, 0, len(cells))
	for _, c := range cells {
		out = append(out, lipgloss.NewStyle().Width(24).Render(c))
	}
	return out
}
