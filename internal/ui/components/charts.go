package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"ghostwrite/internal/ui/theme"
)

// StatCard renders one headline number with its label underneath the
// dashboard's four-up layout.
func StatCard(st theme.Styles, label, value string, accent lipgloss.Style) string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		st.Muted.Render(label),
		accent.Render(value),
	)
	return st.Pane.Width(18).Render(body)
}

// BarChart draws one column per datum, scaled to maxHeight rows.
func BarChart(st theme.Styles, labels []string, counts []int, maxHeight int) string {
	if len(counts) == 0 {
		return st.Muted.Render("no activity yet")
	}
	peak := 1
	for _, c := range counts {
		if c > peak {
			peak = c
		}
	}

	var rows []string
	for level := maxHeight; level >= 1; level-- {
		var sb strings.Builder
		for _, c := range counts {
			filled := c*maxHeight >= level*peak && c > 0
			if filled {
				sb.WriteString(st.Title.Render("██"))
			} else {
				sb.WriteString("  ")
			}
			sb.WriteString(" ")
		}
		rows = append(rows, sb.String())
	}

	var axis strings.Builder
	for _, label := range labels {
		if len(label) >= 2 {
			label = label[len(label)-2:]
		}
		axis.WriteString(fmt.Sprintf("%-3s", label))
	}
	rows = append(rows, st.Muted.Render(axis.String()))
	return strings.Join(rows, "\n")
}

// ProgressBar renders a 0-100 level as a fixed-width bar.
func ProgressBar(st theme.Styles, level, width int) string {
	if width <= 0 {
		width = 10
	}
	if level < 0 {
		level = 0
	}
	if level > 100 {
		level = 100
	}
	filled := level * width / 100
	bar := st.Good.Render(strings.Repeat("█", filled)) + st.Muted.Render(strings.Repeat("░", width-filled))
	return fmt.Sprintf("%s %3d%%", bar, level)
}
