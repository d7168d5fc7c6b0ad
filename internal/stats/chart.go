package stats

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	barStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#38BDF8")) // Sky blue

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280")) // Gray
)

// Chart renders per-subject totals as a horizontal bar chart.
type Chart struct {
	Width    int // bar area width in cells
	UseColor bool
}

// NewChart creates a chart with default sizing.
func NewChart() *Chart {
	return &Chart{Width: 40, UseColor: true}
}

// Render draws one line per subject. An empty total set renders a hint
// instead of an empty chart.
func (c *Chart) Render(totals []SubjectTotal) string {
	if len(totals) == 0 {
		return "No study sessions logged yet."
	}

	maxMinutes := totals[0].Minutes
	for _, t := range totals {
		if t.Minutes > maxMinutes {
			maxMinutes = t.Minutes
		}
	}

	labelWidth := 0
	for _, t := range totals {
		if len(t.Subject) > labelWidth {
			labelWidth = len(t.Subject)
		}
	}

	var b strings.Builder
	for _, t := range totals {
		filled := 1
		if maxMinutes > 0 {
			filled = t.Minutes * c.Width / maxMinutes
			if filled < 1 {
				filled = 1
			}
		}

		bar := strings.Repeat("█", filled)
		label := fmt.Sprintf("%-*s", labelWidth, t.Subject)
		value := fmt.Sprintf("%d min", t.Minutes)

		if c.UseColor {
			b.WriteString(labelStyle.Render(label))
			b.WriteString("  ")
			b.WriteString(barStyle.Render(bar))
		} else {
			b.WriteString(label)
			b.WriteString("  ")
			b.WriteString(bar)
		}
		b.WriteString("  " + value + "\n")
	}
	return b.String()
}
