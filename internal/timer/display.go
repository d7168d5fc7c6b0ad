package timer

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Styles for the countdown display.
var (
	clockStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED")) // Purple

	workStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#10B981")) // Green

	breakStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F59E0B")) // Yellow

	hintStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("#6B7280")) // Gray
)

// Display renders the countdown to a terminal.
type Display struct {
	Writer   io.Writer
	UseColor bool
}

// NewDisplay creates a display writing to stdout.
func NewDisplay() *Display {
	return &Display{Writer: os.Stdout, UseColor: true}
}

// FormatClock formats remaining seconds as MM:SS.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// Render renders the current timer state.
func (d *Display) Render(state State) string {
	phaseStyle := workStyle
	phaseLabel := "Work (25 min)"
	if state.Phase == PhaseBreak {
		phaseStyle = breakStyle
		phaseLabel = "Break (5 min)"
	}

	var out string
	header := state.Phase.String()
	if state.Subject != "" {
		header += "  " + state.Subject
	}
	if d.UseColor {
		out += phaseStyle.Render(header)
	} else {
		out += header
	}
	out += "\n\n"

	clock := FormatClock(state.Remaining)
	if d.UseColor {
		out += clockStyle.Render(clock)
	} else {
		out += clock
	}
	out += "\n\n"
	out += phaseLabel + "\n\n"

	var hint string
	if state.Running {
		hint = "Press SPACE to pause, R to reset, Q to quit"
	} else {
		hint = "[STOPPED] Press SPACE to start, R to reset, Q to quit"
	}
	if d.UseColor {
		out += hintStyle.Render(hint)
	} else {
		out += hint
	}

	return out
}

// ClearScreen clears the terminal screen.
func (d *Display) ClearScreen() {
	fmt.Fprint(d.Writer, "\033[H\033[2J")
}

// MoveCursorHome moves the cursor to the home position.
func (d *Display) MoveCursorHome() {
	fmt.Fprint(d.Writer, "\033[H")
}
