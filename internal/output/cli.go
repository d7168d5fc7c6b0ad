package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"chronosdeck/internal/model"
)

// Styles for CLI output.
var (
	colorPrimary   = lipgloss.Color("#7C3AED") // Purple
	colorSecondary = lipgloss.Color("#10B981") // Green
	colorMuted     = lipgloss.Color("#6B7280") // Gray
	colorWarning   = lipgloss.Color("#F59E0B") // Yellow
	colorError     = lipgloss.Color("#EF4444") // Red

	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorSecondary)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorWarning)

	styleError = lipgloss.NewStyle().
			Foreground(colorError)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleBold = lipgloss.NewStyle().
			Bold(true)

	styleSubject = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleDeck = lipgloss.NewStyle().
			Foreground(colorSecondary)

	styleDone = lipgloss.NewStyle().
			Strikethrough(true).
			Foreground(colorMuted)
)

// CLIFormatter provides CLI-specific formatting.
type CLIFormatter struct {
	*Formatter
}

// NewCLIFormatter creates a new CLI formatter.
func NewCLIFormatter(f *Formatter) *CLIFormatter {
	return &CLIFormatter{Formatter: f}
}

// Title prints a title.
func (c *CLIFormatter) Title(text string) {
	if c.IsColorEnabled() {
		c.Println(styleTitle.Render(text))
	} else {
		c.Println(text)
	}
}

// Success prints a success message.
func (c *CLIFormatter) Success(text string) {
	if c.IsColorEnabled() {
		c.Println(styleSuccess.Render("✓ " + text))
	} else {
		c.Println("✓ " + text)
	}
}

// Warning prints a warning message.
func (c *CLIFormatter) Warning(text string) {
	if c.IsColorEnabled() {
		c.Println(styleWarning.Render("⚠ " + text))
	} else {
		c.Println("⚠ " + text)
	}
}

// Error prints an error message.
func (c *CLIFormatter) Error(text string) {
	if c.IsColorEnabled() {
		c.Println(styleError.Render("✗ " + text))
	} else {
		c.Println("✗ " + text)
	}
}

// Muted prints muted text.
func (c *CLIFormatter) Muted(text string) {
	if c.IsColorEnabled() {
		c.Println(styleMuted.Render(text))
	} else {
		c.Println(text)
	}
}

// SubjectName formats a subject name.
func (c *CLIFormatter) SubjectName(name string) string {
	if c.IsColorEnabled() {
		return styleSubject.Render(name)
	}
	return name
}

// DeckName formats a deck name.
func (c *CLIFormatter) DeckName(name string) string {
	if c.IsColorEnabled() {
		return styleDeck.Render(name)
	}
	return name
}

// PrintTask prints one task line. Completed tasks render struck through;
// the subject tag is printed as stored even when the subject itself has
// since been renamed or removed.
func (c *CLIFormatter) PrintTask(task *model.Task) {
	marker := "[ ]"
	name := task.TaskName
	if task.IsComplete {
		marker = "[x]"
		if c.IsColorEnabled() {
			name = styleDone.Render(name)
		}
	}

	line := fmt.Sprintf("%s %s", marker, name)
	if task.SubjectTag != "" {
		line += "  " + c.SubjectName("#"+task.SubjectTag)
	}
	if task.DueDate != "" {
		line += "  " + "due " + task.DueDate
	}
	c.Println(line)
}

// PrintCard prints one flashcard.
func (c *CLIFormatter) PrintCard(card *model.Card) {
	if c.IsColorEnabled() {
		c.Printf("%s\n", styleBold.Render(card.Term))
	} else {
		c.Printf("%s\n", card.Term)
	}
	c.Printf("  %s\n", card.Definition)
}

// PrintQuizScore prints a recorded quiz result.
func (c *CLIFormatter) PrintQuizScore(entry *model.QuizHistoryEntry) {
	c.Printf("%s  %s  %s\n", c.DeckName(entry.DeckName), entry.Score, FormatTimeShort(entry.Timestamp))
}

// Table helpers for CLI output.
type TableRow struct {
	Columns []string
}

// PrintTable prints a simple table.
func (c *CLIFormatter) PrintTable(headers []string, rows []TableRow) {
	if len(rows) == 0 {
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, col := range row.Columns {
			if i < len(widths) && len(col) > widths[i] {
				widths[i] = len(col)
			}
		}
	}

	var headerLine strings.Builder
	for i, h := range headers {
		headerLine.WriteString(fmt.Sprintf("%-*s  ", widths[i], h))
	}
	if c.IsColorEnabled() {
		c.Println(styleBold.Render(headerLine.String()))
	} else {
		c.Println(headerLine.String())
	}

	var sep strings.Builder
	for _, w := range widths {
		sep.WriteString(strings.Repeat("─", w) + "  ")
	}
	c.Println(sep.String())

	for _, row := range rows {
		var rowLine strings.Builder
		for i, col := range row.Columns {
			if i < len(widths) {
				rowLine.WriteString(fmt.Sprintf("%-*s  ", widths[i], col))
			}
		}
		c.Println(rowLine.String())
	}
}
