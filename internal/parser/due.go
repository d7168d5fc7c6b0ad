// Package parser parses natural language dates for task deadlines.
package parser

import (
	"fmt"
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"

	apperrors "chronosdeck/internal/errors"
)

// ParseDue parses a due date expression. Accepts ISO dates ("2026-09-01")
// and natural language ("tomorrow", "next friday 5pm").
func ParseDue(input string) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return time.Time{}, apperrors.NewUserError(
			"due date is required",
			"Provide a date like '2026-09-01' or 'next friday'",
		)
	}

	cfg := &dateparser.Configuration{
		CurrentTime: time.Now(),
	}
	result, err := dateparser.Parse(cfg, input)
	if err != nil {
		return time.Time{}, apperrors.NewUserError(
			fmt.Sprintf("could not parse due date %q", input),
			"Try an ISO date like '2026-09-01' or a phrase like 'tomorrow 5pm'",
		)
	}
	return result.Time, nil
}

// FormatDue formats a due date for storage.
func FormatDue(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatTimeUntil formats the duration until a deadline.
func FormatTimeUntil(t time.Time) string {
	diff := time.Until(t)
	if diff < 0 {
		return "overdue"
	}
	if diff < time.Hour {
		mins := int(diff.Minutes())
		if mins <= 1 {
			return "in 1 minute"
		}
		return fmt.Sprintf("in %d minutes", mins)
	}
	if diff < 24*time.Hour {
		hours := int(diff.Hours())
		if hours == 1 {
			return "in 1 hour"
		}
		return fmt.Sprintf("in %d hours", hours)
	}
	days := int(diff.Hours() / 24)
	if days == 1 {
		return "in 1 day"
	}
	return fmt.Sprintf("in %d days", days)
}
