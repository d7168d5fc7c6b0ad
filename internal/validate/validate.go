// Package validate provides input validation helpers for chronosdeck.
// Editors validate required fields here before any store write is attempted.
package validate

import (
	"strings"
	"unicode/utf8"

	"chronosdeck/internal/errors"
)

const (
	// MaxNameLength is the maximum length for subject, task, and deck names.
	MaxNameLength = 128
	// MaxCardFieldLength is the maximum length for a card term or definition.
	MaxCardFieldLength = 4096
)

// NonEmpty validates that a required field is not blank.
func NonEmpty(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.NewUserError(
			field+" cannot be empty",
			"Provide a value for "+field)
	}
	return nil
}

// Name validates a subject, task, or deck name.
func Name(field, value string) error {
	if err := NonEmpty(field, value); err != nil {
		return err
	}
	if utf8.RuneCountInString(value) > MaxNameLength {
		return errors.NewUserErrorWithField(field, value,
			field+" too long",
			"Names must be 128 characters or fewer")
	}
	return nil
}

// CardField validates a card term or definition.
func CardField(field, value string) error {
	if err := NonEmpty(field, value); err != nil {
		return err
	}
	if utf8.RuneCountInString(value) > MaxCardFieldLength {
		return errors.NewUserErrorWithField(field, value,
			field+" too long",
			"Card fields must be 4096 characters or fewer")
	}
	return nil
}

// SubjectSelected validates that a task carries a subject tag.
func SubjectSelected(subjectTag string) error {
	if strings.TrimSpace(subjectTag) == "" {
		return errors.NewUserError(
			"Subject must be selected",
			"Pick one of your subjects with --subject")
	}
	return nil
}

// HexColor validates a hex color code. Empty is allowed (no color).
func HexColor(color string) error {
	if color == "" {
		return nil
	}
	if !strings.HasPrefix(color, "#") {
		return errors.NewUserErrorWithField("color", color,
			"Invalid color format",
			"Use hex format like '#22c55e'")
	}
	hex := strings.TrimPrefix(color, "#")
	if len(hex) != 6 {
		return errors.NewUserErrorWithField("color", color,
			"Invalid color format",
			"Use 6-digit hex format like '#22c55e'")
	}
	for _, c := range hex {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')) {
			return errors.NewUserErrorWithField("color", color,
				"Invalid hex character in color",
				"Use only hex digits (0-9, A-F)")
		}
	}
	return nil
}
