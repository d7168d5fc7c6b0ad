package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "chronosdeck/internal/errors"
)

func TestParseDueISO(t *testing.T) {
	due, err := ParseDue("2026-09-01")
	require.NoError(t, err)
	assert.Equal(t, 2026, due.Year())
	assert.Equal(t, time.September, due.Month())
	assert.Equal(t, 1, due.Day())
}

func TestParseDueNaturalLanguage(t *testing.T) {
	due, err := ParseDue("tomorrow")
	require.NoError(t, err)

	tomorrow := time.Now().AddDate(0, 0, 1)
	assert.Equal(t, tomorrow.Day(), due.Day())
}

func TestParseDueEmpty(t *testing.T) {
	_, err := ParseDue("  ")
	require.Error(t, err)
	assert.True(t, apperrors.IsUserError(err))
}

func TestParseDueGarbage(t *testing.T) {
	_, err := ParseDue("not a date at all zzz")
	require.Error(t, err)
	assert.True(t, apperrors.IsUserError(err))
}

func TestFormatDue(t *testing.T) {
	at := time.Date(2026, 9, 1, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "2026-09-01", FormatDue(at))
}

func TestFormatTimeUntil(t *testing.T) {
	now := time.Now()

	assert.Equal(t, "overdue", FormatTimeUntil(now.Add(-time.Hour)))
	assert.Contains(t, FormatTimeUntil(now.Add(30*time.Minute)), "minute")
	assert.Contains(t, FormatTimeUntil(now.Add(3*time.Hour)), "hour")
	assert.Contains(t, FormatTimeUntil(now.Add(72*time.Hour)), "day")
}
