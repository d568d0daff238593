package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "-", formatDate(time.Time{}))

	stamp := time.Date(2026, 8, 29, 9, 30, 0, 0, time.Local)
	assert.Equal(t, "2026-08-29 09:30", formatDate(stamp))
}

func TestParseNaturalDate(t *testing.T) {
	t.Run("rfc3339", func(t *testing.T) {
		got, err := parseNaturalDate("2026-09-15T10:00:00Z")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC), got.UTC())
	})

	t.Run("plain date", func(t *testing.T) {
		got, err := parseNaturalDate("2026-09-15")
		require.NoError(t, err)
		assert.Equal(t, 2026, got.Year())
		assert.Equal(t, time.September, got.Month())
		assert.Equal(t, 15, got.Day())
	})

	t.Run("natural language", func(t *testing.T) {
		got, err := parseNaturalDate("tomorrow")
		require.NoError(t, err)
		assert.True(t, got.After(time.Now()))
	})

	t.Run("gibberish", func(t *testing.T) {
		_, err := parseNaturalDate("not a date at all xyzzy")
		assert.Error(t, err)
	})
}
