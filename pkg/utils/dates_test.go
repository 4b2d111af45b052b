package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlexibleDate(t *testing.T) {
	cases := []struct {
		input string
		ok    bool
	}{
		{"2026-06-01", true},
		{"2026/06/01", true},
		{"01-06-2026", true},
		{"Jun 1, 2026", true},
		{"1 Jun 2026", true},
		{"2026-06-01T00:00:00Z", true},
		{"", false},
		{"   ", false},
		{"sometime next summer", false},
		{"31-31-2026", false},
	}

	for _, tc := range cases {
		_, ok := ParseFlexibleDate(tc.input)
		assert.Equal(t, tc.ok, ok, "input %q", tc.input)
	}
}

func TestDurationDays(t *testing.T) {
	start, ok := ParseFlexibleDate("2026-06-01")
	require.True(t, ok)
	end, ok := ParseFlexibleDate("2026-06-11")
	require.True(t, ok)

	assert.Equal(t, 10, DurationDays(start, end))
	assert.Equal(t, 0, DurationDays(start, start))
}

func TestDurationDays_IgnoresPartialDays(t *testing.T) {
	start := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	end := time.Date(2026, 6, 4, 8, 0, 0, 0, time.UTC)

	assert.Equal(t, 2, DurationDays(start, end))
}
