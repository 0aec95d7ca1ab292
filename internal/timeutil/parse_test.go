package timeutil

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eastern(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	return loc
}

func TestParseInZone_BareDate(t *testing.T) {
	loc := eastern(t)

	got, err := ParseInZone("2026-01-28", loc)
	require.NoError(t, err)

	want := time.Date(2026, 1, 28, 0, 0, 0, 0, loc)
	assert.True(t, got.Equal(want), "expected local midnight, got %v", got)
	assert.Equal(t, loc, got.Location())
}

func TestParseInZone_ExplicitOffset(t *testing.T) {
	loc := eastern(t)

	tests := []struct {
		name  string
		input string
	}{
		{name: "UTC suffix", input: "2026-01-28T14:00:00Z"},
		{name: "eastern standard offset", input: "2026-01-28T09:00:00-05:00"},
		{name: "central european offset", input: "2026-01-28T15:00:00+01:00"},
	}

	// All three inputs name the same instant.
	want := time.Date(2026, 1, 28, 9, 0, 0, 0, loc)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseInZone(tt.input, loc)
			require.NoError(t, err)
			assert.True(t, got.Equal(want), "got %v, want %v", got, want)
			assert.Equal(t, loc, got.Location())
		})
	}
}

func TestParseInZone_OffsetlessDateTimeAnchorsToMidnight(t *testing.T) {
	loc := eastern(t)

	got, err := ParseInZone("2026-01-28T16:45:00", loc)
	require.NoError(t, err)

	want := time.Date(2026, 1, 28, 0, 0, 0, 0, loc)
	assert.True(t, got.Equal(want), "offsetless date-time should anchor to midnight, got %v", got)
}

func TestParseInZone_Idempotent(t *testing.T) {
	loc := eastern(t)

	inputs := []string{
		"2026-01-28T09:00:00-05:00",
		"2026-07-04T12:30:00Z",
		"2026-11-01T01:30:00-04:00", // DST fall-back morning
	}

	for _, input := range inputs {
		once, err := ParseInZone(input, loc)
		require.NoError(t, err)

		twice, err := ParseInZone(once.Format(time.RFC3339), loc)
		require.NoError(t, err)

		assert.True(t, once.Equal(twice), "normalize should be idempotent for %q", input)
		assert.Equal(t, once.Format(time.RFC3339), twice.Format(time.RFC3339))
	}
}

func TestParseInZone_IndependentOfProcessTZ(t *testing.T) {
	loc := eastern(t)

	t.Setenv("TZ", "Asia/Tokyo")

	got, err := ParseInZone("2026-01-28", loc)
	require.NoError(t, err)
	assert.Equal(t, "2026-01-28T00:00:00-05:00", got.Format(time.RFC3339))
}

func TestParseInZone_Malformed(t *testing.T) {
	loc := eastern(t)

	for _, input := range []string{"", "not-a-date", "2026-13-40", "28/01/2026", "2026-01-28T25:00:00Z"} {
		_, err := ParseInZone(input, loc)
		require.Error(t, err, "input %q", input)
		assert.True(t, errors.Is(err, ErrParse), "error for %q should wrap ErrParse", input)
	}
}

func TestParseAnchored_KeepsWallClock(t *testing.T) {
	loc := eastern(t)

	got, err := ParseAnchored("2026-01-28T16:45:00", loc)
	require.NoError(t, err)

	want := time.Date(2026, 1, 28, 16, 45, 0, 0, loc)
	assert.True(t, got.Equal(want), "got %v, want %v", got, want)
}

func TestParseAnchored_OffsetConverted(t *testing.T) {
	loc := eastern(t)

	got, err := ParseAnchored("2026-01-28T14:00:00Z", loc)
	require.NoError(t, err)

	assert.Equal(t, 9, got.Hour())
	assert.Equal(t, loc, got.Location())
}

func TestParseUTCBound(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{
			name:  "offsetless treated as UTC",
			input: "2026-01-28T09:00:00",
			want:  time.Date(2026, 1, 28, 9, 0, 0, 0, time.UTC),
		},
		{
			name:  "offset converted to UTC",
			input: "2026-01-28T09:00:00-05:00",
			want:  time.Date(2026, 1, 28, 14, 0, 0, 0, time.UTC),
		},
		{
			name:  "bare date is UTC midnight",
			input: "2026-01-28",
			want:  time.Date(2026, 1, 28, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseUTCBound(tt.input)
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestIsDateOnly(t *testing.T) {
	assert.True(t, IsDateOnly("2026-01-28"))
	assert.False(t, IsDateOnly("2026-01-28T09:00:00-05:00"))
	assert.False(t, IsDateOnly("2026-01-28t09:00:00"))
}
