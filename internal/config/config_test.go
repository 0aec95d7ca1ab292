package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalendarSet(t *testing.T) {
	tests := []struct {
		name     string
		ids      []string
		expected []string
	}{
		{
			name:     "both unset defaults to primary once",
			ids:      []string{"", ""},
			expected: []string{"primary"},
		},
		{
			name:     "distinct identifiers preserved in order",
			ids:      []string{"work@group.calendar.google.com", "home@group.calendar.google.com"},
			expected: []string{"work@group.calendar.google.com", "home@group.calendar.google.com"},
		},
		{
			name:     "duplicate identifiers collapse",
			ids:      []string{"work@group.calendar.google.com", "work@group.calendar.google.com"},
			expected: []string{"work@group.calendar.google.com"},
		},
		{
			name:     "secondary unset falls back to primary calendar",
			ids:      []string{"work@group.calendar.google.com", ""},
			expected: []string{"work@group.calendar.google.com", "primary"},
		},
		{
			name:     "explicit primary deduplicates against default",
			ids:      []string{"primary", ""},
			expected: []string{"primary"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, calendarSet(tt.ids...))
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(EnvPrimaryCalendar, "")
	t.Setenv(EnvSecondaryCalendar, "")
	t.Setenv(EnvTimeZone, "")
	t.Setenv(EnvTokenFile, "")
	t.Setenv(EnvClientSecretFile, "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"primary"}, cfg.CalendarIDs)
	assert.Equal(t, DefaultTimeZone, cfg.ReferenceZone.String())
	assert.NotEmpty(t, cfg.TokenFile)
}

func TestLoad_InvalidTimezone(t *testing.T) {
	t.Setenv(EnvTimeZone, "Not/AZone")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Not/AZone")
}

func TestLoad_ExplicitValues(t *testing.T) {
	t.Setenv(EnvPrimaryCalendar, "team@group.calendar.google.com")
	t.Setenv(EnvSecondaryCalendar, "oncall@group.calendar.google.com")
	t.Setenv(EnvTimeZone, "Europe/Berlin")
	t.Setenv(EnvTokenFile, "/tmp/calbridge-test/token.json")
	t.Setenv(EnvClientSecretFile, "/tmp/calbridge-test/client_secret.json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"team@group.calendar.google.com", "oncall@group.calendar.google.com"}, cfg.CalendarIDs)
	assert.Equal(t, "Europe/Berlin", cfg.ReferenceZone.String())
	assert.Equal(t, "/tmp/calbridge-test/token.json", cfg.TokenFile)
	assert.Equal(t, "/tmp/calbridge-test/client_secret.json", cfg.ClientSecretFile)
}
