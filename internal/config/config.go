package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables read at startup.
const (
	EnvPrimaryCalendar   = "GCAL_PRIMARY_ID"
	EnvSecondaryCalendar = "GCAL_SECONDARY_ID"
	EnvClientSecretFile  = "GOOGLE_CLIENT_SECRET_FILE"
	EnvTimeZone          = "CALBRIDGE_TIMEZONE"
	EnvTokenFile         = "CALBRIDGE_TOKEN_FILE"
)

// DefaultTimeZone is the reference zone used to interpret bare dates and to
// display all output timestamps.
const DefaultTimeZone = "America/New_York"

// Config holds the process-wide, immutable configuration. It is constructed
// once at startup and injected into the components that need it.
type Config struct {
	// CalendarIDs is the ordered, deduplicated set of calendar identifiers
	// to aggregate over. Defaults to ["primary"].
	CalendarIDs []string

	// ReferenceZone is the fixed timezone for this deployment.
	ReferenceZone *time.Location

	// ClientSecretFile is the path to the Google OAuth client secret JSON.
	// Required for authentication; there is no default.
	ClientSecretFile string

	// TokenFile is the path where the OAuth token is persisted.
	TokenFile string
}

// Load builds a Config from the environment. A .env file in the working
// directory is honored if present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	zone := os.Getenv(EnvTimeZone)
	if zone == "" {
		zone = DefaultTimeZone
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", zone, err)
	}

	tokenFile := os.Getenv(EnvTokenFile)
	if tokenFile == "" {
		tokenFile = defaultTokenFile()
	}

	return &Config{
		CalendarIDs:      calendarSet(os.Getenv(EnvPrimaryCalendar), os.Getenv(EnvSecondaryCalendar)),
		ReferenceZone:    loc,
		ClientSecretFile: os.Getenv(EnvClientSecretFile),
		TokenFile:        tokenFile,
	}, nil
}

// calendarSet builds the deduplicated, order-preserving calendar set.
// Unset identifiers default to "primary", so a host with no configuration
// aggregates over the primary calendar only.
func calendarSet(ids ...string) []string {
	seen := make(map[string]bool, len(ids))
	var set []string
	for _, id := range ids {
		if id == "" {
			id = "primary"
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		set = append(set, id)
	}
	return set
}

func defaultTokenFile() string {
	return filepath.Join(userCacheDir(), "calbridge", "gcal_token.json")
}

func userCacheDir() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return dir
	}
	return os.TempDir()
}
