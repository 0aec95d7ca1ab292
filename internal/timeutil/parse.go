package timeutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrParse indicates a date/time string that does not match any of the
// accepted ISO-8601 forms. Callers have no fallback for it.
var ErrParse = errors.New("unparsable date/time")

const (
	layoutDate     = "2006-01-02"
	layoutDateTime = "2006-01-02T15:04:05"
)

// IsDateOnly reports whether s is a bare calendar date without a time
// component (e.g. "2026-01-28").
func IsDateOnly(s string) bool {
	return !strings.ContainsAny(s, "tT")
}

// ParseInZone parses an ISO-8601 date or date-time string and returns the
// instant expressed in loc.
//
// Strings with an explicit UTC offset keep their absolute instant and are
// merely converted to loc. Bare dates and offsetless date-times carry no
// absolute instant, so they are anchored to local midnight of their
// calendar date in loc. This is the display-side policy used for event
// start/end times coming back from the provider.
func ParseInZone(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.ParseInLocation(layoutDate, s, loc); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.In(loc), nil
	}
	if t, err := time.ParseInLocation(layoutDateTime, s, loc); err == nil {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc), nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrParse, s)
}

// ParseAnchored parses an ISO-8601 date or date-time string, anchoring
// offsetless input to loc while keeping its wall-clock time. Input with an
// explicit offset is converted to loc.
//
// Unlike ParseInZone this preserves the time of day of offsetless
// date-times; it is the policy used for the deletion target.
func ParseAnchored(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.ParseInLocation(layoutDate, s, loc); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.In(loc), nil
	}
	if t, err := time.ParseInLocation(layoutDateTime, s, loc); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrParse, s)
}

// ParseUTCBound parses a query-window bound and returns it in UTC.
// Offsetless input is treated as already being UTC; input with an explicit
// offset is converted. This intentionally differs from the display-side
// anchoring in ParseInZone.
func ParseUTCBound(s string) (time.Time, error) {
	if t, err := time.ParseInLocation(layoutDate, s, time.UTC); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.ParseInLocation(layoutDateTime, s, time.UTC); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrParse, s)
}
