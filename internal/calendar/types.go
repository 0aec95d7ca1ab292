package calendar

import (
	"time"

	calendar "google.golang.org/api/calendar/v3"
)

// EventInput represents the input for creating a calendar event.
type EventInput struct {
	Summary     string
	Description string
	Start       time.Time
	End         time.Time

	// TimeZone is the display timezone attached to the event.
	TimeZone string
}

// RawTime is a start or end time exactly as the provider reports it:
// either an RFC3339 date-time with offset, or a bare date for all-day
// events. Exactly one of the two fields is set.
type RawTime struct {
	DateTime string
	Date     string
}

// Value returns whichever representation the provider supplied.
func (rt RawTime) Value() string {
	if rt.DateTime != "" {
		return rt.DateTime
	}
	return rt.Date
}

// IsDate reports whether the provider supplied a bare date.
func (rt RawTime) IsDate() bool {
	return rt.DateTime == "" && rt.Date != ""
}

// RawEvent is an event record as returned by the provider, before any
// timezone normalization. Summary may be empty.
type RawEvent struct {
	ID      string
	Summary string
	Start   RawTime
	End     RawTime
}

// toRawEvent converts a Google Calendar event to a RawEvent.
func toRawEvent(event *calendar.Event) RawEvent {
	if event == nil {
		return RawEvent{}
	}

	raw := RawEvent{
		ID:      event.Id,
		Summary: event.Summary,
	}
	if event.Start != nil {
		raw.Start = RawTime{DateTime: event.Start.DateTime, Date: event.Start.Date}
	}
	if event.End != nil {
		raw.End = RawTime{DateTime: event.End.DateTime, Date: event.End.Date}
	}
	return raw
}
