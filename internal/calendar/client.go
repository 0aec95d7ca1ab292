package calendar

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	calendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/teemow/calbridge/internal/google"
)

// DefaultMaxResults caps the number of events returned per list call.
// The provider silently drops matches beyond the cap; this is a documented
// boundary limitation, not an error.
const DefaultMaxResults = 2500

// SendUpdatesAll notifies all attendees of an insert or delete.
const SendUpdatesAll = "all"

// Provider is the contract the rest of the system has with the calendar
// backend: list events in an absolute-instant window with recurring events
// pre-expanded, insert an event, delete an event. Tests substitute a fake
// implementation that returns fixtures instead of making network calls.
type Provider interface {
	ListEvents(ctx context.Context, calendarID string, timeMin, timeMax time.Time) ([]RawEvent, error)
	InsertEvent(ctx context.Context, calendarID string, input EventInput, sendUpdates string) (*RawEvent, error)
	DeleteEvent(ctx context.Context, calendarID, eventID, sendUpdates string) error
}

// Client implements Provider against the Google Calendar API.
type Client struct {
	svc *calendar.Service
}

// NewClient creates a Calendar client authenticated through the given
// token provider.
func NewClient(ctx context.Context, provider google.TokenProvider) (*Client, error) {
	if provider == nil {
		return nil, fmt.Errorf("token provider cannot be nil")
	}

	ts, err := provider.TokenSource(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get Google OAuth token source: %w", err)
	}

	client := oauth2.NewClient(ctx, ts)

	// Force HTTP/1.1 by disabling HTTP/2
	transport := client.Transport.(*oauth2.Transport)
	transport.Base = &http.Transport{
		ForceAttemptHTTP2: false,
	}

	svc, err := calendar.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("failed to create Calendar service: %w", err)
	}

	return &Client{svc: svc}, nil
}

// ListEvents lists events in a calendar within [timeMin, timeMax]. The
// bounds must be absolute instants; they are sent to the API in UTC.
// Recurring events are expanded into individual instances and results are
// ordered by start time, capped at DefaultMaxResults.
func (c *Client) ListEvents(ctx context.Context, calendarID string, timeMin, timeMax time.Time) ([]RawEvent, error) {
	events, err := c.svc.Events.List(calendarID).
		TimeMin(timeMin.UTC().Format(time.RFC3339)).
		TimeMax(timeMax.UTC().Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		MaxResults(DefaultMaxResults).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	raws := make([]RawEvent, 0, len(events.Items))
	for _, event := range events.Items {
		raws = append(raws, toRawEvent(event))
	}
	return raws, nil
}

// InsertEvent creates a new event in the given calendar.
func (c *Client) InsertEvent(ctx context.Context, calendarID string, input EventInput, sendUpdates string) (*RawEvent, error) {
	event := &calendar.Event{
		Summary:     input.Summary,
		Description: input.Description,
		Start: &calendar.EventDateTime{
			DateTime: input.Start.Format(time.RFC3339),
			TimeZone: input.TimeZone,
		},
		End: &calendar.EventDateTime{
			DateTime: input.End.Format(time.RFC3339),
			TimeZone: input.TimeZone,
		},
	}

	created, err := c.svc.Events.Insert(calendarID, event).
		SendUpdates(sendUpdates).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	raw := toRawEvent(created)
	return &raw, nil
}

// DeleteEvent deletes an event by id.
func (c *Client) DeleteEvent(ctx context.Context, calendarID, eventID, sendUpdates string) error {
	err := c.svc.Events.Delete(calendarID, eventID).
		SendUpdates(sendUpdates).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}
