// Package calendar provides the client for the Google Calendar API.
//
// It is the external-collaborator boundary of calbridge: everything above
// it talks to the Provider interface, which lists events in a time window
// (recurring events pre-expanded into instances, ordered by start, capped
// at DefaultMaxResults), inserts events, and deletes events by id. Raw
// event records expose start and end exactly as the provider reports them,
// either a date-time with offset or a bare date for all-day events;
// normalization happens in the agenda package.
//
// Provider and transport failures propagate unmodified. There are no
// retries; a failure surfaces immediately to the caller.
package calendar
