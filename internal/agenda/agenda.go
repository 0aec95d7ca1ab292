package agenda

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/teemow/calbridge/internal/calendar"
	"github.com/teemow/calbridge/internal/config"
	"github.com/teemow/calbridge/internal/logging"
	"github.com/teemow/calbridge/internal/timeutil"
)

// NoTitle is the placeholder summary for events the provider reports
// without one.
const NoTitle = "(no title)"

// Event is a calendar event normalized to the reference zone. It is
// immutable once constructed and lives only for the duration of one tool
// call; nothing is persisted.
type Event struct {
	CalendarID string
	EventID    string
	Summary    string
	Start      time.Time
	End        time.Time
	AllDay     bool
}

// TimeWindow bounds an event query.
type TimeWindow struct {
	Start time.Time
	End   time.Time
}

// Service fetches, aggregates and deletes events across the configured
// calendar set. It holds no per-call state; the provider is re-queried on
// every operation.
type Service struct {
	provider    calendar.Provider
	calendarIDs []string
	zone        *time.Location
	logger      *slog.Logger
}

// NewService creates an agenda service over the given provider and
// configuration.
func NewService(provider calendar.Provider, cfg *config.Config, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		provider:    provider,
		calendarIDs: dedupe(cfg.CalendarIDs),
		zone:        cfg.ReferenceZone,
		logger:      logger,
	}
}

// dedupe removes duplicate calendar identifiers preserving first
// occurrence, so each calendar is queried at most once per aggregation.
func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	var out []string
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// Fetch lists events from one calendar within the window, normalizing each
// record's start and end into the reference zone and tagging it with its
// source calendar. Provider errors propagate unmodified.
func (s *Service) Fetch(ctx context.Context, calendarID string, window TimeWindow) ([]Event, error) {
	raws, err := s.provider.ListEvents(ctx, calendarID, window.Start, window.End)
	if err != nil {
		return nil, err
	}

	events := make([]Event, 0, len(raws))
	for _, raw := range raws {
		event, err := s.normalize(calendarID, raw)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	s.logger.Debug("fetched events",
		logging.Operation("fetch"),
		logging.Calendar(calendarID),
		slog.Int("count", len(events)),
	)
	return events, nil
}

// FetchAcross fans Fetch out over the configured calendar set and merges
// the results into one sequence sorted ascending by start time. The
// per-calendar fetches run concurrently; the sort keeps the merge
// deterministic regardless of completion order. An empty calendar set
// yields an empty sequence.
func (s *Service) FetchAcross(ctx context.Context, window TimeWindow) ([]Event, error) {
	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		all      []Event
		firstErr error
	)

	for _, id := range s.calendarIDs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			events, err := s.Fetch(ctx, id, window)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				return
			}
			all = append(all, events...)
		}()
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Start.Before(all[j].Start)
	})
	return all, nil
}

// normalize converts a raw provider record into an Event. An event is
// all-day iff the provider reported both bounds as bare dates.
func (s *Service) normalize(calendarID string, raw calendar.RawEvent) (Event, error) {
	summary := raw.Summary
	if summary == "" {
		summary = NoTitle
	}

	start, err := timeutil.ParseInZone(raw.Start.Value(), s.zone)
	if err != nil {
		return Event{}, err
	}
	end, err := timeutil.ParseInZone(raw.End.Value(), s.zone)
	if err != nil {
		return Event{}, err
	}

	return Event{
		CalendarID: calendarID,
		EventID:    raw.ID,
		Summary:    summary,
		Start:      start,
		End:        end,
		AllDay:     raw.Start.IsDate() && raw.End.IsDate(),
	}, nil
}
