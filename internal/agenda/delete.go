package agenda

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/teemow/calbridge/internal/calendar"
	"github.com/teemow/calbridge/internal/logging"
	"github.com/teemow/calbridge/internal/timeutil"
)

// MatchTolerance is how far an event's start may lie from a date-time
// deletion target and still match. The boundary is inclusive.
const MatchTolerance = 30 * time.Minute

// DeletedEvent records one removed event.
type DeletedEvent struct {
	Title string
	Start time.Time
}

// DeleteResult reports what a DeleteByTitleAndDate call removed.
type DeleteResult struct {
	Deleted []DeletedEvent
}

// DeleteByTitleAndDate finds events whose title contains titleFragment as
// a case-insensitive substring near the given date or date-time, and
// deletes every match with attendee notification.
//
// A date with no time component, or a time of exactly midnight, selects
// date-only mode: the search window is the whole reference-zone day and a
// candidate matches when its start falls on that calendar date. Any other
// time selects date-time mode: the window is the target ±MatchTolerance
// and a candidate matches when its start is within MatchTolerance of the
// target. A midnight appointment is therefore indistinguishable from a
// bare date; this conflation is preserved deliberately.
//
// Zero matches fail with NotFoundError and nothing is deleted. Deleting
// multiple matches is not transactional: if one delete fails, earlier
// deletions stand and the provider's error propagates.
func (s *Service) DeleteByTitleAndDate(ctx context.Context, titleFragment, date string) (*DeleteResult, error) {
	target, err := timeutil.ParseAnchored(date, s.zone)
	if err != nil {
		return nil, err
	}

	dateOnly := timeutil.IsDateOnly(date) || (target.Hour() == 0 && target.Minute() == 0)

	var window TimeWindow
	if dateOnly {
		year, month, day := target.Date()
		window = TimeWindow{
			Start: time.Date(year, month, day, 0, 0, 0, 0, s.zone),
			End:   time.Date(year, month, day, 23, 59, 59, 0, s.zone),
		}
	} else {
		window = TimeWindow{
			Start: target.Add(-MatchTolerance),
			End:   target.Add(MatchTolerance),
		}
	}

	candidates, err := s.FetchAcross(ctx, window)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(titleFragment)
	var matches []Event
	for _, event := range candidates {
		if !strings.Contains(strings.ToLower(event.Summary), needle) {
			continue
		}
		if dateOnly {
			if sameDate(event.Start.In(s.zone), target) {
				matches = append(matches, event)
			}
		} else {
			if absDiff(event.Start, target) <= MatchTolerance {
				matches = append(matches, event)
			}
		}
	}

	if len(matches) == 0 {
		return nil, &NotFoundError{Title: titleFragment, Date: date}
	}

	result := &DeleteResult{}
	for _, event := range matches {
		if err := s.provider.DeleteEvent(ctx, event.CalendarID, event.EventID, calendar.SendUpdatesAll); err != nil {
			return nil, err
		}
		s.logger.Info("deleted event",
			logging.Operation("delete"),
			logging.Calendar(event.CalendarID),
			slog.String("summary", event.Summary),
			slog.Time("start", event.Start),
		)
		result.Deleted = append(result.Deleted, DeletedEvent{Title: event.Summary, Start: event.Start})
	}
	return result, nil
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func absDiff(a, b time.Time) time.Duration {
	d := a.Sub(b)
	if d < 0 {
		return -d
	}
	return d
}
