package agenda

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teemow/calbridge/internal/calendar"
	"github.com/teemow/calbridge/internal/timeutil"
)

func standupDay() map[string][]calendar.RawEvent {
	return map[string][]calendar.RawEvent{
		"primary": {
			timed("morning", "Standup", "2026-01-28T09:00:00-05:00", "2026-01-28T09:15:00-05:00"),
			timed("evening", "Standup", "2026-01-28T23:00:00-05:00", "2026-01-28T23:15:00-05:00"),
			timed("other", "1:1 with Sam", "2026-01-28T11:00:00-05:00", "2026-01-28T11:30:00-05:00"),
		},
	}
}

func TestDelete_DateOnlyMatchesWholeDay(t *testing.T) {
	provider := &fakeProvider{events: standupDay()}
	svc := NewService(provider, testConfig(t), nil)

	result, err := svc.DeleteByTitleAndDate(context.Background(), "standup", "2026-01-28")
	require.NoError(t, err)

	require.Len(t, result.Deleted, 2)
	assert.Equal(t, "Standup", result.Deleted[0].Title)
	assert.Equal(t, "Standup", result.Deleted[1].Title)
	assert.ElementsMatch(t, []string{"primary/morning", "primary/evening"}, provider.deleted)
}

func TestDelete_DateTimeMatchesWithinTolerance(t *testing.T) {
	provider := &fakeProvider{
		events: map[string][]calendar.RawEvent{
			"primary": {
				timed("nine", "Standup", "2026-01-28T09:00:00-05:00", "2026-01-28T09:15:00-05:00"),
				timed("ten", "Standup", "2026-01-28T10:00:00-05:00", "2026-01-28T10:15:00-05:00"),
			},
		},
	}
	svc := NewService(provider, testConfig(t), nil)

	// 09:20 is 20 min from the 09:00 event (match) and 40 min from the
	// 10:00 event (no match).
	result, err := svc.DeleteByTitleAndDate(context.Background(), "standup", "2026-01-28T09:20:00-05:00")
	require.NoError(t, err)

	require.Len(t, result.Deleted, 1)
	assert.Equal(t, []string{"primary/nine"}, provider.deleted)
}

func TestDelete_ToleranceBoundaryInclusive(t *testing.T) {
	provider := &fakeProvider{
		events: map[string][]calendar.RawEvent{
			"primary": {
				timed("ev", "Review", "2026-01-28T09:30:00-05:00", "2026-01-28T10:00:00-05:00"),
			},
		},
	}
	svc := NewService(provider, testConfig(t), nil)

	// Exactly 30 minutes away still matches.
	result, err := svc.DeleteByTitleAndDate(context.Background(), "review", "2026-01-28T10:00:00-05:00")
	require.NoError(t, err)
	assert.Len(t, result.Deleted, 1)
}

func TestDelete_MidnightInputTriggersDateOnlyMode(t *testing.T) {
	provider := &fakeProvider{events: standupDay()}
	svc := NewService(provider, testConfig(t), nil)

	// A midnight date-time is indistinguishable from a bare date, so the
	// whole day matches, not just ±30 minutes around 00:00.
	result, err := svc.DeleteByTitleAndDate(context.Background(), "standup", "2026-01-28T00:00:00-05:00")
	require.NoError(t, err)
	assert.Len(t, result.Deleted, 2)
}

func TestDelete_CaseInsensitiveSubstring(t *testing.T) {
	provider := &fakeProvider{
		events: map[string][]calendar.RawEvent{
			"primary": {
				timed("ev", "Weekly TEAM Sync", "2026-01-28T09:00:00-05:00", "2026-01-28T10:00:00-05:00"),
			},
		},
	}
	svc := NewService(provider, testConfig(t), nil)

	result, err := svc.DeleteByTitleAndDate(context.Background(), "team sync", "2026-01-28")
	require.NoError(t, err)
	assert.Len(t, result.Deleted, 1)
}

func TestDelete_NoMatchFailsWithoutMutation(t *testing.T) {
	provider := &fakeProvider{events: standupDay()}
	svc := NewService(provider, testConfig(t), nil)

	_, err := svc.DeleteByTitleAndDate(context.Background(), "retrospective", "2026-01-28")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "retrospective")
	assert.Contains(t, err.Error(), "2026-01-28")
	assert.Empty(t, provider.deleted, "no provider mutation on zero matches")
}

func TestDelete_AcrossCalendars(t *testing.T) {
	provider := &fakeProvider{
		events: map[string][]calendar.RawEvent{
			"work": {timed("w", "Standup", "2026-01-28T09:00:00-05:00", "2026-01-28T09:15:00-05:00")},
			"home": {timed("h", "Standup prep", "2026-01-28T08:30:00-05:00", "2026-01-28T08:45:00-05:00")},
		},
	}
	svc := NewService(provider, testConfig(t, "work", "home"), nil)

	result, err := svc.DeleteByTitleAndDate(context.Background(), "standup", "2026-01-28")
	require.NoError(t, err)
	assert.Len(t, result.Deleted, 2)
	assert.ElementsMatch(t, []string{"work/w", "home/h"}, provider.deleted)
}

func TestDelete_ProviderDeleteFailurePropagates(t *testing.T) {
	boom := errors.New("insufficient permissions")
	provider := &fakeProvider{
		events:    standupDay(),
		deleteErr: boom,
	}
	svc := NewService(provider, testConfig(t), nil)

	_, err := svc.DeleteByTitleAndDate(context.Background(), "standup", "2026-01-28")
	assert.ErrorIs(t, err, boom)
}

func TestDelete_MalformedDate(t *testing.T) {
	provider := &fakeProvider{events: standupDay()}
	svc := NewService(provider, testConfig(t), nil)

	_, err := svc.DeleteByTitleAndDate(context.Background(), "standup", "tomorrow")
	require.Error(t, err)
	assert.ErrorIs(t, err, timeutil.ErrParse)
	assert.Empty(t, provider.deleted)
}

func TestDelete_OffsetlessTargetAnchorsToReferenceZone(t *testing.T) {
	provider := &fakeProvider{
		events: map[string][]calendar.RawEvent{
			"primary": {
				timed("ev", "Lunch", "2026-01-28T12:00:00-05:00", "2026-01-28T13:00:00-05:00"),
			},
		},
	}
	svc := NewService(provider, testConfig(t), nil)

	// 12:10 with no offset is read as 12:10 Eastern, 10 minutes from the
	// event start.
	result, err := svc.DeleteByTitleAndDate(context.Background(), "lunch", "2026-01-28T12:10:00")
	require.NoError(t, err)
	assert.Len(t, result.Deleted, 1)
}

func TestDelete_DateOnlyUsesReferenceZoneCalendarDate(t *testing.T) {
	provider := &fakeProvider{
		events: map[string][]calendar.RawEvent{
			// 03:00 UTC on Jan 29 is 22:00 Eastern on Jan 28.
			"primary": {timed("ev", "Late call", "2026-01-29T03:00:00Z", "2026-01-29T04:00:00Z")},
		},
	}
	svc := NewService(provider, testConfig(t), nil)

	result, err := svc.DeleteByTitleAndDate(context.Background(), "late call", "2026-01-28")
	require.NoError(t, err)
	require.Len(t, result.Deleted, 1)
	assert.Equal(t, 28, result.Deleted[0].Start.Day())
}
