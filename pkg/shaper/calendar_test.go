package shaper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func calendarRecord(id string, overrides map[string]any) map[string]any {
	rec := map[string]any{
		"id":       id,
		"summary":  "1:1 with Pat",
		"start":    testNow.Add(2 * time.Hour).Format(time.RFC3339),
		"end":      testNow.Add(3 * time.Hour).Format(time.RFC3339),
		"location": "Room 4",
		"status":   "confirmed",
	}
	for k, v := range overrides {
		rec[k] = v
	}
	return rec
}

func TestShapeCalendarEvents(t *testing.T) {
	t.Run("new event", func(t *testing.T) {
		state := map[string]any{}
		events := shapeCalendarEvents([]map[string]any{calendarRecord("e1", nil)}, "u1", state, testNow)

		require.Len(t, events, 1)
		assert.Equal(t, "event_created", events[0].Event)
		assert.Equal(t, "google-calendar", events[0].Source)
		assert.Equal(t, "calendar:e1:event_created", events[0].Meta.DedupeKey)
		assert.NotNil(t, getMap(state, "e1"))
	})

	t.Run("starting within 15 minutes", func(t *testing.T) {
		rec := calendarRecord("e1", map[string]any{
			"start": testNow.Add(10 * time.Minute).Format(time.RFC3339),
		})
		state := map[string]any{"e1": calendarSnapshot(rec)}
		events := shapeCalendarEvents([]map[string]any{rec}, "u1", state, testNow)

		require.Len(t, events, 1)
		assert.Equal(t, "event_starting", events[0].Event)
		assert.Equal(t, "calendar:e1:event_starting", events[0].Meta.DedupeKey)
	})

	t.Run("already started does not fire", func(t *testing.T) {
		rec := calendarRecord("e1", map[string]any{
			"start": testNow.Add(-5 * time.Minute).Format(time.RFC3339),
		})
		state := map[string]any{"e1": calendarSnapshot(rec)}
		events := shapeCalendarEvents([]map[string]any{rec}, "u1", state, testNow)
		assert.Empty(t, events)
	})

	t.Run("tracked field change", func(t *testing.T) {
		prior := calendarRecord("e1", nil)
		state := map[string]any{"e1": calendarSnapshot(prior)}

		rec := calendarRecord("e1", map[string]any{"location": "Room 9"})
		events := shapeCalendarEvents([]map[string]any{rec}, "u1", state, testNow)

		require.Len(t, events, 1)
		assert.Equal(t, "event_updated", events[0].Event)
		assert.Equal(t, "Room 9", getMap(state, "e1")["location"])
	})

	t.Run("untracked churn skipped", func(t *testing.T) {
		prior := calendarRecord("e1", nil)
		state := map[string]any{"e1": calendarSnapshot(prior)}

		rec := calendarRecord("e1", map[string]any{"etag": "v2"})
		events := shapeCalendarEvents([]map[string]any{rec}, "u1", state, testNow)
		assert.Empty(t, events)
	})
}
