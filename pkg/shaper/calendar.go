package shaper

import (
	"fmt"
	"time"

	"github.com/cortexhq/cortex/pkg/models"
)

// calendarTrackedFields are the fields whose change turns an update into an
// event_updated event. Other field churn is ignored.
var calendarTrackedFields = []string{"summary", "start", "end", "location", "status"}

// shapeCalendarEvents turns a batch of calendar records into events, updating
// per-event state in place.
//
// A record yields at most one of:
//   - event_created for an id never seen before
//   - event_starting when the start time is within the next 15 minutes
//   - event_updated when a tracked field changed since the last sync
func shapeCalendarEvents(records []map[string]any, userID string, state map[string]any, now time.Time) []*models.Event {
	var events []*models.Event

	for _, rec := range records {
		eventID := recordID(rec)
		if eventID == "" {
			continue
		}

		snapshot := calendarSnapshot(rec)
		prior := getMap(state, eventID)
		state[eventID] = snapshot

		var eventName string
		switch {
		case prior == nil:
			eventName = "event_created"
		case startingSoon(rec, now):
			eventName = "event_starting"
		case trackedFieldChanged(prior, snapshot):
			eventName = "event_updated"
		default:
			continue
		}

		payload := map[string]any{
			"event_id":  eventID,
			"summary":   getString(rec, "summary"),
			"start":     getString(rec, "start"),
			"end":       getString(rec, "end"),
			"location":  getString(rec, "location"),
			"status":    getString(rec, "status"),
			"attendees": rec["attendees"],
		}

		events = append(events, &models.Event{
			ID:        fmt.Sprintf("calendar_%s_%d", eventID, now.UnixMilli()),
			UserID:    userID,
			Source:    models.SourceCalendar,
			Event:     eventName,
			Timestamp: now.UTC().Format(time.RFC3339),
			Payload:   payload,
			Meta: models.EventMeta{
				DedupeKey: fmt.Sprintf("calendar:%s:%s", eventID, eventName),
			},
		})
	}

	return events
}

func calendarSnapshot(rec map[string]any) map[string]any {
	snap := make(map[string]any, len(calendarTrackedFields))
	for _, f := range calendarTrackedFields {
		snap[f] = getString(rec, f)
	}
	return snap
}

// startingSoon reports whether the meeting starts in the window (0, 15m].
// Already-started meetings do not fire.
func startingSoon(rec map[string]any, now time.Time) bool {
	start, err := time.Parse(time.RFC3339, getString(rec, "start"))
	if err != nil {
		return false
	}
	until := start.Sub(now)
	return until > 0 && until <= 15*time.Minute
}

func trackedFieldChanged(prior, current map[string]any) bool {
	for _, f := range calendarTrackedFields {
		if getString(prior, f) != getString(current, f) {
			return true
		}
	}
	return false
}
