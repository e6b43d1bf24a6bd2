package shaper

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/cortexhq/cortex/pkg/models"
)

// automatedSenderPatterns match machine-generated senders whose mail never
// becomes an email_received event.
var automatedSenderPatterns = []string{
	"noreply", "no-reply", "donotreply", "notifications",
	"newsletter", "automated", "mailer-daemon", "postmaster",
}

var addressWithName = regexp.MustCompile(`^\s*"?([^"<]*?)"?\s*<([^>]+)>\s*$`)

// parseAddress splits "Name <user@host>" into its parts; a bare address
// yields an empty name.
func parseAddress(raw string) (email, name string) {
	if m := addressWithName.FindStringSubmatch(raw); m != nil {
		return strings.TrimSpace(m[2]), strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(raw), ""
}

// isAutomatedSender reports whether the address looks machine-generated.
func isAutomatedSender(email string) bool {
	lower := strings.ToLower(email)
	for _, p := range automatedSenderPatterns {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

// shapeEmailEvents classifies a batch of mail records into events, updating
// per-thread state in place.
//
// Classification order:
//  1. in_reply_to set, or the thread already seen → email_reply_received
//  2. automated sender → dropped
//  3. SENT label or from "me" → email_sent (the from check is a heuristic:
//     it matches any address containing "me", which can misfire; dedup keys
//     keep the damage bounded)
//  4. otherwise → email_received
func shapeEmailEvents(records []map[string]any, userID string, state map[string]any, now time.Time) []*models.Event {
	var events []*models.Event

	for _, rec := range records {
		emailID := recordID(rec)
		if emailID == "" {
			continue
		}

		fromEmail, fromName := parseAddress(getString(rec, "from"))
		threadID := getString(rec, "thread_id")
		inReplyTo := getString(rec, "in_reply_to")
		labels := getStrings(rec, "labels")

		threadState := getMap(state, threadID)
		threadSeen := threadID != "" && threadState != nil

		var eventName string
		switch {
		case inReplyTo != "" || threadSeen:
			eventName = "email_reply_received"
		case isAutomatedSender(fromEmail):
			eventName = ""
		case containsLabel(labels, "SENT") || strings.Contains(strings.ToLower(fromEmail), "me"):
			eventName = "email_sent"
		default:
			eventName = "email_received"
		}

		if threadID != "" {
			count, _ := getFloat(threadState, "message_count")
			state[threadID] = map[string]any{
				"last_message_id": emailID,
				"message_count":   count + 1,
			}
		}

		if eventName == "" {
			continue
		}

		payload := map[string]any{
			"email_id":    emailID,
			"thread_id":   threadID,
			"from":        fromEmail,
			"from_name":   fromName,
			"subject":     getString(rec, "subject"),
			"snippet":     getString(rec, "snippet"),
			"in_reply_to": inReplyTo,
			"labels":      labels,
		}

		events = append(events, &models.Event{
			ID:        fmt.Sprintf("gmail_%s_%d", emailID, now.UnixMilli()),
			UserID:    userID,
			Source:    models.SourceGmail,
			Event:     eventName,
			Timestamp: now.UTC().Format(time.RFC3339),
			Payload:   payload,
			Meta:      models.EventMeta{DedupeKey: fmt.Sprintf("gmail:%s", emailID)},
		})
	}

	return events
}

func containsLabel(labels []string, want string) bool {
	for _, l := range labels {
		if l == want {
			return true
		}
	}
	return false
}
