package cache

import "fmt"

// WaitQueueKey is the sorted set of waiting runs, scored by resume time
// (epoch milliseconds). SaveRun is the sole writer; the Scheduler is the
// sole reader that removes entries.
const WaitQueueKey = "runs:waiting"

// eventKey returns the key for a recent event body.
func eventKey(eventID string) string {
	return fmt.Sprintf("event:%s", eventID)
}

// dedupeKey returns the key for an intake dedup marker.
func dedupeKey(key string) string {
	return fmt.Sprintf("dedupe:%s", key)
}

// webhookKey returns the ingress dedup key for a webhook delivery.
func webhookKey(connectionID, model string) string {
	return fmt.Sprintf("webhook:%s:%s", connectionID, model)
}

// pollerStateKey returns the key for a poller's since-cursor state.
func pollerStateKey(provider, userID string) string {
	return fmt.Sprintf("poller:%s:%s", provider, userID)
}

// shaperStateKey returns the key for per-entity shaper state.
func shaperStateKey(kind, userID string) string {
	return fmt.Sprintf("shaper:%s:%s", kind, userID)
}

// connectionOwnerKey returns the key of the connection-owner cache entry.
func connectionOwnerKey(connectionID string) string {
	return fmt.Sprintf("connection-owner:%s", connectionID)
}

// eventsChannel returns the pub/sub channel for a user's accepted events.
func eventsChannel(userID string) string {
	return fmt.Sprintf("events:%s", userID)
}
