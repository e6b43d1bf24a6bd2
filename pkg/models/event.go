// Package models defines the value types shared across Cortex components:
// events, compiled plans (trigger/conditions/actions), and API shapes.
package models

// Known normalized provider names.
const (
	SourceGmail      = "gmail"
	SourceCalendar   = "google-calendar"
	SourceSalesforce = "salesforce"
)

// EventMeta carries delivery metadata that is not part of the payload.
type EventMeta struct {
	// DedupeKey is stable across redeliveries of the same real-world fact.
	// Intake collapses events that share it.
	DedupeKey string `json:"dedupe_key,omitempty"`
}

// Event is a normalized observation of something happening at a provider.
type Event struct {
	ID        string         `json:"id"`
	UserID    string         `json:"user_id"`
	Source    string         `json:"source"`
	Event     string         `json:"event"`
	Timestamp string         `json:"timestamp"`
	Payload   map[string]any `json:"payload"`
	Meta      EventMeta      `json:"meta"`
}
