// Package shaper normalizes provider sync payloads into Cortex events. It is
// stateful: per-entity state in the ephemeral store lets it classify changes
// (a stage change requires remembering the previous stage).
package shaper

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cortexhq/cortex/pkg/models"
	"github.com/cortexhq/cortex/pkg/store"
)

// EmitFunc receives each shaped event. In production this is the intake path
// (write, dedup, match); tests substitute a collector.
type EmitFunc func(ctx context.Context, e *models.Event) error

// Result reports how many events a webhook produced after dedup and emit.
type Result struct {
	Processed int `json:"processed"`
}

// Shaper shapes webhook payloads into events.
type Shaper struct {
	store *store.Store
	emit  EmitFunc
	now   func() time.Time
}

// New creates a Shaper that forwards shaped events to emit.
func New(st *store.Store, emit EmitFunc) *Shaper {
	return &Shaper{
		store: st,
		emit:  emit,
		now:   time.Now,
	}
}

// HandleWebhook processes one provider sync notification.
//
// Flow:
//  1. Dedup the delivery on (connection, model) within a short window.
//  2. Resolve the owning user from the connection id; unknown owners drop
//     the payload with a warning.
//  3. Count added/updated records, tolerating numeric and array shapes.
//     A sync that moved nothing is dropped.
//  4. Emit one sync_completed event carrying the counts, then per-record
//     events from the entity-kind shaper when records are inlined.
//  5. Each event is emitted independently; one failure does not block the
//     rest.
func (s *Shaper) HandleWebhook(ctx context.Context, payload *models.WebhookPayload) (*Result, error) {
	if payload.ConnectionID == "" || payload.Model == "" {
		return nil, store.NewValidationError("webhook", "connectionId and model are required")
	}

	fresh, err := s.store.Cache().ClaimWebhook(ctx, payload.ConnectionID, payload.Model)
	if err != nil {
		return nil, fmt.Errorf("deduping webhook: %w", err)
	}
	if !fresh {
		slog.Debug("Duplicate webhook delivery dropped",
			"connection_id", payload.ConnectionID, "model", payload.Model)
		return &Result{}, nil
	}

	userID, err := s.store.ResolveConnectionOwner(ctx, payload.ConnectionID)
	if err != nil {
		return nil, fmt.Errorf("resolving webhook user: %w", err)
	}
	if userID == "" {
		slog.Warn("Webhook for unknown connection dropped",
			"connection_id", payload.ConnectionID, "model", payload.Model)
		return &Result{}, nil
	}

	added, updated := 0, 0
	if payload.ResponseResults != nil {
		added = countShape(payload.ResponseResults.Added)
		updated = countShape(payload.ResponseResults.Updated)
	}
	if added == 0 && updated == 0 && len(payload.Records) == 0 {
		slog.Debug("Empty sync dropped",
			"connection_id", payload.ConnectionID, "model", payload.Model)
		return &Result{}, nil
	}

	now := s.now()
	source := normalizeProvider(payload.ProviderConfigKey)

	events := []*models.Event{{
		ID:        fmt.Sprintf("sync_%s_%s_%d", payload.ConnectionID, payload.Model, now.UnixMilli()),
		UserID:    userID,
		Source:    source,
		Event:     "sync_completed",
		Timestamp: now.UTC().Format(time.RFC3339),
		Payload: map[string]any{
			"provider":  source,
			"model":     payload.Model,
			"sync_name": payload.SyncName,
			"added":     added,
			"updated":   updated,
		},
		Meta: models.EventMeta{
			DedupeKey: fmt.Sprintf("%s_%s", payload.ConnectionID, payload.Model),
		},
	}}

	if len(payload.Records) > 0 {
		recordEvents, err := s.shapeRecords(ctx, payload.Model, payload.Records, userID, now)
		if err != nil {
			slog.Warn("Record shaping failed, sync_completed still emitted",
				"model", payload.Model, "error", err)
		} else {
			events = append(events, recordEvents...)
		}
	}

	processed := 0
	for _, e := range events {
		if err := s.emit(ctx, e); err != nil {
			slog.Warn("Event emit failed",
				"event_id", e.ID, "event", e.Event, "error", err)
			continue
		}
		processed++
	}
	return &Result{Processed: processed}, nil
}

// shapeRecords runs the entity-kind shaper for the sync's model, loading and
// persisting the per-user shaper state around it.
func (s *Shaper) shapeRecords(ctx context.Context, model string, records []map[string]any, userID string, now time.Time) ([]*models.Event, error) {
	kind, ttl, ok := stateKindForModel(model)
	if !ok {
		slog.Warn("Unknown sync model, records skipped", "model", model)
		return nil, nil
	}

	state, err := s.store.Cache().GetShaperState(ctx, kind, userID)
	if err != nil {
		return nil, fmt.Errorf("loading shaper state: %w", err)
	}

	var events []*models.Event
	switch kind {
	case stateKindEmail:
		events = shapeEmailEvents(records, userID, state, now)
	case stateKindCalendar:
		events = shapeCalendarEvents(records, userID, state, now)
	case stateKindLead:
		events = shapeLeadEvents(records, userID, state, now)
	case stateKindOpportunity:
		events = shapeOpportunityEvents(records, userID, state, now)
	}

	if err := s.store.Cache().SetShaperState(ctx, kind, userID, state, ttl); err != nil {
		return nil, fmt.Errorf("saving shaper state: %w", err)
	}
	return events, nil
}

// stateKindForModel maps a sync model name onto a shaper kind and its state
// TTL. Matching is case-insensitive and substring-based to tolerate provider
// model naming (GmailEmail, CalendarEvent, Lead, Opportunity).
func stateKindForModel(model string) (string, time.Duration, bool) {
	lower := strings.ToLower(model)
	switch {
	case strings.Contains(lower, "email") || strings.Contains(lower, "message"):
		return stateKindEmail, emailStateTTL, true
	case strings.Contains(lower, "calendar") || strings.Contains(lower, "event"):
		return stateKindCalendar, calendarStateTTL, true
	case strings.Contains(lower, "lead"):
		return stateKindLead, salesforceStateTTL, true
	case strings.Contains(lower, "opportunity"):
		return stateKindOpportunity, salesforceStateTTL, true
	}
	return "", 0, false
}

// countShape tolerates the two shapes sync counts arrive in: a number, or
// the array of records itself.
func countShape(v any) int {
	switch t := v.(type) {
	case nil:
		return 0
	case float64:
		return int(t)
	case int:
		return t
	case int64:
		return int(t)
	case []any:
		return len(t)
	case []map[string]any:
		return len(t)
	}
	return 0
}

// normalizeProvider maps a gateway provider config key onto a normalized
// source name. Unknown keys pass through unchanged.
func normalizeProvider(providerConfigKey string) string {
	lower := strings.ToLower(providerConfigKey)
	switch {
	case strings.Contains(lower, "gmail") || strings.Contains(lower, "google-mail"):
		return models.SourceGmail
	case strings.Contains(lower, "calendar"):
		return models.SourceCalendar
	case strings.Contains(lower, "salesforce"):
		return models.SourceSalesforce
	}
	return providerConfigKey
}
