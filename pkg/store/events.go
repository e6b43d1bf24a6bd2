package store

import (
	"context"
	"log/slog"

	"github.com/cortexhq/cortex/pkg/models"
)

// WriteEvent accepts an event into the system. When the event carries a
// dedupe key and its marker already exists, the event is dropped with no side
// effects and WriteEvent returns false. Otherwise the marker is claimed, the
// event body is retained for the fast-store window, and the event is
// published on the owner's channel.
//
// Publishing is fire-and-forget: subscriber delivery is not part of the
// correctness story, so publish failures are logged, not surfaced.
func (s *Store) WriteEvent(ctx context.Context, e *models.Event) (bool, error) {
	if e.Meta.DedupeKey != "" {
		claimed, err := s.cache.ClaimDedupe(ctx, e.Meta.DedupeKey)
		if err != nil {
			return false, err
		}
		if !claimed {
			slog.Debug("Duplicate event dropped",
				"event_id", e.ID, "dedupe_key", e.Meta.DedupeKey)
			return false, nil
		}
	}

	if err := s.cache.StoreEvent(ctx, e); err != nil {
		return false, err
	}

	if err := s.cache.PublishEvent(ctx, e); err != nil {
		slog.Warn("Failed to publish event", "event_id", e.ID, "error", err)
	}

	return true, nil
}

// GetEvent loads a retained event from the fast store, or nil when the
// retention window has passed.
func (s *Store) GetEvent(ctx context.Context, eventID string) (*models.Event, error) {
	return s.cache.GetEvent(ctx, eventID)
}
