// Package matcher fans an accepted event out to the active units whose
// trigger and conditions it satisfies, allocating one durable run per match.
package matcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/cortexhq/cortex/ent"
	"github.com/cortexhq/cortex/pkg/models"
	"github.com/cortexhq/cortex/pkg/store"
)

// Matcher matches events to units.
type Matcher struct {
	store *store.Store
}

// New creates a Matcher.
func New(st *store.Store) *Matcher {
	return &Matcher{store: st}
}

// Match finds the active units triggered by the event, evaluates their
// conditions against the payload, and allocates a pending run per match. The
// returned runs are persisted and ready for execution; the caller owns
// dispatch.
//
// Redelivery safety comes from the (unit_id, event_id) uniqueness: a unit
// that already has a run for this event is skipped silently.
func (m *Matcher) Match(ctx context.Context, e *models.Event) ([]*ent.Run, error) {
	units, err := m.store.GetUnitsByTrigger(ctx, e.Source, e.Event)
	if err != nil {
		return nil, fmt.Errorf("matching event %s: %w", e.ID, err)
	}
	if len(units) == 0 {
		return nil, nil
	}

	var runs []*ent.Run
	for _, u := range units {
		conds, err := models.ConditionsFromSlice(u.CompiledIf)
		if err != nil {
			slog.Warn("Unit has undecodable conditions, skipped",
				"unit_id", u.ID, "error", err)
			continue
		}
		if !evalConditions(conds, e.Payload) {
			continue
		}

		r, err := m.store.CreateRun(ctx, store.NewRunInput{
			ID:           uuid.New().String(),
			UnitID:       u.ID,
			EventID:      e.ID,
			UserID:       u.OwnerID,
			Context:      map[string]any{"payload": e.Payload},
			EventPayload: e.Payload,
		})
		if err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				slog.Debug("Run already exists for event, skipped",
					"unit_id", u.ID, "event_id", e.ID)
				continue
			}
			return runs, fmt.Errorf("allocating run for unit %s: %w", u.ID, err)
		}

		slog.Info("Run allocated",
			"run_id", r.ID, "unit_id", u.ID, "event", e.Event, "event_id", e.ID)
		runs = append(runs, r)
	}
	return runs, nil
}
