package store

import (
	"context"
	"fmt"
	"time"

	"github.com/cortexhq/cortex/ent"
	"github.com/cortexhq/cortex/ent/run"
	"github.com/cortexhq/cortex/ent/unit"
	"github.com/cortexhq/cortex/pkg/models"
)

// UnitRecord is the write shape for SaveUnit — a compiled plan plus identity.
type UnitRecord struct {
	ID      string
	OwnerID string
	Plan    models.Plan
	Status  string
}

// SaveUnit upserts a unit by id. Recompiling a unit preserves its id and
// owner; the trigger columns are denormalized from the compiled plan for the
// matcher's indexed lookup.
func (s *Store) SaveUnit(ctx context.Context, rec UnitRecord) (*ent.Unit, error) {
	if rec.ID == "" {
		return nil, NewValidationError("id", "required")
	}
	if rec.OwnerID == "" {
		return nil, NewValidationError("owner_id", "required")
	}
	if err := rec.Plan.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	status := unit.StatusActive
	if rec.Status != "" {
		status = unit.Status(rec.Status)
		if err := unit.StatusValidator(status); err != nil {
			return nil, NewValidationError("status", rec.Status)
		}
	}

	existing, err := s.db.Unit.Get(ctx, rec.ID)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("loading unit %s: %w", rec.ID, err)
	}

	if existing != nil {
		// Recompile path: id and owner are preserved.
		updated, err := existing.Update().
			SetName(rec.Plan.Name).
			SetRawWhen(rec.Plan.Raw.When).
			SetRawIf(rec.Plan.Raw.If).
			SetRawThen(rec.Plan.Raw.Then).
			SetCompiledWhen(models.TriggerToMap(rec.Plan.When)).
			SetCompiledIf(models.ConditionsToSlice(rec.Plan.If)).
			SetCompiledThen(models.ActionsToSlice(rec.Plan.Then)).
			SetStatus(status).
			SetTriggerSource(rec.Plan.When.Source).
			SetTriggerEvent(rec.Plan.When.Event).
			SetUpdatedAt(time.Now()).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("updating unit %s: %w", rec.ID, err)
		}
		return updated, nil
	}

	created, err := s.db.Unit.Create().
		SetID(rec.ID).
		SetOwnerID(rec.OwnerID).
		SetName(rec.Plan.Name).
		SetRawWhen(rec.Plan.Raw.When).
		SetRawIf(rec.Plan.Raw.If).
		SetRawThen(rec.Plan.Raw.Then).
		SetCompiledWhen(models.TriggerToMap(rec.Plan.When)).
		SetCompiledIf(models.ConditionsToSlice(rec.Plan.If)).
		SetCompiledThen(models.ActionsToSlice(rec.Plan.Then)).
		SetStatus(status).
		SetTriggerSource(rec.Plan.When.Source).
		SetTriggerEvent(rec.Plan.When.Event).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("creating unit %s: %w", rec.ID, err)
	}
	return created, nil
}

// GetUnit loads a unit by id.
func (s *Store) GetUnit(ctx context.Context, unitID string) (*ent.Unit, error) {
	u, err := s.db.Unit.Get(ctx, unitID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("loading unit %s: %w", unitID, err)
	}
	return u, nil
}

// ListUnits returns all units owned by a user, newest first.
func (s *Store) ListUnits(ctx context.Context, ownerID string) ([]*ent.Unit, error) {
	units, err := s.db.Unit.Query().
		Where(unit.OwnerIDEQ(ownerID)).
		Order(ent.Desc(unit.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing units for %s: %w", ownerID, err)
	}
	return units, nil
}

// GetUnitsByTrigger returns active units whose event trigger matches
// (source, event). Paused and disabled units are never returned.
func (s *Store) GetUnitsByTrigger(ctx context.Context, source, event string) ([]*ent.Unit, error) {
	units, err := s.db.Unit.Query().
		Where(
			unit.TriggerSourceEQ(source),
			unit.TriggerEventEQ(event),
			unit.StatusEQ(unit.StatusActive),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("querying units for trigger %s/%s: %w", source, event, err)
	}
	return units, nil
}

// UpdateUnitStatus transitions a unit between active, paused, and disabled.
func (s *Store) UpdateUnitStatus(ctx context.Context, unitID, status string) (*ent.Unit, error) {
	st := unit.Status(status)
	if err := unit.StatusValidator(st); err != nil {
		return nil, NewValidationError("status", status)
	}

	u, err := s.db.Unit.UpdateOneID(unitID).
		SetStatus(st).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("updating unit %s status: %w", unitID, err)
	}
	return u, nil
}

// DeleteUnit hard-deletes a unit. Pending, waiting, and running runs are
// marked cancelled first and any wait-queue entries removed, so the runtime
// aborts them cleanly at the next step boundary. Run rows and their audit
// steps are never deleted; history outlives the unit.
func (s *Store) DeleteUnit(ctx context.Context, unitID string) error {
	exists, err := s.db.Unit.Query().Where(unit.IDEQ(unitID)).Exist(ctx)
	if err != nil {
		return fmt.Errorf("checking unit %s: %w", unitID, err)
	}
	if !exists {
		return ErrNotFound
	}

	inflight, err := s.db.Run.Query().
		Where(
			run.UnitIDEQ(unitID),
			run.StatusIn(run.StatusPending, run.StatusRunning, run.StatusWaiting),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("querying in-flight runs for unit %s: %w", unitID, err)
	}

	now := time.Now()
	for _, r := range inflight {
		if r.Status == run.StatusWaiting {
			if err := s.cache.DequeueWaiting(ctx, r.ID); err != nil {
				return fmt.Errorf("removing run %s from wait queue: %w", r.ID, err)
			}
		}
		if err := s.db.Run.UpdateOneID(r.ID).
			SetStatus(run.StatusCancelled).
			SetCompletedAt(now).
			ClearResumeAt().
			Exec(ctx); err != nil {
			return fmt.Errorf("cancelling run %s: %w", r.ID, err)
		}
	}

	if err := s.db.Unit.DeleteOneID(unitID).Exec(ctx); err != nil {
		return fmt.Errorf("deleting unit %s: %w", unitID, err)
	}
	return nil
}
