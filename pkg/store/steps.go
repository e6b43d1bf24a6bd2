package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cortexhq/cortex/ent"
	"github.com/cortexhq/cortex/ent/runstep"
	"github.com/cortexhq/cortex/pkg/models"
)

// LogRunStep upserts the audit row for (run_id, step_index). The first write
// for a step creates it; subsequent writes update status, result, and error.
// Terminal step rows are never mutated again by the runtime.
func (s *Store) LogRunStep(ctx context.Context, runID string, stepIndex int, action models.Action, status string, result map[string]any, errMsg string) error {
	st := runstep.Status(status)
	if err := runstep.StatusValidator(st); err != nil {
		return NewValidationError("status", status)
	}

	existing, err := s.db.RunStep.Query().
		Where(
			runstep.RunIDEQ(runID),
			runstep.StepIndexEQ(stepIndex),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("querying step %d of run %s: %w", stepIndex, runID, err)
	}

	if existing != nil {
		upd := existing.Update().SetStatus(st)
		if result != nil {
			upd = upd.SetResult(result)
		}
		if errMsg != "" {
			upd = upd.SetError(errMsg)
		}
		if st != runstep.StatusStarted {
			upd = upd.SetCompletedAt(time.Now())
		}
		if err := upd.Exec(ctx); err != nil {
			return fmt.Errorf("updating step %d of run %s: %w", stepIndex, runID, err)
		}
		return nil
	}

	create := s.db.RunStep.Create().
		SetID(uuid.New().String()).
		SetRunID(runID).
		SetStepIndex(stepIndex).
		SetActionType(action.Type).
		SetActionConfig(models.ActionToMap(action)).
		SetStatus(st)
	if result != nil {
		create = create.SetResult(result)
	}
	if errMsg != "" {
		create = create.SetError(errMsg)
	}
	if st != runstep.StatusStarted {
		create = create.SetCompletedAt(time.Now())
	}
	if err := create.Exec(ctx); err != nil {
		return fmt.Errorf("logging step %d of run %s: %w", stepIndex, runID, err)
	}
	return nil
}
