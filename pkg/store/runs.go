package store

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cortexhq/cortex/ent"
	"github.com/cortexhq/cortex/ent/run"
	"github.com/cortexhq/cortex/ent/runstep"
	"github.com/cortexhq/cortex/pkg/models"
)

// DefaultRunListLimit caps listing endpoints.
const DefaultRunListLimit = 50

// NewRunInput is the write shape for CreateRun.
type NewRunInput struct {
	ID           string
	UnitID       string
	EventID      string
	UserID       string
	Context      map[string]any
	EventPayload map[string]any
}

// RunUpdate is a partial update applied by SaveRun. Nil fields are left
// untouched.
type RunUpdate struct {
	Status        *run.Status
	CurrentStep   *int
	Context       map[string]any
	ResumeAt      *time.Time
	ClearResumeAt bool
	Error         *string
	CompletedAt   *time.Time
}

// CreateRun persists a new pending run together with the triggering event
// payload preserved for rerun. The unique (unit_id, event_id) index makes
// redelivered events a no-op: ErrAlreadyExists is returned and no second run
// exists.
func (s *Store) CreateRun(ctx context.Context, in NewRunInput) (*ent.Run, error) {
	r, err := s.db.Run.Create().
		SetID(in.ID).
		SetUnitID(in.UnitID).
		SetEventID(in.EventID).
		SetUserID(in.UserID).
		SetStatus(run.StatusPending).
		SetCurrentStep(0).
		SetContext(in.Context).
		SetOriginalEventPayload(in.EventPayload).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("creating run for unit %s: %w", in.UnitID, err)
	}
	return r, nil
}

// SaveRun applies a partial update and keeps the wait-queue bijection: a run
// entering waiting with a resume time is enrolled at score ms(resume_at); a
// run in any other state is removed. Queue mutations are retried once
// in-process; a persistent enqueue failure surfaces as ErrWaitQueue so the
// caller can revert the status instead of losing the timer.
func (s *Store) SaveRun(ctx context.Context, runID string, upd RunUpdate) (*ent.Run, error) {
	builder := s.db.Run.UpdateOneID(runID)
	if upd.Status != nil {
		builder = builder.SetStatus(*upd.Status)
	}
	if upd.CurrentStep != nil {
		builder = builder.SetCurrentStep(*upd.CurrentStep)
	}
	if upd.Context != nil {
		builder = builder.SetContext(upd.Context)
	}
	if upd.ResumeAt != nil {
		builder = builder.SetResumeAt(*upd.ResumeAt)
	}
	if upd.ClearResumeAt {
		builder = builder.ClearResumeAt()
	}
	if upd.Error != nil {
		builder = builder.SetError(*upd.Error)
	}
	if upd.CompletedAt != nil {
		builder = builder.SetCompletedAt(*upd.CompletedAt)
	}

	r, err := builder.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("saving run %s: %w", runID, err)
	}

	if err := s.syncWaitQueue(ctx, r); err != nil {
		return r, err
	}
	return r, nil
}

// syncWaitQueue reconciles a run's wait-queue entry with its persisted state.
func (s *Store) syncWaitQueue(ctx context.Context, r *ent.Run) error {
	if r.Status == run.StatusWaiting {
		if r.ResumeAt == nil || r.ResumeAt.IsZero() {
			return fmt.Errorf("%w: run %s waiting without a valid resume_at", ErrWaitQueue, r.ID)
		}
		if err := retryOnce(func() error {
			return s.cache.EnqueueWaiting(ctx, r.ID, *r.ResumeAt)
		}); err != nil {
			return fmt.Errorf("%w: enqueue run %s: %v", ErrWaitQueue, r.ID, err)
		}
		return nil
	}

	if err := retryOnce(func() error {
		return s.cache.DequeueWaiting(ctx, r.ID)
	}); err != nil {
		return fmt.Errorf("%w: dequeue run %s: %v", ErrWaitQueue, r.ID, err)
	}
	return nil
}

func retryOnce(op func() error) error {
	if err := op(); err != nil {
		slog.Warn("Ephemeral store operation failed, retrying once", "error", err)
		return op()
	}
	return nil
}

// GetRun loads a run by id.
func (s *Store) GetRun(ctx context.Context, runID string) (*ent.Run, error) {
	r, err := s.db.Run.Get(ctx, runID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("loading run %s: %w", runID, err)
	}
	return r, nil
}

// GetRunDetail loads a run with its audit steps in step order.
func (s *Store) GetRunDetail(ctx context.Context, runID string) (*models.RunDetail, error) {
	r, err := s.GetRun(ctx, runID)
	if err != nil {
		return nil, err
	}
	steps, err := s.db.RunStep.Query().
		Where(runstep.RunIDEQ(runID)).
		Order(ent.Asc(runstep.FieldStepIndex)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading steps for run %s: %w", runID, err)
	}
	return &models.RunDetail{Run: r, Steps: steps}, nil
}

// ListRunsForUser returns a user's runs, most recent first, capped.
func (s *Store) ListRunsForUser(ctx context.Context, userID string, limit int) ([]*ent.Run, error) {
	if limit <= 0 || limit > DefaultRunListLimit {
		limit = DefaultRunListLimit
	}
	runs, err := s.db.Run.Query().
		Where(run.UserIDEQ(userID)).
		Order(ent.Desc(run.FieldStartedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing runs for user %s: %w", userID, err)
	}
	return runs, nil
}

// ListRunsForUnit returns a unit's runs, most recent first, capped.
func (s *Store) ListRunsForUnit(ctx context.Context, unitID string, limit int) ([]*ent.Run, error) {
	if limit <= 0 || limit > DefaultRunListLimit {
		limit = DefaultRunListLimit
	}
	runs, err := s.db.Run.Query().
		Where(run.UnitIDEQ(unitID)).
		Order(ent.Desc(run.FieldStartedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing runs for unit %s: %w", unitID, err)
	}
	return runs, nil
}

// GetWaitingRuns removes due entries from the wait queue and hydrates the
// corresponding runs. Removal happens as part of the read so a run cannot be
// woken twice in one tick; runs that are no longer in waiting (cancelled
// externally, rerun cleanup) are skipped.
func (s *Store) GetWaitingRuns(ctx context.Context, before time.Time) ([]*ent.Run, error) {
	ids, err := s.cache.DueWaiting(ctx, before)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}

	runs, err := s.db.Run.Query().
		Where(
			run.IDIn(ids...),
			run.StatusEQ(run.StatusWaiting),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("hydrating waiting runs: %w", err)
	}
	if len(runs) < len(ids) {
		slog.Debug("Skipped stale wait-queue entries",
			"queued", len(ids), "waiting", len(runs))
	}
	return runs, nil
}

// RecoverableRuns returns runs stranded in pending or running by a crash or
// shutdown. Waiting runs are not included; their timers survive in the wait
// queue and the scheduler picks them up.
func (s *Store) RecoverableRuns(ctx context.Context) ([]*ent.Run, error) {
	runs, err := s.db.Run.Query().
		Where(run.StatusIn(run.StatusPending, run.StatusRunning)).
		Order(ent.Asc(run.FieldStartedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing recoverable runs: %w", err)
	}
	return runs, nil
}

// GetRunForRerun returns the run and the preserved triggering payload needed
// to synthesize a rerun. The payload is nil when the original run predates
// payload preservation.
func (s *Store) GetRunForRerun(ctx context.Context, runID string) (*ent.Run, map[string]any, error) {
	r, err := s.GetRun(ctx, runID)
	if err != nil {
		return nil, nil, err
	}
	return r, r.OriginalEventPayload, nil
}
