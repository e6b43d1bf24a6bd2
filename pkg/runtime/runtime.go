// Package runtime executes a run's action chain durably: the current step
// persists before the next action begins, wait actions park the run in the
// wait queue, and every step leaves an audit row.
package runtime

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/cortexhq/cortex/ent"
	"github.com/cortexhq/cortex/ent/run"
	"github.com/cortexhq/cortex/pkg/llm"
	"github.com/cortexhq/cortex/pkg/models"
	"github.com/cortexhq/cortex/pkg/store"
	"github.com/cortexhq/cortex/pkg/tools"
)

// ErrNoEventPayload is returned by Rerun when the original run carries no
// preserved event payload to re-drive from.
var ErrNoEventPayload = errors.New("run has no preserved event payload")

// Runtime executes runs.
type Runtime struct {
	store *store.Store
	llm   llm.Generator
	tools tools.Executor
	now   func() time.Time
}

// New creates a Runtime.
func New(st *store.Store, gen llm.Generator, exec tools.Executor) *Runtime {
	return &Runtime{
		store: st,
		llm:   gen,
		tools: exec,
		now:   time.Now,
	}
}

// Execute drives a run until it completes, fails, or suspends on a wait.
//
// The loop invariant: current_step persists before the next action starts,
// so a crash restarts at the step that was next to run, never mid-step.
// Cancellation is checked at step boundaries; a run cancelled externally
// aborts without touching its terminal state.
func (rt *Runtime) Execute(ctx context.Context, runID string) error {
	r, err := rt.store.GetRun(ctx, runID)
	if err != nil {
		return fmt.Errorf("loading run %s: %w", runID, err)
	}
	switch r.Status {
	case run.StatusSuccess, run.StatusFailed, run.StatusCancelled:
		slog.Debug("Run already terminal, skipping", "run_id", runID, "status", r.Status)
		return nil
	case run.StatusWaiting:
		slog.Debug("Run is waiting, scheduler owns it", "run_id", runID)
		return nil
	}

	u, err := rt.store.GetUnit(ctx, r.UnitID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return rt.failRun(ctx, r.ID, r.CurrentStep, models.Action{}, "Unit not found")
		}
		return fmt.Errorf("loading unit %s: %w", r.UnitID, err)
	}

	actions, err := models.ActionsFromSlice(u.CompiledThen)
	if err != nil {
		return rt.failRun(ctx, r.ID, r.CurrentStep, models.Action{}, fmt.Sprintf("invalid action chain: %v", err))
	}

	running := run.StatusRunning
	if _, err := rt.store.SaveRun(ctx, r.ID, store.RunUpdate{
		Status:        &running,
		ClearResumeAt: true,
	}); err != nil {
		return fmt.Errorf("marking run %s running: %w", r.ID, err)
	}

	step := r.CurrentStep
	runCtx := r.Context
	if runCtx == nil {
		runCtx = map[string]any{}
	}

	for step < len(actions) {
		fresh, err := rt.store.GetRun(ctx, r.ID)
		if err != nil {
			return fmt.Errorf("reloading run %s: %w", r.ID, err)
		}
		if fresh.Status == run.StatusCancelled {
			slog.Info("Run cancelled externally, aborting", "run_id", r.ID, "step", step)
			return nil
		}

		action := actions[step]

		if action.Type == models.ActionTypeWait {
			resumeAt := rt.now().Add(ParseWaitDuration(action.Duration))
			waiting := run.StatusWaiting
			if _, err := rt.store.SaveRun(ctx, r.ID, store.RunUpdate{
				Status:   &waiting,
				ResumeAt: &resumeAt,
				Context:  runCtx,
			}); err != nil {
				if errors.Is(err, store.ErrWaitQueue) {
					// The row says waiting but the queue has no timer. Fail
					// the run rather than strand it.
					return rt.failRun(ctx, r.ID, step, action, fmt.Sprintf("scheduling wait: %v", err))
				}
				return fmt.Errorf("suspending run %s: %w", r.ID, err)
			}
			slog.Info("Run suspended on wait",
				"run_id", r.ID, "step", step, "resume_at", resumeAt)
			return nil
		}

		result, err := rt.executeAction(ctx, action, runCtx, r.UserID)
		if err != nil {
			return rt.failRun(ctx, r.ID, step, action, err.Error())
		}

		if action.StoreAs != "" && result != nil {
			runCtx[action.StoreAs] = result
		}

		if err := rt.store.LogRunStep(ctx, r.ID, step, action, "success", stepResult(result), ""); err != nil {
			slog.Warn("Failed to log run step", "run_id", r.ID, "step", step, "error", err)
		}

		step++
		if _, err := rt.store.SaveRun(ctx, r.ID, store.RunUpdate{
			CurrentStep: &step,
			Context:     runCtx,
		}); err != nil {
			return fmt.Errorf("persisting step advance for run %s: %w", r.ID, err)
		}
	}

	success := run.StatusSuccess
	completed := rt.now()
	if _, err := rt.store.SaveRun(ctx, r.ID, store.RunUpdate{
		Status:      &success,
		Context:     runCtx,
		CompletedAt: &completed,
	}); err != nil {
		return fmt.Errorf("completing run %s: %w", r.ID, err)
	}
	slog.Info("Run completed", "run_id", r.ID, "unit_id", r.UnitID, "steps", step)
	return nil
}

// executeAction dispatches one non-wait action. Unknown action types are a
// no-op with a nil result.
func (rt *Runtime) executeAction(ctx context.Context, action models.Action, runCtx map[string]any, userID string) (any, error) {
	switch action.Type {
	case models.ActionTypeLLM:
		input := ResolveValue(action.Input, runCtx)
		text, err := rt.llm.Generate(ctx, action.Prompt, input)
		if err != nil {
			return nil, fmt.Errorf("llm action failed: %w", err)
		}
		return text, nil
	case models.ActionTypeTool:
		args := ResolveArgs(action.Args, runCtx)
		data, err := rt.tools.Execute(ctx, action.Tool, args, userID)
		if err != nil {
			return nil, err
		}
		return data, nil
	}
	slog.Warn("Unknown action type, treated as no-op", "type", action.Type)
	return nil, nil
}

// failRun marks the run failed and records the failing step.
func (rt *Runtime) failRun(ctx context.Context, runID string, step int, action models.Action, message string) error {
	if err := rt.store.LogRunStep(ctx, runID, step, action, "failed", nil, message); err != nil {
		slog.Warn("Failed to log failed step", "run_id", runID, "step", step, "error", err)
	}

	failed := run.StatusFailed
	completed := rt.now()
	if _, err := rt.store.SaveRun(ctx, runID, store.RunUpdate{
		Status:      &failed,
		Error:       &message,
		CompletedAt: &completed,
	}); err != nil {
		return fmt.Errorf("marking run %s failed: %w", runID, err)
	}
	slog.Error("Run failed", "run_id", runID, "step", step, "error", message)
	return fmt.Errorf("run %s failed at step %d: %s", runID, step, message)
}

// Rerun creates a fresh run from a finished run's preserved event payload.
// The new run starts at step zero with a synthetic event id, so the original
// run's audit trail is untouched. The caller owns dispatching it.
func (rt *Runtime) Rerun(ctx context.Context, runID string) (*ent.Run, error) {
	orig, payload, err := rt.store.GetRunForRerun(ctx, runID)
	if err != nil {
		return nil, err
	}
	if payload == nil {
		return nil, ErrNoEventPayload
	}

	r, err := rt.store.CreateRun(ctx, store.NewRunInput{
		ID:           uuid.New().String(),
		UnitID:       orig.UnitID,
		EventID:      "rerun_" + orig.EventID,
		UserID:       orig.UserID,
		Context:      map[string]any{"payload": payload},
		EventPayload: payload,
	})
	if err != nil {
		return nil, fmt.Errorf("creating rerun of %s: %w", runID, err)
	}
	slog.Info("Rerun created", "original_run_id", runID, "run_id", r.ID)
	return r, nil
}

// stepResult normalizes an action result into the audit row's JSON column.
func stepResult(result any) map[string]any {
	if result == nil {
		return nil
	}
	if m, ok := result.(map[string]any); ok {
		return m
	}
	return map[string]any{"value": result}
}
