// Package scheduler wakes runs whose wait has elapsed. It is the sole reader
// of the wait queue: entries are removed as part of the due scan, so a run is
// never woken twice.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/cortexhq/cortex/ent"
	"github.com/cortexhq/cortex/ent/run"
	"github.com/cortexhq/cortex/pkg/models"
	"github.com/cortexhq/cortex/pkg/store"
)

// DefaultInterval is the wake-scan period.
const DefaultInterval = 60 * time.Second

// Dispatch hands a woken run back to execution.
type Dispatch func(runID string)

// Scheduler is the wake loop. Ticks are non-overlapping; the dispatched
// executions run in parallel on the engine's workers.
type Scheduler struct {
	store    *store.Store
	dispatch Dispatch
	interval time.Duration

	startOnce sync.Once
	stopOnce  sync.Once
	stopCh    chan struct{}
	wg        sync.WaitGroup
}

// New creates a Scheduler. A non-positive interval falls back to the default.
func New(st *store.Store, dispatch Dispatch, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Scheduler{
		store:    st,
		dispatch: dispatch,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start launches the wake loop. Idempotent.
func (s *Scheduler) Start() {
	s.startOnce.Do(func() {
		s.wg.Add(1)
		go s.loop()
		slog.Info("Scheduler started", "interval", s.interval)
	})
}

// Stop cancels the loop and waits for the in-flight tick to drain.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopCh)
	})
	s.wg.Wait()
	slog.Info("Scheduler stopped")
}

func (s *Scheduler) loop() {
	defer s.wg.Done()
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCh:
			return
		case <-ticker.C:
			s.Tick(context.Background())
		}
	}
}

// Tick wakes every run whose resume time has passed. Exported so startup
// recovery and tests can drive a scan directly.
func (s *Scheduler) Tick(ctx context.Context) {
	due, err := s.store.GetWaitingRuns(ctx, time.Now())
	if err != nil {
		slog.Error("Wake scan failed", "error", err)
		return
	}
	for _, r := range due {
		s.wake(ctx, r)
	}
}

// wake transitions one due run back to running. The step advances past the
// wait action that parked it, so the wait consumes exactly one step and the
// runtime re-enters at the action after it. If the step under the cursor is
// not a wait, the unit changed underneath the run; the cursor is left alone
// and the runtime re-executes it.
func (s *Scheduler) wake(ctx context.Context, r *ent.Run) {
	nextStep := r.CurrentStep
	if s.stepIsWait(ctx, r) {
		nextStep = r.CurrentStep + 1
	} else {
		slog.Warn("Parked step is no longer a wait, re-executing it",
			"run_id", r.ID, "unit_id", r.UnitID, "step", r.CurrentStep)
	}

	running := run.StatusRunning
	if _, err := s.store.SaveRun(ctx, r.ID, store.RunUpdate{
		Status:        &running,
		CurrentStep:   &nextStep,
		ClearResumeAt: true,
	}); err != nil {
		slog.Error("Failed to wake run", "run_id", r.ID, "error", err)
		return
	}

	slog.Info("Run woken", "run_id", r.ID, "step", nextStep)
	s.dispatch(r.ID)
}

func (s *Scheduler) stepIsWait(ctx context.Context, r *ent.Run) bool {
	u, err := s.store.GetUnit(ctx, r.UnitID)
	if err != nil {
		slog.Warn("Waking run whose unit is unavailable", "run_id", r.ID, "error", err)
		return false
	}
	actions, err := models.ActionsFromSlice(u.CompiledThen)
	if err != nil || r.CurrentStep >= len(actions) {
		return false
	}
	return actions[r.CurrentStep].Type == models.ActionTypeWait
}
