// Package engine ties intake to execution: accepted events are matched to
// units and the resulting runs flow through a bounded dispatch queue onto a
// worker pool.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/cortexhq/cortex/pkg/matcher"
	"github.com/cortexhq/cortex/pkg/models"
	"github.com/cortexhq/cortex/pkg/runtime"
	"github.com/cortexhq/cortex/pkg/store"
)

// Defaults for the dispatch queue.
const (
	DefaultWorkers   = 4
	DefaultQueueSize = 256
)

// Engine is the execution fan-out.
type Engine struct {
	store   *store.Store
	matcher *matcher.Matcher
	runtime *runtime.Runtime

	queue   chan string
	workers int

	startOnce sync.Once
	stopOnce  sync.Once
	stopCh    chan struct{}
	wg        sync.WaitGroup
	running   atomic.Bool
}

// New creates an Engine. Non-positive sizes fall back to defaults.
func New(st *store.Store, m *matcher.Matcher, rt *runtime.Runtime, workers, queueSize int) *Engine {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	return &Engine{
		store:   st,
		matcher: m,
		runtime: rt,
		queue:   make(chan string, queueSize),
		workers: workers,
		stopCh:  make(chan struct{}),
	}
}

// Start launches the worker pool. Idempotent.
func (e *Engine) Start() {
	e.startOnce.Do(func() {
		for i := 0; i < e.workers; i++ {
			e.wg.Add(1)
			go e.worker()
		}
		e.running.Store(true)
		slog.Info("Engine started", "workers", e.workers, "queue_size", cap(e.queue))
	})
}

// Stop drains the workers. Runs still queued stay pending in the database
// and are re-dispatched by Recover on the next start.
func (e *Engine) Stop() {
	e.stopOnce.Do(func() {
		close(e.stopCh)
	})
	e.wg.Wait()
	e.running.Store(false)
	slog.Info("Engine stopped")
}

// Running reports whether the worker pool is up; surfaced by the health
// endpoint.
func (e *Engine) Running() bool {
	return e.running.Load()
}

func (e *Engine) worker() {
	defer e.wg.Done()
	for {
		select {
		case <-e.stopCh:
			return
		case runID := <-e.queue:
			if err := e.runtime.Execute(context.Background(), runID); err != nil {
				slog.Warn("Run execution ended with error", "run_id", runID, "error", err)
			}
		}
	}
}

// Dispatch queues a run for execution. Blocks when the queue is full; during
// shutdown the run is left pending for recovery instead.
func (e *Engine) Dispatch(runID string) {
	select {
	case e.queue <- runID:
	case <-e.stopCh:
		slog.Info("Dispatch during shutdown, run left for recovery", "run_id", runID)
	}
}

// ProcessEvent is the single intake path shared by webhooks and the poller:
// write the event (dedup decides acceptance), match it to units, dispatch
// the allocated runs. Duplicates return nil without side effects.
func (e *Engine) ProcessEvent(ctx context.Context, ev *models.Event) error {
	accepted, err := e.store.WriteEvent(ctx, ev)
	if err != nil {
		return fmt.Errorf("writing event %s: %w", ev.ID, err)
	}
	if !accepted {
		return nil
	}

	runs, err := e.matcher.Match(ctx, ev)
	if err != nil {
		return fmt.Errorf("matching event %s: %w", ev.ID, err)
	}
	for _, r := range runs {
		e.Dispatch(r.ID)
	}
	return nil
}

// Recover re-dispatches runs stranded mid-flight by the previous process.
// Safe to call once at startup, after Start.
func (e *Engine) Recover(ctx context.Context) error {
	runs, err := e.store.RecoverableRuns(ctx)
	if err != nil {
		return err
	}
	for _, r := range runs {
		slog.Info("Recovering stranded run", "run_id", r.ID, "status", r.Status, "step", r.CurrentStep)
		e.Dispatch(r.ID)
	}
	if len(runs) > 0 {
		slog.Info("Startup recovery queued runs", "count", len(runs))
	}
	return nil
}
