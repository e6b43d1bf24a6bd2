// Package poller pulls provider records on a timer as a safety net under
// webhook delivery. Pull and push are redundant on purpose: webhooks are
// best-effort, and intake dedup keeps the merged event stream single.
package poller

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/cortexhq/cortex/ent"
	"github.com/cortexhq/cortex/pkg/gateway"
	"github.com/cortexhq/cortex/pkg/models"
	"github.com/cortexhq/cortex/pkg/store"
)

// DefaultInterval is the poll period.
const DefaultInterval = 60 * time.Second

// defaultLookback bounds the first poll of a connection with no cursor.
const defaultLookback = time.Hour

// Gateway is the subset of the gateway client the poller uses.
type Gateway interface {
	ListRecords(ctx context.Context, providerConfigKey, connectionID, model string, since time.Time) ([]gateway.Record, error)
}

// EmitFunc receives each pulled event, same contract as the webhook path.
type EmitFunc func(ctx context.Context, e *models.Event) error

// Poller is the pull loop. One tick at a time per process; connections are
// polled in order within a tick.
type Poller struct {
	store    *store.Store
	gateway  Gateway
	emit     EmitFunc
	interval time.Duration

	startOnce sync.Once
	stopOnce  sync.Once
	stopCh    chan struct{}
	wg        sync.WaitGroup
	now       func() time.Time
}

// New creates a Poller. A non-positive interval falls back to the default.
func New(st *store.Store, gw Gateway, emit EmitFunc, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Poller{
		store:    st,
		gateway:  gw,
		emit:     emit,
		interval: interval,
		stopCh:   make(chan struct{}),
		now:      time.Now,
	}
}

// Start launches the poll loop. Idempotent.
func (p *Poller) Start() {
	p.startOnce.Do(func() {
		p.wg.Add(1)
		go p.loop()
		slog.Info("Poller started", "interval", p.interval)
	})
}

// Stop cancels the loop and waits for the in-flight tick to drain.
func (p *Poller) Stop() {
	p.stopOnce.Do(func() {
		close(p.stopCh)
	})
	p.wg.Wait()
	slog.Info("Poller stopped")
}

func (p *Poller) loop() {
	defer p.wg.Done()
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-p.stopCh:
			return
		case <-ticker.C:
			p.Tick(context.Background())
		}
	}
}

// Tick polls every enabled connection once. Exported for tests.
func (p *Poller) Tick(ctx context.Context) {
	conns, err := p.store.EnabledConnections(ctx)
	if err != nil {
		slog.Error("Poll tick failed to list connections", "error", err)
		return
	}

	for _, conn := range conns {
		if err := p.pollConnection(ctx, conn); err != nil {
			updated, markErr := p.store.MarkPollFailure(ctx, conn.ID, err.Error())
			if markErr != nil {
				slog.Error("Failed to record poll failure",
					"connection_row_id", conn.ID, "error", markErr)
				continue
			}
			slog.Warn("Poll failed",
				"provider", conn.Provider, "user_id", conn.UserID,
				"error_count", updated.ErrorCount, "error", err)
			continue
		}
		if err := p.store.MarkPollSuccess(ctx, conn.ID); err != nil {
			slog.Error("Failed to record poll success",
				"connection_row_id", conn.ID, "error", err)
		}
	}
}

// pollConnection fetches one connection's records since its cursor, one
// gateway model at a time, and emits an event per new item. Unknown providers
// are skipped without counting as failures.
func (p *Poller) pollConnection(ctx context.Context, conn *ent.Connection) error {
	specs, ok := providerSpecs[conn.Provider]
	if !ok {
		slog.Warn("Unknown provider, connection skipped",
			"provider", conn.Provider, "user_id", conn.UserID)
		return nil
	}

	now := p.now()
	since, err := p.store.Cache().GetPollerCursor(ctx, conn.Provider, conn.UserID)
	if err != nil {
		return fmt.Errorf("loading poll cursor: %w", err)
	}
	if since.IsZero() {
		since = now.Add(-defaultLookback)
	}

	emitted := 0
	for _, spec := range specs {
		records, err := p.gateway.ListRecords(ctx, conn.Provider, conn.ConnectionID, spec.model, since)
		if err != nil {
			return fmt.Errorf("fetching %s records: %w", spec.model, err)
		}

		for _, item := range records {
			id := itemID(item)
			if id == "" {
				continue
			}
			t := itemTime(item, now)
			if !t.After(since) {
				continue
			}
			eventName := spec.classify(item)
			if eventName == "" {
				continue
			}

			e := &models.Event{
				ID:        fmt.Sprintf("%s_%s_%d", conn.Provider, id, now.UnixMilli()),
				UserID:    conn.UserID,
				Source:    conn.Provider,
				Event:     eventName,
				Timestamp: t.UTC().Format(time.RFC3339),
				Payload:   item,
				Meta: models.EventMeta{
					DedupeKey: fmt.Sprintf("%s:%s:%d", conn.Provider, id, t.UnixMilli()),
				},
			}
			if err := p.emit(ctx, e); err != nil {
				slog.Warn("Pulled event emit failed",
					"event_id", e.ID, "event", eventName, "error", err)
				continue
			}
			emitted++
		}
	}

	if err := p.store.Cache().SetPollerCursor(ctx, conn.Provider, conn.UserID, now); err != nil {
		return fmt.Errorf("advancing poll cursor: %w", err)
	}

	if emitted > 0 {
		slog.Debug("Poll emitted events",
			"provider", conn.Provider, "user_id", conn.UserID, "count", emitted)
	}
	return nil
}
