package poller

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cortexhq/cortex/pkg/gateway"
	"github.com/cortexhq/cortex/pkg/models"
	"github.com/cortexhq/cortex/pkg/store"
	"github.com/cortexhq/cortex/test/util"
)

var pollNow = time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)

type listCall struct {
	Provider     string
	ConnectionID string
	Model        string
	Since        time.Time
}

type fakeGateway struct {
	mu             sync.Mutex
	records        []gateway.Record
	recordsByModel map[string][]gateway.Record
	err            error
	calls          []listCall
}

func (f *fakeGateway) ListRecords(_ context.Context, providerConfigKey, connectionID, model string, since time.Time) ([]gateway.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, listCall{providerConfigKey, connectionID, model, since})
	if f.recordsByModel != nil {
		return f.recordsByModel[model], f.err
	}
	return f.records, f.err
}

type pollCollector struct {
	mu     sync.Mutex
	events []*models.Event
}

func (c *pollCollector) emit(_ context.Context, e *models.Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, e)
	return nil
}

type pollerFixture struct {
	poller    *Poller
	store     *store.Store
	gateway   *fakeGateway
	collector *pollCollector
}

func setupPoller(t *testing.T) *pollerFixture {
	db, _ := util.SetupTestDatabase(t)
	c, _ := util.SetupTestCache(t)
	st := store.New(db, c)

	gw := &fakeGateway{}
	collector := &pollCollector{}
	p := New(st, gw, collector.emit, time.Minute)
	p.now = func() time.Time { return pollNow }
	return &pollerFixture{poller: p, store: st, gateway: gw, collector: collector}
}

func TestTick(t *testing.T) {
	ctx := context.Background()

	t.Run("emits events for fresh records", func(t *testing.T) {
		f := setupPoller(t)
		_, err := f.store.UpsertConnection(ctx, "u1", models.SourceGmail, "conn-1")
		require.NoError(t, err)

		f.gateway.records = []gateway.Record{
			{"id": "m1", "from": "boss@corp.io", "created_at": pollNow.Add(-10 * time.Minute).Format(time.RFC3339)},
			{"id": "m2", "in_reply_to": "m1", "created_at": pollNow.Add(-5 * time.Minute).Format(time.RFC3339)},
		}

		f.poller.Tick(ctx)

		require.Len(t, f.gateway.calls, 1)
		assert.Equal(t, "GmailEmail", f.gateway.calls[0].Model)
		assert.Equal(t, "conn-1", f.gateway.calls[0].ConnectionID)
		// No cursor yet: the scan is bounded by the default lookback.
		assert.WithinDuration(t, pollNow.Add(-time.Hour), f.gateway.calls[0].Since, time.Second)

		require.Len(t, f.collector.events, 2)
		assert.Equal(t, "email_received", f.collector.events[0].Event)
		assert.Equal(t, "email_reply_received", f.collector.events[1].Event)
		assert.Equal(t, "u1", f.collector.events[0].UserID)
		assert.Equal(t, models.SourceGmail, f.collector.events[0].Source)
		assert.NotEmpty(t, f.collector.events[0].Meta.DedupeKey)

		// The cursor advanced: a second tick refetches from pollNow.
		f.poller.Tick(ctx)
		require.Len(t, f.gateway.calls, 2)
		assert.Equal(t, pollNow.UnixMilli(), f.gateway.calls[1].Since.UnixMilli())
	})

	t.Run("salesforce polls leads and opportunities", func(t *testing.T) {
		f := setupPoller(t)
		_, err := f.store.UpsertConnection(ctx, "u1", models.SourceSalesforce, "conn-sf")
		require.NoError(t, err)

		recent := pollNow.Add(-10 * time.Minute).Format(time.RFC3339)
		f.gateway.recordsByModel = map[string][]gateway.Record{
			"Lead":        {{"id": "l1", "Status": "Open", "created_at": recent}},
			"Opportunity": {{"id": "o1", "StageName": "Prospect", "created_at": recent}},
		}

		f.poller.Tick(ctx)

		require.Len(t, f.gateway.calls, 2)
		assert.Equal(t, "Lead", f.gateway.calls[0].Model)
		assert.Equal(t, "Opportunity", f.gateway.calls[1].Model)

		require.Len(t, f.collector.events, 2)
		assert.Equal(t, "lead_created", f.collector.events[0].Event)
		assert.Equal(t, "opportunity_created", f.collector.events[1].Event)
		assert.Equal(t, models.SourceSalesforce, f.collector.events[1].Source)
	})

	t.Run("stale records are skipped", func(t *testing.T) {
		f := setupPoller(t)
		_, err := f.store.UpsertConnection(ctx, "u1", models.SourceGmail, "conn-1")
		require.NoError(t, err)
		require.NoError(t, f.store.Cache().SetPollerCursor(ctx, models.SourceGmail, "u1", pollNow.Add(-time.Minute)))

		f.gateway.records = []gateway.Record{
			{"id": "old", "created_at": pollNow.Add(-2 * time.Hour).Format(time.RFC3339)},
			{"created_at": pollNow.Format(time.RFC3339)},
			{"id": "new", "created_at": pollNow.Add(-30 * time.Second).Format(time.RFC3339)},
		}

		f.poller.Tick(ctx)

		require.Len(t, f.collector.events, 1)
		assert.Contains(t, f.collector.events[0].ID, "new")
	})

	t.Run("gateway failure marks the connection", func(t *testing.T) {
		f := setupPoller(t)
		conn, err := f.store.UpsertConnection(ctx, "u1", models.SourceGmail, "conn-1")
		require.NoError(t, err)
		f.gateway.err = errors.New("gateway 502")

		f.poller.Tick(ctx)

		loaded, err := f.store.GetConnection(ctx, conn.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, loaded.ErrorCount)
		assert.Contains(t, loaded.LastError, "gateway 502")

		// Recovery resets the counters.
		f.gateway.err = nil
		f.gateway.records = nil
		f.poller.Tick(ctx)
		loaded, err = f.store.GetConnection(ctx, conn.ID)
		require.NoError(t, err)
		assert.Zero(t, loaded.ErrorCount)
	})

	t.Run("unknown provider is not a failure", func(t *testing.T) {
		f := setupPoller(t)
		conn, err := f.store.UpsertConnection(ctx, "u1", "custom-crm", "conn-1")
		require.NoError(t, err)

		f.poller.Tick(ctx)

		assert.Empty(t, f.gateway.calls)
		loaded, err := f.store.GetConnection(ctx, conn.ID)
		require.NoError(t, err)
		assert.Zero(t, loaded.ErrorCount)
	})

	t.Run("disabled connections are not polled", func(t *testing.T) {
		f := setupPoller(t)
		conn, err := f.store.UpsertConnection(ctx, "u1", models.SourceGmail, "conn-1")
		require.NoError(t, err)
		_, err = f.store.SetConnectionEnabled(ctx, conn.ID, false)
		require.NoError(t, err)

		f.poller.Tick(ctx)
		assert.Empty(t, f.gateway.calls)
	})
}

func TestClassify(t *testing.T) {
	t.Run("email", func(t *testing.T) {
		assert.Equal(t, "email_reply_received", classifyEmail(map[string]any{"in_reply_to": "m1"}))
		assert.Equal(t, "email_sent", classifyEmail(map[string]any{"from_me": true}))
		assert.Equal(t, "email_sent", classifyEmail(map[string]any{"from_me": "true"}))
		assert.Equal(t, "email_received", classifyEmail(map[string]any{"from": "boss@corp.io"}))
	})

	t.Run("calendar", func(t *testing.T) {
		assert.Equal(t, "event_cancelled", classifyCalendarEvent(map[string]any{"status": "cancelled"}))
		assert.Equal(t, "event_updated", classifyCalendarEvent(map[string]any{
			"created_at": "2026-08-24T10:00:00Z", "updated_at": "2026-08-24T11:00:00Z",
		}))
		assert.Equal(t, "event_created", classifyCalendarEvent(map[string]any{
			"created_at": "2026-08-24T10:00:00Z", "updated_at": "2026-08-24T10:00:00Z",
		}))
	})

	t.Run("salesforce", func(t *testing.T) {
		assert.Equal(t, "opportunity_closed_won", classifySalesforceRecord(map[string]any{
			"StageName": "Closed Won", "IsClosed": true, "IsWon": true,
		}))
		assert.Equal(t, "opportunity_closed_lost", classifySalesforceRecord(map[string]any{
			"StageName": "Closed Lost", "IsClosed": true,
		}))
		assert.Equal(t, "opportunity_stage_changed", classifySalesforceRecord(map[string]any{
			"StageName": "Negotiation", "created_at": "2026-08-24T10:00:00Z", "updated_at": "2026-08-24T11:00:00Z",
		}))
		assert.Equal(t, "opportunity_created", classifySalesforceRecord(map[string]any{
			"StageName": "Prospect",
		}))
		assert.Equal(t, "lead_converted", classifySalesforceRecord(map[string]any{
			"IsConverted": true,
		}))
		assert.Equal(t, "lead_created", classifySalesforceRecord(map[string]any{
			"Status": "Open",
		}))
	})
}

func TestStartStop(t *testing.T) {
	f := setupPoller(t)
	f.poller.Start()
	f.poller.Start()
	f.poller.Stop()
	f.poller.Stop()
}
