package shaper

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cortexhq/cortex/pkg/models"
	"github.com/cortexhq/cortex/pkg/store"
	"github.com/cortexhq/cortex/test/util"
)

type eventCollector struct {
	mu     sync.Mutex
	events []*models.Event
	fail   map[string]error
}

func (c *eventCollector) emit(_ context.Context, e *models.Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err, ok := c.fail[e.Event]; ok {
		return err
	}
	c.events = append(c.events, e)
	return nil
}

func setupShaper(t *testing.T) (*Shaper, *store.Store, *eventCollector) {
	db, _ := util.SetupTestDatabase(t)
	c, _ := util.SetupTestCache(t)
	st := store.New(db, c)

	collector := &eventCollector{}
	s := New(st, collector.emit)
	s.now = func() time.Time { return testNow }
	return s, st, collector
}

func syncPayload(connectionID string) *models.WebhookPayload {
	return &models.WebhookPayload{
		Type:              "sync",
		ConnectionID:      connectionID,
		ProviderConfigKey: "google-mail",
		Model:             "GmailEmail",
		SyncName:          "emails",
		ResponseResults:   &models.ResponseCounts{Added: float64(2)},
	}
}

func TestHandleWebhook(t *testing.T) {
	ctx := context.Background()

	t.Run("emits sync_completed", func(t *testing.T) {
		s, st, collector := setupShaper(t)
		_, err := st.UpsertConnection(ctx, "u1", "gmail", "conn-1")
		require.NoError(t, err)

		res, err := s.HandleWebhook(ctx, syncPayload("conn-1"))
		require.NoError(t, err)
		assert.Equal(t, 1, res.Processed)

		require.Len(t, collector.events, 1)
		e := collector.events[0]
		assert.Equal(t, "sync_completed", e.Event)
		assert.Equal(t, "gmail", e.Source)
		assert.Equal(t, "u1", e.UserID)
		assert.Equal(t, "conn-1_GmailEmail", e.Meta.DedupeKey)
		assert.Equal(t, 2, e.Payload["added"])
		assert.Equal(t, 0, e.Payload["updated"])
	})

	t.Run("duplicate delivery dropped", func(t *testing.T) {
		s, st, collector := setupShaper(t)
		_, err := st.UpsertConnection(ctx, "u1", "gmail", "conn-1")
		require.NoError(t, err)

		res, err := s.HandleWebhook(ctx, syncPayload("conn-1"))
		require.NoError(t, err)
		assert.Equal(t, 1, res.Processed)

		res, err = s.HandleWebhook(ctx, syncPayload("conn-1"))
		require.NoError(t, err)
		assert.Zero(t, res.Processed)
		assert.Len(t, collector.events, 1)
	})

	t.Run("unknown connection dropped", func(t *testing.T) {
		s, _, collector := setupShaper(t)

		res, err := s.HandleWebhook(ctx, syncPayload("conn-unknown"))
		require.NoError(t, err)
		assert.Zero(t, res.Processed)
		assert.Empty(t, collector.events)
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		s, _, _ := setupShaper(t)

		_, err := s.HandleWebhook(ctx, &models.WebhookPayload{Type: "sync"})
		assert.True(t, store.IsValidationError(err))
	})

	t.Run("empty sync dropped", func(t *testing.T) {
		s, st, collector := setupShaper(t)
		_, err := st.UpsertConnection(ctx, "u1", "gmail", "conn-1")
		require.NoError(t, err)

		payload := syncPayload("conn-1")
		payload.ResponseResults = &models.ResponseCounts{}
		res, err := s.HandleWebhook(ctx, payload)
		require.NoError(t, err)
		assert.Zero(t, res.Processed)
		assert.Empty(t, collector.events)
	})

	t.Run("array counts tolerated", func(t *testing.T) {
		s, st, collector := setupShaper(t)
		_, err := st.UpsertConnection(ctx, "u1", "gmail", "conn-1")
		require.NoError(t, err)

		payload := syncPayload("conn-1")
		payload.ResponseResults = &models.ResponseCounts{
			Added: []any{map[string]any{"id": "m1"}, map[string]any{"id": "m2"}, map[string]any{"id": "m3"}},
		}
		_, err = s.HandleWebhook(ctx, payload)
		require.NoError(t, err)
		require.Len(t, collector.events, 1)
		assert.Equal(t, 3, collector.events[0].Payload["added"])
	})

	t.Run("inlined records are shaped", func(t *testing.T) {
		s, st, collector := setupShaper(t)
		_, err := st.UpsertConnection(ctx, "u1", "gmail", "conn-1")
		require.NoError(t, err)

		payload := syncPayload("conn-1")
		payload.Records = []map[string]any{
			{"id": "m1", "from": "boss@corp.io", "thread_id": "t1", "subject": "status?"},
		}
		res, err := s.HandleWebhook(ctx, payload)
		require.NoError(t, err)
		assert.Equal(t, 2, res.Processed)

		require.Len(t, collector.events, 2)
		assert.Equal(t, "sync_completed", collector.events[0].Event)
		assert.Equal(t, "email_received", collector.events[1].Event)

		// Shaper state persisted: the same thread on a later sync is a reply.
		state, err := st.Cache().GetShaperState(ctx, "email", "u1")
		require.NoError(t, err)
		assert.NotNil(t, state["t1"])
	})

	t.Run("one emit failure does not block the rest", func(t *testing.T) {
		s, st, collector := setupShaper(t)
		collector.fail = map[string]error{"sync_completed": errors.New("intake down")}
		_, err := st.UpsertConnection(ctx, "u1", "gmail", "conn-1")
		require.NoError(t, err)

		payload := syncPayload("conn-1")
		payload.Records = []map[string]any{
			{"id": "m1", "from": "boss@corp.io", "thread_id": "t1"},
		}
		res, err := s.HandleWebhook(ctx, payload)
		require.NoError(t, err)
		assert.Equal(t, 1, res.Processed)
		require.Len(t, collector.events, 1)
		assert.Equal(t, "email_received", collector.events[0].Event)
	})
}

func TestStateKindForModel(t *testing.T) {
	tests := []struct {
		model string
		kind  string
		ok    bool
	}{
		{"GmailEmail", "email", true},
		{"Message", "email", true},
		{"CalendarEvent", "calendar", true},
		{"Lead", "lead", true},
		{"Opportunity", "opportunity", true},
		{"Invoice", "", false},
	}
	for _, tt := range tests {
		kind, _, ok := stateKindForModel(tt.model)
		assert.Equal(t, tt.ok, ok, tt.model)
		assert.Equal(t, tt.kind, kind, tt.model)
	}
}

func TestNormalizeProvider(t *testing.T) {
	assert.Equal(t, "gmail", normalizeProvider("google-mail"))
	assert.Equal(t, "gmail", normalizeProvider("gmail-prod"))
	assert.Equal(t, "google-calendar", normalizeProvider("google-calendar"))
	assert.Equal(t, "salesforce", normalizeProvider("salesforce-sandbox"))
	assert.Equal(t, "custom-crm", normalizeProvider("custom-crm"))
}
