package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cortexhq/cortex/pkg/models"
)

func newTestClient(t *testing.T) (*Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c := NewFromRedis(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { _ = c.Close() })
	return c, mr
}

func TestClaimDedupe(t *testing.T) {
	c, mr := newTestClient(t)
	ctx := context.Background()

	first, err := c.ClaimDedupe(ctx, "gmail:m1")
	require.NoError(t, err)
	assert.True(t, first)

	second, err := c.ClaimDedupe(ctx, "gmail:m1")
	require.NoError(t, err)
	assert.False(t, second, "second claim of the same key must fail")

	other, err := c.ClaimDedupe(ctx, "gmail:m2")
	require.NoError(t, err)
	assert.True(t, other)

	// After the retention window the key is claimable again.
	mr.FastForward(DedupeTTL + time.Second)
	again, err := c.ClaimDedupe(ctx, "gmail:m1")
	require.NoError(t, err)
	assert.True(t, again)
}

func TestClaimWebhook(t *testing.T) {
	c, mr := newTestClient(t)
	ctx := context.Background()

	fresh, err := c.ClaimWebhook(ctx, "conn-1", "GmailEmail")
	require.NoError(t, err)
	assert.True(t, fresh)

	dup, err := c.ClaimWebhook(ctx, "conn-1", "GmailEmail")
	require.NoError(t, err)
	assert.False(t, dup)

	otherModel, err := c.ClaimWebhook(ctx, "conn-1", "CalendarEvent")
	require.NoError(t, err)
	assert.True(t, otherModel, "dedup is per (connection, model)")

	mr.FastForward(WebhookDedupeTTL + time.Second)
	afterWindow, err := c.ClaimWebhook(ctx, "conn-1", "GmailEmail")
	require.NoError(t, err)
	assert.True(t, afterWindow)
}

func TestEventRoundTrip(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	e := &models.Event{
		ID:        "gmail_m1_1",
		UserID:    "u1",
		Source:    models.SourceGmail,
		Event:     "email_received",
		Timestamp: "2026-08-24T10:00:00Z",
		Payload:   map[string]any{"from": "boss@example.com"},
		Meta:      models.EventMeta{DedupeKey: "gmail:m1"},
	}
	require.NoError(t, c.StoreEvent(ctx, e))

	got, err := c.GetEvent(ctx, "gmail_m1_1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, e.UserID, got.UserID)
	assert.Equal(t, e.Payload["from"], got.Payload["from"])

	missing, err := c.GetEvent(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing, "unknown events read as nil, not an error")
}

func TestConnectionOwner(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	owner, err := c.GetConnectionOwner(ctx, "conn-1")
	require.NoError(t, err)
	assert.Empty(t, owner)

	require.NoError(t, c.SetConnectionOwner(ctx, "conn-1", "u1"))
	owner, err = c.GetConnectionOwner(ctx, "conn-1")
	require.NoError(t, err)
	assert.Equal(t, "u1", owner)
}

func TestShaperState(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	state, err := c.GetShaperState(ctx, "email", "u1")
	require.NoError(t, err)
	assert.Empty(t, state, "missing state reads as an empty map")

	state["t1"] = map[string]any{"message_count": float64(1)}
	require.NoError(t, c.SetShaperState(ctx, "email", "u1", state, time.Hour))

	got, err := c.GetShaperState(ctx, "email", "u1")
	require.NoError(t, err)
	assert.Equal(t, float64(1), got["t1"].(map[string]any)["message_count"])
}

func TestPollerCursor(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	cur, err := c.GetPollerCursor(ctx, "gmail", "u1")
	require.NoError(t, err)
	assert.True(t, cur.IsZero())

	now := time.Now()
	require.NoError(t, c.SetPollerCursor(ctx, "gmail", "u1", now))
	cur, err = c.GetPollerCursor(ctx, "gmail", "u1")
	require.NoError(t, err)
	assert.Equal(t, now.UnixMilli(), cur.UnixMilli())
}

func TestWaitQueue(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()
	now := time.Now()

	require.Error(t, c.EnqueueWaiting(ctx, "r1", time.Time{}),
		"zero resume time must be refused")

	require.NoError(t, c.EnqueueWaiting(ctx, "r1", now.Add(-time.Minute)))
	require.NoError(t, c.EnqueueWaiting(ctx, "r2", now.Add(time.Hour)))

	_, enrolled, err := c.WaitingScore(ctx, "r1")
	require.NoError(t, err)
	assert.True(t, enrolled)

	due, err := c.DueWaiting(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, []string{"r1"}, due, "only elapsed entries are due")

	// The due scan removed r1: a second scan cannot wake it again.
	due, err = c.DueWaiting(ctx, now)
	require.NoError(t, err)
	assert.Empty(t, due)

	_, enrolled, err = c.WaitingScore(ctx, "r2")
	require.NoError(t, err)
	assert.True(t, enrolled, "future entries stay enrolled")

	require.NoError(t, c.DequeueWaiting(ctx, "r2"))
	_, enrolled, err = c.WaitingScore(ctx, "r2")
	require.NoError(t, err)
	assert.False(t, enrolled)

	require.NoError(t, c.DequeueWaiting(ctx, "absent"), "dequeue of absent member is a no-op")
}

func TestEnqueueWaitingUpdatesScore(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	first := time.Now().Add(time.Hour)
	second := time.Now().Add(2 * time.Hour)
	require.NoError(t, c.EnqueueWaiting(ctx, "r1", first))
	require.NoError(t, c.EnqueueWaiting(ctx, "r1", second))

	score, enrolled, err := c.WaitingScore(ctx, "r1")
	require.NoError(t, err)
	require.True(t, enrolled)
	assert.Equal(t, float64(second.UnixMilli()), score, "re-enqueue updates the resume time")
}
