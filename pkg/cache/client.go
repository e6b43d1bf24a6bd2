// Package cache wraps the Redis client behind the ephemeral-store operations
// Cortex needs: TTL'd JSON keys, intake dedup markers, pub/sub fan-out, and
// the sorted-set wait queue.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/cortexhq/cortex/pkg/models"
)

// Default TTLs for ephemeral state.
const (
	EventTTL           = 7 * 24 * time.Hour
	DedupeTTL          = 7 * 24 * time.Hour
	WebhookDedupeTTL   = 300 * time.Second
	ConnectionOwnerTTL = time.Hour
)

// Options configures the cache client.
type Options struct {
	// Addr is the Redis address (host:port).
	Addr string
	// Password is optional.
	Password string
	// DB selects the Redis logical database.
	DB int
}

// Client is the ephemeral-store client.
type Client struct {
	rdb *redis.Client
}

// New creates a cache client and verifies connectivity.
func New(ctx context.Context, opts Options) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("pinging redis at %s: %w", opts.Addr, err)
	}
	return &Client{rdb: rdb}, nil
}

// NewFromRedis wraps an existing Redis client (useful for testing).
func NewFromRedis(rdb *redis.Client) *Client {
	return &Client{rdb: rdb}
}

// Close releases the underlying connection pool.
func (c *Client) Close() error {
	return c.rdb.Close()
}

// Ping reports whether Redis is reachable.
func (c *Client) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

// ClaimDedupe atomically sets the dedup marker for key. It returns false when
// the marker already existed — the caller must drop the duplicate.
func (c *Client) ClaimDedupe(ctx context.Context, key string) (bool, error) {
	ok, err := c.rdb.SetNX(ctx, dedupeKey(key), "1", DedupeTTL).Result()
	if err != nil {
		return false, fmt.Errorf("claiming dedupe marker %q: %w", key, err)
	}
	return ok, nil
}

// ClaimWebhook atomically sets the ingress dedup marker for a webhook
// delivery. Returns false when the same (connection, model) delivery was
// seen within the TTL window.
func (c *Client) ClaimWebhook(ctx context.Context, connectionID, model string) (bool, error) {
	ok, err := c.rdb.SetNX(ctx, webhookKey(connectionID, model), "1", WebhookDedupeTTL).Result()
	if err != nil {
		return false, fmt.Errorf("claiming webhook marker: %w", err)
	}
	return ok, nil
}

// StoreEvent persists an event body under event:{id} for the retention window.
func (c *Client) StoreEvent(ctx context.Context, e *models.Event) error {
	b, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshaling event %s: %w", e.ID, err)
	}
	if err := c.rdb.Set(ctx, eventKey(e.ID), b, EventTTL).Err(); err != nil {
		return fmt.Errorf("storing event %s: %w", e.ID, err)
	}
	return nil
}

// GetEvent loads a retained event. Returns (nil, nil) when expired or unknown.
func (c *Client) GetEvent(ctx context.Context, eventID string) (*models.Event, error) {
	b, err := c.rdb.Get(ctx, eventKey(eventID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading event %s: %w", eventID, err)
	}
	var e models.Event
	if err := json.Unmarshal(b, &e); err != nil {
		return nil, fmt.Errorf("decoding event %s: %w", eventID, err)
	}
	return &e, nil
}

// PublishEvent publishes an accepted event on the owner's channel.
// Fire-and-forget from the intake's perspective; subscribers are not part
// of the correctness story.
func (c *Client) PublishEvent(ctx context.Context, e *models.Event) error {
	b, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshaling event %s: %w", e.ID, err)
	}
	return c.rdb.Publish(ctx, eventsChannel(e.UserID), b).Err()
}

// SetConnectionOwner caches connectionID → userID for webhook user resolution.
func (c *Client) SetConnectionOwner(ctx context.Context, connectionID, userID string) error {
	return c.rdb.Set(ctx, connectionOwnerKey(connectionID), userID, ConnectionOwnerTTL).Err()
}

// GetConnectionOwner returns the cached owner of a connection, or "" on miss.
func (c *Client) GetConnectionOwner(ctx context.Context, connectionID string) (string, error) {
	v, err := c.rdb.Get(ctx, connectionOwnerKey(connectionID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("loading connection owner: %w", err)
	}
	return v, nil
}

// GetShaperState loads the per-entity shaper state map for (kind, user).
// A missing key yields an empty map.
func (c *Client) GetShaperState(ctx context.Context, kind, userID string) (map[string]any, error) {
	b, err := c.rdb.Get(ctx, shaperStateKey(kind, userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return map[string]any{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading shaper state %s/%s: %w", kind, userID, err)
	}
	var state map[string]any
	if err := json.Unmarshal(b, &state); err != nil {
		return nil, fmt.Errorf("decoding shaper state %s/%s: %w", kind, userID, err)
	}
	return state, nil
}

// SetShaperState writes the shaper state map with the kind's TTL.
func (c *Client) SetShaperState(ctx context.Context, kind, userID string, state map[string]any, ttl time.Duration) error {
	b, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshaling shaper state %s/%s: %w", kind, userID, err)
	}
	return c.rdb.Set(ctx, shaperStateKey(kind, userID), b, ttl).Err()
}

// GetPollerCursor returns the last sync time for (provider, user).
// Zero time on miss.
func (c *Client) GetPollerCursor(ctx context.Context, provider, userID string) (time.Time, error) {
	v, err := c.rdb.Get(ctx, pollerStateKey(provider, userID)).Result()
	if errors.Is(err, redis.Nil) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("loading poller cursor: %w", err)
	}
	ms, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing poller cursor %q: %w", v, err)
	}
	return time.UnixMilli(ms), nil
}

// SetPollerCursor stores the last sync time for (provider, user).
func (c *Client) SetPollerCursor(ctx context.Context, provider, userID string, t time.Time) error {
	return c.rdb.Set(ctx, pollerStateKey(provider, userID), strconv.FormatInt(t.UnixMilli(), 10), 0).Err()
}

// EnqueueWaiting adds or updates a run in the wait queue at the given resume
// time. Idempotent: re-adding the same run updates its score.
func (c *Client) EnqueueWaiting(ctx context.Context, runID string, resumeAt time.Time) error {
	if resumeAt.IsZero() {
		return fmt.Errorf("refusing to enqueue run %s with zero resume time", runID)
	}
	return c.rdb.ZAdd(ctx, WaitQueueKey, redis.Z{
		Score:  float64(resumeAt.UnixMilli()),
		Member: runID,
	}).Err()
}

// DequeueWaiting removes a run from the wait queue. Removing an absent
// member is a no-op.
func (c *Client) DequeueWaiting(ctx context.Context, runID string) error {
	return c.rdb.ZRem(ctx, WaitQueueKey, runID).Err()
}

// DueWaiting returns run ids whose score is <= before (epoch ms), removing
// them from the queue so a run cannot be woken twice in the same tick.
func (c *Client) DueWaiting(ctx context.Context, before time.Time) ([]string, error) {
	ids, err := c.rdb.ZRangeByScore(ctx, WaitQueueKey, &redis.ZRangeBy{
		Min: "-inf",
		Max: strconv.FormatInt(before.UnixMilli(), 10),
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("ranging wait queue: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}
	members := make([]any, len(ids))
	for i, id := range ids {
		members[i] = id
	}
	if err := c.rdb.ZRem(ctx, WaitQueueKey, members...).Err(); err != nil {
		return nil, fmt.Errorf("removing due runs from wait queue: %w", err)
	}
	return ids, nil
}

// WaitingScore returns the score of a run in the wait queue, or false when
// the run is not enrolled.
func (c *Client) WaitingScore(ctx context.Context, runID string) (float64, bool, error) {
	score, err := c.rdb.ZScore(ctx, WaitQueueKey, runID).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("reading wait queue score: %w", err)
	}
	return score, true, nil
}
