// Package store is the hybrid persistence layer: the durable relational side
// (units, runs, run steps, connections via Ent/PostgreSQL) and the ephemeral
// keyed side (events, dedup markers, shaper/poller state, wait queue via
// Redis). Anything a human or audit cares about lives in Postgres; anything
// TTL'd or time-indexed lives in Redis.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/cortexhq/cortex/ent"
	"github.com/cortexhq/cortex/ent/connection"
	"github.com/cortexhq/cortex/ent/run"
	"github.com/cortexhq/cortex/ent/unit"
	"github.com/cortexhq/cortex/pkg/cache"
	"github.com/cortexhq/cortex/pkg/models"
)

// Store ties the relational and ephemeral stores together.
type Store struct {
	db    *ent.Client
	cache *cache.Client
}

// New creates a Store over an Ent client and a cache client.
func New(db *ent.Client, c *cache.Client) *Store {
	return &Store{db: db, cache: c}
}

// Cache exposes the ephemeral store for components that own their own keys
// (EventShaper's shaper state, Poller's cursors).
func (s *Store) Cache() *cache.Client {
	return s.cache
}

// Metrics returns engine-level counts for the metrics endpoint.
func (s *Store) Metrics(ctx context.Context) (*models.EngineMetrics, error) {
	activeUnits, err := s.db.Unit.Query().
		Where(unit.StatusEQ(unit.StatusActive)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting active units: %w", err)
	}

	runsLastHour, err := s.db.Run.Query().
		Where(run.StartedAtGTE(time.Now().Add(-time.Hour))).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting recent runs: %w", err)
	}

	enabledConns, err := s.db.Connection.Query().
		Where(connection.EnabledEQ(true)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting enabled connections: %w", err)
	}

	return &models.EngineMetrics{
		ActiveUnits:        activeUnits,
		RunsLastHour:       runsLastHour,
		EnabledConnections: enabledConns,
	}, nil
}
