package store

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/cortexhq/cortex/ent"
	"github.com/cortexhq/cortex/ent/connection"
)

// AutoDisableThreshold is the consecutive-failure count past which a
// connection is disabled (spec: error_count > 10).
const AutoDisableThreshold = 10

// UpsertConnection registers or refreshes a (user, provider) connection and
// caches the connection → owner mapping used by webhook user resolution.
func (s *Store) UpsertConnection(ctx context.Context, userID, provider, connectionID string) (*ent.Connection, error) {
	if userID == "" {
		return nil, NewValidationError("user_id", "required")
	}
	if provider == "" {
		return nil, NewValidationError("provider", "required")
	}
	if connectionID == "" {
		return nil, NewValidationError("connectionId", "required")
	}

	now := time.Now()
	existing, err := s.db.Connection.Query().
		Where(
			connection.UserIDEQ(userID),
			connection.ProviderEQ(provider),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("querying connection %s/%s: %w", userID, provider, err)
	}

	var conn *ent.Connection
	if existing != nil {
		conn, err = existing.Update().
			SetConnectionID(connectionID).
			SetEnabled(true).
			SetErrorCount(0).
			ClearLastError().
			SetLastPollAt(now).
			Save(ctx)
	} else {
		conn, err = s.db.Connection.Create().
			SetID(uuid.New().String()).
			SetUserID(userID).
			SetProvider(provider).
			SetConnectionID(connectionID).
			SetEnabled(true).
			SetErrorCount(0).
			SetLastPollAt(now).
			Save(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("upserting connection %s/%s: %w", userID, provider, err)
	}

	if err := s.cache.SetConnectionOwner(ctx, connectionID, userID); err != nil {
		slog.Warn("Failed to cache connection owner",
			"connection_id", connectionID, "error", err)
	}
	return conn, nil
}

// ConnectionIDFor returns the gateway connection id for (user, provider), or
// "" when the user has no such connection. Satisfies the tool executor's
// resolver interface.
func (s *Store) ConnectionIDFor(ctx context.Context, userID, provider string) (string, error) {
	conn, err := s.db.Connection.Query().
		Where(
			connection.UserIDEQ(userID),
			connection.ProviderEQ(provider),
			connection.EnabledEQ(true),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", nil
		}
		return "", fmt.Errorf("resolving connection for %s/%s: %w", userID, provider, err)
	}
	return conn.ConnectionID, nil
}

// GetConnection loads a connection row by id.
func (s *Store) GetConnection(ctx context.Context, connRowID string) (*ent.Connection, error) {
	conn, err := s.db.Connection.Get(ctx, connRowID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("loading connection %s: %w", connRowID, err)
	}
	return conn, nil
}

// ListConnections returns a user's connections.
func (s *Store) ListConnections(ctx context.Context, userID string) ([]*ent.Connection, error) {
	conns, err := s.db.Connection.Query().
		Where(connection.UserIDEQ(userID)).
		Order(ent.Asc(connection.FieldProvider)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing connections for %s: %w", userID, err)
	}
	return conns, nil
}

// EnabledConnections returns every enabled connection, for the poller tick.
func (s *Store) EnabledConnections(ctx context.Context) ([]*ent.Connection, error) {
	conns, err := s.db.Connection.Query().
		Where(connection.EnabledEQ(true)).
		Order(ent.Asc(connection.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing enabled connections: %w", err)
	}
	return conns, nil
}

// ResolveConnectionOwner maps a gateway connection id to its owning user.
// The owner cache is consulted first; on miss the relational table is the
// source of truth and the cache is refreshed. Returns "" when unknown.
func (s *Store) ResolveConnectionOwner(ctx context.Context, connectionID string) (string, error) {
	owner, err := s.cache.GetConnectionOwner(ctx, connectionID)
	if err != nil {
		slog.Warn("Connection owner cache read failed", "error", err)
	}
	if owner != "" {
		return owner, nil
	}

	conn, err := s.db.Connection.Query().
		Where(connection.ConnectionIDEQ(connectionID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", nil
		}
		return "", fmt.Errorf("resolving owner of connection %s: %w", connectionID, err)
	}

	if err := s.cache.SetConnectionOwner(ctx, connectionID, conn.UserID); err != nil {
		slog.Warn("Failed to refresh connection owner cache", "error", err)
	}
	return conn.UserID, nil
}

// MarkPollSuccess records a successful poll: last_poll_at is advanced and the
// failure counters reset.
func (s *Store) MarkPollSuccess(ctx context.Context, connRowID string) error {
	err := s.db.Connection.UpdateOneID(connRowID).
		SetLastPollAt(time.Now()).
		SetErrorCount(0).
		ClearLastError().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("marking poll success for %s: %w", connRowID, err)
	}
	return nil
}

// MarkPollFailure increments the failure counter and stores the error. Past
// AutoDisableThreshold the connection is disabled; re-enabling via the API
// restores polling. Returns the updated connection.
func (s *Store) MarkPollFailure(ctx context.Context, connRowID, message string) (*ent.Connection, error) {
	conn, err := s.db.Connection.Get(ctx, connRowID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("loading connection %s: %w", connRowID, err)
	}

	newCount := conn.ErrorCount + 1
	upd := conn.Update().
		SetErrorCount(newCount).
		SetLastError(message)
	if newCount > AutoDisableThreshold {
		upd = upd.SetEnabled(false)
	}

	updated, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("marking poll failure for %s: %w", connRowID, err)
	}
	if !updated.Enabled {
		slog.Error("Connection auto-disabled after repeated poll failures",
			"connection_row_id", connRowID,
			"provider", updated.Provider,
			"error_count", updated.ErrorCount,
			"last_error", message)
	}
	return updated, nil
}

// SetConnectionEnabled flips a connection on or off. Enabling resets the
// failure counter so polling restarts with a clean slate.
func (s *Store) SetConnectionEnabled(ctx context.Context, connRowID string, enabled bool) (*ent.Connection, error) {
	upd := s.db.Connection.UpdateOneID(connRowID).SetEnabled(enabled)
	if enabled {
		upd = upd.SetErrorCount(0).ClearLastError()
	}
	conn, err := upd.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("updating connection %s enabled=%v: %w", connRowID, enabled, err)
	}
	return conn, nil
}
