package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertConnection(t *testing.T) {
	ctx := context.Background()

	t.Run("create and owner cache", func(t *testing.T) {
		st, _ := setupStore(t)
		conn, err := st.UpsertConnection(ctx, "u1", "gmail", "conn-1")
		require.NoError(t, err)
		assert.True(t, conn.Enabled)
		assert.Zero(t, conn.ErrorCount)

		owner, err := st.cache.GetConnectionOwner(ctx, "conn-1")
		require.NoError(t, err)
		assert.Equal(t, "u1", owner)
	})

	t.Run("reconnect refreshes the row", func(t *testing.T) {
		st, _ := setupStore(t)
		conn, err := st.UpsertConnection(ctx, "u1", "gmail", "conn-1")
		require.NoError(t, err)

		_, err = st.MarkPollFailure(ctx, conn.ID, "token expired")
		require.NoError(t, err)

		refreshed, err := st.UpsertConnection(ctx, "u1", "gmail", "conn-2")
		require.NoError(t, err)
		assert.Equal(t, conn.ID, refreshed.ID)
		assert.Equal(t, "conn-2", refreshed.ConnectionID)
		assert.True(t, refreshed.Enabled)
		assert.Zero(t, refreshed.ErrorCount)
	})

	t.Run("validation", func(t *testing.T) {
		st, _ := setupStore(t)
		_, err := st.UpsertConnection(ctx, "", "gmail", "conn-1")
		assert.True(t, IsValidationError(err))
		_, err = st.UpsertConnection(ctx, "u1", "", "conn-1")
		assert.True(t, IsValidationError(err))
		_, err = st.UpsertConnection(ctx, "u1", "gmail", "")
		assert.True(t, IsValidationError(err))
	})
}

func TestConnectionIDFor(t *testing.T) {
	ctx := context.Background()
	st, _ := setupStore(t)

	conn, err := st.UpsertConnection(ctx, "u1", "gmail", "conn-1")
	require.NoError(t, err)

	id, err := st.ConnectionIDFor(ctx, "u1", "gmail")
	require.NoError(t, err)
	assert.Equal(t, "conn-1", id)

	id, err = st.ConnectionIDFor(ctx, "u1", "salesforce")
	require.NoError(t, err)
	assert.Empty(t, id)

	// Disabled connections do not resolve.
	_, err = st.SetConnectionEnabled(ctx, conn.ID, false)
	require.NoError(t, err)
	id, err = st.ConnectionIDFor(ctx, "u1", "gmail")
	require.NoError(t, err)
	assert.Empty(t, id)
}

func TestResolveConnectionOwner(t *testing.T) {
	ctx := context.Background()
	st, mr := setupStore(t)

	_, err := st.UpsertConnection(ctx, "u1", "gmail", "conn-1")
	require.NoError(t, err)

	// Cache hit.
	owner, err := st.ResolveConnectionOwner(ctx, "conn-1")
	require.NoError(t, err)
	assert.Equal(t, "u1", owner)

	// Cache miss falls back to the relational table and repopulates.
	mr.FlushAll()
	owner, err = st.ResolveConnectionOwner(ctx, "conn-1")
	require.NoError(t, err)
	assert.Equal(t, "u1", owner)

	cached, err := st.cache.GetConnectionOwner(ctx, "conn-1")
	require.NoError(t, err)
	assert.Equal(t, "u1", cached)

	// Unknown connections resolve to "".
	owner, err = st.ResolveConnectionOwner(ctx, "conn-nobody")
	require.NoError(t, err)
	assert.Empty(t, owner)
}

func TestMarkPollFailureAutoDisable(t *testing.T) {
	ctx := context.Background()
	st, _ := setupStore(t)

	conn, err := st.UpsertConnection(ctx, "u1", "gmail", "conn-1")
	require.NoError(t, err)

	for i := 0; i < AutoDisableThreshold; i++ {
		updated, err := st.MarkPollFailure(ctx, conn.ID, "rate limited")
		require.NoError(t, err)
		assert.True(t, updated.Enabled, "still enabled at error_count=%d", updated.ErrorCount)
	}

	updated, err := st.MarkPollFailure(ctx, conn.ID, "rate limited")
	require.NoError(t, err)
	assert.Equal(t, AutoDisableThreshold+1, updated.ErrorCount)
	assert.False(t, updated.Enabled)
	assert.Equal(t, "rate limited", updated.LastError)

	conns, err := st.EnabledConnections(ctx)
	require.NoError(t, err)
	assert.Empty(t, conns)

	// Re-enabling resets the failure counter.
	restored, err := st.SetConnectionEnabled(ctx, conn.ID, true)
	require.NoError(t, err)
	assert.True(t, restored.Enabled)
	assert.Zero(t, restored.ErrorCount)
}

func TestMarkPollSuccess(t *testing.T) {
	ctx := context.Background()
	st, _ := setupStore(t)

	conn, err := st.UpsertConnection(ctx, "u1", "gmail", "conn-1")
	require.NoError(t, err)
	_, err = st.MarkPollFailure(ctx, conn.ID, "timeout")
	require.NoError(t, err)

	require.NoError(t, st.MarkPollSuccess(ctx, conn.ID))

	loaded, err := st.GetConnection(ctx, conn.ID)
	require.NoError(t, err)
	assert.Zero(t, loaded.ErrorCount)
	assert.Empty(t, loaded.LastError)
}

func TestMetrics(t *testing.T) {
	ctx := context.Background()
	st, _ := setupStore(t)

	u := mustSaveUnit(t, st, "u1")
	paused := mustSaveUnit(t, st, "u1")
	_, err := st.UpdateUnitStatus(ctx, paused.ID, "paused")
	require.NoError(t, err)

	mustCreateRun(t, st, u.ID, "evt-1", "u1")
	_, err = st.UpsertConnection(ctx, "u1", "gmail", "conn-1")
	require.NoError(t, err)

	m, err := st.Metrics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, m.ActiveUnits)
	assert.Equal(t, 1, m.RunsLastHour)
	assert.Equal(t, 1, m.EnabledConnections)
}
