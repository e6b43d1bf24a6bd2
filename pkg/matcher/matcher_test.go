package matcher

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cortexhq/cortex/ent"
	"github.com/cortexhq/cortex/pkg/models"
	"github.com/cortexhq/cortex/pkg/store"
	"github.com/cortexhq/cortex/test/util"
)

func setupMatcher(t *testing.T) (*Matcher, *store.Store) {
	db, _ := util.SetupTestDatabase(t)
	c, _ := util.SetupTestCache(t)
	st := store.New(db, c)
	return New(st), st
}

func saveUnit(t *testing.T, st *store.Store, ownerID string, conds []models.Condition) *ent.Unit {
	t.Helper()
	u, err := st.SaveUnit(context.Background(), store.UnitRecord{
		ID:      uuid.New().String(),
		OwnerID: ownerID,
		Plan: models.Plan{
			Name: "test unit",
			When: models.Trigger{Type: models.TriggerTypeEvent, Source: models.SourceGmail, Event: "email_received"},
			If:   conds,
			Then: []models.Action{{Type: models.ActionTypeWait, Duration: "1h"}},
		},
	})
	require.NoError(t, err)
	return u
}

func emailEvent(id, from string) *models.Event {
	return &models.Event{
		ID:      id,
		UserID:  "u1",
		Source:  models.SourceGmail,
		Event:   "email_received",
		Payload: map[string]any{"from": from, "subject": "hello"},
	}
}

func TestMatch(t *testing.T) {
	ctx := context.Background()

	t.Run("allocates one run per matching unit", func(t *testing.T) {
		m, st := setupMatcher(t)
		u1 := saveUnit(t, st, "u1", nil)
		u2 := saveUnit(t, st, "u2", nil)

		runs, err := m.Match(ctx, emailEvent("evt-1", "boss@corp.io"))
		require.NoError(t, err)
		require.Len(t, runs, 2)

		byUnit := map[string]bool{}
		for _, r := range runs {
			byUnit[r.UnitID] = true
			assert.Equal(t, "evt-1", r.EventID)
			assert.Equal(t, "boss@corp.io", r.OriginalEventPayload["from"])
		}
		assert.True(t, byUnit[u1.ID])
		assert.True(t, byUnit[u2.ID])

		// The run is owned by the unit owner, not the event owner.
		for _, r := range runs {
			if r.UnitID == u2.ID {
				assert.Equal(t, "u2", r.UserID)
			}
		}
	})

	t.Run("conditions filter units", func(t *testing.T) {
		m, st := setupMatcher(t)
		matching := saveUnit(t, st, "u1", []models.Condition{
			{Field: "from", Op: models.OpContains, Value: "boss"},
		})
		saveUnit(t, st, "u1", []models.Condition{
			{Field: "from", Op: models.OpEq, Value: "other@corp.io"},
		})

		runs, err := m.Match(ctx, emailEvent("evt-1", "boss@corp.io"))
		require.NoError(t, err)
		require.Len(t, runs, 1)
		assert.Equal(t, matching.ID, runs[0].UnitID)
	})

	t.Run("no trigger match", func(t *testing.T) {
		m, st := setupMatcher(t)
		saveUnit(t, st, "u1", nil)

		e := emailEvent("evt-1", "boss@corp.io")
		e.Event = "email_sent"
		runs, err := m.Match(ctx, e)
		require.NoError(t, err)
		assert.Empty(t, runs)
	})

	t.Run("redelivered event allocates no second run", func(t *testing.T) {
		m, st := setupMatcher(t)
		saveUnit(t, st, "u1", nil)

		runs, err := m.Match(ctx, emailEvent("evt-1", "boss@corp.io"))
		require.NoError(t, err)
		require.Len(t, runs, 1)

		runs, err = m.Match(ctx, emailEvent("evt-1", "boss@corp.io"))
		require.NoError(t, err)
		assert.Empty(t, runs)

		all, err := st.ListRunsForUser(ctx, "u1", 0)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("paused units never match", func(t *testing.T) {
		m, st := setupMatcher(t)
		u := saveUnit(t, st, "u1", nil)
		_, err := st.UpdateUnitStatus(ctx, u.ID, "paused")
		require.NoError(t, err)

		runs, err := m.Match(ctx, emailEvent("evt-1", "boss@corp.io"))
		require.NoError(t, err)
		assert.Empty(t, runs)
	})
}
