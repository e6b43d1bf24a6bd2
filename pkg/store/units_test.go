package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cortexhq/cortex/ent/run"
	"github.com/cortexhq/cortex/ent/unit"
	"github.com/cortexhq/cortex/pkg/models"
)

func TestSaveUnit(t *testing.T) {
	ctx := context.Background()

	t.Run("create denormalizes trigger columns", func(t *testing.T) {
		st, _ := setupStore(t)
		u := mustSaveUnit(t, st, "u1")

		assert.Equal(t, "Boss email digest", u.Name)
		assert.Equal(t, unit.StatusActive, u.Status)
		assert.Equal(t, "gmail", u.TriggerSource)
		assert.Equal(t, "email_received", u.TriggerEvent)
		assert.Len(t, u.CompiledIf, 1)
		assert.Len(t, u.CompiledThen, 1)
	})

	t.Run("recompile preserves id and owner", func(t *testing.T) {
		st, _ := setupStore(t)
		u := mustSaveUnit(t, st, "u1")

		plan := testPlan()
		plan.Name = "Renamed"
		plan.When.Event = "email_reply_received"
		updated, err := st.SaveUnit(ctx, UnitRecord{ID: u.ID, OwnerID: "u1", Plan: plan})
		require.NoError(t, err)

		assert.Equal(t, u.ID, updated.ID)
		assert.Equal(t, "u1", updated.OwnerID)
		assert.Equal(t, "Renamed", updated.Name)
		assert.Equal(t, "email_reply_received", updated.TriggerEvent)
	})

	t.Run("invalid plan rejected", func(t *testing.T) {
		st, _ := setupStore(t)
		plan := testPlan()
		plan.Then = nil
		_, err := st.SaveUnit(ctx, UnitRecord{ID: uuid.New().String(), OwnerID: "u1", Plan: plan})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("invalid status rejected", func(t *testing.T) {
		st, _ := setupStore(t)
		_, err := st.SaveUnit(ctx, UnitRecord{
			ID: uuid.New().String(), OwnerID: "u1", Plan: testPlan(), Status: "archived",
		})
		assert.True(t, IsValidationError(err))
	})
}

func TestGetUnitsByTrigger(t *testing.T) {
	ctx := context.Background()
	st, _ := setupStore(t)

	active := mustSaveUnit(t, st, "u1")

	paused := mustSaveUnit(t, st, "u1")
	_, err := st.UpdateUnitStatus(ctx, paused.ID, "paused")
	require.NoError(t, err)

	other, err := st.SaveUnit(ctx, UnitRecord{
		ID: uuid.New().String(), OwnerID: "u2",
		Plan: func() models.Plan {
			p := testPlan()
			p.When.Source = models.SourceSalesforce
			p.When.Event = "lead_created"
			return p
		}(),
	})
	require.NoError(t, err)

	units, err := st.GetUnitsByTrigger(ctx, "gmail", "email_received")
	require.NoError(t, err)
	require.Len(t, units, 1)
	assert.Equal(t, active.ID, units[0].ID)

	units, err = st.GetUnitsByTrigger(ctx, "salesforce", "lead_created")
	require.NoError(t, err)
	require.Len(t, units, 1)
	assert.Equal(t, other.ID, units[0].ID)
}

func TestUpdateUnitStatus(t *testing.T) {
	ctx := context.Background()
	st, _ := setupStore(t)
	u := mustSaveUnit(t, st, "u1")

	updated, err := st.UpdateUnitStatus(ctx, u.ID, "paused")
	require.NoError(t, err)
	assert.Equal(t, unit.StatusPaused, updated.Status)

	_, err = st.UpdateUnitStatus(ctx, u.ID, "bogus")
	assert.True(t, IsValidationError(err))

	_, err = st.UpdateUnitStatus(ctx, "missing", "active")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteUnit(t *testing.T) {
	ctx := context.Background()

	t.Run("cancels in-flight runs and drains the wait queue", func(t *testing.T) {
		st, _ := setupStore(t)
		u := mustSaveUnit(t, st, "u1")

		pending := mustCreateRun(t, st, u.ID, "evt-1", "u1")

		waiting := mustCreateRun(t, st, u.ID, "evt-2", "u1")
		status := run.StatusWaiting
		resumeAt := time.Now().Add(time.Hour)
		_, err := st.SaveRun(ctx, waiting.ID, RunUpdate{Status: &status, ResumeAt: &resumeAt})
		require.NoError(t, err)

		done := mustCreateRun(t, st, u.ID, "evt-3", "u1")
		success := run.StatusSuccess
		_, err = st.SaveRun(ctx, done.ID, RunUpdate{Status: &success})
		require.NoError(t, err)
		require.NoError(t, st.LogRunStep(ctx, done.ID, 0,
			models.Action{Type: models.ActionTypeTool, Tool: "gmail.send"},
			"success", map[string]any{"ok": true}, ""))

		require.NoError(t, st.DeleteUnit(ctx, u.ID))

		_, err = st.GetUnit(ctx, u.ID)
		assert.ErrorIs(t, err, ErrNotFound)

		// Run rows survive the unit: in-flight ones as cancelled, terminal
		// ones untouched, audit steps intact.
		for _, id := range []string{pending.ID, waiting.ID} {
			r, err := st.GetRun(ctx, id)
			require.NoError(t, err)
			assert.Equal(t, run.StatusCancelled, r.Status)
		}
		r, err := st.GetRun(ctx, done.ID)
		require.NoError(t, err)
		assert.Equal(t, run.StatusSuccess, r.Status)

		detail, err := st.GetRunDetail(ctx, done.ID)
		require.NoError(t, err)
		require.Len(t, detail.Steps, 1)
		assert.Equal(t, models.ActionTypeTool, detail.Steps[0].ActionType)

		_, enrolled, err := st.cache.WaitingScore(ctx, waiting.ID)
		require.NoError(t, err)
		assert.False(t, enrolled)
	})

	t.Run("missing unit", func(t *testing.T) {
		st, _ := setupStore(t)
		err := st.DeleteUnit(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestDecodedPlanRoundTrip(t *testing.T) {
	st, _ := setupStore(t)
	u := mustSaveUnit(t, st, "u1")

	conds, err := models.ConditionsFromSlice(u.CompiledIf)
	require.NoError(t, err)
	require.Len(t, conds, 1)
	assert.Equal(t, "from", conds[0].Field)
	assert.Equal(t, models.OpContains, conds[0].Op)

	actions, err := models.ActionsFromSlice(u.CompiledThen)
	require.NoError(t, err)
	require.Len(t, actions, 1)
	assert.Equal(t, models.ActionTypeLLM, actions[0].Type)
	assert.Equal(t, "summary", actions[0].StoreAs)

	trig, err := models.TriggerFromMap(u.CompiledWhen)
	require.NoError(t, err)
	assert.Equal(t, "email_received", trig.Event)
}
