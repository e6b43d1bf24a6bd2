package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cortexhq/cortex/ent"
	"github.com/cortexhq/cortex/ent/run"
	"github.com/cortexhq/cortex/pkg/models"
	"github.com/cortexhq/cortex/pkg/store"
	"github.com/cortexhq/cortex/test/util"
)

type dispatchRecorder struct {
	mu  sync.Mutex
	ids []string
}

func (d *dispatchRecorder) dispatch(runID string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.ids = append(d.ids, runID)
}

func (d *dispatchRecorder) dispatched() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.ids...)
}

func setupScheduler(t *testing.T) (*Scheduler, *store.Store, *dispatchRecorder) {
	db, _ := util.SetupTestDatabase(t)
	c, _ := util.SetupTestCache(t)
	st := store.New(db, c)
	rec := &dispatchRecorder{}
	return New(st, rec.dispatch, time.Minute), st, rec
}

func saveUnit(t *testing.T, st *store.Store, actions []models.Action) *ent.Unit {
	t.Helper()
	u, err := st.SaveUnit(context.Background(), store.UnitRecord{
		ID:      uuid.New().String(),
		OwnerID: "u1",
		Plan: models.Plan{
			Name: "test unit",
			When: models.Trigger{Type: models.TriggerTypeEvent, Source: models.SourceGmail, Event: "email_received"},
			Then: actions,
		},
	})
	require.NoError(t, err)
	return u
}

func parkRun(t *testing.T, st *store.Store, unitID string, step int, resumeAt time.Time) *ent.Run {
	t.Helper()
	ctx := context.Background()
	r, err := st.CreateRun(ctx, store.NewRunInput{
		ID:      uuid.New().String(),
		UnitID:  unitID,
		EventID: uuid.New().String(),
		UserID:  "u1",
	})
	require.NoError(t, err)

	waiting := run.StatusWaiting
	r, err = st.SaveRun(ctx, r.ID, store.RunUpdate{
		Status: &waiting, CurrentStep: &step, ResumeAt: &resumeAt,
	})
	require.NoError(t, err)
	return r
}

func TestTick(t *testing.T) {
	ctx := context.Background()

	t.Run("wakes due runs past the wait step", func(t *testing.T) {
		s, st, rec := setupScheduler(t)
		u := saveUnit(t, st, []models.Action{
			{Type: models.ActionTypeLLM, Prompt: "summarize", Input: "x"},
			{Type: models.ActionTypeWait, Duration: "30m"},
			{Type: models.ActionTypeTool, Tool: "gmail.send", Args: map[string]any{}},
		})
		r := parkRun(t, st, u.ID, 1, time.Now().Add(-time.Minute))

		s.Tick(ctx)

		require.Equal(t, []string{r.ID}, rec.dispatched())
		woken, err := st.GetRun(ctx, r.ID)
		require.NoError(t, err)
		assert.Equal(t, run.StatusRunning, woken.Status)
		assert.Equal(t, 2, woken.CurrentStep)
		assert.Nil(t, woken.ResumeAt)
	})

	t.Run("future runs stay parked", func(t *testing.T) {
		s, st, rec := setupScheduler(t)
		u := saveUnit(t, st, []models.Action{{Type: models.ActionTypeWait, Duration: "1h"}})
		r := parkRun(t, st, u.ID, 0, time.Now().Add(time.Hour))

		s.Tick(ctx)

		assert.Empty(t, rec.dispatched())
		parked, err := st.GetRun(ctx, r.ID)
		require.NoError(t, err)
		assert.Equal(t, run.StatusWaiting, parked.Status)
	})

	t.Run("second tick is a no-op", func(t *testing.T) {
		s, st, rec := setupScheduler(t)
		u := saveUnit(t, st, []models.Action{{Type: models.ActionTypeWait, Duration: "1m"}})
		parkRun(t, st, u.ID, 0, time.Now().Add(-time.Minute))

		s.Tick(ctx)
		s.Tick(ctx)
		assert.Len(t, rec.dispatched(), 1)
	})

	t.Run("recompiled unit leaves the cursor alone", func(t *testing.T) {
		s, st, rec := setupScheduler(t)
		u := saveUnit(t, st, []models.Action{
			{Type: models.ActionTypeWait, Duration: "30m"},
			{Type: models.ActionTypeTool, Tool: "gmail.send", Args: map[string]any{}},
		})
		r := parkRun(t, st, u.ID, 0, time.Now().Add(-time.Minute))

		// The unit was recompiled while the run slept; step 0 is no longer a
		// wait, so the woken run must re-execute it rather than skip it.
		plan := models.Plan{
			Name: "recompiled",
			When: models.Trigger{Type: models.TriggerTypeEvent, Source: models.SourceGmail, Event: "email_received"},
			Then: []models.Action{
				{Type: models.ActionTypeTool, Tool: "gmail.send", Args: map[string]any{}},
			},
		}
		_, err := st.SaveUnit(ctx, store.UnitRecord{ID: u.ID, OwnerID: "u1", Plan: plan})
		require.NoError(t, err)

		s.Tick(ctx)

		require.Equal(t, []string{r.ID}, rec.dispatched())
		woken, err := st.GetRun(ctx, r.ID)
		require.NoError(t, err)
		assert.Equal(t, run.StatusRunning, woken.Status)
		assert.Equal(t, 0, woken.CurrentStep)
	})
}

func TestStartStop(t *testing.T) {
	s, _, _ := setupScheduler(t)
	s.Start()
	s.Start()
	s.Stop()
	s.Stop()
}
