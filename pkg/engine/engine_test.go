package engine

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
	"github.com/cortexhq/cortex/pkg/matcher"
	"github.com/cortexhq/cortex/pkg/models"
	"github.com/cortexhq/cortex/pkg/runtime"
	"github.com/cortexhq/cortex/pkg/store"
	"github.com/cortexhq/cortex/test/util"
)

type fakeGenerator struct{}

func (fakeGenerator) Generate(context.Context, string, any) (string, error) {
	return "generated", nil
}

type fakeExecutor struct {
	mu    sync.Mutex
	calls int
}

func (f *fakeExecutor) Execute(context.Context, string, map[string]any, string) (any, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return map[string]any{"ok": true}, nil
}

func (f *fakeExecutor) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func setupEngine(t *testing.T) (*Engine, *store.Store, *fakeExecutor) {
	db, _ := util.SetupTestDatabase(t)
	c, _ := util.SetupTestCache(t)
	st := store.New(db, c)

	exec := &fakeExecutor{}
	rt := runtime.New(st, fakeGenerator{}, exec)
	e := New(st, matcher.New(st), rt, 2, 16)
	e.Start()
	t.Cleanup(e.Stop)
	return e, st, exec
}

func saveUnit(t *testing.T, st *store.Store) *ent.Unit {
	t.Helper()
	u, err := st.SaveUnit(context.Background(), store.UnitRecord{
		ID:      uuid.New().String(),
		OwnerID: "u1",
		Plan: models.Plan{
			Name: "send on email",
			When: models.Trigger{Type: models.TriggerTypeEvent, Source: models.SourceGmail, Event: "email_received"},
			Then: []models.Action{
				{Type: models.ActionTypeTool, Tool: "gmail.send", Args: map[string]any{"to": "me@corp.io"}},
			},
		},
	})
	require.NoError(t, err)
	return u
}

func emailEvent(id string) *models.Event {
	return &models.Event{
		ID:      id,
		UserID:  "u1",
		Source:  models.SourceGmail,
		Event:   "email_received",
		Payload: map[string]any{"from": "boss@corp.io"},
		Meta:    models.EventMeta{DedupeKey: "gmail:" + id},
	}
}

func waitForRuns(t *testing.T, st *store.Store, userID string, status run.Status, count int) []*ent.Run {
	t.Helper()
	var runs []*ent.Run
	require.Eventually(t, func() bool {
		all, err := st.ListRunsForUser(context.Background(), userID, 0)
		if err != nil {
			return false
		}
		runs = nil
		for _, r := range all {
			if r.Status == status {
				runs = append(runs, r)
			}
		}
		return len(runs) == count
	}, 5*time.Second, 20*time.Millisecond)
	return runs
}

func TestProcessEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("accepted event runs to completion", func(t *testing.T) {
		e, st, exec := setupEngine(t)
		saveUnit(t, st)

		require.NoError(t, e.ProcessEvent(ctx, emailEvent("m1")))

		runs := waitForRuns(t, st, "u1", run.StatusSuccess, 1)
		assert.Equal(t, "m1", runs[0].EventID)
		assert.Equal(t, 1, exec.callCount())
	})

	t.Run("duplicate event is dropped before matching", func(t *testing.T) {
		e, st, exec := setupEngine(t)
		saveUnit(t, st)

		require.NoError(t, e.ProcessEvent(ctx, emailEvent("m1")))
		require.NoError(t, e.ProcessEvent(ctx, emailEvent("m1")))

		waitForRuns(t, st, "u1", run.StatusSuccess, 1)

		all, err := st.ListRunsForUser(ctx, "u1", 0)
		require.NoError(t, err)
		assert.Len(t, all, 1)
		assert.Equal(t, 1, exec.callCount())
	})

	t.Run("event with no matching unit is accepted quietly", func(t *testing.T) {
		e, st, exec := setupEngine(t)

		require.NoError(t, e.ProcessEvent(ctx, emailEvent("m1")))

		stored, err := st.GetEvent(ctx, "m1")
		require.NoError(t, err)
		assert.NotNil(t, stored)
		assert.Zero(t, exec.callCount())
	})
}

func TestRecover(t *testing.T) {
	ctx := context.Background()
	e, st, exec := setupEngine(t)
	u := saveUnit(t, st)

	// A run stranded in pending by a previous process.
	stranded, err := st.CreateRun(ctx, store.NewRunInput{
		ID:      uuid.New().String(),
		UnitID:  u.ID,
		EventID: "evt-stranded",
		UserID:  "u1",
		Context: map[string]any{"payload": map[string]any{}},
	})
	require.NoError(t, err)

	require.NoError(t, e.Recover(ctx))

	runs := waitForRuns(t, st, "u1", run.StatusSuccess, 1)
	assert.Equal(t, stranded.ID, runs[0].ID)
	assert.Equal(t, 1, exec.callCount())
}

func TestStartStop(t *testing.T) {
	db, _ := util.SetupTestDatabase(t)
	c, _ := util.SetupTestCache(t)
	st := store.New(db, c)
	rt := runtime.New(st, fakeGenerator{}, &fakeExecutor{})
	e := New(st, matcher.New(st), rt, 2, 16)

	assert.False(t, e.Running())
	e.Start()
	e.Start()
	assert.True(t, e.Running())
	e.Stop()
	e.Stop()
	assert.False(t, e.Running())
}
