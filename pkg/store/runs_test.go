package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cortexhq/cortex/ent/run"
	"github.com/cortexhq/cortex/pkg/models"
)

func TestCreateRun(t *testing.T) {
	ctx := context.Background()
	st, _ := setupStore(t)
	u := mustSaveUnit(t, st, "u1")

	r := mustCreateRun(t, st, u.ID, "evt-1", "u1")
	assert.Equal(t, run.StatusPending, r.Status)
	assert.Zero(t, r.CurrentStep)
	assert.Equal(t, "boss@corp.io", r.OriginalEventPayload["from"])

	// Redelivery of the same event against the same unit is a no-op.
	_, err := st.CreateRun(ctx, NewRunInput{
		ID: uuid.New().String(), UnitID: u.ID, EventID: "evt-1", UserID: "u1",
	})
	assert.ErrorIs(t, err, ErrAlreadyExists)

	// Same event against a different unit is a distinct run.
	u2 := mustSaveUnit(t, st, "u1")
	mustCreateRun(t, st, u2.ID, "evt-1", "u1")
}

func TestSaveRunWaitQueue(t *testing.T) {
	ctx := context.Background()

	t.Run("waiting enrolls at the resume time", func(t *testing.T) {
		st, _ := setupStore(t)
		u := mustSaveUnit(t, st, "u1")
		r := mustCreateRun(t, st, u.ID, "evt-1", "u1")

		status := run.StatusWaiting
		resumeAt := time.Now().Add(30 * time.Minute)
		step := 1
		saved, err := st.SaveRun(ctx, r.ID, RunUpdate{
			Status: &status, CurrentStep: &step, ResumeAt: &resumeAt,
		})
		require.NoError(t, err)
		assert.Equal(t, run.StatusWaiting, saved.Status)
		assert.Equal(t, 1, saved.CurrentStep)

		score, enrolled, err := st.cache.WaitingScore(ctx, r.ID)
		require.NoError(t, err)
		require.True(t, enrolled)
		assert.Equal(t, float64(resumeAt.UnixMilli()), score)
	})

	t.Run("leaving waiting removes the entry", func(t *testing.T) {
		st, _ := setupStore(t)
		u := mustSaveUnit(t, st, "u1")
		r := mustCreateRun(t, st, u.ID, "evt-1", "u1")

		waiting := run.StatusWaiting
		resumeAt := time.Now().Add(time.Hour)
		_, err := st.SaveRun(ctx, r.ID, RunUpdate{Status: &waiting, ResumeAt: &resumeAt})
		require.NoError(t, err)

		running := run.StatusRunning
		_, err = st.SaveRun(ctx, r.ID, RunUpdate{Status: &running, ClearResumeAt: true})
		require.NoError(t, err)

		_, enrolled, err := st.cache.WaitingScore(ctx, r.ID)
		require.NoError(t, err)
		assert.False(t, enrolled)
	})

	t.Run("waiting without resume_at is refused", func(t *testing.T) {
		st, _ := setupStore(t)
		u := mustSaveUnit(t, st, "u1")
		r := mustCreateRun(t, st, u.ID, "evt-1", "u1")

		waiting := run.StatusWaiting
		_, err := st.SaveRun(ctx, r.ID, RunUpdate{Status: &waiting})
		assert.ErrorIs(t, err, ErrWaitQueue)
	})

	t.Run("missing run", func(t *testing.T) {
		st, _ := setupStore(t)
		running := run.StatusRunning
		_, err := st.SaveRun(ctx, "missing", RunUpdate{Status: &running})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestGetWaitingRuns(t *testing.T) {
	ctx := context.Background()
	st, _ := setupStore(t)
	u := mustSaveUnit(t, st, "u1")

	due := mustCreateRun(t, st, u.ID, "evt-due", "u1")
	future := mustCreateRun(t, st, u.ID, "evt-future", "u1")
	stale := mustCreateRun(t, st, u.ID, "evt-stale", "u1")

	waiting := run.StatusWaiting
	past := time.Now().Add(-time.Minute)
	soon := time.Now().Add(time.Hour)
	for _, pair := range []struct {
		id string
		at time.Time
	}{{due.ID, past}, {future.ID, soon}, {stale.ID, past}} {
		at := pair.at
		_, err := st.SaveRun(ctx, pair.id, RunUpdate{Status: &waiting, ResumeAt: &at})
		require.NoError(t, err)
	}

	// stale left the waiting state after being enqueued.
	cancelled := run.StatusCancelled
	_, err := st.SaveRun(ctx, stale.ID, RunUpdate{Status: &cancelled})
	require.NoError(t, err)
	require.NoError(t, st.cache.EnqueueWaiting(ctx, stale.ID, past))

	runs, err := st.GetWaitingRuns(ctx, time.Now())
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, due.ID, runs[0].ID)

	// The due entry was consumed; a second scan finds nothing.
	runs, err = st.GetWaitingRuns(ctx, time.Now())
	require.NoError(t, err)
	assert.Empty(t, runs)

	_, enrolled, err := st.cache.WaitingScore(ctx, future.ID)
	require.NoError(t, err)
	assert.True(t, enrolled)
}

func TestRecoverableRuns(t *testing.T) {
	ctx := context.Background()
	st, _ := setupStore(t)
	u := mustSaveUnit(t, st, "u1")

	pending := mustCreateRun(t, st, u.ID, "evt-1", "u1")
	running := mustCreateRun(t, st, u.ID, "evt-2", "u1")
	waiting := mustCreateRun(t, st, u.ID, "evt-3", "u1")
	done := mustCreateRun(t, st, u.ID, "evt-4", "u1")

	runningStatus := run.StatusRunning
	_, err := st.SaveRun(ctx, running.ID, RunUpdate{Status: &runningStatus})
	require.NoError(t, err)

	waitingStatus := run.StatusWaiting
	resumeAt := time.Now().Add(time.Hour)
	_, err = st.SaveRun(ctx, waiting.ID, RunUpdate{Status: &waitingStatus, ResumeAt: &resumeAt})
	require.NoError(t, err)

	success := run.StatusSuccess
	now := time.Now()
	_, err = st.SaveRun(ctx, done.ID, RunUpdate{Status: &success, CompletedAt: &now})
	require.NoError(t, err)

	runs, err := st.RecoverableRuns(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	ids := []string{runs[0].ID, runs[1].ID}
	assert.Contains(t, ids, pending.ID)
	assert.Contains(t, ids, running.ID)
}

func TestLogRunStep(t *testing.T) {
	ctx := context.Background()
	st, _ := setupStore(t)
	u := mustSaveUnit(t, st, "u1")
	r := mustCreateRun(t, st, u.ID, "evt-1", "u1")

	action := models.Action{Type: models.ActionTypeLLM, Prompt: "summarize", StoreAs: "summary"}
	require.NoError(t, st.LogRunStep(ctx, r.ID, 0, action, "started", nil, ""))
	require.NoError(t, st.LogRunStep(ctx, r.ID, 0, action, "success", map[string]any{"value": "done"}, ""))
	require.NoError(t, st.LogRunStep(ctx, r.ID, 1, action, "failed", nil, "tool exploded"))

	detail, err := st.GetRunDetail(ctx, r.ID)
	require.NoError(t, err)
	require.Len(t, detail.Steps, 2)

	assert.Equal(t, 0, detail.Steps[0].StepIndex)
	assert.Equal(t, "success", string(detail.Steps[0].Status))
	assert.Equal(t, "done", detail.Steps[0].Result["value"])
	assert.NotNil(t, detail.Steps[0].CompletedAt)

	assert.Equal(t, 1, detail.Steps[1].StepIndex)
	assert.Equal(t, "failed", string(detail.Steps[1].Status))
	assert.Equal(t, "tool exploded", detail.Steps[1].Error)

	err = st.LogRunStep(ctx, r.ID, 2, action, "bogus", nil, "")
	assert.True(t, IsValidationError(err))
}

func TestListRuns(t *testing.T) {
	ctx := context.Background()
	st, _ := setupStore(t)
	u := mustSaveUnit(t, st, "u1")

	for i := 0; i < 3; i++ {
		mustCreateRun(t, st, u.ID, uuid.New().String(), "u1")
	}

	runs, err := st.ListRunsForUser(ctx, "u1", 2)
	require.NoError(t, err)
	assert.Len(t, runs, 2)

	runs, err = st.ListRunsForUnit(ctx, u.ID, 0)
	require.NoError(t, err)
	assert.Len(t, runs, 3)

	runs, err = st.ListRunsForUser(ctx, "nobody", 0)
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestGetRunForRerun(t *testing.T) {
	ctx := context.Background()
	st, _ := setupStore(t)
	u := mustSaveUnit(t, st, "u1")
	r := mustCreateRun(t, st, u.ID, "evt-1", "u1")

	loaded, payload, err := st.GetRunForRerun(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, r.ID, loaded.ID)
	assert.Equal(t, "boss@corp.io", payload["from"])

	_, _, err = st.GetRunForRerun(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestWriteEvent(t *testing.T) {
	ctx := context.Background()
	st, _ := setupStore(t)

	e := &models.Event{
		ID:      "gmail_m1_1",
		UserID:  "u1",
		Source:  models.SourceGmail,
		Event:   "email_received",
		Payload: map[string]any{"from": "boss@corp.io"},
		Meta:    models.EventMeta{DedupeKey: "gmail:m1"},
	}

	accepted, err := st.WriteEvent(ctx, e)
	require.NoError(t, err)
	assert.True(t, accepted)

	stored, err := st.GetEvent(ctx, e.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "email_received", stored.Event)

	// Redelivery under the same dedupe key is dropped.
	dup := *e
	dup.ID = "gmail_m1_2"
	accepted, err = st.WriteEvent(ctx, &dup)
	require.NoError(t, err)
	assert.False(t, accepted)

	// Events without a dedupe key are always accepted.
	plain := &models.Event{ID: "evt-plain", UserID: "u1", Event: "sync_completed"}
	accepted, err = st.WriteEvent(ctx, plain)
	require.NoError(t, err)
	assert.True(t, accepted)
}
