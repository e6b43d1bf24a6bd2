package runtime

import (
	"context"
	"errors"
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

type fakeGenerator struct {
	mu       sync.Mutex
	response string
	err      error
	inputs   []any
}

func (f *fakeGenerator) Generate(_ context.Context, _ string, input any) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inputs = append(f.inputs, input)
	return f.response, f.err
}

type toolCall struct {
	Tool   string
	Args   map[string]any
	UserID string
}

type fakeExecutor struct {
	mu     sync.Mutex
	result any
	err    error
	calls  []toolCall
}

func (f *fakeExecutor) Execute(_ context.Context, tool string, args map[string]any, userID string) (any, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, toolCall{Tool: tool, Args: args, UserID: userID})
	return f.result, f.err
}

type runtimeFixture struct {
	rt    *Runtime
	store *store.Store
	gen   *fakeGenerator
	exec  *fakeExecutor
}

func setupRuntime(t *testing.T) *runtimeFixture {
	db, _ := util.SetupTestDatabase(t)
	c, _ := util.SetupTestCache(t)
	st := store.New(db, c)

	gen := &fakeGenerator{response: "a short summary"}
	exec := &fakeExecutor{result: map[string]any{"id": "msg-1"}}
	return &runtimeFixture{rt: New(st, gen, exec), store: st, gen: gen, exec: exec}
}

func (f *runtimeFixture) saveUnit(t *testing.T, actions []models.Action) *ent.Unit {
	t.Helper()
	u, err := f.store.SaveUnit(context.Background(), store.UnitRecord{
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

func (f *runtimeFixture) createRun(t *testing.T, unitID string) *ent.Run {
	t.Helper()
	payload := map[string]any{"from": "boss@corp.io", "snippet": "quarterly numbers"}
	r, err := f.store.CreateRun(context.Background(), store.NewRunInput{
		ID:           uuid.New().String(),
		UnitID:       unitID,
		EventID:      uuid.New().String(),
		UserID:       "u1",
		Context:      map[string]any{"payload": payload},
		EventPayload: payload,
	})
	require.NoError(t, err)
	return r
}

func TestExecute(t *testing.T) {
	ctx := context.Background()

	t.Run("full chain with context flow", func(t *testing.T) {
		f := setupRuntime(t)
		u := f.saveUnit(t, []models.Action{
			{Type: models.ActionTypeLLM, Prompt: "summarize", Input: "{{payload.snippet}}", StoreAs: "summary"},
			{Type: models.ActionTypeTool, Tool: "gmail.send", Args: map[string]any{"body": "{{summary}}"}},
		})
		r := f.createRun(t, u.ID)

		require.NoError(t, f.rt.Execute(ctx, r.ID))

		done, err := f.store.GetRun(ctx, r.ID)
		require.NoError(t, err)
		assert.Equal(t, run.StatusSuccess, done.Status)
		assert.Equal(t, 2, done.CurrentStep)
		assert.NotNil(t, done.CompletedAt)
		assert.Equal(t, "a short summary", done.Context["summary"])

		// The llm saw the resolved payload path; the tool saw the stored result.
		require.Len(t, f.gen.inputs, 1)
		assert.Equal(t, "quarterly numbers", f.gen.inputs[0])
		require.Len(t, f.exec.calls, 1)
		assert.Equal(t, "gmail.send", f.exec.calls[0].Tool)
		assert.Equal(t, "a short summary", f.exec.calls[0].Args["body"])
		assert.Equal(t, "u1", f.exec.calls[0].UserID)

		detail, err := f.store.GetRunDetail(ctx, r.ID)
		require.NoError(t, err)
		require.Len(t, detail.Steps, 2)
		assert.Equal(t, "success", string(detail.Steps[0].Status))
		assert.Equal(t, "a short summary", detail.Steps[0].Result["value"])
	})

	t.Run("tool failure fails the run", func(t *testing.T) {
		f := setupRuntime(t)
		f.exec.err = errors.New("gateway returned 502")
		u := f.saveUnit(t, []models.Action{
			{Type: models.ActionTypeTool, Tool: "gmail.send", Args: map[string]any{"to": "x"}},
		})
		r := f.createRun(t, u.ID)

		err := f.rt.Execute(ctx, r.ID)
		require.Error(t, err)

		failed, err := f.store.GetRun(ctx, r.ID)
		require.NoError(t, err)
		assert.Equal(t, run.StatusFailed, failed.Status)
		assert.Contains(t, failed.Error, "gateway returned 502")

		detail, err := f.store.GetRunDetail(ctx, r.ID)
		require.NoError(t, err)
		require.Len(t, detail.Steps, 1)
		assert.Equal(t, "failed", string(detail.Steps[0].Status))
	})

	t.Run("wait suspends the run", func(t *testing.T) {
		f := setupRuntime(t)
		start := time.Now()
		u := f.saveUnit(t, []models.Action{
			{Type: models.ActionTypeLLM, Prompt: "summarize", Input: "x", StoreAs: "summary"},
			{Type: models.ActionTypeWait, Duration: "30m"},
			{Type: models.ActionTypeTool, Tool: "gmail.send", Args: map[string]any{}},
		})
		r := f.createRun(t, u.ID)

		require.NoError(t, f.rt.Execute(ctx, r.ID))

		waiting, err := f.store.GetRun(ctx, r.ID)
		require.NoError(t, err)
		assert.Equal(t, run.StatusWaiting, waiting.Status)
		assert.Equal(t, 1, waiting.CurrentStep)
		require.NotNil(t, waiting.ResumeAt)
		assert.WithinDuration(t, start.Add(30*time.Minute), *waiting.ResumeAt, 10*time.Second)
		assert.Equal(t, "a short summary", waiting.Context["summary"])

		// The tool after the wait has not run yet.
		assert.Empty(t, f.exec.calls)

		// Resuming past the wait finishes the chain with context intact.
		running := run.StatusRunning
		step := 2
		_, err = f.store.SaveRun(ctx, r.ID, store.RunUpdate{
			Status: &running, CurrentStep: &step, ClearResumeAt: true,
		})
		require.NoError(t, err)
		require.NoError(t, f.rt.Execute(ctx, r.ID))

		done, err := f.store.GetRun(ctx, r.ID)
		require.NoError(t, err)
		assert.Equal(t, run.StatusSuccess, done.Status)
		require.Len(t, f.exec.calls, 1)
	})

	t.Run("cancelled run aborts untouched", func(t *testing.T) {
		f := setupRuntime(t)
		u := f.saveUnit(t, []models.Action{
			{Type: models.ActionTypeTool, Tool: "gmail.send", Args: map[string]any{}},
		})
		r := f.createRun(t, u.ID)

		cancelled := run.StatusCancelled
		_, err := f.store.SaveRun(ctx, r.ID, store.RunUpdate{Status: &cancelled})
		require.NoError(t, err)

		require.NoError(t, f.rt.Execute(ctx, r.ID))
		assert.Empty(t, f.exec.calls)

		loaded, err := f.store.GetRun(ctx, r.ID)
		require.NoError(t, err)
		assert.Equal(t, run.StatusCancelled, loaded.Status)
	})

	t.Run("deleted unit fails the run", func(t *testing.T) {
		f := setupRuntime(t)
		u := f.saveUnit(t, []models.Action{
			{Type: models.ActionTypeTool, Tool: "gmail.send", Args: map[string]any{}},
		})
		r := f.createRun(t, u.ID)

		// Hard-delete underneath the pending run by cancelling then reviving.
		require.NoError(t, f.store.DeleteUnit(ctx, u.ID))
		pending := run.StatusPending
		_, err := f.store.SaveRun(ctx, r.ID, store.RunUpdate{Status: &pending})
		require.NoError(t, err)

		err = f.rt.Execute(ctx, r.ID)
		require.Error(t, err)

		failed, err := f.store.GetRun(ctx, r.ID)
		require.NoError(t, err)
		assert.Equal(t, run.StatusFailed, failed.Status)
		assert.Contains(t, failed.Error, "Unit not found")
	})
}

func TestRerun(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a fresh run from the preserved payload", func(t *testing.T) {
		f := setupRuntime(t)
		u := f.saveUnit(t, []models.Action{
			{Type: models.ActionTypeLLM, Prompt: "summarize", Input: "{{payload.snippet}}", StoreAs: "summary"},
		})
		orig := f.createRun(t, u.ID)
		require.NoError(t, f.rt.Execute(ctx, orig.ID))

		rerun, err := f.rt.Rerun(ctx, orig.ID)
		require.NoError(t, err)
		assert.NotEqual(t, orig.ID, rerun.ID)
		assert.Equal(t, "rerun_"+orig.EventID, rerun.EventID)
		assert.Equal(t, run.StatusPending, rerun.Status)
		assert.Zero(t, rerun.CurrentStep)
		assert.Equal(t, "quarterly numbers", rerun.OriginalEventPayload["snippet"])

		require.NoError(t, f.rt.Execute(ctx, rerun.ID))
		done, err := f.store.GetRun(ctx, rerun.ID)
		require.NoError(t, err)
		assert.Equal(t, run.StatusSuccess, done.Status)
	})

	t.Run("no preserved payload", func(t *testing.T) {
		f := setupRuntime(t)
		u := f.saveUnit(t, []models.Action{
			{Type: models.ActionTypeWait, Duration: "1h"},
		})
		r, err := f.store.CreateRun(ctx, store.NewRunInput{
			ID: uuid.New().String(), UnitID: u.ID, EventID: "evt-bare", UserID: "u1",
		})
		require.NoError(t, err)

		_, err = f.rt.Rerun(ctx, r.ID)
		assert.ErrorIs(t, err, ErrNoEventPayload)
	})

	t.Run("missing run", func(t *testing.T) {
		f := setupRuntime(t)
		_, err := f.rt.Rerun(ctx, "missing")
		assert.ErrorIs(t, err, store.ErrNotFound)
	})
}
