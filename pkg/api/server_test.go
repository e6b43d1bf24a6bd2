package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cortexhq/cortex/ent"
	"github.com/cortexhq/cortex/pkg/compiler"
	"github.com/cortexhq/cortex/pkg/engine"
	"github.com/cortexhq/cortex/pkg/matcher"
	"github.com/cortexhq/cortex/pkg/models"
	"github.com/cortexhq/cortex/pkg/runtime"
	"github.com/cortexhq/cortex/pkg/shaper"
	"github.com/cortexhq/cortex/pkg/store"
	"github.com/cortexhq/cortex/test/util"
)

type fakeGenerator struct {
	response string
	err      error
}

func (f *fakeGenerator) Generate(context.Context, string, any) (string, error) {
	return f.response, f.err
}

type fakeExecutor struct{}

func (fakeExecutor) Execute(context.Context, string, map[string]any, string) (any, error) {
	return map[string]any{"ok": true}, nil
}

const compiledPlanJSON = `{
  "name": "Boss email digest",
  "when": {"type": "event", "source": "gmail", "event": "email_received"},
  "then": [{"type": "llm", "prompt": "summarize", "input": "{{payload.snippet}}", "store_as": "summary"}]
}`

type apiFixture struct {
	router *gin.Engine
	store  *store.Store
}

func setupServer(t *testing.T) *apiFixture {
	gin.SetMode(gin.TestMode)

	db, _ := util.SetupTestDatabase(t)
	c, _ := util.SetupTestCache(t)
	st := store.New(db, c)

	rt := runtime.New(st, &fakeGenerator{response: compiledPlanJSON}, fakeExecutor{})
	eng := engine.New(st, matcher.New(st), rt, 1, 16)
	eng.Start()
	t.Cleanup(eng.Stop)

	comp := compiler.New(&fakeGenerator{response: compiledPlanJSON})
	sh := shaper.New(st, eng.ProcessEvent)

	srv := NewServer(st, nil, comp, rt, eng, sh)
	return &apiFixture{router: srv.Router(), store: st}
}

func (f *apiFixture) request(t *testing.T, method, path, userID string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("x-user-id", userID)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func (f *apiFixture) saveUnit(t *testing.T, ownerID string) *ent.Unit {
	t.Helper()
	var plan models.Plan
	require.NoError(t, json.Unmarshal([]byte(compiledPlanJSON), &plan))
	u, err := f.store.SaveUnit(context.Background(), store.UnitRecord{
		ID: uuid.New().String(), OwnerID: ownerID, Plan: plan,
	})
	require.NoError(t, err)
	return u
}

func TestRequireUser(t *testing.T) {
	f := setupServer(t)
	for _, path := range []string{"/api/cortex/units", "/api/cortex/runs", "/api/connections"} {
		w := f.request(t, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestUnitEndpoints(t *testing.T) {
	t.Run("create from structured body", func(t *testing.T) {
		f := setupServer(t)
		w := f.request(t, http.MethodPost, "/api/cortex/units", "u1", models.CreateUnitRequest{
			Name: "My rule",
			When: &models.Trigger{Type: "event", Source: "gmail", Event: "email_received"},
			Then: []models.Action{{Type: "wait", Duration: "1h"}},
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		u := decode[*ent.Unit](t, w)
		assert.Equal(t, "My rule", u.Name)
		assert.Equal(t, "u1", u.OwnerID)
		assert.Equal(t, "gmail", u.TriggerSource)
	})

	t.Run("create from prompt", func(t *testing.T) {
		f := setupServer(t)
		w := f.request(t, http.MethodPost, "/api/cortex/units", "u1", models.CreateUnitRequest{
			Prompt: "when I get an email from my boss then summarize it",
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		u := decode[*ent.Unit](t, w)
		assert.Equal(t, "Boss email digest", u.Name)
		assert.Equal(t, "email_received", u.TriggerEvent)
	})

	t.Run("neither prompt nor structured body", func(t *testing.T) {
		f := setupServer(t)
		w := f.request(t, http.MethodPost, "/api/cortex/units", "u1", models.CreateUnitRequest{Name: "x"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unparsable prompt", func(t *testing.T) {
		f := setupServer(t)
		w := f.request(t, http.MethodPost, "/api/cortex/units", "u1", models.CreateUnitRequest{
			Prompt: "just do something",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("get hides other users' units", func(t *testing.T) {
		f := setupServer(t)
		u := f.saveUnit(t, "u1")

		w := f.request(t, http.MethodGet, "/api/cortex/units/"+u.ID, "u1", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		w = f.request(t, http.MethodGet, "/api/cortex/units/"+u.ID, "u2", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("status transition", func(t *testing.T) {
		f := setupServer(t)
		u := f.saveUnit(t, "u1")

		w := f.request(t, http.MethodPatch, "/api/cortex/units/"+u.ID+"/status", "u1",
			models.UpdateUnitStatusRequest{Status: "paused"})
		require.Equal(t, http.StatusOK, w.Code)

		updated := decode[*ent.Unit](t, w)
		assert.Equal(t, "paused", string(updated.Status))

		w = f.request(t, http.MethodPatch, "/api/cortex/units/"+u.ID+"/status", "u1",
			models.UpdateUnitStatusRequest{Status: "bogus"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("delete", func(t *testing.T) {
		f := setupServer(t)
		u := f.saveUnit(t, "u1")

		w := f.request(t, http.MethodDelete, "/api/cortex/units/"+u.ID, "u1", nil)
		assert.Equal(t, http.StatusNoContent, w.Code)

		w = f.request(t, http.MethodGet, "/api/cortex/units/"+u.ID, "u1", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("list is scoped to the caller", func(t *testing.T) {
		f := setupServer(t)
		f.saveUnit(t, "u1")
		f.saveUnit(t, "u2")

		w := f.request(t, http.MethodGet, "/api/cortex/units", "u1", nil)
		require.Equal(t, http.StatusOK, w.Code)
		units := decode[[]*ent.Unit](t, w)
		assert.Len(t, units, 1)
	})
}

func TestRunEndpoints(t *testing.T) {
	ctx := context.Background()

	createRun := func(t *testing.T, f *apiFixture, unitID string, payload map[string]any) *ent.Run {
		t.Helper()
		r, err := f.store.CreateRun(ctx, store.NewRunInput{
			ID: uuid.New().String(), UnitID: unitID, EventID: uuid.New().String(), UserID: "u1",
			Context: map[string]any{"payload": payload}, EventPayload: payload,
		})
		require.NoError(t, err)
		return r
	}

	t.Run("get run with steps, scoped to owner", func(t *testing.T) {
		f := setupServer(t)
		u := f.saveUnit(t, "u1")
		r := createRun(t, f, u.ID, map[string]any{"from": "boss@corp.io"})

		w := f.request(t, http.MethodGet, "/api/cortex/runs/"+r.ID, "u1", nil)
		require.Equal(t, http.StatusOK, w.Code)
		detail := decode[models.RunDetail](t, w)
		assert.Equal(t, r.ID, detail.Run.ID)

		w = f.request(t, http.MethodGet, "/api/cortex/runs/"+r.ID, "u2", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("rerun", func(t *testing.T) {
		f := setupServer(t)
		u := f.saveUnit(t, "u1")
		r := createRun(t, f, u.ID, map[string]any{"snippet": "numbers"})

		w := f.request(t, http.MethodPost, "/api/cortex/runs/"+r.ID+"/rerun", "u1", nil)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		rerun := decode[*ent.Run](t, w)
		assert.Equal(t, "rerun_"+r.EventID, rerun.EventID)
	})

	t.Run("rerun without preserved payload", func(t *testing.T) {
		f := setupServer(t)
		u := f.saveUnit(t, "u1")
		r, err := f.store.CreateRun(ctx, store.NewRunInput{
			ID: uuid.New().String(), UnitID: u.ID, EventID: "evt-bare", UserID: "u1",
		})
		require.NoError(t, err)

		w := f.request(t, http.MethodPost, "/api/cortex/runs/"+r.ID+"/rerun", "u1", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("metrics", func(t *testing.T) {
		f := setupServer(t)
		f.saveUnit(t, "u1")

		w := f.request(t, http.MethodGet, "/api/cortex/metrics", "u1", nil)
		require.Equal(t, http.StatusOK, w.Code)
		m := decode[models.EngineMetrics](t, w)
		assert.Equal(t, 1, m.ActiveUnits)
	})
}

func TestConnectionEndpoints(t *testing.T) {
	t.Run("register and list", func(t *testing.T) {
		f := setupServer(t)
		w := f.request(t, http.MethodPost, "/api/connections", "u1", models.RegisterConnectionRequest{
			Provider: "gmail", ConnectionID: "conn-1",
		})
		require.Equal(t, http.StatusCreated, w.Code)

		w = f.request(t, http.MethodGet, "/api/connections", "u1", nil)
		require.Equal(t, http.StatusOK, w.Code)
		conns := decode[[]*ent.Connection](t, w)
		require.Len(t, conns, 1)
		assert.Equal(t, "conn-1", conns[0].ConnectionID)
	})

	t.Run("register requires fields", func(t *testing.T) {
		f := setupServer(t)
		w := f.request(t, http.MethodPost, "/api/connections", "u1", models.RegisterConnectionRequest{
			Provider: "gmail",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("toggle enabled", func(t *testing.T) {
		f := setupServer(t)
		conn, err := f.store.UpsertConnection(context.Background(), "u1", "gmail", "conn-1")
		require.NoError(t, err)

		enabled := false
		w := f.request(t, http.MethodPatch, "/api/connections/"+conn.ID, "u1",
			updateConnectionRequest{Enabled: &enabled})
		require.Equal(t, http.StatusOK, w.Code)
		updated := decode[*ent.Connection](t, w)
		assert.False(t, updated.Enabled)

		// Missing enabled field.
		w = f.request(t, http.MethodPatch, "/api/connections/"+conn.ID, "u1", map[string]any{})
		assert.Equal(t, http.StatusBadRequest, w.Code)

		// Other users cannot touch it.
		w = f.request(t, http.MethodPatch, "/api/connections/"+conn.ID, "u2",
			updateConnectionRequest{Enabled: &enabled})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestWebhookEndpoint(t *testing.T) {
	t.Run("sync answers 202 before processing", func(t *testing.T) {
		f := setupServer(t)
		w := f.request(t, http.MethodPost, "/api/webhooks/nango", "", models.WebhookPayload{
			Type: "sync", ConnectionID: "conn-1", Model: "GmailEmail",
		})
		assert.Equal(t, http.StatusAccepted, w.Code)
	})

	t.Run("auth registers known connections", func(t *testing.T) {
		f := setupServer(t)
		require.NoError(t, f.store.Cache().SetConnectionOwner(context.Background(), "conn-1", "u1"))

		w := f.request(t, http.MethodPost, "/api/webhooks/nango", "", models.WebhookPayload{
			Type: "auth", ConnectionID: "conn-1", ProviderConfigKey: "gmail",
		})
		require.Equal(t, http.StatusOK, w.Code)

		conns, err := f.store.ListConnections(context.Background(), "u1")
		require.NoError(t, err)
		require.Len(t, conns, 1)
		assert.Equal(t, "gmail", conns[0].Provider)
	})

	t.Run("auth drops unknown connections", func(t *testing.T) {
		f := setupServer(t)
		w := f.request(t, http.MethodPost, "/api/webhooks/nango", "", models.WebhookPayload{
			Type: "auth", ConnectionID: "conn-unknown", ProviderConfigKey: "gmail",
		})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "dropped")
	})

	t.Run("unknown type ignored", func(t *testing.T) {
		f := setupServer(t)
		w := f.request(t, http.MethodPost, "/api/webhooks/nango", "", models.WebhookPayload{Type: "ping"})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "ignored")
	})
}
