package store

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/cortexhq/cortex/ent"
	"github.com/cortexhq/cortex/pkg/models"
	"github.com/cortexhq/cortex/test/util"
)

func setupStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	db, _ := util.SetupTestDatabase(t)
	c, mr := util.SetupTestCache(t)
	return New(db, c), mr
}

func testPlan() models.Plan {
	return models.Plan{
		Name: "Boss email digest",
		Raw:  models.RawRule{When: "I get an email from my boss", Then: "summarize it"},
		When: models.Trigger{Type: models.TriggerTypeEvent, Source: models.SourceGmail, Event: "email_received"},
		If:   []models.Condition{{Field: "from", Op: models.OpContains, Value: "boss"}},
		Then: []models.Action{
			{Type: models.ActionTypeLLM, Prompt: "summarize", Input: "{{payload.snippet}}", StoreAs: "summary"},
		},
	}
}

func mustSaveUnit(t *testing.T, st *Store, ownerID string) *ent.Unit {
	t.Helper()
	u, err := st.SaveUnit(context.Background(), UnitRecord{
		ID:      uuid.New().String(),
		OwnerID: ownerID,
		Plan:    testPlan(),
		Status:  "active",
	})
	require.NoError(t, err)
	return u
}

func mustCreateRun(t *testing.T, st *Store, unitID, eventID, userID string) *ent.Run {
	t.Helper()
	r, err := st.CreateRun(context.Background(), NewRunInput{
		ID:           uuid.New().String(),
		UnitID:       unitID,
		EventID:      eventID,
		UserID:       userID,
		Context:      map[string]any{"payload": map[string]any{"from": "boss@corp.io"}},
		EventPayload: map[string]any{"from": "boss@corp.io"},
	})
	require.NoError(t, err)
	return r
}
