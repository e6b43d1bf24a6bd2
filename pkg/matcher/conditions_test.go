package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cortexhq/cortex/pkg/models"
)

func TestEvalCondition(t *testing.T) {
	payload := map[string]any{
		"from":    "Boss@Example.com",
		"amount":  float64(6500),
		"stage":   "Negotiation",
		"nested":  map[string]any{"count": float64(2)},
		"flagged": true,
	}

	tests := []struct {
		name string
		cond models.Condition
		want bool
	}{
		{"eq string", models.Condition{Field: "stage", Op: models.OpEq, Value: "Negotiation"}, true},
		{"eq string mismatch", models.Condition{Field: "stage", Op: models.OpEq, Value: "Closed"}, false},
		{"eq numeric int vs float", models.Condition{Field: "amount", Op: models.OpEq, Value: 6500}, true},
		{"eq missing field", models.Condition{Field: "nope", Op: models.OpEq, Value: "x"}, false},
		{"neq", models.Condition{Field: "stage", Op: models.OpNeq, Value: "Closed"}, true},
		{"neq missing field holds", models.Condition{Field: "nope", Op: models.OpNeq, Value: "x"}, true},
		{"gt", models.Condition{Field: "amount", Op: models.OpGt, Value: 5000}, true},
		{"gt equal is false", models.Condition{Field: "amount", Op: models.OpGt, Value: 6500}, false},
		{"gte equal", models.Condition{Field: "amount", Op: models.OpGte, Value: 6500}, true},
		{"lt", models.Condition{Field: "amount", Op: models.OpLt, Value: 10000}, true},
		{"lte", models.Condition{Field: "amount", Op: models.OpLte, Value: 6500}, true},
		{"numeric against non-number", models.Condition{Field: "stage", Op: models.OpGt, Value: 5}, false},
		{"contains case-insensitive", models.Condition{Field: "from", Op: models.OpContains, Value: "boss"}, true},
		{"contains absent", models.Condition{Field: "from", Op: models.OpContains, Value: "intern"}, false},
		{"contains non-string value", models.Condition{Field: "from", Op: models.OpContains, Value: 5}, false},
		{"in hit", models.Condition{Field: "stage", Op: models.OpIn, Value: []any{"Prospect", "Negotiation"}}, true},
		{"in miss", models.Condition{Field: "stage", Op: models.OpIn, Value: []any{"Prospect"}}, false},
		{"in non-list value", models.Condition{Field: "stage", Op: models.OpIn, Value: "Negotiation"}, false},
		{"exists", models.Condition{Field: "flagged", Op: models.OpExists}, true},
		{"exists dot path", models.Condition{Field: "nested.count", Op: models.OpExists}, true},
		{"exists missing", models.Condition{Field: "nested.other", Op: models.OpExists}, false},
		{"dot path compare", models.Condition{Field: "nested.count", Op: models.OpGte, Value: 2}, true},
		{"path through non-map", models.Condition{Field: "from.sub", Op: models.OpExists}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, evalCondition(tt.cond, payload))
		})
	}
}

func TestEvalConditionsAnd(t *testing.T) {
	payload := map[string]any{"a": float64(1), "b": "x"}

	assert.True(t, evalConditions(nil, payload), "empty condition list matches")
	assert.True(t, evalConditions([]models.Condition{
		{Field: "a", Op: models.OpEq, Value: 1},
		{Field: "b", Op: models.OpEq, Value: "x"},
	}, payload))
	assert.False(t, evalConditions([]models.Condition{
		{Field: "a", Op: models.OpEq, Value: 1},
		{Field: "b", Op: models.OpEq, Value: "y"},
	}, payload), "one failing condition fails the AND")
}
