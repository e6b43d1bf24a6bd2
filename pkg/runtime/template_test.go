package runtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveString(t *testing.T) {
	runCtx := map[string]any{
		"payload": map[string]any{
			"from":    "boss@example.com",
			"snippet": "status?",
			"nested":  map[string]any{"deep": "value"},
			"list":    []any{"a", "b"},
			"count":   float64(3),
		},
		"summary": "the summary",
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain string untouched", "no placeholders", "no placeholders"},
		{"top level key", "{{summary}}", "the summary"},
		{"dot path", "reply to {{payload.from}}", "reply to boss@example.com"},
		{"deep path", "{{payload.nested.deep}}", "value"},
		{"missing path empty", "x{{payload.nope}}y", "xy"},
		{"missing root empty", "{{unknown.path}}", ""},
		{"object json encoded", "{{payload.nested}}", `{"deep":"value"}`},
		{"array json encoded", "{{payload.list}}", `["a","b"]`},
		{"number json encoded", "{{payload.count}}", "3"},
		{"multiple placeholders", "{{summary}} from {{payload.from}}", "the summary from boss@example.com"},
		{"whitespace tolerated", "{{ payload.from }}", "boss@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, resolveString(tt.input, runCtx))
		})
	}
}

func TestResolveArgs(t *testing.T) {
	runCtx := map[string]any{
		"payload": map[string]any{"id": "m1", "from": "a@b.c"},
	}

	args := map[string]any{
		"to":      "{{payload.from}}",
		"body":    map[string]any{"text": "re: {{payload.id}}"},
		"labels":  []any{"{{payload.id}}", "static"},
		"retries": 3,
	}

	resolved := ResolveArgs(args, runCtx)

	assert.Equal(t, "a@b.c", resolved["to"])
	assert.Equal(t, map[string]any{"text": "re: m1"}, resolved["body"])
	assert.Equal(t, []any{"m1", "static"}, resolved["labels"])
	assert.Equal(t, 3, resolved["retries"])

	// Input untouched.
	assert.Equal(t, "{{payload.from}}", args["to"])
}

func TestResolveArgsNil(t *testing.T) {
	assert.Nil(t, ResolveArgs(nil, map[string]any{}))
}

func TestResolveValueDepthCap(t *testing.T) {
	runCtx := map[string]any{"payload": map[string]any{"id": "m1"}}

	// A chain of nested maps with a placeholder at the bottom.
	nest := func(levels int) map[string]any {
		leaf := map[string]any{"v": "{{payload.id}}"}
		for i := 0; i < levels; i++ {
			leaf = map[string]any{"k": leaf}
		}
		return leaf
	}

	shallow := ResolveValue(nest(3), runCtx)
	cur := shallow.(map[string]any)
	for i := 0; i < 3; i++ {
		cur = cur["k"].(map[string]any)
	}
	assert.Equal(t, "m1", cur["v"])

	deep := ResolveValue(nest(maxResolveDepth+5), runCtx)
	cur = deep.(map[string]any)
	for i := 0; i < maxResolveDepth+5; i++ {
		cur = cur["k"].(map[string]any)
	}
	assert.Equal(t, "{{payload.id}}", cur["v"], "past the cap the value passes through unresolved")
}
