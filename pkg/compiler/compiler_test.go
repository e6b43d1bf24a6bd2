package compiler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cortexhq/cortex/pkg/models"
)

type fakeGenerator struct {
	response string
	err      error
	gotInput any
}

func (f *fakeGenerator) Generate(_ context.Context, _ string, input any) (string, error) {
	f.gotInput = input
	return f.response, f.err
}

const goodPlanJSON = `{
  "name": "Boss email digest",
  "when": {"type": "event", "source": "gmail", "event": "email_received"},
  "if": [{"field": "from", "op": "contains", "value": "boss"}],
  "then": [
    {"type": "llm", "prompt": "summarize", "input": "{{payload.snippet}}", "store_as": "summary"},
    {"type": "wait", "duration": "30m"},
    {"type": "tool", "tool": "gmail.send", "args": {"to": "me@example.com", "body": "{{summary}}"}}
  ]
}`

func TestCompile(t *testing.T) {
	gen := &fakeGenerator{response: goodPlanJSON}
	c := New(gen)

	rec, err := c.Compile(context.Background(), "u1", models.RawRule{
		When: "I get an email from my boss",
		Then: "summarize it, wait 30 minutes, email me the summary",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, "u1", rec.OwnerID)
	assert.Equal(t, "active", rec.Status)
	assert.Equal(t, "Boss email digest", rec.Plan.Name)
	assert.Equal(t, "gmail", rec.Plan.When.Source)
	assert.Equal(t, "email_received", rec.Plan.When.Event)
	require.Len(t, rec.Plan.Then, 3)
	assert.Equal(t, models.ActionTypeWait, rec.Plan.Then[1].Type)
	assert.Equal(t, "I get an email from my boss", rec.Plan.Raw.When)
}

func TestCompileToleratesFencedResponse(t *testing.T) {
	gen := &fakeGenerator{response: "Here is the plan:\n```json\n" + goodPlanJSON + "\n```"}
	c := New(gen)

	rec, err := c.Compile(context.Background(), "u1", models.RawRule{When: "w", Then: "t"})
	require.NoError(t, err)
	assert.Equal(t, "gmail", rec.Plan.When.Source)
}

func TestCompileRejectsInvalidPlan(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{"no json", "I cannot do that"},
		{"broken json", `{"name": "x", "when":`},
		{"unknown action tag", `{"name":"x","when":{"type":"event","source":"gmail","event":"email_received"},"then":[{"type":"webhook"}]}`},
		{"unknown trigger", `{"name":"x","when":{"type":"cron"},"then":[{"type":"wait","duration":"1h"}]}`},
		{"no actions", `{"name":"x","when":{"type":"event","source":"gmail","event":"email_received"},"then":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(&fakeGenerator{response: tt.response})
			_, err := c.Compile(context.Background(), "u1", models.RawRule{When: "w", Then: "t"})
			assert.Error(t, err)
		})
	}
}

func TestCompileGeneratorError(t *testing.T) {
	c := New(&fakeGenerator{err: errors.New("model unavailable")})
	_, err := c.Compile(context.Background(), "u1", models.RawRule{When: "w", Then: "t"})
	assert.Error(t, err)
}

func TestCompileFromPrompt(t *testing.T) {
	gen := &fakeGenerator{response: goodPlanJSON}
	c := New(gen)

	rec, err := c.CompileFromPrompt(context.Background(), "u1",
		"when I get an email from my boss then summarize it")
	require.NoError(t, err)
	assert.Equal(t, "I get an email from my boss", rec.Plan.Raw.When)

	input, ok := gen.gotInput.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "I get an email from my boss", input["when"])

	_, err = c.CompileFromPrompt(context.Background(), "u1", "no markers here")
	assert.Error(t, err)
}
