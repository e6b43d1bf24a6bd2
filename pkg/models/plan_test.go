package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPlan() Plan {
	return Plan{
		Name: "Summarize boss email",
		When: Trigger{Type: TriggerTypeEvent, Source: SourceGmail, Event: "email_received"},
		If: []Condition{
			{Field: "from", Op: OpContains, Value: "boss"},
		},
		Then: []Action{
			{Type: ActionTypeLLM, Prompt: "summarize", Input: "{{payload.snippet}}", StoreAs: "summary"},
			{Type: ActionTypeWait, Duration: "30m"},
			{Type: ActionTypeTool, Tool: "gmail.send", Args: map[string]any{"to": "me"}},
		},
	}
}

func TestPlanValidate(t *testing.T) {
	t.Run("valid plan", func(t *testing.T) {
		p := validPlan()
		assert.NoError(t, p.Validate())
	})

	t.Run("event trigger requires source and event", func(t *testing.T) {
		p := validPlan()
		p.When.Event = ""
		assert.Error(t, p.Validate())
	})

	t.Run("unknown trigger type", func(t *testing.T) {
		p := validPlan()
		p.When.Type = "cron"
		assert.Error(t, p.Validate())
	})

	t.Run("no actions", func(t *testing.T) {
		p := validPlan()
		p.Then = nil
		assert.Error(t, p.Validate())
	})

	t.Run("unknown action tag rejected", func(t *testing.T) {
		p := validPlan()
		p.Then = append(p.Then, Action{Type: "webhook"})
		assert.Error(t, p.Validate())
	})

	t.Run("unknown condition op rejected", func(t *testing.T) {
		p := validPlan()
		p.If = []Condition{{Field: "x", Op: "matches", Value: "y"}}
		assert.Error(t, p.Validate())
	})

	t.Run("schedule trigger accepted", func(t *testing.T) {
		p := validPlan()
		p.When = Trigger{Type: TriggerTypeSchedule, Schedule: "daily"}
		assert.NoError(t, p.Validate())
	})
}

func TestCompiledColumnRoundTrip(t *testing.T) {
	p := validPlan()

	when, err := TriggerFromMap(TriggerToMap(p.When))
	require.NoError(t, err)
	assert.Equal(t, p.When, when)

	conds, err := ConditionsFromSlice(ConditionsToSlice(p.If))
	require.NoError(t, err)
	require.Len(t, conds, 1)
	assert.Equal(t, p.If[0].Field, conds[0].Field)
	assert.Equal(t, p.If[0].Op, conds[0].Op)

	actions, err := ActionsFromSlice(ActionsToSlice(p.Then))
	require.NoError(t, err)
	require.Len(t, actions, 3)
	assert.Equal(t, ActionTypeWait, actions[1].Type)
	assert.Equal(t, "30m", actions[1].Duration)
	assert.Equal(t, "gmail.send", actions[2].Tool)
}
