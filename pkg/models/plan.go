package models

import (
	"encoding/json"
	"fmt"
)

// Trigger types.
const (
	TriggerTypeEvent    = "event"
	TriggerTypeSchedule = "schedule"
	TriggerTypeManual   = "manual"
)

// Action types.
const (
	ActionTypeWait = "wait"
	ActionTypeTool = "tool"
	ActionTypeLLM  = "llm"
)

// Condition operators.
const (
	OpEq       = "eq"
	OpNeq      = "neq"
	OpGt       = "gt"
	OpGte      = "gte"
	OpLt       = "lt"
	OpLte      = "lte"
	OpContains = "contains"
	OpIn       = "in"
	OpExists   = "exists"
)

// Trigger is the compiled "when" of a unit. Tagged by Type; only event
// triggers are matched by the core engine.
type Trigger struct {
	Type     string `json:"type"`
	Source   string `json:"source,omitempty"`
	Event    string `json:"event,omitempty"`
	Schedule string `json:"schedule,omitempty"`
}

// Condition is one compiled "if" clause. Field is a dotted path into the
// event payload; conditions are evaluated in AND.
type Condition struct {
	Field string `json:"field"`
	Op    string `json:"op"`
	Value any    `json:"value,omitempty"`
}

// Action is one compiled "then" step. Tagged by Type.
type Action struct {
	Type string `json:"type"`

	// wait
	Duration string `json:"duration,omitempty"`

	// tool
	Tool string         `json:"tool,omitempty"`
	Args map[string]any `json:"args,omitempty"`

	// llm
	Prompt string `json:"prompt,omitempty"`
	Input  any    `json:"input,omitempty"`

	// tool and llm results may be captured into the run context.
	StoreAs string `json:"store_as,omitempty"`
}

// RawRule is the free-text when/if/then the user authored.
type RawRule struct {
	When string `json:"when"`
	If   string `json:"if,omitempty"`
	Then string `json:"then"`
}

// Plan is a complete compiled unit body as produced by the Compiler.
type Plan struct {
	Name    string      `json:"name"`
	Raw     RawRule     `json:"raw"`
	When    Trigger     `json:"when"`
	If      []Condition `json:"if,omitempty"`
	Then    []Action    `json:"then"`
}

// Validate checks that the plan is executable: a usable trigger and at least
// one action with a known tag. Unknown action tags are rejected at the API
// boundary rather than at execution time.
func (p *Plan) Validate() error {
	switch p.When.Type {
	case TriggerTypeEvent:
		if p.When.Source == "" || p.When.Event == "" {
			return fmt.Errorf("event trigger requires source and event")
		}
	case TriggerTypeSchedule, TriggerTypeManual:
		// Accepted but not matched by the event path.
	default:
		return fmt.Errorf("unknown trigger type: %q", p.When.Type)
	}
	if len(p.Then) == 0 {
		return fmt.Errorf("plan has no actions")
	}
	for i, a := range p.Then {
		switch a.Type {
		case ActionTypeWait, ActionTypeTool, ActionTypeLLM:
		default:
			return fmt.Errorf("action %d has unknown type: %q", i, a.Type)
		}
	}
	for i, c := range p.If {
		switch c.Op {
		case OpEq, OpNeq, OpGt, OpGte, OpLt, OpLte, OpContains, OpIn, OpExists:
		default:
			return fmt.Errorf("condition %d has unknown op: %q", i, c.Op)
		}
	}
	return nil
}

// The ent schema stores compiled plans as opaque JSON columns. These helpers
// round-trip between the typed models and the generic maps ent persists.

// TriggerToMap encodes a trigger for the compiled_when column.
func TriggerToMap(t Trigger) map[string]any {
	return toMap(t)
}

// TriggerFromMap decodes the compiled_when column.
func TriggerFromMap(m map[string]any) (Trigger, error) {
	var t Trigger
	if err := fromAny(m, &t); err != nil {
		return Trigger{}, fmt.Errorf("decoding trigger: %w", err)
	}
	return t, nil
}

// ConditionsToSlice encodes conditions for the compiled_if column.
func ConditionsToSlice(cs []Condition) []any {
	out := make([]any, len(cs))
	for i, c := range cs {
		out[i] = toMap(c)
	}
	return out
}

// ConditionsFromSlice decodes the compiled_if column.
func ConditionsFromSlice(raw []any) ([]Condition, error) {
	var cs []Condition
	if err := fromAny(raw, &cs); err != nil {
		return nil, fmt.Errorf("decoding conditions: %w", err)
	}
	return cs, nil
}

// ActionsToSlice encodes actions for the compiled_then column.
func ActionsToSlice(as []Action) []any {
	out := make([]any, len(as))
	for i, a := range as {
		out[i] = toMap(a)
	}
	return out
}

// ActionsFromSlice decodes the compiled_then column.
func ActionsFromSlice(raw []any) ([]Action, error) {
	var as []Action
	if err := fromAny(raw, &as); err != nil {
		return nil, fmt.Errorf("decoding actions: %w", err)
	}
	return as, nil
}

// ActionToMap encodes a single action for the run_steps action_config column.
func ActionToMap(a Action) map[string]any {
	return toMap(a)
}

func toMap(v any) map[string]any {
	b, err := json.Marshal(v)
	if err != nil {
		return map[string]any{}
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return map[string]any{}
	}
	return m
}

func fromAny(src, dst any) error {
	b, err := json.Marshal(src)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, dst)
}
