// Package compiler turns raw when/if/then rule text into a typed, validated
// plan. Compilation is LLM-backed and off the hot path: runs never wait on
// it.
package compiler

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/cortexhq/cortex/pkg/llm"
	"github.com/cortexhq/cortex/pkg/models"
	"github.com/cortexhq/cortex/pkg/store"
)

// compileInstruction constrains the model to the engine's typed plan schema.
// The catalogs must stay in sync with the matcher's sources, the condition
// op set, and the tool registry.
const compileInstruction = `You translate an automation rule written as when/if/then text into a JSON plan.

Respond with ONLY a JSON object, no prose, in this exact shape:
{
  "name": "<short human-readable rule name>",
  "when": {"type": "event", "source": "<source>", "event": "<event>"},
  "if": [{"field": "<dot.path into event payload>", "op": "<op>", "value": <json>}],
  "then": [<action>, ...]
}

Sources and their events:
- "gmail": email_received, email_sent, email_reply_received, sync_completed
- "google-calendar": event_created, event_updated, event_starting, event_cancelled, sync_completed
- "salesforce": lead_created, lead_converted, lead_stage_changed, opportunity_created, opportunity_stage_changed, opportunity_closed_won, opportunity_closed_lost, opportunity_amount_changed, sync_completed

Condition ops: eq, neq, gt, gte, lt, lte, contains, in, exists. Omit "if" or use [] when there are no conditions.

Actions (executed in order):
- {"type": "wait", "duration": "<N><m|h|d|w>"}
- {"type": "llm", "prompt": "<summarize|draft_reply|extract_action_items|analyze_sentiment or a raw instruction>", "input": "<text, may use {{payload.field}} templates>", "store_as": "<optional context key>"}
- {"type": "tool", "tool": "<gmail.send|gmail.reply|gmail.add_label|calendar.create|calendar.update|salesforce.update_lead|salesforce.update_opportunity|salesforce.create_task>", "args": {...}, "store_as": "<optional>"}

Template placeholders like {{payload.from}} or {{summary}} refer to the run context and must be kept verbatim.`

// Compiler compiles raw rules into units.
type Compiler struct {
	llm llm.Generator
}

// New creates a Compiler.
func New(gen llm.Generator) *Compiler {
	return &Compiler{llm: gen}
}

// Compile maps a raw rule to a complete unit record with a fresh id. The
// returned plan is validated: unknown trigger types, ops, or action tags are
// rejected here, before anything is persisted.
func (c *Compiler) Compile(ctx context.Context, ownerID string, raw models.RawRule) (*store.UnitRecord, error) {
	input := map[string]any{
		"when": raw.When,
		"then": raw.Then,
	}
	if raw.If != "" {
		input["if"] = raw.If
	}

	text, err := c.llm.Generate(ctx, compileInstruction, input)
	if err != nil {
		return nil, fmt.Errorf("compiling rule: %w", err)
	}

	plan, err := parsePlan(text)
	if err != nil {
		return nil, fmt.Errorf("compiler returned an unusable plan: %w", err)
	}
	plan.Raw = raw
	if plan.Name == "" {
		plan.Name = raw.When + " → " + raw.Then
	}
	if err := plan.Validate(); err != nil {
		return nil, fmt.Errorf("compiled plan is invalid: %w", err)
	}

	return &store.UnitRecord{
		ID:      uuid.New().String(),
		OwnerID: ownerID,
		Plan:    *plan,
		Status:  "active",
	}, nil
}

// CompileFromPrompt splits a single free-text prompt into when/if/then and
// compiles it.
func (c *Compiler) CompileFromPrompt(ctx context.Context, ownerID, prompt string) (*store.UnitRecord, error) {
	raw, err := SplitPrompt(prompt)
	if err != nil {
		return nil, err
	}
	return c.Compile(ctx, ownerID, raw)
}

// parsePlan extracts the JSON object from the model's response, tolerating
// code fences and surrounding prose.
func parsePlan(text string) (*models.Plan, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON object in response")
	}

	var plan models.Plan
	if err := json.Unmarshal([]byte(text[start:end+1]), &plan); err != nil {
		return nil, fmt.Errorf("decoding plan JSON: %w", err)
	}
	return &plan, nil
}
