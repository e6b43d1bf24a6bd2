package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RunStep holds the schema definition for the RunStep entity — the audit row
// written at each step boundary of a run.
type RunStep struct {
	ent.Schema
}

// Fields of the RunStep.
func (RunStep) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("run_step_id").
			Unique().
			Immutable(),
		field.String("run_id").
			Immutable(),
		field.Int("step_index").
			Immutable(),
		field.String("action_type").
			Comment("wait, tool, or llm"),
		field.JSON("action_config", map[string]interface{}{}).
			Comment("Snapshot of the action as configured at execution time"),
		field.Enum("status").
			Values("started", "success", "failed").
			Default("started"),
		field.JSON("result", map[string]interface{}{}).
			Optional(),
		field.String("error").
			Optional(),
		field.Time("started_at").
			Default(time.Now),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the RunStep.
func (RunStep) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", Run.Type).
			Ref("steps").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the RunStep.
func (RunStep) Indexes() []ent.Index {
	return []ent.Index{
		// One audit row per step; LogRunStep upserts on conflict.
		index.Fields("run_id", "step_index").
			Unique(),
	}
}
