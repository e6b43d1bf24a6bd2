package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Run holds the schema definition for the Run entity — a single execution
// of a Unit triggered by an Event.
type Run struct {
	ent.Schema
}

// Fields of the Run.
func (Run) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("run_id").
			Unique().
			Immutable(),
		field.String("unit_id").
			Immutable(),
		field.String("event_id").
			Immutable().
			Comment("Triggering event id; rerun runs carry a rerun_ prefix"),
		field.String("user_id").
			Immutable(),
		field.Enum("status").
			Values("pending", "running", "waiting", "success", "failed", "cancelled").
			Default("pending"),
		field.Int("current_step").
			Default(0).
			Comment("0-based index of the next action to execute"),
		field.JSON("context", map[string]interface{}{}).
			Comment("payload plus any store_as outputs"),
		field.Time("started_at").
			Default(time.Now),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("resume_at").
			Optional().
			Nillable().
			Comment("Set while status=waiting; mirrored into the wait queue"),
		field.String("error").
			Optional(),
		field.JSON("original_event_payload", map[string]interface{}{}).
			Optional().
			Comment("Preserved triggering payload for rerun"),
	}
}

// Edges of the Run. No edge to Unit: runs are immutable history that must
// survive unit deletion, so unit_id stays a plain column with no foreign key.
func (Run) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("steps", RunStep.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Run.
func (Run) Indexes() []ent.Index {
	return []ent.Index{
		// At-most-once per (unit, event): redelivered events cannot spawn
		// a second run.
		index.Fields("unit_id", "event_id").
			Unique(),
		index.Fields("user_id", "started_at"),
		index.Fields("status"),
	}
}
