package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Unit holds the schema definition for the Unit entity — one compiled
// automation rule (when/if/then).
type Unit struct {
	ent.Schema
}

// Fields of the Unit.
func (Unit) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("unit_id").
			Unique().
			Immutable(),
		field.String("owner_id").
			Comment("User who owns this unit"),
		field.String("name"),

		// Raw user input, kept for display and recompilation.
		field.Text("raw_when").
			Optional(),
		field.Text("raw_if").
			Optional(),
		field.Text("raw_then").
			Optional(),

		// Compiled plan, stored as opaque JSON and decoded into models
		// types at the service boundary.
		field.JSON("compiled_when", map[string]interface{}{}),
		field.JSON("compiled_if", []interface{}{}).
			Optional(),
		field.JSON("compiled_then", []interface{}{}),

		field.Enum("status").
			Values("active", "paused", "disabled").
			Default("active"),

		// Denormalized from compiled_when for the matcher's indexed lookup.
		field.String("trigger_source").
			Optional(),
		field.String("trigger_event").
			Optional(),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Unit.
func (Unit) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id"),
		// Matcher hot path: active units for (source, event).
		index.Fields("trigger_source", "trigger_event", "status"),
	}
}
