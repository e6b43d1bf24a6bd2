package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Connection holds the schema definition for the Connection entity — a
// registered (user, provider) link through the provider gateway.
type Connection struct {
	ent.Schema
}

// Fields of the Connection.
func (Connection) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("connection_row_id").
			Unique().
			Immutable(),
		field.String("user_id"),
		field.String("provider").
			Comment("Normalized provider name: gmail, google-calendar, salesforce"),
		field.String("connection_id").
			Comment("Gateway-side connection identifier"),
		field.Bool("enabled").
			Default(true),
		field.Time("last_poll_at").
			Optional().
			Nillable(),
		field.Int("error_count").
			Default(0).
			Comment("Consecutive poll failures; auto-disable past threshold"),
		field.String("last_error").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Connection.
func (Connection) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "provider").
			Unique(),
		index.Fields("enabled"),
		index.Fields("connection_id"),
	}
}
