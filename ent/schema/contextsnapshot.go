package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ContextSnapshot holds the schema definition for the ContextSnapshot entity.
// An immutable serialization of the context hub's view at a checkpoint. The
// persisted payload is the slim usage-only projection, not the rendered text.
type ContextSnapshot struct {
	ent.Schema
}

// Fields of the ContextSnapshot.
func (ContextSnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("agent_execution_id").
			Immutable(),
		field.String("completion_id").
			Immutable().
			Comment("Denormalized for completion-level debugging queries"),
		field.Enum("kind").
			Values("initial", "pre_tool", "post_tool", "final").
			Immutable(),
		field.Int("loop_index").
			Immutable(),
		field.JSON("payload", map[string]interface{}{}).
			Comment("Slim usage-only projection: tracking records plus section token sizes"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ContextSnapshot.
func (ContextSnapshot) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("execution", AgentExecution.Type).
			Ref("context_snapshots").
			Field("agent_execution_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ContextSnapshot.
func (ContextSnapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent_execution_id", "loop_index"),
		index.Fields("completion_id"),
	}
}
