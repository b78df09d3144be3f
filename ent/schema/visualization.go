package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Visualization holds the schema definition for the Visualization entity.
// The rendered view of a step's data model. Created as a draft when the tool
// determines the data model type and finalized after the tool returns.
type Visualization struct {
	ent.Schema
}

// Fields of the Visualization.
func (Visualization) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("step_id").
			Immutable(),
		field.String("kind").
			Default("table").
			Comment("table, line, bar, scatter, metric, ..."),
		field.JSON("view", map[string]interface{}{}).
			Optional(),
		field.Enum("status").
			Values("draft", "ready", "error").
			Default("draft"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Visualization.
func (Visualization) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("step", Step.Type).
			Ref("visualizations").
			Field("step_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Visualization.
func (Visualization) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("step_id"),
	}
}
