package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Step holds the schema definition for the Step entity.
// One data-producing step within a widget. Its data model grows
// progressively while the owning tool streams column and series updates.
type Step struct {
	ent.Schema
}

// Fields of the Step.
func (Step) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("widget_id").
			Immutable(),
		field.String("query_id").
			Optional(),
		field.Text("code").
			Default(""),
		field.JSON("data", []map[string]interface{}{}).
			Optional(),
		field.JSON("data_model", map[string]interface{}{}).
			Optional().
			Comment("type, columns, series — mutated by streaming tool progress"),
		field.Enum("status").
			Values("in_progress", "success", "error").
			Default("in_progress"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Step.
func (Step) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("widget", Widget.Type).
			Ref("steps").
			Field("widget_id").
			Unique().
			Required().
			Immutable(),
		edge.To("visualizations", Visualization.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Step.
func (Step) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("widget_id"),
		index.Fields("query_id"),
	}
}
