package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Widget holds the schema definition for the Widget entity.
// Created by artifact-producing tools during a turn.
type Widget struct {
	ent.Schema
}

// Fields of the Widget.
func (Widget) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("report_id").
			Immutable(),
		field.String("completion_id").
			Optional().
			Comment("The system completion whose turn created this widget"),
		field.String("title").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Widget.
func (Widget) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("report", Report.Type).
			Ref("widgets").
			Field("report_id").
			Unique().
			Required().
			Immutable(),
		edge.To("steps", Step.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Widget.
func (Widget) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("report_id"),
		index.Fields("completion_id"),
	}
}
