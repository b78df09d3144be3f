package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DataQuery holds the schema definition for the DataQuery entity.
// The SQL produced by a data tool; referenced by the step it backs.
// "Query" itself is reserved by ent codegen, hence the prefixed type name;
// the table stays "queries".
type DataQuery struct {
	ent.Schema
}

// Annotations of the DataQuery.
func (DataQuery) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "queries"},
	}
}

// Fields of the DataQuery.
func (DataQuery) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("report_id").
			Immutable(),
		field.String("data_source_id").
			Optional(),
		field.Text("sql").
			Default(""),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the DataQuery.
func (DataQuery) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("report", Report.Type).
			Ref("queries").
			Field("report_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the DataQuery.
func (DataQuery) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("report_id"),
	}
}
