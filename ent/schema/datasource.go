package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DataSource holds the schema definition for the DataSource entity.
// A connected database whose table metadata feeds the schemas context
// section. Table shapes (columns, keys, usage stats) are stored as JSON —
// they are produced by an external introspection pipeline and consumed
// read-only here.
type DataSource struct {
	ent.Schema
}

// Fields of the DataSource.
func (DataSource) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("report_id").
			Immutable(),
		field.String("name"),
		field.String("dialect").
			Optional().
			Comment("e.g. postgres, snowflake, bigquery"),
		field.Bool("active").
			Default(true),
		field.JSON("tables", []map[string]interface{}{}).
			Optional().
			Comment("Introspected table metadata: name, columns, pks, fks, usage stats"),
		field.JSON("user_overlays", map[string]interface{}{}).
			Optional().
			Comment("Per-user table overlays applied under user_required auth policies"),
		field.String("auth_policy").
			Default("shared").
			Comment("shared | user_required"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the DataSource.
func (DataSource) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("report", Report.Type).
			Ref("data_sources").
			Field("report_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the DataSource.
func (DataSource) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("report_id", "active"),
	}
}
