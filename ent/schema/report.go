package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Report holds the schema definition for the Report entity.
// A report is the conversational container for a sequence of turns and owns
// data sources, instructions, and produced artifacts. Created externally;
// the orchestrator only reads it and appends completions.
type Report struct {
	ent.Schema
}

// Fields of the Report.
func (Report) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("title").
			Optional().
			Comment("Generated asynchronously after the first turn"),
		field.String("organization_id").
			Optional().
			Comment("Capability flags are resolved per organization"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Report.
func (Report) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("completions", Completion.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("data_sources", DataSource.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("instructions", Instruction.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("widgets", Widget.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("queries", DataQuery.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Report.
func (Report) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("created_at"),
	}
}
