package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Instruction holds the schema definition for the Instruction entity.
// Instructions are loaded into the planner context according to load_mode:
// `always` are loaded first, `intelligent` are keyword-scored against the
// user query, `disabled` are excluded.
type Instruction struct {
	ent.Schema
}

// Fields of the Instruction.
func (Instruction) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("report_id").
			Immutable(),
		field.Text("text"),
		field.String("category").
			Optional(),
		field.Enum("load_mode").
			Values("always", "intelligent", "disabled").
			Default("intelligent"),
		field.String("build_id").
			Optional().
			Nillable().
			Comment("Versioned container; instructions from the main build win over loose rows"),
		field.String("ai_source").
			Optional().
			Comment("\"completion\" for drafts produced by the post-analysis suggester"),
		field.Int("usage_count").
			Default(0),
		field.Int("position").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Instruction.
func (Instruction) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("report", Report.Type).
			Ref("instructions").
			Field("report_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Instruction.
func (Instruction) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("report_id", "load_mode"),
		index.Fields("build_id"),
	}
}
