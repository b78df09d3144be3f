package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PlanDecision holds the schema definition for the PlanDecision entity.
// Validated planner output for one loop iteration. Upserted on every partial
// by (agent_execution_id, seq) — all partial and final updates for an
// iteration target the same row.
type PlanDecision struct {
	ent.Schema
}

// Fields of the PlanDecision.
func (PlanDecision) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("agent_execution_id").
			Immutable(),
		field.Int("seq").
			Immutable().
			Comment("Decision seq — pinned at pre-creation of the skeleton block"),
		field.Int("loop_index").
			Immutable(),
		field.Enum("plan_type").
			Values("action", "research").
			Default("action"),
		field.Text("reasoning_message").
			Default(""),
		field.Text("assistant_message").
			Default(""),
		field.String("action_name").
			Optional().
			Nillable(),
		field.JSON("action_arguments", map[string]interface{}{}).
			Optional(),
		field.Bool("analysis_complete").
			Default(false),
		field.Text("final_answer").
			Optional(),
		field.String("error_code").
			Optional().
			Nillable(),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Bool("final").
			Default(false).
			Comment("True once the terminal update for this iteration has landed"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the PlanDecision.
func (PlanDecision) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("execution", AgentExecution.Type).
			Ref("plan_decisions").
			Field("agent_execution_id").
			Unique().
			Required().
			Immutable(),
		edge.To("block", CompletionBlock.Type),
		edge.To("tool_executions", ToolExecution.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the PlanDecision.
func (PlanDecision) Indexes() []ent.Index {
	return []ent.Index{
		// At most one decision per (execution, seq) — I1
		index.Fields("agent_execution_id", "seq").
			Unique(),
	}
}
