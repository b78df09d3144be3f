package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ToolExecution holds the schema definition for the ToolExecution entity.
// One invocation of a tool, child of the PlanDecision that chose it. Once
// status=success is recorded, no further attempts for that invocation.
type ToolExecution struct {
	ent.Schema
}

// Fields of the ToolExecution.
func (ToolExecution) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("plan_decision_id").
			Immutable(),
		field.String("agent_execution_id").
			Immutable().
			Comment("Denormalized for per-turn queries"),
		field.String("tool_name").
			Immutable(),
		field.String("tool_action").
			Optional(),
		field.JSON("arguments", map[string]interface{}{}).
			Optional(),
		field.Enum("status").
			Values("running", "success", "error").
			Default("running"),
		field.JSON("result", map[string]interface{}{}).
			Optional(),
		field.Text("result_summary").
			Optional(),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Int("duration_ms").
			Optional().
			Nillable(),
		field.Int("attempt_number").
			Default(1),
		// Artifact references populated by the streaming side-effect handler.
		field.String("created_widget_id").
			Optional().
			Nillable(),
		field.String("created_step_id").
			Optional().
			Nillable(),
		field.JSON("created_visualization_ids", []string{}).
			Optional(),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the ToolExecution.
func (ToolExecution) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("decision", PlanDecision.Type).
			Ref("tool_executions").
			Field("plan_decision_id").
			Unique().
			Required().
			Immutable(),
		edge.From("execution", AgentExecution.Type).
			Ref("tool_executions").
			Field("agent_execution_id").
			Unique().
			Required().
			Immutable(),
		edge.To("block", CompletionBlock.Type),
	}
}

// Indexes of the ToolExecution.
func (ToolExecution) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent_execution_id", "started_at"),
		index.Fields("tool_name"),
	}
}
