package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentExecution holds the schema definition for the AgentExecution entity.
// One run of the agent loop, 1:1 with a system completion. The in-memory
// monotonic sequence counter lives on the execution record's event stream;
// only the high-water mark is persisted for observability.
type AgentExecution struct {
	ent.Schema
}

// Fields of the AgentExecution.
func (AgentExecution) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("completion_id").
			Unique().
			Immutable(),
		field.String("report_id").
			Immutable().
			Comment("Denormalized for report-level queries"),
		field.Enum("status").
			Values("in_progress", "success", "error", "sigkill").
			Default("in_progress"),
		field.Int("last_seq").
			Default(0).
			Comment("High-water mark of the event sequence counter"),
		field.Int("loop_iterations").
			Default(0),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Int("duration_ms").
			Optional().
			Nillable(),
		field.String("error_message").
			Optional().
			Nillable(),
	}
}

// Edges of the AgentExecution.
func (AgentExecution) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("completion", Completion.Type).
			Ref("agent_executions").
			Field("completion_id").
			Unique().
			Required().
			Immutable(),
		edge.To("plan_decisions", PlanDecision.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("tool_executions", ToolExecution.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("context_snapshots", ContextSnapshot.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the AgentExecution.
func (AgentExecution) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("report_id"),
		index.Fields("started_at"),
	}
}
