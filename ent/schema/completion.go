package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Completion holds the schema definition for the Completion entity.
// One message in a report. Each user turn creates a pair: a `user` completion
// (the head) and a `system` completion that is its child by parent_id. The
// system completion is mutated only by the orchestrator until it reaches a
// terminal status, then becomes immutable.
type Completion struct {
	ent.Schema
}

// Fields of the Completion.
func (Completion) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("report_id").
			Immutable(),
		field.String("parent_id").
			Optional().
			Nillable().
			Immutable().
			Comment("Head user completion for system completions"),
		field.Enum("role").
			Values("user", "system").
			Immutable(),
		field.JSON("prompt", map[string]interface{}{}).
			Optional().
			Comment("User prompt payload (content, model_id, widget_id, step_id, mode, mentions)"),
		field.JSON("completion", map[string]interface{}{}).
			Optional().
			Comment("System response payload rebuilt from ordered blocks"),
		// in_progress is terminal only if the process crashes.
		field.Enum("status").
			Values("in_progress", "success", "error", "stopped").
			Default("in_progress"),
		field.Int("turn_index").
			Default(0).
			Immutable(),
		field.Bool("sigkill").
			Default(false).
			Comment("External stop request — the running loop observes it and stops"),
		field.Int("feedback_score").
			Optional().
			Nillable(),
		field.JSON("judge_scores", map[string]interface{}{}).
			Optional().
			Comment("AI judge scoring written by background tasks"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.JSON("usage", map[string]interface{}{}).
			Optional().
			Comment("Token usage snapshot recorded at turn end"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Completion.
func (Completion) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("report", Report.Type).
			Ref("completions").
			Field("report_id").
			Unique().
			Required().
			Immutable(),
		edge.To("agent_executions", AgentExecution.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("blocks", CompletionBlock.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Completion.
func (Completion) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("report_id", "turn_index"),
		index.Fields("parent_id"),
		index.Fields("created_at"),
	}
}
