package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CompletionBlock holds the schema definition for the CompletionBlock entity.
// The unit of streamed output. A block is either a decision block (linked to
// a PlanDecision) or a tool block (linked to a ToolExecution). Ordered by
// (seq, block_index); the concatenation of blocks in order yields the
// complete replayable transcript.
type CompletionBlock struct {
	ent.Schema
}

// Fields of the CompletionBlock.
func (CompletionBlock) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("completion_id").
			Immutable(),
		field.String("agent_execution_id").
			Immutable(),
		field.String("plan_decision_id").
			Optional().
			Nillable().
			Comment("Set for decision blocks; mutually exclusive with tool_execution_id"),
		field.String("tool_execution_id").
			Optional().
			Nillable().
			Comment("Set for tool blocks; mutually exclusive with plan_decision_id"),
		field.Int("seq").
			Comment("Pinned decision seq for decision blocks, tool-finish seq for tool blocks"),
		field.Int("block_index").
			Comment("Position within the completion"),
		field.Text("content").
			Default(""),
		field.Text("reasoning").
			Default(""),
		field.Enum("status").
			Values("in_progress", "success", "error", "stopped").
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

// Edges of the CompletionBlock.
func (CompletionBlock) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("parent", Completion.Type).
			Ref("blocks").
			Field("completion_id").
			Unique().
			Required().
			Immutable(),
		edge.From("plan_decision", PlanDecision.Type).
			Ref("block").
			Field("plan_decision_id").
			Unique(),
		edge.From("tool_execution", ToolExecution.Type).
			Ref("block").
			Field("tool_execution_id").
			Unique(),
	}
}

// Indexes of the CompletionBlock.
func (CompletionBlock) Indexes() []ent.Index {
	return []ent.Index{
		// Transcript ordering
		index.Fields("completion_id", "seq", "block_index"),
		// One block per agent-execution seq
		index.Fields("agent_execution_id", "seq").
			Unique(),
	}
}
