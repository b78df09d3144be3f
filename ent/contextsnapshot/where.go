// Code generated by ent, DO NOT EDIT.

package contextsnapshot

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/datalens-ai/datalens/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldContainsFold(FieldID, id))
}

// AgentExecutionID applies equality check predicate on the "agent_execution_id" field. It's identical to AgentExecutionIDEQ.
func AgentExecutionID(v string) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldEQ(FieldAgentExecutionID, v))
}

// CompletionID applies equality check predicate on the "completion_id" field. It's identical to CompletionIDEQ.
func CompletionID(v string) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldEQ(FieldCompletionID, v))
}

// LoopIndex applies equality check predicate on the "loop_index" field. It's identical to LoopIndexEQ.
func LoopIndex(v int) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldEQ(FieldLoopIndex, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldEQ(FieldCreatedAt, v))
}

// AgentExecutionIDEQ applies the EQ predicate on the "agent_execution_id" field.
func AgentExecutionIDEQ(v string) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldEQ(FieldAgentExecutionID, v))
}

// AgentExecutionIDNEQ applies the NEQ predicate on the "agent_execution_id" field.
func AgentExecutionIDNEQ(v string) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldNEQ(FieldAgentExecutionID, v))
}

// AgentExecutionIDIn applies the In predicate on the "agent_execution_id" field.
func AgentExecutionIDIn(vs ...string) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldIn(FieldAgentExecutionID, vs...))
}

// AgentExecutionIDNotIn applies the NotIn predicate on the "agent_execution_id" field.
func AgentExecutionIDNotIn(vs ...string) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldNotIn(FieldAgentExecutionID, vs...))
}

// AgentExecutionIDGT applies the GT predicate on the "agent_execution_id" field.
func AgentExecutionIDGT(v string) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldGT(FieldAgentExecutionID, v))
}

// AgentExecutionIDGTE applies the GTE predicate on the "agent_execution_id" field.
func AgentExecutionIDGTE(v string) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldGTE(FieldAgentExecutionID, v))
}

// AgentExecutionIDLT applies the LT predicate on the "agent_execution_id" field.
func AgentExecutionIDLT(v string) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldLT(FieldAgentExecutionID, v))
}

// AgentExecutionIDLTE applies the LTE predicate on the "agent_execution_id" field.
func AgentExecutionIDLTE(v string) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldLTE(FieldAgentExecutionID, v))
}

// AgentExecutionIDContains applies the Contains predicate on the "agent_execution_id" field.
func AgentExecutionIDContains(v string) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldContains(FieldAgentExecutionID, v))
}

// AgentExecutionIDHasPrefix applies the HasPrefix predicate on the "agent_execution_id" field.
func AgentExecutionIDHasPrefix(v string) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldHasPrefix(FieldAgentExecutionID, v))
}

// AgentExecutionIDHasSuffix applies the HasSuffix predicate on the "agent_execution_id" field.
func AgentExecutionIDHasSuffix(v string) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldHasSuffix(FieldAgentExecutionID, v))
}

// AgentExecutionIDEqualFold applies the EqualFold predicate on the "agent_execution_id" field.
func AgentExecutionIDEqualFold(v string) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldEqualFold(FieldAgentExecutionID, v))
}

// AgentExecutionIDContainsFold applies the ContainsFold predicate on the "agent_execution_id" field.
func AgentExecutionIDContainsFold(v string) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldContainsFold(FieldAgentExecutionID, v))
}

// CompletionIDEQ applies the EQ predicate on the "completion_id" field.
func CompletionIDEQ(v string) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldEQ(FieldCompletionID, v))
}

// CompletionIDNEQ applies the NEQ predicate on the "completion_id" field.
func CompletionIDNEQ(v string) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldNEQ(FieldCompletionID, v))
}

// CompletionIDIn applies the In predicate on the "completion_id" field.
func CompletionIDIn(vs ...string) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldIn(FieldCompletionID, vs...))
}

// CompletionIDNotIn applies the NotIn predicate on the "completion_id" field.
func CompletionIDNotIn(vs ...string) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldNotIn(FieldCompletionID, vs...))
}

// CompletionIDGT applies the GT predicate on the "completion_id" field.
func CompletionIDGT(v string) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldGT(FieldCompletionID, v))
}

// CompletionIDGTE applies the GTE predicate on the "completion_id" field.
func CompletionIDGTE(v string) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldGTE(FieldCompletionID, v))
}

// CompletionIDLT applies the LT predicate on the "completion_id" field.
func CompletionIDLT(v string) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldLT(FieldCompletionID, v))
}

// CompletionIDLTE applies the LTE predicate on the "completion_id" field.
func CompletionIDLTE(v string) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldLTE(FieldCompletionID, v))
}

// CompletionIDContains applies the Contains predicate on the "completion_id" field.
func CompletionIDContains(v string) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldContains(FieldCompletionID, v))
}

// CompletionIDHasPrefix applies the HasPrefix predicate on the "completion_id" field.
func CompletionIDHasPrefix(v string) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldHasPrefix(FieldCompletionID, v))
}

// CompletionIDHasSuffix applies the HasSuffix predicate on the "completion_id" field.
func CompletionIDHasSuffix(v string) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldHasSuffix(FieldCompletionID, v))
}

// CompletionIDEqualFold applies the EqualFold predicate on the "completion_id" field.
func CompletionIDEqualFold(v string) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldEqualFold(FieldCompletionID, v))
}

// CompletionIDContainsFold applies the ContainsFold predicate on the "completion_id" field.
func CompletionIDContainsFold(v string) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldContainsFold(FieldCompletionID, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v Kind) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v Kind) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...Kind) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...Kind) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldNotIn(FieldKind, vs...))
}

// LoopIndexEQ applies the EQ predicate on the "loop_index" field.
func LoopIndexEQ(v int) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldEQ(FieldLoopIndex, v))
}

// LoopIndexNEQ applies the NEQ predicate on the "loop_index" field.
func LoopIndexNEQ(v int) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldNEQ(FieldLoopIndex, v))
}

// LoopIndexIn applies the In predicate on the "loop_index" field.
func LoopIndexIn(vs ...int) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldIn(FieldLoopIndex, vs...))
}

// LoopIndexNotIn applies the NotIn predicate on the "loop_index" field.
func LoopIndexNotIn(vs ...int) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldNotIn(FieldLoopIndex, vs...))
}

// LoopIndexGT applies the GT predicate on the "loop_index" field.
func LoopIndexGT(v int) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldGT(FieldLoopIndex, v))
}

// LoopIndexGTE applies the GTE predicate on the "loop_index" field.
func LoopIndexGTE(v int) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldGTE(FieldLoopIndex, v))
}

// LoopIndexLT applies the LT predicate on the "loop_index" field.
func LoopIndexLT(v int) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldLT(FieldLoopIndex, v))
}

// LoopIndexLTE applies the LTE predicate on the "loop_index" field.
func LoopIndexLTE(v int) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldLTE(FieldLoopIndex, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.FieldLTE(FieldCreatedAt, v))
}

// HasExecution applies the HasEdge predicate on the "execution" edge.
func HasExecution() predicate.ContextSnapshot {
	return predicate.ContextSnapshot(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ExecutionTable, ExecutionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasExecutionWith applies the HasEdge predicate on the "execution" edge with a given conditions (other predicates).
func HasExecutionWith(preds ...predicate.AgentExecution) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(func(s *sql.Selector) {
		step := newExecutionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ContextSnapshot) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ContextSnapshot) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ContextSnapshot) predicate.ContextSnapshot {
	return predicate.ContextSnapshot(sql.NotPredicates(p))
}
