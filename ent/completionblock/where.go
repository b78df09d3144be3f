// Code generated by ent, DO NOT EDIT.

package completionblock

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/datalens-ai/datalens/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldContainsFold(FieldID, id))
}

// CompletionID applies equality check predicate on the "completion_id" field. It's identical to CompletionIDEQ.
func CompletionID(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldEQ(FieldCompletionID, v))
}

// AgentExecutionID applies equality check predicate on the "agent_execution_id" field. It's identical to AgentExecutionIDEQ.
func AgentExecutionID(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldEQ(FieldAgentExecutionID, v))
}

// PlanDecisionID applies equality check predicate on the "plan_decision_id" field. It's identical to PlanDecisionIDEQ.
func PlanDecisionID(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldEQ(FieldPlanDecisionID, v))
}

// ToolExecutionID applies equality check predicate on the "tool_execution_id" field. It's identical to ToolExecutionIDEQ.
func ToolExecutionID(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldEQ(FieldToolExecutionID, v))
}

// Seq applies equality check predicate on the "seq" field. It's identical to SeqEQ.
func Seq(v int) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldEQ(FieldSeq, v))
}

// BlockIndex applies equality check predicate on the "block_index" field. It's identical to BlockIndexEQ.
func BlockIndex(v int) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldEQ(FieldBlockIndex, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldEQ(FieldContent, v))
}

// Reasoning applies equality check predicate on the "reasoning" field. It's identical to ReasoningEQ.
func Reasoning(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldEQ(FieldReasoning, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldEQ(FieldUpdatedAt, v))
}

// CompletionIDEQ applies the EQ predicate on the "completion_id" field.
func CompletionIDEQ(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldEQ(FieldCompletionID, v))
}

// CompletionIDNEQ applies the NEQ predicate on the "completion_id" field.
func CompletionIDNEQ(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldNEQ(FieldCompletionID, v))
}

// CompletionIDIn applies the In predicate on the "completion_id" field.
func CompletionIDIn(vs ...string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldIn(FieldCompletionID, vs...))
}

// CompletionIDNotIn applies the NotIn predicate on the "completion_id" field.
func CompletionIDNotIn(vs ...string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldNotIn(FieldCompletionID, vs...))
}

// CompletionIDGT applies the GT predicate on the "completion_id" field.
func CompletionIDGT(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldGT(FieldCompletionID, v))
}

// CompletionIDGTE applies the GTE predicate on the "completion_id" field.
func CompletionIDGTE(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldGTE(FieldCompletionID, v))
}

// CompletionIDLT applies the LT predicate on the "completion_id" field.
func CompletionIDLT(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldLT(FieldCompletionID, v))
}

// CompletionIDLTE applies the LTE predicate on the "completion_id" field.
func CompletionIDLTE(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldLTE(FieldCompletionID, v))
}

// CompletionIDContains applies the Contains predicate on the "completion_id" field.
func CompletionIDContains(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldContains(FieldCompletionID, v))
}

// CompletionIDHasPrefix applies the HasPrefix predicate on the "completion_id" field.
func CompletionIDHasPrefix(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldHasPrefix(FieldCompletionID, v))
}

// CompletionIDHasSuffix applies the HasSuffix predicate on the "completion_id" field.
func CompletionIDHasSuffix(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldHasSuffix(FieldCompletionID, v))
}

// CompletionIDEqualFold applies the EqualFold predicate on the "completion_id" field.
func CompletionIDEqualFold(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldEqualFold(FieldCompletionID, v))
}

// CompletionIDContainsFold applies the ContainsFold predicate on the "completion_id" field.
func CompletionIDContainsFold(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldContainsFold(FieldCompletionID, v))
}

// AgentExecutionIDEQ applies the EQ predicate on the "agent_execution_id" field.
func AgentExecutionIDEQ(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldEQ(FieldAgentExecutionID, v))
}

// AgentExecutionIDNEQ applies the NEQ predicate on the "agent_execution_id" field.
func AgentExecutionIDNEQ(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldNEQ(FieldAgentExecutionID, v))
}

// AgentExecutionIDIn applies the In predicate on the "agent_execution_id" field.
func AgentExecutionIDIn(vs ...string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldIn(FieldAgentExecutionID, vs...))
}

// AgentExecutionIDNotIn applies the NotIn predicate on the "agent_execution_id" field.
func AgentExecutionIDNotIn(vs ...string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldNotIn(FieldAgentExecutionID, vs...))
}

// AgentExecutionIDGT applies the GT predicate on the "agent_execution_id" field.
func AgentExecutionIDGT(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldGT(FieldAgentExecutionID, v))
}

// AgentExecutionIDGTE applies the GTE predicate on the "agent_execution_id" field.
func AgentExecutionIDGTE(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldGTE(FieldAgentExecutionID, v))
}

// AgentExecutionIDLT applies the LT predicate on the "agent_execution_id" field.
func AgentExecutionIDLT(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldLT(FieldAgentExecutionID, v))
}

// AgentExecutionIDLTE applies the LTE predicate on the "agent_execution_id" field.
func AgentExecutionIDLTE(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldLTE(FieldAgentExecutionID, v))
}

// AgentExecutionIDContains applies the Contains predicate on the "agent_execution_id" field.
func AgentExecutionIDContains(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldContains(FieldAgentExecutionID, v))
}

// AgentExecutionIDHasPrefix applies the HasPrefix predicate on the "agent_execution_id" field.
func AgentExecutionIDHasPrefix(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldHasPrefix(FieldAgentExecutionID, v))
}

// AgentExecutionIDHasSuffix applies the HasSuffix predicate on the "agent_execution_id" field.
func AgentExecutionIDHasSuffix(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldHasSuffix(FieldAgentExecutionID, v))
}

// AgentExecutionIDEqualFold applies the EqualFold predicate on the "agent_execution_id" field.
func AgentExecutionIDEqualFold(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldEqualFold(FieldAgentExecutionID, v))
}

// AgentExecutionIDContainsFold applies the ContainsFold predicate on the "agent_execution_id" field.
func AgentExecutionIDContainsFold(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldContainsFold(FieldAgentExecutionID, v))
}

// PlanDecisionIDEQ applies the EQ predicate on the "plan_decision_id" field.
func PlanDecisionIDEQ(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldEQ(FieldPlanDecisionID, v))
}

// PlanDecisionIDNEQ applies the NEQ predicate on the "plan_decision_id" field.
func PlanDecisionIDNEQ(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldNEQ(FieldPlanDecisionID, v))
}

// PlanDecisionIDIn applies the In predicate on the "plan_decision_id" field.
func PlanDecisionIDIn(vs ...string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldIn(FieldPlanDecisionID, vs...))
}

// PlanDecisionIDNotIn applies the NotIn predicate on the "plan_decision_id" field.
func PlanDecisionIDNotIn(vs ...string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldNotIn(FieldPlanDecisionID, vs...))
}

// PlanDecisionIDGT applies the GT predicate on the "plan_decision_id" field.
func PlanDecisionIDGT(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldGT(FieldPlanDecisionID, v))
}

// PlanDecisionIDGTE applies the GTE predicate on the "plan_decision_id" field.
func PlanDecisionIDGTE(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldGTE(FieldPlanDecisionID, v))
}

// PlanDecisionIDLT applies the LT predicate on the "plan_decision_id" field.
func PlanDecisionIDLT(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldLT(FieldPlanDecisionID, v))
}

// PlanDecisionIDLTE applies the LTE predicate on the "plan_decision_id" field.
func PlanDecisionIDLTE(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldLTE(FieldPlanDecisionID, v))
}

// PlanDecisionIDContains applies the Contains predicate on the "plan_decision_id" field.
func PlanDecisionIDContains(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldContains(FieldPlanDecisionID, v))
}

// PlanDecisionIDHasPrefix applies the HasPrefix predicate on the "plan_decision_id" field.
func PlanDecisionIDHasPrefix(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldHasPrefix(FieldPlanDecisionID, v))
}

// PlanDecisionIDHasSuffix applies the HasSuffix predicate on the "plan_decision_id" field.
func PlanDecisionIDHasSuffix(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldHasSuffix(FieldPlanDecisionID, v))
}

// PlanDecisionIDIsNil applies the IsNil predicate on the "plan_decision_id" field.
func PlanDecisionIDIsNil() predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldIsNull(FieldPlanDecisionID))
}

// PlanDecisionIDNotNil applies the NotNil predicate on the "plan_decision_id" field.
func PlanDecisionIDNotNil() predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldNotNull(FieldPlanDecisionID))
}

// PlanDecisionIDEqualFold applies the EqualFold predicate on the "plan_decision_id" field.
func PlanDecisionIDEqualFold(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldEqualFold(FieldPlanDecisionID, v))
}

// PlanDecisionIDContainsFold applies the ContainsFold predicate on the "plan_decision_id" field.
func PlanDecisionIDContainsFold(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldContainsFold(FieldPlanDecisionID, v))
}

// ToolExecutionIDEQ applies the EQ predicate on the "tool_execution_id" field.
func ToolExecutionIDEQ(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldEQ(FieldToolExecutionID, v))
}

// ToolExecutionIDNEQ applies the NEQ predicate on the "tool_execution_id" field.
func ToolExecutionIDNEQ(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldNEQ(FieldToolExecutionID, v))
}

// ToolExecutionIDIn applies the In predicate on the "tool_execution_id" field.
func ToolExecutionIDIn(vs ...string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldIn(FieldToolExecutionID, vs...))
}

// ToolExecutionIDNotIn applies the NotIn predicate on the "tool_execution_id" field.
func ToolExecutionIDNotIn(vs ...string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldNotIn(FieldToolExecutionID, vs...))
}

// ToolExecutionIDGT applies the GT predicate on the "tool_execution_id" field.
func ToolExecutionIDGT(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldGT(FieldToolExecutionID, v))
}

// ToolExecutionIDGTE applies the GTE predicate on the "tool_execution_id" field.
func ToolExecutionIDGTE(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldGTE(FieldToolExecutionID, v))
}

// ToolExecutionIDLT applies the LT predicate on the "tool_execution_id" field.
func ToolExecutionIDLT(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldLT(FieldToolExecutionID, v))
}

// ToolExecutionIDLTE applies the LTE predicate on the "tool_execution_id" field.
func ToolExecutionIDLTE(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldLTE(FieldToolExecutionID, v))
}

// ToolExecutionIDContains applies the Contains predicate on the "tool_execution_id" field.
func ToolExecutionIDContains(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldContains(FieldToolExecutionID, v))
}

// ToolExecutionIDHasPrefix applies the HasPrefix predicate on the "tool_execution_id" field.
func ToolExecutionIDHasPrefix(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldHasPrefix(FieldToolExecutionID, v))
}

// ToolExecutionIDHasSuffix applies the HasSuffix predicate on the "tool_execution_id" field.
func ToolExecutionIDHasSuffix(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldHasSuffix(FieldToolExecutionID, v))
}

// ToolExecutionIDIsNil applies the IsNil predicate on the "tool_execution_id" field.
func ToolExecutionIDIsNil() predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldIsNull(FieldToolExecutionID))
}

// ToolExecutionIDNotNil applies the NotNil predicate on the "tool_execution_id" field.
func ToolExecutionIDNotNil() predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldNotNull(FieldToolExecutionID))
}

// ToolExecutionIDEqualFold applies the EqualFold predicate on the "tool_execution_id" field.
func ToolExecutionIDEqualFold(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldEqualFold(FieldToolExecutionID, v))
}

// ToolExecutionIDContainsFold applies the ContainsFold predicate on the "tool_execution_id" field.
func ToolExecutionIDContainsFold(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldContainsFold(FieldToolExecutionID, v))
}

// SeqEQ applies the EQ predicate on the "seq" field.
func SeqEQ(v int) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldEQ(FieldSeq, v))
}

// SeqNEQ applies the NEQ predicate on the "seq" field.
func SeqNEQ(v int) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldNEQ(FieldSeq, v))
}

// SeqIn applies the In predicate on the "seq" field.
func SeqIn(vs ...int) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldIn(FieldSeq, vs...))
}

// SeqNotIn applies the NotIn predicate on the "seq" field.
func SeqNotIn(vs ...int) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldNotIn(FieldSeq, vs...))
}

// SeqGT applies the GT predicate on the "seq" field.
func SeqGT(v int) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldGT(FieldSeq, v))
}

// SeqGTE applies the GTE predicate on the "seq" field.
func SeqGTE(v int) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldGTE(FieldSeq, v))
}

// SeqLT applies the LT predicate on the "seq" field.
func SeqLT(v int) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldLT(FieldSeq, v))
}

// SeqLTE applies the LTE predicate on the "seq" field.
func SeqLTE(v int) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldLTE(FieldSeq, v))
}

// BlockIndexEQ applies the EQ predicate on the "block_index" field.
func BlockIndexEQ(v int) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldEQ(FieldBlockIndex, v))
}

// BlockIndexNEQ applies the NEQ predicate on the "block_index" field.
func BlockIndexNEQ(v int) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldNEQ(FieldBlockIndex, v))
}

// BlockIndexIn applies the In predicate on the "block_index" field.
func BlockIndexIn(vs ...int) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldIn(FieldBlockIndex, vs...))
}

// BlockIndexNotIn applies the NotIn predicate on the "block_index" field.
func BlockIndexNotIn(vs ...int) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldNotIn(FieldBlockIndex, vs...))
}

// BlockIndexGT applies the GT predicate on the "block_index" field.
func BlockIndexGT(v int) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldGT(FieldBlockIndex, v))
}

// BlockIndexGTE applies the GTE predicate on the "block_index" field.
func BlockIndexGTE(v int) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldGTE(FieldBlockIndex, v))
}

// BlockIndexLT applies the LT predicate on the "block_index" field.
func BlockIndexLT(v int) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldLT(FieldBlockIndex, v))
}

// BlockIndexLTE applies the LTE predicate on the "block_index" field.
func BlockIndexLTE(v int) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldLTE(FieldBlockIndex, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldContainsFold(FieldContent, v))
}

// ReasoningEQ applies the EQ predicate on the "reasoning" field.
func ReasoningEQ(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldEQ(FieldReasoning, v))
}

// ReasoningNEQ applies the NEQ predicate on the "reasoning" field.
func ReasoningNEQ(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldNEQ(FieldReasoning, v))
}

// ReasoningIn applies the In predicate on the "reasoning" field.
func ReasoningIn(vs ...string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldIn(FieldReasoning, vs...))
}

// ReasoningNotIn applies the NotIn predicate on the "reasoning" field.
func ReasoningNotIn(vs ...string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldNotIn(FieldReasoning, vs...))
}

// ReasoningGT applies the GT predicate on the "reasoning" field.
func ReasoningGT(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldGT(FieldReasoning, v))
}

// ReasoningGTE applies the GTE predicate on the "reasoning" field.
func ReasoningGTE(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldGTE(FieldReasoning, v))
}

// ReasoningLT applies the LT predicate on the "reasoning" field.
func ReasoningLT(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldLT(FieldReasoning, v))
}

// ReasoningLTE applies the LTE predicate on the "reasoning" field.
func ReasoningLTE(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldLTE(FieldReasoning, v))
}

// ReasoningContains applies the Contains predicate on the "reasoning" field.
func ReasoningContains(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldContains(FieldReasoning, v))
}

// ReasoningHasPrefix applies the HasPrefix predicate on the "reasoning" field.
func ReasoningHasPrefix(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldHasPrefix(FieldReasoning, v))
}

// ReasoningHasSuffix applies the HasSuffix predicate on the "reasoning" field.
func ReasoningHasSuffix(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldHasSuffix(FieldReasoning, v))
}

// ReasoningEqualFold applies the EqualFold predicate on the "reasoning" field.
func ReasoningEqualFold(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldEqualFold(FieldReasoning, v))
}

// ReasoningContainsFold applies the ContainsFold predicate on the "reasoning" field.
func ReasoningContainsFold(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldContainsFold(FieldReasoning, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldNotIn(FieldStatus, vs...))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasParent applies the HasEdge predicate on the "parent" edge.
func HasParent() predicate.CompletionBlock {
	return predicate.CompletionBlock(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ParentTable, ParentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasParentWith applies the HasEdge predicate on the "parent" edge with a given conditions (other predicates).
func HasParentWith(preds ...predicate.Completion) predicate.CompletionBlock {
	return predicate.CompletionBlock(func(s *sql.Selector) {
		step := newParentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasPlanDecision applies the HasEdge predicate on the "plan_decision" edge.
func HasPlanDecision() predicate.CompletionBlock {
	return predicate.CompletionBlock(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PlanDecisionTable, PlanDecisionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPlanDecisionWith applies the HasEdge predicate on the "plan_decision" edge with a given conditions (other predicates).
func HasPlanDecisionWith(preds ...predicate.PlanDecision) predicate.CompletionBlock {
	return predicate.CompletionBlock(func(s *sql.Selector) {
		step := newPlanDecisionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasToolExecution applies the HasEdge predicate on the "tool_execution" edge.
func HasToolExecution() predicate.CompletionBlock {
	return predicate.CompletionBlock(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ToolExecutionTable, ToolExecutionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasToolExecutionWith applies the HasEdge predicate on the "tool_execution" edge with a given conditions (other predicates).
func HasToolExecutionWith(preds ...predicate.ToolExecution) predicate.CompletionBlock {
	return predicate.CompletionBlock(func(s *sql.Selector) {
		step := newToolExecutionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CompletionBlock) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CompletionBlock) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CompletionBlock) predicate.CompletionBlock {
	return predicate.CompletionBlock(sql.NotPredicates(p))
}
