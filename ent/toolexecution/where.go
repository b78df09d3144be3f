// Code generated by ent, DO NOT EDIT.

package toolexecution

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/datalens-ai/datalens/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldContainsFold(FieldID, id))
}

// PlanDecisionID applies equality check predicate on the "plan_decision_id" field. It's identical to PlanDecisionIDEQ.
func PlanDecisionID(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldEQ(FieldPlanDecisionID, v))
}

// AgentExecutionID applies equality check predicate on the "agent_execution_id" field. It's identical to AgentExecutionIDEQ.
func AgentExecutionID(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldEQ(FieldAgentExecutionID, v))
}

// ToolName applies equality check predicate on the "tool_name" field. It's identical to ToolNameEQ.
func ToolName(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldEQ(FieldToolName, v))
}

// ToolAction applies equality check predicate on the "tool_action" field. It's identical to ToolActionEQ.
func ToolAction(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldEQ(FieldToolAction, v))
}

// ResultSummary applies equality check predicate on the "result_summary" field. It's identical to ResultSummaryEQ.
func ResultSummary(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldEQ(FieldResultSummary, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldEQ(FieldErrorMessage, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldEQ(FieldDurationMs, v))
}

// AttemptNumber applies equality check predicate on the "attempt_number" field. It's identical to AttemptNumberEQ.
func AttemptNumber(v int) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldEQ(FieldAttemptNumber, v))
}

// CreatedWidgetID applies equality check predicate on the "created_widget_id" field. It's identical to CreatedWidgetIDEQ.
func CreatedWidgetID(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldEQ(FieldCreatedWidgetID, v))
}

// CreatedStepID applies equality check predicate on the "created_step_id" field. It's identical to CreatedStepIDEQ.
func CreatedStepID(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldEQ(FieldCreatedStepID, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldEQ(FieldCompletedAt, v))
}

// PlanDecisionIDEQ applies the EQ predicate on the "plan_decision_id" field.
func PlanDecisionIDEQ(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldEQ(FieldPlanDecisionID, v))
}

// PlanDecisionIDNEQ applies the NEQ predicate on the "plan_decision_id" field.
func PlanDecisionIDNEQ(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldNEQ(FieldPlanDecisionID, v))
}

// PlanDecisionIDIn applies the In predicate on the "plan_decision_id" field.
func PlanDecisionIDIn(vs ...string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldIn(FieldPlanDecisionID, vs...))
}

// PlanDecisionIDNotIn applies the NotIn predicate on the "plan_decision_id" field.
func PlanDecisionIDNotIn(vs ...string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldNotIn(FieldPlanDecisionID, vs...))
}

// PlanDecisionIDGT applies the GT predicate on the "plan_decision_id" field.
func PlanDecisionIDGT(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldGT(FieldPlanDecisionID, v))
}

// PlanDecisionIDGTE applies the GTE predicate on the "plan_decision_id" field.
func PlanDecisionIDGTE(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldGTE(FieldPlanDecisionID, v))
}

// PlanDecisionIDLT applies the LT predicate on the "plan_decision_id" field.
func PlanDecisionIDLT(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldLT(FieldPlanDecisionID, v))
}

// PlanDecisionIDLTE applies the LTE predicate on the "plan_decision_id" field.
func PlanDecisionIDLTE(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldLTE(FieldPlanDecisionID, v))
}

// PlanDecisionIDContains applies the Contains predicate on the "plan_decision_id" field.
func PlanDecisionIDContains(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldContains(FieldPlanDecisionID, v))
}

// PlanDecisionIDHasPrefix applies the HasPrefix predicate on the "plan_decision_id" field.
func PlanDecisionIDHasPrefix(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldHasPrefix(FieldPlanDecisionID, v))
}

// PlanDecisionIDHasSuffix applies the HasSuffix predicate on the "plan_decision_id" field.
func PlanDecisionIDHasSuffix(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldHasSuffix(FieldPlanDecisionID, v))
}

// PlanDecisionIDEqualFold applies the EqualFold predicate on the "plan_decision_id" field.
func PlanDecisionIDEqualFold(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldEqualFold(FieldPlanDecisionID, v))
}

// PlanDecisionIDContainsFold applies the ContainsFold predicate on the "plan_decision_id" field.
func PlanDecisionIDContainsFold(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldContainsFold(FieldPlanDecisionID, v))
}

// AgentExecutionIDEQ applies the EQ predicate on the "agent_execution_id" field.
func AgentExecutionIDEQ(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldEQ(FieldAgentExecutionID, v))
}

// AgentExecutionIDNEQ applies the NEQ predicate on the "agent_execution_id" field.
func AgentExecutionIDNEQ(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldNEQ(FieldAgentExecutionID, v))
}

// AgentExecutionIDIn applies the In predicate on the "agent_execution_id" field.
func AgentExecutionIDIn(vs ...string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldIn(FieldAgentExecutionID, vs...))
}

// AgentExecutionIDNotIn applies the NotIn predicate on the "agent_execution_id" field.
func AgentExecutionIDNotIn(vs ...string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldNotIn(FieldAgentExecutionID, vs...))
}

// AgentExecutionIDGT applies the GT predicate on the "agent_execution_id" field.
func AgentExecutionIDGT(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldGT(FieldAgentExecutionID, v))
}

// AgentExecutionIDGTE applies the GTE predicate on the "agent_execution_id" field.
func AgentExecutionIDGTE(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldGTE(FieldAgentExecutionID, v))
}

// AgentExecutionIDLT applies the LT predicate on the "agent_execution_id" field.
func AgentExecutionIDLT(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldLT(FieldAgentExecutionID, v))
}

// AgentExecutionIDLTE applies the LTE predicate on the "agent_execution_id" field.
func AgentExecutionIDLTE(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldLTE(FieldAgentExecutionID, v))
}

// AgentExecutionIDContains applies the Contains predicate on the "agent_execution_id" field.
func AgentExecutionIDContains(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldContains(FieldAgentExecutionID, v))
}

// AgentExecutionIDHasPrefix applies the HasPrefix predicate on the "agent_execution_id" field.
func AgentExecutionIDHasPrefix(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldHasPrefix(FieldAgentExecutionID, v))
}

// AgentExecutionIDHasSuffix applies the HasSuffix predicate on the "agent_execution_id" field.
func AgentExecutionIDHasSuffix(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldHasSuffix(FieldAgentExecutionID, v))
}

// AgentExecutionIDEqualFold applies the EqualFold predicate on the "agent_execution_id" field.
func AgentExecutionIDEqualFold(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldEqualFold(FieldAgentExecutionID, v))
}

// AgentExecutionIDContainsFold applies the ContainsFold predicate on the "agent_execution_id" field.
func AgentExecutionIDContainsFold(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldContainsFold(FieldAgentExecutionID, v))
}

// ToolNameEQ applies the EQ predicate on the "tool_name" field.
func ToolNameEQ(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldEQ(FieldToolName, v))
}

// ToolNameNEQ applies the NEQ predicate on the "tool_name" field.
func ToolNameNEQ(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldNEQ(FieldToolName, v))
}

// ToolNameIn applies the In predicate on the "tool_name" field.
func ToolNameIn(vs ...string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldIn(FieldToolName, vs...))
}

// ToolNameNotIn applies the NotIn predicate on the "tool_name" field.
func ToolNameNotIn(vs ...string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldNotIn(FieldToolName, vs...))
}

// ToolNameGT applies the GT predicate on the "tool_name" field.
func ToolNameGT(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldGT(FieldToolName, v))
}

// ToolNameGTE applies the GTE predicate on the "tool_name" field.
func ToolNameGTE(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldGTE(FieldToolName, v))
}

// ToolNameLT applies the LT predicate on the "tool_name" field.
func ToolNameLT(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldLT(FieldToolName, v))
}

// ToolNameLTE applies the LTE predicate on the "tool_name" field.
func ToolNameLTE(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldLTE(FieldToolName, v))
}

// ToolNameContains applies the Contains predicate on the "tool_name" field.
func ToolNameContains(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldContains(FieldToolName, v))
}

// ToolNameHasPrefix applies the HasPrefix predicate on the "tool_name" field.
func ToolNameHasPrefix(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldHasPrefix(FieldToolName, v))
}

// ToolNameHasSuffix applies the HasSuffix predicate on the "tool_name" field.
func ToolNameHasSuffix(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldHasSuffix(FieldToolName, v))
}

// ToolNameEqualFold applies the EqualFold predicate on the "tool_name" field.
func ToolNameEqualFold(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldEqualFold(FieldToolName, v))
}

// ToolNameContainsFold applies the ContainsFold predicate on the "tool_name" field.
func ToolNameContainsFold(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldContainsFold(FieldToolName, v))
}

// ToolActionEQ applies the EQ predicate on the "tool_action" field.
func ToolActionEQ(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldEQ(FieldToolAction, v))
}

// ToolActionNEQ applies the NEQ predicate on the "tool_action" field.
func ToolActionNEQ(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldNEQ(FieldToolAction, v))
}

// ToolActionIn applies the In predicate on the "tool_action" field.
func ToolActionIn(vs ...string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldIn(FieldToolAction, vs...))
}

// ToolActionNotIn applies the NotIn predicate on the "tool_action" field.
func ToolActionNotIn(vs ...string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldNotIn(FieldToolAction, vs...))
}

// ToolActionGT applies the GT predicate on the "tool_action" field.
func ToolActionGT(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldGT(FieldToolAction, v))
}

// ToolActionGTE applies the GTE predicate on the "tool_action" field.
func ToolActionGTE(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldGTE(FieldToolAction, v))
}

// ToolActionLT applies the LT predicate on the "tool_action" field.
func ToolActionLT(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldLT(FieldToolAction, v))
}

// ToolActionLTE applies the LTE predicate on the "tool_action" field.
func ToolActionLTE(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldLTE(FieldToolAction, v))
}

// ToolActionContains applies the Contains predicate on the "tool_action" field.
func ToolActionContains(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldContains(FieldToolAction, v))
}

// ToolActionHasPrefix applies the HasPrefix predicate on the "tool_action" field.
func ToolActionHasPrefix(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldHasPrefix(FieldToolAction, v))
}

// ToolActionHasSuffix applies the HasSuffix predicate on the "tool_action" field.
func ToolActionHasSuffix(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldHasSuffix(FieldToolAction, v))
}

// ToolActionIsNil applies the IsNil predicate on the "tool_action" field.
func ToolActionIsNil() predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldIsNull(FieldToolAction))
}

// ToolActionNotNil applies the NotNil predicate on the "tool_action" field.
func ToolActionNotNil() predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldNotNull(FieldToolAction))
}

// ToolActionEqualFold applies the EqualFold predicate on the "tool_action" field.
func ToolActionEqualFold(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldEqualFold(FieldToolAction, v))
}

// ToolActionContainsFold applies the ContainsFold predicate on the "tool_action" field.
func ToolActionContainsFold(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldContainsFold(FieldToolAction, v))
}

// ArgumentsIsNil applies the IsNil predicate on the "arguments" field.
func ArgumentsIsNil() predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldIsNull(FieldArguments))
}

// ArgumentsNotNil applies the NotNil predicate on the "arguments" field.
func ArgumentsNotNil() predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldNotNull(FieldArguments))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldNotIn(FieldStatus, vs...))
}

// ResultIsNil applies the IsNil predicate on the "result" field.
func ResultIsNil() predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldIsNull(FieldResult))
}

// ResultNotNil applies the NotNil predicate on the "result" field.
func ResultNotNil() predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldNotNull(FieldResult))
}

// ResultSummaryEQ applies the EQ predicate on the "result_summary" field.
func ResultSummaryEQ(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldEQ(FieldResultSummary, v))
}

// ResultSummaryNEQ applies the NEQ predicate on the "result_summary" field.
func ResultSummaryNEQ(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldNEQ(FieldResultSummary, v))
}

// ResultSummaryIn applies the In predicate on the "result_summary" field.
func ResultSummaryIn(vs ...string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldIn(FieldResultSummary, vs...))
}

// ResultSummaryNotIn applies the NotIn predicate on the "result_summary" field.
func ResultSummaryNotIn(vs ...string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldNotIn(FieldResultSummary, vs...))
}

// ResultSummaryGT applies the GT predicate on the "result_summary" field.
func ResultSummaryGT(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldGT(FieldResultSummary, v))
}

// ResultSummaryGTE applies the GTE predicate on the "result_summary" field.
func ResultSummaryGTE(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldGTE(FieldResultSummary, v))
}

// ResultSummaryLT applies the LT predicate on the "result_summary" field.
func ResultSummaryLT(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldLT(FieldResultSummary, v))
}

// ResultSummaryLTE applies the LTE predicate on the "result_summary" field.
func ResultSummaryLTE(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldLTE(FieldResultSummary, v))
}

// ResultSummaryContains applies the Contains predicate on the "result_summary" field.
func ResultSummaryContains(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldContains(FieldResultSummary, v))
}

// ResultSummaryHasPrefix applies the HasPrefix predicate on the "result_summary" field.
func ResultSummaryHasPrefix(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldHasPrefix(FieldResultSummary, v))
}

// ResultSummaryHasSuffix applies the HasSuffix predicate on the "result_summary" field.
func ResultSummaryHasSuffix(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldHasSuffix(FieldResultSummary, v))
}

// ResultSummaryIsNil applies the IsNil predicate on the "result_summary" field.
func ResultSummaryIsNil() predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldIsNull(FieldResultSummary))
}

// ResultSummaryNotNil applies the NotNil predicate on the "result_summary" field.
func ResultSummaryNotNil() predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldNotNull(FieldResultSummary))
}

// ResultSummaryEqualFold applies the EqualFold predicate on the "result_summary" field.
func ResultSummaryEqualFold(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldEqualFold(FieldResultSummary, v))
}

// ResultSummaryContainsFold applies the ContainsFold predicate on the "result_summary" field.
func ResultSummaryContainsFold(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldContainsFold(FieldResultSummary, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldContainsFold(FieldErrorMessage, v))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldLTE(FieldDurationMs, v))
}

// DurationMsIsNil applies the IsNil predicate on the "duration_ms" field.
func DurationMsIsNil() predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldIsNull(FieldDurationMs))
}

// DurationMsNotNil applies the NotNil predicate on the "duration_ms" field.
func DurationMsNotNil() predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldNotNull(FieldDurationMs))
}

// AttemptNumberEQ applies the EQ predicate on the "attempt_number" field.
func AttemptNumberEQ(v int) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldEQ(FieldAttemptNumber, v))
}

// AttemptNumberNEQ applies the NEQ predicate on the "attempt_number" field.
func AttemptNumberNEQ(v int) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldNEQ(FieldAttemptNumber, v))
}

// AttemptNumberIn applies the In predicate on the "attempt_number" field.
func AttemptNumberIn(vs ...int) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldIn(FieldAttemptNumber, vs...))
}

// AttemptNumberNotIn applies the NotIn predicate on the "attempt_number" field.
func AttemptNumberNotIn(vs ...int) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldNotIn(FieldAttemptNumber, vs...))
}

// AttemptNumberGT applies the GT predicate on the "attempt_number" field.
func AttemptNumberGT(v int) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldGT(FieldAttemptNumber, v))
}

// AttemptNumberGTE applies the GTE predicate on the "attempt_number" field.
func AttemptNumberGTE(v int) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldGTE(FieldAttemptNumber, v))
}

// AttemptNumberLT applies the LT predicate on the "attempt_number" field.
func AttemptNumberLT(v int) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldLT(FieldAttemptNumber, v))
}

// AttemptNumberLTE applies the LTE predicate on the "attempt_number" field.
func AttemptNumberLTE(v int) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldLTE(FieldAttemptNumber, v))
}

// CreatedWidgetIDEQ applies the EQ predicate on the "created_widget_id" field.
func CreatedWidgetIDEQ(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldEQ(FieldCreatedWidgetID, v))
}

// CreatedWidgetIDNEQ applies the NEQ predicate on the "created_widget_id" field.
func CreatedWidgetIDNEQ(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldNEQ(FieldCreatedWidgetID, v))
}

// CreatedWidgetIDIn applies the In predicate on the "created_widget_id" field.
func CreatedWidgetIDIn(vs ...string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldIn(FieldCreatedWidgetID, vs...))
}

// CreatedWidgetIDNotIn applies the NotIn predicate on the "created_widget_id" field.
func CreatedWidgetIDNotIn(vs ...string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldNotIn(FieldCreatedWidgetID, vs...))
}

// CreatedWidgetIDGT applies the GT predicate on the "created_widget_id" field.
func CreatedWidgetIDGT(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldGT(FieldCreatedWidgetID, v))
}

// CreatedWidgetIDGTE applies the GTE predicate on the "created_widget_id" field.
func CreatedWidgetIDGTE(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldGTE(FieldCreatedWidgetID, v))
}

// CreatedWidgetIDLT applies the LT predicate on the "created_widget_id" field.
func CreatedWidgetIDLT(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldLT(FieldCreatedWidgetID, v))
}

// CreatedWidgetIDLTE applies the LTE predicate on the "created_widget_id" field.
func CreatedWidgetIDLTE(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldLTE(FieldCreatedWidgetID, v))
}

// CreatedWidgetIDContains applies the Contains predicate on the "created_widget_id" field.
func CreatedWidgetIDContains(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldContains(FieldCreatedWidgetID, v))
}

// CreatedWidgetIDHasPrefix applies the HasPrefix predicate on the "created_widget_id" field.
func CreatedWidgetIDHasPrefix(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldHasPrefix(FieldCreatedWidgetID, v))
}

// CreatedWidgetIDHasSuffix applies the HasSuffix predicate on the "created_widget_id" field.
func CreatedWidgetIDHasSuffix(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldHasSuffix(FieldCreatedWidgetID, v))
}

// CreatedWidgetIDIsNil applies the IsNil predicate on the "created_widget_id" field.
func CreatedWidgetIDIsNil() predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldIsNull(FieldCreatedWidgetID))
}

// CreatedWidgetIDNotNil applies the NotNil predicate on the "created_widget_id" field.
func CreatedWidgetIDNotNil() predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldNotNull(FieldCreatedWidgetID))
}

// CreatedWidgetIDEqualFold applies the EqualFold predicate on the "created_widget_id" field.
func CreatedWidgetIDEqualFold(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldEqualFold(FieldCreatedWidgetID, v))
}

// CreatedWidgetIDContainsFold applies the ContainsFold predicate on the "created_widget_id" field.
func CreatedWidgetIDContainsFold(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldContainsFold(FieldCreatedWidgetID, v))
}

// CreatedStepIDEQ applies the EQ predicate on the "created_step_id" field.
func CreatedStepIDEQ(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldEQ(FieldCreatedStepID, v))
}

// CreatedStepIDNEQ applies the NEQ predicate on the "created_step_id" field.
func CreatedStepIDNEQ(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldNEQ(FieldCreatedStepID, v))
}

// CreatedStepIDIn applies the In predicate on the "created_step_id" field.
func CreatedStepIDIn(vs ...string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldIn(FieldCreatedStepID, vs...))
}

// CreatedStepIDNotIn applies the NotIn predicate on the "created_step_id" field.
func CreatedStepIDNotIn(vs ...string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldNotIn(FieldCreatedStepID, vs...))
}

// CreatedStepIDGT applies the GT predicate on the "created_step_id" field.
func CreatedStepIDGT(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldGT(FieldCreatedStepID, v))
}

// CreatedStepIDGTE applies the GTE predicate on the "created_step_id" field.
func CreatedStepIDGTE(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldGTE(FieldCreatedStepID, v))
}

// CreatedStepIDLT applies the LT predicate on the "created_step_id" field.
func CreatedStepIDLT(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldLT(FieldCreatedStepID, v))
}

// CreatedStepIDLTE applies the LTE predicate on the "created_step_id" field.
func CreatedStepIDLTE(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldLTE(FieldCreatedStepID, v))
}

// CreatedStepIDContains applies the Contains predicate on the "created_step_id" field.
func CreatedStepIDContains(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldContains(FieldCreatedStepID, v))
}

// CreatedStepIDHasPrefix applies the HasPrefix predicate on the "created_step_id" field.
func CreatedStepIDHasPrefix(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldHasPrefix(FieldCreatedStepID, v))
}

// CreatedStepIDHasSuffix applies the HasSuffix predicate on the "created_step_id" field.
func CreatedStepIDHasSuffix(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldHasSuffix(FieldCreatedStepID, v))
}

// CreatedStepIDIsNil applies the IsNil predicate on the "created_step_id" field.
func CreatedStepIDIsNil() predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldIsNull(FieldCreatedStepID))
}

// CreatedStepIDNotNil applies the NotNil predicate on the "created_step_id" field.
func CreatedStepIDNotNil() predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldNotNull(FieldCreatedStepID))
}

// CreatedStepIDEqualFold applies the EqualFold predicate on the "created_step_id" field.
func CreatedStepIDEqualFold(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldEqualFold(FieldCreatedStepID, v))
}

// CreatedStepIDContainsFold applies the ContainsFold predicate on the "created_step_id" field.
func CreatedStepIDContainsFold(v string) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldContainsFold(FieldCreatedStepID, v))
}

// CreatedVisualizationIdsIsNil applies the IsNil predicate on the "created_visualization_ids" field.
func CreatedVisualizationIdsIsNil() predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldIsNull(FieldCreatedVisualizationIds))
}

// CreatedVisualizationIdsNotNil applies the NotNil predicate on the "created_visualization_ids" field.
func CreatedVisualizationIdsNotNil() predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldNotNull(FieldCreatedVisualizationIds))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldLTE(FieldStartedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.ToolExecution {
	return predicate.ToolExecution(sql.FieldNotNull(FieldCompletedAt))
}

// HasDecision applies the HasEdge predicate on the "decision" edge.
func HasDecision() predicate.ToolExecution {
	return predicate.ToolExecution(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DecisionTable, DecisionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDecisionWith applies the HasEdge predicate on the "decision" edge with a given conditions (other predicates).
func HasDecisionWith(preds ...predicate.PlanDecision) predicate.ToolExecution {
	return predicate.ToolExecution(func(s *sql.Selector) {
		step := newDecisionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasExecution applies the HasEdge predicate on the "execution" edge.
func HasExecution() predicate.ToolExecution {
	return predicate.ToolExecution(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ExecutionTable, ExecutionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasExecutionWith applies the HasEdge predicate on the "execution" edge with a given conditions (other predicates).
func HasExecutionWith(preds ...predicate.AgentExecution) predicate.ToolExecution {
	return predicate.ToolExecution(func(s *sql.Selector) {
		step := newExecutionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasBlock applies the HasEdge predicate on the "block" edge.
func HasBlock() predicate.ToolExecution {
	return predicate.ToolExecution(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, BlockTable, BlockColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBlockWith applies the HasEdge predicate on the "block" edge with a given conditions (other predicates).
func HasBlockWith(preds ...predicate.CompletionBlock) predicate.ToolExecution {
	return predicate.ToolExecution(func(s *sql.Selector) {
		step := newBlockStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ToolExecution) predicate.ToolExecution {
	return predicate.ToolExecution(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ToolExecution) predicate.ToolExecution {
	return predicate.ToolExecution(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ToolExecution) predicate.ToolExecution {
	return predicate.ToolExecution(sql.NotPredicates(p))
}
