// Code generated by ent, DO NOT EDIT.

package toolexecution

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the toolexecution type in the database.
	Label = "tool_execution"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPlanDecisionID holds the string denoting the plan_decision_id field in the database.
	FieldPlanDecisionID = "plan_decision_id"
	// FieldAgentExecutionID holds the string denoting the agent_execution_id field in the database.
	FieldAgentExecutionID = "agent_execution_id"
	// FieldToolName holds the string denoting the tool_name field in the database.
	FieldToolName = "tool_name"
	// FieldToolAction holds the string denoting the tool_action field in the database.
	FieldToolAction = "tool_action"
	// FieldArguments holds the string denoting the arguments field in the database.
	FieldArguments = "arguments"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldResult holds the string denoting the result field in the database.
	FieldResult = "result"
	// FieldResultSummary holds the string denoting the result_summary field in the database.
	FieldResultSummary = "result_summary"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldDurationMs holds the string denoting the duration_ms field in the database.
	FieldDurationMs = "duration_ms"
	// FieldAttemptNumber holds the string denoting the attempt_number field in the database.
	FieldAttemptNumber = "attempt_number"
	// FieldCreatedWidgetID holds the string denoting the created_widget_id field in the database.
	FieldCreatedWidgetID = "created_widget_id"
	// FieldCreatedStepID holds the string denoting the created_step_id field in the database.
	FieldCreatedStepID = "created_step_id"
	// FieldCreatedVisualizationIds holds the string denoting the created_visualization_ids field in the database.
	FieldCreatedVisualizationIds = "created_visualization_ids"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// EdgeDecision holds the string denoting the decision edge name in mutations.
	EdgeDecision = "decision"
	// EdgeExecution holds the string denoting the execution edge name in mutations.
	EdgeExecution = "execution"
	// EdgeBlock holds the string denoting the block edge name in mutations.
	EdgeBlock = "block"
	// Table holds the table name of the toolexecution in the database.
	Table = "tool_executions"
	// DecisionTable is the table that holds the decision relation/edge.
	DecisionTable = "tool_executions"
	// DecisionInverseTable is the table name for the PlanDecision entity.
	// It exists in this package in order to avoid circular dependency with the "plandecision" package.
	DecisionInverseTable = "plan_decisions"
	// DecisionColumn is the table column denoting the decision relation/edge.
	DecisionColumn = "plan_decision_id"
	// ExecutionTable is the table that holds the execution relation/edge.
	ExecutionTable = "tool_executions"
	// ExecutionInverseTable is the table name for the AgentExecution entity.
	// It exists in this package in order to avoid circular dependency with the "agentexecution" package.
	ExecutionInverseTable = "agent_executions"
	// ExecutionColumn is the table column denoting the execution relation/edge.
	ExecutionColumn = "agent_execution_id"
	// BlockTable is the table that holds the block relation/edge.
	BlockTable = "completion_blocks"
	// BlockInverseTable is the table name for the CompletionBlock entity.
	// It exists in this package in order to avoid circular dependency with the "completionblock" package.
	BlockInverseTable = "completion_blocks"
	// BlockColumn is the table column denoting the block relation/edge.
	BlockColumn = "tool_execution_id"
)

// Columns holds all SQL columns for toolexecution fields.
var Columns = []string{
	FieldID,
	FieldPlanDecisionID,
	FieldAgentExecutionID,
	FieldToolName,
	FieldToolAction,
	FieldArguments,
	FieldStatus,
	FieldResult,
	FieldResultSummary,
	FieldErrorMessage,
	FieldDurationMs,
	FieldAttemptNumber,
	FieldCreatedWidgetID,
	FieldCreatedStepID,
	FieldCreatedVisualizationIds,
	FieldStartedAt,
	FieldCompletedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultAttemptNumber holds the default value on creation for the "attempt_number" field.
	DefaultAttemptNumber int
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusRunning is the default value of the Status enum.
const DefaultStatus = StatusRunning

// Status values.
const (
	StatusRunning Status = "running"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusRunning, StatusSuccess, StatusError:
		return nil
	default:
		return fmt.Errorf("toolexecution: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the ToolExecution queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPlanDecisionID orders the results by the plan_decision_id field.
func ByPlanDecisionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlanDecisionID, opts...).ToFunc()
}

// ByAgentExecutionID orders the results by the agent_execution_id field.
func ByAgentExecutionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentExecutionID, opts...).ToFunc()
}

// ByToolName orders the results by the tool_name field.
func ByToolName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToolName, opts...).ToFunc()
}

// ByToolAction orders the results by the tool_action field.
func ByToolAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToolAction, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByResultSummary orders the results by the result_summary field.
func ByResultSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResultSummary, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByDurationMs orders the results by the duration_ms field.
func ByDurationMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationMs, opts...).ToFunc()
}

// ByAttemptNumber orders the results by the attempt_number field.
func ByAttemptNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttemptNumber, opts...).ToFunc()
}

// ByCreatedWidgetID orders the results by the created_widget_id field.
func ByCreatedWidgetID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedWidgetID, opts...).ToFunc()
}

// ByCreatedStepID orders the results by the created_step_id field.
func ByCreatedStepID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedStepID, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByDecisionField orders the results by decision field.
func ByDecisionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDecisionStep(), sql.OrderByField(field, opts...))
	}
}

// ByExecutionField orders the results by execution field.
func ByExecutionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newExecutionStep(), sql.OrderByField(field, opts...))
	}
}

// ByBlockCount orders the results by block count.
func ByBlockCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newBlockStep(), opts...)
	}
}

// ByBlock orders the results by block terms.
func ByBlock(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBlockStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newDecisionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DecisionInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, DecisionTable, DecisionColumn),
	)
}
func newExecutionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ExecutionInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ExecutionTable, ExecutionColumn),
	)
}
func newBlockStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BlockInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, BlockTable, BlockColumn),
	)
}
