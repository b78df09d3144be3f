// Code generated by ent, DO NOT EDIT.

package completionblock

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the completionblock type in the database.
	Label = "completion_block"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCompletionID holds the string denoting the completion_id field in the database.
	FieldCompletionID = "completion_id"
	// FieldAgentExecutionID holds the string denoting the agent_execution_id field in the database.
	FieldAgentExecutionID = "agent_execution_id"
	// FieldPlanDecisionID holds the string denoting the plan_decision_id field in the database.
	FieldPlanDecisionID = "plan_decision_id"
	// FieldToolExecutionID holds the string denoting the tool_execution_id field in the database.
	FieldToolExecutionID = "tool_execution_id"
	// FieldSeq holds the string denoting the seq field in the database.
	FieldSeq = "seq"
	// FieldBlockIndex holds the string denoting the block_index field in the database.
	FieldBlockIndex = "block_index"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldReasoning holds the string denoting the reasoning field in the database.
	FieldReasoning = "reasoning"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeParent holds the string denoting the parent edge name in mutations.
	EdgeParent = "parent"
	// EdgePlanDecision holds the string denoting the plan_decision edge name in mutations.
	EdgePlanDecision = "plan_decision"
	// EdgeToolExecution holds the string denoting the tool_execution edge name in mutations.
	EdgeToolExecution = "tool_execution"
	// Table holds the table name of the completionblock in the database.
	Table = "completion_blocks"
	// ParentTable is the table that holds the parent relation/edge.
	ParentTable = "completion_blocks"
	// ParentInverseTable is the table name for the Completion entity.
	// It exists in this package in order to avoid circular dependency with the "completion" package.
	ParentInverseTable = "completions"
	// ParentColumn is the table column denoting the parent relation/edge.
	ParentColumn = "completion_id"
	// PlanDecisionTable is the table that holds the plan_decision relation/edge.
	PlanDecisionTable = "completion_blocks"
	// PlanDecisionInverseTable is the table name for the PlanDecision entity.
	// It exists in this package in order to avoid circular dependency with the "plandecision" package.
	PlanDecisionInverseTable = "plan_decisions"
	// PlanDecisionColumn is the table column denoting the plan_decision relation/edge.
	PlanDecisionColumn = "plan_decision_id"
	// ToolExecutionTable is the table that holds the tool_execution relation/edge.
	ToolExecutionTable = "completion_blocks"
	// ToolExecutionInverseTable is the table name for the ToolExecution entity.
	// It exists in this package in order to avoid circular dependency with the "toolexecution" package.
	ToolExecutionInverseTable = "tool_executions"
	// ToolExecutionColumn is the table column denoting the tool_execution relation/edge.
	ToolExecutionColumn = "tool_execution_id"
)

// Columns holds all SQL columns for completionblock fields.
var Columns = []string{
	FieldID,
	FieldCompletionID,
	FieldAgentExecutionID,
	FieldPlanDecisionID,
	FieldToolExecutionID,
	FieldSeq,
	FieldBlockIndex,
	FieldContent,
	FieldReasoning,
	FieldStatus,
	FieldErrorMessage,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// DefaultContent holds the default value on creation for the "content" field.
	DefaultContent string
	// DefaultReasoning holds the default value on creation for the "reasoning" field.
	DefaultReasoning string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusInProgress is the default value of the Status enum.
const DefaultStatus = StatusInProgress

// Status values.
const (
	StatusInProgress Status = "in_progress"
	StatusSuccess    Status = "success"
	StatusError      Status = "error"
	StatusStopped    Status = "stopped"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusInProgress, StatusSuccess, StatusError, StatusStopped:
		return nil
	default:
		return fmt.Errorf("completionblock: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the CompletionBlock queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCompletionID orders the results by the completion_id field.
func ByCompletionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletionID, opts...).ToFunc()
}

// ByAgentExecutionID orders the results by the agent_execution_id field.
func ByAgentExecutionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentExecutionID, opts...).ToFunc()
}

// ByPlanDecisionID orders the results by the plan_decision_id field.
func ByPlanDecisionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlanDecisionID, opts...).ToFunc()
}

// ByToolExecutionID orders the results by the tool_execution_id field.
func ByToolExecutionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToolExecutionID, opts...).ToFunc()
}

// BySeq orders the results by the seq field.
func BySeq(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeq, opts...).ToFunc()
}

// ByBlockIndex orders the results by the block_index field.
func ByBlockIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBlockIndex, opts...).ToFunc()
}

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
}

// ByReasoning orders the results by the reasoning field.
func ByReasoning(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReasoning, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByParentField orders the results by parent field.
func ByParentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newParentStep(), sql.OrderByField(field, opts...))
	}
}

// ByPlanDecisionField orders the results by plan_decision field.
func ByPlanDecisionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPlanDecisionStep(), sql.OrderByField(field, opts...))
	}
}

// ByToolExecutionField orders the results by tool_execution field.
func ByToolExecutionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newToolExecutionStep(), sql.OrderByField(field, opts...))
	}
}
func newParentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ParentInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ParentTable, ParentColumn),
	)
}
func newPlanDecisionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PlanDecisionInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, PlanDecisionTable, PlanDecisionColumn),
	)
}
func newToolExecutionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ToolExecutionInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ToolExecutionTable, ToolExecutionColumn),
	)
}
