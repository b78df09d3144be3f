// Code generated by ent, DO NOT EDIT.

package plandecision

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the plandecision type in the database.
	Label = "plan_decision"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldAgentExecutionID holds the string denoting the agent_execution_id field in the database.
	FieldAgentExecutionID = "agent_execution_id"
	// FieldSeq holds the string denoting the seq field in the database.
	FieldSeq = "seq"
	// FieldLoopIndex holds the string denoting the loop_index field in the database.
	FieldLoopIndex = "loop_index"
	// FieldPlanType holds the string denoting the plan_type field in the database.
	FieldPlanType = "plan_type"
	// FieldReasoningMessage holds the string denoting the reasoning_message field in the database.
	FieldReasoningMessage = "reasoning_message"
	// FieldAssistantMessage holds the string denoting the assistant_message field in the database.
	FieldAssistantMessage = "assistant_message"
	// FieldActionName holds the string denoting the action_name field in the database.
	FieldActionName = "action_name"
	// FieldActionArguments holds the string denoting the action_arguments field in the database.
	FieldActionArguments = "action_arguments"
	// FieldAnalysisComplete holds the string denoting the analysis_complete field in the database.
	FieldAnalysisComplete = "analysis_complete"
	// FieldFinalAnswer holds the string denoting the final_answer field in the database.
	FieldFinalAnswer = "final_answer"
	// FieldErrorCode holds the string denoting the error_code field in the database.
	FieldErrorCode = "error_code"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldFinal holds the string denoting the final field in the database.
	FieldFinal = "final"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeExecution holds the string denoting the execution edge name in mutations.
	EdgeExecution = "execution"
	// EdgeBlock holds the string denoting the block edge name in mutations.
	EdgeBlock = "block"
	// EdgeToolExecutions holds the string denoting the tool_executions edge name in mutations.
	EdgeToolExecutions = "tool_executions"
	// Table holds the table name of the plandecision in the database.
	Table = "plan_decisions"
	// ExecutionTable is the table that holds the execution relation/edge.
	ExecutionTable = "plan_decisions"
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
	BlockColumn = "plan_decision_id"
	// ToolExecutionsTable is the table that holds the tool_executions relation/edge.
	ToolExecutionsTable = "tool_executions"
	// ToolExecutionsInverseTable is the table name for the ToolExecution entity.
	// It exists in this package in order to avoid circular dependency with the "toolexecution" package.
	ToolExecutionsInverseTable = "tool_executions"
	// ToolExecutionsColumn is the table column denoting the tool_executions relation/edge.
	ToolExecutionsColumn = "plan_decision_id"
)

// Columns holds all SQL columns for plandecision fields.
var Columns = []string{
	FieldID,
	FieldAgentExecutionID,
	FieldSeq,
	FieldLoopIndex,
	FieldPlanType,
	FieldReasoningMessage,
	FieldAssistantMessage,
	FieldActionName,
	FieldActionArguments,
	FieldAnalysisComplete,
	FieldFinalAnswer,
	FieldErrorCode,
	FieldErrorMessage,
	FieldFinal,
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
	// DefaultReasoningMessage holds the default value on creation for the "reasoning_message" field.
	DefaultReasoningMessage string
	// DefaultAssistantMessage holds the default value on creation for the "assistant_message" field.
	DefaultAssistantMessage string
	// DefaultAnalysisComplete holds the default value on creation for the "analysis_complete" field.
	DefaultAnalysisComplete bool
	// DefaultFinal holds the default value on creation for the "final" field.
	DefaultFinal bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// PlanType defines the type for the "plan_type" enum field.
type PlanType string

// PlanTypeAction is the default value of the PlanType enum.
const DefaultPlanType = PlanTypeAction

// PlanType values.
const (
	PlanTypeAction   PlanType = "action"
	PlanTypeResearch PlanType = "research"
)

func (pt PlanType) String() string {
	return string(pt)
}

// PlanTypeValidator is a validator for the "plan_type" field enum values. It is called by the builders before save.
func PlanTypeValidator(pt PlanType) error {
	switch pt {
	case PlanTypeAction, PlanTypeResearch:
		return nil
	default:
		return fmt.Errorf("plandecision: invalid enum value for plan_type field: %q", pt)
	}
}

// OrderOption defines the ordering options for the PlanDecision queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAgentExecutionID orders the results by the agent_execution_id field.
func ByAgentExecutionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentExecutionID, opts...).ToFunc()
}

// BySeq orders the results by the seq field.
func BySeq(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeq, opts...).ToFunc()
}

// ByLoopIndex orders the results by the loop_index field.
func ByLoopIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLoopIndex, opts...).ToFunc()
}

// ByPlanType orders the results by the plan_type field.
func ByPlanType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlanType, opts...).ToFunc()
}

// ByReasoningMessage orders the results by the reasoning_message field.
func ByReasoningMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReasoningMessage, opts...).ToFunc()
}

// ByAssistantMessage orders the results by the assistant_message field.
func ByAssistantMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssistantMessage, opts...).ToFunc()
}

// ByActionName orders the results by the action_name field.
func ByActionName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActionName, opts...).ToFunc()
}

// ByAnalysisComplete orders the results by the analysis_complete field.
func ByAnalysisComplete(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnalysisComplete, opts...).ToFunc()
}

// ByFinalAnswer orders the results by the final_answer field.
func ByFinalAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinalAnswer, opts...).ToFunc()
}

// ByErrorCode orders the results by the error_code field.
func ByErrorCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorCode, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByFinal orders the results by the final field.
func ByFinal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinal, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
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

// ByToolExecutionsCount orders the results by tool_executions count.
func ByToolExecutionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newToolExecutionsStep(), opts...)
	}
}

// ByToolExecutions orders the results by tool_executions terms.
func ByToolExecutions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newToolExecutionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
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
func newToolExecutionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ToolExecutionsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ToolExecutionsTable, ToolExecutionsColumn),
	)
}
