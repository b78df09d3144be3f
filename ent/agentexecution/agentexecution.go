// Code generated by ent, DO NOT EDIT.

package agentexecution

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the agentexecution type in the database.
	Label = "agent_execution"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCompletionID holds the string denoting the completion_id field in the database.
	FieldCompletionID = "completion_id"
	// FieldReportID holds the string denoting the report_id field in the database.
	FieldReportID = "report_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldLastSeq holds the string denoting the last_seq field in the database.
	FieldLastSeq = "last_seq"
	// FieldLoopIterations holds the string denoting the loop_iterations field in the database.
	FieldLoopIterations = "loop_iterations"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldDurationMs holds the string denoting the duration_ms field in the database.
	FieldDurationMs = "duration_ms"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// EdgeCompletion holds the string denoting the completion edge name in mutations.
	EdgeCompletion = "completion"
	// EdgePlanDecisions holds the string denoting the plan_decisions edge name in mutations.
	EdgePlanDecisions = "plan_decisions"
	// EdgeToolExecutions holds the string denoting the tool_executions edge name in mutations.
	EdgeToolExecutions = "tool_executions"
	// EdgeContextSnapshots holds the string denoting the context_snapshots edge name in mutations.
	EdgeContextSnapshots = "context_snapshots"
	// Table holds the table name of the agentexecution in the database.
	Table = "agent_executions"
	// CompletionTable is the table that holds the completion relation/edge.
	CompletionTable = "agent_executions"
	// CompletionInverseTable is the table name for the Completion entity.
	// It exists in this package in order to avoid circular dependency with the "completion" package.
	CompletionInverseTable = "completions"
	// CompletionColumn is the table column denoting the completion relation/edge.
	CompletionColumn = "completion_id"
	// PlanDecisionsTable is the table that holds the plan_decisions relation/edge.
	PlanDecisionsTable = "plan_decisions"
	// PlanDecisionsInverseTable is the table name for the PlanDecision entity.
	// It exists in this package in order to avoid circular dependency with the "plandecision" package.
	PlanDecisionsInverseTable = "plan_decisions"
	// PlanDecisionsColumn is the table column denoting the plan_decisions relation/edge.
	PlanDecisionsColumn = "agent_execution_id"
	// ToolExecutionsTable is the table that holds the tool_executions relation/edge.
	ToolExecutionsTable = "tool_executions"
	// ToolExecutionsInverseTable is the table name for the ToolExecution entity.
	// It exists in this package in order to avoid circular dependency with the "toolexecution" package.
	ToolExecutionsInverseTable = "tool_executions"
	// ToolExecutionsColumn is the table column denoting the tool_executions relation/edge.
	ToolExecutionsColumn = "agent_execution_id"
	// ContextSnapshotsTable is the table that holds the context_snapshots relation/edge.
	ContextSnapshotsTable = "context_snapshots"
	// ContextSnapshotsInverseTable is the table name for the ContextSnapshot entity.
	// It exists in this package in order to avoid circular dependency with the "contextsnapshot" package.
	ContextSnapshotsInverseTable = "context_snapshots"
	// ContextSnapshotsColumn is the table column denoting the context_snapshots relation/edge.
	ContextSnapshotsColumn = "agent_execution_id"
)

// Columns holds all SQL columns for agentexecution fields.
var Columns = []string{
	FieldID,
	FieldCompletionID,
	FieldReportID,
	FieldStatus,
	FieldLastSeq,
	FieldLoopIterations,
	FieldStartedAt,
	FieldCompletedAt,
	FieldDurationMs,
	FieldErrorMessage,
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
	// DefaultLastSeq holds the default value on creation for the "last_seq" field.
	DefaultLastSeq int
	// DefaultLoopIterations holds the default value on creation for the "loop_iterations" field.
	DefaultLoopIterations int
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
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
	StatusSigkill    Status = "sigkill"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusInProgress, StatusSuccess, StatusError, StatusSigkill:
		return nil
	default:
		return fmt.Errorf("agentexecution: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the AgentExecution queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCompletionID orders the results by the completion_id field.
func ByCompletionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletionID, opts...).ToFunc()
}

// ByReportID orders the results by the report_id field.
func ByReportID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReportID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByLastSeq orders the results by the last_seq field.
func ByLastSeq(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastSeq, opts...).ToFunc()
}

// ByLoopIterations orders the results by the loop_iterations field.
func ByLoopIterations(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLoopIterations, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByDurationMs orders the results by the duration_ms field.
func ByDurationMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationMs, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByCompletionField orders the results by completion field.
func ByCompletionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCompletionStep(), sql.OrderByField(field, opts...))
	}
}

// ByPlanDecisionsCount orders the results by plan_decisions count.
func ByPlanDecisionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newPlanDecisionsStep(), opts...)
	}
}

// ByPlanDecisions orders the results by plan_decisions terms.
func ByPlanDecisions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPlanDecisionsStep(), append([]sql.OrderTerm{term}, terms...)...)
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

// ByContextSnapshotsCount orders the results by context_snapshots count.
func ByContextSnapshotsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newContextSnapshotsStep(), opts...)
	}
}

// ByContextSnapshots orders the results by context_snapshots terms.
func ByContextSnapshots(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newContextSnapshotsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newCompletionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CompletionInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CompletionTable, CompletionColumn),
	)
}
func newPlanDecisionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PlanDecisionsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, PlanDecisionsTable, PlanDecisionsColumn),
	)
}
func newToolExecutionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ToolExecutionsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ToolExecutionsTable, ToolExecutionsColumn),
	)
}
func newContextSnapshotsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ContextSnapshotsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ContextSnapshotsTable, ContextSnapshotsColumn),
	)
}
