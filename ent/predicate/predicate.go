// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AgentExecution is the predicate function for agentexecution builders.
type AgentExecution func(*sql.Selector)

// Completion is the predicate function for completion builders.
type Completion func(*sql.Selector)

// CompletionBlock is the predicate function for completionblock builders.
type CompletionBlock func(*sql.Selector)

// ContextSnapshot is the predicate function for contextsnapshot builders.
type ContextSnapshot func(*sql.Selector)

// DataQuery is the predicate function for dataquery builders.
type DataQuery func(*sql.Selector)

// DataSource is the predicate function for datasource builders.
type DataSource func(*sql.Selector)

// Instruction is the predicate function for instruction builders.
type Instruction func(*sql.Selector)

// PlanDecision is the predicate function for plandecision builders.
type PlanDecision func(*sql.Selector)

// Report is the predicate function for report builders.
type Report func(*sql.Selector)

// Step is the predicate function for step builders.
type Step func(*sql.Selector)

// ToolExecution is the predicate function for toolexecution builders.
type ToolExecution func(*sql.Selector)

// Visualization is the predicate function for visualization builders.
type Visualization func(*sql.Selector)

// Widget is the predicate function for widget builders.
type Widget func(*sql.Selector)
