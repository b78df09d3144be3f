// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/datalens-ai/datalens/ent/agentexecution"
	"github.com/datalens-ai/datalens/ent/completion"
	"github.com/datalens-ai/datalens/ent/completionblock"
	"github.com/datalens-ai/datalens/ent/contextsnapshot"
	"github.com/datalens-ai/datalens/ent/dataquery"
	"github.com/datalens-ai/datalens/ent/datasource"
	"github.com/datalens-ai/datalens/ent/instruction"
	"github.com/datalens-ai/datalens/ent/plandecision"
	"github.com/datalens-ai/datalens/ent/predicate"
	"github.com/datalens-ai/datalens/ent/report"
	"github.com/datalens-ai/datalens/ent/step"
	"github.com/datalens-ai/datalens/ent/toolexecution"
	"github.com/datalens-ai/datalens/ent/visualization"
	"github.com/datalens-ai/datalens/ent/widget"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgentExecution  = "AgentExecution"
	TypeCompletion      = "Completion"
	TypeCompletionBlock = "CompletionBlock"
	TypeContextSnapshot = "ContextSnapshot"
	TypeDataQuery       = "DataQuery"
	TypeDataSource      = "DataSource"
	TypeInstruction     = "Instruction"
	TypePlanDecision    = "PlanDecision"
	TypeReport          = "Report"
	TypeStep            = "Step"
	TypeToolExecution   = "ToolExecution"
	TypeVisualization   = "Visualization"
	TypeWidget          = "Widget"
)

// AgentExecutionMutation represents an operation that mutates the AgentExecution nodes in the graph.
type AgentExecutionMutation struct {
	config
	op                       Op
	typ                      string
	id                       *string
	report_id                *string
	status                   *agentexecution.Status
	last_seq                 *int
	addlast_seq              *int
	loop_iterations          *int
	addloop_iterations       *int
	started_at               *time.Time
	completed_at             *time.Time
	duration_ms              *int
	addduration_ms           *int
	error_message            *string
	clearedFields            map[string]struct{}
	completion               *string
	clearedcompletion        bool
	plan_decisions           map[string]struct{}
	removedplan_decisions    map[string]struct{}
	clearedplan_decisions    bool
	tool_executions          map[string]struct{}
	removedtool_executions   map[string]struct{}
	clearedtool_executions   bool
	context_snapshots        map[string]struct{}
	removedcontext_snapshots map[string]struct{}
	clearedcontext_snapshots bool
	done                     bool
	oldValue                 func(context.Context) (*AgentExecution, error)
	predicates               []predicate.AgentExecution
}

var _ ent.Mutation = (*AgentExecutionMutation)(nil)

// agentexecutionOption allows management of the mutation configuration using functional options.
type agentexecutionOption func(*AgentExecutionMutation)

// newAgentExecutionMutation creates new mutation for the AgentExecution entity.
func newAgentExecutionMutation(c config, op Op, opts ...agentexecutionOption) *AgentExecutionMutation {
	m := &AgentExecutionMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentExecution,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentExecutionID sets the ID field of the mutation.
func withAgentExecutionID(id string) agentexecutionOption {
	return func(m *AgentExecutionMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentExecution
		)
		m.oldValue = func(ctx context.Context) (*AgentExecution, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentExecution.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentExecution sets the old AgentExecution of the mutation.
func withAgentExecution(node *AgentExecution) agentexecutionOption {
	return func(m *AgentExecutionMutation) {
		m.oldValue = func(context.Context) (*AgentExecution, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentExecutionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentExecutionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AgentExecution entities.
func (m *AgentExecutionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentExecutionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentExecutionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentExecution.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCompletionID sets the "completion_id" field.
func (m *AgentExecutionMutation) SetCompletionID(s string) {
	m.completion = &s
}

// CompletionID returns the value of the "completion_id" field in the mutation.
func (m *AgentExecutionMutation) CompletionID() (r string, exists bool) {
	v := m.completion
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletionID returns the old "completion_id" field's value of the AgentExecution entity.
// If the AgentExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentExecutionMutation) OldCompletionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletionID: %w", err)
	}
	return oldValue.CompletionID, nil
}

// ResetCompletionID resets all changes to the "completion_id" field.
func (m *AgentExecutionMutation) ResetCompletionID() {
	m.completion = nil
}

// SetReportID sets the "report_id" field.
func (m *AgentExecutionMutation) SetReportID(s string) {
	m.report_id = &s
}

// ReportID returns the value of the "report_id" field in the mutation.
func (m *AgentExecutionMutation) ReportID() (r string, exists bool) {
	v := m.report_id
	if v == nil {
		return
	}
	return *v, true
}

// OldReportID returns the old "report_id" field's value of the AgentExecution entity.
// If the AgentExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentExecutionMutation) OldReportID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReportID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReportID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReportID: %w", err)
	}
	return oldValue.ReportID, nil
}

// ResetReportID resets all changes to the "report_id" field.
func (m *AgentExecutionMutation) ResetReportID() {
	m.report_id = nil
}

// SetStatus sets the "status" field.
func (m *AgentExecutionMutation) SetStatus(a agentexecution.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AgentExecutionMutation) Status() (r agentexecution.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the AgentExecution entity.
// If the AgentExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentExecutionMutation) OldStatus(ctx context.Context) (v agentexecution.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AgentExecutionMutation) ResetStatus() {
	m.status = nil
}

// SetLastSeq sets the "last_seq" field.
func (m *AgentExecutionMutation) SetLastSeq(i int) {
	m.last_seq = &i
	m.addlast_seq = nil
}

// LastSeq returns the value of the "last_seq" field in the mutation.
func (m *AgentExecutionMutation) LastSeq() (r int, exists bool) {
	v := m.last_seq
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSeq returns the old "last_seq" field's value of the AgentExecution entity.
// If the AgentExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentExecutionMutation) OldLastSeq(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSeq is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSeq requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSeq: %w", err)
	}
	return oldValue.LastSeq, nil
}

// AddLastSeq adds i to the "last_seq" field.
func (m *AgentExecutionMutation) AddLastSeq(i int) {
	if m.addlast_seq != nil {
		*m.addlast_seq += i
	} else {
		m.addlast_seq = &i
	}
}

// AddedLastSeq returns the value that was added to the "last_seq" field in this mutation.
func (m *AgentExecutionMutation) AddedLastSeq() (r int, exists bool) {
	v := m.addlast_seq
	if v == nil {
		return
	}
	return *v, true
}

// ResetLastSeq resets all changes to the "last_seq" field.
func (m *AgentExecutionMutation) ResetLastSeq() {
	m.last_seq = nil
	m.addlast_seq = nil
}

// SetLoopIterations sets the "loop_iterations" field.
func (m *AgentExecutionMutation) SetLoopIterations(i int) {
	m.loop_iterations = &i
	m.addloop_iterations = nil
}

// LoopIterations returns the value of the "loop_iterations" field in the mutation.
func (m *AgentExecutionMutation) LoopIterations() (r int, exists bool) {
	v := m.loop_iterations
	if v == nil {
		return
	}
	return *v, true
}

// OldLoopIterations returns the old "loop_iterations" field's value of the AgentExecution entity.
// If the AgentExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentExecutionMutation) OldLoopIterations(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLoopIterations is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLoopIterations requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLoopIterations: %w", err)
	}
	return oldValue.LoopIterations, nil
}

// AddLoopIterations adds i to the "loop_iterations" field.
func (m *AgentExecutionMutation) AddLoopIterations(i int) {
	if m.addloop_iterations != nil {
		*m.addloop_iterations += i
	} else {
		m.addloop_iterations = &i
	}
}

// AddedLoopIterations returns the value that was added to the "loop_iterations" field in this mutation.
func (m *AgentExecutionMutation) AddedLoopIterations() (r int, exists bool) {
	v := m.addloop_iterations
	if v == nil {
		return
	}
	return *v, true
}

// ResetLoopIterations resets all changes to the "loop_iterations" field.
func (m *AgentExecutionMutation) ResetLoopIterations() {
	m.loop_iterations = nil
	m.addloop_iterations = nil
}

// SetStartedAt sets the "started_at" field.
func (m *AgentExecutionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *AgentExecutionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the AgentExecution entity.
// If the AgentExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentExecutionMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *AgentExecutionMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *AgentExecutionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *AgentExecutionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the AgentExecution entity.
// If the AgentExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentExecutionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *AgentExecutionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[agentexecution.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *AgentExecutionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[agentexecution.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *AgentExecutionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, agentexecution.FieldCompletedAt)
}

// SetDurationMs sets the "duration_ms" field.
func (m *AgentExecutionMutation) SetDurationMs(i int) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *AgentExecutionMutation) DurationMs() (r int, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the AgentExecution entity.
// If the AgentExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentExecutionMutation) OldDurationMs(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *AgentExecutionMutation) AddDurationMs(i int) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *AgentExecutionMutation) AddedDurationMs() (r int, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (m *AgentExecutionMutation) ClearDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	m.clearedFields[agentexecution.FieldDurationMs] = struct{}{}
}

// DurationMsCleared returns if the "duration_ms" field was cleared in this mutation.
func (m *AgentExecutionMutation) DurationMsCleared() bool {
	_, ok := m.clearedFields[agentexecution.FieldDurationMs]
	return ok
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *AgentExecutionMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	delete(m.clearedFields, agentexecution.FieldDurationMs)
}

// SetErrorMessage sets the "error_message" field.
func (m *AgentExecutionMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *AgentExecutionMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the AgentExecution entity.
// If the AgentExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentExecutionMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *AgentExecutionMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[agentexecution.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *AgentExecutionMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[agentexecution.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *AgentExecutionMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, agentexecution.FieldErrorMessage)
}

// ClearCompletion clears the "completion" edge to the Completion entity.
func (m *AgentExecutionMutation) ClearCompletion() {
	m.clearedcompletion = true
	m.clearedFields[agentexecution.FieldCompletionID] = struct{}{}
}

// CompletionCleared reports if the "completion" edge to the Completion entity was cleared.
func (m *AgentExecutionMutation) CompletionCleared() bool {
	return m.clearedcompletion
}

// CompletionIDs returns the "completion" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CompletionID instead. It exists only for internal usage by the builders.
func (m *AgentExecutionMutation) CompletionIDs() (ids []string) {
	if id := m.completion; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCompletion resets all changes to the "completion" edge.
func (m *AgentExecutionMutation) ResetCompletion() {
	m.completion = nil
	m.clearedcompletion = false
}

// AddPlanDecisionIDs adds the "plan_decisions" edge to the PlanDecision entity by ids.
func (m *AgentExecutionMutation) AddPlanDecisionIDs(ids ...string) {
	if m.plan_decisions == nil {
		m.plan_decisions = make(map[string]struct{})
	}
	for i := range ids {
		m.plan_decisions[ids[i]] = struct{}{}
	}
}

// ClearPlanDecisions clears the "plan_decisions" edge to the PlanDecision entity.
func (m *AgentExecutionMutation) ClearPlanDecisions() {
	m.clearedplan_decisions = true
}

// PlanDecisionsCleared reports if the "plan_decisions" edge to the PlanDecision entity was cleared.
func (m *AgentExecutionMutation) PlanDecisionsCleared() bool {
	return m.clearedplan_decisions
}

// RemovePlanDecisionIDs removes the "plan_decisions" edge to the PlanDecision entity by IDs.
func (m *AgentExecutionMutation) RemovePlanDecisionIDs(ids ...string) {
	if m.removedplan_decisions == nil {
		m.removedplan_decisions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.plan_decisions, ids[i])
		m.removedplan_decisions[ids[i]] = struct{}{}
	}
}

// RemovedPlanDecisions returns the removed IDs of the "plan_decisions" edge to the PlanDecision entity.
func (m *AgentExecutionMutation) RemovedPlanDecisionsIDs() (ids []string) {
	for id := range m.removedplan_decisions {
		ids = append(ids, id)
	}
	return
}

// PlanDecisionsIDs returns the "plan_decisions" edge IDs in the mutation.
func (m *AgentExecutionMutation) PlanDecisionsIDs() (ids []string) {
	for id := range m.plan_decisions {
		ids = append(ids, id)
	}
	return
}

// ResetPlanDecisions resets all changes to the "plan_decisions" edge.
func (m *AgentExecutionMutation) ResetPlanDecisions() {
	m.plan_decisions = nil
	m.clearedplan_decisions = false
	m.removedplan_decisions = nil
}

// AddToolExecutionIDs adds the "tool_executions" edge to the ToolExecution entity by ids.
func (m *AgentExecutionMutation) AddToolExecutionIDs(ids ...string) {
	if m.tool_executions == nil {
		m.tool_executions = make(map[string]struct{})
	}
	for i := range ids {
		m.tool_executions[ids[i]] = struct{}{}
	}
}

// ClearToolExecutions clears the "tool_executions" edge to the ToolExecution entity.
func (m *AgentExecutionMutation) ClearToolExecutions() {
	m.clearedtool_executions = true
}

// ToolExecutionsCleared reports if the "tool_executions" edge to the ToolExecution entity was cleared.
func (m *AgentExecutionMutation) ToolExecutionsCleared() bool {
	return m.clearedtool_executions
}

// RemoveToolExecutionIDs removes the "tool_executions" edge to the ToolExecution entity by IDs.
func (m *AgentExecutionMutation) RemoveToolExecutionIDs(ids ...string) {
	if m.removedtool_executions == nil {
		m.removedtool_executions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.tool_executions, ids[i])
		m.removedtool_executions[ids[i]] = struct{}{}
	}
}

// RemovedToolExecutions returns the removed IDs of the "tool_executions" edge to the ToolExecution entity.
func (m *AgentExecutionMutation) RemovedToolExecutionsIDs() (ids []string) {
	for id := range m.removedtool_executions {
		ids = append(ids, id)
	}
	return
}

// ToolExecutionsIDs returns the "tool_executions" edge IDs in the mutation.
func (m *AgentExecutionMutation) ToolExecutionsIDs() (ids []string) {
	for id := range m.tool_executions {
		ids = append(ids, id)
	}
	return
}

// ResetToolExecutions resets all changes to the "tool_executions" edge.
func (m *AgentExecutionMutation) ResetToolExecutions() {
	m.tool_executions = nil
	m.clearedtool_executions = false
	m.removedtool_executions = nil
}

// AddContextSnapshotIDs adds the "context_snapshots" edge to the ContextSnapshot entity by ids.
func (m *AgentExecutionMutation) AddContextSnapshotIDs(ids ...string) {
	if m.context_snapshots == nil {
		m.context_snapshots = make(map[string]struct{})
	}
	for i := range ids {
		m.context_snapshots[ids[i]] = struct{}{}
	}
}

// ClearContextSnapshots clears the "context_snapshots" edge to the ContextSnapshot entity.
func (m *AgentExecutionMutation) ClearContextSnapshots() {
	m.clearedcontext_snapshots = true
}

// ContextSnapshotsCleared reports if the "context_snapshots" edge to the ContextSnapshot entity was cleared.
func (m *AgentExecutionMutation) ContextSnapshotsCleared() bool {
	return m.clearedcontext_snapshots
}

// RemoveContextSnapshotIDs removes the "context_snapshots" edge to the ContextSnapshot entity by IDs.
func (m *AgentExecutionMutation) RemoveContextSnapshotIDs(ids ...string) {
	if m.removedcontext_snapshots == nil {
		m.removedcontext_snapshots = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.context_snapshots, ids[i])
		m.removedcontext_snapshots[ids[i]] = struct{}{}
	}
}

// RemovedContextSnapshots returns the removed IDs of the "context_snapshots" edge to the ContextSnapshot entity.
func (m *AgentExecutionMutation) RemovedContextSnapshotsIDs() (ids []string) {
	for id := range m.removedcontext_snapshots {
		ids = append(ids, id)
	}
	return
}

// ContextSnapshotsIDs returns the "context_snapshots" edge IDs in the mutation.
func (m *AgentExecutionMutation) ContextSnapshotsIDs() (ids []string) {
	for id := range m.context_snapshots {
		ids = append(ids, id)
	}
	return
}

// ResetContextSnapshots resets all changes to the "context_snapshots" edge.
func (m *AgentExecutionMutation) ResetContextSnapshots() {
	m.context_snapshots = nil
	m.clearedcontext_snapshots = false
	m.removedcontext_snapshots = nil
}

// Where appends a list predicates to the AgentExecutionMutation builder.
func (m *AgentExecutionMutation) Where(ps ...predicate.AgentExecution) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentExecutionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentExecutionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentExecution, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentExecutionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentExecutionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentExecution).
func (m *AgentExecutionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentExecutionMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.completion != nil {
		fields = append(fields, agentexecution.FieldCompletionID)
	}
	if m.report_id != nil {
		fields = append(fields, agentexecution.FieldReportID)
	}
	if m.status != nil {
		fields = append(fields, agentexecution.FieldStatus)
	}
	if m.last_seq != nil {
		fields = append(fields, agentexecution.FieldLastSeq)
	}
	if m.loop_iterations != nil {
		fields = append(fields, agentexecution.FieldLoopIterations)
	}
	if m.started_at != nil {
		fields = append(fields, agentexecution.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, agentexecution.FieldCompletedAt)
	}
	if m.duration_ms != nil {
		fields = append(fields, agentexecution.FieldDurationMs)
	}
	if m.error_message != nil {
		fields = append(fields, agentexecution.FieldErrorMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentExecutionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentexecution.FieldCompletionID:
		return m.CompletionID()
	case agentexecution.FieldReportID:
		return m.ReportID()
	case agentexecution.FieldStatus:
		return m.Status()
	case agentexecution.FieldLastSeq:
		return m.LastSeq()
	case agentexecution.FieldLoopIterations:
		return m.LoopIterations()
	case agentexecution.FieldStartedAt:
		return m.StartedAt()
	case agentexecution.FieldCompletedAt:
		return m.CompletedAt()
	case agentexecution.FieldDurationMs:
		return m.DurationMs()
	case agentexecution.FieldErrorMessage:
		return m.ErrorMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentExecutionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentexecution.FieldCompletionID:
		return m.OldCompletionID(ctx)
	case agentexecution.FieldReportID:
		return m.OldReportID(ctx)
	case agentexecution.FieldStatus:
		return m.OldStatus(ctx)
	case agentexecution.FieldLastSeq:
		return m.OldLastSeq(ctx)
	case agentexecution.FieldLoopIterations:
		return m.OldLoopIterations(ctx)
	case agentexecution.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case agentexecution.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case agentexecution.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case agentexecution.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	}
	return nil, fmt.Errorf("unknown AgentExecution field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentExecutionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentexecution.FieldCompletionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletionID(v)
		return nil
	case agentexecution.FieldReportID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReportID(v)
		return nil
	case agentexecution.FieldStatus:
		v, ok := value.(agentexecution.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case agentexecution.FieldLastSeq:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSeq(v)
		return nil
	case agentexecution.FieldLoopIterations:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLoopIterations(v)
		return nil
	case agentexecution.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case agentexecution.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case agentexecution.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case agentexecution.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	}
	return fmt.Errorf("unknown AgentExecution field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentExecutionMutation) AddedFields() []string {
	var fields []string
	if m.addlast_seq != nil {
		fields = append(fields, agentexecution.FieldLastSeq)
	}
	if m.addloop_iterations != nil {
		fields = append(fields, agentexecution.FieldLoopIterations)
	}
	if m.addduration_ms != nil {
		fields = append(fields, agentexecution.FieldDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentExecutionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agentexecution.FieldLastSeq:
		return m.AddedLastSeq()
	case agentexecution.FieldLoopIterations:
		return m.AddedLoopIterations()
	case agentexecution.FieldDurationMs:
		return m.AddedDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentExecutionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agentexecution.FieldLastSeq:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLastSeq(v)
		return nil
	case agentexecution.FieldLoopIterations:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLoopIterations(v)
		return nil
	case agentexecution.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown AgentExecution numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentExecutionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agentexecution.FieldCompletedAt) {
		fields = append(fields, agentexecution.FieldCompletedAt)
	}
	if m.FieldCleared(agentexecution.FieldDurationMs) {
		fields = append(fields, agentexecution.FieldDurationMs)
	}
	if m.FieldCleared(agentexecution.FieldErrorMessage) {
		fields = append(fields, agentexecution.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentExecutionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentExecutionMutation) ClearField(name string) error {
	switch name {
	case agentexecution.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case agentexecution.FieldDurationMs:
		m.ClearDurationMs()
		return nil
	case agentexecution.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown AgentExecution nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentExecutionMutation) ResetField(name string) error {
	switch name {
	case agentexecution.FieldCompletionID:
		m.ResetCompletionID()
		return nil
	case agentexecution.FieldReportID:
		m.ResetReportID()
		return nil
	case agentexecution.FieldStatus:
		m.ResetStatus()
		return nil
	case agentexecution.FieldLastSeq:
		m.ResetLastSeq()
		return nil
	case agentexecution.FieldLoopIterations:
		m.ResetLoopIterations()
		return nil
	case agentexecution.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case agentexecution.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case agentexecution.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case agentexecution.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown AgentExecution field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentExecutionMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.completion != nil {
		edges = append(edges, agentexecution.EdgeCompletion)
	}
	if m.plan_decisions != nil {
		edges = append(edges, agentexecution.EdgePlanDecisions)
	}
	if m.tool_executions != nil {
		edges = append(edges, agentexecution.EdgeToolExecutions)
	}
	if m.context_snapshots != nil {
		edges = append(edges, agentexecution.EdgeContextSnapshots)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentExecutionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agentexecution.EdgeCompletion:
		if id := m.completion; id != nil {
			return []ent.Value{*id}
		}
	case agentexecution.EdgePlanDecisions:
		ids := make([]ent.Value, 0, len(m.plan_decisions))
		for id := range m.plan_decisions {
			ids = append(ids, id)
		}
		return ids
	case agentexecution.EdgeToolExecutions:
		ids := make([]ent.Value, 0, len(m.tool_executions))
		for id := range m.tool_executions {
			ids = append(ids, id)
		}
		return ids
	case agentexecution.EdgeContextSnapshots:
		ids := make([]ent.Value, 0, len(m.context_snapshots))
		for id := range m.context_snapshots {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentExecutionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedplan_decisions != nil {
		edges = append(edges, agentexecution.EdgePlanDecisions)
	}
	if m.removedtool_executions != nil {
		edges = append(edges, agentexecution.EdgeToolExecutions)
	}
	if m.removedcontext_snapshots != nil {
		edges = append(edges, agentexecution.EdgeContextSnapshots)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentExecutionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case agentexecution.EdgePlanDecisions:
		ids := make([]ent.Value, 0, len(m.removedplan_decisions))
		for id := range m.removedplan_decisions {
			ids = append(ids, id)
		}
		return ids
	case agentexecution.EdgeToolExecutions:
		ids := make([]ent.Value, 0, len(m.removedtool_executions))
		for id := range m.removedtool_executions {
			ids = append(ids, id)
		}
		return ids
	case agentexecution.EdgeContextSnapshots:
		ids := make([]ent.Value, 0, len(m.removedcontext_snapshots))
		for id := range m.removedcontext_snapshots {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentExecutionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedcompletion {
		edges = append(edges, agentexecution.EdgeCompletion)
	}
	if m.clearedplan_decisions {
		edges = append(edges, agentexecution.EdgePlanDecisions)
	}
	if m.clearedtool_executions {
		edges = append(edges, agentexecution.EdgeToolExecutions)
	}
	if m.clearedcontext_snapshots {
		edges = append(edges, agentexecution.EdgeContextSnapshots)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentExecutionMutation) EdgeCleared(name string) bool {
	switch name {
	case agentexecution.EdgeCompletion:
		return m.clearedcompletion
	case agentexecution.EdgePlanDecisions:
		return m.clearedplan_decisions
	case agentexecution.EdgeToolExecutions:
		return m.clearedtool_executions
	case agentexecution.EdgeContextSnapshots:
		return m.clearedcontext_snapshots
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentExecutionMutation) ClearEdge(name string) error {
	switch name {
	case agentexecution.EdgeCompletion:
		m.ClearCompletion()
		return nil
	}
	return fmt.Errorf("unknown AgentExecution unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentExecutionMutation) ResetEdge(name string) error {
	switch name {
	case agentexecution.EdgeCompletion:
		m.ResetCompletion()
		return nil
	case agentexecution.EdgePlanDecisions:
		m.ResetPlanDecisions()
		return nil
	case agentexecution.EdgeToolExecutions:
		m.ResetToolExecutions()
		return nil
	case agentexecution.EdgeContextSnapshots:
		m.ResetContextSnapshots()
		return nil
	}
	return fmt.Errorf("unknown AgentExecution edge %s", name)
}

// CompletionMutation represents an operation that mutates the Completion nodes in the graph.
type CompletionMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	parent_id               *string
	role                    *completion.Role
	prompt                  *map[string]interface{}
	completion              *map[string]interface{}
	status                  *completion.Status
	turn_index              *int
	addturn_index           *int
	sigkill                 *bool
	feedback_score          *int
	addfeedback_score       *int
	judge_scores            *map[string]interface{}
	error_message           *string
	usage                   *map[string]interface{}
	created_at              *time.Time
	updated_at              *time.Time
	clearedFields           map[string]struct{}
	report                  *string
	clearedreport           bool
	agent_executions        map[string]struct{}
	removedagent_executions map[string]struct{}
	clearedagent_executions bool
	blocks                  map[string]struct{}
	removedblocks           map[string]struct{}
	clearedblocks           bool
	done                    bool
	oldValue                func(context.Context) (*Completion, error)
	predicates              []predicate.Completion
}

var _ ent.Mutation = (*CompletionMutation)(nil)

// completionOption allows management of the mutation configuration using functional options.
type completionOption func(*CompletionMutation)

// newCompletionMutation creates new mutation for the Completion entity.
func newCompletionMutation(c config, op Op, opts ...completionOption) *CompletionMutation {
	m := &CompletionMutation{
		config:        c,
		op:            op,
		typ:           TypeCompletion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCompletionID sets the ID field of the mutation.
func withCompletionID(id string) completionOption {
	return func(m *CompletionMutation) {
		var (
			err   error
			once  sync.Once
			value *Completion
		)
		m.oldValue = func(ctx context.Context) (*Completion, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Completion.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCompletion sets the old Completion of the mutation.
func withCompletion(node *Completion) completionOption {
	return func(m *CompletionMutation) {
		m.oldValue = func(context.Context) (*Completion, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CompletionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CompletionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Completion entities.
func (m *CompletionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CompletionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CompletionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Completion.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetReportID sets the "report_id" field.
func (m *CompletionMutation) SetReportID(s string) {
	m.report = &s
}

// ReportID returns the value of the "report_id" field in the mutation.
func (m *CompletionMutation) ReportID() (r string, exists bool) {
	v := m.report
	if v == nil {
		return
	}
	return *v, true
}

// OldReportID returns the old "report_id" field's value of the Completion entity.
// If the Completion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompletionMutation) OldReportID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReportID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReportID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReportID: %w", err)
	}
	return oldValue.ReportID, nil
}

// ResetReportID resets all changes to the "report_id" field.
func (m *CompletionMutation) ResetReportID() {
	m.report = nil
}

// SetParentID sets the "parent_id" field.
func (m *CompletionMutation) SetParentID(s string) {
	m.parent_id = &s
}

// ParentID returns the value of the "parent_id" field in the mutation.
func (m *CompletionMutation) ParentID() (r string, exists bool) {
	v := m.parent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentID returns the old "parent_id" field's value of the Completion entity.
// If the Completion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompletionMutation) OldParentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentID: %w", err)
	}
	return oldValue.ParentID, nil
}

// ClearParentID clears the value of the "parent_id" field.
func (m *CompletionMutation) ClearParentID() {
	m.parent_id = nil
	m.clearedFields[completion.FieldParentID] = struct{}{}
}

// ParentIDCleared returns if the "parent_id" field was cleared in this mutation.
func (m *CompletionMutation) ParentIDCleared() bool {
	_, ok := m.clearedFields[completion.FieldParentID]
	return ok
}

// ResetParentID resets all changes to the "parent_id" field.
func (m *CompletionMutation) ResetParentID() {
	m.parent_id = nil
	delete(m.clearedFields, completion.FieldParentID)
}

// SetRole sets the "role" field.
func (m *CompletionMutation) SetRole(c completion.Role) {
	m.role = &c
}

// Role returns the value of the "role" field in the mutation.
func (m *CompletionMutation) Role() (r completion.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the Completion entity.
// If the Completion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompletionMutation) OldRole(ctx context.Context) (v completion.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *CompletionMutation) ResetRole() {
	m.role = nil
}

// SetPrompt sets the "prompt" field.
func (m *CompletionMutation) SetPrompt(value map[string]interface{}) {
	m.prompt = &value
}

// Prompt returns the value of the "prompt" field in the mutation.
func (m *CompletionMutation) Prompt() (r map[string]interface{}, exists bool) {
	v := m.prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldPrompt returns the old "prompt" field's value of the Completion entity.
// If the Completion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompletionMutation) OldPrompt(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrompt: %w", err)
	}
	return oldValue.Prompt, nil
}

// ClearPrompt clears the value of the "prompt" field.
func (m *CompletionMutation) ClearPrompt() {
	m.prompt = nil
	m.clearedFields[completion.FieldPrompt] = struct{}{}
}

// PromptCleared returns if the "prompt" field was cleared in this mutation.
func (m *CompletionMutation) PromptCleared() bool {
	_, ok := m.clearedFields[completion.FieldPrompt]
	return ok
}

// ResetPrompt resets all changes to the "prompt" field.
func (m *CompletionMutation) ResetPrompt() {
	m.prompt = nil
	delete(m.clearedFields, completion.FieldPrompt)
}

// SetCompletion sets the "completion" field.
func (m *CompletionMutation) SetCompletion(value map[string]interface{}) {
	m.completion = &value
}

// Completion returns the value of the "completion" field in the mutation.
func (m *CompletionMutation) Completion() (r map[string]interface{}, exists bool) {
	v := m.completion
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletion returns the old "completion" field's value of the Completion entity.
// If the Completion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompletionMutation) OldCompletion(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletion: %w", err)
	}
	return oldValue.Completion, nil
}

// ClearCompletion clears the value of the "completion" field.
func (m *CompletionMutation) ClearCompletion() {
	m.completion = nil
	m.clearedFields[completion.FieldCompletion] = struct{}{}
}

// CompletionCleared returns if the "completion" field was cleared in this mutation.
func (m *CompletionMutation) CompletionCleared() bool {
	_, ok := m.clearedFields[completion.FieldCompletion]
	return ok
}

// ResetCompletion resets all changes to the "completion" field.
func (m *CompletionMutation) ResetCompletion() {
	m.completion = nil
	delete(m.clearedFields, completion.FieldCompletion)
}

// SetStatus sets the "status" field.
func (m *CompletionMutation) SetStatus(c completion.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *CompletionMutation) Status() (r completion.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Completion entity.
// If the Completion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompletionMutation) OldStatus(ctx context.Context) (v completion.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *CompletionMutation) ResetStatus() {
	m.status = nil
}

// SetTurnIndex sets the "turn_index" field.
func (m *CompletionMutation) SetTurnIndex(i int) {
	m.turn_index = &i
	m.addturn_index = nil
}

// TurnIndex returns the value of the "turn_index" field in the mutation.
func (m *CompletionMutation) TurnIndex() (r int, exists bool) {
	v := m.turn_index
	if v == nil {
		return
	}
	return *v, true
}

// OldTurnIndex returns the old "turn_index" field's value of the Completion entity.
// If the Completion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompletionMutation) OldTurnIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTurnIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTurnIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTurnIndex: %w", err)
	}
	return oldValue.TurnIndex, nil
}

// AddTurnIndex adds i to the "turn_index" field.
func (m *CompletionMutation) AddTurnIndex(i int) {
	if m.addturn_index != nil {
		*m.addturn_index += i
	} else {
		m.addturn_index = &i
	}
}

// AddedTurnIndex returns the value that was added to the "turn_index" field in this mutation.
func (m *CompletionMutation) AddedTurnIndex() (r int, exists bool) {
	v := m.addturn_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetTurnIndex resets all changes to the "turn_index" field.
func (m *CompletionMutation) ResetTurnIndex() {
	m.turn_index = nil
	m.addturn_index = nil
}

// SetSigkill sets the "sigkill" field.
func (m *CompletionMutation) SetSigkill(b bool) {
	m.sigkill = &b
}

// Sigkill returns the value of the "sigkill" field in the mutation.
func (m *CompletionMutation) Sigkill() (r bool, exists bool) {
	v := m.sigkill
	if v == nil {
		return
	}
	return *v, true
}

// OldSigkill returns the old "sigkill" field's value of the Completion entity.
// If the Completion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompletionMutation) OldSigkill(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSigkill is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSigkill requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSigkill: %w", err)
	}
	return oldValue.Sigkill, nil
}

// ResetSigkill resets all changes to the "sigkill" field.
func (m *CompletionMutation) ResetSigkill() {
	m.sigkill = nil
}

// SetFeedbackScore sets the "feedback_score" field.
func (m *CompletionMutation) SetFeedbackScore(i int) {
	m.feedback_score = &i
	m.addfeedback_score = nil
}

// FeedbackScore returns the value of the "feedback_score" field in the mutation.
func (m *CompletionMutation) FeedbackScore() (r int, exists bool) {
	v := m.feedback_score
	if v == nil {
		return
	}
	return *v, true
}

// OldFeedbackScore returns the old "feedback_score" field's value of the Completion entity.
// If the Completion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompletionMutation) OldFeedbackScore(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFeedbackScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFeedbackScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFeedbackScore: %w", err)
	}
	return oldValue.FeedbackScore, nil
}

// AddFeedbackScore adds i to the "feedback_score" field.
func (m *CompletionMutation) AddFeedbackScore(i int) {
	if m.addfeedback_score != nil {
		*m.addfeedback_score += i
	} else {
		m.addfeedback_score = &i
	}
}

// AddedFeedbackScore returns the value that was added to the "feedback_score" field in this mutation.
func (m *CompletionMutation) AddedFeedbackScore() (r int, exists bool) {
	v := m.addfeedback_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearFeedbackScore clears the value of the "feedback_score" field.
func (m *CompletionMutation) ClearFeedbackScore() {
	m.feedback_score = nil
	m.addfeedback_score = nil
	m.clearedFields[completion.FieldFeedbackScore] = struct{}{}
}

// FeedbackScoreCleared returns if the "feedback_score" field was cleared in this mutation.
func (m *CompletionMutation) FeedbackScoreCleared() bool {
	_, ok := m.clearedFields[completion.FieldFeedbackScore]
	return ok
}

// ResetFeedbackScore resets all changes to the "feedback_score" field.
func (m *CompletionMutation) ResetFeedbackScore() {
	m.feedback_score = nil
	m.addfeedback_score = nil
	delete(m.clearedFields, completion.FieldFeedbackScore)
}

// SetJudgeScores sets the "judge_scores" field.
func (m *CompletionMutation) SetJudgeScores(value map[string]interface{}) {
	m.judge_scores = &value
}

// JudgeScores returns the value of the "judge_scores" field in the mutation.
func (m *CompletionMutation) JudgeScores() (r map[string]interface{}, exists bool) {
	v := m.judge_scores
	if v == nil {
		return
	}
	return *v, true
}

// OldJudgeScores returns the old "judge_scores" field's value of the Completion entity.
// If the Completion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompletionMutation) OldJudgeScores(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJudgeScores is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJudgeScores requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJudgeScores: %w", err)
	}
	return oldValue.JudgeScores, nil
}

// ClearJudgeScores clears the value of the "judge_scores" field.
func (m *CompletionMutation) ClearJudgeScores() {
	m.judge_scores = nil
	m.clearedFields[completion.FieldJudgeScores] = struct{}{}
}

// JudgeScoresCleared returns if the "judge_scores" field was cleared in this mutation.
func (m *CompletionMutation) JudgeScoresCleared() bool {
	_, ok := m.clearedFields[completion.FieldJudgeScores]
	return ok
}

// ResetJudgeScores resets all changes to the "judge_scores" field.
func (m *CompletionMutation) ResetJudgeScores() {
	m.judge_scores = nil
	delete(m.clearedFields, completion.FieldJudgeScores)
}

// SetErrorMessage sets the "error_message" field.
func (m *CompletionMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *CompletionMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Completion entity.
// If the Completion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompletionMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *CompletionMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[completion.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *CompletionMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[completion.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *CompletionMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, completion.FieldErrorMessage)
}

// SetUsage sets the "usage" field.
func (m *CompletionMutation) SetUsage(value map[string]interface{}) {
	m.usage = &value
}

// Usage returns the value of the "usage" field in the mutation.
func (m *CompletionMutation) Usage() (r map[string]interface{}, exists bool) {
	v := m.usage
	if v == nil {
		return
	}
	return *v, true
}

// OldUsage returns the old "usage" field's value of the Completion entity.
// If the Completion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompletionMutation) OldUsage(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsage: %w", err)
	}
	return oldValue.Usage, nil
}

// ClearUsage clears the value of the "usage" field.
func (m *CompletionMutation) ClearUsage() {
	m.usage = nil
	m.clearedFields[completion.FieldUsage] = struct{}{}
}

// UsageCleared returns if the "usage" field was cleared in this mutation.
func (m *CompletionMutation) UsageCleared() bool {
	_, ok := m.clearedFields[completion.FieldUsage]
	return ok
}

// ResetUsage resets all changes to the "usage" field.
func (m *CompletionMutation) ResetUsage() {
	m.usage = nil
	delete(m.clearedFields, completion.FieldUsage)
}

// SetCreatedAt sets the "created_at" field.
func (m *CompletionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CompletionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Completion entity.
// If the Completion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompletionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CompletionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CompletionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CompletionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Completion entity.
// If the Completion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompletionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CompletionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearReport clears the "report" edge to the Report entity.
func (m *CompletionMutation) ClearReport() {
	m.clearedreport = true
	m.clearedFields[completion.FieldReportID] = struct{}{}
}

// ReportCleared reports if the "report" edge to the Report entity was cleared.
func (m *CompletionMutation) ReportCleared() bool {
	return m.clearedreport
}

// ReportIDs returns the "report" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ReportID instead. It exists only for internal usage by the builders.
func (m *CompletionMutation) ReportIDs() (ids []string) {
	if id := m.report; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetReport resets all changes to the "report" edge.
func (m *CompletionMutation) ResetReport() {
	m.report = nil
	m.clearedreport = false
}

// AddAgentExecutionIDs adds the "agent_executions" edge to the AgentExecution entity by ids.
func (m *CompletionMutation) AddAgentExecutionIDs(ids ...string) {
	if m.agent_executions == nil {
		m.agent_executions = make(map[string]struct{})
	}
	for i := range ids {
		m.agent_executions[ids[i]] = struct{}{}
	}
}

// ClearAgentExecutions clears the "agent_executions" edge to the AgentExecution entity.
func (m *CompletionMutation) ClearAgentExecutions() {
	m.clearedagent_executions = true
}

// AgentExecutionsCleared reports if the "agent_executions" edge to the AgentExecution entity was cleared.
func (m *CompletionMutation) AgentExecutionsCleared() bool {
	return m.clearedagent_executions
}

// RemoveAgentExecutionIDs removes the "agent_executions" edge to the AgentExecution entity by IDs.
func (m *CompletionMutation) RemoveAgentExecutionIDs(ids ...string) {
	if m.removedagent_executions == nil {
		m.removedagent_executions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.agent_executions, ids[i])
		m.removedagent_executions[ids[i]] = struct{}{}
	}
}

// RemovedAgentExecutions returns the removed IDs of the "agent_executions" edge to the AgentExecution entity.
func (m *CompletionMutation) RemovedAgentExecutionsIDs() (ids []string) {
	for id := range m.removedagent_executions {
		ids = append(ids, id)
	}
	return
}

// AgentExecutionsIDs returns the "agent_executions" edge IDs in the mutation.
func (m *CompletionMutation) AgentExecutionsIDs() (ids []string) {
	for id := range m.agent_executions {
		ids = append(ids, id)
	}
	return
}

// ResetAgentExecutions resets all changes to the "agent_executions" edge.
func (m *CompletionMutation) ResetAgentExecutions() {
	m.agent_executions = nil
	m.clearedagent_executions = false
	m.removedagent_executions = nil
}

// AddBlockIDs adds the "blocks" edge to the CompletionBlock entity by ids.
func (m *CompletionMutation) AddBlockIDs(ids ...string) {
	if m.blocks == nil {
		m.blocks = make(map[string]struct{})
	}
	for i := range ids {
		m.blocks[ids[i]] = struct{}{}
	}
}

// ClearBlocks clears the "blocks" edge to the CompletionBlock entity.
func (m *CompletionMutation) ClearBlocks() {
	m.clearedblocks = true
}

// BlocksCleared reports if the "blocks" edge to the CompletionBlock entity was cleared.
func (m *CompletionMutation) BlocksCleared() bool {
	return m.clearedblocks
}

// RemoveBlockIDs removes the "blocks" edge to the CompletionBlock entity by IDs.
func (m *CompletionMutation) RemoveBlockIDs(ids ...string) {
	if m.removedblocks == nil {
		m.removedblocks = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.blocks, ids[i])
		m.removedblocks[ids[i]] = struct{}{}
	}
}

// RemovedBlocks returns the removed IDs of the "blocks" edge to the CompletionBlock entity.
func (m *CompletionMutation) RemovedBlocksIDs() (ids []string) {
	for id := range m.removedblocks {
		ids = append(ids, id)
	}
	return
}

// BlocksIDs returns the "blocks" edge IDs in the mutation.
func (m *CompletionMutation) BlocksIDs() (ids []string) {
	for id := range m.blocks {
		ids = append(ids, id)
	}
	return
}

// ResetBlocks resets all changes to the "blocks" edge.
func (m *CompletionMutation) ResetBlocks() {
	m.blocks = nil
	m.clearedblocks = false
	m.removedblocks = nil
}

// Where appends a list predicates to the CompletionMutation builder.
func (m *CompletionMutation) Where(ps ...predicate.Completion) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CompletionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CompletionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Completion, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CompletionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CompletionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Completion).
func (m *CompletionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CompletionMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.report != nil {
		fields = append(fields, completion.FieldReportID)
	}
	if m.parent_id != nil {
		fields = append(fields, completion.FieldParentID)
	}
	if m.role != nil {
		fields = append(fields, completion.FieldRole)
	}
	if m.prompt != nil {
		fields = append(fields, completion.FieldPrompt)
	}
	if m.completion != nil {
		fields = append(fields, completion.FieldCompletion)
	}
	if m.status != nil {
		fields = append(fields, completion.FieldStatus)
	}
	if m.turn_index != nil {
		fields = append(fields, completion.FieldTurnIndex)
	}
	if m.sigkill != nil {
		fields = append(fields, completion.FieldSigkill)
	}
	if m.feedback_score != nil {
		fields = append(fields, completion.FieldFeedbackScore)
	}
	if m.judge_scores != nil {
		fields = append(fields, completion.FieldJudgeScores)
	}
	if m.error_message != nil {
		fields = append(fields, completion.FieldErrorMessage)
	}
	if m.usage != nil {
		fields = append(fields, completion.FieldUsage)
	}
	if m.created_at != nil {
		fields = append(fields, completion.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, completion.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CompletionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case completion.FieldReportID:
		return m.ReportID()
	case completion.FieldParentID:
		return m.ParentID()
	case completion.FieldRole:
		return m.Role()
	case completion.FieldPrompt:
		return m.Prompt()
	case completion.FieldCompletion:
		return m.Completion()
	case completion.FieldStatus:
		return m.Status()
	case completion.FieldTurnIndex:
		return m.TurnIndex()
	case completion.FieldSigkill:
		return m.Sigkill()
	case completion.FieldFeedbackScore:
		return m.FeedbackScore()
	case completion.FieldJudgeScores:
		return m.JudgeScores()
	case completion.FieldErrorMessage:
		return m.ErrorMessage()
	case completion.FieldUsage:
		return m.Usage()
	case completion.FieldCreatedAt:
		return m.CreatedAt()
	case completion.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CompletionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case completion.FieldReportID:
		return m.OldReportID(ctx)
	case completion.FieldParentID:
		return m.OldParentID(ctx)
	case completion.FieldRole:
		return m.OldRole(ctx)
	case completion.FieldPrompt:
		return m.OldPrompt(ctx)
	case completion.FieldCompletion:
		return m.OldCompletion(ctx)
	case completion.FieldStatus:
		return m.OldStatus(ctx)
	case completion.FieldTurnIndex:
		return m.OldTurnIndex(ctx)
	case completion.FieldSigkill:
		return m.OldSigkill(ctx)
	case completion.FieldFeedbackScore:
		return m.OldFeedbackScore(ctx)
	case completion.FieldJudgeScores:
		return m.OldJudgeScores(ctx)
	case completion.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case completion.FieldUsage:
		return m.OldUsage(ctx)
	case completion.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case completion.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Completion field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CompletionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case completion.FieldReportID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReportID(v)
		return nil
	case completion.FieldParentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentID(v)
		return nil
	case completion.FieldRole:
		v, ok := value.(completion.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case completion.FieldPrompt:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrompt(v)
		return nil
	case completion.FieldCompletion:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletion(v)
		return nil
	case completion.FieldStatus:
		v, ok := value.(completion.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case completion.FieldTurnIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTurnIndex(v)
		return nil
	case completion.FieldSigkill:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSigkill(v)
		return nil
	case completion.FieldFeedbackScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFeedbackScore(v)
		return nil
	case completion.FieldJudgeScores:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJudgeScores(v)
		return nil
	case completion.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case completion.FieldUsage:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsage(v)
		return nil
	case completion.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case completion.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Completion field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CompletionMutation) AddedFields() []string {
	var fields []string
	if m.addturn_index != nil {
		fields = append(fields, completion.FieldTurnIndex)
	}
	if m.addfeedback_score != nil {
		fields = append(fields, completion.FieldFeedbackScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CompletionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case completion.FieldTurnIndex:
		return m.AddedTurnIndex()
	case completion.FieldFeedbackScore:
		return m.AddedFeedbackScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CompletionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case completion.FieldTurnIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTurnIndex(v)
		return nil
	case completion.FieldFeedbackScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFeedbackScore(v)
		return nil
	}
	return fmt.Errorf("unknown Completion numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CompletionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(completion.FieldParentID) {
		fields = append(fields, completion.FieldParentID)
	}
	if m.FieldCleared(completion.FieldPrompt) {
		fields = append(fields, completion.FieldPrompt)
	}
	if m.FieldCleared(completion.FieldCompletion) {
		fields = append(fields, completion.FieldCompletion)
	}
	if m.FieldCleared(completion.FieldFeedbackScore) {
		fields = append(fields, completion.FieldFeedbackScore)
	}
	if m.FieldCleared(completion.FieldJudgeScores) {
		fields = append(fields, completion.FieldJudgeScores)
	}
	if m.FieldCleared(completion.FieldErrorMessage) {
		fields = append(fields, completion.FieldErrorMessage)
	}
	if m.FieldCleared(completion.FieldUsage) {
		fields = append(fields, completion.FieldUsage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CompletionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CompletionMutation) ClearField(name string) error {
	switch name {
	case completion.FieldParentID:
		m.ClearParentID()
		return nil
	case completion.FieldPrompt:
		m.ClearPrompt()
		return nil
	case completion.FieldCompletion:
		m.ClearCompletion()
		return nil
	case completion.FieldFeedbackScore:
		m.ClearFeedbackScore()
		return nil
	case completion.FieldJudgeScores:
		m.ClearJudgeScores()
		return nil
	case completion.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case completion.FieldUsage:
		m.ClearUsage()
		return nil
	}
	return fmt.Errorf("unknown Completion nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CompletionMutation) ResetField(name string) error {
	switch name {
	case completion.FieldReportID:
		m.ResetReportID()
		return nil
	case completion.FieldParentID:
		m.ResetParentID()
		return nil
	case completion.FieldRole:
		m.ResetRole()
		return nil
	case completion.FieldPrompt:
		m.ResetPrompt()
		return nil
	case completion.FieldCompletion:
		m.ResetCompletion()
		return nil
	case completion.FieldStatus:
		m.ResetStatus()
		return nil
	case completion.FieldTurnIndex:
		m.ResetTurnIndex()
		return nil
	case completion.FieldSigkill:
		m.ResetSigkill()
		return nil
	case completion.FieldFeedbackScore:
		m.ResetFeedbackScore()
		return nil
	case completion.FieldJudgeScores:
		m.ResetJudgeScores()
		return nil
	case completion.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case completion.FieldUsage:
		m.ResetUsage()
		return nil
	case completion.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case completion.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Completion field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CompletionMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.report != nil {
		edges = append(edges, completion.EdgeReport)
	}
	if m.agent_executions != nil {
		edges = append(edges, completion.EdgeAgentExecutions)
	}
	if m.blocks != nil {
		edges = append(edges, completion.EdgeBlocks)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CompletionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case completion.EdgeReport:
		if id := m.report; id != nil {
			return []ent.Value{*id}
		}
	case completion.EdgeAgentExecutions:
		ids := make([]ent.Value, 0, len(m.agent_executions))
		for id := range m.agent_executions {
			ids = append(ids, id)
		}
		return ids
	case completion.EdgeBlocks:
		ids := make([]ent.Value, 0, len(m.blocks))
		for id := range m.blocks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CompletionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedagent_executions != nil {
		edges = append(edges, completion.EdgeAgentExecutions)
	}
	if m.removedblocks != nil {
		edges = append(edges, completion.EdgeBlocks)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CompletionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case completion.EdgeAgentExecutions:
		ids := make([]ent.Value, 0, len(m.removedagent_executions))
		for id := range m.removedagent_executions {
			ids = append(ids, id)
		}
		return ids
	case completion.EdgeBlocks:
		ids := make([]ent.Value, 0, len(m.removedblocks))
		for id := range m.removedblocks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CompletionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedreport {
		edges = append(edges, completion.EdgeReport)
	}
	if m.clearedagent_executions {
		edges = append(edges, completion.EdgeAgentExecutions)
	}
	if m.clearedblocks {
		edges = append(edges, completion.EdgeBlocks)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CompletionMutation) EdgeCleared(name string) bool {
	switch name {
	case completion.EdgeReport:
		return m.clearedreport
	case completion.EdgeAgentExecutions:
		return m.clearedagent_executions
	case completion.EdgeBlocks:
		return m.clearedblocks
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CompletionMutation) ClearEdge(name string) error {
	switch name {
	case completion.EdgeReport:
		m.ClearReport()
		return nil
	}
	return fmt.Errorf("unknown Completion unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CompletionMutation) ResetEdge(name string) error {
	switch name {
	case completion.EdgeReport:
		m.ResetReport()
		return nil
	case completion.EdgeAgentExecutions:
		m.ResetAgentExecutions()
		return nil
	case completion.EdgeBlocks:
		m.ResetBlocks()
		return nil
	}
	return fmt.Errorf("unknown Completion edge %s", name)
}

// CompletionBlockMutation represents an operation that mutates the CompletionBlock nodes in the graph.
type CompletionBlockMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	agent_execution_id    *string
	seq                   *int
	addseq                *int
	block_index           *int
	addblock_index        *int
	content               *string
	reasoning             *string
	status                *completionblock.Status
	error_message         *string
	created_at            *time.Time
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	parent                *string
	clearedparent         bool
	plan_decision         *string
	clearedplan_decision  bool
	tool_execution        *string
	clearedtool_execution bool
	done                  bool
	oldValue              func(context.Context) (*CompletionBlock, error)
	predicates            []predicate.CompletionBlock
}

var _ ent.Mutation = (*CompletionBlockMutation)(nil)

// completionblockOption allows management of the mutation configuration using functional options.
type completionblockOption func(*CompletionBlockMutation)

// newCompletionBlockMutation creates new mutation for the CompletionBlock entity.
func newCompletionBlockMutation(c config, op Op, opts ...completionblockOption) *CompletionBlockMutation {
	m := &CompletionBlockMutation{
		config:        c,
		op:            op,
		typ:           TypeCompletionBlock,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCompletionBlockID sets the ID field of the mutation.
func withCompletionBlockID(id string) completionblockOption {
	return func(m *CompletionBlockMutation) {
		var (
			err   error
			once  sync.Once
			value *CompletionBlock
		)
		m.oldValue = func(ctx context.Context) (*CompletionBlock, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CompletionBlock.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCompletionBlock sets the old CompletionBlock of the mutation.
func withCompletionBlock(node *CompletionBlock) completionblockOption {
	return func(m *CompletionBlockMutation) {
		m.oldValue = func(context.Context) (*CompletionBlock, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CompletionBlockMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CompletionBlockMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CompletionBlock entities.
func (m *CompletionBlockMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CompletionBlockMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CompletionBlockMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CompletionBlock.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCompletionID sets the "completion_id" field.
func (m *CompletionBlockMutation) SetCompletionID(s string) {
	m.parent = &s
}

// CompletionID returns the value of the "completion_id" field in the mutation.
func (m *CompletionBlockMutation) CompletionID() (r string, exists bool) {
	v := m.parent
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletionID returns the old "completion_id" field's value of the CompletionBlock entity.
// If the CompletionBlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompletionBlockMutation) OldCompletionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletionID: %w", err)
	}
	return oldValue.CompletionID, nil
}

// ResetCompletionID resets all changes to the "completion_id" field.
func (m *CompletionBlockMutation) ResetCompletionID() {
	m.parent = nil
}

// SetAgentExecutionID sets the "agent_execution_id" field.
func (m *CompletionBlockMutation) SetAgentExecutionID(s string) {
	m.agent_execution_id = &s
}

// AgentExecutionID returns the value of the "agent_execution_id" field in the mutation.
func (m *CompletionBlockMutation) AgentExecutionID() (r string, exists bool) {
	v := m.agent_execution_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentExecutionID returns the old "agent_execution_id" field's value of the CompletionBlock entity.
// If the CompletionBlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompletionBlockMutation) OldAgentExecutionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentExecutionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentExecutionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentExecutionID: %w", err)
	}
	return oldValue.AgentExecutionID, nil
}

// ResetAgentExecutionID resets all changes to the "agent_execution_id" field.
func (m *CompletionBlockMutation) ResetAgentExecutionID() {
	m.agent_execution_id = nil
}

// SetPlanDecisionID sets the "plan_decision_id" field.
func (m *CompletionBlockMutation) SetPlanDecisionID(s string) {
	m.plan_decision = &s
}

// PlanDecisionID returns the value of the "plan_decision_id" field in the mutation.
func (m *CompletionBlockMutation) PlanDecisionID() (r string, exists bool) {
	v := m.plan_decision
	if v == nil {
		return
	}
	return *v, true
}

// OldPlanDecisionID returns the old "plan_decision_id" field's value of the CompletionBlock entity.
// If the CompletionBlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompletionBlockMutation) OldPlanDecisionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlanDecisionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlanDecisionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlanDecisionID: %w", err)
	}
	return oldValue.PlanDecisionID, nil
}

// ClearPlanDecisionID clears the value of the "plan_decision_id" field.
func (m *CompletionBlockMutation) ClearPlanDecisionID() {
	m.plan_decision = nil
	m.clearedFields[completionblock.FieldPlanDecisionID] = struct{}{}
}

// PlanDecisionIDCleared returns if the "plan_decision_id" field was cleared in this mutation.
func (m *CompletionBlockMutation) PlanDecisionIDCleared() bool {
	_, ok := m.clearedFields[completionblock.FieldPlanDecisionID]
	return ok
}

// ResetPlanDecisionID resets all changes to the "plan_decision_id" field.
func (m *CompletionBlockMutation) ResetPlanDecisionID() {
	m.plan_decision = nil
	delete(m.clearedFields, completionblock.FieldPlanDecisionID)
}

// SetToolExecutionID sets the "tool_execution_id" field.
func (m *CompletionBlockMutation) SetToolExecutionID(s string) {
	m.tool_execution = &s
}

// ToolExecutionID returns the value of the "tool_execution_id" field in the mutation.
func (m *CompletionBlockMutation) ToolExecutionID() (r string, exists bool) {
	v := m.tool_execution
	if v == nil {
		return
	}
	return *v, true
}

// OldToolExecutionID returns the old "tool_execution_id" field's value of the CompletionBlock entity.
// If the CompletionBlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompletionBlockMutation) OldToolExecutionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolExecutionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolExecutionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolExecutionID: %w", err)
	}
	return oldValue.ToolExecutionID, nil
}

// ClearToolExecutionID clears the value of the "tool_execution_id" field.
func (m *CompletionBlockMutation) ClearToolExecutionID() {
	m.tool_execution = nil
	m.clearedFields[completionblock.FieldToolExecutionID] = struct{}{}
}

// ToolExecutionIDCleared returns if the "tool_execution_id" field was cleared in this mutation.
func (m *CompletionBlockMutation) ToolExecutionIDCleared() bool {
	_, ok := m.clearedFields[completionblock.FieldToolExecutionID]
	return ok
}

// ResetToolExecutionID resets all changes to the "tool_execution_id" field.
func (m *CompletionBlockMutation) ResetToolExecutionID() {
	m.tool_execution = nil
	delete(m.clearedFields, completionblock.FieldToolExecutionID)
}

// SetSeq sets the "seq" field.
func (m *CompletionBlockMutation) SetSeq(i int) {
	m.seq = &i
	m.addseq = nil
}

// Seq returns the value of the "seq" field in the mutation.
func (m *CompletionBlockMutation) Seq() (r int, exists bool) {
	v := m.seq
	if v == nil {
		return
	}
	return *v, true
}

// OldSeq returns the old "seq" field's value of the CompletionBlock entity.
// If the CompletionBlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompletionBlockMutation) OldSeq(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeq is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeq requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeq: %w", err)
	}
	return oldValue.Seq, nil
}

// AddSeq adds i to the "seq" field.
func (m *CompletionBlockMutation) AddSeq(i int) {
	if m.addseq != nil {
		*m.addseq += i
	} else {
		m.addseq = &i
	}
}

// AddedSeq returns the value that was added to the "seq" field in this mutation.
func (m *CompletionBlockMutation) AddedSeq() (r int, exists bool) {
	v := m.addseq
	if v == nil {
		return
	}
	return *v, true
}

// ResetSeq resets all changes to the "seq" field.
func (m *CompletionBlockMutation) ResetSeq() {
	m.seq = nil
	m.addseq = nil
}

// SetBlockIndex sets the "block_index" field.
func (m *CompletionBlockMutation) SetBlockIndex(i int) {
	m.block_index = &i
	m.addblock_index = nil
}

// BlockIndex returns the value of the "block_index" field in the mutation.
func (m *CompletionBlockMutation) BlockIndex() (r int, exists bool) {
	v := m.block_index
	if v == nil {
		return
	}
	return *v, true
}

// OldBlockIndex returns the old "block_index" field's value of the CompletionBlock entity.
// If the CompletionBlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompletionBlockMutation) OldBlockIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlockIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlockIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlockIndex: %w", err)
	}
	return oldValue.BlockIndex, nil
}

// AddBlockIndex adds i to the "block_index" field.
func (m *CompletionBlockMutation) AddBlockIndex(i int) {
	if m.addblock_index != nil {
		*m.addblock_index += i
	} else {
		m.addblock_index = &i
	}
}

// AddedBlockIndex returns the value that was added to the "block_index" field in this mutation.
func (m *CompletionBlockMutation) AddedBlockIndex() (r int, exists bool) {
	v := m.addblock_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetBlockIndex resets all changes to the "block_index" field.
func (m *CompletionBlockMutation) ResetBlockIndex() {
	m.block_index = nil
	m.addblock_index = nil
}

// SetContent sets the "content" field.
func (m *CompletionBlockMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *CompletionBlockMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the CompletionBlock entity.
// If the CompletionBlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompletionBlockMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *CompletionBlockMutation) ResetContent() {
	m.content = nil
}

// SetReasoning sets the "reasoning" field.
func (m *CompletionBlockMutation) SetReasoning(s string) {
	m.reasoning = &s
}

// Reasoning returns the value of the "reasoning" field in the mutation.
func (m *CompletionBlockMutation) Reasoning() (r string, exists bool) {
	v := m.reasoning
	if v == nil {
		return
	}
	return *v, true
}

// OldReasoning returns the old "reasoning" field's value of the CompletionBlock entity.
// If the CompletionBlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompletionBlockMutation) OldReasoning(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReasoning is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReasoning requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReasoning: %w", err)
	}
	return oldValue.Reasoning, nil
}

// ResetReasoning resets all changes to the "reasoning" field.
func (m *CompletionBlockMutation) ResetReasoning() {
	m.reasoning = nil
}

// SetStatus sets the "status" field.
func (m *CompletionBlockMutation) SetStatus(c completionblock.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *CompletionBlockMutation) Status() (r completionblock.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the CompletionBlock entity.
// If the CompletionBlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompletionBlockMutation) OldStatus(ctx context.Context) (v completionblock.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *CompletionBlockMutation) ResetStatus() {
	m.status = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *CompletionBlockMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *CompletionBlockMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the CompletionBlock entity.
// If the CompletionBlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompletionBlockMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *CompletionBlockMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[completionblock.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *CompletionBlockMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[completionblock.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *CompletionBlockMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, completionblock.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *CompletionBlockMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CompletionBlockMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CompletionBlock entity.
// If the CompletionBlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompletionBlockMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CompletionBlockMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CompletionBlockMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CompletionBlockMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the CompletionBlock entity.
// If the CompletionBlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompletionBlockMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CompletionBlockMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetParentID sets the "parent" edge to the Completion entity by id.
func (m *CompletionBlockMutation) SetParentID(id string) {
	m.parent = &id
}

// ClearParent clears the "parent" edge to the Completion entity.
func (m *CompletionBlockMutation) ClearParent() {
	m.clearedparent = true
	m.clearedFields[completionblock.FieldCompletionID] = struct{}{}
}

// ParentCleared reports if the "parent" edge to the Completion entity was cleared.
func (m *CompletionBlockMutation) ParentCleared() bool {
	return m.clearedparent
}

// ParentID returns the "parent" edge ID in the mutation.
func (m *CompletionBlockMutation) ParentID() (id string, exists bool) {
	if m.parent != nil {
		return *m.parent, true
	}
	return
}

// ParentIDs returns the "parent" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ParentID instead. It exists only for internal usage by the builders.
func (m *CompletionBlockMutation) ParentIDs() (ids []string) {
	if id := m.parent; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetParent resets all changes to the "parent" edge.
func (m *CompletionBlockMutation) ResetParent() {
	m.parent = nil
	m.clearedparent = false
}

// ClearPlanDecision clears the "plan_decision" edge to the PlanDecision entity.
func (m *CompletionBlockMutation) ClearPlanDecision() {
	m.clearedplan_decision = true
	m.clearedFields[completionblock.FieldPlanDecisionID] = struct{}{}
}

// PlanDecisionCleared reports if the "plan_decision" edge to the PlanDecision entity was cleared.
func (m *CompletionBlockMutation) PlanDecisionCleared() bool {
	return m.PlanDecisionIDCleared() || m.clearedplan_decision
}

// PlanDecisionIDs returns the "plan_decision" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PlanDecisionID instead. It exists only for internal usage by the builders.
func (m *CompletionBlockMutation) PlanDecisionIDs() (ids []string) {
	if id := m.plan_decision; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPlanDecision resets all changes to the "plan_decision" edge.
func (m *CompletionBlockMutation) ResetPlanDecision() {
	m.plan_decision = nil
	m.clearedplan_decision = false
}

// ClearToolExecution clears the "tool_execution" edge to the ToolExecution entity.
func (m *CompletionBlockMutation) ClearToolExecution() {
	m.clearedtool_execution = true
	m.clearedFields[completionblock.FieldToolExecutionID] = struct{}{}
}

// ToolExecutionCleared reports if the "tool_execution" edge to the ToolExecution entity was cleared.
func (m *CompletionBlockMutation) ToolExecutionCleared() bool {
	return m.ToolExecutionIDCleared() || m.clearedtool_execution
}

// ToolExecutionIDs returns the "tool_execution" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ToolExecutionID instead. It exists only for internal usage by the builders.
func (m *CompletionBlockMutation) ToolExecutionIDs() (ids []string) {
	if id := m.tool_execution; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetToolExecution resets all changes to the "tool_execution" edge.
func (m *CompletionBlockMutation) ResetToolExecution() {
	m.tool_execution = nil
	m.clearedtool_execution = false
}

// Where appends a list predicates to the CompletionBlockMutation builder.
func (m *CompletionBlockMutation) Where(ps ...predicate.CompletionBlock) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CompletionBlockMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CompletionBlockMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CompletionBlock, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CompletionBlockMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CompletionBlockMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CompletionBlock).
func (m *CompletionBlockMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CompletionBlockMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.parent != nil {
		fields = append(fields, completionblock.FieldCompletionID)
	}
	if m.agent_execution_id != nil {
		fields = append(fields, completionblock.FieldAgentExecutionID)
	}
	if m.plan_decision != nil {
		fields = append(fields, completionblock.FieldPlanDecisionID)
	}
	if m.tool_execution != nil {
		fields = append(fields, completionblock.FieldToolExecutionID)
	}
	if m.seq != nil {
		fields = append(fields, completionblock.FieldSeq)
	}
	if m.block_index != nil {
		fields = append(fields, completionblock.FieldBlockIndex)
	}
	if m.content != nil {
		fields = append(fields, completionblock.FieldContent)
	}
	if m.reasoning != nil {
		fields = append(fields, completionblock.FieldReasoning)
	}
	if m.status != nil {
		fields = append(fields, completionblock.FieldStatus)
	}
	if m.error_message != nil {
		fields = append(fields, completionblock.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, completionblock.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, completionblock.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CompletionBlockMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case completionblock.FieldCompletionID:
		return m.CompletionID()
	case completionblock.FieldAgentExecutionID:
		return m.AgentExecutionID()
	case completionblock.FieldPlanDecisionID:
		return m.PlanDecisionID()
	case completionblock.FieldToolExecutionID:
		return m.ToolExecutionID()
	case completionblock.FieldSeq:
		return m.Seq()
	case completionblock.FieldBlockIndex:
		return m.BlockIndex()
	case completionblock.FieldContent:
		return m.Content()
	case completionblock.FieldReasoning:
		return m.Reasoning()
	case completionblock.FieldStatus:
		return m.Status()
	case completionblock.FieldErrorMessage:
		return m.ErrorMessage()
	case completionblock.FieldCreatedAt:
		return m.CreatedAt()
	case completionblock.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CompletionBlockMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case completionblock.FieldCompletionID:
		return m.OldCompletionID(ctx)
	case completionblock.FieldAgentExecutionID:
		return m.OldAgentExecutionID(ctx)
	case completionblock.FieldPlanDecisionID:
		return m.OldPlanDecisionID(ctx)
	case completionblock.FieldToolExecutionID:
		return m.OldToolExecutionID(ctx)
	case completionblock.FieldSeq:
		return m.OldSeq(ctx)
	case completionblock.FieldBlockIndex:
		return m.OldBlockIndex(ctx)
	case completionblock.FieldContent:
		return m.OldContent(ctx)
	case completionblock.FieldReasoning:
		return m.OldReasoning(ctx)
	case completionblock.FieldStatus:
		return m.OldStatus(ctx)
	case completionblock.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case completionblock.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case completionblock.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CompletionBlock field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CompletionBlockMutation) SetField(name string, value ent.Value) error {
	switch name {
	case completionblock.FieldCompletionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletionID(v)
		return nil
	case completionblock.FieldAgentExecutionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentExecutionID(v)
		return nil
	case completionblock.FieldPlanDecisionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlanDecisionID(v)
		return nil
	case completionblock.FieldToolExecutionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolExecutionID(v)
		return nil
	case completionblock.FieldSeq:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeq(v)
		return nil
	case completionblock.FieldBlockIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlockIndex(v)
		return nil
	case completionblock.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case completionblock.FieldReasoning:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReasoning(v)
		return nil
	case completionblock.FieldStatus:
		v, ok := value.(completionblock.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case completionblock.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case completionblock.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case completionblock.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CompletionBlock field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CompletionBlockMutation) AddedFields() []string {
	var fields []string
	if m.addseq != nil {
		fields = append(fields, completionblock.FieldSeq)
	}
	if m.addblock_index != nil {
		fields = append(fields, completionblock.FieldBlockIndex)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CompletionBlockMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case completionblock.FieldSeq:
		return m.AddedSeq()
	case completionblock.FieldBlockIndex:
		return m.AddedBlockIndex()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CompletionBlockMutation) AddField(name string, value ent.Value) error {
	switch name {
	case completionblock.FieldSeq:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSeq(v)
		return nil
	case completionblock.FieldBlockIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBlockIndex(v)
		return nil
	}
	return fmt.Errorf("unknown CompletionBlock numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CompletionBlockMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(completionblock.FieldPlanDecisionID) {
		fields = append(fields, completionblock.FieldPlanDecisionID)
	}
	if m.FieldCleared(completionblock.FieldToolExecutionID) {
		fields = append(fields, completionblock.FieldToolExecutionID)
	}
	if m.FieldCleared(completionblock.FieldErrorMessage) {
		fields = append(fields, completionblock.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CompletionBlockMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CompletionBlockMutation) ClearField(name string) error {
	switch name {
	case completionblock.FieldPlanDecisionID:
		m.ClearPlanDecisionID()
		return nil
	case completionblock.FieldToolExecutionID:
		m.ClearToolExecutionID()
		return nil
	case completionblock.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown CompletionBlock nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CompletionBlockMutation) ResetField(name string) error {
	switch name {
	case completionblock.FieldCompletionID:
		m.ResetCompletionID()
		return nil
	case completionblock.FieldAgentExecutionID:
		m.ResetAgentExecutionID()
		return nil
	case completionblock.FieldPlanDecisionID:
		m.ResetPlanDecisionID()
		return nil
	case completionblock.FieldToolExecutionID:
		m.ResetToolExecutionID()
		return nil
	case completionblock.FieldSeq:
		m.ResetSeq()
		return nil
	case completionblock.FieldBlockIndex:
		m.ResetBlockIndex()
		return nil
	case completionblock.FieldContent:
		m.ResetContent()
		return nil
	case completionblock.FieldReasoning:
		m.ResetReasoning()
		return nil
	case completionblock.FieldStatus:
		m.ResetStatus()
		return nil
	case completionblock.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case completionblock.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case completionblock.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown CompletionBlock field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CompletionBlockMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.parent != nil {
		edges = append(edges, completionblock.EdgeParent)
	}
	if m.plan_decision != nil {
		edges = append(edges, completionblock.EdgePlanDecision)
	}
	if m.tool_execution != nil {
		edges = append(edges, completionblock.EdgeToolExecution)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CompletionBlockMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case completionblock.EdgeParent:
		if id := m.parent; id != nil {
			return []ent.Value{*id}
		}
	case completionblock.EdgePlanDecision:
		if id := m.plan_decision; id != nil {
			return []ent.Value{*id}
		}
	case completionblock.EdgeToolExecution:
		if id := m.tool_execution; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CompletionBlockMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CompletionBlockMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CompletionBlockMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedparent {
		edges = append(edges, completionblock.EdgeParent)
	}
	if m.clearedplan_decision {
		edges = append(edges, completionblock.EdgePlanDecision)
	}
	if m.clearedtool_execution {
		edges = append(edges, completionblock.EdgeToolExecution)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CompletionBlockMutation) EdgeCleared(name string) bool {
	switch name {
	case completionblock.EdgeParent:
		return m.clearedparent
	case completionblock.EdgePlanDecision:
		return m.clearedplan_decision
	case completionblock.EdgeToolExecution:
		return m.clearedtool_execution
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CompletionBlockMutation) ClearEdge(name string) error {
	switch name {
	case completionblock.EdgeParent:
		m.ClearParent()
		return nil
	case completionblock.EdgePlanDecision:
		m.ClearPlanDecision()
		return nil
	case completionblock.EdgeToolExecution:
		m.ClearToolExecution()
		return nil
	}
	return fmt.Errorf("unknown CompletionBlock unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CompletionBlockMutation) ResetEdge(name string) error {
	switch name {
	case completionblock.EdgeParent:
		m.ResetParent()
		return nil
	case completionblock.EdgePlanDecision:
		m.ResetPlanDecision()
		return nil
	case completionblock.EdgeToolExecution:
		m.ResetToolExecution()
		return nil
	}
	return fmt.Errorf("unknown CompletionBlock edge %s", name)
}

// ContextSnapshotMutation represents an operation that mutates the ContextSnapshot nodes in the graph.
type ContextSnapshotMutation struct {
	config
	op               Op
	typ              string
	id               *string
	completion_id    *string
	kind             *contextsnapshot.Kind
	loop_index       *int
	addloop_index    *int
	payload          *map[string]interface{}
	created_at       *time.Time
	clearedFields    map[string]struct{}
	execution        *string
	clearedexecution bool
	done             bool
	oldValue         func(context.Context) (*ContextSnapshot, error)
	predicates       []predicate.ContextSnapshot
}

var _ ent.Mutation = (*ContextSnapshotMutation)(nil)

// contextsnapshotOption allows management of the mutation configuration using functional options.
type contextsnapshotOption func(*ContextSnapshotMutation)

// newContextSnapshotMutation creates new mutation for the ContextSnapshot entity.
func newContextSnapshotMutation(c config, op Op, opts ...contextsnapshotOption) *ContextSnapshotMutation {
	m := &ContextSnapshotMutation{
		config:        c,
		op:            op,
		typ:           TypeContextSnapshot,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withContextSnapshotID sets the ID field of the mutation.
func withContextSnapshotID(id string) contextsnapshotOption {
	return func(m *ContextSnapshotMutation) {
		var (
			err   error
			once  sync.Once
			value *ContextSnapshot
		)
		m.oldValue = func(ctx context.Context) (*ContextSnapshot, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ContextSnapshot.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withContextSnapshot sets the old ContextSnapshot of the mutation.
func withContextSnapshot(node *ContextSnapshot) contextsnapshotOption {
	return func(m *ContextSnapshotMutation) {
		m.oldValue = func(context.Context) (*ContextSnapshot, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ContextSnapshotMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ContextSnapshotMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ContextSnapshot entities.
func (m *ContextSnapshotMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ContextSnapshotMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ContextSnapshotMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ContextSnapshot.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentExecutionID sets the "agent_execution_id" field.
func (m *ContextSnapshotMutation) SetAgentExecutionID(s string) {
	m.execution = &s
}

// AgentExecutionID returns the value of the "agent_execution_id" field in the mutation.
func (m *ContextSnapshotMutation) AgentExecutionID() (r string, exists bool) {
	v := m.execution
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentExecutionID returns the old "agent_execution_id" field's value of the ContextSnapshot entity.
// If the ContextSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContextSnapshotMutation) OldAgentExecutionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentExecutionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentExecutionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentExecutionID: %w", err)
	}
	return oldValue.AgentExecutionID, nil
}

// ResetAgentExecutionID resets all changes to the "agent_execution_id" field.
func (m *ContextSnapshotMutation) ResetAgentExecutionID() {
	m.execution = nil
}

// SetCompletionID sets the "completion_id" field.
func (m *ContextSnapshotMutation) SetCompletionID(s string) {
	m.completion_id = &s
}

// CompletionID returns the value of the "completion_id" field in the mutation.
func (m *ContextSnapshotMutation) CompletionID() (r string, exists bool) {
	v := m.completion_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletionID returns the old "completion_id" field's value of the ContextSnapshot entity.
// If the ContextSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContextSnapshotMutation) OldCompletionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletionID: %w", err)
	}
	return oldValue.CompletionID, nil
}

// ResetCompletionID resets all changes to the "completion_id" field.
func (m *ContextSnapshotMutation) ResetCompletionID() {
	m.completion_id = nil
}

// SetKind sets the "kind" field.
func (m *ContextSnapshotMutation) SetKind(c contextsnapshot.Kind) {
	m.kind = &c
}

// Kind returns the value of the "kind" field in the mutation.
func (m *ContextSnapshotMutation) Kind() (r contextsnapshot.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the ContextSnapshot entity.
// If the ContextSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContextSnapshotMutation) OldKind(ctx context.Context) (v contextsnapshot.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *ContextSnapshotMutation) ResetKind() {
	m.kind = nil
}

// SetLoopIndex sets the "loop_index" field.
func (m *ContextSnapshotMutation) SetLoopIndex(i int) {
	m.loop_index = &i
	m.addloop_index = nil
}

// LoopIndex returns the value of the "loop_index" field in the mutation.
func (m *ContextSnapshotMutation) LoopIndex() (r int, exists bool) {
	v := m.loop_index
	if v == nil {
		return
	}
	return *v, true
}

// OldLoopIndex returns the old "loop_index" field's value of the ContextSnapshot entity.
// If the ContextSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContextSnapshotMutation) OldLoopIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLoopIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLoopIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLoopIndex: %w", err)
	}
	return oldValue.LoopIndex, nil
}

// AddLoopIndex adds i to the "loop_index" field.
func (m *ContextSnapshotMutation) AddLoopIndex(i int) {
	if m.addloop_index != nil {
		*m.addloop_index += i
	} else {
		m.addloop_index = &i
	}
}

// AddedLoopIndex returns the value that was added to the "loop_index" field in this mutation.
func (m *ContextSnapshotMutation) AddedLoopIndex() (r int, exists bool) {
	v := m.addloop_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetLoopIndex resets all changes to the "loop_index" field.
func (m *ContextSnapshotMutation) ResetLoopIndex() {
	m.loop_index = nil
	m.addloop_index = nil
}

// SetPayload sets the "payload" field.
func (m *ContextSnapshotMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *ContextSnapshotMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the ContextSnapshot entity.
// If the ContextSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContextSnapshotMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *ContextSnapshotMutation) ResetPayload() {
	m.payload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ContextSnapshotMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ContextSnapshotMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ContextSnapshot entity.
// If the ContextSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContextSnapshotMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ContextSnapshotMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetExecutionID sets the "execution" edge to the AgentExecution entity by id.
func (m *ContextSnapshotMutation) SetExecutionID(id string) {
	m.execution = &id
}

// ClearExecution clears the "execution" edge to the AgentExecution entity.
func (m *ContextSnapshotMutation) ClearExecution() {
	m.clearedexecution = true
	m.clearedFields[contextsnapshot.FieldAgentExecutionID] = struct{}{}
}

// ExecutionCleared reports if the "execution" edge to the AgentExecution entity was cleared.
func (m *ContextSnapshotMutation) ExecutionCleared() bool {
	return m.clearedexecution
}

// ExecutionID returns the "execution" edge ID in the mutation.
func (m *ContextSnapshotMutation) ExecutionID() (id string, exists bool) {
	if m.execution != nil {
		return *m.execution, true
	}
	return
}

// ExecutionIDs returns the "execution" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ExecutionID instead. It exists only for internal usage by the builders.
func (m *ContextSnapshotMutation) ExecutionIDs() (ids []string) {
	if id := m.execution; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetExecution resets all changes to the "execution" edge.
func (m *ContextSnapshotMutation) ResetExecution() {
	m.execution = nil
	m.clearedexecution = false
}

// Where appends a list predicates to the ContextSnapshotMutation builder.
func (m *ContextSnapshotMutation) Where(ps ...predicate.ContextSnapshot) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ContextSnapshotMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ContextSnapshotMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ContextSnapshot, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ContextSnapshotMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ContextSnapshotMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ContextSnapshot).
func (m *ContextSnapshotMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ContextSnapshotMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.execution != nil {
		fields = append(fields, contextsnapshot.FieldAgentExecutionID)
	}
	if m.completion_id != nil {
		fields = append(fields, contextsnapshot.FieldCompletionID)
	}
	if m.kind != nil {
		fields = append(fields, contextsnapshot.FieldKind)
	}
	if m.loop_index != nil {
		fields = append(fields, contextsnapshot.FieldLoopIndex)
	}
	if m.payload != nil {
		fields = append(fields, contextsnapshot.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, contextsnapshot.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ContextSnapshotMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case contextsnapshot.FieldAgentExecutionID:
		return m.AgentExecutionID()
	case contextsnapshot.FieldCompletionID:
		return m.CompletionID()
	case contextsnapshot.FieldKind:
		return m.Kind()
	case contextsnapshot.FieldLoopIndex:
		return m.LoopIndex()
	case contextsnapshot.FieldPayload:
		return m.Payload()
	case contextsnapshot.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ContextSnapshotMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case contextsnapshot.FieldAgentExecutionID:
		return m.OldAgentExecutionID(ctx)
	case contextsnapshot.FieldCompletionID:
		return m.OldCompletionID(ctx)
	case contextsnapshot.FieldKind:
		return m.OldKind(ctx)
	case contextsnapshot.FieldLoopIndex:
		return m.OldLoopIndex(ctx)
	case contextsnapshot.FieldPayload:
		return m.OldPayload(ctx)
	case contextsnapshot.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ContextSnapshot field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContextSnapshotMutation) SetField(name string, value ent.Value) error {
	switch name {
	case contextsnapshot.FieldAgentExecutionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentExecutionID(v)
		return nil
	case contextsnapshot.FieldCompletionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletionID(v)
		return nil
	case contextsnapshot.FieldKind:
		v, ok := value.(contextsnapshot.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case contextsnapshot.FieldLoopIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLoopIndex(v)
		return nil
	case contextsnapshot.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case contextsnapshot.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ContextSnapshot field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ContextSnapshotMutation) AddedFields() []string {
	var fields []string
	if m.addloop_index != nil {
		fields = append(fields, contextsnapshot.FieldLoopIndex)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ContextSnapshotMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case contextsnapshot.FieldLoopIndex:
		return m.AddedLoopIndex()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContextSnapshotMutation) AddField(name string, value ent.Value) error {
	switch name {
	case contextsnapshot.FieldLoopIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLoopIndex(v)
		return nil
	}
	return fmt.Errorf("unknown ContextSnapshot numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ContextSnapshotMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ContextSnapshotMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ContextSnapshotMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ContextSnapshot nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ContextSnapshotMutation) ResetField(name string) error {
	switch name {
	case contextsnapshot.FieldAgentExecutionID:
		m.ResetAgentExecutionID()
		return nil
	case contextsnapshot.FieldCompletionID:
		m.ResetCompletionID()
		return nil
	case contextsnapshot.FieldKind:
		m.ResetKind()
		return nil
	case contextsnapshot.FieldLoopIndex:
		m.ResetLoopIndex()
		return nil
	case contextsnapshot.FieldPayload:
		m.ResetPayload()
		return nil
	case contextsnapshot.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ContextSnapshot field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ContextSnapshotMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.execution != nil {
		edges = append(edges, contextsnapshot.EdgeExecution)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ContextSnapshotMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case contextsnapshot.EdgeExecution:
		if id := m.execution; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ContextSnapshotMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ContextSnapshotMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ContextSnapshotMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedexecution {
		edges = append(edges, contextsnapshot.EdgeExecution)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ContextSnapshotMutation) EdgeCleared(name string) bool {
	switch name {
	case contextsnapshot.EdgeExecution:
		return m.clearedexecution
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ContextSnapshotMutation) ClearEdge(name string) error {
	switch name {
	case contextsnapshot.EdgeExecution:
		m.ClearExecution()
		return nil
	}
	return fmt.Errorf("unknown ContextSnapshot unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ContextSnapshotMutation) ResetEdge(name string) error {
	switch name {
	case contextsnapshot.EdgeExecution:
		m.ResetExecution()
		return nil
	}
	return fmt.Errorf("unknown ContextSnapshot edge %s", name)
}

// DataQueryMutation represents an operation that mutates the DataQuery nodes in the graph.
type DataQueryMutation struct {
	config
	op             Op
	typ            string
	id             *string
	data_source_id *string
	sql            *string
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	report         *string
	clearedreport  bool
	done           bool
	oldValue       func(context.Context) (*DataQuery, error)
	predicates     []predicate.DataQuery
}

var _ ent.Mutation = (*DataQueryMutation)(nil)

// dataqueryOption allows management of the mutation configuration using functional options.
type dataqueryOption func(*DataQueryMutation)

// newDataQueryMutation creates new mutation for the DataQuery entity.
func newDataQueryMutation(c config, op Op, opts ...dataqueryOption) *DataQueryMutation {
	m := &DataQueryMutation{
		config:        c,
		op:            op,
		typ:           TypeDataQuery,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDataQueryID sets the ID field of the mutation.
func withDataQueryID(id string) dataqueryOption {
	return func(m *DataQueryMutation) {
		var (
			err   error
			once  sync.Once
			value *DataQuery
		)
		m.oldValue = func(ctx context.Context) (*DataQuery, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DataQuery.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDataQuery sets the old DataQuery of the mutation.
func withDataQuery(node *DataQuery) dataqueryOption {
	return func(m *DataQueryMutation) {
		m.oldValue = func(context.Context) (*DataQuery, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DataQueryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DataQueryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DataQuery entities.
func (m *DataQueryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DataQueryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DataQueryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DataQuery.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetReportID sets the "report_id" field.
func (m *DataQueryMutation) SetReportID(s string) {
	m.report = &s
}

// ReportID returns the value of the "report_id" field in the mutation.
func (m *DataQueryMutation) ReportID() (r string, exists bool) {
	v := m.report
	if v == nil {
		return
	}
	return *v, true
}

// OldReportID returns the old "report_id" field's value of the DataQuery entity.
// If the DataQuery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DataQueryMutation) OldReportID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReportID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReportID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReportID: %w", err)
	}
	return oldValue.ReportID, nil
}

// ResetReportID resets all changes to the "report_id" field.
func (m *DataQueryMutation) ResetReportID() {
	m.report = nil
}

// SetDataSourceID sets the "data_source_id" field.
func (m *DataQueryMutation) SetDataSourceID(s string) {
	m.data_source_id = &s
}

// DataSourceID returns the value of the "data_source_id" field in the mutation.
func (m *DataQueryMutation) DataSourceID() (r string, exists bool) {
	v := m.data_source_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDataSourceID returns the old "data_source_id" field's value of the DataQuery entity.
// If the DataQuery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DataQueryMutation) OldDataSourceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDataSourceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDataSourceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDataSourceID: %w", err)
	}
	return oldValue.DataSourceID, nil
}

// ClearDataSourceID clears the value of the "data_source_id" field.
func (m *DataQueryMutation) ClearDataSourceID() {
	m.data_source_id = nil
	m.clearedFields[dataquery.FieldDataSourceID] = struct{}{}
}

// DataSourceIDCleared returns if the "data_source_id" field was cleared in this mutation.
func (m *DataQueryMutation) DataSourceIDCleared() bool {
	_, ok := m.clearedFields[dataquery.FieldDataSourceID]
	return ok
}

// ResetDataSourceID resets all changes to the "data_source_id" field.
func (m *DataQueryMutation) ResetDataSourceID() {
	m.data_source_id = nil
	delete(m.clearedFields, dataquery.FieldDataSourceID)
}

// SetSQL sets the "sql" field.
func (m *DataQueryMutation) SetSQL(s string) {
	m.sql = &s
}

// SQL returns the value of the "sql" field in the mutation.
func (m *DataQueryMutation) SQL() (r string, exists bool) {
	v := m.sql
	if v == nil {
		return
	}
	return *v, true
}

// OldSQL returns the old "sql" field's value of the DataQuery entity.
// If the DataQuery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DataQueryMutation) OldSQL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSQL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSQL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSQL: %w", err)
	}
	return oldValue.SQL, nil
}

// ResetSQL resets all changes to the "sql" field.
func (m *DataQueryMutation) ResetSQL() {
	m.sql = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *DataQueryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DataQueryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DataQuery entity.
// If the DataQuery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DataQueryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DataQueryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DataQueryMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DataQueryMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the DataQuery entity.
// If the DataQuery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DataQueryMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DataQueryMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearReport clears the "report" edge to the Report entity.
func (m *DataQueryMutation) ClearReport() {
	m.clearedreport = true
	m.clearedFields[dataquery.FieldReportID] = struct{}{}
}

// ReportCleared reports if the "report" edge to the Report entity was cleared.
func (m *DataQueryMutation) ReportCleared() bool {
	return m.clearedreport
}

// ReportIDs returns the "report" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ReportID instead. It exists only for internal usage by the builders.
func (m *DataQueryMutation) ReportIDs() (ids []string) {
	if id := m.report; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetReport resets all changes to the "report" edge.
func (m *DataQueryMutation) ResetReport() {
	m.report = nil
	m.clearedreport = false
}

// Where appends a list predicates to the DataQueryMutation builder.
func (m *DataQueryMutation) Where(ps ...predicate.DataQuery) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DataQueryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DataQueryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DataQuery, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DataQueryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DataQueryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DataQuery).
func (m *DataQueryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DataQueryMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.report != nil {
		fields = append(fields, dataquery.FieldReportID)
	}
	if m.data_source_id != nil {
		fields = append(fields, dataquery.FieldDataSourceID)
	}
	if m.sql != nil {
		fields = append(fields, dataquery.FieldSQL)
	}
	if m.created_at != nil {
		fields = append(fields, dataquery.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, dataquery.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DataQueryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case dataquery.FieldReportID:
		return m.ReportID()
	case dataquery.FieldDataSourceID:
		return m.DataSourceID()
	case dataquery.FieldSQL:
		return m.SQL()
	case dataquery.FieldCreatedAt:
		return m.CreatedAt()
	case dataquery.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DataQueryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case dataquery.FieldReportID:
		return m.OldReportID(ctx)
	case dataquery.FieldDataSourceID:
		return m.OldDataSourceID(ctx)
	case dataquery.FieldSQL:
		return m.OldSQL(ctx)
	case dataquery.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case dataquery.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DataQuery field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DataQueryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case dataquery.FieldReportID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReportID(v)
		return nil
	case dataquery.FieldDataSourceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDataSourceID(v)
		return nil
	case dataquery.FieldSQL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSQL(v)
		return nil
	case dataquery.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case dataquery.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DataQuery field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DataQueryMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DataQueryMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DataQueryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown DataQuery numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DataQueryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(dataquery.FieldDataSourceID) {
		fields = append(fields, dataquery.FieldDataSourceID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DataQueryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DataQueryMutation) ClearField(name string) error {
	switch name {
	case dataquery.FieldDataSourceID:
		m.ClearDataSourceID()
		return nil
	}
	return fmt.Errorf("unknown DataQuery nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DataQueryMutation) ResetField(name string) error {
	switch name {
	case dataquery.FieldReportID:
		m.ResetReportID()
		return nil
	case dataquery.FieldDataSourceID:
		m.ResetDataSourceID()
		return nil
	case dataquery.FieldSQL:
		m.ResetSQL()
		return nil
	case dataquery.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case dataquery.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown DataQuery field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DataQueryMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.report != nil {
		edges = append(edges, dataquery.EdgeReport)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DataQueryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case dataquery.EdgeReport:
		if id := m.report; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DataQueryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DataQueryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DataQueryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedreport {
		edges = append(edges, dataquery.EdgeReport)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DataQueryMutation) EdgeCleared(name string) bool {
	switch name {
	case dataquery.EdgeReport:
		return m.clearedreport
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DataQueryMutation) ClearEdge(name string) error {
	switch name {
	case dataquery.EdgeReport:
		m.ClearReport()
		return nil
	}
	return fmt.Errorf("unknown DataQuery unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DataQueryMutation) ResetEdge(name string) error {
	switch name {
	case dataquery.EdgeReport:
		m.ResetReport()
		return nil
	}
	return fmt.Errorf("unknown DataQuery edge %s", name)
}

// DataSourceMutation represents an operation that mutates the DataSource nodes in the graph.
type DataSourceMutation struct {
	config
	op            Op
	typ           string
	id            *string
	name          *string
	dialect       *string
	active        *bool
	tables        *[]map[string]interface{}
	appendtables  []map[string]interface{}
	user_overlays *map[string]interface{}
	auth_policy   *string
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	report        *string
	clearedreport bool
	done          bool
	oldValue      func(context.Context) (*DataSource, error)
	predicates    []predicate.DataSource
}

var _ ent.Mutation = (*DataSourceMutation)(nil)

// datasourceOption allows management of the mutation configuration using functional options.
type datasourceOption func(*DataSourceMutation)

// newDataSourceMutation creates new mutation for the DataSource entity.
func newDataSourceMutation(c config, op Op, opts ...datasourceOption) *DataSourceMutation {
	m := &DataSourceMutation{
		config:        c,
		op:            op,
		typ:           TypeDataSource,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDataSourceID sets the ID field of the mutation.
func withDataSourceID(id string) datasourceOption {
	return func(m *DataSourceMutation) {
		var (
			err   error
			once  sync.Once
			value *DataSource
		)
		m.oldValue = func(ctx context.Context) (*DataSource, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DataSource.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDataSource sets the old DataSource of the mutation.
func withDataSource(node *DataSource) datasourceOption {
	return func(m *DataSourceMutation) {
		m.oldValue = func(context.Context) (*DataSource, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DataSourceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DataSourceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DataSource entities.
func (m *DataSourceMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DataSourceMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DataSourceMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DataSource.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetReportID sets the "report_id" field.
func (m *DataSourceMutation) SetReportID(s string) {
	m.report = &s
}

// ReportID returns the value of the "report_id" field in the mutation.
func (m *DataSourceMutation) ReportID() (r string, exists bool) {
	v := m.report
	if v == nil {
		return
	}
	return *v, true
}

// OldReportID returns the old "report_id" field's value of the DataSource entity.
// If the DataSource object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DataSourceMutation) OldReportID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReportID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReportID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReportID: %w", err)
	}
	return oldValue.ReportID, nil
}

// ResetReportID resets all changes to the "report_id" field.
func (m *DataSourceMutation) ResetReportID() {
	m.report = nil
}

// SetName sets the "name" field.
func (m *DataSourceMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *DataSourceMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the DataSource entity.
// If the DataSource object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DataSourceMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *DataSourceMutation) ResetName() {
	m.name = nil
}

// SetDialect sets the "dialect" field.
func (m *DataSourceMutation) SetDialect(s string) {
	m.dialect = &s
}

// Dialect returns the value of the "dialect" field in the mutation.
func (m *DataSourceMutation) Dialect() (r string, exists bool) {
	v := m.dialect
	if v == nil {
		return
	}
	return *v, true
}

// OldDialect returns the old "dialect" field's value of the DataSource entity.
// If the DataSource object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DataSourceMutation) OldDialect(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDialect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDialect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDialect: %w", err)
	}
	return oldValue.Dialect, nil
}

// ClearDialect clears the value of the "dialect" field.
func (m *DataSourceMutation) ClearDialect() {
	m.dialect = nil
	m.clearedFields[datasource.FieldDialect] = struct{}{}
}

// DialectCleared returns if the "dialect" field was cleared in this mutation.
func (m *DataSourceMutation) DialectCleared() bool {
	_, ok := m.clearedFields[datasource.FieldDialect]
	return ok
}

// ResetDialect resets all changes to the "dialect" field.
func (m *DataSourceMutation) ResetDialect() {
	m.dialect = nil
	delete(m.clearedFields, datasource.FieldDialect)
}

// SetActive sets the "active" field.
func (m *DataSourceMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *DataSourceMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the DataSource entity.
// If the DataSource object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DataSourceMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *DataSourceMutation) ResetActive() {
	m.active = nil
}

// SetTables sets the "tables" field.
func (m *DataSourceMutation) SetTables(value []map[string]interface{}) {
	m.tables = &value
	m.appendtables = nil
}

// Tables returns the value of the "tables" field in the mutation.
func (m *DataSourceMutation) Tables() (r []map[string]interface{}, exists bool) {
	v := m.tables
	if v == nil {
		return
	}
	return *v, true
}

// OldTables returns the old "tables" field's value of the DataSource entity.
// If the DataSource object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DataSourceMutation) OldTables(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTables is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTables requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTables: %w", err)
	}
	return oldValue.Tables, nil
}

// AppendTables adds value to the "tables" field.
func (m *DataSourceMutation) AppendTables(value []map[string]interface{}) {
	m.appendtables = append(m.appendtables, value...)
}

// AppendedTables returns the list of values that were appended to the "tables" field in this mutation.
func (m *DataSourceMutation) AppendedTables() ([]map[string]interface{}, bool) {
	if len(m.appendtables) == 0 {
		return nil, false
	}
	return m.appendtables, true
}

// ClearTables clears the value of the "tables" field.
func (m *DataSourceMutation) ClearTables() {
	m.tables = nil
	m.appendtables = nil
	m.clearedFields[datasource.FieldTables] = struct{}{}
}

// TablesCleared returns if the "tables" field was cleared in this mutation.
func (m *DataSourceMutation) TablesCleared() bool {
	_, ok := m.clearedFields[datasource.FieldTables]
	return ok
}

// ResetTables resets all changes to the "tables" field.
func (m *DataSourceMutation) ResetTables() {
	m.tables = nil
	m.appendtables = nil
	delete(m.clearedFields, datasource.FieldTables)
}

// SetUserOverlays sets the "user_overlays" field.
func (m *DataSourceMutation) SetUserOverlays(value map[string]interface{}) {
	m.user_overlays = &value
}

// UserOverlays returns the value of the "user_overlays" field in the mutation.
func (m *DataSourceMutation) UserOverlays() (r map[string]interface{}, exists bool) {
	v := m.user_overlays
	if v == nil {
		return
	}
	return *v, true
}

// OldUserOverlays returns the old "user_overlays" field's value of the DataSource entity.
// If the DataSource object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DataSourceMutation) OldUserOverlays(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserOverlays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserOverlays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserOverlays: %w", err)
	}
	return oldValue.UserOverlays, nil
}

// ClearUserOverlays clears the value of the "user_overlays" field.
func (m *DataSourceMutation) ClearUserOverlays() {
	m.user_overlays = nil
	m.clearedFields[datasource.FieldUserOverlays] = struct{}{}
}

// UserOverlaysCleared returns if the "user_overlays" field was cleared in this mutation.
func (m *DataSourceMutation) UserOverlaysCleared() bool {
	_, ok := m.clearedFields[datasource.FieldUserOverlays]
	return ok
}

// ResetUserOverlays resets all changes to the "user_overlays" field.
func (m *DataSourceMutation) ResetUserOverlays() {
	m.user_overlays = nil
	delete(m.clearedFields, datasource.FieldUserOverlays)
}

// SetAuthPolicy sets the "auth_policy" field.
func (m *DataSourceMutation) SetAuthPolicy(s string) {
	m.auth_policy = &s
}

// AuthPolicy returns the value of the "auth_policy" field in the mutation.
func (m *DataSourceMutation) AuthPolicy() (r string, exists bool) {
	v := m.auth_policy
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthPolicy returns the old "auth_policy" field's value of the DataSource entity.
// If the DataSource object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DataSourceMutation) OldAuthPolicy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthPolicy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthPolicy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthPolicy: %w", err)
	}
	return oldValue.AuthPolicy, nil
}

// ResetAuthPolicy resets all changes to the "auth_policy" field.
func (m *DataSourceMutation) ResetAuthPolicy() {
	m.auth_policy = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *DataSourceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DataSourceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DataSource entity.
// If the DataSource object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DataSourceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DataSourceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DataSourceMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DataSourceMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the DataSource entity.
// If the DataSource object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DataSourceMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DataSourceMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearReport clears the "report" edge to the Report entity.
func (m *DataSourceMutation) ClearReport() {
	m.clearedreport = true
	m.clearedFields[datasource.FieldReportID] = struct{}{}
}

// ReportCleared reports if the "report" edge to the Report entity was cleared.
func (m *DataSourceMutation) ReportCleared() bool {
	return m.clearedreport
}

// ReportIDs returns the "report" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ReportID instead. It exists only for internal usage by the builders.
func (m *DataSourceMutation) ReportIDs() (ids []string) {
	if id := m.report; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetReport resets all changes to the "report" edge.
func (m *DataSourceMutation) ResetReport() {
	m.report = nil
	m.clearedreport = false
}

// Where appends a list predicates to the DataSourceMutation builder.
func (m *DataSourceMutation) Where(ps ...predicate.DataSource) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DataSourceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DataSourceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DataSource, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DataSourceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DataSourceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DataSource).
func (m *DataSourceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DataSourceMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.report != nil {
		fields = append(fields, datasource.FieldReportID)
	}
	if m.name != nil {
		fields = append(fields, datasource.FieldName)
	}
	if m.dialect != nil {
		fields = append(fields, datasource.FieldDialect)
	}
	if m.active != nil {
		fields = append(fields, datasource.FieldActive)
	}
	if m.tables != nil {
		fields = append(fields, datasource.FieldTables)
	}
	if m.user_overlays != nil {
		fields = append(fields, datasource.FieldUserOverlays)
	}
	if m.auth_policy != nil {
		fields = append(fields, datasource.FieldAuthPolicy)
	}
	if m.created_at != nil {
		fields = append(fields, datasource.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, datasource.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DataSourceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case datasource.FieldReportID:
		return m.ReportID()
	case datasource.FieldName:
		return m.Name()
	case datasource.FieldDialect:
		return m.Dialect()
	case datasource.FieldActive:
		return m.Active()
	case datasource.FieldTables:
		return m.Tables()
	case datasource.FieldUserOverlays:
		return m.UserOverlays()
	case datasource.FieldAuthPolicy:
		return m.AuthPolicy()
	case datasource.FieldCreatedAt:
		return m.CreatedAt()
	case datasource.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DataSourceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case datasource.FieldReportID:
		return m.OldReportID(ctx)
	case datasource.FieldName:
		return m.OldName(ctx)
	case datasource.FieldDialect:
		return m.OldDialect(ctx)
	case datasource.FieldActive:
		return m.OldActive(ctx)
	case datasource.FieldTables:
		return m.OldTables(ctx)
	case datasource.FieldUserOverlays:
		return m.OldUserOverlays(ctx)
	case datasource.FieldAuthPolicy:
		return m.OldAuthPolicy(ctx)
	case datasource.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case datasource.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DataSource field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DataSourceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case datasource.FieldReportID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReportID(v)
		return nil
	case datasource.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case datasource.FieldDialect:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDialect(v)
		return nil
	case datasource.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	case datasource.FieldTables:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTables(v)
		return nil
	case datasource.FieldUserOverlays:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserOverlays(v)
		return nil
	case datasource.FieldAuthPolicy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthPolicy(v)
		return nil
	case datasource.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case datasource.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DataSource field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DataSourceMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DataSourceMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DataSourceMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown DataSource numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DataSourceMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(datasource.FieldDialect) {
		fields = append(fields, datasource.FieldDialect)
	}
	if m.FieldCleared(datasource.FieldTables) {
		fields = append(fields, datasource.FieldTables)
	}
	if m.FieldCleared(datasource.FieldUserOverlays) {
		fields = append(fields, datasource.FieldUserOverlays)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DataSourceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DataSourceMutation) ClearField(name string) error {
	switch name {
	case datasource.FieldDialect:
		m.ClearDialect()
		return nil
	case datasource.FieldTables:
		m.ClearTables()
		return nil
	case datasource.FieldUserOverlays:
		m.ClearUserOverlays()
		return nil
	}
	return fmt.Errorf("unknown DataSource nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DataSourceMutation) ResetField(name string) error {
	switch name {
	case datasource.FieldReportID:
		m.ResetReportID()
		return nil
	case datasource.FieldName:
		m.ResetName()
		return nil
	case datasource.FieldDialect:
		m.ResetDialect()
		return nil
	case datasource.FieldActive:
		m.ResetActive()
		return nil
	case datasource.FieldTables:
		m.ResetTables()
		return nil
	case datasource.FieldUserOverlays:
		m.ResetUserOverlays()
		return nil
	case datasource.FieldAuthPolicy:
		m.ResetAuthPolicy()
		return nil
	case datasource.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case datasource.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown DataSource field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DataSourceMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.report != nil {
		edges = append(edges, datasource.EdgeReport)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DataSourceMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case datasource.EdgeReport:
		if id := m.report; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DataSourceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DataSourceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DataSourceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedreport {
		edges = append(edges, datasource.EdgeReport)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DataSourceMutation) EdgeCleared(name string) bool {
	switch name {
	case datasource.EdgeReport:
		return m.clearedreport
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DataSourceMutation) ClearEdge(name string) error {
	switch name {
	case datasource.EdgeReport:
		m.ClearReport()
		return nil
	}
	return fmt.Errorf("unknown DataSource unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DataSourceMutation) ResetEdge(name string) error {
	switch name {
	case datasource.EdgeReport:
		m.ResetReport()
		return nil
	}
	return fmt.Errorf("unknown DataSource edge %s", name)
}

// InstructionMutation represents an operation that mutates the Instruction nodes in the graph.
type InstructionMutation struct {
	config
	op             Op
	typ            string
	id             *string
	text           *string
	category       *string
	load_mode      *instruction.LoadMode
	build_id       *string
	ai_source      *string
	usage_count    *int
	addusage_count *int
	position       *int
	addposition    *int
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	report         *string
	clearedreport  bool
	done           bool
	oldValue       func(context.Context) (*Instruction, error)
	predicates     []predicate.Instruction
}

var _ ent.Mutation = (*InstructionMutation)(nil)

// instructionOption allows management of the mutation configuration using functional options.
type instructionOption func(*InstructionMutation)

// newInstructionMutation creates new mutation for the Instruction entity.
func newInstructionMutation(c config, op Op, opts ...instructionOption) *InstructionMutation {
	m := &InstructionMutation{
		config:        c,
		op:            op,
		typ:           TypeInstruction,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInstructionID sets the ID field of the mutation.
func withInstructionID(id string) instructionOption {
	return func(m *InstructionMutation) {
		var (
			err   error
			once  sync.Once
			value *Instruction
		)
		m.oldValue = func(ctx context.Context) (*Instruction, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Instruction.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInstruction sets the old Instruction of the mutation.
func withInstruction(node *Instruction) instructionOption {
	return func(m *InstructionMutation) {
		m.oldValue = func(context.Context) (*Instruction, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InstructionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InstructionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Instruction entities.
func (m *InstructionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InstructionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InstructionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Instruction.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetReportID sets the "report_id" field.
func (m *InstructionMutation) SetReportID(s string) {
	m.report = &s
}

// ReportID returns the value of the "report_id" field in the mutation.
func (m *InstructionMutation) ReportID() (r string, exists bool) {
	v := m.report
	if v == nil {
		return
	}
	return *v, true
}

// OldReportID returns the old "report_id" field's value of the Instruction entity.
// If the Instruction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstructionMutation) OldReportID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReportID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReportID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReportID: %w", err)
	}
	return oldValue.ReportID, nil
}

// ResetReportID resets all changes to the "report_id" field.
func (m *InstructionMutation) ResetReportID() {
	m.report = nil
}

// SetText sets the "text" field.
func (m *InstructionMutation) SetText(s string) {
	m.text = &s
}

// Text returns the value of the "text" field in the mutation.
func (m *InstructionMutation) Text() (r string, exists bool) {
	v := m.text
	if v == nil {
		return
	}
	return *v, true
}

// OldText returns the old "text" field's value of the Instruction entity.
// If the Instruction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstructionMutation) OldText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldText: %w", err)
	}
	return oldValue.Text, nil
}

// ResetText resets all changes to the "text" field.
func (m *InstructionMutation) ResetText() {
	m.text = nil
}

// SetCategory sets the "category" field.
func (m *InstructionMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *InstructionMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the Instruction entity.
// If the Instruction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstructionMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ClearCategory clears the value of the "category" field.
func (m *InstructionMutation) ClearCategory() {
	m.category = nil
	m.clearedFields[instruction.FieldCategory] = struct{}{}
}

// CategoryCleared returns if the "category" field was cleared in this mutation.
func (m *InstructionMutation) CategoryCleared() bool {
	_, ok := m.clearedFields[instruction.FieldCategory]
	return ok
}

// ResetCategory resets all changes to the "category" field.
func (m *InstructionMutation) ResetCategory() {
	m.category = nil
	delete(m.clearedFields, instruction.FieldCategory)
}

// SetLoadMode sets the "load_mode" field.
func (m *InstructionMutation) SetLoadMode(im instruction.LoadMode) {
	m.load_mode = &im
}

// LoadMode returns the value of the "load_mode" field in the mutation.
func (m *InstructionMutation) LoadMode() (r instruction.LoadMode, exists bool) {
	v := m.load_mode
	if v == nil {
		return
	}
	return *v, true
}

// OldLoadMode returns the old "load_mode" field's value of the Instruction entity.
// If the Instruction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstructionMutation) OldLoadMode(ctx context.Context) (v instruction.LoadMode, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLoadMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLoadMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLoadMode: %w", err)
	}
	return oldValue.LoadMode, nil
}

// ResetLoadMode resets all changes to the "load_mode" field.
func (m *InstructionMutation) ResetLoadMode() {
	m.load_mode = nil
}

// SetBuildID sets the "build_id" field.
func (m *InstructionMutation) SetBuildID(s string) {
	m.build_id = &s
}

// BuildID returns the value of the "build_id" field in the mutation.
func (m *InstructionMutation) BuildID() (r string, exists bool) {
	v := m.build_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBuildID returns the old "build_id" field's value of the Instruction entity.
// If the Instruction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstructionMutation) OldBuildID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBuildID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBuildID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBuildID: %w", err)
	}
	return oldValue.BuildID, nil
}

// ClearBuildID clears the value of the "build_id" field.
func (m *InstructionMutation) ClearBuildID() {
	m.build_id = nil
	m.clearedFields[instruction.FieldBuildID] = struct{}{}
}

// BuildIDCleared returns if the "build_id" field was cleared in this mutation.
func (m *InstructionMutation) BuildIDCleared() bool {
	_, ok := m.clearedFields[instruction.FieldBuildID]
	return ok
}

// ResetBuildID resets all changes to the "build_id" field.
func (m *InstructionMutation) ResetBuildID() {
	m.build_id = nil
	delete(m.clearedFields, instruction.FieldBuildID)
}

// SetAiSource sets the "ai_source" field.
func (m *InstructionMutation) SetAiSource(s string) {
	m.ai_source = &s
}

// AiSource returns the value of the "ai_source" field in the mutation.
func (m *InstructionMutation) AiSource() (r string, exists bool) {
	v := m.ai_source
	if v == nil {
		return
	}
	return *v, true
}

// OldAiSource returns the old "ai_source" field's value of the Instruction entity.
// If the Instruction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstructionMutation) OldAiSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAiSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAiSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAiSource: %w", err)
	}
	return oldValue.AiSource, nil
}

// ClearAiSource clears the value of the "ai_source" field.
func (m *InstructionMutation) ClearAiSource() {
	m.ai_source = nil
	m.clearedFields[instruction.FieldAiSource] = struct{}{}
}

// AiSourceCleared returns if the "ai_source" field was cleared in this mutation.
func (m *InstructionMutation) AiSourceCleared() bool {
	_, ok := m.clearedFields[instruction.FieldAiSource]
	return ok
}

// ResetAiSource resets all changes to the "ai_source" field.
func (m *InstructionMutation) ResetAiSource() {
	m.ai_source = nil
	delete(m.clearedFields, instruction.FieldAiSource)
}

// SetUsageCount sets the "usage_count" field.
func (m *InstructionMutation) SetUsageCount(i int) {
	m.usage_count = &i
	m.addusage_count = nil
}

// UsageCount returns the value of the "usage_count" field in the mutation.
func (m *InstructionMutation) UsageCount() (r int, exists bool) {
	v := m.usage_count
	if v == nil {
		return
	}
	return *v, true
}

// OldUsageCount returns the old "usage_count" field's value of the Instruction entity.
// If the Instruction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstructionMutation) OldUsageCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsageCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsageCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsageCount: %w", err)
	}
	return oldValue.UsageCount, nil
}

// AddUsageCount adds i to the "usage_count" field.
func (m *InstructionMutation) AddUsageCount(i int) {
	if m.addusage_count != nil {
		*m.addusage_count += i
	} else {
		m.addusage_count = &i
	}
}

// AddedUsageCount returns the value that was added to the "usage_count" field in this mutation.
func (m *InstructionMutation) AddedUsageCount() (r int, exists bool) {
	v := m.addusage_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetUsageCount resets all changes to the "usage_count" field.
func (m *InstructionMutation) ResetUsageCount() {
	m.usage_count = nil
	m.addusage_count = nil
}

// SetPosition sets the "position" field.
func (m *InstructionMutation) SetPosition(i int) {
	m.position = &i
	m.addposition = nil
}

// Position returns the value of the "position" field in the mutation.
func (m *InstructionMutation) Position() (r int, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the Instruction entity.
// If the Instruction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstructionMutation) OldPosition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// AddPosition adds i to the "position" field.
func (m *InstructionMutation) AddPosition(i int) {
	if m.addposition != nil {
		*m.addposition += i
	} else {
		m.addposition = &i
	}
}

// AddedPosition returns the value that was added to the "position" field in this mutation.
func (m *InstructionMutation) AddedPosition() (r int, exists bool) {
	v := m.addposition
	if v == nil {
		return
	}
	return *v, true
}

// ResetPosition resets all changes to the "position" field.
func (m *InstructionMutation) ResetPosition() {
	m.position = nil
	m.addposition = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *InstructionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *InstructionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Instruction entity.
// If the Instruction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstructionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *InstructionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *InstructionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *InstructionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Instruction entity.
// If the Instruction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstructionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *InstructionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearReport clears the "report" edge to the Report entity.
func (m *InstructionMutation) ClearReport() {
	m.clearedreport = true
	m.clearedFields[instruction.FieldReportID] = struct{}{}
}

// ReportCleared reports if the "report" edge to the Report entity was cleared.
func (m *InstructionMutation) ReportCleared() bool {
	return m.clearedreport
}

// ReportIDs returns the "report" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ReportID instead. It exists only for internal usage by the builders.
func (m *InstructionMutation) ReportIDs() (ids []string) {
	if id := m.report; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetReport resets all changes to the "report" edge.
func (m *InstructionMutation) ResetReport() {
	m.report = nil
	m.clearedreport = false
}

// Where appends a list predicates to the InstructionMutation builder.
func (m *InstructionMutation) Where(ps ...predicate.Instruction) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InstructionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InstructionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Instruction, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InstructionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InstructionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Instruction).
func (m *InstructionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InstructionMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.report != nil {
		fields = append(fields, instruction.FieldReportID)
	}
	if m.text != nil {
		fields = append(fields, instruction.FieldText)
	}
	if m.category != nil {
		fields = append(fields, instruction.FieldCategory)
	}
	if m.load_mode != nil {
		fields = append(fields, instruction.FieldLoadMode)
	}
	if m.build_id != nil {
		fields = append(fields, instruction.FieldBuildID)
	}
	if m.ai_source != nil {
		fields = append(fields, instruction.FieldAiSource)
	}
	if m.usage_count != nil {
		fields = append(fields, instruction.FieldUsageCount)
	}
	if m.position != nil {
		fields = append(fields, instruction.FieldPosition)
	}
	if m.created_at != nil {
		fields = append(fields, instruction.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, instruction.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InstructionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case instruction.FieldReportID:
		return m.ReportID()
	case instruction.FieldText:
		return m.Text()
	case instruction.FieldCategory:
		return m.Category()
	case instruction.FieldLoadMode:
		return m.LoadMode()
	case instruction.FieldBuildID:
		return m.BuildID()
	case instruction.FieldAiSource:
		return m.AiSource()
	case instruction.FieldUsageCount:
		return m.UsageCount()
	case instruction.FieldPosition:
		return m.Position()
	case instruction.FieldCreatedAt:
		return m.CreatedAt()
	case instruction.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InstructionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case instruction.FieldReportID:
		return m.OldReportID(ctx)
	case instruction.FieldText:
		return m.OldText(ctx)
	case instruction.FieldCategory:
		return m.OldCategory(ctx)
	case instruction.FieldLoadMode:
		return m.OldLoadMode(ctx)
	case instruction.FieldBuildID:
		return m.OldBuildID(ctx)
	case instruction.FieldAiSource:
		return m.OldAiSource(ctx)
	case instruction.FieldUsageCount:
		return m.OldUsageCount(ctx)
	case instruction.FieldPosition:
		return m.OldPosition(ctx)
	case instruction.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case instruction.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Instruction field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InstructionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case instruction.FieldReportID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReportID(v)
		return nil
	case instruction.FieldText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetText(v)
		return nil
	case instruction.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case instruction.FieldLoadMode:
		v, ok := value.(instruction.LoadMode)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLoadMode(v)
		return nil
	case instruction.FieldBuildID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBuildID(v)
		return nil
	case instruction.FieldAiSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAiSource(v)
		return nil
	case instruction.FieldUsageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsageCount(v)
		return nil
	case instruction.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	case instruction.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case instruction.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Instruction field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InstructionMutation) AddedFields() []string {
	var fields []string
	if m.addusage_count != nil {
		fields = append(fields, instruction.FieldUsageCount)
	}
	if m.addposition != nil {
		fields = append(fields, instruction.FieldPosition)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InstructionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case instruction.FieldUsageCount:
		return m.AddedUsageCount()
	case instruction.FieldPosition:
		return m.AddedPosition()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InstructionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case instruction.FieldUsageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUsageCount(v)
		return nil
	case instruction.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPosition(v)
		return nil
	}
	return fmt.Errorf("unknown Instruction numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InstructionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(instruction.FieldCategory) {
		fields = append(fields, instruction.FieldCategory)
	}
	if m.FieldCleared(instruction.FieldBuildID) {
		fields = append(fields, instruction.FieldBuildID)
	}
	if m.FieldCleared(instruction.FieldAiSource) {
		fields = append(fields, instruction.FieldAiSource)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InstructionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InstructionMutation) ClearField(name string) error {
	switch name {
	case instruction.FieldCategory:
		m.ClearCategory()
		return nil
	case instruction.FieldBuildID:
		m.ClearBuildID()
		return nil
	case instruction.FieldAiSource:
		m.ClearAiSource()
		return nil
	}
	return fmt.Errorf("unknown Instruction nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InstructionMutation) ResetField(name string) error {
	switch name {
	case instruction.FieldReportID:
		m.ResetReportID()
		return nil
	case instruction.FieldText:
		m.ResetText()
		return nil
	case instruction.FieldCategory:
		m.ResetCategory()
		return nil
	case instruction.FieldLoadMode:
		m.ResetLoadMode()
		return nil
	case instruction.FieldBuildID:
		m.ResetBuildID()
		return nil
	case instruction.FieldAiSource:
		m.ResetAiSource()
		return nil
	case instruction.FieldUsageCount:
		m.ResetUsageCount()
		return nil
	case instruction.FieldPosition:
		m.ResetPosition()
		return nil
	case instruction.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case instruction.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Instruction field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InstructionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.report != nil {
		edges = append(edges, instruction.EdgeReport)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InstructionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case instruction.EdgeReport:
		if id := m.report; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InstructionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InstructionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InstructionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedreport {
		edges = append(edges, instruction.EdgeReport)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InstructionMutation) EdgeCleared(name string) bool {
	switch name {
	case instruction.EdgeReport:
		return m.clearedreport
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InstructionMutation) ClearEdge(name string) error {
	switch name {
	case instruction.EdgeReport:
		m.ClearReport()
		return nil
	}
	return fmt.Errorf("unknown Instruction unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InstructionMutation) ResetEdge(name string) error {
	switch name {
	case instruction.EdgeReport:
		m.ResetReport()
		return nil
	}
	return fmt.Errorf("unknown Instruction edge %s", name)
}

// PlanDecisionMutation represents an operation that mutates the PlanDecision nodes in the graph.
type PlanDecisionMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	seq                    *int
	addseq                 *int
	loop_index             *int
	addloop_index          *int
	plan_type              *plandecision.PlanType
	reasoning_message      *string
	assistant_message      *string
	action_name            *string
	action_arguments       *map[string]interface{}
	analysis_complete      *bool
	final_answer           *string
	error_code             *string
	error_message          *string
	final                  *bool
	created_at             *time.Time
	updated_at             *time.Time
	clearedFields          map[string]struct{}
	execution              *string
	clearedexecution       bool
	block                  map[string]struct{}
	removedblock           map[string]struct{}
	clearedblock           bool
	tool_executions        map[string]struct{}
	removedtool_executions map[string]struct{}
	clearedtool_executions bool
	done                   bool
	oldValue               func(context.Context) (*PlanDecision, error)
	predicates             []predicate.PlanDecision
}

var _ ent.Mutation = (*PlanDecisionMutation)(nil)

// plandecisionOption allows management of the mutation configuration using functional options.
type plandecisionOption func(*PlanDecisionMutation)

// newPlanDecisionMutation creates new mutation for the PlanDecision entity.
func newPlanDecisionMutation(c config, op Op, opts ...plandecisionOption) *PlanDecisionMutation {
	m := &PlanDecisionMutation{
		config:        c,
		op:            op,
		typ:           TypePlanDecision,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPlanDecisionID sets the ID field of the mutation.
func withPlanDecisionID(id string) plandecisionOption {
	return func(m *PlanDecisionMutation) {
		var (
			err   error
			once  sync.Once
			value *PlanDecision
		)
		m.oldValue = func(ctx context.Context) (*PlanDecision, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PlanDecision.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPlanDecision sets the old PlanDecision of the mutation.
func withPlanDecision(node *PlanDecision) plandecisionOption {
	return func(m *PlanDecisionMutation) {
		m.oldValue = func(context.Context) (*PlanDecision, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PlanDecisionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PlanDecisionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PlanDecision entities.
func (m *PlanDecisionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PlanDecisionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PlanDecisionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PlanDecision.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentExecutionID sets the "agent_execution_id" field.
func (m *PlanDecisionMutation) SetAgentExecutionID(s string) {
	m.execution = &s
}

// AgentExecutionID returns the value of the "agent_execution_id" field in the mutation.
func (m *PlanDecisionMutation) AgentExecutionID() (r string, exists bool) {
	v := m.execution
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentExecutionID returns the old "agent_execution_id" field's value of the PlanDecision entity.
// If the PlanDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanDecisionMutation) OldAgentExecutionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentExecutionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentExecutionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentExecutionID: %w", err)
	}
	return oldValue.AgentExecutionID, nil
}

// ResetAgentExecutionID resets all changes to the "agent_execution_id" field.
func (m *PlanDecisionMutation) ResetAgentExecutionID() {
	m.execution = nil
}

// SetSeq sets the "seq" field.
func (m *PlanDecisionMutation) SetSeq(i int) {
	m.seq = &i
	m.addseq = nil
}

// Seq returns the value of the "seq" field in the mutation.
func (m *PlanDecisionMutation) Seq() (r int, exists bool) {
	v := m.seq
	if v == nil {
		return
	}
	return *v, true
}

// OldSeq returns the old "seq" field's value of the PlanDecision entity.
// If the PlanDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanDecisionMutation) OldSeq(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeq is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeq requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeq: %w", err)
	}
	return oldValue.Seq, nil
}

// AddSeq adds i to the "seq" field.
func (m *PlanDecisionMutation) AddSeq(i int) {
	if m.addseq != nil {
		*m.addseq += i
	} else {
		m.addseq = &i
	}
}

// AddedSeq returns the value that was added to the "seq" field in this mutation.
func (m *PlanDecisionMutation) AddedSeq() (r int, exists bool) {
	v := m.addseq
	if v == nil {
		return
	}
	return *v, true
}

// ResetSeq resets all changes to the "seq" field.
func (m *PlanDecisionMutation) ResetSeq() {
	m.seq = nil
	m.addseq = nil
}

// SetLoopIndex sets the "loop_index" field.
func (m *PlanDecisionMutation) SetLoopIndex(i int) {
	m.loop_index = &i
	m.addloop_index = nil
}

// LoopIndex returns the value of the "loop_index" field in the mutation.
func (m *PlanDecisionMutation) LoopIndex() (r int, exists bool) {
	v := m.loop_index
	if v == nil {
		return
	}
	return *v, true
}

// OldLoopIndex returns the old "loop_index" field's value of the PlanDecision entity.
// If the PlanDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanDecisionMutation) OldLoopIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLoopIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLoopIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLoopIndex: %w", err)
	}
	return oldValue.LoopIndex, nil
}

// AddLoopIndex adds i to the "loop_index" field.
func (m *PlanDecisionMutation) AddLoopIndex(i int) {
	if m.addloop_index != nil {
		*m.addloop_index += i
	} else {
		m.addloop_index = &i
	}
}

// AddedLoopIndex returns the value that was added to the "loop_index" field in this mutation.
func (m *PlanDecisionMutation) AddedLoopIndex() (r int, exists bool) {
	v := m.addloop_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetLoopIndex resets all changes to the "loop_index" field.
func (m *PlanDecisionMutation) ResetLoopIndex() {
	m.loop_index = nil
	m.addloop_index = nil
}

// SetPlanType sets the "plan_type" field.
func (m *PlanDecisionMutation) SetPlanType(pt plandecision.PlanType) {
	m.plan_type = &pt
}

// PlanType returns the value of the "plan_type" field in the mutation.
func (m *PlanDecisionMutation) PlanType() (r plandecision.PlanType, exists bool) {
	v := m.plan_type
	if v == nil {
		return
	}
	return *v, true
}

// OldPlanType returns the old "plan_type" field's value of the PlanDecision entity.
// If the PlanDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanDecisionMutation) OldPlanType(ctx context.Context) (v plandecision.PlanType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlanType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlanType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlanType: %w", err)
	}
	return oldValue.PlanType, nil
}

// ResetPlanType resets all changes to the "plan_type" field.
func (m *PlanDecisionMutation) ResetPlanType() {
	m.plan_type = nil
}

// SetReasoningMessage sets the "reasoning_message" field.
func (m *PlanDecisionMutation) SetReasoningMessage(s string) {
	m.reasoning_message = &s
}

// ReasoningMessage returns the value of the "reasoning_message" field in the mutation.
func (m *PlanDecisionMutation) ReasoningMessage() (r string, exists bool) {
	v := m.reasoning_message
	if v == nil {
		return
	}
	return *v, true
}

// OldReasoningMessage returns the old "reasoning_message" field's value of the PlanDecision entity.
// If the PlanDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanDecisionMutation) OldReasoningMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReasoningMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReasoningMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReasoningMessage: %w", err)
	}
	return oldValue.ReasoningMessage, nil
}

// ResetReasoningMessage resets all changes to the "reasoning_message" field.
func (m *PlanDecisionMutation) ResetReasoningMessage() {
	m.reasoning_message = nil
}

// SetAssistantMessage sets the "assistant_message" field.
func (m *PlanDecisionMutation) SetAssistantMessage(s string) {
	m.assistant_message = &s
}

// AssistantMessage returns the value of the "assistant_message" field in the mutation.
func (m *PlanDecisionMutation) AssistantMessage() (r string, exists bool) {
	v := m.assistant_message
	if v == nil {
		return
	}
	return *v, true
}

// OldAssistantMessage returns the old "assistant_message" field's value of the PlanDecision entity.
// If the PlanDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanDecisionMutation) OldAssistantMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssistantMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssistantMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssistantMessage: %w", err)
	}
	return oldValue.AssistantMessage, nil
}

// ResetAssistantMessage resets all changes to the "assistant_message" field.
func (m *PlanDecisionMutation) ResetAssistantMessage() {
	m.assistant_message = nil
}

// SetActionName sets the "action_name" field.
func (m *PlanDecisionMutation) SetActionName(s string) {
	m.action_name = &s
}

// ActionName returns the value of the "action_name" field in the mutation.
func (m *PlanDecisionMutation) ActionName() (r string, exists bool) {
	v := m.action_name
	if v == nil {
		return
	}
	return *v, true
}

// OldActionName returns the old "action_name" field's value of the PlanDecision entity.
// If the PlanDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanDecisionMutation) OldActionName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActionName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActionName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActionName: %w", err)
	}
	return oldValue.ActionName, nil
}

// ClearActionName clears the value of the "action_name" field.
func (m *PlanDecisionMutation) ClearActionName() {
	m.action_name = nil
	m.clearedFields[plandecision.FieldActionName] = struct{}{}
}

// ActionNameCleared returns if the "action_name" field was cleared in this mutation.
func (m *PlanDecisionMutation) ActionNameCleared() bool {
	_, ok := m.clearedFields[plandecision.FieldActionName]
	return ok
}

// ResetActionName resets all changes to the "action_name" field.
func (m *PlanDecisionMutation) ResetActionName() {
	m.action_name = nil
	delete(m.clearedFields, plandecision.FieldActionName)
}

// SetActionArguments sets the "action_arguments" field.
func (m *PlanDecisionMutation) SetActionArguments(value map[string]interface{}) {
	m.action_arguments = &value
}

// ActionArguments returns the value of the "action_arguments" field in the mutation.
func (m *PlanDecisionMutation) ActionArguments() (r map[string]interface{}, exists bool) {
	v := m.action_arguments
	if v == nil {
		return
	}
	return *v, true
}

// OldActionArguments returns the old "action_arguments" field's value of the PlanDecision entity.
// If the PlanDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanDecisionMutation) OldActionArguments(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActionArguments is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActionArguments requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActionArguments: %w", err)
	}
	return oldValue.ActionArguments, nil
}

// ClearActionArguments clears the value of the "action_arguments" field.
func (m *PlanDecisionMutation) ClearActionArguments() {
	m.action_arguments = nil
	m.clearedFields[plandecision.FieldActionArguments] = struct{}{}
}

// ActionArgumentsCleared returns if the "action_arguments" field was cleared in this mutation.
func (m *PlanDecisionMutation) ActionArgumentsCleared() bool {
	_, ok := m.clearedFields[plandecision.FieldActionArguments]
	return ok
}

// ResetActionArguments resets all changes to the "action_arguments" field.
func (m *PlanDecisionMutation) ResetActionArguments() {
	m.action_arguments = nil
	delete(m.clearedFields, plandecision.FieldActionArguments)
}

// SetAnalysisComplete sets the "analysis_complete" field.
func (m *PlanDecisionMutation) SetAnalysisComplete(b bool) {
	m.analysis_complete = &b
}

// AnalysisComplete returns the value of the "analysis_complete" field in the mutation.
func (m *PlanDecisionMutation) AnalysisComplete() (r bool, exists bool) {
	v := m.analysis_complete
	if v == nil {
		return
	}
	return *v, true
}

// OldAnalysisComplete returns the old "analysis_complete" field's value of the PlanDecision entity.
// If the PlanDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanDecisionMutation) OldAnalysisComplete(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnalysisComplete is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnalysisComplete requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnalysisComplete: %w", err)
	}
	return oldValue.AnalysisComplete, nil
}

// ResetAnalysisComplete resets all changes to the "analysis_complete" field.
func (m *PlanDecisionMutation) ResetAnalysisComplete() {
	m.analysis_complete = nil
}

// SetFinalAnswer sets the "final_answer" field.
func (m *PlanDecisionMutation) SetFinalAnswer(s string) {
	m.final_answer = &s
}

// FinalAnswer returns the value of the "final_answer" field in the mutation.
func (m *PlanDecisionMutation) FinalAnswer() (r string, exists bool) {
	v := m.final_answer
	if v == nil {
		return
	}
	return *v, true
}

// OldFinalAnswer returns the old "final_answer" field's value of the PlanDecision entity.
// If the PlanDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanDecisionMutation) OldFinalAnswer(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinalAnswer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinalAnswer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinalAnswer: %w", err)
	}
	return oldValue.FinalAnswer, nil
}

// ClearFinalAnswer clears the value of the "final_answer" field.
func (m *PlanDecisionMutation) ClearFinalAnswer() {
	m.final_answer = nil
	m.clearedFields[plandecision.FieldFinalAnswer] = struct{}{}
}

// FinalAnswerCleared returns if the "final_answer" field was cleared in this mutation.
func (m *PlanDecisionMutation) FinalAnswerCleared() bool {
	_, ok := m.clearedFields[plandecision.FieldFinalAnswer]
	return ok
}

// ResetFinalAnswer resets all changes to the "final_answer" field.
func (m *PlanDecisionMutation) ResetFinalAnswer() {
	m.final_answer = nil
	delete(m.clearedFields, plandecision.FieldFinalAnswer)
}

// SetErrorCode sets the "error_code" field.
func (m *PlanDecisionMutation) SetErrorCode(s string) {
	m.error_code = &s
}

// ErrorCode returns the value of the "error_code" field in the mutation.
func (m *PlanDecisionMutation) ErrorCode() (r string, exists bool) {
	v := m.error_code
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorCode returns the old "error_code" field's value of the PlanDecision entity.
// If the PlanDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanDecisionMutation) OldErrorCode(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorCode: %w", err)
	}
	return oldValue.ErrorCode, nil
}

// ClearErrorCode clears the value of the "error_code" field.
func (m *PlanDecisionMutation) ClearErrorCode() {
	m.error_code = nil
	m.clearedFields[plandecision.FieldErrorCode] = struct{}{}
}

// ErrorCodeCleared returns if the "error_code" field was cleared in this mutation.
func (m *PlanDecisionMutation) ErrorCodeCleared() bool {
	_, ok := m.clearedFields[plandecision.FieldErrorCode]
	return ok
}

// ResetErrorCode resets all changes to the "error_code" field.
func (m *PlanDecisionMutation) ResetErrorCode() {
	m.error_code = nil
	delete(m.clearedFields, plandecision.FieldErrorCode)
}

// SetErrorMessage sets the "error_message" field.
func (m *PlanDecisionMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *PlanDecisionMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the PlanDecision entity.
// If the PlanDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanDecisionMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *PlanDecisionMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[plandecision.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *PlanDecisionMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[plandecision.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *PlanDecisionMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, plandecision.FieldErrorMessage)
}

// SetFinal sets the "final" field.
func (m *PlanDecisionMutation) SetFinal(b bool) {
	m.final = &b
}

// Final returns the value of the "final" field in the mutation.
func (m *PlanDecisionMutation) Final() (r bool, exists bool) {
	v := m.final
	if v == nil {
		return
	}
	return *v, true
}

// OldFinal returns the old "final" field's value of the PlanDecision entity.
// If the PlanDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanDecisionMutation) OldFinal(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinal: %w", err)
	}
	return oldValue.Final, nil
}

// ResetFinal resets all changes to the "final" field.
func (m *PlanDecisionMutation) ResetFinal() {
	m.final = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *PlanDecisionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PlanDecisionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PlanDecision entity.
// If the PlanDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanDecisionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PlanDecisionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PlanDecisionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PlanDecisionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the PlanDecision entity.
// If the PlanDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanDecisionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PlanDecisionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetExecutionID sets the "execution" edge to the AgentExecution entity by id.
func (m *PlanDecisionMutation) SetExecutionID(id string) {
	m.execution = &id
}

// ClearExecution clears the "execution" edge to the AgentExecution entity.
func (m *PlanDecisionMutation) ClearExecution() {
	m.clearedexecution = true
	m.clearedFields[plandecision.FieldAgentExecutionID] = struct{}{}
}

// ExecutionCleared reports if the "execution" edge to the AgentExecution entity was cleared.
func (m *PlanDecisionMutation) ExecutionCleared() bool {
	return m.clearedexecution
}

// ExecutionID returns the "execution" edge ID in the mutation.
func (m *PlanDecisionMutation) ExecutionID() (id string, exists bool) {
	if m.execution != nil {
		return *m.execution, true
	}
	return
}

// ExecutionIDs returns the "execution" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ExecutionID instead. It exists only for internal usage by the builders.
func (m *PlanDecisionMutation) ExecutionIDs() (ids []string) {
	if id := m.execution; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetExecution resets all changes to the "execution" edge.
func (m *PlanDecisionMutation) ResetExecution() {
	m.execution = nil
	m.clearedexecution = false
}

// AddBlockIDs adds the "block" edge to the CompletionBlock entity by ids.
func (m *PlanDecisionMutation) AddBlockIDs(ids ...string) {
	if m.block == nil {
		m.block = make(map[string]struct{})
	}
	for i := range ids {
		m.block[ids[i]] = struct{}{}
	}
}

// ClearBlock clears the "block" edge to the CompletionBlock entity.
func (m *PlanDecisionMutation) ClearBlock() {
	m.clearedblock = true
}

// BlockCleared reports if the "block" edge to the CompletionBlock entity was cleared.
func (m *PlanDecisionMutation) BlockCleared() bool {
	return m.clearedblock
}

// RemoveBlockIDs removes the "block" edge to the CompletionBlock entity by IDs.
func (m *PlanDecisionMutation) RemoveBlockIDs(ids ...string) {
	if m.removedblock == nil {
		m.removedblock = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.block, ids[i])
		m.removedblock[ids[i]] = struct{}{}
	}
}

// RemovedBlock returns the removed IDs of the "block" edge to the CompletionBlock entity.
func (m *PlanDecisionMutation) RemovedBlockIDs() (ids []string) {
	for id := range m.removedblock {
		ids = append(ids, id)
	}
	return
}

// BlockIDs returns the "block" edge IDs in the mutation.
func (m *PlanDecisionMutation) BlockIDs() (ids []string) {
	for id := range m.block {
		ids = append(ids, id)
	}
	return
}

// ResetBlock resets all changes to the "block" edge.
func (m *PlanDecisionMutation) ResetBlock() {
	m.block = nil
	m.clearedblock = false
	m.removedblock = nil
}

// AddToolExecutionIDs adds the "tool_executions" edge to the ToolExecution entity by ids.
func (m *PlanDecisionMutation) AddToolExecutionIDs(ids ...string) {
	if m.tool_executions == nil {
		m.tool_executions = make(map[string]struct{})
	}
	for i := range ids {
		m.tool_executions[ids[i]] = struct{}{}
	}
}

// ClearToolExecutions clears the "tool_executions" edge to the ToolExecution entity.
func (m *PlanDecisionMutation) ClearToolExecutions() {
	m.clearedtool_executions = true
}

// ToolExecutionsCleared reports if the "tool_executions" edge to the ToolExecution entity was cleared.
func (m *PlanDecisionMutation) ToolExecutionsCleared() bool {
	return m.clearedtool_executions
}

// RemoveToolExecutionIDs removes the "tool_executions" edge to the ToolExecution entity by IDs.
func (m *PlanDecisionMutation) RemoveToolExecutionIDs(ids ...string) {
	if m.removedtool_executions == nil {
		m.removedtool_executions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.tool_executions, ids[i])
		m.removedtool_executions[ids[i]] = struct{}{}
	}
}

// RemovedToolExecutions returns the removed IDs of the "tool_executions" edge to the ToolExecution entity.
func (m *PlanDecisionMutation) RemovedToolExecutionsIDs() (ids []string) {
	for id := range m.removedtool_executions {
		ids = append(ids, id)
	}
	return
}

// ToolExecutionsIDs returns the "tool_executions" edge IDs in the mutation.
func (m *PlanDecisionMutation) ToolExecutionsIDs() (ids []string) {
	for id := range m.tool_executions {
		ids = append(ids, id)
	}
	return
}

// ResetToolExecutions resets all changes to the "tool_executions" edge.
func (m *PlanDecisionMutation) ResetToolExecutions() {
	m.tool_executions = nil
	m.clearedtool_executions = false
	m.removedtool_executions = nil
}

// Where appends a list predicates to the PlanDecisionMutation builder.
func (m *PlanDecisionMutation) Where(ps ...predicate.PlanDecision) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PlanDecisionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PlanDecisionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PlanDecision, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PlanDecisionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PlanDecisionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PlanDecision).
func (m *PlanDecisionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PlanDecisionMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.execution != nil {
		fields = append(fields, plandecision.FieldAgentExecutionID)
	}
	if m.seq != nil {
		fields = append(fields, plandecision.FieldSeq)
	}
	if m.loop_index != nil {
		fields = append(fields, plandecision.FieldLoopIndex)
	}
	if m.plan_type != nil {
		fields = append(fields, plandecision.FieldPlanType)
	}
	if m.reasoning_message != nil {
		fields = append(fields, plandecision.FieldReasoningMessage)
	}
	if m.assistant_message != nil {
		fields = append(fields, plandecision.FieldAssistantMessage)
	}
	if m.action_name != nil {
		fields = append(fields, plandecision.FieldActionName)
	}
	if m.action_arguments != nil {
		fields = append(fields, plandecision.FieldActionArguments)
	}
	if m.analysis_complete != nil {
		fields = append(fields, plandecision.FieldAnalysisComplete)
	}
	if m.final_answer != nil {
		fields = append(fields, plandecision.FieldFinalAnswer)
	}
	if m.error_code != nil {
		fields = append(fields, plandecision.FieldErrorCode)
	}
	if m.error_message != nil {
		fields = append(fields, plandecision.FieldErrorMessage)
	}
	if m.final != nil {
		fields = append(fields, plandecision.FieldFinal)
	}
	if m.created_at != nil {
		fields = append(fields, plandecision.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, plandecision.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PlanDecisionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case plandecision.FieldAgentExecutionID:
		return m.AgentExecutionID()
	case plandecision.FieldSeq:
		return m.Seq()
	case plandecision.FieldLoopIndex:
		return m.LoopIndex()
	case plandecision.FieldPlanType:
		return m.PlanType()
	case plandecision.FieldReasoningMessage:
		return m.ReasoningMessage()
	case plandecision.FieldAssistantMessage:
		return m.AssistantMessage()
	case plandecision.FieldActionName:
		return m.ActionName()
	case plandecision.FieldActionArguments:
		return m.ActionArguments()
	case plandecision.FieldAnalysisComplete:
		return m.AnalysisComplete()
	case plandecision.FieldFinalAnswer:
		return m.FinalAnswer()
	case plandecision.FieldErrorCode:
		return m.ErrorCode()
	case plandecision.FieldErrorMessage:
		return m.ErrorMessage()
	case plandecision.FieldFinal:
		return m.Final()
	case plandecision.FieldCreatedAt:
		return m.CreatedAt()
	case plandecision.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PlanDecisionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case plandecision.FieldAgentExecutionID:
		return m.OldAgentExecutionID(ctx)
	case plandecision.FieldSeq:
		return m.OldSeq(ctx)
	case plandecision.FieldLoopIndex:
		return m.OldLoopIndex(ctx)
	case plandecision.FieldPlanType:
		return m.OldPlanType(ctx)
	case plandecision.FieldReasoningMessage:
		return m.OldReasoningMessage(ctx)
	case plandecision.FieldAssistantMessage:
		return m.OldAssistantMessage(ctx)
	case plandecision.FieldActionName:
		return m.OldActionName(ctx)
	case plandecision.FieldActionArguments:
		return m.OldActionArguments(ctx)
	case plandecision.FieldAnalysisComplete:
		return m.OldAnalysisComplete(ctx)
	case plandecision.FieldFinalAnswer:
		return m.OldFinalAnswer(ctx)
	case plandecision.FieldErrorCode:
		return m.OldErrorCode(ctx)
	case plandecision.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case plandecision.FieldFinal:
		return m.OldFinal(ctx)
	case plandecision.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case plandecision.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PlanDecision field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PlanDecisionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case plandecision.FieldAgentExecutionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentExecutionID(v)
		return nil
	case plandecision.FieldSeq:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeq(v)
		return nil
	case plandecision.FieldLoopIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLoopIndex(v)
		return nil
	case plandecision.FieldPlanType:
		v, ok := value.(plandecision.PlanType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlanType(v)
		return nil
	case plandecision.FieldReasoningMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReasoningMessage(v)
		return nil
	case plandecision.FieldAssistantMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssistantMessage(v)
		return nil
	case plandecision.FieldActionName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActionName(v)
		return nil
	case plandecision.FieldActionArguments:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActionArguments(v)
		return nil
	case plandecision.FieldAnalysisComplete:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnalysisComplete(v)
		return nil
	case plandecision.FieldFinalAnswer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinalAnswer(v)
		return nil
	case plandecision.FieldErrorCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorCode(v)
		return nil
	case plandecision.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case plandecision.FieldFinal:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinal(v)
		return nil
	case plandecision.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case plandecision.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PlanDecision field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PlanDecisionMutation) AddedFields() []string {
	var fields []string
	if m.addseq != nil {
		fields = append(fields, plandecision.FieldSeq)
	}
	if m.addloop_index != nil {
		fields = append(fields, plandecision.FieldLoopIndex)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PlanDecisionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case plandecision.FieldSeq:
		return m.AddedSeq()
	case plandecision.FieldLoopIndex:
		return m.AddedLoopIndex()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PlanDecisionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case plandecision.FieldSeq:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSeq(v)
		return nil
	case plandecision.FieldLoopIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLoopIndex(v)
		return nil
	}
	return fmt.Errorf("unknown PlanDecision numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PlanDecisionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(plandecision.FieldActionName) {
		fields = append(fields, plandecision.FieldActionName)
	}
	if m.FieldCleared(plandecision.FieldActionArguments) {
		fields = append(fields, plandecision.FieldActionArguments)
	}
	if m.FieldCleared(plandecision.FieldFinalAnswer) {
		fields = append(fields, plandecision.FieldFinalAnswer)
	}
	if m.FieldCleared(plandecision.FieldErrorCode) {
		fields = append(fields, plandecision.FieldErrorCode)
	}
	if m.FieldCleared(plandecision.FieldErrorMessage) {
		fields = append(fields, plandecision.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PlanDecisionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PlanDecisionMutation) ClearField(name string) error {
	switch name {
	case plandecision.FieldActionName:
		m.ClearActionName()
		return nil
	case plandecision.FieldActionArguments:
		m.ClearActionArguments()
		return nil
	case plandecision.FieldFinalAnswer:
		m.ClearFinalAnswer()
		return nil
	case plandecision.FieldErrorCode:
		m.ClearErrorCode()
		return nil
	case plandecision.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown PlanDecision nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PlanDecisionMutation) ResetField(name string) error {
	switch name {
	case plandecision.FieldAgentExecutionID:
		m.ResetAgentExecutionID()
		return nil
	case plandecision.FieldSeq:
		m.ResetSeq()
		return nil
	case plandecision.FieldLoopIndex:
		m.ResetLoopIndex()
		return nil
	case plandecision.FieldPlanType:
		m.ResetPlanType()
		return nil
	case plandecision.FieldReasoningMessage:
		m.ResetReasoningMessage()
		return nil
	case plandecision.FieldAssistantMessage:
		m.ResetAssistantMessage()
		return nil
	case plandecision.FieldActionName:
		m.ResetActionName()
		return nil
	case plandecision.FieldActionArguments:
		m.ResetActionArguments()
		return nil
	case plandecision.FieldAnalysisComplete:
		m.ResetAnalysisComplete()
		return nil
	case plandecision.FieldFinalAnswer:
		m.ResetFinalAnswer()
		return nil
	case plandecision.FieldErrorCode:
		m.ResetErrorCode()
		return nil
	case plandecision.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case plandecision.FieldFinal:
		m.ResetFinal()
		return nil
	case plandecision.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case plandecision.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown PlanDecision field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PlanDecisionMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.execution != nil {
		edges = append(edges, plandecision.EdgeExecution)
	}
	if m.block != nil {
		edges = append(edges, plandecision.EdgeBlock)
	}
	if m.tool_executions != nil {
		edges = append(edges, plandecision.EdgeToolExecutions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PlanDecisionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case plandecision.EdgeExecution:
		if id := m.execution; id != nil {
			return []ent.Value{*id}
		}
	case plandecision.EdgeBlock:
		ids := make([]ent.Value, 0, len(m.block))
		for id := range m.block {
			ids = append(ids, id)
		}
		return ids
	case plandecision.EdgeToolExecutions:
		ids := make([]ent.Value, 0, len(m.tool_executions))
		for id := range m.tool_executions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PlanDecisionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedblock != nil {
		edges = append(edges, plandecision.EdgeBlock)
	}
	if m.removedtool_executions != nil {
		edges = append(edges, plandecision.EdgeToolExecutions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PlanDecisionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case plandecision.EdgeBlock:
		ids := make([]ent.Value, 0, len(m.removedblock))
		for id := range m.removedblock {
			ids = append(ids, id)
		}
		return ids
	case plandecision.EdgeToolExecutions:
		ids := make([]ent.Value, 0, len(m.removedtool_executions))
		for id := range m.removedtool_executions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PlanDecisionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedexecution {
		edges = append(edges, plandecision.EdgeExecution)
	}
	if m.clearedblock {
		edges = append(edges, plandecision.EdgeBlock)
	}
	if m.clearedtool_executions {
		edges = append(edges, plandecision.EdgeToolExecutions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PlanDecisionMutation) EdgeCleared(name string) bool {
	switch name {
	case plandecision.EdgeExecution:
		return m.clearedexecution
	case plandecision.EdgeBlock:
		return m.clearedblock
	case plandecision.EdgeToolExecutions:
		return m.clearedtool_executions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PlanDecisionMutation) ClearEdge(name string) error {
	switch name {
	case plandecision.EdgeExecution:
		m.ClearExecution()
		return nil
	}
	return fmt.Errorf("unknown PlanDecision unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PlanDecisionMutation) ResetEdge(name string) error {
	switch name {
	case plandecision.EdgeExecution:
		m.ResetExecution()
		return nil
	case plandecision.EdgeBlock:
		m.ResetBlock()
		return nil
	case plandecision.EdgeToolExecutions:
		m.ResetToolExecutions()
		return nil
	}
	return fmt.Errorf("unknown PlanDecision edge %s", name)
}

// ReportMutation represents an operation that mutates the Report nodes in the graph.
type ReportMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	title               *string
	organization_id     *string
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	completions         map[string]struct{}
	removedcompletions  map[string]struct{}
	clearedcompletions  bool
	data_sources        map[string]struct{}
	removeddata_sources map[string]struct{}
	cleareddata_sources bool
	instructions        map[string]struct{}
	removedinstructions map[string]struct{}
	clearedinstructions bool
	widgets             map[string]struct{}
	removedwidgets      map[string]struct{}
	clearedwidgets      bool
	queries             map[string]struct{}
	removedqueries      map[string]struct{}
	clearedqueries      bool
	done                bool
	oldValue            func(context.Context) (*Report, error)
	predicates          []predicate.Report
}

var _ ent.Mutation = (*ReportMutation)(nil)

// reportOption allows management of the mutation configuration using functional options.
type reportOption func(*ReportMutation)

// newReportMutation creates new mutation for the Report entity.
func newReportMutation(c config, op Op, opts ...reportOption) *ReportMutation {
	m := &ReportMutation{
		config:        c,
		op:            op,
		typ:           TypeReport,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReportID sets the ID field of the mutation.
func withReportID(id string) reportOption {
	return func(m *ReportMutation) {
		var (
			err   error
			once  sync.Once
			value *Report
		)
		m.oldValue = func(ctx context.Context) (*Report, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Report.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReport sets the old Report of the mutation.
func withReport(node *Report) reportOption {
	return func(m *ReportMutation) {
		m.oldValue = func(context.Context) (*Report, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReportMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReportMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Report entities.
func (m *ReportMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReportMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReportMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Report.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTitle sets the "title" field.
func (m *ReportMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ReportMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *ReportMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[report.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *ReportMutation) TitleCleared() bool {
	_, ok := m.clearedFields[report.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *ReportMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, report.FieldTitle)
}

// SetOrganizationID sets the "organization_id" field.
func (m *ReportMutation) SetOrganizationID(s string) {
	m.organization_id = &s
}

// OrganizationID returns the value of the "organization_id" field in the mutation.
func (m *ReportMutation) OrganizationID() (r string, exists bool) {
	v := m.organization_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrganizationID returns the old "organization_id" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldOrganizationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrganizationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrganizationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrganizationID: %w", err)
	}
	return oldValue.OrganizationID, nil
}

// ClearOrganizationID clears the value of the "organization_id" field.
func (m *ReportMutation) ClearOrganizationID() {
	m.organization_id = nil
	m.clearedFields[report.FieldOrganizationID] = struct{}{}
}

// OrganizationIDCleared returns if the "organization_id" field was cleared in this mutation.
func (m *ReportMutation) OrganizationIDCleared() bool {
	_, ok := m.clearedFields[report.FieldOrganizationID]
	return ok
}

// ResetOrganizationID resets all changes to the "organization_id" field.
func (m *ReportMutation) ResetOrganizationID() {
	m.organization_id = nil
	delete(m.clearedFields, report.FieldOrganizationID)
}

// SetCreatedAt sets the "created_at" field.
func (m *ReportMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ReportMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ReportMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ReportMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ReportMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ReportMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddCompletionIDs adds the "completions" edge to the Completion entity by ids.
func (m *ReportMutation) AddCompletionIDs(ids ...string) {
	if m.completions == nil {
		m.completions = make(map[string]struct{})
	}
	for i := range ids {
		m.completions[ids[i]] = struct{}{}
	}
}

// ClearCompletions clears the "completions" edge to the Completion entity.
func (m *ReportMutation) ClearCompletions() {
	m.clearedcompletions = true
}

// CompletionsCleared reports if the "completions" edge to the Completion entity was cleared.
func (m *ReportMutation) CompletionsCleared() bool {
	return m.clearedcompletions
}

// RemoveCompletionIDs removes the "completions" edge to the Completion entity by IDs.
func (m *ReportMutation) RemoveCompletionIDs(ids ...string) {
	if m.removedcompletions == nil {
		m.removedcompletions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.completions, ids[i])
		m.removedcompletions[ids[i]] = struct{}{}
	}
}

// RemovedCompletions returns the removed IDs of the "completions" edge to the Completion entity.
func (m *ReportMutation) RemovedCompletionsIDs() (ids []string) {
	for id := range m.removedcompletions {
		ids = append(ids, id)
	}
	return
}

// CompletionsIDs returns the "completions" edge IDs in the mutation.
func (m *ReportMutation) CompletionsIDs() (ids []string) {
	for id := range m.completions {
		ids = append(ids, id)
	}
	return
}

// ResetCompletions resets all changes to the "completions" edge.
func (m *ReportMutation) ResetCompletions() {
	m.completions = nil
	m.clearedcompletions = false
	m.removedcompletions = nil
}

// AddDataSourceIDs adds the "data_sources" edge to the DataSource entity by ids.
func (m *ReportMutation) AddDataSourceIDs(ids ...string) {
	if m.data_sources == nil {
		m.data_sources = make(map[string]struct{})
	}
	for i := range ids {
		m.data_sources[ids[i]] = struct{}{}
	}
}

// ClearDataSources clears the "data_sources" edge to the DataSource entity.
func (m *ReportMutation) ClearDataSources() {
	m.cleareddata_sources = true
}

// DataSourcesCleared reports if the "data_sources" edge to the DataSource entity was cleared.
func (m *ReportMutation) DataSourcesCleared() bool {
	return m.cleareddata_sources
}

// RemoveDataSourceIDs removes the "data_sources" edge to the DataSource entity by IDs.
func (m *ReportMutation) RemoveDataSourceIDs(ids ...string) {
	if m.removeddata_sources == nil {
		m.removeddata_sources = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.data_sources, ids[i])
		m.removeddata_sources[ids[i]] = struct{}{}
	}
}

// RemovedDataSources returns the removed IDs of the "data_sources" edge to the DataSource entity.
func (m *ReportMutation) RemovedDataSourcesIDs() (ids []string) {
	for id := range m.removeddata_sources {
		ids = append(ids, id)
	}
	return
}

// DataSourcesIDs returns the "data_sources" edge IDs in the mutation.
func (m *ReportMutation) DataSourcesIDs() (ids []string) {
	for id := range m.data_sources {
		ids = append(ids, id)
	}
	return
}

// ResetDataSources resets all changes to the "data_sources" edge.
func (m *ReportMutation) ResetDataSources() {
	m.data_sources = nil
	m.cleareddata_sources = false
	m.removeddata_sources = nil
}

// AddInstructionIDs adds the "instructions" edge to the Instruction entity by ids.
func (m *ReportMutation) AddInstructionIDs(ids ...string) {
	if m.instructions == nil {
		m.instructions = make(map[string]struct{})
	}
	for i := range ids {
		m.instructions[ids[i]] = struct{}{}
	}
}

// ClearInstructions clears the "instructions" edge to the Instruction entity.
func (m *ReportMutation) ClearInstructions() {
	m.clearedinstructions = true
}

// InstructionsCleared reports if the "instructions" edge to the Instruction entity was cleared.
func (m *ReportMutation) InstructionsCleared() bool {
	return m.clearedinstructions
}

// RemoveInstructionIDs removes the "instructions" edge to the Instruction entity by IDs.
func (m *ReportMutation) RemoveInstructionIDs(ids ...string) {
	if m.removedinstructions == nil {
		m.removedinstructions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.instructions, ids[i])
		m.removedinstructions[ids[i]] = struct{}{}
	}
}

// RemovedInstructions returns the removed IDs of the "instructions" edge to the Instruction entity.
func (m *ReportMutation) RemovedInstructionsIDs() (ids []string) {
	for id := range m.removedinstructions {
		ids = append(ids, id)
	}
	return
}

// InstructionsIDs returns the "instructions" edge IDs in the mutation.
func (m *ReportMutation) InstructionsIDs() (ids []string) {
	for id := range m.instructions {
		ids = append(ids, id)
	}
	return
}

// ResetInstructions resets all changes to the "instructions" edge.
func (m *ReportMutation) ResetInstructions() {
	m.instructions = nil
	m.clearedinstructions = false
	m.removedinstructions = nil
}

// AddWidgetIDs adds the "widgets" edge to the Widget entity by ids.
func (m *ReportMutation) AddWidgetIDs(ids ...string) {
	if m.widgets == nil {
		m.widgets = make(map[string]struct{})
	}
	for i := range ids {
		m.widgets[ids[i]] = struct{}{}
	}
}

// ClearWidgets clears the "widgets" edge to the Widget entity.
func (m *ReportMutation) ClearWidgets() {
	m.clearedwidgets = true
}

// WidgetsCleared reports if the "widgets" edge to the Widget entity was cleared.
func (m *ReportMutation) WidgetsCleared() bool {
	return m.clearedwidgets
}

// RemoveWidgetIDs removes the "widgets" edge to the Widget entity by IDs.
func (m *ReportMutation) RemoveWidgetIDs(ids ...string) {
	if m.removedwidgets == nil {
		m.removedwidgets = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.widgets, ids[i])
		m.removedwidgets[ids[i]] = struct{}{}
	}
}

// RemovedWidgets returns the removed IDs of the "widgets" edge to the Widget entity.
func (m *ReportMutation) RemovedWidgetsIDs() (ids []string) {
	for id := range m.removedwidgets {
		ids = append(ids, id)
	}
	return
}

// WidgetsIDs returns the "widgets" edge IDs in the mutation.
func (m *ReportMutation) WidgetsIDs() (ids []string) {
	for id := range m.widgets {
		ids = append(ids, id)
	}
	return
}

// ResetWidgets resets all changes to the "widgets" edge.
func (m *ReportMutation) ResetWidgets() {
	m.widgets = nil
	m.clearedwidgets = false
	m.removedwidgets = nil
}

// AddQueryIDs adds the "queries" edge to the DataQuery entity by ids.
func (m *ReportMutation) AddQueryIDs(ids ...string) {
	if m.queries == nil {
		m.queries = make(map[string]struct{})
	}
	for i := range ids {
		m.queries[ids[i]] = struct{}{}
	}
}

// ClearQueries clears the "queries" edge to the DataQuery entity.
func (m *ReportMutation) ClearQueries() {
	m.clearedqueries = true
}

// QueriesCleared reports if the "queries" edge to the DataQuery entity was cleared.
func (m *ReportMutation) QueriesCleared() bool {
	return m.clearedqueries
}

// RemoveQueryIDs removes the "queries" edge to the DataQuery entity by IDs.
func (m *ReportMutation) RemoveQueryIDs(ids ...string) {
	if m.removedqueries == nil {
		m.removedqueries = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.queries, ids[i])
		m.removedqueries[ids[i]] = struct{}{}
	}
}

// RemovedQueries returns the removed IDs of the "queries" edge to the DataQuery entity.
func (m *ReportMutation) RemovedQueriesIDs() (ids []string) {
	for id := range m.removedqueries {
		ids = append(ids, id)
	}
	return
}

// QueriesIDs returns the "queries" edge IDs in the mutation.
func (m *ReportMutation) QueriesIDs() (ids []string) {
	for id := range m.queries {
		ids = append(ids, id)
	}
	return
}

// ResetQueries resets all changes to the "queries" edge.
func (m *ReportMutation) ResetQueries() {
	m.queries = nil
	m.clearedqueries = false
	m.removedqueries = nil
}

// Where appends a list predicates to the ReportMutation builder.
func (m *ReportMutation) Where(ps ...predicate.Report) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReportMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReportMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Report, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReportMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReportMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Report).
func (m *ReportMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReportMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.title != nil {
		fields = append(fields, report.FieldTitle)
	}
	if m.organization_id != nil {
		fields = append(fields, report.FieldOrganizationID)
	}
	if m.created_at != nil {
		fields = append(fields, report.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, report.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReportMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case report.FieldTitle:
		return m.Title()
	case report.FieldOrganizationID:
		return m.OrganizationID()
	case report.FieldCreatedAt:
		return m.CreatedAt()
	case report.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReportMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case report.FieldTitle:
		return m.OldTitle(ctx)
	case report.FieldOrganizationID:
		return m.OldOrganizationID(ctx)
	case report.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case report.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Report field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReportMutation) SetField(name string, value ent.Value) error {
	switch name {
	case report.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case report.FieldOrganizationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrganizationID(v)
		return nil
	case report.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case report.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Report field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReportMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReportMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReportMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Report numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReportMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(report.FieldTitle) {
		fields = append(fields, report.FieldTitle)
	}
	if m.FieldCleared(report.FieldOrganizationID) {
		fields = append(fields, report.FieldOrganizationID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReportMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReportMutation) ClearField(name string) error {
	switch name {
	case report.FieldTitle:
		m.ClearTitle()
		return nil
	case report.FieldOrganizationID:
		m.ClearOrganizationID()
		return nil
	}
	return fmt.Errorf("unknown Report nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReportMutation) ResetField(name string) error {
	switch name {
	case report.FieldTitle:
		m.ResetTitle()
		return nil
	case report.FieldOrganizationID:
		m.ResetOrganizationID()
		return nil
	case report.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case report.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Report field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReportMutation) AddedEdges() []string {
	edges := make([]string, 0, 5)
	if m.completions != nil {
		edges = append(edges, report.EdgeCompletions)
	}
	if m.data_sources != nil {
		edges = append(edges, report.EdgeDataSources)
	}
	if m.instructions != nil {
		edges = append(edges, report.EdgeInstructions)
	}
	if m.widgets != nil {
		edges = append(edges, report.EdgeWidgets)
	}
	if m.queries != nil {
		edges = append(edges, report.EdgeQueries)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReportMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case report.EdgeCompletions:
		ids := make([]ent.Value, 0, len(m.completions))
		for id := range m.completions {
			ids = append(ids, id)
		}
		return ids
	case report.EdgeDataSources:
		ids := make([]ent.Value, 0, len(m.data_sources))
		for id := range m.data_sources {
			ids = append(ids, id)
		}
		return ids
	case report.EdgeInstructions:
		ids := make([]ent.Value, 0, len(m.instructions))
		for id := range m.instructions {
			ids = append(ids, id)
		}
		return ids
	case report.EdgeWidgets:
		ids := make([]ent.Value, 0, len(m.widgets))
		for id := range m.widgets {
			ids = append(ids, id)
		}
		return ids
	case report.EdgeQueries:
		ids := make([]ent.Value, 0, len(m.queries))
		for id := range m.queries {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReportMutation) RemovedEdges() []string {
	edges := make([]string, 0, 5)
	if m.removedcompletions != nil {
		edges = append(edges, report.EdgeCompletions)
	}
	if m.removeddata_sources != nil {
		edges = append(edges, report.EdgeDataSources)
	}
	if m.removedinstructions != nil {
		edges = append(edges, report.EdgeInstructions)
	}
	if m.removedwidgets != nil {
		edges = append(edges, report.EdgeWidgets)
	}
	if m.removedqueries != nil {
		edges = append(edges, report.EdgeQueries)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReportMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case report.EdgeCompletions:
		ids := make([]ent.Value, 0, len(m.removedcompletions))
		for id := range m.removedcompletions {
			ids = append(ids, id)
		}
		return ids
	case report.EdgeDataSources:
		ids := make([]ent.Value, 0, len(m.removeddata_sources))
		for id := range m.removeddata_sources {
			ids = append(ids, id)
		}
		return ids
	case report.EdgeInstructions:
		ids := make([]ent.Value, 0, len(m.removedinstructions))
		for id := range m.removedinstructions {
			ids = append(ids, id)
		}
		return ids
	case report.EdgeWidgets:
		ids := make([]ent.Value, 0, len(m.removedwidgets))
		for id := range m.removedwidgets {
			ids = append(ids, id)
		}
		return ids
	case report.EdgeQueries:
		ids := make([]ent.Value, 0, len(m.removedqueries))
		for id := range m.removedqueries {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReportMutation) ClearedEdges() []string {
	edges := make([]string, 0, 5)
	if m.clearedcompletions {
		edges = append(edges, report.EdgeCompletions)
	}
	if m.cleareddata_sources {
		edges = append(edges, report.EdgeDataSources)
	}
	if m.clearedinstructions {
		edges = append(edges, report.EdgeInstructions)
	}
	if m.clearedwidgets {
		edges = append(edges, report.EdgeWidgets)
	}
	if m.clearedqueries {
		edges = append(edges, report.EdgeQueries)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReportMutation) EdgeCleared(name string) bool {
	switch name {
	case report.EdgeCompletions:
		return m.clearedcompletions
	case report.EdgeDataSources:
		return m.cleareddata_sources
	case report.EdgeInstructions:
		return m.clearedinstructions
	case report.EdgeWidgets:
		return m.clearedwidgets
	case report.EdgeQueries:
		return m.clearedqueries
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReportMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Report unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReportMutation) ResetEdge(name string) error {
	switch name {
	case report.EdgeCompletions:
		m.ResetCompletions()
		return nil
	case report.EdgeDataSources:
		m.ResetDataSources()
		return nil
	case report.EdgeInstructions:
		m.ResetInstructions()
		return nil
	case report.EdgeWidgets:
		m.ResetWidgets()
		return nil
	case report.EdgeQueries:
		m.ResetQueries()
		return nil
	}
	return fmt.Errorf("unknown Report edge %s", name)
}

// StepMutation represents an operation that mutates the Step nodes in the graph.
type StepMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	query_id              *string
	code                  *string
	data                  *[]map[string]interface{}
	appenddata            []map[string]interface{}
	data_model            *map[string]interface{}
	status                *step.Status
	error_message         *string
	created_at            *time.Time
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	widget                *string
	clearedwidget         bool
	visualizations        map[string]struct{}
	removedvisualizations map[string]struct{}
	clearedvisualizations bool
	done                  bool
	oldValue              func(context.Context) (*Step, error)
	predicates            []predicate.Step
}

var _ ent.Mutation = (*StepMutation)(nil)

// stepOption allows management of the mutation configuration using functional options.
type stepOption func(*StepMutation)

// newStepMutation creates new mutation for the Step entity.
func newStepMutation(c config, op Op, opts ...stepOption) *StepMutation {
	m := &StepMutation{
		config:        c,
		op:            op,
		typ:           TypeStep,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStepID sets the ID field of the mutation.
func withStepID(id string) stepOption {
	return func(m *StepMutation) {
		var (
			err   error
			once  sync.Once
			value *Step
		)
		m.oldValue = func(ctx context.Context) (*Step, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Step.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStep sets the old Step of the mutation.
func withStep(node *Step) stepOption {
	return func(m *StepMutation) {
		m.oldValue = func(context.Context) (*Step, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StepMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StepMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Step entities.
func (m *StepMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StepMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StepMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Step.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWidgetID sets the "widget_id" field.
func (m *StepMutation) SetWidgetID(s string) {
	m.widget = &s
}

// WidgetID returns the value of the "widget_id" field in the mutation.
func (m *StepMutation) WidgetID() (r string, exists bool) {
	v := m.widget
	if v == nil {
		return
	}
	return *v, true
}

// OldWidgetID returns the old "widget_id" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldWidgetID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWidgetID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWidgetID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWidgetID: %w", err)
	}
	return oldValue.WidgetID, nil
}

// ResetWidgetID resets all changes to the "widget_id" field.
func (m *StepMutation) ResetWidgetID() {
	m.widget = nil
}

// SetQueryID sets the "query_id" field.
func (m *StepMutation) SetQueryID(s string) {
	m.query_id = &s
}

// QueryID returns the value of the "query_id" field in the mutation.
func (m *StepMutation) QueryID() (r string, exists bool) {
	v := m.query_id
	if v == nil {
		return
	}
	return *v, true
}

// OldQueryID returns the old "query_id" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldQueryID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQueryID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQueryID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQueryID: %w", err)
	}
	return oldValue.QueryID, nil
}

// ClearQueryID clears the value of the "query_id" field.
func (m *StepMutation) ClearQueryID() {
	m.query_id = nil
	m.clearedFields[step.FieldQueryID] = struct{}{}
}

// QueryIDCleared returns if the "query_id" field was cleared in this mutation.
func (m *StepMutation) QueryIDCleared() bool {
	_, ok := m.clearedFields[step.FieldQueryID]
	return ok
}

// ResetQueryID resets all changes to the "query_id" field.
func (m *StepMutation) ResetQueryID() {
	m.query_id = nil
	delete(m.clearedFields, step.FieldQueryID)
}

// SetCode sets the "code" field.
func (m *StepMutation) SetCode(s string) {
	m.code = &s
}

// Code returns the value of the "code" field in the mutation.
func (m *StepMutation) Code() (r string, exists bool) {
	v := m.code
	if v == nil {
		return
	}
	return *v, true
}

// OldCode returns the old "code" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCode: %w", err)
	}
	return oldValue.Code, nil
}

// ResetCode resets all changes to the "code" field.
func (m *StepMutation) ResetCode() {
	m.code = nil
}

// SetData sets the "data" field.
func (m *StepMutation) SetData(value []map[string]interface{}) {
	m.data = &value
	m.appenddata = nil
}

// Data returns the value of the "data" field in the mutation.
func (m *StepMutation) Data() (r []map[string]interface{}, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldData returns the old "data" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldData(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldData: %w", err)
	}
	return oldValue.Data, nil
}

// AppendData adds value to the "data" field.
func (m *StepMutation) AppendData(value []map[string]interface{}) {
	m.appenddata = append(m.appenddata, value...)
}

// AppendedData returns the list of values that were appended to the "data" field in this mutation.
func (m *StepMutation) AppendedData() ([]map[string]interface{}, bool) {
	if len(m.appenddata) == 0 {
		return nil, false
	}
	return m.appenddata, true
}

// ClearData clears the value of the "data" field.
func (m *StepMutation) ClearData() {
	m.data = nil
	m.appenddata = nil
	m.clearedFields[step.FieldData] = struct{}{}
}

// DataCleared returns if the "data" field was cleared in this mutation.
func (m *StepMutation) DataCleared() bool {
	_, ok := m.clearedFields[step.FieldData]
	return ok
}

// ResetData resets all changes to the "data" field.
func (m *StepMutation) ResetData() {
	m.data = nil
	m.appenddata = nil
	delete(m.clearedFields, step.FieldData)
}

// SetDataModel sets the "data_model" field.
func (m *StepMutation) SetDataModel(value map[string]interface{}) {
	m.data_model = &value
}

// DataModel returns the value of the "data_model" field in the mutation.
func (m *StepMutation) DataModel() (r map[string]interface{}, exists bool) {
	v := m.data_model
	if v == nil {
		return
	}
	return *v, true
}

// OldDataModel returns the old "data_model" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldDataModel(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDataModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDataModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDataModel: %w", err)
	}
	return oldValue.DataModel, nil
}

// ClearDataModel clears the value of the "data_model" field.
func (m *StepMutation) ClearDataModel() {
	m.data_model = nil
	m.clearedFields[step.FieldDataModel] = struct{}{}
}

// DataModelCleared returns if the "data_model" field was cleared in this mutation.
func (m *StepMutation) DataModelCleared() bool {
	_, ok := m.clearedFields[step.FieldDataModel]
	return ok
}

// ResetDataModel resets all changes to the "data_model" field.
func (m *StepMutation) ResetDataModel() {
	m.data_model = nil
	delete(m.clearedFields, step.FieldDataModel)
}

// SetStatus sets the "status" field.
func (m *StepMutation) SetStatus(s step.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *StepMutation) Status() (r step.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldStatus(ctx context.Context) (v step.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *StepMutation) ResetStatus() {
	m.status = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *StepMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *StepMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *StepMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[step.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *StepMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[step.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *StepMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, step.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *StepMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StepMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StepMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *StepMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *StepMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *StepMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearWidget clears the "widget" edge to the Widget entity.
func (m *StepMutation) ClearWidget() {
	m.clearedwidget = true
	m.clearedFields[step.FieldWidgetID] = struct{}{}
}

// WidgetCleared reports if the "widget" edge to the Widget entity was cleared.
func (m *StepMutation) WidgetCleared() bool {
	return m.clearedwidget
}

// WidgetIDs returns the "widget" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WidgetID instead. It exists only for internal usage by the builders.
func (m *StepMutation) WidgetIDs() (ids []string) {
	if id := m.widget; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWidget resets all changes to the "widget" edge.
func (m *StepMutation) ResetWidget() {
	m.widget = nil
	m.clearedwidget = false
}

// AddVisualizationIDs adds the "visualizations" edge to the Visualization entity by ids.
func (m *StepMutation) AddVisualizationIDs(ids ...string) {
	if m.visualizations == nil {
		m.visualizations = make(map[string]struct{})
	}
	for i := range ids {
		m.visualizations[ids[i]] = struct{}{}
	}
}

// ClearVisualizations clears the "visualizations" edge to the Visualization entity.
func (m *StepMutation) ClearVisualizations() {
	m.clearedvisualizations = true
}

// VisualizationsCleared reports if the "visualizations" edge to the Visualization entity was cleared.
func (m *StepMutation) VisualizationsCleared() bool {
	return m.clearedvisualizations
}

// RemoveVisualizationIDs removes the "visualizations" edge to the Visualization entity by IDs.
func (m *StepMutation) RemoveVisualizationIDs(ids ...string) {
	if m.removedvisualizations == nil {
		m.removedvisualizations = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.visualizations, ids[i])
		m.removedvisualizations[ids[i]] = struct{}{}
	}
}

// RemovedVisualizations returns the removed IDs of the "visualizations" edge to the Visualization entity.
func (m *StepMutation) RemovedVisualizationsIDs() (ids []string) {
	for id := range m.removedvisualizations {
		ids = append(ids, id)
	}
	return
}

// VisualizationsIDs returns the "visualizations" edge IDs in the mutation.
func (m *StepMutation) VisualizationsIDs() (ids []string) {
	for id := range m.visualizations {
		ids = append(ids, id)
	}
	return
}

// ResetVisualizations resets all changes to the "visualizations" edge.
func (m *StepMutation) ResetVisualizations() {
	m.visualizations = nil
	m.clearedvisualizations = false
	m.removedvisualizations = nil
}

// Where appends a list predicates to the StepMutation builder.
func (m *StepMutation) Where(ps ...predicate.Step) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StepMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StepMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Step, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StepMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StepMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Step).
func (m *StepMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StepMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.widget != nil {
		fields = append(fields, step.FieldWidgetID)
	}
	if m.query_id != nil {
		fields = append(fields, step.FieldQueryID)
	}
	if m.code != nil {
		fields = append(fields, step.FieldCode)
	}
	if m.data != nil {
		fields = append(fields, step.FieldData)
	}
	if m.data_model != nil {
		fields = append(fields, step.FieldDataModel)
	}
	if m.status != nil {
		fields = append(fields, step.FieldStatus)
	}
	if m.error_message != nil {
		fields = append(fields, step.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, step.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, step.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StepMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case step.FieldWidgetID:
		return m.WidgetID()
	case step.FieldQueryID:
		return m.QueryID()
	case step.FieldCode:
		return m.Code()
	case step.FieldData:
		return m.Data()
	case step.FieldDataModel:
		return m.DataModel()
	case step.FieldStatus:
		return m.Status()
	case step.FieldErrorMessage:
		return m.ErrorMessage()
	case step.FieldCreatedAt:
		return m.CreatedAt()
	case step.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StepMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case step.FieldWidgetID:
		return m.OldWidgetID(ctx)
	case step.FieldQueryID:
		return m.OldQueryID(ctx)
	case step.FieldCode:
		return m.OldCode(ctx)
	case step.FieldData:
		return m.OldData(ctx)
	case step.FieldDataModel:
		return m.OldDataModel(ctx)
	case step.FieldStatus:
		return m.OldStatus(ctx)
	case step.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case step.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case step.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Step field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StepMutation) SetField(name string, value ent.Value) error {
	switch name {
	case step.FieldWidgetID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWidgetID(v)
		return nil
	case step.FieldQueryID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQueryID(v)
		return nil
	case step.FieldCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCode(v)
		return nil
	case step.FieldData:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetData(v)
		return nil
	case step.FieldDataModel:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDataModel(v)
		return nil
	case step.FieldStatus:
		v, ok := value.(step.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case step.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case step.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case step.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Step field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StepMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StepMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StepMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Step numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StepMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(step.FieldQueryID) {
		fields = append(fields, step.FieldQueryID)
	}
	if m.FieldCleared(step.FieldData) {
		fields = append(fields, step.FieldData)
	}
	if m.FieldCleared(step.FieldDataModel) {
		fields = append(fields, step.FieldDataModel)
	}
	if m.FieldCleared(step.FieldErrorMessage) {
		fields = append(fields, step.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StepMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StepMutation) ClearField(name string) error {
	switch name {
	case step.FieldQueryID:
		m.ClearQueryID()
		return nil
	case step.FieldData:
		m.ClearData()
		return nil
	case step.FieldDataModel:
		m.ClearDataModel()
		return nil
	case step.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown Step nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StepMutation) ResetField(name string) error {
	switch name {
	case step.FieldWidgetID:
		m.ResetWidgetID()
		return nil
	case step.FieldQueryID:
		m.ResetQueryID()
		return nil
	case step.FieldCode:
		m.ResetCode()
		return nil
	case step.FieldData:
		m.ResetData()
		return nil
	case step.FieldDataModel:
		m.ResetDataModel()
		return nil
	case step.FieldStatus:
		m.ResetStatus()
		return nil
	case step.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case step.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case step.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Step field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StepMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.widget != nil {
		edges = append(edges, step.EdgeWidget)
	}
	if m.visualizations != nil {
		edges = append(edges, step.EdgeVisualizations)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StepMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case step.EdgeWidget:
		if id := m.widget; id != nil {
			return []ent.Value{*id}
		}
	case step.EdgeVisualizations:
		ids := make([]ent.Value, 0, len(m.visualizations))
		for id := range m.visualizations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StepMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedvisualizations != nil {
		edges = append(edges, step.EdgeVisualizations)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StepMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case step.EdgeVisualizations:
		ids := make([]ent.Value, 0, len(m.removedvisualizations))
		for id := range m.removedvisualizations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StepMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedwidget {
		edges = append(edges, step.EdgeWidget)
	}
	if m.clearedvisualizations {
		edges = append(edges, step.EdgeVisualizations)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StepMutation) EdgeCleared(name string) bool {
	switch name {
	case step.EdgeWidget:
		return m.clearedwidget
	case step.EdgeVisualizations:
		return m.clearedvisualizations
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StepMutation) ClearEdge(name string) error {
	switch name {
	case step.EdgeWidget:
		m.ClearWidget()
		return nil
	}
	return fmt.Errorf("unknown Step unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StepMutation) ResetEdge(name string) error {
	switch name {
	case step.EdgeWidget:
		m.ResetWidget()
		return nil
	case step.EdgeVisualizations:
		m.ResetVisualizations()
		return nil
	}
	return fmt.Errorf("unknown Step edge %s", name)
}

// ToolExecutionMutation represents an operation that mutates the ToolExecution nodes in the graph.
type ToolExecutionMutation struct {
	config
	op                              Op
	typ                             string
	id                              *string
	tool_name                       *string
	tool_action                     *string
	arguments                       *map[string]interface{}
	status                          *toolexecution.Status
	result                          *map[string]interface{}
	result_summary                  *string
	error_message                   *string
	duration_ms                     *int
	addduration_ms                  *int
	attempt_number                  *int
	addattempt_number               *int
	created_widget_id               *string
	created_step_id                 *string
	created_visualization_ids       *[]string
	appendcreated_visualization_ids []string
	started_at                      *time.Time
	completed_at                    *time.Time
	clearedFields                   map[string]struct{}
	decision                        *string
	cleareddecision                 bool
	execution                       *string
	clearedexecution                bool
	block                           map[string]struct{}
	removedblock                    map[string]struct{}
	clearedblock                    bool
	done                            bool
	oldValue                        func(context.Context) (*ToolExecution, error)
	predicates                      []predicate.ToolExecution
}

var _ ent.Mutation = (*ToolExecutionMutation)(nil)

// toolexecutionOption allows management of the mutation configuration using functional options.
type toolexecutionOption func(*ToolExecutionMutation)

// newToolExecutionMutation creates new mutation for the ToolExecution entity.
func newToolExecutionMutation(c config, op Op, opts ...toolexecutionOption) *ToolExecutionMutation {
	m := &ToolExecutionMutation{
		config:        c,
		op:            op,
		typ:           TypeToolExecution,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withToolExecutionID sets the ID field of the mutation.
func withToolExecutionID(id string) toolexecutionOption {
	return func(m *ToolExecutionMutation) {
		var (
			err   error
			once  sync.Once
			value *ToolExecution
		)
		m.oldValue = func(ctx context.Context) (*ToolExecution, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ToolExecution.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withToolExecution sets the old ToolExecution of the mutation.
func withToolExecution(node *ToolExecution) toolexecutionOption {
	return func(m *ToolExecutionMutation) {
		m.oldValue = func(context.Context) (*ToolExecution, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ToolExecutionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ToolExecutionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ToolExecution entities.
func (m *ToolExecutionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ToolExecutionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ToolExecutionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ToolExecution.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPlanDecisionID sets the "plan_decision_id" field.
func (m *ToolExecutionMutation) SetPlanDecisionID(s string) {
	m.decision = &s
}

// PlanDecisionID returns the value of the "plan_decision_id" field in the mutation.
func (m *ToolExecutionMutation) PlanDecisionID() (r string, exists bool) {
	v := m.decision
	if v == nil {
		return
	}
	return *v, true
}

// OldPlanDecisionID returns the old "plan_decision_id" field's value of the ToolExecution entity.
// If the ToolExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolExecutionMutation) OldPlanDecisionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlanDecisionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlanDecisionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlanDecisionID: %w", err)
	}
	return oldValue.PlanDecisionID, nil
}

// ResetPlanDecisionID resets all changes to the "plan_decision_id" field.
func (m *ToolExecutionMutation) ResetPlanDecisionID() {
	m.decision = nil
}

// SetAgentExecutionID sets the "agent_execution_id" field.
func (m *ToolExecutionMutation) SetAgentExecutionID(s string) {
	m.execution = &s
}

// AgentExecutionID returns the value of the "agent_execution_id" field in the mutation.
func (m *ToolExecutionMutation) AgentExecutionID() (r string, exists bool) {
	v := m.execution
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentExecutionID returns the old "agent_execution_id" field's value of the ToolExecution entity.
// If the ToolExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolExecutionMutation) OldAgentExecutionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentExecutionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentExecutionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentExecutionID: %w", err)
	}
	return oldValue.AgentExecutionID, nil
}

// ResetAgentExecutionID resets all changes to the "agent_execution_id" field.
func (m *ToolExecutionMutation) ResetAgentExecutionID() {
	m.execution = nil
}

// SetToolName sets the "tool_name" field.
func (m *ToolExecutionMutation) SetToolName(s string) {
	m.tool_name = &s
}

// ToolName returns the value of the "tool_name" field in the mutation.
func (m *ToolExecutionMutation) ToolName() (r string, exists bool) {
	v := m.tool_name
	if v == nil {
		return
	}
	return *v, true
}

// OldToolName returns the old "tool_name" field's value of the ToolExecution entity.
// If the ToolExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolExecutionMutation) OldToolName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolName: %w", err)
	}
	return oldValue.ToolName, nil
}

// ResetToolName resets all changes to the "tool_name" field.
func (m *ToolExecutionMutation) ResetToolName() {
	m.tool_name = nil
}

// SetToolAction sets the "tool_action" field.
func (m *ToolExecutionMutation) SetToolAction(s string) {
	m.tool_action = &s
}

// ToolAction returns the value of the "tool_action" field in the mutation.
func (m *ToolExecutionMutation) ToolAction() (r string, exists bool) {
	v := m.tool_action
	if v == nil {
		return
	}
	return *v, true
}

// OldToolAction returns the old "tool_action" field's value of the ToolExecution entity.
// If the ToolExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolExecutionMutation) OldToolAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolAction: %w", err)
	}
	return oldValue.ToolAction, nil
}

// ClearToolAction clears the value of the "tool_action" field.
func (m *ToolExecutionMutation) ClearToolAction() {
	m.tool_action = nil
	m.clearedFields[toolexecution.FieldToolAction] = struct{}{}
}

// ToolActionCleared returns if the "tool_action" field was cleared in this mutation.
func (m *ToolExecutionMutation) ToolActionCleared() bool {
	_, ok := m.clearedFields[toolexecution.FieldToolAction]
	return ok
}

// ResetToolAction resets all changes to the "tool_action" field.
func (m *ToolExecutionMutation) ResetToolAction() {
	m.tool_action = nil
	delete(m.clearedFields, toolexecution.FieldToolAction)
}

// SetArguments sets the "arguments" field.
func (m *ToolExecutionMutation) SetArguments(value map[string]interface{}) {
	m.arguments = &value
}

// Arguments returns the value of the "arguments" field in the mutation.
func (m *ToolExecutionMutation) Arguments() (r map[string]interface{}, exists bool) {
	v := m.arguments
	if v == nil {
		return
	}
	return *v, true
}

// OldArguments returns the old "arguments" field's value of the ToolExecution entity.
// If the ToolExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolExecutionMutation) OldArguments(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArguments is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArguments requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArguments: %w", err)
	}
	return oldValue.Arguments, nil
}

// ClearArguments clears the value of the "arguments" field.
func (m *ToolExecutionMutation) ClearArguments() {
	m.arguments = nil
	m.clearedFields[toolexecution.FieldArguments] = struct{}{}
}

// ArgumentsCleared returns if the "arguments" field was cleared in this mutation.
func (m *ToolExecutionMutation) ArgumentsCleared() bool {
	_, ok := m.clearedFields[toolexecution.FieldArguments]
	return ok
}

// ResetArguments resets all changes to the "arguments" field.
func (m *ToolExecutionMutation) ResetArguments() {
	m.arguments = nil
	delete(m.clearedFields, toolexecution.FieldArguments)
}

// SetStatus sets the "status" field.
func (m *ToolExecutionMutation) SetStatus(t toolexecution.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *ToolExecutionMutation) Status() (r toolexecution.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ToolExecution entity.
// If the ToolExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolExecutionMutation) OldStatus(ctx context.Context) (v toolexecution.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ToolExecutionMutation) ResetStatus() {
	m.status = nil
}

// SetResult sets the "result" field.
func (m *ToolExecutionMutation) SetResult(value map[string]interface{}) {
	m.result = &value
}

// Result returns the value of the "result" field in the mutation.
func (m *ToolExecutionMutation) Result() (r map[string]interface{}, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the ToolExecution entity.
// If the ToolExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolExecutionMutation) OldResult(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResult: %w", err)
	}
	return oldValue.Result, nil
}

// ClearResult clears the value of the "result" field.
func (m *ToolExecutionMutation) ClearResult() {
	m.result = nil
	m.clearedFields[toolexecution.FieldResult] = struct{}{}
}

// ResultCleared returns if the "result" field was cleared in this mutation.
func (m *ToolExecutionMutation) ResultCleared() bool {
	_, ok := m.clearedFields[toolexecution.FieldResult]
	return ok
}

// ResetResult resets all changes to the "result" field.
func (m *ToolExecutionMutation) ResetResult() {
	m.result = nil
	delete(m.clearedFields, toolexecution.FieldResult)
}

// SetResultSummary sets the "result_summary" field.
func (m *ToolExecutionMutation) SetResultSummary(s string) {
	m.result_summary = &s
}

// ResultSummary returns the value of the "result_summary" field in the mutation.
func (m *ToolExecutionMutation) ResultSummary() (r string, exists bool) {
	v := m.result_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldResultSummary returns the old "result_summary" field's value of the ToolExecution entity.
// If the ToolExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolExecutionMutation) OldResultSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResultSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResultSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResultSummary: %w", err)
	}
	return oldValue.ResultSummary, nil
}

// ClearResultSummary clears the value of the "result_summary" field.
func (m *ToolExecutionMutation) ClearResultSummary() {
	m.result_summary = nil
	m.clearedFields[toolexecution.FieldResultSummary] = struct{}{}
}

// ResultSummaryCleared returns if the "result_summary" field was cleared in this mutation.
func (m *ToolExecutionMutation) ResultSummaryCleared() bool {
	_, ok := m.clearedFields[toolexecution.FieldResultSummary]
	return ok
}

// ResetResultSummary resets all changes to the "result_summary" field.
func (m *ToolExecutionMutation) ResetResultSummary() {
	m.result_summary = nil
	delete(m.clearedFields, toolexecution.FieldResultSummary)
}

// SetErrorMessage sets the "error_message" field.
func (m *ToolExecutionMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ToolExecutionMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ToolExecution entity.
// If the ToolExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolExecutionMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ToolExecutionMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[toolexecution.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ToolExecutionMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[toolexecution.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ToolExecutionMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, toolexecution.FieldErrorMessage)
}

// SetDurationMs sets the "duration_ms" field.
func (m *ToolExecutionMutation) SetDurationMs(i int) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *ToolExecutionMutation) DurationMs() (r int, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the ToolExecution entity.
// If the ToolExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolExecutionMutation) OldDurationMs(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *ToolExecutionMutation) AddDurationMs(i int) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *ToolExecutionMutation) AddedDurationMs() (r int, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (m *ToolExecutionMutation) ClearDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	m.clearedFields[toolexecution.FieldDurationMs] = struct{}{}
}

// DurationMsCleared returns if the "duration_ms" field was cleared in this mutation.
func (m *ToolExecutionMutation) DurationMsCleared() bool {
	_, ok := m.clearedFields[toolexecution.FieldDurationMs]
	return ok
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *ToolExecutionMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	delete(m.clearedFields, toolexecution.FieldDurationMs)
}

// SetAttemptNumber sets the "attempt_number" field.
func (m *ToolExecutionMutation) SetAttemptNumber(i int) {
	m.attempt_number = &i
	m.addattempt_number = nil
}

// AttemptNumber returns the value of the "attempt_number" field in the mutation.
func (m *ToolExecutionMutation) AttemptNumber() (r int, exists bool) {
	v := m.attempt_number
	if v == nil {
		return
	}
	return *v, true
}

// OldAttemptNumber returns the old "attempt_number" field's value of the ToolExecution entity.
// If the ToolExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolExecutionMutation) OldAttemptNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttemptNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttemptNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttemptNumber: %w", err)
	}
	return oldValue.AttemptNumber, nil
}

// AddAttemptNumber adds i to the "attempt_number" field.
func (m *ToolExecutionMutation) AddAttemptNumber(i int) {
	if m.addattempt_number != nil {
		*m.addattempt_number += i
	} else {
		m.addattempt_number = &i
	}
}

// AddedAttemptNumber returns the value that was added to the "attempt_number" field in this mutation.
func (m *ToolExecutionMutation) AddedAttemptNumber() (r int, exists bool) {
	v := m.addattempt_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttemptNumber resets all changes to the "attempt_number" field.
func (m *ToolExecutionMutation) ResetAttemptNumber() {
	m.attempt_number = nil
	m.addattempt_number = nil
}

// SetCreatedWidgetID sets the "created_widget_id" field.
func (m *ToolExecutionMutation) SetCreatedWidgetID(s string) {
	m.created_widget_id = &s
}

// CreatedWidgetID returns the value of the "created_widget_id" field in the mutation.
func (m *ToolExecutionMutation) CreatedWidgetID() (r string, exists bool) {
	v := m.created_widget_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedWidgetID returns the old "created_widget_id" field's value of the ToolExecution entity.
// If the ToolExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolExecutionMutation) OldCreatedWidgetID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedWidgetID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedWidgetID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedWidgetID: %w", err)
	}
	return oldValue.CreatedWidgetID, nil
}

// ClearCreatedWidgetID clears the value of the "created_widget_id" field.
func (m *ToolExecutionMutation) ClearCreatedWidgetID() {
	m.created_widget_id = nil
	m.clearedFields[toolexecution.FieldCreatedWidgetID] = struct{}{}
}

// CreatedWidgetIDCleared returns if the "created_widget_id" field was cleared in this mutation.
func (m *ToolExecutionMutation) CreatedWidgetIDCleared() bool {
	_, ok := m.clearedFields[toolexecution.FieldCreatedWidgetID]
	return ok
}

// ResetCreatedWidgetID resets all changes to the "created_widget_id" field.
func (m *ToolExecutionMutation) ResetCreatedWidgetID() {
	m.created_widget_id = nil
	delete(m.clearedFields, toolexecution.FieldCreatedWidgetID)
}

// SetCreatedStepID sets the "created_step_id" field.
func (m *ToolExecutionMutation) SetCreatedStepID(s string) {
	m.created_step_id = &s
}

// CreatedStepID returns the value of the "created_step_id" field in the mutation.
func (m *ToolExecutionMutation) CreatedStepID() (r string, exists bool) {
	v := m.created_step_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedStepID returns the old "created_step_id" field's value of the ToolExecution entity.
// If the ToolExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolExecutionMutation) OldCreatedStepID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedStepID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedStepID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedStepID: %w", err)
	}
	return oldValue.CreatedStepID, nil
}

// ClearCreatedStepID clears the value of the "created_step_id" field.
func (m *ToolExecutionMutation) ClearCreatedStepID() {
	m.created_step_id = nil
	m.clearedFields[toolexecution.FieldCreatedStepID] = struct{}{}
}

// CreatedStepIDCleared returns if the "created_step_id" field was cleared in this mutation.
func (m *ToolExecutionMutation) CreatedStepIDCleared() bool {
	_, ok := m.clearedFields[toolexecution.FieldCreatedStepID]
	return ok
}

// ResetCreatedStepID resets all changes to the "created_step_id" field.
func (m *ToolExecutionMutation) ResetCreatedStepID() {
	m.created_step_id = nil
	delete(m.clearedFields, toolexecution.FieldCreatedStepID)
}

// SetCreatedVisualizationIds sets the "created_visualization_ids" field.
func (m *ToolExecutionMutation) SetCreatedVisualizationIds(s []string) {
	m.created_visualization_ids = &s
	m.appendcreated_visualization_ids = nil
}

// CreatedVisualizationIds returns the value of the "created_visualization_ids" field in the mutation.
func (m *ToolExecutionMutation) CreatedVisualizationIds() (r []string, exists bool) {
	v := m.created_visualization_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedVisualizationIds returns the old "created_visualization_ids" field's value of the ToolExecution entity.
// If the ToolExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolExecutionMutation) OldCreatedVisualizationIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedVisualizationIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedVisualizationIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedVisualizationIds: %w", err)
	}
	return oldValue.CreatedVisualizationIds, nil
}

// AppendCreatedVisualizationIds adds s to the "created_visualization_ids" field.
func (m *ToolExecutionMutation) AppendCreatedVisualizationIds(s []string) {
	m.appendcreated_visualization_ids = append(m.appendcreated_visualization_ids, s...)
}

// AppendedCreatedVisualizationIds returns the list of values that were appended to the "created_visualization_ids" field in this mutation.
func (m *ToolExecutionMutation) AppendedCreatedVisualizationIds() ([]string, bool) {
	if len(m.appendcreated_visualization_ids) == 0 {
		return nil, false
	}
	return m.appendcreated_visualization_ids, true
}

// ClearCreatedVisualizationIds clears the value of the "created_visualization_ids" field.
func (m *ToolExecutionMutation) ClearCreatedVisualizationIds() {
	m.created_visualization_ids = nil
	m.appendcreated_visualization_ids = nil
	m.clearedFields[toolexecution.FieldCreatedVisualizationIds] = struct{}{}
}

// CreatedVisualizationIdsCleared returns if the "created_visualization_ids" field was cleared in this mutation.
func (m *ToolExecutionMutation) CreatedVisualizationIdsCleared() bool {
	_, ok := m.clearedFields[toolexecution.FieldCreatedVisualizationIds]
	return ok
}

// ResetCreatedVisualizationIds resets all changes to the "created_visualization_ids" field.
func (m *ToolExecutionMutation) ResetCreatedVisualizationIds() {
	m.created_visualization_ids = nil
	m.appendcreated_visualization_ids = nil
	delete(m.clearedFields, toolexecution.FieldCreatedVisualizationIds)
}

// SetStartedAt sets the "started_at" field.
func (m *ToolExecutionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ToolExecutionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ToolExecution entity.
// If the ToolExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolExecutionMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ToolExecutionMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *ToolExecutionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *ToolExecutionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the ToolExecution entity.
// If the ToolExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolExecutionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *ToolExecutionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[toolexecution.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *ToolExecutionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[toolexecution.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *ToolExecutionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, toolexecution.FieldCompletedAt)
}

// SetDecisionID sets the "decision" edge to the PlanDecision entity by id.
func (m *ToolExecutionMutation) SetDecisionID(id string) {
	m.decision = &id
}

// ClearDecision clears the "decision" edge to the PlanDecision entity.
func (m *ToolExecutionMutation) ClearDecision() {
	m.cleareddecision = true
	m.clearedFields[toolexecution.FieldPlanDecisionID] = struct{}{}
}

// DecisionCleared reports if the "decision" edge to the PlanDecision entity was cleared.
func (m *ToolExecutionMutation) DecisionCleared() bool {
	return m.cleareddecision
}

// DecisionID returns the "decision" edge ID in the mutation.
func (m *ToolExecutionMutation) DecisionID() (id string, exists bool) {
	if m.decision != nil {
		return *m.decision, true
	}
	return
}

// DecisionIDs returns the "decision" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DecisionID instead. It exists only for internal usage by the builders.
func (m *ToolExecutionMutation) DecisionIDs() (ids []string) {
	if id := m.decision; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDecision resets all changes to the "decision" edge.
func (m *ToolExecutionMutation) ResetDecision() {
	m.decision = nil
	m.cleareddecision = false
}

// SetExecutionID sets the "execution" edge to the AgentExecution entity by id.
func (m *ToolExecutionMutation) SetExecutionID(id string) {
	m.execution = &id
}

// ClearExecution clears the "execution" edge to the AgentExecution entity.
func (m *ToolExecutionMutation) ClearExecution() {
	m.clearedexecution = true
	m.clearedFields[toolexecution.FieldAgentExecutionID] = struct{}{}
}

// ExecutionCleared reports if the "execution" edge to the AgentExecution entity was cleared.
func (m *ToolExecutionMutation) ExecutionCleared() bool {
	return m.clearedexecution
}

// ExecutionID returns the "execution" edge ID in the mutation.
func (m *ToolExecutionMutation) ExecutionID() (id string, exists bool) {
	if m.execution != nil {
		return *m.execution, true
	}
	return
}

// ExecutionIDs returns the "execution" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ExecutionID instead. It exists only for internal usage by the builders.
func (m *ToolExecutionMutation) ExecutionIDs() (ids []string) {
	if id := m.execution; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetExecution resets all changes to the "execution" edge.
func (m *ToolExecutionMutation) ResetExecution() {
	m.execution = nil
	m.clearedexecution = false
}

// AddBlockIDs adds the "block" edge to the CompletionBlock entity by ids.
func (m *ToolExecutionMutation) AddBlockIDs(ids ...string) {
	if m.block == nil {
		m.block = make(map[string]struct{})
	}
	for i := range ids {
		m.block[ids[i]] = struct{}{}
	}
}

// ClearBlock clears the "block" edge to the CompletionBlock entity.
func (m *ToolExecutionMutation) ClearBlock() {
	m.clearedblock = true
}

// BlockCleared reports if the "block" edge to the CompletionBlock entity was cleared.
func (m *ToolExecutionMutation) BlockCleared() bool {
	return m.clearedblock
}

// RemoveBlockIDs removes the "block" edge to the CompletionBlock entity by IDs.
func (m *ToolExecutionMutation) RemoveBlockIDs(ids ...string) {
	if m.removedblock == nil {
		m.removedblock = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.block, ids[i])
		m.removedblock[ids[i]] = struct{}{}
	}
}

// RemovedBlock returns the removed IDs of the "block" edge to the CompletionBlock entity.
func (m *ToolExecutionMutation) RemovedBlockIDs() (ids []string) {
	for id := range m.removedblock {
		ids = append(ids, id)
	}
	return
}

// BlockIDs returns the "block" edge IDs in the mutation.
func (m *ToolExecutionMutation) BlockIDs() (ids []string) {
	for id := range m.block {
		ids = append(ids, id)
	}
	return
}

// ResetBlock resets all changes to the "block" edge.
func (m *ToolExecutionMutation) ResetBlock() {
	m.block = nil
	m.clearedblock = false
	m.removedblock = nil
}

// Where appends a list predicates to the ToolExecutionMutation builder.
func (m *ToolExecutionMutation) Where(ps ...predicate.ToolExecution) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ToolExecutionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ToolExecutionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ToolExecution, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ToolExecutionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ToolExecutionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ToolExecution).
func (m *ToolExecutionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ToolExecutionMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.decision != nil {
		fields = append(fields, toolexecution.FieldPlanDecisionID)
	}
	if m.execution != nil {
		fields = append(fields, toolexecution.FieldAgentExecutionID)
	}
	if m.tool_name != nil {
		fields = append(fields, toolexecution.FieldToolName)
	}
	if m.tool_action != nil {
		fields = append(fields, toolexecution.FieldToolAction)
	}
	if m.arguments != nil {
		fields = append(fields, toolexecution.FieldArguments)
	}
	if m.status != nil {
		fields = append(fields, toolexecution.FieldStatus)
	}
	if m.result != nil {
		fields = append(fields, toolexecution.FieldResult)
	}
	if m.result_summary != nil {
		fields = append(fields, toolexecution.FieldResultSummary)
	}
	if m.error_message != nil {
		fields = append(fields, toolexecution.FieldErrorMessage)
	}
	if m.duration_ms != nil {
		fields = append(fields, toolexecution.FieldDurationMs)
	}
	if m.attempt_number != nil {
		fields = append(fields, toolexecution.FieldAttemptNumber)
	}
	if m.created_widget_id != nil {
		fields = append(fields, toolexecution.FieldCreatedWidgetID)
	}
	if m.created_step_id != nil {
		fields = append(fields, toolexecution.FieldCreatedStepID)
	}
	if m.created_visualization_ids != nil {
		fields = append(fields, toolexecution.FieldCreatedVisualizationIds)
	}
	if m.started_at != nil {
		fields = append(fields, toolexecution.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, toolexecution.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ToolExecutionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case toolexecution.FieldPlanDecisionID:
		return m.PlanDecisionID()
	case toolexecution.FieldAgentExecutionID:
		return m.AgentExecutionID()
	case toolexecution.FieldToolName:
		return m.ToolName()
	case toolexecution.FieldToolAction:
		return m.ToolAction()
	case toolexecution.FieldArguments:
		return m.Arguments()
	case toolexecution.FieldStatus:
		return m.Status()
	case toolexecution.FieldResult:
		return m.Result()
	case toolexecution.FieldResultSummary:
		return m.ResultSummary()
	case toolexecution.FieldErrorMessage:
		return m.ErrorMessage()
	case toolexecution.FieldDurationMs:
		return m.DurationMs()
	case toolexecution.FieldAttemptNumber:
		return m.AttemptNumber()
	case toolexecution.FieldCreatedWidgetID:
		return m.CreatedWidgetID()
	case toolexecution.FieldCreatedStepID:
		return m.CreatedStepID()
	case toolexecution.FieldCreatedVisualizationIds:
		return m.CreatedVisualizationIds()
	case toolexecution.FieldStartedAt:
		return m.StartedAt()
	case toolexecution.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ToolExecutionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case toolexecution.FieldPlanDecisionID:
		return m.OldPlanDecisionID(ctx)
	case toolexecution.FieldAgentExecutionID:
		return m.OldAgentExecutionID(ctx)
	case toolexecution.FieldToolName:
		return m.OldToolName(ctx)
	case toolexecution.FieldToolAction:
		return m.OldToolAction(ctx)
	case toolexecution.FieldArguments:
		return m.OldArguments(ctx)
	case toolexecution.FieldStatus:
		return m.OldStatus(ctx)
	case toolexecution.FieldResult:
		return m.OldResult(ctx)
	case toolexecution.FieldResultSummary:
		return m.OldResultSummary(ctx)
	case toolexecution.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case toolexecution.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case toolexecution.FieldAttemptNumber:
		return m.OldAttemptNumber(ctx)
	case toolexecution.FieldCreatedWidgetID:
		return m.OldCreatedWidgetID(ctx)
	case toolexecution.FieldCreatedStepID:
		return m.OldCreatedStepID(ctx)
	case toolexecution.FieldCreatedVisualizationIds:
		return m.OldCreatedVisualizationIds(ctx)
	case toolexecution.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case toolexecution.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ToolExecution field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ToolExecutionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case toolexecution.FieldPlanDecisionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlanDecisionID(v)
		return nil
	case toolexecution.FieldAgentExecutionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentExecutionID(v)
		return nil
	case toolexecution.FieldToolName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolName(v)
		return nil
	case toolexecution.FieldToolAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolAction(v)
		return nil
	case toolexecution.FieldArguments:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArguments(v)
		return nil
	case toolexecution.FieldStatus:
		v, ok := value.(toolexecution.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case toolexecution.FieldResult:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	case toolexecution.FieldResultSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResultSummary(v)
		return nil
	case toolexecution.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case toolexecution.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case toolexecution.FieldAttemptNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttemptNumber(v)
		return nil
	case toolexecution.FieldCreatedWidgetID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedWidgetID(v)
		return nil
	case toolexecution.FieldCreatedStepID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedStepID(v)
		return nil
	case toolexecution.FieldCreatedVisualizationIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedVisualizationIds(v)
		return nil
	case toolexecution.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case toolexecution.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ToolExecution field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ToolExecutionMutation) AddedFields() []string {
	var fields []string
	if m.addduration_ms != nil {
		fields = append(fields, toolexecution.FieldDurationMs)
	}
	if m.addattempt_number != nil {
		fields = append(fields, toolexecution.FieldAttemptNumber)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ToolExecutionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case toolexecution.FieldDurationMs:
		return m.AddedDurationMs()
	case toolexecution.FieldAttemptNumber:
		return m.AddedAttemptNumber()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ToolExecutionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case toolexecution.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	case toolexecution.FieldAttemptNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttemptNumber(v)
		return nil
	}
	return fmt.Errorf("unknown ToolExecution numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ToolExecutionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(toolexecution.FieldToolAction) {
		fields = append(fields, toolexecution.FieldToolAction)
	}
	if m.FieldCleared(toolexecution.FieldArguments) {
		fields = append(fields, toolexecution.FieldArguments)
	}
	if m.FieldCleared(toolexecution.FieldResult) {
		fields = append(fields, toolexecution.FieldResult)
	}
	if m.FieldCleared(toolexecution.FieldResultSummary) {
		fields = append(fields, toolexecution.FieldResultSummary)
	}
	if m.FieldCleared(toolexecution.FieldErrorMessage) {
		fields = append(fields, toolexecution.FieldErrorMessage)
	}
	if m.FieldCleared(toolexecution.FieldDurationMs) {
		fields = append(fields, toolexecution.FieldDurationMs)
	}
	if m.FieldCleared(toolexecution.FieldCreatedWidgetID) {
		fields = append(fields, toolexecution.FieldCreatedWidgetID)
	}
	if m.FieldCleared(toolexecution.FieldCreatedStepID) {
		fields = append(fields, toolexecution.FieldCreatedStepID)
	}
	if m.FieldCleared(toolexecution.FieldCreatedVisualizationIds) {
		fields = append(fields, toolexecution.FieldCreatedVisualizationIds)
	}
	if m.FieldCleared(toolexecution.FieldCompletedAt) {
		fields = append(fields, toolexecution.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ToolExecutionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ToolExecutionMutation) ClearField(name string) error {
	switch name {
	case toolexecution.FieldToolAction:
		m.ClearToolAction()
		return nil
	case toolexecution.FieldArguments:
		m.ClearArguments()
		return nil
	case toolexecution.FieldResult:
		m.ClearResult()
		return nil
	case toolexecution.FieldResultSummary:
		m.ClearResultSummary()
		return nil
	case toolexecution.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case toolexecution.FieldDurationMs:
		m.ClearDurationMs()
		return nil
	case toolexecution.FieldCreatedWidgetID:
		m.ClearCreatedWidgetID()
		return nil
	case toolexecution.FieldCreatedStepID:
		m.ClearCreatedStepID()
		return nil
	case toolexecution.FieldCreatedVisualizationIds:
		m.ClearCreatedVisualizationIds()
		return nil
	case toolexecution.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown ToolExecution nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ToolExecutionMutation) ResetField(name string) error {
	switch name {
	case toolexecution.FieldPlanDecisionID:
		m.ResetPlanDecisionID()
		return nil
	case toolexecution.FieldAgentExecutionID:
		m.ResetAgentExecutionID()
		return nil
	case toolexecution.FieldToolName:
		m.ResetToolName()
		return nil
	case toolexecution.FieldToolAction:
		m.ResetToolAction()
		return nil
	case toolexecution.FieldArguments:
		m.ResetArguments()
		return nil
	case toolexecution.FieldStatus:
		m.ResetStatus()
		return nil
	case toolexecution.FieldResult:
		m.ResetResult()
		return nil
	case toolexecution.FieldResultSummary:
		m.ResetResultSummary()
		return nil
	case toolexecution.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case toolexecution.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case toolexecution.FieldAttemptNumber:
		m.ResetAttemptNumber()
		return nil
	case toolexecution.FieldCreatedWidgetID:
		m.ResetCreatedWidgetID()
		return nil
	case toolexecution.FieldCreatedStepID:
		m.ResetCreatedStepID()
		return nil
	case toolexecution.FieldCreatedVisualizationIds:
		m.ResetCreatedVisualizationIds()
		return nil
	case toolexecution.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case toolexecution.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown ToolExecution field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ToolExecutionMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.decision != nil {
		edges = append(edges, toolexecution.EdgeDecision)
	}
	if m.execution != nil {
		edges = append(edges, toolexecution.EdgeExecution)
	}
	if m.block != nil {
		edges = append(edges, toolexecution.EdgeBlock)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ToolExecutionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case toolexecution.EdgeDecision:
		if id := m.decision; id != nil {
			return []ent.Value{*id}
		}
	case toolexecution.EdgeExecution:
		if id := m.execution; id != nil {
			return []ent.Value{*id}
		}
	case toolexecution.EdgeBlock:
		ids := make([]ent.Value, 0, len(m.block))
		for id := range m.block {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ToolExecutionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedblock != nil {
		edges = append(edges, toolexecution.EdgeBlock)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ToolExecutionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case toolexecution.EdgeBlock:
		ids := make([]ent.Value, 0, len(m.removedblock))
		for id := range m.removedblock {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ToolExecutionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.cleareddecision {
		edges = append(edges, toolexecution.EdgeDecision)
	}
	if m.clearedexecution {
		edges = append(edges, toolexecution.EdgeExecution)
	}
	if m.clearedblock {
		edges = append(edges, toolexecution.EdgeBlock)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ToolExecutionMutation) EdgeCleared(name string) bool {
	switch name {
	case toolexecution.EdgeDecision:
		return m.cleareddecision
	case toolexecution.EdgeExecution:
		return m.clearedexecution
	case toolexecution.EdgeBlock:
		return m.clearedblock
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ToolExecutionMutation) ClearEdge(name string) error {
	switch name {
	case toolexecution.EdgeDecision:
		m.ClearDecision()
		return nil
	case toolexecution.EdgeExecution:
		m.ClearExecution()
		return nil
	}
	return fmt.Errorf("unknown ToolExecution unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ToolExecutionMutation) ResetEdge(name string) error {
	switch name {
	case toolexecution.EdgeDecision:
		m.ResetDecision()
		return nil
	case toolexecution.EdgeExecution:
		m.ResetExecution()
		return nil
	case toolexecution.EdgeBlock:
		m.ResetBlock()
		return nil
	}
	return fmt.Errorf("unknown ToolExecution edge %s", name)
}

// VisualizationMutation represents an operation that mutates the Visualization nodes in the graph.
type VisualizationMutation struct {
	config
	op            Op
	typ           string
	id            *string
	kind          *string
	view          *map[string]interface{}
	status        *visualization.Status
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	step          *string
	clearedstep   bool
	done          bool
	oldValue      func(context.Context) (*Visualization, error)
	predicates    []predicate.Visualization
}

var _ ent.Mutation = (*VisualizationMutation)(nil)

// visualizationOption allows management of the mutation configuration using functional options.
type visualizationOption func(*VisualizationMutation)

// newVisualizationMutation creates new mutation for the Visualization entity.
func newVisualizationMutation(c config, op Op, opts ...visualizationOption) *VisualizationMutation {
	m := &VisualizationMutation{
		config:        c,
		op:            op,
		typ:           TypeVisualization,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withVisualizationID sets the ID field of the mutation.
func withVisualizationID(id string) visualizationOption {
	return func(m *VisualizationMutation) {
		var (
			err   error
			once  sync.Once
			value *Visualization
		)
		m.oldValue = func(ctx context.Context) (*Visualization, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Visualization.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withVisualization sets the old Visualization of the mutation.
func withVisualization(node *Visualization) visualizationOption {
	return func(m *VisualizationMutation) {
		m.oldValue = func(context.Context) (*Visualization, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m VisualizationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m VisualizationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Visualization entities.
func (m *VisualizationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *VisualizationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *VisualizationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Visualization.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStepID sets the "step_id" field.
func (m *VisualizationMutation) SetStepID(s string) {
	m.step = &s
}

// StepID returns the value of the "step_id" field in the mutation.
func (m *VisualizationMutation) StepID() (r string, exists bool) {
	v := m.step
	if v == nil {
		return
	}
	return *v, true
}

// OldStepID returns the old "step_id" field's value of the Visualization entity.
// If the Visualization object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VisualizationMutation) OldStepID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepID: %w", err)
	}
	return oldValue.StepID, nil
}

// ResetStepID resets all changes to the "step_id" field.
func (m *VisualizationMutation) ResetStepID() {
	m.step = nil
}

// SetKind sets the "kind" field.
func (m *VisualizationMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *VisualizationMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the Visualization entity.
// If the Visualization object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VisualizationMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *VisualizationMutation) ResetKind() {
	m.kind = nil
}

// SetView sets the "view" field.
func (m *VisualizationMutation) SetView(value map[string]interface{}) {
	m.view = &value
}

// View returns the value of the "view" field in the mutation.
func (m *VisualizationMutation) View() (r map[string]interface{}, exists bool) {
	v := m.view
	if v == nil {
		return
	}
	return *v, true
}

// OldView returns the old "view" field's value of the Visualization entity.
// If the Visualization object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VisualizationMutation) OldView(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldView is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldView requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldView: %w", err)
	}
	return oldValue.View, nil
}

// ClearView clears the value of the "view" field.
func (m *VisualizationMutation) ClearView() {
	m.view = nil
	m.clearedFields[visualization.FieldView] = struct{}{}
}

// ViewCleared returns if the "view" field was cleared in this mutation.
func (m *VisualizationMutation) ViewCleared() bool {
	_, ok := m.clearedFields[visualization.FieldView]
	return ok
}

// ResetView resets all changes to the "view" field.
func (m *VisualizationMutation) ResetView() {
	m.view = nil
	delete(m.clearedFields, visualization.FieldView)
}

// SetStatus sets the "status" field.
func (m *VisualizationMutation) SetStatus(v visualization.Status) {
	m.status = &v
}

// Status returns the value of the "status" field in the mutation.
func (m *VisualizationMutation) Status() (r visualization.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Visualization entity.
// If the Visualization object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VisualizationMutation) OldStatus(ctx context.Context) (v visualization.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *VisualizationMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *VisualizationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *VisualizationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Visualization entity.
// If the Visualization object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VisualizationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *VisualizationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *VisualizationMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *VisualizationMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Visualization entity.
// If the Visualization object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VisualizationMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *VisualizationMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearStep clears the "step" edge to the Step entity.
func (m *VisualizationMutation) ClearStep() {
	m.clearedstep = true
	m.clearedFields[visualization.FieldStepID] = struct{}{}
}

// StepCleared reports if the "step" edge to the Step entity was cleared.
func (m *VisualizationMutation) StepCleared() bool {
	return m.clearedstep
}

// StepIDs returns the "step" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// StepID instead. It exists only for internal usage by the builders.
func (m *VisualizationMutation) StepIDs() (ids []string) {
	if id := m.step; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetStep resets all changes to the "step" edge.
func (m *VisualizationMutation) ResetStep() {
	m.step = nil
	m.clearedstep = false
}

// Where appends a list predicates to the VisualizationMutation builder.
func (m *VisualizationMutation) Where(ps ...predicate.Visualization) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the VisualizationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *VisualizationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Visualization, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *VisualizationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *VisualizationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Visualization).
func (m *VisualizationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *VisualizationMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.step != nil {
		fields = append(fields, visualization.FieldStepID)
	}
	if m.kind != nil {
		fields = append(fields, visualization.FieldKind)
	}
	if m.view != nil {
		fields = append(fields, visualization.FieldView)
	}
	if m.status != nil {
		fields = append(fields, visualization.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, visualization.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, visualization.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *VisualizationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case visualization.FieldStepID:
		return m.StepID()
	case visualization.FieldKind:
		return m.Kind()
	case visualization.FieldView:
		return m.View()
	case visualization.FieldStatus:
		return m.Status()
	case visualization.FieldCreatedAt:
		return m.CreatedAt()
	case visualization.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *VisualizationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case visualization.FieldStepID:
		return m.OldStepID(ctx)
	case visualization.FieldKind:
		return m.OldKind(ctx)
	case visualization.FieldView:
		return m.OldView(ctx)
	case visualization.FieldStatus:
		return m.OldStatus(ctx)
	case visualization.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case visualization.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Visualization field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VisualizationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case visualization.FieldStepID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepID(v)
		return nil
	case visualization.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case visualization.FieldView:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetView(v)
		return nil
	case visualization.FieldStatus:
		v, ok := value.(visualization.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case visualization.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case visualization.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Visualization field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *VisualizationMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *VisualizationMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VisualizationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Visualization numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *VisualizationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(visualization.FieldView) {
		fields = append(fields, visualization.FieldView)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *VisualizationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *VisualizationMutation) ClearField(name string) error {
	switch name {
	case visualization.FieldView:
		m.ClearView()
		return nil
	}
	return fmt.Errorf("unknown Visualization nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *VisualizationMutation) ResetField(name string) error {
	switch name {
	case visualization.FieldStepID:
		m.ResetStepID()
		return nil
	case visualization.FieldKind:
		m.ResetKind()
		return nil
	case visualization.FieldView:
		m.ResetView()
		return nil
	case visualization.FieldStatus:
		m.ResetStatus()
		return nil
	case visualization.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case visualization.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Visualization field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *VisualizationMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.step != nil {
		edges = append(edges, visualization.EdgeStep)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *VisualizationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case visualization.EdgeStep:
		if id := m.step; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *VisualizationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *VisualizationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *VisualizationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedstep {
		edges = append(edges, visualization.EdgeStep)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *VisualizationMutation) EdgeCleared(name string) bool {
	switch name {
	case visualization.EdgeStep:
		return m.clearedstep
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *VisualizationMutation) ClearEdge(name string) error {
	switch name {
	case visualization.EdgeStep:
		m.ClearStep()
		return nil
	}
	return fmt.Errorf("unknown Visualization unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *VisualizationMutation) ResetEdge(name string) error {
	switch name {
	case visualization.EdgeStep:
		m.ResetStep()
		return nil
	}
	return fmt.Errorf("unknown Visualization edge %s", name)
}

// WidgetMutation represents an operation that mutates the Widget nodes in the graph.
type WidgetMutation struct {
	config
	op            Op
	typ           string
	id            *string
	completion_id *string
	title         *string
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	report        *string
	clearedreport bool
	steps         map[string]struct{}
	removedsteps  map[string]struct{}
	clearedsteps  bool
	done          bool
	oldValue      func(context.Context) (*Widget, error)
	predicates    []predicate.Widget
}

var _ ent.Mutation = (*WidgetMutation)(nil)

// widgetOption allows management of the mutation configuration using functional options.
type widgetOption func(*WidgetMutation)

// newWidgetMutation creates new mutation for the Widget entity.
func newWidgetMutation(c config, op Op, opts ...widgetOption) *WidgetMutation {
	m := &WidgetMutation{
		config:        c,
		op:            op,
		typ:           TypeWidget,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWidgetID sets the ID field of the mutation.
func withWidgetID(id string) widgetOption {
	return func(m *WidgetMutation) {
		var (
			err   error
			once  sync.Once
			value *Widget
		)
		m.oldValue = func(ctx context.Context) (*Widget, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Widget.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWidget sets the old Widget of the mutation.
func withWidget(node *Widget) widgetOption {
	return func(m *WidgetMutation) {
		m.oldValue = func(context.Context) (*Widget, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WidgetMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WidgetMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Widget entities.
func (m *WidgetMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WidgetMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WidgetMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Widget.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetReportID sets the "report_id" field.
func (m *WidgetMutation) SetReportID(s string) {
	m.report = &s
}

// ReportID returns the value of the "report_id" field in the mutation.
func (m *WidgetMutation) ReportID() (r string, exists bool) {
	v := m.report
	if v == nil {
		return
	}
	return *v, true
}

// OldReportID returns the old "report_id" field's value of the Widget entity.
// If the Widget object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WidgetMutation) OldReportID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReportID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReportID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReportID: %w", err)
	}
	return oldValue.ReportID, nil
}

// ResetReportID resets all changes to the "report_id" field.
func (m *WidgetMutation) ResetReportID() {
	m.report = nil
}

// SetCompletionID sets the "completion_id" field.
func (m *WidgetMutation) SetCompletionID(s string) {
	m.completion_id = &s
}

// CompletionID returns the value of the "completion_id" field in the mutation.
func (m *WidgetMutation) CompletionID() (r string, exists bool) {
	v := m.completion_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletionID returns the old "completion_id" field's value of the Widget entity.
// If the Widget object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WidgetMutation) OldCompletionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletionID: %w", err)
	}
	return oldValue.CompletionID, nil
}

// ClearCompletionID clears the value of the "completion_id" field.
func (m *WidgetMutation) ClearCompletionID() {
	m.completion_id = nil
	m.clearedFields[widget.FieldCompletionID] = struct{}{}
}

// CompletionIDCleared returns if the "completion_id" field was cleared in this mutation.
func (m *WidgetMutation) CompletionIDCleared() bool {
	_, ok := m.clearedFields[widget.FieldCompletionID]
	return ok
}

// ResetCompletionID resets all changes to the "completion_id" field.
func (m *WidgetMutation) ResetCompletionID() {
	m.completion_id = nil
	delete(m.clearedFields, widget.FieldCompletionID)
}

// SetTitle sets the "title" field.
func (m *WidgetMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *WidgetMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Widget entity.
// If the Widget object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WidgetMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *WidgetMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[widget.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *WidgetMutation) TitleCleared() bool {
	_, ok := m.clearedFields[widget.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *WidgetMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, widget.FieldTitle)
}

// SetCreatedAt sets the "created_at" field.
func (m *WidgetMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WidgetMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Widget entity.
// If the Widget object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WidgetMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WidgetMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *WidgetMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *WidgetMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Widget entity.
// If the Widget object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WidgetMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *WidgetMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearReport clears the "report" edge to the Report entity.
func (m *WidgetMutation) ClearReport() {
	m.clearedreport = true
	m.clearedFields[widget.FieldReportID] = struct{}{}
}

// ReportCleared reports if the "report" edge to the Report entity was cleared.
func (m *WidgetMutation) ReportCleared() bool {
	return m.clearedreport
}

// ReportIDs returns the "report" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ReportID instead. It exists only for internal usage by the builders.
func (m *WidgetMutation) ReportIDs() (ids []string) {
	if id := m.report; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetReport resets all changes to the "report" edge.
func (m *WidgetMutation) ResetReport() {
	m.report = nil
	m.clearedreport = false
}

// AddStepIDs adds the "steps" edge to the Step entity by ids.
func (m *WidgetMutation) AddStepIDs(ids ...string) {
	if m.steps == nil {
		m.steps = make(map[string]struct{})
	}
	for i := range ids {
		m.steps[ids[i]] = struct{}{}
	}
}

// ClearSteps clears the "steps" edge to the Step entity.
func (m *WidgetMutation) ClearSteps() {
	m.clearedsteps = true
}

// StepsCleared reports if the "steps" edge to the Step entity was cleared.
func (m *WidgetMutation) StepsCleared() bool {
	return m.clearedsteps
}

// RemoveStepIDs removes the "steps" edge to the Step entity by IDs.
func (m *WidgetMutation) RemoveStepIDs(ids ...string) {
	if m.removedsteps == nil {
		m.removedsteps = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.steps, ids[i])
		m.removedsteps[ids[i]] = struct{}{}
	}
}

// RemovedSteps returns the removed IDs of the "steps" edge to the Step entity.
func (m *WidgetMutation) RemovedStepsIDs() (ids []string) {
	for id := range m.removedsteps {
		ids = append(ids, id)
	}
	return
}

// StepsIDs returns the "steps" edge IDs in the mutation.
func (m *WidgetMutation) StepsIDs() (ids []string) {
	for id := range m.steps {
		ids = append(ids, id)
	}
	return
}

// ResetSteps resets all changes to the "steps" edge.
func (m *WidgetMutation) ResetSteps() {
	m.steps = nil
	m.clearedsteps = false
	m.removedsteps = nil
}

// Where appends a list predicates to the WidgetMutation builder.
func (m *WidgetMutation) Where(ps ...predicate.Widget) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WidgetMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WidgetMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Widget, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WidgetMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WidgetMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Widget).
func (m *WidgetMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WidgetMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.report != nil {
		fields = append(fields, widget.FieldReportID)
	}
	if m.completion_id != nil {
		fields = append(fields, widget.FieldCompletionID)
	}
	if m.title != nil {
		fields = append(fields, widget.FieldTitle)
	}
	if m.created_at != nil {
		fields = append(fields, widget.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, widget.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WidgetMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case widget.FieldReportID:
		return m.ReportID()
	case widget.FieldCompletionID:
		return m.CompletionID()
	case widget.FieldTitle:
		return m.Title()
	case widget.FieldCreatedAt:
		return m.CreatedAt()
	case widget.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WidgetMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case widget.FieldReportID:
		return m.OldReportID(ctx)
	case widget.FieldCompletionID:
		return m.OldCompletionID(ctx)
	case widget.FieldTitle:
		return m.OldTitle(ctx)
	case widget.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case widget.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Widget field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WidgetMutation) SetField(name string, value ent.Value) error {
	switch name {
	case widget.FieldReportID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReportID(v)
		return nil
	case widget.FieldCompletionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletionID(v)
		return nil
	case widget.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case widget.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case widget.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Widget field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WidgetMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WidgetMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WidgetMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Widget numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WidgetMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(widget.FieldCompletionID) {
		fields = append(fields, widget.FieldCompletionID)
	}
	if m.FieldCleared(widget.FieldTitle) {
		fields = append(fields, widget.FieldTitle)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WidgetMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WidgetMutation) ClearField(name string) error {
	switch name {
	case widget.FieldCompletionID:
		m.ClearCompletionID()
		return nil
	case widget.FieldTitle:
		m.ClearTitle()
		return nil
	}
	return fmt.Errorf("unknown Widget nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WidgetMutation) ResetField(name string) error {
	switch name {
	case widget.FieldReportID:
		m.ResetReportID()
		return nil
	case widget.FieldCompletionID:
		m.ResetCompletionID()
		return nil
	case widget.FieldTitle:
		m.ResetTitle()
		return nil
	case widget.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case widget.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Widget field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WidgetMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.report != nil {
		edges = append(edges, widget.EdgeReport)
	}
	if m.steps != nil {
		edges = append(edges, widget.EdgeSteps)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WidgetMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case widget.EdgeReport:
		if id := m.report; id != nil {
			return []ent.Value{*id}
		}
	case widget.EdgeSteps:
		ids := make([]ent.Value, 0, len(m.steps))
		for id := range m.steps {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WidgetMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedsteps != nil {
		edges = append(edges, widget.EdgeSteps)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WidgetMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case widget.EdgeSteps:
		ids := make([]ent.Value, 0, len(m.removedsteps))
		for id := range m.removedsteps {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WidgetMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedreport {
		edges = append(edges, widget.EdgeReport)
	}
	if m.clearedsteps {
		edges = append(edges, widget.EdgeSteps)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WidgetMutation) EdgeCleared(name string) bool {
	switch name {
	case widget.EdgeReport:
		return m.clearedreport
	case widget.EdgeSteps:
		return m.clearedsteps
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WidgetMutation) ClearEdge(name string) error {
	switch name {
	case widget.EdgeReport:
		m.ClearReport()
		return nil
	}
	return fmt.Errorf("unknown Widget unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WidgetMutation) ResetEdge(name string) error {
	switch name {
	case widget.EdgeReport:
		m.ResetReport()
		return nil
	case widget.EdgeSteps:
		m.ResetSteps()
		return nil
	}
	return fmt.Errorf("unknown Widget edge %s", name)
}
