// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/datalens-ai/datalens/ent/agentexecution"
	"github.com/datalens-ai/datalens/ent/completion"
	"github.com/datalens-ai/datalens/ent/completionblock"
	"github.com/datalens-ai/datalens/ent/predicate"
)

// CompletionUpdate is the builder for updating Completion entities.
type CompletionUpdate struct {
	config
	hooks    []Hook
	mutation *CompletionMutation
}

// Where appends a list predicates to the CompletionUpdate builder.
func (_u *CompletionUpdate) Where(ps ...predicate.Completion) *CompletionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *CompletionUpdate) SetPrompt(v map[string]interface{}) *CompletionUpdate {
	_u.mutation.SetPrompt(v)
	return _u
}

// ClearPrompt clears the value of the "prompt" field.
func (_u *CompletionUpdate) ClearPrompt() *CompletionUpdate {
	_u.mutation.ClearPrompt()
	return _u
}

// SetCompletion sets the "completion" field.
func (_u *CompletionUpdate) SetCompletion(v map[string]interface{}) *CompletionUpdate {
	_u.mutation.SetCompletion(v)
	return _u
}

// ClearCompletion clears the value of the "completion" field.
func (_u *CompletionUpdate) ClearCompletion() *CompletionUpdate {
	_u.mutation.ClearCompletion()
	return _u
}

// SetStatus sets the "status" field.
func (_u *CompletionUpdate) SetStatus(v completion.Status) *CompletionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CompletionUpdate) SetNillableStatus(v *completion.Status) *CompletionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSigkill sets the "sigkill" field.
func (_u *CompletionUpdate) SetSigkill(v bool) *CompletionUpdate {
	_u.mutation.SetSigkill(v)
	return _u
}

// SetNillableSigkill sets the "sigkill" field if the given value is not nil.
func (_u *CompletionUpdate) SetNillableSigkill(v *bool) *CompletionUpdate {
	if v != nil {
		_u.SetSigkill(*v)
	}
	return _u
}

// SetFeedbackScore sets the "feedback_score" field.
func (_u *CompletionUpdate) SetFeedbackScore(v int) *CompletionUpdate {
	_u.mutation.ResetFeedbackScore()
	_u.mutation.SetFeedbackScore(v)
	return _u
}

// SetNillableFeedbackScore sets the "feedback_score" field if the given value is not nil.
func (_u *CompletionUpdate) SetNillableFeedbackScore(v *int) *CompletionUpdate {
	if v != nil {
		_u.SetFeedbackScore(*v)
	}
	return _u
}

// AddFeedbackScore adds value to the "feedback_score" field.
func (_u *CompletionUpdate) AddFeedbackScore(v int) *CompletionUpdate {
	_u.mutation.AddFeedbackScore(v)
	return _u
}

// ClearFeedbackScore clears the value of the "feedback_score" field.
func (_u *CompletionUpdate) ClearFeedbackScore() *CompletionUpdate {
	_u.mutation.ClearFeedbackScore()
	return _u
}

// SetJudgeScores sets the "judge_scores" field.
func (_u *CompletionUpdate) SetJudgeScores(v map[string]interface{}) *CompletionUpdate {
	_u.mutation.SetJudgeScores(v)
	return _u
}

// ClearJudgeScores clears the value of the "judge_scores" field.
func (_u *CompletionUpdate) ClearJudgeScores() *CompletionUpdate {
	_u.mutation.ClearJudgeScores()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *CompletionUpdate) SetErrorMessage(v string) *CompletionUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *CompletionUpdate) SetNillableErrorMessage(v *string) *CompletionUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *CompletionUpdate) ClearErrorMessage() *CompletionUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUsage sets the "usage" field.
func (_u *CompletionUpdate) SetUsage(v map[string]interface{}) *CompletionUpdate {
	_u.mutation.SetUsage(v)
	return _u
}

// ClearUsage clears the value of the "usage" field.
func (_u *CompletionUpdate) ClearUsage() *CompletionUpdate {
	_u.mutation.ClearUsage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CompletionUpdate) SetUpdatedAt(v time.Time) *CompletionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddAgentExecutionIDs adds the "agent_executions" edge to the AgentExecution entity by IDs.
func (_u *CompletionUpdate) AddAgentExecutionIDs(ids ...string) *CompletionUpdate {
	_u.mutation.AddAgentExecutionIDs(ids...)
	return _u
}

// AddAgentExecutions adds the "agent_executions" edges to the AgentExecution entity.
func (_u *CompletionUpdate) AddAgentExecutions(v ...*AgentExecution) *CompletionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAgentExecutionIDs(ids...)
}

// AddBlockIDs adds the "blocks" edge to the CompletionBlock entity by IDs.
func (_u *CompletionUpdate) AddBlockIDs(ids ...string) *CompletionUpdate {
	_u.mutation.AddBlockIDs(ids...)
	return _u
}

// AddBlocks adds the "blocks" edges to the CompletionBlock entity.
func (_u *CompletionUpdate) AddBlocks(v ...*CompletionBlock) *CompletionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBlockIDs(ids...)
}

// Mutation returns the CompletionMutation object of the builder.
func (_u *CompletionUpdate) Mutation() *CompletionMutation {
	return _u.mutation
}

// ClearAgentExecutions clears all "agent_executions" edges to the AgentExecution entity.
func (_u *CompletionUpdate) ClearAgentExecutions() *CompletionUpdate {
	_u.mutation.ClearAgentExecutions()
	return _u
}

// RemoveAgentExecutionIDs removes the "agent_executions" edge to AgentExecution entities by IDs.
func (_u *CompletionUpdate) RemoveAgentExecutionIDs(ids ...string) *CompletionUpdate {
	_u.mutation.RemoveAgentExecutionIDs(ids...)
	return _u
}

// RemoveAgentExecutions removes "agent_executions" edges to AgentExecution entities.
func (_u *CompletionUpdate) RemoveAgentExecutions(v ...*AgentExecution) *CompletionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAgentExecutionIDs(ids...)
}

// ClearBlocks clears all "blocks" edges to the CompletionBlock entity.
func (_u *CompletionUpdate) ClearBlocks() *CompletionUpdate {
	_u.mutation.ClearBlocks()
	return _u
}

// RemoveBlockIDs removes the "blocks" edge to CompletionBlock entities by IDs.
func (_u *CompletionUpdate) RemoveBlockIDs(ids ...string) *CompletionUpdate {
	_u.mutation.RemoveBlockIDs(ids...)
	return _u
}

// RemoveBlocks removes "blocks" edges to CompletionBlock entities.
func (_u *CompletionUpdate) RemoveBlocks(v ...*CompletionBlock) *CompletionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBlockIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CompletionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CompletionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CompletionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CompletionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CompletionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := completion.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CompletionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := completion.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Completion.status": %w`, err)}
		}
	}
	if _u.mutation.ReportCleared() && len(_u.mutation.ReportIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Completion.report"`)
	}
	return nil
}

func (_u *CompletionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(completion.Table, completion.Columns, sqlgraph.NewFieldSpec(completion.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.ParentIDCleared() {
		_spec.ClearField(completion.FieldParentID, field.TypeString)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(completion.FieldPrompt, field.TypeJSON, value)
	}
	if _u.mutation.PromptCleared() {
		_spec.ClearField(completion.FieldPrompt, field.TypeJSON)
	}
	if value, ok := _u.mutation.Completion(); ok {
		_spec.SetField(completion.FieldCompletion, field.TypeJSON, value)
	}
	if _u.mutation.CompletionCleared() {
		_spec.ClearField(completion.FieldCompletion, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(completion.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Sigkill(); ok {
		_spec.SetField(completion.FieldSigkill, field.TypeBool, value)
	}
	if value, ok := _u.mutation.FeedbackScore(); ok {
		_spec.SetField(completion.FieldFeedbackScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFeedbackScore(); ok {
		_spec.AddField(completion.FieldFeedbackScore, field.TypeInt, value)
	}
	if _u.mutation.FeedbackScoreCleared() {
		_spec.ClearField(completion.FieldFeedbackScore, field.TypeInt)
	}
	if value, ok := _u.mutation.JudgeScores(); ok {
		_spec.SetField(completion.FieldJudgeScores, field.TypeJSON, value)
	}
	if _u.mutation.JudgeScoresCleared() {
		_spec.ClearField(completion.FieldJudgeScores, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(completion.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(completion.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Usage(); ok {
		_spec.SetField(completion.FieldUsage, field.TypeJSON, value)
	}
	if _u.mutation.UsageCleared() {
		_spec.ClearField(completion.FieldUsage, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(completion.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AgentExecutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   completion.AgentExecutionsTable,
			Columns: []string{completion.AgentExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentexecution.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAgentExecutionsIDs(); len(nodes) > 0 && !_u.mutation.AgentExecutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   completion.AgentExecutionsTable,
			Columns: []string{completion.AgentExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentexecution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentExecutionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   completion.AgentExecutionsTable,
			Columns: []string{completion.AgentExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentexecution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BlocksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   completion.BlocksTable,
			Columns: []string{completion.BlocksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(completionblock.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBlocksIDs(); len(nodes) > 0 && !_u.mutation.BlocksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   completion.BlocksTable,
			Columns: []string{completion.BlocksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(completionblock.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BlocksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   completion.BlocksTable,
			Columns: []string{completion.BlocksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(completionblock.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{completion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CompletionUpdateOne is the builder for updating a single Completion entity.
type CompletionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CompletionMutation
}

// SetPrompt sets the "prompt" field.
func (_u *CompletionUpdateOne) SetPrompt(v map[string]interface{}) *CompletionUpdateOne {
	_u.mutation.SetPrompt(v)
	return _u
}

// ClearPrompt clears the value of the "prompt" field.
func (_u *CompletionUpdateOne) ClearPrompt() *CompletionUpdateOne {
	_u.mutation.ClearPrompt()
	return _u
}

// SetCompletion sets the "completion" field.
func (_u *CompletionUpdateOne) SetCompletion(v map[string]interface{}) *CompletionUpdateOne {
	_u.mutation.SetCompletion(v)
	return _u
}

// ClearCompletion clears the value of the "completion" field.
func (_u *CompletionUpdateOne) ClearCompletion() *CompletionUpdateOne {
	_u.mutation.ClearCompletion()
	return _u
}

// SetStatus sets the "status" field.
func (_u *CompletionUpdateOne) SetStatus(v completion.Status) *CompletionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CompletionUpdateOne) SetNillableStatus(v *completion.Status) *CompletionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSigkill sets the "sigkill" field.
func (_u *CompletionUpdateOne) SetSigkill(v bool) *CompletionUpdateOne {
	_u.mutation.SetSigkill(v)
	return _u
}

// SetNillableSigkill sets the "sigkill" field if the given value is not nil.
func (_u *CompletionUpdateOne) SetNillableSigkill(v *bool) *CompletionUpdateOne {
	if v != nil {
		_u.SetSigkill(*v)
	}
	return _u
}

// SetFeedbackScore sets the "feedback_score" field.
func (_u *CompletionUpdateOne) SetFeedbackScore(v int) *CompletionUpdateOne {
	_u.mutation.ResetFeedbackScore()
	_u.mutation.SetFeedbackScore(v)
	return _u
}

// SetNillableFeedbackScore sets the "feedback_score" field if the given value is not nil.
func (_u *CompletionUpdateOne) SetNillableFeedbackScore(v *int) *CompletionUpdateOne {
	if v != nil {
		_u.SetFeedbackScore(*v)
	}
	return _u
}

// AddFeedbackScore adds value to the "feedback_score" field.
func (_u *CompletionUpdateOne) AddFeedbackScore(v int) *CompletionUpdateOne {
	_u.mutation.AddFeedbackScore(v)
	return _u
}

// ClearFeedbackScore clears the value of the "feedback_score" field.
func (_u *CompletionUpdateOne) ClearFeedbackScore() *CompletionUpdateOne {
	_u.mutation.ClearFeedbackScore()
	return _u
}

// SetJudgeScores sets the "judge_scores" field.
func (_u *CompletionUpdateOne) SetJudgeScores(v map[string]interface{}) *CompletionUpdateOne {
	_u.mutation.SetJudgeScores(v)
	return _u
}

// ClearJudgeScores clears the value of the "judge_scores" field.
func (_u *CompletionUpdateOne) ClearJudgeScores() *CompletionUpdateOne {
	_u.mutation.ClearJudgeScores()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *CompletionUpdateOne) SetErrorMessage(v string) *CompletionUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *CompletionUpdateOne) SetNillableErrorMessage(v *string) *CompletionUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *CompletionUpdateOne) ClearErrorMessage() *CompletionUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUsage sets the "usage" field.
func (_u *CompletionUpdateOne) SetUsage(v map[string]interface{}) *CompletionUpdateOne {
	_u.mutation.SetUsage(v)
	return _u
}

// ClearUsage clears the value of the "usage" field.
func (_u *CompletionUpdateOne) ClearUsage() *CompletionUpdateOne {
	_u.mutation.ClearUsage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CompletionUpdateOne) SetUpdatedAt(v time.Time) *CompletionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddAgentExecutionIDs adds the "agent_executions" edge to the AgentExecution entity by IDs.
func (_u *CompletionUpdateOne) AddAgentExecutionIDs(ids ...string) *CompletionUpdateOne {
	_u.mutation.AddAgentExecutionIDs(ids...)
	return _u
}

// AddAgentExecutions adds the "agent_executions" edges to the AgentExecution entity.
func (_u *CompletionUpdateOne) AddAgentExecutions(v ...*AgentExecution) *CompletionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAgentExecutionIDs(ids...)
}

// AddBlockIDs adds the "blocks" edge to the CompletionBlock entity by IDs.
func (_u *CompletionUpdateOne) AddBlockIDs(ids ...string) *CompletionUpdateOne {
	_u.mutation.AddBlockIDs(ids...)
	return _u
}

// AddBlocks adds the "blocks" edges to the CompletionBlock entity.
func (_u *CompletionUpdateOne) AddBlocks(v ...*CompletionBlock) *CompletionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBlockIDs(ids...)
}

// Mutation returns the CompletionMutation object of the builder.
func (_u *CompletionUpdateOne) Mutation() *CompletionMutation {
	return _u.mutation
}

// ClearAgentExecutions clears all "agent_executions" edges to the AgentExecution entity.
func (_u *CompletionUpdateOne) ClearAgentExecutions() *CompletionUpdateOne {
	_u.mutation.ClearAgentExecutions()
	return _u
}

// RemoveAgentExecutionIDs removes the "agent_executions" edge to AgentExecution entities by IDs.
func (_u *CompletionUpdateOne) RemoveAgentExecutionIDs(ids ...string) *CompletionUpdateOne {
	_u.mutation.RemoveAgentExecutionIDs(ids...)
	return _u
}

// RemoveAgentExecutions removes "agent_executions" edges to AgentExecution entities.
func (_u *CompletionUpdateOne) RemoveAgentExecutions(v ...*AgentExecution) *CompletionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAgentExecutionIDs(ids...)
}

// ClearBlocks clears all "blocks" edges to the CompletionBlock entity.
func (_u *CompletionUpdateOne) ClearBlocks() *CompletionUpdateOne {
	_u.mutation.ClearBlocks()
	return _u
}

// RemoveBlockIDs removes the "blocks" edge to CompletionBlock entities by IDs.
func (_u *CompletionUpdateOne) RemoveBlockIDs(ids ...string) *CompletionUpdateOne {
	_u.mutation.RemoveBlockIDs(ids...)
	return _u
}

// RemoveBlocks removes "blocks" edges to CompletionBlock entities.
func (_u *CompletionUpdateOne) RemoveBlocks(v ...*CompletionBlock) *CompletionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBlockIDs(ids...)
}

// Where appends a list predicates to the CompletionUpdate builder.
func (_u *CompletionUpdateOne) Where(ps ...predicate.Completion) *CompletionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CompletionUpdateOne) Select(field string, fields ...string) *CompletionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Completion entity.
func (_u *CompletionUpdateOne) Save(ctx context.Context) (*Completion, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CompletionUpdateOne) SaveX(ctx context.Context) *Completion {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CompletionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CompletionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CompletionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := completion.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CompletionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := completion.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Completion.status": %w`, err)}
		}
	}
	if _u.mutation.ReportCleared() && len(_u.mutation.ReportIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Completion.report"`)
	}
	return nil
}

func (_u *CompletionUpdateOne) sqlSave(ctx context.Context) (_node *Completion, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(completion.Table, completion.Columns, sqlgraph.NewFieldSpec(completion.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Completion.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, completion.FieldID)
		for _, f := range fields {
			if !completion.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != completion.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.ParentIDCleared() {
		_spec.ClearField(completion.FieldParentID, field.TypeString)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(completion.FieldPrompt, field.TypeJSON, value)
	}
	if _u.mutation.PromptCleared() {
		_spec.ClearField(completion.FieldPrompt, field.TypeJSON)
	}
	if value, ok := _u.mutation.Completion(); ok {
		_spec.SetField(completion.FieldCompletion, field.TypeJSON, value)
	}
	if _u.mutation.CompletionCleared() {
		_spec.ClearField(completion.FieldCompletion, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(completion.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Sigkill(); ok {
		_spec.SetField(completion.FieldSigkill, field.TypeBool, value)
	}
	if value, ok := _u.mutation.FeedbackScore(); ok {
		_spec.SetField(completion.FieldFeedbackScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFeedbackScore(); ok {
		_spec.AddField(completion.FieldFeedbackScore, field.TypeInt, value)
	}
	if _u.mutation.FeedbackScoreCleared() {
		_spec.ClearField(completion.FieldFeedbackScore, field.TypeInt)
	}
	if value, ok := _u.mutation.JudgeScores(); ok {
		_spec.SetField(completion.FieldJudgeScores, field.TypeJSON, value)
	}
	if _u.mutation.JudgeScoresCleared() {
		_spec.ClearField(completion.FieldJudgeScores, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(completion.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(completion.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Usage(); ok {
		_spec.SetField(completion.FieldUsage, field.TypeJSON, value)
	}
	if _u.mutation.UsageCleared() {
		_spec.ClearField(completion.FieldUsage, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(completion.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AgentExecutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   completion.AgentExecutionsTable,
			Columns: []string{completion.AgentExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentexecution.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAgentExecutionsIDs(); len(nodes) > 0 && !_u.mutation.AgentExecutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   completion.AgentExecutionsTable,
			Columns: []string{completion.AgentExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentexecution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentExecutionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   completion.AgentExecutionsTable,
			Columns: []string{completion.AgentExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentexecution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BlocksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   completion.BlocksTable,
			Columns: []string{completion.BlocksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(completionblock.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBlocksIDs(); len(nodes) > 0 && !_u.mutation.BlocksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   completion.BlocksTable,
			Columns: []string{completion.BlocksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(completionblock.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BlocksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   completion.BlocksTable,
			Columns: []string{completion.BlocksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(completionblock.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Completion{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{completion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
