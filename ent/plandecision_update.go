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
	"github.com/datalens-ai/datalens/ent/completionblock"
	"github.com/datalens-ai/datalens/ent/plandecision"
	"github.com/datalens-ai/datalens/ent/predicate"
	"github.com/datalens-ai/datalens/ent/toolexecution"
)

// PlanDecisionUpdate is the builder for updating PlanDecision entities.
type PlanDecisionUpdate struct {
	config
	hooks    []Hook
	mutation *PlanDecisionMutation
}

// Where appends a list predicates to the PlanDecisionUpdate builder.
func (_u *PlanDecisionUpdate) Where(ps ...predicate.PlanDecision) *PlanDecisionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPlanType sets the "plan_type" field.
func (_u *PlanDecisionUpdate) SetPlanType(v plandecision.PlanType) *PlanDecisionUpdate {
	_u.mutation.SetPlanType(v)
	return _u
}

// SetNillablePlanType sets the "plan_type" field if the given value is not nil.
func (_u *PlanDecisionUpdate) SetNillablePlanType(v *plandecision.PlanType) *PlanDecisionUpdate {
	if v != nil {
		_u.SetPlanType(*v)
	}
	return _u
}

// SetReasoningMessage sets the "reasoning_message" field.
func (_u *PlanDecisionUpdate) SetReasoningMessage(v string) *PlanDecisionUpdate {
	_u.mutation.SetReasoningMessage(v)
	return _u
}

// SetNillableReasoningMessage sets the "reasoning_message" field if the given value is not nil.
func (_u *PlanDecisionUpdate) SetNillableReasoningMessage(v *string) *PlanDecisionUpdate {
	if v != nil {
		_u.SetReasoningMessage(*v)
	}
	return _u
}

// SetAssistantMessage sets the "assistant_message" field.
func (_u *PlanDecisionUpdate) SetAssistantMessage(v string) *PlanDecisionUpdate {
	_u.mutation.SetAssistantMessage(v)
	return _u
}

// SetNillableAssistantMessage sets the "assistant_message" field if the given value is not nil.
func (_u *PlanDecisionUpdate) SetNillableAssistantMessage(v *string) *PlanDecisionUpdate {
	if v != nil {
		_u.SetAssistantMessage(*v)
	}
	return _u
}

// SetActionName sets the "action_name" field.
func (_u *PlanDecisionUpdate) SetActionName(v string) *PlanDecisionUpdate {
	_u.mutation.SetActionName(v)
	return _u
}

// SetNillableActionName sets the "action_name" field if the given value is not nil.
func (_u *PlanDecisionUpdate) SetNillableActionName(v *string) *PlanDecisionUpdate {
	if v != nil {
		_u.SetActionName(*v)
	}
	return _u
}

// ClearActionName clears the value of the "action_name" field.
func (_u *PlanDecisionUpdate) ClearActionName() *PlanDecisionUpdate {
	_u.mutation.ClearActionName()
	return _u
}

// SetActionArguments sets the "action_arguments" field.
func (_u *PlanDecisionUpdate) SetActionArguments(v map[string]interface{}) *PlanDecisionUpdate {
	_u.mutation.SetActionArguments(v)
	return _u
}

// ClearActionArguments clears the value of the "action_arguments" field.
func (_u *PlanDecisionUpdate) ClearActionArguments() *PlanDecisionUpdate {
	_u.mutation.ClearActionArguments()
	return _u
}

// SetAnalysisComplete sets the "analysis_complete" field.
func (_u *PlanDecisionUpdate) SetAnalysisComplete(v bool) *PlanDecisionUpdate {
	_u.mutation.SetAnalysisComplete(v)
	return _u
}

// SetNillableAnalysisComplete sets the "analysis_complete" field if the given value is not nil.
func (_u *PlanDecisionUpdate) SetNillableAnalysisComplete(v *bool) *PlanDecisionUpdate {
	if v != nil {
		_u.SetAnalysisComplete(*v)
	}
	return _u
}

// SetFinalAnswer sets the "final_answer" field.
func (_u *PlanDecisionUpdate) SetFinalAnswer(v string) *PlanDecisionUpdate {
	_u.mutation.SetFinalAnswer(v)
	return _u
}

// SetNillableFinalAnswer sets the "final_answer" field if the given value is not nil.
func (_u *PlanDecisionUpdate) SetNillableFinalAnswer(v *string) *PlanDecisionUpdate {
	if v != nil {
		_u.SetFinalAnswer(*v)
	}
	return _u
}

// ClearFinalAnswer clears the value of the "final_answer" field.
func (_u *PlanDecisionUpdate) ClearFinalAnswer() *PlanDecisionUpdate {
	_u.mutation.ClearFinalAnswer()
	return _u
}

// SetErrorCode sets the "error_code" field.
func (_u *PlanDecisionUpdate) SetErrorCode(v string) *PlanDecisionUpdate {
	_u.mutation.SetErrorCode(v)
	return _u
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_u *PlanDecisionUpdate) SetNillableErrorCode(v *string) *PlanDecisionUpdate {
	if v != nil {
		_u.SetErrorCode(*v)
	}
	return _u
}

// ClearErrorCode clears the value of the "error_code" field.
func (_u *PlanDecisionUpdate) ClearErrorCode() *PlanDecisionUpdate {
	_u.mutation.ClearErrorCode()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *PlanDecisionUpdate) SetErrorMessage(v string) *PlanDecisionUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *PlanDecisionUpdate) SetNillableErrorMessage(v *string) *PlanDecisionUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *PlanDecisionUpdate) ClearErrorMessage() *PlanDecisionUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetFinal sets the "final" field.
func (_u *PlanDecisionUpdate) SetFinal(v bool) *PlanDecisionUpdate {
	_u.mutation.SetFinal(v)
	return _u
}

// SetNillableFinal sets the "final" field if the given value is not nil.
func (_u *PlanDecisionUpdate) SetNillableFinal(v *bool) *PlanDecisionUpdate {
	if v != nil {
		_u.SetFinal(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PlanDecisionUpdate) SetUpdatedAt(v time.Time) *PlanDecisionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddBlockIDs adds the "block" edge to the CompletionBlock entity by IDs.
func (_u *PlanDecisionUpdate) AddBlockIDs(ids ...string) *PlanDecisionUpdate {
	_u.mutation.AddBlockIDs(ids...)
	return _u
}

// AddBlock adds the "block" edges to the CompletionBlock entity.
func (_u *PlanDecisionUpdate) AddBlock(v ...*CompletionBlock) *PlanDecisionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBlockIDs(ids...)
}

// AddToolExecutionIDs adds the "tool_executions" edge to the ToolExecution entity by IDs.
func (_u *PlanDecisionUpdate) AddToolExecutionIDs(ids ...string) *PlanDecisionUpdate {
	_u.mutation.AddToolExecutionIDs(ids...)
	return _u
}

// AddToolExecutions adds the "tool_executions" edges to the ToolExecution entity.
func (_u *PlanDecisionUpdate) AddToolExecutions(v ...*ToolExecution) *PlanDecisionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddToolExecutionIDs(ids...)
}

// Mutation returns the PlanDecisionMutation object of the builder.
func (_u *PlanDecisionUpdate) Mutation() *PlanDecisionMutation {
	return _u.mutation
}

// ClearBlock clears all "block" edges to the CompletionBlock entity.
func (_u *PlanDecisionUpdate) ClearBlock() *PlanDecisionUpdate {
	_u.mutation.ClearBlock()
	return _u
}

// RemoveBlockIDs removes the "block" edge to CompletionBlock entities by IDs.
func (_u *PlanDecisionUpdate) RemoveBlockIDs(ids ...string) *PlanDecisionUpdate {
	_u.mutation.RemoveBlockIDs(ids...)
	return _u
}

// RemoveBlock removes "block" edges to CompletionBlock entities.
func (_u *PlanDecisionUpdate) RemoveBlock(v ...*CompletionBlock) *PlanDecisionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBlockIDs(ids...)
}

// ClearToolExecutions clears all "tool_executions" edges to the ToolExecution entity.
func (_u *PlanDecisionUpdate) ClearToolExecutions() *PlanDecisionUpdate {
	_u.mutation.ClearToolExecutions()
	return _u
}

// RemoveToolExecutionIDs removes the "tool_executions" edge to ToolExecution entities by IDs.
func (_u *PlanDecisionUpdate) RemoveToolExecutionIDs(ids ...string) *PlanDecisionUpdate {
	_u.mutation.RemoveToolExecutionIDs(ids...)
	return _u
}

// RemoveToolExecutions removes "tool_executions" edges to ToolExecution entities.
func (_u *PlanDecisionUpdate) RemoveToolExecutions(v ...*ToolExecution) *PlanDecisionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveToolExecutionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PlanDecisionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlanDecisionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PlanDecisionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlanDecisionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PlanDecisionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := plandecision.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PlanDecisionUpdate) check() error {
	if v, ok := _u.mutation.PlanType(); ok {
		if err := plandecision.PlanTypeValidator(v); err != nil {
			return &ValidationError{Name: "plan_type", err: fmt.Errorf(`ent: validator failed for field "PlanDecision.plan_type": %w`, err)}
		}
	}
	if _u.mutation.ExecutionCleared() && len(_u.mutation.ExecutionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PlanDecision.execution"`)
	}
	return nil
}

func (_u *PlanDecisionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(plandecision.Table, plandecision.Columns, sqlgraph.NewFieldSpec(plandecision.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PlanType(); ok {
		_spec.SetField(plandecision.FieldPlanType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ReasoningMessage(); ok {
		_spec.SetField(plandecision.FieldReasoningMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.AssistantMessage(); ok {
		_spec.SetField(plandecision.FieldAssistantMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActionName(); ok {
		_spec.SetField(plandecision.FieldActionName, field.TypeString, value)
	}
	if _u.mutation.ActionNameCleared() {
		_spec.ClearField(plandecision.FieldActionName, field.TypeString)
	}
	if value, ok := _u.mutation.ActionArguments(); ok {
		_spec.SetField(plandecision.FieldActionArguments, field.TypeJSON, value)
	}
	if _u.mutation.ActionArgumentsCleared() {
		_spec.ClearField(plandecision.FieldActionArguments, field.TypeJSON)
	}
	if value, ok := _u.mutation.AnalysisComplete(); ok {
		_spec.SetField(plandecision.FieldAnalysisComplete, field.TypeBool, value)
	}
	if value, ok := _u.mutation.FinalAnswer(); ok {
		_spec.SetField(plandecision.FieldFinalAnswer, field.TypeString, value)
	}
	if _u.mutation.FinalAnswerCleared() {
		_spec.ClearField(plandecision.FieldFinalAnswer, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorCode(); ok {
		_spec.SetField(plandecision.FieldErrorCode, field.TypeString, value)
	}
	if _u.mutation.ErrorCodeCleared() {
		_spec.ClearField(plandecision.FieldErrorCode, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(plandecision.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(plandecision.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Final(); ok {
		_spec.SetField(plandecision.FieldFinal, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(plandecision.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.BlockCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   plandecision.BlockTable,
			Columns: []string{plandecision.BlockColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(completionblock.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBlockIDs(); len(nodes) > 0 && !_u.mutation.BlockCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   plandecision.BlockTable,
			Columns: []string{plandecision.BlockColumn},
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
	if nodes := _u.mutation.BlockIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   plandecision.BlockTable,
			Columns: []string{plandecision.BlockColumn},
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
	if _u.mutation.ToolExecutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   plandecision.ToolExecutionsTable,
			Columns: []string{plandecision.ToolExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(toolexecution.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedToolExecutionsIDs(); len(nodes) > 0 && !_u.mutation.ToolExecutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   plandecision.ToolExecutionsTable,
			Columns: []string{plandecision.ToolExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(toolexecution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ToolExecutionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   plandecision.ToolExecutionsTable,
			Columns: []string{plandecision.ToolExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(toolexecution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{plandecision.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PlanDecisionUpdateOne is the builder for updating a single PlanDecision entity.
type PlanDecisionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PlanDecisionMutation
}

// SetPlanType sets the "plan_type" field.
func (_u *PlanDecisionUpdateOne) SetPlanType(v plandecision.PlanType) *PlanDecisionUpdateOne {
	_u.mutation.SetPlanType(v)
	return _u
}

// SetNillablePlanType sets the "plan_type" field if the given value is not nil.
func (_u *PlanDecisionUpdateOne) SetNillablePlanType(v *plandecision.PlanType) *PlanDecisionUpdateOne {
	if v != nil {
		_u.SetPlanType(*v)
	}
	return _u
}

// SetReasoningMessage sets the "reasoning_message" field.
func (_u *PlanDecisionUpdateOne) SetReasoningMessage(v string) *PlanDecisionUpdateOne {
	_u.mutation.SetReasoningMessage(v)
	return _u
}

// SetNillableReasoningMessage sets the "reasoning_message" field if the given value is not nil.
func (_u *PlanDecisionUpdateOne) SetNillableReasoningMessage(v *string) *PlanDecisionUpdateOne {
	if v != nil {
		_u.SetReasoningMessage(*v)
	}
	return _u
}

// SetAssistantMessage sets the "assistant_message" field.
func (_u *PlanDecisionUpdateOne) SetAssistantMessage(v string) *PlanDecisionUpdateOne {
	_u.mutation.SetAssistantMessage(v)
	return _u
}

// SetNillableAssistantMessage sets the "assistant_message" field if the given value is not nil.
func (_u *PlanDecisionUpdateOne) SetNillableAssistantMessage(v *string) *PlanDecisionUpdateOne {
	if v != nil {
		_u.SetAssistantMessage(*v)
	}
	return _u
}

// SetActionName sets the "action_name" field.
func (_u *PlanDecisionUpdateOne) SetActionName(v string) *PlanDecisionUpdateOne {
	_u.mutation.SetActionName(v)
	return _u
}

// SetNillableActionName sets the "action_name" field if the given value is not nil.
func (_u *PlanDecisionUpdateOne) SetNillableActionName(v *string) *PlanDecisionUpdateOne {
	if v != nil {
		_u.SetActionName(*v)
	}
	return _u
}

// ClearActionName clears the value of the "action_name" field.
func (_u *PlanDecisionUpdateOne) ClearActionName() *PlanDecisionUpdateOne {
	_u.mutation.ClearActionName()
	return _u
}

// SetActionArguments sets the "action_arguments" field.
func (_u *PlanDecisionUpdateOne) SetActionArguments(v map[string]interface{}) *PlanDecisionUpdateOne {
	_u.mutation.SetActionArguments(v)
	return _u
}

// ClearActionArguments clears the value of the "action_arguments" field.
func (_u *PlanDecisionUpdateOne) ClearActionArguments() *PlanDecisionUpdateOne {
	_u.mutation.ClearActionArguments()
	return _u
}

// SetAnalysisComplete sets the "analysis_complete" field.
func (_u *PlanDecisionUpdateOne) SetAnalysisComplete(v bool) *PlanDecisionUpdateOne {
	_u.mutation.SetAnalysisComplete(v)
	return _u
}

// SetNillableAnalysisComplete sets the "analysis_complete" field if the given value is not nil.
func (_u *PlanDecisionUpdateOne) SetNillableAnalysisComplete(v *bool) *PlanDecisionUpdateOne {
	if v != nil {
		_u.SetAnalysisComplete(*v)
	}
	return _u
}

// SetFinalAnswer sets the "final_answer" field.
func (_u *PlanDecisionUpdateOne) SetFinalAnswer(v string) *PlanDecisionUpdateOne {
	_u.mutation.SetFinalAnswer(v)
	return _u
}

// SetNillableFinalAnswer sets the "final_answer" field if the given value is not nil.
func (_u *PlanDecisionUpdateOne) SetNillableFinalAnswer(v *string) *PlanDecisionUpdateOne {
	if v != nil {
		_u.SetFinalAnswer(*v)
	}
	return _u
}

// ClearFinalAnswer clears the value of the "final_answer" field.
func (_u *PlanDecisionUpdateOne) ClearFinalAnswer() *PlanDecisionUpdateOne {
	_u.mutation.ClearFinalAnswer()
	return _u
}

// SetErrorCode sets the "error_code" field.
func (_u *PlanDecisionUpdateOne) SetErrorCode(v string) *PlanDecisionUpdateOne {
	_u.mutation.SetErrorCode(v)
	return _u
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_u *PlanDecisionUpdateOne) SetNillableErrorCode(v *string) *PlanDecisionUpdateOne {
	if v != nil {
		_u.SetErrorCode(*v)
	}
	return _u
}

// ClearErrorCode clears the value of the "error_code" field.
func (_u *PlanDecisionUpdateOne) ClearErrorCode() *PlanDecisionUpdateOne {
	_u.mutation.ClearErrorCode()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *PlanDecisionUpdateOne) SetErrorMessage(v string) *PlanDecisionUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *PlanDecisionUpdateOne) SetNillableErrorMessage(v *string) *PlanDecisionUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *PlanDecisionUpdateOne) ClearErrorMessage() *PlanDecisionUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetFinal sets the "final" field.
func (_u *PlanDecisionUpdateOne) SetFinal(v bool) *PlanDecisionUpdateOne {
	_u.mutation.SetFinal(v)
	return _u
}

// SetNillableFinal sets the "final" field if the given value is not nil.
func (_u *PlanDecisionUpdateOne) SetNillableFinal(v *bool) *PlanDecisionUpdateOne {
	if v != nil {
		_u.SetFinal(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PlanDecisionUpdateOne) SetUpdatedAt(v time.Time) *PlanDecisionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddBlockIDs adds the "block" edge to the CompletionBlock entity by IDs.
func (_u *PlanDecisionUpdateOne) AddBlockIDs(ids ...string) *PlanDecisionUpdateOne {
	_u.mutation.AddBlockIDs(ids...)
	return _u
}

// AddBlock adds the "block" edges to the CompletionBlock entity.
func (_u *PlanDecisionUpdateOne) AddBlock(v ...*CompletionBlock) *PlanDecisionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBlockIDs(ids...)
}

// AddToolExecutionIDs adds the "tool_executions" edge to the ToolExecution entity by IDs.
func (_u *PlanDecisionUpdateOne) AddToolExecutionIDs(ids ...string) *PlanDecisionUpdateOne {
	_u.mutation.AddToolExecutionIDs(ids...)
	return _u
}

// AddToolExecutions adds the "tool_executions" edges to the ToolExecution entity.
func (_u *PlanDecisionUpdateOne) AddToolExecutions(v ...*ToolExecution) *PlanDecisionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddToolExecutionIDs(ids...)
}

// Mutation returns the PlanDecisionMutation object of the builder.
func (_u *PlanDecisionUpdateOne) Mutation() *PlanDecisionMutation {
	return _u.mutation
}

// ClearBlock clears all "block" edges to the CompletionBlock entity.
func (_u *PlanDecisionUpdateOne) ClearBlock() *PlanDecisionUpdateOne {
	_u.mutation.ClearBlock()
	return _u
}

// RemoveBlockIDs removes the "block" edge to CompletionBlock entities by IDs.
func (_u *PlanDecisionUpdateOne) RemoveBlockIDs(ids ...string) *PlanDecisionUpdateOne {
	_u.mutation.RemoveBlockIDs(ids...)
	return _u
}

// RemoveBlock removes "block" edges to CompletionBlock entities.
func (_u *PlanDecisionUpdateOne) RemoveBlock(v ...*CompletionBlock) *PlanDecisionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBlockIDs(ids...)
}

// ClearToolExecutions clears all "tool_executions" edges to the ToolExecution entity.
func (_u *PlanDecisionUpdateOne) ClearToolExecutions() *PlanDecisionUpdateOne {
	_u.mutation.ClearToolExecutions()
	return _u
}

// RemoveToolExecutionIDs removes the "tool_executions" edge to ToolExecution entities by IDs.
func (_u *PlanDecisionUpdateOne) RemoveToolExecutionIDs(ids ...string) *PlanDecisionUpdateOne {
	_u.mutation.RemoveToolExecutionIDs(ids...)
	return _u
}

// RemoveToolExecutions removes "tool_executions" edges to ToolExecution entities.
func (_u *PlanDecisionUpdateOne) RemoveToolExecutions(v ...*ToolExecution) *PlanDecisionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveToolExecutionIDs(ids...)
}

// Where appends a list predicates to the PlanDecisionUpdate builder.
func (_u *PlanDecisionUpdateOne) Where(ps ...predicate.PlanDecision) *PlanDecisionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PlanDecisionUpdateOne) Select(field string, fields ...string) *PlanDecisionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PlanDecision entity.
func (_u *PlanDecisionUpdateOne) Save(ctx context.Context) (*PlanDecision, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlanDecisionUpdateOne) SaveX(ctx context.Context) *PlanDecision {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PlanDecisionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlanDecisionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PlanDecisionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := plandecision.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PlanDecisionUpdateOne) check() error {
	if v, ok := _u.mutation.PlanType(); ok {
		if err := plandecision.PlanTypeValidator(v); err != nil {
			return &ValidationError{Name: "plan_type", err: fmt.Errorf(`ent: validator failed for field "PlanDecision.plan_type": %w`, err)}
		}
	}
	if _u.mutation.ExecutionCleared() && len(_u.mutation.ExecutionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PlanDecision.execution"`)
	}
	return nil
}

func (_u *PlanDecisionUpdateOne) sqlSave(ctx context.Context) (_node *PlanDecision, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(plandecision.Table, plandecision.Columns, sqlgraph.NewFieldSpec(plandecision.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PlanDecision.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, plandecision.FieldID)
		for _, f := range fields {
			if !plandecision.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != plandecision.FieldID {
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
	if value, ok := _u.mutation.PlanType(); ok {
		_spec.SetField(plandecision.FieldPlanType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ReasoningMessage(); ok {
		_spec.SetField(plandecision.FieldReasoningMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.AssistantMessage(); ok {
		_spec.SetField(plandecision.FieldAssistantMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActionName(); ok {
		_spec.SetField(plandecision.FieldActionName, field.TypeString, value)
	}
	if _u.mutation.ActionNameCleared() {
		_spec.ClearField(plandecision.FieldActionName, field.TypeString)
	}
	if value, ok := _u.mutation.ActionArguments(); ok {
		_spec.SetField(plandecision.FieldActionArguments, field.TypeJSON, value)
	}
	if _u.mutation.ActionArgumentsCleared() {
		_spec.ClearField(plandecision.FieldActionArguments, field.TypeJSON)
	}
	if value, ok := _u.mutation.AnalysisComplete(); ok {
		_spec.SetField(plandecision.FieldAnalysisComplete, field.TypeBool, value)
	}
	if value, ok := _u.mutation.FinalAnswer(); ok {
		_spec.SetField(plandecision.FieldFinalAnswer, field.TypeString, value)
	}
	if _u.mutation.FinalAnswerCleared() {
		_spec.ClearField(plandecision.FieldFinalAnswer, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorCode(); ok {
		_spec.SetField(plandecision.FieldErrorCode, field.TypeString, value)
	}
	if _u.mutation.ErrorCodeCleared() {
		_spec.ClearField(plandecision.FieldErrorCode, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(plandecision.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(plandecision.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Final(); ok {
		_spec.SetField(plandecision.FieldFinal, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(plandecision.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.BlockCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   plandecision.BlockTable,
			Columns: []string{plandecision.BlockColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(completionblock.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBlockIDs(); len(nodes) > 0 && !_u.mutation.BlockCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   plandecision.BlockTable,
			Columns: []string{plandecision.BlockColumn},
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
	if nodes := _u.mutation.BlockIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   plandecision.BlockTable,
			Columns: []string{plandecision.BlockColumn},
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
	if _u.mutation.ToolExecutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   plandecision.ToolExecutionsTable,
			Columns: []string{plandecision.ToolExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(toolexecution.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedToolExecutionsIDs(); len(nodes) > 0 && !_u.mutation.ToolExecutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   plandecision.ToolExecutionsTable,
			Columns: []string{plandecision.ToolExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(toolexecution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ToolExecutionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   plandecision.ToolExecutionsTable,
			Columns: []string{plandecision.ToolExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(toolexecution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &PlanDecision{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{plandecision.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
