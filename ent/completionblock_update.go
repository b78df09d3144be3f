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

// CompletionBlockUpdate is the builder for updating CompletionBlock entities.
type CompletionBlockUpdate struct {
	config
	hooks    []Hook
	mutation *CompletionBlockMutation
}

// Where appends a list predicates to the CompletionBlockUpdate builder.
func (_u *CompletionBlockUpdate) Where(ps ...predicate.CompletionBlock) *CompletionBlockUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPlanDecisionID sets the "plan_decision_id" field.
func (_u *CompletionBlockUpdate) SetPlanDecisionID(v string) *CompletionBlockUpdate {
	_u.mutation.SetPlanDecisionID(v)
	return _u
}

// SetNillablePlanDecisionID sets the "plan_decision_id" field if the given value is not nil.
func (_u *CompletionBlockUpdate) SetNillablePlanDecisionID(v *string) *CompletionBlockUpdate {
	if v != nil {
		_u.SetPlanDecisionID(*v)
	}
	return _u
}

// ClearPlanDecisionID clears the value of the "plan_decision_id" field.
func (_u *CompletionBlockUpdate) ClearPlanDecisionID() *CompletionBlockUpdate {
	_u.mutation.ClearPlanDecisionID()
	return _u
}

// SetToolExecutionID sets the "tool_execution_id" field.
func (_u *CompletionBlockUpdate) SetToolExecutionID(v string) *CompletionBlockUpdate {
	_u.mutation.SetToolExecutionID(v)
	return _u
}

// SetNillableToolExecutionID sets the "tool_execution_id" field if the given value is not nil.
func (_u *CompletionBlockUpdate) SetNillableToolExecutionID(v *string) *CompletionBlockUpdate {
	if v != nil {
		_u.SetToolExecutionID(*v)
	}
	return _u
}

// ClearToolExecutionID clears the value of the "tool_execution_id" field.
func (_u *CompletionBlockUpdate) ClearToolExecutionID() *CompletionBlockUpdate {
	_u.mutation.ClearToolExecutionID()
	return _u
}

// SetSeq sets the "seq" field.
func (_u *CompletionBlockUpdate) SetSeq(v int) *CompletionBlockUpdate {
	_u.mutation.ResetSeq()
	_u.mutation.SetSeq(v)
	return _u
}

// SetNillableSeq sets the "seq" field if the given value is not nil.
func (_u *CompletionBlockUpdate) SetNillableSeq(v *int) *CompletionBlockUpdate {
	if v != nil {
		_u.SetSeq(*v)
	}
	return _u
}

// AddSeq adds value to the "seq" field.
func (_u *CompletionBlockUpdate) AddSeq(v int) *CompletionBlockUpdate {
	_u.mutation.AddSeq(v)
	return _u
}

// SetBlockIndex sets the "block_index" field.
func (_u *CompletionBlockUpdate) SetBlockIndex(v int) *CompletionBlockUpdate {
	_u.mutation.ResetBlockIndex()
	_u.mutation.SetBlockIndex(v)
	return _u
}

// SetNillableBlockIndex sets the "block_index" field if the given value is not nil.
func (_u *CompletionBlockUpdate) SetNillableBlockIndex(v *int) *CompletionBlockUpdate {
	if v != nil {
		_u.SetBlockIndex(*v)
	}
	return _u
}

// AddBlockIndex adds value to the "block_index" field.
func (_u *CompletionBlockUpdate) AddBlockIndex(v int) *CompletionBlockUpdate {
	_u.mutation.AddBlockIndex(v)
	return _u
}

// SetContent sets the "content" field.
func (_u *CompletionBlockUpdate) SetContent(v string) *CompletionBlockUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *CompletionBlockUpdate) SetNillableContent(v *string) *CompletionBlockUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *CompletionBlockUpdate) SetReasoning(v string) *CompletionBlockUpdate {
	_u.mutation.SetReasoning(v)
	return _u
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_u *CompletionBlockUpdate) SetNillableReasoning(v *string) *CompletionBlockUpdate {
	if v != nil {
		_u.SetReasoning(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *CompletionBlockUpdate) SetStatus(v completionblock.Status) *CompletionBlockUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CompletionBlockUpdate) SetNillableStatus(v *completionblock.Status) *CompletionBlockUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *CompletionBlockUpdate) SetErrorMessage(v string) *CompletionBlockUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *CompletionBlockUpdate) SetNillableErrorMessage(v *string) *CompletionBlockUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *CompletionBlockUpdate) ClearErrorMessage() *CompletionBlockUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CompletionBlockUpdate) SetUpdatedAt(v time.Time) *CompletionBlockUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPlanDecision sets the "plan_decision" edge to the PlanDecision entity.
func (_u *CompletionBlockUpdate) SetPlanDecision(v *PlanDecision) *CompletionBlockUpdate {
	return _u.SetPlanDecisionID(v.ID)
}

// SetToolExecution sets the "tool_execution" edge to the ToolExecution entity.
func (_u *CompletionBlockUpdate) SetToolExecution(v *ToolExecution) *CompletionBlockUpdate {
	return _u.SetToolExecutionID(v.ID)
}

// Mutation returns the CompletionBlockMutation object of the builder.
func (_u *CompletionBlockUpdate) Mutation() *CompletionBlockMutation {
	return _u.mutation
}

// ClearPlanDecision clears the "plan_decision" edge to the PlanDecision entity.
func (_u *CompletionBlockUpdate) ClearPlanDecision() *CompletionBlockUpdate {
	_u.mutation.ClearPlanDecision()
	return _u
}

// ClearToolExecution clears the "tool_execution" edge to the ToolExecution entity.
func (_u *CompletionBlockUpdate) ClearToolExecution() *CompletionBlockUpdate {
	_u.mutation.ClearToolExecution()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CompletionBlockUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CompletionBlockUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CompletionBlockUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CompletionBlockUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CompletionBlockUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := completionblock.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CompletionBlockUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := completionblock.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CompletionBlock.status": %w`, err)}
		}
	}
	if _u.mutation.ParentCleared() && len(_u.mutation.ParentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CompletionBlock.parent"`)
	}
	return nil
}

func (_u *CompletionBlockUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(completionblock.Table, completionblock.Columns, sqlgraph.NewFieldSpec(completionblock.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Seq(); ok {
		_spec.SetField(completionblock.FieldSeq, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSeq(); ok {
		_spec.AddField(completionblock.FieldSeq, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BlockIndex(); ok {
		_spec.SetField(completionblock.FieldBlockIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBlockIndex(); ok {
		_spec.AddField(completionblock.FieldBlockIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(completionblock.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(completionblock.FieldReasoning, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(completionblock.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(completionblock.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(completionblock.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(completionblock.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.PlanDecisionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   completionblock.PlanDecisionTable,
			Columns: []string{completionblock.PlanDecisionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(plandecision.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PlanDecisionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   completionblock.PlanDecisionTable,
			Columns: []string{completionblock.PlanDecisionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(plandecision.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ToolExecutionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   completionblock.ToolExecutionTable,
			Columns: []string{completionblock.ToolExecutionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(toolexecution.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ToolExecutionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   completionblock.ToolExecutionTable,
			Columns: []string{completionblock.ToolExecutionColumn},
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
			err = &NotFoundError{completionblock.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CompletionBlockUpdateOne is the builder for updating a single CompletionBlock entity.
type CompletionBlockUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CompletionBlockMutation
}

// SetPlanDecisionID sets the "plan_decision_id" field.
func (_u *CompletionBlockUpdateOne) SetPlanDecisionID(v string) *CompletionBlockUpdateOne {
	_u.mutation.SetPlanDecisionID(v)
	return _u
}

// SetNillablePlanDecisionID sets the "plan_decision_id" field if the given value is not nil.
func (_u *CompletionBlockUpdateOne) SetNillablePlanDecisionID(v *string) *CompletionBlockUpdateOne {
	if v != nil {
		_u.SetPlanDecisionID(*v)
	}
	return _u
}

// ClearPlanDecisionID clears the value of the "plan_decision_id" field.
func (_u *CompletionBlockUpdateOne) ClearPlanDecisionID() *CompletionBlockUpdateOne {
	_u.mutation.ClearPlanDecisionID()
	return _u
}

// SetToolExecutionID sets the "tool_execution_id" field.
func (_u *CompletionBlockUpdateOne) SetToolExecutionID(v string) *CompletionBlockUpdateOne {
	_u.mutation.SetToolExecutionID(v)
	return _u
}

// SetNillableToolExecutionID sets the "tool_execution_id" field if the given value is not nil.
func (_u *CompletionBlockUpdateOne) SetNillableToolExecutionID(v *string) *CompletionBlockUpdateOne {
	if v != nil {
		_u.SetToolExecutionID(*v)
	}
	return _u
}

// ClearToolExecutionID clears the value of the "tool_execution_id" field.
func (_u *CompletionBlockUpdateOne) ClearToolExecutionID() *CompletionBlockUpdateOne {
	_u.mutation.ClearToolExecutionID()
	return _u
}

// SetSeq sets the "seq" field.
func (_u *CompletionBlockUpdateOne) SetSeq(v int) *CompletionBlockUpdateOne {
	_u.mutation.ResetSeq()
	_u.mutation.SetSeq(v)
	return _u
}

// SetNillableSeq sets the "seq" field if the given value is not nil.
func (_u *CompletionBlockUpdateOne) SetNillableSeq(v *int) *CompletionBlockUpdateOne {
	if v != nil {
		_u.SetSeq(*v)
	}
	return _u
}

// AddSeq adds value to the "seq" field.
func (_u *CompletionBlockUpdateOne) AddSeq(v int) *CompletionBlockUpdateOne {
	_u.mutation.AddSeq(v)
	return _u
}

// SetBlockIndex sets the "block_index" field.
func (_u *CompletionBlockUpdateOne) SetBlockIndex(v int) *CompletionBlockUpdateOne {
	_u.mutation.ResetBlockIndex()
	_u.mutation.SetBlockIndex(v)
	return _u
}

// SetNillableBlockIndex sets the "block_index" field if the given value is not nil.
func (_u *CompletionBlockUpdateOne) SetNillableBlockIndex(v *int) *CompletionBlockUpdateOne {
	if v != nil {
		_u.SetBlockIndex(*v)
	}
	return _u
}

// AddBlockIndex adds value to the "block_index" field.
func (_u *CompletionBlockUpdateOne) AddBlockIndex(v int) *CompletionBlockUpdateOne {
	_u.mutation.AddBlockIndex(v)
	return _u
}

// SetContent sets the "content" field.
func (_u *CompletionBlockUpdateOne) SetContent(v string) *CompletionBlockUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *CompletionBlockUpdateOne) SetNillableContent(v *string) *CompletionBlockUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *CompletionBlockUpdateOne) SetReasoning(v string) *CompletionBlockUpdateOne {
	_u.mutation.SetReasoning(v)
	return _u
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_u *CompletionBlockUpdateOne) SetNillableReasoning(v *string) *CompletionBlockUpdateOne {
	if v != nil {
		_u.SetReasoning(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *CompletionBlockUpdateOne) SetStatus(v completionblock.Status) *CompletionBlockUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CompletionBlockUpdateOne) SetNillableStatus(v *completionblock.Status) *CompletionBlockUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *CompletionBlockUpdateOne) SetErrorMessage(v string) *CompletionBlockUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *CompletionBlockUpdateOne) SetNillableErrorMessage(v *string) *CompletionBlockUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *CompletionBlockUpdateOne) ClearErrorMessage() *CompletionBlockUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CompletionBlockUpdateOne) SetUpdatedAt(v time.Time) *CompletionBlockUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPlanDecision sets the "plan_decision" edge to the PlanDecision entity.
func (_u *CompletionBlockUpdateOne) SetPlanDecision(v *PlanDecision) *CompletionBlockUpdateOne {
	return _u.SetPlanDecisionID(v.ID)
}

// SetToolExecution sets the "tool_execution" edge to the ToolExecution entity.
func (_u *CompletionBlockUpdateOne) SetToolExecution(v *ToolExecution) *CompletionBlockUpdateOne {
	return _u.SetToolExecutionID(v.ID)
}

// Mutation returns the CompletionBlockMutation object of the builder.
func (_u *CompletionBlockUpdateOne) Mutation() *CompletionBlockMutation {
	return _u.mutation
}

// ClearPlanDecision clears the "plan_decision" edge to the PlanDecision entity.
func (_u *CompletionBlockUpdateOne) ClearPlanDecision() *CompletionBlockUpdateOne {
	_u.mutation.ClearPlanDecision()
	return _u
}

// ClearToolExecution clears the "tool_execution" edge to the ToolExecution entity.
func (_u *CompletionBlockUpdateOne) ClearToolExecution() *CompletionBlockUpdateOne {
	_u.mutation.ClearToolExecution()
	return _u
}

// Where appends a list predicates to the CompletionBlockUpdate builder.
func (_u *CompletionBlockUpdateOne) Where(ps ...predicate.CompletionBlock) *CompletionBlockUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CompletionBlockUpdateOne) Select(field string, fields ...string) *CompletionBlockUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CompletionBlock entity.
func (_u *CompletionBlockUpdateOne) Save(ctx context.Context) (*CompletionBlock, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CompletionBlockUpdateOne) SaveX(ctx context.Context) *CompletionBlock {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CompletionBlockUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CompletionBlockUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CompletionBlockUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := completionblock.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CompletionBlockUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := completionblock.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CompletionBlock.status": %w`, err)}
		}
	}
	if _u.mutation.ParentCleared() && len(_u.mutation.ParentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CompletionBlock.parent"`)
	}
	return nil
}

func (_u *CompletionBlockUpdateOne) sqlSave(ctx context.Context) (_node *CompletionBlock, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(completionblock.Table, completionblock.Columns, sqlgraph.NewFieldSpec(completionblock.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CompletionBlock.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, completionblock.FieldID)
		for _, f := range fields {
			if !completionblock.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != completionblock.FieldID {
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
	if value, ok := _u.mutation.Seq(); ok {
		_spec.SetField(completionblock.FieldSeq, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSeq(); ok {
		_spec.AddField(completionblock.FieldSeq, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BlockIndex(); ok {
		_spec.SetField(completionblock.FieldBlockIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBlockIndex(); ok {
		_spec.AddField(completionblock.FieldBlockIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(completionblock.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(completionblock.FieldReasoning, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(completionblock.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(completionblock.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(completionblock.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(completionblock.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.PlanDecisionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   completionblock.PlanDecisionTable,
			Columns: []string{completionblock.PlanDecisionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(plandecision.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PlanDecisionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   completionblock.PlanDecisionTable,
			Columns: []string{completionblock.PlanDecisionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(plandecision.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ToolExecutionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   completionblock.ToolExecutionTable,
			Columns: []string{completionblock.ToolExecutionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(toolexecution.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ToolExecutionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   completionblock.ToolExecutionTable,
			Columns: []string{completionblock.ToolExecutionColumn},
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
	_node = &CompletionBlock{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{completionblock.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
