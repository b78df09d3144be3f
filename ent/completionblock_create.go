// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/datalens-ai/datalens/ent/completion"
	"github.com/datalens-ai/datalens/ent/completionblock"
	"github.com/datalens-ai/datalens/ent/plandecision"
	"github.com/datalens-ai/datalens/ent/toolexecution"
)

// CompletionBlockCreate is the builder for creating a CompletionBlock entity.
type CompletionBlockCreate struct {
	config
	mutation *CompletionBlockMutation
	hooks    []Hook
}

// SetCompletionID sets the "completion_id" field.
func (_c *CompletionBlockCreate) SetCompletionID(v string) *CompletionBlockCreate {
	_c.mutation.SetCompletionID(v)
	return _c
}

// SetAgentExecutionID sets the "agent_execution_id" field.
func (_c *CompletionBlockCreate) SetAgentExecutionID(v string) *CompletionBlockCreate {
	_c.mutation.SetAgentExecutionID(v)
	return _c
}

// SetPlanDecisionID sets the "plan_decision_id" field.
func (_c *CompletionBlockCreate) SetPlanDecisionID(v string) *CompletionBlockCreate {
	_c.mutation.SetPlanDecisionID(v)
	return _c
}

// SetNillablePlanDecisionID sets the "plan_decision_id" field if the given value is not nil.
func (_c *CompletionBlockCreate) SetNillablePlanDecisionID(v *string) *CompletionBlockCreate {
	if v != nil {
		_c.SetPlanDecisionID(*v)
	}
	return _c
}

// SetToolExecutionID sets the "tool_execution_id" field.
func (_c *CompletionBlockCreate) SetToolExecutionID(v string) *CompletionBlockCreate {
	_c.mutation.SetToolExecutionID(v)
	return _c
}

// SetNillableToolExecutionID sets the "tool_execution_id" field if the given value is not nil.
func (_c *CompletionBlockCreate) SetNillableToolExecutionID(v *string) *CompletionBlockCreate {
	if v != nil {
		_c.SetToolExecutionID(*v)
	}
	return _c
}

// SetSeq sets the "seq" field.
func (_c *CompletionBlockCreate) SetSeq(v int) *CompletionBlockCreate {
	_c.mutation.SetSeq(v)
	return _c
}

// SetBlockIndex sets the "block_index" field.
func (_c *CompletionBlockCreate) SetBlockIndex(v int) *CompletionBlockCreate {
	_c.mutation.SetBlockIndex(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *CompletionBlockCreate) SetContent(v string) *CompletionBlockCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_c *CompletionBlockCreate) SetNillableContent(v *string) *CompletionBlockCreate {
	if v != nil {
		_c.SetContent(*v)
	}
	return _c
}

// SetReasoning sets the "reasoning" field.
func (_c *CompletionBlockCreate) SetReasoning(v string) *CompletionBlockCreate {
	_c.mutation.SetReasoning(v)
	return _c
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_c *CompletionBlockCreate) SetNillableReasoning(v *string) *CompletionBlockCreate {
	if v != nil {
		_c.SetReasoning(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *CompletionBlockCreate) SetStatus(v completionblock.Status) *CompletionBlockCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *CompletionBlockCreate) SetNillableStatus(v *completionblock.Status) *CompletionBlockCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *CompletionBlockCreate) SetErrorMessage(v string) *CompletionBlockCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *CompletionBlockCreate) SetNillableErrorMessage(v *string) *CompletionBlockCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CompletionBlockCreate) SetCreatedAt(v time.Time) *CompletionBlockCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CompletionBlockCreate) SetNillableCreatedAt(v *time.Time) *CompletionBlockCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CompletionBlockCreate) SetUpdatedAt(v time.Time) *CompletionBlockCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CompletionBlockCreate) SetNillableUpdatedAt(v *time.Time) *CompletionBlockCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CompletionBlockCreate) SetID(v string) *CompletionBlockCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetParentID sets the "parent" edge to the Completion entity by ID.
func (_c *CompletionBlockCreate) SetParentID(id string) *CompletionBlockCreate {
	_c.mutation.SetParentID(id)
	return _c
}

// SetParent sets the "parent" edge to the Completion entity.
func (_c *CompletionBlockCreate) SetParent(v *Completion) *CompletionBlockCreate {
	return _c.SetParentID(v.ID)
}

// SetPlanDecision sets the "plan_decision" edge to the PlanDecision entity.
func (_c *CompletionBlockCreate) SetPlanDecision(v *PlanDecision) *CompletionBlockCreate {
	return _c.SetPlanDecisionID(v.ID)
}

// SetToolExecution sets the "tool_execution" edge to the ToolExecution entity.
func (_c *CompletionBlockCreate) SetToolExecution(v *ToolExecution) *CompletionBlockCreate {
	return _c.SetToolExecutionID(v.ID)
}

// Mutation returns the CompletionBlockMutation object of the builder.
func (_c *CompletionBlockCreate) Mutation() *CompletionBlockMutation {
	return _c.mutation
}

// Save creates the CompletionBlock in the database.
func (_c *CompletionBlockCreate) Save(ctx context.Context) (*CompletionBlock, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CompletionBlockCreate) SaveX(ctx context.Context) *CompletionBlock {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CompletionBlockCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CompletionBlockCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CompletionBlockCreate) defaults() {
	if _, ok := _c.mutation.Content(); !ok {
		v := completionblock.DefaultContent
		_c.mutation.SetContent(v)
	}
	if _, ok := _c.mutation.Reasoning(); !ok {
		v := completionblock.DefaultReasoning
		_c.mutation.SetReasoning(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := completionblock.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := completionblock.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := completionblock.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CompletionBlockCreate) check() error {
	if _, ok := _c.mutation.CompletionID(); !ok {
		return &ValidationError{Name: "completion_id", err: errors.New(`ent: missing required field "CompletionBlock.completion_id"`)}
	}
	if _, ok := _c.mutation.AgentExecutionID(); !ok {
		return &ValidationError{Name: "agent_execution_id", err: errors.New(`ent: missing required field "CompletionBlock.agent_execution_id"`)}
	}
	if _, ok := _c.mutation.Seq(); !ok {
		return &ValidationError{Name: "seq", err: errors.New(`ent: missing required field "CompletionBlock.seq"`)}
	}
	if _, ok := _c.mutation.BlockIndex(); !ok {
		return &ValidationError{Name: "block_index", err: errors.New(`ent: missing required field "CompletionBlock.block_index"`)}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "CompletionBlock.content"`)}
	}
	if _, ok := _c.mutation.Reasoning(); !ok {
		return &ValidationError{Name: "reasoning", err: errors.New(`ent: missing required field "CompletionBlock.reasoning"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "CompletionBlock.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := completionblock.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CompletionBlock.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CompletionBlock.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "CompletionBlock.updated_at"`)}
	}
	if len(_c.mutation.ParentIDs()) == 0 {
		return &ValidationError{Name: "parent", err: errors.New(`ent: missing required edge "CompletionBlock.parent"`)}
	}
	return nil
}

func (_c *CompletionBlockCreate) sqlSave(ctx context.Context) (*CompletionBlock, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected CompletionBlock.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CompletionBlockCreate) createSpec() (*CompletionBlock, *sqlgraph.CreateSpec) {
	var (
		_node = &CompletionBlock{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(completionblock.Table, sqlgraph.NewFieldSpec(completionblock.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AgentExecutionID(); ok {
		_spec.SetField(completionblock.FieldAgentExecutionID, field.TypeString, value)
		_node.AgentExecutionID = value
	}
	if value, ok := _c.mutation.Seq(); ok {
		_spec.SetField(completionblock.FieldSeq, field.TypeInt, value)
		_node.Seq = value
	}
	if value, ok := _c.mutation.BlockIndex(); ok {
		_spec.SetField(completionblock.FieldBlockIndex, field.TypeInt, value)
		_node.BlockIndex = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(completionblock.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.Reasoning(); ok {
		_spec.SetField(completionblock.FieldReasoning, field.TypeString, value)
		_node.Reasoning = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(completionblock.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(completionblock.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(completionblock.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(completionblock.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ParentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   completionblock.ParentTable,
			Columns: []string{completionblock.ParentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(completion.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CompletionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PlanDecisionIDs(); len(nodes) > 0 {
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
		_node.PlanDecisionID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ToolExecutionIDs(); len(nodes) > 0 {
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
		_node.ToolExecutionID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CompletionBlockCreateBulk is the builder for creating many CompletionBlock entities in bulk.
type CompletionBlockCreateBulk struct {
	config
	err      error
	builders []*CompletionBlockCreate
}

// Save creates the CompletionBlock entities in the database.
func (_c *CompletionBlockCreateBulk) Save(ctx context.Context) ([]*CompletionBlock, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CompletionBlock, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CompletionBlockMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *CompletionBlockCreateBulk) SaveX(ctx context.Context) []*CompletionBlock {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CompletionBlockCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CompletionBlockCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
