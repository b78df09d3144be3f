// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/datalens-ai/datalens/ent/agentexecution"
	"github.com/datalens-ai/datalens/ent/contextsnapshot"
)

// ContextSnapshotCreate is the builder for creating a ContextSnapshot entity.
type ContextSnapshotCreate struct {
	config
	mutation *ContextSnapshotMutation
	hooks    []Hook
}

// SetAgentExecutionID sets the "agent_execution_id" field.
func (_c *ContextSnapshotCreate) SetAgentExecutionID(v string) *ContextSnapshotCreate {
	_c.mutation.SetAgentExecutionID(v)
	return _c
}

// SetCompletionID sets the "completion_id" field.
func (_c *ContextSnapshotCreate) SetCompletionID(v string) *ContextSnapshotCreate {
	_c.mutation.SetCompletionID(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *ContextSnapshotCreate) SetKind(v contextsnapshot.Kind) *ContextSnapshotCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetLoopIndex sets the "loop_index" field.
func (_c *ContextSnapshotCreate) SetLoopIndex(v int) *ContextSnapshotCreate {
	_c.mutation.SetLoopIndex(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *ContextSnapshotCreate) SetPayload(v map[string]interface{}) *ContextSnapshotCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ContextSnapshotCreate) SetCreatedAt(v time.Time) *ContextSnapshotCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ContextSnapshotCreate) SetNillableCreatedAt(v *time.Time) *ContextSnapshotCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ContextSnapshotCreate) SetID(v string) *ContextSnapshotCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetExecutionID sets the "execution" edge to the AgentExecution entity by ID.
func (_c *ContextSnapshotCreate) SetExecutionID(id string) *ContextSnapshotCreate {
	_c.mutation.SetExecutionID(id)
	return _c
}

// SetExecution sets the "execution" edge to the AgentExecution entity.
func (_c *ContextSnapshotCreate) SetExecution(v *AgentExecution) *ContextSnapshotCreate {
	return _c.SetExecutionID(v.ID)
}

// Mutation returns the ContextSnapshotMutation object of the builder.
func (_c *ContextSnapshotCreate) Mutation() *ContextSnapshotMutation {
	return _c.mutation
}

// Save creates the ContextSnapshot in the database.
func (_c *ContextSnapshotCreate) Save(ctx context.Context) (*ContextSnapshot, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ContextSnapshotCreate) SaveX(ctx context.Context) *ContextSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContextSnapshotCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContextSnapshotCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ContextSnapshotCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := contextsnapshot.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ContextSnapshotCreate) check() error {
	if _, ok := _c.mutation.AgentExecutionID(); !ok {
		return &ValidationError{Name: "agent_execution_id", err: errors.New(`ent: missing required field "ContextSnapshot.agent_execution_id"`)}
	}
	if _, ok := _c.mutation.CompletionID(); !ok {
		return &ValidationError{Name: "completion_id", err: errors.New(`ent: missing required field "ContextSnapshot.completion_id"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "ContextSnapshot.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := contextsnapshot.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "ContextSnapshot.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LoopIndex(); !ok {
		return &ValidationError{Name: "loop_index", err: errors.New(`ent: missing required field "ContextSnapshot.loop_index"`)}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "ContextSnapshot.payload"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ContextSnapshot.created_at"`)}
	}
	if len(_c.mutation.ExecutionIDs()) == 0 {
		return &ValidationError{Name: "execution", err: errors.New(`ent: missing required edge "ContextSnapshot.execution"`)}
	}
	return nil
}

func (_c *ContextSnapshotCreate) sqlSave(ctx context.Context) (*ContextSnapshot, error) {
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
			return nil, fmt.Errorf("unexpected ContextSnapshot.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ContextSnapshotCreate) createSpec() (*ContextSnapshot, *sqlgraph.CreateSpec) {
	var (
		_node = &ContextSnapshot{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(contextsnapshot.Table, sqlgraph.NewFieldSpec(contextsnapshot.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CompletionID(); ok {
		_spec.SetField(contextsnapshot.FieldCompletionID, field.TypeString, value)
		_node.CompletionID = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(contextsnapshot.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.LoopIndex(); ok {
		_spec.SetField(contextsnapshot.FieldLoopIndex, field.TypeInt, value)
		_node.LoopIndex = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(contextsnapshot.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(contextsnapshot.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ExecutionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   contextsnapshot.ExecutionTable,
			Columns: []string{contextsnapshot.ExecutionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentexecution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.AgentExecutionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ContextSnapshotCreateBulk is the builder for creating many ContextSnapshot entities in bulk.
type ContextSnapshotCreateBulk struct {
	config
	err      error
	builders []*ContextSnapshotCreate
}

// Save creates the ContextSnapshot entities in the database.
func (_c *ContextSnapshotCreateBulk) Save(ctx context.Context) ([]*ContextSnapshot, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ContextSnapshot, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ContextSnapshotMutation)
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
func (_c *ContextSnapshotCreateBulk) SaveX(ctx context.Context) []*ContextSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContextSnapshotCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContextSnapshotCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
