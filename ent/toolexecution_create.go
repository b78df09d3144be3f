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
	"github.com/datalens-ai/datalens/ent/completionblock"
	"github.com/datalens-ai/datalens/ent/plandecision"
	"github.com/datalens-ai/datalens/ent/toolexecution"
)

// ToolExecutionCreate is the builder for creating a ToolExecution entity.
type ToolExecutionCreate struct {
	config
	mutation *ToolExecutionMutation
	hooks    []Hook
}

// SetPlanDecisionID sets the "plan_decision_id" field.
func (_c *ToolExecutionCreate) SetPlanDecisionID(v string) *ToolExecutionCreate {
	_c.mutation.SetPlanDecisionID(v)
	return _c
}

// SetAgentExecutionID sets the "agent_execution_id" field.
func (_c *ToolExecutionCreate) SetAgentExecutionID(v string) *ToolExecutionCreate {
	_c.mutation.SetAgentExecutionID(v)
	return _c
}

// SetToolName sets the "tool_name" field.
func (_c *ToolExecutionCreate) SetToolName(v string) *ToolExecutionCreate {
	_c.mutation.SetToolName(v)
	return _c
}

// SetToolAction sets the "tool_action" field.
func (_c *ToolExecutionCreate) SetToolAction(v string) *ToolExecutionCreate {
	_c.mutation.SetToolAction(v)
	return _c
}

// SetNillableToolAction sets the "tool_action" field if the given value is not nil.
func (_c *ToolExecutionCreate) SetNillableToolAction(v *string) *ToolExecutionCreate {
	if v != nil {
		_c.SetToolAction(*v)
	}
	return _c
}

// SetArguments sets the "arguments" field.
func (_c *ToolExecutionCreate) SetArguments(v map[string]interface{}) *ToolExecutionCreate {
	_c.mutation.SetArguments(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ToolExecutionCreate) SetStatus(v toolexecution.Status) *ToolExecutionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ToolExecutionCreate) SetNillableStatus(v *toolexecution.Status) *ToolExecutionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetResult sets the "result" field.
func (_c *ToolExecutionCreate) SetResult(v map[string]interface{}) *ToolExecutionCreate {
	_c.mutation.SetResult(v)
	return _c
}

// SetResultSummary sets the "result_summary" field.
func (_c *ToolExecutionCreate) SetResultSummary(v string) *ToolExecutionCreate {
	_c.mutation.SetResultSummary(v)
	return _c
}

// SetNillableResultSummary sets the "result_summary" field if the given value is not nil.
func (_c *ToolExecutionCreate) SetNillableResultSummary(v *string) *ToolExecutionCreate {
	if v != nil {
		_c.SetResultSummary(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ToolExecutionCreate) SetErrorMessage(v string) *ToolExecutionCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ToolExecutionCreate) SetNillableErrorMessage(v *string) *ToolExecutionCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *ToolExecutionCreate) SetDurationMs(v int) *ToolExecutionCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *ToolExecutionCreate) SetNillableDurationMs(v *int) *ToolExecutionCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetAttemptNumber sets the "attempt_number" field.
func (_c *ToolExecutionCreate) SetAttemptNumber(v int) *ToolExecutionCreate {
	_c.mutation.SetAttemptNumber(v)
	return _c
}

// SetNillableAttemptNumber sets the "attempt_number" field if the given value is not nil.
func (_c *ToolExecutionCreate) SetNillableAttemptNumber(v *int) *ToolExecutionCreate {
	if v != nil {
		_c.SetAttemptNumber(*v)
	}
	return _c
}

// SetCreatedWidgetID sets the "created_widget_id" field.
func (_c *ToolExecutionCreate) SetCreatedWidgetID(v string) *ToolExecutionCreate {
	_c.mutation.SetCreatedWidgetID(v)
	return _c
}

// SetNillableCreatedWidgetID sets the "created_widget_id" field if the given value is not nil.
func (_c *ToolExecutionCreate) SetNillableCreatedWidgetID(v *string) *ToolExecutionCreate {
	if v != nil {
		_c.SetCreatedWidgetID(*v)
	}
	return _c
}

// SetCreatedStepID sets the "created_step_id" field.
func (_c *ToolExecutionCreate) SetCreatedStepID(v string) *ToolExecutionCreate {
	_c.mutation.SetCreatedStepID(v)
	return _c
}

// SetNillableCreatedStepID sets the "created_step_id" field if the given value is not nil.
func (_c *ToolExecutionCreate) SetNillableCreatedStepID(v *string) *ToolExecutionCreate {
	if v != nil {
		_c.SetCreatedStepID(*v)
	}
	return _c
}

// SetCreatedVisualizationIds sets the "created_visualization_ids" field.
func (_c *ToolExecutionCreate) SetCreatedVisualizationIds(v []string) *ToolExecutionCreate {
	_c.mutation.SetCreatedVisualizationIds(v)
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *ToolExecutionCreate) SetStartedAt(v time.Time) *ToolExecutionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *ToolExecutionCreate) SetNillableStartedAt(v *time.Time) *ToolExecutionCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *ToolExecutionCreate) SetCompletedAt(v time.Time) *ToolExecutionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *ToolExecutionCreate) SetNillableCompletedAt(v *time.Time) *ToolExecutionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ToolExecutionCreate) SetID(v string) *ToolExecutionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetDecisionID sets the "decision" edge to the PlanDecision entity by ID.
func (_c *ToolExecutionCreate) SetDecisionID(id string) *ToolExecutionCreate {
	_c.mutation.SetDecisionID(id)
	return _c
}

// SetDecision sets the "decision" edge to the PlanDecision entity.
func (_c *ToolExecutionCreate) SetDecision(v *PlanDecision) *ToolExecutionCreate {
	return _c.SetDecisionID(v.ID)
}

// SetExecutionID sets the "execution" edge to the AgentExecution entity by ID.
func (_c *ToolExecutionCreate) SetExecutionID(id string) *ToolExecutionCreate {
	_c.mutation.SetExecutionID(id)
	return _c
}

// SetExecution sets the "execution" edge to the AgentExecution entity.
func (_c *ToolExecutionCreate) SetExecution(v *AgentExecution) *ToolExecutionCreate {
	return _c.SetExecutionID(v.ID)
}

// AddBlockIDs adds the "block" edge to the CompletionBlock entity by IDs.
func (_c *ToolExecutionCreate) AddBlockIDs(ids ...string) *ToolExecutionCreate {
	_c.mutation.AddBlockIDs(ids...)
	return _c
}

// AddBlock adds the "block" edges to the CompletionBlock entity.
func (_c *ToolExecutionCreate) AddBlock(v ...*CompletionBlock) *ToolExecutionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddBlockIDs(ids...)
}

// Mutation returns the ToolExecutionMutation object of the builder.
func (_c *ToolExecutionCreate) Mutation() *ToolExecutionMutation {
	return _c.mutation
}

// Save creates the ToolExecution in the database.
func (_c *ToolExecutionCreate) Save(ctx context.Context) (*ToolExecution, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ToolExecutionCreate) SaveX(ctx context.Context) *ToolExecution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ToolExecutionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ToolExecutionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ToolExecutionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := toolexecution.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.AttemptNumber(); !ok {
		v := toolexecution.DefaultAttemptNumber
		_c.mutation.SetAttemptNumber(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := toolexecution.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ToolExecutionCreate) check() error {
	if _, ok := _c.mutation.PlanDecisionID(); !ok {
		return &ValidationError{Name: "plan_decision_id", err: errors.New(`ent: missing required field "ToolExecution.plan_decision_id"`)}
	}
	if _, ok := _c.mutation.AgentExecutionID(); !ok {
		return &ValidationError{Name: "agent_execution_id", err: errors.New(`ent: missing required field "ToolExecution.agent_execution_id"`)}
	}
	if _, ok := _c.mutation.ToolName(); !ok {
		return &ValidationError{Name: "tool_name", err: errors.New(`ent: missing required field "ToolExecution.tool_name"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ToolExecution.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := toolexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ToolExecution.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AttemptNumber(); !ok {
		return &ValidationError{Name: "attempt_number", err: errors.New(`ent: missing required field "ToolExecution.attempt_number"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "ToolExecution.started_at"`)}
	}
	if len(_c.mutation.DecisionIDs()) == 0 {
		return &ValidationError{Name: "decision", err: errors.New(`ent: missing required edge "ToolExecution.decision"`)}
	}
	if len(_c.mutation.ExecutionIDs()) == 0 {
		return &ValidationError{Name: "execution", err: errors.New(`ent: missing required edge "ToolExecution.execution"`)}
	}
	return nil
}

func (_c *ToolExecutionCreate) sqlSave(ctx context.Context) (*ToolExecution, error) {
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
			return nil, fmt.Errorf("unexpected ToolExecution.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ToolExecutionCreate) createSpec() (*ToolExecution, *sqlgraph.CreateSpec) {
	var (
		_node = &ToolExecution{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(toolexecution.Table, sqlgraph.NewFieldSpec(toolexecution.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ToolName(); ok {
		_spec.SetField(toolexecution.FieldToolName, field.TypeString, value)
		_node.ToolName = value
	}
	if value, ok := _c.mutation.ToolAction(); ok {
		_spec.SetField(toolexecution.FieldToolAction, field.TypeString, value)
		_node.ToolAction = value
	}
	if value, ok := _c.mutation.Arguments(); ok {
		_spec.SetField(toolexecution.FieldArguments, field.TypeJSON, value)
		_node.Arguments = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(toolexecution.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Result(); ok {
		_spec.SetField(toolexecution.FieldResult, field.TypeJSON, value)
		_node.Result = value
	}
	if value, ok := _c.mutation.ResultSummary(); ok {
		_spec.SetField(toolexecution.FieldResultSummary, field.TypeString, value)
		_node.ResultSummary = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(toolexecution.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(toolexecution.FieldDurationMs, field.TypeInt, value)
		_node.DurationMs = &value
	}
	if value, ok := _c.mutation.AttemptNumber(); ok {
		_spec.SetField(toolexecution.FieldAttemptNumber, field.TypeInt, value)
		_node.AttemptNumber = value
	}
	if value, ok := _c.mutation.CreatedWidgetID(); ok {
		_spec.SetField(toolexecution.FieldCreatedWidgetID, field.TypeString, value)
		_node.CreatedWidgetID = &value
	}
	if value, ok := _c.mutation.CreatedStepID(); ok {
		_spec.SetField(toolexecution.FieldCreatedStepID, field.TypeString, value)
		_node.CreatedStepID = &value
	}
	if value, ok := _c.mutation.CreatedVisualizationIds(); ok {
		_spec.SetField(toolexecution.FieldCreatedVisualizationIds, field.TypeJSON, value)
		_node.CreatedVisualizationIds = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(toolexecution.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(toolexecution.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.DecisionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   toolexecution.DecisionTable,
			Columns: []string{toolexecution.DecisionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(plandecision.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.PlanDecisionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ExecutionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   toolexecution.ExecutionTable,
			Columns: []string{toolexecution.ExecutionColumn},
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
	if nodes := _c.mutation.BlockIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   toolexecution.BlockTable,
			Columns: []string{toolexecution.BlockColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(completionblock.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ToolExecutionCreateBulk is the builder for creating many ToolExecution entities in bulk.
type ToolExecutionCreateBulk struct {
	config
	err      error
	builders []*ToolExecutionCreate
}

// Save creates the ToolExecution entities in the database.
func (_c *ToolExecutionCreateBulk) Save(ctx context.Context) ([]*ToolExecution, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ToolExecution, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ToolExecutionMutation)
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
func (_c *ToolExecutionCreateBulk) SaveX(ctx context.Context) []*ToolExecution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ToolExecutionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ToolExecutionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
