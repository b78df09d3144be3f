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

// PlanDecisionCreate is the builder for creating a PlanDecision entity.
type PlanDecisionCreate struct {
	config
	mutation *PlanDecisionMutation
	hooks    []Hook
}

// SetAgentExecutionID sets the "agent_execution_id" field.
func (_c *PlanDecisionCreate) SetAgentExecutionID(v string) *PlanDecisionCreate {
	_c.mutation.SetAgentExecutionID(v)
	return _c
}

// SetSeq sets the "seq" field.
func (_c *PlanDecisionCreate) SetSeq(v int) *PlanDecisionCreate {
	_c.mutation.SetSeq(v)
	return _c
}

// SetLoopIndex sets the "loop_index" field.
func (_c *PlanDecisionCreate) SetLoopIndex(v int) *PlanDecisionCreate {
	_c.mutation.SetLoopIndex(v)
	return _c
}

// SetPlanType sets the "plan_type" field.
func (_c *PlanDecisionCreate) SetPlanType(v plandecision.PlanType) *PlanDecisionCreate {
	_c.mutation.SetPlanType(v)
	return _c
}

// SetNillablePlanType sets the "plan_type" field if the given value is not nil.
func (_c *PlanDecisionCreate) SetNillablePlanType(v *plandecision.PlanType) *PlanDecisionCreate {
	if v != nil {
		_c.SetPlanType(*v)
	}
	return _c
}

// SetReasoningMessage sets the "reasoning_message" field.
func (_c *PlanDecisionCreate) SetReasoningMessage(v string) *PlanDecisionCreate {
	_c.mutation.SetReasoningMessage(v)
	return _c
}

// SetNillableReasoningMessage sets the "reasoning_message" field if the given value is not nil.
func (_c *PlanDecisionCreate) SetNillableReasoningMessage(v *string) *PlanDecisionCreate {
	if v != nil {
		_c.SetReasoningMessage(*v)
	}
	return _c
}

// SetAssistantMessage sets the "assistant_message" field.
func (_c *PlanDecisionCreate) SetAssistantMessage(v string) *PlanDecisionCreate {
	_c.mutation.SetAssistantMessage(v)
	return _c
}

// SetNillableAssistantMessage sets the "assistant_message" field if the given value is not nil.
func (_c *PlanDecisionCreate) SetNillableAssistantMessage(v *string) *PlanDecisionCreate {
	if v != nil {
		_c.SetAssistantMessage(*v)
	}
	return _c
}

// SetActionName sets the "action_name" field.
func (_c *PlanDecisionCreate) SetActionName(v string) *PlanDecisionCreate {
	_c.mutation.SetActionName(v)
	return _c
}

// SetNillableActionName sets the "action_name" field if the given value is not nil.
func (_c *PlanDecisionCreate) SetNillableActionName(v *string) *PlanDecisionCreate {
	if v != nil {
		_c.SetActionName(*v)
	}
	return _c
}

// SetActionArguments sets the "action_arguments" field.
func (_c *PlanDecisionCreate) SetActionArguments(v map[string]interface{}) *PlanDecisionCreate {
	_c.mutation.SetActionArguments(v)
	return _c
}

// SetAnalysisComplete sets the "analysis_complete" field.
func (_c *PlanDecisionCreate) SetAnalysisComplete(v bool) *PlanDecisionCreate {
	_c.mutation.SetAnalysisComplete(v)
	return _c
}

// SetNillableAnalysisComplete sets the "analysis_complete" field if the given value is not nil.
func (_c *PlanDecisionCreate) SetNillableAnalysisComplete(v *bool) *PlanDecisionCreate {
	if v != nil {
		_c.SetAnalysisComplete(*v)
	}
	return _c
}

// SetFinalAnswer sets the "final_answer" field.
func (_c *PlanDecisionCreate) SetFinalAnswer(v string) *PlanDecisionCreate {
	_c.mutation.SetFinalAnswer(v)
	return _c
}

// SetNillableFinalAnswer sets the "final_answer" field if the given value is not nil.
func (_c *PlanDecisionCreate) SetNillableFinalAnswer(v *string) *PlanDecisionCreate {
	if v != nil {
		_c.SetFinalAnswer(*v)
	}
	return _c
}

// SetErrorCode sets the "error_code" field.
func (_c *PlanDecisionCreate) SetErrorCode(v string) *PlanDecisionCreate {
	_c.mutation.SetErrorCode(v)
	return _c
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_c *PlanDecisionCreate) SetNillableErrorCode(v *string) *PlanDecisionCreate {
	if v != nil {
		_c.SetErrorCode(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *PlanDecisionCreate) SetErrorMessage(v string) *PlanDecisionCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *PlanDecisionCreate) SetNillableErrorMessage(v *string) *PlanDecisionCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetFinal sets the "final" field.
func (_c *PlanDecisionCreate) SetFinal(v bool) *PlanDecisionCreate {
	_c.mutation.SetFinal(v)
	return _c
}

// SetNillableFinal sets the "final" field if the given value is not nil.
func (_c *PlanDecisionCreate) SetNillableFinal(v *bool) *PlanDecisionCreate {
	if v != nil {
		_c.SetFinal(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PlanDecisionCreate) SetCreatedAt(v time.Time) *PlanDecisionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PlanDecisionCreate) SetNillableCreatedAt(v *time.Time) *PlanDecisionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PlanDecisionCreate) SetUpdatedAt(v time.Time) *PlanDecisionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PlanDecisionCreate) SetNillableUpdatedAt(v *time.Time) *PlanDecisionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PlanDecisionCreate) SetID(v string) *PlanDecisionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetExecutionID sets the "execution" edge to the AgentExecution entity by ID.
func (_c *PlanDecisionCreate) SetExecutionID(id string) *PlanDecisionCreate {
	_c.mutation.SetExecutionID(id)
	return _c
}

// SetExecution sets the "execution" edge to the AgentExecution entity.
func (_c *PlanDecisionCreate) SetExecution(v *AgentExecution) *PlanDecisionCreate {
	return _c.SetExecutionID(v.ID)
}

// AddBlockIDs adds the "block" edge to the CompletionBlock entity by IDs.
func (_c *PlanDecisionCreate) AddBlockIDs(ids ...string) *PlanDecisionCreate {
	_c.mutation.AddBlockIDs(ids...)
	return _c
}

// AddBlock adds the "block" edges to the CompletionBlock entity.
func (_c *PlanDecisionCreate) AddBlock(v ...*CompletionBlock) *PlanDecisionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddBlockIDs(ids...)
}

// AddToolExecutionIDs adds the "tool_executions" edge to the ToolExecution entity by IDs.
func (_c *PlanDecisionCreate) AddToolExecutionIDs(ids ...string) *PlanDecisionCreate {
	_c.mutation.AddToolExecutionIDs(ids...)
	return _c
}

// AddToolExecutions adds the "tool_executions" edges to the ToolExecution entity.
func (_c *PlanDecisionCreate) AddToolExecutions(v ...*ToolExecution) *PlanDecisionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddToolExecutionIDs(ids...)
}

// Mutation returns the PlanDecisionMutation object of the builder.
func (_c *PlanDecisionCreate) Mutation() *PlanDecisionMutation {
	return _c.mutation
}

// Save creates the PlanDecision in the database.
func (_c *PlanDecisionCreate) Save(ctx context.Context) (*PlanDecision, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PlanDecisionCreate) SaveX(ctx context.Context) *PlanDecision {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PlanDecisionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PlanDecisionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PlanDecisionCreate) defaults() {
	if _, ok := _c.mutation.PlanType(); !ok {
		v := plandecision.DefaultPlanType
		_c.mutation.SetPlanType(v)
	}
	if _, ok := _c.mutation.ReasoningMessage(); !ok {
		v := plandecision.DefaultReasoningMessage
		_c.mutation.SetReasoningMessage(v)
	}
	if _, ok := _c.mutation.AssistantMessage(); !ok {
		v := plandecision.DefaultAssistantMessage
		_c.mutation.SetAssistantMessage(v)
	}
	if _, ok := _c.mutation.AnalysisComplete(); !ok {
		v := plandecision.DefaultAnalysisComplete
		_c.mutation.SetAnalysisComplete(v)
	}
	if _, ok := _c.mutation.Final(); !ok {
		v := plandecision.DefaultFinal
		_c.mutation.SetFinal(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := plandecision.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := plandecision.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PlanDecisionCreate) check() error {
	if _, ok := _c.mutation.AgentExecutionID(); !ok {
		return &ValidationError{Name: "agent_execution_id", err: errors.New(`ent: missing required field "PlanDecision.agent_execution_id"`)}
	}
	if _, ok := _c.mutation.Seq(); !ok {
		return &ValidationError{Name: "seq", err: errors.New(`ent: missing required field "PlanDecision.seq"`)}
	}
	if _, ok := _c.mutation.LoopIndex(); !ok {
		return &ValidationError{Name: "loop_index", err: errors.New(`ent: missing required field "PlanDecision.loop_index"`)}
	}
	if _, ok := _c.mutation.PlanType(); !ok {
		return &ValidationError{Name: "plan_type", err: errors.New(`ent: missing required field "PlanDecision.plan_type"`)}
	}
	if v, ok := _c.mutation.PlanType(); ok {
		if err := plandecision.PlanTypeValidator(v); err != nil {
			return &ValidationError{Name: "plan_type", err: fmt.Errorf(`ent: validator failed for field "PlanDecision.plan_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ReasoningMessage(); !ok {
		return &ValidationError{Name: "reasoning_message", err: errors.New(`ent: missing required field "PlanDecision.reasoning_message"`)}
	}
	if _, ok := _c.mutation.AssistantMessage(); !ok {
		return &ValidationError{Name: "assistant_message", err: errors.New(`ent: missing required field "PlanDecision.assistant_message"`)}
	}
	if _, ok := _c.mutation.AnalysisComplete(); !ok {
		return &ValidationError{Name: "analysis_complete", err: errors.New(`ent: missing required field "PlanDecision.analysis_complete"`)}
	}
	if _, ok := _c.mutation.Final(); !ok {
		return &ValidationError{Name: "final", err: errors.New(`ent: missing required field "PlanDecision.final"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PlanDecision.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "PlanDecision.updated_at"`)}
	}
	if len(_c.mutation.ExecutionIDs()) == 0 {
		return &ValidationError{Name: "execution", err: errors.New(`ent: missing required edge "PlanDecision.execution"`)}
	}
	return nil
}

func (_c *PlanDecisionCreate) sqlSave(ctx context.Context) (*PlanDecision, error) {
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
			return nil, fmt.Errorf("unexpected PlanDecision.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PlanDecisionCreate) createSpec() (*PlanDecision, *sqlgraph.CreateSpec) {
	var (
		_node = &PlanDecision{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(plandecision.Table, sqlgraph.NewFieldSpec(plandecision.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Seq(); ok {
		_spec.SetField(plandecision.FieldSeq, field.TypeInt, value)
		_node.Seq = value
	}
	if value, ok := _c.mutation.LoopIndex(); ok {
		_spec.SetField(plandecision.FieldLoopIndex, field.TypeInt, value)
		_node.LoopIndex = value
	}
	if value, ok := _c.mutation.PlanType(); ok {
		_spec.SetField(plandecision.FieldPlanType, field.TypeEnum, value)
		_node.PlanType = value
	}
	if value, ok := _c.mutation.ReasoningMessage(); ok {
		_spec.SetField(plandecision.FieldReasoningMessage, field.TypeString, value)
		_node.ReasoningMessage = value
	}
	if value, ok := _c.mutation.AssistantMessage(); ok {
		_spec.SetField(plandecision.FieldAssistantMessage, field.TypeString, value)
		_node.AssistantMessage = value
	}
	if value, ok := _c.mutation.ActionName(); ok {
		_spec.SetField(plandecision.FieldActionName, field.TypeString, value)
		_node.ActionName = &value
	}
	if value, ok := _c.mutation.ActionArguments(); ok {
		_spec.SetField(plandecision.FieldActionArguments, field.TypeJSON, value)
		_node.ActionArguments = value
	}
	if value, ok := _c.mutation.AnalysisComplete(); ok {
		_spec.SetField(plandecision.FieldAnalysisComplete, field.TypeBool, value)
		_node.AnalysisComplete = value
	}
	if value, ok := _c.mutation.FinalAnswer(); ok {
		_spec.SetField(plandecision.FieldFinalAnswer, field.TypeString, value)
		_node.FinalAnswer = value
	}
	if value, ok := _c.mutation.ErrorCode(); ok {
		_spec.SetField(plandecision.FieldErrorCode, field.TypeString, value)
		_node.ErrorCode = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(plandecision.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.Final(); ok {
		_spec.SetField(plandecision.FieldFinal, field.TypeBool, value)
		_node.Final = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(plandecision.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(plandecision.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ExecutionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   plandecision.ExecutionTable,
			Columns: []string{plandecision.ExecutionColumn},
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ToolExecutionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PlanDecisionCreateBulk is the builder for creating many PlanDecision entities in bulk.
type PlanDecisionCreateBulk struct {
	config
	err      error
	builders []*PlanDecisionCreate
}

// Save creates the PlanDecision entities in the database.
func (_c *PlanDecisionCreateBulk) Save(ctx context.Context) ([]*PlanDecision, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PlanDecision, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PlanDecisionMutation)
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
func (_c *PlanDecisionCreateBulk) SaveX(ctx context.Context) []*PlanDecision {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PlanDecisionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PlanDecisionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
