// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/datalens-ai/datalens/ent/instruction"
	"github.com/datalens-ai/datalens/ent/report"
)

// InstructionCreate is the builder for creating a Instruction entity.
type InstructionCreate struct {
	config
	mutation *InstructionMutation
	hooks    []Hook
}

// SetReportID sets the "report_id" field.
func (_c *InstructionCreate) SetReportID(v string) *InstructionCreate {
	_c.mutation.SetReportID(v)
	return _c
}

// SetText sets the "text" field.
func (_c *InstructionCreate) SetText(v string) *InstructionCreate {
	_c.mutation.SetText(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *InstructionCreate) SetCategory(v string) *InstructionCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *InstructionCreate) SetNillableCategory(v *string) *InstructionCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetLoadMode sets the "load_mode" field.
func (_c *InstructionCreate) SetLoadMode(v instruction.LoadMode) *InstructionCreate {
	_c.mutation.SetLoadMode(v)
	return _c
}

// SetNillableLoadMode sets the "load_mode" field if the given value is not nil.
func (_c *InstructionCreate) SetNillableLoadMode(v *instruction.LoadMode) *InstructionCreate {
	if v != nil {
		_c.SetLoadMode(*v)
	}
	return _c
}

// SetBuildID sets the "build_id" field.
func (_c *InstructionCreate) SetBuildID(v string) *InstructionCreate {
	_c.mutation.SetBuildID(v)
	return _c
}

// SetNillableBuildID sets the "build_id" field if the given value is not nil.
func (_c *InstructionCreate) SetNillableBuildID(v *string) *InstructionCreate {
	if v != nil {
		_c.SetBuildID(*v)
	}
	return _c
}

// SetAiSource sets the "ai_source" field.
func (_c *InstructionCreate) SetAiSource(v string) *InstructionCreate {
	_c.mutation.SetAiSource(v)
	return _c
}

// SetNillableAiSource sets the "ai_source" field if the given value is not nil.
func (_c *InstructionCreate) SetNillableAiSource(v *string) *InstructionCreate {
	if v != nil {
		_c.SetAiSource(*v)
	}
	return _c
}

// SetUsageCount sets the "usage_count" field.
func (_c *InstructionCreate) SetUsageCount(v int) *InstructionCreate {
	_c.mutation.SetUsageCount(v)
	return _c
}

// SetNillableUsageCount sets the "usage_count" field if the given value is not nil.
func (_c *InstructionCreate) SetNillableUsageCount(v *int) *InstructionCreate {
	if v != nil {
		_c.SetUsageCount(*v)
	}
	return _c
}

// SetPosition sets the "position" field.
func (_c *InstructionCreate) SetPosition(v int) *InstructionCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_c *InstructionCreate) SetNillablePosition(v *int) *InstructionCreate {
	if v != nil {
		_c.SetPosition(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *InstructionCreate) SetCreatedAt(v time.Time) *InstructionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InstructionCreate) SetNillableCreatedAt(v *time.Time) *InstructionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *InstructionCreate) SetUpdatedAt(v time.Time) *InstructionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *InstructionCreate) SetNillableUpdatedAt(v *time.Time) *InstructionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InstructionCreate) SetID(v string) *InstructionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetReport sets the "report" edge to the Report entity.
func (_c *InstructionCreate) SetReport(v *Report) *InstructionCreate {
	return _c.SetReportID(v.ID)
}

// Mutation returns the InstructionMutation object of the builder.
func (_c *InstructionCreate) Mutation() *InstructionMutation {
	return _c.mutation
}

// Save creates the Instruction in the database.
func (_c *InstructionCreate) Save(ctx context.Context) (*Instruction, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InstructionCreate) SaveX(ctx context.Context) *Instruction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InstructionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InstructionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InstructionCreate) defaults() {
	if _, ok := _c.mutation.LoadMode(); !ok {
		v := instruction.DefaultLoadMode
		_c.mutation.SetLoadMode(v)
	}
	if _, ok := _c.mutation.UsageCount(); !ok {
		v := instruction.DefaultUsageCount
		_c.mutation.SetUsageCount(v)
	}
	if _, ok := _c.mutation.Position(); !ok {
		v := instruction.DefaultPosition
		_c.mutation.SetPosition(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := instruction.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := instruction.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InstructionCreate) check() error {
	if _, ok := _c.mutation.ReportID(); !ok {
		return &ValidationError{Name: "report_id", err: errors.New(`ent: missing required field "Instruction.report_id"`)}
	}
	if _, ok := _c.mutation.Text(); !ok {
		return &ValidationError{Name: "text", err: errors.New(`ent: missing required field "Instruction.text"`)}
	}
	if _, ok := _c.mutation.LoadMode(); !ok {
		return &ValidationError{Name: "load_mode", err: errors.New(`ent: missing required field "Instruction.load_mode"`)}
	}
	if v, ok := _c.mutation.LoadMode(); ok {
		if err := instruction.LoadModeValidator(v); err != nil {
			return &ValidationError{Name: "load_mode", err: fmt.Errorf(`ent: validator failed for field "Instruction.load_mode": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UsageCount(); !ok {
		return &ValidationError{Name: "usage_count", err: errors.New(`ent: missing required field "Instruction.usage_count"`)}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "Instruction.position"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Instruction.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Instruction.updated_at"`)}
	}
	if len(_c.mutation.ReportIDs()) == 0 {
		return &ValidationError{Name: "report", err: errors.New(`ent: missing required edge "Instruction.report"`)}
	}
	return nil
}

func (_c *InstructionCreate) sqlSave(ctx context.Context) (*Instruction, error) {
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
			return nil, fmt.Errorf("unexpected Instruction.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *InstructionCreate) createSpec() (*Instruction, *sqlgraph.CreateSpec) {
	var (
		_node = &Instruction{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(instruction.Table, sqlgraph.NewFieldSpec(instruction.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Text(); ok {
		_spec.SetField(instruction.FieldText, field.TypeString, value)
		_node.Text = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(instruction.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.LoadMode(); ok {
		_spec.SetField(instruction.FieldLoadMode, field.TypeEnum, value)
		_node.LoadMode = value
	}
	if value, ok := _c.mutation.BuildID(); ok {
		_spec.SetField(instruction.FieldBuildID, field.TypeString, value)
		_node.BuildID = &value
	}
	if value, ok := _c.mutation.AiSource(); ok {
		_spec.SetField(instruction.FieldAiSource, field.TypeString, value)
		_node.AiSource = value
	}
	if value, ok := _c.mutation.UsageCount(); ok {
		_spec.SetField(instruction.FieldUsageCount, field.TypeInt, value)
		_node.UsageCount = value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(instruction.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(instruction.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(instruction.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ReportIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   instruction.ReportTable,
			Columns: []string{instruction.ReportColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(report.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ReportID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// InstructionCreateBulk is the builder for creating many Instruction entities in bulk.
type InstructionCreateBulk struct {
	config
	err      error
	builders []*InstructionCreate
}

// Save creates the Instruction entities in the database.
func (_c *InstructionCreateBulk) Save(ctx context.Context) ([]*Instruction, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Instruction, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InstructionMutation)
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
func (_c *InstructionCreateBulk) SaveX(ctx context.Context) []*Instruction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InstructionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InstructionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
