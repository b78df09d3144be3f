// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/datalens-ai/datalens/ent/dataquery"
	"github.com/datalens-ai/datalens/ent/report"
)

// DataQueryCreate is the builder for creating a DataQuery entity.
type DataQueryCreate struct {
	config
	mutation *DataQueryMutation
	hooks    []Hook
}

// SetReportID sets the "report_id" field.
func (_c *DataQueryCreate) SetReportID(v string) *DataQueryCreate {
	_c.mutation.SetReportID(v)
	return _c
}

// SetDataSourceID sets the "data_source_id" field.
func (_c *DataQueryCreate) SetDataSourceID(v string) *DataQueryCreate {
	_c.mutation.SetDataSourceID(v)
	return _c
}

// SetNillableDataSourceID sets the "data_source_id" field if the given value is not nil.
func (_c *DataQueryCreate) SetNillableDataSourceID(v *string) *DataQueryCreate {
	if v != nil {
		_c.SetDataSourceID(*v)
	}
	return _c
}

// SetSQL sets the "sql" field.
func (_c *DataQueryCreate) SetSQL(v string) *DataQueryCreate {
	_c.mutation.SetSQL(v)
	return _c
}

// SetNillableSQL sets the "sql" field if the given value is not nil.
func (_c *DataQueryCreate) SetNillableSQL(v *string) *DataQueryCreate {
	if v != nil {
		_c.SetSQL(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DataQueryCreate) SetCreatedAt(v time.Time) *DataQueryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DataQueryCreate) SetNillableCreatedAt(v *time.Time) *DataQueryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DataQueryCreate) SetUpdatedAt(v time.Time) *DataQueryCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DataQueryCreate) SetNillableUpdatedAt(v *time.Time) *DataQueryCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DataQueryCreate) SetID(v string) *DataQueryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetReport sets the "report" edge to the Report entity.
func (_c *DataQueryCreate) SetReport(v *Report) *DataQueryCreate {
	return _c.SetReportID(v.ID)
}

// Mutation returns the DataQueryMutation object of the builder.
func (_c *DataQueryCreate) Mutation() *DataQueryMutation {
	return _c.mutation
}

// Save creates the DataQuery in the database.
func (_c *DataQueryCreate) Save(ctx context.Context) (*DataQuery, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DataQueryCreate) SaveX(ctx context.Context) *DataQuery {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DataQueryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DataQueryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DataQueryCreate) defaults() {
	if _, ok := _c.mutation.SQL(); !ok {
		v := dataquery.DefaultSQL
		_c.mutation.SetSQL(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := dataquery.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := dataquery.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DataQueryCreate) check() error {
	if _, ok := _c.mutation.ReportID(); !ok {
		return &ValidationError{Name: "report_id", err: errors.New(`ent: missing required field "DataQuery.report_id"`)}
	}
	if _, ok := _c.mutation.SQL(); !ok {
		return &ValidationError{Name: "sql", err: errors.New(`ent: missing required field "DataQuery.sql"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DataQuery.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "DataQuery.updated_at"`)}
	}
	if len(_c.mutation.ReportIDs()) == 0 {
		return &ValidationError{Name: "report", err: errors.New(`ent: missing required edge "DataQuery.report"`)}
	}
	return nil
}

func (_c *DataQueryCreate) sqlSave(ctx context.Context) (*DataQuery, error) {
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
			return nil, fmt.Errorf("unexpected DataQuery.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DataQueryCreate) createSpec() (*DataQuery, *sqlgraph.CreateSpec) {
	var (
		_node = &DataQuery{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(dataquery.Table, sqlgraph.NewFieldSpec(dataquery.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.DataSourceID(); ok {
		_spec.SetField(dataquery.FieldDataSourceID, field.TypeString, value)
		_node.DataSourceID = value
	}
	if value, ok := _c.mutation.SQL(); ok {
		_spec.SetField(dataquery.FieldSQL, field.TypeString, value)
		_node.SQL = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(dataquery.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(dataquery.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ReportIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   dataquery.ReportTable,
			Columns: []string{dataquery.ReportColumn},
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

// DataQueryCreateBulk is the builder for creating many DataQuery entities in bulk.
type DataQueryCreateBulk struct {
	config
	err      error
	builders []*DataQueryCreate
}

// Save creates the DataQuery entities in the database.
func (_c *DataQueryCreateBulk) Save(ctx context.Context) ([]*DataQuery, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DataQuery, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DataQueryMutation)
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
func (_c *DataQueryCreateBulk) SaveX(ctx context.Context) []*DataQuery {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DataQueryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DataQueryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
