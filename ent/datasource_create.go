// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/datalens-ai/datalens/ent/datasource"
	"github.com/datalens-ai/datalens/ent/report"
)

// DataSourceCreate is the builder for creating a DataSource entity.
type DataSourceCreate struct {
	config
	mutation *DataSourceMutation
	hooks    []Hook
}

// SetReportID sets the "report_id" field.
func (_c *DataSourceCreate) SetReportID(v string) *DataSourceCreate {
	_c.mutation.SetReportID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *DataSourceCreate) SetName(v string) *DataSourceCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDialect sets the "dialect" field.
func (_c *DataSourceCreate) SetDialect(v string) *DataSourceCreate {
	_c.mutation.SetDialect(v)
	return _c
}

// SetNillableDialect sets the "dialect" field if the given value is not nil.
func (_c *DataSourceCreate) SetNillableDialect(v *string) *DataSourceCreate {
	if v != nil {
		_c.SetDialect(*v)
	}
	return _c
}

// SetActive sets the "active" field.
func (_c *DataSourceCreate) SetActive(v bool) *DataSourceCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *DataSourceCreate) SetNillableActive(v *bool) *DataSourceCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// SetTables sets the "tables" field.
func (_c *DataSourceCreate) SetTables(v []map[string]interface{}) *DataSourceCreate {
	_c.mutation.SetTables(v)
	return _c
}

// SetUserOverlays sets the "user_overlays" field.
func (_c *DataSourceCreate) SetUserOverlays(v map[string]interface{}) *DataSourceCreate {
	_c.mutation.SetUserOverlays(v)
	return _c
}

// SetAuthPolicy sets the "auth_policy" field.
func (_c *DataSourceCreate) SetAuthPolicy(v string) *DataSourceCreate {
	_c.mutation.SetAuthPolicy(v)
	return _c
}

// SetNillableAuthPolicy sets the "auth_policy" field if the given value is not nil.
func (_c *DataSourceCreate) SetNillableAuthPolicy(v *string) *DataSourceCreate {
	if v != nil {
		_c.SetAuthPolicy(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DataSourceCreate) SetCreatedAt(v time.Time) *DataSourceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DataSourceCreate) SetNillableCreatedAt(v *time.Time) *DataSourceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DataSourceCreate) SetUpdatedAt(v time.Time) *DataSourceCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DataSourceCreate) SetNillableUpdatedAt(v *time.Time) *DataSourceCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DataSourceCreate) SetID(v string) *DataSourceCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetReport sets the "report" edge to the Report entity.
func (_c *DataSourceCreate) SetReport(v *Report) *DataSourceCreate {
	return _c.SetReportID(v.ID)
}

// Mutation returns the DataSourceMutation object of the builder.
func (_c *DataSourceCreate) Mutation() *DataSourceMutation {
	return _c.mutation
}

// Save creates the DataSource in the database.
func (_c *DataSourceCreate) Save(ctx context.Context) (*DataSource, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DataSourceCreate) SaveX(ctx context.Context) *DataSource {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DataSourceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DataSourceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DataSourceCreate) defaults() {
	if _, ok := _c.mutation.Active(); !ok {
		v := datasource.DefaultActive
		_c.mutation.SetActive(v)
	}
	if _, ok := _c.mutation.AuthPolicy(); !ok {
		v := datasource.DefaultAuthPolicy
		_c.mutation.SetAuthPolicy(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := datasource.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := datasource.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DataSourceCreate) check() error {
	if _, ok := _c.mutation.ReportID(); !ok {
		return &ValidationError{Name: "report_id", err: errors.New(`ent: missing required field "DataSource.report_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "DataSource.name"`)}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`ent: missing required field "DataSource.active"`)}
	}
	if _, ok := _c.mutation.AuthPolicy(); !ok {
		return &ValidationError{Name: "auth_policy", err: errors.New(`ent: missing required field "DataSource.auth_policy"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DataSource.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "DataSource.updated_at"`)}
	}
	if len(_c.mutation.ReportIDs()) == 0 {
		return &ValidationError{Name: "report", err: errors.New(`ent: missing required edge "DataSource.report"`)}
	}
	return nil
}

func (_c *DataSourceCreate) sqlSave(ctx context.Context) (*DataSource, error) {
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
			return nil, fmt.Errorf("unexpected DataSource.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DataSourceCreate) createSpec() (*DataSource, *sqlgraph.CreateSpec) {
	var (
		_node = &DataSource{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(datasource.Table, sqlgraph.NewFieldSpec(datasource.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(datasource.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Dialect(); ok {
		_spec.SetField(datasource.FieldDialect, field.TypeString, value)
		_node.Dialect = value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(datasource.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	if value, ok := _c.mutation.Tables(); ok {
		_spec.SetField(datasource.FieldTables, field.TypeJSON, value)
		_node.Tables = value
	}
	if value, ok := _c.mutation.UserOverlays(); ok {
		_spec.SetField(datasource.FieldUserOverlays, field.TypeJSON, value)
		_node.UserOverlays = value
	}
	if value, ok := _c.mutation.AuthPolicy(); ok {
		_spec.SetField(datasource.FieldAuthPolicy, field.TypeString, value)
		_node.AuthPolicy = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(datasource.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(datasource.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ReportIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   datasource.ReportTable,
			Columns: []string{datasource.ReportColumn},
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

// DataSourceCreateBulk is the builder for creating many DataSource entities in bulk.
type DataSourceCreateBulk struct {
	config
	err      error
	builders []*DataSourceCreate
}

// Save creates the DataSource entities in the database.
func (_c *DataSourceCreateBulk) Save(ctx context.Context) ([]*DataSource, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DataSource, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DataSourceMutation)
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
func (_c *DataSourceCreateBulk) SaveX(ctx context.Context) []*DataSource {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DataSourceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DataSourceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
