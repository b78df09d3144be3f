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
	"github.com/datalens-ai/datalens/ent/dataquery"
	"github.com/datalens-ai/datalens/ent/predicate"
)

// DataQueryUpdate is the builder for updating DataQuery entities.
type DataQueryUpdate struct {
	config
	hooks    []Hook
	mutation *DataQueryMutation
}

// Where appends a list predicates to the DataQueryUpdate builder.
func (_u *DataQueryUpdate) Where(ps ...predicate.DataQuery) *DataQueryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDataSourceID sets the "data_source_id" field.
func (_u *DataQueryUpdate) SetDataSourceID(v string) *DataQueryUpdate {
	_u.mutation.SetDataSourceID(v)
	return _u
}

// SetNillableDataSourceID sets the "data_source_id" field if the given value is not nil.
func (_u *DataQueryUpdate) SetNillableDataSourceID(v *string) *DataQueryUpdate {
	if v != nil {
		_u.SetDataSourceID(*v)
	}
	return _u
}

// ClearDataSourceID clears the value of the "data_source_id" field.
func (_u *DataQueryUpdate) ClearDataSourceID() *DataQueryUpdate {
	_u.mutation.ClearDataSourceID()
	return _u
}

// SetSQL sets the "sql" field.
func (_u *DataQueryUpdate) SetSQL(v string) *DataQueryUpdate {
	_u.mutation.SetSQL(v)
	return _u
}

// SetNillableSQL sets the "sql" field if the given value is not nil.
func (_u *DataQueryUpdate) SetNillableSQL(v *string) *DataQueryUpdate {
	if v != nil {
		_u.SetSQL(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DataQueryUpdate) SetUpdatedAt(v time.Time) *DataQueryUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the DataQueryMutation object of the builder.
func (_u *DataQueryUpdate) Mutation() *DataQueryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DataQueryUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DataQueryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DataQueryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DataQueryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DataQueryUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := dataquery.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DataQueryUpdate) check() error {
	if _u.mutation.ReportCleared() && len(_u.mutation.ReportIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DataQuery.report"`)
	}
	return nil
}

func (_u *DataQueryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dataquery.Table, dataquery.Columns, sqlgraph.NewFieldSpec(dataquery.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DataSourceID(); ok {
		_spec.SetField(dataquery.FieldDataSourceID, field.TypeString, value)
	}
	if _u.mutation.DataSourceIDCleared() {
		_spec.ClearField(dataquery.FieldDataSourceID, field.TypeString)
	}
	if value, ok := _u.mutation.SQL(); ok {
		_spec.SetField(dataquery.FieldSQL, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(dataquery.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dataquery.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DataQueryUpdateOne is the builder for updating a single DataQuery entity.
type DataQueryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DataQueryMutation
}

// SetDataSourceID sets the "data_source_id" field.
func (_u *DataQueryUpdateOne) SetDataSourceID(v string) *DataQueryUpdateOne {
	_u.mutation.SetDataSourceID(v)
	return _u
}

// SetNillableDataSourceID sets the "data_source_id" field if the given value is not nil.
func (_u *DataQueryUpdateOne) SetNillableDataSourceID(v *string) *DataQueryUpdateOne {
	if v != nil {
		_u.SetDataSourceID(*v)
	}
	return _u
}

// ClearDataSourceID clears the value of the "data_source_id" field.
func (_u *DataQueryUpdateOne) ClearDataSourceID() *DataQueryUpdateOne {
	_u.mutation.ClearDataSourceID()
	return _u
}

// SetSQL sets the "sql" field.
func (_u *DataQueryUpdateOne) SetSQL(v string) *DataQueryUpdateOne {
	_u.mutation.SetSQL(v)
	return _u
}

// SetNillableSQL sets the "sql" field if the given value is not nil.
func (_u *DataQueryUpdateOne) SetNillableSQL(v *string) *DataQueryUpdateOne {
	if v != nil {
		_u.SetSQL(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DataQueryUpdateOne) SetUpdatedAt(v time.Time) *DataQueryUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the DataQueryMutation object of the builder.
func (_u *DataQueryUpdateOne) Mutation() *DataQueryMutation {
	return _u.mutation
}

// Where appends a list predicates to the DataQueryUpdate builder.
func (_u *DataQueryUpdateOne) Where(ps ...predicate.DataQuery) *DataQueryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DataQueryUpdateOne) Select(field string, fields ...string) *DataQueryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DataQuery entity.
func (_u *DataQueryUpdateOne) Save(ctx context.Context) (*DataQuery, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DataQueryUpdateOne) SaveX(ctx context.Context) *DataQuery {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DataQueryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DataQueryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DataQueryUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := dataquery.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DataQueryUpdateOne) check() error {
	if _u.mutation.ReportCleared() && len(_u.mutation.ReportIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DataQuery.report"`)
	}
	return nil
}

func (_u *DataQueryUpdateOne) sqlSave(ctx context.Context) (_node *DataQuery, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dataquery.Table, dataquery.Columns, sqlgraph.NewFieldSpec(dataquery.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DataQuery.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, dataquery.FieldID)
		for _, f := range fields {
			if !dataquery.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != dataquery.FieldID {
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
	if value, ok := _u.mutation.DataSourceID(); ok {
		_spec.SetField(dataquery.FieldDataSourceID, field.TypeString, value)
	}
	if _u.mutation.DataSourceIDCleared() {
		_spec.ClearField(dataquery.FieldDataSourceID, field.TypeString)
	}
	if value, ok := _u.mutation.SQL(); ok {
		_spec.SetField(dataquery.FieldSQL, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(dataquery.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &DataQuery{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dataquery.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
