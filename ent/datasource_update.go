// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/datalens-ai/datalens/ent/datasource"
	"github.com/datalens-ai/datalens/ent/predicate"
)

// DataSourceUpdate is the builder for updating DataSource entities.
type DataSourceUpdate struct {
	config
	hooks    []Hook
	mutation *DataSourceMutation
}

// Where appends a list predicates to the DataSourceUpdate builder.
func (_u *DataSourceUpdate) Where(ps ...predicate.DataSource) *DataSourceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *DataSourceUpdate) SetName(v string) *DataSourceUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *DataSourceUpdate) SetNillableName(v *string) *DataSourceUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDialect sets the "dialect" field.
func (_u *DataSourceUpdate) SetDialect(v string) *DataSourceUpdate {
	_u.mutation.SetDialect(v)
	return _u
}

// SetNillableDialect sets the "dialect" field if the given value is not nil.
func (_u *DataSourceUpdate) SetNillableDialect(v *string) *DataSourceUpdate {
	if v != nil {
		_u.SetDialect(*v)
	}
	return _u
}

// ClearDialect clears the value of the "dialect" field.
func (_u *DataSourceUpdate) ClearDialect() *DataSourceUpdate {
	_u.mutation.ClearDialect()
	return _u
}

// SetActive sets the "active" field.
func (_u *DataSourceUpdate) SetActive(v bool) *DataSourceUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *DataSourceUpdate) SetNillableActive(v *bool) *DataSourceUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetTables sets the "tables" field.
func (_u *DataSourceUpdate) SetTables(v []map[string]interface{}) *DataSourceUpdate {
	_u.mutation.SetTables(v)
	return _u
}

// AppendTables appends value to the "tables" field.
func (_u *DataSourceUpdate) AppendTables(v []map[string]interface{}) *DataSourceUpdate {
	_u.mutation.AppendTables(v)
	return _u
}

// ClearTables clears the value of the "tables" field.
func (_u *DataSourceUpdate) ClearTables() *DataSourceUpdate {
	_u.mutation.ClearTables()
	return _u
}

// SetUserOverlays sets the "user_overlays" field.
func (_u *DataSourceUpdate) SetUserOverlays(v map[string]interface{}) *DataSourceUpdate {
	_u.mutation.SetUserOverlays(v)
	return _u
}

// ClearUserOverlays clears the value of the "user_overlays" field.
func (_u *DataSourceUpdate) ClearUserOverlays() *DataSourceUpdate {
	_u.mutation.ClearUserOverlays()
	return _u
}

// SetAuthPolicy sets the "auth_policy" field.
func (_u *DataSourceUpdate) SetAuthPolicy(v string) *DataSourceUpdate {
	_u.mutation.SetAuthPolicy(v)
	return _u
}

// SetNillableAuthPolicy sets the "auth_policy" field if the given value is not nil.
func (_u *DataSourceUpdate) SetNillableAuthPolicy(v *string) *DataSourceUpdate {
	if v != nil {
		_u.SetAuthPolicy(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DataSourceUpdate) SetUpdatedAt(v time.Time) *DataSourceUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the DataSourceMutation object of the builder.
func (_u *DataSourceUpdate) Mutation() *DataSourceMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DataSourceUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DataSourceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DataSourceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DataSourceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DataSourceUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := datasource.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DataSourceUpdate) check() error {
	if _u.mutation.ReportCleared() && len(_u.mutation.ReportIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DataSource.report"`)
	}
	return nil
}

func (_u *DataSourceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(datasource.Table, datasource.Columns, sqlgraph.NewFieldSpec(datasource.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(datasource.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Dialect(); ok {
		_spec.SetField(datasource.FieldDialect, field.TypeString, value)
	}
	if _u.mutation.DialectCleared() {
		_spec.ClearField(datasource.FieldDialect, field.TypeString)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(datasource.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Tables(); ok {
		_spec.SetField(datasource.FieldTables, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTables(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, datasource.FieldTables, value)
		})
	}
	if _u.mutation.TablesCleared() {
		_spec.ClearField(datasource.FieldTables, field.TypeJSON)
	}
	if value, ok := _u.mutation.UserOverlays(); ok {
		_spec.SetField(datasource.FieldUserOverlays, field.TypeJSON, value)
	}
	if _u.mutation.UserOverlaysCleared() {
		_spec.ClearField(datasource.FieldUserOverlays, field.TypeJSON)
	}
	if value, ok := _u.mutation.AuthPolicy(); ok {
		_spec.SetField(datasource.FieldAuthPolicy, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(datasource.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{datasource.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DataSourceUpdateOne is the builder for updating a single DataSource entity.
type DataSourceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DataSourceMutation
}

// SetName sets the "name" field.
func (_u *DataSourceUpdateOne) SetName(v string) *DataSourceUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *DataSourceUpdateOne) SetNillableName(v *string) *DataSourceUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDialect sets the "dialect" field.
func (_u *DataSourceUpdateOne) SetDialect(v string) *DataSourceUpdateOne {
	_u.mutation.SetDialect(v)
	return _u
}

// SetNillableDialect sets the "dialect" field if the given value is not nil.
func (_u *DataSourceUpdateOne) SetNillableDialect(v *string) *DataSourceUpdateOne {
	if v != nil {
		_u.SetDialect(*v)
	}
	return _u
}

// ClearDialect clears the value of the "dialect" field.
func (_u *DataSourceUpdateOne) ClearDialect() *DataSourceUpdateOne {
	_u.mutation.ClearDialect()
	return _u
}

// SetActive sets the "active" field.
func (_u *DataSourceUpdateOne) SetActive(v bool) *DataSourceUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *DataSourceUpdateOne) SetNillableActive(v *bool) *DataSourceUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetTables sets the "tables" field.
func (_u *DataSourceUpdateOne) SetTables(v []map[string]interface{}) *DataSourceUpdateOne {
	_u.mutation.SetTables(v)
	return _u
}

// AppendTables appends value to the "tables" field.
func (_u *DataSourceUpdateOne) AppendTables(v []map[string]interface{}) *DataSourceUpdateOne {
	_u.mutation.AppendTables(v)
	return _u
}

// ClearTables clears the value of the "tables" field.
func (_u *DataSourceUpdateOne) ClearTables() *DataSourceUpdateOne {
	_u.mutation.ClearTables()
	return _u
}

// SetUserOverlays sets the "user_overlays" field.
func (_u *DataSourceUpdateOne) SetUserOverlays(v map[string]interface{}) *DataSourceUpdateOne {
	_u.mutation.SetUserOverlays(v)
	return _u
}

// ClearUserOverlays clears the value of the "user_overlays" field.
func (_u *DataSourceUpdateOne) ClearUserOverlays() *DataSourceUpdateOne {
	_u.mutation.ClearUserOverlays()
	return _u
}

// SetAuthPolicy sets the "auth_policy" field.
func (_u *DataSourceUpdateOne) SetAuthPolicy(v string) *DataSourceUpdateOne {
	_u.mutation.SetAuthPolicy(v)
	return _u
}

// SetNillableAuthPolicy sets the "auth_policy" field if the given value is not nil.
func (_u *DataSourceUpdateOne) SetNillableAuthPolicy(v *string) *DataSourceUpdateOne {
	if v != nil {
		_u.SetAuthPolicy(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DataSourceUpdateOne) SetUpdatedAt(v time.Time) *DataSourceUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the DataSourceMutation object of the builder.
func (_u *DataSourceUpdateOne) Mutation() *DataSourceMutation {
	return _u.mutation
}

// Where appends a list predicates to the DataSourceUpdate builder.
func (_u *DataSourceUpdateOne) Where(ps ...predicate.DataSource) *DataSourceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DataSourceUpdateOne) Select(field string, fields ...string) *DataSourceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DataSource entity.
func (_u *DataSourceUpdateOne) Save(ctx context.Context) (*DataSource, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DataSourceUpdateOne) SaveX(ctx context.Context) *DataSource {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DataSourceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DataSourceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DataSourceUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := datasource.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DataSourceUpdateOne) check() error {
	if _u.mutation.ReportCleared() && len(_u.mutation.ReportIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DataSource.report"`)
	}
	return nil
}

func (_u *DataSourceUpdateOne) sqlSave(ctx context.Context) (_node *DataSource, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(datasource.Table, datasource.Columns, sqlgraph.NewFieldSpec(datasource.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DataSource.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, datasource.FieldID)
		for _, f := range fields {
			if !datasource.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != datasource.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(datasource.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Dialect(); ok {
		_spec.SetField(datasource.FieldDialect, field.TypeString, value)
	}
	if _u.mutation.DialectCleared() {
		_spec.ClearField(datasource.FieldDialect, field.TypeString)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(datasource.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Tables(); ok {
		_spec.SetField(datasource.FieldTables, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTables(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, datasource.FieldTables, value)
		})
	}
	if _u.mutation.TablesCleared() {
		_spec.ClearField(datasource.FieldTables, field.TypeJSON)
	}
	if value, ok := _u.mutation.UserOverlays(); ok {
		_spec.SetField(datasource.FieldUserOverlays, field.TypeJSON, value)
	}
	if _u.mutation.UserOverlaysCleared() {
		_spec.ClearField(datasource.FieldUserOverlays, field.TypeJSON)
	}
	if value, ok := _u.mutation.AuthPolicy(); ok {
		_spec.SetField(datasource.FieldAuthPolicy, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(datasource.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &DataSource{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{datasource.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
