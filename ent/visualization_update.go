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
	"github.com/datalens-ai/datalens/ent/predicate"
	"github.com/datalens-ai/datalens/ent/visualization"
)

// VisualizationUpdate is the builder for updating Visualization entities.
type VisualizationUpdate struct {
	config
	hooks    []Hook
	mutation *VisualizationMutation
}

// Where appends a list predicates to the VisualizationUpdate builder.
func (_u *VisualizationUpdate) Where(ps ...predicate.Visualization) *VisualizationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKind sets the "kind" field.
func (_u *VisualizationUpdate) SetKind(v string) *VisualizationUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *VisualizationUpdate) SetNillableKind(v *string) *VisualizationUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetView sets the "view" field.
func (_u *VisualizationUpdate) SetView(v map[string]interface{}) *VisualizationUpdate {
	_u.mutation.SetView(v)
	return _u
}

// ClearView clears the value of the "view" field.
func (_u *VisualizationUpdate) ClearView() *VisualizationUpdate {
	_u.mutation.ClearView()
	return _u
}

// SetStatus sets the "status" field.
func (_u *VisualizationUpdate) SetStatus(v visualization.Status) *VisualizationUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *VisualizationUpdate) SetNillableStatus(v *visualization.Status) *VisualizationUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *VisualizationUpdate) SetUpdatedAt(v time.Time) *VisualizationUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the VisualizationMutation object of the builder.
func (_u *VisualizationUpdate) Mutation() *VisualizationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VisualizationUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VisualizationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VisualizationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VisualizationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *VisualizationUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := visualization.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VisualizationUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := visualization.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Visualization.status": %w`, err)}
		}
	}
	if _u.mutation.StepCleared() && len(_u.mutation.StepIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Visualization.step"`)
	}
	return nil
}

func (_u *VisualizationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(visualization.Table, visualization.Columns, sqlgraph.NewFieldSpec(visualization.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(visualization.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.View(); ok {
		_spec.SetField(visualization.FieldView, field.TypeJSON, value)
	}
	if _u.mutation.ViewCleared() {
		_spec.ClearField(visualization.FieldView, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(visualization.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(visualization.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{visualization.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VisualizationUpdateOne is the builder for updating a single Visualization entity.
type VisualizationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VisualizationMutation
}

// SetKind sets the "kind" field.
func (_u *VisualizationUpdateOne) SetKind(v string) *VisualizationUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *VisualizationUpdateOne) SetNillableKind(v *string) *VisualizationUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetView sets the "view" field.
func (_u *VisualizationUpdateOne) SetView(v map[string]interface{}) *VisualizationUpdateOne {
	_u.mutation.SetView(v)
	return _u
}

// ClearView clears the value of the "view" field.
func (_u *VisualizationUpdateOne) ClearView() *VisualizationUpdateOne {
	_u.mutation.ClearView()
	return _u
}

// SetStatus sets the "status" field.
func (_u *VisualizationUpdateOne) SetStatus(v visualization.Status) *VisualizationUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *VisualizationUpdateOne) SetNillableStatus(v *visualization.Status) *VisualizationUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *VisualizationUpdateOne) SetUpdatedAt(v time.Time) *VisualizationUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the VisualizationMutation object of the builder.
func (_u *VisualizationUpdateOne) Mutation() *VisualizationMutation {
	return _u.mutation
}

// Where appends a list predicates to the VisualizationUpdate builder.
func (_u *VisualizationUpdateOne) Where(ps ...predicate.Visualization) *VisualizationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VisualizationUpdateOne) Select(field string, fields ...string) *VisualizationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Visualization entity.
func (_u *VisualizationUpdateOne) Save(ctx context.Context) (*Visualization, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VisualizationUpdateOne) SaveX(ctx context.Context) *Visualization {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VisualizationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VisualizationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *VisualizationUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := visualization.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VisualizationUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := visualization.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Visualization.status": %w`, err)}
		}
	}
	if _u.mutation.StepCleared() && len(_u.mutation.StepIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Visualization.step"`)
	}
	return nil
}

func (_u *VisualizationUpdateOne) sqlSave(ctx context.Context) (_node *Visualization, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(visualization.Table, visualization.Columns, sqlgraph.NewFieldSpec(visualization.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Visualization.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, visualization.FieldID)
		for _, f := range fields {
			if !visualization.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != visualization.FieldID {
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
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(visualization.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.View(); ok {
		_spec.SetField(visualization.FieldView, field.TypeJSON, value)
	}
	if _u.mutation.ViewCleared() {
		_spec.ClearField(visualization.FieldView, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(visualization.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(visualization.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Visualization{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{visualization.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
