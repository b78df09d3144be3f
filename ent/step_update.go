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
	"github.com/datalens-ai/datalens/ent/predicate"
	"github.com/datalens-ai/datalens/ent/step"
	"github.com/datalens-ai/datalens/ent/visualization"
)

// StepUpdate is the builder for updating Step entities.
type StepUpdate struct {
	config
	hooks    []Hook
	mutation *StepMutation
}

// Where appends a list predicates to the StepUpdate builder.
func (_u *StepUpdate) Where(ps ...predicate.Step) *StepUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetQueryID sets the "query_id" field.
func (_u *StepUpdate) SetQueryID(v string) *StepUpdate {
	_u.mutation.SetQueryID(v)
	return _u
}

// SetNillableQueryID sets the "query_id" field if the given value is not nil.
func (_u *StepUpdate) SetNillableQueryID(v *string) *StepUpdate {
	if v != nil {
		_u.SetQueryID(*v)
	}
	return _u
}

// ClearQueryID clears the value of the "query_id" field.
func (_u *StepUpdate) ClearQueryID() *StepUpdate {
	_u.mutation.ClearQueryID()
	return _u
}

// SetCode sets the "code" field.
func (_u *StepUpdate) SetCode(v string) *StepUpdate {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *StepUpdate) SetNillableCode(v *string) *StepUpdate {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *StepUpdate) SetData(v []map[string]interface{}) *StepUpdate {
	_u.mutation.SetData(v)
	return _u
}

// AppendData appends value to the "data" field.
func (_u *StepUpdate) AppendData(v []map[string]interface{}) *StepUpdate {
	_u.mutation.AppendData(v)
	return _u
}

// ClearData clears the value of the "data" field.
func (_u *StepUpdate) ClearData() *StepUpdate {
	_u.mutation.ClearData()
	return _u
}

// SetDataModel sets the "data_model" field.
func (_u *StepUpdate) SetDataModel(v map[string]interface{}) *StepUpdate {
	_u.mutation.SetDataModel(v)
	return _u
}

// ClearDataModel clears the value of the "data_model" field.
func (_u *StepUpdate) ClearDataModel() *StepUpdate {
	_u.mutation.ClearDataModel()
	return _u
}

// SetStatus sets the "status" field.
func (_u *StepUpdate) SetStatus(v step.Status) *StepUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *StepUpdate) SetNillableStatus(v *step.Status) *StepUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *StepUpdate) SetErrorMessage(v string) *StepUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *StepUpdate) SetNillableErrorMessage(v *string) *StepUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *StepUpdate) ClearErrorMessage() *StepUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StepUpdate) SetUpdatedAt(v time.Time) *StepUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddVisualizationIDs adds the "visualizations" edge to the Visualization entity by IDs.
func (_u *StepUpdate) AddVisualizationIDs(ids ...string) *StepUpdate {
	_u.mutation.AddVisualizationIDs(ids...)
	return _u
}

// AddVisualizations adds the "visualizations" edges to the Visualization entity.
func (_u *StepUpdate) AddVisualizations(v ...*Visualization) *StepUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVisualizationIDs(ids...)
}

// Mutation returns the StepMutation object of the builder.
func (_u *StepUpdate) Mutation() *StepMutation {
	return _u.mutation
}

// ClearVisualizations clears all "visualizations" edges to the Visualization entity.
func (_u *StepUpdate) ClearVisualizations() *StepUpdate {
	_u.mutation.ClearVisualizations()
	return _u
}

// RemoveVisualizationIDs removes the "visualizations" edge to Visualization entities by IDs.
func (_u *StepUpdate) RemoveVisualizationIDs(ids ...string) *StepUpdate {
	_u.mutation.RemoveVisualizationIDs(ids...)
	return _u
}

// RemoveVisualizations removes "visualizations" edges to Visualization entities.
func (_u *StepUpdate) RemoveVisualizations(v ...*Visualization) *StepUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVisualizationIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StepUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StepUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StepUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StepUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StepUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := step.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StepUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := step.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Step.status": %w`, err)}
		}
	}
	if _u.mutation.WidgetCleared() && len(_u.mutation.WidgetIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Step.widget"`)
	}
	return nil
}

func (_u *StepUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(step.Table, step.Columns, sqlgraph.NewFieldSpec(step.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.QueryID(); ok {
		_spec.SetField(step.FieldQueryID, field.TypeString, value)
	}
	if _u.mutation.QueryIDCleared() {
		_spec.ClearField(step.FieldQueryID, field.TypeString)
	}
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(step.FieldCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(step.FieldData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedData(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, step.FieldData, value)
		})
	}
	if _u.mutation.DataCleared() {
		_spec.ClearField(step.FieldData, field.TypeJSON)
	}
	if value, ok := _u.mutation.DataModel(); ok {
		_spec.SetField(step.FieldDataModel, field.TypeJSON, value)
	}
	if _u.mutation.DataModelCleared() {
		_spec.ClearField(step.FieldDataModel, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(step.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(step.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(step.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(step.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.VisualizationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   step.VisualizationsTable,
			Columns: []string{step.VisualizationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(visualization.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedVisualizationsIDs(); len(nodes) > 0 && !_u.mutation.VisualizationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   step.VisualizationsTable,
			Columns: []string{step.VisualizationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(visualization.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VisualizationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   step.VisualizationsTable,
			Columns: []string{step.VisualizationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(visualization.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{step.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StepUpdateOne is the builder for updating a single Step entity.
type StepUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StepMutation
}

// SetQueryID sets the "query_id" field.
func (_u *StepUpdateOne) SetQueryID(v string) *StepUpdateOne {
	_u.mutation.SetQueryID(v)
	return _u
}

// SetNillableQueryID sets the "query_id" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableQueryID(v *string) *StepUpdateOne {
	if v != nil {
		_u.SetQueryID(*v)
	}
	return _u
}

// ClearQueryID clears the value of the "query_id" field.
func (_u *StepUpdateOne) ClearQueryID() *StepUpdateOne {
	_u.mutation.ClearQueryID()
	return _u
}

// SetCode sets the "code" field.
func (_u *StepUpdateOne) SetCode(v string) *StepUpdateOne {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableCode(v *string) *StepUpdateOne {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *StepUpdateOne) SetData(v []map[string]interface{}) *StepUpdateOne {
	_u.mutation.SetData(v)
	return _u
}

// AppendData appends value to the "data" field.
func (_u *StepUpdateOne) AppendData(v []map[string]interface{}) *StepUpdateOne {
	_u.mutation.AppendData(v)
	return _u
}

// ClearData clears the value of the "data" field.
func (_u *StepUpdateOne) ClearData() *StepUpdateOne {
	_u.mutation.ClearData()
	return _u
}

// SetDataModel sets the "data_model" field.
func (_u *StepUpdateOne) SetDataModel(v map[string]interface{}) *StepUpdateOne {
	_u.mutation.SetDataModel(v)
	return _u
}

// ClearDataModel clears the value of the "data_model" field.
func (_u *StepUpdateOne) ClearDataModel() *StepUpdateOne {
	_u.mutation.ClearDataModel()
	return _u
}

// SetStatus sets the "status" field.
func (_u *StepUpdateOne) SetStatus(v step.Status) *StepUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableStatus(v *step.Status) *StepUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *StepUpdateOne) SetErrorMessage(v string) *StepUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableErrorMessage(v *string) *StepUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *StepUpdateOne) ClearErrorMessage() *StepUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StepUpdateOne) SetUpdatedAt(v time.Time) *StepUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddVisualizationIDs adds the "visualizations" edge to the Visualization entity by IDs.
func (_u *StepUpdateOne) AddVisualizationIDs(ids ...string) *StepUpdateOne {
	_u.mutation.AddVisualizationIDs(ids...)
	return _u
}

// AddVisualizations adds the "visualizations" edges to the Visualization entity.
func (_u *StepUpdateOne) AddVisualizations(v ...*Visualization) *StepUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVisualizationIDs(ids...)
}

// Mutation returns the StepMutation object of the builder.
func (_u *StepUpdateOne) Mutation() *StepMutation {
	return _u.mutation
}

// ClearVisualizations clears all "visualizations" edges to the Visualization entity.
func (_u *StepUpdateOne) ClearVisualizations() *StepUpdateOne {
	_u.mutation.ClearVisualizations()
	return _u
}

// RemoveVisualizationIDs removes the "visualizations" edge to Visualization entities by IDs.
func (_u *StepUpdateOne) RemoveVisualizationIDs(ids ...string) *StepUpdateOne {
	_u.mutation.RemoveVisualizationIDs(ids...)
	return _u
}

// RemoveVisualizations removes "visualizations" edges to Visualization entities.
func (_u *StepUpdateOne) RemoveVisualizations(v ...*Visualization) *StepUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVisualizationIDs(ids...)
}

// Where appends a list predicates to the StepUpdate builder.
func (_u *StepUpdateOne) Where(ps ...predicate.Step) *StepUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StepUpdateOne) Select(field string, fields ...string) *StepUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Step entity.
func (_u *StepUpdateOne) Save(ctx context.Context) (*Step, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StepUpdateOne) SaveX(ctx context.Context) *Step {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StepUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StepUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StepUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := step.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StepUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := step.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Step.status": %w`, err)}
		}
	}
	if _u.mutation.WidgetCleared() && len(_u.mutation.WidgetIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Step.widget"`)
	}
	return nil
}

func (_u *StepUpdateOne) sqlSave(ctx context.Context) (_node *Step, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(step.Table, step.Columns, sqlgraph.NewFieldSpec(step.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Step.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, step.FieldID)
		for _, f := range fields {
			if !step.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != step.FieldID {
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
	if value, ok := _u.mutation.QueryID(); ok {
		_spec.SetField(step.FieldQueryID, field.TypeString, value)
	}
	if _u.mutation.QueryIDCleared() {
		_spec.ClearField(step.FieldQueryID, field.TypeString)
	}
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(step.FieldCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(step.FieldData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedData(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, step.FieldData, value)
		})
	}
	if _u.mutation.DataCleared() {
		_spec.ClearField(step.FieldData, field.TypeJSON)
	}
	if value, ok := _u.mutation.DataModel(); ok {
		_spec.SetField(step.FieldDataModel, field.TypeJSON, value)
	}
	if _u.mutation.DataModelCleared() {
		_spec.ClearField(step.FieldDataModel, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(step.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(step.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(step.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(step.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.VisualizationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   step.VisualizationsTable,
			Columns: []string{step.VisualizationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(visualization.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedVisualizationsIDs(); len(nodes) > 0 && !_u.mutation.VisualizationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   step.VisualizationsTable,
			Columns: []string{step.VisualizationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(visualization.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VisualizationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   step.VisualizationsTable,
			Columns: []string{step.VisualizationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(visualization.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Step{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{step.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
