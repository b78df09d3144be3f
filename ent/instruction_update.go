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
	"github.com/datalens-ai/datalens/ent/instruction"
	"github.com/datalens-ai/datalens/ent/predicate"
)

// InstructionUpdate is the builder for updating Instruction entities.
type InstructionUpdate struct {
	config
	hooks    []Hook
	mutation *InstructionMutation
}

// Where appends a list predicates to the InstructionUpdate builder.
func (_u *InstructionUpdate) Where(ps ...predicate.Instruction) *InstructionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetText sets the "text" field.
func (_u *InstructionUpdate) SetText(v string) *InstructionUpdate {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *InstructionUpdate) SetNillableText(v *string) *InstructionUpdate {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *InstructionUpdate) SetCategory(v string) *InstructionUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *InstructionUpdate) SetNillableCategory(v *string) *InstructionUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *InstructionUpdate) ClearCategory() *InstructionUpdate {
	_u.mutation.ClearCategory()
	return _u
}

// SetLoadMode sets the "load_mode" field.
func (_u *InstructionUpdate) SetLoadMode(v instruction.LoadMode) *InstructionUpdate {
	_u.mutation.SetLoadMode(v)
	return _u
}

// SetNillableLoadMode sets the "load_mode" field if the given value is not nil.
func (_u *InstructionUpdate) SetNillableLoadMode(v *instruction.LoadMode) *InstructionUpdate {
	if v != nil {
		_u.SetLoadMode(*v)
	}
	return _u
}

// SetBuildID sets the "build_id" field.
func (_u *InstructionUpdate) SetBuildID(v string) *InstructionUpdate {
	_u.mutation.SetBuildID(v)
	return _u
}

// SetNillableBuildID sets the "build_id" field if the given value is not nil.
func (_u *InstructionUpdate) SetNillableBuildID(v *string) *InstructionUpdate {
	if v != nil {
		_u.SetBuildID(*v)
	}
	return _u
}

// ClearBuildID clears the value of the "build_id" field.
func (_u *InstructionUpdate) ClearBuildID() *InstructionUpdate {
	_u.mutation.ClearBuildID()
	return _u
}

// SetAiSource sets the "ai_source" field.
func (_u *InstructionUpdate) SetAiSource(v string) *InstructionUpdate {
	_u.mutation.SetAiSource(v)
	return _u
}

// SetNillableAiSource sets the "ai_source" field if the given value is not nil.
func (_u *InstructionUpdate) SetNillableAiSource(v *string) *InstructionUpdate {
	if v != nil {
		_u.SetAiSource(*v)
	}
	return _u
}

// ClearAiSource clears the value of the "ai_source" field.
func (_u *InstructionUpdate) ClearAiSource() *InstructionUpdate {
	_u.mutation.ClearAiSource()
	return _u
}

// SetUsageCount sets the "usage_count" field.
func (_u *InstructionUpdate) SetUsageCount(v int) *InstructionUpdate {
	_u.mutation.ResetUsageCount()
	_u.mutation.SetUsageCount(v)
	return _u
}

// SetNillableUsageCount sets the "usage_count" field if the given value is not nil.
func (_u *InstructionUpdate) SetNillableUsageCount(v *int) *InstructionUpdate {
	if v != nil {
		_u.SetUsageCount(*v)
	}
	return _u
}

// AddUsageCount adds value to the "usage_count" field.
func (_u *InstructionUpdate) AddUsageCount(v int) *InstructionUpdate {
	_u.mutation.AddUsageCount(v)
	return _u
}

// SetPosition sets the "position" field.
func (_u *InstructionUpdate) SetPosition(v int) *InstructionUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *InstructionUpdate) SetNillablePosition(v *int) *InstructionUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *InstructionUpdate) AddPosition(v int) *InstructionUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InstructionUpdate) SetUpdatedAt(v time.Time) *InstructionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the InstructionMutation object of the builder.
func (_u *InstructionUpdate) Mutation() *InstructionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InstructionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InstructionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InstructionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InstructionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InstructionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := instruction.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InstructionUpdate) check() error {
	if v, ok := _u.mutation.LoadMode(); ok {
		if err := instruction.LoadModeValidator(v); err != nil {
			return &ValidationError{Name: "load_mode", err: fmt.Errorf(`ent: validator failed for field "Instruction.load_mode": %w`, err)}
		}
	}
	if _u.mutation.ReportCleared() && len(_u.mutation.ReportIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Instruction.report"`)
	}
	return nil
}

func (_u *InstructionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(instruction.Table, instruction.Columns, sqlgraph.NewFieldSpec(instruction.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(instruction.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(instruction.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(instruction.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.LoadMode(); ok {
		_spec.SetField(instruction.FieldLoadMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.BuildID(); ok {
		_spec.SetField(instruction.FieldBuildID, field.TypeString, value)
	}
	if _u.mutation.BuildIDCleared() {
		_spec.ClearField(instruction.FieldBuildID, field.TypeString)
	}
	if value, ok := _u.mutation.AiSource(); ok {
		_spec.SetField(instruction.FieldAiSource, field.TypeString, value)
	}
	if _u.mutation.AiSourceCleared() {
		_spec.ClearField(instruction.FieldAiSource, field.TypeString)
	}
	if value, ok := _u.mutation.UsageCount(); ok {
		_spec.SetField(instruction.FieldUsageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUsageCount(); ok {
		_spec.AddField(instruction.FieldUsageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(instruction.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(instruction.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(instruction.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{instruction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InstructionUpdateOne is the builder for updating a single Instruction entity.
type InstructionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InstructionMutation
}

// SetText sets the "text" field.
func (_u *InstructionUpdateOne) SetText(v string) *InstructionUpdateOne {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *InstructionUpdateOne) SetNillableText(v *string) *InstructionUpdateOne {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *InstructionUpdateOne) SetCategory(v string) *InstructionUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *InstructionUpdateOne) SetNillableCategory(v *string) *InstructionUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *InstructionUpdateOne) ClearCategory() *InstructionUpdateOne {
	_u.mutation.ClearCategory()
	return _u
}

// SetLoadMode sets the "load_mode" field.
func (_u *InstructionUpdateOne) SetLoadMode(v instruction.LoadMode) *InstructionUpdateOne {
	_u.mutation.SetLoadMode(v)
	return _u
}

// SetNillableLoadMode sets the "load_mode" field if the given value is not nil.
func (_u *InstructionUpdateOne) SetNillableLoadMode(v *instruction.LoadMode) *InstructionUpdateOne {
	if v != nil {
		_u.SetLoadMode(*v)
	}
	return _u
}

// SetBuildID sets the "build_id" field.
func (_u *InstructionUpdateOne) SetBuildID(v string) *InstructionUpdateOne {
	_u.mutation.SetBuildID(v)
	return _u
}

// SetNillableBuildID sets the "build_id" field if the given value is not nil.
func (_u *InstructionUpdateOne) SetNillableBuildID(v *string) *InstructionUpdateOne {
	if v != nil {
		_u.SetBuildID(*v)
	}
	return _u
}

// ClearBuildID clears the value of the "build_id" field.
func (_u *InstructionUpdateOne) ClearBuildID() *InstructionUpdateOne {
	_u.mutation.ClearBuildID()
	return _u
}

// SetAiSource sets the "ai_source" field.
func (_u *InstructionUpdateOne) SetAiSource(v string) *InstructionUpdateOne {
	_u.mutation.SetAiSource(v)
	return _u
}

// SetNillableAiSource sets the "ai_source" field if the given value is not nil.
func (_u *InstructionUpdateOne) SetNillableAiSource(v *string) *InstructionUpdateOne {
	if v != nil {
		_u.SetAiSource(*v)
	}
	return _u
}

// ClearAiSource clears the value of the "ai_source" field.
func (_u *InstructionUpdateOne) ClearAiSource() *InstructionUpdateOne {
	_u.mutation.ClearAiSource()
	return _u
}

// SetUsageCount sets the "usage_count" field.
func (_u *InstructionUpdateOne) SetUsageCount(v int) *InstructionUpdateOne {
	_u.mutation.ResetUsageCount()
	_u.mutation.SetUsageCount(v)
	return _u
}

// SetNillableUsageCount sets the "usage_count" field if the given value is not nil.
func (_u *InstructionUpdateOne) SetNillableUsageCount(v *int) *InstructionUpdateOne {
	if v != nil {
		_u.SetUsageCount(*v)
	}
	return _u
}

// AddUsageCount adds value to the "usage_count" field.
func (_u *InstructionUpdateOne) AddUsageCount(v int) *InstructionUpdateOne {
	_u.mutation.AddUsageCount(v)
	return _u
}

// SetPosition sets the "position" field.
func (_u *InstructionUpdateOne) SetPosition(v int) *InstructionUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *InstructionUpdateOne) SetNillablePosition(v *int) *InstructionUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *InstructionUpdateOne) AddPosition(v int) *InstructionUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InstructionUpdateOne) SetUpdatedAt(v time.Time) *InstructionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the InstructionMutation object of the builder.
func (_u *InstructionUpdateOne) Mutation() *InstructionMutation {
	return _u.mutation
}

// Where appends a list predicates to the InstructionUpdate builder.
func (_u *InstructionUpdateOne) Where(ps ...predicate.Instruction) *InstructionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InstructionUpdateOne) Select(field string, fields ...string) *InstructionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Instruction entity.
func (_u *InstructionUpdateOne) Save(ctx context.Context) (*Instruction, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InstructionUpdateOne) SaveX(ctx context.Context) *Instruction {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InstructionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InstructionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InstructionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := instruction.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InstructionUpdateOne) check() error {
	if v, ok := _u.mutation.LoadMode(); ok {
		if err := instruction.LoadModeValidator(v); err != nil {
			return &ValidationError{Name: "load_mode", err: fmt.Errorf(`ent: validator failed for field "Instruction.load_mode": %w`, err)}
		}
	}
	if _u.mutation.ReportCleared() && len(_u.mutation.ReportIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Instruction.report"`)
	}
	return nil
}

func (_u *InstructionUpdateOne) sqlSave(ctx context.Context) (_node *Instruction, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(instruction.Table, instruction.Columns, sqlgraph.NewFieldSpec(instruction.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Instruction.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, instruction.FieldID)
		for _, f := range fields {
			if !instruction.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != instruction.FieldID {
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
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(instruction.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(instruction.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(instruction.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.LoadMode(); ok {
		_spec.SetField(instruction.FieldLoadMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.BuildID(); ok {
		_spec.SetField(instruction.FieldBuildID, field.TypeString, value)
	}
	if _u.mutation.BuildIDCleared() {
		_spec.ClearField(instruction.FieldBuildID, field.TypeString)
	}
	if value, ok := _u.mutation.AiSource(); ok {
		_spec.SetField(instruction.FieldAiSource, field.TypeString, value)
	}
	if _u.mutation.AiSourceCleared() {
		_spec.ClearField(instruction.FieldAiSource, field.TypeString)
	}
	if value, ok := _u.mutation.UsageCount(); ok {
		_spec.SetField(instruction.FieldUsageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUsageCount(); ok {
		_spec.AddField(instruction.FieldUsageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(instruction.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(instruction.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(instruction.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Instruction{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{instruction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
