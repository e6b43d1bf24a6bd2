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
	"github.com/cortexhq/cortex/ent/predicate"
	"github.com/cortexhq/cortex/ent/unit"
)

// UnitUpdate is the builder for updating Unit entities.
type UnitUpdate struct {
	config
	hooks    []Hook
	mutation *UnitMutation
}

// Where appends a list predicates to the UnitUpdate builder.
func (_u *UnitUpdate) Where(ps ...predicate.Unit) *UnitUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *UnitUpdate) SetOwnerID(v string) *UnitUpdate {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *UnitUpdate) SetNillableOwnerID(v *string) *UnitUpdate {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *UnitUpdate) SetName(v string) *UnitUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *UnitUpdate) SetNillableName(v *string) *UnitUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetRawWhen sets the "raw_when" field.
func (_u *UnitUpdate) SetRawWhen(v string) *UnitUpdate {
	_u.mutation.SetRawWhen(v)
	return _u
}

// SetNillableRawWhen sets the "raw_when" field if the given value is not nil.
func (_u *UnitUpdate) SetNillableRawWhen(v *string) *UnitUpdate {
	if v != nil {
		_u.SetRawWhen(*v)
	}
	return _u
}

// ClearRawWhen clears the value of the "raw_when" field.
func (_u *UnitUpdate) ClearRawWhen() *UnitUpdate {
	_u.mutation.ClearRawWhen()
	return _u
}

// SetRawIf sets the "raw_if" field.
func (_u *UnitUpdate) SetRawIf(v string) *UnitUpdate {
	_u.mutation.SetRawIf(v)
	return _u
}

// SetNillableRawIf sets the "raw_if" field if the given value is not nil.
func (_u *UnitUpdate) SetNillableRawIf(v *string) *UnitUpdate {
	if v != nil {
		_u.SetRawIf(*v)
	}
	return _u
}

// ClearRawIf clears the value of the "raw_if" field.
func (_u *UnitUpdate) ClearRawIf() *UnitUpdate {
	_u.mutation.ClearRawIf()
	return _u
}

// SetRawThen sets the "raw_then" field.
func (_u *UnitUpdate) SetRawThen(v string) *UnitUpdate {
	_u.mutation.SetRawThen(v)
	return _u
}

// SetNillableRawThen sets the "raw_then" field if the given value is not nil.
func (_u *UnitUpdate) SetNillableRawThen(v *string) *UnitUpdate {
	if v != nil {
		_u.SetRawThen(*v)
	}
	return _u
}

// ClearRawThen clears the value of the "raw_then" field.
func (_u *UnitUpdate) ClearRawThen() *UnitUpdate {
	_u.mutation.ClearRawThen()
	return _u
}

// SetCompiledWhen sets the "compiled_when" field.
func (_u *UnitUpdate) SetCompiledWhen(v map[string]interface{}) *UnitUpdate {
	_u.mutation.SetCompiledWhen(v)
	return _u
}

// SetCompiledIf sets the "compiled_if" field.
func (_u *UnitUpdate) SetCompiledIf(v []interface{}) *UnitUpdate {
	_u.mutation.SetCompiledIf(v)
	return _u
}

// AppendCompiledIf appends value to the "compiled_if" field.
func (_u *UnitUpdate) AppendCompiledIf(v []interface{}) *UnitUpdate {
	_u.mutation.AppendCompiledIf(v)
	return _u
}

// ClearCompiledIf clears the value of the "compiled_if" field.
func (_u *UnitUpdate) ClearCompiledIf() *UnitUpdate {
	_u.mutation.ClearCompiledIf()
	return _u
}

// SetCompiledThen sets the "compiled_then" field.
func (_u *UnitUpdate) SetCompiledThen(v []interface{}) *UnitUpdate {
	_u.mutation.SetCompiledThen(v)
	return _u
}

// AppendCompiledThen appends value to the "compiled_then" field.
func (_u *UnitUpdate) AppendCompiledThen(v []interface{}) *UnitUpdate {
	_u.mutation.AppendCompiledThen(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *UnitUpdate) SetStatus(v unit.Status) *UnitUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *UnitUpdate) SetNillableStatus(v *unit.Status) *UnitUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTriggerSource sets the "trigger_source" field.
func (_u *UnitUpdate) SetTriggerSource(v string) *UnitUpdate {
	_u.mutation.SetTriggerSource(v)
	return _u
}

// SetNillableTriggerSource sets the "trigger_source" field if the given value is not nil.
func (_u *UnitUpdate) SetNillableTriggerSource(v *string) *UnitUpdate {
	if v != nil {
		_u.SetTriggerSource(*v)
	}
	return _u
}

// ClearTriggerSource clears the value of the "trigger_source" field.
func (_u *UnitUpdate) ClearTriggerSource() *UnitUpdate {
	_u.mutation.ClearTriggerSource()
	return _u
}

// SetTriggerEvent sets the "trigger_event" field.
func (_u *UnitUpdate) SetTriggerEvent(v string) *UnitUpdate {
	_u.mutation.SetTriggerEvent(v)
	return _u
}

// SetNillableTriggerEvent sets the "trigger_event" field if the given value is not nil.
func (_u *UnitUpdate) SetNillableTriggerEvent(v *string) *UnitUpdate {
	if v != nil {
		_u.SetTriggerEvent(*v)
	}
	return _u
}

// ClearTriggerEvent clears the value of the "trigger_event" field.
func (_u *UnitUpdate) ClearTriggerEvent() *UnitUpdate {
	_u.mutation.ClearTriggerEvent()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UnitUpdate) SetUpdatedAt(v time.Time) *UnitUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the UnitMutation object of the builder.
func (_u *UnitUpdate) Mutation() *UnitMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UnitUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UnitUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UnitUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UnitUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UnitUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := unit.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UnitUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := unit.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Unit.status": %w`, err)}
		}
	}
	return nil
}

func (_u *UnitUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(unit.Table, unit.Columns, sqlgraph.NewFieldSpec(unit.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(unit.FieldOwnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(unit.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.RawWhen(); ok {
		_spec.SetField(unit.FieldRawWhen, field.TypeString, value)
	}
	if _u.mutation.RawWhenCleared() {
		_spec.ClearField(unit.FieldRawWhen, field.TypeString)
	}
	if value, ok := _u.mutation.RawIf(); ok {
		_spec.SetField(unit.FieldRawIf, field.TypeString, value)
	}
	if _u.mutation.RawIfCleared() {
		_spec.ClearField(unit.FieldRawIf, field.TypeString)
	}
	if value, ok := _u.mutation.RawThen(); ok {
		_spec.SetField(unit.FieldRawThen, field.TypeString, value)
	}
	if _u.mutation.RawThenCleared() {
		_spec.ClearField(unit.FieldRawThen, field.TypeString)
	}
	if value, ok := _u.mutation.CompiledWhen(); ok {
		_spec.SetField(unit.FieldCompiledWhen, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.CompiledIf(); ok {
		_spec.SetField(unit.FieldCompiledIf, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCompiledIf(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, unit.FieldCompiledIf, value)
		})
	}
	if _u.mutation.CompiledIfCleared() {
		_spec.ClearField(unit.FieldCompiledIf, field.TypeJSON)
	}
	if value, ok := _u.mutation.CompiledThen(); ok {
		_spec.SetField(unit.FieldCompiledThen, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCompiledThen(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, unit.FieldCompiledThen, value)
		})
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(unit.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TriggerSource(); ok {
		_spec.SetField(unit.FieldTriggerSource, field.TypeString, value)
	}
	if _u.mutation.TriggerSourceCleared() {
		_spec.ClearField(unit.FieldTriggerSource, field.TypeString)
	}
	if value, ok := _u.mutation.TriggerEvent(); ok {
		_spec.SetField(unit.FieldTriggerEvent, field.TypeString, value)
	}
	if _u.mutation.TriggerEventCleared() {
		_spec.ClearField(unit.FieldTriggerEvent, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(unit.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{unit.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UnitUpdateOne is the builder for updating a single Unit entity.
type UnitUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UnitMutation
}

// SetOwnerID sets the "owner_id" field.
func (_u *UnitUpdateOne) SetOwnerID(v string) *UnitUpdateOne {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *UnitUpdateOne) SetNillableOwnerID(v *string) *UnitUpdateOne {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *UnitUpdateOne) SetName(v string) *UnitUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *UnitUpdateOne) SetNillableName(v *string) *UnitUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetRawWhen sets the "raw_when" field.
func (_u *UnitUpdateOne) SetRawWhen(v string) *UnitUpdateOne {
	_u.mutation.SetRawWhen(v)
	return _u
}

// SetNillableRawWhen sets the "raw_when" field if the given value is not nil.
func (_u *UnitUpdateOne) SetNillableRawWhen(v *string) *UnitUpdateOne {
	if v != nil {
		_u.SetRawWhen(*v)
	}
	return _u
}

// ClearRawWhen clears the value of the "raw_when" field.
func (_u *UnitUpdateOne) ClearRawWhen() *UnitUpdateOne {
	_u.mutation.ClearRawWhen()
	return _u
}

// SetRawIf sets the "raw_if" field.
func (_u *UnitUpdateOne) SetRawIf(v string) *UnitUpdateOne {
	_u.mutation.SetRawIf(v)
	return _u
}

// SetNillableRawIf sets the "raw_if" field if the given value is not nil.
func (_u *UnitUpdateOne) SetNillableRawIf(v *string) *UnitUpdateOne {
	if v != nil {
		_u.SetRawIf(*v)
	}
	return _u
}

// ClearRawIf clears the value of the "raw_if" field.
func (_u *UnitUpdateOne) ClearRawIf() *UnitUpdateOne {
	_u.mutation.ClearRawIf()
	return _u
}

// SetRawThen sets the "raw_then" field.
func (_u *UnitUpdateOne) SetRawThen(v string) *UnitUpdateOne {
	_u.mutation.SetRawThen(v)
	return _u
}

// SetNillableRawThen sets the "raw_then" field if the given value is not nil.
func (_u *UnitUpdateOne) SetNillableRawThen(v *string) *UnitUpdateOne {
	if v != nil {
		_u.SetRawThen(*v)
	}
	return _u
}

// ClearRawThen clears the value of the "raw_then" field.
func (_u *UnitUpdateOne) ClearRawThen() *UnitUpdateOne {
	_u.mutation.ClearRawThen()
	return _u
}

// SetCompiledWhen sets the "compiled_when" field.
func (_u *UnitUpdateOne) SetCompiledWhen(v map[string]interface{}) *UnitUpdateOne {
	_u.mutation.SetCompiledWhen(v)
	return _u
}

// SetCompiledIf sets the "compiled_if" field.
func (_u *UnitUpdateOne) SetCompiledIf(v []interface{}) *UnitUpdateOne {
	_u.mutation.SetCompiledIf(v)
	return _u
}

// AppendCompiledIf appends value to the "compiled_if" field.
func (_u *UnitUpdateOne) AppendCompiledIf(v []interface{}) *UnitUpdateOne {
	_u.mutation.AppendCompiledIf(v)
	return _u
}

// ClearCompiledIf clears the value of the "compiled_if" field.
func (_u *UnitUpdateOne) ClearCompiledIf() *UnitUpdateOne {
	_u.mutation.ClearCompiledIf()
	return _u
}

// SetCompiledThen sets the "compiled_then" field.
func (_u *UnitUpdateOne) SetCompiledThen(v []interface{}) *UnitUpdateOne {
	_u.mutation.SetCompiledThen(v)
	return _u
}

// AppendCompiledThen appends value to the "compiled_then" field.
func (_u *UnitUpdateOne) AppendCompiledThen(v []interface{}) *UnitUpdateOne {
	_u.mutation.AppendCompiledThen(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *UnitUpdateOne) SetStatus(v unit.Status) *UnitUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *UnitUpdateOne) SetNillableStatus(v *unit.Status) *UnitUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTriggerSource sets the "trigger_source" field.
func (_u *UnitUpdateOne) SetTriggerSource(v string) *UnitUpdateOne {
	_u.mutation.SetTriggerSource(v)
	return _u
}

// SetNillableTriggerSource sets the "trigger_source" field if the given value is not nil.
func (_u *UnitUpdateOne) SetNillableTriggerSource(v *string) *UnitUpdateOne {
	if v != nil {
		_u.SetTriggerSource(*v)
	}
	return _u
}

// ClearTriggerSource clears the value of the "trigger_source" field.
func (_u *UnitUpdateOne) ClearTriggerSource() *UnitUpdateOne {
	_u.mutation.ClearTriggerSource()
	return _u
}

// SetTriggerEvent sets the "trigger_event" field.
func (_u *UnitUpdateOne) SetTriggerEvent(v string) *UnitUpdateOne {
	_u.mutation.SetTriggerEvent(v)
	return _u
}

// SetNillableTriggerEvent sets the "trigger_event" field if the given value is not nil.
func (_u *UnitUpdateOne) SetNillableTriggerEvent(v *string) *UnitUpdateOne {
	if v != nil {
		_u.SetTriggerEvent(*v)
	}
	return _u
}

// ClearTriggerEvent clears the value of the "trigger_event" field.
func (_u *UnitUpdateOne) ClearTriggerEvent() *UnitUpdateOne {
	_u.mutation.ClearTriggerEvent()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UnitUpdateOne) SetUpdatedAt(v time.Time) *UnitUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the UnitMutation object of the builder.
func (_u *UnitUpdateOne) Mutation() *UnitMutation {
	return _u.mutation
}

// Where appends a list predicates to the UnitUpdate builder.
func (_u *UnitUpdateOne) Where(ps ...predicate.Unit) *UnitUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UnitUpdateOne) Select(field string, fields ...string) *UnitUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Unit entity.
func (_u *UnitUpdateOne) Save(ctx context.Context) (*Unit, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UnitUpdateOne) SaveX(ctx context.Context) *Unit {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UnitUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UnitUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UnitUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := unit.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UnitUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := unit.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Unit.status": %w`, err)}
		}
	}
	return nil
}

func (_u *UnitUpdateOne) sqlSave(ctx context.Context) (_node *Unit, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(unit.Table, unit.Columns, sqlgraph.NewFieldSpec(unit.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Unit.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, unit.FieldID)
		for _, f := range fields {
			if !unit.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != unit.FieldID {
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
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(unit.FieldOwnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(unit.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.RawWhen(); ok {
		_spec.SetField(unit.FieldRawWhen, field.TypeString, value)
	}
	if _u.mutation.RawWhenCleared() {
		_spec.ClearField(unit.FieldRawWhen, field.TypeString)
	}
	if value, ok := _u.mutation.RawIf(); ok {
		_spec.SetField(unit.FieldRawIf, field.TypeString, value)
	}
	if _u.mutation.RawIfCleared() {
		_spec.ClearField(unit.FieldRawIf, field.TypeString)
	}
	if value, ok := _u.mutation.RawThen(); ok {
		_spec.SetField(unit.FieldRawThen, field.TypeString, value)
	}
	if _u.mutation.RawThenCleared() {
		_spec.ClearField(unit.FieldRawThen, field.TypeString)
	}
	if value, ok := _u.mutation.CompiledWhen(); ok {
		_spec.SetField(unit.FieldCompiledWhen, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.CompiledIf(); ok {
		_spec.SetField(unit.FieldCompiledIf, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCompiledIf(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, unit.FieldCompiledIf, value)
		})
	}
	if _u.mutation.CompiledIfCleared() {
		_spec.ClearField(unit.FieldCompiledIf, field.TypeJSON)
	}
	if value, ok := _u.mutation.CompiledThen(); ok {
		_spec.SetField(unit.FieldCompiledThen, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCompiledThen(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, unit.FieldCompiledThen, value)
		})
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(unit.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TriggerSource(); ok {
		_spec.SetField(unit.FieldTriggerSource, field.TypeString, value)
	}
	if _u.mutation.TriggerSourceCleared() {
		_spec.ClearField(unit.FieldTriggerSource, field.TypeString)
	}
	if value, ok := _u.mutation.TriggerEvent(); ok {
		_spec.SetField(unit.FieldTriggerEvent, field.TypeString, value)
	}
	if _u.mutation.TriggerEventCleared() {
		_spec.ClearField(unit.FieldTriggerEvent, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(unit.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Unit{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{unit.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
