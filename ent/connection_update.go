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
	"github.com/cortexhq/cortex/ent/connection"
	"github.com/cortexhq/cortex/ent/predicate"
)

// ConnectionUpdate is the builder for updating Connection entities.
type ConnectionUpdate struct {
	config
	hooks    []Hook
	mutation *ConnectionMutation
}

// Where appends a list predicates to the ConnectionUpdate builder.
func (_u *ConnectionUpdate) Where(ps ...predicate.Connection) *ConnectionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ConnectionUpdate) SetUserID(v string) *ConnectionUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ConnectionUpdate) SetNillableUserID(v *string) *ConnectionUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *ConnectionUpdate) SetProvider(v string) *ConnectionUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *ConnectionUpdate) SetNillableProvider(v *string) *ConnectionUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetConnectionID sets the "connection_id" field.
func (_u *ConnectionUpdate) SetConnectionID(v string) *ConnectionUpdate {
	_u.mutation.SetConnectionID(v)
	return _u
}

// SetNillableConnectionID sets the "connection_id" field if the given value is not nil.
func (_u *ConnectionUpdate) SetNillableConnectionID(v *string) *ConnectionUpdate {
	if v != nil {
		_u.SetConnectionID(*v)
	}
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *ConnectionUpdate) SetEnabled(v bool) *ConnectionUpdate {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *ConnectionUpdate) SetNillableEnabled(v *bool) *ConnectionUpdate {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetLastPollAt sets the "last_poll_at" field.
func (_u *ConnectionUpdate) SetLastPollAt(v time.Time) *ConnectionUpdate {
	_u.mutation.SetLastPollAt(v)
	return _u
}

// SetNillableLastPollAt sets the "last_poll_at" field if the given value is not nil.
func (_u *ConnectionUpdate) SetNillableLastPollAt(v *time.Time) *ConnectionUpdate {
	if v != nil {
		_u.SetLastPollAt(*v)
	}
	return _u
}

// ClearLastPollAt clears the value of the "last_poll_at" field.
func (_u *ConnectionUpdate) ClearLastPollAt() *ConnectionUpdate {
	_u.mutation.ClearLastPollAt()
	return _u
}

// SetErrorCount sets the "error_count" field.
func (_u *ConnectionUpdate) SetErrorCount(v int) *ConnectionUpdate {
	_u.mutation.ResetErrorCount()
	_u.mutation.SetErrorCount(v)
	return _u
}

// SetNillableErrorCount sets the "error_count" field if the given value is not nil.
func (_u *ConnectionUpdate) SetNillableErrorCount(v *int) *ConnectionUpdate {
	if v != nil {
		_u.SetErrorCount(*v)
	}
	return _u
}

// AddErrorCount adds value to the "error_count" field.
func (_u *ConnectionUpdate) AddErrorCount(v int) *ConnectionUpdate {
	_u.mutation.AddErrorCount(v)
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *ConnectionUpdate) SetLastError(v string) *ConnectionUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *ConnectionUpdate) SetNillableLastError(v *string) *ConnectionUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *ConnectionUpdate) ClearLastError() *ConnectionUpdate {
	_u.mutation.ClearLastError()
	return _u
}

// Mutation returns the ConnectionMutation object of the builder.
func (_u *ConnectionUpdate) Mutation() *ConnectionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ConnectionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConnectionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ConnectionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConnectionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ConnectionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(connection.Table, connection.Columns, sqlgraph.NewFieldSpec(connection.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(connection.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(connection.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConnectionID(); ok {
		_spec.SetField(connection.FieldConnectionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(connection.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastPollAt(); ok {
		_spec.SetField(connection.FieldLastPollAt, field.TypeTime, value)
	}
	if _u.mutation.LastPollAtCleared() {
		_spec.ClearField(connection.FieldLastPollAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorCount(); ok {
		_spec.SetField(connection.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedErrorCount(); ok {
		_spec.AddField(connection.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(connection.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(connection.FieldLastError, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{connection.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ConnectionUpdateOne is the builder for updating a single Connection entity.
type ConnectionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConnectionMutation
}

// SetUserID sets the "user_id" field.
func (_u *ConnectionUpdateOne) SetUserID(v string) *ConnectionUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ConnectionUpdateOne) SetNillableUserID(v *string) *ConnectionUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *ConnectionUpdateOne) SetProvider(v string) *ConnectionUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *ConnectionUpdateOne) SetNillableProvider(v *string) *ConnectionUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetConnectionID sets the "connection_id" field.
func (_u *ConnectionUpdateOne) SetConnectionID(v string) *ConnectionUpdateOne {
	_u.mutation.SetConnectionID(v)
	return _u
}

// SetNillableConnectionID sets the "connection_id" field if the given value is not nil.
func (_u *ConnectionUpdateOne) SetNillableConnectionID(v *string) *ConnectionUpdateOne {
	if v != nil {
		_u.SetConnectionID(*v)
	}
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *ConnectionUpdateOne) SetEnabled(v bool) *ConnectionUpdateOne {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *ConnectionUpdateOne) SetNillableEnabled(v *bool) *ConnectionUpdateOne {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetLastPollAt sets the "last_poll_at" field.
func (_u *ConnectionUpdateOne) SetLastPollAt(v time.Time) *ConnectionUpdateOne {
	_u.mutation.SetLastPollAt(v)
	return _u
}

// SetNillableLastPollAt sets the "last_poll_at" field if the given value is not nil.
func (_u *ConnectionUpdateOne) SetNillableLastPollAt(v *time.Time) *ConnectionUpdateOne {
	if v != nil {
		_u.SetLastPollAt(*v)
	}
	return _u
}

// ClearLastPollAt clears the value of the "last_poll_at" field.
func (_u *ConnectionUpdateOne) ClearLastPollAt() *ConnectionUpdateOne {
	_u.mutation.ClearLastPollAt()
	return _u
}

// SetErrorCount sets the "error_count" field.
func (_u *ConnectionUpdateOne) SetErrorCount(v int) *ConnectionUpdateOne {
	_u.mutation.ResetErrorCount()
	_u.mutation.SetErrorCount(v)
	return _u
}

// SetNillableErrorCount sets the "error_count" field if the given value is not nil.
func (_u *ConnectionUpdateOne) SetNillableErrorCount(v *int) *ConnectionUpdateOne {
	if v != nil {
		_u.SetErrorCount(*v)
	}
	return _u
}

// AddErrorCount adds value to the "error_count" field.
func (_u *ConnectionUpdateOne) AddErrorCount(v int) *ConnectionUpdateOne {
	_u.mutation.AddErrorCount(v)
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *ConnectionUpdateOne) SetLastError(v string) *ConnectionUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *ConnectionUpdateOne) SetNillableLastError(v *string) *ConnectionUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *ConnectionUpdateOne) ClearLastError() *ConnectionUpdateOne {
	_u.mutation.ClearLastError()
	return _u
}

// Mutation returns the ConnectionMutation object of the builder.
func (_u *ConnectionUpdateOne) Mutation() *ConnectionMutation {
	return _u.mutation
}

// Where appends a list predicates to the ConnectionUpdate builder.
func (_u *ConnectionUpdateOne) Where(ps ...predicate.Connection) *ConnectionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ConnectionUpdateOne) Select(field string, fields ...string) *ConnectionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Connection entity.
func (_u *ConnectionUpdateOne) Save(ctx context.Context) (*Connection, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConnectionUpdateOne) SaveX(ctx context.Context) *Connection {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ConnectionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConnectionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ConnectionUpdateOne) sqlSave(ctx context.Context) (_node *Connection, err error) {
	_spec := sqlgraph.NewUpdateSpec(connection.Table, connection.Columns, sqlgraph.NewFieldSpec(connection.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Connection.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, connection.FieldID)
		for _, f := range fields {
			if !connection.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != connection.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(connection.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(connection.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConnectionID(); ok {
		_spec.SetField(connection.FieldConnectionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(connection.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastPollAt(); ok {
		_spec.SetField(connection.FieldLastPollAt, field.TypeTime, value)
	}
	if _u.mutation.LastPollAtCleared() {
		_spec.ClearField(connection.FieldLastPollAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorCount(); ok {
		_spec.SetField(connection.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedErrorCount(); ok {
		_spec.AddField(connection.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(connection.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(connection.FieldLastError, field.TypeString)
	}
	_node = &Connection{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{connection.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
