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
	"github.com/cortexhq/cortex/ent/predicate"
	"github.com/cortexhq/cortex/ent/runstep"
)

// RunStepUpdate is the builder for updating RunStep entities.
type RunStepUpdate struct {
	config
	hooks    []Hook
	mutation *RunStepMutation
}

// Where appends a list predicates to the RunStepUpdate builder.
func (_u *RunStepUpdate) Where(ps ...predicate.RunStep) *RunStepUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetActionType sets the "action_type" field.
func (_u *RunStepUpdate) SetActionType(v string) *RunStepUpdate {
	_u.mutation.SetActionType(v)
	return _u
}

// SetNillableActionType sets the "action_type" field if the given value is not nil.
func (_u *RunStepUpdate) SetNillableActionType(v *string) *RunStepUpdate {
	if v != nil {
		_u.SetActionType(*v)
	}
	return _u
}

// SetActionConfig sets the "action_config" field.
func (_u *RunStepUpdate) SetActionConfig(v map[string]interface{}) *RunStepUpdate {
	_u.mutation.SetActionConfig(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *RunStepUpdate) SetStatus(v runstep.Status) *RunStepUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RunStepUpdate) SetNillableStatus(v *runstep.Status) *RunStepUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetResult sets the "result" field.
func (_u *RunStepUpdate) SetResult(v map[string]interface{}) *RunStepUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *RunStepUpdate) ClearResult() *RunStepUpdate {
	_u.mutation.ClearResult()
	return _u
}

// SetError sets the "error" field.
func (_u *RunStepUpdate) SetError(v string) *RunStepUpdate {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *RunStepUpdate) SetNillableError(v *string) *RunStepUpdate {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *RunStepUpdate) ClearError() *RunStepUpdate {
	_u.mutation.ClearError()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *RunStepUpdate) SetStartedAt(v time.Time) *RunStepUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *RunStepUpdate) SetNillableStartedAt(v *time.Time) *RunStepUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *RunStepUpdate) SetCompletedAt(v time.Time) *RunStepUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *RunStepUpdate) SetNillableCompletedAt(v *time.Time) *RunStepUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *RunStepUpdate) ClearCompletedAt() *RunStepUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the RunStepMutation object of the builder.
func (_u *RunStepUpdate) Mutation() *RunStepMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RunStepUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunStepUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RunStepUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunStepUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RunStepUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := runstep.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "RunStep.status": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RunStep.run"`)
	}
	return nil
}

func (_u *RunStepUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(runstep.Table, runstep.Columns, sqlgraph.NewFieldSpec(runstep.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ActionType(); ok {
		_spec.SetField(runstep.FieldActionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActionConfig(); ok {
		_spec.SetField(runstep.FieldActionConfig, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(runstep.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(runstep.FieldResult, field.TypeJSON, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(runstep.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(runstep.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(runstep.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(runstep.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(runstep.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(runstep.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{runstep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RunStepUpdateOne is the builder for updating a single RunStep entity.
type RunStepUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RunStepMutation
}

// SetActionType sets the "action_type" field.
func (_u *RunStepUpdateOne) SetActionType(v string) *RunStepUpdateOne {
	_u.mutation.SetActionType(v)
	return _u
}

// SetNillableActionType sets the "action_type" field if the given value is not nil.
func (_u *RunStepUpdateOne) SetNillableActionType(v *string) *RunStepUpdateOne {
	if v != nil {
		_u.SetActionType(*v)
	}
	return _u
}

// SetActionConfig sets the "action_config" field.
func (_u *RunStepUpdateOne) SetActionConfig(v map[string]interface{}) *RunStepUpdateOne {
	_u.mutation.SetActionConfig(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *RunStepUpdateOne) SetStatus(v runstep.Status) *RunStepUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RunStepUpdateOne) SetNillableStatus(v *runstep.Status) *RunStepUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetResult sets the "result" field.
func (_u *RunStepUpdateOne) SetResult(v map[string]interface{}) *RunStepUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *RunStepUpdateOne) ClearResult() *RunStepUpdateOne {
	_u.mutation.ClearResult()
	return _u
}

// SetError sets the "error" field.
func (_u *RunStepUpdateOne) SetError(v string) *RunStepUpdateOne {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *RunStepUpdateOne) SetNillableError(v *string) *RunStepUpdateOne {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *RunStepUpdateOne) ClearError() *RunStepUpdateOne {
	_u.mutation.ClearError()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *RunStepUpdateOne) SetStartedAt(v time.Time) *RunStepUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *RunStepUpdateOne) SetNillableStartedAt(v *time.Time) *RunStepUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *RunStepUpdateOne) SetCompletedAt(v time.Time) *RunStepUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *RunStepUpdateOne) SetNillableCompletedAt(v *time.Time) *RunStepUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *RunStepUpdateOne) ClearCompletedAt() *RunStepUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the RunStepMutation object of the builder.
func (_u *RunStepUpdateOne) Mutation() *RunStepMutation {
	return _u.mutation
}

// Where appends a list predicates to the RunStepUpdate builder.
func (_u *RunStepUpdateOne) Where(ps ...predicate.RunStep) *RunStepUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RunStepUpdateOne) Select(field string, fields ...string) *RunStepUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RunStep entity.
func (_u *RunStepUpdateOne) Save(ctx context.Context) (*RunStep, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunStepUpdateOne) SaveX(ctx context.Context) *RunStep {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RunStepUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunStepUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RunStepUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := runstep.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "RunStep.status": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RunStep.run"`)
	}
	return nil
}

func (_u *RunStepUpdateOne) sqlSave(ctx context.Context) (_node *RunStep, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(runstep.Table, runstep.Columns, sqlgraph.NewFieldSpec(runstep.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RunStep.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, runstep.FieldID)
		for _, f := range fields {
			if !runstep.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != runstep.FieldID {
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
	if value, ok := _u.mutation.ActionType(); ok {
		_spec.SetField(runstep.FieldActionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActionConfig(); ok {
		_spec.SetField(runstep.FieldActionConfig, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(runstep.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(runstep.FieldResult, field.TypeJSON, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(runstep.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(runstep.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(runstep.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(runstep.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(runstep.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(runstep.FieldCompletedAt, field.TypeTime)
	}
	_node = &RunStep{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{runstep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
