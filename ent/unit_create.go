// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cortexhq/cortex/ent/unit"
)

// UnitCreate is the builder for creating a Unit entity.
type UnitCreate struct {
	config
	mutation *UnitMutation
	hooks    []Hook
}

// SetOwnerID sets the "owner_id" field.
func (_c *UnitCreate) SetOwnerID(v string) *UnitCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *UnitCreate) SetName(v string) *UnitCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetRawWhen sets the "raw_when" field.
func (_c *UnitCreate) SetRawWhen(v string) *UnitCreate {
	_c.mutation.SetRawWhen(v)
	return _c
}

// SetNillableRawWhen sets the "raw_when" field if the given value is not nil.
func (_c *UnitCreate) SetNillableRawWhen(v *string) *UnitCreate {
	if v != nil {
		_c.SetRawWhen(*v)
	}
	return _c
}

// SetRawIf sets the "raw_if" field.
func (_c *UnitCreate) SetRawIf(v string) *UnitCreate {
	_c.mutation.SetRawIf(v)
	return _c
}

// SetNillableRawIf sets the "raw_if" field if the given value is not nil.
func (_c *UnitCreate) SetNillableRawIf(v *string) *UnitCreate {
	if v != nil {
		_c.SetRawIf(*v)
	}
	return _c
}

// SetRawThen sets the "raw_then" field.
func (_c *UnitCreate) SetRawThen(v string) *UnitCreate {
	_c.mutation.SetRawThen(v)
	return _c
}

// SetNillableRawThen sets the "raw_then" field if the given value is not nil.
func (_c *UnitCreate) SetNillableRawThen(v *string) *UnitCreate {
	if v != nil {
		_c.SetRawThen(*v)
	}
	return _c
}

// SetCompiledWhen sets the "compiled_when" field.
func (_c *UnitCreate) SetCompiledWhen(v map[string]interface{}) *UnitCreate {
	_c.mutation.SetCompiledWhen(v)
	return _c
}

// SetCompiledIf sets the "compiled_if" field.
func (_c *UnitCreate) SetCompiledIf(v []interface{}) *UnitCreate {
	_c.mutation.SetCompiledIf(v)
	return _c
}

// SetCompiledThen sets the "compiled_then" field.
func (_c *UnitCreate) SetCompiledThen(v []interface{}) *UnitCreate {
	_c.mutation.SetCompiledThen(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *UnitCreate) SetStatus(v unit.Status) *UnitCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *UnitCreate) SetNillableStatus(v *unit.Status) *UnitCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetTriggerSource sets the "trigger_source" field.
func (_c *UnitCreate) SetTriggerSource(v string) *UnitCreate {
	_c.mutation.SetTriggerSource(v)
	return _c
}

// SetNillableTriggerSource sets the "trigger_source" field if the given value is not nil.
func (_c *UnitCreate) SetNillableTriggerSource(v *string) *UnitCreate {
	if v != nil {
		_c.SetTriggerSource(*v)
	}
	return _c
}

// SetTriggerEvent sets the "trigger_event" field.
func (_c *UnitCreate) SetTriggerEvent(v string) *UnitCreate {
	_c.mutation.SetTriggerEvent(v)
	return _c
}

// SetNillableTriggerEvent sets the "trigger_event" field if the given value is not nil.
func (_c *UnitCreate) SetNillableTriggerEvent(v *string) *UnitCreate {
	if v != nil {
		_c.SetTriggerEvent(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *UnitCreate) SetCreatedAt(v time.Time) *UnitCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *UnitCreate) SetNillableCreatedAt(v *time.Time) *UnitCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *UnitCreate) SetUpdatedAt(v time.Time) *UnitCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *UnitCreate) SetNillableUpdatedAt(v *time.Time) *UnitCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *UnitCreate) SetID(v string) *UnitCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the UnitMutation object of the builder.
func (_c *UnitCreate) Mutation() *UnitMutation {
	return _c.mutation
}

// Save creates the Unit in the database.
func (_c *UnitCreate) Save(ctx context.Context) (*Unit, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UnitCreate) SaveX(ctx context.Context) *Unit {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UnitCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UnitCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UnitCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := unit.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := unit.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := unit.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UnitCreate) check() error {
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "Unit.owner_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Unit.name"`)}
	}
	if _, ok := _c.mutation.CompiledWhen(); !ok {
		return &ValidationError{Name: "compiled_when", err: errors.New(`ent: missing required field "Unit.compiled_when"`)}
	}
	if _, ok := _c.mutation.CompiledThen(); !ok {
		return &ValidationError{Name: "compiled_then", err: errors.New(`ent: missing required field "Unit.compiled_then"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Unit.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := unit.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Unit.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Unit.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Unit.updated_at"`)}
	}
	return nil
}

func (_c *UnitCreate) sqlSave(ctx context.Context) (*Unit, error) {
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
			return nil, fmt.Errorf("unexpected Unit.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *UnitCreate) createSpec() (*Unit, *sqlgraph.CreateSpec) {
	var (
		_node = &Unit{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(unit.Table, sqlgraph.NewFieldSpec(unit.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(unit.FieldOwnerID, field.TypeString, value)
		_node.OwnerID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(unit.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.RawWhen(); ok {
		_spec.SetField(unit.FieldRawWhen, field.TypeString, value)
		_node.RawWhen = value
	}
	if value, ok := _c.mutation.RawIf(); ok {
		_spec.SetField(unit.FieldRawIf, field.TypeString, value)
		_node.RawIf = value
	}
	if value, ok := _c.mutation.RawThen(); ok {
		_spec.SetField(unit.FieldRawThen, field.TypeString, value)
		_node.RawThen = value
	}
	if value, ok := _c.mutation.CompiledWhen(); ok {
		_spec.SetField(unit.FieldCompiledWhen, field.TypeJSON, value)
		_node.CompiledWhen = value
	}
	if value, ok := _c.mutation.CompiledIf(); ok {
		_spec.SetField(unit.FieldCompiledIf, field.TypeJSON, value)
		_node.CompiledIf = value
	}
	if value, ok := _c.mutation.CompiledThen(); ok {
		_spec.SetField(unit.FieldCompiledThen, field.TypeJSON, value)
		_node.CompiledThen = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(unit.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.TriggerSource(); ok {
		_spec.SetField(unit.FieldTriggerSource, field.TypeString, value)
		_node.TriggerSource = value
	}
	if value, ok := _c.mutation.TriggerEvent(); ok {
		_spec.SetField(unit.FieldTriggerEvent, field.TypeString, value)
		_node.TriggerEvent = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(unit.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(unit.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// UnitCreateBulk is the builder for creating many Unit entities in bulk.
type UnitCreateBulk struct {
	config
	err      error
	builders []*UnitCreate
}

// Save creates the Unit entities in the database.
func (_c *UnitCreateBulk) Save(ctx context.Context) ([]*Unit, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Unit, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UnitMutation)
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
func (_c *UnitCreateBulk) SaveX(ctx context.Context) []*Unit {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UnitCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UnitCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
