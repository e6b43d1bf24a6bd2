// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/cortexhq/cortex/ent/unit"
)

// Unit is the model entity for the Unit schema.
type Unit struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// User who owns this unit
	OwnerID string `json:"owner_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// RawWhen holds the value of the "raw_when" field.
	RawWhen string `json:"raw_when,omitempty"`
	// RawIf holds the value of the "raw_if" field.
	RawIf string `json:"raw_if,omitempty"`
	// RawThen holds the value of the "raw_then" field.
	RawThen string `json:"raw_then,omitempty"`
	// CompiledWhen holds the value of the "compiled_when" field.
	CompiledWhen map[string]interface{} `json:"compiled_when,omitempty"`
	// CompiledIf holds the value of the "compiled_if" field.
	CompiledIf []interface{} `json:"compiled_if,omitempty"`
	// CompiledThen holds the value of the "compiled_then" field.
	CompiledThen []interface{} `json:"compiled_then,omitempty"`
	// Status holds the value of the "status" field.
	Status unit.Status `json:"status,omitempty"`
	// TriggerSource holds the value of the "trigger_source" field.
	TriggerSource string `json:"trigger_source,omitempty"`
	// TriggerEvent holds the value of the "trigger_event" field.
	TriggerEvent string `json:"trigger_event,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Unit) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case unit.FieldCompiledWhen, unit.FieldCompiledIf, unit.FieldCompiledThen:
			values[i] = new([]byte)
		case unit.FieldID, unit.FieldOwnerID, unit.FieldName, unit.FieldRawWhen, unit.FieldRawIf, unit.FieldRawThen, unit.FieldStatus, unit.FieldTriggerSource, unit.FieldTriggerEvent:
			values[i] = new(sql.NullString)
		case unit.FieldCreatedAt, unit.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Unit fields.
func (_m *Unit) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case unit.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case unit.FieldOwnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field owner_id", values[i])
			} else if value.Valid {
				_m.OwnerID = value.String
			}
		case unit.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case unit.FieldRawWhen:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field raw_when", values[i])
			} else if value.Valid {
				_m.RawWhen = value.String
			}
		case unit.FieldRawIf:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field raw_if", values[i])
			} else if value.Valid {
				_m.RawIf = value.String
			}
		case unit.FieldRawThen:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field raw_then", values[i])
			} else if value.Valid {
				_m.RawThen = value.String
			}
		case unit.FieldCompiledWhen:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field compiled_when", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CompiledWhen); err != nil {
					return fmt.Errorf("unmarshal field compiled_when: %w", err)
				}
			}
		case unit.FieldCompiledIf:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field compiled_if", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CompiledIf); err != nil {
					return fmt.Errorf("unmarshal field compiled_if: %w", err)
				}
			}
		case unit.FieldCompiledThen:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field compiled_then", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CompiledThen); err != nil {
					return fmt.Errorf("unmarshal field compiled_then: %w", err)
				}
			}
		case unit.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = unit.Status(value.String)
			}
		case unit.FieldTriggerSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field trigger_source", values[i])
			} else if value.Valid {
				_m.TriggerSource = value.String
			}
		case unit.FieldTriggerEvent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field trigger_event", values[i])
			} else if value.Valid {
				_m.TriggerEvent = value.String
			}
		case unit.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case unit.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Unit.
// This includes values selected through modifiers, order, etc.
func (_m *Unit) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Unit.
// Note that you need to call Unit.Unwrap() before calling this method if this Unit
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Unit) Update() *UnitUpdateOne {
	return NewUnitClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Unit entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Unit) Unwrap() *Unit {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Unit is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Unit) String() string {
	var builder strings.Builder
	builder.WriteString("Unit(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("owner_id=")
	builder.WriteString(_m.OwnerID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("raw_when=")
	builder.WriteString(_m.RawWhen)
	builder.WriteString(", ")
	builder.WriteString("raw_if=")
	builder.WriteString(_m.RawIf)
	builder.WriteString(", ")
	builder.WriteString("raw_then=")
	builder.WriteString(_m.RawThen)
	builder.WriteString(", ")
	builder.WriteString("compiled_when=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompiledWhen))
	builder.WriteString(", ")
	builder.WriteString("compiled_if=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompiledIf))
	builder.WriteString(", ")
	builder.WriteString("compiled_then=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompiledThen))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("trigger_source=")
	builder.WriteString(_m.TriggerSource)
	builder.WriteString(", ")
	builder.WriteString("trigger_event=")
	builder.WriteString(_m.TriggerEvent)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Units is a parsable slice of Unit.
type Units []*Unit
