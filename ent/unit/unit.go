// Code generated by ent, DO NOT EDIT.

package unit

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the unit type in the database.
	Label = "unit"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "unit_id"
	// FieldOwnerID holds the string denoting the owner_id field in the database.
	FieldOwnerID = "owner_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldRawWhen holds the string denoting the raw_when field in the database.
	FieldRawWhen = "raw_when"
	// FieldRawIf holds the string denoting the raw_if field in the database.
	FieldRawIf = "raw_if"
	// FieldRawThen holds the string denoting the raw_then field in the database.
	FieldRawThen = "raw_then"
	// FieldCompiledWhen holds the string denoting the compiled_when field in the database.
	FieldCompiledWhen = "compiled_when"
	// FieldCompiledIf holds the string denoting the compiled_if field in the database.
	FieldCompiledIf = "compiled_if"
	// FieldCompiledThen holds the string denoting the compiled_then field in the database.
	FieldCompiledThen = "compiled_then"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldTriggerSource holds the string denoting the trigger_source field in the database.
	FieldTriggerSource = "trigger_source"
	// FieldTriggerEvent holds the string denoting the trigger_event field in the database.
	FieldTriggerEvent = "trigger_event"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the unit in the database.
	Table = "units"
)

// Columns holds all SQL columns for unit fields.
var Columns = []string{
	FieldID,
	FieldOwnerID,
	FieldName,
	FieldRawWhen,
	FieldRawIf,
	FieldRawThen,
	FieldCompiledWhen,
	FieldCompiledIf,
	FieldCompiledThen,
	FieldStatus,
	FieldTriggerSource,
	FieldTriggerEvent,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusActive is the default value of the Status enum.
const DefaultStatus = StatusActive

// Status values.
const (
	StatusActive   Status = "active"
	StatusPaused   Status = "paused"
	StatusDisabled Status = "disabled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusActive, StatusPaused, StatusDisabled:
		return nil
	default:
		return fmt.Errorf("unit: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Unit queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByOwnerID orders the results by the owner_id field.
func ByOwnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnerID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByRawWhen orders the results by the raw_when field.
func ByRawWhen(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRawWhen, opts...).ToFunc()
}

// ByRawIf orders the results by the raw_if field.
func ByRawIf(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRawIf, opts...).ToFunc()
}

// ByRawThen orders the results by the raw_then field.
func ByRawThen(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRawThen, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByTriggerSource orders the results by the trigger_source field.
func ByTriggerSource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTriggerSource, opts...).ToFunc()
}

// ByTriggerEvent orders the results by the trigger_event field.
func ByTriggerEvent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTriggerEvent, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
