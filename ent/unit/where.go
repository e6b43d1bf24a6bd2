// Code generated by ent, DO NOT EDIT.

package unit

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/cortexhq/cortex/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Unit {
	return predicate.Unit(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Unit {
	return predicate.Unit(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Unit {
	return predicate.Unit(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Unit {
	return predicate.Unit(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Unit {
	return predicate.Unit(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Unit {
	return predicate.Unit(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Unit {
	return predicate.Unit(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Unit {
	return predicate.Unit(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Unit {
	return predicate.Unit(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Unit {
	return predicate.Unit(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Unit {
	return predicate.Unit(sql.FieldContainsFold(FieldID, id))
}

// OwnerID applies equality check predicate on the "owner_id" field. It's identical to OwnerIDEQ.
func OwnerID(v string) predicate.Unit {
	return predicate.Unit(sql.FieldEQ(FieldOwnerID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Unit {
	return predicate.Unit(sql.FieldEQ(FieldName, v))
}

// RawWhen applies equality check predicate on the "raw_when" field. It's identical to RawWhenEQ.
func RawWhen(v string) predicate.Unit {
	return predicate.Unit(sql.FieldEQ(FieldRawWhen, v))
}

// RawIf applies equality check predicate on the "raw_if" field. It's identical to RawIfEQ.
func RawIf(v string) predicate.Unit {
	return predicate.Unit(sql.FieldEQ(FieldRawIf, v))
}

// RawThen applies equality check predicate on the "raw_then" field. It's identical to RawThenEQ.
func RawThen(v string) predicate.Unit {
	return predicate.Unit(sql.FieldEQ(FieldRawThen, v))
}

// TriggerSource applies equality check predicate on the "trigger_source" field. It's identical to TriggerSourceEQ.
func TriggerSource(v string) predicate.Unit {
	return predicate.Unit(sql.FieldEQ(FieldTriggerSource, v))
}

// TriggerEvent applies equality check predicate on the "trigger_event" field. It's identical to TriggerEventEQ.
func TriggerEvent(v string) predicate.Unit {
	return predicate.Unit(sql.FieldEQ(FieldTriggerEvent, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Unit {
	return predicate.Unit(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Unit {
	return predicate.Unit(sql.FieldEQ(FieldUpdatedAt, v))
}

// OwnerIDEQ applies the EQ predicate on the "owner_id" field.
func OwnerIDEQ(v string) predicate.Unit {
	return predicate.Unit(sql.FieldEQ(FieldOwnerID, v))
}

// OwnerIDNEQ applies the NEQ predicate on the "owner_id" field.
func OwnerIDNEQ(v string) predicate.Unit {
	return predicate.Unit(sql.FieldNEQ(FieldOwnerID, v))
}

// OwnerIDIn applies the In predicate on the "owner_id" field.
func OwnerIDIn(vs ...string) predicate.Unit {
	return predicate.Unit(sql.FieldIn(FieldOwnerID, vs...))
}

// OwnerIDNotIn applies the NotIn predicate on the "owner_id" field.
func OwnerIDNotIn(vs ...string) predicate.Unit {
	return predicate.Unit(sql.FieldNotIn(FieldOwnerID, vs...))
}

// OwnerIDGT applies the GT predicate on the "owner_id" field.
func OwnerIDGT(v string) predicate.Unit {
	return predicate.Unit(sql.FieldGT(FieldOwnerID, v))
}

// OwnerIDGTE applies the GTE predicate on the "owner_id" field.
func OwnerIDGTE(v string) predicate.Unit {
	return predicate.Unit(sql.FieldGTE(FieldOwnerID, v))
}

// OwnerIDLT applies the LT predicate on the "owner_id" field.
func OwnerIDLT(v string) predicate.Unit {
	return predicate.Unit(sql.FieldLT(FieldOwnerID, v))
}

// OwnerIDLTE applies the LTE predicate on the "owner_id" field.
func OwnerIDLTE(v string) predicate.Unit {
	return predicate.Unit(sql.FieldLTE(FieldOwnerID, v))
}

// OwnerIDContains applies the Contains predicate on the "owner_id" field.
func OwnerIDContains(v string) predicate.Unit {
	return predicate.Unit(sql.FieldContains(FieldOwnerID, v))
}

// OwnerIDHasPrefix applies the HasPrefix predicate on the "owner_id" field.
func OwnerIDHasPrefix(v string) predicate.Unit {
	return predicate.Unit(sql.FieldHasPrefix(FieldOwnerID, v))
}

// OwnerIDHasSuffix applies the HasSuffix predicate on the "owner_id" field.
func OwnerIDHasSuffix(v string) predicate.Unit {
	return predicate.Unit(sql.FieldHasSuffix(FieldOwnerID, v))
}

// OwnerIDEqualFold applies the EqualFold predicate on the "owner_id" field.
func OwnerIDEqualFold(v string) predicate.Unit {
	return predicate.Unit(sql.FieldEqualFold(FieldOwnerID, v))
}

// OwnerIDContainsFold applies the ContainsFold predicate on the "owner_id" field.
func OwnerIDContainsFold(v string) predicate.Unit {
	return predicate.Unit(sql.FieldContainsFold(FieldOwnerID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Unit {
	return predicate.Unit(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Unit {
	return predicate.Unit(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Unit {
	return predicate.Unit(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Unit {
	return predicate.Unit(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Unit {
	return predicate.Unit(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Unit {
	return predicate.Unit(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Unit {
	return predicate.Unit(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Unit {
	return predicate.Unit(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Unit {
	return predicate.Unit(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Unit {
	return predicate.Unit(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Unit {
	return predicate.Unit(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Unit {
	return predicate.Unit(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Unit {
	return predicate.Unit(sql.FieldContainsFold(FieldName, v))
}

// RawWhenEQ applies the EQ predicate on the "raw_when" field.
func RawWhenEQ(v string) predicate.Unit {
	return predicate.Unit(sql.FieldEQ(FieldRawWhen, v))
}

// RawWhenNEQ applies the NEQ predicate on the "raw_when" field.
func RawWhenNEQ(v string) predicate.Unit {
	return predicate.Unit(sql.FieldNEQ(FieldRawWhen, v))
}

// RawWhenIn applies the In predicate on the "raw_when" field.
func RawWhenIn(vs ...string) predicate.Unit {
	return predicate.Unit(sql.FieldIn(FieldRawWhen, vs...))
}

// RawWhenNotIn applies the NotIn predicate on the "raw_when" field.
func RawWhenNotIn(vs ...string) predicate.Unit {
	return predicate.Unit(sql.FieldNotIn(FieldRawWhen, vs...))
}

// RawWhenGT applies the GT predicate on the "raw_when" field.
func RawWhenGT(v string) predicate.Unit {
	return predicate.Unit(sql.FieldGT(FieldRawWhen, v))
}

// RawWhenGTE applies the GTE predicate on the "raw_when" field.
func RawWhenGTE(v string) predicate.Unit {
	return predicate.Unit(sql.FieldGTE(FieldRawWhen, v))
}

// RawWhenLT applies the LT predicate on the "raw_when" field.
func RawWhenLT(v string) predicate.Unit {
	return predicate.Unit(sql.FieldLT(FieldRawWhen, v))
}

// RawWhenLTE applies the LTE predicate on the "raw_when" field.
func RawWhenLTE(v string) predicate.Unit {
	return predicate.Unit(sql.FieldLTE(FieldRawWhen, v))
}

// RawWhenContains applies the Contains predicate on the "raw_when" field.
func RawWhenContains(v string) predicate.Unit {
	return predicate.Unit(sql.FieldContains(FieldRawWhen, v))
}

// RawWhenHasPrefix applies the HasPrefix predicate on the "raw_when" field.
func RawWhenHasPrefix(v string) predicate.Unit {
	return predicate.Unit(sql.FieldHasPrefix(FieldRawWhen, v))
}

// RawWhenHasSuffix applies the HasSuffix predicate on the "raw_when" field.
func RawWhenHasSuffix(v string) predicate.Unit {
	return predicate.Unit(sql.FieldHasSuffix(FieldRawWhen, v))
}

// RawWhenIsNil applies the IsNil predicate on the "raw_when" field.
func RawWhenIsNil() predicate.Unit {
	return predicate.Unit(sql.FieldIsNull(FieldRawWhen))
}

// RawWhenNotNil applies the NotNil predicate on the "raw_when" field.
func RawWhenNotNil() predicate.Unit {
	return predicate.Unit(sql.FieldNotNull(FieldRawWhen))
}

// RawWhenEqualFold applies the EqualFold predicate on the "raw_when" field.
func RawWhenEqualFold(v string) predicate.Unit {
	return predicate.Unit(sql.FieldEqualFold(FieldRawWhen, v))
}

// RawWhenContainsFold applies the ContainsFold predicate on the "raw_when" field.
func RawWhenContainsFold(v string) predicate.Unit {
	return predicate.Unit(sql.FieldContainsFold(FieldRawWhen, v))
}

// RawIfEQ applies the EQ predicate on the "raw_if" field.
func RawIfEQ(v string) predicate.Unit {
	return predicate.Unit(sql.FieldEQ(FieldRawIf, v))
}

// RawIfNEQ applies the NEQ predicate on the "raw_if" field.
func RawIfNEQ(v string) predicate.Unit {
	return predicate.Unit(sql.FieldNEQ(FieldRawIf, v))
}

// RawIfIn applies the In predicate on the "raw_if" field.
func RawIfIn(vs ...string) predicate.Unit {
	return predicate.Unit(sql.FieldIn(FieldRawIf, vs...))
}

// RawIfNotIn applies the NotIn predicate on the "raw_if" field.
func RawIfNotIn(vs ...string) predicate.Unit {
	return predicate.Unit(sql.FieldNotIn(FieldRawIf, vs...))
}

// RawIfGT applies the GT predicate on the "raw_if" field.
func RawIfGT(v string) predicate.Unit {
	return predicate.Unit(sql.FieldGT(FieldRawIf, v))
}

// RawIfGTE applies the GTE predicate on the "raw_if" field.
func RawIfGTE(v string) predicate.Unit {
	return predicate.Unit(sql.FieldGTE(FieldRawIf, v))
}

// RawIfLT applies the LT predicate on the "raw_if" field.
func RawIfLT(v string) predicate.Unit {
	return predicate.Unit(sql.FieldLT(FieldRawIf, v))
}

// RawIfLTE applies the LTE predicate on the "raw_if" field.
func RawIfLTE(v string) predicate.Unit {
	return predicate.Unit(sql.FieldLTE(FieldRawIf, v))
}

// RawIfContains applies the Contains predicate on the "raw_if" field.
func RawIfContains(v string) predicate.Unit {
	return predicate.Unit(sql.FieldContains(FieldRawIf, v))
}

// RawIfHasPrefix applies the HasPrefix predicate on the "raw_if" field.
func RawIfHasPrefix(v string) predicate.Unit {
	return predicate.Unit(sql.FieldHasPrefix(FieldRawIf, v))
}

// RawIfHasSuffix applies the HasSuffix predicate on the "raw_if" field.
func RawIfHasSuffix(v string) predicate.Unit {
	return predicate.Unit(sql.FieldHasSuffix(FieldRawIf, v))
}

// RawIfIsNil applies the IsNil predicate on the "raw_if" field.
func RawIfIsNil() predicate.Unit {
	return predicate.Unit(sql.FieldIsNull(FieldRawIf))
}

// RawIfNotNil applies the NotNil predicate on the "raw_if" field.
func RawIfNotNil() predicate.Unit {
	return predicate.Unit(sql.FieldNotNull(FieldRawIf))
}

// RawIfEqualFold applies the EqualFold predicate on the "raw_if" field.
func RawIfEqualFold(v string) predicate.Unit {
	return predicate.Unit(sql.FieldEqualFold(FieldRawIf, v))
}

// RawIfContainsFold applies the ContainsFold predicate on the "raw_if" field.
func RawIfContainsFold(v string) predicate.Unit {
	return predicate.Unit(sql.FieldContainsFold(FieldRawIf, v))
}

// RawThenEQ applies the EQ predicate on the "raw_then" field.
func RawThenEQ(v string) predicate.Unit {
	return predicate.Unit(sql.FieldEQ(FieldRawThen, v))
}

// RawThenNEQ applies the NEQ predicate on the "raw_then" field.
func RawThenNEQ(v string) predicate.Unit {
	return predicate.Unit(sql.FieldNEQ(FieldRawThen, v))
}

// RawThenIn applies the In predicate on the "raw_then" field.
func RawThenIn(vs ...string) predicate.Unit {
	return predicate.Unit(sql.FieldIn(FieldRawThen, vs...))
}

// RawThenNotIn applies the NotIn predicate on the "raw_then" field.
func RawThenNotIn(vs ...string) predicate.Unit {
	return predicate.Unit(sql.FieldNotIn(FieldRawThen, vs...))
}

// RawThenGT applies the GT predicate on the "raw_then" field.
func RawThenGT(v string) predicate.Unit {
	return predicate.Unit(sql.FieldGT(FieldRawThen, v))
}

// RawThenGTE applies the GTE predicate on the "raw_then" field.
func RawThenGTE(v string) predicate.Unit {
	return predicate.Unit(sql.FieldGTE(FieldRawThen, v))
}

// RawThenLT applies the LT predicate on the "raw_then" field.
func RawThenLT(v string) predicate.Unit {
	return predicate.Unit(sql.FieldLT(FieldRawThen, v))
}

// RawThenLTE applies the LTE predicate on the "raw_then" field.
func RawThenLTE(v string) predicate.Unit {
	return predicate.Unit(sql.FieldLTE(FieldRawThen, v))
}

// RawThenContains applies the Contains predicate on the "raw_then" field.
func RawThenContains(v string) predicate.Unit {
	return predicate.Unit(sql.FieldContains(FieldRawThen, v))
}

// RawThenHasPrefix applies the HasPrefix predicate on the "raw_then" field.
func RawThenHasPrefix(v string) predicate.Unit {
	return predicate.Unit(sql.FieldHasPrefix(FieldRawThen, v))
}

// RawThenHasSuffix applies the HasSuffix predicate on the "raw_then" field.
func RawThenHasSuffix(v string) predicate.Unit {
	return predicate.Unit(sql.FieldHasSuffix(FieldRawThen, v))
}

// RawThenIsNil applies the IsNil predicate on the "raw_then" field.
func RawThenIsNil() predicate.Unit {
	return predicate.Unit(sql.FieldIsNull(FieldRawThen))
}

// RawThenNotNil applies the NotNil predicate on the "raw_then" field.
func RawThenNotNil() predicate.Unit {
	return predicate.Unit(sql.FieldNotNull(FieldRawThen))
}

// RawThenEqualFold applies the EqualFold predicate on the "raw_then" field.
func RawThenEqualFold(v string) predicate.Unit {
	return predicate.Unit(sql.FieldEqualFold(FieldRawThen, v))
}

// RawThenContainsFold applies the ContainsFold predicate on the "raw_then" field.
func RawThenContainsFold(v string) predicate.Unit {
	return predicate.Unit(sql.FieldContainsFold(FieldRawThen, v))
}

// CompiledIfIsNil applies the IsNil predicate on the "compiled_if" field.
func CompiledIfIsNil() predicate.Unit {
	return predicate.Unit(sql.FieldIsNull(FieldCompiledIf))
}

// CompiledIfNotNil applies the NotNil predicate on the "compiled_if" field.
func CompiledIfNotNil() predicate.Unit {
	return predicate.Unit(sql.FieldNotNull(FieldCompiledIf))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Unit {
	return predicate.Unit(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Unit {
	return predicate.Unit(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Unit {
	return predicate.Unit(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Unit {
	return predicate.Unit(sql.FieldNotIn(FieldStatus, vs...))
}

// TriggerSourceEQ applies the EQ predicate on the "trigger_source" field.
func TriggerSourceEQ(v string) predicate.Unit {
	return predicate.Unit(sql.FieldEQ(FieldTriggerSource, v))
}

// TriggerSourceNEQ applies the NEQ predicate on the "trigger_source" field.
func TriggerSourceNEQ(v string) predicate.Unit {
	return predicate.Unit(sql.FieldNEQ(FieldTriggerSource, v))
}

// TriggerSourceIn applies the In predicate on the "trigger_source" field.
func TriggerSourceIn(vs ...string) predicate.Unit {
	return predicate.Unit(sql.FieldIn(FieldTriggerSource, vs...))
}

// TriggerSourceNotIn applies the NotIn predicate on the "trigger_source" field.
func TriggerSourceNotIn(vs ...string) predicate.Unit {
	return predicate.Unit(sql.FieldNotIn(FieldTriggerSource, vs...))
}

// TriggerSourceGT applies the GT predicate on the "trigger_source" field.
func TriggerSourceGT(v string) predicate.Unit {
	return predicate.Unit(sql.FieldGT(FieldTriggerSource, v))
}

// TriggerSourceGTE applies the GTE predicate on the "trigger_source" field.
func TriggerSourceGTE(v string) predicate.Unit {
	return predicate.Unit(sql.FieldGTE(FieldTriggerSource, v))
}

// TriggerSourceLT applies the LT predicate on the "trigger_source" field.
func TriggerSourceLT(v string) predicate.Unit {
	return predicate.Unit(sql.FieldLT(FieldTriggerSource, v))
}

// TriggerSourceLTE applies the LTE predicate on the "trigger_source" field.
func TriggerSourceLTE(v string) predicate.Unit {
	return predicate.Unit(sql.FieldLTE(FieldTriggerSource, v))
}

// TriggerSourceContains applies the Contains predicate on the "trigger_source" field.
func TriggerSourceContains(v string) predicate.Unit {
	return predicate.Unit(sql.FieldContains(FieldTriggerSource, v))
}

// TriggerSourceHasPrefix applies the HasPrefix predicate on the "trigger_source" field.
func TriggerSourceHasPrefix(v string) predicate.Unit {
	return predicate.Unit(sql.FieldHasPrefix(FieldTriggerSource, v))
}

// TriggerSourceHasSuffix applies the HasSuffix predicate on the "trigger_source" field.
func TriggerSourceHasSuffix(v string) predicate.Unit {
	return predicate.Unit(sql.FieldHasSuffix(FieldTriggerSource, v))
}

// TriggerSourceIsNil applies the IsNil predicate on the "trigger_source" field.
func TriggerSourceIsNil() predicate.Unit {
	return predicate.Unit(sql.FieldIsNull(FieldTriggerSource))
}

// TriggerSourceNotNil applies the NotNil predicate on the "trigger_source" field.
func TriggerSourceNotNil() predicate.Unit {
	return predicate.Unit(sql.FieldNotNull(FieldTriggerSource))
}

// TriggerSourceEqualFold applies the EqualFold predicate on the "trigger_source" field.
func TriggerSourceEqualFold(v string) predicate.Unit {
	return predicate.Unit(sql.FieldEqualFold(FieldTriggerSource, v))
}

// TriggerSourceContainsFold applies the ContainsFold predicate on the "trigger_source" field.
func TriggerSourceContainsFold(v string) predicate.Unit {
	return predicate.Unit(sql.FieldContainsFold(FieldTriggerSource, v))
}

// TriggerEventEQ applies the EQ predicate on the "trigger_event" field.
func TriggerEventEQ(v string) predicate.Unit {
	return predicate.Unit(sql.FieldEQ(FieldTriggerEvent, v))
}

// TriggerEventNEQ applies the NEQ predicate on the "trigger_event" field.
func TriggerEventNEQ(v string) predicate.Unit {
	return predicate.Unit(sql.FieldNEQ(FieldTriggerEvent, v))
}

// TriggerEventIn applies the In predicate on the "trigger_event" field.
func TriggerEventIn(vs ...string) predicate.Unit {
	return predicate.Unit(sql.FieldIn(FieldTriggerEvent, vs...))
}

// TriggerEventNotIn applies the NotIn predicate on the "trigger_event" field.
func TriggerEventNotIn(vs ...string) predicate.Unit {
	return predicate.Unit(sql.FieldNotIn(FieldTriggerEvent, vs...))
}

// TriggerEventGT applies the GT predicate on the "trigger_event" field.
func TriggerEventGT(v string) predicate.Unit {
	return predicate.Unit(sql.FieldGT(FieldTriggerEvent, v))
}

// TriggerEventGTE applies the GTE predicate on the "trigger_event" field.
func TriggerEventGTE(v string) predicate.Unit {
	return predicate.Unit(sql.FieldGTE(FieldTriggerEvent, v))
}

// TriggerEventLT applies the LT predicate on the "trigger_event" field.
func TriggerEventLT(v string) predicate.Unit {
	return predicate.Unit(sql.FieldLT(FieldTriggerEvent, v))
}

// TriggerEventLTE applies the LTE predicate on the "trigger_event" field.
func TriggerEventLTE(v string) predicate.Unit {
	return predicate.Unit(sql.FieldLTE(FieldTriggerEvent, v))
}

// TriggerEventContains applies the Contains predicate on the "trigger_event" field.
func TriggerEventContains(v string) predicate.Unit {
	return predicate.Unit(sql.FieldContains(FieldTriggerEvent, v))
}

// TriggerEventHasPrefix applies the HasPrefix predicate on the "trigger_event" field.
func TriggerEventHasPrefix(v string) predicate.Unit {
	return predicate.Unit(sql.FieldHasPrefix(FieldTriggerEvent, v))
}

// TriggerEventHasSuffix applies the HasSuffix predicate on the "trigger_event" field.
func TriggerEventHasSuffix(v string) predicate.Unit {
	return predicate.Unit(sql.FieldHasSuffix(FieldTriggerEvent, v))
}

// TriggerEventIsNil applies the IsNil predicate on the "trigger_event" field.
func TriggerEventIsNil() predicate.Unit {
	return predicate.Unit(sql.FieldIsNull(FieldTriggerEvent))
}

// TriggerEventNotNil applies the NotNil predicate on the "trigger_event" field.
func TriggerEventNotNil() predicate.Unit {
	return predicate.Unit(sql.FieldNotNull(FieldTriggerEvent))
}

// TriggerEventEqualFold applies the EqualFold predicate on the "trigger_event" field.
func TriggerEventEqualFold(v string) predicate.Unit {
	return predicate.Unit(sql.FieldEqualFold(FieldTriggerEvent, v))
}

// TriggerEventContainsFold applies the ContainsFold predicate on the "trigger_event" field.
func TriggerEventContainsFold(v string) predicate.Unit {
	return predicate.Unit(sql.FieldContainsFold(FieldTriggerEvent, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Unit {
	return predicate.Unit(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Unit {
	return predicate.Unit(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Unit {
	return predicate.Unit(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Unit {
	return predicate.Unit(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Unit {
	return predicate.Unit(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Unit {
	return predicate.Unit(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Unit {
	return predicate.Unit(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Unit {
	return predicate.Unit(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Unit {
	return predicate.Unit(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Unit {
	return predicate.Unit(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Unit {
	return predicate.Unit(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Unit {
	return predicate.Unit(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Unit {
	return predicate.Unit(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Unit {
	return predicate.Unit(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Unit {
	return predicate.Unit(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Unit {
	return predicate.Unit(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Unit) predicate.Unit {
	return predicate.Unit(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Unit) predicate.Unit {
	return predicate.Unit(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Unit) predicate.Unit {
	return predicate.Unit(sql.NotPredicates(p))
}
