// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/cortexhq/cortex/ent/connection"
	"github.com/cortexhq/cortex/ent/predicate"
	"github.com/cortexhq/cortex/ent/run"
	"github.com/cortexhq/cortex/ent/runstep"
	"github.com/cortexhq/cortex/ent/unit"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeConnection = "Connection"
	TypeRun        = "Run"
	TypeRunStep    = "RunStep"
	TypeUnit       = "Unit"
)

// ConnectionMutation represents an operation that mutates the Connection nodes in the graph.
type ConnectionMutation struct {
	config
	op             Op
	typ            string
	id             *string
	user_id        *string
	provider       *string
	connection_id  *string
	enabled        *bool
	last_poll_at   *time.Time
	error_count    *int
	adderror_count *int
	last_error     *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*Connection, error)
	predicates     []predicate.Connection
}

var _ ent.Mutation = (*ConnectionMutation)(nil)

// connectionOption allows management of the mutation configuration using functional options.
type connectionOption func(*ConnectionMutation)

// newConnectionMutation creates new mutation for the Connection entity.
func newConnectionMutation(c config, op Op, opts ...connectionOption) *ConnectionMutation {
	m := &ConnectionMutation{
		config:        c,
		op:            op,
		typ:           TypeConnection,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withConnectionID sets the ID field of the mutation.
func withConnectionID(id string) connectionOption {
	return func(m *ConnectionMutation) {
		var (
			err   error
			once  sync.Once
			value *Connection
		)
		m.oldValue = func(ctx context.Context) (*Connection, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Connection.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withConnection sets the old Connection of the mutation.
func withConnection(node *Connection) connectionOption {
	return func(m *ConnectionMutation) {
		m.oldValue = func(context.Context) (*Connection, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ConnectionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ConnectionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Connection entities.
func (m *ConnectionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ConnectionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ConnectionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Connection.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *ConnectionMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ConnectionMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Connection entity.
// If the Connection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectionMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ConnectionMutation) ResetUserID() {
	m.user_id = nil
}

// SetProvider sets the "provider" field.
func (m *ConnectionMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *ConnectionMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the Connection entity.
// If the Connection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectionMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *ConnectionMutation) ResetProvider() {
	m.provider = nil
}

// SetConnectionID sets the "connection_id" field.
func (m *ConnectionMutation) SetConnectionID(s string) {
	m.connection_id = &s
}

// ConnectionID returns the value of the "connection_id" field in the mutation.
func (m *ConnectionMutation) ConnectionID() (r string, exists bool) {
	v := m.connection_id
	if v == nil {
		return
	}
	return *v, true
}

// OldConnectionID returns the old "connection_id" field's value of the Connection entity.
// If the Connection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectionMutation) OldConnectionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConnectionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConnectionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConnectionID: %w", err)
	}
	return oldValue.ConnectionID, nil
}

// ResetConnectionID resets all changes to the "connection_id" field.
func (m *ConnectionMutation) ResetConnectionID() {
	m.connection_id = nil
}

// SetEnabled sets the "enabled" field.
func (m *ConnectionMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *ConnectionMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the Connection entity.
// If the Connection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectionMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *ConnectionMutation) ResetEnabled() {
	m.enabled = nil
}

// SetLastPollAt sets the "last_poll_at" field.
func (m *ConnectionMutation) SetLastPollAt(t time.Time) {
	m.last_poll_at = &t
}

// LastPollAt returns the value of the "last_poll_at" field in the mutation.
func (m *ConnectionMutation) LastPollAt() (r time.Time, exists bool) {
	v := m.last_poll_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastPollAt returns the old "last_poll_at" field's value of the Connection entity.
// If the Connection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectionMutation) OldLastPollAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastPollAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastPollAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastPollAt: %w", err)
	}
	return oldValue.LastPollAt, nil
}

// ClearLastPollAt clears the value of the "last_poll_at" field.
func (m *ConnectionMutation) ClearLastPollAt() {
	m.last_poll_at = nil
	m.clearedFields[connection.FieldLastPollAt] = struct{}{}
}

// LastPollAtCleared returns if the "last_poll_at" field was cleared in this mutation.
func (m *ConnectionMutation) LastPollAtCleared() bool {
	_, ok := m.clearedFields[connection.FieldLastPollAt]
	return ok
}

// ResetLastPollAt resets all changes to the "last_poll_at" field.
func (m *ConnectionMutation) ResetLastPollAt() {
	m.last_poll_at = nil
	delete(m.clearedFields, connection.FieldLastPollAt)
}

// SetErrorCount sets the "error_count" field.
func (m *ConnectionMutation) SetErrorCount(i int) {
	m.error_count = &i
	m.adderror_count = nil
}

// ErrorCount returns the value of the "error_count" field in the mutation.
func (m *ConnectionMutation) ErrorCount() (r int, exists bool) {
	v := m.error_count
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorCount returns the old "error_count" field's value of the Connection entity.
// If the Connection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectionMutation) OldErrorCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorCount: %w", err)
	}
	return oldValue.ErrorCount, nil
}

// AddErrorCount adds i to the "error_count" field.
func (m *ConnectionMutation) AddErrorCount(i int) {
	if m.adderror_count != nil {
		*m.adderror_count += i
	} else {
		m.adderror_count = &i
	}
}

// AddedErrorCount returns the value that was added to the "error_count" field in this mutation.
func (m *ConnectionMutation) AddedErrorCount() (r int, exists bool) {
	v := m.adderror_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetErrorCount resets all changes to the "error_count" field.
func (m *ConnectionMutation) ResetErrorCount() {
	m.error_count = nil
	m.adderror_count = nil
}

// SetLastError sets the "last_error" field.
func (m *ConnectionMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *ConnectionMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the Connection entity.
// If the Connection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectionMutation) OldLastError(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *ConnectionMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[connection.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *ConnectionMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[connection.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *ConnectionMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, connection.FieldLastError)
}

// SetCreatedAt sets the "created_at" field.
func (m *ConnectionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ConnectionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Connection entity.
// If the Connection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ConnectionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ConnectionMutation builder.
func (m *ConnectionMutation) Where(ps ...predicate.Connection) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ConnectionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ConnectionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Connection, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ConnectionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ConnectionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Connection).
func (m *ConnectionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ConnectionMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.user_id != nil {
		fields = append(fields, connection.FieldUserID)
	}
	if m.provider != nil {
		fields = append(fields, connection.FieldProvider)
	}
	if m.connection_id != nil {
		fields = append(fields, connection.FieldConnectionID)
	}
	if m.enabled != nil {
		fields = append(fields, connection.FieldEnabled)
	}
	if m.last_poll_at != nil {
		fields = append(fields, connection.FieldLastPollAt)
	}
	if m.error_count != nil {
		fields = append(fields, connection.FieldErrorCount)
	}
	if m.last_error != nil {
		fields = append(fields, connection.FieldLastError)
	}
	if m.created_at != nil {
		fields = append(fields, connection.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ConnectionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case connection.FieldUserID:
		return m.UserID()
	case connection.FieldProvider:
		return m.Provider()
	case connection.FieldConnectionID:
		return m.ConnectionID()
	case connection.FieldEnabled:
		return m.Enabled()
	case connection.FieldLastPollAt:
		return m.LastPollAt()
	case connection.FieldErrorCount:
		return m.ErrorCount()
	case connection.FieldLastError:
		return m.LastError()
	case connection.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ConnectionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case connection.FieldUserID:
		return m.OldUserID(ctx)
	case connection.FieldProvider:
		return m.OldProvider(ctx)
	case connection.FieldConnectionID:
		return m.OldConnectionID(ctx)
	case connection.FieldEnabled:
		return m.OldEnabled(ctx)
	case connection.FieldLastPollAt:
		return m.OldLastPollAt(ctx)
	case connection.FieldErrorCount:
		return m.OldErrorCount(ctx)
	case connection.FieldLastError:
		return m.OldLastError(ctx)
	case connection.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Connection field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConnectionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case connection.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case connection.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case connection.FieldConnectionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConnectionID(v)
		return nil
	case connection.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	case connection.FieldLastPollAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastPollAt(v)
		return nil
	case connection.FieldErrorCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorCount(v)
		return nil
	case connection.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case connection.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Connection field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ConnectionMutation) AddedFields() []string {
	var fields []string
	if m.adderror_count != nil {
		fields = append(fields, connection.FieldErrorCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ConnectionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case connection.FieldErrorCount:
		return m.AddedErrorCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConnectionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case connection.FieldErrorCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddErrorCount(v)
		return nil
	}
	return fmt.Errorf("unknown Connection numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ConnectionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(connection.FieldLastPollAt) {
		fields = append(fields, connection.FieldLastPollAt)
	}
	if m.FieldCleared(connection.FieldLastError) {
		fields = append(fields, connection.FieldLastError)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ConnectionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ConnectionMutation) ClearField(name string) error {
	switch name {
	case connection.FieldLastPollAt:
		m.ClearLastPollAt()
		return nil
	case connection.FieldLastError:
		m.ClearLastError()
		return nil
	}
	return fmt.Errorf("unknown Connection nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ConnectionMutation) ResetField(name string) error {
	switch name {
	case connection.FieldUserID:
		m.ResetUserID()
		return nil
	case connection.FieldProvider:
		m.ResetProvider()
		return nil
	case connection.FieldConnectionID:
		m.ResetConnectionID()
		return nil
	case connection.FieldEnabled:
		m.ResetEnabled()
		return nil
	case connection.FieldLastPollAt:
		m.ResetLastPollAt()
		return nil
	case connection.FieldErrorCount:
		m.ResetErrorCount()
		return nil
	case connection.FieldLastError:
		m.ResetLastError()
		return nil
	case connection.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Connection field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ConnectionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ConnectionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ConnectionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ConnectionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ConnectionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ConnectionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ConnectionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Connection unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ConnectionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Connection edge %s", name)
}

// RunMutation represents an operation that mutates the Run nodes in the graph.
type RunMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	unit_id                *string
	event_id               *string
	user_id                *string
	status                 *run.Status
	current_step           *int
	addcurrent_step        *int
	context                *map[string]interface{}
	started_at             *time.Time
	completed_at           *time.Time
	resume_at              *time.Time
	error                  *string
	original_event_payload *map[string]interface{}
	clearedFields          map[string]struct{}
	steps                  map[string]struct{}
	removedsteps           map[string]struct{}
	clearedsteps           bool
	done                   bool
	oldValue               func(context.Context) (*Run, error)
	predicates             []predicate.Run
}

var _ ent.Mutation = (*RunMutation)(nil)

// runOption allows management of the mutation configuration using functional options.
type runOption func(*RunMutation)

// newRunMutation creates new mutation for the Run entity.
func newRunMutation(c config, op Op, opts ...runOption) *RunMutation {
	m := &RunMutation{
		config:        c,
		op:            op,
		typ:           TypeRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRunID sets the ID field of the mutation.
func withRunID(id string) runOption {
	return func(m *RunMutation) {
		var (
			err   error
			once  sync.Once
			value *Run
		)
		m.oldValue = func(ctx context.Context) (*Run, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Run.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRun sets the old Run of the mutation.
func withRun(node *Run) runOption {
	return func(m *RunMutation) {
		m.oldValue = func(context.Context) (*Run, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Run entities.
func (m *RunMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RunMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RunMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Run.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUnitID sets the "unit_id" field.
func (m *RunMutation) SetUnitID(s string) {
	m.unit_id = &s
}

// UnitID returns the value of the "unit_id" field in the mutation.
func (m *RunMutation) UnitID() (r string, exists bool) {
	v := m.unit_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUnitID returns the old "unit_id" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldUnitID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnitID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnitID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnitID: %w", err)
	}
	return oldValue.UnitID, nil
}

// ResetUnitID resets all changes to the "unit_id" field.
func (m *RunMutation) ResetUnitID() {
	m.unit_id = nil
}

// SetEventID sets the "event_id" field.
func (m *RunMutation) SetEventID(s string) {
	m.event_id = &s
}

// EventID returns the value of the "event_id" field in the mutation.
func (m *RunMutation) EventID() (r string, exists bool) {
	v := m.event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEventID returns the old "event_id" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldEventID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventID: %w", err)
	}
	return oldValue.EventID, nil
}

// ResetEventID resets all changes to the "event_id" field.
func (m *RunMutation) ResetEventID() {
	m.event_id = nil
}

// SetUserID sets the "user_id" field.
func (m *RunMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *RunMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *RunMutation) ResetUserID() {
	m.user_id = nil
}

// SetStatus sets the "status" field.
func (m *RunMutation) SetStatus(r run.Status) {
	m.status = &r
}

// Status returns the value of the "status" field in the mutation.
func (m *RunMutation) Status() (r run.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldStatus(ctx context.Context) (v run.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *RunMutation) ResetStatus() {
	m.status = nil
}

// SetCurrentStep sets the "current_step" field.
func (m *RunMutation) SetCurrentStep(i int) {
	m.current_step = &i
	m.addcurrent_step = nil
}

// CurrentStep returns the value of the "current_step" field in the mutation.
func (m *RunMutation) CurrentStep() (r int, exists bool) {
	v := m.current_step
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentStep returns the old "current_step" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldCurrentStep(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentStep is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentStep requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentStep: %w", err)
	}
	return oldValue.CurrentStep, nil
}

// AddCurrentStep adds i to the "current_step" field.
func (m *RunMutation) AddCurrentStep(i int) {
	if m.addcurrent_step != nil {
		*m.addcurrent_step += i
	} else {
		m.addcurrent_step = &i
	}
}

// AddedCurrentStep returns the value that was added to the "current_step" field in this mutation.
func (m *RunMutation) AddedCurrentStep() (r int, exists bool) {
	v := m.addcurrent_step
	if v == nil {
		return
	}
	return *v, true
}

// ResetCurrentStep resets all changes to the "current_step" field.
func (m *RunMutation) ResetCurrentStep() {
	m.current_step = nil
	m.addcurrent_step = nil
}

// SetContext sets the "context" field.
func (m *RunMutation) SetContext(value map[string]interface{}) {
	m.context = &value
}

// Context returns the value of the "context" field in the mutation.
func (m *RunMutation) Context() (r map[string]interface{}, exists bool) {
	v := m.context
	if v == nil {
		return
	}
	return *v, true
}

// OldContext returns the old "context" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldContext(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContext: %w", err)
	}
	return oldValue.Context, nil
}

// ResetContext resets all changes to the "context" field.
func (m *RunMutation) ResetContext() {
	m.context = nil
}

// SetStartedAt sets the "started_at" field.
func (m *RunMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *RunMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *RunMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *RunMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *RunMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *RunMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[run.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *RunMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[run.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *RunMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, run.FieldCompletedAt)
}

// SetResumeAt sets the "resume_at" field.
func (m *RunMutation) SetResumeAt(t time.Time) {
	m.resume_at = &t
}

// ResumeAt returns the value of the "resume_at" field in the mutation.
func (m *RunMutation) ResumeAt() (r time.Time, exists bool) {
	v := m.resume_at
	if v == nil {
		return
	}
	return *v, true
}

// OldResumeAt returns the old "resume_at" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldResumeAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResumeAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResumeAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResumeAt: %w", err)
	}
	return oldValue.ResumeAt, nil
}

// ClearResumeAt clears the value of the "resume_at" field.
func (m *RunMutation) ClearResumeAt() {
	m.resume_at = nil
	m.clearedFields[run.FieldResumeAt] = struct{}{}
}

// ResumeAtCleared returns if the "resume_at" field was cleared in this mutation.
func (m *RunMutation) ResumeAtCleared() bool {
	_, ok := m.clearedFields[run.FieldResumeAt]
	return ok
}

// ResetResumeAt resets all changes to the "resume_at" field.
func (m *RunMutation) ResetResumeAt() {
	m.resume_at = nil
	delete(m.clearedFields, run.FieldResumeAt)
}

// SetError sets the "error" field.
func (m *RunMutation) SetError(s string) {
	m.error = &s
}

// Error returns the value of the "error" field in the mutation.
func (m *RunMutation) Error() (r string, exists bool) {
	v := m.error
	if v == nil {
		return
	}
	return *v, true
}

// OldError returns the old "error" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldError(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldError: %w", err)
	}
	return oldValue.Error, nil
}

// ClearError clears the value of the "error" field.
func (m *RunMutation) ClearError() {
	m.error = nil
	m.clearedFields[run.FieldError] = struct{}{}
}

// ErrorCleared returns if the "error" field was cleared in this mutation.
func (m *RunMutation) ErrorCleared() bool {
	_, ok := m.clearedFields[run.FieldError]
	return ok
}

// ResetError resets all changes to the "error" field.
func (m *RunMutation) ResetError() {
	m.error = nil
	delete(m.clearedFields, run.FieldError)
}

// SetOriginalEventPayload sets the "original_event_payload" field.
func (m *RunMutation) SetOriginalEventPayload(value map[string]interface{}) {
	m.original_event_payload = &value
}

// OriginalEventPayload returns the value of the "original_event_payload" field in the mutation.
func (m *RunMutation) OriginalEventPayload() (r map[string]interface{}, exists bool) {
	v := m.original_event_payload
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginalEventPayload returns the old "original_event_payload" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldOriginalEventPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginalEventPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginalEventPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginalEventPayload: %w", err)
	}
	return oldValue.OriginalEventPayload, nil
}

// ClearOriginalEventPayload clears the value of the "original_event_payload" field.
func (m *RunMutation) ClearOriginalEventPayload() {
	m.original_event_payload = nil
	m.clearedFields[run.FieldOriginalEventPayload] = struct{}{}
}

// OriginalEventPayloadCleared returns if the "original_event_payload" field was cleared in this mutation.
func (m *RunMutation) OriginalEventPayloadCleared() bool {
	_, ok := m.clearedFields[run.FieldOriginalEventPayload]
	return ok
}

// ResetOriginalEventPayload resets all changes to the "original_event_payload" field.
func (m *RunMutation) ResetOriginalEventPayload() {
	m.original_event_payload = nil
	delete(m.clearedFields, run.FieldOriginalEventPayload)
}

// AddStepIDs adds the "steps" edge to the RunStep entity by ids.
func (m *RunMutation) AddStepIDs(ids ...string) {
	if m.steps == nil {
		m.steps = make(map[string]struct{})
	}
	for i := range ids {
		m.steps[ids[i]] = struct{}{}
	}
}

// ClearSteps clears the "steps" edge to the RunStep entity.
func (m *RunMutation) ClearSteps() {
	m.clearedsteps = true
}

// StepsCleared reports if the "steps" edge to the RunStep entity was cleared.
func (m *RunMutation) StepsCleared() bool {
	return m.clearedsteps
}

// RemoveStepIDs removes the "steps" edge to the RunStep entity by IDs.
func (m *RunMutation) RemoveStepIDs(ids ...string) {
	if m.removedsteps == nil {
		m.removedsteps = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.steps, ids[i])
		m.removedsteps[ids[i]] = struct{}{}
	}
}

// RemovedSteps returns the removed IDs of the "steps" edge to the RunStep entity.
func (m *RunMutation) RemovedStepsIDs() (ids []string) {
	for id := range m.removedsteps {
		ids = append(ids, id)
	}
	return
}

// StepsIDs returns the "steps" edge IDs in the mutation.
func (m *RunMutation) StepsIDs() (ids []string) {
	for id := range m.steps {
		ids = append(ids, id)
	}
	return
}

// ResetSteps resets all changes to the "steps" edge.
func (m *RunMutation) ResetSteps() {
	m.steps = nil
	m.clearedsteps = false
	m.removedsteps = nil
}

// Where appends a list predicates to the RunMutation builder.
func (m *RunMutation) Where(ps ...predicate.Run) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Run, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Run).
func (m *RunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RunMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.unit_id != nil {
		fields = append(fields, run.FieldUnitID)
	}
	if m.event_id != nil {
		fields = append(fields, run.FieldEventID)
	}
	if m.user_id != nil {
		fields = append(fields, run.FieldUserID)
	}
	if m.status != nil {
		fields = append(fields, run.FieldStatus)
	}
	if m.current_step != nil {
		fields = append(fields, run.FieldCurrentStep)
	}
	if m.context != nil {
		fields = append(fields, run.FieldContext)
	}
	if m.started_at != nil {
		fields = append(fields, run.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, run.FieldCompletedAt)
	}
	if m.resume_at != nil {
		fields = append(fields, run.FieldResumeAt)
	}
	if m.error != nil {
		fields = append(fields, run.FieldError)
	}
	if m.original_event_payload != nil {
		fields = append(fields, run.FieldOriginalEventPayload)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case run.FieldUnitID:
		return m.UnitID()
	case run.FieldEventID:
		return m.EventID()
	case run.FieldUserID:
		return m.UserID()
	case run.FieldStatus:
		return m.Status()
	case run.FieldCurrentStep:
		return m.CurrentStep()
	case run.FieldContext:
		return m.Context()
	case run.FieldStartedAt:
		return m.StartedAt()
	case run.FieldCompletedAt:
		return m.CompletedAt()
	case run.FieldResumeAt:
		return m.ResumeAt()
	case run.FieldError:
		return m.Error()
	case run.FieldOriginalEventPayload:
		return m.OriginalEventPayload()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case run.FieldUnitID:
		return m.OldUnitID(ctx)
	case run.FieldEventID:
		return m.OldEventID(ctx)
	case run.FieldUserID:
		return m.OldUserID(ctx)
	case run.FieldStatus:
		return m.OldStatus(ctx)
	case run.FieldCurrentStep:
		return m.OldCurrentStep(ctx)
	case run.FieldContext:
		return m.OldContext(ctx)
	case run.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case run.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case run.FieldResumeAt:
		return m.OldResumeAt(ctx)
	case run.FieldError:
		return m.OldError(ctx)
	case run.FieldOriginalEventPayload:
		return m.OldOriginalEventPayload(ctx)
	}
	return nil, fmt.Errorf("unknown Run field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case run.FieldUnitID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnitID(v)
		return nil
	case run.FieldEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventID(v)
		return nil
	case run.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case run.FieldStatus:
		v, ok := value.(run.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case run.FieldCurrentStep:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentStep(v)
		return nil
	case run.FieldContext:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContext(v)
		return nil
	case run.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case run.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case run.FieldResumeAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResumeAt(v)
		return nil
	case run.FieldError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetError(v)
		return nil
	case run.FieldOriginalEventPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginalEventPayload(v)
		return nil
	}
	return fmt.Errorf("unknown Run field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RunMutation) AddedFields() []string {
	var fields []string
	if m.addcurrent_step != nil {
		fields = append(fields, run.FieldCurrentStep)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RunMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case run.FieldCurrentStep:
		return m.AddedCurrentStep()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunMutation) AddField(name string, value ent.Value) error {
	switch name {
	case run.FieldCurrentStep:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCurrentStep(v)
		return nil
	}
	return fmt.Errorf("unknown Run numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(run.FieldCompletedAt) {
		fields = append(fields, run.FieldCompletedAt)
	}
	if m.FieldCleared(run.FieldResumeAt) {
		fields = append(fields, run.FieldResumeAt)
	}
	if m.FieldCleared(run.FieldError) {
		fields = append(fields, run.FieldError)
	}
	if m.FieldCleared(run.FieldOriginalEventPayload) {
		fields = append(fields, run.FieldOriginalEventPayload)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RunMutation) ClearField(name string) error {
	switch name {
	case run.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case run.FieldResumeAt:
		m.ClearResumeAt()
		return nil
	case run.FieldError:
		m.ClearError()
		return nil
	case run.FieldOriginalEventPayload:
		m.ClearOriginalEventPayload()
		return nil
	}
	return fmt.Errorf("unknown Run nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RunMutation) ResetField(name string) error {
	switch name {
	case run.FieldUnitID:
		m.ResetUnitID()
		return nil
	case run.FieldEventID:
		m.ResetEventID()
		return nil
	case run.FieldUserID:
		m.ResetUserID()
		return nil
	case run.FieldStatus:
		m.ResetStatus()
		return nil
	case run.FieldCurrentStep:
		m.ResetCurrentStep()
		return nil
	case run.FieldContext:
		m.ResetContext()
		return nil
	case run.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case run.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case run.FieldResumeAt:
		m.ResetResumeAt()
		return nil
	case run.FieldError:
		m.ResetError()
		return nil
	case run.FieldOriginalEventPayload:
		m.ResetOriginalEventPayload()
		return nil
	}
	return fmt.Errorf("unknown Run field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RunMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.steps != nil {
		edges = append(edges, run.EdgeSteps)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RunMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case run.EdgeSteps:
		ids := make([]ent.Value, 0, len(m.steps))
		for id := range m.steps {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedsteps != nil {
		edges = append(edges, run.EdgeSteps)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RunMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case run.EdgeSteps:
		ids := make([]ent.Value, 0, len(m.removedsteps))
		for id := range m.removedsteps {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsteps {
		edges = append(edges, run.EdgeSteps)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RunMutation) EdgeCleared(name string) bool {
	switch name {
	case run.EdgeSteps:
		return m.clearedsteps
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RunMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Run unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RunMutation) ResetEdge(name string) error {
	switch name {
	case run.EdgeSteps:
		m.ResetSteps()
		return nil
	}
	return fmt.Errorf("unknown Run edge %s", name)
}

// RunStepMutation represents an operation that mutates the RunStep nodes in the graph.
type RunStepMutation struct {
	config
	op            Op
	typ           string
	id            *string
	step_index    *int
	addstep_index *int
	action_type   *string
	action_config *map[string]interface{}
	status        *runstep.Status
	result        *map[string]interface{}
	error         *string
	started_at    *time.Time
	completed_at  *time.Time
	clearedFields map[string]struct{}
	run           *string
	clearedrun    bool
	done          bool
	oldValue      func(context.Context) (*RunStep, error)
	predicates    []predicate.RunStep
}

var _ ent.Mutation = (*RunStepMutation)(nil)

// runstepOption allows management of the mutation configuration using functional options.
type runstepOption func(*RunStepMutation)

// newRunStepMutation creates new mutation for the RunStep entity.
func newRunStepMutation(c config, op Op, opts ...runstepOption) *RunStepMutation {
	m := &RunStepMutation{
		config:        c,
		op:            op,
		typ:           TypeRunStep,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRunStepID sets the ID field of the mutation.
func withRunStepID(id string) runstepOption {
	return func(m *RunStepMutation) {
		var (
			err   error
			once  sync.Once
			value *RunStep
		)
		m.oldValue = func(ctx context.Context) (*RunStep, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RunStep.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRunStep sets the old RunStep of the mutation.
func withRunStep(node *RunStep) runstepOption {
	return func(m *RunStepMutation) {
		m.oldValue = func(context.Context) (*RunStep, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RunStepMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RunStepMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RunStep entities.
func (m *RunStepMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RunStepMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RunStepMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RunStep.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *RunStepMutation) SetRunID(s string) {
	m.run = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *RunStepMutation) RunID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the RunStep entity.
// If the RunStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunStepMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *RunStepMutation) ResetRunID() {
	m.run = nil
}

// SetStepIndex sets the "step_index" field.
func (m *RunStepMutation) SetStepIndex(i int) {
	m.step_index = &i
	m.addstep_index = nil
}

// StepIndex returns the value of the "step_index" field in the mutation.
func (m *RunStepMutation) StepIndex() (r int, exists bool) {
	v := m.step_index
	if v == nil {
		return
	}
	return *v, true
}

// OldStepIndex returns the old "step_index" field's value of the RunStep entity.
// If the RunStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunStepMutation) OldStepIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepIndex: %w", err)
	}
	return oldValue.StepIndex, nil
}

// AddStepIndex adds i to the "step_index" field.
func (m *RunStepMutation) AddStepIndex(i int) {
	if m.addstep_index != nil {
		*m.addstep_index += i
	} else {
		m.addstep_index = &i
	}
}

// AddedStepIndex returns the value that was added to the "step_index" field in this mutation.
func (m *RunStepMutation) AddedStepIndex() (r int, exists bool) {
	v := m.addstep_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetStepIndex resets all changes to the "step_index" field.
func (m *RunStepMutation) ResetStepIndex() {
	m.step_index = nil
	m.addstep_index = nil
}

// SetActionType sets the "action_type" field.
func (m *RunStepMutation) SetActionType(s string) {
	m.action_type = &s
}

// ActionType returns the value of the "action_type" field in the mutation.
func (m *RunStepMutation) ActionType() (r string, exists bool) {
	v := m.action_type
	if v == nil {
		return
	}
	return *v, true
}

// OldActionType returns the old "action_type" field's value of the RunStep entity.
// If the RunStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunStepMutation) OldActionType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActionType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActionType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActionType: %w", err)
	}
	return oldValue.ActionType, nil
}

// ResetActionType resets all changes to the "action_type" field.
func (m *RunStepMutation) ResetActionType() {
	m.action_type = nil
}

// SetActionConfig sets the "action_config" field.
func (m *RunStepMutation) SetActionConfig(value map[string]interface{}) {
	m.action_config = &value
}

// ActionConfig returns the value of the "action_config" field in the mutation.
func (m *RunStepMutation) ActionConfig() (r map[string]interface{}, exists bool) {
	v := m.action_config
	if v == nil {
		return
	}
	return *v, true
}

// OldActionConfig returns the old "action_config" field's value of the RunStep entity.
// If the RunStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunStepMutation) OldActionConfig(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActionConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActionConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActionConfig: %w", err)
	}
	return oldValue.ActionConfig, nil
}

// ResetActionConfig resets all changes to the "action_config" field.
func (m *RunStepMutation) ResetActionConfig() {
	m.action_config = nil
}

// SetStatus sets the "status" field.
func (m *RunStepMutation) SetStatus(r runstep.Status) {
	m.status = &r
}

// Status returns the value of the "status" field in the mutation.
func (m *RunStepMutation) Status() (r runstep.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the RunStep entity.
// If the RunStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunStepMutation) OldStatus(ctx context.Context) (v runstep.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *RunStepMutation) ResetStatus() {
	m.status = nil
}

// SetResult sets the "result" field.
func (m *RunStepMutation) SetResult(value map[string]interface{}) {
	m.result = &value
}

// Result returns the value of the "result" field in the mutation.
func (m *RunStepMutation) Result() (r map[string]interface{}, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the RunStep entity.
// If the RunStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunStepMutation) OldResult(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResult: %w", err)
	}
	return oldValue.Result, nil
}

// ClearResult clears the value of the "result" field.
func (m *RunStepMutation) ClearResult() {
	m.result = nil
	m.clearedFields[runstep.FieldResult] = struct{}{}
}

// ResultCleared returns if the "result" field was cleared in this mutation.
func (m *RunStepMutation) ResultCleared() bool {
	_, ok := m.clearedFields[runstep.FieldResult]
	return ok
}

// ResetResult resets all changes to the "result" field.
func (m *RunStepMutation) ResetResult() {
	m.result = nil
	delete(m.clearedFields, runstep.FieldResult)
}

// SetError sets the "error" field.
func (m *RunStepMutation) SetError(s string) {
	m.error = &s
}

// Error returns the value of the "error" field in the mutation.
func (m *RunStepMutation) Error() (r string, exists bool) {
	v := m.error
	if v == nil {
		return
	}
	return *v, true
}

// OldError returns the old "error" field's value of the RunStep entity.
// If the RunStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunStepMutation) OldError(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldError: %w", err)
	}
	return oldValue.Error, nil
}

// ClearError clears the value of the "error" field.
func (m *RunStepMutation) ClearError() {
	m.error = nil
	m.clearedFields[runstep.FieldError] = struct{}{}
}

// ErrorCleared returns if the "error" field was cleared in this mutation.
func (m *RunStepMutation) ErrorCleared() bool {
	_, ok := m.clearedFields[runstep.FieldError]
	return ok
}

// ResetError resets all changes to the "error" field.
func (m *RunStepMutation) ResetError() {
	m.error = nil
	delete(m.clearedFields, runstep.FieldError)
}

// SetStartedAt sets the "started_at" field.
func (m *RunStepMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *RunStepMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the RunStep entity.
// If the RunStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunStepMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *RunStepMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *RunStepMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *RunStepMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the RunStep entity.
// If the RunStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunStepMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *RunStepMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[runstep.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *RunStepMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[runstep.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *RunStepMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, runstep.FieldCompletedAt)
}

// ClearRun clears the "run" edge to the Run entity.
func (m *RunStepMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[runstep.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the Run entity was cleared.
func (m *RunStepMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *RunStepMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *RunStepMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// Where appends a list predicates to the RunStepMutation builder.
func (m *RunStepMutation) Where(ps ...predicate.RunStep) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RunStepMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RunStepMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RunStep, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RunStepMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RunStepMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RunStep).
func (m *RunStepMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RunStepMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.run != nil {
		fields = append(fields, runstep.FieldRunID)
	}
	if m.step_index != nil {
		fields = append(fields, runstep.FieldStepIndex)
	}
	if m.action_type != nil {
		fields = append(fields, runstep.FieldActionType)
	}
	if m.action_config != nil {
		fields = append(fields, runstep.FieldActionConfig)
	}
	if m.status != nil {
		fields = append(fields, runstep.FieldStatus)
	}
	if m.result != nil {
		fields = append(fields, runstep.FieldResult)
	}
	if m.error != nil {
		fields = append(fields, runstep.FieldError)
	}
	if m.started_at != nil {
		fields = append(fields, runstep.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, runstep.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RunStepMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case runstep.FieldRunID:
		return m.RunID()
	case runstep.FieldStepIndex:
		return m.StepIndex()
	case runstep.FieldActionType:
		return m.ActionType()
	case runstep.FieldActionConfig:
		return m.ActionConfig()
	case runstep.FieldStatus:
		return m.Status()
	case runstep.FieldResult:
		return m.Result()
	case runstep.FieldError:
		return m.Error()
	case runstep.FieldStartedAt:
		return m.StartedAt()
	case runstep.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RunStepMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case runstep.FieldRunID:
		return m.OldRunID(ctx)
	case runstep.FieldStepIndex:
		return m.OldStepIndex(ctx)
	case runstep.FieldActionType:
		return m.OldActionType(ctx)
	case runstep.FieldActionConfig:
		return m.OldActionConfig(ctx)
	case runstep.FieldStatus:
		return m.OldStatus(ctx)
	case runstep.FieldResult:
		return m.OldResult(ctx)
	case runstep.FieldError:
		return m.OldError(ctx)
	case runstep.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case runstep.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown RunStep field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunStepMutation) SetField(name string, value ent.Value) error {
	switch name {
	case runstep.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case runstep.FieldStepIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepIndex(v)
		return nil
	case runstep.FieldActionType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActionType(v)
		return nil
	case runstep.FieldActionConfig:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActionConfig(v)
		return nil
	case runstep.FieldStatus:
		v, ok := value.(runstep.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case runstep.FieldResult:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	case runstep.FieldError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetError(v)
		return nil
	case runstep.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case runstep.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown RunStep field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RunStepMutation) AddedFields() []string {
	var fields []string
	if m.addstep_index != nil {
		fields = append(fields, runstep.FieldStepIndex)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RunStepMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case runstep.FieldStepIndex:
		return m.AddedStepIndex()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunStepMutation) AddField(name string, value ent.Value) error {
	switch name {
	case runstep.FieldStepIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStepIndex(v)
		return nil
	}
	return fmt.Errorf("unknown RunStep numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RunStepMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(runstep.FieldResult) {
		fields = append(fields, runstep.FieldResult)
	}
	if m.FieldCleared(runstep.FieldError) {
		fields = append(fields, runstep.FieldError)
	}
	if m.FieldCleared(runstep.FieldCompletedAt) {
		fields = append(fields, runstep.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RunStepMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RunStepMutation) ClearField(name string) error {
	switch name {
	case runstep.FieldResult:
		m.ClearResult()
		return nil
	case runstep.FieldError:
		m.ClearError()
		return nil
	case runstep.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown RunStep nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RunStepMutation) ResetField(name string) error {
	switch name {
	case runstep.FieldRunID:
		m.ResetRunID()
		return nil
	case runstep.FieldStepIndex:
		m.ResetStepIndex()
		return nil
	case runstep.FieldActionType:
		m.ResetActionType()
		return nil
	case runstep.FieldActionConfig:
		m.ResetActionConfig()
		return nil
	case runstep.FieldStatus:
		m.ResetStatus()
		return nil
	case runstep.FieldResult:
		m.ResetResult()
		return nil
	case runstep.FieldError:
		m.ResetError()
		return nil
	case runstep.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case runstep.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown RunStep field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RunStepMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.run != nil {
		edges = append(edges, runstep.EdgeRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RunStepMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case runstep.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RunStepMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RunStepMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RunStepMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrun {
		edges = append(edges, runstep.EdgeRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RunStepMutation) EdgeCleared(name string) bool {
	switch name {
	case runstep.EdgeRun:
		return m.clearedrun
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RunStepMutation) ClearEdge(name string) error {
	switch name {
	case runstep.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown RunStep unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RunStepMutation) ResetEdge(name string) error {
	switch name {
	case runstep.EdgeRun:
		m.ResetRun()
		return nil
	}
	return fmt.Errorf("unknown RunStep edge %s", name)
}

// UnitMutation represents an operation that mutates the Unit nodes in the graph.
type UnitMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	owner_id            *string
	name                *string
	raw_when            *string
	raw_if              *string
	raw_then            *string
	compiled_when       *map[string]interface{}
	compiled_if         *[]interface{}
	appendcompiled_if   []interface{}
	compiled_then       *[]interface{}
	appendcompiled_then []interface{}
	status              *unit.Status
	trigger_source      *string
	trigger_event       *string
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*Unit, error)
	predicates          []predicate.Unit
}

var _ ent.Mutation = (*UnitMutation)(nil)

// unitOption allows management of the mutation configuration using functional options.
type unitOption func(*UnitMutation)

// newUnitMutation creates new mutation for the Unit entity.
func newUnitMutation(c config, op Op, opts ...unitOption) *UnitMutation {
	m := &UnitMutation{
		config:        c,
		op:            op,
		typ:           TypeUnit,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUnitID sets the ID field of the mutation.
func withUnitID(id string) unitOption {
	return func(m *UnitMutation) {
		var (
			err   error
			once  sync.Once
			value *Unit
		)
		m.oldValue = func(ctx context.Context) (*Unit, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Unit.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUnit sets the old Unit of the mutation.
func withUnit(node *Unit) unitOption {
	return func(m *UnitMutation) {
		m.oldValue = func(context.Context) (*Unit, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UnitMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UnitMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Unit entities.
func (m *UnitMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UnitMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UnitMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Unit.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOwnerID sets the "owner_id" field.
func (m *UnitMutation) SetOwnerID(s string) {
	m.owner_id = &s
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *UnitMutation) OwnerID() (r string, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the Unit entity.
// If the Unit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnitMutation) OldOwnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *UnitMutation) ResetOwnerID() {
	m.owner_id = nil
}

// SetName sets the "name" field.
func (m *UnitMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *UnitMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Unit entity.
// If the Unit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnitMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *UnitMutation) ResetName() {
	m.name = nil
}

// SetRawWhen sets the "raw_when" field.
func (m *UnitMutation) SetRawWhen(s string) {
	m.raw_when = &s
}

// RawWhen returns the value of the "raw_when" field in the mutation.
func (m *UnitMutation) RawWhen() (r string, exists bool) {
	v := m.raw_when
	if v == nil {
		return
	}
	return *v, true
}

// OldRawWhen returns the old "raw_when" field's value of the Unit entity.
// If the Unit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnitMutation) OldRawWhen(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawWhen is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawWhen requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawWhen: %w", err)
	}
	return oldValue.RawWhen, nil
}

// ClearRawWhen clears the value of the "raw_when" field.
func (m *UnitMutation) ClearRawWhen() {
	m.raw_when = nil
	m.clearedFields[unit.FieldRawWhen] = struct{}{}
}

// RawWhenCleared returns if the "raw_when" field was cleared in this mutation.
func (m *UnitMutation) RawWhenCleared() bool {
	_, ok := m.clearedFields[unit.FieldRawWhen]
	return ok
}

// ResetRawWhen resets all changes to the "raw_when" field.
func (m *UnitMutation) ResetRawWhen() {
	m.raw_when = nil
	delete(m.clearedFields, unit.FieldRawWhen)
}

// SetRawIf sets the "raw_if" field.
func (m *UnitMutation) SetRawIf(s string) {
	m.raw_if = &s
}

// RawIf returns the value of the "raw_if" field in the mutation.
func (m *UnitMutation) RawIf() (r string, exists bool) {
	v := m.raw_if
	if v == nil {
		return
	}
	return *v, true
}

// OldRawIf returns the old "raw_if" field's value of the Unit entity.
// If the Unit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnitMutation) OldRawIf(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawIf is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawIf requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawIf: %w", err)
	}
	return oldValue.RawIf, nil
}

// ClearRawIf clears the value of the "raw_if" field.
func (m *UnitMutation) ClearRawIf() {
	m.raw_if = nil
	m.clearedFields[unit.FieldRawIf] = struct{}{}
}

// RawIfCleared returns if the "raw_if" field was cleared in this mutation.
func (m *UnitMutation) RawIfCleared() bool {
	_, ok := m.clearedFields[unit.FieldRawIf]
	return ok
}

// ResetRawIf resets all changes to the "raw_if" field.
func (m *UnitMutation) ResetRawIf() {
	m.raw_if = nil
	delete(m.clearedFields, unit.FieldRawIf)
}

// SetRawThen sets the "raw_then" field.
func (m *UnitMutation) SetRawThen(s string) {
	m.raw_then = &s
}

// RawThen returns the value of the "raw_then" field in the mutation.
func (m *UnitMutation) RawThen() (r string, exists bool) {
	v := m.raw_then
	if v == nil {
		return
	}
	return *v, true
}

// OldRawThen returns the old "raw_then" field's value of the Unit entity.
// If the Unit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnitMutation) OldRawThen(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawThen is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawThen requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawThen: %w", err)
	}
	return oldValue.RawThen, nil
}

// ClearRawThen clears the value of the "raw_then" field.
func (m *UnitMutation) ClearRawThen() {
	m.raw_then = nil
	m.clearedFields[unit.FieldRawThen] = struct{}{}
}

// RawThenCleared returns if the "raw_then" field was cleared in this mutation.
func (m *UnitMutation) RawThenCleared() bool {
	_, ok := m.clearedFields[unit.FieldRawThen]
	return ok
}

// ResetRawThen resets all changes to the "raw_then" field.
func (m *UnitMutation) ResetRawThen() {
	m.raw_then = nil
	delete(m.clearedFields, unit.FieldRawThen)
}

// SetCompiledWhen sets the "compiled_when" field.
func (m *UnitMutation) SetCompiledWhen(value map[string]interface{}) {
	m.compiled_when = &value
}

// CompiledWhen returns the value of the "compiled_when" field in the mutation.
func (m *UnitMutation) CompiledWhen() (r map[string]interface{}, exists bool) {
	v := m.compiled_when
	if v == nil {
		return
	}
	return *v, true
}

// OldCompiledWhen returns the old "compiled_when" field's value of the Unit entity.
// If the Unit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnitMutation) OldCompiledWhen(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompiledWhen is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompiledWhen requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompiledWhen: %w", err)
	}
	return oldValue.CompiledWhen, nil
}

// ResetCompiledWhen resets all changes to the "compiled_when" field.
func (m *UnitMutation) ResetCompiledWhen() {
	m.compiled_when = nil
}

// SetCompiledIf sets the "compiled_if" field.
func (m *UnitMutation) SetCompiledIf(i []interface{}) {
	m.compiled_if = &i
	m.appendcompiled_if = nil
}

// CompiledIf returns the value of the "compiled_if" field in the mutation.
func (m *UnitMutation) CompiledIf() (r []interface{}, exists bool) {
	v := m.compiled_if
	if v == nil {
		return
	}
	return *v, true
}

// OldCompiledIf returns the old "compiled_if" field's value of the Unit entity.
// If the Unit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnitMutation) OldCompiledIf(ctx context.Context) (v []interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompiledIf is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompiledIf requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompiledIf: %w", err)
	}
	return oldValue.CompiledIf, nil
}

// AppendCompiledIf adds i to the "compiled_if" field.
func (m *UnitMutation) AppendCompiledIf(i []interface{}) {
	m.appendcompiled_if = append(m.appendcompiled_if, i...)
}

// AppendedCompiledIf returns the list of values that were appended to the "compiled_if" field in this mutation.
func (m *UnitMutation) AppendedCompiledIf() ([]interface{}, bool) {
	if len(m.appendcompiled_if) == 0 {
		return nil, false
	}
	return m.appendcompiled_if, true
}

// ClearCompiledIf clears the value of the "compiled_if" field.
func (m *UnitMutation) ClearCompiledIf() {
	m.compiled_if = nil
	m.appendcompiled_if = nil
	m.clearedFields[unit.FieldCompiledIf] = struct{}{}
}

// CompiledIfCleared returns if the "compiled_if" field was cleared in this mutation.
func (m *UnitMutation) CompiledIfCleared() bool {
	_, ok := m.clearedFields[unit.FieldCompiledIf]
	return ok
}

// ResetCompiledIf resets all changes to the "compiled_if" field.
func (m *UnitMutation) ResetCompiledIf() {
	m.compiled_if = nil
	m.appendcompiled_if = nil
	delete(m.clearedFields, unit.FieldCompiledIf)
}

// SetCompiledThen sets the "compiled_then" field.
func (m *UnitMutation) SetCompiledThen(i []interface{}) {
	m.compiled_then = &i
	m.appendcompiled_then = nil
}

// CompiledThen returns the value of the "compiled_then" field in the mutation.
func (m *UnitMutation) CompiledThen() (r []interface{}, exists bool) {
	v := m.compiled_then
	if v == nil {
		return
	}
	return *v, true
}

// OldCompiledThen returns the old "compiled_then" field's value of the Unit entity.
// If the Unit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnitMutation) OldCompiledThen(ctx context.Context) (v []interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompiledThen is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompiledThen requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompiledThen: %w", err)
	}
	return oldValue.CompiledThen, nil
}

// AppendCompiledThen adds i to the "compiled_then" field.
func (m *UnitMutation) AppendCompiledThen(i []interface{}) {
	m.appendcompiled_then = append(m.appendcompiled_then, i...)
}

// AppendedCompiledThen returns the list of values that were appended to the "compiled_then" field in this mutation.
func (m *UnitMutation) AppendedCompiledThen() ([]interface{}, bool) {
	if len(m.appendcompiled_then) == 0 {
		return nil, false
	}
	return m.appendcompiled_then, true
}

// ResetCompiledThen resets all changes to the "compiled_then" field.
func (m *UnitMutation) ResetCompiledThen() {
	m.compiled_then = nil
	m.appendcompiled_then = nil
}

// SetStatus sets the "status" field.
func (m *UnitMutation) SetStatus(u unit.Status) {
	m.status = &u
}

// Status returns the value of the "status" field in the mutation.
func (m *UnitMutation) Status() (r unit.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Unit entity.
// If the Unit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnitMutation) OldStatus(ctx context.Context) (v unit.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *UnitMutation) ResetStatus() {
	m.status = nil
}

// SetTriggerSource sets the "trigger_source" field.
func (m *UnitMutation) SetTriggerSource(s string) {
	m.trigger_source = &s
}

// TriggerSource returns the value of the "trigger_source" field in the mutation.
func (m *UnitMutation) TriggerSource() (r string, exists bool) {
	v := m.trigger_source
	if v == nil {
		return
	}
	return *v, true
}

// OldTriggerSource returns the old "trigger_source" field's value of the Unit entity.
// If the Unit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnitMutation) OldTriggerSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriggerSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriggerSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriggerSource: %w", err)
	}
	return oldValue.TriggerSource, nil
}

// ClearTriggerSource clears the value of the "trigger_source" field.
func (m *UnitMutation) ClearTriggerSource() {
	m.trigger_source = nil
	m.clearedFields[unit.FieldTriggerSource] = struct{}{}
}

// TriggerSourceCleared returns if the "trigger_source" field was cleared in this mutation.
func (m *UnitMutation) TriggerSourceCleared() bool {
	_, ok := m.clearedFields[unit.FieldTriggerSource]
	return ok
}

// ResetTriggerSource resets all changes to the "trigger_source" field.
func (m *UnitMutation) ResetTriggerSource() {
	m.trigger_source = nil
	delete(m.clearedFields, unit.FieldTriggerSource)
}

// SetTriggerEvent sets the "trigger_event" field.
func (m *UnitMutation) SetTriggerEvent(s string) {
	m.trigger_event = &s
}

// TriggerEvent returns the value of the "trigger_event" field in the mutation.
func (m *UnitMutation) TriggerEvent() (r string, exists bool) {
	v := m.trigger_event
	if v == nil {
		return
	}
	return *v, true
}

// OldTriggerEvent returns the old "trigger_event" field's value of the Unit entity.
// If the Unit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnitMutation) OldTriggerEvent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriggerEvent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriggerEvent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriggerEvent: %w", err)
	}
	return oldValue.TriggerEvent, nil
}

// ClearTriggerEvent clears the value of the "trigger_event" field.
func (m *UnitMutation) ClearTriggerEvent() {
	m.trigger_event = nil
	m.clearedFields[unit.FieldTriggerEvent] = struct{}{}
}

// TriggerEventCleared returns if the "trigger_event" field was cleared in this mutation.
func (m *UnitMutation) TriggerEventCleared() bool {
	_, ok := m.clearedFields[unit.FieldTriggerEvent]
	return ok
}

// ResetTriggerEvent resets all changes to the "trigger_event" field.
func (m *UnitMutation) ResetTriggerEvent() {
	m.trigger_event = nil
	delete(m.clearedFields, unit.FieldTriggerEvent)
}

// SetCreatedAt sets the "created_at" field.
func (m *UnitMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UnitMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Unit entity.
// If the Unit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnitMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UnitMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UnitMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UnitMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Unit entity.
// If the Unit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnitMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UnitMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the UnitMutation builder.
func (m *UnitMutation) Where(ps ...predicate.Unit) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UnitMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UnitMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Unit, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UnitMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UnitMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Unit).
func (m *UnitMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UnitMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.owner_id != nil {
		fields = append(fields, unit.FieldOwnerID)
	}
	if m.name != nil {
		fields = append(fields, unit.FieldName)
	}
	if m.raw_when != nil {
		fields = append(fields, unit.FieldRawWhen)
	}
	if m.raw_if != nil {
		fields = append(fields, unit.FieldRawIf)
	}
	if m.raw_then != nil {
		fields = append(fields, unit.FieldRawThen)
	}
	if m.compiled_when != nil {
		fields = append(fields, unit.FieldCompiledWhen)
	}
	if m.compiled_if != nil {
		fields = append(fields, unit.FieldCompiledIf)
	}
	if m.compiled_then != nil {
		fields = append(fields, unit.FieldCompiledThen)
	}
	if m.status != nil {
		fields = append(fields, unit.FieldStatus)
	}
	if m.trigger_source != nil {
		fields = append(fields, unit.FieldTriggerSource)
	}
	if m.trigger_event != nil {
		fields = append(fields, unit.FieldTriggerEvent)
	}
	if m.created_at != nil {
		fields = append(fields, unit.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, unit.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UnitMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case unit.FieldOwnerID:
		return m.OwnerID()
	case unit.FieldName:
		return m.Name()
	case unit.FieldRawWhen:
		return m.RawWhen()
	case unit.FieldRawIf:
		return m.RawIf()
	case unit.FieldRawThen:
		return m.RawThen()
	case unit.FieldCompiledWhen:
		return m.CompiledWhen()
	case unit.FieldCompiledIf:
		return m.CompiledIf()
	case unit.FieldCompiledThen:
		return m.CompiledThen()
	case unit.FieldStatus:
		return m.Status()
	case unit.FieldTriggerSource:
		return m.TriggerSource()
	case unit.FieldTriggerEvent:
		return m.TriggerEvent()
	case unit.FieldCreatedAt:
		return m.CreatedAt()
	case unit.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UnitMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case unit.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case unit.FieldName:
		return m.OldName(ctx)
	case unit.FieldRawWhen:
		return m.OldRawWhen(ctx)
	case unit.FieldRawIf:
		return m.OldRawIf(ctx)
	case unit.FieldRawThen:
		return m.OldRawThen(ctx)
	case unit.FieldCompiledWhen:
		return m.OldCompiledWhen(ctx)
	case unit.FieldCompiledIf:
		return m.OldCompiledIf(ctx)
	case unit.FieldCompiledThen:
		return m.OldCompiledThen(ctx)
	case unit.FieldStatus:
		return m.OldStatus(ctx)
	case unit.FieldTriggerSource:
		return m.OldTriggerSource(ctx)
	case unit.FieldTriggerEvent:
		return m.OldTriggerEvent(ctx)
	case unit.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case unit.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Unit field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UnitMutation) SetField(name string, value ent.Value) error {
	switch name {
	case unit.FieldOwnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case unit.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case unit.FieldRawWhen:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawWhen(v)
		return nil
	case unit.FieldRawIf:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawIf(v)
		return nil
	case unit.FieldRawThen:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawThen(v)
		return nil
	case unit.FieldCompiledWhen:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompiledWhen(v)
		return nil
	case unit.FieldCompiledIf:
		v, ok := value.([]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompiledIf(v)
		return nil
	case unit.FieldCompiledThen:
		v, ok := value.([]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompiledThen(v)
		return nil
	case unit.FieldStatus:
		v, ok := value.(unit.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case unit.FieldTriggerSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriggerSource(v)
		return nil
	case unit.FieldTriggerEvent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriggerEvent(v)
		return nil
	case unit.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case unit.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Unit field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UnitMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UnitMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UnitMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Unit numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UnitMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(unit.FieldRawWhen) {
		fields = append(fields, unit.FieldRawWhen)
	}
	if m.FieldCleared(unit.FieldRawIf) {
		fields = append(fields, unit.FieldRawIf)
	}
	if m.FieldCleared(unit.FieldRawThen) {
		fields = append(fields, unit.FieldRawThen)
	}
	if m.FieldCleared(unit.FieldCompiledIf) {
		fields = append(fields, unit.FieldCompiledIf)
	}
	if m.FieldCleared(unit.FieldTriggerSource) {
		fields = append(fields, unit.FieldTriggerSource)
	}
	if m.FieldCleared(unit.FieldTriggerEvent) {
		fields = append(fields, unit.FieldTriggerEvent)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UnitMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UnitMutation) ClearField(name string) error {
	switch name {
	case unit.FieldRawWhen:
		m.ClearRawWhen()
		return nil
	case unit.FieldRawIf:
		m.ClearRawIf()
		return nil
	case unit.FieldRawThen:
		m.ClearRawThen()
		return nil
	case unit.FieldCompiledIf:
		m.ClearCompiledIf()
		return nil
	case unit.FieldTriggerSource:
		m.ClearTriggerSource()
		return nil
	case unit.FieldTriggerEvent:
		m.ClearTriggerEvent()
		return nil
	}
	return fmt.Errorf("unknown Unit nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UnitMutation) ResetField(name string) error {
	switch name {
	case unit.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case unit.FieldName:
		m.ResetName()
		return nil
	case unit.FieldRawWhen:
		m.ResetRawWhen()
		return nil
	case unit.FieldRawIf:
		m.ResetRawIf()
		return nil
	case unit.FieldRawThen:
		m.ResetRawThen()
		return nil
	case unit.FieldCompiledWhen:
		m.ResetCompiledWhen()
		return nil
	case unit.FieldCompiledIf:
		m.ResetCompiledIf()
		return nil
	case unit.FieldCompiledThen:
		m.ResetCompiledThen()
		return nil
	case unit.FieldStatus:
		m.ResetStatus()
		return nil
	case unit.FieldTriggerSource:
		m.ResetTriggerSource()
		return nil
	case unit.FieldTriggerEvent:
		m.ResetTriggerEvent()
		return nil
	case unit.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case unit.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Unit field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UnitMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UnitMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UnitMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UnitMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UnitMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UnitMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UnitMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Unit unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UnitMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Unit edge %s", name)
}
