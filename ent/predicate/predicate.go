// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Connection is the predicate function for connection builders.
type Connection func(*sql.Selector)

// Run is the predicate function for run builders.
type Run func(*sql.Selector)

// RunStep is the predicate function for runstep builders.
type RunStep func(*sql.Selector)

// Unit is the predicate function for unit builders.
type Unit func(*sql.Selector)
