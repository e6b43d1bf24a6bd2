// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/cortexhq/cortex/ent/connection"
	"github.com/cortexhq/cortex/ent/run"
	"github.com/cortexhq/cortex/ent/runstep"
	"github.com/cortexhq/cortex/ent/schema"
	"github.com/cortexhq/cortex/ent/unit"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	connectionFields := schema.Connection{}.Fields()
	_ = connectionFields
	// connectionDescEnabled is the schema descriptor for enabled field.
	connectionDescEnabled := connectionFields[4].Descriptor()
	// connection.DefaultEnabled holds the default value on creation for the enabled field.
	connection.DefaultEnabled = connectionDescEnabled.Default.(bool)
	// connectionDescErrorCount is the schema descriptor for error_count field.
	connectionDescErrorCount := connectionFields[6].Descriptor()
	// connection.DefaultErrorCount holds the default value on creation for the error_count field.
	connection.DefaultErrorCount = connectionDescErrorCount.Default.(int)
	// connectionDescCreatedAt is the schema descriptor for created_at field.
	connectionDescCreatedAt := connectionFields[8].Descriptor()
	// connection.DefaultCreatedAt holds the default value on creation for the created_at field.
	connection.DefaultCreatedAt = connectionDescCreatedAt.Default.(func() time.Time)
	runFields := schema.Run{}.Fields()
	_ = runFields
	// runDescCurrentStep is the schema descriptor for current_step field.
	runDescCurrentStep := runFields[5].Descriptor()
	// run.DefaultCurrentStep holds the default value on creation for the current_step field.
	run.DefaultCurrentStep = runDescCurrentStep.Default.(int)
	// runDescStartedAt is the schema descriptor for started_at field.
	runDescStartedAt := runFields[7].Descriptor()
	// run.DefaultStartedAt holds the default value on creation for the started_at field.
	run.DefaultStartedAt = runDescStartedAt.Default.(func() time.Time)
	runstepFields := schema.RunStep{}.Fields()
	_ = runstepFields
	// runstepDescStartedAt is the schema descriptor for started_at field.
	runstepDescStartedAt := runstepFields[8].Descriptor()
	// runstep.DefaultStartedAt holds the default value on creation for the started_at field.
	runstep.DefaultStartedAt = runstepDescStartedAt.Default.(func() time.Time)
	unitFields := schema.Unit{}.Fields()
	_ = unitFields
	// unitDescCreatedAt is the schema descriptor for created_at field.
	unitDescCreatedAt := unitFields[12].Descriptor()
	// unit.DefaultCreatedAt holds the default value on creation for the created_at field.
	unit.DefaultCreatedAt = unitDescCreatedAt.Default.(func() time.Time)
	// unitDescUpdatedAt is the schema descriptor for updated_at field.
	unitDescUpdatedAt := unitFields[13].Descriptor()
	// unit.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	unit.DefaultUpdatedAt = unitDescUpdatedAt.Default.(func() time.Time)
	// unit.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	unit.UpdateDefaultUpdatedAt = unitDescUpdatedAt.UpdateDefault.(func() time.Time)
}
