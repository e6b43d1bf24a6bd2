// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ConnectionsColumns holds the columns for the "connections" table.
	ConnectionsColumns = []*schema.Column{
		{Name: "connection_row_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "provider", Type: field.TypeString},
		{Name: "connection_id", Type: field.TypeString},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "last_poll_at", Type: field.TypeTime, Nullable: true},
		{Name: "error_count", Type: field.TypeInt, Default: 0},
		{Name: "last_error", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ConnectionsTable holds the schema information for the "connections" table.
	ConnectionsTable = &schema.Table{
		Name:       "connections",
		Columns:    ConnectionsColumns,
		PrimaryKey: []*schema.Column{ConnectionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "connection_user_id_provider",
				Unique:  true,
				Columns: []*schema.Column{ConnectionsColumns[1], ConnectionsColumns[2]},
			},
			{
				Name:    "connection_enabled",
				Unique:  false,
				Columns: []*schema.Column{ConnectionsColumns[4]},
			},
			{
				Name:    "connection_connection_id",
				Unique:  false,
				Columns: []*schema.Column{ConnectionsColumns[3]},
			},
		},
	}
	// RunsColumns holds the columns for the "runs" table.
	RunsColumns = []*schema.Column{
		{Name: "run_id", Type: field.TypeString, Unique: true},
		{Name: "unit_id", Type: field.TypeString},
		{Name: "event_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "waiting", "success", "failed", "cancelled"}, Default: "pending"},
		{Name: "current_step", Type: field.TypeInt, Default: 0},
		{Name: "context", Type: field.TypeJSON},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "resume_at", Type: field.TypeTime, Nullable: true},
		{Name: "error", Type: field.TypeString, Nullable: true},
		{Name: "original_event_payload", Type: field.TypeJSON, Nullable: true},
	}
	// RunsTable holds the schema information for the "runs" table.
	RunsTable = &schema.Table{
		Name:       "runs",
		Columns:    RunsColumns,
		PrimaryKey: []*schema.Column{RunsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "run_unit_id_event_id",
				Unique:  true,
				Columns: []*schema.Column{RunsColumns[1], RunsColumns[2]},
			},
			{
				Name:    "run_user_id_started_at",
				Unique:  false,
				Columns: []*schema.Column{RunsColumns[3], RunsColumns[7]},
			},
			{
				Name:    "run_status",
				Unique:  false,
				Columns: []*schema.Column{RunsColumns[4]},
			},
		},
	}
	// RunStepsColumns holds the columns for the "run_steps" table.
	RunStepsColumns = []*schema.Column{
		{Name: "run_step_id", Type: field.TypeString, Unique: true},
		{Name: "step_index", Type: field.TypeInt},
		{Name: "action_type", Type: field.TypeString},
		{Name: "action_config", Type: field.TypeJSON},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"started", "success", "failed"}, Default: "started"},
		{Name: "result", Type: field.TypeJSON, Nullable: true},
		{Name: "error", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "run_id", Type: field.TypeString},
	}
	// RunStepsTable holds the schema information for the "run_steps" table.
	RunStepsTable = &schema.Table{
		Name:       "run_steps",
		Columns:    RunStepsColumns,
		PrimaryKey: []*schema.Column{RunStepsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "run_steps_runs_steps",
				Columns:    []*schema.Column{RunStepsColumns[9]},
				RefColumns: []*schema.Column{RunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "runstep_run_id_step_index",
				Unique:  true,
				Columns: []*schema.Column{RunStepsColumns[9], RunStepsColumns[1]},
			},
		},
	}
	// UnitsColumns holds the columns for the "units" table.
	UnitsColumns = []*schema.Column{
		{Name: "unit_id", Type: field.TypeString, Unique: true},
		{Name: "owner_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "raw_when", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "raw_if", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "raw_then", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "compiled_when", Type: field.TypeJSON},
		{Name: "compiled_if", Type: field.TypeJSON, Nullable: true},
		{Name: "compiled_then", Type: field.TypeJSON},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "paused", "disabled"}, Default: "active"},
		{Name: "trigger_source", Type: field.TypeString, Nullable: true},
		{Name: "trigger_event", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UnitsTable holds the schema information for the "units" table.
	UnitsTable = &schema.Table{
		Name:       "units",
		Columns:    UnitsColumns,
		PrimaryKey: []*schema.Column{UnitsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "unit_owner_id",
				Unique:  false,
				Columns: []*schema.Column{UnitsColumns[1]},
			},
			{
				Name:    "unit_trigger_source_trigger_event_status",
				Unique:  false,
				Columns: []*schema.Column{UnitsColumns[10], UnitsColumns[11], UnitsColumns[9]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ConnectionsTable,
		RunsTable,
		RunStepsTable,
		UnitsTable,
	}
)

func init() {
	RunStepsTable.ForeignKeys[0].RefTable = RunsTable
}
