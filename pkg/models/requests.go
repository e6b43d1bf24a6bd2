package models

import "github.com/cortexhq/cortex/ent"

// CreateUnitRequest is the body of POST /api/cortex/units. Either Prompt is
// set (raw natural language) or the structured when/then fields are.
type CreateUnitRequest struct {
	Prompt string `json:"prompt,omitempty"`

	Name string      `json:"name,omitempty"`
	When *Trigger    `json:"when,omitempty"`
	If   []Condition `json:"if,omitempty"`
	Then []Action    `json:"then,omitempty"`
}

// UpdateUnitStatusRequest is the body of PATCH /api/cortex/units/:id/status.
type UpdateUnitStatusRequest struct {
	Status string `json:"status"`
}

// RegisterConnectionRequest is the body of POST /api/connections.
type RegisterConnectionRequest struct {
	Provider     string `json:"provider"`
	ConnectionID string `json:"connectionId"`
}

// WebhookPayload is the gateway webhook body (POST /api/webhooks/nango).
// ResponseResults counts tolerate both numeric and array shapes.
type WebhookPayload struct {
	Type              string           `json:"type"`
	ConnectionID      string           `json:"connectionId"`
	ProviderConfigKey string           `json:"providerConfigKey,omitempty"`
	Model             string           `json:"model,omitempty"`
	SyncName          string           `json:"syncName,omitempty"`
	ResponseResults   *ResponseCounts  `json:"responseResults,omitempty"`
	Records           []map[string]any `json:"records,omitempty"`
}

// ResponseCounts holds added/updated/deleted either as numbers or as the
// record arrays themselves.
type ResponseCounts struct {
	Added   any `json:"added,omitempty"`
	Updated any `json:"updated,omitempty"`
	Deleted any `json:"deleted,omitempty"`
}

// RunDetail pairs a run with its audit steps (GET /api/cortex/runs/:id).
type RunDetail struct {
	Run   *ent.Run       `json:"run"`
	Steps []*ent.RunStep `json:"steps"`
}

// EngineMetrics is the GET /api/cortex/metrics response.
type EngineMetrics struct {
	ActiveUnits        int `json:"active_units"`
	RunsLastHour       int `json:"runs_last_hour"`
	EnabledConnections int `json:"enabled_connections"`
}
