// Package tools is the ToolExecutor: it maps stable "provider.action" keys
// onto provider API calls proxied through the gateway, resolving the acting
// user's connection first. Retries on transient upstream failures and rate
// limiting are the gateway's responsibility.
package tools

import (
	"context"
	"fmt"
	"log/slog"
)

// GatewayProxy is the subset of the gateway client the executor uses.
type GatewayProxy interface {
	Proxy(ctx context.Context, providerConfigKey, connectionID, method, path string, body any) (any, error)
}

// ConnectionResolver resolves a user's connection id for a provider.
// Implemented by the store.
type ConnectionResolver interface {
	ConnectionIDFor(ctx context.Context, userID, provider string) (string, error)
}

// Executor is the contract the runtime relies on: execute one
// (tool, args, user) call, returning the tool's data or an error with a
// human-readable message.
type Executor interface {
	Execute(ctx context.Context, tool string, args map[string]any, userID string) (any, error)
}

// GatewayExecutor implements Executor over the provider gateway.
type GatewayExecutor struct {
	gateway     GatewayProxy
	connections ConnectionResolver
}

// NewGatewayExecutor creates an executor.
func NewGatewayExecutor(gw GatewayProxy, conns ConnectionResolver) *GatewayExecutor {
	return &GatewayExecutor{
		gateway:     gw,
		connections: conns,
	}
}

// Execute runs one tool call.
//
// Flow:
//  1. Validate the "provider.action" key format.
//  2. Resolve the key against the fixed registry; unknown keys fail.
//  3. Resolve the user's connection for the tool's provider.
//  4. Fill path placeholders from args, proxy the call via the gateway.
//  5. Return the gateway's decoded response verbatim.
func (e *GatewayExecutor) Execute(ctx context.Context, tool string, args map[string]any, userID string) (any, error) {
	if _, _, err := SplitToolName(tool); err != nil {
		return nil, err
	}

	spec, ok := lookupTool(tool)
	if !ok {
		return nil, fmt.Errorf("Unknown tool: %s", tool)
	}

	connectionID, err := e.connections.ConnectionIDFor(ctx, userID, spec.Provider)
	if err != nil {
		return nil, fmt.Errorf("resolving %s connection for user %s: %w", spec.Provider, userID, err)
	}
	if connectionID == "" {
		return nil, fmt.Errorf("no %s connection registered for user %s", spec.Provider, userID)
	}

	path, body := expandPath(spec.Path, args)

	slog.Debug("Executing tool",
		"tool", tool, "user_id", userID, "provider", spec.Provider)

	result, err := e.gateway.Proxy(ctx, spec.Provider, connectionID, spec.Method, path, body)
	if err != nil {
		return nil, fmt.Errorf("tool %s failed: %w", tool, err)
	}
	return result, nil
}
