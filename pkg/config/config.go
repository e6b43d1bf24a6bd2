// Package config loads the engine's configuration from cortex.yaml, with
// environment variables expanded via {{.VAR}} templates and built-in
// defaults merged underneath. Database settings come from the environment
// directly (see pkg/database).
package config

import "time"

// Config is the resolved, validated engine configuration.
type Config struct {
	// ListenAddr is the HTTP listen address of the API server.
	ListenAddr string

	// Redis connects the ephemeral store.
	Redis RedisConfig

	// Gateway connects the provider gateway.
	Gateway GatewayConfig

	// LLM configures the model used for actions and rule compilation.
	LLM LLMConfig

	// Engine sizes the dispatch queue and worker pool.
	Engine EngineConfig

	// PollInterval is the provider pull period.
	PollInterval time.Duration

	// WakeInterval is the scheduler's wake-scan period.
	WakeInterval time.Duration
}

// RedisConfig holds ephemeral store settings.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// GatewayConfig holds provider gateway settings.
type GatewayConfig struct {
	BaseURL   string
	SecretKey string
}

// LLMConfig holds model settings.
type LLMConfig struct {
	Model     string
	MaxTokens int
	APIKey    string
}

// EngineConfig sizes run execution.
type EngineConfig struct {
	Workers   int
	QueueSize int
}
