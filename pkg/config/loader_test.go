package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cortex.yaml"), []byte(content), 0o600))
	return dir
}

func TestInitialize(t *testing.T) {
	ctx := context.Background()

	t.Run("missing file yields defaults", func(t *testing.T) {
		cfg, err := Initialize(ctx, t.TempDir())
		require.NoError(t, err)

		assert.Equal(t, ":8080", cfg.ListenAddr)
		assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
		assert.Equal(t, "https://api.nango.dev", cfg.Gateway.BaseURL)
		assert.Equal(t, "claude-sonnet-4-5", cfg.LLM.Model)
		assert.Equal(t, 1024, cfg.LLM.MaxTokens)
		assert.Equal(t, 4, cfg.Engine.Workers)
		assert.Equal(t, 256, cfg.Engine.QueueSize)
		assert.Equal(t, time.Minute, cfg.PollInterval)
		assert.Equal(t, time.Minute, cfg.WakeInterval)
	})

	t.Run("user values override defaults", func(t *testing.T) {
		dir := writeConfig(t, `
server:
  listen_addr: ":9090"
engine:
  workers: 8
poller:
  interval: 30s
`)
		cfg, err := Initialize(ctx, dir)
		require.NoError(t, err)

		assert.Equal(t, ":9090", cfg.ListenAddr)
		assert.Equal(t, 8, cfg.Engine.Workers)
		assert.Equal(t, 30*time.Second, cfg.PollInterval)
		// Untouched sections keep their defaults.
		assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
		assert.Equal(t, time.Minute, cfg.WakeInterval)
	})

	t.Run("environment expansion and secret indirection", func(t *testing.T) {
		t.Setenv("TEST_REDIS_HOST", "redis.internal:6380")
		t.Setenv("TEST_NANGO_KEY", "sk-nango")
		dir := writeConfig(t, `
redis:
  addr: "{{.TEST_REDIS_HOST}}"
gateway:
  secret_key_env: TEST_NANGO_KEY
`)
		cfg, err := Initialize(ctx, dir)
		require.NoError(t, err)

		assert.Equal(t, "redis.internal:6380", cfg.Redis.Addr)
		assert.Equal(t, "sk-nango", cfg.Gateway.SecretKey)
	})

	t.Run("unset env var expands to empty", func(t *testing.T) {
		dir := writeConfig(t, `
redis:
  password: "{{.TEST_UNSET_PASSWORD}}"
`)
		cfg, err := Initialize(ctx, dir)
		require.NoError(t, err)
		assert.Empty(t, cfg.Redis.Password)
	})

	t.Run("invalid duration rejected", func(t *testing.T) {
		dir := writeConfig(t, `
poller:
  interval: soon
`)
		_, err := Initialize(ctx, dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "poller.interval")
	})

	t.Run("invalid yaml rejected", func(t *testing.T) {
		dir := writeConfig(t, "server: [listen_addr")
		_, err := Initialize(ctx, dir)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidYAML))
	})

	t.Run("validation failures surface the field", func(t *testing.T) {
		dir := writeConfig(t, `
llm:
  max_tokens: -1
`)
		_, err := Initialize(ctx, dir)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidationFailed)
		assert.Contains(t, err.Error(), "max_tokens")
	})
}
