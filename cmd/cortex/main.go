// Cortex automation engine server — ingests provider events over webhooks
// and polling, matches them to user-defined units, and executes their action
// chains durably.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/cortexhq/cortex/pkg/api"
	"github.com/cortexhq/cortex/pkg/cache"
	"github.com/cortexhq/cortex/pkg/compiler"
	"github.com/cortexhq/cortex/pkg/config"
	"github.com/cortexhq/cortex/pkg/database"
	"github.com/cortexhq/cortex/pkg/engine"
	"github.com/cortexhq/cortex/pkg/gateway"
	"github.com/cortexhq/cortex/pkg/llm"
	"github.com/cortexhq/cortex/pkg/matcher"
	"github.com/cortexhq/cortex/pkg/poller"
	"github.com/cortexhq/cortex/pkg/runtime"
	"github.com/cortexhq/cortex/pkg/scheduler"
	"github.com/cortexhq/cortex/pkg/shaper"
	"github.com/cortexhq/cortex/pkg/store"
	"github.com/cortexhq/cortex/pkg/tools"
	"github.com/cortexhq/cortex/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Initialize database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Initialize ephemeral store
	cacheClient, err := cache.New(ctx, cache.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		slog.Error("Failed to connect to Redis", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := cacheClient.Close(); err != nil {
			slog.Error("Error closing cache client", "error", err)
		}
	}()
	slog.Info("Connected to Redis", "addr", cfg.Redis.Addr)

	st := store.New(dbClient.Client, cacheClient)

	// 4. External collaborators: LLM and provider gateway
	llmClient, err := llm.NewFromAPIKey(cfg.LLM.APIKey, llm.Options{
		Model:     cfg.LLM.Model,
		MaxTokens: int64(cfg.LLM.MaxTokens),
	})
	if err != nil {
		slog.Error("Failed to initialize LLM client", "error", err)
		os.Exit(1)
	}
	gatewayClient := gateway.NewClient(cfg.Gateway.BaseURL, cfg.Gateway.SecretKey)
	slog.Info("External clients initialized", "llm_model", cfg.LLM.Model)

	// 5. Execution core
	toolExecutor := tools.NewGatewayExecutor(gatewayClient, st)
	rt := runtime.New(st, llmClient, toolExecutor)
	m := matcher.New(st)
	eng := engine.New(st, m, rt, cfg.Engine.Workers, cfg.Engine.QueueSize)
	eng.Start()
	defer eng.Stop()

	// 6. Intake: shaper (webhooks) and poller share the engine's intake path
	sh := shaper.New(st, eng.ProcessEvent)
	poll := poller.New(st, gatewayClient, eng.ProcessEvent, cfg.PollInterval)
	poll.Start()
	defer poll.Stop()

	// 7. Scheduler wakes waiting runs onto the engine's workers
	sched := scheduler.New(st, eng.Dispatch, cfg.WakeInterval)
	sched.Start()
	defer sched.Stop()

	// 8. Startup recovery: re-dispatch runs stranded by the previous process
	if err := eng.Recover(ctx); err != nil {
		slog.Error("Startup recovery failed", "error", err)
		// Non-fatal — stranded runs surface on the next restart
	}

	// 9. HTTP server
	comp := compiler.New(llmClient)
	httpServer := api.NewServer(st, dbClient, comp, rt, eng, sh)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", cfg.ListenAddr)
		if err := httpServer.Start(cfg.ListenAddr); err != nil {
			errCh <- err
		}
	}()

	slog.Info("Cortex started", "version", version.Full(), "workers", cfg.Engine.Workers)

	// 10. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 11. Graceful shutdown: stop intake first, then drain HTTP
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
