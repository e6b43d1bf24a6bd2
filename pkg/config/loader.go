package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// cortexYAML is the cortex.yaml file structure. Secrets are referenced by
// environment variable name, never stored inline.
type cortexYAML struct {
	Server struct {
		ListenAddr string `yaml:"listen_addr"`
	} `yaml:"server"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`
	Gateway struct {
		BaseURL      string `yaml:"base_url"`
		SecretKeyEnv string `yaml:"secret_key_env"`
	} `yaml:"gateway"`
	LLM struct {
		Model     string `yaml:"model"`
		MaxTokens int    `yaml:"max_tokens"`
		APIKeyEnv string `yaml:"api_key_env"`
	} `yaml:"llm"`
	Engine struct {
		Workers   int `yaml:"workers"`
		QueueSize int `yaml:"queue_size"`
	} `yaml:"engine"`
	Poller struct {
		Interval string `yaml:"interval"`
	} `yaml:"poller"`
	Scheduler struct {
		Interval string `yaml:"interval"`
	} `yaml:"scheduler"`
}

func builtinDefaults() cortexYAML {
	var d cortexYAML
	d.Server.ListenAddr = ":8080"
	d.Redis.Addr = "localhost:6379"
	d.Gateway.BaseURL = "https://api.nango.dev"
	d.Gateway.SecretKeyEnv = "NANGO_SECRET_KEY"
	d.LLM.Model = "claude-sonnet-4-5"
	d.LLM.MaxTokens = 1024
	d.LLM.APIKeyEnv = "ANTHROPIC_API_KEY"
	d.Engine.Workers = 4
	d.Engine.QueueSize = 256
	d.Poller.Interval = "60s"
	d.Scheduler.Interval = "60s"
	return d
}

// Initialize loads, validates, and returns ready-to-use configuration.
//
// Steps performed:
//  1. Read cortex.yaml from configDir (a missing file means pure defaults)
//  2. Expand environment variables
//  3. Merge user values over built-in defaults
//  4. Resolve durations and secret references
//  5. Validate
func Initialize(_ context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	raw, err := loadYAML(configDir, "cortex.yaml")
	if err != nil {
		return nil, err
	}

	cfg, err := resolve(raw)
	if err != nil {
		return nil, err
	}
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	log.Info("Configuration initialized",
		"listen_addr", cfg.ListenAddr,
		"redis_addr", cfg.Redis.Addr,
		"llm_model", cfg.LLM.Model,
		"workers", cfg.Engine.Workers)
	return cfg, nil
}

func loadYAML(configDir, filename string) (cortexYAML, error) {
	merged := builtinDefaults()

	path := filepath.Join(configDir, filename)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Info("No configuration file, using defaults", "path", path)
			return merged, nil
		}
		return merged, NewLoadError(filename, err)
	}

	data = ExpandEnv(data)

	var user cortexYAML
	if err := yaml.Unmarshal(data, &user); err != nil {
		return merged, NewLoadError(filename, fmt.Errorf("%w: %v", ErrInvalidYAML, err))
	}

	// Non-zero user values override defaults.
	if err := mergo.Merge(&merged, user, mergo.WithOverride); err != nil {
		return merged, NewLoadError(filename, err)
	}
	return merged, nil
}

func resolve(raw cortexYAML) (*Config, error) {
	pollInterval, err := parseInterval("poller.interval", raw.Poller.Interval)
	if err != nil {
		return nil, err
	}
	wakeInterval, err := parseInterval("scheduler.interval", raw.Scheduler.Interval)
	if err != nil {
		return nil, err
	}

	return &Config{
		ListenAddr: raw.Server.ListenAddr,
		Redis: RedisConfig{
			Addr:     raw.Redis.Addr,
			Password: raw.Redis.Password,
			DB:       raw.Redis.DB,
		},
		Gateway: GatewayConfig{
			BaseURL:   raw.Gateway.BaseURL,
			SecretKey: os.Getenv(raw.Gateway.SecretKeyEnv),
		},
		LLM: LLMConfig{
			Model:     raw.LLM.Model,
			MaxTokens: raw.LLM.MaxTokens,
			APIKey:    os.Getenv(raw.LLM.APIKeyEnv),
		},
		Engine: EngineConfig{
			Workers:   raw.Engine.Workers,
			QueueSize: raw.Engine.QueueSize,
		},
		PollInterval: pollInterval,
		WakeInterval: wakeInterval,
	}, nil
}

func parseInterval(field, value string) (time.Duration, error) {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q: %w", field, value, err)
	}
	return d, nil
}

func validate(cfg *Config) error {
	if cfg.ListenAddr == "" {
		return fmt.Errorf("server.listen_addr is required")
	}
	if cfg.Redis.Addr == "" {
		return fmt.Errorf("redis.addr is required")
	}
	if cfg.LLM.Model == "" {
		return fmt.Errorf("llm.model is required")
	}
	if cfg.LLM.MaxTokens <= 0 {
		return fmt.Errorf("llm.max_tokens must be positive")
	}
	if cfg.Engine.Workers <= 0 {
		return fmt.Errorf("engine.workers must be positive")
	}
	if cfg.Engine.QueueSize <= 0 {
		return fmt.Errorf("engine.queue_size must be positive")
	}
	if cfg.PollInterval <= 0 {
		return fmt.Errorf("poller.interval must be positive")
	}
	if cfg.WakeInterval <= 0 {
		return fmt.Errorf("scheduler.interval must be positive")
	}
	return nil
}
