package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config is the top-level application configuration.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Cache    CacheConfig    `koanf:"cache"`
	Auth     AuthConfig     `koanf:"auth"`
	AI       AIConfig       `koanf:"ai"`
}

type ServerConfig struct {
	Port int    `koanf:"port"`
	Host string `koanf:"host"`
	Mode string `koanf:"mode"` // debug | release
}

type DatabaseConfig struct {
	DSN          string `koanf:"dsn"`
	MaxOpenConns int    `koanf:"max_open_conns"`
	MaxIdleConns int    `koanf:"max_idle_conns"`
	AutoMigrate  bool   `koanf:"auto_migrate"`
}

type CacheConfig struct {
	TTL           string `koanf:"ttl"`
	SweepInterval string `koanf:"sweep_interval"`
}

type AuthConfig struct {
	// Token is the static bearer credential compared by exact match.
	Token string `koanf:"token"`
}

type AIConfig struct {
	Provider    string `koanf:"provider"` // openai | gemini
	OpenAIKey   string `koanf:"openai_key"`
	OpenAIModel string `koanf:"openai_model"`
	GeminiKey   string `koanf:"gemini_key"`
	GeminiModel string `koanf:"gemini_model"`
}

// TTLDuration returns the parsed cache TTL. Only valid after Validate.
func (c CacheConfig) TTLDuration() time.Duration {
	d, _ := time.ParseDuration(c.TTL)
	return d
}

// SweepDuration returns the parsed janitor interval. Only valid after Validate.
func (c CacheConfig) SweepDuration() time.Duration {
	d, _ := time.ParseDuration(c.SweepInterval)
	return d
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d (must be 1-65535)", c.Server.Port)
	}
	if strings.TrimSpace(c.Server.Host) == "" {
		return fmt.Errorf("server.host is required")
	}
	if c.Server.Mode != "debug" && c.Server.Mode != "release" {
		return fmt.Errorf("invalid server.mode %q (must be debug or release)", c.Server.Mode)
	}

	if strings.TrimSpace(c.Database.DSN) == "" {
		return fmt.Errorf("database.dsn is required")
	}
	if c.Database.MaxOpenConns <= 0 {
		return fmt.Errorf("database.max_open_conns must be > 0")
	}
	if c.Database.MaxIdleConns <= 0 {
		return fmt.Errorf("database.max_idle_conns must be > 0")
	}

	ttl, err := time.ParseDuration(c.Cache.TTL)
	if err != nil {
		return fmt.Errorf("invalid cache.ttl %q: %w", c.Cache.TTL, err)
	}
	if ttl <= 0 {
		return fmt.Errorf("cache.ttl must be > 0")
	}
	sweep, err := time.ParseDuration(c.Cache.SweepInterval)
	if err != nil {
		return fmt.Errorf("invalid cache.sweep_interval %q: %w", c.Cache.SweepInterval, err)
	}
	if sweep <= 0 {
		return fmt.Errorf("cache.sweep_interval must be > 0")
	}

	if strings.TrimSpace(c.Auth.Token) == "" {
		return fmt.Errorf("auth.token is required")
	}

	if c.AI.Provider != "openai" && c.AI.Provider != "gemini" {
		return fmt.Errorf("invalid ai.provider %q (must be openai or gemini)", c.AI.Provider)
	}

	return nil
}

// Load parses config from file + env and validates it. Environment variables
// use the TECHFINANCE_ prefix with "__" as the nesting separator, e.g.
// TECHFINANCE_DATABASE__DSN overrides database.dsn.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	defaults := map[string]interface{}{
		"server.port":             8080,
		"server.host":             "0.0.0.0",
		"server.mode":             "release",
		"database.dsn":            "",
		"database.max_open_conns": 25,
		"database.max_idle_conns": 25,
		"database.auto_migrate":   true,
		"cache.ttl":               "1h",
		"cache.sweep_interval":    "10m",
		"auth.token":              "",
		"ai.provider":             "openai",
		"ai.openai_key":           "",
		"ai.openai_model":         "gpt-4o-mini",
		"ai.gemini_key":           "",
		"ai.gemini_model":         "gemini-2.0-flash",
	}
	for key, value := range defaults {
		k.Set(key, value)
	}

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	if err := k.Load(env.Provider("TECHFINANCE_", ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, "TECHFINANCE_")), "__", ".", -1)
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
