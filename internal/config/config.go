package config

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
)

// Config is the top-level configuration structure.
type Config struct {
	Server   ServerConfig   `json:"server"`
	Catalog  CatalogConfig  `json:"catalog"`
	Gateway  GatewayConfig  `json:"gateway"`
	Database DatabaseConfig `json:"database"`
	Metrics  MetricsConfig  `json:"metrics"`
}

type ServerConfig struct {
	Port     int    `json:"port"`
	LogLevel string `json:"log_level"`
}

// CatalogConfig points at an optional JSON role catalog. When Path is
// empty and no database catalog exists, the builtin catalog is used.
type CatalogConfig struct {
	Path string `json:"path"`
}

type GatewayConfig struct {
	Slack   SlackGatewayConfig   `json:"slack"`
	Discord DiscordGatewayConfig `json:"discord"`
}

type SlackGatewayConfig struct {
	Enabled  bool   `json:"enabled"`
	BotToken string `json:"bot_token"`
	AppToken string `json:"app_token"`
}

type DiscordGatewayConfig struct {
	Enabled  bool   `json:"enabled"`
	BotToken string `json:"bot_token"`
}

type DatabaseConfig struct {
	Postgres PostgresConfig `json:"postgres"`
}

type PostgresConfig struct {
	DSN string `json:"dsn"`
}

type MetricsConfig struct {
	Enabled bool `json:"enabled"`
}

// envVarRe matches ${VAR} and ${VAR:default} patterns.
var envVarRe = regexp.MustCompile(`\$\{(\w+)(?::([^}]*))?\}`)

// Load reads a JSON config file and substitutes environment variable references.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	// Substitute ${VAR} and ${VAR:default} with environment values.
	resolved := envVarRe.ReplaceAllStringFunc(string(data), func(match string) string {
		parts := envVarRe.FindStringSubmatch(match)
		name := parts[1]
		defaultVal := parts[2]
		if v := os.Getenv(name); v != "" {
			return v
		}
		return defaultVal
	})

	var cfg Config
	if err := json.Unmarshal([]byte(resolved), &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}
