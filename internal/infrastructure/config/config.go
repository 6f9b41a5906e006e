// Package config loads process configuration from the environment.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all process configuration.
type Config struct {
	Server    ServerConfig
	Init      InitConfig
	Logging   LogConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds HTTP status API configuration.
type ServerConfig struct {
	Port    string `envconfig:"PORT" default:"9600"`
	Host    string `envconfig:"HOST" default:"0.0.0.0"`
	Enabled bool   `envconfig:"API_ENABLED" default:"true"`
}

// InitConfig holds service manifest configuration.
type InitConfig struct {
	ManifestPath string `envconfig:"MANIFEST_PATH" default:"/etc/limitless/services.yaml"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// RateLimitConfig holds status API rate limiting configuration.
type RateLimitConfig struct {
	RequestsPerSecond int  `envconfig:"RATE_LIMIT_RPS" default:"100"`
	Burst             int  `envconfig:"RATE_LIMIT_BURST" default:"200"`
	Enabled           bool `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:    "9600",
			Host:    "0.0.0.0",
			Enabled: true,
		},
		Init: InitConfig{
			ManifestPath: "/etc/limitless/services.yaml",
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 100,
			Burst:             200,
			Enabled:           true,
		},
	}
}
