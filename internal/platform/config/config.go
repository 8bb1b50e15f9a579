// Package config loads application configuration from environment variables.
// All variables use the AULA_ prefix.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port int
	Host string
}

// DatabaseConfig holds PostgreSQL connection settings. URL and Name have
// no defaults: their absence is startup-fatal.
type DatabaseConfig struct {
	URL      string
	Name     string
	MaxConns int
	MinConns int
}

// Load reads configuration from environment variables with AULA_ prefix.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: envInt("AULA_SERVER_PORT", 8080),
			Host: envStr("AULA_SERVER_HOST", "0.0.0.0"),
		},
		Database: DatabaseConfig{
			URL:      envStr("AULA_DATABASE_URL", ""),
			Name:     envStr("AULA_DATABASE_NAME", ""),
			MaxConns: envInt("AULA_DATABASE_MAX_CONNS", 25),
			MinConns: envInt("AULA_DATABASE_MIN_CONNS", 5),
		},
	}

	return cfg, nil
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	if c.Database.URL == "" {
		return fmt.Errorf("AULA_DATABASE_URL is required")
	}
	if c.Database.Name == "" {
		return fmt.Errorf("AULA_DATABASE_NAME is required")
	}
	return nil
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
