// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the configuration for the jotter API.
type Config struct {
	Port int `envconfig:"PORT" default:"8080"`

	// Postgres connection settings
	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     int    `envconfig:"DB_PORT" default:"5432"`
	DBDatabase string `envconfig:"DB_DATABASE" default:"jotter"`
	DBUsername string `envconfig:"DB_USERNAME" default:"postgres"`
	DBPassword string `envconfig:"DB_PASSWORD" default:""`
	DBSchema   string `envconfig:"DB_SCHEMA" default:"public"`

	JWTSecret string `envconfig:"JWT_SECRET" default:"secret"`

	// GeminiAPIKey toggles real summarization. An empty key is a supported
	// state: the service falls back to a deterministic mock summarizer.
	GeminiAPIKey     string        `envconfig:"GEMINI_API_KEY" default:""`
	GeminiModel      string        `envconfig:"GEMINI_MODEL" default:"gemini-1.5-flash"`
	SummarizeTimeout time.Duration `envconfig:"SUMMARIZE_TIMEOUT" default:"30s"`

	CORSOrigins string `envconfig:"CORS_ORIGINS" default:"http://localhost:5173"`
}

// Load parses configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	return cfg, nil
}

// DatabaseURL builds the Postgres connection string.
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable&search_path=%s",
		c.DBUsername, c.DBPassword, c.DBHost, c.DBPort, c.DBDatabase, c.DBSchema)
}
