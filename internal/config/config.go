package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/pep299/insight-agent/internal/analyzer"
)

const (
	ServiceName = "insight-agent"
	Version     = "1.0.0"
)

// Config holds all configuration for the application
type Config struct {
	// Server settings
	Port string `json:"port"`
	Host string `json:"host"`

	// Input limit, fixed rather than read from the environment
	MaxTextLength int `json:"max_text_length"`
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Load .env file if exists
	_ = godotenv.Load()

	config := &Config{
		Port:          getEnvOrDefault("PORT", "8080"),
		Host:          "0.0.0.0",
		MaxTextLength: analyzer.MaxTextLength,
	}

	return config, config.validate()
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}

// validate checks that the configured values are usable
func (c *Config) validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil {
		return &ConfigError{Field: "PORT", Message: "must be a number"}
	}
	if port < 1 || port > 65535 {
		return &ConfigError{Field: "PORT", Message: "must be between 1 and 65535"}
	}
	return nil
}

// getEnvOrDefault returns environment variable value or default if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
