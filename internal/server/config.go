// Package server provides configuration helpers that define the listen port
// default and its environment override.
package server

import (
	"log"
	"os"
	"strconv"
	"strings"
)

const (
	// DefaultPort is used when PORT is unset, empty, or invalid.
	DefaultPort = "3000"
	// PortEnvVar names the environment variable holding the listen port.
	PortEnvVar = "PORT"
)

// Config holds the server configuration settings.
type Config struct {
	Port string
}

// NewConfig creates a Config instance populated with default values.
func NewConfig() *Config {
	return &Config{Port: DefaultPort}
}

// NewConfigFromEnv creates a Config instance from environment variables.
// Falls back to default values if environment variables are not set.
func NewConfigFromEnv() *Config {
	cfg := NewConfig()

	if port := os.Getenv(PortEnvVar); port != "" {
		cfg.Port = parsePort(port, cfg.Port)
	}

	return cfg
}

// Addr returns the listen address for all interfaces on the configured port.
func (c *Config) Addr() string {
	return ":" + c.Port
}

func parsePort(value, defaultValue string) string {
	trimmed := strings.TrimSpace(value)
	if port, err := strconv.Atoi(trimmed); err == nil && port > 0 && port <= 65535 {
		return strconv.Itoa(port)
	}
	log.Printf("Ignoring invalid %s value %q, using %s", PortEnvVar, value, defaultValue)
	return defaultValue
}
