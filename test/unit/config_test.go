package unit

import (
	"testing"

	"github.com/Tyrowin/hello-server/internal/server"
)

// TestNewConfig verifies that NewConfig returns the default port.
func TestNewConfig(t *testing.T) {
	config := server.NewConfig()

	if config == nil {
		t.Fatal("NewConfig returned nil")
	}

	if config.Port != server.DefaultPort {
		t.Errorf("Expected default port %s, got %s", server.DefaultPort, config.Port)
	}

	if config.Addr() != ":3000" {
		t.Errorf("Expected address :3000, got %s", config.Addr())
	}
}

// TestNewConfigFromEnv covers the PORT override and its fallbacks.
func TestNewConfigFromEnv(t *testing.T) {
	tests := []struct {
		name         string
		value        string
		expectedPort string
	}{
		{name: "unset", value: "", expectedPort: "3000"},
		{name: "explicit port", value: "8081", expectedPort: "8081"},
		{name: "surrounding whitespace", value: " 4000 ", expectedPort: "4000"},
		{name: "leading zeros", value: "0080", expectedPort: "80"},
		{name: "not a number", value: "http", expectedPort: "3000"},
		{name: "zero", value: "0", expectedPort: "3000"},
		{name: "negative", value: "-1", expectedPort: "3000"},
		{name: "out of range", value: "70000", expectedPort: "3000"},
		{name: "address instead of port", value: ":8080", expectedPort: "3000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(server.PortEnvVar, tt.value)

			config := server.NewConfigFromEnv()
			if config.Port != tt.expectedPort {
				t.Errorf("PORT=%q: expected port %s, got %s", tt.value, tt.expectedPort, config.Port)
			}
			if config.Addr() != ":"+tt.expectedPort {
				t.Errorf("PORT=%q: expected address :%s, got %s", tt.value, tt.expectedPort, config.Addr())
			}
		})
	}
}
