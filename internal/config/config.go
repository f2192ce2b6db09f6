package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v10"
)

// ServerConfig holds configuration for the test page server
type ServerConfig struct {
	// Server configuration
	Port     int    `env:"TESTSERVER_PORT" envDefault:"8080"`
	RootDir  string `env:"TESTSERVER_ROOT"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Metrics are served on their own listener; 0 disables them
	MetricsPort int `env:"TESTSERVER_METRICS_PORT" envDefault:"0"`

	ShutdownTimeout time.Duration `env:"TIMEOUT_SHUTDOWN" envDefault:"5s"`
}

// ProjectConfig holds configuration for the project config printer
type ProjectConfig struct {
	File     string `env:"PROJECT_FILE" envDefault:".project"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"warn"`

	// MkDocsOutput, when set, receives the site metadata as YAML
	MkDocsOutput string `env:"PROJECT_MKDOCS_OUTPUT"`
}

// LoadServer reads server configuration from environment variables
func LoadServer() (*ServerConfig, error) {
	cfg := &ServerConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// LoadProject reads project printer configuration from environment variables
func LoadProject() (*ProjectConfig, error) {
	cfg := &ProjectConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *ServerConfig) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid HTTP port: %d", c.Port)
	}
	if c.MetricsPort < 0 || c.MetricsPort > 65535 {
		return fmt.Errorf("invalid metrics port: %d", c.MetricsPort)
	}
	if c.MetricsPort == c.Port {
		return fmt.Errorf("metrics port must differ from HTTP port: %d", c.Port)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown timeout must be positive")
	}

	return validateLogLevel(c.LogLevel)
}

// Validate checks if the configuration is valid
func (c *ProjectConfig) Validate() error {
	if c.File == "" {
		return fmt.Errorf("project file path is required")
	}

	return validateLogLevel(c.LogLevel)
}

// GetHTTPAddr returns the HTTP server address
func (c *ServerConfig) GetHTTPAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// GetRootDir returns the directory to serve.
// When TESTSERVER_ROOT is unset it is the directory holding the running binary.
func (c *ServerConfig) GetRootDir() (string, error) {
	if c.RootDir != "" {
		return c.RootDir, nil
	}

	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}
	return filepath.Dir(exe), nil
}

// GetMetricsAddr returns the metrics server address, empty when disabled
func (c *ServerConfig) GetMetricsAddr() string {
	if c.MetricsPort == 0 {
		return ""
	}
	return fmt.Sprintf(":%d", c.MetricsPort)
}

func validateLogLevel(level string) error {
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", level)
	}
	return nil
}
