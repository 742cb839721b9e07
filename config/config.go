// Package config holds the service configuration: HTTP address, data
// directory, and logging level. Values come from defaults, then an
// optional YAML file, then environment variables, later sources
// winning.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all storecore configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Data    DataConfig    `yaml:"data"`
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// DataConfig locates the dataset files.
type DataConfig struct {
	// Dir holds the seven dataset JSON files.
	Dir string `yaml:"dir"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr: ":8787",
		},
		Data: DataConfig{
			Dir: "sampledata",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file. A missing file is not an
// error; defaults and environment overrides still apply.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("STORECORE_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("STORECORE_DATA_DIR"); v != "" {
		c.Data.Dir = v
	}
	if v := os.Getenv("STORECORE_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}
