package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Entropy source kinds
const (
	SourceOS     = "os"
	SourceFile   = "file"
	SourceSerial = "serial"
)

// Config represents the application configuration
type Config struct {
	Color    bool    `toml:"color"`
	LogLevel string  `toml:"log_level"`
	Entropy  Entropy `toml:"entropy"`
}

// Entropy selects the byte stream the shuffler draws from
type Entropy struct {
	Source        string `toml:"source"`
	Device        string `toml:"device"`
	Baud          int    `toml:"baud"`
	ReadTimeoutMs int    `toml:"read_timeout_ms"`
}

// Default returns the configuration written on first run
func Default() *Config {
	return &Config{
		Color:    true,
		LogLevel: "warn",
		Entropy: Entropy{
			Source:        SourceOS,
			Baud:          115200,
			ReadTimeoutMs: 1000,
		},
	}
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "bj21", "config.toml")
}

// LoadConfig loads the config file, creating it with defaults if missing
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig()
	}

	// Keys missing from the file keep their default values
	config := Default()
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
	}

	return config, nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig() (*Config, error) {
	config := Default()
	if err := Save(config); err != nil {
		return nil, err
	}
	return config, nil
}

// Save writes config to the config file path
func Save(config *Config) error {
	configPath := GetConfigFilePath()

	// Ensure the config directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	return nil
}

// Validate checks the values a config file may carry
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level: %q", c.LogLevel)
	}

	switch c.Entropy.Source {
	case SourceOS:
	case SourceFile:
		if c.Entropy.Device == "" {
			return fmt.Errorf("entropy.device is required for source %q", c.Entropy.Source)
		}
	case SourceSerial:
		if c.Entropy.Device == "" {
			return fmt.Errorf("entropy.device is required for source %q", c.Entropy.Source)
		}
		if c.Entropy.Baud <= 0 {
			return fmt.Errorf("invalid entropy.baud: %d", c.Entropy.Baud)
		}
		if c.Entropy.ReadTimeoutMs < 0 {
			return fmt.Errorf("invalid entropy.read_timeout_ms: %d", c.Entropy.ReadTimeoutMs)
		}
	default:
		return fmt.Errorf("unknown entropy.source: %q (supported: os, file, serial)", c.Entropy.Source)
	}

	return nil
}
