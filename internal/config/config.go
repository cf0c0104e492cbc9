package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const appName = "priosched"

// Config represents the application configuration
type Config struct {
	ColorScheme ColorScheme `yaml:"theme"`
	Display     Display     `yaml:"display"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		ColorScheme: DefaultColorScheme(),
		Display:     DefaultDisplay(),
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		// Return default config if we can't determine config path
		return Default(), nil
	}

	return LoadFile(configPath)
}

// LoadFile loads config from path, returning the default config if the file doesn't exist
func LoadFile(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	// Fill in any missing values with defaults
	config.applyDefaults()

	return &config, nil
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", appName, "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	c.ColorScheme.ApplyDefaults()
	c.Display.applyDefaults()
}
