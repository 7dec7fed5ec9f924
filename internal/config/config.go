// Package config loads the application configuration file. Flags override
// whatever the file provides; a missing file means defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration.
type Config struct {
	DataDir       string `yaml:"data_dir"`
	Timezone      string `yaml:"timezone"`
	LogLevel      string `yaml:"log_level"`
	LogFile       string `yaml:"log_file"`
	Notifications bool   `yaml:"notifications"`
}

// DefaultPath is the conventional config location.
const DefaultPath = "~/.go-mindcleanse/config.yaml"

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		DataDir:       "~/.go-mindcleanse/data",
		Timezone:      "Local",
		LogLevel:      "info",
		LogFile:       "~/.go-mindcleanse/logs/app.log",
		Notifications: true,
	}
}

// Load reads the configuration at path, falling back to defaults when the
// file does not exist. Fields absent from the file keep their defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(ExpandPath(path))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
