// Package config provides configuration loading and management for
// phonotact.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the complete phonotact configuration
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Files   FilesConfig   `yaml:"files"`
	Watch   WatchConfig   `yaml:"watch"`
}

// DisplayConfig configures the report renderer
type DisplayConfig struct {
	// Level is the report verbosity: "all", "notes", or "fails"
	Level string `yaml:"level"`
	// Color toggles ANSI colors in the report
	Color bool `yaml:"color"`
}

// FilesConfig configures scheme file discovery
type FilesConfig struct {
	// Globs are the scheme file patterns used when no files are given
	// on the command line. Doublestar (**) patterns are supported.
	Globs []string `yaml:"globs"`
}

// WatchConfig configures the watch mode
type WatchConfig struct {
	// Debounce is how long to wait for further changes before re-running
	Debounce time.Duration `yaml:"debounce"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Display: DisplayConfig{
			Level: "all",
			Color: true,
		},
		Files: FilesConfig{
			Globs: []string{"*.phn"},
		},
		Watch: WatchConfig{
			Debounce: 100 * time.Millisecond,
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	switch c.Display.Level {
	case "all", "notes", "fails":
	default:
		return fmt.Errorf("display.level must be all, notes, or fails, got %q", c.Display.Level)
	}
	if len(c.Files.Globs) == 0 {
		return fmt.Errorf("files.globs must not be empty")
	}
	if c.Watch.Debounce < 0 {
		return fmt.Errorf("watch.debounce must not be negative")
	}
	return nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for
// non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	if other.Display.Level != "" {
		c.Display.Level = other.Display.Level
	}
	if len(other.Files.Globs) > 0 {
		c.Files.Globs = other.Files.Globs
	}
	if other.Watch.Debounce != 0 {
		c.Watch.Debounce = other.Watch.Debounce
	}
}
