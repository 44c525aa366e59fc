package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// LoadFromFile loads configuration from a YAML file. A `.env` file in
// the working directory is loaded first (best effort), then ${VAR}
// references in the config text are expanded from the environment
// before parsing. Values absent from the file keep their defaults.
func LoadFromFile(path string) (*Config, error) {
	// Already-set variables win over .env entries, so this cannot
	// override the caller's environment.
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	config := DefaultConfig()
	if err := yaml.Unmarshal([]byte(expanded), config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// DefaultPath is the config file looked up when none is given.
const DefaultPath = "phonotact.yaml"

// Load resolves the effective configuration: the given file if any,
// otherwise DefaultPath if it exists, otherwise defaults.
func Load(path string) (*Config, error) {
	if path != "" {
		return LoadFromFile(path)
	}
	if _, err := os.Stat(DefaultPath); err == nil {
		return LoadFromFile(DefaultPath)
	}
	return DefaultConfig(), nil
}
