package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ProjectConfig holds the optional per-project defaults read from .hookscan.yaml.
// Empty fields mean "not set"; the CLI falls back to the environment and then
// to built-in defaults.
type ProjectConfig struct {
	Source    string `yaml:"source"`
	Snapshot  string `yaml:"snapshot"`
	Extension string `yaml:"extension"`
	Color     *bool  `yaml:"color,omitempty"`
}

const ConfigFileName = ".hookscan.yaml"

func Load(dir string) (*ProjectConfig, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", ConfigFileName, err)
	}
	return &cfg, nil
}
