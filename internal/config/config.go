package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the few settings shiftlog reads from ~/.shiftlog/config.yaml.
// A missing file is fine; defaults apply.
type Config struct {
	// DatabasePath overrides the default sqlite file location
	DatabasePath string `yaml:"database_path"`
	// Driver is the name of the driver using this machine
	Driver string `yaml:"driver"`
}

// Dir returns the shiftlog dot-directory in the user's home.
func Dir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".shiftlog"), nil
}

// Load reads the config file, returning defaults when it does not exist.
func Load() (Config, error) {
	dir, err := Dir()
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		DatabasePath: filepath.Join(dir, "shiftlog.db"),
	}

	data, err := os.ReadFile(filepath.Join(dir, "config.yaml"))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.DatabasePath == "" {
		cfg.DatabasePath = filepath.Join(dir, "shiftlog.db")
	}

	return cfg, nil
}

// Save writes the config back to ~/.shiftlog/config.yaml.
func Save(cfg Config) error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(dir, "config.yaml"), data, 0644)
}
