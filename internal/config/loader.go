package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fileName = "config.yaml"

// Load loads the viewer configuration.
// Search order: customPath -> ~/.shapes/config.yaml -> ./configs/config.yaml -> embedded default.
// Keys missing from a file keep their default values. Only an explicit
// customPath reports read, parse and validation errors; other locations
// that fail are skipped.
func Load(customPath string) (ViewerConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return ViewerConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return ViewerConfig{}, fmt.Errorf("config: failed to load %s: %w", customPath, err)
		}
		cfg.Source = customPath
		return cfg, nil
	}

	for _, path := range []string{userConfigPath(), filepath.Join("configs", fileName)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parse(data); err == nil {
			cfg.Source = path
			return cfg, nil
		}
	}

	cfg, err := parse(defaultConfigYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	cfg.Source = EmbeddedSource
	return cfg, nil
}

// parse decodes data over the defaults and validates the result.
func parse(data []byte) (ViewerConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ViewerConfig{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return ViewerConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".shapes", fileName)
}
