package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source names where a configuration was loaded from.
type Source string

const (
	SourceCustom   Source = "custom"
	SourceUser     Source = "user"
	SourceLocal    Source = "local"
	SourceEmbedded Source = "embedded"
)

// LoadSnake loads the snake configuration.
// Search order: customPath -> ~/.snake/configs/snake.yaml -> ./configs/snake.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a file only has to list the
// values it changes. The result is validated before it is returned.
func LoadSnake(customPath string) (SnakeConfig, Source, error) {
	cfg := DefaultSnakeConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, SourceCustom, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, SourceCustom, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, SourceCustom, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, SourceCustom, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("snake.yaml"); userCfgPath != "" {
		if c, ok := tryLoad(userCfgPath); ok {
			return c, SourceUser, nil
		}
	}

	// Try local configs directory
	if c, ok := tryLoad(filepath.Join("configs", "snake.yaml")); ok {
		return c, SourceLocal, nil
	}

	// Use embedded default YAML
	return cfg, SourceEmbedded, nil
}

// tryLoad reads an optional config file. Missing, unreadable or invalid
// files are skipped so the next location in the search order is tried.
func tryLoad(path string) (SnakeConfig, bool) {
	cfg := DefaultSnakeConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if err := cfg.Validate(); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", "configs", filename)
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg SnakeConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}
