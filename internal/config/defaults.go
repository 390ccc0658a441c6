package config

import (
	"bytes"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// defaultSnake is decoded once from the embedded YAML, the only place the
// built-in values are written down.
var defaultSnake = mustParseDefaults(defaultSnakeYAML)

// DefaultSnakeConfig returns the built-in snake configuration:
// a 30x20 grid of 32x32 pixel cells updated 8 times per second.
func DefaultSnakeConfig() SnakeConfig {
	return defaultSnake
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}

// parseDefaults decodes a complete default configuration. Unknown keys are
// rejected and the result must validate.
func parseDefaults(data []byte) (SnakeConfig, error) {
	var cfg SnakeConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return SnakeConfig{}, fmt.Errorf("config: cannot parse embedded defaults: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return SnakeConfig{}, fmt.Errorf("config: invalid embedded defaults: %w", err)
	}
	return cfg, nil
}

func mustParseDefaults(data []byte) SnakeConfig {
	cfg, err := parseDefaults(data)
	if err != nil {
		panic(err)
	}
	return cfg
}
