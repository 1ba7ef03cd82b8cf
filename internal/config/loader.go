package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadRiverRun loads River Run configuration.
// Search order: customPath -> ~/.arcade/configs/riverrun.yaml -> ./configs/riverrun.yaml -> embedded default
func LoadRiverRun(customPath string) (RiverRunConfig, error) {
	cfg, err := load("riverrun", customPath, defaultRiverRunYAML, DefaultRiverRunConfig)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: invalid riverrun config: %w", err)
	}
	return cfg, nil
}

// LoadInvaders loads Invaders configuration.
// Search order: customPath -> ~/.arcade/configs/invaders.yaml -> ./configs/invaders.yaml -> embedded default
func LoadInvaders(customPath string) (InvadersConfig, error) {
	cfg, err := load("invaders", customPath, defaultInvadersYAML, DefaultInvadersConfig)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: invalid invaders config: %w", err)
	}
	return cfg, nil
}

// load decodes the first config found for gameID over the hardcoded
// defaults, so files only need the keys they change.
func load[T any](gameID, customPath string, embedded []byte, defaults func() T) (T, error) {
	filename := gameID + ".yaml"

	// Try custom path first
	if customPath != "" {
		cfg := defaults()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if path, data := findUserConfig(filename); path != "" {
		cfg := defaults()
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := defaults()
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return defaults(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Source reports where the config for gameID comes from when no custom
// path is given: a file path, or "embedded" for the built-in defaults.
func Source(gameID string) string {
	if path, _ := findUserConfig(gameID + ".yaml"); path != "" {
		return path
	}
	return "embedded"
}

// findUserConfig returns the first readable, well-formed config file in
// the search path, or an empty path if there is none.
func findUserConfig(filename string) (string, []byte) {
	candidates := []string{filepath.Join("configs", filename)}
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		candidates = append([]string{userCfgPath}, candidates...)
	}

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var node yaml.Node
		if err := yaml.Unmarshal(data, &node); err != nil {
			continue
		}
		return path, data
	}
	return "", nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
