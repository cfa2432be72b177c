package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LocalConfigPath is the project-local override location.
const LocalConfigPath = "configs/lavajump.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.lavajump/config.yaml -> ./configs/lavajump.yaml -> embedded default.
// Values missing from a file keep their built-in defaults.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Default(), fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Default(), fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(LocalConfigPath); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes a YAML document on top of the built-in defaults. A partial
// override of a built-in tier keeps that tier's other values.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), err
	}

	// yaml.v3 decodes map values into zero structs, so tiers are decoded
	// again onto their built-in values.
	var raw struct {
		Difficulty map[string]yaml.Node `yaml:"difficulty"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Default(), err
	}
	builtin := Default().Difficulty
	for name, node := range raw.Difficulty {
		tier, ok := builtin[name]
		if !ok {
			continue
		}
		if err := node.Decode(&tier); err != nil {
			return Default(), fmt.Errorf("difficulty.%s: %w", name, err)
		}
		cfg.Difficulty[name] = tier
	}
	return cfg, nil
}

// Marshal encodes a configuration as YAML.
func Marshal(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".lavajump", filename)
}
