package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SkiFile is the config file name looked up in the search directories.
const SkiFile = "ski.yaml"

// LoadSki loads the ski configuration.
// Search order: customPath -> ~/.ski/configs/ski.yaml -> ./configs/ski.yaml -> embedded default
// Files are decoded over the defaults, so a file only needs the keys it changes.
func LoadSki(customPath string) (SkiConfig, error) {
	cfg := DefaultSkiConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		cfg.Normalize()
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(SkiFile); userCfgPath != "" {
		if c, ok := tryLoad(userCfgPath); ok {
			return c, nil
		}
	}

	// Try local configs directory
	if c, ok := tryLoad(filepath.Join("configs", SkiFile)); ok {
		return c, nil
	}

	// Use embedded default YAML
	cfg = SkiConfig{}
	if err := yaml.Unmarshal(defaultSkiYAML, &cfg); err != nil {
		return DefaultSkiConfig(), nil // Fallback to hardcoded if embed fails
	}
	cfg.Normalize()
	return cfg, nil
}

// tryLoad reads and parses path, reporting false on any failure.
func tryLoad(path string) (SkiConfig, bool) {
	cfg := DefaultSkiConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	cfg.Normalize()
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".ski", "configs", filename)
}
