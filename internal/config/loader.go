package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadPlatformer loads the platformer configuration.
// Search order: customPath -> ~/.platformer/configs/platformer.yaml ->
// ./configs/platformer.yaml -> embedded default.
// Files are decoded over the defaults, so a partial file only overrides the
// keys it sets.
func LoadPlatformer(customPath string) (PlatformerConfig, error) {
	cfg := DefaultPlatformerConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("platformer.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if loaded, ok := decodeValid(data); ok {
				return loaded, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/platformer.yaml"); err == nil {
		if loaded, ok := decodeValid(data); ok {
			return loaded, nil
		}
	}

	// Use embedded default YAML
	if loaded, ok := decodeValid(defaultPlatformerYAML); ok {
		return loaded, nil
	}
	return DefaultPlatformerConfig(), nil // Fallback to hardcoded if embed fails
}

// decodeValid decodes data over the defaults and reports whether the result
// parsed and validated.
func decodeValid(data []byte) (PlatformerConfig, bool) {
	cfg := DefaultPlatformerConfig()
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
	return filepath.Join(home, ".platformer", "configs", filename)
}

// ApplyPlatformerPreset modifies the config based on a difficulty preset.
func ApplyPlatformerPreset(cfg *PlatformerConfig, preset DifficultyPreset) {
	cfg.Physics.Gravity *= GravityScaleForPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Rules.BannerDuration = cfg.Rules.BannerDuration * 3 / 2
	case DifficultyHard:
		cfg.Physics.MoveSpeed *= 1.2
	}
}
