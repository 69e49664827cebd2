package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadCrossing loads the game configuration.
// Search order: customPath -> ~/.crossing/configs/crossing.yaml -> ./configs/crossing.yaml -> embedded default
func LoadCrossing(customPath string) (CrossingConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := readFile(customPath)
		if err != nil {
			return cfg, err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath("crossing.yaml"), filepath.Join("configs", "crossing.yaml")} {
		if path == "" {
			continue
		}
		if cfg, err := readFile(path); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultCrossingYAML)
	if err != nil || cfg.Validate() != nil {
		return DefaultCrossingConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the hard-coded defaults, so partial files only
// override the keys they mention.
func Parse(data []byte) (CrossingConfig, error) {
	cfg := DefaultCrossingConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

func readFile(path string) (CrossingConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return CrossingConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".crossing", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal keeps the configured balance untouched.
func ApplyPreset(cfg *CrossingConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Enemies.MinSpeed = cfg.Enemies.MinSpeed * 3 / 4
		cfg.Enemies.MaxSpeed = cfg.Enemies.MaxSpeed * 3 / 4
		cfg.Timer.Seconds = cfg.Timer.Seconds * 1.5
	case DifficultyHard:
		cfg.Enemies.MinSpeed = cfg.Enemies.MinSpeed * 3 / 2
		cfg.Enemies.MaxSpeed = cfg.Enemies.MaxSpeed * 5 / 4
		cfg.Timer.Seconds = cfg.Timer.Seconds * 0.8
	}
}
