package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name looked up in the config directories.
const ConfigFile = "t2048.yaml"

// Load loads the 2048 configuration.
// Search order: customPath -> ~/.t2048/configs/t2048.yaml -> ./configs/t2048.yaml -> embedded default.
// A custom path that cannot be read, parsed or validated is an error; the
// other locations are skipped silently when unusable.
func Load(customPath string) (T2048Config, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return DefaultT2048Config(), err
		}
		return cfg, nil
	}

	if path := userConfigPath(ConfigFile); path != "" {
		if cfg, err := loadFile(path); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := loadFile(filepath.Join("configs", ConfigFile)); err == nil {
		return cfg, nil
	}

	cfg, err := Parse(defaultT2048YAML)
	if err != nil {
		return DefaultT2048Config(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the built-in defaults, so a file only needs
// the keys it changes, and validates the result.
func Parse(data []byte) (T2048Config, error) {
	cfg := DefaultT2048Config()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Marshal encodes a configuration as YAML.
func Marshal(cfg T2048Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}

func loadFile(path string) (T2048Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return T2048Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return T2048Config{}, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".t2048", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *T2048Config, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
		return
	}

	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	if p := FourProbabilityForPreset(preset); p >= 0 {
		cfg.Board.FourProbability = p
	}
}
