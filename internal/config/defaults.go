package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultT2048YAML []byte

// DefaultT2048Config returns the built-in configuration.
// It matches defaults/t2048.yaml and is used if the embedded file fails to parse.
func DefaultT2048Config() T2048Config {
	return T2048Config{
		Board: BoardConfig{
			InitialTiles:    1,
			FourProbability: 0.5,
		},
		Campaign: CampaignConfig{
			InitialTiles: 2,
			Levels: []LevelConfig{
				{Name: "Warm-up", Target: 128, FourProbability: 0.10},
				{Name: "Getting Started", Target: 256, FourProbability: 0.10},
				{Name: "Building Momentum", Target: 512, FourProbability: 0.10},
				{Name: "The Climb", Target: 1024, FourProbability: 0.10},
				{Name: "Classic 2048", Target: 2048, FourProbability: 0.10},
				{Name: "Beyond Limits", Target: 4096, FourProbability: 0.12},
				{Name: "Master Class", Target: 8192, FourProbability: 0.15},
			},
		},
		Endless: EndlessConfig{
			InitialTiles: 2,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 50000,
			},
			Scaling: ScalingConfig{
				FourProbability: 0.3,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultT2048YAML
}
