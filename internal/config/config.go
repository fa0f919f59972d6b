// Package config provides YAML-based configuration loading and difficulty
// management for 2048.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-2048/internal/board"
)

// T2048Config contains all tunable parameters of the game.
type T2048Config struct {
	Board      BoardConfig      `yaml:"board"`
	Campaign   CampaignConfig   `yaml:"campaign"`
	Endless    EndlessConfig    `yaml:"endless"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig holds the classic-mode rules.
type BoardConfig struct {
	InitialTiles    int     `yaml:"initial_tiles"`
	FourProbability float64 `yaml:"four_probability"` // Chance a spawned tile is a 4
}

// CampaignConfig defines the campaign: a sequence of target tiles.
type CampaignConfig struct {
	InitialTiles int           `yaml:"initial_tiles"`
	Levels       []LevelConfig `yaml:"levels"`
}

// LevelConfig is one campaign level.
type LevelConfig struct {
	Name            string  `yaml:"name"`
	Target          int     `yaml:"target"`
	FourProbability float64 `yaml:"four_probability"`
}

// EndlessConfig holds endless-mode rules. Spawn odds start at
// Board.FourProbability and grow with difficulty.
type EndlessConfig struct {
	InitialTiles int `yaml:"initial_tiles"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "moves", or "none"
	MaxAt int    `yaml:"max_at"` // Score/moves at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	FourProbability float64 `yaml:"four_probability"` // Added to the spawn odds at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid")

// ParsePreset converts a CLI string into a preset.
// Unknown or empty strings yield the empty preset, which leaves the config untouched.
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// FourProbabilityForPreset returns the classic spawn odds for a preset,
// or -1 if the preset does not change them.
func FourProbabilityForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.1
	case DifficultyNormal:
		return board.DefaultFourProbability
	case DifficultyHard:
		return 0.7
	default:
		return -1
	}
}

// Validate checks that the configuration describes a playable game.
func (c T2048Config) Validate() error {
	if err := checkProbability("board.four_probability", c.Board.FourProbability); err != nil {
		return err
	}
	if err := checkInitialTiles("board.initial_tiles", c.Board.InitialTiles); err != nil {
		return err
	}
	if err := checkInitialTiles("campaign.initial_tiles", c.Campaign.InitialTiles); err != nil {
		return err
	}
	if err := checkInitialTiles("endless.initial_tiles", c.Endless.InitialTiles); err != nil {
		return err
	}

	if len(c.Campaign.Levels) == 0 {
		return fmt.Errorf("%w: campaign has no levels", ErrInvalidConfig)
	}
	for i, lvl := range c.Campaign.Levels {
		if lvl.Target < 4 || !board.IsValidTile(lvl.Target) {
			return fmt.Errorf("%w: level %d target %d is not a power of two >= 4", ErrInvalidConfig, i+1, lvl.Target)
		}
		if err := checkProbability(fmt.Sprintf("level %d four_probability", i+1), lvl.FourProbability); err != nil {
			return err
		}
	}

	d := c.Difficulty
	if d.InitialLevel < 0 || d.InitialLevel > 1 {
		return fmt.Errorf("%w: difficulty.initial_level %.2f outside [0, 1]", ErrInvalidConfig, d.InitialLevel)
	}
	switch d.Progression.Type {
	case "", "none", "score", "moves":
	default:
		return fmt.Errorf("%w: unknown progression type %q", ErrInvalidConfig, d.Progression.Type)
	}
	return checkProbability("difficulty.scaling.four_probability", d.Scaling.FourProbability)
}

func checkProbability(name string, p float64) error {
	if p < 0 || p > 1 {
		return fmt.Errorf("%w: %s %.2f outside [0, 1]", ErrInvalidConfig, name, p)
	}
	return nil
}

func checkInitialTiles(name string, n int) error {
	if n < 1 || n > board.Size*board.Size {
		return fmt.Errorf("%w: %s %d outside [1, %d]", ErrInvalidConfig, name, n, board.Size*board.Size)
	}
	return nil
}
