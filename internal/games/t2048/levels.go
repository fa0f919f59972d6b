package t2048

import "github.com/vovakirdan/tui-2048/internal/config"

// Level defines a campaign level with a target tile.
type Level struct {
	ID              int
	Name            string
	Target          int     // Target tile value to reach
	FourProbability float64 // Probability of spawning 4 instead of 2
}

// LevelsFrom builds the campaign levels described by a configuration.
func LevelsFrom(cfg config.CampaignConfig) []Level {
	levels := make([]Level, len(cfg.Levels))
	for i, lc := range cfg.Levels {
		levels[i] = Level{
			ID:              i + 1,
			Name:            lc.Name,
			Target:          lc.Target,
			FourProbability: lc.FourProbability,
		}
	}
	return levels
}

// Levels returns the campaign levels of the active configuration.
func Levels() []Level {
	return LevelsFrom(Settings().Campaign)
}

// LevelCount returns the number of campaign levels.
func LevelCount() int {
	return len(Settings().Campaign.Levels)
}
