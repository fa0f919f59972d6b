package config

import "math"

// DifficultyManager ramps the odds of spawning a 4 as a run goes on.
// The ramp is driven by score or move count, per ProgressionConfig.Type.
type DifficultyManager struct {
	cfg   DifficultyConfig
	floor float64
}

// NewDifficultyManager creates a manager starting at cfg.InitialLevel.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg, floor: unit(cfg.InitialLevel)}
}

// IsEnabled reports whether the ramp moves at all.
func (d *DifficultyManager) IsEnabled() bool {
	if !d.cfg.Enabled {
		return false
	}
	switch d.cfg.Progression.Type {
	case "score", "moves":
		return true
	}
	return false
}

// Level returns where the run sits on the ramp, from the initial level
// up to 1.0 once Progression.MaxAt is reached.
func (d *DifficultyManager) Level(score, moves int) float64 {
	if !d.IsEnabled() {
		return d.floor
	}

	reached := score
	if d.cfg.Progression.Type == "moves" {
		reached = moves
	}
	span := max(d.cfg.Progression.MaxAt, 1)

	progress := unit(float64(reached) / float64(span))
	return d.floor + (1-d.floor)*progress
}

// FourProbability adds up to Scaling.FourProbability to the base odds,
// in proportion to the current level.
func (d *DifficultyManager) FourProbability(base float64, score, moves int) float64 {
	return unit(base + d.Level(score, moves)*d.cfg.Scaling.FourProbability)
}

func unit(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
