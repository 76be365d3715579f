package config

import "math"

// DifficultyManager turns the difficulty settings into engine speed values.
type DifficultyManager struct {
	cfg    DifficultyConfig
	engine TetrisEngine
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig, engine TetrisEngine) *DifficultyManager {
	return &DifficultyManager{
		cfg:    cfg,
		engine: engine,
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.cfg.InitialLevel = clampF(level, 0.0, 1.0)
}

// IsEnabled returns whether the game speeds up as pieces lock.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// InitialFallInterval interpolates the starting fall interval between
// fall_interval (level 0) and min_fall_interval (level 1).
func (d *DifficultyManager) InitialFallInterval() int {
	level := clampF(d.cfg.InitialLevel, 0.0, 1.0)
	span := float64(d.engine.FallInterval - d.engine.MinFallInterval)
	return d.engine.FallInterval - int(math.Round(level*span))
}

// SpeedUpEvery returns the number of locks between speed-ups, or -1 when
// progression is disabled.
func (d *DifficultyManager) SpeedUpEvery() int {
	if !d.IsEnabled() {
		return -1
	}
	return d.engine.SpeedUpEvery
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
