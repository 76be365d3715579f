// Package config provides YAML-based game configuration loading and
// difficulty presets.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// TetrisConfig contains all configuration for the falling-block game.
type TetrisConfig struct {
	Engine     TetrisEngine     `yaml:"engine"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Display    TetrisDisplay    `yaml:"display"`
}

// TetrisEngine defines scoring, speed and pacing rules.
type TetrisEngine struct {
	FallInterval    int    `yaml:"fall_interval"`
	MinFallInterval int    `yaml:"min_fall_interval"`
	SpeedUpEvery    int    `yaml:"speed_up_every"`
	LockPoints      int    `yaml:"lock_points"`
	LineBonusBase   int    `yaml:"line_bonus_base"`
	ClearDelayTicks int    `yaml:"clear_delay_ticks"`
	Randomizer      string `yaml:"randomizer"`
}

// TetrisDisplay defines how the board is drawn in the terminal.
type TetrisDisplay struct {
	TickRate  int          `yaml:"tick_rate"`
	CellWidth int          `yaml:"cell_width"`
	Colors    TetrisColors `yaml:"colors"`
}

// TetrisColors maps each board cell kind to a color name.
type TetrisColors struct {
	Empty  string `yaml:"empty"`
	Border string `yaml:"border"`
	Locked string `yaml:"locked"`
	Active string `yaml:"active"`
}

// DifficultyConfig defines where the speed starts and whether it progresses.
type DifficultyConfig struct {
	Enabled      bool    `yaml:"enabled"`       // false keeps the starting speed for the whole game
	InitialLevel float64 `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
}

// Validate checks that the config describes a playable game.
func (c TetrisConfig) Validate() error {
	var errs []error

	e := c.Engine
	if e.FallInterval < 1 {
		errs = append(errs, fmt.Errorf("engine.fall_interval must be at least 1, got %d", e.FallInterval))
	}
	if e.MinFallInterval < 1 || e.MinFallInterval > e.FallInterval {
		errs = append(errs, fmt.Errorf("engine.min_fall_interval must be in [1, %d], got %d", e.FallInterval, e.MinFallInterval))
	}
	if e.SpeedUpEvery < 1 {
		errs = append(errs, fmt.Errorf("engine.speed_up_every must be at least 1, got %d", e.SpeedUpEvery))
	}
	// The engine reads zero scoring values as unset.
	if e.LockPoints < 1 {
		errs = append(errs, fmt.Errorf("engine.lock_points must be at least 1, got %d", e.LockPoints))
	}
	if e.LineBonusBase < 1 {
		errs = append(errs, fmt.Errorf("engine.line_bonus_base must be at least 1, got %d", e.LineBonusBase))
	}
	if e.ClearDelayTicks < 0 {
		errs = append(errs, fmt.Errorf("engine.clear_delay_ticks must not be negative, got %d", e.ClearDelayTicks))
	}
	switch e.Randomizer {
	case "", "uniform", "bag":
	default:
		errs = append(errs, fmt.Errorf("engine.randomizer must be uniform or bag, got %q", e.Randomizer))
	}

	if c.Difficulty.InitialLevel < 0 || c.Difficulty.InitialLevel > 1 {
		errs = append(errs, fmt.Errorf("difficulty.initial_level must be in [0, 1], got %g", c.Difficulty.InitialLevel))
	}

	d := c.Display
	if d.TickRate < 1 {
		errs = append(errs, fmt.Errorf("display.tick_rate must be at least 1, got %d", d.TickRate))
	}
	if d.CellWidth < 1 {
		errs = append(errs, fmt.Errorf("display.cell_width must be at least 1, got %d", d.CellWidth))
	}
	for name, value := range map[string]string{
		"empty":  d.Colors.Empty,
		"border": d.Colors.Border,
		"locked": d.Colors.Locked,
		"active": d.Colors.Active,
	} {
		if _, ok := core.ParseColor(value); !ok {
			errs = append(errs, fmt.Errorf("display.colors.%s: unknown color %q", name, value))
		}
	}

	return errors.Join(errs...)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset. Empty input means "use the
// config as loaded".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
