package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the classic rules and the flat color scheme.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Engine: TetrisEngine{
			FallInterval:    20,
			MinFallInterval: 10,
			SpeedUpEvery:    50,
			LockPoints:      25,
			LineBonusBase:   100,
			ClearDelayTicks: 8,
			Randomizer:      "uniform",
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
		},
		Display: TetrisDisplay{
			TickRate:  20,
			CellWidth: 2,
			Colors: TetrisColors{
				Empty:  "black",
				Border: "blue",
				Locked: "red",
				Active: "green",
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultTetrisYAML
}
