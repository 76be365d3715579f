package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

// loadGameConfig loads the config file and applies the difficulty and
// randomizer flags on top of it.
func loadGameConfig() (config.TetrisConfig, error) {
	cfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		return config.TetrisConfig{}, err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.TetrisConfig{}, err
	}
	config.ApplyTetrisPreset(&cfg, preset)

	if flagRandomizer != "" {
		cfg.Engine.Randomizer = flagRandomizer
	}
	if err := cfg.Validate(); err != nil {
		return config.TetrisConfig{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// runtimeConfig builds the platform config from the terminal size and flags.
// --fps wins over display.tick_rate only when set explicitly.
func runtimeConfig(cmd *cobra.Command, cfg config.TetrisConfig) core.RuntimeConfig {
	rc := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rc.ScreenW, rc.ScreenH = w, h
	}

	rc.TickRate = cfg.Display.TickRate
	if cmd.Flags().Changed("fps") {
		rc.TickRate = flagFPS
	}

	rc.Seed = flagSeed
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}
	return rc
}

// configureGame loads the config and hands it to the game package.
func configureGame() (config.TetrisConfig, error) {
	cfg, err := loadGameConfig()
	if err != nil {
		return config.TetrisConfig{}, err
	}
	tetris.SetConfig(cfg)
	return cfg, nil
}
