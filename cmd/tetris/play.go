package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

const gameID = "tetris"

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game. It ends when a new piece has no room to spawn; the final
score is printed and saved.

Controls:
  Left/A, Right/D  - Move
  Down/S           - Soft drop one row
  Up/W/Z           - Rotate
  Ctrl+S           - Save a text screenshot
  Q/Esc/Ctrl+C     - Quit

Difficulty options:
  easy   - Start at the slowest speed, speed up every 50 pieces
  normal - Start 30% of the way to top speed
  hard   - Start 70% of the way to top speed
  fixed  - Never speed up

Examples:
  tetris play
  tetris play --difficulty hard
  tetris play --randomizer bag
  tetris play --config ./my-tetris.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := configureGame()
	if err != nil {
		return err
	}
	return play(cmd, runtimeConfig(cmd, cfg))
}

// play runs one game in the terminal and prints the result.
func play(cmd *cobra.Command, rc core.RuntimeConfig) error {
	if rc.TickRate < 1 {
		return fmt.Errorf("tick rate must be at least 1, got %d", rc.TickRate)
	}

	logger, closeLog := openLogger(flagLogPath)
	defer closeLog()

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	state, err := tui.Run(game, store, logger, rc)
	if err != nil {
		logger.Error("game loop failed", "error", err)
		return err
	}

	out := cmd.OutOrStdout()
	if state.GameOver {
		fmt.Fprintln(out, "GAME OVER!")
	}
	fmt.Fprintf(out, "SCORE: %d!\n", state.Score)
	return nil
}

// openStore opens the score database, or returns nil when it is disabled or
// unavailable. The game works without it.
func openStore(logger *log.Logger) *storage.Store {
	if flagDBPath == "" {
		return nil
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
