package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Choose difficulty and randomizer, then play",
	Long: `Show a menu to pick the difficulty preset and the piece randomizer, then
start a game with those choices. Other flags work as for "play".

Controls:
  Up/Down/j/k  - Navigate
  Enter/Space  - Select
  Esc          - Back
  Q            - Quit`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(cmd *cobra.Command, _ []string) error {
	// Load once to report config errors before showing the menu
	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}
	rc := runtimeConfig(cmd, cfg)

	selection, err := tui.RunSetupMenu(rc.ScreenW, rc.ScreenH)
	if err != nil {
		return err
	}
	if selection == nil {
		return nil
	}

	flagDifficulty = string(selection.Difficulty)
	flagRandomizer = selection.Randomizer
	if _, err := configureGame(); err != nil {
		return err
	}
	return play(cmd, rc)
}
