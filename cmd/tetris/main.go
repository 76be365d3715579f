// tetris is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	tetris                   - Play (same as "tetris play")
//	tetris play              - Play with the configured rules
//	tetris menu              - Pick difficulty and randomizer, then play
//	tetris scores            - Show high scores
//	tetris simulate          - Run a headless game with a random bot
//	tetris list              - List registered games
//	tetris config            - Print the default config YAML
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 20)
//	--seed <value>        - Set RNG seed for reproducible games
//	--db <path>           - Set database path (default: ~/.tetris/scores.db, "" disables)
//	--log <path>          - Set log file (default: ~/.tetris/tetris.log)
//	--config <path>       - Use a custom config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--randomizer <name>   - uniform or bag
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagLogPath    string
	flagConfig     string
	flagDifficulty string
	flagRandomizer string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Falling-block puzzle game for the terminal",
	Long: `Stack falling pieces, complete rows to clear them, and survive as the
pieces fall faster.

Scoring:
  25 points for every piece that locks
  plus 2^n * 100 for n rows cleared at once

Examples:
  tetris
  tetris play --difficulty hard
  tetris play --randomizer bag --seed 42
  tetris simulate --ticks 10000 --seed 1
  tetris scores`,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runPlay,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 20, "Tick rate (ticks per second); overrides display.tick_rate")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.tetris/scores.db", `Path to scores database ("" disables)`)
	pf.StringVar(&flagLogPath, "log", "~/.tetris/tetris.log", "Path to log file")
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagRandomizer, "randomizer", "", "Piece randomizer: uniform, bag")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}
