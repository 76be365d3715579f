package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var (
	flagPlain bool
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best stored results. In a terminal this opens a scrollable
table; use --plain (or pipe the output) for a text listing of the top 10.

Examples:
  tetris scores
  tetris scores --plain
  tetris scores --clear
  tetris scores --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print the top 10 as text")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all stored scores")
}

func runScores(cmd *cobra.Command, _ []string) error {
	if flagDBPath == "" {
		return fmt.Errorf("no scores database (--db is empty)")
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		n, err := store.ClearScores(gameID)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %d scores.\n", n)
		return nil
	}

	fd := int(os.Stdout.Fd())
	if !flagPlain && term.IsTerminal(fd) {
		width, height, err := term.GetSize(fd)
		if err != nil {
			width, height = 80, 24
		}
		return tui.RunScoreboard(store, gameID, game.Title(), width, height)
	}

	return printScores(cmd, store, game.Title())
}

func printScores(cmd *cobra.Command, store *storage.Store, title string) error {
	out := cmd.OutOrStdout()

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "High Scores - %s\n\n", title)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Run 'tetris play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-8s  %-6s  %-6s  %s\n", "Rank", "Score", "Lines", "Pieces", "Date")
	fmt.Fprintf(out, "  %-4s  %-8s  %-6s  %-6s  %s\n", "----", "-----", "-----", "------", "----")
	for i, e := range scores {
		fmt.Fprintf(out, "  %-4d  %-8d  %-6d  %-6d  %s\n",
			i+1, e.Score, e.Lines, e.Pieces, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.Stats(gameID); err == nil {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Games: %d  Best: %d  Average: %.0f  Lines: %d\n",
			stats.GamesCount, stats.HighScore, stats.AvgScore, stats.TotalLines)
	}
	return nil
}
