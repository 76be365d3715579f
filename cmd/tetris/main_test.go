package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// resetFlags restores flag defaults after a test changes them.
func resetFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		flagSeed = 0
		flagConfig = ""
		flagDifficulty = ""
		flagRandomizer = ""
		flagTicks = 5000
		flagShowBoard = true
		flagPlain = false
		flagClear = false
		flagDBPath = "~/.tetris/scores.db"
		flagLogPath = "~/.tetris/tetris.log"
		tetris.SetConfig(config.DefaultTetrisConfig())
	})
}

func TestSimulateIsDeterministic(t *testing.T) {
	run := func() tetris.Snapshot {
		g := tetris.New()
		g.Reset(core.RuntimeConfig{Seed: 9})
		return simulate(g, 9, 3000, nil)
	}

	a, b := run(), run()
	if a.Tick != b.Tick || a.Score != b.Score || a.Cells != b.Cells {
		t.Errorf("equal seeds diverged: tick %d/%d score %d/%d", a.Tick, b.Tick, a.Score, b.Score)
	}
	if a.Score == 0 {
		t.Error("a 3000-tick game should lock at least one piece")
	}
}

func TestSimulateCommand(t *testing.T) {
	resetFlags(t)
	t.Setenv("HOME", t.TempDir())
	flagLogPath = filepath.Join(t.TempDir(), "tetris.log")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"simulate", "--seed", "3", "--ticks", "200000", "--difficulty", "hard"})
	defer rootCmd.SetArgs(nil)

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("simulate failed: %v", err)
	}

	text := out.String()
	for _, want := range []string{"seed 3", "GAME OVER!", "SCORE: "} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q:\n%s", want, text)
		}
	}
}

func TestSimulateWideCells(t *testing.T) {
	resetFlags(t)
	t.Setenv("HOME", t.TempDir())
	flagLogPath = filepath.Join(t.TempDir(), "tetris.log")

	cfgPath := filepath.Join(t.TempDir(), "tetris.yaml")
	if err := os.WriteFile(cfgPath, []byte("display:\n  cell_width: 3\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"simulate", "--seed", "5", "--ticks", "50", "--config", cfgPath})
	defer rootCmd.SetArgs(nil)

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("simulate failed: %v", err)
	}

	text := out.String()
	if strings.Contains(text, "Window too small") {
		t.Fatalf("board should fit the simulate screen:\n%s", text)
	}
	if !strings.Contains(text, "Score  ") {
		t.Errorf("HUD missing from simulate output:\n%s", text)
	}
}

func TestLoadGameConfigFlags(t *testing.T) {
	resetFlags(t)
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	flagDifficulty = "fixed"
	flagRandomizer = "bag"
	cfg, err := loadGameConfig()
	if err != nil {
		t.Fatalf("loadGameConfig() failed: %v", err)
	}
	if cfg.Difficulty.Enabled || cfg.Engine.Randomizer != "bag" {
		t.Errorf("flags not applied: %+v", cfg)
	}

	flagDifficulty = "brutal"
	if _, err := loadGameConfig(); err == nil {
		t.Error("expected error for unknown difficulty")
	}

	flagDifficulty = ""
	flagRandomizer = "pity"
	if _, err := loadGameConfig(); err == nil {
		t.Error("expected error for unknown randomizer")
	}
}

func TestScoresPlain(t *testing.T) {
	resetFlags(t)
	dbPath := filepath.Join(t.TempDir(), "scores.db")

	store, err := storage.Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	store.SaveResult(gameID, storage.Result{Score: 425, Lines: 2, Pieces: 9})
	store.SaveResult(gameID, storage.Result{Score: 1625, Lines: 4, Pieces: 20})
	store.Close()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"scores", "--plain", "--db", dbPath})
	defer rootCmd.SetArgs(nil)

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("scores failed: %v", err)
	}

	text := out.String()
	first := strings.Index(text, "1625")
	second := strings.Index(text, "425")
	if first < 0 || second < 0 || first > second {
		t.Errorf("scores missing or out of order:\n%s", text)
	}
	if !strings.Contains(text, "Games: 2") {
		t.Errorf("stats line missing:\n%s", text)
	}
}

func TestScoresClear(t *testing.T) {
	resetFlags(t)
	dbPath := filepath.Join(t.TempDir(), "scores.db")

	store, err := storage.Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	store.SaveResult(gameID, storage.Result{Score: 425})
	store.SaveResult(gameID, storage.Result{Score: 50})
	store.Close()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"scores", "--clear", "--db", dbPath})
	defer rootCmd.SetArgs(nil)

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("scores --clear failed: %v", err)
	}
	if !strings.Contains(out.String(), "Removed 2 scores.") {
		t.Errorf("unexpected output: %q", out.String())
	}

	store, err = storage.Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	if high, _ := store.HighScore(gameID); high != 0 {
		t.Errorf("HighScore() after clear = %d, expected 0", high)
	}
}

func TestConfigPrintsDefaults(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"config"})
	defer rootCmd.SetArgs(nil)

	if err := rootCmd.Execute(); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out.Bytes(), config.GetDefaultYAML()) {
		t.Errorf("config output differs from the embedded defaults:\n%s", out.String())
	}
}

func TestList(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"list"})
	defer rootCmd.SetArgs(nil)

	if err := rootCmd.Execute(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "tetris") {
		t.Errorf("list output missing tetris:\n%s", out.String())
	}
}
