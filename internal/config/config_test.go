package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultTetrisConfig().Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := parseTetris(GetDefaultYAML())
	if err != nil {
		t.Fatalf("embedded YAML failed to parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultTetrisConfig()) {
		t.Errorf("embedded YAML = %+v, expected %+v", cfg, DefaultTetrisConfig())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(c *TetrisConfig)
		wantErr string
	}{
		{
			name:    "zero fall interval",
			modify:  func(c *TetrisConfig) { c.Engine.FallInterval = 0 },
			wantErr: "fall_interval",
		},
		{
			name:    "floor above start",
			modify:  func(c *TetrisConfig) { c.Engine.MinFallInterval = 25 },
			wantErr: "min_fall_interval",
		},
		{
			name:    "zero lock points",
			modify:  func(c *TetrisConfig) { c.Engine.LockPoints = 0 },
			wantErr: "lock_points",
		},
		{
			name:    "negative line bonus",
			modify:  func(c *TetrisConfig) { c.Engine.LineBonusBase = -100 },
			wantErr: "line_bonus_base",
		},
		{
			name:    "zero line bonus",
			modify:  func(c *TetrisConfig) { c.Engine.LineBonusBase = 0 },
			wantErr: "line_bonus_base",
		},
		{
			name:    "unknown randomizer",
			modify:  func(c *TetrisConfig) { c.Engine.Randomizer = "pity" },
			wantErr: "randomizer",
		},
		{
			name:    "negative clear delay",
			modify:  func(c *TetrisConfig) { c.Engine.ClearDelayTicks = -1 },
			wantErr: "clear_delay_ticks",
		},
		{
			name:    "level out of range",
			modify:  func(c *TetrisConfig) { c.Difficulty.InitialLevel = 1.5 },
			wantErr: "initial_level",
		},
		{
			name:    "unknown color",
			modify:  func(c *TetrisConfig) { c.Display.Colors.Locked = "mauve" },
			wantErr: "colors.locked",
		},
		{
			name:    "zero tick rate",
			modify:  func(c *TetrisConfig) { c.Display.TickRate = 0 },
			wantErr: "tick_rate",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultTetrisConfig()
			tc.modify(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q should mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tetris.yaml")
	data := "engine:\n  lock_points: 10\ndisplay:\n  colors:\n    locked: yellow\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadTetris(path)
	if err != nil {
		t.Fatalf("LoadTetris() failed: %v", err)
	}

	if cfg.Engine.LockPoints != 10 {
		t.Errorf("LockPoints = %d, expected 10", cfg.Engine.LockPoints)
	}
	if cfg.Display.Colors.Locked != "yellow" {
		t.Errorf("Locked color = %q, expected yellow", cfg.Display.Colors.Locked)
	}
	// Keys not in the file keep their defaults
	if cfg.Engine.FallInterval != 20 {
		t.Errorf("FallInterval = %d, expected default 20", cfg.Engine.FallInterval)
	}
	if cfg.Display.Colors.Border != "blue" {
		t.Errorf("Border color = %q, expected default blue", cfg.Display.Colors.Border)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadTetris(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("engine: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTetris(bad); err == nil {
		t.Error("expected error for malformed YAML")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("engine:\n  fall_interval: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTetris(invalid); err == nil {
		t.Error("expected error for invalid values")
	}

	zeroScore := filepath.Join(dir, "zero.yaml")
	if err := os.WriteFile(zeroScore, []byte("engine:\n  lock_points: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTetris(zeroScore); err == nil || !strings.Contains(err.Error(), "lock_points") {
		t.Errorf("lock_points: 0 should be rejected, got %v", err)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	// Nothing on disk: embedded default
	cfg, err := LoadTetris("")
	if err != nil {
		t.Fatalf("LoadTetris() failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultTetrisConfig()) {
		t.Errorf("expected embedded default, got %+v", cfg)
	}

	// Local ./configs file
	if err := os.MkdirAll(filepath.Join(work, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	local := []byte("engine:\n  lock_points: 5\n")
	if err := os.WriteFile(filepath.Join(work, "configs", "tetris.yaml"), local, 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, _ = LoadTetris("")
	if cfg.Engine.LockPoints != 5 {
		t.Errorf("expected local config, LockPoints = %d", cfg.Engine.LockPoints)
	}

	// User config wins over local
	userDir := filepath.Join(home, ".tetris", "configs")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	user := []byte("engine:\n  lock_points: 7\n")
	if err := os.WriteFile(filepath.Join(userDir, "tetris.yaml"), user, 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, _ = LoadTetris("")
	if cfg.Engine.LockPoints != 7 {
		t.Errorf("expected user config, LockPoints = %d", cfg.Engine.LockPoints)
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(s); err != nil {
			t.Errorf("ParsePreset(%q) failed: %v", s, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestPresetsAndDifficulty(t *testing.T) {
	tests := []struct {
		preset       DifficultyPreset
		wantInterval int
		wantEvery    int
	}{
		{"", 20, 50},
		{DifficultyEasy, 20, 50},
		{DifficultyNormal, 17, 50},
		{DifficultyHard, 13, 50},
		{DifficultyFixed, 20, -1},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultTetrisConfig()
			ApplyTetrisPreset(&cfg, tc.preset)

			dm := NewDifficultyManager(cfg.Difficulty, cfg.Engine)
			if got := dm.InitialFallInterval(); got != tc.wantInterval {
				t.Errorf("InitialFallInterval() = %d, expected %d", got, tc.wantInterval)
			}
			if got := dm.SpeedUpEvery(); got != tc.wantEvery {
				t.Errorf("SpeedUpEvery() = %d, expected %d", got, tc.wantEvery)
			}
		})
	}
}

func TestDifficultyLevelClamped(t *testing.T) {
	cfg := DefaultTetrisConfig()
	dm := NewDifficultyManager(cfg.Difficulty, cfg.Engine)

	dm.SetInitialLevel(3.0)
	if got := dm.InitialFallInterval(); got != cfg.Engine.MinFallInterval {
		t.Errorf("level above 1 should give the floor, got %d", got)
	}

	dm.SetInitialLevel(-1)
	if got := dm.InitialFallInterval(); got != cfg.Engine.FallInterval {
		t.Errorf("level below 0 should give the start interval, got %d", got)
	}
}
