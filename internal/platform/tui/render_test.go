package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func TestRenderScreenText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawColorText(0, 0, "ab", core.ColorRed)
	s.DrawColorText(2, 0, "cd", core.ColorGreen)
	s.DrawText(0, 1, "plain")

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	for _, want := range []string{"ab", "cd", "plain"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestColorStylesCoverPalette(t *testing.T) {
	if len(colorStyles) != int(core.ColorGray)+1 {
		t.Fatalf("%d styles for %d colours", len(colorStyles), int(core.ColorGray)+1)
	}
	for c := core.ColorBlack; c <= core.ColorGray; c++ {
		if ansiCodes[c] == "" {
			t.Errorf("no terminal colour for %v", c)
		}
	}
}

func TestRenderScreenUnknownColor(t *testing.T) {
	s := core.NewScreen(3, 1)
	s.SetCell(0, 0, core.Cell{Rune: 'x', Color: core.Color(42)})

	if out := RenderScreen(s); !strings.Contains(out, "x") {
		t.Errorf("unknown colour should fall back to the default style, got %q", out)
	}
}
