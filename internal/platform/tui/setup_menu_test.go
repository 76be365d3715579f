package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

func press(t *testing.T, m SetupModel, msgs ...tea.KeyMsg) (SetupModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(SetupModel)
	}
	return m, cmd
}

func TestSetupMenuSelection(t *testing.T) {
	down := tea.KeyMsg{Type: tea.KeyDown}
	enter := tea.KeyMsg{Type: tea.KeyEnter}

	m := NewSetupModel(80, 24)
	m, _ = press(t, m, down, down, enter)
	if m.Selected() != nil {
		t.Fatal("selection should not be complete after choosing difficulty")
	}

	m, cmd := press(t, m, down, enter)
	if !isQuit(cmd) {
		t.Error("completing the menu should quit the program")
	}

	sel := m.Selected()
	if sel == nil {
		t.Fatal("expected a selection")
	}
	if sel.Difficulty != config.DifficultyHard || sel.Randomizer != tetris.RandomizerBag {
		t.Errorf("selection = %+v", *sel)
	}
}

func TestSetupMenuBackAndQuit(t *testing.T) {
	m := NewSetupModel(80, 24)
	m, _ = press(t, m,
		tea.KeyMsg{Type: tea.KeyEnter},
		tea.KeyMsg{Type: tea.KeyEsc},
		tea.KeyMsg{Type: tea.KeyDown},
	)
	if m.inRandomize || m.cursor != 1 {
		t.Errorf("back should return to difficulty step, got randomize=%v cursor=%d", m.inRandomize, m.cursor)
	}

	// Cursor stops at the last option
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown})
	if m.cursor != len(difficultyOptions)-1 {
		t.Errorf("cursor = %d, expected %d", m.cursor, len(difficultyOptions)-1)
	}

	m, cmd := press(t, m, runeKey('q'))
	if !isQuit(cmd) || m.Selected() != nil {
		t.Error("q should quit without a selection")
	}
}
