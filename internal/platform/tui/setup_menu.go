package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}
	return MenuActionNone
}

// SetupSelection holds the choices made in the setup menu.
type SetupSelection struct {
	Difficulty config.DifficultyPreset
	Randomizer string
}

type menuOption struct {
	label string
	value string
}

var (
	difficultyOptions = []menuOption{
		{"Easy - slowest start", string(config.DifficultyEasy)},
		{"Normal - a little faster", string(config.DifficultyNormal)},
		{"Hard - starts near top speed", string(config.DifficultyHard)},
		{"Fixed - speed never changes", string(config.DifficultyFixed)},
	}
	randomizerOptions = []menuOption{
		{"Uniform - any piece, any time", tetris.RandomizerUniform},
		{"Bag - every piece once per seven", tetris.RandomizerBag},
	}
)

// SetupModel lets the player choose a difficulty and then a randomizer.
type SetupModel struct {
	cursor      int
	inRandomize bool
	width       int
	height      int
	selection   SetupSelection
	choosing    bool
	quitting    bool
}

// NewSetupModel creates a new setup menu.
func NewSetupModel(width, height int) SetupModel {
	return SetupModel{
		width:    width,
		height:   height,
		choosing: true,
	}
}

// Init initializes the model.
func (m SetupModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(MapKeyToMenuAction(msg))
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m SetupModel) options() []menuOption {
	if m.inRandomize {
		return randomizerOptions
	}
	return difficultyOptions
}

func (m SetupModel) handleKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.options())-1 {
			m.cursor++
		}
	case MenuActionSelect:
		value := m.options()[m.cursor].value
		if !m.inRandomize {
			m.selection.Difficulty = config.DifficultyPreset(value)
			m.inRandomize = true
			m.cursor = 0
			return m, nil
		}
		m.selection.Randomizer = value
		m.choosing = false
		return m, tea.Quit
	case MenuActionBack:
		if m.inRandomize {
			m.inRandomize = false
			m.cursor = 0
		}
	}
	return m, nil
}

// View renders the current step of the menu.
func (m SetupModel) View() string {
	if m.quitting || !m.choosing {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("T E T R I S", m.width))
	b.WriteString("\n\n")
	if m.inRandomize {
		b.WriteString(centerText("Select piece randomizer:", m.width))
	} else {
		b.WriteString(centerText("Select difficulty:", m.width))
	}
	b.WriteString("\n\n")

	for i, opt := range m.options() {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+opt.label, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if the menu was not completed.
func (m SetupModel) Selected() *SetupSelection {
	if m.choosing || m.quitting {
		return nil
	}
	return &m.selection
}

// RunSetupMenu shows the setup menu. It returns nil if the player quit.
func RunSetupMenu(width, height int) (*SetupSelection, error) {
	p := tea.NewProgram(
		NewSetupModel(width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(SetupModel)
	if !ok {
		return nil, nil
	}
	return m.Selected(), nil
}
