package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

const (
	hudWidth  = 14 // Columns reserved right of the board
	hudGap    = 2
	blockRune = '█'
)

// Package-level config, set by the CLI before the platform creates the game.
var gameConfig = config.DefaultTetrisConfig()

// SetConfig replaces the configuration used by games created after this call.
func SetConfig(cfg config.TetrisConfig) {
	gameConfig = cfg
}

// Game adapts the engine to the platform's Game interface.
type Game struct {
	cfg     config.TetrisConfig
	engine  *Engine
	snap    Snapshot
	palette [4]core.Color // Indexed by Cell
}

// New creates a game using the current package config.
func New() *Game {
	return &Game{cfg: gameConfig}
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Options builds engine options from the game config and seed.
func (g *Game) Options(seed int64) Options {
	e := g.cfg.Engine
	dm := config.NewDifficultyManager(g.cfg.Difficulty, e)
	return Options{
		InitialFallInterval: dm.InitialFallInterval(),
		MinFallInterval:     e.MinFallInterval,
		SpeedUpEvery:        dm.SpeedUpEvery(),
		LockPoints:          e.LockPoints,
		LineBonusBase:       e.LineBonusBase,
		ClearDelayTicks:     e.ClearDelayTicks,
		Seed:                seed,
		Randomizer:          e.Randomizer,
	}
}

// Reset starts a new game. Screen size is read at render time.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	engine, err := NewEngine(g.Options(cfg.Seed))
	if err != nil {
		// Unknown randomizer; play with the default rules.
		opts := DefaultOptions()
		opts.Seed = cfg.Seed
		engine, _ = NewEngine(opts)
	}
	g.engine = engine
	g.snap = engine.Snapshot()

	colors := g.cfg.Display.Colors
	for cell, name := range map[Cell]string{
		CellEmpty:  colors.Empty,
		CellBorder: colors.Border,
		CellLocked: colors.Locked,
		CellActive: colors.Active,
	} {
		g.palette[cell], _ = core.ParseColor(name)
	}
}

// Step advances the engine by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.snap = g.engine.Tick(IntentsFromInput(in))
	return core.StepResult{State: g.State()}
}

// IntentsFromInput maps platform actions to engine intents.
func IntentsFromInput(in core.InputFrame) Intents {
	return Intents{
		Left:     in.Has(core.ActionLeft),
		Right:    in.Has(core.ActionRight),
		SoftDrop: in.Has(core.ActionDown),
		Rotate:   in.Has(core.ActionRotate),
	}
}

// Snapshot returns the snapshot produced by the last Step (or Reset).
func (g *Game) Snapshot() Snapshot {
	return g.snap
}

// State returns the current game state. The line-clear pause reports as paused.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.snap.Score,
		Lines:    g.snap.Lines,
		Pieces:   g.snap.PiecesLocked,
		GameOver: g.snap.GameOver(),
		Paused:   g.snap.Phase == PhaseLineClear,
	}
}

// LayoutSize is the screen size that shows the board and the HUD.
func (g *Game) LayoutSize() (width, height int) {
	return BoardWidth*g.cellWidth() + hudGap + hudWidth, BoardHeight
}

func (g *Game) cellWidth() int {
	return max(g.cfg.Display.CellWidth, 1)
}

// Render draws the board, the HUD and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	cw := g.cellWidth()
	boardW := BoardWidth * cw
	layout := core.NewRect(0, 0, boardW+hudGap+hudWidth, BoardHeight)
	screen := core.NewRect(0, 0, dst.Width(), dst.Height())

	if !layout.FitsIn(screen) {
		if !core.NewRect(0, 0, boardW, BoardHeight).FitsIn(screen) {
			g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", boardW, BoardHeight))
			return
		}
		// Board fits but the HUD does not: draw the board alone.
		layout.W = boardW
	}
	layout = layout.CenterIn(screen)

	g.renderBoard(dst, layout.X, layout.Y, cw)
	if layout.W > boardW {
		g.renderHUD(dst, layout.X+boardW+hudGap, layout.Y)
	}

	if g.snap.GameOver() {
		g.renderOverlay(dst, "GAME OVER!", fmt.Sprintf("SCORE: %d!", g.snap.Score))
	}
}

// renderBoard draws every board cell cw columns wide at (ox, oy).
func (g *Game) renderBoard(dst *core.Screen, ox, oy, cw int) {
	for y := range BoardHeight {
		for x := range BoardWidth {
			cell := g.snap.Cells[y][x]
			dst.DrawRect(core.NewRect(ox+x*cw, oy+y, cw, 1), core.Cell{
				Rune:  blockRune,
				Color: g.palette[cell],
			})
		}
	}
}

// renderHUD draws score and speed to the right of the board.
func (g *Game) renderHUD(dst *core.Screen, x, y int) {
	dst.DrawColorText(x, y, g.Title(), core.ColorYellow)
	dst.DrawText(x, y+2, fmt.Sprintf("Score  %d", g.snap.Score))
	dst.DrawText(x, y+3, fmt.Sprintf("Lines  %d", g.snap.Lines))
	dst.DrawText(x, y+4, fmt.Sprintf("Pieces %d", g.snap.PiecesLocked))
	dst.DrawText(x, y+5, fmt.Sprintf("Drop   %d", g.snap.FallInterval))

	if g.snap.Phase == PhaseLineClear {
		dst.DrawColorText(x, y+7, fmt.Sprintf("Clear x%d", len(g.snap.PendingRows)), core.ColorGreen)
	}
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len(line1), len(line2)) + 4
	box := core.NewRect(0, 0, boxW, 5).CenterIn(core.NewRect(0, 0, dst.Width(), dst.Height()))

	dst.DrawRect(box, core.Cell{Rune: ' '})
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
