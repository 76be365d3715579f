package tetris

import (
	"math/rand"
)

// Phase is the engine's state machine state.
type Phase string

const (
	PhaseRunning   Phase = "running"
	PhaseLineClear Phase = "line_clear" // Cleared rows shown empty, collapse pending
	PhaseGameOver  Phase = "game_over"
)

// Intents are the player requests for one tick. Each is edge-triggered and
// applied at most once.
type Intents struct {
	Left     bool
	Right    bool
	SoftDrop bool
	Rotate   bool
}

// Options tune scoring, speed and pacing. Zero fields take the value from
// DefaultOptions, except ClearDelayTicks where zero collapses cleared rows in
// the same tick.
type Options struct {
	InitialFallInterval int // Ticks between forced descents at start
	MinFallInterval     int // Fall interval never drops below this
	SpeedUpEvery        int // Locks between speed-ups; negative disables
	LockPoints          int // Points for every lock
	LineBonusBase       int // Bonus is (2^lines) * LineBonusBase
	ClearDelayTicks     int // Ticks cleared rows stay visible before collapsing

	Seed       int64       // Seeds the randomizer when Shapes is nil
	Randomizer string      // "uniform" (default) or "bag"
	Shapes     ShapeSource // Overrides Randomizer when set
}

// DefaultOptions returns the classic rules: 20-tick fall interval shrinking by
// one every 50 locks down to 10, 25 points per lock plus 2^n*100 for n lines,
// and an 8-tick pause on line clears.
func DefaultOptions() Options {
	return Options{
		InitialFallInterval: 20,
		MinFallInterval:     10,
		SpeedUpEvery:        50,
		LockPoints:          25,
		LineBonusBase:       100,
		ClearDelayTicks:     8,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.InitialFallInterval <= 0 {
		o.InitialFallInterval = d.InitialFallInterval
	}
	if o.MinFallInterval <= 0 {
		o.MinFallInterval = d.MinFallInterval
	}
	if o.SpeedUpEvery == 0 {
		o.SpeedUpEvery = d.SpeedUpEvery
	}
	if o.LockPoints == 0 {
		o.LockPoints = d.LockPoints
	}
	if o.LineBonusBase == 0 {
		o.LineBonusBase = d.LineBonusBase
	}
	if o.ClearDelayTicks < 0 {
		o.ClearDelayTicks = 0
	}
	return o
}

// LockEvent describes a lock that happened during the last tick.
type LockEvent struct {
	Locked bool
	Piece  Piece
	Rows   int // Rows cleared by this lock
	Points int // Points awarded for this lock
}

// Engine owns the board, the falling piece and all progress counters.
// Tick is the only method that mutates it.
type Engine struct {
	opts   Options
	shapes ShapeSource
	board  *Board

	piece    Piece
	hasPiece bool
	phase    Phase

	tick         uint64
	fallCounter  int
	fallInterval int
	piecesLocked int
	score        int
	lines        int

	pendingRows []int
	clearTicks  int

	event LockEvent
}

// NewEngine creates an engine with an empty board and spawns the first piece.
// It returns an error only for an unknown randomizer name.
func NewEngine(opts Options) (*Engine, error) {
	opts = opts.withDefaults()

	shapes := opts.Shapes
	if shapes == nil {
		var err error
		shapes, err = NewShapeSource(opts.Randomizer, rand.New(rand.NewSource(opts.Seed)))
		if err != nil {
			return nil, err
		}
	}

	e := &Engine{
		opts:         opts,
		shapes:       shapes,
		board:        NewBoard(),
		phase:        PhaseRunning,
		fallInterval: opts.InitialFallInterval,
	}
	e.spawn()
	return e, nil
}

// Tick advances the game by one step: intents, then gravity (with lock, line
// clear, scoring and spawn), and returns the resulting snapshot. After game
// over it returns the final snapshot and changes nothing.
func (e *Engine) Tick(in Intents) Snapshot {
	if e.phase == PhaseGameOver {
		s := e.Snapshot()
		s.Event = LockEvent{}
		return s
	}

	e.tick++
	e.event = LockEvent{}

	if e.phase == PhaseLineClear {
		e.clearTicks--
		if e.clearTicks <= 0 {
			e.finishLineClear()
		}
		return e.Snapshot()
	}

	e.applyIntents(in)

	e.fallCounter++
	if e.fallCounter >= e.fallInterval {
		e.fallCounter = 0
		e.applyGravity()
	}

	return e.Snapshot()
}

// applyIntents attempts each requested move once, keeping only moves that fit.
func (e *Engine) applyIntents(in Intents) {
	if in.Right {
		e.try(e.piece.Moved(1, 0))
	}
	if in.Left {
		e.try(e.piece.Moved(-1, 0))
	}
	if in.SoftDrop {
		e.try(e.piece.Moved(0, 1))
	}
	if in.Rotate {
		e.try(e.piece.Rotated())
	}
}

// try replaces the active piece with next if it fits.
func (e *Engine) try(next Piece) bool {
	if !Fits(e.board, next) {
		return false
	}
	e.piece = next
	return true
}

// applyGravity moves the piece down one row, or locks it if it cannot move.
func (e *Engine) applyGravity() {
	if e.try(e.piece.Moved(0, 1)) {
		return
	}
	e.lock()
}

// lock commits the active piece, clears full rows, scores, and either starts
// the line-clear pause or spawns the next piece.
func (e *Engine) lock() {
	locked := e.piece
	e.board.LockPiece(locked)
	e.hasPiece = false

	e.piecesLocked++
	if e.opts.SpeedUpEvery > 0 && e.piecesLocked%e.opts.SpeedUpEvery == 0 &&
		e.fallInterval > e.opts.MinFallInterval {
		e.fallInterval--
	}

	rows := e.board.DetectFullRows(locked.Y, locked.Y+3)
	e.board.ClearRows(rows)

	points := e.opts.LockPoints
	if len(rows) > 0 {
		points += (1 << len(rows)) * e.opts.LineBonusBase
	}
	e.score += points
	e.lines += len(rows)
	e.event = LockEvent{Locked: true, Piece: locked, Rows: len(rows), Points: points}

	if len(rows) > 0 && e.opts.ClearDelayTicks > 0 {
		e.pendingRows = rows
		e.clearTicks = e.opts.ClearDelayTicks
		e.phase = PhaseLineClear
		return
	}

	e.board.CollapseRowsDown(rows)
	e.spawn()
}

// finishLineClear collapses the pending rows and resumes play.
func (e *Engine) finishLineClear() {
	e.board.CollapseRowsDown(e.pendingRows)
	e.pendingRows = nil
	e.clearTicks = 0
	e.phase = PhaseRunning
	e.spawn()
}

// spawn places a new piece at the top center. If it does not fit the game is over.
func (e *Engine) spawn() {
	e.piece = Piece{
		Shape: e.shapes.Next(),
		X:     BoardWidth / 2,
		Y:     0,
	}
	e.hasPiece = true
	if !Fits(e.board, e.piece) {
		e.phase = PhaseGameOver
	}
}

// Score returns the current score.
func (e *Engine) Score() int { return e.score }

// Lines returns the total number of rows cleared.
func (e *Engine) Lines() int { return e.lines }

// FallInterval returns the current number of ticks between forced descents.
func (e *Engine) FallInterval() int { return e.fallInterval }

// PiecesLocked returns how many pieces have been locked.
func (e *Engine) PiecesLocked() int { return e.piecesLocked }

// Phase returns the current state machine phase.
func (e *Engine) Phase() Phase { return e.phase }

// GameOver reports whether the game has ended.
func (e *Engine) GameOver() bool { return e.phase == PhaseGameOver }

// Piece returns the active piece and whether one is in play.
// No piece is in play during the line-clear pause.
func (e *Engine) Piece() (Piece, bool) { return e.piece, e.hasPiece }

// Board returns a copy of the board.
func (e *Engine) Board() *Board { return e.board.Clone() }
