package tetris

// Snapshot is a read-only view of the engine after a tick, for rendering and
// determinism checks.
type Snapshot struct {
	Tick  uint64
	Phase Phase

	// Cells is the board with the active piece drawn as CellActive.
	Cells [BoardHeight][BoardWidth]Cell

	Piece    Piece
	HasPiece bool

	Score        int
	Lines        int
	PiecesLocked int
	FallInterval int

	PendingRows    []int // Rows waiting to collapse during PhaseLineClear
	ClearTicksLeft int

	Event LockEvent // Lock that happened during this tick, if any
}

// GameOver reports whether the snapshot is of a finished game.
func (s Snapshot) GameOver() bool {
	return s.Phase == PhaseGameOver
}

// Snapshot returns the current view of the engine.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Tick:           e.tick,
		Phase:          e.phase,
		Cells:          e.board.Grid(),
		Piece:          e.piece,
		HasPiece:       e.hasPiece,
		Score:          e.score,
		Lines:          e.lines,
		PiecesLocked:   e.piecesLocked,
		FallInterval:   e.fallInterval,
		ClearTicksLeft: e.clearTicks,
		Event:          e.event,
	}
	if len(e.pendingRows) > 0 {
		s.PendingRows = append([]int(nil), e.pendingRows...)
	}

	if e.hasPiece {
		for _, c := range e.piece.Cells() {
			if c.X >= 0 && c.X < BoardWidth && c.Y >= 0 && c.Y < BoardHeight {
				s.Cells[c.Y][c.X] = CellActive
			}
		}
	}
	return s
}
