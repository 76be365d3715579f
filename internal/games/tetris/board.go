package tetris

// Board dimensions, including the one-cell border on the left, right and bottom.
const (
	BoardWidth  = 12
	BoardHeight = 18
)

// Cell is the content of one board position.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellBorder
	CellLocked
	CellActive // Only appears in snapshots, never stored in the board
)

// String returns a short name for the cell kind.
func (c Cell) String() string {
	switch c {
	case CellEmpty:
		return "empty"
	case CellBorder:
		return "border"
	case CellLocked:
		return "locked"
	case CellActive:
		return "active"
	default:
		return "unknown"
	}
}

// Board is the playfield. Cells are stored in row-major order: index = y*W + x.
// Column 0, column W-1 and row H-1 are border and never change.
type Board struct {
	cells [BoardWidth * BoardHeight]Cell
}

// NewBoard creates a bordered board with an empty interior.
func NewBoard() *Board {
	b := &Board{}
	for y := range BoardHeight {
		for x := range BoardWidth {
			if x == 0 || x == BoardWidth-1 || y == BoardHeight-1 {
				b.cells[b.index(x, y)] = CellBorder
			}
		}
	}
	return b
}

// index converts a coordinate to a flat array index.
func (b *Board) index(x, y int) int {
	return y*BoardWidth + x
}

// InBounds returns true if the coordinate is on the board.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < BoardWidth && y >= 0 && y < BoardHeight
}

// IsInterior returns true for cells that can hold pieces.
func (b *Board) IsInterior(x, y int) bool {
	return x >= 1 && x < BoardWidth-1 && y >= 0 && y < BoardHeight-1
}

// Get returns the cell at (x, y). Out-of-bounds coordinates read as border.
func (b *Board) Get(x, y int) Cell {
	if !b.InBounds(x, y) {
		return CellBorder
	}
	return b.cells[b.index(x, y)]
}

// Set writes an interior cell. Writes to the border or outside the board are
// ignored so the border invariant always holds.
func (b *Board) Set(x, y int, c Cell) {
	if !b.IsInterior(x, y) || c == CellBorder || c == CellActive {
		return
	}
	b.cells[b.index(x, y)] = c
}

// LockPiece writes every occupied cell of p into the board as locked.
// It does not check that p fits; the engine only locks a piece that could
// not descend further.
func (b *Board) LockPiece(p Piece) {
	for _, c := range p.Cells() {
		b.Set(c.X, c.Y, CellLocked)
	}
}

// rowFull reports whether every interior cell of row y is locked.
func (b *Board) rowFull(y int) bool {
	for x := 1; x < BoardWidth-1; x++ {
		if b.cells[b.index(x, y)] != CellLocked {
			return false
		}
	}
	return true
}

// DetectFullRows returns, in ascending order, the rows in [from, to] whose
// interior is completely locked. The range is clamped to exclude the floor.
func (b *Board) DetectFullRows(from, to int) []int {
	from = max(from, 0)
	to = min(to, BoardHeight-2)

	var rows []int
	for y := from; y <= to; y++ {
		if b.rowFull(y) {
			rows = append(rows, y)
		}
	}
	return rows
}

// ClearRows empties the interior of each given row without moving anything.
func (b *Board) ClearRows(rows []int) {
	for _, y := range rows {
		if y < 0 || y >= BoardHeight-1 {
			continue
		}
		for x := 1; x < BoardWidth-1; x++ {
			b.cells[b.index(x, y)] = CellEmpty
		}
	}
}

// CollapseRowsDown removes each given row by shifting the interior of every
// row above it down by one and emptying row 0. Rows are processed one at a
// time in the order given; callers pass them ascending, so earlier shifts
// never move a row that is still pending.
func (b *Board) CollapseRowsDown(rows []int) {
	for _, v := range rows {
		if v < 0 || v >= BoardHeight-1 {
			continue
		}
		for x := 1; x < BoardWidth-1; x++ {
			for y := v; y >= 1; y-- {
				b.cells[b.index(x, y)] = b.cells[b.index(x, y-1)]
			}
			b.cells[b.index(x, 0)] = CellEmpty
		}
	}
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	c := *b
	return &c
}

// Grid returns the board as a 2D array of cells.
func (b *Board) Grid() [BoardHeight][BoardWidth]Cell {
	var g [BoardHeight][BoardWidth]Cell
	for y := range BoardHeight {
		copy(g[y][:], b.cells[y*BoardWidth:(y+1)*BoardWidth])
	}
	return g
}
