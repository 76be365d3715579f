package tetris

// Shape identifies one of the seven piece masks.
type Shape int

// ShapeCount is the number of distinct shapes a randomizer draws from.
const ShapeCount = 7

// shapeMasks holds the rotation-0 occupancy of each shape as a 4x4 mask in
// row-major order. 'X' marks an occupied cell.
//
// Entries 2 and 3 are both the square piece; the set has no Z piece.
var shapeMasks = [ShapeCount]string{
	"..X...X...X...X.",
	"..X..XX...X.....",
	".....XX..XX.....",
	".....XX..XX.....",
	".X...XX...X.....",
	".X...X...XX.....",
	"..X...X..XX.....",
}

var shapeNames = [ShapeCount]string{"I", "T", "O", "O", "S", "L", "J"}

// String returns a one-letter name for the shape.
func (s Shape) String() string {
	if s < 0 || int(s) >= ShapeCount {
		return "?"
	}
	return shapeNames[s]
}

// Valid reports whether s indexes a known shape.
func (s Shape) Valid() bool {
	return s >= 0 && int(s) < ShapeCount
}

// normalizeRotation reduces any rotation to 0..3.
func normalizeRotation(r int) int {
	r %= 4
	if r < 0 {
		r += 4
	}
	return r
}

// rotatedIndex maps local cell (px, py) under rotation r to an index into the
// rotation-0 mask. Each case is a quarter turn of the 4x4 grid.
func rotatedIndex(px, py, r int) int {
	switch normalizeRotation(r) {
	case 1:
		return 12 + py - 4*px
	case 2:
		return 15 - 4*py - px
	case 3:
		return 3 - py + 4*px
	default:
		return py*4 + px
	}
}

// Occupied reports whether local cell (px, py), both in [0,3], is filled for
// the shape at the given rotation. Coordinates outside the 4x4 box are empty.
func Occupied(s Shape, rotation, px, py int) bool {
	if !s.Valid() || px < 0 || px > 3 || py < 0 || py > 3 {
		return false
	}
	return shapeMasks[s][rotatedIndex(px, py, rotation)] == 'X'
}

// Point is a cell coordinate, either local to a piece box or on the board.
type Point struct {
	X, Y int
}

// Cells returns the occupied local cells of the shape at a rotation, in
// row-major order.
func (s Shape) Cells(rotation int) []Point {
	cells := make([]Point, 0, 4)
	for py := range 4 {
		for px := range 4 {
			if Occupied(s, rotation, px, py) {
				cells = append(cells, Point{X: px, Y: py})
			}
		}
	}
	return cells
}

// Piece is the falling piece: a shape, its rotation and the board position of
// its 4x4 box's top-left corner.
type Piece struct {
	Shape    Shape
	Rotation int
	X, Y     int
}

// Moved returns a copy of p shifted by (dx, dy).
func (p Piece) Moved(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

// Rotated returns a copy of p turned one quarter clockwise.
func (p Piece) Rotated() Piece {
	p.Rotation = normalizeRotation(p.Rotation + 1)
	return p
}

// Cells returns the absolute board coordinates of the piece's occupied cells.
func (p Piece) Cells() []Point {
	cells := p.Shape.Cells(p.Rotation)
	for i := range cells {
		cells[i].X += p.X
		cells[i].Y += p.Y
	}
	return cells
}
