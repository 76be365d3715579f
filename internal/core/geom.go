// Package core holds the terminal-neutral types shared by the game and the
// UI: the cell screen buffer, colours, input frames and runtime settings.
// It imports no UI library so the game can be stepped and rendered in tests.
package core

// Rect is a cell-aligned rectangle. X and Y are the top-left corner.
type Rect struct {
	X, Y int
	W, H int
}

func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right is the first column past the rectangle.
func (r Rect) Right() int { return r.X + r.W }

// Bottom is the first row past the rectangle.
func (r Rect) Bottom() int { return r.Y + r.H }

// FitsIn reports whether r is no larger than outer in either dimension.
func (r Rect) FitsIn(outer Rect) bool {
	return r.W <= outer.W && r.H <= outer.H
}

// CenterIn returns r moved to the center of outer. The size is unchanged, so
// an oversized r ends up with negative offsets.
func (r Rect) CenterIn(outer Rect) Rect {
	r.X = outer.X + (outer.W-r.W)/2
	r.Y = outer.Y + (outer.H-r.H)/2
	return r
}
