package tetris

// Fits reports whether p can occupy the board: every occupied cell must be on
// the board and land on an empty cell. An occupied cell past any edge,
// including above row 0, is a conflict.
func Fits(b *Board, p Piece) bool {
	for py := range 4 {
		for px := range 4 {
			if !Occupied(p.Shape, p.Rotation, px, py) {
				continue
			}
			x, y := p.X+px, p.Y+py
			if !b.InBounds(x, y) {
				return false
			}
			if b.Get(x, y) != CellEmpty {
				return false
			}
		}
	}
	return true
}
