package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestRectFitsIn(t *testing.T) {
	screen := NewRect(0, 0, 40, 18)

	tests := []struct {
		name string
		r    Rect
		want bool
	}{
		{"exact", NewRect(0, 0, 40, 18), true},
		{"smaller", NewRect(0, 0, 24, 18), true},
		{"too wide", NewRect(0, 0, 41, 10), false},
		{"too tall", NewRect(0, 0, 10, 19), false},
		{"offset ignored", NewRect(30, 30, 40, 18), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.r.FitsIn(screen); got != tc.want {
				t.Errorf("FitsIn() = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestRectCenterIn(t *testing.T) {
	outer := NewRect(0, 0, 80, 24)
	inner := NewRect(0, 0, 24, 18).CenterIn(outer)

	if inner.X != 28 || inner.Y != 3 {
		t.Errorf("CenterIn() = (%d, %d), expected (28, 3)", inner.X, inner.Y)
	}
	if inner.W != 24 || inner.H != 18 {
		t.Errorf("CenterIn() changed size to %dx%d", inner.W, inner.H)
	}

	big := NewRect(0, 0, 100, 30).CenterIn(outer)
	if big.X != -10 || big.Y != -3 {
		t.Errorf("CenterIn() oversized = (%d, %d), expected (-10, -3)", big.X, big.Y)
	}
}
