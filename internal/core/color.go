package core

// Color represents a foreground color for a screen cell.
// Uses ANSI color codes for terminal compatibility.
type Color uint8

// Predefined colors for board elements and HUD text.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorWhite
	ColorGray
)

// String returns the color name as used in YAML config files.
func (c Color) String() string {
	switch c {
	case ColorBlack:
		return "black"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorBlue:
		return "blue"
	case ColorWhite:
		return "white"
	case ColorGray:
		return "gray"
	default:
		return "default"
	}
}

// ParseColor maps a color name to a Color. Unknown names yield ColorDefault and false.
func ParseColor(name string) (Color, bool) {
	for c := ColorDefault; c <= ColorGray; c++ {
		if c.String() == name {
			return c, true
		}
	}
	return ColorDefault, false
}
