package core

// Color represents a foreground color for a screen cell.
// Renderers map each value to an ANSI 256-color code.
type Color uint8

// Palette used by the falling world renderers.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorGreen
	ColorYellow
	ColorBrown
	ColorSky
	ColorWhite
	ColorGray
	ColorRed
)

// ANSI returns the ANSI 256-color code for the color, or "" for the terminal default.
func (c Color) ANSI() string {
	switch c {
	case ColorBlack:
		return "0"
	case ColorGreen:
		return "2"
	case ColorYellow:
		return "11"
	case ColorBrown:
		return "130"
	case ColorSky:
		return "117"
	case ColorWhite:
		return "15"
	case ColorGray:
		return "245"
	case ColorRed:
		return "9"
	default:
		return ""
	}
}
