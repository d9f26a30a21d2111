package core

// Color identifies a foreground or background color for a screen cell.
// Drivers translate it to their own palette (ANSI 256 for lipgloss, tcell colors).
type Color uint8

// Palette used by the game and the drivers.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorNavy
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
	ColorGray
)

// String returns the palette name of the color.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorBlack:
		return "black"
	case ColorNavy:
		return "navy"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorBlue:
		return "blue"
	case ColorCyan:
		return "cyan"
	case ColorWhite:
		return "white"
	case ColorGray:
		return "gray"
	default:
		return "unknown"
	}
}
