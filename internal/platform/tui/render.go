package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/glyphflap/internal/core"
)

// ansiColors maps core.Color to ANSI 256-color codes.
// ColorDefault has no entry and leaves the terminal color unchanged.
var ansiColors = map[core.Color]lipgloss.Color{
	core.ColorBlack:  lipgloss.Color("0"),
	core.ColorNavy:   lipgloss.Color("17"),
	core.ColorRed:    lipgloss.Color("1"),
	core.ColorGreen:  lipgloss.Color("2"),
	core.ColorYellow: lipgloss.Color("11"),
	core.ColorBlue:   lipgloss.Color("4"),
	core.ColorCyan:   lipgloss.Color("6"),
	core.ColorWhite:  lipgloss.Color("15"),
	core.ColorGray:   lipgloss.Color("245"),
}

type colorPair struct {
	fg, bg core.Color
}

// styleCache holds one lipgloss style per fg/bg pair seen so far.
var styleCache = map[colorPair]lipgloss.Style{}

func styleFor(p colorPair) lipgloss.Style {
	if s, ok := styleCache[p]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	if c, ok := ansiColors[p.fg]; ok {
		s = s.Foreground(c)
	}
	if c, ok := ansiColors[p.bg]; ok {
		s = s.Background(c)
	}
	styleCache[p] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)
			pair := colorPair{start.Fg, start.Bg}

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Fg != pair.fg || cell.Bg != pair.bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(pair).Render(run.String()))
		}
	}
	return sb.String()
}
