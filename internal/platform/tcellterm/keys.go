package tcellterm

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/glyphflap/internal/core"
)

// ActionForKey maps a tcell key event to a game action.
func ActionForKey(ev *tcell.EventKey) core.Action {
	if ev.Key() != tcell.KeyRune {
		return core.ActionNone
	}
	return actionForRune(ev.Rune())
}

func actionForRune(r rune) core.Action {
	switch r {
	case ' ':
		return core.ActionFlap
	case 'p', 'P':
		return core.ActionPlay
	case 'q', 'Q':
		return core.ActionQuit
	}
	return core.ActionNone
}

var tcellColors = map[core.Color]tcell.Color{
	core.ColorDefault: tcell.ColorDefault,
	core.ColorBlack:   tcell.ColorBlack,
	core.ColorNavy:    tcell.ColorNavy,
	core.ColorRed:     tcell.ColorRed,
	core.ColorGreen:   tcell.ColorGreen,
	core.ColorYellow:  tcell.ColorYellow,
	core.ColorBlue:    tcell.ColorBlue,
	core.ColorCyan:    tcell.ColorAqua,
	core.ColorWhite:   tcell.ColorWhite,
	core.ColorGray:    tcell.ColorGray,
}

func styleFor(fg, bg core.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(tcellColors[fg]).Background(tcellColors[bg])
}
