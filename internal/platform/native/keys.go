package native

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/falling-world/internal/core"
)

// MapKey converts a tcell key event to a simulation action.
// Pause is only reported when debug is set.
func MapKey(ev *tcell.EventKey, debug bool) core.Action {
	switch ev.Key() {
	case tcell.KeyLeft:
		return core.ActionMoveLeft
	case tcell.KeyRight:
		return core.ActionMoveRight
	case tcell.KeyUp:
		return core.ActionJump
	case tcell.KeyEnter:
		return core.ActionRestart
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return core.ActionExit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'j':
			return core.ActionMoveLeft
		case 'l':
			return core.ActionMoveRight
		case ' ':
			return core.ActionJump
		case 'q':
			return core.ActionExit
		case 'p':
			if debug {
				return core.ActionPause
			}
		}
	}
	return core.ActionNone
}

// Color converts a palette color to its tcell equivalent.
func Color(c core.Color) tcell.Color {
	switch c {
	case core.ColorBlack:
		return tcell.PaletteColor(0)
	case core.ColorGreen:
		return tcell.PaletteColor(2)
	case core.ColorYellow:
		return tcell.PaletteColor(11)
	case core.ColorBrown:
		return tcell.PaletteColor(130)
	case core.ColorSky:
		return tcell.PaletteColor(117)
	case core.ColorWhite:
		return tcell.PaletteColor(15)
	case core.ColorGray:
		return tcell.PaletteColor(245)
	case core.ColorRed:
		return tcell.PaletteColor(9)
	default:
		return tcell.ColorDefault
	}
}
