package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// MapKey translates an Ebiten key to a frontend-neutral key code.
func MapKey(k ebiten.Key) core.KeyCode {
	switch k {
	case ebiten.KeyArrowUp:
		return core.KeyUp
	case ebiten.KeyArrowDown:
		return core.KeyDown
	case ebiten.KeyArrowLeft:
		return core.KeyLeft
	case ebiten.KeyArrowRight:
		return core.KeyRight
	case ebiten.KeyEscape, ebiten.KeyQ:
		return core.KeyQuit
	}
	return core.KeyUnknown
}
