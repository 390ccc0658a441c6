package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Direction represents the snake's movement direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// DirectionFromKey maps an arrow key to a direction.
// Any other key has no mapping and reports false.
func DirectionFromKey(code core.KeyCode) (Direction, bool) {
	switch code {
	case core.KeyUp:
		return DirUp, true
	case core.KeyDown:
		return DirDown, true
	case core.KeyLeft:
		return DirLeft, true
	case core.KeyRight:
		return DirRight, true
	}
	return 0, false
}

// Inverse returns the opposite direction.
func (d Direction) Inverse() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	}
	return d
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}
