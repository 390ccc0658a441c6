package core

// KeyCode is a frontend-neutral key identifier.
// Frontends translate their raw key events (Bubble Tea key strings, Ebiten
// keys) into KeyCodes so the game never depends on a UI library.
type KeyCode int

const (
	KeyUnknown KeyCode = iota
	KeyUp              // Up arrow
	KeyDown            // Down arrow
	KeyLeft            // Left arrow
	KeyRight           // Right arrow
	KeyQuit            // Q, Ctrl+C, Escape - close the frontend
)

// String returns a human-readable name for the key.
func (k KeyCode) String() string {
	switch k {
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
