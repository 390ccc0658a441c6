package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// KeyMap defines the key bindings of the terminal frontend.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Quit},
	}
}

// DefaultKeyMap returns default key bindings. Only the arrow keys steer,
// matching the windowed frontend.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "right"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// MapKey translates a Bubble Tea key message to a frontend-neutral key code.
// Unbound keys map to core.KeyUnknown.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.KeyCode {
	switch {
	case key.Matches(msg, k.Quit):
		return core.KeyQuit
	case key.Matches(msg, k.Up):
		return core.KeyUp
	case key.Matches(msg, k.Down):
		return core.KeyDown
	case key.Matches(msg, k.Left):
		return core.KeyLeft
	case key.Matches(msg, k.Right):
		return core.KeyRight
	}
	return core.KeyUnknown
}
