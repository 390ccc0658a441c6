// Package tui provides the Bubble Tea frontend for the snake game.
// It handles the terminal UI loop, input mapping, and drawing; the game
// rules live in the snake package.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent to trigger a frame: one OnTick call and one redraw.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that sends frame messages at the specified rate.
func frameCmd(frameRate int) tea.Cmd {
	interval := time.Second / time.Duration(frameRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
