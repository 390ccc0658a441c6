package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Play Snake in a desktop window of 32x32 pixel cells (960x640 by default).

Controls:
  Arrow keys   - Steer
  Q/Esc        - Quit

Examples:
  snake window
  snake window --seed 42`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(_ *cobra.Command, _ []string) error {
	s, err := newSession(false)
	if err != nil {
		return err
	}

	gameOver, err := window.Run(s.game, s.cfg, s.logger)
	if err != nil {
		s.closeLog()
		return fmt.Errorf("error running window: %w", err)
	}
	s.finish(gameOver)
	return nil
}
