package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var flagFPS int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Play Snake in the terminal.

The board is drawn two characters per cell, so a 30x20 grid needs a
terminal of at least 62x24. The game waits while the terminal is smaller.

Controls:
  Arrow keys   - Steer
  Q/Esc        - Quit

Examples:
  snake play
  snake play --seed 42
  snake play --log-level debug --log-file snake.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagFPS, "fps", 60, "Frame rate of the terminal UI (the game still ticks at its own rate)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	s, err := newSession(true)
	if err != nil {
		return err
	}

	// Get terminal size early so the first frame is laid out correctly
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	needW, needH := tui.RequiredSize(snake.Grid{Width: s.cfg.Grid.Width, Height: s.cfg.Grid.Height})
	if width < needW || height < needH {
		s.logger.Warn("terminal smaller than the board, waiting for resize",
			"have", fmt.Sprintf("%dx%d", width, height),
			"need", fmt.Sprintf("%dx%d", needW, needH),
		)
	}

	fps := flagFPS
	if fps <= 0 {
		fps = core.DefaultConfig().FrameRate
	}
	rc := core.RuntimeConfig{
		ScreenW:   width,
		ScreenH:   height,
		FrameRate: fps,
	}

	gameOver, err := tui.Run(s.game, rc, s.logger)
	if err != nil {
		s.closeLog()
		return fmt.Errorf("error running game: %w", err)
	}
	s.finish(gameOver)
	return nil
}
