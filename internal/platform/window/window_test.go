package window

import (
	"errors"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

func TestMapKey(t *testing.T) {
	tests := []struct {
		key      ebiten.Key
		expected core.KeyCode
	}{
		{ebiten.KeyArrowUp, core.KeyUp},
		{ebiten.KeyArrowDown, core.KeyDown},
		{ebiten.KeyArrowLeft, core.KeyLeft},
		{ebiten.KeyArrowRight, core.KeyRight},
		{ebiten.KeyEscape, core.KeyQuit},
		{ebiten.KeyQ, core.KeyQuit},
		{ebiten.KeyW, core.KeyUnknown},
		{ebiten.KeySpace, core.KeyUnknown},
	}

	for _, tc := range tests {
		if got := MapKey(tc.key); got != tc.expected {
			t.Errorf("MapKey(%v) = %v, expected %v", tc.key, got, tc.expected)
		}
	}
}

func TestLayoutMatchesBoard(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	w := New(snake.New(cfg, 1), cfg, nil)

	width, height := w.Layout(1920, 1080)
	if width != 960 || height != 640 {
		t.Errorf("Layout() = %dx%d, expected 960x640", width, height)
	}
}

func TestRGBA(t *testing.T) {
	if c := rgba(core.ColorGreen); c.G != 255 || c.R != 0 {
		t.Errorf("green = %+v", c)
	}
	if c := rgba(core.ColorWhite); c.R != 255 || c.G != 255 || c.B != 255 {
		t.Errorf("white = %+v", c)
	}
	if rgba(core.ColorGray) != rgba(core.ColorWhite) {
		t.Error("unmapped colors should fall back to white")
	}
}

func TestUpdateTerminatesOnGameOver(t *testing.T) {
	// 3x1 board: eat on the first step, wrap onto the tail on the second
	cfg := config.DefaultSnakeConfig()
	cfg.Grid = config.GridConfig{Width: 3, Height: 1}
	cfg.Start.Head = config.Position{X: 1, Y: 0}
	cfg.Start.Food = config.Position{X: 2, Y: 0}

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	w := New(snake.New(cfg, 1, snake.WithStartTime(start)), cfg, nil)

	clock := start.Add(125 * time.Millisecond)
	w.now = func() time.Time { return clock }

	if err := w.Update(); err != nil {
		t.Fatalf("first Update() = %v, expected nil", err)
	}

	clock = clock.Add(125 * time.Millisecond)
	if err := w.Update(); !errors.Is(err, ebiten.Termination) {
		t.Fatalf("second Update() = %v, expected ebiten.Termination", err)
	}
	if !w.GameOver() {
		t.Error("GameOver() should be true")
	}
}
