// Package window provides the Ebiten frontend: a desktop window with one
// filled square per grid cell.
package window

import (
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Title is the window title.
const Title = "Snake"

var (
	backgroundColor = color.RGBA{0, 0, 0, 255}
	palette         = map[core.Color]color.RGBA{
		core.ColorWhite: {255, 255, 255, 255},
		core.ColorGreen: {0, 255, 0, 255},
	}
)

// rgba returns the window color for a core color, white when unmapped.
func rgba(c core.Color) color.RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return palette[core.ColorWhite]
}

// Window adapts a snake game to ebiten.Game. Ebiten is the frame driver:
// every Update call becomes one OnTick call.
type Window struct {
	game     *snake.Game
	cfg      config.SnakeConfig
	logger   *log.Logger
	now      func() time.Time
	keys     []ebiten.Key
	gameOver bool
}

// New creates the window frontend for a game.
func New(game *snake.Game, cfg config.SnakeConfig, logger *log.Logger) *Window {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Window{
		game:   game,
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
	}
}

// Update delivers key presses and one tick to the game.
func (w *Window) Update() error {
	w.keys = inpututil.AppendJustPressedKeys(w.keys[:0])
	for _, k := range w.keys {
		code := MapKey(k)
		if code == core.KeyQuit {
			w.logger.Debug("quit requested", "key", k)
			return ebiten.Termination
		}
		w.game.OnKey(code)
	}

	if w.game.OnTick(w.now()) == snake.Terminated {
		w.gameOver = true
		return ebiten.Termination
	}
	return nil
}

// Draw paints the food, the body and the head.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	w.drawCell(screen, w.game.Food(), core.ColorGreen)
	for _, seg := range w.game.Body() {
		w.drawCell(screen, seg, core.ColorWhite)
	}
	w.drawCell(screen, w.game.Head(), core.ColorWhite)
}

func (w *Window) drawCell(screen *ebiten.Image, c snake.Coord, clr core.Color) {
	r := c.Rect(w.cfg.Cell.Width, w.cfg.Cell.Height)
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), rgba(clr), false)
}

// Layout keeps the logical screen at the board's pixel size.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.cfg.ScreenSize()
}

// GameOver reports whether the window closed because the snake collided.
func (w *Window) GameOver() bool {
	return w.gameOver
}

// Run opens the window and blocks until the game ends or the window is
// closed. It reports whether the game ended by self-collision.
func Run(game *snake.Game, cfg config.SnakeConfig, logger *log.Logger) (bool, error) {
	w := New(game, cfg, logger)

	width, height := cfg.ScreenSize()
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(Title)
	ebiten.SetVsyncEnabled(true)

	if err := ebiten.RunGame(w); err != nil {
		return false, err
	}
	return w.GameOver(), nil
}
