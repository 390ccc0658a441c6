// Package snake implements the grid simulation: a snake moving on a
// wrapping board, growing on food and ending the game when it runs into
// itself. Frontends drive it through OnTick and OnKey and draw it through
// the read-only accessors; nothing here renders or blocks.
package snake

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	mrand "math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// GameOverMessage is printed by frontends when the game terminates.
const GameOverMessage = "GAME OVER!"

// TickOutcome is the result of one OnTick call.
type TickOutcome int

const (
	NoOp       TickOutcome = iota // Too early, nothing changed
	Advanced                      // The snake moved one cell
	Terminated                    // The snake ran into itself
)

func (o TickOutcome) String() string {
	switch o {
	case NoOp:
		return "noop"
	case Advanced:
		return "advanced"
	case Terminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Game owns the snake, the food and the random source, and advances the
// simulation at a fixed rate no matter how often OnTick is called.
// A Game is driven by a single goroutine.
type Game struct {
	grid       Grid
	interval   time.Duration
	snake      *Snake
	food       Food
	rng        *mrand.Rand
	lastUpdate time.Time
	tick       uint64
	terminated bool
	logger     *log.Logger
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger used for gameplay events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithStartTime sets the time the game considers its last update.
// Defaults to time.Now at construction.
func WithStartTime(t time.Time) Option {
	return func(g *Game) {
		g.lastUpdate = t
	}
}

// New creates a game from a validated configuration. The random source is
// seeded once with seed and never reseeded.
func New(cfg config.SnakeConfig, seed int64, opts ...Option) *Game {
	grid := Grid{Width: cfg.Grid.Width, Height: cfg.Grid.Height}
	head := Coord{X: cfg.Start.Head.X, Y: cfg.Start.Head.Y}

	g := &Game{
		grid:       grid,
		interval:   cfg.TickInterval(),
		snake:      NewSnake(head, grid),
		food:       Food{Position: Coord{X: cfg.Start.Food.X, Y: cfg.Start.Food.Y}},
		rng:        mrand.New(mrand.NewSource(seed)),
		lastUpdate: time.Now(),
		logger:     log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// NewSeed draws a seed from the operating system's entropy source.
func NewSeed() (int64, error) {
	return seedFrom(rand.Reader)
}

func seedFrom(r io.Reader) (int64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, fmt.Errorf("snake: cannot read seed entropy: %w", err)
	}
	return int64(binary.NativeEndian.Uint64(buf[:])), nil
}

// OnTick is called by the frame driver, at any rate. It advances the
// simulation only when a full tick interval has passed since the last
// update.
func (g *Game) OnTick(now time.Time) TickOutcome {
	if g.terminated {
		return Terminated
	}
	if now.Sub(g.lastUpdate) < g.interval {
		return NoOp
	}

	g.snake.Update(g.food)
	g.tick++

	if g.snake.Ate() {
		// The new position may land on the snake; it is not re-rolled.
		g.food.Position = g.grid.Random(g.rng)
		g.logger.Debug("food eaten",
			"tick", g.tick,
			"length", g.snake.Len(),
			"food", g.food.Position,
			"on_snake", g.snake.Occupies(g.food.Position),
		)
	}

	if g.snake.SelfCollided() {
		g.terminated = true
		g.logger.Info("game over",
			"tick", g.tick,
			"length", g.snake.Len(),
			"head", g.snake.Head(),
		)
		return Terminated
	}

	g.lastUpdate = now
	return Advanced
}

// OnKey applies an arrow key to the snake. Keys without a direction and
// reversals onto the snake's neck are ignored.
func (g *Game) OnKey(code core.KeyCode) {
	if g.terminated {
		return
	}
	d, ok := DirectionFromKey(code)
	if !ok {
		return
	}
	if g.snake.Turn(d) {
		g.logger.Debug("turn", "direction", d, "tick", g.tick)
	}
}

// Head returns the snake head position.
func (g *Game) Head() Coord {
	return g.snake.Head()
}

// Body returns a copy of the snake body, front segment first.
func (g *Game) Body() []Coord {
	return g.snake.Body()
}

// Food returns the food position.
func (g *Game) Food() Coord {
	return g.food.Position
}

// Direction returns the snake's heading.
func (g *Game) Direction() Direction {
	return g.snake.Direction()
}

// Grid returns the board dimensions.
func (g *Game) Grid() Grid {
	return g.grid
}

// Terminated reports whether the snake has run into itself.
func (g *Game) Terminated() bool {
	return g.terminated
}
