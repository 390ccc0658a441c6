package snake

import (
	"bytes"
	"errors"
	"io"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

var t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

const tickInterval = 125 * time.Millisecond

func newTestGame(seed int64, opts ...Option) *Game {
	opts = append([]Option{WithStartTime(t0)}, opts...)
	return New(config.DefaultSnakeConfig(), seed, opts...)
}

func TestNewGame(t *testing.T) {
	g := newTestGame(1)

	if g.Head() != (Coord{15, 10}) {
		t.Errorf("Head() = %v, expected (15,10)", g.Head())
	}
	if body := g.Body(); len(body) != 1 || body[0] != (Coord{14, 10}) {
		t.Errorf("Body() = %v, expected [(14,10)]", body)
	}
	if g.Food() != (Coord{5, 5}) {
		t.Errorf("Food() = %v, expected (5,5)", g.Food())
	}
	if g.Direction() != DirRight {
		t.Errorf("Direction() = %v, expected right", g.Direction())
	}
	if g.Grid() != (Grid{Width: 30, Height: 20}) {
		t.Errorf("Grid() = %+v", g.Grid())
	}
	if g.Terminated() {
		t.Error("new game should be running")
	}
}

func TestFirstTickScenario(t *testing.T) {
	g := newTestGame(1)

	if got := g.OnTick(t0.Add(tickInterval)); got != Advanced {
		t.Fatalf("OnTick() = %v, expected advanced", got)
	}

	snap := g.Snapshot()
	if snap.Head != (Coord{16, 10}) {
		t.Errorf("head = %v, expected (16,10)", snap.Head)
	}
	if len(snap.Body) != 1 || snap.Body[0] != (Coord{15, 10}) {
		t.Errorf("body = %v, expected [(15,10)]", snap.Body)
	}
	if snap.Ate {
		t.Error("should not have eaten")
	}
	if snap.State != StateRunning {
		t.Errorf("state = %v, expected running", snap.State)
	}
	if snap.Food != (Coord{5, 5}) {
		t.Errorf("food moved to %v without being eaten", snap.Food)
	}
}

func TestEatingRelocatesFood(t *testing.T) {
	const seed = 4242
	g := newTestGame(seed)
	g.food.Position = Coord{16, 10}

	if got := g.OnTick(t0.Add(tickInterval)); got != Advanced {
		t.Fatalf("OnTick() = %v, expected advanced", got)
	}

	snap := g.Snapshot()
	if !snap.Ate {
		t.Error("expected the snake to eat")
	}
	if len(snap.Body) != 2 {
		t.Errorf("body length = %d, expected 2", len(snap.Body))
	}

	// The first draw from an identically seeded source
	want := RandomCoord(rand.New(rand.NewSource(seed)), 30, 20)
	if snap.Food != want {
		t.Errorf("food = %v, expected %v", snap.Food, want)
	}
}

func TestTickThrottling(t *testing.T) {
	g := newTestGame(1)
	before := g.Snapshot()

	if got := g.OnTick(t0.Add(tickInterval - time.Millisecond)); got != NoOp {
		t.Errorf("OnTick() before the interval = %v, expected noop", got)
	}
	after := g.Snapshot()
	if after.Tick != before.Tick || after.Head != before.Head {
		t.Error("a noop tick must not change state")
	}

	if got := g.OnTick(t0.Add(tickInterval)); got != Advanced {
		t.Fatalf("OnTick() at the interval = %v, expected advanced", got)
	}

	// Second call within the interval of the last update
	if got := g.OnTick(t0.Add(tickInterval + 100*time.Millisecond)); got != NoOp {
		t.Errorf("second OnTick() within the interval = %v, expected noop", got)
	}
	if g.Head() != (Coord{16, 10}) {
		t.Errorf("head = %v after a noop, expected (16,10)", g.Head())
	}

	if got := g.OnTick(t0.Add(2 * tickInterval)); got != Advanced {
		t.Errorf("OnTick() one interval later = %v, expected advanced", got)
	}
}

func TestLateTickAdvancesOnce(t *testing.T) {
	// A stalled frame driver does not make the snake catch up
	g := newTestGame(1)
	if got := g.OnTick(t0.Add(10 * tickInterval)); got != Advanced {
		t.Fatalf("OnTick() = %v, expected advanced", got)
	}
	if g.Head() != (Coord{16, 10}) {
		t.Errorf("head = %v, expected a single step to (16,10)", g.Head())
	}
}

func TestOnKeyReversalGuard(t *testing.T) {
	g := newTestGame(1)

	g.OnKey(core.KeyLeft)
	if g.Direction() != DirRight {
		t.Errorf("Left while heading right should be ignored, got %v", g.Direction())
	}

	g.OnKey(core.KeyUp)
	if g.Direction() != DirUp {
		t.Errorf("Up should be accepted, got %v", g.Direction())
	}

	g.OnKey(core.KeyDown)
	if g.Direction() != DirUp {
		t.Errorf("Down while heading up should be ignored, got %v", g.Direction())
	}

	g.OnKey(core.KeyQuit)
	g.OnKey(core.KeyUnknown)
	if g.Direction() != DirUp {
		t.Errorf("non-arrow keys should be ignored, got %v", g.Direction())
	}
}

func TestTermination(t *testing.T) {
	var buf bytes.Buffer
	g := newTestGame(1, WithLogger(log.New(&buf)))
	g.snake = newSnake(Coord{5, 5}, []Coord{{4, 5}, {4, 6}, {5, 6}, {6, 6}, {6, 5}}, DirRight, g.grid)

	if got := g.OnTick(t0.Add(tickInterval)); got != Terminated {
		t.Fatalf("OnTick() = %v, expected terminated", got)
	}
	if !g.Terminated() {
		t.Error("Terminated() should be true")
	}
	if g.Snapshot().State != StateTerminated {
		t.Error("snapshot should report terminated")
	}
	if !strings.Contains(buf.String(), "game over") {
		t.Errorf("expected a game over log line, got %q", buf.String())
	}

	// Terminal state: further calls change nothing
	frozen := g.Snapshot()
	g.OnKey(core.KeyUp)
	if got := g.OnTick(t0.Add(5 * tickInterval)); got != Terminated {
		t.Errorf("OnTick() after termination = %v, expected terminated", got)
	}
	after := g.Snapshot()
	if after.Tick != frozen.Tick || after.Head != frozen.Head || after.Dir != frozen.Dir {
		t.Error("terminated game must not change")
	}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed and inputs produce identical snapshots
	g1 := newTestGame(12345)
	g2 := newTestGame(12345)

	keys := map[int]core.KeyCode{
		3:  core.KeyDown,
		9:  core.KeyLeft,
		15: core.KeyUp,
		22: core.KeyRight,
	}

	for i := 1; i <= 60; i++ {
		if k, ok := keys[i]; ok {
			g1.OnKey(k)
			g2.OnKey(k)
		}
		// Put food in front of both snakes now and then so the RNG is used
		if i%5 == 0 {
			next := g1.grid.Move(g1.Head(), g1.Direction())
			g1.food.Position = next
			g2.food.Position = next
		}
		now := t0.Add(time.Duration(i) * tickInterval)
		o1, o2 := g1.OnTick(now), g2.OnTick(now)
		if o1 != o2 {
			t.Fatalf("tick %d: outcomes differ %v vs %v", i, o1, o2)
		}
	}

	s1, s2 := g1.Snapshot(), g2.Snapshot()
	if s1.Tick != s2.Tick || s1.Head != s2.Head || s1.Food != s2.Food || s1.SnakeLen != s2.SnakeLen {
		t.Errorf("snapshots differ:\n%+v\n%+v", s1, s2)
	}
}

func TestSeedFrom(t *testing.T) {
	seed, err := seedFrom(bytes.NewReader([]byte{1, 0, 0, 0, 0, 0, 0, 0}))
	if err != nil {
		t.Fatalf("seedFrom() failed: %v", err)
	}
	if seed == 0 {
		t.Error("expected a non-zero seed")
	}

	_, err = seedFrom(bytes.NewReader([]byte{1, 2, 3}))
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("short entropy read should fail with ErrUnexpectedEOF, got %v", err)
	}
}

func TestNewSeed(t *testing.T) {
	if _, err := NewSeed(); err != nil {
		t.Fatalf("NewSeed() failed: %v", err)
	}
}

func TestTickOutcomeString(t *testing.T) {
	if NoOp.String() != "noop" || Advanced.String() != "advanced" || Terminated.String() != "terminated" {
		t.Error("unexpected outcome names")
	}
}

func TestGameOverMessage(t *testing.T) {
	if GameOverMessage != "GAME OVER!" {
		t.Errorf("GameOverMessage = %q, expected %q", GameOverMessage, "GAME OVER!")
	}
}
