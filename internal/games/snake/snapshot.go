package snake

// StateType names the game's position in its state machine.
type StateType string

const (
	StateRunning    StateType = "running"
	StateTerminated StateType = "terminated"
)

// Snapshot captures the game state for determinism testing and debugging.
type Snapshot struct {
	Tick     uint64
	Head     Coord
	Body     []Coord
	Dir      Direction
	Food     Coord
	SnakeLen int
	Ate      bool
	State    StateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StateRunning
	if g.terminated {
		state = StateTerminated
	}

	return Snapshot{
		Tick:     g.tick,
		Head:     g.snake.Head(),
		Body:     g.snake.Body(),
		Dir:      g.snake.Direction(),
		Food:     g.food.Position,
		SnakeLen: g.snake.Len(),
		Ate:      g.snake.Ate(),
		State:    state,
	}
}
