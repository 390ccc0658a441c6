package snake

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Coord is a cell position on the board.
type Coord struct {
	X, Y int
}

// Equal reports whether two coordinates name the same cell.
func (c Coord) Equal(other Coord) bool {
	return c == other
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Rect maps the cell to a screen rectangle of the given cell size.
// Renderers use it to place the cell; the game itself never draws.
func (c Coord) Rect(cellW, cellH int) core.Rect {
	return core.NewRect(c.X*cellW, c.Y*cellH, cellW, cellH)
}

// RandomCoord returns a coordinate with X uniform in [0, maxX) and Y uniform
// in [0, maxY).
func RandomCoord(rng *rand.Rand, maxX, maxY int) Coord {
	return Coord{
		X: rng.Intn(maxX),
		Y: rng.Intn(maxY),
	}
}

// Grid is a toroidal board: leaving one edge re-enters at the opposite one.
type Grid struct {
	Width  int
	Height int
}

// Move returns c shifted one cell in direction d, wrapped onto the grid.
func (g Grid) Move(c Coord, d Direction) Coord {
	switch d {
	case DirUp:
		return Coord{X: c.X, Y: core.Mod(c.Y-1, g.Height)}
	case DirDown:
		return Coord{X: c.X, Y: core.Mod(c.Y+1, g.Height)}
	case DirLeft:
		return Coord{X: core.Mod(c.X-1, g.Width), Y: c.Y}
	case DirRight:
		return Coord{X: core.Mod(c.X+1, g.Width), Y: c.Y}
	}
	return c
}

// Random returns a uniformly random cell of the grid.
func (g Grid) Random(rng *rand.Rand) Coord {
	return RandomCoord(rng, g.Width, g.Height)
}
