// Package core provides fundamental types shared by the game logic and its
// frontends. It contains no external dependencies (especially no Bubble Tea
// or Ebiten) to keep game logic pure and testable.
package core

// Rect represents an axis-aligned rectangle in screen units.
// Terminal frontends measure in characters, windowed ones in pixels.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}


// Translate returns the rectangle moved by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Inset returns the rectangle shrunk by n on every side.
// The result never has negative dimensions.
func (r Rect) Inset(n int) Rect {
	w := Max(0, r.W-2*n)
	h := Max(0, r.H-2*n)
	return Rect{X: r.X + n, Y: r.Y + n, W: w, H: h}
}

// Mod returns the Euclidean remainder of a divided by m, always in [0, m).
// Go's % operator truncates toward zero, so -1 % 20 is -1, not 19.
func Mod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
