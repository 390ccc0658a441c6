package snake

// Snake is the player: a head, the trail of cells behind it and the
// direction it travels in.
//
// body[0] is the segment right behind the head and the last element is the
// tail. The ate and selfCollided flags describe the most recent Update only.
type Snake struct {
	grid         Grid
	head         Coord
	body         []Coord
	direction    Direction
	ate          bool
	selfCollided bool
}

// NewSnake creates a snake with its head at start, one body segment to its
// left, heading right.
func NewSnake(start Coord, grid Grid) *Snake {
	return newSnake(start, []Coord{grid.Move(start, DirLeft)}, DirRight, grid)
}

// newSnake builds a snake from an explicit body, front segment first.
func newSnake(head Coord, body []Coord, dir Direction, grid Grid) *Snake {
	b := make([]Coord, len(body))
	copy(b, body)
	return &Snake{
		grid:      grid,
		head:      head,
		body:      b,
		direction: dir,
	}
}

// Update advances the snake one cell.
//
// The old head joins the body before the collision scan, and the tail is
// kept when the new head lands on food, which grows the snake by one.
func (s *Snake) Update(food Food) {
	newHead := s.grid.Move(s.head, s.direction)

	s.ate = newHead.Equal(food.Position)

	s.body = append(s.body, Coord{})
	copy(s.body[1:], s.body)
	s.body[0] = s.head

	s.selfCollided = false
	for _, seg := range s.body {
		if seg.Equal(newHead) {
			s.selfCollided = true
			break
		}
	}

	if !s.ate {
		s.body = s.body[:len(s.body)-1]
	}

	s.head = newHead
}

// Turn changes direction unless d would reverse the snake onto its neck.
// Reports whether the direction was accepted.
func (s *Snake) Turn(d Direction) bool {
	if d.Inverse() == s.direction {
		return false
	}
	s.direction = d
	return true
}

// Head returns the head position.
func (s *Snake) Head() Coord {
	return s.head
}

// Body returns a copy of the body, front segment first.
func (s *Snake) Body() []Coord {
	b := make([]Coord, len(s.body))
	copy(b, s.body)
	return b
}

// Direction returns the current heading.
func (s *Snake) Direction() Direction {
	return s.direction
}

// Len returns the total length, head included.
func (s *Snake) Len() int {
	return len(s.body) + 1
}

// Ate reports whether the last Update landed on food.
func (s *Snake) Ate() bool {
	return s.ate
}

// SelfCollided reports whether the last Update ran into the body.
func (s *Snake) SelfCollided() bool {
	return s.selfCollided
}

// Occupies reports whether the head or any body segment is at c.
func (s *Snake) Occupies(c Coord) bool {
	if s.head.Equal(c) {
		return true
	}
	for _, seg := range s.body {
		if seg.Equal(c) {
			return true
		}
	}
	return false
}

// Food is the single piece of food on the board.
// Where it goes after being eaten is decided by Game.
type Food struct {
	Position Coord
}
