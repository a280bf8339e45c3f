package snake

import (
	"errors"

	"github.com/vovakirdan/tui-snake/internal/core"
)

var (
	// ErrCollision is returned by Update when the head runs into the body.
	// It ends the game but is not a program failure.
	ErrCollision = errors.New("snake: collided with itself")

	// ErrEmptyBoard is returned by Update when the board has no cells.
	ErrEmptyBoard = errors.New("snake: board is empty")
)

// Glyphs used when drawing the body.
const (
	GlyphHead = '#'
	GlyphBody = '#'
)

// Surface is anything the snake can be drawn onto.
type Surface interface {
	SetCell(x, y int, r rune, c core.Color)
}

// Snake holds the body (head at index 0) and the current heading.
type Snake struct {
	body    []core.Position
	heading Direction
	dead    bool

	headGlyph rune
	bodyGlyph rune
}

// NewSnake creates a one-segment snake at start, heading right.
func NewSnake(start core.Position) *Snake {
	return &Snake{
		body:      []core.Position{start},
		heading:   DirRight,
		headGlyph: GlyphHead,
		bodyGlyph: GlyphBody,
	}
}

// SetGlyphs overrides the runes used by Draw.
func (s *Snake) SetGlyphs(head, body rune) {
	s.headGlyph = head
	s.bodyGlyph = body
}

// ChangeDirection turns the snake unless dir is the current heading or
// would send the head straight into the second segment.
func (s *Snake) ChangeDirection(dir Direction, b core.Bounds) {
	if s.dead || dir == s.heading {
		return
	}
	if len(s.body) > 1 && dir.Step(s.body[0], b) == s.body[1] {
		return
	}
	s.heading = dir
}

// Update advances the snake one cell. It reports whether food was eaten;
// eating grows the body by one segment behind the new head.
//
// The collision check runs after the head moves and before the rest of the
// body follows, so the head is compared against the previous positions of
// the trailing segments.
func (s *Snake) Update(food core.Position, b core.Bounds) (bool, error) {
	if s.dead {
		return false, ErrCollision
	}
	if b.Empty() {
		return false, ErrEmptyBoard
	}

	prev := s.body[0]
	head := s.heading.Step(prev, b)

	for _, seg := range s.body[1:] {
		if seg == head {
			s.body[0] = head
			s.dead = true
			return false, ErrCollision
		}
	}

	s.body[0] = head
	for i := 1; i < len(s.body); i++ {
		s.body[i], prev = prev, s.body[i]
	}

	// prev now holds the cell the tail just left; growing keeps it.
	if head == food {
		s.body = append(s.body, prev)
		return true, nil
	}
	return false, nil
}

// Draw emits one glyph per body cell.
func (s *Snake) Draw(dst Surface) {
	// Tail first so the head wins on overlapping cells.
	for i := len(s.body) - 1; i >= 0; i-- {
		seg := s.body[i]
		if i == 0 {
			dst.SetCell(seg.X, seg.Y, s.headGlyph, core.ColorBrightGreen)
		} else {
			dst.SetCell(seg.X, seg.Y, s.bodyGlyph, core.ColorGreen)
		}
	}
}

// Alive reports whether the snake has not collided yet.
func (s *Snake) Alive() bool {
	return !s.dead
}

// Head returns the head position.
func (s *Snake) Head() core.Position {
	return s.body[0]
}

// Heading returns the current direction of travel.
func (s *Snake) Heading() Direction {
	return s.heading
}

// Len returns the number of body segments.
func (s *Snake) Len() int {
	return len(s.body)
}

// Body returns a copy of the body, head first.
func (s *Snake) Body() []core.Position {
	out := make([]core.Position, len(s.body))
	copy(out, s.body)
	return out
}

// Occupies checks if any segment is at p.
func (s *Snake) Occupies(p core.Position) bool {
	for _, seg := range s.body {
		if seg == p {
			return true
		}
	}
	return false
}
