package snake

import (
	"errors"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

var board10 = core.Bounds{W: 10, H: 10}

// snakeWith builds a snake with an explicit body and heading.
func snakeWith(heading Direction, body ...core.Position) *Snake {
	s := NewSnake(body[0])
	s.body = append([]core.Position(nil), body...)
	s.heading = heading
	return s
}

func TestChangeDirectionSameHeadingIsNoop(t *testing.T) {
	for _, dir := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		s := snakeWith(dir, core.Pos(5, 5), core.Pos(5, 6))
		s.ChangeDirection(dir, board10)
		if s.Heading() != dir {
			t.Errorf("heading changed from %v to %v", dir, s.Heading())
		}
	}
}

func TestChangeDirectionBlocksReversal(t *testing.T) {
	tests := []struct {
		name    string
		heading Direction
		body    []core.Position
		request Direction
	}{
		{"moving right, second to the left", DirRight, []core.Position{core.Pos(5, 5), core.Pos(4, 5)}, DirLeft},
		{"moving left, second to the right", DirLeft, []core.Position{core.Pos(5, 5), core.Pos(6, 5)}, DirRight},
		{"moving up, second below", DirUp, []core.Position{core.Pos(5, 5), core.Pos(5, 6)}, DirDown},
		{"moving down, second above", DirDown, []core.Position{core.Pos(5, 5), core.Pos(5, 4)}, DirUp},
		{"second across the right edge", DirLeft, []core.Position{core.Pos(9, 3), core.Pos(0, 3)}, DirRight},
		{"second across the top edge", DirDown, []core.Position{core.Pos(2, 0), core.Pos(2, 9)}, DirUp},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := snakeWith(tc.heading, tc.body...)
			s.ChangeDirection(tc.request, board10)
			if s.Heading() != tc.heading {
				t.Errorf("reversal to %v should be rejected, heading is %v", tc.request, s.Heading())
			}
		})
	}
}

func TestChangeDirectionAllowsTurns(t *testing.T) {
	s := snakeWith(DirRight, core.Pos(5, 5), core.Pos(4, 5))

	s.ChangeDirection(DirUp, board10)
	if s.Heading() != DirUp {
		t.Errorf("expected heading up, got %v", s.Heading())
	}
}

func TestChangeDirectionSingleSegmentNeverRejected(t *testing.T) {
	s := NewSnake(core.Pos(5, 5))
	for _, dir := range []Direction{DirLeft, DirUp, DirDown, DirRight} {
		s.ChangeDirection(dir, board10)
		if s.Heading() != dir {
			t.Errorf("length-1 snake should accept %v, heading is %v", dir, s.Heading())
		}
	}
}

func TestUpdateMovesWithoutFood(t *testing.T) {
	s := NewSnake(core.Pos(5, 5))

	ate, err := s.Update(core.Pos(9, 9), board10)
	if err != nil {
		t.Fatalf("Update() failed: %v", err)
	}
	if ate {
		t.Error("should not report food eaten")
	}
	if got, want := s.Body(), []core.Position{core.Pos(6, 5)}; !reflect.DeepEqual(got, want) {
		t.Errorf("body = %v, expected %v", got, want)
	}
}

func TestUpdateEatsAndGrows(t *testing.T) {
	s := NewSnake(core.Pos(5, 5))

	ate, err := s.Update(core.Pos(6, 5), board10)
	if err != nil {
		t.Fatalf("Update() failed: %v", err)
	}
	if !ate {
		t.Error("expected food to be eaten")
	}
	if got, want := s.Body(), []core.Position{core.Pos(6, 5), core.Pos(5, 5)}; !reflect.DeepEqual(got, want) {
		t.Errorf("body = %v, expected %v", got, want)
	}
}

func TestUpdateBodyFollowsHead(t *testing.T) {
	s := snakeWith(DirDown, core.Pos(3, 3), core.Pos(2, 3), core.Pos(1, 3))

	if _, err := s.Update(core.Pos(0, 0), board10); err != nil {
		t.Fatalf("Update() failed: %v", err)
	}

	want := []core.Position{core.Pos(3, 4), core.Pos(3, 3), core.Pos(2, 3)}
	if got := s.Body(); !reflect.DeepEqual(got, want) {
		t.Errorf("body = %v, expected %v", got, want)
	}
}

func TestUpdateLengthUnchangedUnlessEating(t *testing.T) {
	s := snakeWith(DirRight, core.Pos(4, 4), core.Pos(3, 4), core.Pos(2, 4), core.Pos(1, 4))
	food := core.Pos(0, 9)

	for i := 0; i < 20; i++ {
		before := s.Len()
		ate, err := s.Update(food, board10)
		if err != nil {
			t.Fatalf("tick %d: Update() failed: %v", i, err)
		}
		if ate {
			t.Fatalf("tick %d: unexpected eat", i)
		}
		if s.Len() != before {
			t.Fatalf("tick %d: length changed from %d to %d", i, before, s.Len())
		}
	}
}

func TestUpdateWrapsAtEdges(t *testing.T) {
	tests := []struct {
		name     string
		heading  Direction
		start    core.Position
		expected core.Position
	}{
		{"right edge", DirRight, core.Pos(9, 4), core.Pos(0, 4)},
		{"left edge", DirLeft, core.Pos(0, 4), core.Pos(9, 4)},
		{"bottom edge", DirDown, core.Pos(4, 9), core.Pos(4, 0)},
		{"top edge", DirUp, core.Pos(4, 0), core.Pos(4, 9)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := snakeWith(tc.heading, tc.start)
			if _, err := s.Update(core.Pos(-1, -1), board10); err != nil {
				t.Fatalf("Update() failed: %v", err)
			}
			if s.Head() != tc.expected {
				t.Errorf("head = %v, expected %v", s.Head(), tc.expected)
			}
		})
	}
}

func TestUpdateWrappedCollision(t *testing.T) {
	s := snakeWith(DirLeft, core.Pos(0, 0), core.Pos(9, 0))

	_, err := s.Update(core.Pos(5, 5), board10)
	if !errors.Is(err, ErrCollision) {
		t.Fatalf("expected ErrCollision, got %v", err)
	}
	if s.Alive() {
		t.Error("snake should be dead after collision")
	}
}

func TestUpdateSelfCollision(t *testing.T) {
	// Head at (2,2) heading up into (2,1) which is part of the loop.
	s := snakeWith(DirUp,
		core.Pos(2, 2), core.Pos(3, 2), core.Pos(3, 1), core.Pos(2, 1), core.Pos(1, 1))

	_, err := s.Update(core.Pos(8, 8), board10)
	if !errors.Is(err, ErrCollision) {
		t.Fatalf("expected ErrCollision, got %v", err)
	}
}

func TestUpdateTailCellCountsAsCollision(t *testing.T) {
	// The tail is checked at its old position before the body follows.
	s := snakeWith(DirUp, core.Pos(2, 2), core.Pos(3, 2), core.Pos(3, 1), core.Pos(2, 1))

	if _, err := s.Update(core.Pos(8, 8), board10); !errors.Is(err, ErrCollision) {
		t.Fatalf("expected ErrCollision moving onto the tail, got %v", err)
	}
}

func TestDeadIsAbsorbing(t *testing.T) {
	s := snakeWith(DirLeft, core.Pos(0, 0), core.Pos(9, 0))
	if _, err := s.Update(core.Pos(5, 5), board10); !errors.Is(err, ErrCollision) {
		t.Fatalf("expected ErrCollision, got %v", err)
	}

	s.ChangeDirection(DirDown, board10)
	if s.Heading() != DirLeft {
		t.Error("dead snake should not turn")
	}
	if _, err := s.Update(core.Pos(5, 5), board10); !errors.Is(err, ErrCollision) {
		t.Errorf("dead snake Update should keep failing, got %v", err)
	}
}

func TestUpdateEmptyBoard(t *testing.T) {
	s := NewSnake(core.Pos(0, 0))
	if _, err := s.Update(core.Pos(0, 0), core.Bounds{}); !errors.Is(err, ErrEmptyBoard) {
		t.Errorf("expected ErrEmptyBoard, got %v", err)
	}
	if s.Head() != core.Pos(0, 0) {
		t.Error("empty board should not move the snake")
	}
}

func TestDraw(t *testing.T) {
	s := snakeWith(DirRight, core.Pos(2, 1), core.Pos(1, 1))
	s.SetGlyphs('O', 'o')
	scr := core.NewScreen(5, 3)

	s.Draw(scr)

	if c := scr.GetCell(2, 1); c.Rune != 'O' || c.Color != core.ColorBrightGreen {
		t.Errorf("head cell = %+v", c)
	}
	if c := scr.GetCell(1, 1); c.Rune != 'o' || c.Color != core.ColorGreen {
		t.Errorf("body cell = %+v", c)
	}
	if scr.Get(0, 1) != ' ' {
		t.Error("unoccupied cell should stay blank")
	}
}

func TestDirectionForKey(t *testing.T) {
	tests := []struct {
		key      core.Key
		expected Direction
		ok       bool
	}{
		{core.KeyUp, DirUp, true},
		{core.KeyDown, DirDown, true},
		{core.KeyLeft, DirLeft, true},
		{core.KeyRight, DirRight, true},
		{core.KeyPause, 0, false},
	}

	for _, tc := range tests {
		dir, ok := DirectionForKey(tc.key)
		if ok != tc.ok || (ok && dir != tc.expected) {
			t.Errorf("DirectionForKey(%v) = %v, %v; expected %v, %v", tc.key, dir, ok, tc.expected, tc.ok)
		}
	}
}
