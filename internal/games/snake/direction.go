package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Delta returns the one-cell offset for moving in d.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Step returns p moved one cell in d, wrapped onto the board.
func (d Direction) Step(p core.Position, b core.Bounds) core.Position {
	dx, dy := d.Delta()
	return b.Wrap(core.Position{X: p.X + dx, Y: p.Y + dy})
}

// DirectionForKey maps an arrow key to a direction.
func DirectionForKey(k core.Key) (Direction, bool) {
	switch k {
	case core.KeyUp:
		return DirUp, true
	case core.KeyDown:
		return DirDown, true
	case core.KeyLeft:
		return DirLeft, true
	case core.KeyRight:
		return DirRight, true
	default:
		return 0, false
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}
