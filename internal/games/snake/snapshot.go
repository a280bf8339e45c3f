package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Snapshot captures the game state for determinism testing and debugging.
type Snapshot struct {
	Tick     uint64
	Score    int
	SnakeLen int
	Head     core.Position
	Dir      Direction
	Food     core.Position
	Board    core.Bounds
	Paused   bool
	TooSmall bool
	Status   Status
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:     g.tick,
		Score:    g.score,
		SnakeLen: g.snake.Len(),
		Head:     g.snake.Head(),
		Dir:      g.snake.Heading(),
		Food:     g.food,
		Board:    g.board,
		Paused:   g.paused,
		TooSmall: g.tooSmall,
		Status:   g.status,
	}
}
