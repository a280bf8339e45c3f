// Package core provides fundamental types and utilities for the snake game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Position is a cell coordinate on the board. Valid positions are
// non-negative and lie inside the current Bounds.
type Position struct {
	X, Y int
}

// Pos is shorthand for constructing a Position.
func Pos(x, y int) Position {
	return Position{X: x, Y: y}
}

// Bounds holds the board dimensions in cells.
type Bounds struct {
	W, H int
}

// Empty reports whether the board has no cells.
func (b Bounds) Empty() bool {
	return b.W <= 0 || b.H <= 0
}

// Contains returns true if p lies on the board.
func (b Bounds) Contains(p Position) bool {
	return p.X >= 0 && p.X < b.W && p.Y >= 0 && p.Y < b.H
}

// Wrap maps p onto the board, cycling each coordinate modulo the board
// dimension. Negative coordinates wrap from the far edge.
func (b Bounds) Wrap(p Position) Position {
	if b.Empty() {
		return p
	}
	return Position{X: Mod(p.X, b.W), Y: Mod(p.Y, b.H)}
}

// Rect represents an axis-aligned box, used for overlays.
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

// Mod returns the non-negative remainder of a divided by n.
func Mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}
