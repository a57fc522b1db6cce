package core

import (
	"fmt"
	"sort"
)

// Position represents a cell on the battle grid.
type Position struct {
	X, Y int
}

// NewPosition creates a new position with the given x and y values.
func NewPosition(x, y int) Position {
	return Position{X: x, Y: y}
}

// FromIndex creates a position from a grid array index using row-major ordering.
func FromIndex(idx, width int) Position {
	return Position{
		X: idx % width,
		Y: idx / width,
	}
}

// IsValid checks if the position is within the given bounds.
func (p Position) IsValid(width, height int) bool {
	return p.X >= 0 && p.X < width && p.Y >= 0 && p.Y < height
}

// ToIndex converts the position to a grid array index using row-major ordering.
func (p Position) ToIndex(width int) int {
	return p.Y*width + p.X
}

// Less reports whether p precedes other in reading order: rows top to
// bottom, then columns left to right. Every tie-break in combat (turn
// order, move targets, step tiles, attack targets) reduces to this.
func (p Position) Less(other Position) bool {
	if p.Y != other.Y {
		return p.Y < other.Y
	}
	return p.X < other.X
}

// DistanceTo calculates the Manhattan distance to another position.
func (p Position) DistanceTo(other Position) int {
	dx := p.X - other.X
	dy := p.Y - other.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// IsAdjacentTo checks if this position is orthogonally adjacent to another.
func (p Position) IsAdjacentTo(other Position) bool {
	dx := p.X - other.X
	dy := p.Y - other.Y

	// Must be exactly one step away in either X or Y direction, but not both
	return (dx == 0 && (dy == 1 || dy == -1)) || (dy == 0 && (dx == 1 || dx == -1))
}

// Neighbors returns the four orthogonal neighbors of this position.
// The order (up, right, down, left) is fixed; distance relaxation relies
// on it being stable, final distances do not depend on it.
func (p Position) Neighbors() []Position {
	return []Position{
		{X: p.X, Y: p.Y - 1}, // up
		{X: p.X + 1, Y: p.Y}, // right
		{X: p.X, Y: p.Y + 1}, // down
		{X: p.X - 1, Y: p.Y}, // left
	}
}

// Equal checks if two positions are equal.
func (p Position) Equal(other Position) bool {
	return p.X == other.X && p.Y == other.Y
}

// String returns a string representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// SortByReadingOrder sorts positions in place by reading order.
func SortByReadingOrder(positions []Position) {
	sort.Slice(positions, func(i, j int) bool {
		return positions[i].Less(positions[j])
	})
}
