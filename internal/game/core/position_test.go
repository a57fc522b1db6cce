package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPositionLessReadingOrder(t *testing.T) {
	tests := []struct {
		name string
		a, b Position
		want bool
	}{
		{"smaller row wins", Position{X: 5, Y: 1}, Position{X: 0, Y: 2}, true},
		{"same row smaller column wins", Position{X: 1, Y: 3}, Position{X: 2, Y: 3}, true},
		{"equal positions", Position{X: 2, Y: 2}, Position{X: 2, Y: 2}, false},
		{"larger row loses", Position{X: 0, Y: 4}, Position{X: 9, Y: 3}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Less(tt.b))
		})
	}
}

func TestPositionLessIsRowMajor(t *testing.T) {
	// (3,1) precedes (1,2) even though its column is larger: rows first.
	a := Position{X: 3, Y: 1}
	b := Position{X: 1, Y: 2}
	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
}

func TestSortByReadingOrder(t *testing.T) {
	positions := []Position{
		{X: 1, Y: 2},
		{X: 3, Y: 1},
		{X: 0, Y: 2},
		{X: 1, Y: 1},
	}

	SortByReadingOrder(positions)

	assert.Equal(t, []Position{
		{X: 1, Y: 1},
		{X: 3, Y: 1},
		{X: 0, Y: 2},
		{X: 1, Y: 2},
	}, positions)
}

func TestPositionNeighbors(t *testing.T) {
	n := Position{X: 2, Y: 3}.Neighbors()

	assert.Equal(t, []Position{
		{X: 2, Y: 2},
		{X: 3, Y: 3},
		{X: 2, Y: 4},
		{X: 1, Y: 3},
	}, n, "neighbor enumeration order must stay up, right, down, left")
}

func TestPositionAdjacency(t *testing.T) {
	center := Position{X: 2, Y: 2}

	for _, n := range center.Neighbors() {
		assert.True(t, center.IsAdjacentTo(n), "expected %s adjacent to %s", center, n)
	}

	assert.False(t, center.IsAdjacentTo(Position{X: 3, Y: 3}), "diagonal is not adjacent")
	assert.False(t, center.IsAdjacentTo(center), "a position is not adjacent to itself")
	assert.False(t, center.IsAdjacentTo(Position{X: 4, Y: 2}), "two steps away is not adjacent")
}

func TestPositionIndexRoundTrip(t *testing.T) {
	const width = 7
	p := Position{X: 4, Y: 2}

	idx := p.ToIndex(width)
	assert.Equal(t, 18, idx)
	assert.Equal(t, p, FromIndex(idx, width))
}

func TestPositionDistanceTo(t *testing.T) {
	assert.Equal(t, 5, Position{X: 1, Y: 1}.DistanceTo(Position{X: 4, Y: 3}))
	assert.Equal(t, 0, Position{X: 2, Y: 2}.DistanceTo(Position{X: 2, Y: 2}))
}
