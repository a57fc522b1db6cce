package pathfind

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/CavernCombatSim/internal/game/core"
)

func mustParse(t *testing.T, s string) *core.Grid {
	t.Helper()
	g, err := core.ParseGrid(s)
	require.NoError(t, err)
	return g
}

func TestDistancesOpenRoom(t *testing.T) {
	g := mustParse(t, `
#######
#.E...#
#.....#
#...G.#
#######
`)

	distances := Distances(g, core.Position{X: 4, Y: 2})

	// 13 open or source tiles are reachable; the two occupied tiles are not.
	assert.Len(t, distances, 13)

	want := map[core.Position]int{
		{X: 1, Y: 1}: 4,
		{X: 3, Y: 1}: 2,
		{X: 4, Y: 1}: 1,
		{X: 5, Y: 1}: 2,
		{X: 1, Y: 2}: 3,
		{X: 2, Y: 2}: 2,
		{X: 3, Y: 2}: 1,
		{X: 4, Y: 2}: 0,
		{X: 5, Y: 2}: 1,
		{X: 1, Y: 3}: 4,
		{X: 2, Y: 3}: 3,
		{X: 3, Y: 3}: 2,
		{X: 5, Y: 3}: 2,
	}
	for pos, d := range want {
		got, ok := distances[pos]
		require.True(t, ok, "expected %s to be reachable", pos)
		assert.Equal(t, d, got, "distance to %s", pos)
	}
}

func TestDistancesUnitsBlockPaths(t *testing.T) {
	g := mustParse(t, `
#######
#E..G.#
#...#.#
#.G.#G#
#######
`)

	distances := Distances(g, core.Position{X: 1, Y: 1})

	assert.Len(t, distances, 8)

	assert.Equal(t, 0, distances[core.Position{X: 1, Y: 1}])
	assert.Equal(t, 1, distances[core.Position{X: 2, Y: 1}])
	assert.Equal(t, 2, distances[core.Position{X: 3, Y: 1}])
	assert.Equal(t, 1, distances[core.Position{X: 1, Y: 2}])
	assert.Equal(t, 2, distances[core.Position{X: 2, Y: 2}])
	assert.Equal(t, 3, distances[core.Position{X: 3, Y: 2}])
	assert.Equal(t, 2, distances[core.Position{X: 1, Y: 3}])
	assert.Equal(t, 4, distances[core.Position{X: 3, Y: 3}])

	// Tiles behind the wall-and-goblin barrier are absent entirely.
	_, ok := distances[core.Position{X: 5, Y: 1}]
	assert.False(t, ok, "tile behind the goblin at (4,1) must be unreachable")
	_, ok = distances[core.Position{X: 5, Y: 3}]
	assert.False(t, ok)
}

func TestDistancesMatchManhattanInCorridor(t *testing.T) {
	g := mustParse(t, `
#########
#E......#
#########
`)

	distances := Distances(g, core.Position{X: 1, Y: 1})

	for x := 1; x <= 7; x++ {
		pos := core.Position{X: x, Y: 1}
		assert.Equal(t, x-1, distances[pos], "corridor distance to %s", pos)
	}
}

func TestReachable(t *testing.T) {
	g := mustParse(t, `
#####
#E#.#
#####
`)

	_, ok := Reachable(g, core.Position{X: 1, Y: 1}, core.Position{X: 3, Y: 1})
	assert.False(t, ok)

	d, ok := Reachable(g, core.Position{X: 1, Y: 1}, core.Position{X: 1, Y: 1})
	require.True(t, ok)
	assert.Equal(t, 0, d)
}
