// Package pathfind computes step distances over the open tiles of a
// battle grid. All edges have weight 1, so a breadth-first expansion
// yields the same distance labels as Dijkstra would.
package pathfind

import (
	"github.com/mitchelldurbincs/CavernCombatSim/internal/game/core"
)

// Distances returns the minimum number of orthogonal steps from source
// to every reachable open, unoccupied tile. Positions that cannot be
// reached are absent from the result. The source itself is included at
// distance zero even though it is normally occupied by the unit asking.
func Distances(g *core.Grid, source core.Position) map[core.Position]int {
	distances := map[core.Position]int{source: 0}
	frontier := []core.Position{source}

	for len(frontier) > 0 {
		current := frontier[0]
		frontier = frontier[1:]
		next := distances[current] + 1

		for _, neighbor := range current.Neighbors() {
			if g.Tile(neighbor) != core.TileOpen {
				continue
			}
			if _, seen := distances[neighbor]; seen {
				continue
			}
			distances[neighbor] = next
			frontier = append(frontier, neighbor)
		}
	}

	return distances
}

// Reachable reports whether target can be reached from source, and at
// what distance.
func Reachable(g *core.Grid, source, target core.Position) (int, bool) {
	d, ok := Distances(g, source)[target]
	return d, ok
}
