// Package rules holds the deterministic target-selection rules of the
// combat simulation. Every choice reduces to a tuple comparison whose
// final components are reading order, so identical worlds always
// produce identical battles.
package rules

import (
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/CavernCombatSim/internal/game/core"
)

// Selector picks movement destinations and attack victims for a unit's
// turn.
type Selector struct {
	logger zerolog.Logger
}

// NewSelector creates a new target selector.
func NewSelector(logger zerolog.Logger) *Selector {
	return &Selector{
		logger: logger.With().Str("component", "selector").Logger(),
	}
}

// ChooseMoveTarget picks the in-range tile to walk toward: among the
// candidates present in the distance map, the one minimizing
// (distance, y, x). Candidates absent from the map are unreachable and
// never chosen. Returns false when no candidate is reachable.
func (s *Selector) ChooseMoveTarget(distances map[core.Position]int, candidates []core.Position) (core.Position, bool) {
	var best core.Position
	bestDist := -1

	for _, c := range candidates {
		d, ok := distances[c]
		if !ok {
			continue
		}
		if bestDist == -1 || d < bestDist || (d == bestDist && c.Less(best)) {
			best = c
			bestDist = d
		}
	}

	if bestDist == -1 {
		return core.Position{}, false
	}

	s.logger.Debug().
		Stringer("target", best).
		Int("distance", bestDist).
		Msg("Move target chosen")
	return best, true
}

// ChooseStep picks which neighbor tile to step onto, minimizing
// (distance to the move target, y, x). The distance map is computed
// from the target, so a neighbor missing from it lies on no path and is
// skipped. Returns false when no neighbor reaches the target.
func (s *Selector) ChooseStep(distancesFromTarget map[core.Position]int, neighbors []core.Position) (core.Position, bool) {
	// Same tuple comparison as move targets, just measured from the
	// other end of the path.
	return s.ChooseMoveTarget(distancesFromTarget, neighbors)
}

// AttackCandidate is a living enemy adjacent to the attacker.
type AttackCandidate struct {
	Index    int // roster slot of the enemy
	Position core.Position
	Health   int
}

// ChooseAttackTarget picks the adjacent enemy minimizing
// (health, y, x). Returns false when the candidate list is empty.
func (s *Selector) ChooseAttackTarget(candidates []AttackCandidate) (AttackCandidate, bool) {
	if len(candidates) == 0 {
		return AttackCandidate{}, false
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.Health < best.Health || (c.Health == best.Health && c.Position.Less(best.Position)) {
			best = c
		}
	}

	s.logger.Debug().
		Stringer("victim", best.Position).
		Int("victim_health", best.Health).
		Msg("Attack target chosen")
	return best, true
}

// InRangeTiles returns every open tile orthogonally adjacent to any of
// the given enemy positions, deduplicated and in reading order.
func InRangeTiles(g *core.Grid, enemies []core.Position) []core.Position {
	seen := make(map[core.Position]struct{})
	var tiles []core.Position

	for _, enemy := range enemies {
		for _, n := range enemy.Neighbors() {
			if g.Tile(n) != core.TileOpen {
				continue
			}
			if _, dup := seen[n]; dup {
				continue
			}
			seen[n] = struct{}{}
			tiles = append(tiles, n)
		}
	}

	core.SortByReadingOrder(tiles)
	return tiles
}
