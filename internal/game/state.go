package game

import (
	"github.com/mitchelldurbincs/CavernCombatSim/internal/game/core"
)

// CombatState is the mutable world of one battle: terrain plus
// occupancy grid, the unit roster, and the completed-round counter.
// The engine owns it exclusively.
type CombatState struct {
	Grid            *core.Grid
	Units           []Unit
	CompletedRounds int
}

// livingCount returns the number of living units in the given faction.
func (cs *CombatState) livingCount(f core.Faction) int {
	n := 0
	for i := range cs.Units {
		if cs.Units[i].Alive() && cs.Units[i].Faction == f {
			n++
		}
	}
	return n
}

// totalHealth returns the health sum over all living units.
func (cs *CombatState) totalHealth() int {
	sum := 0
	for i := range cs.Units {
		if cs.Units[i].Alive() {
			sum += cs.Units[i].Health
		}
	}
	return sum
}

// moveUnit relocates a living unit and keeps the occupancy grid in
// sync. This is the only place tile state and unit position change
// together on a move.
func (cs *CombatState) moveUnit(u *Unit, to core.Position) {
	cs.Grid.SetTile(u.Pos, core.TileOpen)
	cs.Grid.SetTile(to, u.Faction.Tile())
	u.Pos = to
}

// killUnit vacates a dead unit's tile. The unit keeps its slot.
func (cs *CombatState) killUnit(u *Unit) {
	cs.Grid.SetTile(u.Pos, core.TileOpen)
}
