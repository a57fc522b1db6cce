package game

import (
	"fmt"

	"github.com/mitchelldurbincs/CavernCombatSim/internal/game/core"
)

// Unit is one combatant. Dead units stay in the roster with their final
// (non-positive) health so slot indices remain stable across a round;
// they are skipped for turns, targeting and rendering.
type Unit struct {
	Faction     core.Faction
	Pos         core.Position
	Health      int
	AttackPower int
}

// Alive reports whether the unit still participates in combat.
func (u *Unit) Alive() bool {
	return u.Health > 0
}

// String returns a short roster entry like "G(131)@(2,1)".
func (u *Unit) String() string {
	marker := 'E'
	if u.Faction == core.FactionGoblin {
		marker = 'G'
	}
	return fmt.Sprintf("%c(%d)@%s", marker, u.Health, u.Pos)
}
