package game

import (
	"github.com/mitchelldurbincs/CavernCombatSim/internal/game/core"
	"github.com/mitchelldurbincs/CavernCombatSim/internal/game/events"
	"github.com/mitchelldurbincs/CavernCombatSim/internal/game/pathfind"
	"github.com/mitchelldurbincs/CavernCombatSim/internal/game/rules"
)

// takeTurn resolves one unit's turn: a move phase, then an attack
// phase, either of which may be a no-op. Returns ErrBattleDecided when
// the unit starts its turn with no living enemies.
func (e *Engine) takeTurn(u *Unit) error {
	enemies := e.livingEnemies(u.Faction)
	if len(enemies) == 0 {
		return core.ErrBattleDecided
	}

	if !e.adjacentToAny(u.Pos, enemies) {
		e.movePhase(u, enemies)
	}
	e.attackPhase(u, enemies)
	return nil
}

// movePhase walks the unit one step along a shortest path toward the
// chosen in-range tile. No-op when every in-range tile is unreachable.
func (e *Engine) movePhase(u *Unit, enemies []int) {
	enemyPositions := make([]core.Position, len(enemies))
	for i, idx := range enemies {
		enemyPositions[i] = e.cs.Units[idx].Pos
	}

	inRange := rules.InRangeTiles(e.cs.Grid, enemyPositions)
	if len(inRange) == 0 {
		return
	}

	distances := pathfind.Distances(e.cs.Grid, u.Pos)
	target, ok := e.selector.ChooseMoveTarget(distances, inRange)
	if !ok {
		return
	}

	// Distances measured from the target decide which neighbor keeps
	// the unit on a shortest path; reading order breaks ties.
	fromTarget := pathfind.Distances(e.cs.Grid, target)
	var openNeighbors []core.Position
	for _, n := range u.Pos.Neighbors() {
		if e.cs.Grid.Tile(n) == core.TileOpen {
			openNeighbors = append(openNeighbors, n)
		}
	}

	step, ok := e.selector.ChooseStep(fromTarget, openNeighbors)
	if !ok {
		return
	}

	from := u.Pos
	e.cs.moveUnit(u, step)
	e.publish(events.UnitMovedEvent{
		BattleID: e.id,
		Faction:  u.Faction,
		From:     from,
		To:       step,
	})
}

// attackPhase strikes the weakest adjacent enemy, if any.
func (e *Engine) attackPhase(u *Unit, enemies []int) {
	var candidates []rules.AttackCandidate
	for _, idx := range enemies {
		enemy := &e.cs.Units[idx]
		if enemy.Alive() && enemy.Pos.IsAdjacentTo(u.Pos) {
			candidates = append(candidates, rules.AttackCandidate{
				Index:    idx,
				Position: enemy.Pos,
				Health:   enemy.Health,
			})
		}
	}

	chosen, ok := e.selector.ChooseAttackTarget(candidates)
	if !ok {
		return
	}

	victim := &e.cs.Units[chosen.Index]
	victim.Health -= u.AttackPower
	e.publish(events.UnitAttackedEvent{
		BattleID:        e.id,
		Attacker:        u.Faction,
		AttackerPos:     u.Pos,
		VictimPos:       victim.Pos,
		Damage:          u.AttackPower,
		RemainingHealth: victim.Health,
	})

	if !victim.Alive() {
		e.cs.killUnit(victim)
		e.publish(events.UnitDiedEvent{
			BattleID: e.id,
			Faction:  victim.Faction,
			Position: victim.Pos,
		})
	}
}

// livingEnemies returns the roster slots of living units opposing the
// given faction.
func (e *Engine) livingEnemies(f core.Faction) []int {
	var enemies []int
	for i := range e.cs.Units {
		if e.cs.Units[i].Alive() && e.cs.Units[i].Faction != f {
			enemies = append(enemies, i)
		}
	}
	return enemies
}

func (e *Engine) adjacentToAny(p core.Position, unitIdxs []int) bool {
	for _, idx := range unitIdxs {
		if e.cs.Units[idx].Pos.IsAdjacentTo(p) {
			return true
		}
	}
	return false
}
