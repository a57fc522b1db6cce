package game

import (
	"github.com/mitchelldurbincs/CavernCombatSim/internal/game/core"
)

// FactionStats summarizes one side of the battle.
type FactionStats struct {
	Living      int
	Casualties  int
	TotalHealth int
}

// BattleStats is the externally observed result of a battle. Outcome is
// completed rounds times the remaining health of all living units.
type BattleStats struct {
	BattleID        string
	CompletedRounds int
	Outcome         int
	Winner          core.Faction
	HasWinner       bool
	Factions        map[core.Faction]FactionStats
}

// Stats computes the current battle statistics. Valid at any point, not
// just after the battle is decided.
func (e *Engine) Stats() BattleStats {
	factions := map[core.Faction]FactionStats{}

	for _, f := range []core.Faction{core.FactionElf, core.FactionGoblin} {
		fs := FactionStats{}
		for i := range e.cs.Units {
			u := &e.cs.Units[i]
			if u.Faction != f {
				continue
			}
			if u.Alive() {
				fs.Living++
				fs.TotalHealth += u.Health
			} else {
				fs.Casualties++
			}
		}
		factions[f] = fs
	}

	stats := BattleStats{
		BattleID:        e.id,
		CompletedRounds: e.cs.CompletedRounds,
		Outcome:         e.cs.CompletedRounds * e.cs.totalHealth(),
		Factions:        factions,
	}

	elves := factions[core.FactionElf].Living
	goblins := factions[core.FactionGoblin].Living
	switch {
	case elves > 0 && goblins == 0:
		stats.Winner = core.FactionElf
		stats.HasWinner = true
	case goblins > 0 && elves == 0:
		stats.Winner = core.FactionGoblin
		stats.HasWinner = true
	}

	return stats
}

// Casualties returns how many units of the given faction have died so
// far. The attack-power search uses this for its zero-loss check.
func (e *Engine) Casualties(f core.Faction) int {
	n := 0
	for i := range e.cs.Units {
		if e.cs.Units[i].Faction == f && !e.cs.Units[i].Alive() {
			n++
		}
	}
	return n
}
