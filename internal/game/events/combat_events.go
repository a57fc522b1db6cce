package events

import (
	"github.com/mitchelldurbincs/CavernCombatSim/internal/game/core"
)

// Event type identifiers.
const (
	TypeUnitMoved      = "combat.unit_moved"
	TypeUnitAttacked   = "combat.unit_attacked"
	TypeUnitDied       = "combat.unit_died"
	TypeRoundCompleted = "combat.round_completed"
	TypeBattleEnded    = "combat.battle_ended"
)

// UnitMovedEvent is published when a unit steps onto a new tile.
type UnitMovedEvent struct {
	BattleID string
	Faction  core.Faction
	From     core.Position
	To       core.Position
}

func (e UnitMovedEvent) Type() string { return TypeUnitMoved }

// UnitAttackedEvent is published for every swing, lethal or not.
type UnitAttackedEvent struct {
	BattleID        string
	Attacker        core.Faction
	AttackerPos     core.Position
	VictimPos       core.Position
	Damage          int
	RemainingHealth int
}

func (e UnitAttackedEvent) Type() string { return TypeUnitAttacked }

// UnitDiedEvent is published when a unit's health drops to zero or below.
type UnitDiedEvent struct {
	BattleID string
	Faction  core.Faction
	Position core.Position
}

func (e UnitDiedEvent) Type() string { return TypeUnitDied }

// RoundCompletedEvent is published after every unit alive at round start
// got to act.
type RoundCompletedEvent struct {
	BattleID        string
	CompletedRounds int
}

func (e RoundCompletedEvent) Type() string { return TypeRoundCompleted }

// BattleEndedEvent is published once, when a faction runs out of living
// units.
type BattleEndedEvent struct {
	BattleID        string
	Winner          core.Faction
	CompletedRounds int
	Outcome         int
}

func (e BattleEndedEvent) Type() string { return TypeBattleEnded }
