// Package subscribers contains ready-made event bus subscribers.
package subscribers

import (
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/CavernCombatSim/internal/game/events"
)

// LoggerSubscriber writes every combat event to a zerolog logger. Wire
// it up for verbose battle playback.
type LoggerSubscriber struct {
	id     string
	logger zerolog.Logger
}

// NewLoggerSubscriber creates a logging subscriber with the given ID.
func NewLoggerSubscriber(id string, logger zerolog.Logger) *LoggerSubscriber {
	return &LoggerSubscriber{
		id:     id,
		logger: logger.With().Str("component", "combat_log").Logger(),
	}
}

// ID returns the subscriber's unique identifier.
func (ls *LoggerSubscriber) ID() string { return ls.id }

// EventTypes returns nil: the logger wants every event.
func (ls *LoggerSubscriber) EventTypes() []string { return nil }

// HandleEvent logs the event with structured fields.
func (ls *LoggerSubscriber) HandleEvent(event events.Event) {
	switch e := event.(type) {
	case events.UnitMovedEvent:
		ls.logger.Debug().
			Str("battle_id", e.BattleID).
			Stringer("faction", e.Faction).
			Stringer("from", e.From).
			Stringer("to", e.To).
			Msg("Unit moved")
	case events.UnitAttackedEvent:
		ls.logger.Debug().
			Str("battle_id", e.BattleID).
			Stringer("attacker", e.Attacker).
			Stringer("attacker_pos", e.AttackerPos).
			Stringer("victim_pos", e.VictimPos).
			Int("damage", e.Damage).
			Int("remaining_health", e.RemainingHealth).
			Msg("Unit attacked")
	case events.UnitDiedEvent:
		ls.logger.Info().
			Str("battle_id", e.BattleID).
			Stringer("faction", e.Faction).
			Stringer("position", e.Position).
			Msg("Unit died")
	case events.RoundCompletedEvent:
		ls.logger.Debug().
			Str("battle_id", e.BattleID).
			Int("completed_rounds", e.CompletedRounds).
			Msg("Round completed")
	case events.BattleEndedEvent:
		ls.logger.Info().
			Str("battle_id", e.BattleID).
			Stringer("winner", e.Winner).
			Int("completed_rounds", e.CompletedRounds).
			Int("outcome", e.Outcome).
			Msg("Battle ended")
	default:
		ls.logger.Debug().
			Str("event_type", event.Type()).
			Msg("Unhandled combat event")
	}
}
