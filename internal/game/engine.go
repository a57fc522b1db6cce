package game

import (
	"errors"
	"sort"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/CavernCombatSim/internal/game/core"
	"github.com/mitchelldurbincs/CavernCombatSim/internal/game/events"
	"github.com/mitchelldurbincs/CavernCombatSim/internal/game/rules"
	"github.com/mitchelldurbincs/CavernCombatSim/internal/game/states"
)

// Default combat parameters, overridable per battle through Options and
// globally through the config package.
const (
	DefaultUnitHealth  = 200
	DefaultAttackPower = 3
)

// Options tunes a single battle. Zero values fall back to the defaults
// above, so Options{} is a valid vanilla battle.
type Options struct {
	UnitHealth   int
	ElfAttack    int
	GoblinAttack int
	EventBus     *events.EventBus // optional; nil disables event publishing
}

func (o Options) withDefaults() Options {
	if o.UnitHealth <= 0 {
		o.UnitHealth = DefaultUnitHealth
	}
	if o.ElfAttack <= 0 {
		o.ElfAttack = DefaultAttackPower
	}
	if o.GoblinAttack <= 0 {
		o.GoblinAttack = DefaultAttackPower
	}
	return o
}

// Engine resolves a battle on a parsed grid. It owns the combat state
// exclusively; run one battle per engine.
type Engine struct {
	id            string
	cs            *CombatState
	selector      *rules.Selector
	phase         *states.Machine
	bus           *events.EventBus
	logger        zerolog.Logger
	initialCounts map[core.Faction]int
}

// NewEngine builds a battle from a grid that still carries its faction
// markers. The grid is owned by the engine afterwards; clone it first
// if you need to run more battles from the same map.
func NewEngine(g *core.Grid, opts Options, logger zerolog.Logger) *Engine {
	opts = opts.withDefaults()

	e := &Engine{
		id:       uuid.NewString(),
		cs:       &CombatState{Grid: g},
		selector: rules.NewSelector(logger),
		phase:    states.NewMachine(logger),
		bus:      opts.EventBus,
		logger:   logger.With().Str("component", "engine").Logger(),
		initialCounts: map[core.Faction]int{
			core.FactionElf:    0,
			core.FactionGoblin: 0,
		},
	}

	// Row-major scan, so the initial roster is already in reading order.
	for idx, tile := range g.T {
		faction, ok := tile.Faction()
		if !ok {
			continue
		}
		attack := opts.ElfAttack
		if faction == core.FactionGoblin {
			attack = opts.GoblinAttack
		}
		e.cs.Units = append(e.cs.Units, Unit{
			Faction:     faction,
			Pos:         core.FromIndex(idx, g.W),
			Health:      opts.UnitHealth,
			AttackPower: attack,
		})
		e.initialCounts[faction]++
	}

	e.logger.Info().
		Str("battle_id", e.id).
		Int("elves", e.initialCounts[core.FactionElf]).
		Int("goblins", e.initialCounts[core.FactionGoblin]).
		Int("width", g.W).
		Int("height", g.H).
		Msg("Battle initialized")

	if err := e.phase.TransitionTo(states.PhaseRunning, "roster built"); err != nil {
		panic("game: fresh phase machine rejected initializing->running: " + err.Error())
	}
	return e
}

// ID returns the battle's unique identifier.
func (e *Engine) ID() string { return e.id }

// CompletedRounds returns the number of rounds that ran to completion.
func (e *Engine) CompletedRounds() int { return e.cs.CompletedRounds }

// IsOver reports whether the battle has been decided.
func (e *Engine) IsOver() bool { return e.phase.Current() == states.PhaseEnded }

// Grid exposes the live grid for rendering. Callers must not mutate it.
func (e *Engine) Grid() *core.Grid { return e.cs.Grid }

// Units returns a copy of the roster, dead units included.
func (e *Engine) Units() []Unit {
	units := make([]Unit, len(e.cs.Units))
	copy(units, e.cs.Units)
	return units
}

// Step resolves one round: every unit alive at round start acts in
// reading order of its round-start position. Returns ErrBattleDecided
// when a unit starts its turn with no enemies left; that round does not
// count as completed.
func (e *Engine) Step() error {
	if e.IsOver() {
		return core.ErrBattleDecided
	}

	if e.cs.livingCount(core.FactionElf) == 0 || e.cs.livingCount(core.FactionGoblin) == 0 {
		e.finish("a faction has no living units")
		return core.ErrBattleDecided
	}

	order := e.turnOrder()
	for _, idx := range order {
		u := &e.cs.Units[idx]
		if !u.Alive() {
			// died earlier this round; its slot is simply skipped
			continue
		}
		if err := e.takeTurn(u); err != nil {
			if errors.Is(err, core.ErrBattleDecided) {
				e.finish("enemy faction eliminated mid-round")
			}
			return err
		}
	}

	e.cs.CompletedRounds++
	e.publish(events.RoundCompletedEvent{
		BattleID:        e.id,
		CompletedRounds: e.cs.CompletedRounds,
	})
	return nil
}

// Run resolves rounds until the battle is decided and returns the
// final statistics.
func (e *Engine) Run() BattleStats {
	for e.Step() == nil {
	}
	return e.Stats()
}

// turnOrder snapshots the living units' slots sorted by round-start
// position in reading order. Deaths later in the round do not reorder it.
func (e *Engine) turnOrder() []int {
	order := make([]int, 0, len(e.cs.Units))
	for i := range e.cs.Units {
		if e.cs.Units[i].Alive() {
			order = append(order, i)
		}
	}
	sort.Slice(order, func(a, b int) bool {
		return e.cs.Units[order[a]].Pos.Less(e.cs.Units[order[b]].Pos)
	})
	return order
}

func (e *Engine) finish(reason string) {
	if e.phase.Current() == states.PhaseEnded {
		return
	}
	if err := e.phase.TransitionTo(states.PhaseEnded, reason); err != nil {
		panic("game: could not end battle: " + err.Error())
	}

	stats := e.Stats()
	e.logger.Info().
		Str("battle_id", e.id).
		Stringer("winner", stats.Winner).
		Int("completed_rounds", stats.CompletedRounds).
		Int("outcome", stats.Outcome).
		Str("reason", reason).
		Msg("Battle over")

	e.publish(events.BattleEndedEvent{
		BattleID:        e.id,
		Winner:          stats.Winner,
		CompletedRounds: stats.CompletedRounds,
		Outcome:         stats.Outcome,
	})
}

func (e *Engine) publish(event events.Event) {
	if e.bus != nil {
		e.bus.Publish(event)
	}
}
