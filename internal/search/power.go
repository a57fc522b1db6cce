// Package search finds the minimal attack power a faction needs to win
// a battle without losing a single unit.
package search

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/CavernCombatSim/internal/game"
	"github.com/mitchelldurbincs/CavernCombatSim/internal/game/core"
)

// ErrCeilingReached is returned when no attack power up to the
// configured ceiling produces a zero-loss victory. Without a ceiling a
// map whose boosted faction is trapped would scan forever.
var ErrCeilingReached = errors.New("no sufficient attack power below ceiling")

// Config tunes the scan.
type Config struct {
	Faction     core.Faction // faction whose attack power is boosted
	Floor       int          // first attack power to try, inclusive
	Ceiling     int          // last attack power to try, inclusive
	UnitHealth  int          // 0 means the battle default
	EnemyAttack int          // 0 means the battle default
}

// DefaultConfig scans elf attack power 3..200, the standard setup.
func DefaultConfig() Config {
	return Config{
		Faction: core.FactionElf,
		Floor:   game.DefaultAttackPower,
		Ceiling: 200,
	}
}

// Result is the outcome of a successful scan.
type Result struct {
	AttackPower int
	Trials      int
	Stats       game.BattleStats
}

// Searcher runs ascending attack-power trials against one map.
type Searcher struct {
	grid   *core.Grid
	cfg    Config
	logger zerolog.Logger
}

// NewSearcher creates a searcher over the given grid. The grid is kept
// as the pristine original; every trial runs on a clone.
func NewSearcher(grid *core.Grid, cfg Config, logger zerolog.Logger) *Searcher {
	return &Searcher{
		grid:   grid,
		cfg:    cfg,
		logger: logger.With().Str("component", "power_search").Logger(),
	}
}

// Run scans attack powers from floor to ceiling and returns the first
// one where the boosted faction wins with zero casualties.
//
// Zero-loss is assumed monotonic in attack power, so the first hit of a
// linear ascending scan is the minimum. The assumption comes from the
// problem domain and is unproven, which is why this is not a binary
// search.
func (s *Searcher) Run() (Result, error) {
	if s.cfg.Floor <= 0 || s.cfg.Ceiling < s.cfg.Floor {
		return Result{}, fmt.Errorf("search: invalid power range [%d, %d]", s.cfg.Floor, s.cfg.Ceiling)
	}

	trials := 0
	for power := s.cfg.Floor; power <= s.cfg.Ceiling; power++ {
		trials++
		trialID := uuid.NewString()

		stats, casualties := s.trial(power)
		s.logger.Debug().
			Str("trial_id", trialID).
			Int("attack_power", power).
			Int("casualties", casualties).
			Int("outcome", stats.Outcome).
			Msg("Trial finished")

		if casualties == 0 && stats.HasWinner && stats.Winner == s.cfg.Faction {
			s.logger.Info().
				Stringer("faction", s.cfg.Faction).
				Int("attack_power", power).
				Int("trials", trials).
				Int("outcome", stats.Outcome).
				Msg("Minimal sufficient attack power found")
			return Result{AttackPower: power, Trials: trials, Stats: stats}, nil
		}
	}

	return Result{}, fmt.Errorf("search: scanned [%d, %d]: %w", s.cfg.Floor, s.cfg.Ceiling, ErrCeilingReached)
}

// trial runs one battle with the boosted attack power on a fresh world.
func (s *Searcher) trial(power int) (game.BattleStats, int) {
	opts := game.Options{UnitHealth: s.cfg.UnitHealth}
	if s.cfg.Faction == core.FactionElf {
		opts.ElfAttack = power
		opts.GoblinAttack = s.cfg.EnemyAttack
	} else {
		opts.GoblinAttack = power
		opts.ElfAttack = s.cfg.EnemyAttack
	}

	e := game.NewEngine(s.grid.Clone(), opts, s.logger)
	stats := e.Run()
	return stats, e.Casualties(s.cfg.Faction)
}
