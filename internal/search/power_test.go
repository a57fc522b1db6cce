package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/CavernCombatSim/internal/game/core"
	"github.com/mitchelldurbincs/CavernCombatSim/internal/testutil"
)

func TestMinimalPowerClassicMap(t *testing.T) {
	grid := testutil.MustParseGrid(t, testutil.ClassicMap)

	result, err := NewSearcher(grid, DefaultConfig(), testutil.NopLogger()).Run()
	require.NoError(t, err)

	assert.Equal(t, 15, result.AttackPower)
	assert.Equal(t, 4988, result.Stats.Outcome)
	assert.Equal(t, 29, result.Stats.CompletedRounds)
	assert.Equal(t, core.FactionElf, result.Stats.Winner)
	assert.Zero(t, result.Stats.Factions[core.FactionElf].Casualties)
	assert.Equal(t, 13, result.Trials, "scan starts at 3 and stops at 15")
}

func TestMinimalPowerOpenCavern(t *testing.T) {
	grid := testutil.MustParseGrid(t, `
#########
#G......#
#.E.#...#
#..##..G#
#...##..#
#...#...#
#.G...G.#
#.....G.#
#########
`)

	result, err := NewSearcher(grid, DefaultConfig(), testutil.NopLogger()).Run()
	require.NoError(t, err)

	assert.Equal(t, 34, result.AttackPower)
	assert.Equal(t, 1140, result.Stats.Outcome)
}

func TestSearchLeavesSourceGridUntouched(t *testing.T) {
	grid := testutil.MustParseGrid(t, testutil.ClassicMap)
	before := grid.String()

	_, err := NewSearcher(grid, DefaultConfig(), testutil.NopLogger()).Run()
	require.NoError(t, err)

	assert.Equal(t, before, grid.String(), "trials must run on clones")
}

func TestCeilingReached(t *testing.T) {
	// Pinned between two goblins, the elf dies at any power up to the
	// ceiling: it takes six damage a round and cannot kill fast enough.
	grid := testutil.MustParseGrid(t, `
#####
#GEG#
#####
`)

	cfg := DefaultConfig()
	cfg.Ceiling = 4

	_, err := NewSearcher(grid, cfg, testutil.NopLogger()).Run()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCeilingReached)
}

func TestInvalidRange(t *testing.T) {
	grid := testutil.MustParseGrid(t, testutil.DuelMap)

	_, err := NewSearcher(grid, Config{Faction: core.FactionElf, Floor: 10, Ceiling: 5}, testutil.NopLogger()).Run()
	assert.Error(t, err)

	_, err = NewSearcher(grid, Config{Faction: core.FactionElf, Floor: 0, Ceiling: 5}, testutil.NopLogger()).Run()
	assert.Error(t, err)
}

func TestBoostGoblins(t *testing.T) {
	grid := testutil.MustParseGrid(t, testutil.DuelMap)

	cfg := Config{Faction: core.FactionGoblin, Floor: 3, Ceiling: 200}
	result, err := NewSearcher(grid, cfg, testutil.NopLogger()).Run()
	require.NoError(t, err)

	// Head-to-head with equal health, whoever is boosted past the
	// break-even point wins untouched... the goblin still gets hit, so
	// zero casualties means zero deaths, not zero damage.
	assert.Equal(t, core.FactionGoblin, result.Stats.Winner)
	assert.Zero(t, result.Stats.Factions[core.FactionGoblin].Casualties)
	assert.GreaterOrEqual(t, result.AttackPower, 3)
}
