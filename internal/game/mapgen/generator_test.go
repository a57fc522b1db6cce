package mapgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/CavernCombatSim/internal/game/core"
	"github.com/mitchelldurbincs/CavernCombatSim/internal/testutil"
)

func TestGenerateParsesBack(t *testing.T) {
	gen := NewGenerator(DefaultMapConfig(16, 12), testutil.NewTestRNG(42))
	grid := gen.Generate()

	reparsed, err := core.ParseGrid(grid.String())
	require.NoError(t, err)
	assert.Equal(t, grid.String(), reparsed.String())
}

func TestGenerateUnitCounts(t *testing.T) {
	cfg := DefaultMapConfig(20, 15)
	cfg.UnitsPerFaction = 6
	gen := NewGenerator(cfg, testutil.NewTestRNG(7))

	grid := gen.Generate()

	elves, goblins := 0, 0
	for _, tile := range grid.T {
		switch tile {
		case core.TileElf:
			elves++
		case core.TileGoblin:
			goblins++
		}
	}
	assert.Equal(t, 6, elves)
	assert.Equal(t, 6, goblins)
}

func TestGenerateBorderIsWalled(t *testing.T) {
	gen := NewGenerator(DefaultMapConfig(10, 8), testutil.NewTestRNG(1))
	grid := gen.Generate()

	for x := 0; x < grid.W; x++ {
		assert.Equal(t, core.TileWall, grid.Tile(core.Position{X: x, Y: 0}))
		assert.Equal(t, core.TileWall, grid.Tile(core.Position{X: x, Y: grid.H - 1}))
	}
	for y := 0; y < grid.H; y++ {
		assert.Equal(t, core.TileWall, grid.Tile(core.Position{X: 0, Y: y}))
		assert.Equal(t, core.TileWall, grid.Tile(core.Position{X: grid.W - 1, Y: y}))
	}
}

func TestGenerateIsDeterministicPerSeed(t *testing.T) {
	cfg := DefaultMapConfig(14, 10)

	a := NewGenerator(cfg, testutil.NewTestRNG(99)).Generate()
	b := NewGenerator(cfg, testutil.NewTestRNG(99)).Generate()
	c := NewGenerator(cfg, testutil.NewTestRNG(100)).Generate()

	assert.Equal(t, a.String(), b.String(), "same seed, same cavern")
	assert.NotEqual(t, a.String(), c.String(), "different seed should differ")
}

func TestGenerateExtremeWallRatioStillFitsUnits(t *testing.T) {
	cfg := DefaultMapConfig(8, 8)
	cfg.WallRatio = 0.95
	cfg.UnitsPerFaction = 3
	gen := NewGenerator(cfg, testutil.NewTestRNG(3))

	grid := gen.Generate()

	units := 0
	for _, tile := range grid.T {
		if _, ok := tile.Faction(); ok {
			units++
		}
	}
	assert.Equal(t, 6, units)
}
