package mapgen

import (
	"math/rand"

	"github.com/mitchelldurbincs/CavernCombatSim/internal/common"
	"github.com/mitchelldurbincs/CavernCombatSim/internal/game/core"
)

// MapConfig holds configuration for cavern generation
type MapConfig struct {
	Width           int
	Height          int
	WallRatio       float64 // fraction of interior tiles turned to rock
	UnitsPerFaction int
}

// DefaultMapConfig returns a sensible default configuration
func DefaultMapConfig(w, h int) MapConfig {
	return MapConfig{
		Width:           w,
		Height:          h,
		WallRatio:       0.15,
		UnitsPerFaction: 4,
	}
}

// Generator builds random battle maps with deterministic RNG
type Generator struct {
	config MapConfig
	rng    *rand.Rand
}

// NewGenerator creates a new map generator
func NewGenerator(config MapConfig, rng *rand.Rand) *Generator {
	return &Generator{
		config: config,
		rng:    rng,
	}
}

// Generate creates a bordered cavern with random interior walls and both
// factions' units placed on open tiles. The result always parses back
// through core.ParseGrid and always carries the configured unit counts.
func (g *Generator) Generate() *core.Grid {
	w := common.Max(g.config.Width, 4)
	h := common.Max(g.config.Height, 4)
	grid := core.NewGrid(w, h)

	// Border walls
	for x := 0; x < w; x++ {
		grid.SetTile(core.Position{X: x, Y: 0}, core.TileWall)
		grid.SetTile(core.Position{X: x, Y: h - 1}, core.TileWall)
	}
	for y := 0; y < h; y++ {
		grid.SetTile(core.Position{X: 0, Y: y}, core.TileWall)
		grid.SetTile(core.Position{X: w - 1, Y: y}, core.TileWall)
	}

	g.placeWalls(grid)
	g.placeUnits(grid, core.TileElf)
	g.placeUnits(grid, core.TileGoblin)

	return grid
}

func (g *Generator) placeWalls(grid *core.Grid) {
	interior := (grid.W - 2) * (grid.H - 2)
	want := int(float64(interior) * g.config.WallRatio)

	// Leave room for both rosters even on aggressive wall ratios.
	maxWalls := interior - 2*g.config.UnitsPerFaction
	want = common.Clamp(want, 0, common.Max(maxWalls, 0))

	placed := 0
	attempts := 0
	maxAttempts := want * 10

	for placed < want && attempts < maxAttempts {
		p := g.randomInterior(grid)
		if grid.Tile(p) == core.TileOpen {
			grid.SetTile(p, core.TileWall)
			placed++
		}
		attempts++
	}
}

func (g *Generator) placeUnits(grid *core.Grid, marker core.Tile) {
	placed := 0
	// Unit placement must not fail: walls capped above guarantee enough
	// open tiles, so only collisions with earlier picks retry.
	for placed < g.config.UnitsPerFaction {
		p := g.randomInterior(grid)
		if grid.Tile(p) == core.TileOpen {
			grid.SetTile(p, marker)
			placed++
		}
	}
}

func (g *Generator) randomInterior(grid *core.Grid) core.Position {
	return core.Position{
		X: 1 + g.rng.Intn(grid.W-2),
		Y: 1 + g.rng.Intn(grid.H-2),
	}
}
