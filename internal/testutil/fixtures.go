package testutil

import (
	"testing"

	"github.com/mitchelldurbincs/CavernCombatSim/internal/game/core"
)

// ClassicMap is the documented 7x7 fixture: outcome 27730 at default
// attack power, minimal elf attack power 15 with outcome 4988.
const ClassicMap = `
#######
#.G...#
#...EG#
#.#.#G#
#..G#E#
#.....#
#######
`

// DuelMap is the smallest interesting battle: one elf facing one goblin.
const DuelMap = `
####
#EG#
####
`

// MustParseGrid parses a map or fails the test.
func MustParseGrid(t *testing.T, mapText string) *core.Grid {
	t.Helper()
	g, err := core.ParseGrid(mapText)
	if err != nil {
		t.Fatalf("parse fixture map: %v", err)
	}
	return g
}
