package game

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mitchelldurbincs/CavernCombatSim/internal/game/core"
)

// This file contains the textual battle rendering used by the CLIs and
// diagnostic logs.

// ANSI color codes for the colored renderer.
const (
	ColorReset = "\033[0m"
	ColorRed   = "\033[31m"
	ColorGreen = "\033[32m"
	ColorGray  = "\033[90m"
)

// Render returns the grid in map form with a health sidebar per row,
// e.g. "#...EG#   E(197), G(200)". Colored output paints elves green
// and goblins red.
func (e *Engine) Render(colored bool) string {
	g := e.cs.Grid

	// Health annotations grouped by row. Living units only; the roster
	// scan is in slot order, so within a row they need a reading-order sort.
	byRow := make(map[int][]*Unit)
	for i := range e.cs.Units {
		u := &e.cs.Units[i]
		if u.Alive() {
			byRow[u.Pos.Y] = append(byRow[u.Pos.Y], u)
		}
	}
	for _, row := range byRow {
		sort.Slice(row, func(i, j int) bool {
			return row[i].Pos.Less(row[j].Pos)
		})
	}

	var sb strings.Builder
	sb.Grow((g.W + 32) * (g.H + 1))

	sb.WriteString(fmt.Sprintf("After %d completed round(s):\n", e.cs.CompletedRounds))
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			tile := g.T[g.Idx(x, y)]
			if colored {
				sb.WriteString(tileColor(tile))
			}
			sb.WriteRune(tile.Rune())
			if colored {
				sb.WriteString(ColorReset)
			}
		}

		if units := byRow[y]; len(units) > 0 {
			sb.WriteString("   ")
			for i, u := range units {
				if i > 0 {
					sb.WriteString(", ")
				}
				marker := 'E'
				if u.Faction == core.FactionGoblin {
					marker = 'G'
				}
				sb.WriteString(fmt.Sprintf("%c(%d)", marker, u.Health))
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

func tileColor(t core.Tile) string {
	switch t {
	case core.TileElf:
		return ColorGreen
	case core.TileGoblin:
		return ColorRed
	case core.TileWall:
		return ColorGray
	default:
		return ColorReset
	}
}
