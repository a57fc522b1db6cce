package core

import (
	"fmt"
	"strings"
)

// Tile is the content of a single grid cell. Faction tiles double as the
// occupancy layer: a cell holding TileElf or TileGoblin is open terrain
// under a living unit and is not traversable while occupied.
type Tile int8

const (
	// TileOutOfBounds is the sentinel returned for lookups outside the
	// grid. It is distinct from TileWall so callers can tell the two apart.
	TileOutOfBounds Tile = iota - 1
	TileOpen
	TileWall
	TileElf
	TileGoblin
)

// Faction is one of the two opposing sides.
type Faction int8

const (
	FactionElf Faction = iota
	FactionGoblin
)

// Enemy returns the opposing faction.
func (f Faction) Enemy() Faction {
	if f == FactionElf {
		return FactionGoblin
	}
	return FactionElf
}

// Tile returns the occupancy marker for this faction.
func (f Faction) Tile() Tile {
	if f == FactionElf {
		return TileElf
	}
	return TileGoblin
}

func (f Faction) String() string {
	if f == FactionElf {
		return "elf"
	}
	return "goblin"
}

// Faction returns the faction occupying this tile, if any.
func (t Tile) Faction() (Faction, bool) {
	switch t {
	case TileElf:
		return FactionElf, true
	case TileGoblin:
		return FactionGoblin, true
	default:
		return 0, false
	}
}

// Rune returns the map character for the tile.
func (t Tile) Rune() rune {
	switch t {
	case TileOpen:
		return '.'
	case TileWall:
		return '#'
	case TileElf:
		return 'E'
	case TileGoblin:
		return 'G'
	default:
		return '?'
	}
}

// TileFromRune parses a map character into a tile.
func TileFromRune(r rune) (Tile, bool) {
	switch r {
	case '.':
		return TileOpen, true
	case '#':
		return TileWall, true
	case 'E':
		return TileElf, true
	case 'G':
		return TileGoblin, true
	default:
		return TileOutOfBounds, false
	}
}

// Grid is the battle terrain plus occupancy layer, stored row-major.
type Grid struct {
	W, H int
	T    []Tile // length = W*H (row-major)
}

// NewGrid creates an all-open grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	return &Grid{W: w, H: h, T: make([]Tile, w*h)}
}

// ParseGrid parses a textual map into a grid. Leading and trailing
// whitespace around the block is trimmed; every line must have the
// length of the first line.
func ParseGrid(s string) (*Grid, error) {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) == 0 || lines[0] == "" {
		return nil, fmt.Errorf("parse map: %w", ErrEmptyMap)
	}

	width := len(lines[0])
	g := NewGrid(width, len(lines))

	for y, line := range lines {
		if len(line) != width {
			return nil, fmt.Errorf("parse map: row %d has length %d, want %d: %w",
				y, len(line), width, ErrMapNotRectangular)
		}
		for x, r := range line {
			tile, ok := TileFromRune(r)
			if !ok {
				return nil, fmt.Errorf("parse map: unknown character %q at (%d,%d): %w",
					r, x, y, ErrUnknownMapChar)
			}
			g.T[g.Idx(x, y)] = tile
		}
	}

	return g, nil
}

func (g *Grid) Idx(x, y int) int      { return y*g.W + x }
func (g *Grid) XY(idx int) (int, int) { return idx % g.W, idx / g.W }

// InBounds checks if a position is within the grid boundaries.
func (g *Grid) InBounds(p Position) bool {
	return p.IsValid(g.W, g.H)
}

// Tile returns the tile at the given position, or TileOutOfBounds when
// the position lies outside the grid.
func (g *Grid) Tile(p Position) Tile {
	if !g.InBounds(p) {
		return TileOutOfBounds
	}
	return g.T[p.ToIndex(g.W)]
}

// SetTile overwrites the tile at the given position. Writing outside the
// grid is an invariant violation, not an expected runtime condition.
func (g *Grid) SetTile(p Position, t Tile) {
	if !g.InBounds(p) {
		panic(fmt.Sprintf("core: SetTile out of bounds at %s on %dx%d grid", p, g.W, g.H))
	}
	g.T[p.ToIndex(g.W)] = t
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{W: g.W, H: g.H, T: make([]Tile, len(g.T))}
	copy(c.T, g.T)
	return c
}

// String renders the grid back to its textual map form, without a
// trailing newline, so that parsing and printing round-trip.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.W + 1) * g.H)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			sb.WriteRune(g.T[g.Idx(x, y)].Rune())
		}
		if y != g.H-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
