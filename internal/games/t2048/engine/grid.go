// Package engine implements the rules of the 2048 sliding-tile puzzle:
// the grid of tiles, directional shifts with merging, tile spawning,
// terminal-state detection and score tracking.
//
// The package is pure and synchronous. It performs no I/O and keeps no
// package-level state; everything lives in a Session or a Grid owned by
// the caller.
package engine

import (
	"fmt"
	"sort"
)

const (
	// MinSize is the smallest supported board side length.
	MinSize = 2
	// MaxSize bounds the board so positions stay small and spawning stays cheap.
	MaxSize = 16
	// DefaultSize is the classic 4x4 board.
	DefaultSize = 4
	// MinTileValue is the value of a freshly spawned tile.
	MinTileValue uint32 = 2
)

// Position addresses a cell. X grows to the right, Y grows upward.
type Position struct {
	X, Y int
}

// String returns "(x,y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Tile is a numbered tile on the grid.
type Tile struct {
	ID    uint64   // Identity, unique within a grid for its lifetime
	Pos   Position // Current cell
	Value uint32   // Power of two by convention
}

// Grid is the authoritative set of live tiles for a square board.
// At rest no two tiles share a position and every tile is in bounds.
type Grid struct {
	size   int
	tiles  map[Position]Tile
	nextID uint64
}

// NewGrid creates an empty size×size grid.
func NewGrid(size int) (*Grid, error) {
	if size < MinSize || size > MaxSize {
		return nil, fmt.Errorf("%w: %d (want %d..%d)", ErrInvalidSize, size, MinSize, MaxSize)
	}
	return &Grid{
		size:  size,
		tiles: make(map[Position]Tile, size*size),
	}, nil
}

// Size returns the side length of the board.
func (g *Grid) Size() int {
	return g.size
}

// Cells returns the number of cells on the board.
func (g *Grid) Cells() int {
	return g.size * g.size
}

// InBounds reports whether p lies on the board.
func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.size && p.Y >= 0 && p.Y < g.size
}

// TileAt returns the tile at p, if any.
// Panics if p is out of bounds; callers check InBounds first.
func (g *Grid) TileAt(p Position) (Tile, bool) {
	if !g.InBounds(p) {
		panic(fmt.Sprintf("engine: TileAt%s on %dx%d board", p, g.size, g.size))
	}
	t, ok := g.tiles[p]
	return t, ok
}

// Len returns the number of live tiles.
func (g *Grid) Len() int {
	return len(g.tiles)
}

// Full reports whether every cell holds a tile.
func (g *Grid) Full() bool {
	return len(g.tiles) == g.Cells()
}

// OccupiedPositions returns all occupied positions ordered by row (y), then column (x).
func (g *Grid) OccupiedPositions() []Position {
	positions := make([]Position, 0, len(g.tiles))
	for p := range g.tiles {
		positions = append(positions, p)
	}
	sort.Slice(positions, func(i, j int) bool {
		if positions[i].Y != positions[j].Y {
			return positions[i].Y < positions[j].Y
		}
		return positions[i].X < positions[j].X
	})
	return positions
}

// Tiles returns a copy of all live tiles in OccupiedPositions order.
func (g *Grid) Tiles() []Tile {
	positions := g.OccupiedPositions()
	tiles := make([]Tile, len(positions))
	for i, p := range positions {
		tiles[i] = g.tiles[p]
	}
	return tiles
}

// EmptyPositions enumerates every (x, y) in [0,size)×[0,size) with x as the
// outer loop and returns those without a tile.
func (g *Grid) EmptyPositions() []Position {
	empty := make([]Position, 0, g.Cells()-len(g.tiles))
	for x := range g.size {
		for y := range g.size {
			p := Position{X: x, Y: y}
			if _, ok := g.tiles[p]; !ok {
				empty = append(empty, p)
			}
		}
	}
	return empty
}

// Insert places a new tile with the given value at p.
func (g *Grid) Insert(p Position, value uint32) (Tile, error) {
	if !g.InBounds(p) {
		return Tile{}, fmt.Errorf("insert at %s: %w", p, ErrOutOfBounds)
	}
	if value == 0 {
		return Tile{}, fmt.Errorf("insert at %s: %w: 0", p, ErrInvalidValue)
	}
	if _, ok := g.tiles[p]; ok {
		return Tile{}, fmt.Errorf("insert at %s: %w", p, ErrOccupied)
	}

	g.nextID++
	t := Tile{ID: g.nextID, Pos: p, Value: value}
	g.tiles[p] = t
	return t, nil
}

// Clear removes every tile. Tile IDs are not reused afterwards, so any Tile
// value obtained before Clear no longer identifies a live tile.
func (g *Grid) Clear() {
	clear(g.tiles)
}

// Clone returns an independent copy of the grid, including the ID counter.
func (g *Grid) Clone() *Grid {
	c := &Grid{
		size:   g.size,
		tiles:  make(map[Position]Tile, len(g.tiles)),
		nextID: g.nextID,
	}
	for p, t := range g.tiles {
		c.tiles[p] = t
	}
	return c
}

// Values returns the board as a matrix indexed [y][x]; empty cells are 0.
func (g *Grid) Values() [][]uint32 {
	rows := make([][]uint32, g.size)
	for y := range rows {
		rows[y] = make([]uint32, g.size)
	}
	for p, t := range g.tiles {
		rows[p.Y][p.X] = t.Value
	}
	return rows
}

// MaxTile returns the highest tile value on the board, or 0 when empty.
func (g *Grid) MaxTile() uint32 {
	var maxVal uint32
	for _, t := range g.tiles {
		if t.Value > maxVal {
			maxVal = t.Value
		}
	}
	return maxVal
}

// replace swaps the tile set wholesale. Used to commit a computed shift.
func (g *Grid) replace(tiles map[Position]Tile) {
	g.tiles = tiles
}
