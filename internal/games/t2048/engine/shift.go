package engine

import (
	"fmt"
	"math/bits"
	"sort"
)

// TileMove records where a surviving tile ended up after a shift.
type TileMove struct {
	ID     uint64
	From   Position
	To     Position
	Value  uint32 // Value after the shift
	Merged bool   // Whether this tile absorbed another one
}

// Moved reports whether the tile changed position.
func (m TileMove) Moved() bool {
	return m.From != m.To
}

// MergeEvent records two equal tiles combining into one.
type MergeEvent struct {
	Target   Tile   // Surviving tile at its new position, with the merged value
	Consumed Tile   // Removed tile at its pre-shift position
	Value    uint32 // Combined value
}

// ShiftResult describes the outcome of one shift.
type ShiftResult struct {
	Direction  Direction
	Moves      []TileMove
	Merges     []MergeEvent
	Removed    []Tile
	ScoreDelta uint64
	Changed    bool // Any tile moved or merged
}

// Shift slides and merges every tile on g toward dir.
//
// Tiles are visited in dir's scan order while a column counter tracks the
// next free slot of the current row. When the next tile in the same row has
// the same value it is consumed: the current tile doubles and the consumed
// tile is skipped, so a tile merges at most once per shift.
//
// The grid is modified only when the whole shift succeeds. On error
// (ErrInvalidDirection, ErrValueOverflow) g is left untouched.
func Shift(g *Grid, dir Direction) (ShiftResult, error) {
	if !dir.Valid() {
		return ShiftResult{}, fmt.Errorf("shift: %w: %d", ErrInvalidDirection, int(dir))
	}

	tiles := g.Tiles()
	sort.SliceStable(tiles, func(i, j int) bool {
		return dir.less(tiles[i].Pos, tiles[j].Pos)
	})

	result := ShiftResult{Direction: dir}
	next := make(map[Position]Tile, len(tiles))
	column := 0

	for i := 0; i < len(tiles); i++ {
		tile := tiles[i]
		from := tile.Pos
		tile.Pos = dir.place(from, column, g.size)
		merged := false

		if i+1 < len(tiles) {
			peek := tiles[i+1]
			switch {
			case dir.row(from) != dir.row(peek.Pos):
				column = 0
			case tile.Value != peek.Value:
				column++
			default:
				value, carry := bits.Add32(tile.Value, peek.Value, 0)
				if carry != 0 {
					return ShiftResult{}, fmt.Errorf("shift %s: merge %d+%d at %s: %w",
						dir, tile.Value, peek.Value, tile.Pos, ErrValueOverflow)
				}
				i++

				tile.Value = value
				merged = true
				result.ScoreDelta += uint64(value)
				result.Merges = append(result.Merges, MergeEvent{
					Target:   tile,
					Consumed: peek,
					Value:    value,
				})
				result.Removed = append(result.Removed, peek)

				if i+1 < len(tiles) {
					if dir.row(from) != dir.row(tiles[i+1].Pos) {
						column = 0
					} else {
						column++
					}
				}
			}
		}

		next[tile.Pos] = tile
		move := TileMove{
			ID:     tile.ID,
			From:   from,
			To:     tile.Pos,
			Value:  tile.Value,
			Merged: merged,
		}
		if move.Moved() || merged {
			result.Changed = true
		}
		result.Moves = append(result.Moves, move)
	}

	if len(next)+len(result.Removed) != len(tiles) {
		// Two survivors landed on the same cell; the scan order is broken.
		panic(fmt.Sprintf("engine: shift %s produced overlapping tiles", dir))
	}

	g.replace(next)
	return result, nil
}

// CanShift reports whether shifting g toward dir would change the board.
// g itself is not modified.
func CanShift(g *Grid, dir Direction) bool {
	res, err := Shift(g.Clone(), dir)
	return err == nil && res.Changed
}
