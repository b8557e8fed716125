package core

import "math/bits"

// Color is a logical color for a screen cell. The terminal front end maps
// each one to an ANSI 256-color code.
type Color uint8

// Interface colors.
const (
	ColorDefault Color = iota
	ColorBorder
	ColorMuted
	ColorAccent
	ColorDanger
	ColorEmptyCell
)

// Tile colors, one per power of two; tiles beyond 2048 share ColorTileSuper.
const (
	ColorTile2 Color = iota + 16
	ColorTile4
	ColorTile8
	ColorTile16
	ColorTile32
	ColorTile64
	ColorTile128
	ColorTile256
	ColorTile512
	ColorTile1024
	ColorTile2048
	ColorTileSuper
)

// TileColor returns the color for a tile value. Values that are not powers
// of two get the color of the next lower power.
func TileColor(value uint32) Color {
	if value < 2 {
		return ColorEmptyCell
	}
	exp := bits.Len32(value) - 1 // log2, rounded down
	c := ColorTile2 + Color(exp-1)
	if c > ColorTileSuper {
		return ColorTileSuper
	}
	return c
}

// IsTile reports whether c is one of the tile colors.
func (c Color) IsTile() bool {
	return c >= ColorTile2 && c <= ColorTileSuper
}
