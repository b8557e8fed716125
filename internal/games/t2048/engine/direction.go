package engine

import (
	"fmt"
	"strings"
)

// Direction represents a shift direction.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

// Directions returns all four directions.
func Directions() []Direction {
	return []Direction{Left, Right, Up, Down}
}

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= Left && d <= Down
}

// ParseDirection accepts direction names as well as vim (h/j/k/l) and
// wasd keys.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "h", "a":
		return Left, nil
	case "right", "l", "d":
		return Right, nil
	case "up", "k", "w":
		return Up, nil
	case "down", "j", "s":
		return Down, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

// less orders positions so that the tile closest to the target edge of each
// row comes first: the row coordinate is the primary key, the distance along
// the motion axis the secondary one.
func (d Direction) less(a, b Position) bool {
	switch d {
	case Left:
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	case Right:
		if a.Y != b.Y {
			return a.Y > b.Y
		}
		return a.X > b.X
	case Up:
		if a.X != b.X {
			return a.X > b.X
		}
		return a.Y > b.Y
	default: // Down
		if a.X != b.X {
			return a.X < b.X
		}
		return a.Y < b.Y
	}
}

// row returns the coordinate orthogonal to the motion axis.
func (d Direction) row(p Position) int {
	if d == Left || d == Right {
		return p.Y
	}
	return p.X
}

// place moves p to slot column of its row, counted from the target edge.
func (d Direction) place(p Position, column, size int) Position {
	switch d {
	case Left:
		p.X = column
	case Right:
		p.X = size - 1 - column
	case Up:
		p.Y = size - 1 - column
	case Down:
		p.Y = column
	}
	return p
}
