package engine

import "errors"

// Precondition violations. These indicate a defect in the caller and are
// never produced by ordinary play.
var (
	ErrInvalidSize      = errors.New("engine: invalid board size")
	ErrOutOfBounds      = errors.New("engine: position out of bounds")
	ErrOccupied         = errors.New("engine: position already occupied")
	ErrInvalidValue     = errors.New("engine: invalid tile value")
	ErrInvalidDirection = errors.New("engine: invalid direction")
	ErrInvalidOptions   = errors.New("engine: invalid options")
)

// Arithmetic defects. A merge or score update that would wrap fails instead.
var (
	ErrValueOverflow = errors.New("engine: tile value overflow")
	ErrScoreOverflow = errors.New("engine: score overflow")
)
