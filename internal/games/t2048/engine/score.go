package engine

import (
	"fmt"
	"math/bits"
)

// ScoreTracker accumulates the score of the current game and the best score
// seen by this tracker. Reset clears the score but never the best.
type ScoreTracker struct {
	score uint64
	best  uint64
}

// Score returns the current game's score.
func (s *ScoreTracker) Score() uint64 {
	return s.score
}

// Best returns the highest score observed.
func (s *ScoreTracker) Best() uint64 {
	return s.best
}

// Apply adds delta to the score and raises the best score if needed.
// It is called after every shift, including shifts that merged nothing.
func (s *ScoreTracker) Apply(delta uint64) error {
	sum, carry := bits.Add64(s.score, delta, 0)
	if carry != 0 {
		return fmt.Errorf("score %d + %d: %w", s.score, delta, ErrScoreOverflow)
	}
	s.score = sum
	if s.score > s.best {
		s.best = s.score
	}
	return nil
}

// Reset zeroes the current score for a new game.
func (s *ScoreTracker) Reset() {
	s.score = 0
}
