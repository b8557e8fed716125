package engine

import (
	"fmt"
	"time"
)

// RunState is the session phase.
type RunState int

const (
	Playing RunState = iota
	GameOver
)

// String returns "playing" or "game_over".
func (s RunState) String() string {
	switch s {
	case Playing:
		return "playing"
	case GameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Options configures a Session.
type Options struct {
	Size         int    // Board side length
	InitialTiles int    // Tiles spawned by NewGame
	SpawnValue   uint32 // Value of spawned tiles
	SpawnOnNoop  bool   // Spawn even after a shift that changed nothing
	Seed         int64  // RNG seed; 0 means seed from the clock
	Best         uint64 // Best score carried over from earlier sessions
}

// DefaultOptions returns the classic 4x4 rules.
func DefaultOptions() Options {
	return Options{
		Size:         DefaultSize,
		InitialTiles: 2,
		SpawnValue:   MinTileValue,
	}
}

// Validate checks the options for consistency.
func (o Options) Validate() error {
	if o.Size < MinSize || o.Size > MaxSize {
		return fmt.Errorf("%w: size %d not in %d..%d", ErrInvalidOptions, o.Size, MinSize, MaxSize)
	}
	if o.InitialTiles < 0 || o.InitialTiles > o.Size*o.Size {
		return fmt.Errorf("%w: initial tiles %d not in 0..%d", ErrInvalidOptions, o.InitialTiles, o.Size*o.Size)
	}
	if o.SpawnValue != 0 && o.SpawnValue&(o.SpawnValue-1) != 0 {
		return fmt.Errorf("%w: spawn value %d is not a power of two", ErrInvalidOptions, o.SpawnValue)
	}
	return nil
}

// MoveOutcome reports everything a presentation layer needs after one input.
type MoveOutcome struct {
	Accepted bool        // False when the session was not Playing
	Shift    ShiftResult // Moves, merges and removals
	Spawned  *Tile       // Tile spawned after the shift, if any
	Score    uint64
	Best     uint64
	State    RunState
	GameOver bool // This move ended the game
}

// Session owns one player's board, score and run state.
// It is not safe for concurrent use; readers on other goroutines should
// work from a Snapshot.
type Session struct {
	opts    Options
	grid    *Grid
	spawner *Spawner
	score   ScoreTracker
	state   RunState
	moves   int
}

// NewSession validates opts and starts the first game.
func NewSession(opts Options) (*Session, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if opts.SpawnValue == 0 {
		opts.SpawnValue = MinTileValue
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	grid, err := NewGrid(opts.Size)
	if err != nil {
		return nil, err
	}

	s := &Session{
		opts:    opts,
		grid:    grid,
		spawner: NewSpawner(opts.Seed, opts.SpawnValue),
		score:   ScoreTracker{best: opts.Best},
	}
	s.NewGame()
	return s, nil
}

// NewGame clears the board, resets the score and spawns the initial tiles.
// Valid from either run state; the best score is kept.
func (s *Session) NewGame() []Tile {
	s.grid.Clear()
	s.score.Reset()
	s.moves = 0
	s.state = Playing
	return s.spawner.SpawnInitial(s.grid, s.opts.InitialTiles)
}

// EndGame forces the session into GameOver without touching the board.
// Returns false if the game was already over.
func (s *Session) EndGame() bool {
	if s.state == GameOver {
		return false
	}
	s.state = GameOver
	return true
}

// Move applies one directional input: shift, score, spawn, terminal check.
// Input received while the game is over is ignored. On error the session is
// unchanged.
func (s *Session) Move(dir Direction) (MoveOutcome, error) {
	if s.state != Playing {
		return s.outcome(MoveOutcome{}), nil
	}

	work := s.grid.Clone()
	shift, err := Shift(work, dir)
	if err != nil {
		return MoveOutcome{}, err
	}
	score := s.score
	if err := score.Apply(shift.ScoreDelta); err != nil {
		return MoveOutcome{}, err
	}

	s.grid = work
	s.score = score
	if shift.Changed {
		s.moves++
	}

	out := MoveOutcome{Accepted: true, Shift: shift}
	if shift.Changed || s.opts.SpawnOnNoop {
		if t, ok := s.spawner.Spawn(s.grid); ok {
			out.Spawned = &t
		}
	}

	if !HasLegalMove(s.grid) {
		s.state = GameOver
		out.GameOver = true
	}
	return s.outcome(out), nil
}

func (s *Session) outcome(out MoveOutcome) MoveOutcome {
	out.Score = s.score.Score()
	out.Best = s.score.Best()
	out.State = s.state
	return out
}

// State returns the current run state.
func (s *Session) State() RunState {
	return s.state
}

// Score returns the current game's score.
func (s *Session) Score() uint64 {
	return s.score.Score()
}

// Best returns the best score of this session.
func (s *Session) Best() uint64 {
	return s.score.Best()
}

// Moves returns the number of moves that changed the board in the current
// game.
func (s *Session) Moves() int {
	return s.moves
}

// Size returns the board side length.
func (s *Session) Size() int {
	return s.grid.Size()
}

// MaxTile returns the highest tile on the board.
func (s *Session) MaxTile() uint32 {
	return s.grid.MaxTile()
}

// Options returns the effective options, including the resolved seed.
func (s *Session) Options() Options {
	return s.opts
}

// CanShift reports whether dir would change the current board.
func (s *Session) CanShift(dir Direction) bool {
	return s.state == Playing && CanShift(s.grid, dir)
}
