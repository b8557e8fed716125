package t2048

import "github.com/vovakirdan/tui-2048/internal/games/t2048/engine"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the game for determinism testing and replay checks.
type Snapshot struct {
	Tick      uint64
	Seed      int64
	Size      int
	Score     uint64
	Best      uint64
	Moves     int
	MaxTile   uint32
	Board     [][]uint32 // Top row first, as drawn
	State     GameStateType
	Reason    EndReason
	Animating bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	es := g.session.Snapshot()

	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case es.State == engine.GameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	return Snapshot{
		Tick:      g.tick,
		Seed:      g.seed,
		Size:      es.Size,
		Score:     es.Score,
		Best:      es.Best,
		Moves:     es.Moves,
		MaxTile:   es.MaxTile,
		Board:     es.Rows(),
		State:     state,
		Reason:    g.reason,
		Animating: g.anim.active(),
	}
}
