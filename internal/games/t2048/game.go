// Package t2048 adapts the 2048 rules engine to the tick-driven terminal
// platform: it maps input actions to moves and session actions, animates
// the results and draws the board into a core.Screen.
package t2048

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048/engine"
)

// ID is the game identifier used for screenshots and logging.
const ID = "2048"

// noopFlashTicks is how long the "nothing moved" hint stays visible.
const noopFlashTicks = 20

// EndReason tells how the last game finished.
type EndReason int

const (
	EndNone    EndReason = iota // Still playing
	EndNoMoves                  // Board locked
	EndGaveUp                   // Player ended the game
	EndDefect                   // Engine reported an error
)

// String returns the reason as stored in the score history.
func (r EndReason) String() string {
	switch r {
	case EndNoMoves:
		return "no_moves"
	case EndGaveUp:
		return "gave_up"
	case EndDefect:
		return "defect"
	default:
		return "none"
	}
}

// Summary describes the current or last finished game.
type Summary struct {
	Size    int
	Score   uint64
	Best    uint64
	MaxTile uint32
	Moves   int
	Seed    int64
	Reason  EndReason
}

// Game drives one engine session from platform ticks.
type Game struct {
	cfg     config.T2048Config
	logger  *log.Logger
	session *engine.Session
	best    *BestScores
	seed    int64
	tick    uint64

	screenW int
	screenH int

	paused    bool
	tooSmall  bool
	reason    EndReason
	noopTicks int // Remaining ticks of the "nothing moved" hint

	anim animator
}

// New creates a game with the given configuration. A nil logger discards
// log output.
func New(cfg config.T2048Config, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		cfg:    cfg,
		logger: logger.WithPrefix("t2048"),
		best:   NewBestScores(),
	}
}

// WithBestScores makes the game start from and report to a shared best
// score record, e.g. one kept across menu rounds. Call before Reset.
func (g *Game) WithBestScores(best *BestScores) *Game {
	if best != nil {
		g.best = best
	}
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "2048"
}

// Reset starts a fresh session with the runtime seed and screen size.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.seed = rc.Seed
	if g.seed == 0 {
		g.seed = time.Now().UnixNano()
	}

	session, err := g.newSession()
	if err != nil {
		g.logger.Error("invalid rules, using defaults", "err", err, "size", g.cfg.Board.Size)
		g.cfg = config.DefaultT2048Config()
		if session, err = g.newSession(); err != nil {
			panic(fmt.Sprintf("t2048: default rules rejected: %v", err))
		}
	}
	g.session = session

	g.tick = 0
	g.paused = false
	g.reason = EndNone
	g.noopTicks = 0
	g.anim.clear()
	g.startSpawnAnimation(g.session.Snapshot().Tiles)

	g.Resize(rc.ScreenW, rc.ScreenH)
	g.logger.Debug("new session", "size", g.session.Size(), "seed", g.seed)
}

// newSession starts an engine session from the current rules, carrying in
// the best score of the board size.
func (g *Game) newSession() (*engine.Session, error) {
	opts := g.cfg.ToEngineOptions(g.seed)
	opts.Best = g.best.Get(opts.Size)
	return engine.NewSession(opts)
}

// Resize updates the layout for a new screen size without touching the
// game.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	size := g.cfg.Board.Size
	if g.session != nil {
		size = g.session.Size()
	}
	_, ok := chooseLayout(size, w, h)
	g.tooSmall = !ok
}

// Step advances the game by one tick. At most one move is applied per tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	if g.noopTicks > 0 {
		g.noopTicks--
	}

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && g.session.State() == engine.Playing {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionNewGame) {
		g.newGame()
		return core.StepResult{State: g.State()}
	}

	finished := false
	if in.Has(core.ActionEndGame) && g.session.EndGame() {
		g.reason = EndGaveUp
		finished = true
		g.logger.Info("game ended by player", g.logFields()...)
	}

	g.anim.step()

	if dir, ok := toDirection(in.Direction()); ok && !finished {
		finished = g.move(dir)
	}

	return core.StepResult{State: g.State(), Finished: finished}
}

// move applies one direction and reports whether it finished the game.
func (g *Game) move(dir engine.Direction) bool {
	// A new move cuts the running animation short.
	g.anim.clear()

	out, err := g.session.Move(dir)
	if err != nil {
		g.logger.Error("engine rejected move, ending game", append(g.logFields(), "dir", dir, "err", err)...)
		g.session.EndGame()
		g.reason = EndDefect
		return false
	}
	if !out.Accepted {
		return false
	}
	g.best.Record(g.session.Size(), out.Best)

	if !out.Shift.Changed {
		g.noopTicks = noopFlashTicks
	} else {
		g.noopTicks = 0
	}
	g.startMoveAnimation(out)

	if out.GameOver {
		g.reason = EndNoMoves
		g.logger.Info("game over", g.logFields()...)
		return true
	}
	return false
}

func (g *Game) newGame() {
	g.anim.clear()
	tiles := g.session.NewGame()
	g.reason = EndNone
	g.noopTicks = 0
	g.startSpawnAnimation(tiles)
	g.logger.Debug("new game", "size", g.session.Size(), "best", g.session.Best())
}

func (g *Game) logFields() []any {
	return []any{
		"size", g.session.Size(),
		"score", g.session.Score(),
		"max_tile", g.session.MaxTile(),
		"moves", g.session.Moves(),
	}
}

// toDirection maps a platform action to a shift direction.
func toDirection(a core.Action) (engine.Direction, bool) {
	switch a {
	case core.ActionLeft:
		return engine.Left, true
	case core.ActionRight:
		return engine.Right, true
	case core.ActionUp:
		return engine.Up, true
	case core.ActionDown:
		return engine.Down, true
	}
	return 0, false
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    int(g.session.Score()),
		Best:     int(g.session.Best()),
		MaxTile:  g.session.MaxTile(),
		Moves:    g.session.Moves(),
		GameOver: g.session.State() == engine.GameOver,
		Paused:   g.paused || g.tooSmall,
	}
}

// Summary returns the figures of the current game, for the score history.
func (g *Game) Summary() Summary {
	return Summary{
		Size:    g.session.Size(),
		Score:   g.session.Score(),
		Best:    g.session.Best(),
		MaxTile: g.session.MaxTile(),
		Moves:   g.session.Moves(),
		Seed:    g.seed,
		Reason:  g.reason,
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/HJKL/WASD: Move | N: New | E: End | P: Pause | Q: Quit"
}
