package t2048

import (
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048/engine"
)

// animPhase is the current phase of the move animation.
type animPhase int

const (
	phaseNone animPhase = iota
	phaseSlide
	phasePop
)

// sprite is a tile drawn in flight during the slide phase.
type sprite struct {
	value uint32 // Value before the merge
	from  engine.Position
	to    engine.Position
}

// animator plays a slide followed by a pop. Slide sprites stand in for the
// board while sliding; the pop phase draws the real board and highlights
// merged and spawned cells.
type animator struct {
	phase    animPhase
	ticks    int
	slideLen int
	popLen   int
	sprites  []sprite
	pops     map[engine.Position]bool
}

func (a *animator) clear() {
	a.phase = phaseNone
	a.ticks = 0
	a.sprites = nil
	a.pops = nil
}

// active reports whether an animation is running.
func (a *animator) active() bool {
	return a.phase != phaseNone
}

// step advances the animation by one tick.
func (a *animator) step() {
	if a.phase == phaseNone {
		return
	}
	a.ticks++

	switch a.phase {
	case phaseSlide:
		if a.ticks >= a.slideLen {
			a.sprites = nil
			a.startPop()
		}
	case phasePop:
		if a.ticks >= a.popLen {
			a.clear()
		}
	}
}

func (a *animator) startPop() {
	if len(a.pops) == 0 || a.popLen <= 0 {
		a.clear()
		return
	}
	a.phase = phasePop
	a.ticks = 0
}

// progress returns the eased completion of the current phase in [0, 1].
func (a *animator) progress() float64 {
	var total int
	switch a.phase {
	case phaseSlide:
		total = a.slideLen
	case phasePop:
		total = a.popLen
	default:
		return 1
	}
	if total <= 0 {
		return 1
	}
	return core.EaseOutCubic(float64(a.ticks) / float64(total))
}

// popping reports whether p is highlighted in the pop phase.
func (a *animator) popping(p engine.Position) bool {
	return a.phase == phasePop && a.pops[p]
}

// startMoveAnimation turns a move outcome into slide sprites and pops.
func (g *Game) startMoveAnimation(out engine.MoveOutcome) {
	g.anim.clear()
	if !g.cfg.Display.Animations {
		return
	}
	g.anim.slideLen = g.cfg.Display.SlideTicks
	g.anim.popLen = g.cfg.Display.PopTicks

	pops := make(map[engine.Position]bool)
	for _, m := range out.Shift.Merges {
		pops[m.Target.Pos] = true
	}
	if out.Spawned != nil {
		pops[out.Spawned.Pos] = true
	}
	g.anim.pops = pops

	if !out.Shift.Changed || g.anim.slideLen <= 0 {
		g.anim.startPop()
		return
	}

	sprites := make([]sprite, 0, len(out.Shift.Moves)+len(out.Shift.Merges))
	for _, mv := range out.Shift.Moves {
		v := mv.Value
		if mv.Merged {
			v /= 2
		}
		sprites = append(sprites, sprite{value: v, from: mv.From, to: mv.To})
	}
	for _, m := range out.Shift.Merges {
		sprites = append(sprites, sprite{value: m.Consumed.Value, from: m.Consumed.Pos, to: m.Target.Pos})
	}
	g.anim.sprites = sprites
	g.anim.phase = phaseSlide
	g.anim.ticks = 0
}

// startSpawnAnimation pops freshly placed tiles, e.g. the opening pair.
func (g *Game) startSpawnAnimation(tiles []engine.Tile) {
	g.anim.clear()
	if !g.cfg.Display.Animations || len(tiles) == 0 {
		return
	}
	g.anim.popLen = g.cfg.Display.PopTicks
	g.anim.pops = make(map[engine.Position]bool, len(tiles))
	for _, t := range tiles {
		g.anim.pops[t.Pos] = true
	}
	g.anim.startPop()
}
