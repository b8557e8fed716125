package t2048

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048/engine"
)

const (
	hudHeight    = 3 // Title/score, stats, hint
	footerHeight = 1 // Control hints
)

// cellSizes lists cell footprints from roomy to compact, including one
// border line on the top and left.
var cellSizes = []struct{ w, h int }{
	{9, 4},
	{7, 3},
	{6, 2},
	{5, 2},
}

// layout places the board on the screen.
type layout struct {
	size  int
	cellW int
	cellH int
	board core.Rect
}

// chooseLayout picks the largest cell size that fits the screen.
func chooseLayout(size, screenW, screenH int) (layout, bool) {
	for _, cs := range cellSizes {
		bw := size*cs.w + 1
		bh := size*cs.h + 1
		if bw <= screenW && bh+hudHeight+footerHeight <= screenH {
			return layout{
				size:  size,
				cellW: cs.w,
				cellH: cs.h,
				board: core.NewRect((screenW-bw)/2, hudHeight, bw, bh),
			}, true
		}
	}
	return layout{}, false
}

// cellRect returns the interior of the cell at p. Row y = size-1 is drawn
// at the top.
func (l layout) cellRect(p engine.Position) core.Rect {
	col := p.X
	row := l.size - 1 - p.Y
	return core.NewRect(
		l.board.X+col*l.cellW+1,
		l.board.Y+row*l.cellH+1,
		l.cellW-1,
		l.cellH-1,
	)
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	l, ok := chooseLayout(g.session.Size(), g.screenW, g.screenH)
	if g.tooSmall || !ok {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst, l)
	g.renderGrid(dst, l)
	if g.anim.phase == phaseSlide {
		g.renderSprites(dst, l)
	} else {
		g.renderTiles(dst, l)
	}
	g.renderFooter(dst, l)
	g.renderOverlays(dst, l)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCenteredColored(y+1, "Please resize terminal", core.ColorMuted)
}

// renderHUD draws the score, best score and board info above the grid.
func (g *Game) renderHUD(dst *core.Screen, l layout) {
	left := l.board.X
	right := l.board.Right()

	dst.DrawTextColored(left, 0, "2048", core.ColorAccent)
	scores := fmt.Sprintf("Score %d  Best %d", g.session.Score(), g.session.Best())
	dst.DrawText(right-utf8.RuneCountInString(scores), 0, scores)

	info := fmt.Sprintf("%dx%d", l.size, l.size)
	dst.DrawTextColored(left, 1, info, core.ColorMuted)
	stats := fmt.Sprintf("Max %d  Moves %d", g.session.MaxTile(), g.session.Moves())
	dst.DrawTextColored(right-utf8.RuneCountInString(stats), 1, stats, core.ColorMuted)

	if g.noopTicks > 0 {
		msg := "Nothing moved"
		x := left + (l.board.W-len(msg))/2
		dst.DrawTextColored(x, 2, msg, core.ColorMuted)
	}
}

// renderGrid draws the cell borders and empty cell backgrounds.
func (g *Game) renderGrid(dst *core.Screen, l layout) {
	n := l.size
	for row := range n + 1 {
		for col := range n + 1 {
			px := l.board.X + col*l.cellW
			py := l.board.Y + row*l.cellH

			var corner rune
			switch {
			case row == 0 && col == 0:
				corner = '┌'
			case row == 0 && col == n:
				corner = '┐'
			case row == n && col == 0:
				corner = '└'
			case row == n && col == n:
				corner = '┘'
			case row == 0:
				corner = '┬'
			case row == n:
				corner = '┴'
			case col == 0:
				corner = '├'
			case col == n:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.SetColored(px, py, corner, core.ColorBorder)

			if col < n {
				for i := 1; i < l.cellW; i++ {
					dst.SetColored(px+i, py, '─', core.ColorBorder)
				}
			}
			if row < n {
				for i := 1; i < l.cellH; i++ {
					dst.SetColored(px, py+i, '│', core.ColorBorder)
				}
			}
		}
	}

	for x := range n {
		for y := range n {
			dst.FillRect(l.cellRect(engine.Position{X: x, Y: y}), ' ', core.ColorEmptyCell)
		}
	}
}

// renderTiles draws the settled board.
func (g *Game) renderTiles(dst *core.Screen, l layout) {
	for _, t := range g.session.Snapshot().Tiles {
		drawTile(dst, l.cellRect(t.Pos), t.Value, g.anim.popping(t.Pos))
	}
}

// renderSprites draws tiles in flight between their old and new cells.
func (g *Game) renderSprites(dst *core.Screen, l layout) {
	t := g.anim.progress()
	for _, s := range g.anim.sprites {
		from := l.cellRect(s.from)
		to := l.cellRect(s.to)
		r := from
		r.X = core.Lerp(from.X, to.X, t)
		r.Y = core.Lerp(from.Y, to.Y, t)
		drawTile(dst, r, s.value, false)
	}
}

// drawTile fills r with the tile color and centers the value. A popping
// tile is bracketed.
func drawTile(dst *core.Screen, r core.Rect, value uint32, pop bool) {
	c := core.TileColor(value)
	dst.FillRect(r, ' ', c)

	text := formatValue(value, r.W)
	if pop && len(text)+2 <= r.W {
		text = "[" + text + "]"
	}
	x := r.X + (r.W-len(text))/2
	y := r.Y + (r.H-1)/2
	dst.DrawTextColored(x, y, text, c)
}

// formatValue fits a tile value into width cells, switching to binary
// suffixes (k, M, G) for large tiles.
func formatValue(v uint32, width int) string {
	s := strconv.FormatUint(uint64(v), 10)
	if len(s) <= width {
		return s
	}
	for _, unit := range []struct {
		shift  uint
		suffix string
	}{{10, "k"}, {20, "M"}, {30, "G"}} {
		scaled := strconv.FormatUint(uint64(v>>unit.shift), 10) + unit.suffix
		if len(scaled) <= width {
			return scaled
		}
	}
	return s
}

// renderFooter draws the control hints below the board if they fit.
func (g *Game) renderFooter(dst *core.Screen, l layout) {
	hint := g.Controls()
	if len(hint) > dst.Width() {
		hint = "Arrows: Move | N: New | Q: Quit"
	}
	dst.DrawTextCenteredColored(l.board.Bottom(), hint, core.ColorMuted)
}

// renderOverlays draws the pause and game over boxes.
func (g *Game) renderOverlays(dst *core.Screen, l layout) {
	cx, cy := l.board.Center()

	if g.paused {
		drawOverlay(dst, cx, cy, core.ColorBorder, "PAUSED", "Press P to resume")
		return
	}

	if g.session.State() != engine.GameOver {
		return
	}

	title := "GAME OVER"
	switch g.reason {
	case EndGaveUp:
		title = "GAME ENDED"
	case EndDefect:
		title = "GAME ABORTED"
	}
	result := fmt.Sprintf("Score %d  Max tile %d", g.session.Score(), g.session.MaxTile())
	drawOverlay(dst, cx, cy, core.ColorDanger, title, result, "N: new game  B: menu")
}

// drawOverlay draws a boxed block of lines centered on (cx, cy).
func drawOverlay(dst *core.Screen, cx, cy int, border core.Color, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, utf8.RuneCountInString(line))
	}

	box := core.NewRect(cx-(maxLen+4)/2, cy-(len(lines)+2)/2, maxLen+4, len(lines)+2)
	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, border)

	for i, line := range lines {
		x := cx - utf8.RuneCountInString(line)/2
		dst.DrawText(x, box.Y+1+i, line)
	}
}
