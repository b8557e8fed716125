package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// tilePalette gives the background and foreground of each tile color,
// from pale 2s to saturated 2048s.
var tilePalette = map[core.Color][2]string{
	core.ColorTile2:     {"255", "236"},
	core.ColorTile4:     {"230", "236"},
	core.ColorTile8:     {"215", "231"},
	core.ColorTile16:    {"209", "231"},
	core.ColorTile32:    {"203", "231"},
	core.ColorTile64:    {"196", "231"},
	core.ColorTile128:   {"222", "236"},
	core.ColorTile256:   {"221", "236"},
	core.ColorTile512:   {"220", "236"},
	core.ColorTile1024:  {"214", "231"},
	core.ColorTile2048:  {"208", "231"},
	core.ColorTileSuper: {"93", "231"},
}

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = buildColorStyles()

func buildColorStyles() map[core.Color]lipgloss.Style {
	styles := map[core.Color]lipgloss.Style{
		core.ColorDefault:   lipgloss.NewStyle(),
		core.ColorBorder:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		core.ColorMuted:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		core.ColorAccent:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		core.ColorDanger:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		core.ColorEmptyCell: lipgloss.NewStyle().Background(lipgloss.Color("237")),
	}
	for c, p := range tilePalette {
		styles[c] = lipgloss.NewStyle().
			Background(lipgloss.Color(p[0])).
			Foreground(lipgloss.Color(p[1])).
			Bold(true)
	}
	return styles
}

// styleFor returns the style of c, falling back to the default style.
func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
