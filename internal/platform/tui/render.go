package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/anterakt/palmrun/internal/core"
)

// ansiColors maps core.Color to terminal palette entries.
var ansiColors = map[core.Color]lipgloss.Color{
	core.ColorSand:      lipgloss.Color("222"),
	core.ColorGrass:     lipgloss.Color("114"),
	core.ColorDarkGrass: lipgloss.Color("65"),
	core.ColorTrunk:     lipgloss.Color("130"),
	core.ColorPalm:      lipgloss.Color("71"),
	core.ColorBridge:    lipgloss.Color("137"),
	core.ColorSky:       lipgloss.Color("25"),
	core.ColorSea:       lipgloss.Color("30"),
	core.ColorPlayer:    lipgloss.Color("229"),
	core.ColorHUD:       lipgloss.Color("229"),
	core.ColorDim:       lipgloss.Color("245"),
}

// styleKey identifies a foreground/background color pair.
type styleKey struct {
	fg, bg core.Color
}

var styleCache = map[styleKey]lipgloss.Style{}

// styleFor returns a cached lipgloss style for the given color pair.
func styleFor(fg, bg core.Color) lipgloss.Style {
	key := styleKey{fg, bg}
	if style, ok := styleCache[key]; ok {
		return style
	}

	style := lipgloss.NewStyle()
	if c, ok := ansiColors[fg]; ok {
		style = style.Foreground(c)
	}
	if c, ok := ansiColors[bg]; ok {
		style = style.Background(c)
	}
	styleCache[key] = style
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color pair to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same colors for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startFg, startBg := cell.Fg, cell.Bg

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Fg != startFg || cell.Bg != startBg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(startFg, startBg).Render(run.String()))
		}
	}
	return sb.String()
}
