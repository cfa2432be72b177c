package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/lavajump/internal/core"
)

// colorStyles maps core.Color to lipgloss styles (ANSI 256 palette).
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:  lipgloss.NewStyle(),
	core.ColorWhite:    lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorGray:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorPink:     lipgloss.NewStyle().Foreground(lipgloss.Color("218")),
	core.ColorHotPink:  lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
	core.ColorBrown:    lipgloss.NewStyle().Foreground(lipgloss.Color("130")),
	core.ColorSnow:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	core.ColorSlate:    lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
	core.ColorCrimson:  lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
	core.ColorRoyal:    lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
	core.ColorPurple:   lipgloss.NewStyle().Foreground(lipgloss.Color("93")),
	core.ColorLava:     lipgloss.NewStyle().Foreground(lipgloss.Color("202")),
	core.ColorEmber:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	core.ColorGold:     lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
	core.ColorSkyDay:   lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
	core.ColorSkySnow:  lipgloss.NewStyle().Foreground(lipgloss.Color("153")),
	core.ColorSkyNight: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
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

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
