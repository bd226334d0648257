package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/falling-world/internal/core"
)

// Theme is the palette used to paint the playfield.
type Theme struct {
	Background core.Color // Fills every cell, like the sky behind the level
	Text       core.Color // Foreground for cells drawn in the default color
}

// DefaultTheme paints black text on a sky-blue background.
func DefaultTheme() Theme {
	return Theme{Background: core.ColorSky, Text: core.ColorBlack}
}

// styleFor returns the lipgloss style for a cell color under a theme.
func (t Theme) styleFor(c core.Color) lipgloss.Style {
	style := lipgloss.NewStyle()
	if bg := t.Background.ANSI(); bg != "" {
		style = style.Background(lipgloss.Color(bg))
	}
	if c == core.ColorDefault {
		c = t.Text
	}
	if fg := c.ANSI(); fg != "" {
		style = style.Foreground(lipgloss.Color(fg))
	}
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, theme Theme) string {
	styles := make(map[core.Color]lipgloss.Style)
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := styles[startColor]
			if !ok {
				style = theme.styleFor(startColor)
				styles[startColor] = style
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
