package tui

import (
	"strings"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// RenderScreen converts a Screen buffer to a styled string using the current theme.
func RenderScreen(s *core.Screen) string {
	return RenderScreenTheme(s, CurrentTheme())
}

// RenderScreenTheme converts a Screen buffer to a styled string.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreenTheme(s *core.Screen, theme Theme) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			// Blank runs need no escape codes
			text := run.String()
			if color == core.ColorDefault || strings.TrimSpace(text) == "" {
				sb.WriteString(text)
				continue
			}
			sb.WriteString(theme.Style(color).Render(text))
		}
	}
	return sb.String()
}
