package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-shapes/internal/core"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	helpStyle   = lipgloss.NewStyle().Faint(true)
)

// RenderScreen converts a Screen buffer to a string for display.
// The first headerRows rows are rendered bold; the rest are left plain so
// table glyphs pass through untouched.
func RenderScreen(s *core.Screen, headerRows int) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*3 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}
		if y < headerRows {
			sb.WriteString(headerStyle.Render(s.Row(y)))
			continue
		}
		sb.WriteString(s.Row(y))
	}
	return sb.String()
}
