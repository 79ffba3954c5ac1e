package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// TruncateString truncates a string to fit within maxWidth, adding ellipsis if needed.
func TruncateString(s string, maxWidth int) string {
	if maxWidth < 1 {
		return ""
	}

	if lipgloss.Width(s) <= maxWidth {
		return s
	}

	// Need to truncate - leave room for ellipsis
	if maxWidth <= 3 {
		return strings.Repeat(".", maxWidth)
	}

	return runewidth.Truncate(s, maxWidth, "...")
}

// FitCell truncates s to width display cells and pads it with spaces so
// every cell of a column renders with the same width.
func FitCell(s string, width int) string {
	if width < 1 {
		return ""
	}
	s = TruncateString(s, width)
	return runewidth.FillRight(s, width)
}
