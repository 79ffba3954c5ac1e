package vimlist

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/vimkit/internal/engine"
	"github.com/zjrosen/vimkit/internal/ui/styles"
)

// View implements tea.Model.
func (m *Model) View() string {
	return m.host.Decorate(m.body(), m.position())
}

func (m *Model) position() string {
	if len(m.items) == 0 {
		return "0/0"
	}
	return fmt.Sprintf("%d/%d", m.cursor+1, len(m.items))
}

func (m *Model) body() string {
	if len(m.items) == 0 {
		return styles.MutedStyle.Render("No items")
	}

	e := m.host.Engine()
	lo, hi := -1, -1
	if anchor, cursor, ok := e.Selection(); ok {
		lo, hi = min(anchor, cursor), max(anchor, cursor)
	}
	matches := make(map[int]bool)
	_, found := e.Matches()
	for _, i := range found {
		matches[i] = true
	}

	width := m.host.Width()
	start, end := m.scroll.Window(len(m.items), m.host.BodyHeight())
	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		line := m.renderRow(i, width-2, i >= lo && i <= hi, matches[i])
		lines = append(lines, m.host.MarkRow(i, line))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderRow(i, width int, selected, match bool) string {
	text := strings.ReplaceAll(m.items[i], "\t", " ")
	if width > 0 {
		text = styles.FitCell(text, width)
	}

	isCursor := i == m.cursor
	marker := "  "
	if isCursor {
		marker = "> "
	}

	var style lipgloss.Style
	switch {
	case isCursor && m.host.Focused() && m.Mode() != engine.ModeInsert:
		style = styles.CursorStyle
	case selected:
		style = styles.VisualStyle
	case match:
		style = styles.MatchStyle
	case m.zebra && i%2 == 1:
		style = styles.ZebraStyle
	default:
		return marker + text
	}
	return marker + style.Render(text)
}
