package vimmedia

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/zjrosen/vimkit/internal/engine"
	"github.com/zjrosen/vimkit/internal/ui/styles"
)

const (
	imageGlyph = "▣ "
	textGlyph  = "  "
)

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

	start, end := m.scroll.Window(len(m.items), m.host.BodyHeight())
	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		lines = append(lines, m.host.MarkRow(i, m.renderItem(i, i >= lo && i <= hi, matches[i])))
	}
	return strings.Join(lines, "\n")
}

// renderItem lays out "> ▣ caption  name PNG 4x3 1 kB". The caption is
// truncated first so the image facts stay visible.
func (m *Model) renderItem(i int, selected, match bool) string {
	it := m.items[i]
	marker := "  "
	if i == m.cursor {
		marker = "> "
	}
	glyph := textGlyph
	var meta string
	if it.HasImage() {
		glyph = imageGlyph
		meta = "  " + styles.MutedStyle.Render(filepath.Base(it.Image)+" "+m.describe(it.Image))
	}

	text := strings.ReplaceAll(it.Text, "\n", " ")
	if w := m.host.Width(); w > 0 {
		room := w - lipgloss.Width(marker+glyph) - lipgloss.Width(meta)
		text = truncate.StringWithTail(text, uint(max(room, 1)), "…")
	}

	var style lipgloss.Style
	switch {
	case i == m.cursor && m.host.Focused() && m.Mode() != engine.ModeInsert:
		style = styles.CursorStyle
	case selected:
		style = styles.VisualStyle
	case match:
		style = styles.MatchStyle
	case m.zebra && i%2 == 1:
		style = styles.ZebraStyle
	default:
		return marker + glyph + text + meta
	}
	return marker + glyph + style.Render(text) + meta
}
