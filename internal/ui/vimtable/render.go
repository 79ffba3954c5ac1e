package vimtable

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/zjrosen/vimkit/internal/engine"
	"github.com/zjrosen/vimkit/internal/ui/styles"
)

const (
	minColumnWidth = 3
	maxColumnWidth = 30
	separator      = " │ "
)

// View implements tea.Model.
func (m *Model) View() string {
	return m.host.Decorate(m.body(), m.position())
}

func (m *Model) position() string {
	if _, ok := m.Current(); !ok {
		return fmt.Sprintf("0/%d", len(m.rows))
	}
	return fmt.Sprintf("%d/%d col %d/%d", m.cursor.Row+1, len(m.rows), m.cursor.Col+1, len(m.columns))
}

// columnWidths sizes each column to its widest header or cell.
func (m *Model) columnWidths() []int {
	widths := make([]int, len(m.columns))
	for c, h := range m.columns {
		w := runewidth.StringWidth(h)
		for _, row := range m.rows {
			w = max(w, runewidth.StringWidth(row[c]))
		}
		widths[c] = max(minColumnWidth, min(w, maxColumnWidth))
	}
	return widths
}

func (m *Model) body() string {
	if len(m.columns) == 0 {
		return styles.MutedStyle.Render("No columns")
	}
	widths := m.columnWidths()

	var b strings.Builder
	b.WriteString(m.renderHeader(widths))
	if len(m.rows) == 0 {
		b.WriteString("\n")
		b.WriteString(styles.MutedStyle.Render("No rows"))
		return b.String()
	}

	e := m.host.Engine()
	selection := func(Cell) bool { return false }
	if anchor, cursor, ok := e.Selection(); ok {
		lo, hi := (&adapter{m: m}).bounds(anchor, cursor, e.Mode())
		selection = func(c Cell) bool {
			return c.Row >= lo.Row && c.Row <= hi.Row && c.Col >= lo.Col && c.Col <= hi.Col
		}
	}
	_, found := e.Matches()
	matches := make(map[Cell]bool, len(found))
	for _, c := range found {
		matches[c] = true
	}

	start, end := m.scroll.Window(len(m.rows), m.rowsHeight())
	for r := start; r < end; r++ {
		b.WriteString("\n")
		b.WriteString(m.host.MarkRow(r, m.renderRow(r, widths, selection, matches)))
	}
	return b.String()
}

func (m *Model) renderHeader(widths []int) string {
	parts := make([]string, len(m.columns))
	for c, h := range m.columns {
		style := styles.HeaderStyle
		if c == m.cursor.Col && m.Mode() != engine.ModeVisualLine {
			style = style.Underline(true)
		}
		parts[c] = style.Render(styles.FitCell(h, widths[c]))
	}
	return strings.Join(parts, separator)
}

func (m *Model) renderRow(r int, widths []int, selected func(Cell) bool, matches map[Cell]bool) string {
	parts := make([]string, len(m.columns))
	for c := range m.columns {
		cell := Cell{r, c}
		text := styles.FitCell(strings.ReplaceAll(m.rows[r][c], "\n", " "), widths[c])

		var style lipgloss.Style
		switch {
		case cell == m.cursor && m.host.Focused() && m.Mode() != engine.ModeInsert:
			style = styles.CursorStyle
		case selected(cell):
			style = styles.VisualStyle
		case matches[cell]:
			style = styles.MatchStyle
		case m.zebra && r%2 == 1:
			style = styles.ZebraStyle
		default:
			parts[c] = text
			continue
		}
		parts[c] = style.Render(text)
	}
	return strings.Join(parts, separator)
}
