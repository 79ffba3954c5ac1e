package gallery

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/vimkit/internal/ui/overlay"
	"github.com/zjrosen/vimkit/internal/ui/styles"
)

func (m *Model) zoneID(i int) string {
	return fmt.Sprintf("%s%d", m.zonePrefix, i)
}

// View implements tea.Model.
func (m *Model) View() string {
	sections := []string{m.grid(), m.status()}
	if m.showHelp {
		sections = append(sections, m.help.View(m.keys))
	}
	view := strings.Join(sections, "\n")

	if m.viewer != nil {
		view = overlay.Place(overlay.Config{
			Width:    m.width,
			Height:   m.height,
			Position: overlay.Center,
		}, m.viewer.View(), view)
	}
	if m.toast.Visible() {
		view = m.toast.Overlay(view, m.width, m.height)
	}
	return view
}

// gridRows is how many cell rows fit above the status line.
func (m *Model) gridRows() int {
	if m.height <= 0 {
		return 0
	}
	reserved := 1
	if m.showHelp {
		reserved += 4
	}
	return max((m.height-reserved)/2, 1)
}

func (m *Model) grid() string {
	if m.err != nil {
		return styles.MutedStyle.Render("Cannot read folder: " + m.err.Error())
	}
	if len(m.shown) == 0 {
		if m.filter != "" {
			return styles.MutedStyle.Render("No images match " + m.filter)
		}
		return styles.MutedStyle.Render("No images in " + m.dir)
	}

	cols := m.cols()
	total := (len(m.shown) + cols - 1) / cols
	first := 0
	if rows := m.gridRows(); rows > 0 && total > rows {
		first = min(max(m.cursor/cols-rows+1, 0), total-rows)
		total = first + rows
	}

	var rows []string
	for r := first; r < total; r++ {
		var cells []string
		for c := 0; c < cols; c++ {
			i := r*cols + c
			if i >= len(m.shown) {
				break
			}
			cells = append(cells, zone.Mark(m.zoneID(i), m.cell(i)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}

// cell renders a two-line grid entry: mark and name, then format and size.
func (m *Model) cell(i int) string {
	p := m.shown[i]
	mark := "  "
	if m.marked[p] {
		mark = styles.MarkedStyle.Render("●") + " "
	}
	name := styles.FitCell(filepath.Base(p), cellWidth-3)

	detail := "?"
	if info, err := m.resolver.Lookup(context.Background(), p); err == nil {
		detail = strings.ToUpper(info.Format) + " " + info.Dimensions()
	}
	detail = styles.MutedStyle.Render(styles.FitCell(detail, cellWidth-3))

	if i == m.cursor {
		name = styles.CursorStyle.Render(name)
	}
	return lipgloss.NewStyle().Width(cellWidth).Render(mark + name + "\n  " + detail)
}

func (m *Model) status() string {
	if m.filtering {
		return "/" + m.filterBuf + "█"
	}
	parts := []string{m.dir, fmt.Sprintf("%d images", len(m.images))}
	if n := len(m.marked); n > 0 {
		parts = append(parts, styles.MarkedStyle.Render(fmt.Sprintf("%d marked", n)))
	}
	if m.filter != "" {
		parts = append(parts, "filter: "+m.filter)
	}
	if len(m.shown) > 0 {
		parts = append(parts, fmt.Sprintf("%d/%d", m.cursor+1, len(m.shown)))
	}
	line := strings.Join(parts, "  ")
	if m.width > 0 {
		line = styles.TruncateString(line, m.width)
	}
	return styles.StatusBarStyle.Render(line)
}
