// Package logoverlay shows recent debug log lines on top of a widget
// without leaving the program.
package logoverlay

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/zjrosen/vimkit/internal/log"
	"github.com/zjrosen/vimkit/internal/ui/overlay"
	"github.com/zjrosen/vimkit/internal/ui/styles"
)

const (
	// DefaultCapacity is how many lines the overlay keeps.
	DefaultCapacity = 500

	viewportMaxHeight = 25
	viewportMinHeight = 5
	boxMaxWidth       = 160
	boxMinWidth       = 40
)

// Model buffers log lines and renders them in a bordered box.
type Model struct {
	visible  bool
	minLevel log.Level
	lines    []string
	capacity int
	width    int
	height   int
	viewport viewport.Model
}

// New creates a hidden overlay keeping up to capacity lines.
func New(capacity int) Model {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return Model{minLevel: log.LevelDebug, capacity: capacity}
}

// Append buffers one log line, dropping the oldest beyond capacity.
func (m *Model) Append(entry string) {
	entry = strings.TrimRight(entry, "\n")
	if entry == "" {
		return
	}
	m.lines = append(m.lines, entry)
	if over := len(m.lines) - m.capacity; over > 0 {
		m.lines = append(m.lines[:0], m.lines[over:]...)
	}
	if m.visible {
		atBottom := m.viewport.AtBottom()
		m.refresh()
		if atBottom {
			m.viewport.GotoBottom()
		}
	}
}

// Lines returns the buffered lines passing the level filter.
func (m Model) Lines() []string {
	var out []string
	for _, l := range m.lines {
		if lvl, ok := levelOf(l); !ok || lvl >= m.minLevel {
			out = append(out, l)
		}
	}
	return out
}

// Update handles keys while the overlay is visible.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.visible {
		return m, nil
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "c":
			m.lines = nil
		case "d":
			m.minLevel = log.LevelDebug
		case "i":
			m.minLevel = log.LevelInfo
		case "w":
			m.minLevel = log.LevelWarn
		case "e":
			m.minLevel = log.LevelError
		case "j", "down":
			m.viewport.ScrollDown(1)
			return m, nil
		case "k", "up":
			m.viewport.ScrollUp(1)
			return m, nil
		case "g":
			m.viewport.GotoTop()
			return m, nil
		case "G":
			m.viewport.GotoBottom()
			return m, nil
		case "esc", "ctrl+l":
			m.visible = false
			return m, nil
		default:
			return m, nil
		}
		m.refresh()
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	}
	return m, nil
}

// Toggle shows or hides the overlay, scrolled to the newest line.
func (m *Model) Toggle() {
	m.visible = !m.visible
	if m.visible {
		m.refresh()
		m.viewport.GotoBottom()
	}
}

func (m Model) Visible() bool { return m.visible }

// SetSize records the screen size the box is fitted to.
func (m *Model) SetSize(width, height int) {
	m.width, m.height = width, height
	m.refresh()
}

func (m Model) boxWidth() int     { return max(min(m.width-4, boxMaxWidth), boxMinWidth) }
func (m Model) contentWidth() int { return m.boxWidth() - 2 }

func (m *Model) refresh() {
	if m.width == 0 || m.height == 0 {
		return
	}
	// header, footer and their dividers plus the border take 6 lines
	h := max(min(viewportMaxHeight, m.height-6), viewportMinHeight)
	offset := m.viewport.YOffset
	m.viewport = viewport.New(m.contentWidth(), h)
	m.viewport.SetContent(m.content())
	m.viewport.SetYOffset(offset)
}

func (m Model) content() string {
	lines := m.Lines()
	if len(lines) == 0 {
		return lipgloss.NewStyle().Foreground(styles.TextMutedColor).Italic(true).Render("No logs to display")
	}
	width := m.contentWidth()
	out := make([]string, len(lines))
	for i, l := range lines {
		if ansi.StringWidth(l) > width {
			l = ansi.Truncate(l, width-1, "…")
		}
		out[i] = lipgloss.NewStyle().Foreground(colorOf(l)).Render(l)
	}
	return strings.Join(out, "\n")
}

// View renders the box, or nothing while hidden.
func (m Model) View() string {
	if !m.visible {
		return ""
	}
	w := m.boxWidth()
	divider := lipgloss.NewStyle().Foreground(styles.BorderDefaultColor).Render(strings.Repeat("─", w-2))
	title := lipgloss.NewStyle().Bold(true).Foreground(styles.HeaderColor).PaddingLeft(1).Render("Logs")

	body := strings.Join([]string{title, divider, m.viewport.View(), divider, m.hints()}, "\n")
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.BorderDefaultColor).
		Width(w - 2).
		Render(body)
}

// Overlay draws the box centered over bg.
func (m Model) Overlay(bg string) string {
	if !m.visible {
		return bg
	}
	return overlay.Place(overlay.Config{Width: m.width, Height: m.height, Position: overlay.Center}, m.View(), bg)
}

func (m Model) hints() string {
	muted := lipgloss.NewStyle().Foreground(styles.TextMutedColor)
	active := lipgloss.NewStyle().Foreground(styles.TextPrimaryColor).Bold(true)
	hints := []string{muted.Render("[c] Clear")}
	for _, f := range []struct {
		label string
		level log.Level
	}{
		{"[d] Debug", log.LevelDebug},
		{"[i] Info", log.LevelInfo},
		{"[w] Warn", log.LevelWarn},
		{"[e] Error", log.LevelError},
	} {
		if f.level == m.minLevel {
			hints = append(hints, active.Render(f.label))
		} else {
			hints = append(hints, muted.Render(f.label))
		}
	}
	return strings.Join(hints, "  ")
}

// levelOf reads the bracketed level that follows the timestamp.
func levelOf(entry string) (log.Level, bool) {
	start := strings.IndexByte(entry, '[')
	end := strings.IndexByte(entry, ']')
	if start < 0 || end <= start {
		return 0, false
	}
	switch tag := entry[start+1 : end]; tag {
	case "DEBUG", "INFO", "WARN", "ERROR":
		return log.ParseLevel(tag), true
	}
	return 0, false
}

func colorOf(entry string) lipgloss.TerminalColor {
	lvl, ok := levelOf(entry)
	if !ok {
		return styles.TextPrimaryColor
	}
	switch lvl {
	case log.LevelError:
		return styles.ToastBorderErrorColor
	case log.LevelWarn:
		return styles.ToastBorderWarnColor
	case log.LevelInfo:
		return styles.ToastBorderInfoColor
	}
	return styles.TextMutedColor
}
