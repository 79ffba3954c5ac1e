package vimtree

import (
	"fmt"
	"slices"
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
	vis := m.visible()
	if len(vis) == 0 {
		return "0/0"
	}
	return fmt.Sprintf("%d/%d", slices.Index(vis, m.cursor)+1, len(vis))
}

// rowsHeight is the node window, leaving room for the scroll indicators.
func (m *Model) rowsHeight() int {
	h := m.host.BodyHeight()
	if h > 3 {
		return h - 2
	}
	return h
}

func (m *Model) body() string {
	vis := m.visible()
	if len(vis) == 0 {
		return styles.MutedStyle.Render("No nodes")
	}

	e := m.host.Engine()
	var anchor *Node
	if a, _, ok := e.Selection(); ok {
		anchor = a
	}
	matches := make(map[*Node]bool)
	_, found := e.Matches()
	for _, n := range found {
		matches[n] = true
	}

	start, end := m.scroll.Window(len(vis), m.rowsHeight())
	var lines []string
	if start > 0 {
		lines = append(lines, styles.MutedStyle.Render(fmt.Sprintf("  ↑ %d more above", start)))
	}
	for i := start; i < end; i++ {
		n := vis[i]
		line := m.renderNode(n, i, n == anchor, matches[n])
		lines = append(lines, m.host.MarkRow(i, line))
	}
	if rest := len(vis) - end; rest > 0 {
		lines = append(lines, styles.MutedStyle.Render(fmt.Sprintf("  ↓ %d more below", rest)))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderNode(n *Node, row int, anchor, match bool) string {
	isCursor := n == m.cursor
	marker := " "
	if isCursor {
		marker = ">"
	}

	prefix := buildPrefix(n)
	if isCursor && n.parent != nil {
		prefix = selectionGuide(prefix)
	}

	expander := "  "
	if n.HasChildren() {
		expander = "▸ "
		if n.Expanded {
			expander = "▾ "
		}
	}

	lead := marker + prefix + expander
	text := n.Text
	if w := m.host.Width() - lipgloss.Width(lead); m.host.Width() > 0 && w > 0 {
		text = styles.FitCell(text, w)
	}

	var style lipgloss.Style
	switch {
	case isCursor && m.host.Focused() && m.Mode() != engine.ModeInsert:
		style = styles.CursorStyle
	case anchor:
		style = styles.VisualStyle
	case match:
		style = styles.MatchStyle
	case m.zebra && row%2 == 1:
		style = styles.ZebraStyle
	default:
		return lead + text
	}
	return lead + style.Render(text)
}

// buildPrefix draws the branch connectors for n: a continuing line for every
// ancestor that still has siblings below it, then the node's own connector.
func buildPrefix(n *Node) string {
	if n.parent == nil {
		return ""
	}
	var parts []string
	for a := n.parent; a.parent != nil; a = a.parent {
		if isLastChild(a) {
			parts = append(parts, "    ")
		} else {
			parts = append(parts, "│   ")
		}
	}
	slices.Reverse(parts)
	if isLastChild(n) {
		parts = append(parts, "└─")
	} else {
		parts = append(parts, "├─")
	}
	return strings.Join(parts, "")
}

func isLastChild(n *Node) bool {
	if n.parent == nil {
		return true
	}
	c := n.parent.children
	return len(c) > 0 && c[len(c)-1] == n
}

// selectionGuide turns the prefix padding into a muted rule leading to the
// cursor node.
func selectionGuide(prefix string) string {
	var sb strings.Builder
	for _, r := range prefix {
		if r == ' ' {
			sb.WriteString(styles.MutedStyle.Render("─"))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
