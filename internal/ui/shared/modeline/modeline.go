// Package modeline renders the one-line status shown under every vim-style
// widget and provides the tick message that drives chord expiry.
package modeline

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/zjrosen/vimkit/internal/engine"
	"github.com/zjrosen/vimkit/internal/ui/styles"
)

// SweepMsg asks the widget with the matching ID to expire stale chords.
type SweepMsg struct {
	ID   string
	Time time.Time
}

// Tick schedules a SweepMsg for widget id after d.
func Tick(id string, d time.Duration) tea.Cmd {
	if d <= 0 {
		d = engine.DefaultTickInterval
	}
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return SweepMsg{ID: id, Time: t}
	})
}

// ModeChangeMsg is sent when a widget's engine changes mode.
type ModeChangeMsg struct {
	ID       string
	Mode     engine.Mode
	Previous engine.Mode
}

// Status is everything the modeline shows.
type Status struct {
	Mode    engine.Mode
	Pending string
	// Prompt and Buffer are the edit line in insert mode, or the query being
	// typed in search mode.
	Prompt string
	Buffer string
	// Query is the last executed search. MatchIndex is zero-based.
	Query      string
	MatchIndex int
	MatchCount int
	// Position is a widget-formatted cursor location such as "3/10" or "r2:c1".
	Position string
	Width    int
}

// FromEngine collects the engine-owned part of a Status.
func FromEngine[P comparable](e *engine.Engine[P], position string, width int) Status {
	s := Status{Mode: e.Mode(), Position: position, Width: width}
	s.Pending, _ = e.Pending()
	if prompt, buf, ok := e.EditBuffer(); ok {
		s.Prompt, s.Buffer = prompt, buf
	}
	if buf, ok := e.SearchBuffer(); ok {
		s.Prompt, s.Buffer = "/", buf
	}
	query, matches := e.Matches()
	if len(matches) > 0 {
		s.Query = query
		s.MatchIndex = e.MatchIndex()
		s.MatchCount = len(matches)
	}
	return s
}

// ModeColor returns the badge background of a mode.
func ModeColor(m engine.Mode) lipgloss.TerminalColor {
	switch m {
	case engine.ModeInsert:
		return styles.ModeInsertColor
	case engine.ModeVisual, engine.ModeVisualLine:
		return styles.ModeVisualColor
	case engine.ModeSearch:
		return styles.ModeSearchColor
	default:
		return styles.ModeNormalColor
	}
}

// Render draws the status line padded to s.Width.
func Render(s Status) string {
	badge := styles.ModeBadgeStyle.Background(ModeColor(s.Mode)).Render(s.Mode.String())

	var left string
	switch s.Mode {
	case engine.ModeInsert, engine.ModeSearch:
		left = badge + " " + s.Prompt + s.Buffer + "█"
	default:
		left = badge
		if s.Pending != "" {
			left += " " + styles.PendingChordStyle.Render(s.Pending)
		}
	}

	var parts []string
	if s.MatchCount > 0 {
		parts = append(parts, fmt.Sprintf("[%d/%d] %s", s.MatchIndex+1, s.MatchCount, s.Query))
	}
	if s.Position != "" {
		parts = append(parts, s.Position)
	}
	right := styles.MutedStyle.Render(strings.Join(parts, "  "))

	gap := s.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return ansi.Truncate(left, max(s.Width, 0), "")
	}
	return left + strings.Repeat(" ", gap) + right
}
