package engine

import (
	"fmt"
	"strings"
)

// runSearchCommand executes a confirmed search query. The engine runs it on
// Enter in search mode.
type runSearchCommand[P comparable] struct {
	MotionBase
	query string
}

func (c *runSearchCommand[P]) Execute(e *Engine[P]) Result {
	return e.Search(c.query)
}

func (c *runSearchCommand[P]) Keys() []string { return nil }
func (c *runSearchCommand[P]) ID() string     { return "search.run" }

// Search matches query case-insensitively as a substring of every position's
// display text, remembers the ordered matches and jumps to the first one.
func (e *Engine[P]) Search(query string) Result {
	e.search.query = query
	e.InvalidateSearch()
	if strings.TrimSpace(query) == "" {
		return Skipped
	}

	needle := strings.ToLower(query)
	for _, p := range e.adapter.Positions() {
		if strings.Contains(strings.ToLower(e.adapter.Text(p)), needle) {
			e.search.matches = append(e.search.matches, p)
		}
	}
	if len(e.search.matches) == 0 {
		e.Notify(NoticeInfo, fmt.Sprintf("No results found for '%s'", query))
		return Executed
	}
	e.adapter.SetCursor(e.search.matches[0])
	return Executed
}

// ============================================================================
// cycleMatchCommand - n / N
// ============================================================================

type cycleMatchCommand[P comparable] struct {
	MotionBase
	step int
}

func (c *cycleMatchCommand[P]) Execute(e *Engine[P]) Result {
	n := len(e.search.matches)
	if n == 0 {
		return Skipped
	}
	e.search.index = ((e.search.index+c.step)%n + n) % n
	e.adapter.SetCursor(e.search.matches[e.search.index])
	return Executed
}

func (c *cycleMatchCommand[P]) Keys() []string {
	if c.step < 0 {
		return []string{"N"}
	}
	return []string{"n"}
}

func (c *cycleMatchCommand[P]) ID() string {
	if c.step < 0 {
		return "search.previous"
	}
	return "search.next"
}

// MatchIndex returns the position of the focused match within Matches.
func (e *Engine[P]) MatchIndex() int {
	return e.search.index
}
