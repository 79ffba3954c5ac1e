package engine

import "strings"

// ============================================================================
// editCurrentCommand - i
// ============================================================================

type editCurrentCommand[P comparable] struct{ MotionBase }

// Execute opens insert mode on the focused value. The buffer is staged in the
// engine and written back through Commit only when it differs on confirm.
func (c *editCurrentCommand[P]) Execute(e *Engine[P]) Result {
	p, ok := e.adapter.Cursor()
	if !ok {
		return Skipped
	}
	original := e.adapter.Text(p)
	e.BeginEdit("", original, func(value string) {
		if value != original {
			e.adapter.Commit(p, value)
		}
	})
	return Executed
}

func (c *editCurrentCommand[P]) Keys() []string { return []string{"i"} }
func (c *editCurrentCommand[P]) ID() string     { return "edit.current" }

// ============================================================================
// InsertPromptCommand - o / O
// ============================================================================

// InsertPromptCommand prompts for a new value and inserts it relative to the
// cursor. Blank input is ignored.
type InsertPromptCommand[P comparable] struct {
	MotionBase
	Where    Placement
	Prompt   string
	Bindings []string
}

func (c *InsertPromptCommand[P]) Execute(e *Engine[P]) Result {
	where := c.Where
	e.BeginEdit(c.Prompt, "", func(value string) {
		value = strings.TrimSpace(value)
		if value == "" {
			return
		}
		e.adapter.Insert(where, value)
	})
	return Executed
}

func (c *InsertPromptCommand[P]) Keys() []string { return c.Bindings }
func (c *InsertPromptCommand[P]) ID() string     { return "insert." + c.Where.String() }

// commitEditCommand applies a confirmed edit buffer. It is never bound to a
// key; the engine runs it on Enter in insert mode.
type commitEditCommand[P comparable] struct {
	MutationBase
	state *editState
}

func (c *commitEditCommand[P]) Execute(e *Engine[P]) Result {
	if c.state.commit == nil {
		return Skipped
	}
	c.state.commit(c.state.buffer)
	return Executed
}

func (c *commitEditCommand[P]) Keys() []string { return nil }
func (c *commitEditCommand[P]) ID() string     { return "edit.commit" }

// ============================================================================
// deleteCurrentCommand - x / dd
// ============================================================================

type deleteCurrentCommand[P comparable] struct{ MutationBase }

func (c *deleteCurrentCommand[P]) Execute(e *Engine[P]) Result {
	p, ok := e.adapter.Cursor()
	if !ok {
		return Skipped
	}
	if err := e.adapter.Delete(p); err != nil {
		e.Report(err)
		return Skipped
	}
	return Executed
}

func (c *deleteCurrentCommand[P]) Keys() []string { return []string{"x"} }
func (c *deleteCurrentCommand[P]) ID() string     { return "delete.current" }

// ============================================================================
// visualDeleteCommand - d / x in visual modes
// ============================================================================

type visualDeleteCommand[P comparable] struct {
	MutationBase
	from Mode
}

// Execute removes the selected span and always leaves visual mode.
func (c *visualDeleteCommand[P]) Execute(e *Engine[P]) Result {
	anchor, cursor, ok := e.Selection()
	e.ExitVisual()
	if !ok {
		return Skipped
	}
	if err := e.adapter.DeleteSpan(anchor, cursor, c.from); err != nil {
		e.Report(err)
		return Skipped
	}
	return Executed
}

func (c *visualDeleteCommand[P]) Keys() []string { return []string{"d", "x"} }
func (c *visualDeleteCommand[P]) Mode() Mode     { return c.from }
func (c *visualDeleteCommand[P]) ID() string     { return "delete.selection" }
