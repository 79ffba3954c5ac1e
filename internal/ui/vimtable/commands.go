package vimtable

import (
	"fmt"
	"slices"
	"strings"

	"github.com/zjrosen/vimkit/internal/engine"
	"github.com/zjrosen/vimkit/internal/log"
	"github.com/zjrosen/vimkit/internal/register"
)

// installCommands replaces the prompt-based o/O with blank rows and adds the
// column commands, the header edit and the single-cell copy on y.
func installCommands(m *Model) {
	e := m.host.Engine()
	r := e.Registry()

	r.Register(&insertRowCommand{where: engine.Below})
	r.Register(&insertRowCommand{where: engine.Above})
	r.Register(&editHeaderCommand{m: m})
	r.Register(&addColumnCommand{m: m, key: "a"})
	r.Register(&addColumnCommand{m: m, key: "A", atEnd: true})

	if d, ok := e.Chord("d"); ok {
		d.Followers["c"] = &deleteColumnCommand{m: m}
	}
	if y, ok := e.Chord("y"); ok {
		cell := &yankCellCommand{m: m}
		y.Expire = cell
		y.Mismatch = engine.MismatchExpire
	}
}

// ============================================================================
// insertRowCommand - o / O
// ============================================================================

type insertRowCommand struct {
	engine.MutationBase
	where engine.Placement
}

func (c *insertRowCommand) Execute(e *engine.Engine[Cell]) engine.Result {
	if !e.Adapter().Insert(c.where, "") {
		return engine.Skipped
	}
	return engine.Executed
}

func (c *insertRowCommand) Keys() []string {
	if c.where == engine.Above {
		return []string{"O"}
	}
	return []string{"o"}
}

func (c *insertRowCommand) ID() string { return "insert.row." + c.where.String() }

// ============================================================================
// editHeaderCommand - I
// ============================================================================

type editHeaderCommand struct {
	engine.MotionBase
	m *Model
}

// Execute prompts with the current header. Blank input keeps the old header.
func (c *editHeaderCommand) Execute(e *engine.Engine[Cell]) engine.Result {
	m := c.m
	if len(m.columns) == 0 {
		return engine.Skipped
	}
	col := m.cursor.Col
	e.BeginEdit("Header: ", m.columns[col], func(value string) {
		value = strings.TrimSpace(value)
		if value == "" || col >= len(m.columns) {
			return
		}
		log.Debug(log.CatTable, "header renamed", "col", col, "from", m.columns[col], "to", value)
		m.columns[col] = value
	})
	return engine.Executed
}

func (c *editHeaderCommand) Keys() []string { return []string{"I"} }
func (c *editHeaderCommand) ID() string     { return "edit.header" }

// ============================================================================
// addColumnCommand - a / A
// ============================================================================

type addColumnCommand struct {
	engine.MutationBase
	m     *Model
	key   string
	atEnd bool
}

// Execute inserts a blank column named Col<N>, N being the new column count,
// and moves the cursor into it.
func (c *addColumnCommand) Execute(_ *engine.Engine[Cell]) engine.Result {
	m := c.m
	at := len(m.columns)
	if !c.atEnd && len(m.columns) > 0 {
		at = min(m.cursor.Col+1, len(m.columns))
	}
	name := fmt.Sprintf("Col%d", len(m.columns)+1)
	m.columns = slices.Insert(m.columns, at, name)
	for i := range m.rows {
		m.rows[i] = slices.Insert(m.rows[i], at, "")
	}
	m.cursor.Col = at
	log.Debug(log.CatTable, "column added", "name", name, "at", at)
	return engine.Executed
}

func (c *addColumnCommand) Keys() []string { return []string{c.key} }

func (c *addColumnCommand) ID() string {
	if c.atEnd {
		return "column.add.end"
	}
	return "column.add.right"
}

// ============================================================================
// deleteColumnCommand - dc
// ============================================================================

type deleteColumnCommand struct {
	engine.MutationBase
	m *Model
}

func (c *deleteColumnCommand) Execute(e *engine.Engine[Cell]) engine.Result {
	m := c.m
	if len(m.columns) <= 1 {
		e.Report(ErrLastColumn)
		return engine.Skipped
	}
	col := min(m.cursor.Col, len(m.columns)-1)
	m.columns = slices.Delete(m.columns, col, col+1)
	for i := range m.rows {
		m.rows[i] = slices.Delete(m.rows[i], col, col+1)
	}
	m.cursor.Col = min(col, len(m.columns)-1)
	log.Debug(log.CatTable, "column deleted", "col", col)
	return engine.Executed
}

func (c *deleteColumnCommand) Keys() []string { return nil }
func (c *deleteColumnCommand) ID() string     { return "column.delete" }

// ============================================================================
// yankCellCommand - y followed by anything but y
// ============================================================================

type yankCellCommand struct {
	engine.MotionBase
	m *Model
}

func (c *yankCellCommand) Execute(e *engine.Engine[Cell]) engine.Result {
	cell, ok := c.m.Current()
	if !ok {
		return engine.Skipped
	}
	e.SetRegister(register.Scalar(c.m.rows[cell.Row][cell.Col]))
	return engine.Executed
}

func (c *yankCellCommand) Keys() []string { return nil }
func (c *yankCellCommand) ID() string     { return "yank.cell" }
