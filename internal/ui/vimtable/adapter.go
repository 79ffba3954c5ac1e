package vimtable

import (
	"slices"

	"github.com/zjrosen/vimkit/internal/engine"
	"github.com/zjrosen/vimkit/internal/event"
	"github.com/zjrosen/vimkit/internal/log"
	"github.com/zjrosen/vimkit/internal/register"
)

type adapter struct {
	m *Model
}

var _ engine.Adapter[Cell] = (*adapter)(nil)

func (a *adapter) Len() int { return len(a.m.rows) }

func (a *adapter) Cursor() (Cell, bool) { return a.m.Current() }

func (a *adapter) SetCursor(c Cell) {
	if len(a.m.rows) == 0 || len(a.m.columns) == 0 {
		return
	}
	a.m.cursor = Cell{
		Row: max(0, min(c.Row, len(a.m.rows)-1)),
		Col: max(0, min(c.Col, len(a.m.columns)-1)),
	}
}

// Move steps one row or column. Visual-line mode keeps whole rows selected,
// so horizontal steps are ignored there.
func (a *adapter) Move(dir engine.Direction) bool {
	before := a.m.cursor
	next := before
	switch dir {
	case engine.DirDown:
		next.Row++
	case engine.DirUp:
		next.Row--
	case engine.DirLeft, engine.DirRight:
		if a.m.Mode() == engine.ModeVisualLine {
			return false
		}
		if dir == engine.DirLeft {
			next.Col--
		} else {
			next.Col++
		}
	}
	a.SetCursor(next)
	return a.m.cursor != before
}

func (a *adapter) First() (Cell, bool) {
	_, ok := a.Cursor()
	return Cell{Row: 0, Col: a.m.cursor.Col}, ok
}

func (a *adapter) Last() (Cell, bool) {
	_, ok := a.Cursor()
	return Cell{Row: len(a.m.rows) - 1, Col: a.m.cursor.Col}, ok
}

func (a *adapter) Positions() []Cell {
	out := make([]Cell, 0, len(a.m.rows)*len(a.m.columns))
	for r := range a.m.rows {
		for c := range a.m.columns {
			out = append(out, Cell{r, c})
		}
	}
	return out
}

func (a *adapter) Text(c Cell) string {
	v, _ := a.m.Cell(c.Row, c.Col)
	return v
}

func (a *adapter) Rebuild() {
	a.m.rebuild()
	log.Debug(log.CatTable, "refreshed", "rows", len(a.m.rows), "columns", len(a.m.columns))
}

func (a *adapter) Commit(c Cell, value string) {
	if !a.m.valid(c) {
		return
	}
	old := a.m.rows[c.Row][c.Col]
	a.m.rows[c.Row][c.Col] = value
	a.m.emitCell(c.Row, c.Col, old, value)
}

func (a *adapter) rowInsertAt(where engine.Placement) int {
	if len(a.m.rows) == 0 {
		return 0
	}
	if where == engine.Below {
		return a.m.cursor.Row + 1
	}
	return a.m.cursor.Row
}

// Insert adds a row built from the tab-separated value. An empty value
// inserts a blank row.
func (a *adapter) Insert(where engine.Placement, value string) bool {
	if len(a.m.columns) == 0 {
		return false
	}
	var cells []string
	if p := register.Parse(value); !p.IsEmpty() {
		cells = p.Rows()[0]
	}
	a.insertRow(a.rowInsertAt(where), cells)
	return true
}

func (a *adapter) insertRow(at int, cells []string) {
	row := register.Normalize(cells, len(a.m.columns))
	a.m.rows = slices.Insert(a.m.rows, at, row)
	a.m.cursor.Row = at
	a.SetCursor(a.m.cursor)
	a.m.emitRow(event.ItemAdded, at, row)
}

func (a *adapter) Delete(c Cell) error {
	if len(a.m.rows) <= 1 {
		return ErrLastRow
	}
	a.deleteRow(c.Row)
	a.SetCursor(Cell{Row: c.Row, Col: a.m.cursor.Col})
	return nil
}

func (a *adapter) deleteRow(i int) {
	removed := a.m.rows[i]
	a.m.rows = slices.Delete(a.m.rows, i, i+1)
	a.m.emitRow(event.ItemDeleted, i, removed)
}

// Yank copies the whole row. A lone y copies the cell instead; see yankCellCommand.
func (a *adapter) Yank(c Cell) register.Payload {
	if c.Row < 0 || c.Row >= len(a.m.rows) {
		return register.Payload{}
	}
	return register.Row(a.m.rows[c.Row])
}

// Paste applies payload by shape: a scalar overwrites the focused cell, a row
// is inserted below or above, and blocks overwrite cells from the cursor down
// and right, growing the table by rows but never by columns.
func (a *adapter) Paste(where engine.Placement, payload register.Payload) bool {
	if len(a.m.columns) == 0 {
		return false
	}
	switch payload.Kind {
	case register.KindScalar:
		c, ok := a.Cursor()
		if !ok {
			return false
		}
		a.Commit(c, payload.Text())
		return true
	case register.KindRow:
		a.insertRow(a.rowInsertAt(where), payload.Rows()[0])
		return true
	default:
		return a.pasteBlock(payload.Rows())
	}
}

func (a *adapter) pasteBlock(block [][]string) bool {
	origin := a.m.cursor
	if len(a.m.rows) == 0 {
		origin = Cell{}
	}
	wrote := false
	for dr, cells := range block {
		r := origin.Row + dr
		for r >= len(a.m.rows) {
			blank := register.Normalize(nil, len(a.m.columns))
			a.m.rows = append(a.m.rows, blank)
			a.m.emitRow(event.ItemAdded, len(a.m.rows)-1, blank)
		}
		for dc, v := range cells {
			c := origin.Col + dc
			if c >= len(a.m.columns) {
				break
			}
			old := a.m.rows[r][c]
			a.m.rows[r][c] = v
			a.m.emitCell(r, c, old, v)
			wrote = true
		}
	}
	a.SetCursor(origin)
	return wrote
}

// bounds returns the selected rectangle. Visual-line spans every column.
func (a *adapter) bounds(anchor, cursor Cell, mode engine.Mode) (lo, hi Cell) {
	lo = Cell{min(anchor.Row, cursor.Row), min(anchor.Col, cursor.Col)}
	hi = Cell{max(anchor.Row, cursor.Row), max(anchor.Col, cursor.Col)}
	if mode == engine.ModeVisualLine {
		lo.Col, hi.Col = 0, len(a.m.columns)-1
	}
	hi.Row = min(hi.Row, len(a.m.rows)-1)
	hi.Col = min(hi.Col, len(a.m.columns)-1)
	return lo, hi
}

func (a *adapter) YankSpan(anchor, cursor Cell, mode engine.Mode) register.Payload {
	lo, hi := a.bounds(anchor, cursor, mode)
	if lo.Row > hi.Row || lo.Col > hi.Col {
		return register.Payload{}
	}
	block := make([][]string, 0, hi.Row-lo.Row+1)
	for r := lo.Row; r <= hi.Row; r++ {
		block = append(block, a.m.rows[r][lo.Col:hi.Col+1])
	}
	return register.Block(block)
}

// DeleteSpan removes the selected rows in visual-line mode and blanks the
// selected cells in visual mode.
func (a *adapter) DeleteSpan(anchor, cursor Cell, mode engine.Mode) error {
	lo, hi := a.bounds(anchor, cursor, mode)
	if lo.Row > hi.Row {
		return nil
	}
	if mode == engine.ModeVisualLine {
		if lo.Row == 0 && hi.Row == len(a.m.rows)-1 {
			return ErrAllRows
		}
		for r := hi.Row; r >= lo.Row; r-- {
			a.deleteRow(r)
		}
		a.SetCursor(Cell{Row: lo.Row, Col: a.m.cursor.Col})
		return nil
	}
	for r := lo.Row; r <= hi.Row; r++ {
		for c := lo.Col; c <= hi.Col; c++ {
			if old := a.m.rows[r][c]; old != "" {
				a.m.rows[r][c] = ""
				a.m.emitCell(r, c, old, "")
			}
		}
	}
	a.SetCursor(lo)
	return nil
}

func (a *adapter) Focused(c Cell) { a.m.focused(c) }
