package vimtable

import "github.com/zjrosen/vimkit/internal/event"

// Event is emitted on cell edits, selection, and row inserts and deletes.
//
// CellEdited carries Row, Col, Old and Value. ItemSelected carries the focused
// cell. ItemAdded and ItemDeleted carry the row index and its Cells.
type Event struct {
	Kind  event.Kind
	Row   int
	Col   int
	Value string
	Old   string
	Cells []string
}

// EventKind implements event.Kinded.
func (e Event) EventKind() event.Kind { return e.Kind }
