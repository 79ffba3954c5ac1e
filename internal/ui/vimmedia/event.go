package vimmedia

import "github.com/zjrosen/vimkit/internal/event"

// Event is emitted on edits, selection, inserts and deletes. Item is the
// state after the change, or the removed item for ItemDeleted. Old holds the
// previous text for ItemEdited.
type Event struct {
	Kind  event.Kind
	Index int
	Item  Item
	Old   string
}

// EventKind implements event.Kinded.
func (e Event) EventKind() event.Kind { return e.Kind }
