package vimlist

import "github.com/zjrosen/vimkit/internal/event"

// Event is emitted on edits, selection, inserts and deletes.
// Old is only set for ItemEdited.
type Event struct {
	Kind  event.Kind
	Index int
	Value string
	Old   string
}

// EventKind implements event.Kinded.
func (e Event) EventKind() event.Kind { return e.Kind }
