package vimtree

import "github.com/zjrosen/vimkit/internal/event"

// Event is emitted on node edits, selection, inserts, deletes, and
// expand or collapse. Old is only set for ItemEdited.
type Event struct {
	Kind  event.Kind
	Node  *Node
	Value string
	Old   string
}

// EventKind implements event.Kinded.
func (e Event) EventKind() event.Kind { return e.Kind }
