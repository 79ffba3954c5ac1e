package engine

import "github.com/zjrosen/vimkit/internal/register"

// Navigator is the read and cursor side of a widget model.
// Cursor returns ok=false exactly when the model has no focusable position.
type Navigator[P comparable] interface {
	Len() int
	Cursor() (P, bool)
	SetCursor(p P)
	// Move steps the cursor once, clamped at the edges. It returns false when
	// nothing changed.
	Move(dir Direction) bool
	First() (P, bool)
	Last() (P, bool)
	// Positions lists every searchable position in traversal order.
	Positions() []P
	Text(p P) string
	// Rebuild recomputes derived view state from the model and re-clamps the cursor.
	Rebuild()
}

// Editor applies mutating commands to the model.
type Editor[P comparable] interface {
	// Commit stores an edited value at p.
	Commit(p P, value string)
	// Insert adds a new value relative to the cursor and focuses it.
	Insert(where Placement, value string) bool
	// Delete removes the value at p. A *RefusalError leaves the model untouched.
	Delete(p P) error
	Yank(p P) register.Payload
	Paste(where Placement, payload register.Payload) bool
	YankSpan(anchor, cursor P, mode Mode) register.Payload
	DeleteSpan(anchor, cursor P, mode Mode) error
}

// Adapter binds an Engine to a concrete widget model.
type Adapter[P comparable] interface {
	Navigator[P]
	Editor[P]
	// Focused is called after a command moves the cursor to a new position.
	Focused(p P)
}
