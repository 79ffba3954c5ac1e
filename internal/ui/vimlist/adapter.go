package vimlist

import (
	"slices"

	"github.com/zjrosen/vimkit/internal/engine"
	"github.com/zjrosen/vimkit/internal/event"
	"github.com/zjrosen/vimkit/internal/log"
	"github.com/zjrosen/vimkit/internal/register"
)

// adapter exposes the list model to the engine.
type adapter struct {
	m *Model
}

var _ engine.Adapter[int] = (*adapter)(nil)

func (a *adapter) Len() int { return len(a.m.items) }

func (a *adapter) Cursor() (int, bool) {
	if len(a.m.items) == 0 {
		return 0, false
	}
	return a.m.cursor, true
}

func (a *adapter) SetCursor(p int) {
	if len(a.m.items) == 0 {
		return
	}
	a.m.cursor = max(0, min(p, len(a.m.items)-1))
}

func (a *adapter) Move(dir engine.Direction) bool {
	before := a.m.cursor
	switch dir {
	case engine.DirDown:
		a.SetCursor(before + 1)
	case engine.DirUp:
		a.SetCursor(before - 1)
	default:
		return false
	}
	return a.m.cursor != before
}

func (a *adapter) First() (int, bool) { return 0, len(a.m.items) > 0 }
func (a *adapter) Last() (int, bool)  { return len(a.m.items) - 1, len(a.m.items) > 0 }

func (a *adapter) Positions() []int {
	out := make([]int, len(a.m.items))
	for i := range out {
		out[i] = i
	}
	return out
}

func (a *adapter) Text(p int) string {
	if p < 0 || p >= len(a.m.items) {
		return ""
	}
	return a.m.items[p]
}

func (a *adapter) Rebuild() {
	a.m.rebuild()
	log.Debug(log.CatList, "refreshed", "count", len(a.m.items), "cursor", a.m.cursor)
}

func (a *adapter) Commit(p int, value string) {
	if p < 0 || p >= len(a.m.items) {
		return
	}
	old := a.m.items[p]
	a.m.items[p] = value
	a.m.emit(event.ItemEdited, p, value, old)
}

// insertAt returns where a new item lands relative to the cursor.
func (a *adapter) insertAt(where engine.Placement) int {
	if len(a.m.items) == 0 {
		return 0
	}
	if where == engine.Below {
		return a.m.cursor + 1
	}
	return a.m.cursor
}

func (a *adapter) Insert(where engine.Placement, value string) bool {
	at := a.insertAt(where)
	a.m.items = slices.Insert(a.m.items, at, value)
	a.m.cursor = at
	a.m.emit(event.ItemAdded, at, value, "")
	return true
}

func (a *adapter) Delete(p int) error {
	if p < 0 || p >= len(a.m.items) {
		return nil
	}
	removed := a.m.items[p]
	a.m.items = slices.Delete(a.m.items, p, p+1)
	a.m.cursor = max(0, min(p, len(a.m.items)-1))
	a.m.emit(event.ItemDeleted, p, removed, "")
	return nil
}

func (a *adapter) Yank(p int) register.Payload {
	return register.Scalar(a.Text(p))
}

// Paste inserts one item per payload line and focuses the first of them.
func (a *adapter) Paste(where engine.Placement, payload register.Payload) bool {
	lines := payload.Lines()
	if len(lines) == 0 {
		return false
	}
	at := a.insertAt(where)
	a.m.items = slices.Insert(a.m.items, at, lines...)
	a.m.cursor = at
	for i, l := range lines {
		a.m.emit(event.ItemAdded, at+i, l, "")
	}
	return true
}

func span(anchor, cursor int) (lo, hi int) {
	return min(anchor, cursor), max(anchor, cursor)
}

func (a *adapter) YankSpan(anchor, cursor int, _ engine.Mode) register.Payload {
	lo, hi := span(anchor, cursor)
	hi = min(hi, len(a.m.items)-1)
	if lo > hi {
		return register.Payload{}
	}
	return register.Lines(a.m.items[lo : hi+1])
}

// DeleteSpan removes the range from the bottom up so every deleted event
// carries the index the item had at that moment.
func (a *adapter) DeleteSpan(anchor, cursor int, _ engine.Mode) error {
	lo, hi := span(anchor, cursor)
	hi = min(hi, len(a.m.items)-1)
	for i := hi; i >= lo; i-- {
		removed := a.m.items[i]
		a.m.items = slices.Delete(a.m.items, i, i+1)
		a.m.emit(event.ItemDeleted, i, removed, "")
	}
	a.m.cursor = max(0, min(lo, len(a.m.items)-1))
	return nil
}

func (a *adapter) Focused(p int) {
	a.m.emit(event.ItemSelected, p, a.Text(p), "")
}
