package vimmedia

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
	return a.m.items[p].Text
}

func (a *adapter) Rebuild() {
	a.m.rebuild()
	log.Debug(log.CatMedia, "refreshed", "count", len(a.m.items))
}

func (a *adapter) Commit(p int, value string) {
	if p < 0 || p >= len(a.m.items) {
		return
	}
	old := a.m.items[p].Text
	a.m.items[p].Text = value
	a.m.emit(event.ItemEdited, p, a.m.items[p], old)
}

func (a *adapter) insertAt(where engine.Placement) int {
	if len(a.m.items) == 0 {
		return 0
	}
	if where == engine.Below {
		return a.m.cursor + 1
	}
	return a.m.cursor
}

func (a *adapter) place(where engine.Placement, items []Item) {
	at := a.insertAt(where)
	a.m.items = slices.Insert(a.m.items, at, items...)
	a.m.cursor = at
	for i, it := range items {
		a.m.emit(event.ItemAdded, at+i, it, "")
	}
}

func (a *adapter) Insert(where engine.Placement, value string) bool {
	a.place(where, []Item{Item{Text: value}.withID()})
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

// Yank keeps the whole item, image included, in the payload data. The
// clipboard only sees the text.
func (a *adapter) Yank(p int) register.Payload {
	if p < 0 || p >= len(a.m.items) {
		return register.Payload{}
	}
	it := a.m.items[p]
	return register.Scalar(it.Text).WithData([]Item{it})
}

// Paste duplicates yanked items with fresh IDs. Text from elsewhere becomes
// one text item per line.
func (a *adapter) Paste(where engine.Placement, payload register.Payload) bool {
	var items []Item
	if yanked, ok := payload.Data.([]Item); ok {
		for _, it := range yanked {
			items = append(items, it.copied())
		}
	} else {
		for _, l := range payload.Lines() {
			items = append(items, Item{Text: l}.withID())
		}
	}
	if len(items) == 0 {
		return false
	}
	a.place(where, items)
	return true
}

func (a *adapter) YankSpan(anchor, cursor int, _ engine.Mode) register.Payload {
	lo, hi := min(anchor, cursor), min(max(anchor, cursor), len(a.m.items)-1)
	if lo < 0 || lo > hi {
		return register.Payload{}
	}
	items := slices.Clone(a.m.items[lo : hi+1])
	texts := make([]string, len(items))
	for i, it := range items {
		texts[i] = it.Text
	}
	return register.Lines(texts).WithData(items)
}

func (a *adapter) DeleteSpan(anchor, cursor int, _ engine.Mode) error {
	lo, hi := min(anchor, cursor), min(max(anchor, cursor), len(a.m.items)-1)
	for i := hi; i >= lo && i >= 0; i-- {
		removed := a.m.items[i]
		a.m.items = slices.Delete(a.m.items, i, i+1)
		a.m.emit(event.ItemDeleted, i, removed, "")
	}
	a.m.cursor = max(0, min(lo, len(a.m.items)-1))
	return nil
}

func (a *adapter) Focused(p int) {
	if p < 0 || p >= len(a.m.items) {
		return
	}
	a.m.emit(event.ItemSelected, p, a.m.items[p], "")
}
