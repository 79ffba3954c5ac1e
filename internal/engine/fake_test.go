package engine

import (
	"strings"

	"github.com/zjrosen/vimkit/internal/register"
	"github.com/zjrosen/vimkit/internal/shared"
)

// fakeList is a minimal flat adapter over a slice of strings.
type fakeList struct {
	items    []string
	cursor   int
	focused  []int
	rebuilds int
}

func newFakeList(items ...string) *fakeList {
	return &fakeList{items: items}
}

func (f *fakeList) Len() int { return len(f.items) }

func (f *fakeList) Cursor() (int, bool) {
	if len(f.items) == 0 {
		return 0, false
	}
	return f.cursor, true
}

func (f *fakeList) SetCursor(p int) { f.cursor = f.clamp(p) }

func (f *fakeList) clamp(p int) int {
	switch {
	case len(f.items) == 0 || p < 0:
		return 0
	case p >= len(f.items):
		return len(f.items) - 1
	default:
		return p
	}
}

func (f *fakeList) Move(dir Direction) bool {
	next := f.cursor
	switch dir {
	case DirDown:
		next++
	case DirUp:
		next--
	default:
		return false
	}
	next = f.clamp(next)
	if next == f.cursor {
		return false
	}
	f.cursor = next
	return true
}

func (f *fakeList) First() (int, bool) { return 0, len(f.items) > 0 }
func (f *fakeList) Last() (int, bool)  { return len(f.items) - 1, len(f.items) > 0 }

func (f *fakeList) Positions() []int {
	out := make([]int, len(f.items))
	for i := range out {
		out[i] = i
	}
	return out
}

func (f *fakeList) Text(p int) string { return f.items[p] }

func (f *fakeList) Rebuild() {
	f.rebuilds++
	f.cursor = f.clamp(f.cursor)
}

func (f *fakeList) Commit(p int, value string) { f.items[p] = value }

func (f *fakeList) Insert(where Placement, value string) bool {
	at := 0
	if len(f.items) > 0 {
		at = f.cursor
		if where == Below {
			at++
		}
	}
	f.items = append(f.items[:at], append([]string{value}, f.items[at:]...)...)
	f.cursor = at
	return true
}

func (f *fakeList) Delete(p int) error {
	f.items = append(f.items[:p], f.items[p+1:]...)
	f.cursor = f.clamp(p)
	return nil
}

func (f *fakeList) Yank(p int) register.Payload { return register.Scalar(f.items[p]) }

func (f *fakeList) Paste(where Placement, payload register.Payload) bool {
	lines := payload.Lines()
	for i, l := range lines {
		w := where
		if i > 0 {
			w = Below
		}
		f.Insert(w, strings.ReplaceAll(l, "\t", " "))
	}
	return len(lines) > 0
}

func span(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}

func (f *fakeList) YankSpan(anchor, cursor int, _ Mode) register.Payload {
	lo, hi := span(anchor, cursor)
	return register.Lines(f.items[lo : hi+1])
}

func (f *fakeList) DeleteSpan(anchor, cursor int, _ Mode) error {
	lo, hi := span(anchor, cursor)
	for i := hi; i >= lo; i-- {
		f.items = append(f.items[:i], f.items[i+1:]...)
	}
	f.cursor = f.clamp(lo)
	return nil
}

func (f *fakeList) Focused(p int) { f.focused = append(f.focused, p) }

// refusingList refuses every delete.
type refusingList struct{ *fakeList }

func (r refusingList) Delete(int) error { return Refuse("Cannot delete the last remaining row") }

func newTestClock() *shared.ManualClock {
	return shared.NewManualClock(epoch)
}
