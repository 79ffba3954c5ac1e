package engine

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"pgregory.net/rapid"
)

var fuzzKeys = []tea.KeyMsg{
	runes("j"), runes("k"), runes("g"), runes("G"), runes("d"), runes("x"),
	runes("y"), runes("p"), runes("P"), runes("o"), runes("O"), runes("v"),
	runes("V"), runes("n"), runes("r"), runes("/"), runes("a"), runes("i"),
	keyType(tea.KeyEnter), keyType(tea.KeyEscape), keyType(tea.KeyBackspace),
}

func TestEngine_CursorAlwaysInBounds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		initial := rapid.SliceOfN(rapid.StringMatching(`[a-c]{1,3}`), 0, 6).Draw(t, "items")
		list := newFakeList(initial...)
		clock := newTestClock()
		e := New[int](list, Config{Clock: clock})

		steps := rapid.IntRange(1, 60).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			key := rapid.SampledFrom(fuzzKeys).Draw(t, "key")
			if rapid.Bool().Draw(t, "wait") {
				clock.Advance(700 * time.Millisecond)
			}
			e.HandleKey(key)

			c, ok := list.Cursor()
			if len(list.items) == 0 {
				if ok {
					t.Fatalf("cursor present on empty model")
				}
				continue
			}
			if !ok || c < 0 || c >= len(list.items) {
				t.Fatalf("cursor %d out of [0,%d) after %q", c, len(list.items), KeyString(key))
			}
		}
	})
}
