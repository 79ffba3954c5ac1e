package vimlist

import (
	"os"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/vimkit/internal/engine"
	"github.com/zjrosen/vimkit/internal/event"
	"github.com/zjrosen/vimkit/internal/register"
	"github.com/zjrosen/vimkit/internal/shared"
	"github.com/zjrosen/vimkit/internal/ui/shared/widget"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	os.Exit(m.Run())
}

var epoch = time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m *Model, keys string) {
	for _, r := range keys {
		m.Update(key(string(r)))
	}
}

func newTestList(t *testing.T, items ...string) (*Model, *shared.ManualClock, *[]Event) {
	t.Helper()
	clock := shared.NewManualClock(epoch)
	m := New(Config{
		Items:   items,
		Options: widget.Options{Clock: clock, Clipboard: &shared.MemoryClipboard{}},
	})
	var events []Event
	m.Subscribe(func(e Event) { events = append(events, e) })
	return m, clock, &events
}

func kinds(events []Event) []event.Kind {
	out := make([]event.Kind, len(events))
	for i, e := range events {
		out[i] = e.Kind
	}
	return out
}

func TestList_NavigateInsertDelete(t *testing.T) {
	m, _, events := newTestList(t, "a", "b", "c")

	press(m, "jj")
	require.Equal(t, 2, m.CurrentIndex())

	press(m, "ox")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, []string{"a", "b", "c", "x"}, m.Items())
	require.Equal(t, 3, m.CurrentIndex())

	press(m, "kkk")
	press(m, "dd")
	require.Equal(t, []string{"b", "c", "x"}, m.Items())
	require.Equal(t, 0, m.CurrentIndex())

	require.Contains(t, *events, Event{Kind: event.ItemAdded, Index: 3, Value: "x"})
	require.Contains(t, *events, Event{Kind: event.ItemDeleted, Index: 0, Value: "a"})
}

func TestList_EditEmitsOldAndNewValue(t *testing.T) {
	m, _, events := newTestList(t, "apple")

	press(m, "i")
	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	press(m, "y")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.Equal(t, []string{"apply"}, m.Items())
	require.Equal(t, []Event{{Kind: event.ItemEdited, Index: 0, Value: "apply", Old: "apple"}}, *events)
}

func TestList_HooksFilterByKind(t *testing.T) {
	var selected, deleted []int
	m := New(Config{
		Items:    []string{"a", "b", "c"},
		OnSelect: func(e Event) { selected = append(selected, e.Index) },
		OnDelete: func(e Event) { deleted = append(deleted, e.Index) },
	})

	press(m, "jx")

	require.Equal(t, []int{1}, selected)
	require.Equal(t, []int{1}, deleted)
	require.Equal(t, []string{"a", "c"}, m.Items())
}

func TestList_DeleteLastItemMovesCursorUp(t *testing.T) {
	m, _, _ := newTestList(t, "a", "b")

	press(m, "Gx")

	require.Equal(t, []string{"a"}, m.Items())
	require.Equal(t, 0, m.CurrentIndex())

	press(m, "x")
	require.Empty(t, m.Items())
	require.Equal(t, -1, m.CurrentIndex())
	_, ok := m.CurrentItem()
	require.False(t, ok)
}

func TestList_YankPasteMultiline(t *testing.T) {
	m, _, _ := newTestList(t, "a", "b", "c")

	press(m, "Vj")
	require.Equal(t, engine.ModeVisualLine, m.Mode())
	press(m, "y")
	require.Equal(t, engine.ModeNormal, m.Mode())

	press(m, "Gp")

	require.Equal(t, []string{"a", "b", "c", "a", "b"}, m.Items())
	require.Equal(t, 3, m.CurrentIndex())
}

func TestList_PasteAboveOnEmptyList(t *testing.T) {
	m, _, _ := newTestList(t)
	m.Engine().SetRegister(register.Scalar("only"))

	press(m, "P")

	require.Equal(t, []string{"only"}, m.Items())
	require.Equal(t, 0, m.CurrentIndex())
}

func TestList_VisualDelete(t *testing.T) {
	m, _, events := newTestList(t, "a", "b", "c", "d")

	press(m, "jvjd")

	require.Equal(t, []string{"a", "d"}, m.Items())
	require.Equal(t, 1, m.CurrentIndex())
	require.Equal(t, []event.Kind{
		event.ItemSelected, event.ItemSelected, // j, j
		event.ItemDeleted, event.ItemDeleted,
		event.ItemSelected, // cursor lands on "d"
	}, kinds(*events))
}

func TestList_ChordTimeoutDiscardsDelete(t *testing.T) {
	m, clock, _ := newTestList(t, "a", "b")

	press(m, "d")
	clock.Advance(1100 * time.Millisecond)
	press(m, "d")

	require.Equal(t, []string{"a", "b"}, m.Items(), "late follower starts a new chord")
	pending, ok := m.Engine().Pending()
	require.True(t, ok)
	require.Equal(t, "d", pending)
}

func TestList_SearchCycles(t *testing.T) {
	m, _, _ := newTestList(t, "Apple", "banana", "pineapple")

	press(m, "/apple")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, 0, m.CurrentIndex())

	press(m, "n")
	require.Equal(t, 2, m.CurrentIndex())
	press(m, "n")
	require.Equal(t, 0, m.CurrentIndex())
	press(m, "N")
	require.Equal(t, 2, m.CurrentIndex())
}

func TestList_MutationAPI(t *testing.T) {
	m, _, events := newTestList(t)

	m.AddItem("b")
	m.InsertItem(0, "a")
	m.InsertItem(99, "c")
	m.UpdateItem(1, "B")
	m.UpdateItem(7, "ignored")
	m.RemoveItem(0)
	m.RemoveItem(-1)

	require.Equal(t, []string{"B", "c"}, m.Items())
	require.Equal(t, []event.Kind{
		event.ItemAdded, event.ItemAdded, event.ItemAdded, event.ItemEdited, event.ItemDeleted,
	}, kinds(*events))

	m.Clear()
	require.Empty(t, m.Items())
	require.Equal(t, -1, m.CurrentIndex())
}

func TestList_SetItemsKeepsValidCursor(t *testing.T) {
	m, _, _ := newTestList(t, "a", "b", "c")
	press(m, "jj")

	m.SetItems([]string{"x", "y", "z", "w"})
	require.Equal(t, 2, m.CurrentIndex())

	m.SetItems([]string{"only"})
	require.Equal(t, 0, m.CurrentIndex())
}

func TestList_ItemsReturnsCopy(t *testing.T) {
	m, _, _ := newTestList(t, "a")

	items := m.Items()
	items[0] = "mutated"

	require.Equal(t, []string{"a"}, m.Items())
}

func TestList_ViewShowsModeAndPosition(t *testing.T) {
	m, _, _ := newTestList(t, "alpha", "beta")
	m.SetSize(40, 5)

	press(m, "j")
	view := m.View()

	require.Contains(t, view, "alpha")
	require.Contains(t, view, "beta")
	require.Contains(t, view, "NORMAL")
	require.Contains(t, view, "2/2")

	press(m, "V")
	require.Contains(t, m.View(), "VISUAL LINE")
}

func TestList_ViewScrollsToCursor(t *testing.T) {
	m, _, _ := newTestList(t, "one", "two", "three", "four", "five")
	m.SetSize(40, 3)

	press(m, "G")
	view := m.View()

	require.Contains(t, view, "five")
	require.NotContains(t, view, "one")
}

func TestList_EmptyView(t *testing.T) {
	m, _, _ := newTestList(t)

	require.Contains(t, m.View(), "No items")
	require.Contains(t, m.View(), "0/0")
}

func TestList_BlurredIgnoresKeys(t *testing.T) {
	m, _, _ := newTestList(t, "a", "b")
	m.Blur()

	press(m, "j")
	require.Equal(t, 0, m.CurrentIndex())

	m.Focus()
	press(m, "j")
	require.Equal(t, 1, m.CurrentIndex())
}

func TestList_Program(t *testing.T) {
	m, _, _ := newTestList(t, "a", "b", "c")

	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(40, 10))
	tm.Send(key("j"))
	tm.Send(key("d"))
	tm.Send(key("d"))
	tm.Send(key("o"))
	tm.Type("new")
	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})
	tm.Quit()

	final, ok := tm.FinalModel(t, teatest.WithFinalTimeout(2*time.Second)).(*Model)
	require.True(t, ok)
	require.Equal(t, []string{"a", "c", "new"}, final.Items())
	require.Equal(t, 2, final.CurrentIndex())
}
