package vimmedia

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/vimkit/internal/event"
	"github.com/zjrosen/vimkit/internal/shared"
	"github.com/zjrosen/vimkit/internal/testutil"
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

func enter(m *Model) { m.Update(tea.KeyMsg{Type: tea.KeyEnter}) }

func newTestMedia(t *testing.T, items ...Item) (*Model, *shared.MemoryClipboard, *[]Event) {
	t.Helper()
	clip := &shared.MemoryClipboard{}
	m := New(Config{
		Items:   items,
		Options: widget.Options{Clock: shared.NewManualClock(epoch), Clipboard: clip},
	})
	var events []Event
	m.Subscribe(func(e Event) { events = append(events, e) })
	return m, clip, &events
}

func writePNG(t *testing.T, w, h int) string {
	t.Helper()
	return testutil.WritePNG(t, t.TempDir(), "photo.png", w, h)
}

func texts(items []Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Text
	}
	return out
}

func TestMedia_NewAssignsIDs(t *testing.T) {
	m, _, _ := newTestMedia(t, Item{Text: "a"}, Item{ID: "keep", Text: "b"})

	items := m.Items()
	require.NotEmpty(t, items[0].ID)
	require.Equal(t, "keep", items[1].ID)
}

func TestMedia_YankPasteKeepsImage(t *testing.T) {
	img := writePNG(t, 4, 3)
	m, clip, events := newTestMedia(t, Item{Text: "cat", Image: img}, Item{Text: "note"})

	press(m, "yy")
	press(m, "j")
	press(m, "p")

	items := m.Items()
	require.Equal(t, []string{"cat", "note", "cat"}, texts(items))
	require.Equal(t, img, items[2].Image)
	require.NotEqual(t, items[0].ID, items[2].ID)
	require.Equal(t, 2, m.CurrentIndex())

	text, err := clip.Paste()
	require.NoError(t, err)
	require.Equal(t, "cat", text)

	last := (*events)[len(*events)-1]
	require.Equal(t, event.ItemSelected, last.Kind)
	added := (*events)[len(*events)-2]
	require.Equal(t, event.ItemAdded, added.Kind)
	require.Equal(t, img, added.Item.Image)
}

func TestMedia_PasteFromClipboardMakesTextItems(t *testing.T) {
	m, clip, _ := newTestMedia(t, Item{Text: "a"})
	require.NoError(t, clip.Copy("x\ny"))

	press(m, "p")

	require.Equal(t, []string{"a", "x", "y"}, texts(m.Items()))
	require.False(t, m.Items()[1].HasImage())
}

func TestMedia_VisualYankCarriesItems(t *testing.T) {
	img := writePNG(t, 2, 2)
	m, _, _ := newTestMedia(t, Item{Text: "a", Image: img}, Item{Text: "b"}, Item{Text: "c"})

	press(m, "Vj")
	press(m, "y")
	press(m, "G")
	press(m, "p")

	items := m.Items()
	require.Equal(t, []string{"a", "b", "c", "a", "b"}, texts(items))
	require.Equal(t, img, items[3].Image)
}

func TestMedia_VisualDelete(t *testing.T) {
	m, _, events := newTestMedia(t, Item{Text: "a"}, Item{Text: "b"}, Item{Text: "c"})

	press(m, "jVj")
	press(m, "d")

	require.Equal(t, []string{"a"}, texts(m.Items()))
	var deleted []int
	for _, e := range *events {
		if e.Kind == event.ItemDeleted {
			deleted = append(deleted, e.Index)
		}
	}
	require.Equal(t, []int{2, 1}, deleted)
}

func TestMedia_EditKeepsImage(t *testing.T) {
	img := writePNG(t, 2, 2)
	var edits []Event
	m := New(Config{
		Items:   []Item{{Text: "cat", Image: img}},
		Options: widget.Options{Clock: shared.NewManualClock(epoch), Clipboard: &shared.MemoryClipboard{}},
		OnEdit:  func(e Event) { edits = append(edits, e) },
	})

	press(m, "i")
	press(m, "s")
	enter(m)

	it, ok := m.CurrentItem()
	require.True(t, ok)
	require.Equal(t, "cats", it.Text)
	require.Equal(t, img, it.Image)
	require.Len(t, edits, 1)
	require.Equal(t, "cat", edits[0].Old)
}

func TestMedia_InsertPrompt(t *testing.T) {
	m, _, _ := newTestMedia(t, Item{Text: "a"})

	press(m, "O")
	press(m, "top")
	enter(m)

	require.Equal(t, []string{"top", "a"}, texts(m.Items()))
	require.Equal(t, 0, m.CurrentIndex())
}

func TestMedia_API(t *testing.T) {
	m, _, events := newTestMedia(t)
	require.Equal(t, -1, m.CurrentIndex())

	a := m.AddTextItem("hello")
	b := m.AddImageItem("/tmp/x.png", "pic")
	require.NotEmpty(t, a.ID)
	require.Equal(t, "/tmp/x.png", b.Image)

	m.UpdateItem(1, "picture", "")
	require.False(t, m.Items()[1].HasImage())
	require.Equal(t, b.ID, m.Items()[1].ID)

	m.InsertItem(-5, Item{Text: "first"})
	require.Equal(t, []string{"first", "hello", "picture"}, texts(m.Items()))

	m.RemoveItem(0)
	m.RemoveItem(10)
	require.Equal(t, []string{"hello", "picture"}, texts(m.Items()))

	m.Clear()
	_, ok := m.CurrentItem()
	require.False(t, ok)

	var kinds []event.Kind
	for _, e := range *events {
		kinds = append(kinds, e.Kind)
	}
	require.Equal(t, []event.Kind{
		event.ItemAdded, event.ItemAdded, event.ItemEdited, event.ItemAdded, event.ItemDeleted,
	}, kinds)
}

func TestMedia_ViewShowsImageFacts(t *testing.T) {
	img := writePNG(t, 4, 3)
	m, _, _ := newTestMedia(t, Item{Text: "a caption that is far too long to fit", Image: img}, Item{Text: "plain"})
	m.SetSize(60, 6)

	view := m.View()
	require.Contains(t, view, "▣")
	require.Contains(t, view, "photo.png PNG 4x3")
	require.Contains(t, view, "…")
	require.Contains(t, view, "plain")
	require.Contains(t, view, "1/2")
}

func TestMedia_ViewUnreadableImage(t *testing.T) {
	m, _, _ := newTestMedia(t, Item{Text: "gone", Image: filepath.Join(t.TempDir(), "missing.png")})
	m.SetSize(60, 4)

	require.Contains(t, m.View(), "missing.png unreadable")
}

func TestMedia_Program(t *testing.T) {
	m, _, _ := newTestMedia(t, Item{Text: "a"}, Item{Text: "b"})

	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(50, 8))
	tm.Send(key("j"))
	tm.Send(key("x"))
	tm.Send(key("o"))
	tm.Type("c")
	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})
	tm.Quit()

	final, ok := tm.FinalModel(t, teatest.WithFinalTimeout(2*time.Second)).(*Model)
	require.True(t, ok)
	require.Equal(t, []string{"a", "c"}, texts(final.Items()))
}
