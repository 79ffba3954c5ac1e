// Package vimlist provides an editable single-column list with vim-style
// modal keyboard navigation.
package vimlist

import (
	"slices"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/vimkit/internal/engine"
	"github.com/zjrosen/vimkit/internal/event"
	"github.com/zjrosen/vimkit/internal/log"
	"github.com/zjrosen/vimkit/internal/pubsub"
	"github.com/zjrosen/vimkit/internal/ui/shared/widget"
)

// Config configures a list.
type Config struct {
	widget.Options

	Items        []string
	ZebraStripes bool

	// Hooks are ordinary subscribers registered at construction.
	OnEdit   func(Event)
	OnSelect func(Event)
	OnAdd    func(Event)
	OnDelete func(Event)
}

// Model is the list widget. The items slice is the single source of truth;
// the view is rebuilt from it on every render.
type Model struct {
	items  []string
	cursor int
	zebra  bool

	host   *widget.Host[int]
	events *event.Hub[Event]
	scroll widget.Scroll
}

// New creates a list from cfg.
func New(cfg Config) *Model {
	m := &Model{
		items:  slices.Clone(cfg.Items),
		zebra:  cfg.ZebraStripes,
		events: event.NewHub[Event](),
	}
	m.host = widget.NewHost[int]("list", &adapter{m: m}, cfg.Options)

	hook := func(kind event.Kind, fn func(Event)) {
		if fn == nil {
			return
		}
		m.events.Subscribe(func(e Event) {
			if e.Kind == kind {
				fn(e)
			}
		})
	}
	hook(event.ItemEdited, cfg.OnEdit)
	hook(event.ItemSelected, cfg.OnSelect)
	hook(event.ItemAdded, cfg.OnAdd)
	hook(event.ItemDeleted, cfg.OnDelete)
	return m
}

// Subscribe registers a listener for every list event.
func (m *Model) Subscribe(fn func(Event)) (unsubscribe func()) {
	return m.events.Subscribe(fn)
}

// Bridge forwards events to a pubsub broker as well.
func (m *Model) Bridge(p pubsub.Publisher[Event]) {
	m.events.Bridge(p)
}

func (m *Model) emit(kind event.Kind, index int, value, old string) {
	m.events.Emit(Event{Kind: kind, Index: index, Value: value, Old: old})
}

// Engine exposes the modal engine, e.g. to add bindings.
func (m *Model) Engine() *engine.Engine[int] { return m.host.Engine() }

// Mode returns the current interaction mode.
func (m *Model) Mode() engine.Mode { return m.host.Engine().Mode() }

// Focus lets the list receive keys.
func (m *Model) Focus() { m.host.Focus() }

// Blur stops key handling and cancels any pending edit, search or chord.
func (m *Model) Blur() { m.host.Blur() }

// SetSize sets the outer dimensions including the modeline.
func (m *Model) SetSize(width, height int) {
	m.host.SetSize(width, height)
	m.scroll.Follow(m.cursor, len(m.items), m.host.BodyHeight())
}

// SetItems replaces every item. The cursor is kept when still valid.
func (m *Model) SetItems(items []string) {
	m.items = slices.Clone(items)
	m.changed()
	log.Debug(log.CatList, "items set", "count", len(m.items))
}

// AddItem appends value.
func (m *Model) AddItem(value string) {
	m.InsertItem(len(m.items), value)
}

// InsertItem inserts value at index, clamped to [0, len].
func (m *Model) InsertItem(index int, value string) {
	index = max(0, min(index, len(m.items)))
	m.items = slices.Insert(m.items, index, value)
	m.changed()
	m.emit(event.ItemAdded, index, value, "")
}

// UpdateItem replaces the item at index. Out-of-range indexes are ignored.
func (m *Model) UpdateItem(index int, value string) {
	if index < 0 || index >= len(m.items) {
		return
	}
	old := m.items[index]
	m.items[index] = value
	m.changed()
	m.emit(event.ItemEdited, index, value, old)
}

// RemoveItem deletes the item at index. Out-of-range indexes are ignored.
func (m *Model) RemoveItem(index int) {
	if index < 0 || index >= len(m.items) {
		return
	}
	removed := m.items[index]
	m.items = slices.Delete(m.items, index, index+1)
	m.changed()
	m.emit(event.ItemDeleted, index, removed, "")
}

// Clear removes every item.
func (m *Model) Clear() {
	m.items = nil
	m.cursor = 0
	m.changed()
}

// Items returns a copy of the items.
func (m *Model) Items() []string {
	return slices.Clone(m.items)
}

// CurrentItem returns the focused item.
func (m *Model) CurrentItem() (string, bool) {
	if len(m.items) == 0 {
		return "", false
	}
	return m.items[m.cursor], true
}

// CurrentIndex returns the focused index, or -1 when the list is empty.
func (m *Model) CurrentIndex() int {
	if len(m.items) == 0 {
		return -1
	}
	return m.cursor
}

// changed re-clamps after a mutation from outside the engine.
func (m *Model) changed() {
	m.rebuild()
	m.host.Engine().InvalidateSearch()
}

// rebuild keeps the cursor if it is still valid and resets it to 0 otherwise.
func (m *Model) rebuild() {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		m.cursor = 0
	}
	m.scroll.Follow(m.cursor, len(m.items), m.host.BodyHeight())
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil
	case tea.MouseMsg:
		start, end := m.scroll.Window(len(m.items), m.host.BodyHeight())
		if i, ok := m.host.ClickedRow(msg, start, end); ok && m.host.Focused() {
			m.setCursor(i)
		}
		return m, nil
	}
	_, cmd := m.host.Update(msg)
	m.scroll.Follow(m.cursor, len(m.items), m.host.BodyHeight())
	return m, cmd
}

func (m *Model) setCursor(i int) {
	if len(m.items) == 0 {
		return
	}
	i = max(0, min(i, len(m.items)-1))
	if i == m.cursor {
		return
	}
	m.cursor = i
	m.emit(event.ItemSelected, i, m.items[i], "")
}
