// Package vimmedia provides a vim-style list whose items pair text with an
// optional image. Images are shown by name with their decoded format and
// dimensions; terminals get no pixels.
package vimmedia

import (
	"context"
	"slices"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/vimkit/internal/engine"
	"github.com/zjrosen/vimkit/internal/event"
	"github.com/zjrosen/vimkit/internal/imagemeta"
	"github.com/zjrosen/vimkit/internal/log"
	"github.com/zjrosen/vimkit/internal/pubsub"
	"github.com/zjrosen/vimkit/internal/ui/shared/widget"
)

// Config configures a multimedia list.
type Config struct {
	widget.Options

	Items        []Item
	ZebraStripes bool
	// Resolver reads image metadata. A private resolver is created when nil.
	Resolver *imagemeta.Resolver

	OnEdit   func(Event)
	OnSelect func(Event)
	OnAdd    func(Event)
	OnDelete func(Event)
}

// Model is the multimedia list widget.
type Model struct {
	items  []Item
	cursor int
	zebra  bool

	resolver *imagemeta.Resolver
	meta     map[string]string

	host   *widget.Host[int]
	events *event.Hub[Event]
	scroll widget.Scroll
}

// New creates a multimedia list from cfg. Items without an ID get one.
func New(cfg Config) *Model {
	m := &Model{
		zebra:    cfg.ZebraStripes,
		resolver: cfg.Resolver,
		meta:     make(map[string]string),
		events:   event.NewHub[Event](),
	}
	if m.resolver == nil {
		m.resolver = imagemeta.NewResolver(0)
	}
	for _, it := range cfg.Items {
		m.items = append(m.items, it.withID())
	}
	m.host = widget.NewHost[int]("media", &adapter{m: m}, cfg.Options)

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

func (m *Model) Subscribe(fn func(Event)) (unsubscribe func()) { return m.events.Subscribe(fn) }
func (m *Model) Bridge(p pubsub.Publisher[Event])              { m.events.Bridge(p) }

func (m *Model) emit(kind event.Kind, index int, it Item, old string) {
	m.events.Emit(Event{Kind: kind, Index: index, Item: it, Old: old})
}

func (m *Model) Engine() *engine.Engine[int] { return m.host.Engine() }
func (m *Model) Mode() engine.Mode           { return m.host.Engine().Mode() }
func (m *Model) Focus()                      { m.host.Focus() }
func (m *Model) Blur()                       { m.host.Blur() }

func (m *Model) SetSize(width, height int) {
	m.host.SetSize(width, height)
	m.scroll.Follow(m.cursor, len(m.items), m.host.BodyHeight())
}

// AddItem appends it and returns the stored copy.
func (m *Model) AddItem(it Item) Item {
	return m.InsertItem(len(m.items), it)
}

// AddTextItem appends a text-only item.
func (m *Model) AddTextItem(text string) Item {
	return m.AddItem(Item{Text: text})
}

// AddImageItem appends an item showing the image at path with a caption.
func (m *Model) AddImageItem(path, text string) Item {
	return m.AddItem(Item{Text: text, Image: path})
}

// InsertItem inserts it at index, clamped to [0, len].
func (m *Model) InsertItem(index int, it Item) Item {
	it = it.withID()
	index = max(0, min(index, len(m.items)))
	m.items = slices.Insert(m.items, index, it)
	m.changed()
	m.emit(event.ItemAdded, index, it, "")
	return it
}

// UpdateItem replaces the text and image at index, keeping its ID.
func (m *Model) UpdateItem(index int, text, image string) {
	if index < 0 || index >= len(m.items) {
		return
	}
	old := m.items[index].Text
	m.items[index].Text = text
	m.items[index].Image = image
	m.changed()
	m.emit(event.ItemEdited, index, m.items[index], old)
}

// RemoveItem deletes the item at index.
func (m *Model) RemoveItem(index int) {
	if index < 0 || index >= len(m.items) {
		return
	}
	removed := m.items[index]
	m.items = slices.Delete(m.items, index, index+1)
	m.changed()
	m.emit(event.ItemDeleted, index, removed, "")
}

func (m *Model) Clear() {
	m.items = nil
	m.cursor = 0
	m.changed()
}

// Items returns a copy of the items.
func (m *Model) Items() []Item { return slices.Clone(m.items) }

func (m *Model) CurrentItem() (Item, bool) {
	if len(m.items) == 0 {
		return Item{}, false
	}
	return m.items[m.cursor], true
}

// CurrentIndex returns -1 when the list is empty.
func (m *Model) CurrentIndex() int {
	if len(m.items) == 0 {
		return -1
	}
	return m.cursor
}

func (m *Model) changed() {
	m.rebuild()
	m.host.Engine().InvalidateSearch()
}

func (m *Model) rebuild() {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		m.cursor = max(0, min(m.cursor, len(m.items)-1))
	}
	clear(m.meta)
	m.scroll.Follow(m.cursor, len(m.items), m.host.BodyHeight())
}

// describe returns the metadata line for an image path, memoized until the
// next rebuild.
func (m *Model) describe(path string) string {
	if s, ok := m.meta[path]; ok {
		return s
	}
	s := "unreadable"
	if info, err := m.resolver.Lookup(context.Background(), path); err == nil {
		s = info.Summary()
	} else {
		log.Debug(log.CatMedia, "no metadata", "path", path, "error", err)
	}
	m.meta[path] = s
	return s
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil
	case tea.MouseMsg:
		start, end := m.scroll.Window(len(m.items), m.host.BodyHeight())
		if i, ok := m.host.ClickedRow(msg, start, end); ok && m.host.Focused() && i != m.cursor {
			m.cursor = i
			m.emit(event.ItemSelected, i, m.items[i], "")
		}
		return m, nil
	}
	_, cmd := m.host.Update(msg)
	m.scroll.Follow(m.cursor, len(m.items), m.host.BodyHeight())
	return m, cmd
}
