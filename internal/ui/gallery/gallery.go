// Package gallery shows the images of one folder as a navigable grid with
// multi-select and a metadata viewer. The folder is rescanned on demand and,
// when watching, whenever its image files change.
package gallery

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/vimkit/internal/engine"
	"github.com/zjrosen/vimkit/internal/event"
	"github.com/zjrosen/vimkit/internal/imagemeta"
	"github.com/zjrosen/vimkit/internal/keys"
	"github.com/zjrosen/vimkit/internal/log"
	"github.com/zjrosen/vimkit/internal/pubsub"
	"github.com/zjrosen/vimkit/internal/ui/toaster"
	"github.com/zjrosen/vimkit/internal/watcher"
)

const cellWidth = 24

// Config configures a gallery.
type Config struct {
	Dir        string
	Extensions []string
	// Columns fixes the grid width. Zero derives it from the terminal width.
	Columns  int
	Watch    bool
	Debounce time.Duration
	Resolver *imagemeta.Resolver

	OnSelect           func(Event)
	OnActivate         func(Event)
	OnSelectionChanged func(Event)
}

// Model is the gallery widget.
type Model struct {
	dir      string
	exts     []string
	columns  int
	watch    bool
	debounce time.Duration

	images []string
	shown  []string
	cursor int
	marked map[string]bool

	filter    string
	filtering bool
	filterBuf string

	viewer   *viewer
	resolver *imagemeta.Resolver

	keys     keys.GalleryKeyMap
	help     help.Model
	showHelp bool
	toast    toaster.Model

	width, height int
	zonePrefix    string
	err           error

	events   *event.Hub[Event]
	watcher  *watcher.Watcher
	listener *pubsub.ContinuousListener[watcher.WatcherEvent]
	cancel   context.CancelFunc
}

// New creates a gallery and scans cfg.Dir once. A scan failure is shown in
// the view; Rescan may be retried later.
func New(cfg Config) *Model {
	def := watcher.DefaultConfig(cfg.Dir)
	if len(cfg.Extensions) == 0 {
		cfg.Extensions = def.Extensions
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = def.DebounceDur
	}
	if cfg.Resolver == nil {
		cfg.Resolver = imagemeta.NewResolver(0)
	}
	m := &Model{
		dir:        cfg.Dir,
		exts:       cfg.Extensions,
		columns:    cfg.Columns,
		watch:      cfg.Watch,
		debounce:   cfg.Debounce,
		marked:     make(map[string]bool),
		resolver:   cfg.Resolver,
		keys:       keys.Gallery(),
		help:       help.New(),
		toast:      toaster.New(),
		zonePrefix: zone.NewPrefix(),
		events:     event.NewHub[Event](),
	}

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
	hook(event.ImageSelected, cfg.OnSelect)
	hook(event.ImageActivated, cfg.OnActivate)
	hook(event.SelectionChanged, cfg.OnSelectionChanged)

	_ = m.Rescan()
	return m
}

func (m *Model) Subscribe(fn func(Event)) (unsubscribe func()) { return m.events.Subscribe(fn) }
func (m *Model) Bridge(p pubsub.Publisher[Event])              { m.events.Bridge(p) }

// Images returns the listed image paths, filter applied.
func (m *Model) Images() []string { return slices.Clone(m.shown) }

// Current returns the path under the cursor.
func (m *Model) Current() (string, bool) {
	if len(m.shown) == 0 {
		return "", false
	}
	return m.shown[m.cursor], true
}

// CurrentIndex returns -1 when no image is listed.
func (m *Model) CurrentIndex() int {
	if len(m.shown) == 0 {
		return -1
	}
	return m.cursor
}

// Marked returns the marked paths in folder order.
func (m *Model) Marked() []string {
	var out []string
	for _, p := range m.images {
		if m.marked[p] {
			out = append(out, p)
		}
	}
	return out
}

// ViewerOpen reports whether the metadata viewer is showing.
func (m *Model) ViewerOpen() bool { return m.viewer != nil }

// Capturing reports whether keys are consumed by the filter prompt or the
// viewer rather than the grid.
func (m *Model) Capturing() bool { return m.filtering || m.viewer != nil }

// Err returns the last scan error.
func (m *Model) Err() error { return m.err }

// Rescan reloads the folder. The cursor stays on its image when that image
// still exists, and marks of vanished images are dropped.
func (m *Model) Rescan() error {
	current, _ := m.Current()
	images, err := Scan(m.dir, m.exts)
	m.err = err
	if err != nil {
		log.ErrorErr(log.CatGallery, "scan failed", err, "dir", m.dir)
		images = nil
	}
	m.images = images

	dropped := false
	for p := range m.marked {
		if !slices.Contains(images, p) {
			delete(m.marked, p)
			dropped = true
		}
	}
	m.applyFilter(current)
	if dropped {
		m.emitMarks()
	}
	log.Debug(log.CatGallery, "scanned", "dir", m.dir, "images", len(images))
	return err
}

// applyFilter rebuilds the shown list and keeps the cursor on keep when it
// is still shown.
func (m *Model) applyFilter(keep string) {
	m.shown = m.shown[:0]
	needle := strings.ToLower(m.filter)
	for _, p := range m.images {
		if needle == "" || strings.Contains(strings.ToLower(filepath.Base(p)), needle) {
			m.shown = append(m.shown, p)
		}
	}
	if i := slices.Index(m.shown, keep); i >= 0 {
		m.cursor = i
	}
	m.cursor = max(0, min(m.cursor, len(m.shown)-1))
	if m.viewer != nil {
		if len(m.shown) == 0 {
			m.viewer = nil
		} else {
			m.openViewer()
		}
	}
}

func (m *Model) emitMarks() {
	m.events.Emit(Event{Kind: event.SelectionChanged, Index: m.CurrentIndex(), Marked: m.Marked()})
}

// cols is the grid width in cells.
func (m *Model) cols() int {
	if m.columns > 0 {
		return m.columns
	}
	return max(1, m.width/cellWidth)
}

func (m *Model) setCursor(i int) {
	if i < 0 || i >= len(m.shown) || i == m.cursor {
		return
	}
	m.cursor = i
	m.events.Emit(Event{Kind: event.ImageSelected, Index: i, Path: m.shown[i]})
	if m.viewer != nil {
		m.openViewer()
	}
}

// ToggleMark flips the mark of the current image.
func (m *Model) ToggleMark() {
	p, ok := m.Current()
	if !ok {
		return
	}
	if m.marked[p] {
		delete(m.marked, p)
	} else {
		m.marked[p] = true
	}
	m.emitMarks()
}

// MarkAll marks every listed image.
func (m *Model) MarkAll() {
	changed := false
	for _, p := range m.shown {
		if !m.marked[p] {
			m.marked[p] = true
			changed = true
		}
	}
	if changed {
		m.emitMarks()
	}
}

// ClearMarks unmarks everything.
func (m *Model) ClearMarks() {
	if len(m.marked) == 0 {
		return
	}
	clear(m.marked)
	m.emitMarks()
}

// Open shows the viewer for the current image.
func (m *Model) Open() {
	p, ok := m.Current()
	if !ok {
		return
	}
	m.openViewer()
	m.events.Emit(Event{Kind: event.ImageActivated, Index: m.cursor, Path: p})
}

func (m *Model) openViewer() {
	p := m.shown[m.cursor]
	info, err := m.resolver.Lookup(context.Background(), p)
	m.viewer = newViewer(p, info, err, m.cursor, len(m.shown), m.width, m.height)
}

// Close stops the folder watcher.
func (m *Model) Close() error {
	if m.cancel != nil {
		m.cancel()
	}
	if m.watcher != nil {
		return m.watcher.Stop()
	}
	return nil
}

// Init starts watching the folder when configured.
func (m *Model) Init() tea.Cmd {
	if !m.watch || m.err != nil {
		return nil
	}
	cfg := watcher.DefaultConfig(m.dir)
	cfg.Extensions = m.exts
	cfg.DebounceDur = m.debounce
	w, err := watcher.New(cfg)
	if err != nil {
		log.ErrorErr(log.CatGallery, "watcher unavailable", err, "dir", m.dir)
		return nil
	}
	if err := w.Start(); err != nil {
		log.ErrorErr(log.CatGallery, "watcher unavailable", err, "dir", m.dir)
		_ = w.Stop()
		return nil
	}
	ctx, cancel := context.WithCancel(context.Background())
	m.watcher, m.cancel = w, cancel
	m.listener = pubsub.NewContinuousListener(ctx, w.Broker())
	return m.listener.Listen()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		if m.viewer != nil {
			m.viewer.setSize(msg.Width, msg.Height)
		}
		return m, nil

	case pubsub.Event[watcher.WatcherEvent]:
		switch msg.Payload.Type {
		case watcher.FolderChanged:
			_ = m.Rescan()
		case watcher.WatcherError:
			cmd = m.notify(engine.NoticeWarn, "Watch error: "+msg.Payload.Error.Error())
		}
		if m.listener != nil {
			return m, tea.Batch(cmd, m.listener.Listen())
		}
		return m, cmd

	case toaster.DismissMsg:
		m.toast = m.toast.Update(msg)
		return m, nil

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		for i := range m.shown {
			if zone.Get(m.zoneID(i)).InBounds(msg) {
				m.setCursor(i)
				break
			}
		}
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.filtering {
		m.handleFilterKey(msg)
		return nil
	}
	if m.viewer != nil {
		m.handleViewerKey(msg)
		return nil
	}

	n := len(m.shown)
	switch {
	case key.Matches(msg, m.keys.Left):
		m.setCursor(m.cursor - 1)
	case key.Matches(msg, m.keys.Right):
		m.setCursor(m.cursor + 1)
	case key.Matches(msg, m.keys.Up):
		m.setCursor(m.cursor - m.cols())
	case key.Matches(msg, m.keys.Down):
		if m.cursor+m.cols() < n {
			m.setCursor(m.cursor + m.cols())
		}
	case key.Matches(msg, m.keys.Mark):
		m.ToggleMark()
	case key.Matches(msg, m.keys.MarkAll):
		m.MarkAll()
	case key.Matches(msg, m.keys.Open):
		m.Open()
	case key.Matches(msg, m.keys.Close):
		if m.filter != "" {
			m.filter = ""
			current, _ := m.Current()
			m.applyFilter(current)
			return nil
		}
		m.ClearMarks()
	case key.Matches(msg, m.keys.Rescan):
		if err := m.Rescan(); err != nil {
			return m.notify(engine.NoticeWarn, "Cannot read folder: "+err.Error())
		}
		return m.notify(engine.NoticeInfo, fmt.Sprintf("%d images", len(m.images)))
	case key.Matches(msg, m.keys.Filter):
		m.filtering = true
		m.filterBuf = m.filter
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
	}
	return nil
}

func (m *Model) notify(level engine.NoticeLevel, msg string) tea.Cmd {
	var cmd tea.Cmd
	m.toast, cmd = m.toast.ShowNotice(engine.Notice{Level: level, Message: msg}, toaster.DefaultDuration)
	return cmd
}

func (m *Model) handleFilterKey(msg tea.KeyMsg) {
	switch engine.KeyString(msg) {
	case engine.KeyEscape:
		m.filtering = false
	case engine.KeyEnter:
		m.filtering = false
		m.filter = strings.TrimSpace(m.filterBuf)
		current, _ := m.Current()
		m.applyFilter(current)
	case engine.KeyBackspace:
		m.filterBuf = engine.DropLastGrapheme(m.filterBuf)
	default:
		if text, ok := engine.TypedText(msg); ok {
			m.filterBuf += text
		}
	}
}

func (m *Model) handleViewerKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Close), key.Matches(msg, m.keys.Quit):
		m.viewer = nil
	case key.Matches(msg, m.keys.Left):
		m.setCursor(m.cursor - 1)
	case key.Matches(msg, m.keys.Right):
		m.setCursor(m.cursor + 1)
	default:
		m.viewer.update(msg)
	}
}
