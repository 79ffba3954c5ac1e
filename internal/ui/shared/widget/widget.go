// Package widget hosts an engine inside a Bubble Tea component. It routes key
// presses to the engine, schedules the chord sweep tick, shows notices as
// toasts and renders the modeline and mouse zones shared by the vim-style
// widgets.
package widget

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	zone "github.com/lrstanley/bubblezone"
	"go.opentelemetry.io/otel/trace"

	"github.com/zjrosen/vimkit/internal/engine"
	"github.com/zjrosen/vimkit/internal/log"
	"github.com/zjrosen/vimkit/internal/shared"
	"github.com/zjrosen/vimkit/internal/ui/shared/modeline"
	"github.com/zjrosen/vimkit/internal/ui/toaster"
)

// Options are the collaborators every vim-style widget accepts.
// Zero values fall back to the engine defaults.
type Options struct {
	Clock          shared.Clock
	Clipboard      shared.Clipboard
	Tracer         trace.Tracer
	Timeouts       engine.Timeouts
	TickInterval   time.Duration
	NoticeDuration time.Duration
}

// Host owns the engine of one widget instance and its chrome.
type Host[P comparable] struct {
	id     string
	name   string
	engine *engine.Engine[P]
	toast  toaster.Model

	tickInterval   time.Duration
	noticeDuration time.Duration
	ticking        bool

	focused    bool
	width      int
	height     int
	zonePrefix string
}

// NewHost binds adapter to a fresh engine. name labels logs and spans.
func NewHost[P comparable](name string, adapter engine.Adapter[P], opts Options) *Host[P] {
	id := uuid.NewString()
	if opts.TickInterval <= 0 {
		opts.TickInterval = engine.DefaultTickInterval
	}
	if opts.NoticeDuration <= 0 {
		opts.NoticeDuration = toaster.DefaultDuration
	}
	return &Host[P]{
		id:   id,
		name: name,
		engine: engine.New(adapter, engine.Config{
			Name:      name,
			Clipboard: opts.Clipboard,
			Clock:     opts.Clock,
			Tracer:    opts.Tracer,
			Timeouts:  opts.Timeouts,
		}),
		toast:          toaster.New(),
		tickInterval:   opts.TickInterval,
		noticeDuration: opts.NoticeDuration,
		focused:        true,
		zonePrefix:     zone.NewPrefix(),
	}
}

// ID uniquely identifies the widget instance in tick messages.
func (h *Host[P]) ID() string { return h.id }

// Engine returns the hosted engine.
func (h *Host[P]) Engine() *engine.Engine[P] { return h.engine }

// Focus lets the widget receive keys.
func (h *Host[P]) Focus() { h.focused = true }

// Blur makes the widget ignore keys. Any transient state is reset.
func (h *Host[P]) Blur() {
	h.focused = false
	h.engine.Reset()
}

// Focused reports whether the widget receives keys.
func (h *Host[P]) Focused() bool { return h.focused }

// SetSize records the outer dimensions of the widget.
func (h *Host[P]) SetSize(width, height int) {
	h.width = width
	h.height = height
}

// Width returns the outer width.
func (h *Host[P]) Width() int { return h.width }

// BodyHeight is the number of rows left for content under the modeline.
// Zero means unbounded.
func (h *Host[P]) BodyHeight() int {
	if h.height <= 1 {
		return 0
	}
	return h.height - 1
}

// Toast returns the current toast state.
func (h *Host[P]) Toast() toaster.Model { return h.toast }

// Update handles the messages a Host owns. handled is false for messages
// the widget should interpret itself.
func (h *Host[P]) Update(msg tea.Msg) (handled bool, cmd tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return h.handleKey(msg)
	case modeline.SweepMsg:
		if msg.ID != h.id {
			return false, nil
		}
		h.ticking = false
		out := h.engine.Sweep(h.engine.Now())
		return true, tea.Batch(h.notify(out.Notices), h.scheduleTick())
	case toaster.DismissMsg:
		h.toast = h.toast.Update(msg)
		return false, nil
	}
	return false, nil
}

func (h *Host[P]) handleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if !h.focused {
		return false, nil
	}
	before := h.engine.Mode()
	out := h.engine.HandleKey(msg)
	cmds := []tea.Cmd{h.notify(out.Notices), h.scheduleTick()}
	if after := h.engine.Mode(); after != before {
		id := h.id
		cmds = append(cmds, func() tea.Msg {
			return modeline.ModeChangeMsg{ID: id, Mode: after, Previous: before}
		})
	}
	return out.Handled, tea.Batch(cmds...)
}

// Notify shows notices raised outside of key handling, e.g. by the mutation API.
func (h *Host[P]) Notify(notices []engine.Notice) tea.Cmd {
	return h.notify(notices)
}

func (h *Host[P]) notify(notices []engine.Notice) tea.Cmd {
	if len(notices) == 0 {
		return nil
	}
	// Only the latest notice is visible; earlier ones are still logged.
	for _, n := range notices {
		log.Debug(log.CatEngine, "notice", "widget", h.name, "level", n.Level, "message", n.Message)
	}
	var cmd tea.Cmd
	h.toast, cmd = h.toast.ShowNotice(notices[len(notices)-1], h.noticeDuration)
	return cmd
}

// scheduleTick starts the sweep tick while a chord is pending. At most one
// tick is in flight per widget.
func (h *Host[P]) scheduleTick() tea.Cmd {
	if _, pending := h.engine.Pending(); !pending || h.ticking {
		return nil
	}
	h.ticking = true
	return modeline.Tick(h.id, h.tickInterval)
}

// Decorate appends the modeline to body and overlays the toast.
func (h *Host[P]) Decorate(body, position string) string {
	width := h.width
	if width <= 0 {
		width = 40
	}
	status := modeline.Render(modeline.FromEngine(h.engine, position, width))
	view := body + "\n" + status
	height := h.height
	if height <= 0 {
		height = strings.Count(view, "\n") + 1
	}
	return h.toast.Overlay(view, width, height)
}

// ZoneID names the mouse zone of row i.
func (h *Host[P]) ZoneID(i int) string {
	return fmt.Sprintf("%srow:%d", h.zonePrefix, i)
}

// MarkRow wraps a rendered row in its mouse zone.
func (h *Host[P]) MarkRow(i int, line string) string {
	return zone.Mark(h.ZoneID(i), line)
}

// ClickedRow returns the row index under a left click among rows [first, last).
func (h *Host[P]) ClickedRow(msg tea.MouseMsg, first, last int) (int, bool) {
	if msg.Button != tea.MouseButtonLeft || msg.Action != tea.MouseActionRelease {
		return 0, false
	}
	for i := first; i < last; i++ {
		if z := zone.Get(h.ZoneID(i)); z != nil && z.InBounds(msg) {
			return i, true
		}
	}
	return 0, false
}
