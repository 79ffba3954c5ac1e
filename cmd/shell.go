package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/vimkit/internal/engine"
	"github.com/zjrosen/vimkit/internal/event"
	"github.com/zjrosen/vimkit/internal/log"
	"github.com/zjrosen/vimkit/internal/pubsub"
	"github.com/zjrosen/vimkit/internal/ui/overlay"
	"github.com/zjrosen/vimkit/internal/ui/shared/logoverlay"
	"github.com/zjrosen/vimkit/internal/ui/styles"
)

// chromeHeight is the title bar plus the event line.
const chromeHeight = 2

// bridger is implemented by every widget's event hub.
type bridger[E event.Kinded] interface {
	Bridge(p pubsub.Publisher[E])
}

// shell hosts one widget full screen. Widget events arrive asynchronously
// through a broker and the latest one is shown under the widget.
type shell[E event.Kinded] struct {
	title    string
	inner    tea.Model
	describe func(E) string

	broker   *pubsub.Broker[E]
	listener *pubsub.ContinuousListener[E]
	cancel   context.CancelFunc

	// logs is nil unless debug logging is on.
	logs    *log.Listener
	overlay logoverlay.Model

	// keys is nil for widgets that draw their own help.
	keys     help.KeyMap
	help     help.Model
	showHelp bool

	last   string
	width  int
	height int
}

func newShell[E event.Kinded](title string, inner tea.Model, hub bridger[E], describe func(E) string) *shell[E] {
	ctx, cancel := context.WithCancel(context.Background())
	broker := pubsub.NewBroker[E]()
	hub.Bridge(broker)
	return &shell[E]{
		title:    title,
		inner:    inner,
		describe: describe,
		broker:   broker,
		listener: pubsub.NewContinuousListener(ctx, broker),
		cancel:   cancel,
		logs:     log.NewListener(ctx),
		overlay:  logoverlay.New(logoverlay.DefaultCapacity),
	}
}

// withKeys lets ? show km over the widget.
func (s *shell[E]) withKeys(km help.KeyMap) *shell[E] {
	s.keys = km
	s.help = help.New()
	return s
}

func (s *shell[E]) Init() tea.Cmd {
	cmds := []tea.Cmd{s.inner.Init(), s.listener.Listen()}
	if s.logs != nil {
		cmds = append(cmds, s.logs.Listen())
	}
	return tea.Batch(cmds...)
}

func (s *shell[E]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width, s.height = msg.Width, msg.Height
		s.overlay.SetSize(msg.Width, msg.Height)
		return s.forward(tea.WindowSizeMsg{Width: msg.Width, Height: max(msg.Height-chromeHeight, 1)})

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return s, tea.Quit
		case "ctrl+l":
			if s.logs != nil {
				s.overlay.Toggle()
				return s, nil
			}
		}
		if s.overlay.Visible() {
			var cmd tea.Cmd
			s.overlay, cmd = s.overlay.Update(msg)
			return s, cmd
		}
		if s.showHelp {
			s.showHelp = false
			return s, nil
		}
		switch msg.String() {
		case "q":
			if !capturing(s.inner) {
				return s, tea.Quit
			}
		case "?":
			if s.keys != nil && !capturing(s.inner) {
				s.showHelp = true
				return s, nil
			}
		}

	case pubsub.Event[E]:
		s.last = s.describe(msg.Payload)
		log.Debug(log.CatEngine, "event", "widget", s.title, "event", s.last)
		return s, s.listener.Listen()

	case log.Entry:
		s.overlay.Append(msg.Payload)
		return s, s.logs.Listen()
	}
	return s.forward(msg)
}

func (s *shell[E]) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	s.inner, cmd = s.inner.Update(msg)
	return s, cmd
}

func (s *shell[E]) View() string {
	title := styles.HeaderStyle.Render(s.title)
	hints := "q quit · ? keys"
	if s.logs != nil {
		hints += " · ctrl+l logs"
	}
	footer := styles.MutedStyle.Render(hints)
	if s.last != "" {
		footer = styles.MutedStyle.Render(s.last)
	}
	view := strings.Join([]string{title, s.inner.View(), footer}, "\n")
	if s.showHelp {
		box := styles.BorderStyle.Padding(0, 1).Render(s.help.FullHelpView(s.keys.FullHelp()))
		view = overlay.Place(overlay.Config{Width: s.width, Height: s.height, Position: overlay.Center}, box, view)
	}
	return zone.Scan(s.overlay.Overlay(view))
}

// Close stops event delivery and releases the widget.
func (s *shell[E]) Close() error {
	s.cancel()
	s.broker.Close()
	if c, ok := s.inner.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// capturing reports whether the widget needs plain keys such as q, because
// it is editing, searching, selecting or showing an overlay.
func capturing(m tea.Model) bool {
	switch m := m.(type) {
	case interface{ Mode() engine.Mode }:
		return m.Mode() != engine.ModeNormal
	case interface{ Capturing() bool }:
		return m.Capturing()
	}
	return false
}

// run drives s as a full-screen program with mouse support.
func run[E event.Kinded](s *shell[E]) error {
	p := tea.NewProgram(s, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	if closeErr := s.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}
