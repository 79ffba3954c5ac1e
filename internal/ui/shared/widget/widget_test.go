package widget

import (
	"os"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/vimkit/internal/engine"
	"github.com/zjrosen/vimkit/internal/register"
	"github.com/zjrosen/vimkit/internal/shared"
	"github.com/zjrosen/vimkit/internal/ui/shared/modeline"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	os.Exit(m.Run())
}

// single is an adapter over one undeletable value.
type single struct {
	value string
}

func (s *single) Len() int                                      { return 1 }
func (s *single) Cursor() (int, bool)                           { return 0, true }
func (s *single) SetCursor(int)                                 {}
func (s *single) Move(engine.Direction) bool                    { return false }
func (s *single) First() (int, bool)                            { return 0, true }
func (s *single) Last() (int, bool)                             { return 0, true }
func (s *single) Positions() []int                              { return []int{0} }
func (s *single) Text(int) string                               { return s.value }
func (s *single) Rebuild()                                      {}
func (s *single) Commit(_ int, v string)                        { s.value = v }
func (s *single) Insert(engine.Placement, string) bool          { return false }
func (s *single) Delete(int) error                              { return engine.Refuse("Cannot delete the last remaining row") }
func (s *single) Yank(int) register.Payload                     { return register.Scalar(s.value) }
func (s *single) Paste(engine.Placement, register.Payload) bool { return false }
func (s *single) YankSpan(int, int, engine.Mode) register.Payload {
	return register.Scalar(s.value)
}
func (s *single) DeleteSpan(int, int, engine.Mode) error { return nil }
func (s *single) Focused(int)                            {}

func key(r string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(r)}
}

func newHost(t *testing.T) (*Host[int], *shared.ManualClock) {
	t.Helper()
	clock := shared.NewManualClock(time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC))
	h := NewHost[int]("test", &single{value: "a"}, Options{Clock: clock, TickInterval: time.Millisecond})
	return h, clock
}

func TestHost_TickScheduledOnlyWhilePending(t *testing.T) {
	h, clock := newHost(t)

	handled, cmd := h.Update(key("d"))
	require.True(t, handled)
	require.NotNil(t, cmd)
	require.True(t, h.ticking)

	// A second leader does not schedule another tick.
	_, _ = h.Update(key("y"))
	require.True(t, h.ticking)

	clock.Advance(2 * time.Second)
	handled, _ = h.Update(modeline.SweepMsg{ID: h.ID()})
	require.True(t, handled)
	require.False(t, h.ticking)
	_, pending := h.Engine().Pending()
	require.False(t, pending)
}

func TestHost_SweepIgnoresOtherWidgets(t *testing.T) {
	h, _ := newHost(t)

	handled, cmd := h.Update(modeline.SweepMsg{ID: "someone-else"})

	require.False(t, handled)
	require.Nil(t, cmd)
}

func TestHost_SweepReschedulesWhilePending(t *testing.T) {
	h, _ := newHost(t)
	h.Update(key("g"))

	handled, cmd := h.Update(modeline.SweepMsg{ID: h.ID()})

	require.True(t, handled)
	require.NotNil(t, cmd)
	require.True(t, h.ticking)
}

func TestHost_NoticeBecomesToast(t *testing.T) {
	h, _ := newHost(t)

	h.Update(key("x"))

	require.True(t, h.Toast().Visible())
	require.Equal(t, "Cannot delete the last remaining row", h.Toast().Message())
}

func TestHost_BlurIgnoresKeys(t *testing.T) {
	h, _ := newHost(t)
	h.Update(key("d"))

	h.Blur()
	handled, _ := h.Update(key("v"))

	require.False(t, handled)
	require.Equal(t, engine.ModeNormal, h.Engine().Mode())
	_, pending := h.Engine().Pending()
	require.False(t, pending, "blur resets transient state")

	h.Focus()
	handled, _ = h.Update(key("v"))
	require.True(t, handled)
}

func TestHost_ModeChangeMsg(t *testing.T) {
	h, _ := newHost(t)

	_, cmd := h.Update(key("v"))
	require.NotNil(t, cmd)

	msgs := collect(cmd)
	var change *modeline.ModeChangeMsg
	for _, m := range msgs {
		if c, ok := m.(modeline.ModeChangeMsg); ok {
			change = &c
		}
	}
	require.NotNil(t, change)
	require.Equal(t, engine.ModeVisual, change.Mode)
	require.Equal(t, engine.ModeNormal, change.Previous)
	require.Equal(t, h.ID(), change.ID)
}

func TestHost_DecorateAddsModeline(t *testing.T) {
	h, _ := newHost(t)
	h.SetSize(30, 3)

	view := h.Decorate("a\nb", "1/1")

	require.Contains(t, view, "NORMAL")
	require.Contains(t, view, "1/1")
	require.Equal(t, 2, h.BodyHeight())
}

func TestScroll_Follow(t *testing.T) {
	var s Scroll

	s.Follow(5, 10, 3)
	require.Equal(t, 3, s.Top)
	start, end := s.Window(10, 3)
	require.Equal(t, 3, start)
	require.Equal(t, 6, end)

	s.Follow(0, 10, 3)
	require.Equal(t, 0, s.Top)

	s.Top = 9
	s.Follow(9, 4, 3)
	require.Equal(t, 1, s.Top)

	s.Follow(2, 10, 0)
	start, end = s.Window(10, 0)
	require.Equal(t, 0, start)
	require.Equal(t, 10, end)
}

// collect runs cmd and flattens batches, skipping ticks.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}
