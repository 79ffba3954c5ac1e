package modeline

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/vimkit/internal/engine"
)

func TestRender_NormalWithPosition(t *testing.T) {
	out := Render(Status{Mode: engine.ModeNormal, Position: "2/3", Width: 30})

	require.Contains(t, out, "NORMAL")
	require.Contains(t, out, "2/3")
	require.Equal(t, 30, lipgloss.Width(out))
}

func TestRender_PendingChord(t *testing.T) {
	out := Render(Status{Mode: engine.ModeNormal, Pending: "d", Width: 30})

	require.Regexp(t, `NORMAL +d`, out)
}

func TestRender_InsertShowsBuffer(t *testing.T) {
	out := Render(Status{Mode: engine.ModeInsert, Prompt: "New item: ", Buffer: "milk", Width: 40})

	require.Contains(t, out, "INSERT")
	require.Contains(t, out, "New item: milk█")
}

func TestRender_Matches(t *testing.T) {
	out := Render(Status{Mode: engine.ModeNormal, Query: "ban", MatchIndex: 1, MatchCount: 2, Width: 40})

	require.Contains(t, out, "[2/2] ban")
}

func TestRender_NarrowWidthTruncates(t *testing.T) {
	out := Render(Status{Mode: engine.ModeVisualLine, Position: "10/10", Width: 8})

	require.LessOrEqual(t, lipgloss.Width(out), 8)
}

func TestModeColor(t *testing.T) {
	require.Equal(t, ModeColor(engine.ModeVisual), ModeColor(engine.ModeVisualLine))
	require.NotEqual(t, ModeColor(engine.ModeNormal), ModeColor(engine.ModeInsert))
}

func TestTick(t *testing.T) {
	msg := Tick("list-1", time.Millisecond)()

	sweep, ok := msg.(SweepMsg)
	require.True(t, ok)
	require.Equal(t, "list-1", sweep.ID)
	require.False(t, sweep.Time.IsZero())

	var _ tea.Msg = ModeChangeMsg{}
}
