package toaster

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/vimkit/internal/engine"
)

func TestNew(t *testing.T) {
	m := New()

	assert.False(t, m.Visible())
	assert.Empty(t, m.View())
}

func TestShow_ReplacesExisting(t *testing.T) {
	m := New().
		Show("First", StyleInfo).
		Show("Second", StyleWarn)

	assert.True(t, m.Visible())
	assert.Contains(t, m.View(), "Second")
	assert.NotContains(t, m.View(), "First")
}

func TestView_Styles(t *testing.T) {
	tests := []struct {
		style Style
		icon  string
	}{
		{StyleSuccess, "✅"},
		{StyleError, "❌"},
		{StyleInfo, "ℹ️"},
		{StyleWarn, "⚠️"},
	}
	for _, tt := range tests {
		view := New().Show("msg", tt.style).View()
		assert.Contains(t, view, tt.icon)
		assert.Contains(t, view, "msg")
		assert.Contains(t, view, "╭")
	}
}

func TestShowNotice(t *testing.T) {
	m, cmd := New().ShowNotice(engine.Notice{Level: engine.NoticeWarn, Message: "Cannot delete the last remaining row"}, time.Millisecond)

	require.NotNil(t, cmd)
	assert.True(t, m.Visible())
	assert.Equal(t, "Cannot delete the last remaining row", m.Message())
	assert.Contains(t, m.View(), "⚠️")

	msg := cmd()
	m = m.Update(msg)
	assert.False(t, m.Visible())
}

func TestUpdate_IgnoresStaleDismiss(t *testing.T) {
	m, first := New().ShowNotice(engine.Notice{Message: "one"}, time.Millisecond)
	m, _ = m.ShowNotice(engine.Notice{Message: "two"}, time.Millisecond)

	m = m.Update(first())

	assert.True(t, m.Visible())
	assert.Equal(t, "two", m.Message())
}

func TestStyleFor(t *testing.T) {
	assert.Equal(t, StyleInfo, StyleFor(engine.NoticeInfo))
	assert.Equal(t, StyleWarn, StyleFor(engine.NoticeWarn))
}

func TestOverlay_NotVisibleReturnsBackground(t *testing.T) {
	bg := "Background\nContent"

	assert.Equal(t, bg, New().Overlay(bg, 20, 10))
}

func TestOverlay_PlacesBottomRight(t *testing.T) {
	m := New().Show("Toast", StyleInfo)
	bg := strings.TrimSuffix(strings.Repeat(strings.Repeat(".", 30)+"\n", 10), "\n")

	lines := strings.Split(m.Overlay(bg, 30, 10), "\n")

	require.Len(t, lines, 10)
	assert.Contains(t, lines[8], "Toast")
	assert.True(t, strings.HasSuffix(lines[9], "."), "right padding keeps the last column")
}
