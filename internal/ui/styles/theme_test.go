package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"
)

func restoreTheme(t *testing.T) {
	t.Helper()
	highlight, visual, muted, border, zebra := HighlightColor, VisualColor, TextMutedColor, BorderDefaultColor, ZebraColor
	t.Cleanup(func() {
		HighlightColor, VisualColor, TextMutedColor, BorderDefaultColor, ZebraColor = highlight, visual, muted, border, zebra
		rebuildStyles()
	})
}

func TestApplyTheme(t *testing.T) {
	restoreTheme(t)

	err := ApplyTheme(ThemeConfig{Highlight: "#FF0000", Muted: "#333"})
	require.NoError(t, err)

	require.Equal(t, lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF0000"}, HighlightColor)
	require.Equal(t, lipgloss.AdaptiveColor{Light: "#333", Dark: "#333"}, TextMutedColor)
	require.Equal(t, TextMutedColor, BorderDefaultColor)
	require.Equal(t, HighlightColor, CursorStyle.GetBackground())
}

func TestApplyTheme_InvalidLeavesDefaults(t *testing.T) {
	restoreTheme(t)
	before := HighlightColor

	err := ApplyTheme(ThemeConfig{Highlight: "#00FF00", Visual: "blue"})

	require.EqualError(t, err, "invalid hex color for visual: blue")
	require.Equal(t, before, HighlightColor)
}

func TestIsValidHexColor(t *testing.T) {
	for _, ok := range []string{"#fff", "#A0B1C2"} {
		require.True(t, isValidHexColor(ok), ok)
	}
	for _, bad := range []string{"fff", "#ff", "#GGGGGG", "#1234567"} {
		require.False(t, isValidHexColor(bad), bad)
	}
}
