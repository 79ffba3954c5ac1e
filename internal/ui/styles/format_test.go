package styles

import (
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/require"
)

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		expected string
	}{
		{"fits", "hello", 10, "hello"},
		{"exact", "hello", 5, "hello"},
		{"truncated", "hello world", 8, "hello..."},
		{"tiny width", "hello", 2, ".."},
		{"zero width", "hello", 0, ""},
		{"wide runes", "日本語テキスト", 7, "日本..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, TruncateString(tt.input, tt.width))
		})
	}
}

func TestFitCell(t *testing.T) {
	require.Equal(t, "ab   ", FitCell("ab", 5))
	require.Equal(t, "ab...", FitCell("abcdefgh", 5))
	require.Equal(t, 6, runewidth.StringWidth(FitCell("日本語テキスト", 6)))
	require.Empty(t, FitCell("x", 0))
}
