package styles

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ThemeConfig mirrors config.ThemeConfig to avoid circular imports.
// Empty fields keep the default color.
type ThemeConfig struct {
	Highlight string
	Visual    string
	Muted     string
	Zebra     string
}

// ApplyTheme validates and applies custom theme colors, then rebuilds every
// derived style. Nothing is changed when any color is invalid.
func ApplyTheme(cfg ThemeConfig) error {
	fields := []struct {
		name  string
		value string
		dst   []*lipgloss.AdaptiveColor
	}{
		{"highlight", cfg.Highlight, []*lipgloss.AdaptiveColor{&HighlightColor}},
		{"visual", cfg.Visual, []*lipgloss.AdaptiveColor{&VisualColor}},
		{"muted", cfg.Muted, []*lipgloss.AdaptiveColor{&TextMutedColor, &BorderDefaultColor}},
		{"zebra", cfg.Zebra, []*lipgloss.AdaptiveColor{&ZebraColor}},
	}

	for _, f := range fields {
		if f.value != "" && !isValidHexColor(f.value) {
			return fmt.Errorf("invalid hex color for %s: %s", f.name, f.value)
		}
	}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		for _, dst := range f.dst {
			*dst = lipgloss.AdaptiveColor{Light: f.value, Dark: f.value}
		}
	}

	rebuildStyles()
	return nil
}

func isValidHexColor(s string) bool {
	if !strings.HasPrefix(s, "#") {
		return false
	}
	hex := s[1:]
	if len(hex) != 3 && len(hex) != 6 {
		return false
	}
	_, err := strconv.ParseUint(hex, 16, 64)
	return err == nil
}
