// Package styles contains Lip Gloss style definitions shared by the widgets.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Text hierarchy
	TextPrimaryColor = lipgloss.AdaptiveColor{Light: "#1F2328", Dark: "#CCCCCC"}
	TextMutedColor   = lipgloss.AdaptiveColor{Light: "#8C8C8C", Dark: "#696969"}

	BorderDefaultColor = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#696969"}

	// Cursor and selection
	HighlightColor  = lipgloss.AdaptiveColor{Light: "#1E66F5", Dark: "#54A0FF"}
	VisualColor     = lipgloss.AdaptiveColor{Light: "#DCE6F7", Dark: "#2E3A59"}
	MatchColor      = lipgloss.AdaptiveColor{Light: "#DF8E1D", Dark: "#F9E2AF"}
	ZebraColor      = lipgloss.AdaptiveColor{Light: "#F2F2F2", Dark: "#1E1E1E"}
	MarkedColor     = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	HeaderColor     = lipgloss.AdaptiveColor{Light: "#8839EF", Dark: "#CBA6F7"}
	CursorTextColor = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}

	PendingChordColor = lipgloss.AdaptiveColor{Light: "#FE640B", Dark: "#FAB387"}

	// Mode badge backgrounds
	ModeNormalColor = lipgloss.AdaptiveColor{Light: "#1A5276", Dark: "#1A5276"}
	ModeInsertColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#2E8B57"}
	ModeVisualColor = lipgloss.AdaptiveColor{Light: "#8839EF", Dark: "#7D56F4"}
	ModeSearchColor = lipgloss.AdaptiveColor{Light: "#DF8E1D", Dark: "#B7791F"}

	// Toast notification colors
	ToastBorderSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	ToastBorderErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"}
	ToastBorderInfoColor    = lipgloss.AdaptiveColor{Light: "#54A0FF", Dark: "#54A0FF"}
	ToastBorderWarnColor    = lipgloss.AdaptiveColor{Light: "#FECA57", Dark: "#FECA57"}
)

// Styles built from the colors above. rebuildStyles refreshes them after a
// theme change.
var (
	CursorStyle       lipgloss.Style
	VisualStyle       lipgloss.Style
	MatchStyle        lipgloss.Style
	ZebraStyle        lipgloss.Style
	MarkedStyle       lipgloss.Style
	HeaderStyle       lipgloss.Style
	MutedStyle        lipgloss.Style
	PendingChordStyle lipgloss.Style
	StatusBarStyle    lipgloss.Style
	ModeBadgeStyle    lipgloss.Style
	BorderStyle       lipgloss.Style
)

func init() {
	rebuildStyles()
}

func rebuildStyles() {
	CursorStyle = lipgloss.NewStyle().
		Foreground(CursorTextColor).
		Background(HighlightColor).
		Bold(true)
	VisualStyle = lipgloss.NewStyle().Background(VisualColor)
	MatchStyle = lipgloss.NewStyle().Foreground(MatchColor).Underline(true)
	ZebraStyle = lipgloss.NewStyle().Background(ZebraColor)
	MarkedStyle = lipgloss.NewStyle().Foreground(MarkedColor).Bold(true)
	HeaderStyle = lipgloss.NewStyle().Foreground(HeaderColor).Bold(true)
	MutedStyle = lipgloss.NewStyle().Foreground(TextMutedColor)
	PendingChordStyle = lipgloss.NewStyle().Foreground(PendingChordColor).Bold(true)
	StatusBarStyle = lipgloss.NewStyle().Foreground(TextPrimaryColor).Padding(0, 1)
	ModeBadgeStyle = lipgloss.NewStyle().
		Foreground(CursorTextColor).
		Bold(true).
		Padding(0, 1)
	BorderStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderDefaultColor)
}
