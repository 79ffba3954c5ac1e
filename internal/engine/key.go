package engine

import (
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
)

// Registry key names for non-printable keys.
const (
	KeyEscape    = "<escape>"
	KeyEnter     = "<enter>"
	KeyBackspace = "<backspace>"
	KeySpace     = "<space>"
	KeyTab       = "<tab>"
	KeyUp        = "<up>"
	KeyDown      = "<down>"
	KeyLeft      = "<left>"
	KeyRight     = "<right>"
	KeyHome      = "<home>"
	KeyEnd       = "<end>"
	KeyCtrlC     = "<ctrl+c>"
	KeyRunes     = "<runes>"
)

// KeyString converts a tea.KeyMsg to a registry-compatible key string.
// Returns empty string for unhandled key types.
func KeyString(msg tea.KeyMsg) string {
	if msg.Alt {
		return ""
	}
	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) == 1 {
			return string(msg.Runes[0])
		}
		return KeyRunes
	case tea.KeyEscape:
		return KeyEscape
	case tea.KeyEnter:
		return KeyEnter
	case tea.KeyBackspace:
		return KeyBackspace
	case tea.KeySpace:
		return KeySpace
	case tea.KeyTab:
		return KeyTab
	case tea.KeyUp:
		return KeyUp
	case tea.KeyDown:
		return KeyDown
	case tea.KeyLeft:
		return KeyLeft
	case tea.KeyRight:
		return KeyRight
	case tea.KeyHome:
		return KeyHome
	case tea.KeyEnd:
		return KeyEnd
	case tea.KeyCtrlC:
		return KeyCtrlC
	default:
		return ""
	}
}

// TypedText returns the literal text a key contributes to an edit or search
// buffer. Line breaks and tabs become spaces so a value never splits the
// clipboard serialization; other control characters are dropped.
func TypedText(msg tea.KeyMsg) (string, bool) {
	switch msg.Type {
	case tea.KeySpace:
		return " ", true
	case tea.KeyRunes:
		if msg.Alt {
			return "", false
		}
		text := strings.Map(func(r rune) rune {
			switch {
			case r == '\n' || r == '\r' || r == '\t':
				return ' '
			case unicode.IsControl(r):
				return -1
			default:
				return r
			}
		}, string(msg.Runes))
		return text, text != ""
	default:
		return "", false
	}
}
