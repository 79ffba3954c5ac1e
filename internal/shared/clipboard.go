package shared

import (
	"errors"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/atotto/clipboard"
	osc52 "github.com/aymanbagabas/go-osc52/v2"
)

// ErrClipboardUnavailable is returned when no system clipboard utility exists.
var ErrClipboardUnavailable = errors.New("system clipboard unavailable")

// Clipboard defines the interface for clipboard operations.
type Clipboard interface {
	Copy(text string) error
	Paste() (string, error)
}

// Clipboard modes accepted by NewClipboard.
const (
	ClipboardAuto   = "auto"
	ClipboardSystem = "system"
	ClipboardOSC52  = "osc52"
	ClipboardMemory = "memory"
)

// NewClipboard builds the clipboard named by mode. "auto" prefers OSC52 inside
// SSH, tmux and screen sessions where the local clipboard is out of reach.
// Escape sequences are written to out (stderr when nil).
func NewClipboard(mode string, out io.Writer) Clipboard {
	if out == nil {
		out = os.Stderr
	}
	switch strings.ToLower(mode) {
	case ClipboardMemory:
		return &MemoryClipboard{}
	case ClipboardOSC52:
		return NewOSC52Clipboard(out)
	case ClipboardSystem:
		return SystemClipboard{}
	default:
		if shouldUseOSC52() || clipboard.Unsupported {
			return NewOSC52Clipboard(out)
		}
		return SystemClipboard{}
	}
}

// shouldUseOSC52 reports whether we are likely attached to a remote or
// multiplexed terminal.
func shouldUseOSC52() bool {
	for _, env := range []string{"SSH_TTY", "SSH_CLIENT", "SSH_CONNECTION", "TMUX", "STY"} {
		if os.Getenv(env) != "" {
			return true
		}
	}
	return false
}

// SystemClipboard implements Clipboard using the OS clipboard utilities
// (pbcopy/pbpaste, xclip/xsel/wl-clipboard, Windows API).
type SystemClipboard struct{}

// Copy copies text to the system clipboard.
func (SystemClipboard) Copy(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnavailable
	}
	return clipboard.WriteAll(text)
}

// Paste reads the system clipboard.
func (SystemClipboard) Paste() (string, error) {
	if clipboard.Unsupported {
		return "", ErrClipboardUnavailable
	}
	return clipboard.ReadAll()
}

// OSC52Clipboard copies by emitting an OSC 52 escape sequence to the terminal.
// Terminals do not answer reads reliably, so Paste returns the last text this
// process copied.
type OSC52Clipboard struct {
	mu     sync.Mutex
	out    io.Writer
	tmux   bool
	screen bool
	last   string
}

// NewOSC52Clipboard writes sequences to out, wrapping them for tmux or screen
// when those multiplexers are detected.
func NewOSC52Clipboard(out io.Writer) *OSC52Clipboard {
	return &OSC52Clipboard{
		out:    out,
		tmux:   os.Getenv("TMUX") != "",
		screen: os.Getenv("STY") != "",
	}
}

// Sequence returns the escape sequence Copy would write for text.
func (c *OSC52Clipboard) Sequence(text string) string {
	seq := osc52.New(text)
	switch {
	case c.tmux:
		seq = seq.Tmux()
	case c.screen:
		seq = seq.Screen()
	}
	return seq.String()
}

// Copy writes the OSC 52 sequence and remembers text for Paste.
func (c *OSC52Clipboard) Copy(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.last = text
	_, err := io.WriteString(c.out, c.Sequence(text))
	return err
}

// Paste returns the last copied text.
func (c *OSC52Clipboard) Paste() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last, nil
}

// MemoryClipboard is a process-local clipboard. Widgets created in the same
// process can share one to exchange content; tests use it directly.
type MemoryClipboard struct {
	mu   sync.Mutex
	text string
}

// Copy stores text.
func (c *MemoryClipboard) Copy(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.text = text
	return nil
}

// Paste returns the stored text.
func (c *MemoryClipboard) Paste() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.text, nil
}
