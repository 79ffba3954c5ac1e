package shared

import (
	"bytes"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var osc52Env = []string{"SSH_TTY", "SSH_CLIENT", "SSH_CONNECTION", "TMUX", "STY"}

func clearOSC52Env(t *testing.T) {
	t.Helper()
	for _, k := range osc52Env {
		t.Setenv(k, "")
	}
}

func TestShouldUseOSC52(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		expected bool
	}{
		{name: "no env vars set", envVars: map[string]string{}, expected: false},
		{name: "SSH_TTY set", envVars: map[string]string{"SSH_TTY": "/dev/pts/0"}, expected: true},
		{name: "SSH_CLIENT set", envVars: map[string]string{"SSH_CLIENT": "192.168.1.1 12345 22"}, expected: true},
		{name: "SSH_CONNECTION set", envVars: map[string]string{"SSH_CONNECTION": "192.168.1.1 12345 192.168.1.2 22"}, expected: true},
		{name: "TMUX set", envVars: map[string]string{"TMUX": "/tmp/tmux-1000/default,12345,0"}, expected: true},
		{name: "STY set (GNU screen)", envVars: map[string]string{"STY": "12345.pts-0.hostname"}, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearOSC52Env(t)
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}
			require.Equal(t, tt.expected, shouldUseOSC52())
		})
	}
}

func TestOSC52Clipboard_CopyWritesSequence(t *testing.T) {
	clearOSC52Env(t)
	var out bytes.Buffer
	cb := NewOSC52Clipboard(&out)

	require.NoError(t, cb.Copy("1\t2"))

	encoded := base64.StdEncoding.EncodeToString([]byte("1\t2"))
	require.True(t, strings.HasPrefix(out.String(), "\x1b]52;c;"), "got %q", out.String())
	require.Contains(t, out.String(), encoded)

	got, err := cb.Paste()
	require.NoError(t, err)
	require.Equal(t, "1\t2", got)
}

func TestOSC52Clipboard_TmuxPassthrough(t *testing.T) {
	clearOSC52Env(t)
	t.Setenv("TMUX", "/tmp/tmux")

	cb := NewOSC52Clipboard(&bytes.Buffer{})
	seq := cb.Sequence("hello")

	require.True(t, strings.HasPrefix(seq, "\x1bPtmux;"), "got %q", seq)
	require.Contains(t, seq, base64.StdEncoding.EncodeToString([]byte("hello")))
}

func TestMemoryClipboard(t *testing.T) {
	cb := &MemoryClipboard{}

	got, err := cb.Paste()
	require.NoError(t, err)
	require.Empty(t, got)

	require.NoError(t, cb.Copy("a\nb"))
	got, err = cb.Paste()
	require.NoError(t, err)
	require.Equal(t, "a\nb", got)
}

func TestNewClipboard_Modes(t *testing.T) {
	clearOSC52Env(t)

	require.IsType(t, &MemoryClipboard{}, NewClipboard(ClipboardMemory, nil))
	require.IsType(t, &OSC52Clipboard{}, NewClipboard(ClipboardOSC52, nil))
	require.IsType(t, SystemClipboard{}, NewClipboard("SYSTEM", nil))

	t.Setenv("SSH_TTY", "/dev/pts/3")
	require.IsType(t, &OSC52Clipboard{}, NewClipboard(ClipboardAuto, nil))
}
