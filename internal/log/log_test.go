package log

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	restore := InitWriter(&buf)
	defaultLogger.now = func() time.Time {
		return time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	}
	t.Cleanup(restore)
	return &buf
}

func TestLog_Format(t *testing.T) {
	buf := captureLogs(t)

	Warn(CatTable, "refused delete", "row", 0, "rows", 1)

	require.Equal(t, "2025-01-15T12:00:00 [WARN] [table] refused delete row=0 rows=1\n", buf.String())
}

func TestLog_OrphanField(t *testing.T) {
	buf := captureLogs(t)

	Debug(CatChord, "started", "leader")

	require.Contains(t, buf.String(), "leader=<missing>")
}

func TestLog_ErrorErr(t *testing.T) {
	buf := captureLogs(t)

	ErrorErr(CatClipboard, "write failed", errors.New("no display"))
	ErrorErr(CatClipboard, "write failed", nil)

	require.Contains(t, buf.String(), "error=no display")
	require.Contains(t, buf.String(), "error=<nil>")
}

func TestLog_MinLevel(t *testing.T) {
	buf := captureLogs(t)
	SetMinLevel(LevelWarn)

	Debug(CatEngine, "hidden")
	Info(CatEngine, "hidden")
	Error(CatEngine, "shown")

	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "shown")
}

func TestLog_Disabled(t *testing.T) {
	buf := captureLogs(t)
	SetEnabled(false)

	Error(CatEngine, "nothing")

	require.Empty(t, buf.String())
}

func TestLog_NoLoggerIsSafe(t *testing.T) {
	prev := defaultLogger
	defaultLogger = nil
	t.Cleanup(func() { defaultLogger = prev })

	require.NotPanics(t, func() {
		Info(CatEngine, "dropped")
	})
	require.Nil(t, NewListener(context.Background()))
}

func TestLog_PublishesEntries(t *testing.T) {
	captureLogs(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch := defaultLogger.broker.Subscribe(ctx)

	Info(CatList, "item added", "index", 3)

	select {
	case ev := <-ch:
		require.Contains(t, ev.Payload, "[INFO] [list] item added index=3")
	case <-time.After(100 * time.Millisecond):
		require.Fail(t, "timeout waiting for log entry")
	}
}

func TestParseLevel(t *testing.T) {
	require.Equal(t, LevelInfo, ParseLevel("INFO"))
	require.Equal(t, LevelWarn, ParseLevel("warning"))
	require.Equal(t, LevelError, ParseLevel(" error "))
	require.Equal(t, LevelDebug, ParseLevel("verbose"))
}
