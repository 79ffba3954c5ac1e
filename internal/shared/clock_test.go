package shared

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRealClock_Now(t *testing.T) {
	before := time.Now()
	got := RealClock{}.Now()
	require.False(t, got.Before(before))
}

func TestManualClock(t *testing.T) {
	start := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	c := NewManualClock(start)
	require.Equal(t, start, c.Now())

	c.Advance(1500 * time.Millisecond)
	require.Equal(t, start.Add(1500*time.Millisecond), c.Now())

	c.Set(start)
	require.Equal(t, start, c.Now())
}
