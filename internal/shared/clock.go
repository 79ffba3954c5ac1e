// Package shared provides the small collaborators every widget is handed:
// a Clock for chord timing and a Clipboard for the register bridge.
package shared

import "time"

// Clock provides the current time. Use RealClock for production
// and mocks.MockClock for testing.
type Clock interface {
	Now() time.Time
}

// RealClock returns the actual current time.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time { return time.Now() }

// ManualClock is a settable clock for demos and deterministic property tests.
// The zero value reports the zero time until Set or Advance is called.
type ManualClock struct {
	now time.Time
}

// NewManualClock returns a clock frozen at t.
func NewManualClock(t time.Time) *ManualClock {
	return &ManualClock{now: t}
}

// Now returns the frozen time.
func (c *ManualClock) Now() time.Time { return c.now }

// Set moves the clock to t.
func (c *ManualClock) Set(t time.Time) { c.now = t }

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) { c.now = c.now.Add(d) }
