package engine

import (
	"time"

	"github.com/zjrosen/vimkit/internal/log"
)

// Default chord windows.
const (
	DefaultDeleteTimeout = 1000 * time.Millisecond
	DefaultCopyTimeout   = 1000 * time.Millisecond
	DefaultGoTimeout     = 500 * time.Millisecond
	DefaultTickInterval  = 100 * time.Millisecond
)

// Timeouts configures how long each chord leader waits for its follower.
type Timeouts struct {
	Delete time.Duration
	Copy   time.Duration
	Go     time.Duration
}

// DefaultTimeouts returns the standard chord windows.
func DefaultTimeouts() Timeouts {
	return Timeouts{
		Delete: DefaultDeleteTimeout,
		Copy:   DefaultCopyTimeout,
		Go:     DefaultGoTimeout,
	}
}

func (t Timeouts) withDefaults() Timeouts {
	d := DefaultTimeouts()
	if t.Delete <= 0 {
		t.Delete = d.Delete
	}
	if t.Copy <= 0 {
		t.Copy = d.Copy
	}
	if t.Go <= 0 {
		t.Go = d.Go
	}
	return t
}

// MismatchPolicy decides what happens to a key that does not complete a pending chord.
type MismatchPolicy int

const (
	// MismatchConsume clears the chord and swallows the key.
	MismatchConsume MismatchPolicy = iota
	// MismatchReprocess clears the chord and dispatches the key normally.
	MismatchReprocess
	// MismatchExpire runs the chord's Expire command, then dispatches the key normally.
	MismatchExpire
)

// Chord is a two-key command family sharing one leader key.
// Expire runs when the window lapses; a nil Expire discards the chord.
type Chord[P comparable] struct {
	Leader    string
	Timeout   time.Duration
	Followers map[string]Command[P]
	Expire    Command[P]
	Mismatch  MismatchPolicy
}

type pendingChord[P comparable] struct {
	chord   *Chord[P]
	started time.Time
}

// RegisterChord installs or replaces the chord for c.Leader.
func (e *Engine[P]) RegisterChord(c *Chord[P]) {
	if c.Followers == nil {
		c.Followers = make(map[string]Command[P])
	}
	e.chords[c.Leader] = c
}

// Chord returns the chord registered for leader so callers can add followers.
func (e *Engine[P]) Chord(leader string) (*Chord[P], bool) {
	c, ok := e.chords[leader]
	return c, ok
}

// Pending returns the leader key of the chord awaiting its second key.
func (e *Engine[P]) Pending() (string, bool) {
	if e.pending == nil {
		return "", false
	}
	return e.pending.chord.Leader, true
}

// Sweep expires a pending chord whose window has lapsed at now. Hosts call it
// from a periodic tick; HandleKey also sweeps before dispatching so a stale
// leader can never complete a chord.
func (e *Engine[P]) Sweep(now time.Time) Outcome {
	expired := e.sweep(now)
	return e.outcome(expired)
}

func (e *Engine[P]) sweep(now time.Time) bool {
	p := e.pending
	if p == nil || now.Sub(p.started) <= p.chord.Timeout {
		return false
	}
	e.pending = nil
	log.Debug(log.CatChord, "chord expired",
		"widget", e.name,
		"leader", p.chord.Leader,
		"elapsed", now.Sub(p.started),
		"commit", p.chord.Expire != nil)
	if p.chord.Expire != nil {
		e.execute(p.chord.Expire)
	}
	return true
}

func (e *Engine[P]) startChord(c *Chord[P]) {
	e.pending = &pendingChord[P]{chord: c, started: e.clock.Now()}
	log.Debug(log.CatChord, "chord started", "widget", e.name, "leader", c.Leader, "timeout", c.Timeout)
}

// resolveChord consumes the pending chord with key. It returns handled=true
// when key has been fully dealt with, or false when it must be dispatched.
func (e *Engine[P]) resolveChord(key string) bool {
	p := e.pending
	e.pending = nil

	if key == KeyEscape {
		log.Debug(log.CatChord, "chord cancelled", "widget", e.name, "leader", p.chord.Leader)
		return true
	}
	if cmd, ok := p.chord.Followers[key]; ok {
		e.execute(cmd)
		return true
	}

	log.Debug(log.CatChord, "chord mismatch", "widget", e.name, "leader", p.chord.Leader, "key", key)
	switch p.chord.Mismatch {
	case MismatchReprocess:
		return false
	case MismatchExpire:
		if p.chord.Expire != nil {
			e.execute(p.chord.Expire)
		}
		return false
	default:
		return true
	}
}
