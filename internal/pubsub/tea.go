package pubsub

import (
	"context"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
)

// ContinuousListener turns one subscription into a stream of tea.Msgs.
// Hosts re-issue Listen after each delivered Event. Once the subscription
// ends, Listen returns a nil tea.Cmd so no reader goroutine is left waiting.
type ContinuousListener[T any] struct {
	ctx    context.Context
	ch     <-chan Event[T]
	closed atomic.Bool
}

// NewContinuousListener subscribes to sub for the lifetime of ctx.
func NewContinuousListener[T any](ctx context.Context, sub Subscriber[T]) *ContinuousListener[T] {
	return &ContinuousListener[T]{
		ctx: ctx,
		ch:  sub.Subscribe(ctx),
	}
}

// Listen reads the next event. The returned command yields the Event[T], or
// nil when ctx is cancelled or the broker closes.
func (l *ContinuousListener[T]) Listen() tea.Cmd {
	if l.Closed() {
		return nil
	}
	return func() tea.Msg {
		select {
		case <-l.ctx.Done():
			l.closed.Store(true)
			return nil
		case ev, ok := <-l.ch:
			if !ok {
				l.closed.Store(true)
				return nil
			}
			return ev
		}
	}
}

// Closed reports whether the subscription has ended.
func (l *ContinuousListener[T]) Closed() bool {
	return l.closed.Load() || l.ctx.Err() != nil
}
