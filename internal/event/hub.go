package event

import "github.com/zjrosen/vimkit/internal/pubsub"

type listener[E any] struct {
	id int
	fn func(E)
}

// Hub is a multi-listener broadcaster. It is not safe for concurrent use.
type Hub[E Kinded] struct {
	next      int
	listeners []listener[E]
	broker    pubsub.Publisher[E]
}

// NewHub creates an empty hub.
func NewHub[E Kinded]() *Hub[E] {
	return &Hub[E]{}
}

// Subscribe registers fn and returns a function that removes it.
// Calling the returned function more than once is a no-op.
func (h *Hub[E]) Subscribe(fn func(E)) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	h.next++
	id := h.next
	h.listeners = append(h.listeners, listener[E]{id: id, fn: fn})
	return func() {
		for i, l := range h.listeners {
			if l.id == id {
				h.listeners = append(h.listeners[:i:i], h.listeners[i+1:]...)
				return
			}
		}
	}
}

// Bridge forwards every emitted event to p in addition to the listeners.
// Pass nil to detach.
func (h *Hub[E]) Bridge(p pubsub.Publisher[E]) {
	h.broker = p
}

// Emit delivers ev to every listener registered when Emit was called.
// A listener may unsubscribe itself or others while being notified.
func (h *Hub[E]) Emit(ev E) {
	snapshot := h.listeners
	for _, l := range snapshot {
		l.fn(ev)
	}
	if h.broker != nil {
		h.broker.Publish(ev.EventKind().EventType(), ev)
	}
}

// Len returns the number of listeners.
func (h *Hub[E]) Len() int {
	return len(h.listeners)
}
