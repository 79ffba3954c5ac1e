// Package pubsub provides a generic publish/subscribe event system.
//
// Widgets publish their domain events (edits, selection, inserts, deletes,
// expand/collapse) through a Broker so hosts can consume them asynchronously
// from the Bubble Tea update loop. The logger publishes formatted lines the
// same way.
package pubsub

import (
	"context"
	"time"
)

// EventType represents the type of event being published.
type EventType string

const (
	EditedEvent    EventType = "edited"
	SelectedEvent  EventType = "selected"
	AddedEvent     EventType = "added"
	DeletedEvent   EventType = "deleted"
	ExpandedEvent  EventType = "expanded"
	CollapsedEvent EventType = "collapsed"
	ChangedEvent   EventType = "changed"
	LogEvent       EventType = "log"
)

// Event represents a published event with a typed payload.
type Event[T any] struct {
	Type      EventType
	Payload   T
	Timestamp time.Time
}

// Subscriber provides a subscription channel for events.
type Subscriber[T any] interface {
	Subscribe(ctx context.Context) <-chan Event[T]
}

// Publisher allows publishing events with a typed payload.
type Publisher[T any] interface {
	Publish(eventType EventType, payload T)
}
