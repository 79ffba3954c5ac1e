package event

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/vimkit/internal/pubsub"
)

type testEvent struct {
	kind  Kind
	value string
}

func (e testEvent) EventKind() Kind { return e.kind }

func TestHub_BroadcastsInOrder(t *testing.T) {
	hub := NewHub[testEvent]()
	var got []string

	hub.Subscribe(func(e testEvent) { got = append(got, "first:"+e.value) })
	hub.Subscribe(func(e testEvent) { got = append(got, "second:"+e.value) })

	hub.Emit(testEvent{kind: ItemAdded, value: "x"})

	require.Equal(t, []string{"first:x", "second:x"}, got)
}

func TestHub_Unsubscribe(t *testing.T) {
	hub := NewHub[testEvent]()
	var calls int

	unsub := hub.Subscribe(func(testEvent) { calls++ })
	hub.Emit(testEvent{})
	unsub()
	unsub()
	hub.Emit(testEvent{})

	require.Equal(t, 1, calls)
	require.Zero(t, hub.Len())
}

func TestHub_UnsubscribeDuringEmit(t *testing.T) {
	hub := NewHub[testEvent]()
	var calls []string

	var unsubFirst func()
	unsubFirst = hub.Subscribe(func(testEvent) {
		calls = append(calls, "first")
		unsubFirst()
	})
	hub.Subscribe(func(testEvent) { calls = append(calls, "second") })

	hub.Emit(testEvent{})
	hub.Emit(testEvent{})

	require.Equal(t, []string{"first", "second", "second"}, calls)
}

func TestHub_NilListener(t *testing.T) {
	hub := NewHub[testEvent]()

	unsub := hub.Subscribe(nil)
	unsub()

	require.Zero(t, hub.Len())
	require.NotPanics(t, func() { hub.Emit(testEvent{}) })
}

func TestHub_BridgeToBroker(t *testing.T) {
	hub := NewHub[testEvent]()
	broker := pubsub.NewBroker[testEvent]()
	defer broker.Close()
	hub.Bridge(broker)

	ch := broker.Subscribe(context.Background())
	hub.Emit(testEvent{kind: NodeCollapsed, value: "root"})

	select {
	case ev := <-ch:
		require.Equal(t, pubsub.CollapsedEvent, ev.Type)
		require.Equal(t, "root", ev.Payload.value)
	case <-time.After(100 * time.Millisecond):
		require.Fail(t, "timeout waiting for bridged event")
	}
}

func TestKind_EventType(t *testing.T) {
	tests := map[Kind]pubsub.EventType{
		ItemEdited:       pubsub.EditedEvent,
		CellEdited:       pubsub.EditedEvent,
		ItemSelected:     pubsub.SelectedEvent,
		ItemAdded:        pubsub.AddedEvent,
		ItemDeleted:      pubsub.DeletedEvent,
		NodeExpanded:     pubsub.ExpandedEvent,
		NodeCollapsed:    pubsub.CollapsedEvent,
		SelectionChanged: pubsub.ChangedEvent,
	}
	for kind, want := range tests {
		require.Equal(t, want, kind.EventType(), kind.String())
	}
}
