package pubsub

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestContinuousListener_ReceivesEvent(t *testing.T) {
	broker := NewBroker[string]()
	defer broker.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	listener := NewContinuousListener(ctx, broker)
	broker.Publish(EditedEvent, "hello world")

	event, ok := listener.Listen()().(Event[string])
	require.True(t, ok, "msg should be Event[string]")
	require.Equal(t, "hello world", event.Payload)
	require.Equal(t, EditedEvent, event.Type)
	require.False(t, listener.Closed())
}

func TestContinuousListener_ContextCancelled(t *testing.T) {
	broker := NewBroker[string]()
	defer broker.Close()

	ctx, cancel := context.WithCancel(context.Background())
	listener := NewContinuousListener(ctx, broker)
	cmd := listener.Listen()
	cancel()

	require.Nil(t, cmd())
	require.True(t, listener.Closed())
	require.Nil(t, listener.Listen(), "no reads are scheduled after cancellation")
}

func TestContinuousListener_BrokerClosed(t *testing.T) {
	broker := NewBroker[string]()
	listener := NewContinuousListener(context.Background(), broker)
	broker.Close()

	require.Nil(t, listener.Listen()())
	require.True(t, listener.Closed())
	require.Nil(t, listener.Listen())
}

func TestContinuousListener_Listen(t *testing.T) {
	broker := NewBroker[int]()
	defer broker.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	listener := NewContinuousListener(ctx, broker)

	broker.Publish(AddedEvent, 1)
	broker.Publish(SelectedEvent, 2)
	broker.Publish(DeletedEvent, 3)

	want := []struct {
		payload int
		typ     EventType
	}{
		{1, AddedEvent},
		{2, SelectedEvent},
		{3, DeletedEvent},
	}
	for _, w := range want {
		event, ok := listener.Listen()().(Event[int])
		require.True(t, ok, "msg should be Event[int]")
		require.Equal(t, w.payload, event.Payload)
		require.Equal(t, w.typ, event.Type)
	}
}
