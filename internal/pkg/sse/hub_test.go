package sse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishReachesAllUserSubscriptions(t *testing.T) {
	hub := NewHub()

	ch1, cancel1 := hub.Subscribe("user-1")
	ch2, cancel2 := hub.Subscribe("user-1")
	other, cancelOther := hub.Subscribe("user-2")
	defer cancel1()
	defer cancel2()
	defer cancelOther()

	hub.Publish("user-1", Event{Event: "notification", Data: "hello"})

	for _, ch := range []chan Event{ch1, ch2} {
		select {
		case ev := <-ch:
			assert.Equal(t, "notification", ev.Event)
		default:
			t.Fatal("expected event on subscription channel")
		}
	}

	select {
	case <-other:
		t.Fatal("event leaked to another user")
	default:
	}
}

func TestPublishToUserWithoutSubscribers(t *testing.T) {
	hub := NewHub()
	assert.NotPanics(t, func() {
		hub.Publish("nobody", Event{Event: "notification"})
	})
}

func TestPublishSkipsFullChannels(t *testing.T) {
	hub := NewHub()
	ch, cancel := hub.Subscribe("user-1")
	defer cancel()

	// fill the buffer, then one more; the extra is dropped, not blocked on
	for i := 0; i < cap(ch)+1; i++ {
		hub.Publish("user-1", Event{Event: "notification"})
	}
	assert.Len(t, ch, cap(ch))
}

func TestCleanupRemovesSubscription(t *testing.T) {
	hub := NewHub()

	ch, cancel := hub.Subscribe("user-1")
	require.Equal(t, 1, hub.SubscriberCount("user-1"))

	cancel()
	assert.Equal(t, 0, hub.SubscriberCount("user-1"))

	_, open := <-ch
	assert.False(t, open)
}
