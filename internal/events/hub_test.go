package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubPublishReachesSubscriber(t *testing.T) {
	hub := NewHub()
	ch := hub.Subscribe("user-1")

	hub.Publish("user-1", "watchlist:added", map[string]int{"movie_id": 7})

	select {
	case msg := <-ch:
		assert.Equal(t, "watchlist:added", msg.Event)
	default:
		t.Fatal("message not delivered")
	}
}

func TestHubPublishIsScopedToUser(t *testing.T) {
	hub := NewHub()
	mine := hub.Subscribe("user-1")
	theirs := hub.Subscribe("user-2")

	hub.Publish("user-1", "rating:updated", nil)

	assert.Len(t, mine, 1)
	assert.Empty(t, theirs)
}

func TestHubUnsubscribeClosesChannel(t *testing.T) {
	hub := NewHub()
	ch := hub.Subscribe("user-1")
	hub.Unsubscribe("user-1", ch)

	_, open := <-ch
	assert.False(t, open)

	// Publishing after the last unsubscribe is a no-op
	hub.Publish("user-1", "watchlist:added", nil)
}

func TestHubSlowSubscriberDropsMessages(t *testing.T) {
	hub := NewHub()
	ch := hub.Subscribe("user-1")

	// Overflow the buffer; publishers must never block
	for i := 0; i < 50; i++ {
		hub.Publish("user-1", "rating:updated", i)
	}

	require.Len(t, ch, cap(ch))
}
