package events

import "sync"

// Message is one change notification delivered to a subscriber
type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub fans document-store changes out to per-user subscribers so open
// watchlist and ratings views update without re-fetching. Delivery is
// best effort: a subscriber that falls behind drops messages rather
// than blocking publishers.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]map[chan Message]struct{}
}

// NewHub creates an empty Hub
func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[string]map[chan Message]struct{}),
	}
}

// Subscribe registers a channel for one user's events
func (h *Hub) Subscribe(userID string) chan Message {
	ch := make(chan Message, 16)

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.subscribers[userID] == nil {
		h.subscribers[userID] = make(map[chan Message]struct{})
	}
	h.subscribers[userID][ch] = struct{}{}
	return ch
}

// Unsubscribe removes a channel and closes it
func (h *Hub) Unsubscribe(userID string, ch chan Message) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if subs, ok := h.subscribers[userID]; ok {
		if _, ok := subs[ch]; ok {
			delete(subs, ch)
			close(ch)
		}
		if len(subs) == 0 {
			delete(h.subscribers, userID)
		}
	}
}

// Publish delivers an event to every subscriber of the given user
func (h *Hub) Publish(userID, event string, data interface{}) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for ch := range h.subscribers[userID] {
		select {
		case ch <- Message{Event: event, Data: data}:
		default:
		}
	}
}
