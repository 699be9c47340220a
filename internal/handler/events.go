package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"cinescope-service/internal/events"
	"cinescope-service/internal/middleware"
)

const eventWriteTimeout = 10 * time.Second

// EventsHandler streams document changes to connected clients over a
// websocket so open watchlist and ratings views stay current
type EventsHandler struct {
	hub      *events.Hub
	upgrader websocket.Upgrader
}

// NewEventsHandler creates a new EventsHandler
func NewEventsHandler(hub *events.Hub) *EventsHandler {
	return &EventsHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Browser origin checks are handled by the CORS layer
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Stream upgrades the connection and forwards the caller's events
// until either side closes
// GET /api/v1/events
func (h *EventsHandler) Stream(c *gin.Context) {
	userID := middleware.UserID(c)

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	ch := h.hub.Subscribe(userID)
	defer h.hub.Unsubscribe(userID, ch)

	// Drain reads so close frames are processed; signals disconnect
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return
			}
			conn.SetWriteDeadline(time.Now().Add(eventWriteTimeout))
			if err := conn.WriteJSON(msg); err != nil {
				log.Debug().Err(err).Str("user_id", userID).Msg("event write failed, dropping client")
				return
			}
		case <-done:
			return
		}
	}
}
