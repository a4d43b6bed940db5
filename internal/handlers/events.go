package handlers

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"visionstage-backend/internal/events"
	"visionstage-backend/internal/listings"
	"visionstage-backend/internal/models"
)

// KeepAliveInterval is how often an idle event stream sends a ping.
const KeepAliveInterval = 15 * time.Second

type EventsHandler struct {
	store *listings.Store
	hub   *events.Hub
}

func NewEventsHandler(store *listings.Store, hub *events.Hub) *EventsHandler {
	return &EventsHandler{
		store: store,
		hub:   hub,
	}
}

// Stream godoc
// @Summary     Stream staging events
// @Description Server-sent events for a listing: batch_started, item_started, item_committed, item_failed and batch_completed
// @Tags        pending
// @Produce     text/event-stream
// @Param       id path string true "Listing ID"
// @Success     200 {object} events.Event
// @Failure     404 {object} models.ErrorResponse
// @Router      /listings/{id}/events [get]
func (h *EventsHandler) Stream(c *gin.Context) {
	listingID := c.Param("id")
	if _, ok := h.store.Get(listingID); !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "listing not found"})
		return
	}

	ch, cancel := h.hub.Subscribe(listingID)
	defer cancel()

	ticker := time.NewTicker(KeepAliveInterval)
	defer ticker.Stop()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")
	c.Writer.WriteHeaderNow()
	c.Writer.Flush()

	c.Stream(func(w io.Writer) bool {
		select {
		case ev, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent(ev.Type, ev)
			return true
		case <-ticker.C:
			c.SSEvent("ping", gin.H{"at": time.Now()})
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
