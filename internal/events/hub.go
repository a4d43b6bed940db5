// Package events fans out batch progress to listeners of a listing.
package events

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	BatchStarted   = "batch_started"
	ItemStarted    = "item_started"
	ItemCommitted  = "item_committed"
	ItemFailed     = "item_failed"
	BatchCompleted = "batch_completed"
)

// SubscriberBuffer is how many events a slow subscriber may lag behind
// before events are dropped for it.
const SubscriberBuffer = 32

type Event struct {
	Type      string    `json:"type"`
	ListingID string    `json:"listing_id"`
	BatchID   string    `json:"batch_id"`
	Index     int       `json:"index"`
	Total     int       `json:"total"`
	ImageID   string    `json:"image_id,omitempty"`
	Label     string    `json:"label,omitempty"`
	Error     string    `json:"error,omitempty"`
	Committed int       `json:"committed,omitempty"`
	Failed    int       `json:"failed,omitempty"`
	At        time.Time `json:"at"`
}

type Hub struct {
	logger *zap.Logger

	mu     sync.RWMutex
	subs   map[string]map[chan Event]struct{}
	closed bool
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		logger: logger.Named("events"),
		subs:   make(map[string]map[chan Event]struct{}),
	}
}

// Subscribe returns a channel of events for listingID and a cancel func that
// must be called to release it. The channel is closed by cancel or Close.
func (h *Hub) Subscribe(listingID string) (<-chan Event, func()) {
	ch := make(chan Event, SubscriberBuffer)

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		close(ch)
		return ch, func() {}
	}
	if h.subs[listingID] == nil {
		h.subs[listingID] = make(map[chan Event]struct{})
	}
	h.subs[listingID][ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			if _, ok := h.subs[listingID][ch]; !ok {
				return
			}
			delete(h.subs[listingID], ch)
			if len(h.subs[listingID]) == 0 {
				delete(h.subs, listingID)
			}
			close(ch)
		})
	}
}

// Close ends every subscription. Later subscribers get a closed channel.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	for listingID, chans := range h.subs {
		for ch := range chans {
			close(ch)
		}
		delete(h.subs, listingID)
	}
}

// Publish never blocks: a full subscriber misses the event.
func (h *Hub) Publish(ev Event) {
	if ev.At.IsZero() {
		ev.At = time.Now()
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for ch := range h.subs[ev.ListingID] {
		select {
		case ch <- ev:
		default:
			h.logger.Warn("dropping event for slow subscriber",
				zap.String("listing_id", ev.ListingID),
				zap.String("type", ev.Type),
			)
		}
	}
}
