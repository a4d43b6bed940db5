package models

import "time"

// Listing is a property under management. Images are newest first.
type Listing struct {
	ID            string           `json:"id"`
	Address       string           `json:"address"`
	TargetStyleID string           `json:"targetStyleId"`
	Images        []GeneratedImage `json:"images"`
	CreatedAt     int64            `json:"createdAt"`
}

// GeneratedImage is one staging result. URL, StyleID, Label and Timestamp
// are fixed at creation; only Rating and Feedback change afterwards.
type GeneratedImage struct {
	ID          string  `json:"id"`
	URL         string  `json:"url"`
	OriginalURL string  `json:"originalUrl,omitempty"`
	StyleID     string  `json:"styleId"`
	Label       string  `json:"label"`
	Timestamp   int64   `json:"timestamp"`
	Rating      *int    `json:"rating,omitempty"`
	Feedback    *string `json:"feedback,omitempty"`
}

// PendingImage is a source photo waiting in a batch. It is never persisted.
type PendingImage struct {
	URL     string `json:"url"`
	Label   string `json:"label"`
	StyleID string `json:"styleId,omitempty"`
}

// Clone returns a deep copy so callers can't reach into store-owned slices.
func (l Listing) Clone() Listing {
	out := l
	out.Images = make([]GeneratedImage, len(l.Images))
	for i, img := range l.Images {
		out.Images[i] = img.Clone()
	}
	return out
}

func (g GeneratedImage) Clone() GeneratedImage {
	out := g
	if g.Rating != nil {
		r := *g.Rating
		out.Rating = &r
	}
	if g.Feedback != nil {
		f := *g.Feedback
		out.Feedback = &f
	}
	return out
}

// NowMillis returns the current time as epoch milliseconds, the unit used by
// createdAt and timestamp.
func NowMillis() int64 {
	return time.Now().UnixMilli()
}

const DefaultRoomLabel = "Living Room"

// RefineFallbackLabel is used when an image being refined has no label.
const RefineFallbackLabel = "Room"

// RoomLabels are the room types an agent can assign to a photo.
var RoomLabels = []string{
	"Living Room",
	"Kitchen",
	"Master Bedroom",
	"Bedroom",
	"Bathroom",
	"Dining Room",
	"Home Office",
	"Exterior",
	"Other",
}

func IsRoomLabel(label string) bool {
	for _, l := range RoomLabels {
		if l == label {
			return true
		}
	}
	return false
}

// Outcome reports what a store operation did. Non-success outcomes leave
// state untouched.
type Outcome string

const (
	OutcomeCreated            Outcome = "created"
	OutcomeUpdated            Outcome = "updated"
	OutcomeFailedPrecondition Outcome = "failed_precondition"
	OutcomeNotFound           Outcome = "not_found"
)
