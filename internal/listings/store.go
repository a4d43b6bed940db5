// Package listings owns the agent's property listings and the staged images
// inside them. Every mutation rewrites the whole collection to the backend
// before it becomes visible.
package listings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"visionstage-backend/internal/models"
	"visionstage-backend/internal/persistence"
)

var (
	ErrListingNotFound = errors.New("listing not found")
	ErrImageNotFound   = errors.New("image not found")
)

type Store struct {
	backend persistence.Backend
	logger  *zap.Logger

	mu       sync.RWMutex
	listings []models.Listing
}

func NewStore(backend persistence.Backend, logger *zap.Logger) *Store {
	return &Store{
		backend: backend,
		logger:  logger.Named("listings"),
	}
}

// Load reads the listings record once at startup.
func (s *Store) Load(ctx context.Context) error {
	data, err := s.backend.Load(ctx, persistence.ListingsKey)
	if errors.Is(err, persistence.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load listings: %w", err)
	}

	var loaded []models.Listing
	if err := persistence.Decode(data, &loaded); err != nil {
		return fmt.Errorf("failed to decode listings: %w", err)
	}
	for i := range loaded {
		if loaded[i].Images == nil {
			loaded[i].Images = []models.GeneratedImage{}
		}
	}

	s.mu.Lock()
	s.listings = loaded
	s.mu.Unlock()

	s.logger.Info("listings loaded", zap.Int("count", len(loaded)))
	return nil
}

// CreateListing prepends a new listing. A blank address is a failed
// precondition and creates nothing.
func (s *Store) CreateListing(ctx context.Context, address, targetStyleID string) (models.Listing, models.Outcome, error) {
	if strings.TrimSpace(address) == "" {
		return models.Listing{}, models.OutcomeFailedPrecondition, nil
	}

	listing := models.Listing{
		ID:            uuid.New().String(),
		Address:       address,
		TargetStyleID: targetStyleID,
		Images:        []models.GeneratedImage{},
		CreatedAt:     models.NowMillis(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]models.Listing, 0, len(s.listings)+1)
	next = append(next, listing)
	next = append(next, s.listings...)
	if err := s.flush(ctx, next); err != nil {
		return models.Listing{}, "", err
	}
	s.listings = next

	s.logger.Info("listing created",
		zap.String("listing_id", listing.ID),
		zap.String("address", listing.Address),
		zap.String("target_style_id", listing.TargetStyleID),
	)
	return listing.Clone(), models.OutcomeCreated, nil
}

// List returns every listing, newest first.
func (s *Store) List() []models.Listing {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Listing, len(s.listings))
	for i, l := range s.listings {
		out[i] = l.Clone()
	}
	return out
}

func (s *Store) Get(listingID string) (models.Listing, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(listingID); i >= 0 {
		return s.listings[i].Clone(), true
	}
	return models.Listing{}, false
}

func (s *Store) FindImage(listingID, imageID string) (models.Listing, models.GeneratedImage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(listingID)
	if i < 0 {
		return models.Listing{}, models.GeneratedImage{}, ErrListingNotFound
	}
	for _, img := range s.listings[i].Images {
		if img.ID == imageID {
			return s.listings[i].Clone(), img.Clone(), nil
		}
	}
	return models.Listing{}, models.GeneratedImage{}, ErrImageNotFound
}

// PrependImage commits a generated image to the front of a listing's history.
// It is visible to readers as soon as it returns.
func (s *Store) PrependImage(ctx context.Context, listingID string, img models.GeneratedImage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(listingID)
	if i < 0 {
		return ErrListingNotFound
	}

	next := s.copyListings()
	images := make([]models.GeneratedImage, 0, len(next[i].Images)+1)
	images = append(images, img)
	images = append(images, next[i].Images...)
	next[i].Images = images

	if err := s.flush(ctx, next); err != nil {
		return err
	}
	s.listings = next
	return nil
}

// UpdateImageFeedback replaces the rating and the feedback text, each only
// when non-nil. Unknown listing or image ids are a no-op.
func (s *Store) UpdateImageFeedback(ctx context.Context, listingID, imageID string, rating *int, feedback *string) (models.Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	li := s.indexOf(listingID)
	if li < 0 {
		return models.OutcomeNotFound, nil
	}
	ii := -1
	for j, img := range s.listings[li].Images {
		if img.ID == imageID {
			ii = j
			break
		}
	}
	if ii < 0 {
		return models.OutcomeNotFound, nil
	}

	next := s.copyListings()
	images := make([]models.GeneratedImage, len(next[li].Images))
	copy(images, next[li].Images)
	if rating != nil {
		r := *rating
		images[ii].Rating = &r
	}
	if feedback != nil {
		f := *feedback
		images[ii].Feedback = &f
	}
	next[li].Images = images

	if err := s.flush(ctx, next); err != nil {
		return "", err
	}
	s.listings = next

	s.logger.Debug("image feedback updated",
		zap.String("listing_id", listingID),
		zap.String("image_id", imageID),
		zap.Bool("rating_set", rating != nil),
		zap.Bool("feedback_set", feedback != nil),
	)
	return models.OutcomeUpdated, nil
}

func (s *Store) indexOf(listingID string) int {
	for i, l := range s.listings {
		if l.ID == listingID {
			return i
		}
	}
	return -1
}

// copyListings copies the outer slice only; callers replace any nested
// slice they modify.
func (s *Store) copyListings() []models.Listing {
	next := make([]models.Listing, len(s.listings))
	copy(next, s.listings)
	return next
}

func (s *Store) flush(ctx context.Context, listings []models.Listing) error {
	data, err := persistence.Encode(listings)
	if err != nil {
		return err
	}
	if err := s.backend.Save(ctx, persistence.ListingsKey, data); err != nil {
		return fmt.Errorf("failed to persist listings: %w", err)
	}
	return nil
}
