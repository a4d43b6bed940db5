package staging_test

import (
	"context"
	"errors"
	"strings"
	"sync"

	"visionstage-backend/internal/imaging"
	"visionstage-backend/internal/models"
	"visionstage-backend/internal/styles"
)

func sourceURL(tag string) string {
	return imaging.EncodedImage{MIMEType: "image/jpeg", Data: []byte("src-" + tag)}.DataURL()
}

// fakeGateway echoes the source bytes back as a PNG. Prompts containing
// failOn are rejected. When block is set, each call waits for a release or
// for ctx to end. onCall runs before each call does any work.
type fakeGateway struct {
	readyErr error
	failOn   string
	block    chan struct{}
	started  chan int
	onCall   func()

	mu      sync.Mutex
	prompts []string
}

func (g *fakeGateway) Ready() error { return g.readyErr }

func (g *fakeGateway) StageRoom(ctx context.Context, src imaging.EncodedImage, instruction string) (imaging.EncodedImage, error) {
	if g.onCall != nil {
		g.onCall()
	}
	g.mu.Lock()
	g.prompts = append(g.prompts, instruction)
	n := len(g.prompts)
	g.mu.Unlock()

	if g.started != nil {
		g.started <- n - 1
	}
	if g.block != nil {
		select {
		case <-g.block:
		case <-ctx.Done():
			return imaging.EncodedImage{}, ctx.Err()
		}
	}
	if g.failOn != "" && strings.Contains(instruction, g.failOn) {
		return imaging.EncodedImage{}, errors.New("model refused")
	}
	return imaging.EncodedImage{MIMEType: "image/png", Data: append([]byte("staged-"), src.Data...)}, nil
}

func (g *fakeGateway) Prompts() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]string(nil), g.prompts...)
}

type fakeStyles struct {
	byID map[string]models.StagingStyle
}

func newFakeStyles() *fakeStyles {
	s := &fakeStyles{byID: make(map[string]models.StagingStyle)}
	for _, st := range styles.Builtins() {
		s.byID[st.ID] = st
	}
	return s
}

func (s *fakeStyles) Resolve(styleID string) (models.StagingStyle, bool) {
	st, ok := s.byID[styleID]
	return st, ok
}

func (s *fakeStyles) Default() models.StagingStyle { return s.byID["magic"] }

// fakeListings is an in-memory ListingSource and ImageSink.
type fakeListings struct {
	commitErr error

	mu       sync.Mutex
	listings map[string]models.Listing
}

func newFakeListings(listings ...models.Listing) *fakeListings {
	f := &fakeListings{listings: make(map[string]models.Listing)}
	for _, l := range listings {
		f.listings[l.ID] = l
	}
	return f
}

func (f *fakeListings) Get(listingID string) (models.Listing, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	l, ok := f.listings[listingID]
	return l.Clone(), ok
}

func (f *fakeListings) FindImage(listingID, imageID string) (models.Listing, models.GeneratedImage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	l, ok := f.listings[listingID]
	if !ok {
		return models.Listing{}, models.GeneratedImage{}, errors.New("listing not found")
	}
	for _, img := range l.Images {
		if img.ID == imageID {
			return l.Clone(), img.Clone(), nil
		}
	}
	return models.Listing{}, models.GeneratedImage{}, errors.New("image not found")
}

// PrependImage fails on a done context, as a SQL backend would.
func (f *fakeListings) PrependImage(ctx context.Context, listingID string, img models.GeneratedImage) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.commitErr != nil {
		return f.commitErr
	}
	l, ok := f.listings[listingID]
	if !ok {
		return errors.New("listing not found")
	}
	l.Images = append([]models.GeneratedImage{img}, l.Images...)
	f.listings[listingID] = l
	return nil
}
