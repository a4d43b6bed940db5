package staging

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"visionstage-backend/internal/models"
	"visionstage-backend/internal/prompt"
)

var (
	ErrBatchInProgress  = errors.New("a batch is already running for this listing")
	ErrUnknownListing   = errors.New("listing not found")
	ErrPendingIndex     = errors.New("pending image index out of range")
	ErrEmptyAdjustments = errors.New("adjustments are required")
	ErrManagerStopped   = errors.New("staging manager is shut down")
)

// ListingSource is the read side of the listing store.
type ListingSource interface {
	Get(listingID string) (models.Listing, bool)
	FindImage(listingID, imageID string) (models.Listing, models.GeneratedImage, error)
}

// Batch is a listing's pending photos plus its custom prompt settings.
type Batch struct {
	Images       []models.PendingImage
	CustomMode   bool
	CustomPrompt string
}

// Status is a snapshot of a listing's batch activity. ProcessingIndex is -1
// when no item is being staged.
type Status struct {
	InProgress      bool
	BatchID         string
	ProcessingIndex int
	Total           int
	LastReport      *Report
	LastErr         error
}

type session struct {
	pending      []models.PendingImage
	customMode   bool
	customPrompt string

	running         bool
	batchID         string
	processingIndex int
	total           int
	done            chan struct{}

	last    *Report
	lastErr error
}

// Manager holds each listing's pending batch and runs at most one batch per
// listing at a time. Runs use the manager's own context, so they outlive the
// request that submitted them and stop only at Shutdown.
type Manager struct {
	pipeline *Pipeline
	listings ListingSource
	logger   *zap.Logger

	mu       sync.Mutex
	sessions map[string]*session
	stopped  bool

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewManager(pipeline *Pipeline, listings ListingSource, logger *zap.Logger) *Manager {
	ctx, cancel := context.WithCancel(context.Background())
	return &Manager{
		pipeline: pipeline,
		listings: listings,
		logger:   logger.Named("staging"),
		sessions: make(map[string]*session),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// session returns the listing's session, creating it. Callers hold m.mu.
// Ready reports whether submitted batches can be staged.
func (m *Manager) Ready() error {
	return m.pipeline.Ready()
}

func (m *Manager) session(listingID string) *session {
	s, ok := m.sessions[listingID]
	if !ok {
		s = &session{processingIndex: -1}
		m.sessions[listingID] = s
	}
	return s
}

func (m *Manager) requireListing(listingID string) error {
	if _, ok := m.listings.Get(listingID); !ok {
		return ErrUnknownListing
	}
	return nil
}

// AddPending appends photos to the listing's pending batch. A blank label
// becomes the default room label.
func (m *Manager) AddPending(listingID string, images ...models.PendingImage) (Batch, error) {
	if err := m.requireListing(listingID); err != nil {
		return Batch{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.session(listingID)
	if s.running {
		return Batch{}, ErrBatchInProgress
	}
	for _, img := range images {
		if img.Label == "" {
			img.Label = models.DefaultRoomLabel
		}
		s.pending = append(s.pending, img)
	}
	return s.snapshot(), nil
}

func (m *Manager) Pending(listingID string) (Batch, error) {
	if err := m.requireListing(listingID); err != nil {
		return Batch{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session(listingID).snapshot(), nil
}

// UpdatePending edits one pending photo. An empty label leaves the label
// as is; a nil styleID leaves the style, and an empty one clears it.
func (m *Manager) UpdatePending(listingID string, index int, label string, styleID *string) (Batch, error) {
	if err := m.requireListing(listingID); err != nil {
		return Batch{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.session(listingID)
	if s.running {
		return Batch{}, ErrBatchInProgress
	}
	if index < 0 || index >= len(s.pending) {
		return Batch{}, ErrPendingIndex
	}
	if label != "" {
		s.pending[index].Label = label
	}
	if styleID != nil {
		s.pending[index].StyleID = *styleID
	}
	return s.snapshot(), nil
}

func (m *Manager) SetInstructions(listingID string, customMode bool, text string) (Batch, error) {
	if err := m.requireListing(listingID); err != nil {
		return Batch{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.session(listingID)
	if s.running {
		return Batch{}, ErrBatchInProgress
	}
	s.customMode = customMode
	s.customPrompt = text
	return s.snapshot(), nil
}

// Discard drops the pending photos and resets custom mode.
func (m *Manager) Discard(listingID string) error {
	if err := m.requireListing(listingID); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.session(listingID)
	if s.running {
		return ErrBatchInProgress
	}
	s.reset()
	return nil
}

// Submit starts staging the pending batch in the background and returns the
// new batch id. The gateway is checked before anything starts.
func (m *Manager) Submit(listingID string) (string, int, error) {
	listing, ok := m.listings.Get(listingID)
	if !ok {
		return "", 0, ErrUnknownListing
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return m.startLocked(listing)
}

// Refine replaces the pending batch with a single already staged image and
// runs it with the adjustments as override text.
func (m *Manager) Refine(listingID, imageID, adjustments string) (string, error) {
	if strings.TrimSpace(adjustments) == "" {
		return "", ErrEmptyAdjustments
	}
	listing, img, err := m.listings.FindImage(listingID, imageID)
	if err != nil {
		return "", err
	}

	label := img.Label
	if label == "" {
		label = models.RefineFallbackLabel
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.session(listingID)
	if s.running {
		return "", ErrBatchInProgress
	}
	prev := *s
	s.pending = []models.PendingImage{{URL: img.URL, Label: label, StyleID: img.StyleID}}
	s.customMode = true
	s.customPrompt = prompt.Refinement(adjustments)

	batchID, _, err := m.startLocked(listing)
	if err != nil {
		*s = prev
		return "", err
	}
	return batchID, nil
}

// startLocked launches a run of the listing's pending batch. Callers hold m.mu.
func (m *Manager) startLocked(listing models.Listing) (string, int, error) {
	if m.stopped {
		return "", 0, ErrManagerStopped
	}
	s := m.session(listing.ID)
	if s.running {
		return "", 0, ErrBatchInProgress
	}
	if len(s.pending) == 0 {
		return "", 0, ErrEmptyBatch
	}
	if err := m.pipeline.Ready(); err != nil {
		return "", 0, err
	}

	batch := append([]models.PendingImage(nil), s.pending...)
	instr := Instructions{CustomMode: s.customMode, Text: s.customPrompt}
	batchID := uuid.New().String()

	s.running = true
	s.batchID = batchID
	s.processingIndex = -1
	s.total = len(batch)
	s.done = make(chan struct{})

	m.wg.Add(1)
	go m.run(listing, batchID, batch, instr, s.done)

	return batchID, len(batch), nil
}

func (m *Manager) run(listing models.Listing, batchID string, batch []models.PendingImage, instr Instructions, done chan struct{}) {
	defer m.wg.Done()
	defer close(done)

	report, err := m.pipeline.run(m.ctx, batchID, batch, listing, instr, func(p Progress) {
		m.mu.Lock()
		if s, ok := m.sessions[listing.ID]; ok && s.batchID == batchID {
			s.processingIndex = p.Index
		}
		m.mu.Unlock()
	})
	if err != nil {
		m.logger.Warn("batch ended early",
			zap.String("listing_id", listing.ID),
			zap.String("batch_id", batchID),
			zap.Error(err),
		)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.session(listing.ID)
	s.reset()
	s.running = false
	s.processingIndex = -1
	s.last = &report
	s.lastErr = err
}

func (m *Manager) Progress(listingID string) (Status, error) {
	if err := m.requireListing(listingID); err != nil {
		return Status{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.session(listingID)
	return Status{
		InProgress:      s.running,
		BatchID:         s.batchID,
		ProcessingIndex: s.processingIndex,
		Total:           s.total,
		LastReport:      s.last,
		LastErr:         s.lastErr,
	}, nil
}

// Wait blocks until the listing's in-flight batch, if any, has finished.
func (m *Manager) Wait(ctx context.Context, listingID string) error {
	m.mu.Lock()
	var done chan struct{}
	if s, ok := m.sessions[listingID]; ok && s.running {
		done = s.done
	}
	m.mu.Unlock()

	if done == nil {
		return nil
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Shutdown stops scheduling new items and waits for running batches to
// return. An item already at the gateway is abandoned via context.
func (m *Manager) Shutdown(ctx context.Context) error {
	m.mu.Lock()
	m.stopped = true
	m.mu.Unlock()
	m.cancel()

	finished := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(finished)
	}()

	select {
	case <-finished:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("failed to stop staging batches: %w", ctx.Err())
	}
}

func (s *session) snapshot() Batch {
	return Batch{
		Images:       append([]models.PendingImage{}, s.pending...),
		CustomMode:   s.customMode,
		CustomPrompt: s.customPrompt,
	}
}

func (s *session) reset() {
	s.pending = nil
	s.customMode = false
	s.customPrompt = ""
}
