// Package staging runs batches of room photos through the generation
// gateway and commits the results to a listing one at a time.
package staging

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"visionstage-backend/internal/events"
	"visionstage-backend/internal/id"
	"visionstage-backend/internal/imaging"
	"visionstage-backend/internal/models"
	"visionstage-backend/internal/prompt"
)

const ImageIDPrefix = "img"

var (
	ErrEmptyBatch           = errors.New("batch is empty")
	ErrGatewayNotConfigured = errors.New("generation gateway is not configured")
)

// Gateway turns a source photo plus instruction into a staged photo.
type Gateway interface {
	// Ready reports configuration problems without any network traffic.
	Ready() error
	StageRoom(ctx context.Context, src imaging.EncodedImage, instruction string) (imaging.EncodedImage, error)
}

type StyleLookup interface {
	Resolve(styleID string) (models.StagingStyle, bool)
	Default() models.StagingStyle
}

// ImageSink commits generated images to a listing.
type ImageSink interface {
	PrependImage(ctx context.Context, listingID string, img models.GeneratedImage) error
}

type Publisher interface {
	Publish(ev events.Event)
}

// Instructions are the batch-level custom prompt settings.
type Instructions struct {
	CustomMode bool
	Text       string
}

// Progress is reported before each item and once more with Index -1 when
// the batch is over.
type Progress struct {
	BatchID string
	Index   int
	Total   int
}

type ItemFailure struct {
	Index int
	Label string
	Err   error
}

type Report struct {
	BatchID    string
	Total      int
	Committed  []models.GeneratedImage
	Failures   []ItemFailure
	StartedAt  time.Time
	FinishedAt time.Time
}

type Pipeline struct {
	gateway Gateway
	styles  StyleLookup
	sink    ImageSink
	events  Publisher
	logger  *zap.Logger
}

func NewPipeline(gateway Gateway, styles StyleLookup, sink ImageSink, publisher Publisher, logger *zap.Logger) *Pipeline {
	return &Pipeline{
		gateway: gateway,
		styles:  styles,
		sink:    sink,
		events:  publisher,
		logger:  logger.Named("pipeline"),
	}
}

// Ready is the fail-fast configuration check RunBatch performs first.
func (p *Pipeline) Ready() error {
	if err := p.gateway.Ready(); err != nil {
		return fmt.Errorf("%w: %v", ErrGatewayNotConfigured, err)
	}
	return nil
}

// RunBatch stages every item in order. Item i starts only after item i-1 has
// been committed or has failed. A failed item is logged and recorded in the
// report and never stops the batch. Each success is committed to the sink
// before the next item starts.
//
// The returned error is non-nil only when the gateway is not configured
// (nothing is attempted), the batch is empty, or ctx is cancelled between
// items; in the last case the report holds what was committed so far.
func (p *Pipeline) RunBatch(ctx context.Context, batch []models.PendingImage, listing models.Listing, instr Instructions, onProgress func(Progress)) (Report, error) {
	return p.run(ctx, uuid.New().String(), batch, listing, instr, onProgress)
}

func (p *Pipeline) run(ctx context.Context, batchID string, batch []models.PendingImage, listing models.Listing, instr Instructions, onProgress func(Progress)) (Report, error) {
	if len(batch) == 0 {
		return Report{}, ErrEmptyBatch
	}
	if err := p.Ready(); err != nil {
		return Report{}, err
	}

	report := Report{
		BatchID:   batchID,
		Total:     len(batch),
		Committed: make([]models.GeneratedImage, 0, len(batch)),
		StartedAt: time.Now(),
	}
	log := p.logger.With(
		zap.String("batch_id", report.BatchID),
		zap.String("listing_id", listing.ID),
	)

	master, ok := p.styles.Resolve(listing.TargetStyleID)
	if !ok {
		master = p.styles.Default()
		log.Warn("master style not found, using default",
			zap.String("target_style_id", listing.TargetStyleID),
			zap.String("default_style_id", master.ID),
		)
	}
	override := ""
	if prompt.UseOverride(instr.CustomMode, instr.Text) {
		override = instr.Text
	}

	log.Info("batch started", zap.Int("total", report.Total), zap.Bool("override", override != ""))
	p.publish(events.Event{Type: events.BatchStarted, ListingID: listing.ID, BatchID: report.BatchID, Index: -1, Total: report.Total})

	var runErr error
	for i, item := range batch {
		if err := ctx.Err(); err != nil {
			runErr = err
			log.Warn("batch cancelled", zap.Int("remaining", len(batch)-i))
			break
		}

		p.progress(onProgress, Progress{BatchID: report.BatchID, Index: i, Total: report.Total})
		p.publish(events.Event{Type: events.ItemStarted, ListingID: listing.ID, BatchID: report.BatchID, Index: i, Total: report.Total, Label: item.Label})

		img, err := p.stageItem(ctx, item, listing, master, override)
		if err != nil {
			log.Error("failed to stage image",
				zap.Int("index", i),
				zap.String("label", item.Label),
				zap.Error(err),
			)
			report.Failures = append(report.Failures, ItemFailure{Index: i, Label: item.Label, Err: err})
			p.publish(events.Event{Type: events.ItemFailed, ListingID: listing.ID, BatchID: report.BatchID, Index: i, Total: report.Total, Label: item.Label, Error: err.Error()})
			continue
		}

		report.Committed = append(report.Committed, img)
		log.Debug("image committed", zap.Int("index", i), zap.String("image_id", img.ID))
		p.publish(events.Event{Type: events.ItemCommitted, ListingID: listing.ID, BatchID: report.BatchID, Index: i, Total: report.Total, ImageID: img.ID, Label: img.Label})
	}

	report.FinishedAt = time.Now()
	p.progress(onProgress, Progress{BatchID: report.BatchID, Index: -1, Total: report.Total})
	p.publish(events.Event{
		Type:      events.BatchCompleted,
		ListingID: listing.ID,
		BatchID:   report.BatchID,
		Index:     -1,
		Total:     report.Total,
		Committed: len(report.Committed),
		Failed:    len(report.Failures),
	})
	log.Info("batch finished",
		zap.Int("committed", len(report.Committed)),
		zap.Int("failed", len(report.Failures)),
		zap.Duration("elapsed", report.FinishedAt.Sub(report.StartedAt)),
	)

	return report, runErr
}

func (p *Pipeline) stageItem(ctx context.Context, item models.PendingImage, listing models.Listing, master models.StagingStyle, override string) (models.GeneratedImage, error) {
	styleID := item.StyleID
	if styleID == "" {
		styleID = listing.TargetStyleID
	}
	effective, ok := p.styles.Resolve(styleID)
	if !ok {
		effective = master
	}

	src, err := imaging.ParseDataURL(item.URL)
	if err != nil {
		return models.GeneratedImage{}, err
	}

	text := prompt.Compose(item.Label, listing.Address, master, effective, override)
	out, err := p.gateway.StageRoom(ctx, src, text)
	if err != nil {
		return models.GeneratedImage{}, err
	}

	imageID, err := id.Generate(ImageIDPrefix)
	if err != nil {
		return models.GeneratedImage{}, err
	}
	img := models.GeneratedImage{
		ID:          imageID,
		URL:         out.DataURL(),
		OriginalURL: item.URL,
		StyleID:     styleID,
		Label:       item.Label,
		Timestamp:   models.NowMillis(),
	}
	// A finished generation is kept even if the run is cancelled now.
	if err := p.sink.PrependImage(context.WithoutCancel(ctx), listing.ID, img); err != nil {
		return models.GeneratedImage{}, fmt.Errorf("failed to commit image: %w", err)
	}
	return img, nil
}

func (p *Pipeline) progress(fn func(Progress), pr Progress) {
	if fn != nil {
		fn(pr)
	}
}

func (p *Pipeline) publish(ev events.Event) {
	if p.events != nil {
		p.events.Publish(ev)
	}
}
