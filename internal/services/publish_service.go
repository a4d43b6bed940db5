// Package services holds workflows that span several components.
package services

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"visionstage-backend/internal/imaging"
	"visionstage-backend/internal/models"
	"visionstage-backend/internal/supabase"
)

var ErrStorageNotConfigured = errors.New("storage not configured")

// ImageFinder looks up a staged image and its listing.
type ImageFinder interface {
	FindImage(listingID, imageID string) (models.Listing, models.GeneratedImage, error)
}

// Uploader puts bytes in object storage and returns their public URL.
type Uploader interface {
	UploadImage(storagePath, contentType string, data []byte) (string, error)
	DeleteFile(storagePath string) error
}

type PublishResult struct {
	ImageID     string
	StoragePath string
	PublicURL   string
}

// PublishService copies staged images out of listing records into public
// object storage.
type PublishService struct {
	images   ImageFinder
	uploader Uploader
	logger   *zap.Logger
}

// NewPublishService builds the service. uploader may be nil, in which case
// Publish returns ErrStorageNotConfigured.
func NewPublishService(images ImageFinder, uploader Uploader, logger *zap.Logger) *PublishService {
	return &PublishService{
		images:   images,
		uploader: uploader,
		logger:   logger.Named("publish"),
	}
}

func (s *PublishService) Enabled() bool {
	return s.uploader != nil
}

// Publish uploads one image. Re-publishing the same image overwrites the
// previous object.
func (s *PublishService) Publish(listingID, imageID string) (PublishResult, error) {
	if s.uploader == nil {
		return PublishResult{}, ErrStorageNotConfigured
	}

	storagePath, decoded, err := s.locate(listingID, imageID)
	if err != nil {
		return PublishResult{}, err
	}

	publicURL, err := s.uploader.UploadImage(storagePath, decoded.MIMEType, decoded.Data)
	if err != nil {
		s.logger.Error("failed to publish image",
			zap.String("listing_id", listingID),
			zap.String("image_id", imageID),
			zap.Error(err),
		)
		return PublishResult{}, fmt.Errorf("failed to upload image: %w", err)
	}

	s.logger.Info("image published",
		zap.String("listing_id", listingID),
		zap.String("image_id", imageID),
		zap.String("storage_path", storagePath),
	)
	return PublishResult{
		ImageID:     imageID,
		StoragePath: storagePath,
		PublicURL:   publicURL,
	}, nil
}

// Unpublish removes a published image from storage. The listing record is
// not touched.
func (s *PublishService) Unpublish(listingID, imageID string) (string, error) {
	if s.uploader == nil {
		return "", ErrStorageNotConfigured
	}

	storagePath, _, err := s.locate(listingID, imageID)
	if err != nil {
		return "", err
	}
	if err := s.uploader.DeleteFile(storagePath); err != nil {
		return "", fmt.Errorf("failed to delete published image: %w", err)
	}

	s.logger.Info("image unpublished",
		zap.String("listing_id", listingID),
		zap.String("image_id", imageID),
	)
	return storagePath, nil
}

func (s *PublishService) locate(listingID, imageID string) (string, imaging.EncodedImage, error) {
	listing, img, err := s.images.FindImage(listingID, imageID)
	if err != nil {
		return "", imaging.EncodedImage{}, err
	}

	decoded, err := imaging.ParseDataURL(img.URL)
	if err != nil {
		return "", imaging.EncodedImage{}, err
	}
	return supabase.ImagePath(listing.ID, img.ID, imaging.Extension(decoded.MIMEType)), decoded, nil
}
