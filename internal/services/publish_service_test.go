package services_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"visionstage-backend/internal/imaging"
	"visionstage-backend/internal/models"
	"visionstage-backend/internal/services"
)

type finder struct {
	listing models.Listing
}

func (f finder) FindImage(listingID, imageID string) (models.Listing, models.GeneratedImage, error) {
	if listingID != f.listing.ID {
		return models.Listing{}, models.GeneratedImage{}, errors.New("listing not found")
	}
	for _, img := range f.listing.Images {
		if img.ID == imageID {
			return f.listing, img, nil
		}
	}
	return models.Listing{}, models.GeneratedImage{}, errors.New("image not found")
}

type recordingUploader struct {
	err         error
	path        string
	contentType string
	data        []byte
	deleted     []string
}

func (u *recordingUploader) DeleteFile(storagePath string) error {
	if u.err != nil {
		return u.err
	}
	u.deleted = append(u.deleted, storagePath)
	return nil
}

func (u *recordingUploader) UploadImage(storagePath, contentType string, data []byte) (string, error) {
	if u.err != nil {
		return "", u.err
	}
	u.path, u.contentType, u.data = storagePath, contentType, data
	return "https://cdn.example.com/" + storagePath, nil
}

var testListing = models.Listing{
	ID:      "listing-1",
	Address: "10 Main St",
	Images: []models.GeneratedImage{
		{ID: "img-1", URL: imaging.EncodedImage{MIMEType: "image/jpeg", Data: []byte("jpeg-bytes")}.DataURL()},
		{ID: "img-2", URL: "https://example.com/not-inline.png"},
	},
}

func TestPublish_UploadsDecodedBytes(t *testing.T) {
	up := &recordingUploader{}
	svc := services.NewPublishService(finder{testListing}, up, zap.NewNop())
	require.True(t, svc.Enabled())

	res, err := svc.Publish("listing-1", "img-1")
	require.NoError(t, err)

	assert.Equal(t, "listings/listing-1/img-1.jpg", res.StoragePath)
	assert.Equal(t, "https://cdn.example.com/listings/listing-1/img-1.jpg", res.PublicURL)
	assert.Equal(t, "image/jpeg", up.contentType)
	assert.Equal(t, []byte("jpeg-bytes"), up.data)
}

func TestPublish_NotConfigured(t *testing.T) {
	svc := services.NewPublishService(finder{testListing}, nil, zap.NewNop())

	assert.False(t, svc.Enabled())
	_, err := svc.Publish("listing-1", "img-1")
	assert.ErrorIs(t, err, services.ErrStorageNotConfigured)
}

func TestPublish_Errors(t *testing.T) {
	svc := services.NewPublishService(finder{testListing}, &recordingUploader{}, zap.NewNop())

	_, err := svc.Publish("listing-1", "img-9")
	assert.Error(t, err)

	_, err = svc.Publish("listing-1", "img-2")
	assert.ErrorIs(t, err, imaging.ErrInvalidDataURL)

	failing := services.NewPublishService(finder{testListing}, &recordingUploader{err: errors.New("bucket missing")}, zap.NewNop())
	_, err = failing.Publish("listing-1", "img-1")
	assert.ErrorContains(t, err, "bucket missing")
}

func TestUnpublish(t *testing.T) {
	up := &recordingUploader{}
	svc := services.NewPublishService(finder{testListing}, up, zap.NewNop())

	path, err := svc.Unpublish("listing-1", "img-1")
	require.NoError(t, err)
	assert.Equal(t, "listings/listing-1/img-1.jpg", path)
	assert.Equal(t, []string{path}, up.deleted)

	_, err = services.NewPublishService(finder{testListing}, nil, zap.NewNop()).Unpublish("listing-1", "img-1")
	assert.ErrorIs(t, err, services.ErrStorageNotConfigured)
}
