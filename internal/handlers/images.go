package handlers

import (
	"mime"
	"net/http"

	"github.com/gin-gonic/gin"
	"visionstage-backend/internal/imaging"
	"visionstage-backend/internal/listings"
	"visionstage-backend/internal/models"
	"visionstage-backend/internal/services"
	"visionstage-backend/internal/staging"
)

type ImagesHandler struct {
	store     *listings.Store
	manager   *staging.Manager
	publisher *services.PublishService
}

func NewImagesHandler(store *listings.Store, manager *staging.Manager, publisher *services.PublishService) *ImagesHandler {
	return &ImagesHandler{
		store:     store,
		manager:   manager,
		publisher: publisher,
	}
}

// Refine godoc
// @Summary     Refine a staged image
// @Description Replaces the pending batch with this image and runs it with "Refine this staged room by adjusting: <adjustments>" as the prompt.
// @Tags        images
// @Accept      json
// @Produce     json
// @Param       id path string true "Listing ID"
// @Param       image_id path string true "Image ID"
// @Param       request body models.RefineRequest true "Adjustments"
// @Success     202 {object} models.SubmitResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     409 {object} models.ErrorResponse
// @Failure     422 {object} models.ErrorResponse
// @Failure     503 {object} models.ErrorResponse
// @Router      /listings/{id}/images/{image_id}/refine [post]
func (h *ImagesHandler) Refine(c *gin.Context) {
	var req models.RefineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body", err)
		return
	}

	listingID := c.Param("id")
	batchID, err := h.manager.Refine(listingID, c.Param("image_id"), req.Adjustments)
	if err != nil {
		respondError(c, "failed to start refinement", err)
		return
	}

	c.JSON(http.StatusAccepted, models.SubmitResponse{
		ListingID: listingID,
		BatchID:   batchID,
		Total:     1,
		Status:    "processing",
	})
}

// Download godoc
// @Summary     Download a staged image
// @Description Returns the image bytes as an attachment named after the listing address
// @Tags        images
// @Produce     image/png
// @Produce     image/jpeg
// @Param       id path string true "Listing ID"
// @Param       image_id path string true "Image ID"
// @Success     200 {file} binary
// @Failure     404 {object} models.ErrorResponse
// @Failure     422 {object} models.ErrorResponse
// @Router      /listings/{id}/images/{image_id}/download [get]
func (h *ImagesHandler) Download(c *gin.Context) {
	listing, img, err := h.store.FindImage(c.Param("id"), c.Param("image_id"))
	if err != nil {
		respondError(c, "image not found", err)
		return
	}
	h.sendImage(c, listing, img)
}

// DownloadFeatured godoc
// @Summary     Download the featured image
// @Description Returns the listing's most recent staged image
// @Tags        images
// @Produce     image/png
// @Produce     image/jpeg
// @Param       id path string true "Listing ID"
// @Success     200 {file} binary
// @Failure     404 {object} models.ErrorResponse
// @Router      /listings/{id}/download [get]
func (h *ImagesHandler) DownloadFeatured(c *gin.Context) {
	listing, ok := h.store.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "listing not found"})
		return
	}
	if len(listing.Images) == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "listing has no staged images"})
		return
	}
	h.sendImage(c, listing, listing.Images[0])
}

func (h *ImagesHandler) sendImage(c *gin.Context, listing models.Listing, img models.GeneratedImage) {
	decoded, err := imaging.ParseDataURL(img.URL)
	if err != nil {
		respondError(c, "stored image is not downloadable", err)
		return
	}

	filename := "VisionStage-" + listing.Address + imaging.Extension(decoded.MIMEType)
	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
	c.Data(http.StatusOK, decoded.MIMEType, decoded.Data)
}

// Publish godoc
// @Summary     Publish a staged image
// @Description Uploads the image to Supabase Storage and returns its public URL
// @Tags        images
// @Produce     json
// @Param       id path string true "Listing ID"
// @Param       image_id path string true "Image ID"
// @Success     200 {object} models.PublishResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     422 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Failure     503 {object} models.ErrorResponse
// @Router      /listings/{id}/images/{image_id}/publish [post]
func (h *ImagesHandler) Publish(c *gin.Context) {
	res, err := h.publisher.Publish(c.Param("id"), c.Param("image_id"))
	if err != nil {
		respondError(c, "failed to publish image", err)
		return
	}

	c.JSON(http.StatusOK, models.PublishResponse{
		ImageID:     res.ImageID,
		StoragePath: res.StoragePath,
		PublicURL:   res.PublicURL,
	})
}

// Unpublish godoc
// @Summary     Unpublish a staged image
// @Description Deletes the image from Supabase Storage. The staged image stays on the listing.
// @Tags        images
// @Param       id path string true "Listing ID"
// @Param       image_id path string true "Image ID"
// @Success     204
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Failure     503 {object} models.ErrorResponse
// @Router      /listings/{id}/images/{image_id}/publish [delete]
func (h *ImagesHandler) Unpublish(c *gin.Context) {
	if _, err := h.publisher.Unpublish(c.Param("id"), c.Param("image_id")); err != nil {
		respondError(c, "failed to unpublish image", err)
		return
	}
	c.Status(http.StatusNoContent)
}
