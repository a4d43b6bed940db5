package handlers

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"visionstage-backend/internal/imaging"
	"visionstage-backend/internal/models"
	"visionstage-backend/internal/staging"
)

// uploadFieldNames are the multipart fields accepted for photo uploads.
var uploadFieldNames = []string{"files", "files[]", "images", "image", "file"}

type PendingHandler struct {
	manager *staging.Manager
}

func NewPendingHandler(manager *staging.Manager) *PendingHandler {
	return &PendingHandler{manager: manager}
}

// AddPending godoc
// @Summary     Add photos to the pending batch
// @Description Accepts either a multipart upload (one or more image files, with optional label and style_id applied to all) or a JSON body of data URLs.
// @Description Photos without a label are tagged "Living Room".
// @Tags        pending
// @Accept      multipart/form-data
// @Accept      json
// @Produce     json
// @Param       id path string true "Listing ID"
// @Param       files formData file false "Room photos (multiple files allowed)"
// @Param       label formData string false "Room label for every uploaded file"
// @Param       style_id formData string false "Style override for every uploaded file"
// @Param       request body models.AddPendingRequest false "Photos as data URLs"
// @Success     200 {object} models.PendingBatchResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     409 {object} models.ErrorResponse
// @Failure     422 {object} models.ErrorResponse
// @Router      /listings/{id}/pending [post]
func (h *PendingHandler) AddPending(c *gin.Context) {
	var images []models.PendingImage
	var err error
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		images, err = h.pendingFromForm(c)
	} else {
		images, err = h.pendingFromJSON(c)
	}
	if err != nil {
		return
	}

	batch, err := h.manager.AddPending(c.Param("id"), images...)
	if err != nil {
		respondError(c, "failed to add photos", err)
		return
	}
	c.JSON(http.StatusOK, pendingResponse(c.Param("id"), batch))
}

// pendingFromForm writes the error response itself.
func (h *PendingHandler) pendingFromForm(c *gin.Context) ([]models.PendingImage, error) {
	form, err := c.MultipartForm()
	if err != nil {
		badRequest(c, "failed to parse multipart form", err)
		return nil, err
	}

	var files []*multipart.FileHeader
	for _, name := range uploadFieldNames {
		if f := form.File[name]; len(f) > 0 {
			files = f
			break
		}
	}
	if len(files) == 0 {
		err := fmt.Errorf("please provide files with one of these field names: %v", uploadFieldNames)
		badRequest(c, "no files uploaded", err)
		return nil, err
	}

	label := c.PostForm("label")
	if label != "" && !models.IsRoomLabel(label) {
		err := fmt.Errorf("label must be one of %v", models.RoomLabels)
		badRequest(c, "invalid label", err)
		return nil, err
	}

	encoded, err := imaging.FromFiles(files)
	if err != nil {
		respondError(c, "failed to read uploaded photos", err)
		return nil, err
	}

	images := make([]models.PendingImage, len(encoded))
	for i, img := range encoded {
		images[i] = models.PendingImage{
			URL:     img.DataURL(),
			Label:   label,
			StyleID: c.PostForm("style_id"),
		}
	}
	return images, nil
}

func (h *PendingHandler) pendingFromJSON(c *gin.Context) ([]models.PendingImage, error) {
	var req models.AddPendingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body", err)
		return nil, err
	}

	images := make([]models.PendingImage, len(req.Images))
	for i, img := range req.Images {
		if _, err := imaging.ParseDataURL(img.URL); err != nil {
			respondError(c, fmt.Sprintf("invalid image at index %d", i), err)
			return nil, err
		}
		images[i] = models.PendingImage{URL: img.URL, Label: img.Label, StyleID: img.StyleID}
	}
	return images, nil
}

// GetPending godoc
// @Summary     Get the pending batch
// @Tags        pending
// @Produce     json
// @Param       id path string true "Listing ID"
// @Success     200 {object} models.PendingBatchResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /listings/{id}/pending [get]
func (h *PendingHandler) GetPending(c *gin.Context) {
	batch, err := h.manager.Pending(c.Param("id"))
	if err != nil {
		respondError(c, "failed to get pending batch", err)
		return
	}
	c.JSON(http.StatusOK, pendingResponse(c.Param("id"), batch))
}

// UpdatePending godoc
// @Summary     Edit a pending photo
// @Description Changes the room label and/or style override of one pending photo. An empty style_id clears the override.
// @Tags        pending
// @Accept      json
// @Produce     json
// @Param       id path string true "Listing ID"
// @Param       index path int true "Position in the pending batch"
// @Param       request body models.UpdatePendingRequest true "Changes"
// @Success     200 {object} models.PendingBatchResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     409 {object} models.ErrorResponse
// @Failure     422 {object} models.ErrorResponse
// @Router      /listings/{id}/pending/{index} [patch]
func (h *PendingHandler) UpdatePending(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		badRequest(c, "invalid index", err)
		return
	}

	var req models.UpdatePendingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body", err)
		return
	}

	batch, err := h.manager.UpdatePending(c.Param("id"), index, req.Label, req.StyleID)
	if err != nil {
		respondError(c, "failed to update pending photo", err)
		return
	}
	c.JSON(http.StatusOK, pendingResponse(c.Param("id"), batch))
}

// SetInstructions godoc
// @Summary     Set the batch custom prompt
// @Description With custom mode on and non-blank text, the text replaces every photo's style prompt for the next run.
// @Tags        pending
// @Accept      json
// @Produce     json
// @Param       id path string true "Listing ID"
// @Param       request body models.InstructionsRequest true "Custom prompt settings"
// @Success     200 {object} models.PendingBatchResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     409 {object} models.ErrorResponse
// @Router      /listings/{id}/pending/instructions [put]
func (h *PendingHandler) SetInstructions(c *gin.Context) {
	var req models.InstructionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body", err)
		return
	}

	batch, err := h.manager.SetInstructions(c.Param("id"), req.CustomMode, req.CustomPrompt)
	if err != nil {
		respondError(c, "failed to set instructions", err)
		return
	}
	c.JSON(http.StatusOK, pendingResponse(c.Param("id"), batch))
}

// Discard godoc
// @Summary     Discard the pending batch
// @Tags        pending
// @Param       id path string true "Listing ID"
// @Success     204
// @Failure     404 {object} models.ErrorResponse
// @Failure     409 {object} models.ErrorResponse
// @Router      /listings/{id}/pending [delete]
func (h *PendingHandler) Discard(c *gin.Context) {
	if err := h.manager.Discard(c.Param("id")); err != nil {
		respondError(c, "failed to discard pending batch", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Submit godoc
// @Summary     Stage the pending batch
// @Description Starts staging every pending photo in order, one at a time. Each result is saved to the listing as soon as it is ready.
// @Description Poll /progress or subscribe to /events to follow the run.
// @Tags        pending
// @Produce     json
// @Param       id path string true "Listing ID"
// @Success     202 {object} models.SubmitResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     409 {object} models.ErrorResponse
// @Failure     422 {object} models.ErrorResponse
// @Failure     503 {object} models.ErrorResponse
// @Router      /listings/{id}/pending/submit [post]
func (h *PendingHandler) Submit(c *gin.Context) {
	listingID := c.Param("id")
	batchID, total, err := h.manager.Submit(listingID)
	if err != nil {
		respondError(c, "failed to start staging", err)
		return
	}

	c.JSON(http.StatusAccepted, models.SubmitResponse{
		ListingID: listingID,
		BatchID:   batchID,
		Total:     total,
		Status:    "processing",
	})
}

// Progress godoc
// @Summary     Get staging progress
// @Description Returns the in-flight batch position and the report of the last finished batch
// @Tags        pending
// @Produce     json
// @Param       id path string true "Listing ID"
// @Success     200 {object} models.ProgressResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /listings/{id}/progress [get]
func (h *PendingHandler) Progress(c *gin.Context) {
	listingID := c.Param("id")
	status, err := h.manager.Progress(listingID)
	if err != nil {
		respondError(c, "failed to get progress", err)
		return
	}

	resp := models.ProgressResponse{
		ListingID:       listingID,
		InProgress:      status.InProgress,
		ProcessingIndex: status.ProcessingIndex,
		Total:           status.Total,
	}
	if status.InProgress && status.ProcessingIndex >= 0 {
		resp.Message = fmt.Sprintf("Processing %d/%d...", status.ProcessingIndex+1, status.Total)
	}
	if status.LastReport != nil {
		resp.LastBatch = reportResponse(*status.LastReport, status.LastErr)
	}
	c.JSON(http.StatusOK, resp)
}

func pendingResponse(listingID string, b staging.Batch) models.PendingBatchResponse {
	return models.PendingBatchResponse{
		ListingID:    listingID,
		Images:       b.Images,
		CustomMode:   b.CustomMode,
		CustomPrompt: b.CustomPrompt,
	}
}

func reportResponse(r staging.Report, runErr error) *models.BatchReportResponse {
	resp := &models.BatchReportResponse{
		BatchID:    r.BatchID,
		Total:      r.Total,
		Committed:  make([]string, len(r.Committed)),
		StartedAt:  r.StartedAt,
		FinishedAt: r.FinishedAt,
	}
	for i, img := range r.Committed {
		resp.Committed[i] = img.ID
	}
	for _, f := range r.Failures {
		resp.Failures = append(resp.Failures, models.ItemFailureResponse{
			Index: f.Index,
			Label: f.Label,
			Error: f.Err.Error(),
		})
	}
	if runErr != nil {
		resp.Error = runErr.Error()
	}
	return resp
}
