package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"visionstage-backend/internal/listings"
	"visionstage-backend/internal/models"
	"visionstage-backend/internal/styles"
)

type ListingsHandler struct {
	store    *listings.Store
	registry *styles.Registry
}

func NewListingsHandler(store *listings.Store, registry *styles.Registry) *ListingsHandler {
	return &ListingsHandler{
		store:    store,
		registry: registry,
	}
}

// ListListings godoc
// @Summary     List listings
// @Description Returns every listing, newest first, with its cover image and room count
// @Tags        listings
// @Produce     json
// @Success     200 {object} models.ListingListResponse
// @Router      /listings [get]
func (h *ListingsHandler) ListListings(c *gin.Context) {
	all := h.store.List()

	summaries := make([]models.ListingSummary, len(all))
	for i, l := range all {
		summaries[i] = models.ListingSummary{
			ID:              l.ID,
			Address:         l.Address,
			TargetStyleID:   l.TargetStyleID,
			TargetStyleName: h.registry.ResolveOrDefault(l.TargetStyleID).Name,
			RoomCount:       len(l.Images),
			CreatedAt:       l.CreatedAt,
		}
		if len(l.Images) > 0 {
			summaries[i].CoverURL = l.Images[0].URL
		}
	}

	c.JSON(http.StatusOK, models.ListingListResponse{Listings: summaries})
}

// CreateListing godoc
// @Summary     Create a listing
// @Description Creates a property listing with a master style. The style defaults to the first built-in.
// @Tags        listings
// @Accept      json
// @Produce     json
// @Param       request body models.CreateListingRequest true "Listing"
// @Success     201 {object} models.ListingResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     422 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /listings [post]
func (h *ListingsHandler) CreateListing(c *gin.Context) {
	var req models.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body", err)
		return
	}
	if req.TargetStyleID == "" {
		req.TargetStyleID = h.registry.Default().ID
	}

	listing, outcome, err := h.store.CreateListing(c.Request.Context(), req.Address, req.TargetStyleID)
	if err != nil {
		respondError(c, "failed to create listing", err)
		return
	}
	if outcome == models.OutcomeFailedPrecondition {
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Error:   "address is required",
			Message: string(outcome),
		})
		return
	}

	c.JSON(http.StatusCreated, h.listingResponse(listing))
}

// GetListing godoc
// @Summary     Get a listing
// @Description Returns a listing with its staged images, newest first
// @Tags        listings
// @Produce     json
// @Param       id path string true "Listing ID"
// @Success     200 {object} models.ListingResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /listings/{id} [get]
func (h *ListingsHandler) GetListing(c *gin.Context) {
	listing, ok := h.store.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "listing not found"})
		return
	}
	c.JSON(http.StatusOK, h.listingResponse(listing))
}

// UpdateFeedback godoc
// @Summary     Rate a staged image
// @Description Sets the 1-5 rating and the feedback text of an image. Either may be omitted; a rating of 0 leaves the image unrated.
// @Tags        listings
// @Accept      json
// @Produce     json
// @Param       id path string true "Listing ID"
// @Param       image_id path string true "Image ID"
// @Param       request body models.FeedbackRequest true "Feedback"
// @Success     200 {object} models.OutcomeResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /listings/{id}/images/{image_id}/feedback [put]
func (h *ListingsHandler) UpdateFeedback(c *gin.Context) {
	var req models.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body", err)
		return
	}

	// 0 is "no stars yet".
	rating := req.Rating
	if rating != nil && *rating == 0 {
		rating = nil
	}

	outcome, err := h.store.UpdateImageFeedback(c.Request.Context(), c.Param("id"), c.Param("image_id"), rating, req.Feedback)
	if err != nil {
		respondError(c, "failed to save feedback", err)
		return
	}
	if outcome == models.OutcomeNotFound {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "image not found", Message: string(outcome)})
		return
	}

	c.JSON(http.StatusOK, models.OutcomeResponse{Outcome: outcome})
}

// SaveStyle godoc
// @Summary     Save an image's style as a custom style
// @Description Creates a custom style pre-filled as a variant of the style that produced the image. Body fields override the pre-filled values.
// @Tags        listings
// @Accept      json
// @Produce     json
// @Param       id path string true "Listing ID"
// @Param       image_id path string true "Image ID"
// @Param       request body models.SaveStyleRequest false "Overrides"
// @Success     201 {object} models.StagingStyle
// @Failure     404 {object} models.ErrorResponse
// @Failure     422 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /listings/{id}/images/{image_id}/save-style [post]
func (h *ListingsHandler) SaveStyle(c *gin.Context) {
	_, img, err := h.store.FindImage(c.Param("id"), c.Param("image_id"))
	if err != nil {
		respondError(c, "image not found", err)
		return
	}

	var req models.SaveStyleRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid request body", err)
			return
		}
	}

	name, prompt := h.registry.DeriveVariant(img.StyleID)
	if req.Name != "" {
		name = req.Name
	}
	if req.Prompt != "" {
		prompt = req.Prompt
	}

	style, outcome, err := h.registry.CreateCustomStyle(c.Request.Context(), name, prompt, req.Icon)
	if err != nil {
		respondError(c, "failed to save style", err)
		return
	}
	if outcome == models.OutcomeFailedPrecondition {
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Error:   "name and prompt are required",
			Message: string(outcome),
		})
		return
	}

	c.JSON(http.StatusCreated, style)
}

func (h *ListingsHandler) listingResponse(l models.Listing) models.ListingResponse {
	return models.ListingResponse{
		Listing:         l,
		TargetStyleName: h.registry.ResolveOrDefault(l.TargetStyleID).Name,
	}
}
