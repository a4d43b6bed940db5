package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"visionstage-backend/internal/models"
	"visionstage-backend/internal/styles"
)

type StylesHandler struct {
	registry *styles.Registry
}

func NewStylesHandler(registry *styles.Registry) *StylesHandler {
	return &StylesHandler{registry: registry}
}

// ListStyles godoc
// @Summary     List staging styles
// @Description Returns built-in styles in catalog order followed by custom styles in creation order
// @Tags        styles
// @Produce     json
// @Success     200 {object} models.StylesResponse
// @Router      /styles [get]
func (h *StylesHandler) ListStyles(c *gin.Context) {
	c.JSON(http.StatusOK, models.StylesResponse{Styles: h.registry.ListAll()})
}

// CreateStyle godoc
// @Summary     Create a custom style
// @Description Saves a named staging aesthetic. Name and prompt must not be blank.
// @Tags        styles
// @Accept      json
// @Produce     json
// @Param       request body models.CreateStyleRequest true "Style definition"
// @Success     201 {object} models.StagingStyle
// @Failure     400 {object} models.ErrorResponse
// @Failure     422 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /styles [post]
func (h *StylesHandler) CreateStyle(c *gin.Context) {
	var req models.CreateStyleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body", err)
		return
	}

	style, outcome, err := h.registry.CreateCustomStyle(c.Request.Context(), req.Name, req.Prompt, req.Icon)
	if err != nil {
		respondError(c, "failed to create style", err)
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

// GetStyle godoc
// @Summary     Get a style
// @Tags        styles
// @Produce     json
// @Param       style_id path string true "Style ID"
// @Success     200 {object} models.StagingStyle
// @Failure     404 {object} models.ErrorResponse
// @Router      /styles/{style_id} [get]
func (h *StylesHandler) GetStyle(c *gin.Context) {
	style, ok := h.registry.Resolve(c.Param("style_id"))
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "style not found"})
		return
	}
	c.JSON(http.StatusOK, style)
}

// RoomLabels godoc
// @Summary     List room labels
// @Description Returns the room types a photo can be tagged with
// @Tags        styles
// @Produce     json
// @Success     200 {object} models.RoomLabelsResponse
// @Router      /room-labels [get]
func (h *StylesHandler) RoomLabels(c *gin.Context) {
	c.JSON(http.StatusOK, models.RoomLabelsResponse{Labels: models.RoomLabels})
}
