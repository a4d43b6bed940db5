package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"visionstage-backend/internal/imaging"
	"visionstage-backend/internal/listings"
	"visionstage-backend/internal/models"
	"visionstage-backend/internal/services"
	"visionstage-backend/internal/staging"
)

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, listings.ErrListingNotFound),
		errors.Is(err, listings.ErrImageNotFound),
		errors.Is(err, staging.ErrUnknownListing):
		return http.StatusNotFound
	case errors.Is(err, staging.ErrBatchInProgress):
		return http.StatusConflict
	case errors.Is(err, staging.ErrGatewayNotConfigured),
		errors.Is(err, staging.ErrManagerStopped),
		errors.Is(err, services.ErrStorageNotConfigured):
		return http.StatusServiceUnavailable
	case errors.Is(err, staging.ErrEmptyBatch),
		errors.Is(err, staging.ErrEmptyAdjustments),
		errors.Is(err, staging.ErrPendingIndex),
		errors.Is(err, imaging.ErrInvalidDataURL),
		errors.Is(err, imaging.ErrUnsupportedType):
		return http.StatusUnprocessableEntity
	case errors.Is(err, imaging.ErrTooLarge):
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, msg string, err error) {
	_ = c.Error(err)
	c.JSON(statusFor(err), models.ErrorResponse{
		Error:   msg,
		Message: err.Error(),
	})
}

func badRequest(c *gin.Context, msg string, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error:   msg,
		Message: err.Error(),
	})
}
