package utils

import (
	"errors"
	"net/http"

	"activityfinder/internal/models/response_models"

	"github.com/gin-gonic/gin"
)

const recommendationFailure = "Failed to get activity recommendations"

func RespondSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func RespondMissingFields(c *gin.Context, missing []string) {
	c.JSON(http.StatusBadRequest, response_models.ErrorResponse{
		Error:    "Missing required fields",
		Required: missing,
	})
}

// HandleServiceError writes the error response for a failed recommendation.
// details is only set by callers running in development.
func HandleServiceError(c *gin.Context, err error, details string) {
	switch {
	case errors.Is(err, ErrInvalidBody):
		c.JSON(http.StatusBadRequest, response_models.ErrorResponse{
			Error:   "Invalid request body",
			Message: err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, response_models.ErrorResponse{
			Error:   recommendationFailure,
			Message: err.Error(),
			Details: details,
		})
	}
}
