package controllers

import (
	"errors"
	"net/http"

	"github.com/Emeenent14/omniverse/models"
	"github.com/Emeenent14/omniverse/services"
	"github.com/gin-gonic/gin"
)

// respondError maps the service error taxonomy onto HTTP statuses. Anything
// unrecognized becomes an opaque 500.
func respondError(c *gin.Context, err error) {
	var validationErr *models.ValidationError
	var notFoundErr *models.NotFoundError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Validation failed",
			Errors:  map[string]string{validationErr.Field: validationErr.Message},
		})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: notFoundErr.Error(),
		})
	case errors.Is(err, services.ErrNotProductSeller):
		c.JSON(http.StatusForbidden, models.ErrorResponse{
			Success: false,
			Message: err.Error(),
		})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Success: false,
			Message: err.Error(),
		})
	case errors.Is(err, services.ErrInvalidOTP):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: err.Error(),
		})
	case errors.Is(err, services.ErrResetUnavailable):
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
			Success: false,
			Message: err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Internal server error",
		})
	}
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Success: false,
		Message: message,
	})
}
