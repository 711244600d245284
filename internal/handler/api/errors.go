package api

import (
	"errors"
	"net/http"

	"fleet-booking/internal/handler/httperr"
	"fleet-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// abortWithUsecaseError maps the usecase error taxonomy onto HTTP statuses.
// Validation messages are safe to echo back; everything else is generic.
func abortWithUsecaseError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrInvalidInput):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
	case errors.Is(err, errs.ErrUnauthenticated):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Unauthorized", nil)
	case errors.Is(err, errs.ErrResourceNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Car not found", nil)
	case errors.Is(err, errs.ErrSlotConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, "Time slot already reserved", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
