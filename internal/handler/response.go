package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"travel/internal/gateway"
	"travel/internal/repository"
	"travel/internal/service"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError sends an error response with the appropriate HTTP status code.
func respondError(c *gin.Context, err error) {
	code := mapErrorToHTTPStatus(err)
	if code == http.StatusInternalServerError {
		// Never leak persistence or transport internals to callers.
		c.JSON(code, ErrorResponse{Error: "internal error"})
		return
	}
	c.JSON(code, ErrorResponse{Error: err.Error()})
}

// respondJSON sends a JSON response with the given status code.
func respondJSON(c *gin.Context, code int, data any) {
	c.JSON(code, data)
}

// mapErrorToHTTPStatus maps service/repository errors to HTTP status codes.
func mapErrorToHTTPStatus(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound

	// Validation errors - Bad Request
	case errors.Is(err, service.ErrInvalidBookingID),
		errors.Is(err, service.ErrInvalidListingID),
		errors.Is(err, service.ErrInvalidGuestID),
		errors.Is(err, service.ErrInvalidPaymentID),
		errors.Is(err, service.ErrInvalidDateRange),
		errors.Is(err, service.ErrInvalidPrice),
		errors.Is(err, service.ErrInvalidTitle),
		errors.Is(err, service.ErrInvalidRating),
		errors.Is(err, service.ErrTxRefRequired):
		return http.StatusBadRequest

	// Gateway unreachable or unintelligible
	case errors.Is(err, gateway.ErrUnavailable):
		return http.StatusBadGateway

	// Default to internal server error
	default:
		return http.StatusInternalServerError
	}
}
