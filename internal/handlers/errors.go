package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/skybook/skybook-web/pkg/errors"
	"github.com/skybook/skybook-web/pkg/skyapi"
)

const genericErrorMessage = "Something went wrong. Please try again."

// attachError attaches err to the gin context so the observability middleware
// can include the reason in the request log. c.Error() returns *gin.Error (not
// the error interface), so we suppress errcheck here intentionally.
func attachError(c *gin.Context, err error) {
	if err != nil {
		_ = c.Error(err) //nolint:errcheck
	}
}

// respondError sends an error JSON response and attaches the error to the gin context
// so the observability middleware can include the reason in the request log.
func respondError(c *gin.Context, status int, message string, err error) {
	attachError(c, err)
	c.JSON(status, gin.H{"error": message})
}

// respondErrorWithDetails sends an error response with an additional details field.
func respondErrorWithDetails(c *gin.Context, status int, message string, details any, err error) {
	attachError(c, err)
	c.JSON(status, gin.H{"error": message, "details": details})
}

// respondBindError answers a form that failed to bind or validate.
func respondBindError(c *gin.Context, err error) {
	if details := ParseValidationErrors(err); len(details) > 0 {
		respondErrorWithDetails(c, http.StatusBadRequest, "Validation failed", details, err)
		return
	}
	respondError(c, http.StatusBadRequest, "Invalid request", err)
}

// statusFor maps an operation error onto the page response status.
func statusFor(err error) int {
	var apiErr *skyapi.APIError
	switch {
	case err == nil:
		return http.StatusOK
	case apperrors.Is(err, apperrors.ErrBusy):
		return http.StatusConflict
	case apperrors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	case apperrors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case apperrors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized
	case apperrors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden
	case errors.As(err, &apiErr):
		if apiErr.StatusCode >= 400 && apiErr.StatusCode < 500 {
			return apiErr.StatusCode
		}
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// messageFor is the user-facing text for err.
func messageFor(err error, fallback string) string {
	if v, ok := apperrors.AsValidation(err); ok {
		return v.Message
	}
	if fallback == "" {
		fallback = genericErrorMessage
	}
	return skyapi.MessageOr(err, fallback)
}
