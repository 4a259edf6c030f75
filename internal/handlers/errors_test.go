package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/skybook/skybook-web/pkg/errors"
	"github.com/skybook/skybook-web/pkg/skyapi"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"busy", apperrors.ErrBusy, http.StatusConflict},
		{"validation", apperrors.NewValidationError("seat", "unknown seat"), http.StatusBadRequest},
		{"not found", apperrors.NotFoundError("flight"), http.StatusNotFound},
		{"backend 401", &skyapi.APIError{Message: "Please log in", StatusCode: 401}, http.StatusUnauthorized},
		{"backend 403", &skyapi.APIError{Message: "Forbidden", StatusCode: 403}, http.StatusForbidden},
		{"backend 409", fmt.Errorf("create booking: %w", &skyapi.APIError{Message: "Seat taken", StatusCode: 409}), http.StatusConflict},
		{"backend 500", &skyapi.APIError{Message: "boom", StatusCode: 500}, http.StatusBadGateway},
		{"other", errors.New("dial tcp: refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.err))
		})
	}
}

func TestMessageFor(t *testing.T) {
	assert.Equal(t, "Passwords do not match",
		messageFor(apperrors.NewValidationError("confirmPassword", "Passwords do not match"), "fallback"))
	assert.Equal(t, "Seat taken",
		messageFor(fmt.Errorf("wrapped: %w", &skyapi.APIError{Message: "Seat taken", StatusCode: 409}), "fallback"))
	assert.Equal(t, "fallback", messageFor(errors.New("network down"), "fallback"))
	assert.Equal(t, genericErrorMessage, messageFor(errors.New("network down"), ""))
}
