package domain_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gechostel/hosteldesk/internal/domain"
)

func TestOfflineError(t *testing.T) {
	err := domain.NewOfflineError()

	assert.True(t, err.Offline)
	assert.Zero(t, err.Status)
	assert.True(t, domain.IsOffline(err))
	assert.ErrorIs(t, err, domain.ErrServerOffline)
	assert.Equal(t, "Server is not reachable. Please check your internet connection or try again later.", err.Error())
}

func TestServerErrorClassification(t *testing.T) {
	tests := []struct {
		status int
		kind   error
	}{
		{http.StatusUnauthorized, domain.ErrAuthFailed},
		{http.StatusForbidden, domain.ErrAuthFailed},
		{http.StatusNotFound, domain.ErrNotFound},
		{http.StatusConflict, domain.ErrConflict},
		{http.StatusBadRequest, domain.ErrValidation},
		{http.StatusInternalServerError, domain.ErrValidation},
	}

	for _, tt := range tests {
		err := domain.NewServerError(tt.status, "boom")
		assert.ErrorIs(t, err, tt.kind, "status %d", tt.status)
		assert.False(t, domain.IsOffline(err))
		assert.False(t, err.Offline)
	}
}

func TestServerErrorMessageFallsBackToStatusText(t *testing.T) {
	err := domain.NewServerError(http.StatusNotFound, "")
	assert.Equal(t, "Not Found", err.Message)

	err = domain.NewServerError(http.StatusConflict, "Email already registered")
	assert.Equal(t, "Email already registered", err.Message)
}

func TestIsOfflineThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("submit payment: %w", domain.NewOfflineError())
	assert.True(t, domain.IsOffline(wrapped))

	assert.False(t, domain.IsOffline(errors.New("plain")))
	assert.False(t, domain.IsOffline(nil))

	var apiErr *domain.APIError
	require.ErrorAs(t, wrapped, &apiErr)
	assert.True(t, apiErr.Offline)
}
