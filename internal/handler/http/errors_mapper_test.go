package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/mzotov/cliptide/internal/service"
	"github.com/mzotov/cliptide/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid data", service.ErrInvalidDataProvided, http.StatusBadRequest},
		{"invalid credentials", service.ErrInvalidCredentials, http.StatusUnauthorized},
		{"expired token", service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
		{"session revoked", service.ErrSessionRevoked, http.StatusUnauthorized},
		{"session not owned", service.ErrSessionNotOwned, http.StatusForbidden},
		{"rate limited", service.ErrRateLimited, http.StatusTooManyRequests},
		{"two-factor lockout", service.ErrTwoFALockout, http.StatusTooManyRequests},
		{"credential taken", service.ErrCredentialTaken, http.StatusConflict},
		{"account not found", service.ErrAccountNotFound, http.StatusNotFound},
		{"duplicate credential", store.ErrDuplicateCredential, http.StatusConflict},
		{"no user found", store.ErrNoUserWasFound, http.StatusNotFound},
		{"query execution", store.ErrExecutingQuery, http.StatusInternalServerError},
		{"unmapped error", errors.New("something else"), http.StatusInternalServerError},
		{"nil error", nil, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestStatusFromError_WrappedError(t *testing.T) {
	wrapped := fmt.Errorf("login: %w", service.ErrInvalidCredentials)
	assert.Equal(t, http.StatusUnauthorized, statusFromError(wrapped))
}
