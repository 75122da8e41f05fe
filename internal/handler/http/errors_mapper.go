package http

import (
	"errors"
	"net/http"

	"github.com/mzotov/cliptide/internal/service"
	"github.com/mzotov/cliptide/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrSessionRevoked:          http.StatusUnauthorized,
	service.ErrInvalidTwoFactorCode:    http.StatusUnauthorized,
	service.ErrTwoFAChallengeExpired:   http.StatusUnauthorized,
	service.ErrEmailTokenInvalid:       http.StatusUnauthorized,
	service.ErrPermissionDenied:        http.StatusForbidden,
	service.ErrSessionNotOwned:         http.StatusForbidden,
	service.ErrRateLimited:             http.StatusTooManyRequests,
	service.ErrTwoFALockout:            http.StatusTooManyRequests,
	service.ErrCredentialTaken:         http.StatusConflict,
	service.ErrTwoFAAlreadyEnabled:     http.StatusConflict,
	service.ErrTwoFANotEnabled:         http.StatusConflict,
	service.ErrTwoFASetupNotInitiated:  http.StatusConflict,
	service.ErrEmailAlreadyVerified:    http.StatusConflict,
	service.ErrAccountNotDeleted:       http.StatusConflict,
	service.ErrAccountNotFound:         http.StatusNotFound,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	store.ErrDuplicateCredential: http.StatusConflict,
	store.ErrNoUserWasFound:      http.StatusNotFound,
	store.ErrSessionNotFound:     http.StatusNotFound,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
