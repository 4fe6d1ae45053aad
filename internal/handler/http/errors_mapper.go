package http

import (
	"errors"
	"net/http"

	"github.com/openscilab/lab-auth-keeper/internal/service"
	"github.com/openscilab/lab-auth-keeper/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrEmailNotSet:         http.StatusBadRequest,
	service.ErrInvalidToken:        http.StatusBadRequest,
	service.ErrTokenExpired:        http.StatusGone,

	service.ErrWrongCredentials:  http.StatusUnauthorized,
	service.ErrWrongMFACode:      http.StatusUnauthorized,
	service.ErrUserNotAuthorized: http.StatusUnauthorized,

	service.ErrMFARequired:     http.StatusForbidden,
	service.ErrSignupDisabled:  http.StatusForbidden,
	service.ErrFeatureDisabled: http.StatusForbidden,

	service.ErrUserNotFound:        http.StatusNotFound,
	service.ErrUsernameTaken:       http.StatusConflict,
	service.ErrUserStillAuthorized: http.StatusConflict,
	service.ErrMFANotEnabled:       http.StatusConflict,

	service.ErrUserBlocked: http.StatusTooManyRequests,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
