package http

import (
	"errors"
	"net/http"

	"github.com/recipebookapp/recipebook-server/internal/service"
	"github.com/recipebookapp/recipebook-server/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidShareRole:        http.StatusBadRequest,
	service.ErrTokenIsExpired:          http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrAccessDenied:            http.StatusForbidden,
	service.ErrRecipeNotFound:          http.StatusNotFound,
	service.ErrShareNotFound:           http.StatusNotFound,
	service.ErrUserNotFound:            http.StatusNotFound,

	store.ErrUserNotFound:          http.StatusNotFound,
	store.ErrRecipeNotFound:        http.StatusNotFound,
	store.ErrShareNotFound:         http.StatusNotFound,
	store.ErrEmailAlreadyExists:    http.StatusConflict,
	store.ErrUnknownUserReferenced: http.StatusNotFound,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
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
