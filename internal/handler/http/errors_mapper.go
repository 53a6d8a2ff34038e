package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-course-api/internal/service"
	"github.com/MKhiriev/go-course-api/internal/store"
	"github.com/MKhiriev/go-course-api/internal/utils"
	"github.com/MKhiriev/go-course-api/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidCredentials: http.StatusUnauthorized,
	service.ErrNotCourseOwner:     http.StatusForbidden,

	store.ErrEmailAlreadyExists: http.StatusBadRequest,
	store.ErrNoUserWasFound:     http.StatusNotFound,
	store.ErrCourseNotFound:     http.StatusNotFound,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeValidationErrors translates a constraint failure into the fixed
// 400 body { "errors": [messages...] } and reports whether it did so.
//
// Classification is by error kind, not message text: only a
// *models.ValidationError is recognized, whether it came from input
// validation or from a uniqueness constraint in the store. Anything else is
// left for the caller's own error handling.
func writeValidationErrors(w http.ResponseWriter, err error) bool {
	var validationErr *models.ValidationError
	if !errors.As(err, &validationErr) {
		return false
	}

	utils.WriteJSON(w, models.ErrorListResponse{Errors: validationErr.Messages}, http.StatusBadRequest)
	return true
}
