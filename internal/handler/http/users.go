package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-course-api/internal/logger"
	"github.com/MKhiriev/go-course-api/internal/utils"
	"github.com/MKhiriev/go-course-api/models"
)

// getUser returns the authenticated user's own public fields. The principal
// was already resolved and bound by the auth middleware; the password hash
// never appears in the response.
func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	currentUser, ok := utils.GetCurrentUserFromContext(r.Context())
	if !ok {
		log.Error().Msg("no authenticated user bound to the request context")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, currentUser.Public(), http.StatusOK)
}

// createUser registers a new account. On success it answers 201 with a
// Location header pointing at the API root and an empty body; no account
// fields are echoed back. Constraint violations, the duplicate email
// included, come back as 400 with the { "errors": [...] } list.
func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var registration models.UserRegistration
	if err := json.NewDecoder(r.Body).Decode(&registration); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if _, err := h.services.AuthService.Register(ctx, registration); err != nil {
		if writeValidationErrors(w, err) {
			log.Err(err).Msg("user registration rejected by validation")
			return
		}

		log.Err(err).Msg("unexpected error occurred during user registration")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Location", "/")
	w.WriteHeader(http.StatusCreated)
}
