package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-course-api/internal/logger"
	"github.com/MKhiriev/go-course-api/internal/service"
	"github.com/MKhiriev/go-course-api/internal/utils"
	"github.com/MKhiriev/go-course-api/models"
)

// auth is an HTTP middleware that enforces Basic authentication.
//
// It extracts the email/password pair from the incoming "Authorization"
// header, resolves the account via [service.AuthService.VerifyCredentials],
// and — on success — stores the authenticated user in the request context
// under [utils.CurrentUserCtxKey] before delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized and the fixed
// body {"message": "Access Denied"} in the following cases:
//   - The "Authorization" header is absent or is not a well-formed Basic
//     challenge. The credential verifier is never called for these.
//   - The credentials do not resolve to an account
//     ([service.ErrInvalidCredentials]). Unknown email and wrong password
//     are indistinguishable in the response.
//
// Any other verification failure is treated as unexpected and answered with
// a generic 500; the underlying error is logged, never sent to the client.
//
// All rejection events are logged using the context-scoped logger obtained
// via [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		email, password, ok := r.BasicAuth()
		if !ok {
			log.Err(ErrNoBasicCredentials).Send()
			utils.WriteJSON(w, models.MessageResponse{Message: msgAccessDenied}, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		currentUser, err := h.services.AuthService.VerifyCredentials(ctx, email, password)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrInvalidCredentials):
				log.Err(err).Str("email", email).Msg("authentication failed")
				utils.WriteJSON(w, models.MessageResponse{Message: msgAccessDenied}, http.StatusUnauthorized)
				return
			default:
				log.Err(err).Msg("unexpected error occurred during credential verification")
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}
		}

		// Store the authenticated user in the context so that downstream
		// handlers can retrieve it without re-verifying credentials.
		ctx = context.WithValue(ctx, utils.CurrentUserCtxKey, currentUser)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
