package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-course-api/internal/logger"
	"github.com/MKhiriev/go-course-api/internal/service"
	"github.com/MKhiriev/go-course-api/internal/store"
	"github.com/MKhiriev/go-course-api/internal/utils"
	"github.com/MKhiriev/go-course-api/models"
	"github.com/go-chi/chi/v5"
)

// courseIDFromRequest parses the {id} route parameter. A non-numeric id can
// never name a course, so the caller treats a parse failure the same as a
// missing course.
func courseIDFromRequest(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// listCourses returns every course with its owner's public fields embedded. Public.
func (h *Handler) listCourses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	courses, err := h.services.CourseService.ListCourses(ctx)
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Msg("unexpected error occurred during course listing")
		http.Error(w, http.StatusText(status), status)
		return
	}

	utils.WriteJSON(w, courses, http.StatusOK)
}

// getCourse returns one course with its owner's public fields embedded. Public.
func (h *Handler) getCourse(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	courseID, err := courseIDFromRequest(r)
	if err != nil {
		log.Err(err).Msg("non-numeric course id requested")
		utils.WriteJSON(w, models.MessageResponse{Message: msgCourseNotFound}, http.StatusNotFound)
		return
	}

	course, err := h.services.CourseService.GetCourse(ctx, courseID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrCourseNotFound):
			log.Debug().Int64("course_id", courseID).Msg("course not found")
			utils.WriteJSON(w, models.MessageResponse{Message: msgCourseNotFound}, http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during course lookup")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, course, http.StatusOK)
}

// createCourse persists a new course owned by the authenticated user and
// answers 201 with a Location header naming the created resource. The body
// stays empty on success.
func (h *Handler) createCourse(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	currentUser, ok := utils.GetCurrentUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user bound to the request context")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var input models.CourseInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	createdCourse, err := h.services.CourseService.CreateCourse(ctx, currentUser, input)
	if err != nil {
		if writeValidationErrors(w, err) {
			log.Err(err).Msg("course creation rejected by validation")
			return
		}

		log.Err(err).Msg("unexpected error occurred during course creation")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/courses/%d", createdCourse.ID))
	w.WriteHeader(http.StatusCreated)
}

// updateCourse rewrites an existing course's mutable fields. Absence beats
// ownership: a missing course is 404 even for a stranger, an existing course
// owned by somebody else is 403.
func (h *Handler) updateCourse(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	currentUser, ok := utils.GetCurrentUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user bound to the request context")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	courseID, err := courseIDFromRequest(r)
	if err != nil {
		log.Err(err).Msg("non-numeric course id requested")
		utils.WriteJSON(w, models.MessageResponse{Message: msgCourseNotFound}, http.StatusNotFound)
		return
	}

	var input models.CourseInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.CourseService.UpdateCourse(ctx, currentUser, courseID, input); err != nil {
		switch {
		case errors.Is(err, store.ErrCourseNotFound):
			log.Debug().Int64("course_id", courseID).Msg("course not found")
			utils.WriteJSON(w, models.MessageResponse{Message: msgCourseNotFound}, http.StatusNotFound)
			return
		case errors.Is(err, service.ErrNotCourseOwner):
			log.Err(err).Int64("course_id", courseID).Msg("update of foreign course rejected")
			utils.WriteJSON(w, models.MessageResponse{Message: msgNotAuthorizedUpdate}, http.StatusForbidden)
			return
		default:
			if writeValidationErrors(w, err) {
				log.Err(err).Msg("course update rejected by validation")
				return
			}

			log.Err(err).Msg("unexpected error occurred during course update")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	w.WriteHeader(http.StatusNoContent)
}

// deleteCourse removes an existing course after the same existence and
// ownership checks as updateCourse. Unexpected failures answer with a
// generic 500: the internal error text is logged with the trace id but
// never written to the client.
func (h *Handler) deleteCourse(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	currentUser, ok := utils.GetCurrentUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user bound to the request context")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	courseID, err := courseIDFromRequest(r)
	if err != nil {
		log.Err(err).Msg("non-numeric course id requested")
		utils.WriteJSON(w, models.MessageResponse{Message: msgCourseNotFound}, http.StatusNotFound)
		return
	}

	if err := h.services.CourseService.DeleteCourse(ctx, currentUser, courseID); err != nil {
		switch {
		case errors.Is(err, store.ErrCourseNotFound):
			log.Debug().Int64("course_id", courseID).Msg("course not found")
			utils.WriteJSON(w, models.MessageResponse{Message: msgCourseNotFound}, http.StatusNotFound)
			return
		case errors.Is(err, service.ErrNotCourseOwner):
			log.Err(err).Int64("course_id", courseID).Msg("deletion of foreign course rejected")
			utils.WriteJSON(w, models.MessageResponse{Message: msgNotAuthorizedDelete}, http.StatusForbidden)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during course deletion")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	w.WriteHeader(http.StatusNoContent)
}
