package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authentication
	router.Group(func(r chi.Router) {
		r.Post("/users", h.createUser)
		r.Get("/courses", h.listCourses)
		r.Get("/courses/{id}", h.getCourse)
	})

	// routes behind basic authentication
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/users", h.getUser)
		r.Post("/courses", h.createCourse)
		r.Put("/courses/{id}", h.updateCourse)
		r.Delete("/courses/{id}", h.deleteCourse)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
