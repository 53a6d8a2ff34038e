package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-course-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// The routing tests exercise the fully assembled router: middleware order,
// public/protected grouping and the method-not-allowed override.

func TestRoutes_PublicCourseReadNeedsNoCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, courseSvc := newTestHandler(t, ctrl)
	router := h.Init()

	courseSvc.EXPECT().GetCourse(gomock.Any(), int64(1)).Return(models.Course{ID: 1, Title: "Build a Basic Bookcase"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/courses/1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRoutes_ProtectedRoutesRejectMissingCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _ := newTestHandler(t, ctrl)
	router := h.Init()

	tests := []struct {
		method string
		target string
	}{
		{method: http.MethodGet, target: "/users"},
		{method: http.MethodPost, target: "/courses"},
		{method: http.MethodPut, target: "/courses/1"},
		{method: http.MethodDelete, target: "/courses/1"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			requireAccessDenied(t, rec)
		})
	}
}

func TestRoutes_RegistrationIsPublic(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, authSvc, _ := newTestHandler(t, ctrl)
	router := h.Init()

	authSvc.EXPECT().Register(gomock.Any(), gomock.Any()).Return(models.User{ID: 1}, nil)

	req := httptest.NewRequest(http.MethodPost, "/users",
		strings.NewReader(`{"firstName":"Joe","lastName":"Smith","emailAddress":"joe@smith.com","password":"joepassword"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestRoutes_UnsupportedMethodIsNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _ := newTestHandler(t, ctrl)
	router := h.Init()

	// DELETE is not registered for /users; the override answers 404, not 405
	req := httptest.NewRequest(http.MethodDelete, "/users", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRoutes_UnknownPathIsNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _ := newTestHandler(t, ctrl)
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/nowhere", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
