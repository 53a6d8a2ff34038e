package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-course-api/internal/logger"
	"github.com/MKhiriev/go-course-api/internal/mock"
	"github.com/MKhiriev/go-course-api/internal/service"
	"github.com/MKhiriev/go-course-api/internal/utils"
	"github.com/MKhiriev/go-course-api/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// Helpers shared by the handler tests
// ─────────────────────────────────────────────

// newTestHandler builds a Handler over gomock service mocks.
func newTestHandler(t *testing.T, ctrl *gomock.Controller) (*Handler, *mock.MockAuthService, *mock.MockCourseService) {
	t.Helper()

	authSvc := mock.NewMockAuthService(ctrl)
	courseSvc := mock.NewMockCourseService(ctrl)

	h := NewHandler(&service.Services{
		AuthService:   authSvc,
		CourseService: courseSvc,
	}, logger.Nop())

	return h, authSvc, courseSvc
}

// withPrincipal binds an authenticated user to the request context, the same
// way the auth middleware does.
func withPrincipal(r *http.Request, user models.User) *http.Request {
	ctx := context.WithValue(r.Context(), utils.CurrentUserCtxKey, user)
	return r.WithContext(ctx)
}

// withCourseID sets the chi {id} route parameter on the request context.
func withCourseID(r *http.Request, id string) *http.Request {
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, routeCtx))
}

func TestNewHandler(t *testing.T) {
	services := &service.Services{}

	h := NewHandler(services, logger.Nop())

	assert.NotNil(t, h)
	assert.Same(t, services, h.services)
}

func TestHandler_Init_BuildsRouter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, courseSvc := newTestHandler(t, ctrl)
	router := h.Init()

	courseSvc.EXPECT().ListCourses(gomock.Any()).Return([]models.Course{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/courses", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}
