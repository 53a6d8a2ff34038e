package service

import (
	"github.com/MKhiriev/go-course-api/internal/config"
	"github.com/MKhiriev/go-course-api/internal/logger"
	"github.com/MKhiriev/go-course-api/internal/store"
)

type Services struct {
	AuthService   AuthService
	CourseService CourseService
}

// NewServices builds the service layer on top of the given storages.
// Each service is wrapped in its validation decorator, so handlers always
// talk to validated services.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:   NewAuthValidationService().Wrap(NewAuthService(storages.UserRepository, cfg.App, logger)),
		CourseService: NewCourseValidationService().Wrap(NewCourseService(storages.CourseRepository, logger)),
	}
}
