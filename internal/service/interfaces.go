package service

import (
	"context"

	"github.com/MKhiriev/go-course-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService handles account registration and credential verification.
type AuthService interface {
	// Register creates a new account from the registration payload.
	// The raw password is hashed exactly once, inside this call, before it
	// reaches the store. A duplicate email surfaces as a
	// *models.ValidationError, the same kind as any other constraint
	// violation.
	Register(ctx context.Context, reg models.UserRegistration) (models.User, error)

	// VerifyCredentials resolves the user behind an email/password pair.
	// It returns ErrInvalidCredentials for an unknown email and for a wrong
	// password alike: callers must not be able to tell which half failed.
	VerifyCredentials(ctx context.Context, email, password string) (models.User, error)
}

// CourseService handles course reads and owner-gated mutations.
type CourseService interface {
	// ListCourses returns all courses with owner projections. Public.
	ListCourses(ctx context.Context) ([]models.Course, error)

	// GetCourse returns one course with its owner projection, or
	// store.ErrCourseNotFound. Public.
	GetCourse(ctx context.Context, courseID int64) (models.Course, error)

	// CreateCourse persists a new course owned by owner. The owner always
	// comes from the authenticated request, never from the payload.
	CreateCourse(ctx context.Context, owner models.User, input models.CourseInput) (models.Course, error)

	// UpdateCourse rewrites the course's mutable fields after confirming it
	// exists (store.ErrCourseNotFound otherwise) and that principal owns it
	// (ErrNotCourseOwner otherwise). The existence check runs first.
	UpdateCourse(ctx context.Context, principal models.User, courseID int64, input models.CourseInput) error

	// DeleteCourse removes the course after the same existence-then-ownership
	// checks as UpdateCourse.
	DeleteCourse(ctx context.Context, principal models.User, courseID int64) error
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// validating.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService // returns a decorated AuthService applying additional behavior
}

// CourseServiceWrapper defines middleware composition for CourseService.
// Implementations wrap an existing CourseService to add behavior such as
// validating.
type CourseServiceWrapper interface {
	Wrap(CourseService) CourseService // returns a decorated CourseService applying additional behavior
}
