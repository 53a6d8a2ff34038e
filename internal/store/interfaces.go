package store

import (
	"context"

	"github.com/MKhiriev/go-course-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository provides persistence for user accounts.
type UserRepository interface {
	// CreateUser persists a new user and returns the stored record with
	// server-assigned fields populated. A duplicate email yields
	// [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail retrieves the user whose email exactly matches the
	// given value, or [ErrNoUserWasFound].
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// CourseRepository provides persistence for courses, including the joined
// owner projection used on read paths.
type CourseRepository interface {
	// GetAllCourses returns every course with its owner's public fields
	// populated.
	GetAllCourses(ctx context.Context) ([]models.Course, error)

	// GetCourse returns the course with the given id, owner populated,
	// or [ErrCourseNotFound].
	GetCourse(ctx context.Context, courseID int64) (models.Course, error)

	// CreateCourse persists a new course and returns it with the
	// server-assigned ID.
	CreateCourse(ctx context.Context, course models.Course) (models.Course, error)

	// UpdateCourse rewrites the mutable fields of an existing course.
	// The owner reference is never modified.
	UpdateCourse(ctx context.Context, course models.Course) error

	// DeleteCourse removes the course with the given id.
	DeleteCourse(ctx context.Context, courseID int64) error
}
