package service

import (
	"context"

	"github.com/MKhiriev/go-course-api/internal/validators"
	"github.com/MKhiriev/go-course-api/models"
)

// CourseValidationService is a decorator over CourseService that validates
// course input on creation, where no target resource exists yet and the
// payload can be rejected up front. Reads and deletes carry no body and are
// passed through untouched. Updates are also passed through: their input is
// validated inside the course service after the existence and ownership
// checks, so not-found and forbidden outcomes take precedence over a bad
// body.
type CourseValidationService struct {
	inner     CourseService
	validator validators.Validator
}

func NewCourseValidationService() CourseServiceWrapper {
	return &CourseValidationService{
		validator: validators.NewInputValidator(),
	}
}

func (v *CourseValidationService) ListCourses(ctx context.Context) ([]models.Course, error) {
	return v.inner.ListCourses(ctx)
}

func (v *CourseValidationService) GetCourse(ctx context.Context, courseID int64) (models.Course, error) {
	return v.inner.GetCourse(ctx, courseID)
}

func (v *CourseValidationService) CreateCourse(ctx context.Context, owner models.User, input models.CourseInput) (models.Course, error) {
	// a course must carry a title and a description
	if err := v.validator.Validate(ctx, input); err != nil {
		return models.Course{}, err
	}

	return v.inner.CreateCourse(ctx, owner, input)
}

func (v *CourseValidationService) UpdateCourse(ctx context.Context, principal models.User, courseID int64, input models.CourseInput) error {
	return v.inner.UpdateCourse(ctx, principal, courseID, input)
}

func (v *CourseValidationService) DeleteCourse(ctx context.Context, principal models.User, courseID int64) error {
	return v.inner.DeleteCourse(ctx, principal, courseID)
}

func (v *CourseValidationService) Wrap(wrapped CourseService) CourseService {
	v.inner = wrapped
	return v
}
