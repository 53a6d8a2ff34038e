package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-course-api/internal/logger"
	"github.com/MKhiriev/go-course-api/internal/mock"
	"github.com/MKhiriev/go-course-api/internal/store"
	"github.com/MKhiriev/go-course-api/internal/validators"
	"github.com/MKhiriev/go-course-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuthValidationService_Register_RejectsInvalidInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// inner service must never be reached for invalid input
	inner := mock.NewMockAuthService(ctrl)
	svc := NewAuthValidationService().Wrap(inner)

	_, err := svc.Register(context.Background(), models.UserRegistration{})

	var validationErr *models.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{
		validators.MsgFirstNameRequired,
		validators.MsgLastNameRequired,
		validators.MsgEmailRequired,
		validators.MsgPasswordRequired,
	}, validationErr.Messages)
}

func TestAuthValidationService_Register_PassesValidInputThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	inner := mock.NewMockAuthService(ctrl)
	svc := NewAuthValidationService().Wrap(inner)

	reg := models.UserRegistration{
		FirstName: "Joe",
		LastName:  "Smith",
		Email:     "joe@smith.com",
		Password:  "joepassword",
	}
	inner.EXPECT().Register(gomock.Any(), reg).Return(models.User{ID: 1}, nil)

	user, err := svc.Register(context.Background(), reg)
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
}

func TestAuthValidationService_VerifyCredentials_NotValidated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	inner := mock.NewMockAuthService(ctrl)
	svc := NewAuthValidationService().Wrap(inner)

	// empty credentials must reach the inner service: they are an
	// authentication failure, not a validation failure
	inner.EXPECT().VerifyCredentials(gomock.Any(), "", "").Return(models.User{}, ErrInvalidCredentials)

	_, err := svc.VerifyCredentials(context.Background(), "", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestCourseValidationService_CreateValidatedUpFront(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no course exists yet on creation, so the inner service is never reached
	// for an invalid payload
	inner := mock.NewMockCourseService(ctrl)
	svc := NewCourseValidationService().Wrap(inner)

	_, err := svc.CreateCourse(context.Background(), models.User{ID: 1}, models.CourseInput{})

	var validationErr *models.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{validators.MsgTitleRequired, validators.MsgDescriptionRequired}, validationErr.Messages)
}

func TestCourseValidationService_UpdateNotValidatedUpFront(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// updates always reach the inner service: existence and ownership are
	// decided there before the body is ever validated
	inner := mock.NewMockCourseService(ctrl)
	svc := NewCourseValidationService().Wrap(inner)

	invalid := models.CourseInput{}
	inner.EXPECT().UpdateCourse(gomock.Any(), models.User{ID: 1}, int64(3), invalid).Return(ErrNotCourseOwner)

	err := svc.UpdateCourse(context.Background(), models.User{ID: 1}, 3, invalid)
	assert.ErrorIs(t, err, ErrNotCourseOwner)
}

func TestWrappedCourseService_UpdateOrdering(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// full service chain over a repository mock, the same composition
	// NewServices builds
	repo := mock.NewMockCourseRepository(ctrl)
	svc := NewCourseValidationService().Wrap(NewCourseService(repo, logger.Nop()))

	invalid := models.CourseInput{}
	principal := models.User{ID: 7}

	repo.EXPECT().GetCourse(gomock.Any(), int64(404)).Return(models.Course{}, store.ErrCourseNotFound)
	err := svc.UpdateCourse(context.Background(), principal, 404, invalid)
	assert.ErrorIs(t, err, store.ErrCourseNotFound, "missing course wins over invalid body")

	repo.EXPECT().GetCourse(gomock.Any(), int64(3)).Return(models.Course{ID: 3, UserID: 99}, nil)
	err = svc.UpdateCourse(context.Background(), principal, 3, invalid)
	assert.ErrorIs(t, err, ErrNotCourseOwner, "foreign course wins over invalid body")

	repo.EXPECT().GetCourse(gomock.Any(), int64(5)).Return(models.Course{ID: 5, UserID: 7}, nil)
	err = svc.UpdateCourse(context.Background(), principal, 5, invalid)
	var validationErr *models.ValidationError
	assert.ErrorAs(t, err, &validationErr, "owner's invalid body is the only 400 case")
}

func TestCourseValidationService_ReadAndDeletePassThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	inner := mock.NewMockCourseService(ctrl)
	svc := NewCourseValidationService().Wrap(inner)
	ctx := context.Background()

	inner.EXPECT().ListCourses(gomock.Any()).Return([]models.Course{{ID: 1}}, nil)
	inner.EXPECT().GetCourse(gomock.Any(), int64(1)).Return(models.Course{ID: 1}, nil)
	inner.EXPECT().DeleteCourse(gomock.Any(), models.User{ID: 1}, int64(1)).Return(nil)

	courses, err := svc.ListCourses(ctx)
	require.NoError(t, err)
	assert.Len(t, courses, 1)

	_, err = svc.GetCourse(ctx, 1)
	require.NoError(t, err)

	assert.NoError(t, svc.DeleteCourse(ctx, models.User{ID: 1}, 1))
}
