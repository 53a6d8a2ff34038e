package service

import (
	"context"

	"github.com/MKhiriev/go-course-api/internal/validators"
	"github.com/MKhiriev/go-course-api/models"
)

// AuthValidationService is a decorator over AuthService that validates
// registration input before it reaches the inner implementation. Invalid
// input short-circuits with a *models.ValidationError and the inner service
// is never called.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewInputValidator(),
	}
}

func (v *AuthValidationService) Register(ctx context.Context, reg models.UserRegistration) (models.User, error) {
	// registration must carry first name, last name, a well-formed email
	// address and a password
	if err := v.validator.Validate(ctx, reg); err != nil {
		return models.User{}, err
	}

	return v.inner.Register(ctx, reg)
}

// VerifyCredentials is passed through untouched: empty or malformed
// credentials are an authentication failure, not a validation one.
func (v *AuthValidationService) VerifyCredentials(ctx context.Context, email, password string) (models.User, error) {
	return v.inner.VerifyCredentials(ctx, email, password)
}

func (v *AuthValidationService) Wrap(wrapped AuthService) AuthService {
	v.inner = wrapped
	return v
}
