package validators

import (
	"context"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-course-api/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldFirstName targets a user's given name.
	FieldFirstName = "first_name"

	// FieldLastName targets a user's family name.
	FieldLastName = "last_name"

	// FieldEmail targets a user's email, checking both presence and shape.
	FieldEmail = "email"

	// FieldPassword targets the raw password of a registration payload.
	FieldPassword = "password"

	// FieldTitle targets a course title.
	FieldTitle = "title"

	// FieldDescription targets a course description.
	FieldDescription = "description"
)

// emailPattern is a deliberately loose shape check: one "@", a non-empty
// local part, and a dotted domain. Anything stricter rejects valid
// addresses; real verification happens out of band.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// InputValidator implements the Validator interface for the inbound write
// payloads: UserRegistration and CourseInput. Both value and pointer forms
// are accepted.
//
// Violations are collected in declaration order and returned together as a
// single *models.ValidationError, mirroring the API contract of one message
// per violated constraint.
type InputValidator struct {
}

// NewInputValidator constructs a new InputValidator
// and returns it as the Validator interface.
func NewInputValidator() Validator {
	return &InputValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj.
//
// Supported types:
//   - models.UserRegistration / *models.UserRegistration
//   - models.CourseInput / *models.CourseInput
//
// Returns ErrUnsupportedType if obj does not match any known payload.
// Optional fields restrict validation to the named subset; when omitted,
// every field of the payload is validated.
func (v *InputValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.UserRegistration:
		return v.validateUserRegistration(ctx, value, fields...)
	case *models.UserRegistration:
		return v.validateUserRegistration(ctx, *value, fields...)

	case models.CourseInput:
		return v.validateCourseInput(ctx, value, fields...)
	case *models.CourseInput:
		return v.validateCourseInput(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *InputValidator) validateUserRegistration(_ context.Context, reg models.UserRegistration, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFirstName, FieldLastName, FieldEmail, FieldPassword}
	}

	var messages []string
	for _, field := range fields {
		switch field {
		case FieldFirstName:
			if isBlank(reg.FirstName) {
				messages = append(messages, MsgFirstNameRequired)
			}
		case FieldLastName:
			if isBlank(reg.LastName) {
				messages = append(messages, MsgLastNameRequired)
			}
		case FieldEmail:
			if isBlank(reg.Email) {
				messages = append(messages, MsgEmailRequired)
			} else if !emailPattern.MatchString(reg.Email) {
				messages = append(messages, MsgEmailInvalid)
			}
		case FieldPassword:
			if isBlank(reg.Password) {
				messages = append(messages, MsgPasswordRequired)
			}
		default:
			return ErrUnknownField
		}
	}

	if len(messages) > 0 {
		return models.NewValidationError(messages...)
	}

	return nil
}

func (v *InputValidator) validateCourseInput(_ context.Context, input models.CourseInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldDescription}
	}

	var messages []string
	for _, field := range fields {
		switch field {
		case FieldTitle:
			if isBlank(input.Title) {
				messages = append(messages, MsgTitleRequired)
			}
		case FieldDescription:
			if isBlank(input.Description) {
				messages = append(messages, MsgDescriptionRequired)
			}
		default:
			return ErrUnknownField
		}
	}

	if len(messages) > 0 {
		return models.NewValidationError(messages...)
	}

	return nil
}

// isBlank reports whether s is empty or contains only whitespace.
func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
