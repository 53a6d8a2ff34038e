package service

import "errors"

var (
	// ErrInvalidCredentials is returned by VerifyCredentials for every
	// authentication failure: missing credentials, unknown email, or wrong
	// password. A single undifferentiated kind keeps the response from
	// leaking which half of the credential pair was wrong.
	ErrInvalidCredentials = errors.New("invalid email/password")

	// ErrNotCourseOwner is returned when an authenticated user attempts to
	// mutate a course owned by somebody else.
	ErrNotCourseOwner = errors.New("user is not the course owner")
)
