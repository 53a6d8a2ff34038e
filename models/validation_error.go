package models

import "strings"

// ValidationError aggregates one or more human-readable constraint
// violation messages produced while validating a write. The message order
// matches the order in which the constraints were checked.
//
// It is a transient value: produced by validators (required/shape rules)
// or by the store's uniqueness mapping, consumed once by the HTTP error
// mapper to build a 400 response, and discarded. Callers match it with
// [errors.As].
type ValidationError struct {
	Messages []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

// NewValidationError constructs a *ValidationError from the given messages.
func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}
