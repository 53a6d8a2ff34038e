package models

// MessageResponse is the generic single-message JSON body used for
// not-found, forbidden, and unexpected-error responses.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorListResponse is the JSON body of a 400 validation failure:
// a flat, ordered list of human-readable constraint messages.
type ErrorListResponse struct {
	Errors []string `json:"errors"`
}
