// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Fixed response texts. The exact strings are part of the public API
// contract and appear verbatim in JSON response bodies.
const (
	msgAccessDenied        = "Access Denied"
	msgCourseNotFound      = "Course not found"
	msgNotAuthorizedUpdate = "You are not authorized to update this course"
	msgNotAuthorizedDelete = "Not authorized to delete this course"
)

// ErrNoBasicCredentials is logged by the auth middleware when the incoming
// request carries no parseable Basic "Authorization" header. The client
// always sees the fixed "Access Denied" body, never this text.
var ErrNoBasicCredentials = errors.New("no basic credentials in `Authorization` header")
