package models

import "time"

// Course represents an owned record exposed via the CRUD endpoints.
// Every course belongs to exactly one user; the owner is fixed at creation
// from the authenticated requester and never changes afterwards.
type Course struct {
	// ID is the internal unique identifier of the course.
	ID int64 `json:"id"`

	// Title is the course title. Required, non-empty.
	Title string `json:"title"`

	// Description is the course description. Required, non-empty.
	Description string `json:"description"`

	// EstimatedTime is an optional free-form duration estimate
	// (e.g. "12 hours"). Serialized as null when absent.
	EstimatedTime *string `json:"estimatedTime"`

	// MaterialsNeeded is an optional free-form list of materials.
	// Serialized as null when absent.
	MaterialsNeeded *string `json:"materialsNeeded"`

	// UserID references the owning user. Mandatory, non-null, immutable
	// after creation. Mutating operations compare this value against the
	// authenticated user's ID.
	UserID int64 `json:"userId"`

	// User is the public projection of the owning user, populated on read
	// paths only. Never includes credential material.
	User Owner `json:"user"`

	// CreatedAt and UpdatedAt are persistence timestamps. Not part of the
	// public payload.
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the Course model.
func (c Course) TableName() string {
	return "courses"
}

// CourseInput is the inbound payload for course creation and update.
// The owner is never taken from the payload; it always comes from the
// authenticated request context.
type CourseInput struct {
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	EstimatedTime   *string `json:"estimatedTime"`
	MaterialsNeeded *string `json:"materialsNeeded"`
}
