package models

import "time"

// User represents an account entity used for authentication and course
// ownership. It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the internal unique identifier of the user.
	ID int64 `json:"id"`

	// FirstName is the user's given name. Required, non-empty.
	FirstName string `json:"firstName"`

	// LastName is the user's family name. Required, non-empty.
	LastName string `json:"lastName"`

	// Email is the unique user identifier used during authentication.
	// Uniqueness is enforced case-insensitively by the database.
	Email string `json:"emailAddress"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a hash, never plaintext, and is never serialized
	// to JSON.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserRegistration is the inbound payload for account creation.
// Password arrives in plaintext over the transport and is hashed exactly
// once, inside the auth service, before persistence.
type UserRegistration struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"emailAddress"`
	Password  string `json:"password"`
}

// Owner is the public projection of a course's owning user embedded in
// course responses. It deliberately carries no identifier and no
// credential material.
type Owner struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"emailAddress"`
}

// PublicUser is the self view returned to an authenticated account: the
// user's id plus the public fields. Credential material is never part of it.
// It differs from Owner, which is embedded in course responses and carries
// no identifier.
type PublicUser struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"emailAddress"`
}

// Public returns the self view of u.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	}
}
