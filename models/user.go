package models

import "time"

// User represents an account entity used for authentication and authorship.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"-"`

	// Login is the unique user login identifier used during authentication.
	Login string `json:"login" validate:"required,min=3,max=64,alphanum"`

	// Name is the display name of the user.
	Name string `json:"name" validate:"max=128"`

	// Password is the plain-text password received on register and login.
	// It is never persisted and never serialized back.
	Password string `json:"password,omitempty" validate:"required,min=8,max=72"`

	// PasswordHash is the bcrypt hash stored in the database.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
