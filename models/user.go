package models

import (
	"strings"
	"time"
)

// User represents an account entity used for authentication and authorization.
// The email address doubles as the login identifier and is unique across the
// system. PasswordHash must never leave the service boundary.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Email is the unique login identifier of the user.
	Email string `json:"email"`

	// FirstName and LastName are stored split; the API exposes them joined
	// as a single "fullname" field.
	FirstName string `json:"-"`
	LastName  string `json:"-"`

	// PasswordHash is the bcrypt hash of the user's password.
	// Never serialized.
	PasswordHash string `json:"-"`

	// IsGuest marks the preconfigured demo account used by the frontend
	// for unauthenticated trial access.
	IsGuest bool `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"-"`
}

// FullName returns the user's first and last name joined with a space.
// Either part may be empty.
func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// SplitFullName splits a free-form full name into first and last name.
// Everything after the first space belongs to the last name.
func SplitFullName(fullname string) (first, last string) {
	parts := strings.SplitN(strings.TrimSpace(fullname), " ", 2)
	first = parts[0]
	if len(parts) > 1 {
		last = parts[1]
	}
	return first, last
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserInfo is the compact user representation embedded in board and task
// responses.
type UserInfo struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Fullname string `json:"fullname"`
}

// Info converts a User into its wire representation.
func (u User) Info() UserInfo {
	return UserInfo{
		ID:       u.UserID,
		Email:    u.Email,
		Fullname: u.FullName(),
	}
}
