// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Account represents the authentication identity of a user.
// It is created inactive by the signup flow and becomes active only after
// the owner proves control of the email address.
type Account struct {
	// AccountID is the immutable server-assigned identifier.
	AccountID int64 `json:"id"`

	// Username is the unique login name.
	Username string `json:"username"`

	// Email is the address activation links are sent to. May be empty.
	Email string `json:"email,omitempty"`

	// PasswordHash is the bcrypt hash of the account password.
	// It never leaves the server.
	PasswordHash string `json:"-"`

	// IsActive is false until the activation link is followed.
	IsActive bool `json:"is_active"`

	// DateJoined is the creation timestamp. Immutable.
	DateJoined time.Time `json:"date_joined"`

	// LastLogin is the time of the last successful login, nil if the
	// account never logged in.
	LastLogin *time.Time `json:"last_login,omitempty"`
}

// TableName returns the name of the database table
// associated with the Account model.
func (a Account) TableName() string {
	return "accounts"
}

// SignUpRequest is the registration form submitted by a new user.
type SignUpRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`

	// Password1 and Password2 must match.
	Password1 string `json:"password1"`
	Password2 string `json:"password2"`

	// Location carries the raw client IP address filled in by the page.
	// When empty the handler substitutes the request's remote address.
	Location string `json:"location"`
}

// LoginRequest carries the credentials of an existing account.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ResendActivationRequest asks for a fresh activation email.
type ResendActivationRequest struct {
	Email string `json:"email"`
}
