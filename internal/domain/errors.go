package domain

import "errors"

var (
	// ErrEmailTaken is returned on register when the email already exists.
	ErrEmailTaken = errors.New("email already in use")

	// ErrInvalidCredentials is returned on login when the email is unknown
	// or the password does not match.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserNotFound is returned when an operation references a user id
	// that does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrSessionExpired is returned on refresh when the user has no refresh
	// token on record (logged out or never logged in).
	ErrSessionExpired = errors.New("session expired")
)
