// Package error defines domain-specific errors for the finance tracker.
package error

import "errors"

// User domain errors.
var (
	// ErrUserNotFound is returned when a user is not found in the store.
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameTaken is returned when the username is already registered.
	ErrUsernameTaken = errors.New("username already taken")
)
