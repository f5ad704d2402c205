package service

import "errors"

var (
	// ErrInvalidInput is returned when required fields are missing or
	// malformed.
	ErrInvalidInput = errors.New("invalid input")
	// ErrEmailNotFound is returned on login when no user has the email.
	ErrEmailNotFound = errors.New("unknown email")
	// ErrPasswordMismatch is returned on login when the password does not
	// match the stored hash.
	ErrPasswordMismatch = errors.New("password mismatch")
)
