package repository

import "errors"

var (
	// ErrUserNotFound is returned when no user matches the lookup email.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken is returned when a user already exists with the email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrCatwayNotFound is returned when no catway matches the number.
	ErrCatwayNotFound = errors.New("catway not found")
	// ErrCatwayNumberTaken is returned when the catway number already exists.
	ErrCatwayNumberTaken = errors.New("catway number already exists")
	// ErrReservationNotFound is returned when no reservation matches the
	// (id, catway number) pair.
	ErrReservationNotFound = errors.New("reservation not found")
)
