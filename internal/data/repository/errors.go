package repository

import "errors"

var (
	// ErrNotFound indicates no row matched the lookup
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateEmail and ErrDuplicateUsername are raised when an insert or
	// update trips a unique constraint. They are the backstop for the
	// check-then-insert race: two concurrent registrations can both pass the
	// pre-check, but only one survives the constraint.
	ErrDuplicateEmail    = errors.New("email already registered")
	ErrDuplicateUsername = errors.New("username already taken")
)
