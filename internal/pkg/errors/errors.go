package errors

import "errors"

// Shared application errors. Services wrap these with fmt.Errorf("%w: ...")
// so handlers can map them to HTTP statuses with errors.Is.
var (
	// ErrNotFound is returned when a record or resource does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrUnauthorized is returned for failed authentication (missing or bad credentials).
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden is returned when the caller is authenticated but not allowed.
	ErrForbidden = errors.New("forbidden")

	// ErrValidation is returned for malformed or missing input.
	ErrValidation = errors.New("validation failed")

	// ErrConflict is returned for state conflicts, e.g. a duplicate email on signup.
	ErrConflict = errors.New("resource state conflict")
)
