package services

import "errors"

// Error kinds the handlers translate to HTTP statuses. Anything not
// matching one of these maps to a 500.
var (
	// ErrValidation marks a request missing required fields or referencing
	// something that makes the request malformed (400).
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks a missing document (404).
	ErrNotFound = errors.New("not found")

	// ErrDuplicateEmail is returned by registration (400 by this system's
	// convention).
	ErrDuplicateEmail = errors.New("email already exists")

	// ErrInvalidCredentials is returned by login. The client expects 400
	// here, not 401.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
