package errs

import "errors"

// Sentinel errors shared by the usecase and handler layers.
// Callers match them with errors.Is; wrapping goes through Mark.
var (
	// Input errors
	ErrInvalidInput = errors.New("invalid input")

	// Authentication errors
	ErrUnauthenticated = errors.New("unauthenticated")

	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")

	// Reservation errors
	ErrSlotConflict = errors.New("time slot already reserved")

	// Operation errors
	ErrStorageUnavailable = errors.New("storage unavailable")
)
