package models

import "errors"

// Error kinds shared by every mutation. Services wrap one of these in their
// own sentinel errors so callers can classify failures with errors.Is.
var (
	// ErrValidation indicates input that is too short, too long or malformed.
	ErrValidation = errors.New("validation failed")

	// ErrDuplicate indicates a name collision, e.g. two columns named "blocked".
	ErrDuplicate = errors.New("already exists")

	// ErrForbidden indicates an attempt to modify a reserved column.
	ErrForbidden = errors.New("operation not allowed")

	// ErrNotFound indicates a board, column or task that no longer exists.
	ErrNotFound = errors.New("not found")

	// ErrPersistence indicates the storage mirror could not be written. The
	// in-memory state stays committed when this is reported.
	ErrPersistence = errors.New("persistence failed")
)
