package cli

import (
	"errors"

	"github.com/Chandra-Moulii/project-planner/internal/models"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: unexpected failures that don't fit the categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, invalid flag combinations,
	// or when the user needs to provide different arguments.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: board, column or task not found.
	ExitNotFound = 3

	// ExitDataErr indicates the stored data could not be read or written.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: name length, unknown colours, invalid themes, bad indexes.
	ExitValidation = 5

	// ExitDuplicate indicates a name collision, such as an existing column.
	ExitDuplicate = 6

	// ExitForbidden indicates an operation on a protected resource, such as
	// renaming a reserved column.
	ExitForbidden = 7
)

// CommandError carries the exit code of a command failure that has already
// been reported to the user.
type CommandError struct {
	Code int
	Err  error
}

func (e *CommandError) Error() string {
	return e.Err.Error()
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// ExitCodeFor maps an error onto the exit code of its kind.
func ExitCodeFor(err error) int {
	var cmdErr *CommandError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &cmdErr):
		return cmdErr.Code
	case errors.Is(err, ErrUsage):
		return ExitUsage
	case errors.Is(err, models.ErrNotFound):
		return ExitNotFound
	case errors.Is(err, models.ErrPersistence):
		return ExitDataErr
	case errors.Is(err, models.ErrValidation):
		return ExitValidation
	case errors.Is(err, models.ErrDuplicate):
		return ExitDuplicate
	case errors.Is(err, models.ErrForbidden):
		return ExitForbidden
	default:
		return ExitError
	}
}

// ErrorCode returns the machine-readable code printed in JSON errors.
func ErrorCode(err error) string {
	switch ExitCodeFor(err) {
	case ExitUsage:
		return "USAGE_ERROR"
	case ExitNotFound:
		return "NOT_FOUND"
	case ExitDataErr:
		return "DATA_ERROR"
	case ExitValidation:
		return "VALIDATION_ERROR"
	case ExitDuplicate:
		return "DUPLICATE"
	case ExitForbidden:
		return "FORBIDDEN"
	default:
		return "INTERNAL_ERROR"
	}
}
