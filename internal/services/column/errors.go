package column

import (
	"fmt"

	"github.com/Chandra-Moulii/project-planner/internal/models"
)

// Column-related errors
var (
	// Validation errors
	ErrInvalidColor = fmt.Errorf("%w: colour is not in the palette", models.ErrValidation)

	// Business logic errors
	ErrBoardNotFound      = fmt.Errorf("board %w", models.ErrNotFound)
	ErrColumnNotFound     = fmt.Errorf("column %w", models.ErrNotFound)
	ErrColumnNameMismatch = fmt.Errorf("column name does not match: %w", models.ErrNotFound)
	ErrColumnExists       = fmt.Errorf("column %w", models.ErrDuplicate)
	ErrReservedColumn     = fmt.Errorf("%w: reserved columns cannot be renamed or deleted", models.ErrForbidden)
)
