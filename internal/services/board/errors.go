package board

import (
	"fmt"

	"github.com/Chandra-Moulii/project-planner/internal/models"
)

// Board-related errors
var (
	// Not found errors
	ErrBoardNotFound        = fmt.Errorf("board %w", models.ErrNotFound)
	ErrTargetBoardNotFound  = fmt.Errorf("target board %w", models.ErrNotFound)
	ErrTargetColumnNotFound = fmt.Errorf("target column %w", models.ErrNotFound)

	// Validation errors
	ErrReassignToSelf = fmt.Errorf("%w: cannot move tasks to the board being deleted", models.ErrValidation)
)
