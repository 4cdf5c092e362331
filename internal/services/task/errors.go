package task

import (
	"fmt"

	"github.com/Chandra-Moulii/project-planner/internal/models"
)

// Task-related errors
var (
	ErrBoardNotFound  = fmt.Errorf("board %w", models.ErrNotFound)
	ErrColumnNotFound = fmt.Errorf("column %w", models.ErrNotFound)
	ErrTaskNotFound   = fmt.Errorf("task %w", models.ErrNotFound)
)

// Movement-related errors
var (
	// ErrAlreadyFirstTask indicates that the task is already at the top of the column
	ErrAlreadyFirstTask = fmt.Errorf("%w: task is already at the top of the column", models.ErrValidation)

	// ErrAlreadyLastTask indicates that the task is already at the bottom of the column
	ErrAlreadyLastTask = fmt.Errorf("%w: task is already at the bottom of the column", models.ErrValidation)

	// ErrAlreadyLastColumn indicates that the task is already in the last column
	ErrAlreadyLastColumn = fmt.Errorf("%w: task is already in the last column", models.ErrValidation)

	// ErrAlreadyFirstColumn indicates that the task is already in the first column
	ErrAlreadyFirstColumn = fmt.Errorf("%w: task is already in the first column", models.ErrValidation)
)
