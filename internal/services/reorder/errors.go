package reorder

import (
	"fmt"

	"github.com/Chandra-Moulii/project-planner/internal/models"
)

// Reordering errors
var (
	ErrIndexOutOfRange = fmt.Errorf("%w: index out of range", models.ErrValidation)
	ErrNoTaskAtSource  = fmt.Errorf("source slot %w", models.ErrNotFound)
)
