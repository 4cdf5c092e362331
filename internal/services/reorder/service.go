package reorder

import (
	"context"

	"github.com/Chandra-Moulii/project-planner/internal/events"
	"github.com/Chandra-Moulii/project-planner/internal/models"
	"github.com/Chandra-Moulii/project-planner/internal/persistence"
	"github.com/Chandra-Moulii/project-planner/internal/services/mutation"
	"github.com/Chandra-Moulii/project-planner/internal/services/task"
)

// Service reorders boards in the sidebar and applies drag-and-drop results
type Service interface {
	ReorderBoards(ctx context.Context, from int, to *int) error
	ApplyDrop(ctx context.Context, boardID string, drop models.DropResult) (task.MoveResult, error)
}

type service struct {
	runner *mutation.Runner
	env    mutation.Env
}

// NewService creates a new reorder service
func NewService(runner *mutation.Runner, env mutation.Env) Service {
	return &service{runner: runner, env: env}
}

// ReorderBoards moves one board to a new sidebar position
func (s *service) ReorderBoards(ctx context.Context, from int, to *int) error {
	var changed bool
	_, err := s.runner.Run(ctx, mutation.Mutation{
		Op: "reorder boards",
		Apply: func(cur models.Snapshot) (models.Snapshot, error) {
			next, ok, err := Boards(cur, from, to)
			changed = ok
			return next, err
		},
		Keys: []persistence.Key{persistence.KeyBoards},
		Events: func(models.Snapshot) []events.Event {
			if !changed {
				return nil
			}
			return []events.Event{events.Info(events.BoardsReordered, "", "Boards reordered")}
		},
	})
	return err
}

// ApplyDrop consumes a drop event from the drag-and-drop layer
func (s *service) ApplyDrop(ctx context.Context, boardID string, drop models.DropResult) (task.MoveResult, error) {
	var result task.MoveResult
	_, err := s.runner.Run(ctx, mutation.Mutation{
		Op:      "apply drop",
		BoardID: boardID,
		Apply: func(cur models.Snapshot) (models.Snapshot, error) {
			next, r, err := ApplyDrop(cur, boardID, drop, s.env)
			result = r
			return next, err
		},
		Keys: []persistence.Key{persistence.KeyBoards},
		Events: func(models.Snapshot) []events.Event {
			if !result.Moved {
				return nil
			}
			return []events.Event{events.Success(events.TaskMoved, boardID, "Task moved")}
		},
	})
	return result, err
}
