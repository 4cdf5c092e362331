package task

import (
	"context"
	"fmt"

	"github.com/Chandra-Moulii/project-planner/internal/events"
	"github.com/Chandra-Moulii/project-planner/internal/models"
	"github.com/Chandra-Moulii/project-planner/internal/persistence"
	"github.com/Chandra-Moulii/project-planner/internal/services/mutation"
)

// Service defines all task-related business operations
type Service interface {
	// Read operations
	ListTasks(ctx context.Context, boardID string) ([]models.Task, error)
	GetTask(ctx context.Context, boardID, taskID string) (models.Task, error)

	// Write operations
	CreateTask(ctx context.Context, req CreateRequest) (models.Task, error)
	UpdateTask(ctx context.Context, req EditRequest) (models.Task, error)
	DeleteTask(ctx context.Context, boardID, taskID string) (models.Task, error)

	// Movement operations
	MoveTask(ctx context.Context, req MoveRequest) (MoveResult, error)
	MoveTaskUp(ctx context.Context, boardID, taskID string) (MoveResult, error)
	MoveTaskDown(ctx context.Context, boardID, taskID string) (MoveResult, error)
	MoveTaskToNextColumn(ctx context.Context, boardID, taskID string) (MoveResult, error)
	MoveTaskToPrevColumn(ctx context.Context, boardID, taskID string) (MoveResult, error)
}

// service implements Service on top of the mutation runner
type service struct {
	runner *mutation.Runner
	env    mutation.Env
}

// NewService creates a new task service
func NewService(runner *mutation.Runner, env mutation.Env) Service {
	return &service{runner: runner, env: env}
}

// ListTasks returns every task of a board flattened in column order
func (s *service) ListTasks(ctx context.Context, boardID string) ([]models.Task, error) {
	b, ok := s.runner.Store().Snapshot().Board(boardID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrBoardNotFound, boardID)
	}
	return b.AllTasks(), nil
}

// GetTask retrieves one task
func (s *service) GetTask(ctx context.Context, boardID, taskID string) (models.Task, error) {
	b, ok := s.runner.Store().Snapshot().Board(boardID)
	if !ok {
		return models.Task{}, fmt.Errorf("%w: %s", ErrBoardNotFound, boardID)
	}
	t, ok := b.Task(taskID)
	if !ok {
		return models.Task{}, fmt.Errorf("%w: %s", ErrTaskNotFound, taskID)
	}
	return t, nil
}

// CreateTask appends a task to a column
func (s *service) CreateTask(ctx context.Context, req CreateRequest) (models.Task, error) {
	var created models.Task
	_, err := s.runner.Run(ctx, mutation.Mutation{
		Op:      "create task",
		BoardID: req.BoardID,
		Apply: func(cur models.Snapshot) (models.Snapshot, error) {
			next, t, err := Create(cur, req, s.env)
			created = t
			return next, err
		},
		Keys: []persistence.Key{persistence.KeyBoards},
		Events: func(models.Snapshot) []events.Event {
			ev := events.Success(events.TaskCreated, req.BoardID, "Success!")
			ev.Description = "Task created successfully."
			return []events.Event{ev}
		},
	})
	return created, err
}

// UpdateTask changes a task's name and description
func (s *service) UpdateTask(ctx context.Context, req EditRequest) (models.Task, error) {
	var updated models.Task
	_, err := s.runner.Run(ctx, mutation.Mutation{
		Op:      "update task",
		BoardID: req.BoardID,
		Apply: func(cur models.Snapshot) (models.Snapshot, error) {
			next, t, err := Edit(cur, req, s.env)
			updated = t
			return next, err
		},
		Keys: []persistence.Key{persistence.KeyBoards},
		Events: func(models.Snapshot) []events.Event {
			return []events.Event{events.Success(events.TaskUpdated, req.BoardID, "Task updated")}
		},
	})
	return updated, err
}

// DeleteTask removes a task
func (s *service) DeleteTask(ctx context.Context, boardID, taskID string) (models.Task, error) {
	var deleted models.Task
	_, err := s.runner.Run(ctx, mutation.Mutation{
		Op:      "delete task",
		BoardID: boardID,
		Apply: func(cur models.Snapshot) (models.Snapshot, error) {
			next, t, err := Delete(cur, boardID, taskID, s.env)
			deleted = t
			return next, err
		},
		Keys: []persistence.Key{persistence.KeyBoards},
		Events: func(models.Snapshot) []events.Event {
			return []events.Event{events.Success(events.TaskDeleted, boardID, "Task deleted")}
		},
	})
	return deleted, err
}

// MoveTask moves a task to a column and position
func (s *service) MoveTask(ctx context.Context, req MoveRequest) (MoveResult, error) {
	return s.move(ctx, req.BoardID, func(cur models.Snapshot) (MoveRequest, error) {
		return req, nil
	})
}

// MoveTaskUp swaps a task with the one above it
func (s *service) MoveTaskUp(ctx context.Context, boardID, taskID string) (MoveResult, error) {
	return s.step(ctx, boardID, taskID, StepUp)
}

// MoveTaskDown swaps a task with the one below it
func (s *service) MoveTaskDown(ctx context.Context, boardID, taskID string) (MoveResult, error) {
	return s.step(ctx, boardID, taskID, StepDown)
}

// MoveTaskToNextColumn moves a task to the end of the column on its right
func (s *service) MoveTaskToNextColumn(ctx context.Context, boardID, taskID string) (MoveResult, error) {
	return s.step(ctx, boardID, taskID, StepNextColumn)
}

// MoveTaskToPrevColumn moves a task to the end of the column on its left
func (s *service) MoveTaskToPrevColumn(ctx context.Context, boardID, taskID string) (MoveResult, error) {
	return s.step(ctx, boardID, taskID, StepPrevColumn)
}

func (s *service) step(ctx context.Context, boardID, taskID string, step Step) (MoveResult, error) {
	return s.move(ctx, boardID, func(cur models.Snapshot) (MoveRequest, error) {
		return StepRequest(cur, boardID, taskID, step)
	})
}

// move resolves the request against the snapshot it is applied to, so a
// relative move never acts on stale positions.
func (s *service) move(ctx context.Context, boardID string, resolve func(models.Snapshot) (MoveRequest, error)) (MoveResult, error) {
	var result MoveResult
	_, err := s.runner.Run(ctx, mutation.Mutation{
		Op:      "move task",
		BoardID: boardID,
		Apply: func(cur models.Snapshot) (models.Snapshot, error) {
			req, err := resolve(cur)
			if err != nil {
				return cur, err
			}
			next, r, err := Move(cur, req, s.env)
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
