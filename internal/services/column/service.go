package column

import (
	"context"
	"fmt"

	"github.com/Chandra-Moulii/project-planner/internal/events"
	"github.com/Chandra-Moulii/project-planner/internal/models"
	"github.com/Chandra-Moulii/project-planner/internal/persistence"
	"github.com/Chandra-Moulii/project-planner/internal/services/mutation"
)

// Service defines all column-related business operations
type Service interface {
	// Read operations
	ListColumns(ctx context.Context, boardID string) ([]models.Column, error)
	GetColumn(ctx context.Context, boardID, ref string) (models.Column, error)

	// Write operations
	CreateColumn(ctx context.Context, req CreateRequest) (models.Column, error)
	UpdateColumn(ctx context.Context, req RenameRequest) (models.Column, error)
	DeleteColumn(ctx context.Context, req DeleteRequest) (models.Column, error)
	ToggleCollapse(ctx context.Context, boardID, columnID string) (models.Column, error)
}

// service implements Service on top of the mutation runner
type service struct {
	runner *mutation.Runner
	env    mutation.Env
}

// NewService creates a new column service
func NewService(runner *mutation.Runner, env mutation.Env) Service {
	return &service{runner: runner, env: env}
}

// ListColumns returns a board's columns in display order
func (s *service) ListColumns(ctx context.Context, boardID string) ([]models.Column, error) {
	b, ok := s.runner.Store().Snapshot().Board(boardID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrBoardNotFound, boardID)
	}
	return b.Columns.Clone(), nil
}

// GetColumn resolves a column by ID or name
func (s *service) GetColumn(ctx context.Context, boardID, ref string) (models.Column, error) {
	b, ok := s.runner.Store().Snapshot().Board(boardID)
	if !ok {
		return models.Column{}, fmt.Errorf("%w: %s", ErrBoardNotFound, boardID)
	}
	i, ok := FindColumn(b, ref)
	if !ok {
		return models.Column{}, fmt.Errorf("%w: %s", ErrColumnNotFound, ref)
	}
	return b.Columns[i].Clone(), nil
}

// CreateColumn appends a new column to a board
func (s *service) CreateColumn(ctx context.Context, req CreateRequest) (models.Column, error) {
	var created models.Column
	_, err := s.runner.Run(ctx, mutation.Mutation{
		Op:      "create column",
		BoardID: req.BoardID,
		Apply: func(cur models.Snapshot) (models.Snapshot, error) {
			next, col, err := Create(cur, req, s.env)
			created = col
			return next, err
		},
		Keys: []persistence.Key{persistence.KeyBoards},
		Events: func(models.Snapshot) []events.Event {
			return []events.Event{events.Success(events.ColumnCreated, req.BoardID, "New column created")}
		},
	})
	return created, err
}

// UpdateColumn renames and/or recolours a column
func (s *service) UpdateColumn(ctx context.Context, req RenameRequest) (models.Column, error) {
	var updated models.Column
	_, err := s.runner.Run(ctx, mutation.Mutation{
		Op:      "update column",
		BoardID: req.BoardID,
		Apply: func(cur models.Snapshot) (models.Snapshot, error) {
			next, col, err := Rename(cur, req, s.env)
			updated = col
			return next, err
		},
		Keys: []persistence.Key{persistence.KeyBoards},
		Events: func(models.Snapshot) []events.Event {
			return []events.Event{events.Success(events.ColumnUpdated, req.BoardID, "Column updated")}
		},
	})
	return updated, err
}

// DeleteColumn removes a column and discards its tasks
func (s *service) DeleteColumn(ctx context.Context, req DeleteRequest) (models.Column, error) {
	var deleted models.Column
	_, err := s.runner.Run(ctx, mutation.Mutation{
		Op:      "delete column",
		BoardID: req.BoardID,
		Apply: func(cur models.Snapshot) (models.Snapshot, error) {
			next, col, err := Delete(cur, req, s.env)
			deleted = col
			return next, err
		},
		Keys: []persistence.Key{persistence.KeyBoards},
		Events: func(models.Snapshot) []events.Event {
			ev := events.Success(events.ColumnDeleted, req.BoardID, "Column deleted")
			if n := len(deleted.Tasks); n > 0 {
				ev.Description = fmt.Sprintf("%d tasks discarded", n)
			}
			return []events.Event{ev}
		},
	})
	return deleted, err
}

// ToggleCollapse flips a column's collapsed flag
func (s *service) ToggleCollapse(ctx context.Context, boardID, columnID string) (models.Column, error) {
	var toggled models.Column
	_, err := s.runner.Run(ctx, mutation.Mutation{
		Op:      "toggle column",
		BoardID: boardID,
		Apply: func(cur models.Snapshot) (models.Snapshot, error) {
			next, col, err := ToggleCollapse(cur, boardID, columnID)
			toggled = col
			return next, err
		},
		Keys: []persistence.Key{persistence.KeyBoards},
	})
	return toggled, err
}
