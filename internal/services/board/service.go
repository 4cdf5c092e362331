package board

import (
	"context"
	"fmt"

	"github.com/Chandra-Moulii/project-planner/internal/events"
	"github.com/Chandra-Moulii/project-planner/internal/models"
	"github.com/Chandra-Moulii/project-planner/internal/persistence"
	"github.com/Chandra-Moulii/project-planner/internal/services/mutation"
)

// Service defines all board-related business operations
type Service interface {
	// Read operations
	ListBoards(ctx context.Context) ([]models.Board, error)
	SearchBoards(ctx context.Context, query string) ([]models.Board, error)
	GetBoard(ctx context.Context, id string) (models.Board, error)
	ActiveBoard(ctx context.Context) (models.Board, bool)

	// Write operations
	CreateBoard(ctx context.Context, req CreateRequest) (models.Board, error)
	UpdateBoard(ctx context.Context, req EditRequest) (models.Board, error)
	DeleteBoard(ctx context.Context, req DeleteRequest) (DeleteResult, error)
	SelectBoard(ctx context.Context, id string) (models.Board, error)
}

// service implements Service on top of the mutation runner
type service struct {
	runner *mutation.Runner
	env    mutation.Env
}

// NewService creates a new board service
func NewService(runner *mutation.Runner, env mutation.Env) Service {
	return &service{runner: runner, env: env}
}

// ListBoards returns every board in sidebar order
func (s *service) ListBoards(ctx context.Context) ([]models.Board, error) {
	return Search(s.runner.Store().Snapshot().Boards, ""), nil
}

// SearchBoards filters boards by a case-insensitive name substring
func (s *service) SearchBoards(ctx context.Context, query string) ([]models.Board, error) {
	return Search(s.runner.Store().Snapshot().Boards, query), nil
}

// GetBoard retrieves a board by ID
func (s *service) GetBoard(ctx context.Context, id string) (models.Board, error) {
	b, ok := s.runner.Store().Snapshot().Board(id)
	if !ok {
		return models.Board{}, fmt.Errorf("%w: %s", ErrBoardNotFound, id)
	}
	return b, nil
}

// ActiveBoard returns the selected board, if any
func (s *service) ActiveBoard(ctx context.Context) (models.Board, bool) {
	snap := s.runner.Store().Snapshot()
	if snap.ActiveBoardID == "" {
		return models.Board{}, false
	}
	return snap.Board(snap.ActiveBoardID)
}

// CreateBoard creates a board with the reserved columns and selects it
func (s *service) CreateBoard(ctx context.Context, req CreateRequest) (models.Board, error) {
	var created models.Board
	_, err := s.runner.Run(ctx, mutation.Mutation{
		Op: "create board",
		Apply: func(cur models.Snapshot) (models.Snapshot, error) {
			next, b, err := Create(cur, req, s.env)
			created = b
			return next, err
		},
		Keys: []persistence.Key{persistence.KeyBoards, persistence.KeyActiveBoard},
		Events: func(models.Snapshot) []events.Event {
			return []events.Event{
				events.Success(events.BoardCreated, created.ID, "Board created"),
				events.Info(events.BoardSelected, created.ID, "Switched to new board"),
			}
		},
	})
	return created, err
}

// UpdateBoard renames a board and replaces its description
func (s *service) UpdateBoard(ctx context.Context, req EditRequest) (models.Board, error) {
	var updated models.Board
	_, err := s.runner.Run(ctx, mutation.Mutation{
		Op:      "update board",
		BoardID: req.BoardID,
		Apply: func(cur models.Snapshot) (models.Snapshot, error) {
			next, b, err := Edit(cur, req, s.env)
			updated = b
			return next, err
		},
		Keys: []persistence.Key{persistence.KeyBoards},
		Events: func(models.Snapshot) []events.Event {
			return []events.Event{events.Success(events.BoardUpdated, req.BoardID, "Board updated")}
		},
	})
	return updated, err
}

// DeleteBoard removes a board, moving its tasks when a target is given
func (s *service) DeleteBoard(ctx context.Context, req DeleteRequest) (DeleteResult, error) {
	var result DeleteResult
	_, err := s.runner.Run(ctx, mutation.Mutation{
		Op:      "delete board",
		BoardID: req.BoardID,
		Apply: func(cur models.Snapshot) (models.Snapshot, error) {
			next, r, err := Delete(cur, req, s.env)
			result = r
			return next, err
		},
		Keys: []persistence.Key{persistence.KeyBoards, persistence.KeyActiveBoard},
		Events: func(models.Snapshot) []events.Event {
			ev := events.Success(events.BoardDeleted, req.BoardID, "Board deleted")
			if result.Target != nil {
				ev.Description = fmt.Sprintf("All tasks moved to board '%s'", result.Target.Name)
			}
			return []events.Event{ev}
		},
	})
	return result, err
}

// SelectBoard makes a board the active one
func (s *service) SelectBoard(ctx context.Context, id string) (models.Board, error) {
	var selected models.Board
	_, err := s.runner.Run(ctx, mutation.Mutation{
		Op:      "select board",
		BoardID: id,
		Apply: func(cur models.Snapshot) (models.Snapshot, error) {
			next, b, err := Select(cur, id)
			selected = b
			return next, err
		},
		Keys: []persistence.Key{persistence.KeyActiveBoard},
		Events: func(models.Snapshot) []events.Event {
			return []events.Event{events.Info(events.BoardSelected, id, fmt.Sprintf("Switched to board '%s'", selected.Name))}
		},
	})
	return selected, err
}
