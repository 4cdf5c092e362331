package board

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Chandra-Moulii/project-planner/internal/models"
	"github.com/Chandra-Moulii/project-planner/internal/services/mutation"
)

// CreateRequest encapsulates data for creating a board
type CreateRequest struct {
	Name        string
	Description string
}

// EditRequest encapsulates data for editing a board
type EditRequest struct {
	BoardID     string
	Name        string
	Description string
}

// DeleteRequest identifies the board to delete. When ReassignTo is set,
// every task of the deleted board is appended to the same-named column of
// that board instead of being discarded.
type DeleteRequest struct {
	BoardID    string
	ReassignTo string
}

// DeleteResult reports what a delete removed.
type DeleteResult struct {
	Deleted    models.Board
	Target     *models.Board // Board that received the tasks, nil without reassignment
	MovedTasks int
}

// NewBoard builds an empty board seeded with the reserved columns.
func NewBoard(name, description string, env mutation.Env) models.Board {
	now := env.Clock.Now()
	cols := make(models.ColumnSet, 0, len(models.ReservedColumns))
	for _, colName := range models.ReservedColumns {
		cols = append(cols, models.Column{
			ID:    env.IDs.NewID(),
			Name:  colName,
			Color: models.ReservedColor(colName),
			Tasks: []models.Task{},
		})
	}
	return models.Board{
		ID:          env.IDs.NewID(),
		Name:        name,
		Description: description,
		CreatedAt:   now,
		EditedAt:    now,
		TotalTasks:  0,
		Columns:     cols,
	}
}

// Create appends a new board and makes it the active one.
func Create(s models.Snapshot, req CreateRequest, env mutation.Env) (models.Snapshot, models.Board, error) {
	name, err := mutation.Name("board name", req.Name)
	if err != nil {
		return s, models.Board{}, err
	}
	if err := mutation.Description(req.Description); err != nil {
		return s, models.Board{}, err
	}

	b := NewBoard(name, req.Description, env)
	next := s.WithBoards()
	next.Boards = append(next.Boards, b)
	next.ActiveBoardID = b.ID
	return next, b, nil
}

// Edit replaces a board's name and description.
func Edit(s models.Snapshot, req EditRequest, env mutation.Env) (models.Snapshot, models.Board, error) {
	name, err := mutation.Name("board name", req.Name)
	if err != nil {
		return s, models.Board{}, err
	}
	if err := mutation.Description(req.Description); err != nil {
		return s, models.Board{}, err
	}

	i := s.BoardIndex(req.BoardID)
	if i < 0 {
		return s, models.Board{}, fmt.Errorf("%w: %s", ErrBoardNotFound, req.BoardID)
	}

	next, b := s.WithBoard(i)
	b.Name = name
	b.Description = req.Description
	b.EditedAt = env.Clock.Now()
	return next, *b, nil
}

// Delete removes a board, optionally moving its tasks to another board
// first. Nothing changes unless every task has somewhere to go. The active
// board is cleared on success.
func Delete(s models.Snapshot, req DeleteRequest, env mutation.Env) (models.Snapshot, DeleteResult, error) {
	src := s.BoardIndex(req.BoardID)
	if src < 0 {
		return s, DeleteResult{}, fmt.Errorf("%w: %s", ErrBoardNotFound, req.BoardID)
	}
	source := s.Boards[src]
	result := DeleteResult{Deleted: source}

	var next models.Snapshot
	if req.ReassignTo == "" {
		next = s.WithBoards()
	} else {
		if req.ReassignTo == req.BoardID {
			return s, DeleteResult{}, ErrReassignToSelf
		}
		dst := s.BoardIndex(req.ReassignTo)
		if dst < 0 {
			return s, DeleteResult{}, fmt.Errorf("%w: %s", ErrTargetBoardNotFound, req.ReassignTo)
		}

		target := s.Boards[dst]
		for _, col := range source.Columns {
			if len(col.Tasks) > 0 && target.Columns.IndexByName(col.Name) < 0 {
				return s, DeleteResult{}, fmt.Errorf("%w: board %q has no %q column",
					ErrTargetColumnNotFound, target.Name, col.Name)
			}
		}

		var tb *models.Board
		next, tb = s.WithBoard(dst)
		for _, col := range source.Columns {
			if len(col.Tasks) == 0 {
				continue
			}
			ci := tb.Columns.IndexByName(col.Name)
			tb.Columns[ci].Tasks = append(tb.Columns[ci].Tasks, col.Tasks...)
			result.MovedTasks += len(col.Tasks)
		}
		tb.TotalTasks += result.MovedTasks
		tb.EditedAt = env.Clock.Now()
		moved := *tb
		result.Target = &moved
	}

	next.Boards = mutation.Remove(next.Boards, src)
	next.ActiveBoardID = ""
	return next, result, nil
}

// Select makes an existing board the active one.
func Select(s models.Snapshot, boardID string) (models.Snapshot, models.Board, error) {
	b, ok := s.Board(boardID)
	if !ok {
		return s, models.Board{}, fmt.Errorf("%w: %s", ErrBoardNotFound, boardID)
	}
	s.ActiveBoardID = boardID
	return s, b, nil
}

// Search returns the boards whose name contains query, ignoring case, in
// sidebar order. An empty query matches every board.
func Search(boards []models.Board, query string) []models.Board {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return slices.Clone(boards)
	}
	out := []models.Board{}
	for _, b := range boards {
		if strings.Contains(strings.ToLower(b.Name), q) {
			out = append(out, b)
		}
	}
	return out
}
