package task

import (
	"fmt"
	"strings"

	"github.com/Chandra-Moulii/project-planner/internal/models"
	"github.com/Chandra-Moulii/project-planner/internal/services/mutation"
)

// CreateRequest encapsulates data for creating a task
type CreateRequest struct {
	BoardID     string
	ColumnName  string
	Name        string
	Description string
}

// EditRequest encapsulates data for editing a task
type EditRequest struct {
	BoardID     string
	TaskID      string
	Name        string
	Description string
}

// MoveRequest describes a move of one task. ToIndex is clamped into the
// destination column, so a large value appends.
type MoveRequest struct {
	BoardID      string
	TaskID       string
	FromColumnID string
	ToColumnID   string
	ToIndex      int
}

// MoveResult reports where a task ended up.
type MoveResult struct {
	Task      models.Task
	FromIndex int
	ToIndex   int
	Moved     bool // false when the task was already in place
}

// Step is a relative move: one slot up or down, or one column left or right.
type Step int

const (
	StepUp Step = iota
	StepDown
	StepNextColumn
	StepPrevColumn
)

func boardIndex(s models.Snapshot, id string) (int, error) {
	i := s.BoardIndex(id)
	if i < 0 {
		return -1, fmt.Errorf("%w: %s", ErrBoardNotFound, id)
	}
	return i, nil
}

func locate(b models.Board, taskID string) (ci, ti int, err error) {
	ci, ti, ok := b.LocateTask(taskID)
	if !ok {
		return -1, -1, fmt.Errorf("%w: %s", ErrTaskNotFound, taskID)
	}
	return ci, ti, nil
}

// Create appends a task to the named column.
func Create(s models.Snapshot, req CreateRequest, env mutation.Env) (models.Snapshot, models.Task, error) {
	name, err := mutation.Name("task name", req.Name)
	if err != nil {
		return s, models.Task{}, err
	}
	if err := mutation.Description(req.Description); err != nil {
		return s, models.Task{}, err
	}

	bi, err := boardIndex(s, req.BoardID)
	if err != nil {
		return s, models.Task{}, err
	}
	colName := strings.ToLower(strings.TrimSpace(req.ColumnName))
	ci := s.Boards[bi].Columns.IndexByName(colName)
	if ci < 0 {
		return s, models.Task{}, fmt.Errorf("%w: %s", ErrColumnNotFound, req.ColumnName)
	}

	now := env.Clock.Now()
	t := models.Task{
		ID:          env.IDs.NewID(),
		Name:        name,
		Description: req.Description,
		State:       colName,
		CreatedAt:   now,
		EditedAt:    now,
	}

	next, b := s.WithBoard(bi)
	b.Columns[ci].Tasks = append(b.Columns[ci].Tasks, t)
	b.TotalTasks++
	b.EditedAt = now
	return next, t, nil
}

// Edit replaces a task's name and description and refreshes its editedAt.
// The board's editedAt is left alone.
func Edit(s models.Snapshot, req EditRequest, env mutation.Env) (models.Snapshot, models.Task, error) {
	name, err := mutation.Name("task name", req.Name)
	if err != nil {
		return s, models.Task{}, err
	}
	if err := mutation.Description(req.Description); err != nil {
		return s, models.Task{}, err
	}

	bi, err := boardIndex(s, req.BoardID)
	if err != nil {
		return s, models.Task{}, err
	}
	ci, ti, err := locate(s.Boards[bi], req.TaskID)
	if err != nil {
		return s, models.Task{}, err
	}

	next, b := s.WithBoard(bi)
	t := &b.Columns[ci].Tasks[ti]
	t.Name = name
	t.Description = req.Description
	t.EditedAt = env.Clock.Now()
	return next, *t, nil
}

// Delete removes a task from its column.
func Delete(s models.Snapshot, boardID, taskID string, env mutation.Env) (models.Snapshot, models.Task, error) {
	bi, err := boardIndex(s, boardID)
	if err != nil {
		return s, models.Task{}, err
	}
	ci, ti, err := locate(s.Boards[bi], taskID)
	if err != nil {
		return s, models.Task{}, err
	}

	next, b := s.WithBoard(bi)
	removed := b.Columns[ci].Tasks[ti]
	b.Columns[ci].Tasks = mutation.Remove(b.Columns[ci].Tasks, ti)
	b.TotalTasks--
	b.EditedAt = env.Clock.Now()
	return next, removed, nil
}

// Move takes a task out of one column and inserts it into another (or the
// same) column at ToIndex. Moving a task onto its own slot changes nothing.
func Move(s models.Snapshot, req MoveRequest, env mutation.Env) (models.Snapshot, MoveResult, error) {
	bi, err := boardIndex(s, req.BoardID)
	if err != nil {
		return s, MoveResult{}, err
	}
	b := s.Boards[bi]

	from := b.Columns.IndexByID(req.FromColumnID)
	if from < 0 {
		return s, MoveResult{}, fmt.Errorf("%w: %s", ErrColumnNotFound, req.FromColumnID)
	}
	to := b.Columns.IndexByID(req.ToColumnID)
	if to < 0 {
		return s, MoveResult{}, fmt.Errorf("%w: %s", ErrColumnNotFound, req.ToColumnID)
	}

	ti := -1
	for i, t := range b.Columns[from].Tasks {
		if t.ID == req.TaskID {
			ti = i
			break
		}
	}
	if ti < 0 {
		return s, MoveResult{}, fmt.Errorf("%w: %s in column %s", ErrTaskNotFound, req.TaskID, b.Columns[from].Name)
	}

	// Positions are counted after the task has been taken out.
	destLen := len(b.Columns[to].Tasks)
	if from == to {
		destLen--
	}
	dest := max(0, min(req.ToIndex, destLen))

	result := MoveResult{Task: b.Columns[from].Tasks[ti], FromIndex: ti, ToIndex: dest}
	if from == to && dest == ti {
		return s, result, nil
	}

	next, nb := s.WithBoard(bi)
	moved := nb.Columns[from].Tasks[ti]
	nb.Columns[from].Tasks = mutation.Remove(nb.Columns[from].Tasks, ti)
	moved.State = nb.Columns[to].Name
	nb.Columns[to].Tasks = mutation.Insert(nb.Columns[to].Tasks, dest, moved)
	nb.EditedAt = env.Clock.Now()

	result.Task = moved
	result.Moved = true
	return next, result, nil
}

// StepRequest resolves a relative move into a MoveRequest against the
// current board.
func StepRequest(s models.Snapshot, boardID, taskID string, step Step) (MoveRequest, error) {
	bi, err := boardIndex(s, boardID)
	if err != nil {
		return MoveRequest{}, err
	}
	b := s.Boards[bi]
	ci, ti, err := locate(b, taskID)
	if err != nil {
		return MoveRequest{}, err
	}

	req := MoveRequest{
		BoardID:      boardID,
		TaskID:       taskID,
		FromColumnID: b.Columns[ci].ID,
		ToColumnID:   b.Columns[ci].ID,
		ToIndex:      ti,
	}
	switch step {
	case StepUp:
		if ti == 0 {
			return MoveRequest{}, ErrAlreadyFirstTask
		}
		req.ToIndex = ti - 1
	case StepDown:
		if ti == len(b.Columns[ci].Tasks)-1 {
			return MoveRequest{}, ErrAlreadyLastTask
		}
		req.ToIndex = ti + 1
	case StepNextColumn:
		if ci == len(b.Columns)-1 {
			return MoveRequest{}, ErrAlreadyLastColumn
		}
		req.ToColumnID = b.Columns[ci+1].ID
		req.ToIndex = len(b.Columns[ci+1].Tasks)
	case StepPrevColumn:
		if ci == 0 {
			return MoveRequest{}, ErrAlreadyFirstColumn
		}
		req.ToColumnID = b.Columns[ci-1].ID
		req.ToIndex = len(b.Columns[ci-1].Tasks)
	default:
		return MoveRequest{}, fmt.Errorf("%w: unknown step %d", models.ErrValidation, step)
	}
	return req, nil
}
