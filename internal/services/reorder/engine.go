package reorder

import (
	"fmt"

	"github.com/Chandra-Moulii/project-planner/internal/models"
	"github.com/Chandra-Moulii/project-planner/internal/services/mutation"
	"github.com/Chandra-Moulii/project-planner/internal/services/task"
)

// Boards moves the board at from to position to in the sidebar order.
// A nil destination, or one equal to from, leaves the order unchanged.
// Board contents are shared between the old and new snapshot.
func Boards(s models.Snapshot, from int, to *int) (models.Snapshot, bool, error) {
	if to == nil || *to == from {
		return s, false, nil
	}
	n := len(s.Boards)
	if from < 0 || from >= n {
		return s, false, fmt.Errorf("%w: source %d of %d boards", ErrIndexOutOfRange, from, n)
	}
	if *to < 0 || *to >= n {
		return s, false, fmt.Errorf("%w: destination %d of %d boards", ErrIndexOutOfRange, *to, n)
	}

	next := s.WithBoards()
	moved := next.Boards[from]
	next.Boards = mutation.Insert(mutation.Remove(next.Boards, from), *to, moved)
	return next, true, nil
}

// DropRequest resolves a drop event on a board into a task move. It
// returns ok=false when the drop was outside any column.
func DropRequest(s models.Snapshot, boardID string, drop models.DropResult) (task.MoveRequest, bool, error) {
	if drop.Destination == nil {
		return task.MoveRequest{}, false, nil
	}

	b, found := s.Board(boardID)
	if !found {
		return task.MoveRequest{}, false, fmt.Errorf("%w: %s", task.ErrBoardNotFound, boardID)
	}
	ci := b.Columns.IndexByID(drop.Source.ContainerID)
	if ci < 0 {
		return task.MoveRequest{}, false, fmt.Errorf("%w: %s", task.ErrColumnNotFound, drop.Source.ContainerID)
	}
	tasks := b.Columns[ci].Tasks
	if drop.Source.Index < 0 || drop.Source.Index >= len(tasks) {
		return task.MoveRequest{}, false, fmt.Errorf("%w: %s[%d]", ErrNoTaskAtSource, b.Columns[ci].Name, drop.Source.Index)
	}

	return task.MoveRequest{
		BoardID:      boardID,
		TaskID:       tasks[drop.Source.Index].ID,
		FromColumnID: drop.Source.ContainerID,
		ToColumnID:   drop.Destination.ContainerID,
		ToIndex:      drop.Destination.Index,
	}, true, nil
}

// ApplyDrop turns a drop event into a task move. A drop outside any column
// changes nothing.
func ApplyDrop(s models.Snapshot, boardID string, drop models.DropResult, env mutation.Env) (models.Snapshot, task.MoveResult, error) {
	req, ok, err := DropRequest(s, boardID, drop)
	if err != nil || !ok {
		return s, task.MoveResult{}, err
	}
	return task.Move(s, req, env)
}
