package models

import "time"

// Board represents one plan: an ordered set of columns holding tasks.
// Boards are the top-level organizational unit in the planner.
type Board struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	EditedAt    time.Time `json:"editedAt"`
	TotalTasks  int       `json:"totalTasks"`
	Columns     ColumnSet `json:"columns"`
}

// Clone returns a deep copy of the board. The copy shares no slices with b.
func (b Board) Clone() Board {
	b.Columns = b.Columns.Clone()
	return b
}

// CountTasks sums the tasks held by every column.
func (b Board) CountTasks() int {
	n := 0
	for _, col := range b.Columns {
		n += len(col.Tasks)
	}
	return n
}

// LocateTask finds a task by ID. The column named by the task's state is
// searched first; the remaining columns are scanned as a fallback.
func (b Board) LocateTask(taskID string) (colIdx, taskIdx int, ok bool) {
	for ci, col := range b.Columns {
		for ti, t := range col.Tasks {
			if t.ID == taskID && t.State == col.Name {
				return ci, ti, true
			}
		}
	}
	for ci, col := range b.Columns {
		for ti, t := range col.Tasks {
			if t.ID == taskID {
				return ci, ti, true
			}
		}
	}
	return -1, -1, false
}

// Task returns a copy of the task with the given ID.
func (b Board) Task(taskID string) (Task, bool) {
	ci, ti, ok := b.LocateTask(taskID)
	if !ok {
		return Task{}, false
	}
	return b.Columns[ci].Tasks[ti], true
}

// AllTasks flattens the board's tasks in column order, the way the list
// view presents them.
func (b Board) AllTasks() []Task {
	tasks := make([]Task, 0, b.TotalTasks)
	for _, col := range b.Columns {
		tasks = append(tasks, col.Tasks...)
	}
	return tasks
}
