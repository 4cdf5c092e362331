package models

import (
	"fmt"
	"strings"
)

// Violation describes one broken structural invariant.
type Violation struct {
	BoardID  string `json:"board_id"`
	ColumnID string `json:"column_id,omitempty"`
	TaskID   string `json:"task_id,omitempty"`
	Message  string `json:"message"`
}

func (v Violation) String() string {
	var b strings.Builder
	b.WriteString("board " + v.BoardID)
	if v.ColumnID != "" {
		b.WriteString(" column " + v.ColumnID)
	}
	if v.TaskID != "" {
		b.WriteString(" task " + v.TaskID)
	}
	b.WriteString(": " + v.Message)
	return b.String()
}

// CheckBoard reports every invariant the board breaks:
//   - TotalTasks equals the number of tasks held by the columns
//   - column IDs and names are unique, names are lower-cased
//   - the reserved columns are present
//   - each task's State equals the name of the column holding it
//   - task IDs are unique within the board
func CheckBoard(b Board) []Violation {
	var out []Violation
	add := func(colID, taskID, format string, args ...any) {
		out = append(out, Violation{
			BoardID:  b.ID,
			ColumnID: colID,
			TaskID:   taskID,
			Message:  fmt.Sprintf(format, args...),
		})
	}

	if n := b.CountTasks(); n != b.TotalTasks {
		add("", "", "totalTasks is %d but columns hold %d tasks", b.TotalTasks, n)
	}

	for _, name := range ReservedColumns {
		if b.Columns.IndexByName(name) < 0 {
			add("", "", "reserved column %q is missing", name)
		}
	}

	colIDs := make(map[string]bool, len(b.Columns))
	colNames := make(map[string]bool, len(b.Columns))
	taskIDs := make(map[string]bool, b.TotalTasks)
	for _, col := range b.Columns {
		if colIDs[col.ID] {
			add(col.ID, "", "duplicate column id")
		}
		colIDs[col.ID] = true

		if colNames[col.Name] {
			add(col.ID, "", "duplicate column name %q", col.Name)
		}
		colNames[col.Name] = true

		if col.Name != strings.ToLower(col.Name) {
			add(col.ID, "", "column name %q is not lower-cased", col.Name)
		}

		for _, t := range col.Tasks {
			if t.State != col.Name {
				add(col.ID, t.ID, "task state %q does not match column %q", t.State, col.Name)
			}
			if taskIDs[t.ID] {
				add(col.ID, t.ID, "duplicate task id")
			}
			taskIDs[t.ID] = true
		}
	}
	return out
}

// CheckSnapshot checks every board of the snapshot and the uniqueness of
// board IDs.
func CheckSnapshot(s Snapshot) []Violation {
	var out []Violation
	seen := make(map[string]bool, len(s.Boards))
	for _, b := range s.Boards {
		if seen[b.ID] {
			out = append(out, Violation{BoardID: b.ID, Message: "duplicate board id"})
		}
		seen[b.ID] = true
		out = append(out, CheckBoard(b)...)
	}
	return out
}
