package reorder

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"pgregory.net/rapid"

	"github.com/Chandra-Moulii/project-planner/internal/models"
	"github.com/Chandra-Moulii/project-planner/internal/services/board"
	"github.com/Chandra-Moulii/project-planner/internal/services/column"
	"github.com/Chandra-Moulii/project-planner/internal/services/mutation"
	"github.com/Chandra-Moulii/project-planner/internal/services/task"
	"github.com/Chandra-Moulii/project-planner/internal/testutil"
)

// pick draws an existing id, or a bogus one so failure paths run too.
func pick(t *rapid.T, label string, ids []string) string {
	if len(ids) == 0 || rapid.IntRange(0, 9).Draw(t, label+"_bogus") == 0 {
		return "bogus"
	}
	return rapid.SampledFrom(ids).Draw(t, label)
}

func boardIDs(s models.Snapshot) []string {
	out := make([]string, len(s.Boards))
	for i, b := range s.Boards {
		out[i] = b.ID
	}
	return out
}

func columnIDs(s models.Snapshot, boardID string) []string {
	b, _ := s.Board(boardID)
	out := make([]string, len(b.Columns))
	for i, c := range b.Columns {
		out[i] = c.ID
	}
	return out
}

func taskIDsOf(s models.Snapshot, boardID string) []string {
	b, _ := s.Board(boardID)
	var out []string
	for _, t := range b.AllTasks() {
		out = append(out, t.ID)
	}
	return out
}

func encode(t *rapid.T, s models.Snapshot) string {
	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return string(data)
}

var names = []string{"todo", "done", "blocked", "waiting", "Review", "ab", "later"}

// step applies one random engine operation.
func step(t *rapid.T, s models.Snapshot, env mutation.Env) (models.Snapshot, error) {
	bid := pick(t, "board", boardIDs(s))
	switch rapid.IntRange(0, 11).Draw(t, "op") {
	case 0:
		next, _, err := board.Create(s, board.CreateRequest{Name: rapid.SampledFrom(names).Draw(t, "name")}, env)
		return next, err
	case 1:
		next, _, err := board.Edit(s, board.EditRequest{BoardID: bid, Name: rapid.SampledFrom(names).Draw(t, "name")}, env)
		return next, err
	case 2:
		req := board.DeleteRequest{BoardID: bid}
		if rapid.Bool().Draw(t, "reassign") {
			req.ReassignTo = pick(t, "target", boardIDs(s))
		}
		next, _, err := board.Delete(s, req, env)
		return next, err
	case 3:
		next, _, err := column.Create(s, column.CreateRequest{BoardID: bid, Name: rapid.SampledFrom(names).Draw(t, "name")}, env)
		return next, err
	case 4:
		next, _, err := column.Rename(s, column.RenameRequest{
			BoardID: bid, ColumnID: pick(t, "col", columnIDs(s, bid)), Name: rapid.SampledFrom(names).Draw(t, "name"),
		}, env)
		return next, err
	case 5:
		cid := pick(t, "col", columnIDs(s, bid))
		name := rapid.SampledFrom(names).Draw(t, "name")
		if b, ok := s.Board(bid); ok && rapid.Bool().Draw(t, "right_name") {
			if i := b.Columns.IndexByID(cid); i >= 0 {
				name = b.Columns[i].Name
			}
		}
		next, _, err := column.Delete(s, column.DeleteRequest{BoardID: bid, ColumnID: cid, Name: name}, env)
		return next, err
	case 6:
		next, _, err := column.ToggleCollapse(s, bid, pick(t, "col", columnIDs(s, bid)))
		return next, err
	case 7:
		next, _, err := task.Create(s, task.CreateRequest{
			BoardID: bid, ColumnName: rapid.SampledFrom(names).Draw(t, "col_name"), Name: rapid.SampledFrom(names).Draw(t, "name"),
		}, env)
		return next, err
	case 8:
		next, _, err := task.Delete(s, bid, pick(t, "task", taskIDsOf(s, bid)), env)
		return next, err
	case 9:
		cols := columnIDs(s, bid)
		next, _, err := ApplyDrop(s, bid, models.DropResult{
			Source: models.DropLocation{ContainerID: pick(t, "from", cols), Index: rapid.IntRange(-1, 4).Draw(t, "from_idx")},
			Destination: &models.DropLocation{
				ContainerID: pick(t, "to", cols), Index: rapid.IntRange(-2, 6).Draw(t, "to_idx"),
			},
		}, env)
		return next, err
	case 10:
		to := rapid.IntRange(-1, len(s.Boards)).Draw(t, "to")
		next, _, err := Boards(s, rapid.IntRange(-1, len(s.Boards)).Draw(t, "from"), &to)
		return next, err
	default:
		next, _, err := task.Edit(s, task.EditRequest{
			BoardID: bid, TaskID: pick(t, "task", taskIDsOf(s, bid)), Name: rapid.SampledFrom(names).Draw(t, "name"),
		}, env)
		return next, err
	}
}

// Random operation sequences keep every structural invariant, never modify
// the snapshot they read, and leave it untouched when they fail.
func TestProperty_EnginesPreserveInvariants(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		env := mutation.Env{IDs: &testutil.SequentialIDs{}, Clock: testutil.NewFixedClock()}
		snap := models.Snapshot{Boards: []models.Board{}, Preferences: models.DefaultPreferences()}

		steps := rapid.IntRange(1, 40).Draw(t, "steps")
		for i := range steps {
			before := encode(t, snap)
			next, err := step(t, snap, env)

			if encode(t, snap) != before {
				t.Fatalf("step %d modified its input snapshot", i)
			}
			if err != nil {
				kinds := []error{models.ErrValidation, models.ErrDuplicate, models.ErrForbidden, models.ErrNotFound}
				known := false
				for _, k := range kinds {
					known = known || errors.Is(err, k)
				}
				if !known {
					t.Fatalf("step %d returned an unclassified error: %v", i, err)
				}
				if encode(t, next) != before {
					t.Fatalf("failed step %d changed state: %v", i, err)
				}
				continue
			}

			for _, v := range models.CheckSnapshot(next) {
				t.Fatalf("step %d broke an invariant: %s", i, v)
			}
			snap = next
		}
	})
}

// Moving a task and moving it back restores the column order.
func TestProperty_MoveIsReversible(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		env := mutation.Env{IDs: &testutil.SequentialIDs{}, Clock: testutil.NewFixedClock()}
		b := board.NewBoard("Property", "", env)
		n := rapid.IntRange(1, 6).Draw(t, "tasks")
		for i := range n {
			b.Columns[0].Tasks = append(b.Columns[0].Tasks, models.Task{ID: fmt.Sprintf("t%d", i), State: "todo"})
		}
		b.TotalTasks = n
		snap := models.Snapshot{Boards: []models.Board{b}}

		from := rapid.IntRange(0, n-1).Draw(t, "from")
		to := rapid.IntRange(0, n-1).Draw(t, "to")
		col := b.Columns[0].ID
		id := b.Columns[0].Tasks[from].ID

		moved, res, err := task.Move(snap, task.MoveRequest{BoardID: b.ID, TaskID: id, FromColumnID: col, ToColumnID: col, ToIndex: to}, env)
		if err != nil {
			t.Fatalf("move: %v", err)
		}
		back, _, err := task.Move(moved, task.MoveRequest{BoardID: b.ID, TaskID: id, FromColumnID: col, ToColumnID: col, ToIndex: res.FromIndex}, env)
		if err != nil {
			t.Fatalf("move back: %v", err)
		}

		got := taskIDsOf(back, b.ID)
		want := taskIDsOf(snap, b.ID)
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("order after round trip %v, want %v", got, want)
			}
		}
	})
}
