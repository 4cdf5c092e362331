package mutation

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/Chandra-Moulii/project-planner/internal/database"
	"github.com/Chandra-Moulii/project-planner/internal/events"
	"github.com/Chandra-Moulii/project-planner/internal/models"
	"github.com/Chandra-Moulii/project-planner/internal/persistence"
	"github.com/Chandra-Moulii/project-planner/internal/state"
	"github.com/Chandra-Moulii/project-planner/internal/testutil"
)

// ============================================================================
// Helpers
// ============================================================================

func setupRunner(t *testing.T) (*Runner, *database.MemoryStore, *testutil.Recorder) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	kv := database.NewMemoryStore()
	rec := &testutil.Recorder{}
	store := state.New(models.Snapshot{Preferences: models.DefaultPreferences()})
	return NewRunner(store, persistence.New(kv, logger), rec, logger), kv, rec
}

func selectBoard(id string) Mutation {
	return Mutation{
		Op:      "select board",
		BoardID: id,
		Apply: func(cur models.Snapshot) (models.Snapshot, error) {
			cur.ActiveBoardID = id
			return cur, nil
		},
		Keys: []persistence.Key{persistence.KeyActiveBoard},
		Events: func(models.Snapshot) []events.Event {
			return []events.Event{events.Info(events.BoardSelected, id, "selected")}
		},
	}
}

// ============================================================================
// Runner
// ============================================================================

func TestRunner_CommitPersistNotify(t *testing.T) {
	t.Parallel()
	r, kv, rec := setupRunner(t)

	next, err := r.Run(context.Background(), selectBoard("b1"))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if next.ActiveBoardID != "b1" || r.Store().Snapshot().ActiveBoardID != "b1" {
		t.Error("snapshot not committed")
	}
	if v, _, _ := kv.Get(context.Background(), "lastSelectedBoard"); v != `"b1"` {
		t.Errorf("persisted %q", v)
	}
	if msgs := rec.Messages(); len(msgs) != 1 || msgs[0] != "selected" {
		t.Errorf("unexpected notifications %v", msgs)
	}
}

func TestRunner_RejectedOperation(t *testing.T) {
	t.Parallel()
	r, kv, rec := setupRunner(t)
	boom := errors.New("name too short")

	_, err := r.Run(context.Background(), Mutation{
		Op: "create board",
		Apply: func(cur models.Snapshot) (models.Snapshot, error) {
			return cur, boom
		},
		Keys: []persistence.Key{persistence.KeyBoards},
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected rejection error, got %v", err)
	}
	if r.Store().Version() != 0 {
		t.Error("rejected operation must not commit")
	}
	if keys, _ := kv.Keys(context.Background()); len(keys) != 0 {
		t.Errorf("rejected operation must not persist, got %v", keys)
	}
	last := rec.Last()
	if last.Severity != events.SeverityError || last.Type != events.OperationFailed {
		t.Errorf("expected an error notification, got %+v", last)
	}
}

// A storage failure keeps the in-memory commit and reports ErrPersistence.
func TestRunner_PersistenceFailureKeepsCommit(t *testing.T) {
	t.Parallel()
	r, kv, rec := setupRunner(t)
	kv.FailWrites = errors.New("quota exceeded")

	next, err := r.Run(context.Background(), selectBoard("b1"))
	if !errors.Is(err, models.ErrPersistence) {
		t.Fatalf("expected ErrPersistence, got %v", err)
	}
	if !strings.Contains(err.Error(), "quota exceeded") {
		t.Errorf("cause missing from %v", err)
	}
	if next.ActiveBoardID != "b1" || r.Store().Snapshot().ActiveBoardID != "b1" {
		t.Error("memory must not be rolled back")
	}

	evs := rec.Events()
	if len(evs) != 2 {
		t.Fatalf("expected success and failure notifications, got %+v", evs)
	}
	if evs[0].Severity != events.SeverityInfo || evs[1].Type != events.PersistenceFailed {
		t.Errorf("unexpected notifications %+v", evs)
	}
}

func TestRunner_NilCollaborators(t *testing.T) {
	t.Parallel()
	r := NewRunner(state.New(models.Snapshot{}), nil, nil, nil)

	if _, err := r.Run(context.Background(), selectBoard("b1")); err != nil {
		t.Fatalf("Run without persister or notifier failed: %v", err)
	}
}

// ============================================================================
// Validation Helpers
// ============================================================================

func TestName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"Groceries", "Groceries", false},
		{"  Shop  ", "Shop", false},
		{"abc", "", true},
		{"   ", "", true},
		{"ñandú", "ñandú", false},
		{strings.Repeat("é", 50), strings.Repeat("é", 50), false},
		{strings.Repeat("é", 51), "", true},
	}

	for _, tt := range tests {
		got, err := Name("board name", tt.in)
		if tt.wantErr {
			if !errors.Is(err, models.ErrValidation) {
				t.Errorf("Name(%q): expected ErrValidation, got %v", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("Name(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
	}
}

func TestDescription(t *testing.T) {
	t.Parallel()
	if err := Description(strings.Repeat("x", 200)); err != nil {
		t.Errorf("200 characters should pass: %v", err)
	}
	if err := Description(strings.Repeat("x", 201)); !errors.Is(err, models.ErrValidation) {
		t.Errorf("201 characters should fail, got %v", err)
	}
}

func TestInsertRemove(t *testing.T) {
	t.Parallel()
	base := []int{1, 2, 3}

	if got := Insert(base, 1, 9); len(got) != 4 || got[1] != 9 || got[2] != 2 {
		t.Errorf("Insert middle = %v", got)
	}
	if got := Insert(base, 99, 9); got[3] != 9 {
		t.Errorf("Insert clamped high = %v", got)
	}
	if got := Insert(base, -3, 9); got[0] != 9 {
		t.Errorf("Insert clamped low = %v", got)
	}
	if got := Remove(base, 0); len(got) != 2 || got[0] != 2 {
		t.Errorf("Remove = %v", got)
	}
	if base[0] != 1 || base[1] != 2 || base[2] != 3 {
		t.Errorf("input slice modified: %v", base)
	}
}
