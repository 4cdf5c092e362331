// Package harness wires a complete mutation pipeline for service tests. It
// lives apart from testutil so packages below the services can keep using
// testutil without an import cycle.
package harness

import (
	"io"
	"log/slog"
	"testing"

	"github.com/Chandra-Moulii/project-planner/internal/database"
	"github.com/Chandra-Moulii/project-planner/internal/models"
	"github.com/Chandra-Moulii/project-planner/internal/persistence"
	"github.com/Chandra-Moulii/project-planner/internal/services/mutation"
	"github.com/Chandra-Moulii/project-planner/internal/state"
	"github.com/Chandra-Moulii/project-planner/internal/testutil"
)

// Harness bundles the collaborators of a test pipeline.
type Harness struct {
	Store    *state.Store
	KV       *database.MemoryStore
	Adapter  *persistence.Adapter
	Runner   *mutation.Runner
	Recorder *testutil.Recorder
	Clock    *testutil.FixedClock
	IDs      *testutil.SequentialIDs
	Env      mutation.Env
}

// New returns a harness over an empty snapshot with default preferences.
func New(t *testing.T) *Harness {
	t.Helper()
	return WithSnapshot(t, models.Snapshot{
		Boards:      []models.Board{},
		Preferences: models.DefaultPreferences(),
	})
}

// WithSnapshot returns a harness whose store starts at snap.
func WithSnapshot(t *testing.T, snap models.Snapshot) *Harness {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := &Harness{
		Store:    state.New(snap),
		KV:       database.NewMemoryStore(),
		Recorder: &testutil.Recorder{},
		Clock:    testutil.NewFixedClock(),
		IDs:      &testutil.SequentialIDs{},
	}
	h.Adapter = persistence.New(h.KV, logger)
	h.Runner = mutation.NewRunner(h.Store, h.Adapter, h.Recorder, logger)
	h.Env = mutation.Env{IDs: h.IDs, Clock: h.Clock}
	return h
}

// Snapshot returns the store's current snapshot.
func (h *Harness) Snapshot() models.Snapshot {
	return h.Store.Snapshot()
}

// Board returns the current state of a board, failing the test if it is
// gone.
func (h *Harness) Board(t *testing.T, id string) models.Board {
	t.Helper()
	b, ok := h.Store.Snapshot().Board(id)
	if !ok {
		t.Fatalf("board %s not found", id)
	}
	return b
}

// Column returns a column of a board by name, failing the test if missing.
func (h *Harness) Column(t *testing.T, boardID, name string) models.Column {
	t.Helper()
	b := h.Board(t, boardID)
	i := b.Columns.IndexByName(name)
	if i < 0 {
		t.Fatalf("board %s has no column %q", boardID, name)
	}
	return b.Columns[i]
}

// AssertInvariants fails the test if any board breaks a structural
// invariant.
func (h *Harness) AssertInvariants(t *testing.T) {
	t.Helper()
	for _, v := range models.CheckSnapshot(h.Store.Snapshot()) {
		t.Errorf("invariant violated: %s", v)
	}
}

// Stored returns the persisted value of key, failing the test if missing.
func (h *Harness) Stored(t *testing.T, key persistence.Key) string {
	t.Helper()
	v, ok, err := h.KV.Get(t.Context(), string(key))
	if err != nil || !ok {
		t.Fatalf("key %s not persisted (err=%v)", key, err)
	}
	return v
}
