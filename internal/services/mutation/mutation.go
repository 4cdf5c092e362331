// Package mutation runs engine operations against the state store: commit,
// persist, notify. Every service goes through a Runner so the pipeline is
// identical for boards, columns, tasks and preferences.
package mutation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Chandra-Moulii/project-planner/internal/events"
	"github.com/Chandra-Moulii/project-planner/internal/ids"
	"github.com/Chandra-Moulii/project-planner/internal/models"
	"github.com/Chandra-Moulii/project-planner/internal/persistence"
	"github.com/Chandra-Moulii/project-planner/internal/state"
)

// Env carries the capabilities engines need to build new entities.
type Env struct {
	IDs   ids.Generator
	Clock ids.Clock

	// Palette lists the colour tokens columns may use. Empty means
	// models.DefaultPalette.
	Palette []string
}

// DefaultEnv uses random UUIDs, the system clock and the default palette.
func DefaultEnv() Env {
	return Env{IDs: ids.UUIDGenerator{}, Clock: ids.SystemClock{}, Palette: models.DefaultPalette}
}

// Colors returns the palette in effect.
func (e Env) Colors() []string {
	if len(e.Palette) == 0 {
		return models.DefaultPalette
	}
	return e.Palette
}

// Persister writes selected keys of a snapshot to storage.
type Persister interface {
	Persist(ctx context.Context, snap models.Snapshot, keys ...persistence.Key) error
}

// Mutation describes one operation to run.
type Mutation struct {
	// Op names the operation in logs, e.g. "create board".
	Op      string
	BoardID string

	// Apply computes the next snapshot. It runs under the store lock and
	// must not block.
	Apply state.UpdateFunc

	// Keys are persisted after a successful commit. Empty means nothing is
	// persisted.
	Keys []persistence.Key

	// Events are published after a successful commit, in order.
	Events func(next models.Snapshot) []events.Event
}

// Runner executes mutations.
type Runner struct {
	store     *state.Store
	persister Persister
	notifier  events.Notifier
	logger    *slog.Logger

	// mu serializes commit and persist so storage never sees an older
	// snapshot after a newer one.
	mu sync.Mutex
}

// NewRunner wires a runner. persister and notifier may be nil.
func NewRunner(store *state.Store, persister Persister, notifier events.Notifier, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		store:     store,
		persister: persister,
		notifier:  notifier,
		logger:    logger,
	}
}

// Store returns the store mutations are committed to.
func (r *Runner) Store() *state.Store {
	return r.store
}

// Logger returns the runner's logger.
func (r *Runner) Logger() *slog.Logger {
	return r.logger
}

// Run commits m. On a rejected operation nothing changes, an error
// notification is emitted and the error is returned. On a persistence
// failure the commit stands: the new snapshot is returned together with an
// error wrapping models.ErrPersistence.
func (r *Runner) Run(ctx context.Context, m Mutation) (models.Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next, err := r.store.Update(m.Apply)
	if err != nil {
		r.logger.Debug("operation rejected", "op", m.Op, "board_id", m.BoardID, "error", err)
		events.Publish(r.notifier, events.Failure(events.OperationFailed, m.BoardID, err))
		return next, err
	}

	var persistErr error
	if r.persister != nil && len(m.Keys) > 0 {
		if err := r.persister.Persist(ctx, next, m.Keys...); err != nil {
			r.logger.Warn("failed to persist state", "op", m.Op, "keys", m.Keys, "error", err)
			if !errors.Is(err, models.ErrPersistence) {
				err = fmt.Errorf("%w: %w", models.ErrPersistence, err)
			}
			persistErr = fmt.Errorf("failed to %s: %w", m.Op, err)
		}
	}

	if m.Events != nil {
		for _, ev := range m.Events(next) {
			events.Publish(r.notifier, ev)
		}
	}
	if persistErr != nil {
		ev := events.Failure(events.PersistenceFailed, m.BoardID, persistErr)
		ev.Message = "Changes could not be saved"
		ev.Description = persistErr.Error()
		events.Publish(r.notifier, ev)
		return next, persistErr
	}

	r.logger.Debug("operation committed", "op", m.Op, "board_id", m.BoardID)
	return next, nil
}
