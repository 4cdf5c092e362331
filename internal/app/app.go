package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Chandra-Moulii/project-planner/internal/database"
	"github.com/Chandra-Moulii/project-planner/internal/events"
	"github.com/Chandra-Moulii/project-planner/internal/ids"
	"github.com/Chandra-Moulii/project-planner/internal/models"
	"github.com/Chandra-Moulii/project-planner/internal/persistence"
	boardservice "github.com/Chandra-Moulii/project-planner/internal/services/board"
	columnservice "github.com/Chandra-Moulii/project-planner/internal/services/column"
	"github.com/Chandra-Moulii/project-planner/internal/services/mutation"
	preferenceservice "github.com/Chandra-Moulii/project-planner/internal/services/preferences"
	reorderservice "github.com/Chandra-Moulii/project-planner/internal/services/reorder"
	taskservice "github.com/Chandra-Moulii/project-planner/internal/services/task"
	"github.com/Chandra-Moulii/project-planner/internal/state"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	kv       database.KeyValueStore
	store    *state.Store
	adapter  *persistence.Adapter
	runner   *mutation.Runner
	bus      *events.Bus // nil when a notifier was supplied
	notifier events.Notifier
	logger   *slog.Logger
	env      mutation.Env

	// Service layer (business logic)
	BoardService      boardservice.Service
	ColumnService     columnservice.Service
	TaskService       taskservice.Service
	ReorderService    reorderservice.Service
	PreferenceService preferenceservice.Service
}

// New rehydrates the state store from kv and wires every service on top of
// it. This is the single entry point for creating the application container.
func New(ctx context.Context, kv database.KeyValueStore, opts ...Option) (*App, error) {
	if kv == nil {
		return nil, errors.New("app: key-value store is required")
	}

	cfg := &appConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}

	a := &App{kv: kv, logger: cfg.logger, notifier: cfg.notifier}
	if a.notifier == nil {
		a.bus = events.NewBus()
		a.notifier = a.bus
	}

	a.adapter = persistence.New(kv, cfg.logger)
	snap, err := a.adapter.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load planner state: %w", err)
	}
	a.store = state.New(snap)
	a.runner = mutation.NewRunner(a.store, a.adapter, a.notifier, cfg.logger)

	env := mutation.DefaultEnv()
	if cfg.ids != nil {
		env.IDs = cfg.ids
	}
	if cfg.clock != nil {
		env.Clock = cfg.clock
	}
	if len(cfg.palette) > 0 {
		env.Palette = cfg.palette
	}

	a.env = env

	a.BoardService = boardservice.NewService(a.runner, env)
	a.ColumnService = columnservice.NewService(a.runner, env)
	a.TaskService = taskservice.NewService(a.runner, env)
	a.ReorderService = reorderservice.NewService(a.runner, env)
	a.PreferenceService = preferenceservice.NewService(a.runner)

	cfg.logger.Debug("planner state loaded",
		"boards", len(snap.Boards),
		"active_board", snap.ActiveBoardID)
	return a, nil
}

// Snapshot returns the current in-memory state.
func (a *App) Snapshot() models.Snapshot {
	return a.store.Snapshot()
}

// Store returns the state store, for subscribers.
func (a *App) Store() *state.Store {
	return a.store
}

// Events subscribes to the built-in notification bus. It returns nil when
// the app was built with WithNotifier.
func (a *App) Events(queueSize int) (<-chan events.Event, func()) {
	if a.bus == nil {
		return nil, func() {}
	}
	return a.bus.Subscribe(queueSize)
}

// Clock returns the clock stamping mutations.
func (a *App) Clock() ids.Clock {
	return a.env.Clock
}

// Logger returns the application logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// KV returns the underlying key-value store.
func (a *App) KV() database.KeyValueStore {
	return a.kv
}

// Close releases the notification bus and the key-value store.
func (a *App) Close() error {
	var errs []error
	if a.bus != nil {
		errs = append(errs, a.bus.Close())
	}
	errs = append(errs, a.kv.Close())
	return errors.Join(errs...)
}
