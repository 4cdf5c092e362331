package app

import (
	"log/slog"

	"github.com/Chandra-Moulii/project-planner/internal/events"
	"github.com/Chandra-Moulii/project-planner/internal/ids"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	notifier events.Notifier
	logger   *slog.Logger
	ids      ids.Generator
	clock    ids.Clock
	palette  []string
}

// WithNotifier sets where outcome notifications go. Defaults to an
// in-process events.Bus.
func WithNotifier(n events.Notifier) Option {
	return func(cfg *appConfig) {
		cfg.notifier = n
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

// WithIDGenerator replaces the UUID generator
func WithIDGenerator(g ids.Generator) Option {
	return func(cfg *appConfig) {
		cfg.ids = g
	}
}

// WithClock replaces the system clock
func WithClock(c ids.Clock) Option {
	return func(cfg *appConfig) {
		cfg.clock = c
	}
}

// WithPalette restricts the colours picked for new columns
func WithPalette(palette []string) Option {
	return func(cfg *appConfig) {
		cfg.palette = palette
	}
}
