package preferences

import (
	"context"
	"fmt"

	"github.com/Chandra-Moulii/project-planner/internal/events"
	"github.com/Chandra-Moulii/project-planner/internal/models"
	"github.com/Chandra-Moulii/project-planner/internal/persistence"
	"github.com/Chandra-Moulii/project-planner/internal/services/mutation"
)

// Service defines the preference operations
type Service interface {
	Get(ctx context.Context) models.Preferences
	SetTheme(ctx context.Context, theme models.Theme) (models.Preferences, error)
	ToggleTheme(ctx context.Context) (models.Preferences, error)
	SetSidebar(ctx context.Context, open bool) (models.Preferences, error)
	ToggleSidebar(ctx context.Context) (models.Preferences, error)
}

type service struct {
	runner *mutation.Runner
}

// NewService creates a new preferences service
func NewService(runner *mutation.Runner) Service {
	return &service{runner: runner}
}

// Get returns the current preferences
func (s *service) Get(ctx context.Context) models.Preferences {
	return s.runner.Store().Snapshot().Preferences
}

func (s *service) SetTheme(ctx context.Context, theme models.Theme) (models.Preferences, error) {
	return s.theme(ctx, func(cur models.Snapshot) (models.Snapshot, error) {
		return SetTheme(cur, theme)
	})
}

func (s *service) ToggleTheme(ctx context.Context) (models.Preferences, error) {
	return s.theme(ctx, func(cur models.Snapshot) (models.Snapshot, error) {
		return ToggleTheme(cur), nil
	})
}

func (s *service) SetSidebar(ctx context.Context, open bool) (models.Preferences, error) {
	return s.sidebar(ctx, func(cur models.Snapshot) (models.Snapshot, error) {
		return SetSidebar(cur, open), nil
	})
}

func (s *service) ToggleSidebar(ctx context.Context) (models.Preferences, error) {
	return s.sidebar(ctx, func(cur models.Snapshot) (models.Snapshot, error) {
		return SetSidebar(cur, !cur.Preferences.SidebarOpen), nil
	})
}

func (s *service) theme(ctx context.Context, apply func(models.Snapshot) (models.Snapshot, error)) (models.Preferences, error) {
	next, err := s.runner.Run(ctx, mutation.Mutation{
		Op:    "set theme",
		Apply: apply,
		Keys:  []persistence.Key{persistence.KeyTheme},
		Events: func(next models.Snapshot) []events.Event {
			msg := fmt.Sprintf("Theme set to %s", next.Preferences.Theme)
			return []events.Event{events.Info(events.PreferenceChanged, "", msg)}
		},
	})
	return next.Preferences, err
}

func (s *service) sidebar(ctx context.Context, apply func(models.Snapshot) (models.Snapshot, error)) (models.Preferences, error) {
	next, err := s.runner.Run(ctx, mutation.Mutation{
		Op:    "set sidebar",
		Apply: apply,
		Keys:  []persistence.Key{persistence.KeySidebar},
	})
	return next.Preferences, err
}
