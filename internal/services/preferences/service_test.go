package preferences

import (
	"context"
	"errors"
	"testing"

	"github.com/Chandra-Moulii/project-planner/internal/models"
	"github.com/Chandra-Moulii/project-planner/internal/persistence"
	"github.com/Chandra-Moulii/project-planner/internal/testutil/harness"
)

func TestThemeOperations(t *testing.T) {
	t.Parallel()
	h := harness.New(t)
	svc := NewService(h.Runner)
	ctx := context.Background()

	prefs, err := svc.ToggleTheme(ctx)
	if err != nil || prefs.Theme != models.ThemeDark {
		t.Fatalf("toggle from light = %+v, %v", prefs, err)
	}
	if got := h.Stored(t, persistence.KeyTheme); got != "dark" {
		t.Errorf("stored theme = %q", got)
	}

	if prefs, _ = svc.ToggleTheme(ctx); prefs.Theme != models.ThemeLight {
		t.Errorf("toggle from dark = %s", prefs.Theme)
	}

	if _, err := svc.SetTheme(ctx, models.ThemeSystem); err != nil {
		t.Fatalf("SetTheme failed: %v", err)
	}
	if prefs, _ = svc.ToggleTheme(ctx); prefs.Theme != models.ThemeDark {
		t.Errorf("toggle from system = %s", prefs.Theme)
	}
	if h.Recorder.Last().Message != "Theme set to dark" {
		t.Errorf("unexpected notification %q", h.Recorder.Last().Message)
	}
}

func TestSetTheme_Invalid(t *testing.T) {
	t.Parallel()
	h := harness.New(t)
	svc := NewService(h.Runner)

	_, err := svc.SetTheme(context.Background(), "sepia")
	if !errors.Is(err, models.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if svc.Get(context.Background()).Theme != models.ThemeLight {
		t.Error("invalid theme must not be applied")
	}
}

func TestSidebarOperations(t *testing.T) {
	t.Parallel()
	h := harness.New(t)
	svc := NewService(h.Runner)
	ctx := context.Background()

	prefs, err := svc.ToggleSidebar(ctx)
	if err != nil || prefs.SidebarOpen {
		t.Fatalf("toggle from open = %+v, %v", prefs, err)
	}
	if got := h.Stored(t, persistence.KeySidebar); got != "false" {
		t.Errorf("stored sidebar = %q", got)
	}

	if prefs, _ = svc.SetSidebar(ctx, true); !prefs.SidebarOpen {
		t.Error("SetSidebar(true) should open the sidebar")
	}
}
