package cli_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Chandra-Moulii/project-planner/internal/cli"
	"github.com/Chandra-Moulii/project-planner/internal/models"
	boardservice "github.com/Chandra-Moulii/project-planner/internal/services/board"
	clitest "github.com/Chandra-Moulii/project-planner/internal/testutil/cli"
)

func TestResolveBoard(t *testing.T) {
	t.Parallel()
	env := clitest.SetupCLITest(t)
	ctx := t.Context()
	svc := env.CLI.App.BoardService

	if _, err := cli.ResolveBoard(ctx, env.CLI, ""); !errors.Is(err, cli.ErrNoActiveBoard) {
		t.Fatalf("expected ErrNoActiveBoard, got %v", err)
	}

	groceries, err := svc.CreateBoard(ctx, boardservice.CreateRequest{Name: "Groceries"})
	if err != nil {
		t.Fatalf("CreateBoard: %v", err)
	}
	holidays, err := svc.CreateBoard(ctx, boardservice.CreateRequest{Name: "Holidays"})
	if err != nil {
		t.Fatalf("CreateBoard: %v", err)
	}

	tests := []struct {
		ref  string
		want string
	}{
		{"", holidays.ID},
		{groceries.ID, groceries.ID},
		{"groceries", groceries.ID},
		{"HOLIDAYS", holidays.ID},
	}
	for _, tt := range tests {
		b, err := cli.ResolveBoard(ctx, env.CLI, tt.ref)
		if err != nil || b.ID != tt.want {
			t.Errorf("ResolveBoard(%q) = %s, %v; want %s", tt.ref, b.ID, err, tt.want)
		}
	}

	if _, err := cli.ResolveBoard(ctx, env.CLI, "Garden"); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestResolveBoard_AmbiguousName(t *testing.T) {
	t.Parallel()
	env := clitest.SetupCLITest(t)
	ctx := t.Context()
	svc := env.CLI.App.BoardService

	first, err := svc.CreateBoard(ctx, boardservice.CreateRequest{Name: "Groceries"})
	if err != nil {
		t.Fatalf("CreateBoard: %v", err)
	}
	if _, err := svc.CreateBoard(ctx, boardservice.CreateRequest{Name: "groceries"}); err != nil {
		t.Fatalf("CreateBoard: %v", err)
	}

	_, err = cli.ResolveBoard(ctx, env.CLI, "Groceries")
	if !errors.Is(err, cli.ErrUsage) || !strings.Contains(err.Error(), "use the board id") {
		t.Errorf("expected an ambiguity error, got %v", err)
	}

	b, err := cli.ResolveBoard(ctx, env.CLI, first.ID)
	if err != nil || b.ID != first.ID {
		t.Errorf("ids stay unambiguous: %s, %v", b.ID, err)
	}
}

func TestRelative(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		at   time.Time
		want string
	}{
		{time.Time{}, "never"},
		{now.Add(-3 * time.Hour), "3 hours ago"},
		{now.Add(-2 * 24 * time.Hour), "2 days ago"},
		{now.Add(10 * time.Minute), "10 minutes from now"},
	}
	for _, tt := range tests {
		if got := cli.Relative(tt.at, now); got != tt.want {
			t.Errorf("Relative(%v) = %q, want %q", tt.at, got, tt.want)
		}
	}
}

func TestRenderMarkdown(t *testing.T) {
	t.Parallel()

	if got := cli.RenderMarkdown("   \n", "notty", 40); got != "" {
		t.Errorf("blank markdown rendered as %q", got)
	}

	got := cli.RenderMarkdown("Remember the receipts", "notty", 40)
	if !strings.Contains(got, "Remember the receipts") {
		t.Errorf("rendered text lost its words: %q", got)
	}
	if strings.HasSuffix(got, "\n") {
		t.Errorf("trailing newlines should be trimmed: %q", got)
	}
}
