package cmd

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chandra-Moulii/project-planner/internal/cli"
	"github.com/Chandra-Moulii/project-planner/internal/testutil"
	clitest "github.com/Chandra-Moulii/project-planner/internal/testutil/cli"
)

// ============================================================================
// board create
// ============================================================================

func TestBoardCreate_JSON(t *testing.T) {
	t.Parallel()
	env := clitest.SetupCLITest(t)

	res := run(t, env, "board", "create", "--name", "Groceries", "--description", "weekly shop", "--json")
	requireCode(t, res, cli.ExitSuccess)

	data := testutil.JSONData(t, res.Stdout)
	assert.Equal(t, "id-4", data["id"])
	assert.Equal(t, "Groceries", data["name"])
	assert.Equal(t, "weekly shop", data["description"])
	assert.Equal(t, true, data["active"], "new board should be selected")
	assert.Equal(t, []any{"todo", "inprogress", "done"}, data["columns"])
	assert.Equal(t, "2024-01-15T10:00:00Z", data["created_at"])
}

func TestBoardCreate_Human(t *testing.T) {
	t.Parallel()
	env := clitest.SetupCLITest(t)

	res := run(t, env, "board", "create", "--name", "Groceries").MustSucceed(t)
	assert.Contains(t, res.Stdout, "Board 'Groceries' created (ID: id-4)")
	assert.Contains(t, res.Stdout, "Switched to new board")
}

func TestBoardCreate_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantErr  string
	}{
		{"name too short", []string{"board", "create", "--name", "abc", "--json"}, cli.ExitValidation, "VALIDATION_ERROR"},
		{"blank name", []string{"board", "create", "--name", "     ", "--json"}, cli.ExitValidation, "VALIDATION_ERROR"},
		{"description too long", []string{"board", "create", "--name", "Groceries", "--description", strings.Repeat("x", 201), "--json"}, cli.ExitValidation, "VALIDATION_ERROR"},
		{"missing name", []string{"board", "create"}, cli.ExitUsage, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			env := clitest.SetupCLITest(t)

			res := run(t, env, tt.args...)
			requireCode(t, res, tt.wantCode)
			if tt.wantErr != "" {
				assert.Equal(t, tt.wantErr, testutil.JSONError(t, res.Stdout)["code"])
			}
			assert.Empty(t, env.CLI.App.Snapshot().Boards, "failed create left boards behind")
		})
	}
}

// ============================================================================
// board list / select / show
// ============================================================================

func TestBoardList(t *testing.T) {
	t.Parallel()
	env := clitest.SetupCLITest(t)

	first := createBoard(t, env, "Groceries")
	second := createBoard(t, env, "Holidays")

	res := run(t, env, "board", "list", "--quiet").MustSucceed(t)
	assert.Equal(t, []string{first, second}, strings.Fields(res.Stdout))

	boards := jsonList(t, run(t, env, "board", "list", "--json").MustSucceed(t).Stdout)
	require.Len(t, boards, 2)
	assert.Equal(t, false, boards[0]["active"])
	assert.Equal(t, true, boards[1]["active"], "only the last created board should be active")

	res = run(t, env, "board", "list", "--search", "HOLI", "--quiet").MustSucceed(t)
	assert.Equal(t, second, res.ID())
}

func TestBoardList_Empty(t *testing.T) {
	t.Parallel()
	env := clitest.SetupCLITest(t)

	res := run(t, env, "board", "list").MustSucceed(t)
	assert.Contains(t, res.Stdout, "No boards yet")
}

func TestBoardSelect(t *testing.T) {
	t.Parallel()
	env := clitest.SetupCLITest(t)

	first := createBoard(t, env, "Groceries")
	createBoard(t, env, "Holidays")

	res := run(t, env, "board", "select", "groceries").MustSucceed(t)
	assert.Contains(t, res.Stdout, "Switched to board 'Groceries'")
	assert.Equal(t, first, env.CLI.App.Snapshot().ActiveBoardID)

	requireCode(t, run(t, env, "board", "select", "missing board"), cli.ExitNotFound)
	assert.Equal(t, first, env.CLI.App.Snapshot().ActiveBoardID, "failed select changed the active board")
}

func TestBoardShow_JSON(t *testing.T) {
	t.Parallel()
	env := clitest.SetupCLITest(t)

	boardID := createBoard(t, env, "Groceries")
	createTask(t, env, boardID, "todo", "Buy milk")

	data := testutil.JSONData(t, run(t, env, "board", "show", "--json").MustSucceed(t).Stdout)
	assert.Equal(t, boardID, data["id"])
	assert.Equal(t, float64(1), data["total_tasks"])

	detail, _ := data["column_detail"].([]any)
	require.Len(t, detail, 3)
	todo := detail[0].(map[string]any)
	tasks, _ := todo["tasks"].([]any)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Buy milk", tasks[0].(map[string]any)["name"])
}

func TestBoardShow_NoActiveBoard(t *testing.T) {
	t.Parallel()
	env := clitest.SetupCLITest(t)

	res := run(t, env, "board", "show", "--json")
	requireCode(t, res, cli.ExitUsage)
	assert.Equal(t, "USAGE_ERROR", testutil.JSONError(t, res.Stdout)["code"])
}

// ============================================================================
// board edit
// ============================================================================

func TestBoardEdit(t *testing.T) {
	t.Parallel()
	env := clitest.SetupCLITest(t)

	run(t, env, "board", "create", "--name", "Groceries", "--description", "weekly shop").MustSucceed(t)
	env.Clock.Advance(90 * time.Minute)

	data := testutil.JSONData(t, run(t, env, "board", "edit", "Groceries", "--name", "Weekly groceries", "--json").
		MustSucceed(t).Stdout)
	assert.Equal(t, "Weekly groceries", data["name"])
	assert.Equal(t, "weekly shop", data["description"], "description should be kept")
	assert.Equal(t, "2024-01-15T11:30:00Z", data["edited_at"])

	data = testutil.JSONData(t, run(t, env, "board", "edit", "--description", "", "--json").MustSucceed(t).Stdout)
	assert.Equal(t, "", data["description"], "description should be cleared")

	requireCode(t, run(t, env, "board", "edit"), cli.ExitUsage)
	requireCode(t, run(t, env, "board", "edit", "--name", "ab"), cli.ExitValidation)
}

// ============================================================================
// board delete
// ============================================================================

func TestBoardDelete_Discard(t *testing.T) {
	t.Parallel()
	env := clitest.SetupCLITest(t)

	boardID := createBoard(t, env, "Groceries")
	createTask(t, env, boardID, "todo", "Buy milk")

	res := run(t, env, "board", "delete", boardID, "--force").MustSucceed(t)
	assert.Contains(t, res.Stdout, "Board 'Groceries' deleted")

	snap := env.CLI.App.Snapshot()
	assert.Empty(t, snap.Boards)
	assert.Empty(t, snap.ActiveBoardID)
}

func TestBoardDelete_Reassign(t *testing.T) {
	t.Parallel()
	env := clitest.SetupCLITest(t)

	source := createBoard(t, env, "Groceries")
	createTask(t, env, source, "todo", "Buy milk")
	createTask(t, env, source, "done", "Buy eggs")
	target := createBoard(t, env, "Errands")
	createTask(t, env, target, "todo", "Post letter")

	res := run(t, env, "board", "delete", "Groceries", "--reassign-to", "Errands", "--json").MustSucceed(t)
	data := testutil.JSONData(t, res.Stdout)
	assert.Equal(t, float64(2), data["moved_tasks"])
	tgt, _ := data["target"].(map[string]any)
	assert.Equal(t, target, tgt["id"])
	assert.Equal(t, float64(3), tgt["total_tasks"])

	tasks := jsonList(t, run(t, env, "task", "list", "--board", target, "--json").MustSucceed(t).Stdout)
	var names []string
	for _, tk := range tasks {
		names = append(names, tk["name"].(string)+"/"+tk["state"].(string))
	}
	assert.Equal(t, []string{"Post letter/todo", "Buy milk/todo", "Buy eggs/done"}, names)
}

func TestBoardDelete_ReassignFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		prepare  func(t *testing.T, env *clitest.Env, source string) string
		wantCode int
	}{
		{
			name:     "missing target board",
			prepare:  func(t *testing.T, env *clitest.Env, source string) string { return "no-such-board" },
			wantCode: cli.ExitNotFound,
		},
		{
			name:     "target is the source",
			prepare:  func(t *testing.T, env *clitest.Env, source string) string { return source },
			wantCode: cli.ExitValidation,
		},
		{
			name: "target lacks a column",
			prepare: func(t *testing.T, env *clitest.Env, source string) string {
				run(t, env, "column", "create", "--board", source, "--name", "blocked").MustSucceed(t)
				createTask(t, env, source, "blocked", "Waiting on bank")
				return createBoard(t, env, "Errands")
			},
			wantCode: cli.ExitNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			env := clitest.SetupCLITest(t)

			source := createBoard(t, env, "Groceries")
			createTask(t, env, source, "todo", "Buy milk")
			target := tt.prepare(t, env, source)
			before := env.CLI.App.Snapshot()

			res := run(t, env, "board", "delete", source, "--reassign-to", target, "--force")
			requireCode(t, res, tt.wantCode)

			after := env.CLI.App.Snapshot()
			assert.Len(t, after.Boards, len(before.Boards), "failed delete changed the boards")
			assert.Equal(t, before.ActiveBoardID, after.ActiveBoardID)
			b, ok := after.Board(source)
			require.True(t, ok, "source board removed")
			assert.Equal(t, before.Boards[0].TotalTasks, b.TotalTasks, "source board changed")
		})
	}
}

func TestBoardDelete_Confirmation(t *testing.T) {
	t.Parallel()
	env := clitest.SetupCLITest(t)

	boardID := createBoard(t, env, "Groceries")

	res := runWithInput(t, env, "n\n", "board", "delete", boardID).MustSucceed(t)
	assert.Contains(t, res.Stdout, "Cancelled")
	require.Len(t, env.CLI.App.Snapshot().Boards, 1, "board deleted without confirmation")

	runWithInput(t, env, "yes\n", "board", "delete", boardID).MustSucceed(t)
	assert.Empty(t, env.CLI.App.Snapshot().Boards, "board not deleted after confirmation")
}

func TestBoardDelete_NotFound(t *testing.T) {
	t.Parallel()
	env := clitest.SetupCLITest(t)

	res := run(t, env, "board", "delete", "nope", "--json")
	requireCode(t, res, cli.ExitNotFound)
	assert.Equal(t, "NOT_FOUND", testutil.JSONError(t, res.Stdout)["code"])
}

// ============================================================================
// board reorder
// ============================================================================

func TestBoardReorder(t *testing.T) {
	t.Parallel()
	env := clitest.SetupCLITest(t)

	a := createBoard(t, env, "Board one")
	b := createBoard(t, env, "Board two")
	c := createBoard(t, env, "Board three")

	res := run(t, env, "board", "reorder", "--from", "3", "--to", "1", "--quiet").MustSucceed(t)
	assert.Equal(t, []string{c, a, b}, strings.Fields(res.Stdout))

	// No destination leaves the order alone
	res = run(t, env, "board", "reorder", "--from", "1", "--quiet").MustSucceed(t)
	assert.Equal(t, []string{c, a, b}, strings.Fields(res.Stdout), "order changed without destination")

	requireCode(t, run(t, env, "board", "reorder", "--from", "4", "--to", "1"), cli.ExitValidation)
	requireCode(t, run(t, env, "board", "reorder", "--from", "1", "--to", "9"), cli.ExitValidation)
}
