package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chandra-Moulii/project-planner/internal/cli"
	"github.com/Chandra-Moulii/project-planner/internal/database"
	"github.com/Chandra-Moulii/project-planner/internal/models"
	"github.com/Chandra-Moulii/project-planner/internal/persistence"
	"github.com/Chandra-Moulii/project-planner/internal/testutil"
	clitest "github.com/Chandra-Moulii/project-planner/internal/testutil/cli"
)

func TestDoctor_Healthy(t *testing.T) {
	t.Parallel()
	env := clitest.SetupCLITest(t)
	boardID := createBoard(t, env, "Groceries")
	createTask(t, env, boardID, "todo", "Buy milk")

	data := testutil.JSONData(t, run(t, env, "doctor", "--json").MustSucceed(t).Stdout)
	assert.Equal(t, float64(1), data["boards"])
	assert.Equal(t, float64(1), data["tasks"])
	assert.Equal(t, "1", data["schema_version"])
	assert.Equal(t, []any{"boards", "lastSelectedBoard"}, data["keys"])
	v, _ := data["violations"].([]any)
	assert.Empty(t, v)

	res := run(t, env, "doctor").MustSucceed(t)
	assert.Contains(t, res.Stdout, "No problems found")
}

func TestDoctor_ReportsViolations(t *testing.T) {
	dir := isolate(t)
	dbPath := filepath.Join(dir, "planner.db")

	// A board whose task count disagrees with its columns
	broken := []models.Board{{
		ID:         "b1",
		Name:       "Groceries",
		TotalTasks: 3,
		Columns: models.ColumnSet{
			{ID: "c1", Name: "todo", Color: "bg-gray-600", Tasks: []models.Task{}},
			{ID: "c2", Name: "inprogress", Color: "bg-green-600", Tasks: []models.Task{}},
			{ID: "c3", Name: "done", Color: "bg-red-600", Tasks: []models.Task{}},
		},
	}}
	raw, err := persistence.EncodeBoards(broken)
	require.NoError(t, err)
	store, err := database.OpenSQLite(context.Background(), dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Set(context.Background(), string(persistence.KeyBoards), raw))
	_ = store.Close()

	var stdout, stderr bytes.Buffer
	code := Execute(t.Context(), []string{"--db", dbPath, "doctor", "--json"}, &stdout, &stderr)
	require.Equal(t, cli.ExitDataErr, code, "stdout: %s\nstderr: %s", stdout.String(), stderr.String())

	data := testutil.JSONData(t, stdout.String())
	violations, _ := data["violations"].([]any)
	require.Len(t, violations, 1)
	v := violations[0].(map[string]any)
	assert.Equal(t, "b1", v["board_id"])
	assert.Contains(t, v["message"], "totalTasks")
}
