package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Chandra-Moulii/project-planner/internal/testutil"
	clitest "github.com/Chandra-Moulii/project-planner/internal/testutil/cli"
)

func run(t *testing.T, env *clitest.Env, args ...string) clitest.Result {
	t.Helper()
	return env.ExecuteCLICommand(t, NewRootCmd(), args...)
}

func runWithInput(t *testing.T, env *clitest.Env, stdin string, args ...string) clitest.Result {
	t.Helper()
	return env.ExecuteWithInput(t, NewRootCmd(), stdin, args...)
}

func createBoard(t *testing.T, env *clitest.Env, name string) string {
	t.Helper()
	return run(t, env, "board", "create", "--name", name, "--quiet").MustSucceed(t).ID()
}

func createTask(t *testing.T, env *clitest.Env, boardID, column, name string) string {
	t.Helper()
	return run(t, env, "task", "create", "--board", boardID, "--column", column, "--name", name, "--quiet").
		MustSucceed(t).ID()
}

// jsonList returns the "data" array of a successful JSON response.
func jsonList(t *testing.T, output string) []map[string]any {
	t.Helper()
	result := testutil.ParseJSON(t, output)
	items, ok := result["data"].([]any)
	require.True(t, ok, "expected array data, got %s", output)
	out := make([]map[string]any, len(items))
	for i, item := range items {
		out[i] = item.(map[string]any)
	}
	return out
}

func requireCode(t *testing.T, res clitest.Result, want int) {
	t.Helper()
	require.Equal(t, want, res.Code, "unexpected exit code (err: %v)\nstdout: %s\nstderr: %s", res.Err, res.Stdout, res.Stderr)
}
