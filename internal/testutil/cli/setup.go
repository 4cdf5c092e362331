// Package cli runs planner commands against an in-memory database. It is
// kept apart from testutil so service tests can import testutil without
// pulling in the application container.
package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/Chandra-Moulii/project-planner/internal/app"
	plannercli "github.com/Chandra-Moulii/project-planner/internal/cli"
	"github.com/Chandra-Moulii/project-planner/internal/config"
	"github.com/Chandra-Moulii/project-planner/internal/logging"
	"github.com/Chandra-Moulii/project-planner/internal/testutil"
)

// Env is a CLI wired to an in-memory SQLite store with a fixed clock and
// sequential ids.
type Env struct {
	CLI   *plannercli.CLI
	Clock *testutil.FixedClock
	IDs   *testutil.SequentialIDs
}

// Result is the outcome of one command execution.
type Result struct {
	Stdout string
	Stderr string
	Err    error
	Code   int
}

// SetupCLITest creates the in-memory store and the CLI on top of it.
func SetupCLITest(t *testing.T) *Env {
	t.Helper()

	env := &Env{
		Clock: testutil.NewFixedClock(),
		IDs:   &testutil.SequentialIDs{},
	}
	a, err := app.New(t.Context(), testutil.SetupTestStore(t),
		app.WithLogger(logging.Discard()),
		app.WithIDGenerator(env.IDs),
		app.WithClock(env.Clock),
	)
	require.NoError(t, err, "Failed to create app")

	cfg := config.Default()
	cfg.MarkdownStyle = "notty"
	env.CLI = plannercli.NewWithApp(a, cfg)
	return env
}

// ExecuteCLICommand runs root with args against the environment's CLI.
func (e *Env) ExecuteCLICommand(t *testing.T, root *cobra.Command, args ...string) Result {
	t.Helper()
	return e.ExecuteWithInput(t, root, "", args...)
}

// ExecuteWithInput is ExecuteCLICommand with stdin, for confirmation
// prompts.
func (e *Env) ExecuteWithInput(t *testing.T, root *cobra.Command, stdin string, args ...string) Result {
	t.Helper()

	var stdout, stderr bytes.Buffer
	root.SetArgs(args)
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetIn(strings.NewReader(stdin))
	root.SilenceUsage = true
	root.SilenceErrors = true

	err := root.ExecuteContext(plannercli.WithCLI(t.Context(), e.CLI))
	res := Result{Stdout: stdout.String(), Stderr: stderr.String(), Err: err}

	var cmdErr *plannercli.CommandError
	switch {
	case err == nil:
		res.Code = plannercli.ExitSuccess
	case errors.As(err, &cmdErr):
		res.Code = cmdErr.Code
	default:
		res.Code = plannercli.ExitUsage
	}
	return res
}

// MustSucceed fails the test unless the command exited with code 0.
func (r Result) MustSucceed(t *testing.T) Result {
	t.Helper()
	require.Equal(t, plannercli.ExitSuccess, r.Code,
		"command failed: %v\nstdout: %s\nstderr: %s", r.Err, r.Stdout, r.Stderr)
	return r
}

// ID returns the trimmed stdout of a --quiet command.
func (r Result) ID() string {
	return strings.TrimSpace(r.Stdout)
}
