package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Chandra-Moulii/project-planner/internal/cli"
	"github.com/Chandra-Moulii/project-planner/internal/cli/board"
	"github.com/Chandra-Moulii/project-planner/internal/cli/column"
	"github.com/Chandra-Moulii/project-planner/internal/cli/doctor"
	"github.com/Chandra-Moulii/project-planner/internal/cli/prefs"
	"github.com/Chandra-Moulii/project-planner/internal/cli/task"
)

// session owns the CLI opened by the root command for one invocation.
type session struct {
	cli *cli.CLI
}

func (s *session) close() error {
	if s.cli == nil {
		return nil
	}
	err := s.cli.Close()
	s.cli = nil
	return err
}

// NewRootCmd builds the planner command tree. A CLI already stored in the
// command context (see cli.WithCLI) is used as is and not closed.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&session{})
}

func newRootCmd(s *session) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "planner",
		Short: "Planner - a personal kanban board",
		Long: `Planner keeps boards of columns holding tasks. Every command performs one
change and saves it to a local SQLite database.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if _, err := cli.FromContext(ctx); err == nil {
				return nil
			}

			dbPath, _ := cmd.Flags().GetString("db")
			configPath, _ := cmd.Flags().GetString("config")
			c, err := cli.NewCLI(ctx, cli.Options{
				DBPath:     dbPath,
				ConfigPath: configPath,
				Stderr:     cmd.ErrOrStderr(),
			})
			if err != nil {
				return cli.NewFormatter(cmd).Fail(err)
			}
			s.cli = c
			cmd.SetContext(cli.WithCLI(ctx, c))
			return nil
		},
	}

	rootCmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	rootCmd.PersistentFlags().Bool("quiet", false, "Minimal output (IDs only)")
	rootCmd.PersistentFlags().String("db", "", "Database path (overrides config and PLANNER_DB)")
	rootCmd.PersistentFlags().String("config", "", "Config file path")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	})

	rootCmd.AddCommand(board.BoardCmd())
	rootCmd.AddCommand(column.ColumnCmd())
	rootCmd.AddCommand(task.TaskCmd())
	rootCmd.AddCommand(prefs.PrefsCmd())
	rootCmd.AddCommand(doctor.DoctorCmd())

	return rootCmd
}

// Execute runs the command line and returns the process exit code.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	s := &session{}
	rootCmd := newRootCmd(s)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(ctx)
	if closeErr := s.close(); closeErr != nil && err == nil {
		fmt.Fprintf(stderr, "Error: %v\n", closeErr)
		return cli.ExitCodeFor(closeErr)
	}
	if err == nil {
		return cli.ExitSuccess
	}

	var cmdErr *cli.CommandError
	if !errors.As(err, &cmdErr) {
		// Argument and flag errors raised by cobra before a command ran
		fmt.Fprintf(stderr, "Error: %v\n", err)
		fmt.Fprintln(stderr, "Run 'planner --help' for usage.")
		return cli.ExitUsage
	}
	return cmdErr.Code
}
