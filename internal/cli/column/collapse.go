package column

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Chandra-Moulii/project-planner/internal/cli"
)

// CollapseCmd returns the column collapse subcommand
func CollapseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "collapse <column>",
		Short: "Collapse or expand a column",
		Long: `Toggle whether a column shows its tasks in 'planner board show'.

Examples:
  planner column collapse done
`,
		Args: cobra.ExactArgs(1),
		RunE: runCollapse,
	}

	cli.AddBoardFlag(cmd)

	return cmd
}

func runCollapse(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	cliInstance, err := cli.FromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	board, col, err := resolve(cmd, cliInstance, args[0])
	if err != nil {
		return formatter.Fail(err)
	}

	toggled, err := cliInstance.App.ColumnService.ToggleCollapse(ctx, board.ID, col.ID)
	if err != nil {
		return formatter.Fail(err)
	}

	return formatter.Success(toJSON(toggled, board.ID), []string{toggled.ID}, func(w io.Writer) {
		state := "expanded"
		if toggled.Collapsed {
			state = "collapsed"
		}
		fmt.Fprintf(w, "Column '%s' %s\n", toggled.Name, state)
	})
}
