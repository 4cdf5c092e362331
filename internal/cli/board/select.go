package board

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Chandra-Moulii/project-planner/internal/cli"
	"github.com/Chandra-Moulii/project-planner/internal/cli/styles"
)

// SelectCmd returns the board select subcommand
func SelectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "select <board>",
		Short: "Select the active board",
		Long: `Make a board the active one. Column and task commands default to it.

Examples:
  planner board select Groceries
`,
		Args: cobra.ExactArgs(1),
		RunE: runSelect,
	}
}

func runSelect(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	cliInstance, err := cli.FromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	board, err := cli.ResolveBoard(ctx, cliInstance, boardRef(args))
	if err != nil {
		return formatter.Fail(err)
	}

	selected, err := cliInstance.App.BoardService.SelectBoard(ctx, board.ID)
	if err != nil {
		return formatter.Fail(err)
	}

	return formatter.Success(toJSON(selected, selected.ID), []string{selected.ID}, func(w io.Writer) {
		fmt.Fprintf(w, "%s Switched to board '%s'\n", styles.SuccessStyle.Render("✓"), selected.Name)
	})
}
