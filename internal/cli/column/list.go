package column

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Chandra-Moulii/project-planner/internal/cli"
)

// ListCmd returns the column list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List columns of a board",
		Long: `List all columns of a board (in order).

Examples:
  planner column list
  planner column list --board=Groceries --json
`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	cli.AddBoardFlag(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	cliInstance, err := cli.FromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	board, err := cli.BoardFlag(ctx, cliInstance, cmd)
	if err != nil {
		return formatter.Fail(err)
	}

	columns, err := cliInstance.App.ColumnService.ListColumns(ctx, board.ID)
	if err != nil {
		return formatter.Fail(err)
	}

	out := make([]columnJSON, len(columns))
	ids := make([]string, len(columns))
	for i, col := range columns {
		out[i] = toJSON(col, board.ID)
		ids[i] = col.ID
	}

	return formatter.Success(out, ids, func(w io.Writer) {
		fmt.Fprintf(w, "Columns in board '%s':\n", board.Name)
		for i, col := range columns {
			fmt.Fprintf(w, "  %d. ", i+1)
			printColumn(w, col)
		}
	})
}
