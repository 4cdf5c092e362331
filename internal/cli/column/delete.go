package column

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Chandra-Moulii/project-planner/internal/cli"
	"github.com/Chandra-Moulii/project-planner/internal/cli/styles"
	columnservice "github.com/Chandra-Moulii/project-planner/internal/services/column"
)

// DeleteCmd returns the column delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <column>",
		Short: "Delete a column",
		Long: `Delete a column given by ID or name together with its tasks.

The column name must be typed to confirm, either at the prompt or with
--confirm. Reserved columns cannot be deleted.

Examples:
  # Delete with confirmation prompt
  planner column delete blocked

  # Non-interactive
  planner column delete blocked --confirm=blocked --json
`,
		Args: cobra.ExactArgs(1),
		RunE: runDelete,
	}

	cli.AddBoardFlag(cmd)
	cmd.Flags().String("confirm", "", "Column name, to confirm the deletion")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
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

	typed, _ := cmd.Flags().GetString("confirm")
	if !cmd.Flags().Changed("confirm") {
		if formatter.JSON || formatter.Quiet {
			return formatter.Fail(cli.Usagef("--confirm=<column name> is required with --json or --quiet"))
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Column '%s' holds %d tasks that will be discarded.\nType the column name to confirm: ",
			col.Name, len(col.Tasks))
		typed, _ = bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		typed = strings.TrimSpace(typed)
	}

	deleted, err := cliInstance.App.ColumnService.DeleteColumn(ctx, columnservice.DeleteRequest{
		BoardID:  board.ID,
		ColumnID: col.ID,
		Name:     typed,
	})
	if err != nil {
		return formatter.Fail(err)
	}

	return formatter.Success(toJSON(deleted, board.ID), []string{deleted.ID}, func(w io.Writer) {
		fmt.Fprintf(w, "%s Column '%s' deleted\n", styles.SuccessStyle.Render("✓"), deleted.Name)
		if n := len(deleted.Tasks); n > 0 {
			fmt.Fprintf(w, "  %d tasks discarded\n", n)
		}
	})
}
