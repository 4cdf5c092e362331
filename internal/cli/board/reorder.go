package board

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Chandra-Moulii/project-planner/internal/cli"
	"github.com/Chandra-Moulii/project-planner/internal/cli/styles"
)

// ReorderCmd returns the board reorder subcommand
func ReorderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reorder",
		Short: "Move a board to another sidebar position",
		Long: `Move the board at position --from to position --to (both 1-based, as
shown by 'planner board list'). Without --to nothing changes.

Examples:
  planner board reorder --from=3 --to=1
`,
		Args: cobra.NoArgs,
		RunE: runReorder,
	}

	cmd.Flags().Int("from", 0, "Current position (required)")
	_ = cmd.MarkFlagRequired("from")
	cmd.Flags().Int("to", 0, "New position")

	return cmd
}

func runReorder(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	cliInstance, err := cli.FromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	from, _ := cmd.Flags().GetInt("from")
	var to *int
	if cmd.Flags().Changed("to") {
		v, _ := cmd.Flags().GetInt("to")
		v--
		to = &v
	}

	if err := cliInstance.App.ReorderService.ReorderBoards(ctx, from-1, to); err != nil {
		return formatter.Fail(err)
	}

	boards, err := cliInstance.App.BoardService.ListBoards(ctx)
	if err != nil {
		return formatter.Fail(err)
	}
	activeID := cliInstance.App.Snapshot().ActiveBoardID
	out := make([]boardJSON, len(boards))
	ids := make([]string, len(boards))
	for i, b := range boards {
		out[i] = toJSON(b, activeID)
		ids[i] = b.ID
	}

	return formatter.Success(out, ids, func(w io.Writer) {
		if to == nil {
			fmt.Fprintln(w, "No destination given, order unchanged")
		} else {
			fmt.Fprintf(w, "%s Boards reordered\n", styles.SuccessStyle.Render("✓"))
		}
		now := cliInstance.App.Clock().Now()
		for i, b := range boards {
			fmt.Fprintf(w, "%d.", i+1)
			printSummary(w, b, b.ID == activeID, now)
		}
	})
}
