package board

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Chandra-Moulii/project-planner/internal/cli"
	"github.com/Chandra-Moulii/project-planner/internal/models"
)

// ListCmd returns the board list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List boards",
		Long: `List boards in sidebar order. The selected board is marked with *.

Examples:
  planner board list
  planner board list --search=groc
  planner board list --quiet
`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	cmd.Flags().String("search", "", "Only boards whose name contains this text (case-insensitive)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	cliInstance, err := cli.FromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	query, _ := cmd.Flags().GetString("search")

	var boards []models.Board
	if query != "" {
		boards, err = cliInstance.App.BoardService.SearchBoards(ctx, query)
	} else {
		boards, err = cliInstance.App.BoardService.ListBoards(ctx)
	}
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
		if len(boards) == 0 {
			if query != "" {
				fmt.Fprintf(w, "No boards match '%s'\n", query)
				return
			}
			fmt.Fprintln(w, "No boards yet. Create one with: planner board create --name=<name>")
			return
		}
		now := cliInstance.App.Clock().Now()
		for _, b := range boards {
			printSummary(w, b, b.ID == activeID, now)
		}
	})
}
