package board

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Chandra-Moulii/project-planner/internal/cli"
	"github.com/Chandra-Moulii/project-planner/internal/cli/styles"
	boardservice "github.com/Chandra-Moulii/project-planner/internal/services/board"
)

// EditCmd returns the board edit subcommand
func EditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit [board]",
		Short: "Rename a board or change its description",
		Long: `Edit a board by ID or name (defaults to the selected board).
Fields whose flag is not given keep their value.

Examples:
  planner board edit Groceries --name="Weekly groceries"
  planner board edit --description=""
`,
		Args: cobra.MaximumNArgs(1),
		RunE: runEdit,
	}

	cmd.Flags().String("name", "", "New board name")
	cmd.Flags().String("description", "", "New description (empty clears it)")

	return cmd
}

func runEdit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	cliInstance, err := cli.FromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	if !cmd.Flags().Changed("name") && !cmd.Flags().Changed("description") {
		return formatter.Fail(cli.Usagef("at least one of --name or --description is required"))
	}

	board, err := cli.ResolveBoard(ctx, cliInstance, boardRef(args))
	if err != nil {
		return formatter.Fail(err)
	}

	req := boardservice.EditRequest{
		BoardID:     board.ID,
		Name:        board.Name,
		Description: board.Description,
	}
	if cmd.Flags().Changed("name") {
		req.Name, _ = cmd.Flags().GetString("name")
	}
	if cmd.Flags().Changed("description") {
		req.Description, _ = cmd.Flags().GetString("description")
	}

	updated, err := cliInstance.App.BoardService.UpdateBoard(ctx, req)
	if err != nil {
		return formatter.Fail(err)
	}

	activeID := cliInstance.App.Snapshot().ActiveBoardID
	return formatter.Success(toJSON(updated, activeID), []string{updated.ID}, func(w io.Writer) {
		fmt.Fprintf(w, "%s Board updated\n", styles.SuccessStyle.Render("✓"))
		printSummary(w, updated, updated.ID == activeID, cliInstance.App.Clock().Now())
	})
}
