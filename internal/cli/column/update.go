package column

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Chandra-Moulii/project-planner/internal/cli"
	"github.com/Chandra-Moulii/project-planner/internal/cli/styles"
	columnservice "github.com/Chandra-Moulii/project-planner/internal/services/column"
)

// UpdateCmd returns the column update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <column>",
		Short: "Rename or recolour a column",
		Long: `Rename or recolour a column given by ID or name. Tasks follow the new
name. The reserved columns (todo, inprogress, done) cannot be changed.

Examples:
  planner column update blocked --name="Waiting"
  planner column update blocked --color=bg-orange-600
`,
		Args: cobra.ExactArgs(1),
		RunE: runUpdate,
	}

	cli.AddBoardFlag(cmd)
	cmd.Flags().String("name", "", "New column name")
	cmd.Flags().String("color", "", "New palette colour token")

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	cliInstance, err := cli.FromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	if !cmd.Flags().Changed("name") && !cmd.Flags().Changed("color") {
		return formatter.Fail(cli.Usagef("at least one of --name or --color is required"))
	}

	board, col, err := resolve(cmd, cliInstance, args[0])
	if err != nil {
		return formatter.Fail(err)
	}

	req := columnservice.RenameRequest{BoardID: board.ID, ColumnID: col.ID, Name: col.Name}
	if cmd.Flags().Changed("name") {
		req.Name, _ = cmd.Flags().GetString("name")
	}
	req.Color, _ = cmd.Flags().GetString("color")

	updated, err := cliInstance.App.ColumnService.UpdateColumn(ctx, req)
	if err != nil {
		return formatter.Fail(err)
	}

	return formatter.Success(toJSON(updated, board.ID), []string{updated.ID}, func(w io.Writer) {
		fmt.Fprintf(w, "%s Column updated\n", styles.SuccessStyle.Render("✓"))
		printColumn(w, updated)
	})
}
