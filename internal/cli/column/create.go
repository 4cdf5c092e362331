package column

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Chandra-Moulii/project-planner/internal/cli"
	"github.com/Chandra-Moulii/project-planner/internal/cli/styles"
	columnservice "github.com/Chandra-Moulii/project-planner/internal/services/column"
)

// CreateCmd returns the column create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new column",
		Long: `Append a column to a board. Names are lower-cased and must be unique
within the board.

Examples:
  # Create column on the selected board (random colour)
  planner column create --name="Blocked"

  # Pick the board and colour
  planner column create --name="Review" --board=Groceries --color=bg-teal-600

  # Quiet mode for bash capture
  COLUMN_ID=$(planner column create --name="Review" --quiet)
`,
		Args: cobra.NoArgs,
		RunE: runCreate,
	}

	// Required flags
	cmd.Flags().String("name", "", "Column name, 4-50 characters (required)")
	_ = cmd.MarkFlagRequired("name")

	// Optional flags
	cli.AddBoardFlag(cmd)
	cmd.Flags().String("color", "", "Palette colour token, e.g. bg-teal-600 (random when omitted)")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
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

	name, _ := cmd.Flags().GetString("name")
	color, _ := cmd.Flags().GetString("color")

	column, err := cliInstance.App.ColumnService.CreateColumn(ctx, columnservice.CreateRequest{
		BoardID: board.ID,
		Name:    name,
		Color:   color,
	})
	if err != nil {
		return formatter.Fail(err)
	}

	return formatter.Success(toJSON(column, board.ID), []string{column.ID}, func(w io.Writer) {
		fmt.Fprintf(w, "%s Column '%s' created (ID: %s)\n", styles.SuccessStyle.Render("✓"), column.Name, column.ID)
		fmt.Fprintf(w, "  Board: %s\n", board.Name)
	})
}
