package board

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Chandra-Moulii/project-planner/internal/cli"
	"github.com/Chandra-Moulii/project-planner/internal/cli/styles"
	boardservice "github.com/Chandra-Moulii/project-planner/internal/services/board"
)

// CreateCmd returns the board create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new board",
		Long: `Create a board with the todo, inprogress and done columns and select it.

Examples:
  # Create a board (human-readable output)
  planner board create --name="Groceries"

  # JSON output for agents
  planner board create --name="Groceries" --description="weekly shop" --json

  # Quiet mode for bash capture
  BOARD_ID=$(planner board create --name="Groceries" --quiet)
`,
		Args: cobra.NoArgs,
		RunE: runCreate,
	}

	// Required flags
	cmd.Flags().String("name", "", "Board name, 4-50 characters (required)")
	_ = cmd.MarkFlagRequired("name")

	// Optional flags
	cmd.Flags().String("description", "", "Board description, up to 200 characters")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	cliInstance, err := cli.FromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	name, _ := cmd.Flags().GetString("name")
	description, _ := cmd.Flags().GetString("description")

	board, err := cliInstance.App.BoardService.CreateBoard(ctx, boardservice.CreateRequest{
		Name:        name,
		Description: description,
	})
	if err != nil {
		return formatter.Fail(err)
	}

	return formatter.Success(toJSON(board, board.ID), []string{board.ID}, func(w io.Writer) {
		fmt.Fprintf(w, "%s Board '%s' created (ID: %s)\n",
			styles.SuccessStyle.Render("✓"), board.Name, board.ID)
		fmt.Fprintf(w, "  Columns: %v\n", board.Columns.Names())
		fmt.Fprintln(w, "  Switched to new board")
	})
}
