package task

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Chandra-Moulii/project-planner/internal/cli"
	"github.com/Chandra-Moulii/project-planner/internal/cli/styles"
	"github.com/Chandra-Moulii/project-planner/internal/models"
	taskservice "github.com/Chandra-Moulii/project-planner/internal/services/task"
)

// CreateCmd returns the task create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new task",
		Long: `Append a task to a column of a board.

Examples:
  # Create task in the todo column of the selected board
  planner task create --name="Buy milk"

  # Pick the board and column, with a markdown description
  planner task create --name="Plan trip" --board=Holidays --column=inprogress \
    --description="- book flights
- book hotel"

  # Quiet mode for bash capture
  TASK_ID=$(planner task create --name="Buy milk" --quiet)
`,
		Args: cobra.NoArgs,
		RunE: runCreate,
	}

	// Required flags
	cmd.Flags().String("name", "", "Task name, 4-50 characters (required)")
	_ = cmd.MarkFlagRequired("name")

	// Optional flags
	cli.AddBoardFlag(cmd)
	cmd.Flags().String("column", models.ColumnTodo, "Column name")
	cmd.Flags().String("description", "", "Task description (markdown), up to 200 characters")

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
	column, _ := cmd.Flags().GetString("column")
	description, _ := cmd.Flags().GetString("description")

	task, err := cliInstance.App.TaskService.CreateTask(ctx, taskservice.CreateRequest{
		BoardID:     board.ID,
		ColumnName:  column,
		Name:        name,
		Description: description,
	})
	if err != nil {
		return formatter.FailWithSuggestion(err, "List columns with: planner column list")
	}

	return formatter.Success(toJSON(task, board.ID), []string{task.ID}, func(w io.Writer) {
		fmt.Fprintf(w, "%s Task created successfully (ID: %s)\n", styles.SuccessStyle.Render("✓"), task.ID)
		fmt.Fprintf(w, "  Board: %s  Column: %s\n", board.Name, task.State)
	})
}
