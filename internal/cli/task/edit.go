package task

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Chandra-Moulii/project-planner/internal/cli"
	"github.com/Chandra-Moulii/project-planner/internal/cli/styles"
	taskservice "github.com/Chandra-Moulii/project-planner/internal/services/task"
)

// EditCmd returns the task edit subcommand
func EditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <task>",
		Short: "Edit a task's name or description",
		Long: `Edit a task. Fields whose flag is not given keep their value.

Examples:
  planner task edit <id> --name="Buy oat milk"
  planner task edit <id> --description=""
`,
		Args: cobra.ExactArgs(1),
		RunE: runEdit,
	}

	cli.AddBoardFlag(cmd)
	cmd.Flags().String("name", "", "New task name")
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

	board, task, err := resolve(cmd, cliInstance, args[0])
	if err != nil {
		return formatter.Fail(err)
	}

	req := taskservice.EditRequest{
		BoardID:     board.ID,
		TaskID:      task.ID,
		Name:        task.Name,
		Description: task.Description,
	}
	if cmd.Flags().Changed("name") {
		req.Name, _ = cmd.Flags().GetString("name")
	}
	if cmd.Flags().Changed("description") {
		req.Description, _ = cmd.Flags().GetString("description")
	}

	updated, err := cliInstance.App.TaskService.UpdateTask(ctx, req)
	if err != nil {
		return formatter.Fail(err)
	}

	return formatter.Success(toJSON(updated, board.ID), []string{updated.ID}, func(w io.Writer) {
		fmt.Fprintf(w, "%s Task updated\n", styles.SuccessStyle.Render("✓"))
		printTask(w, updated, cliInstance.App.Clock().Now())
	})
}
