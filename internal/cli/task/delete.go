package task

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Chandra-Moulii/project-planner/internal/cli"
	"github.com/Chandra-Moulii/project-planner/internal/cli/styles"
)

// DeleteCmd returns the task delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <task>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE:  runDelete,
	}

	cli.AddBoardFlag(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
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

	deleted, err := cliInstance.App.TaskService.DeleteTask(ctx, board.ID, args[0])
	if err != nil {
		return formatter.Fail(err)
	}

	return formatter.Success(toJSON(deleted, board.ID), []string{deleted.ID}, func(w io.Writer) {
		fmt.Fprintf(w, "%s Task '%s' deleted\n", styles.SuccessStyle.Render("✓"), deleted.Name)
	})
}
