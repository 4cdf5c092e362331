package task

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Chandra-Moulii/project-planner/internal/cli"
	"github.com/Chandra-Moulii/project-planner/internal/models"
)

// ListCmd returns the task list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks of a board",
		Long: `List every task of a board in column order (the list view).

Examples:
  planner task list
  planner task list --column=done
  planner task list --board=Groceries --json
`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	cli.AddBoardFlag(cmd)
	cmd.Flags().String("column", "", "Only tasks of this column")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
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

	var tasks []models.Task
	if ref, _ := cmd.Flags().GetString("column"); ref != "" {
		col, err := cliInstance.App.ColumnService.GetColumn(ctx, board.ID, ref)
		if err != nil {
			return formatter.Fail(err)
		}
		tasks = col.Tasks
	} else {
		tasks, err = cliInstance.App.TaskService.ListTasks(ctx, board.ID)
		if err != nil {
			return formatter.Fail(err)
		}
	}

	out := make([]taskJSON, len(tasks))
	ids := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = toJSON(t, board.ID)
		ids[i] = t.ID
	}

	return formatter.Success(out, ids, func(w io.Writer) {
		if len(tasks) == 0 {
			fmt.Fprintf(w, "No tasks in board '%s'\n", board.Name)
			return
		}
		now := cliInstance.App.Clock().Now()
		for _, t := range tasks {
			printTask(w, t, now)
		}
	})
}
