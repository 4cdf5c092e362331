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

// MoveCmd returns the task move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <task>",
		Short: "Move a task within or between columns",
		Long: `Move a task to a column (and position), or one step in a direction.

Exactly one of --to, --up, --down, --next or --prev is required. With --to the
task is dropped at --index (1-based, default: end of the column).

Examples:
  planner task move <id> --to=done
  planner task move <id> --to=todo --index=1
  planner task move <id> --next
  planner task move <id> --up
`,
		Args: cobra.ExactArgs(1),
		RunE: runMove,
	}

	cli.AddBoardFlag(cmd)
	cmd.Flags().String("to", "", "Destination column (ID or name)")
	cmd.Flags().Int("index", 0, "Position in the destination column, 1-based")
	cmd.Flags().Bool("up", false, "Move one position up")
	cmd.Flags().Bool("down", false, "Move one position down")
	cmd.Flags().Bool("next", false, "Move to the end of the next column")
	cmd.Flags().Bool("prev", false, "Move to the end of the previous column")
	cmd.MarkFlagsMutuallyExclusive("to", "up", "down", "next", "prev")
	cmd.MarkFlagsOneRequired("to", "up", "down", "next", "prev")

	return cmd
}

type moveJSON struct {
	Task      taskJSON `json:"task"`
	FromIndex int      `json:"from_index"`
	ToIndex   int      `json:"to_index"`
	Moved     bool     `json:"moved"`
}

func runMove(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	cliInstance, err := cli.FromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	board, task, err := resolve(cmd, cliInstance, args[0])
	if err != nil {
		return formatter.Fail(err)
	}

	svc := cliInstance.App.TaskService
	var result taskservice.MoveResult
	switch {
	case flag(cmd, "up"):
		result, err = svc.MoveTaskUp(ctx, board.ID, task.ID)
	case flag(cmd, "down"):
		result, err = svc.MoveTaskDown(ctx, board.ID, task.ID)
	case flag(cmd, "next"):
		result, err = svc.MoveTaskToNextColumn(ctx, board.ID, task.ID)
	case flag(cmd, "prev"):
		result, err = svc.MoveTaskToPrevColumn(ctx, board.ID, task.ID)
	default:
		result, err = dropTo(cmd, cliInstance, board, task)
	}
	if err != nil {
		return formatter.Fail(err)
	}

	data := moveJSON{
		Task:      toJSON(result.Task, board.ID),
		FromIndex: result.FromIndex,
		ToIndex:   result.ToIndex,
		Moved:     result.Moved,
	}
	return formatter.Success(data, []string{result.Task.ID}, func(w io.Writer) {
		if !result.Moved {
			fmt.Fprintln(w, "Task already in place")
			return
		}
		fmt.Fprintf(w, "%s Task moved to %s (position %d)\n",
			styles.SuccessStyle.Render("✓"), result.Task.State, result.ToIndex+1)
	})
}

// dropTo moves the task the way a drag-and-drop would: as a drop event from
// its current slot to the destination slot.
func dropTo(cmd *cobra.Command, c *cli.CLI, board models.Board, task models.Task) (taskservice.MoveResult, error) {
	ctx := cmd.Context()
	ref, _ := cmd.Flags().GetString("to")
	dest, err := c.App.ColumnService.GetColumn(ctx, board.ID, ref)
	if err != nil {
		return taskservice.MoveResult{}, err
	}

	ci, ti, _ := board.LocateTask(task.ID)
	index := len(dest.Tasks)
	if cmd.Flags().Changed("index") {
		index, _ = cmd.Flags().GetInt("index")
		if index < 1 {
			return taskservice.MoveResult{}, cli.Usagef("--index must be 1 or more, got %d", index)
		}
		index--
	}

	return c.App.ReorderService.ApplyDrop(ctx, board.ID, models.DropResult{
		Source:      models.DropLocation{ContainerID: board.Columns[ci].ID, Index: ti},
		Destination: &models.DropLocation{ContainerID: dest.ID, Index: index},
	})
}

func flag(cmd *cobra.Command, name string) bool {
	v, _ := cmd.Flags().GetBool(name)
	return v
}
