package task

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/Chandra-Moulii/project-planner/internal/cli"
	"github.com/Chandra-Moulii/project-planner/internal/cli/styles"
	"github.com/Chandra-Moulii/project-planner/internal/models"
)

// TaskCmd returns the task parent command
func TaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(EditCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(MoveCmd())

	return cmd
}

// taskJSON is the JSON shape of a task
type taskJSON struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	State       string    `json:"state"`
	BoardID     string    `json:"board_id"`
	CreatedAt   time.Time `json:"created_at"`
	EditedAt    time.Time `json:"edited_at"`
}

func toJSON(t models.Task, boardID string) taskJSON {
	return taskJSON{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		State:       t.State,
		BoardID:     boardID,
		CreatedAt:   t.CreatedAt,
		EditedAt:    t.EditedAt,
	}
}

func printTask(w io.Writer, t models.Task, now time.Time) {
	fmt.Fprintf(w, "%s  %s  %s\n",
		styles.ValueStyle.Render(t.Name),
		styles.LabelStyle.Render("["+t.State+"]"),
		styles.SubtitleStyle.Render(fmt.Sprintf("(ID: %s, edited %s)", t.ID, cli.Relative(t.EditedAt, now))))
}

// resolve finds the board from --board and the task from the argument.
func resolve(cmd *cobra.Command, c *cli.CLI, taskID string) (models.Board, models.Task, error) {
	ctx := cmd.Context()
	board, err := cli.BoardFlag(ctx, c, cmd)
	if err != nil {
		return models.Board{}, models.Task{}, err
	}
	t, err := c.App.TaskService.GetTask(ctx, board.ID, taskID)
	if err != nil {
		return models.Board{}, models.Task{}, err
	}
	return board, t, nil
}
