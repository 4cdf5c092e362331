package column

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Chandra-Moulii/project-planner/internal/cli"
	"github.com/Chandra-Moulii/project-planner/internal/cli/styles"
	"github.com/Chandra-Moulii/project-planner/internal/models"
)

// ColumnCmd returns the column parent command
func ColumnCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "column",
		Short: "Manage columns",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(CollapseCmd())

	return cmd
}

// columnJSON is the JSON shape of a column
type columnJSON struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	Collapsed bool   `json:"collapsed"`
	Reserved  bool   `json:"reserved"`
	TaskCount int    `json:"task_count"`
	BoardID   string `json:"board_id"`
}

func toJSON(col models.Column, boardID string) columnJSON {
	return columnJSON{
		ID:        col.ID,
		Name:      col.Name,
		Color:     col.Color,
		Collapsed: col.Collapsed,
		Reserved:  col.IsReserved(),
		TaskCount: len(col.Tasks),
		BoardID:   boardID,
	}
}

func printColumn(w io.Writer, col models.Column) {
	state := ""
	if col.Collapsed {
		state = " collapsed"
	}
	fmt.Fprintf(w, "%s  %s\n",
		styles.RenderColumnChip(col),
		styles.SubtitleStyle.Render(fmt.Sprintf("(%d tasks%s, ID: %s)", len(col.Tasks), state, col.ID)))
}

// resolve finds the board from --board and the column from the first
// argument.
func resolve(cmd *cobra.Command, c *cli.CLI, ref string) (models.Board, models.Column, error) {
	ctx := cmd.Context()
	board, err := cli.BoardFlag(ctx, c, cmd)
	if err != nil {
		return models.Board{}, models.Column{}, err
	}
	col, err := c.App.ColumnService.GetColumn(ctx, board.ID, ref)
	if err != nil {
		return models.Board{}, models.Column{}, err
	}
	return board, col, nil
}
