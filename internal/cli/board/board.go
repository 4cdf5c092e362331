package board

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Chandra-Moulii/project-planner/internal/cli"
	"github.com/Chandra-Moulii/project-planner/internal/cli/styles"
	"github.com/Chandra-Moulii/project-planner/internal/models"
)

// BoardCmd returns the board parent command
func BoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Manage boards",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(EditCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(SelectCmd())
	cmd.AddCommand(ReorderCmd())

	return cmd
}

// boardJSON is the JSON shape of a board summary
type boardJSON struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	TotalTasks  int       `json:"total_tasks"`
	Columns     []string  `json:"columns"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	EditedAt    time.Time `json:"edited_at"`
}

func toJSON(b models.Board, activeID string) boardJSON {
	return boardJSON{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		TotalTasks:  b.TotalTasks,
		Columns:     b.Columns.Names(),
		Active:      b.ID == activeID,
		CreatedAt:   b.CreatedAt,
		EditedAt:    b.EditedAt,
	}
}

// printSummary writes the one-line form of a board used by list and the
// write commands.
func printSummary(w io.Writer, b models.Board, active bool, now time.Time) {
	marker := " "
	if active {
		marker = styles.SuccessStyle.Render("*")
	}
	fmt.Fprintf(w, "%s %s  %s  %s\n",
		marker,
		styles.TitleStyle.Render(b.Name),
		styles.ValueStyle.Render(fmt.Sprintf("%d tasks", b.TotalTasks)),
		styles.SubtitleStyle.Render(fmt.Sprintf("(ID: %s, edited %s)", b.ID, cli.Relative(b.EditedAt, now))),
	)
}

// boardRef returns the board argument, empty for the selected board.
func boardRef(args []string) string {
	if len(args) > 0 {
		return strings.TrimSpace(args[0])
	}
	return ""
}
