package board

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Chandra-Moulii/project-planner/internal/cli"
	"github.com/Chandra-Moulii/project-planner/internal/cli/styles"
	"github.com/Chandra-Moulii/project-planner/internal/models"
)

// ShowCmd returns the board show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [board]",
		Short: "Show a board with its columns and tasks",
		Long: `Show a board by ID or name. Without an argument the selected board is shown.

Collapsed columns list their task count only.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runShow,
	}

	return cmd
}

type columnJSON struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Color     string        `json:"color"`
	Collapsed bool          `json:"collapsed"`
	Tasks     []models.Task `json:"tasks"`
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	cliInstance, err := cli.FromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	board, err := cli.ResolveBoard(ctx, cliInstance, boardRef(args))
	if err != nil {
		return formatter.FailWithSuggestion(err, "List boards with: planner board list")
	}

	snap := cliInstance.App.Snapshot()
	cols := make([]columnJSON, len(board.Columns))
	for i, col := range board.Columns {
		cols[i] = columnJSON{ID: col.ID, Name: col.Name, Color: col.Color, Collapsed: col.Collapsed, Tasks: col.Tasks}
	}
	data := struct {
		boardJSON
		ColumnDetail []columnJSON `json:"column_detail"`
	}{toJSON(board, snap.ActiveBoardID), cols}

	return formatter.Success(data, []string{board.ID}, func(w io.Writer) {
		now := cliInstance.App.Clock().Now()

		var content strings.Builder
		content.WriteString(styles.TitleStyle.Render(board.Name))
		content.WriteString("\n")
		if board.Description != "" {
			content.WriteString(styles.ValueStyle.Render(board.Description))
			content.WriteString("\n")
		}
		content.WriteString(styles.SubtitleStyle.Render(fmt.Sprintf("%d tasks · created %s · edited %s",
			board.TotalTasks, cli.Relative(board.CreatedAt, now), cli.Relative(board.EditedAt, now))))
		content.WriteString("\n")

		for _, col := range board.Columns {
			content.WriteString("\n")
			content.WriteString(fmt.Sprintf("%s %s\n",
				styles.RenderColumnChip(col),
				styles.SubtitleStyle.Render(fmt.Sprintf("(%d)", len(col.Tasks)))))
			if col.Collapsed {
				continue
			}
			for _, t := range col.Tasks {
				content.WriteString(fmt.Sprintf("  • %s %s\n",
					styles.ValueStyle.Render(t.Name),
					styles.SubtitleStyle.Render(t.ID)))
			}
		}

		fmt.Fprintln(w, styles.RenderCard(content.String()))
	})
}
