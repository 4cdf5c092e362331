package task

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Chandra-Moulii/project-planner/internal/cli"
	"github.com/Chandra-Moulii/project-planner/internal/cli/styles"
)

// ShowCmd returns the task show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <task>",
		Short: "Show task details",
		Long:  "Display a task with its markdown description rendered, its column and timestamps.",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}

	cli.AddBoardFlag(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	cliInstance, err := cli.FromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	board, task, err := resolve(cmd, cliInstance, args[0])
	if err != nil {
		return formatter.FailWithSuggestion(err, "List tasks with: planner task list")
	}

	return formatter.Success(toJSON(task, board.ID), []string{task.ID}, func(w io.Writer) {
		now := cliInstance.App.Clock().Now()
		var content strings.Builder

		content.WriteString(styles.TitleStyle.Render(task.Name))
		content.WriteString("\n\n")

		content.WriteString(styles.SectionStyle.Render("Description"))
		content.WriteString("\n")
		if desc := cli.RenderMarkdown(task.Description, cliInstance.Config.MarkdownStyle, styles.CardWidth-8); desc != "" {
			content.WriteString(desc)
		} else {
			content.WriteString(styles.SubtitleStyle.Italic(true).Render("No description"))
		}
		content.WriteString("\n\n")

		content.WriteString(fmt.Sprintf("%s %s\n",
			styles.LabelStyle.Render("Board:"),
			styles.ValueStyle.Render(board.Name)))
		content.WriteString(fmt.Sprintf("%s %s\n",
			styles.LabelStyle.Render("Column:"),
			styles.ValueStyle.Render(task.State)))
		content.WriteString(fmt.Sprintf("%s %s\n",
			styles.LabelStyle.Render("Created:"),
			styles.SubtitleStyle.Render(task.CreatedAt.Format("Jan 2, 2006 3:04 PM")+" ("+cli.Relative(task.CreatedAt, now)+")")))
		content.WriteString(fmt.Sprintf("%s %s\n",
			styles.LabelStyle.Render("Edited:"),
			styles.SubtitleStyle.Render(cli.Relative(task.EditedAt, now))))
		content.WriteString(styles.SubtitleStyle.Render("ID: " + task.ID))

		fmt.Fprintln(w, styles.RenderCard(content.String()))
	})
}
