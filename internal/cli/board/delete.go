package board

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Chandra-Moulii/project-planner/internal/cli"
	"github.com/Chandra-Moulii/project-planner/internal/cli/styles"
	"github.com/Chandra-Moulii/project-planner/internal/models"
	boardservice "github.com/Chandra-Moulii/project-planner/internal/services/board"
)

// DeleteCmd returns the board delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <board>",
		Short: "Delete a board",
		Long: `Delete a board by ID or name (requires confirmation unless --force, --json or --quiet).

Without --reassign-to the board's tasks are discarded. With it, every task is
appended to the same-named column of the target board; nothing is deleted
when the target lacks one of those columns.

Examples:
  planner board delete Groceries --force
  planner board delete Groceries --reassign-to="Weekly errands" --force
`,
		Args: cobra.ExactArgs(1),
		RunE: runDelete,
	}

	cmd.Flags().String("reassign-to", "", "Board (ID or name) receiving the tasks")
	cmd.Flags().Bool("force", false, "Skip confirmation")

	return cmd
}

type deleteJSON struct {
	Deleted    boardJSON  `json:"deleted"`
	Target     *boardJSON `json:"target,omitempty"`
	MovedTasks int        `json:"moved_tasks"`
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	cliInstance, err := cli.FromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	board, err := cli.ResolveBoard(ctx, cliInstance, boardRef(args))
	if err != nil {
		return formatter.Fail(err)
	}

	req := boardservice.DeleteRequest{BoardID: board.ID}
	if ref, _ := cmd.Flags().GetString("reassign-to"); ref != "" {
		target, err := cli.ResolveBoard(ctx, cliInstance, ref)
		switch {
		case err == nil:
			req.ReassignTo = target.ID
		case errors.Is(err, models.ErrNotFound):
			// Let the engine report the missing target
			req.ReassignTo = ref
		default:
			return formatter.Fail(err)
		}
	}

	force, _ := cmd.Flags().GetBool("force")
	if !force && !formatter.JSON && !formatter.Quiet {
		prompt := fmt.Sprintf("Delete board '%s' and its %d tasks?", board.Name, board.TotalTasks)
		if req.ReassignTo != "" {
			prompt = fmt.Sprintf("Delete board '%s' and move its %d tasks?", board.Name, board.TotalTasks)
		}
		if !confirm(cmd.InOrStdin(), cmd.OutOrStdout(), prompt) {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
			return nil
		}
	}

	result, err := cliInstance.App.BoardService.DeleteBoard(ctx, req)
	if err != nil {
		return formatter.Fail(err)
	}

	data := deleteJSON{Deleted: toJSON(result.Deleted, ""), MovedTasks: result.MovedTasks}
	if result.Target != nil {
		t := toJSON(*result.Target, "")
		data.Target = &t
	}

	return formatter.Success(data, []string{result.Deleted.ID}, func(w io.Writer) {
		fmt.Fprintf(w, "%s Board '%s' deleted\n", styles.SuccessStyle.Render("✓"), result.Deleted.Name)
		if result.Target != nil {
			fmt.Fprintf(w, "  All tasks moved to board '%s' (%d tasks)\n", result.Target.Name, result.MovedTasks)
		}
	})
}

// confirm asks a yes/no question on out and reads the answer from in.
func confirm(in io.Reader, out io.Writer, prompt string) bool {
	fmt.Fprintf(out, "%s [y/N]: ", prompt)
	answer, _ := bufio.NewReader(in).ReadString('\n')
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
