package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/Chandra-Moulii/project-planner/internal/models"
	boardservice "github.com/Chandra-Moulii/project-planner/internal/services/board"
)

// ErrUsage marks errors caused by how a command was invoked.
var ErrUsage = errors.New("usage error")

// ErrNoActiveBoard is returned when a command needs a board, none was
// given and none is selected.
var ErrNoActiveBoard = fmt.Errorf("%w: no board given and no board selected", ErrUsage)

// Usagef builds a usage error.
func Usagef(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUsage, fmt.Sprintf(format, args...))
}

// ResolveBoard finds a board by ID or by case-insensitive name. An empty
// ref means the active board.
func ResolveBoard(ctx context.Context, c *CLI, ref string) (models.Board, error) {
	svc := c.App.BoardService
	if ref == "" {
		b, ok := svc.ActiveBoard(ctx)
		if !ok {
			return models.Board{}, ErrNoActiveBoard
		}
		return b, nil
	}

	if b, err := svc.GetBoard(ctx, ref); err == nil {
		return b, nil
	}

	boards, err := svc.ListBoards(ctx)
	if err != nil {
		return models.Board{}, err
	}
	var matches []models.Board
	for _, b := range boards {
		if strings.EqualFold(b.Name, ref) {
			matches = append(matches, b)
		}
	}
	switch len(matches) {
	case 0:
		return models.Board{}, fmt.Errorf("%w: %s", boardservice.ErrBoardNotFound, ref)
	case 1:
		return matches[0], nil
	default:
		return models.Board{}, Usagef("%d boards are named %q, use the board id", len(matches), ref)
	}
}

// BoardFlag reads the --board flag and resolves it.
func BoardFlag(ctx context.Context, c *CLI, cmd *cobra.Command) (models.Board, error) {
	ref, _ := cmd.Flags().GetString("board")
	return ResolveBoard(ctx, c, ref)
}

// AddBoardFlag registers the --board flag shared by column and task
// commands.
func AddBoardFlag(cmd *cobra.Command) {
	cmd.Flags().String("board", "", "Board ID or name (defaults to the selected board)")
}

// Relative renders t relative to now, e.g. "3 hours ago".
func Relative(t, now time.Time) string {
	if t.IsZero() {
		return "never"
	}
	return humanize.RelTime(t, now, "ago", "from now")
}

var (
	mdRendererMu sync.Mutex
	mdRenderers  = map[string]*glamour.TermRenderer{}
)

// RenderMarkdown renders md for the terminal with the configured glamour
// style. "auto" detects the terminal background. Falls back to the raw text
// when rendering fails.
func RenderMarkdown(md, style string, width int) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}

	key := fmt.Sprintf("%s:%d", style, width)
	mdRendererMu.Lock()
	defer mdRendererMu.Unlock()

	r := mdRenderers[key]
	if r == nil {
		styleOpt := glamour.WithStandardStyle(style)
		if style == "" || style == "auto" {
			styleOpt = glamour.WithAutoStyle()
		}
		rr, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(width))
		if err != nil {
			return md
		}
		mdRenderers[key] = rr
		r = rr
	}

	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}
