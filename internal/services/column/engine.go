package column

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/Chandra-Moulii/project-planner/internal/models"
	"github.com/Chandra-Moulii/project-planner/internal/services/mutation"
)

// CreateRequest encapsulates data for creating a column
type CreateRequest struct {
	BoardID string
	Name    string
	Color   string // Optional: a random palette colour is used when empty
}

// RenameRequest encapsulates data for renaming or recolouring a column
type RenameRequest struct {
	BoardID  string
	ColumnID string
	Name     string
	Color    string // Optional: empty keeps the current colour
}

// DeleteRequest identifies the column to delete. Name must equal the
// column's current name; a stale name means the caller is looking at a
// column that no longer exists.
type DeleteRequest struct {
	BoardID  string
	ColumnID string
	Name     string
}

// NormalizeName trims and lower-cases a column name and checks its length.
func NormalizeName(name string) (string, error) {
	return mutation.Name("column name", strings.ToLower(name))
}

// FindColumn resolves ref as a column ID, then as a column name.
func FindColumn(b models.Board, ref string) (int, bool) {
	if i := b.Columns.IndexByID(ref); i >= 0 {
		return i, true
	}
	if i := b.Columns.IndexByName(strings.ToLower(strings.TrimSpace(ref))); i >= 0 {
		return i, true
	}
	return -1, false
}

func validColor(env mutation.Env, color string) error {
	if !slices.Contains(env.Colors(), color) {
		return fmt.Errorf("%w: %q", ErrInvalidColor, color)
	}
	return nil
}

func randomColor(env mutation.Env) string {
	p := env.Colors()
	return p[rand.IntN(len(p))]
}

func boardIndex(s models.Snapshot, id string) (int, error) {
	i := s.BoardIndex(id)
	if i < 0 {
		return -1, fmt.Errorf("%w: %s", ErrBoardNotFound, id)
	}
	return i, nil
}

func columnIndex(b models.Board, id string) (int, error) {
	i := b.Columns.IndexByID(id)
	if i < 0 {
		return -1, fmt.Errorf("%w: %s", ErrColumnNotFound, id)
	}
	return i, nil
}

// Create appends a column to a board.
func Create(s models.Snapshot, req CreateRequest, env mutation.Env) (models.Snapshot, models.Column, error) {
	name, err := NormalizeName(req.Name)
	if err != nil {
		return s, models.Column{}, err
	}
	color := req.Color
	if color == "" {
		color = randomColor(env)
	} else if err := validColor(env, color); err != nil {
		return s, models.Column{}, err
	}

	bi, err := boardIndex(s, req.BoardID)
	if err != nil {
		return s, models.Column{}, err
	}
	if s.Boards[bi].Columns.IndexByName(name) >= 0 {
		return s, models.Column{}, fmt.Errorf("%w: %s", ErrColumnExists, name)
	}

	col := models.Column{
		ID:    env.IDs.NewID(),
		Name:  name,
		Color: color,
		Tasks: []models.Task{},
	}
	next, b := s.WithBoard(bi)
	b.Columns = append(b.Columns, col)
	return next, col, nil
}

// Rename changes a column's name and optionally its colour. The ID and tasks
// are kept; every task follows the new name.
func Rename(s models.Snapshot, req RenameRequest, env mutation.Env) (models.Snapshot, models.Column, error) {
	bi, err := boardIndex(s, req.BoardID)
	if err != nil {
		return s, models.Column{}, err
	}
	ci, err := columnIndex(s.Boards[bi], req.ColumnID)
	if err != nil {
		return s, models.Column{}, err
	}
	cur := s.Boards[bi].Columns[ci]
	if cur.IsReserved() {
		return s, models.Column{}, fmt.Errorf("%w: %s", ErrReservedColumn, cur.Name)
	}

	name, err := NormalizeName(req.Name)
	if err != nil {
		return s, models.Column{}, err
	}
	if req.Color != "" {
		if err := validColor(env, req.Color); err != nil {
			return s, models.Column{}, err
		}
	}

	if name == cur.Name && (req.Color == "" || req.Color == cur.Color) {
		return s, cur, nil
	}
	if name != cur.Name && s.Boards[bi].Columns.IndexByName(name) >= 0 {
		return s, models.Column{}, fmt.Errorf("%w: %s", ErrColumnExists, name)
	}

	next, b := s.WithBoard(bi)
	col := &b.Columns[ci]
	if req.Color != "" {
		col.Color = req.Color
	}
	if name != col.Name {
		col.Name = name
		for i := range col.Tasks {
			col.Tasks[i].State = name
		}
	}
	return next, *col, nil
}

// Delete removes a column together with its tasks.
func Delete(s models.Snapshot, req DeleteRequest, env mutation.Env) (models.Snapshot, models.Column, error) {
	bi, err := boardIndex(s, req.BoardID)
	if err != nil {
		return s, models.Column{}, err
	}
	ci, err := columnIndex(s.Boards[bi], req.ColumnID)
	if err != nil {
		return s, models.Column{}, err
	}
	cur := s.Boards[bi].Columns[ci]
	if cur.IsReserved() {
		return s, models.Column{}, fmt.Errorf("%w: %s", ErrReservedColumn, cur.Name)
	}
	if strings.ToLower(strings.TrimSpace(req.Name)) != cur.Name {
		return s, models.Column{}, fmt.Errorf("%w: expected %q, column is %q", ErrColumnNameMismatch, req.Name, cur.Name)
	}

	next, b := s.WithBoard(bi)
	b.Columns = mutation.Remove(b.Columns, ci)
	b.TotalTasks -= len(cur.Tasks)
	b.EditedAt = env.Clock.Now()
	return next, cur, nil
}

// ToggleCollapse flips a column between collapsed and expanded.
func ToggleCollapse(s models.Snapshot, boardID, columnID string) (models.Snapshot, models.Column, error) {
	bi, err := boardIndex(s, boardID)
	if err != nil {
		return s, models.Column{}, err
	}
	ci, err := columnIndex(s.Boards[bi], columnID)
	if err != nil {
		return s, models.Column{}, err
	}

	next, b := s.WithBoard(bi)
	b.Columns[ci].Collapsed = !b.Columns[ci].Collapsed
	return next, b.Columns[ci], nil
}
