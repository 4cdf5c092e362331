package models

import "slices"

// ============================================================================
// RESERVED COLUMNS
// ============================================================================

// Reserved column names. Every board is created with these three columns and
// they can be neither renamed nor deleted.
const (
	ColumnTodo       = "todo"
	ColumnInProgress = "inprogress"
	ColumnDone       = "done"
)

// ReservedColumns lists the reserved columns in the order new boards get them.
var ReservedColumns = []string{ColumnTodo, ColumnInProgress, ColumnDone}

// reservedColors are the fixed colours of the reserved columns.
var reservedColors = map[string]string{
	ColumnTodo:       "bg-gray-600",
	ColumnInProgress: "bg-green-600",
	ColumnDone:       "bg-red-600",
}

// IsReservedColumn reports whether name is a reserved column name.
func IsReservedColumn(name string) bool {
	return slices.Contains(ReservedColumns, name)
}

// ReservedColor returns the colour token of a reserved column.
func ReservedColor(name string) string {
	return reservedColors[name]
}

// ============================================================================
// COLUMN PALETTE
// ============================================================================

// DefaultPalette is the set of colour tokens a column may use.
var DefaultPalette = []string{
	"bg-red-600",
	"bg-blue-600",
	"bg-green-600",
	"bg-yellow-600",
	"bg-purple-600",
	"bg-pink-600",
	"bg-indigo-600",
	"bg-teal-600",
	"bg-orange-600",
	"bg-gray-600",
}

// ============================================================================
// INPUT LIMITS
// ============================================================================

const (
	// MinNameLength is the minimum rune count of board, column and task names.
	MinNameLength = 4

	// MaxNameLength is the maximum rune count of board, column and task names.
	MaxNameLength = 50

	// MaxDescriptionLength is the maximum rune count of descriptions.
	MaxDescriptionLength = 200
)
