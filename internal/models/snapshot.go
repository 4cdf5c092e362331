package models

import "slices"

// Snapshot is an immutable value of the whole application state. Engines
// never modify a published snapshot; they derive a new one with Clone,
// WithBoards or WithBoard and modify that.
type Snapshot struct {
	Boards        []Board
	ActiveBoardID string
	Preferences   Preferences
}

// BoardIndex returns the position of the board with the given ID, or -1.
func (s Snapshot) BoardIndex(id string) int {
	return slices.IndexFunc(s.Boards, func(b Board) bool { return b.ID == id })
}

// Board returns the board with the given ID.
func (s Snapshot) Board(id string) (Board, bool) {
	i := s.BoardIndex(id)
	if i < 0 {
		return Board{}, false
	}
	return s.Boards[i], true
}

// Clone returns a deep copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	if s.Boards != nil {
		boards := make([]Board, len(s.Boards))
		for i, b := range s.Boards {
			boards[i] = b.Clone()
		}
		s.Boards = boards
	}
	return s
}

// WithBoards copies only the top-level board sequence. Use it for changes
// that add, remove or reorder boards without touching their contents.
func (s Snapshot) WithBoards() Snapshot {
	s.Boards = slices.Clone(s.Boards)
	return s
}

// WithBoard copies the top-level sequence and deep-copies the board at i,
// returning the new snapshot and a pointer to its private board. Every
// other board is shared with s.
func (s Snapshot) WithBoard(i int) (Snapshot, *Board) {
	next := s.WithBoards()
	next.Boards[i] = s.Boards[i].Clone()
	return next, &next.Boards[i]
}
