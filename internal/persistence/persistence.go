// Package persistence mirrors the planner state into a key-value store and
// rehydrates it on startup.
package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/Chandra-Moulii/project-planner/internal/database"
	"github.com/Chandra-Moulii/project-planner/internal/models"
)

// Key names a persisted value.
type Key string

// Persisted keys. The value encodings are fixed: boards is a JSON array,
// lastSelectedBoard a JSON string, theme a raw string and sidebarState a JSON
// boolean.
const (
	KeyBoards      Key = "boards"
	KeyActiveBoard Key = "lastSelectedBoard"
	KeyTheme       Key = "theme"
	KeySidebar     Key = "sidebarState"
)

// AllKeys lists every persisted key.
var AllKeys = []Key{KeyBoards, KeyActiveBoard, KeyTheme, KeySidebar}

// Adapter encodes snapshots into a KeyValueStore.
type Adapter struct {
	kv     database.KeyValueStore
	logger *slog.Logger
}

// New returns an Adapter over kv. A nil logger uses slog.Default().
func New(kv database.KeyValueStore, logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Adapter{kv: kv, logger: logger}
}

// Persist writes the given keys of snap in a single batch. With no keys,
// every key is written.
func (a *Adapter) Persist(ctx context.Context, snap models.Snapshot, keys ...Key) error {
	if len(keys) == 0 {
		keys = AllKeys
	}

	entries := make([]database.Entry, 0, len(keys))
	for _, k := range keys {
		v, err := encode(snap, k)
		if err != nil {
			return fmt.Errorf("%w: failed to encode %s: %w", models.ErrPersistence, k, err)
		}
		entries = append(entries, database.Entry{Key: string(k), Value: v})
	}

	if err := a.kv.SetMany(ctx, entries); err != nil {
		return fmt.Errorf("%w: failed to write %v: %w", models.ErrPersistence, keys, err)
	}
	a.logger.Debug("state persisted", "keys", keys)
	return nil
}

// Load rehydrates a snapshot. Missing keys fall back to defaults; only a
// boards value that is present but undecodable is an error.
func (a *Adapter) Load(ctx context.Context) (models.Snapshot, error) {
	snap := models.Snapshot{
		Boards:      []models.Board{},
		Preferences: models.DefaultPreferences(),
	}

	raw, found, err := a.kv.Get(ctx, string(KeyBoards))
	if err != nil {
		return snap, fmt.Errorf("%w: failed to read boards: %w", models.ErrPersistence, err)
	}
	if found {
		boards, err := DecodeBoards(raw)
		if err != nil {
			return snap, fmt.Errorf("%w: failed to decode boards: %w", models.ErrPersistence, err)
		}
		snap.Boards = boards
	}

	raw, found, err = a.kv.Get(ctx, string(KeyActiveBoard))
	if err != nil {
		return snap, fmt.Errorf("%w: failed to read active board: %w", models.ErrPersistence, err)
	}
	if found {
		snap.ActiveBoardID = decodeActiveBoard(raw)
	}
	if snap.ActiveBoardID != "" && snap.BoardIndex(snap.ActiveBoardID) < 0 {
		a.logger.Debug("dropping dangling active board", "board_id", snap.ActiveBoardID)
		snap.ActiveBoardID = ""
	}

	raw, found, err = a.kv.Get(ctx, string(KeyTheme))
	if err != nil {
		return snap, fmt.Errorf("%w: failed to read theme: %w", models.ErrPersistence, err)
	}
	if found {
		theme, err := models.ParseTheme(raw)
		if err != nil {
			a.logger.Warn("ignoring stored theme", "value", raw, "error", err)
		} else {
			snap.Preferences.Theme = theme
		}
	}

	raw, found, err = a.kv.Get(ctx, string(KeySidebar))
	if err != nil {
		return snap, fmt.Errorf("%w: failed to read sidebar state: %w", models.ErrPersistence, err)
	}
	if found {
		open, err := strconv.ParseBool(raw)
		if err != nil {
			a.logger.Warn("ignoring stored sidebar state", "value", raw, "error", err)
		} else {
			snap.Preferences.SidebarOpen = open
		}
	}

	for _, v := range models.CheckSnapshot(snap) {
		a.logger.Warn("stored board breaks an invariant", "violation", v.String())
	}

	return snap, nil
}

// EncodeBoards renders boards the way they are stored. A nil slice encodes
// as an empty array.
func EncodeBoards(boards []models.Board) (string, error) {
	if boards == nil {
		boards = []models.Board{}
	}
	data, err := json.Marshal(boards)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// DecodeBoards parses a stored boards value.
func DecodeBoards(raw string) ([]models.Board, error) {
	var boards []models.Board
	if err := json.Unmarshal([]byte(raw), &boards); err != nil {
		return nil, err
	}
	if boards == nil {
		boards = []models.Board{}
	}
	return boards, nil
}

func encode(snap models.Snapshot, k Key) (string, error) {
	switch k {
	case KeyBoards:
		return EncodeBoards(snap.Boards)
	case KeyActiveBoard:
		data, err := json.Marshal(snap.ActiveBoardID)
		return string(data), err
	case KeyTheme:
		return string(snap.Preferences.Theme), nil
	case KeySidebar:
		return strconv.FormatBool(snap.Preferences.SidebarOpen), nil
	}
	return "", fmt.Errorf("unknown key %q", k)
}

// decodeActiveBoard accepts a JSON string, or a bare id written by older
// versions. Empty means no active board.
func decodeActiveBoard(raw string) string {
	if raw == "" {
		return ""
	}
	var id string
	if err := json.Unmarshal([]byte(raw), &id); err == nil {
		return id
	}
	return raw
}
