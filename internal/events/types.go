package events

import "time"

// Severity classifies how a notification should be presented.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
)

// EventType indicates which operation produced the notification
type EventType string

const (
	BoardCreated      EventType = "board_created"
	BoardUpdated      EventType = "board_updated"
	BoardDeleted      EventType = "board_deleted"
	BoardSelected     EventType = "board_selected"
	BoardsReordered   EventType = "boards_reordered"
	ColumnCreated     EventType = "column_created"
	ColumnUpdated     EventType = "column_updated"
	ColumnDeleted     EventType = "column_deleted"
	ColumnCollapsed   EventType = "column_collapsed"
	TaskCreated       EventType = "task_created"
	TaskUpdated       EventType = "task_updated"
	TaskDeleted       EventType = "task_deleted"
	TaskMoved         EventType = "task_moved"
	PreferenceChanged EventType = "preference_changed"
	OperationFailed   EventType = "operation_failed"
	PersistenceFailed EventType = "persistence_failed"
)

// Event is a discrete outcome the core reports to the notification
// collaborator (e.g. "Board created", "blocked column already exists").
type Event struct {
	Type        EventType
	Severity    Severity
	Message     string
	Description string    // Optional second line
	BoardID     string    // Board the event concerns, empty for global events
	Timestamp   time.Time // When the event occurred
	SequenceID  int64     // Monotonically increasing sequence number for ordering
}
