package events

import "log/slog"

// Publish delivers an event to n, tolerating a nil notifier. Delivery
// failures are logged and never returned: a lost notification must not fail
// the operation that produced it.
func Publish(n Notifier, event Event) {
	if n == nil {
		return // No notifier configured (e.g., in tests or batch mode)
	}

	if err := n.Notify(event); err != nil {
		slog.Warn("notification dropped",
			"event_type", event.Type,
			"board_id", event.BoardID,
			"error", err)
	}
}

// Success builds a success event.
func Success(t EventType, boardID, message string) Event {
	return Event{Type: t, Severity: SeveritySuccess, BoardID: boardID, Message: message}
}

// Info builds an informational event.
func Info(t EventType, boardID, message string) Event {
	return Event{Type: t, Severity: SeverityInfo, BoardID: boardID, Message: message}
}

// Failure builds an error event from a failed operation.
func Failure(t EventType, boardID string, err error) Event {
	return Event{Type: t, Severity: SeverityError, BoardID: boardID, Message: err.Error()}
}
