package models

import "time"

// Task represents a single unit of work. State always equals the name of
// the column whose task list currently holds the task.
type Task struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	State       string    `json:"state"`
	CreatedAt   time.Time `json:"createdAt"`
	EditedAt    time.Time `json:"editedAt"`
}
