package models

// DropLocation identifies a slot in a droppable container: a column ID for
// tasks, or the sidebar for boards.
type DropLocation struct {
	ContainerID string
	Index       int
}

// DropResult is what the drag-and-drop collaborator reports when a drag
// ends. Destination is nil when the item was dropped outside any container.
type DropResult struct {
	Source      DropLocation
	Destination *DropLocation
}
