package task

import "errors"

var (
	// ErrEditLocked is returned when editing a completed task
	ErrEditLocked = errors.New("completed tasks cannot be edited")

	// ErrNotFound is returned when an operation references a task id that
	// no longer exists (e.g. a stale row after a delete)
	ErrNotFound = errors.New("task not found")

	// ErrEmptyTitle is returned when a create or edit supplies no title
	ErrEmptyTitle = errors.New("task title must not be empty")
)
