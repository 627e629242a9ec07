package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for Task
var (
	ErrEmptyTaskID    = errors.New("task ID cannot be empty")
	ErrEmptyTaskTitle = errors.New("task title cannot be empty")
)

// Task is a unit of work with a title, a priority, a lifecycle status,
// and optionally a category and a due date.
type Task struct {
	ID          uuid.UUID           `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Priority    Priority            `json:"priority"`
	Status      TaskStatus          `json:"status"`
	CategoryID  Optional[uuid.UUID] `json:"category_id"`
	CreatedAt   time.Time           `json:"created_at"`
	DueDate     Optional[time.Time] `json:"due_date"`
}

// NewTask creates a pending Task with a fresh ID and the given creation time.
// The title is trimmed; blank titles and unknown priorities are rejected.
func NewTask(
	title, description string,
	priority Priority,
	categoryID Optional[uuid.UUID],
	dueDate Optional[time.Time],
	createdAt time.Time,
) (*Task, error) {
	task := &Task{
		ID:          uuid.New(),
		Title:       strings.TrimSpace(title),
		Description: description,
		Priority:    priority,
		Status:      TaskStatusPending,
		CategoryID:  categoryID,
		CreatedAt:   createdAt.UTC(),
		DueDate:     dueDate,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
func (t *Task) Validate() error {
	if t.ID == uuid.Nil {
		return NewValidationError("id", "cannot be empty", ErrEmptyTaskID)
	}

	if strings.TrimSpace(t.Title) == "" {
		return NewValidationError("title", "cannot be empty", ErrEmptyTaskTitle)
	}

	if !t.Priority.IsValid() {
		return NewValidationError("priority", "is not a known priority", ErrInvalidPriority)
	}

	if !t.Status.IsValid() {
		return NewValidationError("status", "is not a known status", ErrInvalidStatus)
	}

	return nil
}

// IsOverdue reports whether the task has a due date strictly before now
// and has not been completed.
func (t *Task) IsOverdue(now time.Time) bool {
	due, ok := t.DueDate.Get()
	if !ok {
		return false
	}
	return t.Status != TaskStatusCompleted && due.Before(now)
}

// Complete marks the task as completed. Completing a completed task is a no-op.
func (t *Task) Complete() {
	t.Status = TaskStatusCompleted
}

// EntityID returns the task's identifier.
func (t Task) EntityID() uuid.UUID {
	return t.ID
}
