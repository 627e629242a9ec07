package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/tasks-api/internal/domain"
)

// TaskStore defines the interface for task data persistence.
type TaskStore interface {
	// Create saves a new task to the store.
	// Returns validation errors from the domain Task if data is invalid.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves a task by its unique ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)

	// GetAll retrieves every task in insertion order.
	GetAll(ctx context.Context) ([]*domain.Task, error)

	// FindByStatus retrieves all tasks with the given status.
	// Returns an empty slice if no tasks match.
	FindByStatus(ctx context.Context, status domain.TaskStatus) ([]*domain.Task, error)

	// FindByPriority retrieves all tasks with the given priority.
	FindByPriority(ctx context.Context, priority domain.Priority) ([]*domain.Task, error)

	// FindByCategoryID retrieves all tasks referencing the given category.
	// Tasks without a category never match.
	FindByCategoryID(ctx context.Context, categoryID uuid.UUID) ([]*domain.Task, error)

	// FindOverdue retrieves all tasks that are overdue relative to referenceTime:
	// due strictly before it and not completed.
	FindOverdue(ctx context.Context, referenceTime time.Time) ([]*domain.Task, error)

	// Update saves changes to an existing task.
	// Returns ErrTaskNotFound if the task does not exist.
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes a task by its ID.
	// Returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
