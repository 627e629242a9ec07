package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/service"
)

// CreateCategoryRequest defines the payload for creating a category.
type CreateCategoryRequest struct {
	Name        string `json:"name"        validate:"required,max=100"`
	Description string `json:"description" validate:"max=1000"`
}

// UpdateCategoryRequest defines the payload for replacing a category's fields.
type UpdateCategoryRequest struct {
	Name        string `json:"name"        validate:"required,max=100"`
	Description string `json:"description" validate:"max=1000"`
}

// CategoryResponse is the JSON representation of a category.
type CategoryResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

// CreateTaskRequest defines the payload for creating a task.
// Priority accepts a name ("high") or its number; omitted means none.
type CreateTaskRequest struct {
	Title       string          `json:"title"       validate:"required,max=200"`
	Description string          `json:"description" validate:"max=4000"`
	Priority    domain.Priority `json:"priority"`
	CategoryID  *string         `json:"category_id" validate:"omitempty,uuid"`
	DueDate     *time.Time      `json:"due_date"`
}

// UpdateTaskRequest defines the payload for replacing a task's mutable fields.
// Omitted optional fields clear the stored value.
type UpdateTaskRequest struct {
	Title       string            `json:"title"       validate:"required,max=200"`
	Description string            `json:"description" validate:"max=4000"`
	Priority    domain.Priority   `json:"priority"`
	Status      domain.TaskStatus `json:"status"`
	CategoryID  *string           `json:"category_id" validate:"omitempty,uuid"`
	DueDate     *time.Time        `json:"due_date"`
}

// TaskResponse is the JSON representation of a task.
type TaskResponse struct {
	ID          uuid.UUID         `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Priority    domain.Priority   `json:"priority"`
	Status      domain.TaskStatus `json:"status"`
	CategoryID  *uuid.UUID        `json:"category_id"`
	CreatedAt   time.Time         `json:"created_at"`
	DueDate     *time.Time        `json:"due_date"`
}

// toParams converts the request into service parameters. The category ID
// has already passed the uuid validation tag.
func (r CreateTaskRequest) toParams() service.CreateTaskParams {
	return service.CreateTaskParams{
		Title:       r.Title,
		Description: r.Description,
		Priority:    r.Priority,
		CategoryID:  parseOptionalUUID(r.CategoryID),
		DueDate:     domain.FromPtr(r.DueDate),
	}
}

func (r UpdateTaskRequest) toParams() service.UpdateTaskParams {
	return service.UpdateTaskParams{
		Title:       r.Title,
		Description: r.Description,
		Priority:    r.Priority,
		Status:      r.Status,
		CategoryID:  parseOptionalUUID(r.CategoryID),
		DueDate:     domain.FromPtr(r.DueDate),
	}
}

func parseOptionalUUID(s *string) domain.Optional[uuid.UUID] {
	if s == nil {
		return domain.None[uuid.UUID]()
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return domain.None[uuid.UUID]()
	}
	return domain.Some(id)
}

func categoryToResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
	}
}

func categoriesToResponse(categories []*domain.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, categoryToResponse(c))
	}
	return out
}

func taskToResponse(t *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    t.Priority,
		Status:      t.Status,
		CategoryID:  t.CategoryID.Ptr(),
		CreatedAt:   t.CreatedAt,
		DueDate:     t.DueDate.Ptr(),
	}
}

func tasksToResponse(tasks []*domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, taskToResponse(t))
	}
	return out
}
