package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/service"
)

// MockCategoryService is a mock implementation of service.CategoryService for testing
type MockCategoryService struct {
	GetCategoryFn       func(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	GetCategoryByNameFn func(ctx context.Context, name string) (*domain.Category, error)
	ListCategoriesFn    func(ctx context.Context) ([]*domain.Category, error)
	CreateCategoryFn    func(ctx context.Context, name, description string) (*domain.Category, error)
	UpdateCategoryFn    func(ctx context.Context, id uuid.UUID, name, description string) (*domain.Category, error)
	DeleteCategoryFn    func(ctx context.Context, id uuid.UUID) (bool, error)
}

var _ service.CategoryService = (*MockCategoryService)(nil)

func (m *MockCategoryService) GetCategory(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	if m.GetCategoryFn != nil {
		return m.GetCategoryFn(ctx, id)
	}
	return nil, nil
}

func (m *MockCategoryService) GetCategoryByName(ctx context.Context, name string) (*domain.Category, error) {
	if m.GetCategoryByNameFn != nil {
		return m.GetCategoryByNameFn(ctx, name)
	}
	return nil, nil
}

func (m *MockCategoryService) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	if m.ListCategoriesFn != nil {
		return m.ListCategoriesFn(ctx)
	}
	return nil, nil
}

func (m *MockCategoryService) CreateCategory(
	ctx context.Context,
	name, description string,
) (*domain.Category, error) {
	if m.CreateCategoryFn != nil {
		return m.CreateCategoryFn(ctx, name, description)
	}
	return nil, nil
}

func (m *MockCategoryService) UpdateCategory(
	ctx context.Context,
	id uuid.UUID,
	name, description string,
) (*domain.Category, error) {
	if m.UpdateCategoryFn != nil {
		return m.UpdateCategoryFn(ctx, id, name, description)
	}
	return nil, nil
}

func (m *MockCategoryService) DeleteCategory(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.DeleteCategoryFn != nil {
		return m.DeleteCategoryFn(ctx, id)
	}
	return false, nil
}

// MockTaskService is a mock implementation of service.TaskService for testing
type MockTaskService struct {
	GetTaskFn             func(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	ListTasksFn           func(ctx context.Context) ([]*domain.Task, error)
	ListTasksByStatusFn   func(ctx context.Context, status domain.TaskStatus) ([]*domain.Task, error)
	ListTasksByPriorityFn func(ctx context.Context, priority domain.Priority) ([]*domain.Task, error)
	ListTasksByCategoryFn func(ctx context.Context, categoryID uuid.UUID) ([]*domain.Task, error)
	ListOverdueTasksFn    func(ctx context.Context) ([]*domain.Task, error)
	CreateTaskFn          func(ctx context.Context, params service.CreateTaskParams) (*domain.Task, error)
	UpdateTaskFn          func(ctx context.Context, id uuid.UUID, params service.UpdateTaskParams) (*domain.Task, error)
	CompleteTaskFn        func(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	DeleteTaskFn          func(ctx context.Context, id uuid.UUID) (bool, error)
}

var _ service.TaskService = (*MockTaskService)(nil)

func (m *MockTaskService) GetTask(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	if m.GetTaskFn != nil {
		return m.GetTaskFn(ctx, id)
	}
	return nil, nil
}

func (m *MockTaskService) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	if m.ListTasksFn != nil {
		return m.ListTasksFn(ctx)
	}
	return nil, nil
}

func (m *MockTaskService) ListTasksByStatus(
	ctx context.Context,
	status domain.TaskStatus,
) ([]*domain.Task, error) {
	if m.ListTasksByStatusFn != nil {
		return m.ListTasksByStatusFn(ctx, status)
	}
	return nil, nil
}

func (m *MockTaskService) ListTasksByPriority(
	ctx context.Context,
	priority domain.Priority,
) ([]*domain.Task, error) {
	if m.ListTasksByPriorityFn != nil {
		return m.ListTasksByPriorityFn(ctx, priority)
	}
	return nil, nil
}

func (m *MockTaskService) ListTasksByCategory(
	ctx context.Context,
	categoryID uuid.UUID,
) ([]*domain.Task, error) {
	if m.ListTasksByCategoryFn != nil {
		return m.ListTasksByCategoryFn(ctx, categoryID)
	}
	return nil, nil
}

func (m *MockTaskService) ListOverdueTasks(ctx context.Context) ([]*domain.Task, error) {
	if m.ListOverdueTasksFn != nil {
		return m.ListOverdueTasksFn(ctx)
	}
	return nil, nil
}

func (m *MockTaskService) CreateTask(
	ctx context.Context,
	params service.CreateTaskParams,
) (*domain.Task, error) {
	if m.CreateTaskFn != nil {
		return m.CreateTaskFn(ctx, params)
	}
	return nil, nil
}

func (m *MockTaskService) UpdateTask(
	ctx context.Context,
	id uuid.UUID,
	params service.UpdateTaskParams,
) (*domain.Task, error) {
	if m.UpdateTaskFn != nil {
		return m.UpdateTaskFn(ctx, id, params)
	}
	return nil, nil
}

func (m *MockTaskService) CompleteTask(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	if m.CompleteTaskFn != nil {
		return m.CompleteTaskFn(ctx, id)
	}
	return nil, nil
}

func (m *MockTaskService) DeleteTask(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.DeleteTaskFn != nil {
		return m.DeleteTaskFn(ctx, id)
	}
	return false, nil
}

// newTestRouter mounts the handlers under /api the way the server does.
func newTestRouter(categories service.CategoryService, tasks service.TaskService) http.Handler {
	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		NewCategoryHandler(categories).RegisterRoutes(r)
		NewTaskHandler(tasks).RegisterRoutes(r)
	})
	return r
}
