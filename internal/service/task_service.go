package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/events"
	"github.com/phrazzld/tasks-api/internal/platform/logger"
	"github.com/phrazzld/tasks-api/internal/store"
)

// CreateTaskParams holds the caller-supplied fields of a new task.
type CreateTaskParams struct {
	Title       string
	Description string
	Priority    domain.Priority
	CategoryID  domain.Optional[uuid.UUID]
	DueDate     domain.Optional[time.Time]
}

// UpdateTaskParams holds the full replacement state of a task.
// ID and creation time are never changed by an update.
type UpdateTaskParams struct {
	Title       string
	Description string
	Priority    domain.Priority
	Status      domain.TaskStatus
	CategoryID  domain.Optional[uuid.UUID]
	DueDate     domain.Optional[time.Time]
}

// TaskService provides task-related operations
type TaskService interface {
	// GetTask retrieves a task by its ID. Returns (nil, nil) if it does not exist.
	GetTask(ctx context.Context, id uuid.UUID) (*domain.Task, error)

	// ListTasks retrieves all tasks.
	ListTasks(ctx context.Context) ([]*domain.Task, error)

	// ListTasksByStatus retrieves all tasks with the given status.
	ListTasksByStatus(ctx context.Context, status domain.TaskStatus) ([]*domain.Task, error)

	// ListTasksByPriority retrieves all tasks with the given priority.
	ListTasksByPriority(ctx context.Context, priority domain.Priority) ([]*domain.Task, error)

	// ListTasksByCategory retrieves all tasks referencing the given category,
	// whether or not the category still exists.
	ListTasksByCategory(ctx context.Context, categoryID uuid.UUID) ([]*domain.Task, error)

	// ListOverdueTasks retrieves the tasks that are past due and not completed.
	ListOverdueTasks(ctx context.Context) ([]*domain.Task, error)

	// CreateTask creates a pending task.
	CreateTask(ctx context.Context, params CreateTaskParams) (*domain.Task, error)

	// UpdateTask replaces a task's mutable fields.
	// Returns (nil, nil) if the task does not exist.
	UpdateTask(ctx context.Context, id uuid.UUID, params UpdateTaskParams) (*domain.Task, error)

	// CompleteTask marks a task completed. Completing a completed task succeeds.
	// Returns (nil, nil) if the task does not exist.
	CompleteTask(ctx context.Context, id uuid.UUID) (*domain.Task, error)

	// DeleteTask removes a task and reports whether it existed.
	DeleteTask(ctx context.Context, id uuid.UUID) (bool, error)
}

// TaskServiceOption configures optional behavior of the task service.
type TaskServiceOption func(*taskServiceImpl)

// WithClock overrides the source of the current time used for creation
// timestamps and overdue checks.
func WithClock(now func() time.Time) TaskServiceOption {
	return func(s *taskServiceImpl) {
		if now != nil {
			s.now = now
		}
	}
}

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	taskStore     store.TaskStore
	categoryStore store.CategoryStore
	eventEmitter  events.EventEmitter
	logger        *slog.Logger
	now           func() time.Time
}

// NewTaskService creates a new TaskService.
// It returns an error if any of the required dependencies are nil.
func NewTaskService(
	taskStore store.TaskStore,
	categoryStore store.CategoryStore,
	eventEmitter events.EventEmitter,
	logger *slog.Logger,
	opts ...TaskServiceOption,
) (TaskService, error) {
	if taskStore == nil {
		return nil, errNilDependency("task", "taskStore")
	}
	if categoryStore == nil {
		return nil, errNilDependency("task", "categoryStore")
	}
	if eventEmitter == nil {
		return nil, errNilDependency("task", "eventEmitter")
	}

	if logger == nil {
		logger = slog.Default()
	}

	s := &taskServiceImpl{
		taskStore:     taskStore,
		categoryStore: categoryStore,
		eventEmitter:  eventEmitter,
		logger:        logger.With("component", "task_service"),
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// GetTask implements TaskService
func (s *taskServiceImpl) GetTask(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	task, err := s.taskStore.GetByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, nil
		}
		return nil, NewTaskServiceError("get_task", "failed to retrieve task", err)
	}
	return task, nil
}

// ListTasks implements TaskService
func (s *taskServiceImpl) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	tasks, err := s.taskStore.GetAll(ctx)
	if err != nil {
		return nil, NewTaskServiceError("list_tasks", "failed to retrieve tasks", err)
	}
	return tasks, nil
}

// ListTasksByStatus implements TaskService
func (s *taskServiceImpl) ListTasksByStatus(
	ctx context.Context,
	status domain.TaskStatus,
) ([]*domain.Task, error) {
	if !status.IsValid() {
		return nil, domain.NewValidationError("status", "is not a known status", domain.ErrInvalidStatus)
	}
	tasks, err := s.taskStore.FindByStatus(ctx, status)
	if err != nil {
		return nil, NewTaskServiceError("list_tasks_by_status", "failed to retrieve tasks", err)
	}
	return tasks, nil
}

// ListTasksByPriority implements TaskService
func (s *taskServiceImpl) ListTasksByPriority(
	ctx context.Context,
	priority domain.Priority,
) ([]*domain.Task, error) {
	if !priority.IsValid() {
		return nil, domain.NewValidationError("priority", "is not a known priority", domain.ErrInvalidPriority)
	}
	tasks, err := s.taskStore.FindByPriority(ctx, priority)
	if err != nil {
		return nil, NewTaskServiceError("list_tasks_by_priority", "failed to retrieve tasks", err)
	}
	return tasks, nil
}

// ListTasksByCategory implements TaskService
func (s *taskServiceImpl) ListTasksByCategory(
	ctx context.Context,
	categoryID uuid.UUID,
) ([]*domain.Task, error) {
	tasks, err := s.taskStore.FindByCategoryID(ctx, categoryID)
	if err != nil {
		return nil, NewTaskServiceError("list_tasks_by_category", "failed to retrieve tasks", err)
	}
	return tasks, nil
}

// ListOverdueTasks implements TaskService
func (s *taskServiceImpl) ListOverdueTasks(ctx context.Context) ([]*domain.Task, error) {
	tasks, err := s.taskStore.FindOverdue(ctx, s.now())
	if err != nil {
		return nil, NewTaskServiceError("list_overdue_tasks", "failed to retrieve tasks", err)
	}
	return tasks, nil
}

// CreateTask implements TaskService
func (s *taskServiceImpl) CreateTask(ctx context.Context, params CreateTaskParams) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := domain.NewTask(
		params.Title,
		params.Description,
		params.Priority,
		params.CategoryID,
		params.DueDate,
		s.now(),
	)
	if err != nil {
		log.Debug("rejected task input", "error", err)
		return nil, err
	}

	if err := s.checkCategoryExists(ctx, params.CategoryID); err != nil {
		return nil, err
	}

	if err := s.taskStore.Create(ctx, task); err != nil {
		log.Error("failed to store task", "error", err, "task_id", task.ID)
		return nil, NewTaskServiceError("create_task", "failed to save task", err)
	}

	log.Info("task created",
		"task_id", task.ID,
		"priority", task.Priority.String())
	s.emit(ctx, events.TypeTaskCreated, task)

	return task, nil
}

// UpdateTask implements TaskService
func (s *taskServiceImpl) UpdateTask(
	ctx context.Context,
	id uuid.UUID,
	params UpdateTaskParams,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	existing, err := s.GetTask(ctx, id)
	if err != nil || existing == nil {
		return nil, err
	}

	updated := *existing
	updated.Title = strings.TrimSpace(params.Title)
	updated.Description = params.Description
	updated.Priority = params.Priority
	updated.Status = params.Status
	updated.CategoryID = params.CategoryID
	updated.DueDate = params.DueDate

	if err := updated.Validate(); err != nil {
		log.Debug("rejected task update", "error", err, "task_id", id)
		return nil, err
	}

	if err := s.checkCategoryExists(ctx, params.CategoryID); err != nil {
		return nil, err
	}

	if err := s.taskStore.Update(ctx, &updated); err != nil {
		if store.IsNotFoundError(err) {
			// Deleted between the lookup and the write.
			return nil, nil
		}
		log.Error("failed to update task", "error", err, "task_id", id)
		return nil, NewTaskServiceError("update_task", "failed to save task", err)
	}

	log.Info("task updated", "task_id", id, "status", updated.Status.String())
	s.emit(ctx, events.TypeTaskUpdated, &updated)

	return &updated, nil
}

// CompleteTask implements TaskService
func (s *taskServiceImpl) CompleteTask(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := s.GetTask(ctx, id)
	if err != nil || task == nil {
		return nil, err
	}

	task.Complete()

	if err := s.taskStore.Update(ctx, task); err != nil {
		if store.IsNotFoundError(err) {
			return nil, nil
		}
		log.Error("failed to complete task", "error", err, "task_id", id)
		return nil, NewTaskServiceError("complete_task", "failed to save task", err)
	}

	log.Info("task completed", "task_id", id)
	s.emit(ctx, events.TypeTaskCompleted, task)

	return task, nil
}

// DeleteTask implements TaskService
func (s *taskServiceImpl) DeleteTask(ctx context.Context, id uuid.UUID) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.taskStore.Delete(ctx, id); err != nil {
		if store.IsNotFoundError(err) {
			return false, nil
		}
		log.Error("failed to delete task", "error", err, "task_id", id)
		return false, NewTaskServiceError("delete_task", "failed to delete task", err)
	}

	log.Info("task deleted", "task_id", id)
	s.emit(ctx, events.TypeTaskDeleted, &domain.Task{ID: id})

	return true, nil
}

// checkCategoryExists rejects a present category reference that does not
// resolve. An absent reference is not looked up.
func (s *taskServiceImpl) checkCategoryExists(ctx context.Context, ref domain.Optional[uuid.UUID]) error {
	categoryID, ok := ref.Get()
	if !ok {
		return nil
	}

	_, err := s.categoryStore.GetByID(ctx, categoryID)
	if err == nil {
		return nil
	}
	if store.IsNotFoundError(err) {
		return domain.NewValidationError("category_id", "does not reference an existing category", nil)
	}
	return NewTaskServiceError("check_category", "failed to retrieve category", err)
}

// emit publishes a change event. The write has already happened, so a
// failure here is logged and not returned.
func (s *taskServiceImpl) emit(ctx context.Context, eventType string, task *domain.Task) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var payload interface{}
	if eventType != events.TypeTaskDeleted {
		payload = task
	}

	event, err := events.NewEntityEvent(eventType, task.ID, payload)
	if err != nil {
		log.Error("failed to create task event", "error", err, "event_type", eventType)
		return
	}

	if err := s.eventEmitter.EmitEvent(ctx, event); err != nil {
		log.Warn("failed to emit task event",
			"error", err,
			"event_type", eventType,
			"event_id", event.ID,
			"task_id", task.ID)
	}
}
