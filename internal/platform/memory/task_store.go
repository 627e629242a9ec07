package memory

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/platform/logger"
	"github.com/phrazzld/tasks-api/internal/store"
)

// TaskStore implements the store.TaskStore interface on top of an
// in-memory entity store. All filtered queries are full scans.
type TaskStore struct {
	tasks  *Store[domain.Task]
	logger *slog.Logger
}

// Ensure TaskStore implements store.TaskStore interface
var (
	_ store.TaskStore                = (*TaskStore)(nil)
	_ store.EntityStore[domain.Task] = (*Store[domain.Task])(nil)
)

// NewTaskStore creates an empty TaskStore.
// If logger is nil, a default logger will be used.
func NewTaskStore(logger *slog.Logger) *TaskStore {
	if logger == nil {
		logger = slog.Default()
	}

	return &TaskStore{
		tasks:  NewStore[domain.Task](),
		logger: logger.With(slog.String("component", "task_store")),
	}
}

// Create implements store.TaskStore.Create
func (s *TaskStore) Create(ctx context.Context, task *domain.Task) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := task.Validate(); err != nil {
		log.Warn("task validation failed during create",
			slog.String("error", err.Error()),
			slog.String("task_id", task.ID.String()))
		return invalidEntity("task", "create", err)
	}

	s.tasks.Add(*task)

	log.Debug("task stored",
		slog.String("task_id", task.ID.String()),
		slog.String("status", task.Status.String()))
	return nil
}

// GetByID implements store.TaskStore.GetByID
func (s *TaskStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	task, ok := s.tasks.Get(id)
	if !ok {
		logger.FromContextOrDefault(ctx, s.logger).Debug("task not found",
			slog.String("task_id", id.String()))
		return nil, store.ErrTaskNotFound
	}
	return &task, nil
}

// GetAll implements store.TaskStore.GetAll
func (s *TaskStore) GetAll(ctx context.Context) ([]*domain.Task, error) {
	return s.find(ctx, nil)
}

// FindByStatus implements store.TaskStore.FindByStatus
func (s *TaskStore) FindByStatus(ctx context.Context, status domain.TaskStatus) ([]*domain.Task, error) {
	return s.find(ctx, func(t domain.Task) bool {
		return t.Status == status
	})
}

// FindByPriority implements store.TaskStore.FindByPriority
func (s *TaskStore) FindByPriority(ctx context.Context, priority domain.Priority) ([]*domain.Task, error) {
	return s.find(ctx, func(t domain.Task) bool {
		return t.Priority == priority
	})
}

// FindByCategoryID implements store.TaskStore.FindByCategoryID
func (s *TaskStore) FindByCategoryID(ctx context.Context, categoryID uuid.UUID) ([]*domain.Task, error) {
	return s.find(ctx, func(t domain.Task) bool {
		id, ok := t.CategoryID.Get()
		return ok && id == categoryID
	})
}

// FindOverdue implements store.TaskStore.FindOverdue
func (s *TaskStore) FindOverdue(ctx context.Context, referenceTime time.Time) ([]*domain.Task, error) {
	return s.find(ctx, func(t domain.Task) bool {
		return t.IsOverdue(referenceTime)
	})
}

// Update implements store.TaskStore.Update
func (s *TaskStore) Update(ctx context.Context, task *domain.Task) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := task.Validate(); err != nil {
		log.Warn("task validation failed during update",
			slog.String("error", err.Error()),
			slog.String("task_id", task.ID.String()))
		return invalidEntity("task", "update", err)
	}

	if _, ok := s.tasks.Update(*task); !ok {
		log.Debug("task not found for update", slog.String("task_id", task.ID.String()))
		return store.ErrTaskNotFound
	}

	log.Debug("task updated", slog.String("task_id", task.ID.String()))
	return nil
}

// Delete implements store.TaskStore.Delete
func (s *TaskStore) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if !s.tasks.Delete(id) {
		return store.ErrTaskNotFound
	}

	logger.FromContextOrDefault(ctx, s.logger).Debug("task deleted",
		slog.String("task_id", id.String()))
	return nil
}

func (s *TaskStore) find(ctx context.Context, pred func(domain.Task) bool) ([]*domain.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	matched := s.tasks.Find(pred)
	out := make([]*domain.Task, len(matched))
	for i := range matched {
		out[i] = &matched[i]
	}
	return out, nil
}
