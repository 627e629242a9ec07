package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/platform/logger"
	"github.com/phrazzld/tasks-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTask(title string, priority domain.Priority, status domain.TaskStatus) *domain.Task {
	return &domain.Task{
		ID:        uuid.New(),
		Title:     title,
		Priority:  priority,
		Status:    status,
		CreatedAt: time.Now().UTC(),
	}
}

func TestTaskStore_CRUD(t *testing.T) {
	t.Parallel()
	ctx, logBuf := logger.NewTestContext(t)
	s := NewTaskStore(nil)

	task := newTestTask("Write tests", domain.PriorityHigh, domain.TaskStatusPending)
	require.NoError(t, s.Create(ctx, task))
	logger.AssertLogContains(t, logBuf, "task stored")

	got, err := s.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, task, got)
	assert.NotSame(t, task, got, "store must hand out copies")

	got.Title = "Changed"
	got.Status = domain.TaskStatusInProgress
	require.NoError(t, s.Update(ctx, got))

	reloaded, err := s.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Changed", reloaded.Title)
	assert.Equal(t, domain.TaskStatusInProgress, reloaded.Status)

	require.NoError(t, s.Delete(ctx, task.ID))
	_, err = s.GetByID(ctx, task.ID)
	assert.ErrorIs(t, err, store.ErrTaskNotFound)
	assert.True(t, store.IsNotFoundError(err))
}

func TestTaskStore_NotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewTaskStore(nil)

	err := s.Update(ctx, newTestTask("missing", domain.PriorityLow, domain.TaskStatusPending))
	assert.ErrorIs(t, err, store.ErrTaskNotFound)

	err = s.Delete(ctx, uuid.New())
	assert.ErrorIs(t, err, store.ErrTaskNotFound)

	all, err := s.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all, "failed update must not insert")
}

func TestTaskStore_RejectsInvalidTask(t *testing.T) {
	t.Parallel()
	s := NewTaskStore(nil)

	task := newTestTask("   ", domain.PriorityLow, domain.TaskStatusPending)
	err := s.Create(context.Background(), task)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.ErrorIs(t, err, store.ErrInvalidEntity)

	var storeErr *store.StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, "task", storeErr.Entity)
	assert.Equal(t, "create", storeErr.Operation)

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "title", validationErr.Field)
}

func TestTaskStore_Queries(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewTaskStore(nil)

	now := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
	work := uuid.New()

	pendingHigh := newTestTask("pending high", domain.PriorityHigh, domain.TaskStatusPending)
	pendingHigh.CategoryID = domain.Some(work)
	pendingHigh.DueDate = domain.Some(now.Add(-time.Hour))

	doneHigh := newTestTask("done high", domain.PriorityHigh, domain.TaskStatusCompleted)
	doneHigh.CategoryID = domain.Some(work)
	doneHigh.DueDate = domain.Some(now.Add(-time.Hour))

	progressLow := newTestTask("in progress low", domain.PriorityLow, domain.TaskStatusInProgress)
	progressLow.DueDate = domain.Some(now.Add(time.Hour))

	uncategorized := newTestTask("no category", domain.PriorityNone, domain.TaskStatusPending)

	for _, task := range []*domain.Task{pendingHigh, doneHigh, progressLow, uncategorized} {
		require.NoError(t, s.Create(ctx, task))
	}

	titles := func(tasks []*domain.Task, err error) []string {
		require.NoError(t, err)
		out := make([]string, 0, len(tasks))
		for _, task := range tasks {
			out = append(out, task.Title)
		}
		return out
	}

	assert.Equal(t,
		[]string{"pending high", "done high", "in progress low", "no category"},
		titles(s.GetAll(ctx)))
	assert.Equal(t,
		[]string{"pending high", "no category"},
		titles(s.FindByStatus(ctx, domain.TaskStatusPending)))
	assert.Equal(t,
		[]string{"pending high", "done high"},
		titles(s.FindByPriority(ctx, domain.PriorityHigh)))
	assert.Empty(t, titles(s.FindByPriority(ctx, domain.PriorityCritical)))
	assert.Equal(t,
		[]string{"pending high", "done high"},
		titles(s.FindByCategoryID(ctx, work)))
	assert.Empty(t, titles(s.FindByCategoryID(ctx, uuid.New())))
	assert.Equal(t,
		[]string{"pending high"},
		titles(s.FindOverdue(ctx, now)))
	assert.Equal(t,
		[]string{"pending high", "in progress low"},
		titles(s.FindOverdue(ctx, now.Add(2*time.Hour))))
}

func TestTaskStore_CanceledContext(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := NewTaskStore(nil)

	err := s.Create(ctx, newTestTask("late", domain.PriorityLow, domain.TaskStatusPending))
	assert.True(t, errors.Is(err, context.Canceled))

	_, err = s.GetAll(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
