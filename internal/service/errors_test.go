package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceError(t *testing.T) {
	t.Run("with wrapped error", func(t *testing.T) {
		cause := errors.New("underlying")
		err := NewTaskServiceError("update_task", "failed to save task", cause)

		assert.Equal(t, "task service update_task failed: failed to save task: underlying", err.Error())
		assert.ErrorIs(t, err, cause)

		var svcErr *ServiceError
		require.ErrorAs(t, err, &svcErr)
		assert.Equal(t, "task", svcErr.Service)
		assert.Equal(t, "update_task", svcErr.Operation)
	})

	t.Run("without wrapped error", func(t *testing.T) {
		err := errNilDependency("category", "categoryStore")
		assert.Equal(t, "category service create_service failed: categoryStore cannot be nil", err.Error())
	})

	t.Run("nil error stays nil", func(t *testing.T) {
		assert.NoError(t, NewCategoryServiceError("op", "msg", nil))
	})
}

func TestServiceErrorPassesDomainErrorsThrough(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"validation", domain.NewValidationError("title", "cannot be empty", domain.ErrEmptyTaskTitle)},
		{"conflict", domain.NewConflictError("name", "Work", store.ErrCategoryNameExists)},
		{"wrapped validation", fmt.Errorf("context: %w", domain.ErrValidation)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewCategoryServiceError("create_category", "failed", tt.err)
			assert.Same(t, tt.err, got)

			var svcErr *ServiceError
			assert.False(t, errors.As(got, &svcErr))
		})
	}
}
