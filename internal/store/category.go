package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/tasks-api/internal/domain"
)

// CategoryStore defines the interface for category data persistence.
// Implementations enforce case-insensitive name uniqueness atomically:
// the check and the write happen under the same lock.
type CategoryStore interface {
	// Create saves a new category to the store.
	// Returns ErrCategoryNameExists if another category holds the name.
	Create(ctx context.Context, category *domain.Category) error

	// GetByID retrieves a category by its unique ID.
	// Returns ErrCategoryNotFound if the category does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error)

	// GetByName retrieves a category by name, ignoring case and surrounding whitespace.
	// Returns ErrCategoryNotFound if no category has that name.
	GetByName(ctx context.Context, name string) (*domain.Category, error)

	// GetAll retrieves every category in insertion order.
	GetAll(ctx context.Context) ([]*domain.Category, error)

	// Update saves changes to an existing category.
	// Returns ErrCategoryNotFound if the category does not exist and
	// ErrCategoryNameExists if a different category holds the new name.
	Update(ctx context.Context, category *domain.Category) error

	// Delete removes a category by its ID. Tasks referencing it are left untouched.
	// Returns ErrCategoryNotFound if the category does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
