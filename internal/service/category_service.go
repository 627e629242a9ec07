package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/events"
	"github.com/phrazzld/tasks-api/internal/platform/logger"
	"github.com/phrazzld/tasks-api/internal/store"
)

// CategoryService provides category-related operations
type CategoryService interface {
	// GetCategory retrieves a category by its ID. Returns (nil, nil) if it does not exist.
	GetCategory(ctx context.Context, id uuid.UUID) (*domain.Category, error)

	// GetCategoryByName retrieves a category by name, ignoring case.
	// Returns (nil, nil) if no category has that name.
	GetCategoryByName(ctx context.Context, name string) (*domain.Category, error)

	// ListCategories retrieves all categories in creation order.
	ListCategories(ctx context.Context) ([]*domain.Category, error)

	// CreateCategory creates a category. The name is trimmed and must be
	// non-empty and not used by any other category, ignoring case.
	CreateCategory(ctx context.Context, name, description string) (*domain.Category, error)

	// UpdateCategory replaces a category's name and description.
	// Returns (nil, nil) if the category does not exist.
	UpdateCategory(ctx context.Context, id uuid.UUID, name, description string) (*domain.Category, error)

	// DeleteCategory removes a category and reports whether it existed.
	// Tasks that reference it keep the reference.
	DeleteCategory(ctx context.Context, id uuid.UUID) (bool, error)
}

// categoryServiceImpl implements the CategoryService interface
type categoryServiceImpl struct {
	categoryStore store.CategoryStore
	eventEmitter  events.EventEmitter
	logger        *slog.Logger
}

// NewCategoryService creates a new CategoryService.
// It returns an error if any of the required dependencies are nil.
func NewCategoryService(
	categoryStore store.CategoryStore,
	eventEmitter events.EventEmitter,
	logger *slog.Logger,
) (CategoryService, error) {
	if categoryStore == nil {
		return nil, errNilDependency("category", "categoryStore")
	}
	if eventEmitter == nil {
		return nil, errNilDependency("category", "eventEmitter")
	}

	// Use provided logger or create default
	if logger == nil {
		logger = slog.Default()
	}

	return &categoryServiceImpl{
		categoryStore: categoryStore,
		eventEmitter:  eventEmitter,
		logger:        logger.With("component", "category_service"),
	}, nil
}

// GetCategory implements CategoryService
func (s *categoryServiceImpl) GetCategory(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	category, err := s.categoryStore.GetByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, nil
		}
		return nil, NewCategoryServiceError("get_category", "failed to retrieve category", err)
	}
	return category, nil
}

// GetCategoryByName implements CategoryService
func (s *categoryServiceImpl) GetCategoryByName(ctx context.Context, name string) (*domain.Category, error) {
	category, err := s.categoryStore.GetByName(ctx, name)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, nil
		}
		return nil, NewCategoryServiceError("get_category_by_name", "failed to retrieve category", err)
	}
	return category, nil
}

// ListCategories implements CategoryService
func (s *categoryServiceImpl) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	categories, err := s.categoryStore.GetAll(ctx)
	if err != nil {
		return nil, NewCategoryServiceError("list_categories", "failed to retrieve categories", err)
	}
	return categories, nil
}

// CreateCategory implements CategoryService
func (s *categoryServiceImpl) CreateCategory(
	ctx context.Context,
	name, description string,
) (*domain.Category, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	category, err := domain.NewCategory(name, description)
	if err != nil {
		log.Debug("rejected category input", "error", err)
		return nil, err
	}

	if err := s.categoryStore.Create(ctx, category); err != nil {
		if errors.Is(err, store.ErrCategoryNameExists) {
			log.Debug("category name already in use", "name", category.Name)
			return nil, domain.NewConflictError("name", category.Name, err)
		}
		log.Error("failed to store category", "error", err, "category_id", category.ID)
		return nil, NewCategoryServiceError("create_category", "failed to save category", err)
	}

	log.Info("category created", "category_id", category.ID, "name", category.Name)
	s.emit(ctx, events.TypeCategoryCreated, category)

	return category, nil
}

// UpdateCategory implements CategoryService
func (s *categoryServiceImpl) UpdateCategory(
	ctx context.Context,
	id uuid.UUID,
	name, description string,
) (*domain.Category, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	existing, err := s.GetCategory(ctx, id)
	if err != nil || existing == nil {
		return nil, err
	}

	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, domain.NewValidationError("name", "cannot be empty", domain.ErrEmptyCategoryName)
	}

	existing.Name = trimmed
	existing.Description = description

	if err := s.categoryStore.Update(ctx, existing); err != nil {
		switch {
		case errors.Is(err, store.ErrCategoryNameExists):
			log.Debug("category name already in use", "name", trimmed, "category_id", id)
			return nil, domain.NewConflictError("name", trimmed, err)
		case errors.Is(err, store.ErrCategoryNotFound):
			// Deleted between the lookup and the write.
			return nil, nil
		default:
			log.Error("failed to update category", "error", err, "category_id", id)
			return nil, NewCategoryServiceError("update_category", "failed to save category", err)
		}
	}

	log.Info("category updated", "category_id", id)
	s.emit(ctx, events.TypeCategoryUpdated, existing)

	return existing, nil
}

// DeleteCategory implements CategoryService
func (s *categoryServiceImpl) DeleteCategory(ctx context.Context, id uuid.UUID) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.categoryStore.Delete(ctx, id); err != nil {
		if store.IsNotFoundError(err) {
			return false, nil
		}
		log.Error("failed to delete category", "error", err, "category_id", id)
		return false, NewCategoryServiceError("delete_category", "failed to delete category", err)
	}

	log.Info("category deleted", "category_id", id)
	s.emit(ctx, events.TypeCategoryDeleted, &domain.Category{ID: id})

	return true, nil
}

// emit publishes a change event. The write has already happened, so a
// failure here is logged and not returned.
func (s *categoryServiceImpl) emit(ctx context.Context, eventType string, category *domain.Category) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var payload interface{}
	if eventType != events.TypeCategoryDeleted {
		payload = category
	}

	event, err := events.NewEntityEvent(eventType, category.ID, payload)
	if err != nil {
		log.Error("failed to create category event", "error", err, "event_type", eventType)
		return
	}

	if err := s.eventEmitter.EmitEvent(ctx, event); err != nil {
		log.Warn("failed to emit category event",
			"error", err,
			"event_type", eventType,
			"event_id", event.ID,
			"category_id", category.ID)
	}
}
