package memory

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/platform/logger"
	"github.com/phrazzld/tasks-api/internal/store"
)

// CategoryStore implements the store.CategoryStore interface in memory.
// Besides the id-keyed entity store it keeps an index from normalized name
// to id. Every write holds mu for the whole check-and-write, so two
// concurrent creates can never both claim the same name.
type CategoryStore struct {
	mu         sync.RWMutex
	categories *Store[domain.Category]
	names      map[string]uuid.UUID
	logger     *slog.Logger
}

// Ensure CategoryStore implements store.CategoryStore interface
var _ store.CategoryStore = (*CategoryStore)(nil)

// NewCategoryStore creates an empty CategoryStore.
// If logger is nil, a default logger will be used.
func NewCategoryStore(logger *slog.Logger) *CategoryStore {
	if logger == nil {
		logger = slog.Default()
	}

	return &CategoryStore{
		categories: NewStore[domain.Category](),
		names:      make(map[string]uuid.UUID),
		logger:     logger.With(slog.String("component", "category_store")),
	}
}

// Create implements store.CategoryStore.Create
// Returns store.ErrCategoryNameExists if the name is taken by another category.
func (s *CategoryStore) Create(ctx context.Context, category *domain.Category) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := category.Validate(); err != nil {
		log.Warn("category validation failed during create",
			slog.String("error", err.Error()),
			slog.String("category_id", category.ID.String()))
		return invalidEntity("category", "create", err)
	}

	key := domain.NormalizeCategoryName(category.Name)

	s.mu.Lock()
	defer s.mu.Unlock()

	if owner, taken := s.names[key]; taken && owner != category.ID {
		log.Debug("category name already in use",
			slog.String("name", category.Name),
			slog.String("owner_id", owner.String()))
		return store.NewStoreError("category", "create",
			fmt.Sprintf("name %q is taken", category.Name), store.ErrCategoryNameExists)
	}

	// Add overwrites by id; drop the index entry of the entity being replaced.
	if previous, ok := s.categories.Get(category.ID); ok {
		delete(s.names, domain.NormalizeCategoryName(previous.Name))
	}

	s.categories.Add(*category)
	s.names[key] = category.ID

	log.Debug("category stored",
		slog.String("category_id", category.ID.String()),
		slog.String("name", category.Name))
	return nil
}

// GetByID implements store.CategoryStore.GetByID
func (s *CategoryStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	category, ok := s.categories.Get(id)
	if !ok {
		logger.FromContextOrDefault(ctx, s.logger).Debug("category not found",
			slog.String("category_id", id.String()))
		return nil, store.ErrCategoryNotFound
	}
	return &category, nil
}

// GetByName implements store.CategoryStore.GetByName
func (s *CategoryStore) GetByName(ctx context.Context, name string) (*domain.Category, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.names[domain.NormalizeCategoryName(name)]
	if !ok {
		return nil, store.ErrCategoryNotFound
	}

	category, ok := s.categories.Get(id)
	if !ok {
		return nil, store.ErrCategoryNotFound
	}
	return &category, nil
}

// GetAll implements store.CategoryStore.GetAll
func (s *CategoryStore) GetAll(ctx context.Context) ([]*domain.Category, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	all := s.categories.All()
	out := make([]*domain.Category, len(all))
	for i := range all {
		out[i] = &all[i]
	}
	return out, nil
}

// Update implements store.CategoryStore.Update
// A category may keep its own name in any casing.
func (s *CategoryStore) Update(ctx context.Context, category *domain.Category) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := category.Validate(); err != nil {
		log.Warn("category validation failed during update",
			slog.String("error", err.Error()),
			slog.String("category_id", category.ID.String()))
		return invalidEntity("category", "update", err)
	}

	key := domain.NormalizeCategoryName(category.Name)

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.categories.Get(category.ID)
	if !ok {
		log.Debug("category not found for update", slog.String("category_id", category.ID.String()))
		return store.ErrCategoryNotFound
	}

	if owner, taken := s.names[key]; taken && owner != category.ID {
		log.Debug("category name already in use",
			slog.String("name", category.Name),
			slog.String("owner_id", owner.String()))
		return store.NewStoreError("category", "update",
			fmt.Sprintf("name %q is taken", category.Name), store.ErrCategoryNameExists)
	}

	delete(s.names, domain.NormalizeCategoryName(existing.Name))
	s.categories.Update(*category)
	s.names[key] = category.ID

	log.Debug("category updated", slog.String("category_id", category.ID.String()))
	return nil
}

// Delete implements store.CategoryStore.Delete
func (s *CategoryStore) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.categories.Get(id)
	if !ok {
		return store.ErrCategoryNotFound
	}

	s.categories.Delete(id)
	delete(s.names, domain.NormalizeCategoryName(existing.Name))

	logger.FromContextOrDefault(ctx, s.logger).Debug("category deleted",
		slog.String("category_id", id.String()))
	return nil
}
