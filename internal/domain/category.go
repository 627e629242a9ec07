package domain

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
)

// Common validation errors for Category
var (
	ErrEmptyCategoryID   = errors.New("category ID cannot be empty")
	ErrEmptyCategoryName = errors.New("category name cannot be empty")
)

// Category groups tasks under a name that is unique regardless of case.
type Category struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

// NewCategory creates a Category with a fresh ID and a trimmed name.
func NewCategory(name, description string) (*Category, error) {
	category := &Category{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(name),
		Description: description,
	}

	if err := category.Validate(); err != nil {
		return nil, err
	}

	return category, nil
}

// Validate checks if the Category has valid data.
func (c *Category) Validate() error {
	if c.ID == uuid.Nil {
		return NewValidationError("id", "cannot be empty", ErrEmptyCategoryID)
	}

	if strings.TrimSpace(c.Name) == "" {
		return NewValidationError("name", "cannot be empty", ErrEmptyCategoryName)
	}

	return nil
}

// EntityID returns the category's identifier.
func (c Category) EntityID() uuid.UUID {
	return c.ID
}

// NormalizeCategoryName returns the key under which category names are
// compared: trimmed and Unicode case-folded, so "Work" and "WORK" collide.
func NormalizeCategoryName(name string) string {
	// A cases.Caser is stateful and must not be shared between goroutines.
	return cases.Fold().String(strings.TrimSpace(name))
}
