// Package catalog contains the Catalog bounded context.
package catalog

import (
	"strings"

	"github.com/google/uuid"
	"github.com/inventorydb/backend/internal/domain/shared"
)

// MaxCategoryCodeLength is the column width of categories.code
const MaxCategoryCodeLength = 5

// Category groups products. Deleting a category deletes its products.
type Category struct {
	shared.BaseEntity
	Name        string
	Code        string
	Description string
	ProductRefs []shared.BaseEntity // ids and timestamps of the products in this category
}

// NewCategory creates a new category
func NewCategory(name, code, description string) (*Category, error) {
	name = strings.TrimSpace(name)
	code = strings.ToUpper(strings.TrimSpace(code))
	description = strings.TrimSpace(description)

	if err := validateCategoryName(name); err != nil {
		return nil, err
	}
	if err := validateCategoryCode(code); err != nil {
		return nil, err
	}
	if description == "" {
		return nil, shared.NewValidationError("Category description cannot be empty")
	}

	return &Category{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        name,
		Code:        code,
		Description: description,
	}, nil
}

// Update applies the non-empty fields
func (c *Category) Update(name, code, description string) error {
	if v := strings.TrimSpace(name); v != "" {
		if err := validateCategoryName(v); err != nil {
			return err
		}
		c.Name = v
	}
	if v := strings.ToUpper(strings.TrimSpace(code)); v != "" {
		if err := validateCategoryCode(v); err != nil {
			return err
		}
		c.Code = v
	}
	if v := strings.TrimSpace(description); v != "" {
		c.Description = v
	}
	c.Touch()
	return nil
}

// ProductIDs returns the ids of the products referenced by this category
func (c *Category) ProductIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(c.ProductRefs))
	for _, p := range c.ProductRefs {
		ids = append(ids, p.ID)
	}
	return ids
}

func validateCategoryCode(code string) error {
	if code == "" {
		return shared.NewValidationError("Category code cannot be empty")
	}
	if len(code) > MaxCategoryCodeLength {
		return shared.NewValidationError("Category code cannot exceed 5 characters")
	}
	for _, r := range code {
		if !((r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' || r == '-') {
			return shared.NewValidationError("Category code can only contain letters, numbers, underscores, and hyphens")
		}
	}
	return nil
}

func validateCategoryName(name string) error {
	if name == "" {
		return shared.NewValidationError("Category name cannot be empty")
	}
	if len(name) > 100 {
		return shared.NewValidationError("Category name cannot exceed 100 characters")
	}
	return nil
}
