// Package catalog implements the category and product use cases.
package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/inventorydb/backend/internal/application/uow"
	"github.com/inventorydb/backend/internal/domain/catalog"
	"github.com/inventorydb/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// CategoryService handles category-related business operations
type CategoryService struct {
	scope  uow.TransactionScope
	logger *zap.Logger
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(scope uow.TransactionScope, logger *zap.Logger) *CategoryService {
	return &CategoryService{scope: scope, logger: logger}
}

// Create creates a new category. Duplicate names or codes are conflicts.
func (s *CategoryService) Create(ctx context.Context, input CreateCategoryInput) (*CategoryResponse, error) {
	category, err := catalog.NewCategory(input.Name, input.Code, input.Description)
	if err != nil {
		return nil, err
	}

	if err := s.scope.Execute(ctx, func(repos uow.Repositories) error {
		return repos.Categories().Create(ctx, category)
	}); err != nil {
		return nil, err
	}

	s.logger.Info("Category created",
		zap.String("category_id", category.ID.String()),
		zap.String("code", category.Code))

	resp := ToCategoryResponse(category)
	return &resp, nil
}

// List returns every category
func (s *CategoryService) List(ctx context.Context) ([]CategoryResponse, error) {
	var categories []*catalog.Category
	err := s.scope.Execute(ctx, func(repos uow.Repositories) error {
		var err error
		categories, err = repos.Categories().FindAll(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}

	responses := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		responses[i] = ToCategoryResponse(c)
	}
	return responses, nil
}

// GetByID retrieves a category by ID
func (s *CategoryService) GetByID(ctx context.Context, id uuid.UUID) (*CategoryResponse, error) {
	var category *catalog.Category
	err := s.scope.Execute(ctx, func(repos uow.Repositories) error {
		var err error
		category, err = findCategory(ctx, repos, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	resp := ToCategoryResponse(category)
	return &resp, nil
}

// GetByName retrieves a category by its exact name
func (s *CategoryService) GetByName(ctx context.Context, name string) (*CategoryResponse, error) {
	var category *catalog.Category
	err := s.scope.Execute(ctx, func(repos uow.Repositories) error {
		var err error
		category, err = repos.Categories().FindByName(ctx, name)
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewNotFoundError("Category", name)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	resp := ToCategoryResponse(category)
	return &resp, nil
}

// Update applies the non-empty fields of input
func (s *CategoryService) Update(ctx context.Context, id uuid.UUID, input UpdateCategoryInput) (*CategoryResponse, error) {
	var category *catalog.Category
	err := s.scope.Execute(ctx, func(repos uow.Repositories) error {
		var err error
		category, err = findCategory(ctx, repos, id)
		if err != nil {
			return err
		}
		if err := category.Update(input.Name, input.Code, input.Description); err != nil {
			return err
		}
		return repos.Categories().Update(ctx, category)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Category updated", zap.String("category_id", id.String()))
	resp := ToCategoryResponse(category)
	return &resp, nil
}

// Delete removes the category with its products, their inventories and
// inventory transactions in one unit of work
func (s *CategoryService) Delete(ctx context.Context, id uuid.UUID) error {
	var productCount int
	err := s.scope.Execute(ctx, func(repos uow.Repositories) error {
		category, err := findCategory(ctx, repos, id)
		if err != nil {
			return err
		}
		productCount = len(category.ProductRefs)
		return repos.Categories().Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	s.logger.Info("Category deleted",
		zap.String("category_id", id.String()),
		zap.Int("products_deleted", productCount))
	return nil
}

func findCategory(ctx context.Context, repos uow.Repositories, id uuid.UUID) (*catalog.Category, error) {
	category, err := repos.Categories().FindByID(ctx, id)
	if errors.Is(err, shared.ErrNotFound) {
		return nil, shared.NewNotFoundError("Category", id)
	}
	return category, err
}
