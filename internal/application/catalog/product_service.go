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

// ProductService handles product-related business operations
type ProductService struct {
	scope  uow.TransactionScope
	logger *zap.Logger
}

// NewProductService creates a new ProductService
func NewProductService(scope uow.TransactionScope, logger *zap.Logger) *ProductService {
	return &ProductService{scope: scope, logger: logger}
}

// Create creates a product in an existing category
func (s *ProductService) Create(ctx context.Context, input CreateProductInput) (*ProductResponse, error) {
	product, err := catalog.NewProduct(input.Name, input.SKU, input.Description, input.Price, input.CategoryID)
	if err != nil {
		return nil, err
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}

	err = s.scope.Execute(ctx, func(repos uow.Repositories) error {
		if _, err := findCategory(ctx, repos, product.CategoryID); err != nil {
			return err
		}
		return repos.Products().Create(ctx, product)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Product created",
		zap.String("product_id", product.ID.String()),
		zap.String("sku", product.SKU))

	resp := ToProductResponse(product)
	return &resp, nil
}

// List returns products, optionally only those of one category
func (s *ProductService) List(ctx context.Context, categoryID *uuid.UUID) ([]ProductResponse, error) {
	var products []*catalog.Product
	err := s.scope.Execute(ctx, func(repos uow.Repositories) error {
		var err error
		products, err = repos.Products().FindAll(ctx, catalog.ProductFilter{CategoryID: categoryID})
		return err
	})
	if err != nil {
		return nil, err
	}

	responses := make([]ProductResponse, len(products))
	for i, p := range products {
		responses[i] = ToProductResponse(p)
	}
	return responses, nil
}

// GetByID retrieves a product by ID
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	var product *catalog.Product
	err := s.scope.Execute(ctx, func(repos uow.Repositories) error {
		var err error
		product, err = findProduct(ctx, repos, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	resp := ToProductResponse(product)
	return &resp, nil
}

// GetBySKU retrieves a product by SKU
func (s *ProductService) GetBySKU(ctx context.Context, sku string) (*ProductResponse, error) {
	var product *catalog.Product
	err := s.scope.Execute(ctx, func(repos uow.Repositories) error {
		var err error
		product, err = repos.Products().FindBySKU(ctx, sku)
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewNotFoundError("Product", sku)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	resp := ToProductResponse(product)
	return &resp, nil
}

// Update applies the supplied fields. Moving the product to another
// category requires that category to exist.
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*ProductResponse, error) {
	var product *catalog.Product
	err := s.scope.Execute(ctx, func(repos uow.Repositories) error {
		var err error
		product, err = findProduct(ctx, repos, id)
		if err != nil {
			return err
		}
		if input.CategoryID != nil && *input.CategoryID != product.CategoryID {
			if _, err := findCategory(ctx, repos, *input.CategoryID); err != nil {
				return err
			}
		}
		if err := product.Apply(input); err != nil {
			return err
		}
		return repos.Products().Update(ctx, product)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Product updated", zap.String("product_id", id.String()))
	resp := ToProductResponse(product)
	return &resp, nil
}

// Delete removes the product with its inventories and their transactions
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.scope.Execute(ctx, func(repos uow.Repositories) error {
		if _, err := findProduct(ctx, repos, id); err != nil {
			return err
		}
		return repos.Products().Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	s.logger.Info("Product deleted", zap.String("product_id", id.String()))
	return nil
}

func findProduct(ctx context.Context, repos uow.Repositories, id uuid.UUID) (*catalog.Product, error) {
	product, err := repos.Products().FindByID(ctx, id)
	if errors.Is(err, shared.ErrNotFound) {
		return nil, shared.NewNotFoundError("Product", id)
	}
	return product, err
}
