package catalog

import (
	"context"

	"github.com/google/uuid"
)

// CategoryRepository defines the interface for category persistence
type CategoryRepository interface {
	Create(ctx context.Context, category *Category) error
	Update(ctx context.Context, category *Category) error

	// Delete removes the category together with its products and everything
	// that hangs off them (inventories, inventory transactions).
	Delete(ctx context.Context, id uuid.UUID) error

	FindAll(ctx context.Context) ([]*Category, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)
	FindByName(ctx context.Context, name string) (*Category, error)
}

// ProductFilter narrows product listings
type ProductFilter struct {
	CategoryID *uuid.UUID
}

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	Create(ctx context.Context, product *Product) error
	Update(ctx context.Context, product *Product) error

	// Delete removes the product together with its inventories and their transactions
	Delete(ctx context.Context, id uuid.UUID) error

	FindAll(ctx context.Context, filter ProductFilter) ([]*Product, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)
	FindBySKU(ctx context.Context, sku string) (*Product, error)
}
