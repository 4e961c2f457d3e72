package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/inventorydb/backend/internal/domain/catalog"
	"github.com/inventorydb/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// CreateCategoryInput contains the fields of a new category
type CreateCategoryInput struct {
	Name        string
	Code        string
	Description string
}

// UpdateCategoryInput contains the optional fields of a category update.
// Empty values leave the stored field untouched.
type UpdateCategoryInput struct {
	Name        string
	Code        string
	Description string
}

// CategoryResponse represents a category with references to its products
type CategoryResponse struct {
	ID          uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Name        string
	Code        string
	Description string
	Products    []shared.BaseEntity
}

// ToCategoryResponse converts a domain Category to CategoryResponse
func ToCategoryResponse(c *catalog.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
		Name:        c.Name,
		Code:        c.Code,
		Description: c.Description,
		Products:    refsOrEmpty(c.ProductRefs),
	}
}

// CreateProductInput contains the fields of a new product
type CreateProductInput struct {
	Name        string
	SKU         string
	Description *string
	Price       decimal.Decimal
	CategoryID  uuid.UUID
	IsActive    *bool
}

// UpdateProductInput contains the optional fields of a product update
type UpdateProductInput = catalog.ProductUpdate

// ProductResponse represents a product with references to its inventories
type ProductResponse struct {
	ID          uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Name        string
	SKU         string
	Description *string
	Price       decimal.Decimal
	CategoryID  uuid.UUID
	IsActive    bool
	Inventories []shared.BaseEntity
}

// ToProductResponse converts a domain Product to ProductResponse
func ToProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
		Name:        p.Name,
		SKU:         p.SKU,
		Description: p.Description,
		Price:       p.Price,
		CategoryID:  p.CategoryID,
		IsActive:    p.IsActive,
		Inventories: refsOrEmpty(p.InventoryRefs),
	}
}

func refsOrEmpty(refs []shared.BaseEntity) []shared.BaseEntity {
	if refs == nil {
		return []shared.BaseEntity{}
	}
	return refs
}
