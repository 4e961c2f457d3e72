package handler

import (
	"github.com/google/uuid"
	catalogapp "github.com/inventorydb/backend/internal/application/catalog"
	"github.com/inventorydb/backend/internal/interfaces/http/dto"
	"github.com/shopspring/decimal"
)

// CreateProductRequest represents a request to create a new product
// @Description Request body for creating a new product
type CreateProductRequest struct {
	Name        string           `json:"name" binding:"required,max=30" example:"Desk Lamp"`
	SKU         string           `json:"sku" binding:"required,max=8" example:"LAMP-01"`
	Description *string          `json:"description" example:"LED desk lamp"`
	Price       *decimal.Decimal `json:"price" binding:"required" swaggertype:"string" example:"19.99"`
	CategoryID  uuid.UUID        `json:"category_id" binding:"required" example:"550e8400-e29b-41d4-a716-446655440002"`
	IsActive    *bool            `json:"is_active" example:"true"`
}

// UpdateProductRequest represents a partial product update
// @Description Request body for updating a product; omitted fields are kept
type UpdateProductRequest struct {
	Name        string           `json:"name" binding:"omitempty,max=30" example:"Desk Lamp XL"`
	SKU         string           `json:"sku" binding:"omitempty,max=8" example:"LAMP-02"`
	Description *string          `json:"description" example:"Larger LED desk lamp"`
	Price       *decimal.Decimal `json:"price" swaggertype:"string" example:"24.50"`
	CategoryID  *uuid.UUID       `json:"category_id" example:"550e8400-e29b-41d4-a716-446655440002"`
	IsActive    *bool            `json:"is_active" example:"false"`
}

// ProductResponse represents a product in API responses
// @Description Product details returned by the API
type ProductResponse struct {
	ID          uuid.UUID       `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Created     dto.Timestamp   `json:"created"`
	Updated     dto.Timestamp   `json:"updated"`
	Name        string          `json:"name" example:"Desk Lamp"`
	SKU         string          `json:"sku" example:"LAMP-01"`
	Description *string         `json:"description" example:"LED desk lamp"`
	Price       decimal.Decimal `json:"price" swaggertype:"string" example:"19.99"`
	CategoryID  uuid.UUID       `json:"category_id"`
	IsActive    bool            `json:"is_active" example:"true"`
	Inventories []dto.Ref       `json:"inventories"`
}

func toProductResponse(p *catalogapp.ProductResponse) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Created:     dto.NewTimestamp(p.CreatedAt),
		Updated:     dto.NewTimestamp(p.UpdatedAt),
		Name:        p.Name,
		SKU:         p.SKU,
		Description: p.Description,
		Price:       p.Price,
		CategoryID:  p.CategoryID,
		IsActive:    p.IsActive,
		Inventories: dto.ToRefs(p.Inventories),
	}
}

func (r UpdateProductRequest) toInput() catalogapp.UpdateProductInput {
	return catalogapp.UpdateProductInput{
		Name:        r.Name,
		SKU:         r.SKU,
		Description: r.Description,
		Price:       r.Price,
		CategoryID:  r.CategoryID,
		IsActive:    r.IsActive,
	}
}
