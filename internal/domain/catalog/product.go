package catalog

import (
	"strings"

	"github.com/google/uuid"
	"github.com/inventorydb/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Column widths of the products table
const (
	MaxProductNameLength = 30
	MaxSKULength         = 8
)

// Product is a sellable item belonging to exactly one category
type Product struct {
	shared.BaseEntity
	Name          string
	SKU           string
	Description   *string
	Price         decimal.Decimal
	CategoryID    uuid.UUID
	IsActive      bool
	InventoryRefs []shared.BaseEntity
}

// NewProduct creates an active product
func NewProduct(name, sku string, description *string, price decimal.Decimal, categoryID uuid.UUID) (*Product, error) {
	name = strings.TrimSpace(name)
	sku = strings.ToUpper(strings.TrimSpace(sku))

	if err := validateProductName(name); err != nil {
		return nil, err
	}
	if err := validateSKU(sku); err != nil {
		return nil, err
	}
	if err := validatePrice(price); err != nil {
		return nil, err
	}
	if categoryID == uuid.Nil {
		return nil, shared.NewValidationError("Category ID is required")
	}

	return &Product{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        name,
		SKU:         sku,
		Description: normalizeDescription(description),
		Price:       price,
		CategoryID:  categoryID,
		IsActive:    true,
	}, nil
}

// ProductUpdate carries the optional fields of a partial product update
type ProductUpdate struct {
	Name        string
	SKU         string
	Description *string
	Price       *decimal.Decimal
	CategoryID  *uuid.UUID
	IsActive    *bool
}

// Apply applies the supplied fields; empty strings and nil pointers are ignored
func (p *Product) Apply(u ProductUpdate) error {
	if v := strings.TrimSpace(u.Name); v != "" {
		if err := validateProductName(v); err != nil {
			return err
		}
		p.Name = v
	}
	if v := strings.ToUpper(strings.TrimSpace(u.SKU)); v != "" {
		if err := validateSKU(v); err != nil {
			return err
		}
		p.SKU = v
	}
	if u.Description != nil {
		p.Description = normalizeDescription(u.Description)
	}
	if u.Price != nil {
		if err := validatePrice(*u.Price); err != nil {
			return err
		}
		p.Price = *u.Price
	}
	if u.CategoryID != nil && *u.CategoryID != uuid.Nil {
		p.CategoryID = *u.CategoryID
	}
	if u.IsActive != nil {
		p.IsActive = *u.IsActive
	}
	p.Touch()
	return nil
}

func normalizeDescription(description *string) *string {
	if description == nil {
		return nil
	}
	v := strings.TrimSpace(*description)
	if v == "" {
		return nil
	}
	return &v
}

func validateProductName(name string) error {
	if name == "" {
		return shared.NewValidationError("Product name cannot be empty")
	}
	if len(name) > MaxProductNameLength {
		return shared.NewValidationError("Product name cannot exceed 30 characters")
	}
	return nil
}

func validateSKU(sku string) error {
	if sku == "" {
		return shared.NewValidationError("Product SKU cannot be empty")
	}
	if len(sku) > MaxSKULength {
		return shared.NewValidationError("Product SKU cannot exceed 8 characters")
	}
	return nil
}

func validatePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewValidationError("Product price cannot be negative")
	}
	return nil
}
