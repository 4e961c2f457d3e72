package models

import (
	"github.com/google/uuid"
	"github.com/inventorydb/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// CategoryModel is the persistence model for the Category domain entity.
type CategoryModel struct {
	BaseModel
	Name        string         `gorm:"type:varchar(100);not null;uniqueIndex:uk_categories_name"`
	Code        string         `gorm:"type:varchar(5);not null;uniqueIndex:uk_categories_code"`
	Description string         `gorm:"type:text;not null"`
	Products    []ProductModel `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (CategoryModel) TableName() string {
	return "categories"
}

// ToDomain converts the persistence model to a domain Category entity.
// ProductRefs is populated from whatever products were preloaded.
func (m *CategoryModel) ToDomain() *catalog.Category {
	return &catalog.Category{
		BaseEntity:  m.BaseModel.ToDomain(),
		Name:        m.Name,
		Code:        m.Code,
		Description: m.Description,
		ProductRefs: toRefs(m.Products, func(p *ProductModel) *BaseModel { return &p.BaseModel }),
	}
}

// CategoryModelFromDomain creates a persistence model from a domain Category entity.
func CategoryModelFromDomain(c *catalog.Category) *CategoryModel {
	m := &CategoryModel{
		Name:        c.Name,
		Code:        c.Code,
		Description: c.Description,
	}
	m.FromDomainBaseEntity(c.BaseEntity)
	return m
}

// ProductModel is the persistence model for the Product domain entity.
type ProductModel struct {
	BaseModel
	Name        string           `gorm:"type:varchar(30);not null;uniqueIndex:uk_products_name"`
	SKU         string           `gorm:"column:sku;type:varchar(8);not null;uniqueIndex:uk_products_sku"`
	Description *string          `gorm:"type:text"`
	Price       decimal.Decimal  `gorm:"type:decimal(12,2);not null"`
	CategoryID  uuid.UUID        `gorm:"type:uuid;not null;index"`
	IsActive    bool             `gorm:"not null"`
	Inventories []InventoryModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts the persistence model to a domain Product entity.
func (m *ProductModel) ToDomain() *catalog.Product {
	return &catalog.Product{
		BaseEntity:    m.BaseModel.ToDomain(),
		Name:          m.Name,
		SKU:           m.SKU,
		Description:   m.Description,
		Price:         m.Price,
		CategoryID:    m.CategoryID,
		IsActive:      m.IsActive,
		InventoryRefs: toRefs(m.Inventories, func(i *InventoryModel) *BaseModel { return &i.BaseModel }),
	}
}

// ProductModelFromDomain creates a persistence model from a domain Product entity.
func ProductModelFromDomain(p *catalog.Product) *ProductModel {
	m := &ProductModel{
		Name:        p.Name,
		SKU:         p.SKU,
		Description: p.Description,
		Price:       p.Price,
		CategoryID:  p.CategoryID,
		IsActive:    p.IsActive,
	}
	m.FromDomainBaseEntity(p.BaseEntity)
	return m
}
