package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/inventorydb/backend/internal/domain/catalog"
	"github.com/inventorydb/backend/internal/domain/shared"
	"github.com/inventorydb/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormProductRepository implements ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// Create inserts a new product
func (r *GormProductRepository) Create(ctx context.Context, product *catalog.Product) error {
	model := models.ProductModelFromDomain(product)
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(model).Error
}

// Update persists every mutable product field
func (r *GormProductRepository) Update(ctx context.Context, product *catalog.Product) error {
	result := r.db.WithContext(ctx).
		Model(&models.ProductModel{}).
		Where("id = ?", product.ID).
		Updates(map[string]any{
			"name":        product.Name,
			"sku":         product.SKU,
			"description": product.Description,
			"price":       product.Price,
			"category_id": product.CategoryID,
			"is_active":   product.IsActive,
			"updated":     product.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete removes the product together with its inventories and their transactions
func (r *GormProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db := r.db.WithContext(ctx)
	inventories := db.Model(&models.InventoryModel{}).Select("id").Where("product_id = ?", id)

	if err := db.Where("inventory_id IN (?)", inventories).
		Delete(&models.InventoryTransactionModel{}).Error; err != nil {
		return err
	}
	if err := db.Where("product_id = ?", id).
		Delete(&models.InventoryModel{}).Error; err != nil {
		return err
	}

	result := db.Delete(&models.ProductModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindAll returns products ordered by name, optionally restricted to one category
func (r *GormProductRepository) FindAll(ctx context.Context, filter catalog.ProductFilter) ([]*catalog.Product, error) {
	query := r.withInventoryRefs(ctx)
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}

	var productModels []models.ProductModel
	if err := query.Order("name ASC").Find(&productModels).Error; err != nil {
		return nil, err
	}
	products := make([]*catalog.Product, 0, len(productModels))
	for i := range productModels {
		products = append(products, productModels[i].ToDomain())
	}
	return products, nil
}

// FindByID finds a product by ID
func (r *GormProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	return r.findOne(ctx, "id = ?", id)
}

// FindBySKU finds a product by SKU. SKUs are stored upper-case.
func (r *GormProductRepository) FindBySKU(ctx context.Context, sku string) (*catalog.Product, error) {
	return r.findOne(ctx, "sku = UPPER(?)", sku)
}

func (r *GormProductRepository) findOne(ctx context.Context, query string, args ...any) (*catalog.Product, error) {
	var model models.ProductModel
	if err := r.withInventoryRefs(ctx).Where(query, args...).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

func (r *GormProductRepository) withInventoryRefs(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Inventories", func(db *gorm.DB) *gorm.DB {
		return db.Select(models.RefColumns("product_id")).Order("created ASC")
	})
}

// Ensure GormProductRepository implements ProductRepository
var _ catalog.ProductRepository = (*GormProductRepository)(nil)
