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

// GormCategoryRepository implements CategoryRepository using GORM
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewGormCategoryRepository creates a new GormCategoryRepository
func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

// Create inserts a new category
func (r *GormCategoryRepository) Create(ctx context.Context, category *catalog.Category) error {
	model := models.CategoryModelFromDomain(category)
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(model).Error
}

// Update persists the mutable category fields
func (r *GormCategoryRepository) Update(ctx context.Context, category *catalog.Category) error {
	result := r.db.WithContext(ctx).
		Model(&models.CategoryModel{}).
		Where("id = ?", category.ID).
		Updates(map[string]any{
			"name":        category.Name,
			"code":        category.Code,
			"description": category.Description,
			"updated":     category.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete removes the category and, leaf first, the transactions, inventories
// and products below it. Callers run it inside a unit of work.
func (r *GormCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db := r.db.WithContext(ctx)
	products := db.Model(&models.ProductModel{}).Select("id").Where("category_id = ?", id)
	inventories := db.Model(&models.InventoryModel{}).Select("id").Where("product_id IN (?)", products)

	if err := db.Where("inventory_id IN (?)", inventories).
		Delete(&models.InventoryTransactionModel{}).Error; err != nil {
		return err
	}
	if err := db.Where("product_id IN (?)", products).
		Delete(&models.InventoryModel{}).Error; err != nil {
		return err
	}
	if err := db.Where("category_id = ?", id).
		Delete(&models.ProductModel{}).Error; err != nil {
		return err
	}

	result := db.Delete(&models.CategoryModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindAll returns every category ordered by name
func (r *GormCategoryRepository) FindAll(ctx context.Context) ([]*catalog.Category, error) {
	var categoryModels []models.CategoryModel
	if err := r.withProductRefs(ctx).Order("name ASC").Find(&categoryModels).Error; err != nil {
		return nil, err
	}
	categories := make([]*catalog.Category, 0, len(categoryModels))
	for i := range categoryModels {
		categories = append(categories, categoryModels[i].ToDomain())
	}
	return categories, nil
}

// FindByID finds a category by ID
func (r *GormCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Category, error) {
	return r.findOne(ctx, "id = ?", id)
}

// FindByName finds a category by its exact name
func (r *GormCategoryRepository) FindByName(ctx context.Context, name string) (*catalog.Category, error) {
	return r.findOne(ctx, "name = ?", name)
}

func (r *GormCategoryRepository) findOne(ctx context.Context, query string, args ...any) (*catalog.Category, error) {
	var model models.CategoryModel
	if err := r.withProductRefs(ctx).Where(query, args...).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

func (r *GormCategoryRepository) withProductRefs(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Products", func(db *gorm.DB) *gorm.DB {
		return db.Select(models.RefColumns("category_id")).Order("created ASC")
	})
}

// Ensure GormCategoryRepository implements CategoryRepository
var _ catalog.CategoryRepository = (*GormCategoryRepository)(nil)
