package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/inventorydb/backend/internal/domain/inventory"
	"github.com/inventorydb/backend/internal/domain/shared"
	"github.com/inventorydb/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormInventoryRepository implements InventoryRepository using GORM
type GormInventoryRepository struct {
	db *gorm.DB
}

// NewGormInventoryRepository creates a new GormInventoryRepository
func NewGormInventoryRepository(db *gorm.DB) *GormInventoryRepository {
	return &GormInventoryRepository{db: db}
}

// Create inserts a new inventory
func (r *GormInventoryRepository) Create(ctx context.Context, inv *inventory.Inventory) error {
	model := models.InventoryModelFromDomain(inv)
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(model).Error
}

// Update persists the quantity and update timestamp
func (r *GormInventoryRepository) Update(ctx context.Context, inv *inventory.Inventory) error {
	result := r.db.WithContext(ctx).
		Model(&models.InventoryModel{}).
		Where("id = ?", inv.ID).
		Updates(map[string]any{
			"quantity": inv.Quantity,
			"updated":  inv.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete removes the inventory together with its transactions
func (r *GormInventoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("inventory_id = ?", id).
		Delete(&models.InventoryTransactionModel{}).Error; err != nil {
		return err
	}

	result := db.Delete(&models.InventoryModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindAll returns inventories, optionally restricted to one product
func (r *GormInventoryRepository) FindAll(ctx context.Context, filter inventory.Filter) ([]*inventory.Inventory, error) {
	query := r.withTransactionRefs(ctx)
	if filter.ProductID != nil {
		query = query.Where("product_id = ?", *filter.ProductID)
	}

	var inventoryModels []models.InventoryModel
	if err := query.Order("product_id ASC, country ASC").Find(&inventoryModels).Error; err != nil {
		return nil, err
	}
	inventories := make([]*inventory.Inventory, 0, len(inventoryModels))
	for i := range inventoryModels {
		inventories = append(inventories, inventoryModels[i].ToDomain())
	}
	return inventories, nil
}

// FindByID finds an inventory by ID
func (r *GormInventoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Inventory, error) {
	var model models.InventoryModel
	if err := r.withTransactionRefs(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDForUpdate reads the inventory with SELECT ... FOR UPDATE.
// SQLite has no row locks and serializes writers instead.
func (r *GormInventoryRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*inventory.Inventory, error) {
	var model models.InventoryModel
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&model, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

func (r *GormInventoryRepository) withTransactionRefs(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Transactions", func(db *gorm.DB) *gorm.DB {
		return db.Select(models.RefColumns("inventory_id")).Order("created ASC")
	})
}

// Ensure GormInventoryRepository implements InventoryRepository
var _ inventory.InventoryRepository = (*GormInventoryRepository)(nil)
