package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/inventorydb/backend/internal/domain/inventory"
	"github.com/inventorydb/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormInventoryTransactionRepository implements TransactionRepository using GORM.
// Transactions are append-only; there is no update or delete.
type GormInventoryTransactionRepository struct {
	db *gorm.DB
}

// NewGormInventoryTransactionRepository creates a new GormInventoryTransactionRepository
func NewGormInventoryTransactionRepository(db *gorm.DB) *GormInventoryTransactionRepository {
	return &GormInventoryTransactionRepository{db: db}
}

// Create appends a transaction
func (r *GormInventoryTransactionRepository) Create(ctx context.Context, tx *inventory.Transaction) error {
	model := models.InventoryTransactionModelFromDomain(tx)
	return r.db.WithContext(ctx).Create(model).Error
}

// FindByInventory returns the transactions of one inventory, oldest first
func (r *GormInventoryTransactionRepository) FindByInventory(ctx context.Context, inventoryID uuid.UUID) ([]*inventory.Transaction, error) {
	var txModels []models.InventoryTransactionModel
	if err := r.db.WithContext(ctx).
		Where("inventory_id = ?", inventoryID).
		Order("created ASC").
		Find(&txModels).Error; err != nil {
		return nil, err
	}
	transactions := make([]*inventory.Transaction, 0, len(txModels))
	for i := range txModels {
		transactions = append(transactions, txModels[i].ToDomain())
	}
	return transactions, nil
}

// Ensure GormInventoryTransactionRepository implements TransactionRepository
var _ inventory.TransactionRepository = (*GormInventoryTransactionRepository)(nil)
