package persistence

import (
	"context"
	"errors"

	"github.com/inventorydb/backend/internal/application/uow"
	"github.com/inventorydb/backend/internal/domain/catalog"
	"github.com/inventorydb/backend/internal/domain/identity"
	"github.com/inventorydb/backend/internal/domain/inventory"
	"github.com/inventorydb/backend/internal/domain/shared"
	"github.com/inventorydb/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// GormTransactionScope implements TransactionScope using GORM transactions.
// Errors leaving the scope have already been rolled back and translated.
type GormTransactionScope struct {
	db *gorm.DB
}

// NewGormTransactionScope creates a new GormTransactionScope.
func NewGormTransactionScope(db *gorm.DB) *GormTransactionScope {
	return &GormTransactionScope{db: db}
}

// Execute runs fn within a database transaction. If fn returns an error the
// transaction is rolled back before the error is translated.
func (s *GormTransactionScope) Execute(ctx context.Context, fn func(repos uow.Repositories) error) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormRepositories{tx: tx})
	})
	if err == nil {
		return nil
	}

	translated := TranslateError(err)
	if errors.Is(translated, shared.ErrInternal) {
		logger.L(ctx).Error("Unit of work failed", zap.Error(err))
	}
	return translated
}

// gormRepositories provides access to all repositories within a transaction.
type gormRepositories struct {
	tx *gorm.DB
}

func (r *gormRepositories) Admins() identity.AdminRepository {
	return NewGormAdminRepository(r.tx)
}

func (r *gormRepositories) Categories() catalog.CategoryRepository {
	return NewGormCategoryRepository(r.tx)
}

func (r *gormRepositories) Products() catalog.ProductRepository {
	return NewGormProductRepository(r.tx)
}

func (r *gormRepositories) Inventories() inventory.InventoryRepository {
	return NewGormInventoryRepository(r.tx)
}

func (r *gormRepositories) Transactions() inventory.TransactionRepository {
	return NewGormInventoryTransactionRepository(r.tx)
}

// Ensure GormTransactionScope implements TransactionScope
var _ uow.TransactionScope = (*GormTransactionScope)(nil)

// Ensure gormRepositories implements Repositories
var _ uow.Repositories = (*gormRepositories)(nil)
