package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/inventorydb/backend/internal/domain/catalog"
	"github.com/inventorydb/backend/internal/domain/identity"
	"github.com/inventorydb/backend/internal/domain/inventory"
	"github.com/inventorydb/backend/internal/infrastructure/persistence/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens an in-memory SQLite database with the full schema.
// A single connection keeps every statement on the same in-memory database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	database, err := Open(sqlite.Open(":memory:"), nil)
	require.NoError(t, err)

	sqlDB, err := database.DB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = database.Close() })

	require.NoError(t, database.DB.AutoMigrate(models.AllModels()...))
	return database.DB
}

func seedAdmin(t *testing.T, db *gorm.DB, email string) *identity.Admin {
	t.Helper()
	admin, err := identity.NewAdmin(email, "secret", "Ada", "Lovelace")
	require.NoError(t, err)
	require.NoError(t, NewGormAdminRepository(db).Create(context.Background(), admin))
	return admin
}

func seedCategory(t *testing.T, db *gorm.DB, name, code string) *catalog.Category {
	t.Helper()
	category, err := catalog.NewCategory(name, code, name+" items")
	require.NoError(t, err)
	require.NoError(t, NewGormCategoryRepository(db).Create(context.Background(), category))
	return category
}

func seedProduct(t *testing.T, db *gorm.DB, categoryID uuid.UUID, name, sku string) *catalog.Product {
	t.Helper()
	product, err := catalog.NewProduct(name, sku, nil, decimal.RequireFromString("9.99"), categoryID)
	require.NoError(t, err)
	require.NoError(t, NewGormProductRepository(db).Create(context.Background(), product))
	return product
}

func seedInventory(t *testing.T, db *gorm.DB, productID uuid.UUID, country string, qty int) *inventory.Inventory {
	t.Helper()
	inv, err := inventory.NewInventory(productID, country, qty)
	require.NoError(t, err)
	require.NoError(t, NewGormInventoryRepository(db).Create(context.Background(), inv))
	return inv
}

func seedTransaction(t *testing.T, db *gorm.DB, inv *inventory.Inventory, qty int) *inventory.Transaction {
	t.Helper()
	tx, err := inv.Record(qty)
	require.NoError(t, err)
	require.NoError(t, NewGormInventoryTransactionRepository(db).Create(context.Background(), tx))
	require.NoError(t, NewGormInventoryRepository(db).Update(context.Background(), inv))
	return tx
}

func countRows(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}
