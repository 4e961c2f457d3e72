// Package uow defines the unit-of-work boundary shared by the application services.
package uow

import (
	"context"

	"github.com/inventorydb/backend/internal/domain/catalog"
	"github.com/inventorydb/backend/internal/domain/identity"
	"github.com/inventorydb/backend/internal/domain/inventory"
)

// TransactionScope runs a unit of work. When fn returns an error the
// transaction is rolled back, otherwise it is committed. The underlying
// connection is released on every path.
type TransactionScope interface {
	Execute(ctx context.Context, fn func(repos Repositories) error) error
}

// Repositories gives access to every repository inside one transaction.
// All repositories returned share the same underlying transaction.
type Repositories interface {
	Admins() identity.AdminRepository
	Categories() catalog.CategoryRepository
	Products() catalog.ProductRepository
	Inventories() inventory.InventoryRepository
	Transactions() inventory.TransactionRepository
}
