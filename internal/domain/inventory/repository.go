package inventory

import (
	"context"

	"github.com/google/uuid"
)

// Filter narrows inventory listings
type Filter struct {
	ProductID *uuid.UUID
}

// InventoryRepository defines the interface for inventory persistence
type InventoryRepository interface {
	Create(ctx context.Context, inv *Inventory) error
	Update(ctx context.Context, inv *Inventory) error

	// Delete removes the inventory together with its transactions
	Delete(ctx context.Context, id uuid.UUID) error

	FindAll(ctx context.Context, filter Filter) ([]*Inventory, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Inventory, error)

	// FindByIDForUpdate loads the inventory without its transaction refs and
	// locks the row until the surrounding unit of work ends
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Inventory, error)
}

// TransactionRepository is the append-only store of inventory transactions
type TransactionRepository interface {
	Create(ctx context.Context, tx *Transaction) error
	FindByInventory(ctx context.Context, inventoryID uuid.UUID) ([]*Transaction, error)
}
