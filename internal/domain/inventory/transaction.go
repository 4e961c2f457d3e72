package inventory

import (
	"github.com/google/uuid"
	"github.com/inventorydb/backend/internal/domain/shared"
)

// Transaction is an append-only record of a signed quantity change applied
// to an inventory. Positive values are receipts, negative values issues.
type Transaction struct {
	shared.BaseEntity
	InventoryID uuid.UUID
	Quantity    int
}

// NewTransaction creates a transaction record
func NewTransaction(inventoryID uuid.UUID, quantity int) (*Transaction, error) {
	if inventoryID == uuid.Nil {
		return nil, shared.NewValidationError("Inventory ID is required")
	}
	if quantity == 0 {
		return nil, shared.NewValidationError("Transaction quantity cannot be zero")
	}
	if quantity > MaxQuantity || quantity < -MaxQuantity {
		return nil, errQuantityRange
	}
	return &Transaction{
		BaseEntity:  shared.NewBaseEntity(),
		InventoryID: inventoryID,
		Quantity:    quantity,
	}, nil
}
