package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/inventorydb/backend/internal/domain/inventory"
	"github.com/inventorydb/backend/internal/domain/shared"
)

// CreateInventoryInput contains the fields of a new inventory
type CreateInventoryInput struct {
	ProductID uuid.UUID
	Country   string
	Quantity  int
}

// RecordTransactionInput contains a signed quantity change for one inventory
type RecordTransactionInput struct {
	InventoryID uuid.UUID
	Quantity    int
}

// InventoryResponse represents an inventory with references to its transactions
type InventoryResponse struct {
	ID           uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
	ProductID    uuid.UUID
	Country      string
	Quantity     int
	Transactions []shared.BaseEntity
}

// ToInventoryResponse converts a domain Inventory to InventoryResponse
func ToInventoryResponse(i *inventory.Inventory) InventoryResponse {
	refs := i.TransactionRefs
	if refs == nil {
		refs = []shared.BaseEntity{}
	}
	return InventoryResponse{
		ID:           i.ID,
		CreatedAt:    i.CreatedAt,
		UpdatedAt:    i.UpdatedAt,
		ProductID:    i.ProductID,
		Country:      i.Country,
		Quantity:     i.Quantity,
		Transactions: refs,
	}
}

// TransactionResponse represents a recorded inventory transaction
type TransactionResponse struct {
	ID          uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
	InventoryID uuid.UUID
	Quantity    int
	// Balance is the inventory quantity after the transaction was applied.
	// It is only set on the response of RecordTransaction.
	Balance *int
}

// ToTransactionResponse converts a domain Transaction to TransactionResponse
func ToTransactionResponse(t *inventory.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
		InventoryID: t.InventoryID,
		Quantity:    t.Quantity,
	}
}
