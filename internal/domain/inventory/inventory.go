// Package inventory contains the Inventory bounded context.
package inventory

import (
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/inventorydb/backend/internal/domain/shared"
)

// ErrInsufficientStock is returned when a transaction would drive the
// quantity of an inventory below zero.
var ErrInsufficientStock = shared.NewDomainError(shared.CodeBadRequest, "Insufficient stock available")

// MaxQuantity bounds stock levels and deltas to the INTEGER column range
const MaxQuantity = math.MaxInt32

var errQuantityRange = shared.NewValidationError(fmt.Sprintf("Quantity cannot exceed %d", MaxQuantity))

// Inventory is the stock of one product held in one country
type Inventory struct {
	shared.BaseEntity
	ProductID       uuid.UUID
	Country         string // ISO 3166-1 alpha-2
	Quantity        int
	TransactionRefs []shared.BaseEntity
}

// NewInventory creates an inventory record
func NewInventory(productID uuid.UUID, country string, quantity int) (*Inventory, error) {
	if productID == uuid.Nil {
		return nil, shared.NewValidationError("Product ID is required")
	}
	country = strings.ToUpper(strings.TrimSpace(country))
	if err := validateCountry(country); err != nil {
		return nil, err
	}
	if quantity < 0 {
		return nil, shared.NewValidationError("Quantity cannot be negative")
	}
	if quantity > MaxQuantity {
		return nil, errQuantityRange
	}

	return &Inventory{
		BaseEntity: shared.NewBaseEntity(),
		ProductID:  productID,
		Country:    country,
		Quantity:   quantity,
	}, nil
}

// Record applies a transaction to the inventory. The quantity never goes
// negative; a rejected transaction leaves the inventory untouched.
func (i *Inventory) Record(quantity int) (*Transaction, error) {
	tx, err := NewTransaction(i.ID, quantity)
	if err != nil {
		return nil, err
	}
	next := int64(i.Quantity) + int64(quantity)
	if next < 0 {
		return nil, shared.NewDomainError(ErrInsufficientStock.Code,
			fmt.Sprintf("Insufficient stock available: have %d, requested %d", i.Quantity, -int64(quantity)))
	}
	if next > MaxQuantity {
		return nil, errQuantityRange
	}
	i.Quantity = int(next)
	i.Touch()
	return tx, nil
}

func validateCountry(country string) error {
	if len(country) != 2 {
		return shared.NewValidationError("Country must be an ISO 3166-1 alpha-2 code")
	}
	for _, r := range country {
		if r < 'A' || r > 'Z' {
			return shared.NewValidationError("Country must be an ISO 3166-1 alpha-2 code")
		}
	}
	return nil
}
