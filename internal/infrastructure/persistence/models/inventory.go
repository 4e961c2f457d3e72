package models

import (
	"github.com/google/uuid"
	"github.com/inventorydb/backend/internal/domain/inventory"
)

// InventoryModel is the persistence model for the Inventory domain entity.
type InventoryModel struct {
	BaseModel
	ProductID    uuid.UUID                   `gorm:"type:uuid;not null;uniqueIndex:uk_inventories_product_country,priority:1"`
	Country      string                      `gorm:"type:char(2);not null;uniqueIndex:uk_inventories_product_country,priority:2"`
	Quantity     int                         `gorm:"not null"`
	Transactions []InventoryTransactionModel `gorm:"foreignKey:InventoryID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (InventoryModel) TableName() string {
	return "inventories"
}

// ToDomain converts the persistence model to a domain Inventory entity.
func (m *InventoryModel) ToDomain() *inventory.Inventory {
	return &inventory.Inventory{
		BaseEntity: m.BaseModel.ToDomain(),
		ProductID:  m.ProductID,
		Country:    m.Country,
		Quantity:   m.Quantity,
		TransactionRefs: toRefs(m.Transactions, func(t *InventoryTransactionModel) *BaseModel {
			return &t.BaseModel
		}),
	}
}

// InventoryModelFromDomain creates a persistence model from a domain Inventory entity.
func InventoryModelFromDomain(i *inventory.Inventory) *InventoryModel {
	m := &InventoryModel{
		ProductID: i.ProductID,
		Country:   i.Country,
		Quantity:  i.Quantity,
	}
	m.FromDomainBaseEntity(i.BaseEntity)
	return m
}

// InventoryTransactionModel is the persistence model for inventory transactions.
type InventoryTransactionModel struct {
	BaseModel
	InventoryID uuid.UUID `gorm:"type:uuid;not null;index"`
	Quantity    int       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (InventoryTransactionModel) TableName() string {
	return "inventory_transactions"
}

// ToDomain converts the persistence model to a domain Transaction entity.
func (m *InventoryTransactionModel) ToDomain() *inventory.Transaction {
	return &inventory.Transaction{
		BaseEntity:  m.BaseModel.ToDomain(),
		InventoryID: m.InventoryID,
		Quantity:    m.Quantity,
	}
}

// InventoryTransactionModelFromDomain creates a persistence model from a domain Transaction.
func InventoryTransactionModelFromDomain(t *inventory.Transaction) *InventoryTransactionModel {
	m := &InventoryTransactionModel{
		InventoryID: t.InventoryID,
		Quantity:    t.Quantity,
	}
	m.FromDomainBaseEntity(t.BaseEntity)
	return m
}
