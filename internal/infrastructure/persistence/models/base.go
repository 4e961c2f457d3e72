package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/inventorydb/backend/internal/domain/shared"
)

// BaseModel provides common persistence fields for all models.
// It maps to the domain's BaseEntity.
type BaseModel struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Created time.Time `gorm:"column:created;not null"`
	Updated time.Time `gorm:"column:updated;not null"`
}

// ToDomain converts BaseModel to domain BaseEntity
func (m *BaseModel) ToDomain() shared.BaseEntity {
	return shared.BaseEntity{
		ID:        m.ID,
		CreatedAt: m.Created.UTC(),
		UpdatedAt: m.Updated.UTC(),
	}
}

// FromDomainBaseEntity populates BaseModel from domain BaseEntity
func (m *BaseModel) FromDomainBaseEntity(e shared.BaseEntity) {
	m.ID = e.ID
	m.Created = e.CreatedAt
	m.Updated = e.UpdatedAt
}

// Columns selected when only references to child rows are loaded
var refColumns = []string{"id", "created", "updated"}

// RefColumns returns the columns needed for a child reference plus the
// given foreign key.
func RefColumns(foreignKey string) []string {
	return append(append([]string{}, refColumns...), foreignKey)
}

func toRefs[T any](children []T, base func(*T) *BaseModel) []shared.BaseEntity {
	refs := make([]shared.BaseEntity, 0, len(children))
	for i := range children {
		refs = append(refs, base(&children[i]).ToDomain())
	}
	return refs
}

// AllModels lists every model in migration order
func AllModels() []any {
	return []any{
		&AdminModel{},
		&CategoryModel{},
		&ProductModel{},
		&InventoryModel{},
		&InventoryTransactionModel{},
	}
}
