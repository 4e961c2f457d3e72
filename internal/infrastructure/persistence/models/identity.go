package models

import (
	"github.com/inventorydb/backend/internal/domain/identity"
)

// AdminModel is the persistence model for the Admin domain entity.
type AdminModel struct {
	BaseModel
	Email        string `gorm:"type:varchar(254);not null;uniqueIndex:uk_admins_email"`
	PasswordHash string `gorm:"column:password_hash;type:varchar(255);not null"`
	FirstName    string `gorm:"type:varchar(100);not null"`
	LastName     string `gorm:"type:varchar(100);not null"`
}

// TableName returns the table name for GORM
func (AdminModel) TableName() string {
	return "admins"
}

// ToDomain converts the persistence model to a domain Admin entity.
func (m *AdminModel) ToDomain() *identity.Admin {
	return &identity.Admin{
		BaseEntity:   m.BaseModel.ToDomain(),
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
	}
}

// AdminModelFromDomain creates a persistence model from a domain Admin entity.
func AdminModelFromDomain(a *identity.Admin) *AdminModel {
	m := &AdminModel{
		Email:        a.Email,
		PasswordHash: a.PasswordHash,
		FirstName:    a.FirstName,
		LastName:     a.LastName,
	}
	m.FromDomainBaseEntity(a.BaseEntity)
	return m
}
