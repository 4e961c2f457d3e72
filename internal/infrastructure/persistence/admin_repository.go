package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/inventorydb/backend/internal/domain/identity"
	"github.com/inventorydb/backend/internal/domain/shared"
	"github.com/inventorydb/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormAdminRepository implements AdminRepository using GORM
type GormAdminRepository struct {
	db *gorm.DB
}

// NewGormAdminRepository creates a new GormAdminRepository
func NewGormAdminRepository(db *gorm.DB) *GormAdminRepository {
	return &GormAdminRepository{db: db}
}

// Create inserts a new administrator
func (r *GormAdminRepository) Create(ctx context.Context, admin *identity.Admin) error {
	model := models.AdminModelFromDomain(admin)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update persists names, password hash and the update timestamp
func (r *GormAdminRepository) Update(ctx context.Context, admin *identity.Admin) error {
	result := r.db.WithContext(ctx).
		Model(&models.AdminModel{}).
		Where("id = ?", admin.ID).
		Updates(map[string]any{
			"first_name":    admin.FirstName,
			"last_name":     admin.LastName,
			"password_hash": admin.PasswordHash,
			"updated":       admin.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete permanently removes an administrator
func (r *GormAdminRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.AdminModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds an administrator by ID
func (r *GormAdminRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Admin, error) {
	var model models.AdminModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByEmail finds an administrator by email, case-insensitively
func (r *GormAdminRepository) FindByEmail(ctx context.Context, email string) (*identity.Admin, error) {
	email = identity.NormalizeEmail(email)
	if email == "" {
		return nil, shared.ErrNotFound
	}
	var model models.AdminModel
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Ensure GormAdminRepository implements AdminRepository
var _ identity.AdminRepository = (*GormAdminRepository)(nil)
