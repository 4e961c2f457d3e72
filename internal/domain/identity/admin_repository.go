package identity

import (
	"context"

	"github.com/google/uuid"
)

// AdminRepository defines the interface for administrator persistence
type AdminRepository interface {
	// Create inserts a new administrator
	Create(ctx context.Context, admin *Admin) error

	// Update persists the mutable fields of an administrator
	Update(ctx context.Context, admin *Admin) error

	// Delete permanently removes an administrator
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByID finds an administrator by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Admin, error)

	// FindByEmail finds an administrator by email
	FindByEmail(ctx context.Context, email string) (*Admin, error)
}
