package identity

import (
	"time"

	"github.com/google/uuid"
	"github.com/inventorydb/backend/internal/domain/identity"
)

// TokenTypeBearer is the token_type reported with every issued token
const TokenTypeBearer = "bearer"

// RegisterInput contains the input for administrator registration
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// LoginInput contains the credentials of a login attempt.
// Username carries the administrator's email.
type LoginInput struct {
	Username string
	Password string
}

// LoginResult contains the result of a successful login
type LoginResult struct {
	AccessToken string
	TokenType   string
	ExpiresIn   time.Duration
}

// UpdateInfoInput contains the optional name fields of an update-info call.
// Empty values leave the stored field untouched.
type UpdateInfoInput struct {
	FirstName string
	LastName  string
}

// ChangePasswordInput contains the input for password change
type ChangePasswordInput struct {
	OldPassword string
	NewPassword string
}

// AdminResponse is an administrator as returned to callers. It never
// carries the password or its hash.
type AdminResponse struct {
	ID        uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
	Email     string
	FirstName string
	LastName  string
}

// ToAdminResponse converts a domain Admin to AdminResponse
func ToAdminResponse(a *identity.Admin) AdminResponse {
	return AdminResponse{
		ID:        a.ID,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
		Email:     a.Email,
		FirstName: a.FirstName,
		LastName:  a.LastName,
	}
}
