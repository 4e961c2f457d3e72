// Package identity implements administrator registration, login and self-service.
package identity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/inventorydb/backend/internal/application/uow"
	"github.com/inventorydb/backend/internal/domain/identity"
	"github.com/inventorydb/backend/internal/domain/shared"
	"github.com/inventorydb/backend/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

// TokenService issues and verifies bearer tokens. Only the signature, the
// algorithm and the expiry are checked here; resolving the subject to an
// administrator is up to AdminService.
type TokenService interface {
	IssueAccessToken(subject string) (string, error)
	Subject(token string) (string, error)
	TTL() time.Duration
}

// AdminService implements the administrator session operations
type AdminService struct {
	scope           uow.TransactionScope
	tokens          TokenService
	logger          *zap.Logger
	businessMetrics *telemetry.BusinessMetrics

	// verifyUnknown burns a password check for logins with an unknown email
	verifyUnknown func(password string) bool
}

// NewAdminService creates a new AdminService
func NewAdminService(scope uow.TransactionScope, tokens TokenService, logger *zap.Logger) *AdminService {
	return &AdminService{
		scope:         scope,
		tokens:        tokens,
		logger:        logger,
		verifyUnknown: identity.VerifyDummyPassword,
	}
}

// SetBusinessMetrics sets the business metrics collector
func (s *AdminService) SetBusinessMetrics(bm *telemetry.BusinessMetrics) {
	s.businessMetrics = bm
}

// Register creates a new administrator. A duplicate email surfaces as a
// conflict from the unit of work.
func (s *AdminService) Register(ctx context.Context, input RegisterInput) (*AdminResponse, error) {
	admin, err := identity.NewAdmin(input.Email, input.Password, input.FirstName, input.LastName)
	if err != nil {
		return nil, err
	}

	err = s.scope.Execute(ctx, func(repos uow.Repositories) error {
		return repos.Admins().Create(ctx, admin)
	})
	if err != nil {
		s.logger.Warn("Admin registration failed", zap.String("email", admin.Email), zap.Error(err))
		return nil, err
	}

	s.logger.Info("Admin registered",
		zap.String("admin_id", admin.ID.String()),
		zap.String("email", admin.Email))

	resp := ToAdminResponse(admin)
	return &resp, nil
}

// Login verifies the credentials and issues an access token. Unknown email
// and wrong password fail with the same error.
func (s *AdminService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	var admin *identity.Admin
	err := s.scope.Execute(ctx, func(repos uow.Repositories) error {
		var err error
		admin, err = repos.Admins().FindByEmail(ctx, input.Username)
		return err
	})
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			s.verifyUnknown(input.Password)
			s.logger.Debug("Login for unknown email")
			s.recordLogin(ctx, false)
			return nil, identity.ErrInvalidCredentials
		}
		return nil, err
	}

	if !admin.VerifyPassword(input.Password) {
		s.logger.Warn("Invalid password attempt", zap.String("admin_id", admin.ID.String()))
		s.recordLogin(ctx, false)
		return nil, identity.ErrInvalidCredentials
	}

	token, err := s.tokens.IssueAccessToken(admin.Email)
	if err != nil {
		s.logger.Error("Failed to issue access token", zap.Error(err))
		return nil, shared.ErrInternal
	}

	s.logger.Info("Admin logged in", zap.String("admin_id", admin.ID.String()))
	s.recordLogin(ctx, true)

	return &LoginResult{
		AccessToken: token,
		TokenType:   TokenTypeBearer,
		ExpiresIn:   s.tokens.TTL(),
	}, nil
}

func (s *AdminService) recordLogin(ctx context.Context, success bool) {
	if s.businessMetrics != nil {
		s.businessMetrics.RecordLogin(ctx, success)
	}
}

// Authenticate resolves a bearer token to the administrator it was issued
// for. The token must verify and its subject must name an existing account.
func (s *AdminService) Authenticate(ctx context.Context, token string) (*AdminResponse, error) {
	email, err := s.tokens.Subject(token)
	if err != nil {
		s.logger.Debug("Token rejected", zap.Error(err))
		return nil, shared.ErrUnauthorized
	}

	var admin *identity.Admin
	err = s.scope.Execute(ctx, func(repos uow.Repositories) error {
		var err error
		admin, err = repos.Admins().FindByEmail(ctx, email)
		return err
	})
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			s.logger.Debug("Token subject no longer exists")
			return nil, shared.ErrUnauthorized
		}
		return nil, err
	}

	resp := ToAdminResponse(admin)
	return &resp, nil
}

// GetInfo returns the caller's own record
func (s *AdminService) GetInfo(ctx context.Context, adminID uuid.UUID) (*AdminResponse, error) {
	var admin *identity.Admin
	err := s.scope.Execute(ctx, func(repos uow.Repositories) error {
		var err error
		admin, err = s.loadSelf(ctx, repos, adminID)
		return err
	})
	if err != nil {
		return nil, err
	}
	resp := ToAdminResponse(admin)
	return &resp, nil
}

// UpdateInfo overwrites the caller's non-empty name fields
func (s *AdminService) UpdateInfo(ctx context.Context, adminID uuid.UUID, input UpdateInfoInput) (*AdminResponse, error) {
	var admin *identity.Admin
	err := s.scope.Execute(ctx, func(repos uow.Repositories) error {
		var err error
		admin, err = s.loadSelf(ctx, repos, adminID)
		if err != nil {
			return err
		}
		admin.UpdateInfo(input.FirstName, input.LastName)
		return repos.Admins().Update(ctx, admin)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Admin info updated", zap.String("admin_id", adminID.String()))
	resp := ToAdminResponse(admin)
	return &resp, nil
}

// ChangePassword replaces the caller's password after checking the old one
func (s *AdminService) ChangePassword(ctx context.Context, adminID uuid.UUID, input ChangePasswordInput) (*AdminResponse, error) {
	var admin *identity.Admin
	err := s.scope.Execute(ctx, func(repos uow.Repositories) error {
		var err error
		admin, err = s.loadSelf(ctx, repos, adminID)
		if err != nil {
			return err
		}
		if err := admin.ChangePassword(input.OldPassword, input.NewPassword); err != nil {
			return err
		}
		return repos.Admins().Update(ctx, admin)
	})
	if err != nil {
		if errors.Is(err, identity.ErrIncorrectOldPassword) {
			s.logger.Warn("Password change with wrong old password", zap.String("admin_id", adminID.String()))
		}
		return nil, err
	}

	s.logger.Info("Admin password changed", zap.String("admin_id", adminID.String()))
	resp := ToAdminResponse(admin)
	return &resp, nil
}

// Delete permanently removes the caller's account. Tokens issued for it
// stop validating immediately.
func (s *AdminService) Delete(ctx context.Context, adminID uuid.UUID) error {
	err := s.scope.Execute(ctx, func(repos uow.Repositories) error {
		if _, err := s.loadSelf(ctx, repos, adminID); err != nil {
			return err
		}
		return repos.Admins().Delete(ctx, adminID)
	})
	if err != nil {
		return err
	}

	s.logger.Info("Admin deleted", zap.String("admin_id", adminID.String()))
	return nil
}

// loadSelf reads the authenticated administrator. An account that vanished
// after the token was validated is reported as unauthorized.
func (s *AdminService) loadSelf(ctx context.Context, repos uow.Repositories, adminID uuid.UUID) (*identity.Admin, error) {
	admin, err := repos.Admins().FindByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrUnauthorized
		}
		return nil, err
	}
	return admin, nil
}
