package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/inventorydb/backend/internal/application/identity"
	"github.com/inventorydb/backend/internal/domain/shared"
	"github.com/inventorydb/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// Auth context keys
const (
	AdminKey      = "auth_admin"
	AdminIDKey    = "auth_admin_id"
	AuthHeaderKey = "Authorization"
	BearerScheme  = "bearer"
)

// NotAuthenticatedDetail is returned when no bearer token is supplied
const NotAuthenticatedDetail = "Not authenticated"

// Authenticator resolves a bearer token to the administrator it belongs to
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*identity.AdminResponse, error)
}

// BearerAuth requires a valid bearer token. The resolved administrator is
// stored in the gin context and the admin id in the request context, so
// that L(ctx) log lines carry it.
func BearerAuth(authenticator Authenticator, log *zap.Logger) gin.HandlerFunc {
	if log == nil {
		log = zap.NewNop()
	}

	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader(AuthHeaderKey))
		if !ok {
			log.Debug("Missing bearer token", zap.String("path", c.Request.URL.Path))
			AbortWithDetail(c, http.StatusUnauthorized, NotAuthenticatedDetail)
			return
		}

		admin, err := authenticator.Authenticate(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, shared.ErrUnauthorized) {
				log.Debug("Bearer token rejected", zap.String("path", c.Request.URL.Path))
			} else {
				log.Error("Bearer authentication failed", zap.Error(err))
			}
			AbortWithError(c, err)
			return
		}

		adminID := admin.ID.String()
		c.Set(AdminKey, admin)
		c.Set(AdminIDKey, adminID)
		c.Request = c.Request.WithContext(logger.WithAdminID(c.Request.Context(), adminID))

		c.Next()
	}
}

// bearerToken extracts the token of an "Authorization: Bearer <token>"
// header. The scheme is case-insensitive.
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, BearerScheme) {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// GetAdmin returns the administrator resolved by BearerAuth
func GetAdmin(c *gin.Context) *identity.AdminResponse {
	if v, ok := c.Get(AdminKey); ok {
		if admin, ok := v.(*identity.AdminResponse); ok {
			return admin
		}
	}
	return nil
}

// GetAdminID returns the authenticated administrator's id as a string
func GetAdminID(c *gin.Context) string {
	return c.GetString(AdminIDKey)
}
