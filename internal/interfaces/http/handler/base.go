// Package handler provides HTTP handlers for the admin API.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/inventorydb/backend/internal/domain/shared"
	"github.com/inventorydb/backend/internal/infrastructure/logger"
	"github.com/inventorydb/backend/internal/interfaces/http/dto"
	"github.com/inventorydb/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// Success sends a 200 response with body
func (h *BaseHandler) Success(c *gin.Context, body any) {
	c.JSON(http.StatusOK, body)
}

// Created sends a 201 created response
func (h *BaseHandler) Created(c *gin.Context, body any) {
	c.JSON(http.StatusCreated, body)
}

// Deleted sends the confirmation of a successful delete
func (h *BaseHandler) Deleted(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewDeleteResponse())
}

// HandleError converts an error to an HTTP response with a {"detail": ...}
// body. Domain errors keep their message; anything else is logged and
// reported as a generic internal error.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	var domainErr *shared.DomainError
	if !errors.As(err, &domainErr) || domainErr.Code == shared.CodeInternal {
		logger.L(c.Request.Context()).Error("Request failed", zap.Error(err))
	}

	middleware.AbortWithError(c, err)
}

// parseID parses the UUID path parameter name. A malformed value is
// answered with 422 and false is returned.
func (h *BaseHandler) parseID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		middleware.AbortWithValidationErrors(c, []dto.FieldError{{
			Loc:  []string{middleware.LocPath, name},
			Msg:  "Invalid UUID format",
			Type: "uuid_parsing",
		}})
		return uuid.Nil, false
	}
	return id, true
}

// parseOptionalQueryID parses an optional UUID query parameter
func (h *BaseHandler) parseOptionalQueryID(c *gin.Context, name string) (*uuid.UUID, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		middleware.AbortWithValidationErrors(c, []dto.FieldError{{
			Loc:  []string{middleware.LocQuery, name},
			Msg:  "Invalid UUID format",
			Type: "uuid_parsing",
		}})
		return nil, false
	}
	return &id, true
}

// adminID returns the id of the administrator resolved by BearerAuth
func (h *BaseHandler) adminID(c *gin.Context) (uuid.UUID, bool) {
	admin := middleware.GetAdmin(c)
	if admin == nil {
		middleware.AbortWithError(c, shared.ErrUnauthorized)
		return uuid.Nil, false
	}
	return admin.ID, true
}
