package handler

import (
	"github.com/gin-gonic/gin"
	identityapp "github.com/inventorydb/backend/internal/application/identity"
	"github.com/inventorydb/backend/internal/interfaces/http/middleware"
)

// AdminHandler handles administrator registration, login and self-service endpoints
type AdminHandler struct {
	BaseHandler
	adminService *identityapp.AdminService
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(adminService *identityapp.AdminService) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
	}
}

// Register godoc
// @Summary      Create a new administrator
// @Description  Register an administrator account. The email must not be registered yet.
// @Tags         ADMIN
// @Accept       json
// @Produce      json
// @Param        request body RegisterAdminRequest true "Administrator details"
// @Success      201 {object} AdminResponse
// @Failure      409 {object} dto.ErrorResponse
// @Failure      422 {object} dto.ValidationErrorResponse
// @Failure      429 {object} dto.ErrorResponse
// @Router       /admin/new-admin [post]
func (h *AdminHandler) Register(c *gin.Context) {
	var req RegisterAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	admin, err := h.adminService.Register(c.Request.Context(), identityapp.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, toAdminResponse(admin))
}

// Token godoc
// @Summary      Generate an access token
// @Description  Exchange an email (as username) and password for a bearer token
// @Tags         ADMIN
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        username formData string true "Administrator email"
// @Param        password formData string true "Password"
// @Success      200 {object} TokenResponse
// @Failure      401 {object} dto.ErrorResponse
// @Failure      422 {object} dto.ValidationErrorResponse
// @Failure      429 {object} dto.ErrorResponse
// @Router       /admin/token [post]
func (h *AdminHandler) Token(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBind(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	result, err := h.adminService.Login(c.Request.Context(), identityapp.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toTokenResponse(result))
}

// GetInfo godoc
// @Summary      Get own administrator record
// @Tags         ADMIN
// @Produce      json
// @Success      200 {object} AdminResponse
// @Failure      401 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /admin/admin-info [get]
func (h *AdminHandler) GetInfo(c *gin.Context) {
	adminID, ok := h.adminID(c)
	if !ok {
		return
	}

	admin, err := h.adminService.GetInfo(c.Request.Context(), adminID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toAdminResponse(admin))
}

// UpdateInfo godoc
// @Summary      Update own names
// @Description  Update first_name and/or last_name. Omitted fields keep their value.
// @Tags         ADMIN
// @Accept       json
// @Produce      json
// @Param        request body UpdateInfoRequest true "Fields to update"
// @Success      200 {object} AdminResponse
// @Failure      401 {object} dto.ErrorResponse
// @Failure      422 {object} dto.ValidationErrorResponse
// @Security     BearerAuth
// @Router       /admin/update-info [put]
func (h *AdminHandler) UpdateInfo(c *gin.Context) {
	adminID, ok := h.adminID(c)
	if !ok {
		return
	}

	var req UpdateInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	admin, err := h.adminService.UpdateInfo(c.Request.Context(), adminID, identityapp.UpdateInfoInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toAdminResponse(admin))
}

// ChangePassword godoc
// @Summary      Change own password
// @Tags         ADMIN
// @Accept       json
// @Produce      json
// @Param        request body ChangePasswordRequest true "Old and new password"
// @Success      200 {object} AdminResponse
// @Failure      401 {object} dto.ErrorResponse
// @Failure      422 {object} dto.ValidationErrorResponse
// @Security     BearerAuth
// @Router       /admin/change-password [put]
func (h *AdminHandler) ChangePassword(c *gin.Context) {
	adminID, ok := h.adminID(c)
	if !ok {
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	admin, err := h.adminService.ChangePassword(c.Request.Context(), adminID, identityapp.ChangePasswordInput{
		OldPassword: req.OldPassword,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toAdminResponse(admin))
}

// Delete godoc
// @Summary      Delete own account
// @Description  Deletes the authenticated administrator. Tokens issued for it stop working.
// @Tags         ADMIN
// @Produce      json
// @Success      200 {object} dto.DetailResponse
// @Failure      401 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /admin/delete-admin [delete]
func (h *AdminHandler) Delete(c *gin.Context) {
	adminID, ok := h.adminID(c)
	if !ok {
		return
	}

	if err := h.adminService.Delete(c.Request.Context(), adminID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Deleted(c)
}
