package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	catalogapp "github.com/inventorydb/backend/internal/application/catalog"
	"github.com/inventorydb/backend/internal/interfaces/http/dto"
	"github.com/inventorydb/backend/internal/interfaces/http/middleware"
)

// CategoryHandler handles category-related API endpoints
type CategoryHandler struct {
	BaseHandler
	categoryService *catalogapp.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService *catalogapp.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
	}
}

// CreateCategoryRequest represents a request to create a new category
// @Description Request body for creating a new category
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,max=100" example:"Electronics"`
	Code        string `json:"code" binding:"required,max=5" example:"ELEC"`
	Description string `json:"description" binding:"required" example:"Electronic products and accessories"`
}

// UpdateCategoryRequest represents a partial category update
// @Description Request body for updating a category; omitted fields are kept
type UpdateCategoryRequest struct {
	Name        string `json:"name" binding:"omitempty,max=100" example:"Updated Name"`
	Code        string `json:"code" binding:"omitempty,max=5" example:"UPD"`
	Description string `json:"description" example:"Updated description"`
}

// CategoryResponse represents a category in the response
// @Description Category response object
type CategoryResponse struct {
	ID          uuid.UUID     `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Created     dto.Timestamp `json:"created"`
	Updated     dto.Timestamp `json:"updated"`
	Name        string        `json:"name" example:"Electronics"`
	Code        string        `json:"code" example:"ELEC"`
	Description string        `json:"description" example:"Electronic products"`
	Products    []dto.Ref     `json:"products"`
}

func toCategoryResponse(c *catalogapp.CategoryResponse) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Created:     dto.NewTimestamp(c.CreatedAt),
		Updated:     dto.NewTimestamp(c.UpdatedAt),
		Name:        c.Name,
		Code:        c.Code,
		Description: c.Description,
		Products:    dto.ToRefs(c.Products),
	}
}

// List godoc
// @Summary      List categories
// @Tags         READ
// @Produce      json
// @Success      200 {array} CategoryResponse
// @Router       /admin/categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categoryService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	resp := make([]CategoryResponse, len(categories))
	for i := range categories {
		resp[i] = toCategoryResponse(&categories[i])
	}
	h.Success(c, resp)
}

// GetByID godoc
// @Summary      Get category by ID
// @Tags         READ
// @Produce      json
// @Param        id path string true "Category ID" format(uuid)
// @Success      200 {object} CategoryResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      422 {object} dto.ValidationErrorResponse
// @Router       /admin/category_by_id/{id} [get]
func (h *CategoryHandler) GetByID(c *gin.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	category, err := h.categoryService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toCategoryResponse(category))
}

// GetByName godoc
// @Summary      Get category by name
// @Tags         READ
// @Produce      json
// @Param        name path string true "Category name"
// @Success      200 {object} CategoryResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /admin/category_by_name/{name} [get]
func (h *CategoryHandler) GetByName(c *gin.Context) {
	category, err := h.categoryService.GetByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toCategoryResponse(category))
}

// Create godoc
// @Summary      Create a new category
// @Tags         WRITE
// @Accept       json
// @Produce      json
// @Param        request body CreateCategoryRequest true "Category creation request"
// @Success      201 {object} CategoryResponse
// @Failure      401 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Failure      422 {object} dto.ValidationErrorResponse
// @Security     BearerAuth
// @Router       /admin/category [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	category, err := h.categoryService.Create(c.Request.Context(), catalogapp.CreateCategoryInput{
		Name:        req.Name,
		Code:        req.Code,
		Description: req.Description,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, toCategoryResponse(category))
}

// Update godoc
// @Summary      Update a category
// @Tags         WRITE
// @Accept       json
// @Produce      json
// @Param        id path string true "Category ID" format(uuid)
// @Param        request body UpdateCategoryRequest true "Fields to update"
// @Success      200 {object} CategoryResponse
// @Failure      401 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /admin/category/{id} [put]
func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	category, err := h.categoryService.Update(c.Request.Context(), id, catalogapp.UpdateCategoryInput{
		Name:        req.Name,
		Code:        req.Code,
		Description: req.Description,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toCategoryResponse(category))
}

// Delete godoc
// @Summary      Delete a category
// @Description  Deletes the category together with its products, their inventories and transactions
// @Tags         WRITE
// @Produce      json
// @Param        id path string true "Category ID" format(uuid)
// @Success      200 {object} dto.DetailResponse
// @Failure      401 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /admin/category/{id} [delete]
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	if err := h.categoryService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Deleted(c)
}
