package handler

import (
	"github.com/gin-gonic/gin"
	catalogapp "github.com/inventorydb/backend/internal/application/catalog"
	"github.com/inventorydb/backend/internal/interfaces/http/middleware"
)

// ProductHandler handles product-related API endpoints
type ProductHandler struct {
	BaseHandler
	productService *catalogapp.ProductService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService *catalogapp.ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

// List godoc
// @Summary      List products
// @Tags         READ
// @Produce      json
// @Param        category_id query string false "Only products of this category" format(uuid)
// @Success      200 {array} ProductResponse
// @Failure      422 {object} dto.ValidationErrorResponse
// @Router       /admin/products [get]
func (h *ProductHandler) List(c *gin.Context) {
	categoryID, ok := h.parseOptionalQueryID(c, "category_id")
	if !ok {
		return
	}

	products, err := h.productService.List(c.Request.Context(), categoryID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	resp := make([]ProductResponse, len(products))
	for i := range products {
		resp[i] = toProductResponse(&products[i])
	}
	h.Success(c, resp)
}

// GetByID godoc
// @Summary      Get product by ID
// @Tags         READ
// @Produce      json
// @Param        id path string true "Product ID" format(uuid)
// @Success      200 {object} ProductResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      422 {object} dto.ValidationErrorResponse
// @Router       /admin/product_by_id/{id} [get]
func (h *ProductHandler) GetByID(c *gin.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	product, err := h.productService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toProductResponse(product))
}

// GetBySKU godoc
// @Summary      Get product by SKU
// @Tags         READ
// @Produce      json
// @Param        sku path string true "Product SKU"
// @Success      200 {object} ProductResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /admin/product_by_sku/{sku} [get]
func (h *ProductHandler) GetBySKU(c *gin.Context) {
	product, err := h.productService.GetBySKU(c.Request.Context(), c.Param("sku"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toProductResponse(product))
}

// Create godoc
// @Summary      Create a new product
// @Tags         WRITE
// @Accept       json
// @Produce      json
// @Param        request body CreateProductRequest true "Product creation request"
// @Success      201 {object} ProductResponse
// @Failure      401 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Failure      422 {object} dto.ValidationErrorResponse
// @Security     BearerAuth
// @Router       /admin/product [post]
func (h *ProductHandler) Create(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	product, err := h.productService.Create(c.Request.Context(), catalogapp.CreateProductInput{
		Name:        req.Name,
		SKU:         req.SKU,
		Description: req.Description,
		Price:       *req.Price,
		CategoryID:  req.CategoryID,
		IsActive:    req.IsActive,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, toProductResponse(product))
}

// Update godoc
// @Summary      Update a product
// @Tags         WRITE
// @Accept       json
// @Produce      json
// @Param        id path string true "Product ID" format(uuid)
// @Param        request body UpdateProductRequest true "Fields to update"
// @Success      200 {object} ProductResponse
// @Failure      401 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Failure      422 {object} dto.ValidationErrorResponse
// @Security     BearerAuth
// @Router       /admin/product/{id} [put]
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	product, err := h.productService.Update(c.Request.Context(), id, req.toInput())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toProductResponse(product))
}

// Delete godoc
// @Summary      Delete a product
// @Tags         WRITE
// @Produce      json
// @Param        id path string true "Product ID" format(uuid)
// @Success      200 {object} dto.DetailResponse
// @Failure      401 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /admin/product/{id} [delete]
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	if err := h.productService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Deleted(c)
}
