package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	inventoryapp "github.com/inventorydb/backend/internal/application/inventory"
	"github.com/inventorydb/backend/internal/interfaces/http/dto"
	"github.com/inventorydb/backend/internal/interfaces/http/middleware"
)

// InventoryHandler handles inventory and inventory transaction endpoints
type InventoryHandler struct {
	BaseHandler
	inventoryService *inventoryapp.InventoryService
}

// NewInventoryHandler creates a new InventoryHandler
func NewInventoryHandler(inventoryService *inventoryapp.InventoryService) *InventoryHandler {
	return &InventoryHandler{
		inventoryService: inventoryService,
	}
}

// CreateInventoryRequest represents a request to stock a product in a country
// @Description Request body for creating an inventory
type CreateInventoryRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	Country   string    `json:"country" binding:"required,iso3166_1_alpha2" example:"NG"`
	Quantity  *int      `json:"quantity" binding:"required,gte=0,lte=2147483647" example:"100"`
}

// RecordTransactionRequest represents a signed stock movement
// @Description Positive quantities add stock, negative quantities remove it
type RecordTransactionRequest struct {
	InventoryID uuid.UUID `json:"inventory_id" binding:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	Quantity    *int      `json:"quantity" binding:"required,ne=0,gte=-2147483647,lte=2147483647" example:"-5"`
}

// InventoryResponse represents an inventory in API responses
// @Description Inventory with references to its transactions
type InventoryResponse struct {
	ID           uuid.UUID     `json:"id"`
	Created      dto.Timestamp `json:"created"`
	Updated      dto.Timestamp `json:"updated"`
	ProductID    uuid.UUID     `json:"product_id"`
	Country      string        `json:"country" example:"NG"`
	Quantity     int           `json:"quantity" example:"100"`
	Transactions []dto.Ref     `json:"transactions"`
}

// TransactionResponse represents an inventory transaction in API responses
// @Description Balance is only present on the response of a newly recorded transaction
type TransactionResponse struct {
	ID          uuid.UUID     `json:"id"`
	Created     dto.Timestamp `json:"created"`
	Updated     dto.Timestamp `json:"updated"`
	InventoryID uuid.UUID     `json:"inventory_id"`
	Quantity    int           `json:"quantity" example:"-5"`
	Balance     *int          `json:"balance,omitempty" example:"95"`
}

func toInventoryResponse(i *inventoryapp.InventoryResponse) InventoryResponse {
	return InventoryResponse{
		ID:           i.ID,
		Created:      dto.NewTimestamp(i.CreatedAt),
		Updated:      dto.NewTimestamp(i.UpdatedAt),
		ProductID:    i.ProductID,
		Country:      i.Country,
		Quantity:     i.Quantity,
		Transactions: dto.ToRefs(i.Transactions),
	}
}

func toTransactionResponse(t *inventoryapp.TransactionResponse) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID,
		Created:     dto.NewTimestamp(t.CreatedAt),
		Updated:     dto.NewTimestamp(t.UpdatedAt),
		InventoryID: t.InventoryID,
		Quantity:    t.Quantity,
		Balance:     t.Balance,
	}
}

// List godoc
// @Summary      List inventories
// @Tags         READ
// @Produce      json
// @Param        product_id query string false "Only inventories of this product" format(uuid)
// @Success      200 {array} InventoryResponse
// @Failure      422 {object} dto.ValidationErrorResponse
// @Router       /admin/inventories [get]
func (h *InventoryHandler) List(c *gin.Context) {
	productID, ok := h.parseOptionalQueryID(c, "product_id")
	if !ok {
		return
	}

	inventories, err := h.inventoryService.List(c.Request.Context(), productID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	resp := make([]InventoryResponse, len(inventories))
	for i := range inventories {
		resp[i] = toInventoryResponse(&inventories[i])
	}
	h.Success(c, resp)
}

// GetByID godoc
// @Summary      Get inventory by ID
// @Tags         READ
// @Produce      json
// @Param        id path string true "Inventory ID" format(uuid)
// @Success      200 {object} InventoryResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      422 {object} dto.ValidationErrorResponse
// @Router       /admin/inventory_by_id/{id} [get]
func (h *InventoryHandler) GetByID(c *gin.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	inv, err := h.inventoryService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toInventoryResponse(inv))
}

// Create godoc
// @Summary      Create an inventory
// @Tags         WRITE
// @Accept       json
// @Produce      json
// @Param        request body CreateInventoryRequest true "Inventory creation request"
// @Success      201 {object} InventoryResponse
// @Failure      401 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Failure      422 {object} dto.ValidationErrorResponse
// @Security     BearerAuth
// @Router       /admin/inventory [post]
func (h *InventoryHandler) Create(c *gin.Context) {
	var req CreateInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	inv, err := h.inventoryService.Create(c.Request.Context(), inventoryapp.CreateInventoryInput{
		ProductID: req.ProductID,
		Country:   req.Country,
		Quantity:  *req.Quantity,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, toInventoryResponse(inv))
}

// Delete godoc
// @Summary      Delete an inventory
// @Tags         WRITE
// @Produce      json
// @Param        id path string true "Inventory ID" format(uuid)
// @Success      200 {object} dto.DetailResponse
// @Failure      401 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /admin/inventory/{id} [delete]
func (h *InventoryHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	if err := h.inventoryService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Deleted(c)
}

// RecordTransaction godoc
// @Summary      Record an inventory transaction
// @Description  Applies a signed quantity change to an inventory. Stock never goes negative.
// @Tags         WRITE
// @Accept       json
// @Produce      json
// @Param        request body RecordTransactionRequest true "Transaction"
// @Success      201 {object} TransactionResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      401 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      422 {object} dto.ValidationErrorResponse
// @Security     BearerAuth
// @Router       /admin/inventory_transaction [post]
func (h *InventoryHandler) RecordTransaction(c *gin.Context) {
	var req RecordTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	tx, err := h.inventoryService.RecordTransaction(c.Request.Context(), inventoryapp.RecordTransactionInput{
		InventoryID: req.InventoryID,
		Quantity:    *req.Quantity,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, toTransactionResponse(tx))
}

// ListTransactions godoc
// @Summary      List the transactions of an inventory
// @Tags         READ
// @Produce      json
// @Param        id path string true "Inventory ID" format(uuid)
// @Success      200 {array} TransactionResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      422 {object} dto.ValidationErrorResponse
// @Router       /admin/inventory_by_id/{id}/transactions [get]
func (h *InventoryHandler) ListTransactions(c *gin.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	transactions, err := h.inventoryService.ListTransactions(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	resp := make([]TransactionResponse, len(transactions))
	for i := range transactions {
		resp[i] = toTransactionResponse(&transactions[i])
	}
	h.Success(c, resp)
}
