// Package inventory implements inventory and stock transaction use cases.
package inventory

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/inventorydb/backend/internal/application/uow"
	"github.com/inventorydb/backend/internal/domain/inventory"
	"github.com/inventorydb/backend/internal/domain/shared"
	"github.com/inventorydb/backend/internal/infrastructure/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// InventoryService handles inventories and their transactions
type InventoryService struct {
	scope           uow.TransactionScope
	logger          *zap.Logger
	businessMetrics *telemetry.BusinessMetrics
}

// NewInventoryService creates a new InventoryService
func NewInventoryService(scope uow.TransactionScope, logger *zap.Logger) *InventoryService {
	return &InventoryService{scope: scope, logger: logger}
}

// SetBusinessMetrics sets the business metrics collector
func (s *InventoryService) SetBusinessMetrics(bm *telemetry.BusinessMetrics) {
	s.businessMetrics = bm
}

// Create creates the inventory of an existing product in one country.
// A second inventory for the same product and country is a conflict.
func (s *InventoryService) Create(ctx context.Context, input CreateInventoryInput) (*InventoryResponse, error) {
	inv, err := inventory.NewInventory(input.ProductID, input.Country, input.Quantity)
	if err != nil {
		return nil, err
	}

	err = s.scope.Execute(ctx, func(repos uow.Repositories) error {
		if _, err := repos.Products().FindByID(ctx, inv.ProductID); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return shared.NewNotFoundError("Product", inv.ProductID)
			}
			return err
		}
		return repos.Inventories().Create(ctx, inv)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Inventory created",
		zap.String("inventory_id", inv.ID.String()),
		zap.String("product_id", inv.ProductID.String()),
		zap.String("country", inv.Country))

	resp := ToInventoryResponse(inv)
	return &resp, nil
}

// List returns inventories, optionally only those of one product
func (s *InventoryService) List(ctx context.Context, productID *uuid.UUID) ([]InventoryResponse, error) {
	var inventories []*inventory.Inventory
	err := s.scope.Execute(ctx, func(repos uow.Repositories) error {
		var err error
		inventories, err = repos.Inventories().FindAll(ctx, inventory.Filter{ProductID: productID})
		return err
	})
	if err != nil {
		return nil, err
	}

	responses := make([]InventoryResponse, len(inventories))
	for i, inv := range inventories {
		responses[i] = ToInventoryResponse(inv)
	}
	return responses, nil
}

// GetByID retrieves an inventory by ID
func (s *InventoryService) GetByID(ctx context.Context, id uuid.UUID) (*InventoryResponse, error) {
	var inv *inventory.Inventory
	err := s.scope.Execute(ctx, func(repos uow.Repositories) error {
		var err error
		inv, err = findInventory(ctx, repos, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	resp := ToInventoryResponse(inv)
	return &resp, nil
}

// Delete removes the inventory with its transactions
func (s *InventoryService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.scope.Execute(ctx, func(repos uow.Repositories) error {
		if _, err := findInventory(ctx, repos, id); err != nil {
			return err
		}
		return repos.Inventories().Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	s.logger.Info("Inventory deleted", zap.String("inventory_id", id.String()))
	return nil
}

// RecordTransaction appends a transaction and adjusts the inventory
// quantity in the same unit of work. A change that would leave the
// quantity negative persists nothing.
func (s *InventoryService) RecordTransaction(ctx context.Context, input RecordTransactionInput) (_ *TransactionResponse, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "inventory", "record_transaction",
		attribute.String("inventory.id", input.InventoryID.String()),
		attribute.Int("inventory.delta", input.Quantity))
	defer func() { telemetry.EndSpan(span, err) }()

	var (
		tx      *inventory.Transaction
		balance int
		country string
	)
	err = s.scope.Execute(ctx, func(repos uow.Repositories) error {
		inv, err := repos.Inventories().FindByIDForUpdate(ctx, input.InventoryID)
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewNotFoundError("Inventory", input.InventoryID)
		}
		if err != nil {
			return err
		}
		country = inv.Country
		tx, err = inv.Record(input.Quantity)
		if err != nil {
			return err
		}
		if err := repos.Transactions().Create(ctx, tx); err != nil {
			return err
		}
		balance = inv.Quantity
		return repos.Inventories().Update(ctx, inv)
	})
	if err != nil {
		if errors.Is(err, inventory.ErrInsufficientStock) {
			s.logger.Warn("Inventory transaction rejected",
				zap.String("inventory_id", input.InventoryID.String()),
				zap.Int("quantity", input.Quantity))
		}
		return nil, err
	}

	s.logger.Info("Inventory transaction recorded",
		zap.String("inventory_id", input.InventoryID.String()),
		zap.Int("quantity", input.Quantity),
		zap.Int("balance", balance))

	if s.businessMetrics != nil {
		s.businessMetrics.RecordTransaction(ctx, country, input.Quantity)
	}

	resp := ToTransactionResponse(tx)
	resp.Balance = &balance
	return &resp, nil
}

// ListTransactions returns the transactions of one inventory, oldest first
func (s *InventoryService) ListTransactions(ctx context.Context, inventoryID uuid.UUID) ([]TransactionResponse, error) {
	var transactions []*inventory.Transaction
	err := s.scope.Execute(ctx, func(repos uow.Repositories) error {
		if _, err := findInventory(ctx, repos, inventoryID); err != nil {
			return err
		}
		var err error
		transactions, err = repos.Transactions().FindByInventory(ctx, inventoryID)
		return err
	})
	if err != nil {
		return nil, err
	}

	responses := make([]TransactionResponse, len(transactions))
	for i, t := range transactions {
		responses[i] = ToTransactionResponse(t)
	}
	return responses, nil
}

func findInventory(ctx context.Context, repos uow.Repositories, id uuid.UUID) (*inventory.Inventory, error) {
	inv, err := repos.Inventories().FindByID(ctx, id)
	if errors.Is(err, shared.ErrNotFound) {
		return nil, shared.NewNotFoundError("Inventory", id)
	}
	return inv, err
}
