// Package testutil provides common test utilities for the inventory backend.
package testutil

import (
	"context"

	"github.com/inventorydb/backend/internal/application/uow"
	"github.com/inventorydb/backend/internal/domain/catalog"
	"github.com/inventorydb/backend/internal/domain/identity"
	"github.com/inventorydb/backend/internal/domain/inventory"
)

// StaticScope is a uow.TransactionScope without a real transaction. It hands
// out a fixed set of repositories, usually mocks.
type StaticScope struct {
	AdminRepo       identity.AdminRepository
	CategoryRepo    catalog.CategoryRepository
	ProductRepo     catalog.ProductRepository
	InventoryRepo   inventory.InventoryRepository
	TransactionRepo inventory.TransactionRepository

	executions int
}

// Execute runs fn without a transaction
func (s *StaticScope) Execute(_ context.Context, fn func(repos uow.Repositories) error) error {
	s.executions++
	return fn(s)
}

// Executions reports how many units of work ran through the scope
func (s *StaticScope) Executions() int {
	return s.executions
}

func (s *StaticScope) Admins() identity.AdminRepository           { return s.AdminRepo }
func (s *StaticScope) Categories() catalog.CategoryRepository     { return s.CategoryRepo }
func (s *StaticScope) Products() catalog.ProductRepository        { return s.ProductRepo }
func (s *StaticScope) Inventories() inventory.InventoryRepository { return s.InventoryRepo }
func (s *StaticScope) Transactions() inventory.TransactionRepository {
	return s.TransactionRepo
}

var (
	_ uow.TransactionScope = (*StaticScope)(nil)
	_ uow.Repositories     = (*StaticScope)(nil)
)
