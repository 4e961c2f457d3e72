package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/inventorydb/backend/internal/domain/inventory"
	"github.com/inventorydb/backend/internal/domain/shared"
	"github.com/inventorydb/backend/internal/infrastructure/persistence/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormInventoryRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormInventoryRepository(db)
	txRepo := NewGormInventoryTransactionRepository(db)
	ctx := context.Background()

	tools := seedCategory(t, db, "Tools", "TL")
	saw := seedProduct(t, db, tools.ID, "Saw", "SAW-1")
	hammer := seedProduct(t, db, tools.ID, "Hammer", "HAM-1")
	sawUS := seedInventory(t, db, saw.ID, "us", 5)
	seedInventory(t, db, saw.ID, "FR", 2)
	seedInventory(t, db, hammer.ID, "US", 7)

	t.Run("one inventory per product and country", func(t *testing.T) {
		dup, err := inventory.NewInventory(saw.ID, "US", 1)
		require.NoError(t, err)
		kind, _ := Classify(repo.Create(ctx, dup))
		assert.Equal(t, KindUniqueViolation, kind)
	})

	t.Run("filter by product", func(t *testing.T) {
		all, err := repo.FindAll(ctx, inventory.Filter{})
		require.NoError(t, err)
		assert.Len(t, all, 3)

		forSaw, err := repo.FindAll(ctx, inventory.Filter{ProductID: &saw.ID})
		require.NoError(t, err)
		require.Len(t, forSaw, 2)
		for _, inv := range forSaw {
			assert.Equal(t, saw.ID, inv.ProductID)
		}
	})

	t.Run("transactions adjust quantity", func(t *testing.T) {
		first := seedTransaction(t, db, sawUS, 10)
		second := seedTransaction(t, db, sawUS, -4)

		found, err := repo.FindByID(ctx, sawUS.ID)
		require.NoError(t, err)
		assert.Equal(t, "US", found.Country)
		assert.Equal(t, 11, found.Quantity)
		require.Len(t, found.TransactionRefs, 2)

		history, err := txRepo.FindByInventory(ctx, sawUS.ID)
		require.NoError(t, err)
		require.Len(t, history, 2)
		assert.ElementsMatch(t, []uuid.UUID{first.ID, second.ID}, []uuid.UUID{history[0].ID, history[1].ID})
		assert.False(t, history[1].CreatedAt.Before(history[0].CreatedAt))
	})

	t.Run("delete removes transactions", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, sawUS.ID))
		_, err := repo.FindByID(ctx, sawUS.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.Equal(t, int64(0), countRows(t, db, &models.InventoryTransactionModel{}))
		assert.ErrorIs(t, repo.Delete(ctx, sawUS.ID), shared.ErrNotFound)
	})

	t.Run("update unknown inventory", func(t *testing.T) {
		ghost, err := inventory.NewInventory(uuid.New(), "GB", 0)
		require.NoError(t, err)
		assert.ErrorIs(t, repo.Update(ctx, ghost), shared.ErrNotFound)
	})
}
