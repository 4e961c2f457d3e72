package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/inventorydb/backend/internal/domain/catalog"
	"github.com/inventorydb/backend/internal/domain/shared"
	"github.com/inventorydb/backend/internal/infrastructure/persistence/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormCategoryRepository_Find(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormCategoryRepository(db)
	ctx := context.Background()

	tools := seedCategory(t, db, "Tools", "tl")
	seedCategory(t, db, "Books", "BK")
	hammer := seedProduct(t, db, tools.ID, "Hammer", "HAM-1")
	saw := seedProduct(t, db, tools.ID, "Saw", "SAW-1")

	t.Run("find all ordered by name", func(t *testing.T) {
		categories, err := repo.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, categories, 2)
		assert.Equal(t, "Books", categories[0].Name)
		assert.Empty(t, categories[0].ProductRefs)
		assert.Equal(t, "Tools", categories[1].Name)
		assert.ElementsMatch(t, []uuid.UUID{hammer.ID, saw.ID}, categories[1].ProductIDs())
	})

	t.Run("find by id loads product refs", func(t *testing.T) {
		found, err := repo.FindByID(ctx, tools.ID)
		require.NoError(t, err)
		assert.Equal(t, "TL", found.Code)
		require.Len(t, found.ProductRefs, 2)
		for _, ref := range found.ProductRefs {
			assert.False(t, ref.CreatedAt.IsZero())
			assert.False(t, ref.UpdatedAt.IsZero())
		}
	})

	t.Run("find by name", func(t *testing.T) {
		found, err := repo.FindByName(ctx, "Books")
		require.NoError(t, err)
		assert.Equal(t, "BK", found.Code)

		_, err = repo.FindByName(ctx, "Garden")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormCategoryRepository_UniqueColumns(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormCategoryRepository(db)
	seedCategory(t, db, "Tools", "TL")

	t.Run("duplicate name", func(t *testing.T) {
		dup, err := catalog.NewCategory("Tools", "OTHER", "x")
		require.NoError(t, err)
		kind, _ := Classify(repo.Create(context.Background(), dup))
		assert.Equal(t, KindUniqueViolation, kind)
	})

	t.Run("duplicate code", func(t *testing.T) {
		dup, err := catalog.NewCategory("Hardware", "tl", "x")
		require.NoError(t, err)
		kind, _ := Classify(repo.Create(context.Background(), dup))
		assert.Equal(t, KindUniqueViolation, kind)
	})
}

func TestGormCategoryRepository_Update(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormCategoryRepository(db)
	ctx := context.Background()
	category := seedCategory(t, db, "Tools", "TL")

	require.NoError(t, category.Update("", "", "Hand tools"))
	require.NoError(t, repo.Update(ctx, category))

	found, err := repo.FindByID(ctx, category.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tools", found.Name)
	assert.Equal(t, "Hand tools", found.Description)
	assert.True(t, found.UpdatedAt.After(found.CreatedAt))
}

func TestGormCategoryRepository_DeleteCascades(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormCategoryRepository(db)
	ctx := context.Background()

	tools := seedCategory(t, db, "Tools", "TL")
	books := seedCategory(t, db, "Books", "BK")
	hammer := seedProduct(t, db, tools.ID, "Hammer", "HAM-1")
	novel := seedProduct(t, db, books.ID, "Novel", "NOV-1")
	hammerUS := seedInventory(t, db, hammer.ID, "US", 10)
	novelUS := seedInventory(t, db, novel.ID, "US", 3)
	seedTransaction(t, db, hammerUS, -2)
	seedTransaction(t, db, novelUS, 4)

	require.NoError(t, repo.Delete(ctx, tools.ID))

	_, err := repo.FindByID(ctx, tools.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
	assert.Equal(t, int64(1), countRows(t, db, &models.ProductModel{}))
	assert.Equal(t, int64(1), countRows(t, db, &models.InventoryModel{}))
	assert.Equal(t, int64(1), countRows(t, db, &models.InventoryTransactionModel{}))

	remaining, err := NewGormProductRepository(db).FindByID(ctx, novel.ID)
	require.NoError(t, err)
	assert.Len(t, remaining.InventoryRefs, 1)

	assert.ErrorIs(t, repo.Delete(ctx, tools.ID), shared.ErrNotFound)
}
