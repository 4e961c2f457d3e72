package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/inventorydb/backend/internal/domain/identity"
	"github.com/inventorydb/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormAdminRepository_CreateAndFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormAdminRepository(db)
	ctx := context.Background()

	admin := seedAdmin(t, db, "ada@example.com")

	t.Run("find by id", func(t *testing.T) {
		found, err := repo.FindByID(ctx, admin.ID)
		require.NoError(t, err)
		assert.Equal(t, admin.Email, found.Email)
		assert.Equal(t, admin.PasswordHash, found.PasswordHash)
		assert.Equal(t, "Ada", found.FirstName)
		assert.True(t, found.VerifyPassword("secret"))
	})

	t.Run("find by email ignores case and whitespace", func(t *testing.T) {
		found, err := repo.FindByEmail(ctx, "  ADA@Example.com ")
		require.NoError(t, err)
		assert.Equal(t, admin.ID, found.ID)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := repo.FindByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("empty email", func(t *testing.T) {
		_, err := repo.FindByEmail(ctx, "")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormAdminRepository_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormAdminRepository(db)
	seedAdmin(t, db, "ada@example.com")

	dup, err := identity.NewAdmin("ADA@example.com", "other", "A", "B")
	require.NoError(t, err)

	err = repo.Create(context.Background(), dup)
	require.Error(t, err)

	kind, msg := Classify(err)
	assert.Equal(t, KindUniqueViolation, kind)
	assert.Contains(t, msg, "admins.email")
}

func TestGormAdminRepository_Update(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormAdminRepository(db)
	ctx := context.Background()
	admin := seedAdmin(t, db, "ada@example.com")

	admin.UpdateInfo("Augusta", "")
	require.NoError(t, admin.ChangePassword("secret", "n3w"))
	require.NoError(t, repo.Update(ctx, admin))

	found, err := repo.FindByID(ctx, admin.ID)
	require.NoError(t, err)
	assert.Equal(t, "Augusta", found.FirstName)
	assert.Equal(t, "Lovelace", found.LastName)
	assert.True(t, found.VerifyPassword("n3w"))
	assert.False(t, found.VerifyPassword("secret"))
	assert.True(t, found.UpdatedAt.After(found.CreatedAt))

	t.Run("missing admin", func(t *testing.T) {
		ghost, err := identity.NewAdmin("ghost@example.com", "x", "G", "H")
		require.NoError(t, err)
		assert.ErrorIs(t, repo.Update(ctx, ghost), shared.ErrNotFound)
	})
}

func TestGormAdminRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormAdminRepository(db)
	ctx := context.Background()
	admin := seedAdmin(t, db, "ada@example.com")

	require.NoError(t, repo.Delete(ctx, admin.ID))

	_, err := repo.FindByID(ctx, admin.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, admin.ID), shared.ErrNotFound)
}
