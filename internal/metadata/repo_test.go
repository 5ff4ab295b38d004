package metadata

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestRepositoryUpsertAndGet(t *testing.T) {
	repo := NewRepository(openTestDB(t))
	ctx := context.Background()
	ownerID := uuid.New()

	require.NoError(t, repo.Upsert(ctx, ownerID, "supplier_discount_percent", "20"))

	row, err := repo.Get(ctx, ownerID, "supplier_discount_percent")
	require.NoError(t, err)
	assert.Equal(t, ownerID, row.OwnerID)
	assert.Equal(t, "20", row.MetaValue)

	require.NoError(t, repo.Upsert(ctx, ownerID, "supplier_discount_percent", "35"))

	row, err = repo.Get(ctx, ownerID, "supplier_discount_percent")
	require.NoError(t, err)
	assert.Equal(t, "35", row.MetaValue, "upsert should replace the existing value")
}

func TestRepositoryGetMissing(t *testing.T) {
	repo := NewRepository(openTestDB(t))

	_, err := repo.Get(context.Background(), uuid.New(), "supplier_discount_percent")
	require.Error(t, err)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestRepositoryDelete(t *testing.T) {
	repo := NewRepository(openTestDB(t))
	ctx := context.Background()
	ownerID := uuid.New()

	require.NoError(t, repo.Upsert(ctx, ownerID, "supplier_discount_percent", "10"))
	require.NoError(t, repo.Delete(ctx, ownerID, "supplier_discount_percent"))

	_, err := repo.Get(ctx, ownerID, "supplier_discount_percent")
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	// Deleting again is a no-op, not an error.
	require.NoError(t, repo.Delete(ctx, ownerID, "supplier_discount_percent"))
}
