package repositories

import (
	"context"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
	"trivia/internal/models/db_models"
)

func TestAdminReplaceUpdatesPassword(t *testing.T) {
	repo := NewAdminRepository(setupTestDB(t, true))
	ctx := context.Background()

	require.NoError(t, repo.Replace(ctx, &db_models.Admin{Username: "host", PasswordHash: "h1"}))
	require.NoError(t, repo.Replace(ctx, &db_models.Admin{Username: "host", PasswordHash: "h2"}))

	admin, err := repo.FindByUsername(ctx, "host")
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.Equal(t, "h2", admin.PasswordHash)

	missing, err := repo.FindByUsername(ctx, "guest")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestAdminReplaceRemovesOtherUsernames(t *testing.T) {
	db := setupTestDB(t, true)
	repo := NewAdminRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Replace(ctx, &db_models.Admin{Username: "alice", PasswordHash: "h1"}))
	require.NoError(t, repo.Replace(ctx, &db_models.Admin{Username: "bob", PasswordHash: "h2"}))

	alice, err := repo.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Nil(t, alice)

	var count int64
	require.NoError(t, db.Model(&db_models.Admin{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestAdminDeleteAll(t *testing.T) {
	db := setupTestDB(t, true)
	repo := NewAdminRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.DeleteAll(ctx))
	require.NoError(t, repo.Replace(ctx, &db_models.Admin{Username: "host", PasswordHash: "h1"}))
	require.NoError(t, repo.DeleteAll(ctx))

	var count int64
	require.NoError(t, db.Model(&db_models.Admin{}).Count(&count).Error)
	assert.Zero(t, count)
}
