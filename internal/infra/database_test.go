package infra

import (
	"context"
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"testing"
	"trivia/internal/config"
	"trivia/internal/models/db_models"
)

func setupTestDB(t *testing.T, uniqueClueValues bool) *gorm.DB {
	t.Helper()
	db, err := Open(config.Database{Driver: config.DriverSQLite, URL: "file::memory:"}, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, Migrate(db, uniqueClueValues))
	t.Cleanup(func() { Close(db, zap.NewNop()) })
	return db
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := Open(config.Database{Driver: "oracle", URL: "x"}, zap.NewNop())
	assert.Error(t, err)
}

func TestMigrateEnforcesCategoryNameUniqueness(t *testing.T) {
	db := setupTestDB(t, true)

	require.NoError(t, db.Create(&db_models.Category{Name: "science"}).Error)
	err := db.Create(&db_models.Category{Name: "science"}).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestMigrateUniqueClueValueIndex(t *testing.T) {
	db := setupTestDB(t, true)

	cat := db_models.Category{Name: "history"}
	require.NoError(t, db.Create(&cat).Error)
	require.NoError(t, db.Create(&db_models.Clue{Answer: "a", Question: "q", Value: 100, CategoryID: cat.ID}).Error)

	err := db.Create(&db_models.Clue{Answer: "b", Question: "q2", Value: 100, CategoryID: cat.ID}).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestMigrateWithoutUniqueClueValues(t *testing.T) {
	db := setupTestDB(t, false)

	cat := db_models.Category{Name: "history"}
	require.NoError(t, db.Create(&cat).Error)
	require.NoError(t, db.Create(&db_models.Clue{Answer: "a", Question: "q", Value: 100, CategoryID: cat.ID}).Error)
	assert.NoError(t, db.Create(&db_models.Clue{Answer: "b", Question: "q2", Value: 100, CategoryID: cat.ID}).Error)
}

func TestMigrateDropsUniqueClueValueIndex(t *testing.T) {
	db := setupTestDB(t, true)
	require.True(t, db.Migrator().HasIndex(&db_models.Clue{}, clueValueIndex))

	require.NoError(t, Migrate(db, false))
	assert.False(t, db.Migrator().HasIndex(&db_models.Clue{}, clueValueIndex))

	cat := db_models.Category{Name: "history"}
	require.NoError(t, db.Create(&cat).Error)
	require.NoError(t, db.Create(&db_models.Clue{Answer: "a", Question: "q", Value: 100, CategoryID: cat.ID}).Error)
	assert.NoError(t, db.Create(&db_models.Clue{Answer: "b", Question: "q2", Value: 100, CategoryID: cat.ID}).Error)
}

func TestForeignKeyEnforced(t *testing.T) {
	db := setupTestDB(t, true)

	err := db.Create(&db_models.Clue{Answer: "a", Question: "q", Value: 100, CategoryID: 42}).Error
	assert.Error(t, err)
}

func TestResetDropsData(t *testing.T) {
	db := setupTestDB(t, true)
	require.NoError(t, db.Create(&db_models.Category{Name: "art"}).Error)

	require.NoError(t, Reset(db, true))

	var count int64
	require.NoError(t, db.Model(&db_models.Category{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestReleaseTransaction(t *testing.T) {
	db := setupTestDB(t, true)
	ctx := context.Background()

	tx, err := StartTransaction(ctx, db)
	require.NoError(t, err)
	require.NoError(t, tx.Create(&db_models.Category{Name: "kept"}).Error)
	require.NoError(t, ReleaseTransaction(tx, nil))

	tx, err = StartTransaction(ctx, db)
	require.NoError(t, err)
	require.NoError(t, tx.Create(&db_models.Category{Name: "dropped"}).Error)
	boom := errors.New("boom")
	assert.ErrorIs(t, ReleaseTransaction(tx, boom), boom)

	var names []string
	require.NoError(t, db.Model(&db_models.Category{}).Order("id").Pluck("name", &names).Error)
	assert.Equal(t, []string{"kept"}, names)
}
