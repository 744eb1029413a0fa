package repositories

import (
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"testing"
	"trivia/internal/config"
	"trivia/internal/infra"
)

func setupTestDB(t *testing.T, uniqueClueValues bool) *gorm.DB {
	t.Helper()
	db, err := infra.Open(config.Database{Driver: config.DriverSQLite, URL: "file::memory:"}, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, infra.Migrate(db, uniqueClueValues))
	t.Cleanup(func() { infra.Close(db, zap.NewNop()) })
	return db
}
