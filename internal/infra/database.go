package infra

import (
	"context"
	"errors"
	"fmt"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"trivia/internal/config"
	"trivia/internal/models/db_models"
)

const clueValueIndex = "uq_clues_category_value"

// Open connects to the configured store. Constraint violations come back as
// gorm.ErrDuplicatedKey and gorm.ErrForeignKeyViolated.
func Open(cfg config.Database, logger *zap.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case config.DriverPostgres:
		dialector = postgres.Open(cfg.URL)
	case config.DriverSQLite:
		dialector = sqlite.Open(cfg.URL)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         NewGormLogger(logger),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", cfg.Driver, err)
	}

	if cfg.Driver == config.DriverSQLite {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		// one connection keeps in-memory databases and the foreign_keys pragma alive
		sqlDB.SetMaxOpenConns(1)
		if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return nil, fmt.Errorf("enable foreign keys: %w", err)
		}
	}

	return db, nil
}

func Close(db *gorm.DB, logger *zap.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("get database instance", zap.Error(err))
		return
	}

	if err := sqlDB.Close(); err != nil {
		logger.Error("close database connection", zap.Error(err))
	} else {
		logger.Info("database connection closed")
	}
}

func Migrate(db *gorm.DB, uniqueClueValues bool) error {
	if err := db.AutoMigrate(&db_models.Category{}, &db_models.Clue{}, &db_models.Admin{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	if uniqueClueValues {
		err := db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS " + clueValueIndex + " ON clues (category_id, value)").Error
		if err != nil {
			return fmt.Errorf("create %s: %w", clueValueIndex, err)
		}
	} else {
		if err := db.Exec("DROP INDEX IF EXISTS " + clueValueIndex).Error; err != nil {
			return fmt.Errorf("drop %s: %w", clueValueIndex, err)
		}
	}
	return nil
}

// Reset drops every table and recreates the schema. All data is lost.
func Reset(db *gorm.DB, uniqueClueValues bool) error {
	if err := db.Migrator().DropTable(&db_models.Clue{}, &db_models.Category{}, &db_models.Admin{}); err != nil {
		return fmt.Errorf("drop tables: %w", err)
	}
	return Migrate(db, uniqueClueValues)
}

func StartTransaction(ctx context.Context, db *gorm.DB) (*gorm.DB, error) {
	tx := db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	return tx, nil
}

// ReleaseTransaction rolls back when err is set and commits otherwise.
// It returns err, or the commit failure.
func ReleaseTransaction(tx *gorm.DB, err error) error {
	if err != nil {
		if rollbackErr := tx.Rollback().Error; rollbackErr != nil {
			return errors.Join(err, fmt.Errorf("rollback: %w", rollbackErr))
		}
		return err
	}
	if commitErr := tx.Commit().Error; commitErr != nil {
		return fmt.Errorf("commit: %w", commitErr)
	}
	return nil
}
