package db_fx

import (
	"context"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"trivia/internal/config"
	"trivia/internal/infra"
)

var Module = fx.Provide(provideDB)

func provideDB(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	db, err := infra.Open(cfg.Database, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if cfg.Database.ResetOnStart {
				logger.Warn("resetting database schema, all data will be dropped")
				return infra.Reset(db.WithContext(ctx), cfg.Database.UniqueClueValues)
			}
			return infra.Migrate(db.WithContext(ctx), cfg.Database.UniqueClueValues)
		},
		OnStop: func(ctx context.Context) error {
			infra.Close(db, logger)
			return nil
		},
	})

	return db, nil
}
