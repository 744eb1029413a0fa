package auth_fx

import (
	"context"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"trivia/internal/config"
	"trivia/internal/repositories"
	"trivia/internal/services"
	"trivia/pkg/utils"
)

var Module = fx.Options(
	fx.Provide(provideAdminRepo, provideTokenManager, provideAuthService),
	fx.Invoke(seedAdmin),
)

func provideAdminRepo(db *gorm.DB) repositories.AdminRepository {
	return repositories.NewAdminRepository(db)
}

func provideTokenManager(cfg *config.Config, logger *zap.Logger) (*utils.TokenManager, error) {
	secret := cfg.Auth.JWTSecret
	if secret == "" {
		generated, err := utils.GenerateSecureToken(32)
		if err != nil {
			return nil, err
		}
		logger.Warn("JWT_SECRET not set, tokens will not survive a restart")
		secret = generated
	}
	return utils.NewTokenManager(secret, cfg.Auth.TokenTTL), nil
}

func provideAuthService(adminRepo repositories.AdminRepository, tokens *utils.TokenManager, logger *zap.Logger) services.AuthServiceInterface {
	return services.NewAuthService(adminRepo, tokens, logger.Named("auth"))
}

// seedAdmin's hook runs after the migration hook because the *gorm.DB it
// depends on is built first. Admins left over from an earlier configuration
// are removed.
func seedAdmin(lc fx.Lifecycle, cfg *config.Config, authService services.AuthServiceInterface) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return authService.EnsureAdmin(ctx, cfg.Auth.AdminUsername, cfg.Auth.AdminPassword)
		},
	})
}
