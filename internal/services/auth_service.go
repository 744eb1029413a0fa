package services

import (
	"context"
	"fmt"
	"go.uber.org/zap"
	"trivia/internal/models/db_models"
	"trivia/internal/models/request_models"
	"trivia/internal/models/response_models"
	"trivia/internal/repositories"
	"trivia/pkg/utils"
)

type AuthServiceInterface interface {
	Login(ctx context.Context, request request_models.LoginRequest) (response_models.TokenResponse, error)
	RequireAdmin(ctx context.Context, token string) (string, error)
	EnsureAdmin(ctx context.Context, username, password string) error
}

type AuthService struct {
	adminRepo repositories.AdminRepository
	tokens    *utils.TokenManager
	logger    *zap.Logger
}

func NewAuthService(adminRepo repositories.AdminRepository, tokens *utils.TokenManager, logger *zap.Logger) AuthServiceInterface {
	return &AuthService{
		adminRepo: adminRepo,
		tokens:    tokens,
		logger:    logger,
	}
}

func (a *AuthService) Login(ctx context.Context, request request_models.LoginRequest) (response_models.TokenResponse, error) {
	admin, err := a.adminRepo.FindByUsername(ctx, request.Username)
	if err != nil {
		return response_models.TokenResponse{}, storeError(err)
	}
	if admin == nil {
		return response_models.TokenResponse{}, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(admin.PasswordHash, request.Password); err != nil {
		a.logger.Info("rejected login", zap.String("username", request.Username))
		return response_models.TokenResponse{}, utils.ErrInvalidCredentials
	}

	token, err := a.tokens.CreateToken(admin.Username)
	if err != nil {
		return response_models.TokenResponse{}, fmt.Errorf("sign token: %w", err)
	}

	return response_models.TokenResponse{
		AccessToken: token,
		TokenType:   utils.TokenTypeBearer,
	}, nil
}

// RequireAdmin returns the username behind token. Bad tokens are ErrUnauthorized;
// good tokens for an unknown identity are ErrForbidden.
func (a *AuthService) RequireAdmin(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", utils.ErrUnauthorized
	}

	claims, err := a.tokens.ValidateToken(token)
	if err != nil {
		return "", fmt.Errorf("%w: %v", utils.ErrUnauthorized, err)
	}

	admin, err := a.adminRepo.FindByUsername(ctx, claims.Subject)
	if err != nil {
		return "", storeError(err)
	}
	if admin == nil {
		return "", utils.ErrForbidden
	}

	return admin.Username, nil
}

// EnsureAdmin makes username the only admin identity, resetting its password.
// An empty username removes every admin, which disables login.
func (a *AuthService) EnsureAdmin(ctx context.Context, username, password string) error {
	if username == "" {
		if err := a.adminRepo.DeleteAll(ctx); err != nil {
			return fmt.Errorf("clear admins: %w", err)
		}
		a.logger.Warn("no admin configured, login is disabled")
		return nil
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	if err := a.adminRepo.Replace(ctx, &db_models.Admin{Username: username, PasswordHash: hash}); err != nil {
		return fmt.Errorf("store admin %q: %w", username, err)
	}

	a.logger.Info("admin identity ready", zap.String("username", username))
	return nil
}
