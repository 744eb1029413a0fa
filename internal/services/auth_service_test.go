package services

import (
	"context"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"testing"
	"time"
	"trivia/internal/models/request_models"
	"trivia/internal/repositories"
	"trivia/pkg/utils"
)

const testSecret = "test-secret"

func newAuthService(t *testing.T) AuthServiceInterface {
	t.Helper()
	repo := repositories.NewAdminRepository(setupTestDB(t, true))
	svc := NewAuthService(repo, utils.NewTokenManager(testSecret, 30*time.Minute), zap.NewNop())
	require.NoError(t, svc.EnsureAdmin(context.Background(), "quizmaster", "correct horse"))
	return svc
}

func TestLogin(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	token, err := svc.Login(ctx, request_models.LoginRequest{Username: "quizmaster", Password: "correct horse"})
	require.NoError(t, err)
	assert.Equal(t, "bearer", token.TokenType)
	assert.NotEmpty(t, token.AccessToken)

	_, err = svc.Login(ctx, request_models.LoginRequest{Username: "quizmaster", Password: "wrong"})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)

	_, err = svc.Login(ctx, request_models.LoginRequest{Username: "correct horse", Password: "correct horse"})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestRequireAdmin(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	token, err := svc.Login(ctx, request_models.LoginRequest{Username: "quizmaster", Password: "correct horse"})
	require.NoError(t, err)

	username, err := svc.RequireAdmin(ctx, token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "quizmaster", username)
}

func TestRequireAdminRejections(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	expired, err := utils.NewTokenManager(testSecret, -time.Minute).CreateToken("quizmaster")
	require.NoError(t, err)
	foreign, err := utils.NewTokenManager("another-secret", time.Minute).CreateToken("quizmaster")
	require.NoError(t, err)
	guest, err := utils.NewTokenManager(testSecret, time.Minute).CreateToken("guest")
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
		want  error
	}{
		{"missing", "", utils.ErrUnauthorized},
		{"malformed", "abc.def", utils.ErrUnauthorized},
		{"expired", expired, utils.ErrUnauthorized},
		{"bad signature", foreign, utils.ErrUnauthorized},
		{"not an admin", guest, utils.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.RequireAdmin(ctx, tt.token)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestEnsureAdminResetsPassword(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	require.NoError(t, svc.EnsureAdmin(ctx, "quizmaster", "new password"))

	_, err := svc.Login(ctx, request_models.LoginRequest{Username: "quizmaster", Password: "correct horse"})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
	_, err = svc.Login(ctx, request_models.LoginRequest{Username: "quizmaster", Password: "new password"})
	assert.NoError(t, err)
}

func TestEnsureAdminReplacesPreviousIdentity(t *testing.T) {
	repo := repositories.NewAdminRepository(setupTestDB(t, true))
	svc := NewAuthService(repo, utils.NewTokenManager(testSecret, 30*time.Minute), zap.NewNop())
	ctx := context.Background()

	require.NoError(t, svc.EnsureAdmin(ctx, "alice", "pw1"))
	aliceToken, err := svc.Login(ctx, request_models.LoginRequest{Username: "alice", Password: "pw1"})
	require.NoError(t, err)

	require.NoError(t, svc.EnsureAdmin(ctx, "bob", "pw2"))

	_, err = svc.Login(ctx, request_models.LoginRequest{Username: "alice", Password: "pw1"})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)

	_, err = svc.RequireAdmin(ctx, aliceToken.AccessToken)
	assert.ErrorIs(t, err, utils.ErrForbidden)

	bobToken, err := svc.Login(ctx, request_models.LoginRequest{Username: "bob", Password: "pw2"})
	require.NoError(t, err)
	username, err := svc.RequireAdmin(ctx, bobToken.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "bob", username)
}

func TestEnsureAdminWithoutUsernameDisablesLogin(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	token, err := svc.Login(ctx, request_models.LoginRequest{Username: "quizmaster", Password: "correct horse"})
	require.NoError(t, err)

	require.NoError(t, svc.EnsureAdmin(ctx, "", ""))

	_, err = svc.Login(ctx, request_models.LoginRequest{Username: "quizmaster", Password: "correct horse"})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)

	_, err = svc.RequireAdmin(ctx, token.AccessToken)
	assert.ErrorIs(t, err, utils.ErrForbidden)
}
