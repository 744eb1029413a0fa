package utils

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
	"time"
)

func TestCreateAndValidateToken(t *testing.T) {
	m := NewTokenManager("secret", 30*time.Minute)

	token, err := m.CreateToken("admin")
	require.NoError(t, err)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), claims.ExpiresAt.Time, 5*time.Second)
}

func TestValidateTokenExpired(t *testing.T) {
	m := NewTokenManager("secret", 30*time.Minute)
	m.now = func() time.Time { return time.Now().Add(-time.Hour) }
	token, err := m.CreateToken("admin")
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestValidateTokenTampered(t *testing.T) {
	m := NewTokenManager("secret", time.Minute)
	token, err := m.CreateToken("guest")
	require.NoError(t, err)
	forged, err := NewTokenManager("other", time.Minute).CreateToken("admin")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	parts[1] = strings.Split(forged, ".")[1]

	_, err = m.ValidateToken(strings.Join(parts, "."))
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestValidateTokenWrongKey(t *testing.T) {
	token, err := NewTokenManager("one", time.Minute).CreateToken("admin")
	require.NoError(t, err)

	_, err = NewTokenManager("two", time.Minute).ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestValidateTokenRejectsNoneAlgorithm(t *testing.T) {
	claims := jwt.RegisteredClaims{
		Subject:   "admin",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewTokenManager("secret", time.Minute).ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	_, err := NewTokenManager("secret", time.Minute).ValidateToken("not-a-token")
	assert.ErrorIs(t, err, jwt.ErrTokenMalformed)
}
